package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/ids"
	"github.com/idilsaglam/todolist/internal/kv"
	"github.com/idilsaglam/todolist/internal/kv/filekv"
	"github.com/idilsaglam/todolist/internal/kv/memory"
	"github.com/idilsaglam/todolist/internal/kv/rediskv"
	"github.com/idilsaglam/todolist/internal/kv/sqlitekv"
	"github.com/idilsaglam/todolist/internal/list"
	"github.com/idilsaglam/todolist/internal/liststore"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// setup resolves config and opens the backend. Config problems are usage errors.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Sources{
		UserFile:  a.opt.UserConfig,
		WorkDir:   a.opt.WorkDir,
		File:      a.configFile,
		LookupEnv: a.opt.LookupEnv,
	}, overridesFrom(cmd))
	if err != nil {
		return usagef("config: %v", err)
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)

	logOut := a.opt.Stderr
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, f)
		logOut = f
	}
	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel
	opts.ReportTimestamp = cfg.LogFile != ""
	a.logger, err = logging.New(logOut, opts)
	if err != nil {
		return usagef("config: %v", err)
	}

	backend, err := openBackend(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	a.closers = append(a.closers, backend)
	a.logger.Debug("backend ready", "backend", cfg.Backend, "key", cfg.Key)

	gen, err := ids.ByScheme(cfg.IDScheme)
	if err != nil {
		return usagef("config: %v", err)
	}
	a.store = liststore.New(backend, liststore.Options{
		Key:     cfg.Key,
		Default: seedList(cfg.Seed, gen),
		IDs:     gen,
		Logger:  a.logger,
	})
	return nil
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}

// silenceLogs stops log output reaching the terminal while the TUI owns it.
func (a *App) silenceLogs() {
	if a.cfg.LogFile == "" {
		a.logger.SetOutput(io.Discard)
	}
}

func openBackend(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
		return sqlitekv.Open(ctx, cfg.DBPath())
	case config.BackendRedis:
		return rediskv.Dial(ctx, rediskv.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	default:
		return filekv.Open(cfg.DataDir)
	}
}

// seedList builds the default list from configured seed texts.
func seedList(seed []string, gen ids.Generator) model.List {
	l := model.List{}
	for _, text := range seed {
		l, _ = list.Add(l, text, gen)
	}
	return l
}
