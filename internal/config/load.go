package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Sources tells Load where to look. Zero values mean "discover".
type Sources struct {
	// UserFile overrides the per-user config path.
	UserFile string
	// WorkDir holds todolist.toml and .env; defaults to the working directory.
	WorkDir string
	// File is an explicit --config path. Unlike discovered files it must exist.
	File string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Overrides carries flag values; nil fields were not set on the command line.
type Overrides struct {
	Backend  *string
	DataDir  *string
	Key      *string
	IDScheme *string
	Theme    *string
	LogLevel *string
	LogFile  *string
}

// Load resolves configuration in priority order:
// 1. Defaults
// 2. User config file (~/.config/todolist/config.toml)
// 3. Project config file (todolist.toml in the working directory)
// 4. Explicit config file
// 5. .env in the working directory
// 6. Environment variables
// 7. Flags
func Load(src Sources, ov Overrides) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	workDir := src.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		workDir = wd
	}

	userFile := src.UserFile
	if userFile == "" {
		userFile = findUserConfigFile()
	}
	for _, p := range []string{userFile, filepath.Join(workDir, "todolist.toml")} {
		if p == "" {
			continue
		}
		if err := loadConfigFile(cfg, p, false); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", p, err)
		}
	}
	if src.File != "" {
		if err := loadConfigFile(cfg, src.File, true); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", src.File, err)
		}
	}

	dotenv, err := readDotEnv(filepath.Join(workDir, ".env"))
	if err != nil {
		return nil, err
	}
	lookup := src.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := loadFromEnv(cfg, func(k string) (string, bool) {
		if v, ok := lookup(k); ok {
			return v, true
		}
		v, ok := dotenv[k]
		return v, ok
	}); err != nil {
		return nil, err
	}

	applyOverrides(cfg, ov)
	finalizeConfig(cfg, workDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todolist", "config.toml")
}

// loadConfigFile decodes TOML from path over cfg. A missing file is skipped
// unless required is set.
func loadConfigFile(cfg *Config, path string, required bool) error {
	_, err := toml.DecodeFile(path, cfg)
	if err != nil && !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func readDotEnv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return env, nil
}

func loadFromEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("TODOLIST_BACKEND", &cfg.Backend)
	str("TODOLIST_DATA_DIR", &cfg.DataDir)
	str("TODOLIST_KEY", &cfg.Key)
	str("TODOLIST_ID_SCHEME", &cfg.IDScheme)
	str("TODOLIST_THEME", &cfg.Theme)
	str("TODOLIST_LOG_LEVEL", &cfg.LogLevel)
	str("TODOLIST_LOG_FILE", &cfg.LogFile)
	str("TODOLIST_REDIS_ADDR", &cfg.Redis.Addr)
	str("TODOLIST_REDIS_PASSWORD", &cfg.Redis.Password)
	str("TODOLIST_REDIS_PREFIX", &cfg.Redis.Prefix)

	if v, ok := lookup("TODOLIST_REDIS_DB"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TODOLIST_REDIS_DB: not a number: %q", v)
		}
		cfg.Redis.DB = n
	}
	return nil
}

func applyOverrides(cfg *Config, ov Overrides) {
	set := func(src *string, dst *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(ov.Backend, &cfg.Backend)
	set(ov.DataDir, &cfg.DataDir)
	set(ov.Key, &cfg.Key)
	set(ov.IDScheme, &cfg.IDScheme)
	set(ov.Theme, &cfg.Theme)
	set(ov.LogLevel, &cfg.LogLevel)
	set(ov.LogFile, &cfg.LogFile)
}

func finalizeConfig(cfg *Config, workDir string) {
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.IDScheme = strings.ToLower(strings.TrimSpace(cfg.IDScheme))
	cfg.DataDir = absPath(expandPath(cfg.DataDir), workDir)
	if cfg.LogFile != "" {
		cfg.LogFile = absPath(expandPath(cfg.LogFile), workDir)
	}
}

// DBPath is the sqlite file for the sqlite backend.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DefaultDBFile)
}

func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

func absPath(p, base string) string {
	if p == "" {
		return base
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
