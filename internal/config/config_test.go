package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func isolated(t *testing.T) Sources {
	t.Helper()
	root := t.TempDir()
	return Sources{
		UserFile:  filepath.Join(root, "user", "config.toml"),
		WorkDir:   filepath.Join(root, "work"),
		LookupEnv: noEnv,
	}
}

func TestLoad_Defaults(t *testing.T) {
	src := isolated(t)
	cfg, err := Load(src, Overrides{})
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "quotes", cfg.Key)
	assert.Equal(t, "seq", cfg.IDScheme)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, src.WorkDir, cfg.DataDir)
	assert.Equal(t, filepath.Join(src.WorkDir, "todolist.db"), cfg.DBPath())
	assert.Empty(t, cfg.Seed)
}

func TestLoad_Precedence(t *testing.T) {
	src := isolated(t)
	writeFile(t, src.UserFile, `
backend = "sqlite"
key = "user-key"
theme = "neon"
seed = ["Quote 0", "Quote 1"]
`)
	writeFile(t, filepath.Join(src.WorkDir, "todolist.toml"), `
key = "project-key"
data_dir = "state"

[redis]
addr = "cache:6379"
db = 2
`)
	explicit := filepath.Join(t.TempDir(), "explicit.toml")
	writeFile(t, explicit, `id_scheme = "uuid"`)
	src.File = explicit

	writeFile(t, filepath.Join(src.WorkDir, ".env"), "TODOLIST_THEME=mono\nTODOLIST_LOG_LEVEL=debug\n")
	src.LookupEnv = envMap(map[string]string{"TODOLIST_LOG_LEVEL": "error", "TODOLIST_REDIS_DB": "5"})

	backend := "memory"
	cfg, err := Load(src, Overrides{Backend: &backend})
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Backend, "flag beats user file")
	assert.Equal(t, "project-key", cfg.Key, "project file beats user file")
	assert.Equal(t, "uuid", cfg.IDScheme, "explicit file applied")
	assert.Equal(t, "mono", cfg.Theme, ".env beats files")
	assert.Equal(t, "error", cfg.LogLevel, "process env beats .env")
	assert.Equal(t, []string{"Quote 0", "Quote 1"}, cfg.Seed)
	assert.Equal(t, filepath.Join(src.WorkDir, "state"), cfg.DataDir)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 5, cfg.Redis.DB)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	src := isolated(t)
	src.File = filepath.Join(t.TempDir(), "nope.toml")
	_, err := Load(src, Overrides{})
	assert.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	src := isolated(t)
	writeFile(t, filepath.Join(src.WorkDir, "todolist.toml"), "backend = ")
	_, err := Load(src, Overrides{})
	assert.Error(t, err)
}

func TestLoad_BadRedisDB(t *testing.T) {
	src := isolated(t)
	src.LookupEnv = envMap(map[string]string{"TODOLIST_REDIS_DB": "two"})
	_, err := Load(src, Overrides{})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var c Config
		setDefaults(&c)
		return c
	}
	require.NoError(t, func() error { c := base(); return c.Validate() }())

	tests := map[string]func(*Config){
		"backend":   func(c *Config) { c.Backend = "postgres" },
		"key":       func(c *Config) { c.Key = " " },
		"id scheme": func(c *Config) { c.IDScheme = "snowflake" },
		"theme":     func(c *Config) { c.Theme = "solarized" },
		"log level": func(c *Config) { c.LogLevel = "loud" },
		"redis":     func(c *Config) { c.Backend = BackendRedis; c.Redis.Addr = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := base()
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
