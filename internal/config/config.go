// Package config resolves runtime settings from defaults, TOML files, .env,
// the environment and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todolist/internal/ids"
	"github.com/idilsaglam/todolist/internal/logging"
)

// Backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Defaults.
const (
	DefaultBackend  = BackendFile
	DefaultDataDir  = "."
	DefaultKey      = "quotes"
	DefaultIDScheme = ids.SchemeSequential
	DefaultTheme    = "classic"
	DefaultLogLevel = "warn"
	DefaultDBFile   = "todolist.db"
)

// Config holds all settings.
type Config struct {
	Backend  string      `toml:"backend"`
	DataDir  string      `toml:"data_dir"`
	Key      string      `toml:"key"`
	IDScheme string      `toml:"id_scheme"`
	Seed     []string    `toml:"seed"`
	Theme    string      `toml:"theme"`
	LogLevel string      `toml:"log_level"`
	LogFile  string      `toml:"log_file"`
	Redis    RedisConfig `toml:"redis"`
}

// RedisConfig holds settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

func setDefaults(cfg *Config) {
	cfg.Backend = DefaultBackend
	cfg.DataDir = DefaultDataDir
	cfg.Key = DefaultKey
	cfg.IDScheme = DefaultIDScheme
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.Prefix = "todolist:"
}

// Validate rejects settings no component can honor.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (want file, sqlite, redis or memory)", c.Backend)
	}
	if strings.TrimSpace(c.Key) == "" {
		return fmt.Errorf("key must not be empty")
	}
	if _, err := ids.ByScheme(c.IDScheme); err != nil {
		return err
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q (want classic, neon or mono)", c.Theme)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Backend == BackendRedis && strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("redis backend needs redis.addr")
	}
	return nil
}
