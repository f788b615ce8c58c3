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

// DevDatabaseURL is used when DEV_MODE=true.
const DevDatabaseURL = "file:./local.db?cache=shared&mode=rwc"

type Config struct {
	DB      DBConfig      `toml:"database"`
	Logging LoggingConfig `toml:"logging"`
	Session SessionConfig `toml:"session"`
}

type DBConfig struct {
	URL string `toml:"url"` // Turso/libsql URL or a local sqlite path.
}

type LoggingConfig struct {
	Level    string `toml:"level"`
	File     string `toml:"file"`
	ToStderr bool   `toml:"to_stderr"`
	JSON     bool   `toml:"json"`
}

type SessionConfig struct {
	FinishPolicy   string `toml:"finish_policy"`
	DefaultProgram string `toml:"default_program"`
	DefaultBlock   string `toml:"default_block"`
	Units          string `toml:"units"`
}

// Returns ~/.config/liftquest.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "liftquest"), nil
}

// Returns the path to the config file.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func defaults(dir string) *Config {
	return &Config{
		DB: DBConfig{URL: "file:" + filepath.Join(dir, "liftquest.db")},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Session: SessionConfig{
			FinishPolicy: "optimistic",
			Units:        "kg",
		},
	}
}

// Load reads the TOML config at path (a missing file means defaults), then .env, then
// environment overrides:
//
//	LIFTQUEST_DB_URL, TURSO_DATABASE_URL, DEV_MODE,
//	LIFTQUEST_LOG_LEVEL, LIFTQUEST_LOG_FILE, LIFTQUEST_LOG_STDERR,
//	LIFTQUEST_FINISH_POLICY
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}
	}

	cfg := defaults(filepath.Dir(path))

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// .env is optional.
	_ = godotenv.Load()

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TURSO_DATABASE_URL"); v != "" {
		cfg.DB.URL = v
	}
	if v := os.Getenv("LIFTQUEST_DB_URL"); v != "" {
		cfg.DB.URL = v
	}
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.URL = DevDatabaseURL
	}
	if v := os.Getenv("LIFTQUEST_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LIFTQUEST_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("LIFTQUEST_LOG_STDERR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Logging.ToStderr = b
		}
	}
	if v := os.Getenv("LIFTQUEST_FINISH_POLICY"); v != "" {
		cfg.Session.FinishPolicy = v
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DB.URL) == "" {
		return fmt.Errorf("database.url is required")
	}
	switch strings.ToLower(c.Session.FinishPolicy) {
	case "optimistic", "blocking":
	default:
		return fmt.Errorf("session.finish_policy must be optimistic or blocking, got %q", c.Session.FinishPolicy)
	}
	switch strings.ToLower(c.Session.Units) {
	case "kg", "lbs":
	default:
		return fmt.Errorf("session.units must be kg or lbs, got %q", c.Session.Units)
	}
	return nil
}
