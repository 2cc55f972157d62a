// Package config loads the site's settings. Values come from built-in
// development defaults, then an optional site.toml, then the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned for values that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Content ContentConfig `toml:"content"`
	Storage StorageConfig `toml:"storage"`
	Admin   AdminConfig   `toml:"admin"`
	SMTP    SMTPConfig    `toml:"smtp"`
}

type ServerConfig struct {
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type ContentConfig struct {
	Dir string `toml:"dir"`
}

type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

type AdminConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type SMTPConfig struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
	User string `toml:"user"`
	Pass string `toml:"pass"`
	To   string `toml:"to"`
}

// Configured reports whether credentials for sending mail are present.
func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Pass != ""
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:     8080,
			LogLevel: "info",
		},
		Content: ContentConfig{Dir: "content"},
		Storage: StorageConfig{DBPath: "portfolio.db"},
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
	}
}

// Load builds the configuration. path names an optional TOML file; a missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PORT=%q", ErrInvalidConfig, v)
		}
		cfg.Server.Port = port
	}
	str("LOG_LEVEL", &cfg.Server.LogLevel)
	str("CONTENT_DIR", &cfg.Content.Dir)
	str("DB_PATH", &cfg.Storage.DBPath)
	str("ADMIN_USERNAME", &cfg.Admin.Username)
	str("ADMIN_PASSWORD", &cfg.Admin.Password)
	str("SMTP_HOST", &cfg.SMTP.Host)
	str("SMTP_PORT", &cfg.SMTP.Port)
	str("SMTP_USER", &cfg.SMTP.User)
	str("SMTP_PASS", &cfg.SMTP.Pass)
	str("TO_EMAIL", &cfg.SMTP.To)
	return nil
}

func (c Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if strings.TrimSpace(c.Content.Dir) == "" {
		return fmt.Errorf("%w: content dir is empty", ErrInvalidConfig)
	}
	return nil
}

// UsesDefaultAdmin reports whether the built-in development credentials are
// still in effect.
func (c Config) UsesDefaultAdmin() bool {
	d := defaults().Admin
	return c.Admin.Username == d.Username || c.Admin.Password == d.Password
}

// SlogLevel maps Server.LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
