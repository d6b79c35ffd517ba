package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads a .env file once if present. Every value still falls back to the
// process environment, so the file is optional for a local app.
func New() *Config {
	once.Do(func() {
		if err := godotenv.Load("./.env"); err != nil && !os.IsNotExist(err) {
			slog.Warn("loading .env failed", slog.String("error", err.Error()))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DataDir resolves the directory holding the snapshot database and log file,
// creating it if needed. Defaults to ~/.shift-protocol.
func (c *Config) DataDir() string {
	dir := c.GetString("SHIFT_DATA_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".shift-protocol")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Warn("creating data dir failed", slog.String("dir", dir), slog.String("error", err.Error()))
	}
	return dir
}

// LogFile resolves the app log path. The TUI owns the terminal, so logs go to a file.
func (c *Config) LogFile() string {
	return c.GetStringOr("SHIFT_LOG_FILE", filepath.Join(c.DataDir(), "shift-protocol.log"))
}
