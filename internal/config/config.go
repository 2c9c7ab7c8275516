package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/field"
)

type Config struct {
	Mode string `json:"mode"`
	Addr string `json:"addr"`
	// MineCount of 0 makes the terminal ask the player.
	MineCount int `json:"mine_count"`
	// Seed of 0 picks a random seed per game.
	Seed        uint64   `json:"seed"`
	LogFile     string   `json:"log_file"`
	LogLevel    string   `json:"log_level"`
	IdleTimeout Duration `json:"idle_timeout"`
}

func Default() Config {
	return Config{
		Mode:        "production",
		Addr:        ":8080",
		LogLevel:    "info",
		IdleTimeout: Duration{5 * time.Minute},
	}
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// ApplyEnv overrides fields with the environment variables that are set.
func (c *Config) ApplyEnv() error {
	if development, ok := os.LookupEnv("DEVELOPMENT"); ok {
		if development != "0" {
			c.Mode = "development"
		} else {
			c.Mode = "production"
		}
	}

	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		c.Addr = addr
	}

	if countStr, ok := os.LookupEnv("MINES_COUNT"); ok {
		count, err := strconv.Atoi(countStr)
		if err != nil {
			return fmt.Errorf("unable to convert MINES_COUNT to int: %w", err)
		}
		c.MineCount = count
	}

	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to convert MINES_SEED to uint: %w", err)
		}
		c.Seed = seed
	}

	if logFile, ok := os.LookupEnv("LOG_FILE"); ok {
		c.LogFile = logFile
	}

	if logLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = logLevel
	}

	if timeoutStr, ok := os.LookupEnv("WS_IDLE_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return fmt.Errorf("unable to parse WS_IDLE_TIMEOUT: %w", err)
		}
		c.IdleTimeout = Duration{timeout}
	}

	return nil
}

func (c Config) Validate() error {
	if c.MineCount != 0 && (c.MineCount < field.MinMines || c.MineCount > field.MaxMines) {
		return field.InvalidMineCountError{Count: c.MineCount}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.IdleTimeout.Duration < 0 {
		return fmt.Errorf("idle timeout must not be negative, have %s", c.IdleTimeout)
	}
	return nil
}

// Load reads the optional JSON file at path, then the environment.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		if err := ReadConfig(path, &config); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":         c.Mode,
		"addr":         c.Addr,
		"mine_count":   c.MineCount,
		"seed":         c.Seed,
		"log_file":     c.LogFile,
		"log_level":    c.LogLevel,
		"idle_timeout": c.IdleTimeout.Duration.String(),
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Level is the configured log level, forced to debug in development.
func (c Config) Level() (logrus.Level, error) {
	if c.Development() {
		return logrus.DebugLevel, nil
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}
