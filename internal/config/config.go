package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/portal/internal/rickmorty"
)

// Config captures everything portal reads at startup.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	MaxBackoff    time.Duration
	LogFile       string
	LogLevel      string
}

const (
	defaultConfigPath = "~/.config/portal/config.toml"
	defaultEnvPath    = ".env"
	defaultLogFile    = "~/.local/state/portal/portal.log"
	defaultLogLevel   = "info"
)

// Environment variables that override file values.
const (
	EnvBaseURL       = "PORTAL_BASE_URL"
	EnvTimeoutMS     = "PORTAL_TIMEOUT_MS"
	EnvRetryAttempts = "PORTAL_RETRY_ATTEMPTS"
	EnvLogLevel      = "PORTAL_LOG_LEVEL"
)

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		BaseURL:       rickmorty.DefaultBaseURL,
		Timeout:       rickmorty.DefaultTimeout,
		RetryAttempts: rickmorty.DefaultRetryAttempts,
		MaxBackoff:    rickmorty.DefaultMaxBackoff,
		LogFile:       mustExpand(defaultLogFile),
		LogLevel:      defaultLogLevel,
	}
}

// Load reads the TOML config at path (or the default location), then applies
// overrides from a .env file in the working directory and from the process
// environment, in that order. A missing config file is not an error.
func Load(path string) (Config, error) {
	return load(path, defaultEnvPath, os.LookupEnv)
}

func load(path, envPath string, lookup func(string) (string, bool)) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := applyFile(&cfg, resolved); err != nil {
		return Config{}, err
	}

	dotenv, err := readDotenv(envPath)
	if err != nil {
		return Config{}, err
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(&cfg, env); err != nil {
		return Config{}, err
	}

	if cfg.RetryAttempts < 0 {
		return Config{}, fmt.Errorf("retry_attempts must be non-negative, got %d", cfg.RetryAttempts)
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL       string `toml:"base_url"`
		TimeoutMS     int64  `toml:"timeout_ms"`
		RetryAttempts *int   `toml:"retry_attempts"`
		MaxBackoffMS  int64  `toml:"max_backoff_ms"`
		LogFile       string `toml:"log_file"`
		LogLevel      string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if raw.TimeoutMS > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutMS) * time.Millisecond
	}
	if raw.RetryAttempts != nil {
		cfg.RetryAttempts = *raw.RetryAttempts
	}
	if raw.MaxBackoffMS > 0 {
		cfg.MaxBackoff = time.Duration(raw.MaxBackoffMS) * time.Millisecond
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return nil
}

func readDotenv(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

func applyEnv(cfg *Config, env func(string) (string, bool)) error {
	if v, ok := env(EnvBaseURL); ok && strings.TrimSpace(v) != "" {
		cfg.BaseURL = strings.TrimSpace(v)
	}
	if v, ok := env(EnvTimeoutMS); ok && strings.TrimSpace(v) != "" {
		ms, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || ms <= 0 {
			return fmt.Errorf("%s: invalid timeout %q", EnvTimeoutMS, v)
		}
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	}
	if v, ok := env(EnvRetryAttempts); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: invalid retry count %q", EnvRetryAttempts, v)
		}
		cfg.RetryAttempts = n
	}
	if v, ok := env(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// Client returns the API client settings carried by c.
func (c Config) Client() rickmorty.Config {
	return rickmorty.Config{
		BaseURL:       c.BaseURL,
		Timeout:       c.Timeout,
		RetryAttempts: c.RetryAttempts,
		MaxBackoff:    c.MaxBackoff,
	}
}

// ClientOptions returns the options that build a client from c. The retry
// count is passed explicitly so that retry_attempts = 0 disables retries.
func (c Config) ClientOptions() []rickmorty.Option {
	return []rickmorty.Option{
		rickmorty.WithConfig(c.Client()),
		rickmorty.WithRetryAttempts(c.RetryAttempts),
	}
}

// LogPath returns the log file location, falling back to the default.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return mustExpand(defaultLogFile)
	}
	return c.LogFile
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
