package main

import (
	"fmt"
	"strings"

	"github.com/five82/portal/internal/config"
	"github.com/five82/portal/internal/logging"
	"github.com/five82/portal/internal/rickmorty"
)

// loadConfig resolves the effective configuration for a subcommand.
func (f *rootFlags) loadConfig() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(f.baseURL); v != "" {
		cfg.BaseURL = v
	}
	return cfg, nil
}

// newClient builds an API client for one-shot commands. Their logs go to the
// configured log file so tables on stdout stay clean.
func (f *rootFlags) newClient() (*rickmorty.Client, func() error, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, closeLog, err := logging.Open(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	client, err := rickmorty.New(append(cfg.ClientOptions(), rickmorty.WithLogger(logger))...)
	if err != nil {
		_ = closeLog()
		return nil, nil, fmt.Errorf("init api client: %w", err)
	}
	return client, closeLog, nil
}

func parseStatus(raw string) (rickmorty.Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return "", nil
	case "alive":
		return rickmorty.StatusAlive, nil
	case "dead":
		return rickmorty.StatusDead, nil
	case "unknown":
		return rickmorty.StatusUnknown, nil
	}
	return "", fmt.Errorf("invalid status %q (want alive, dead or unknown)", raw)
}

func parseGender(raw string) (rickmorty.Gender, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", nil
	case "female":
		return rickmorty.GenderFemale, nil
	case "male":
		return rickmorty.GenderMale, nil
	case "genderless":
		return rickmorty.GenderGenderless, nil
	case "unknown":
		return rickmorty.GenderUnknown, nil
	}
	return "", fmt.Errorf("invalid gender %q (want female, male, genderless or unknown)", raw)
}
