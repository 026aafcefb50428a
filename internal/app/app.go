package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/five82/portal/internal/browse"
	"github.com/five82/portal/internal/config"
	"github.com/five82/portal/internal/logging"
	"github.com/five82/portal/internal/prefs"
	"github.com/five82/portal/internal/rickmorty"
	"github.com/five82/portal/internal/state"
	"github.com/five82/portal/internal/ui"
)

const recoverEvery = 2 * time.Second

// Options configure the portal application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/portal/prefs.toml
	BaseURL    string // overrides the configured API root when set
}

// Run boots the portal TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = closeLog() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	client, err := rickmorty.New(append(cfg.ClientOptions(), rickmorty.WithLogger(logger))...)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	logger.Info("portal starting", "base_url", cfg.BaseURL, "retries", cfg.RetryAttempts, "timeout", cfg.Timeout)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loader := browse.NewLoader(client, &state.Store{}, logger)
	loader.StartRecovery(ctx, recoverEvery)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Loader:    loader,
		Logger:    logger,
		LogPath:   cfg.LogPath(),
		ThemeName: userPrefs.Theme,
		Status:    rickmorty.Status(userPrefs.Status),
		PrefsPath: prefsPath,
	})
	logger.Info("portal stopped", "error", err)
	return err
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	return cfg, nil
}
