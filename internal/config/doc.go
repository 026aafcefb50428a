// Package config loads portal's startup configuration.
//
// # Resolution Order
//
// Each setting is resolved from, highest precedence first:
//
//  1. The process environment (PORTAL_BASE_URL, PORTAL_TIMEOUT_MS,
//     PORTAL_RETRY_ATTEMPTS, PORTAL_LOG_LEVEL)
//  2. A .env file in the working directory, read with godotenv
//  3. The TOML file passed to Load, or ~/.config/portal/config.toml
//  4. Built-in defaults
//
// A missing config file or .env file is not an error. Blank values in the
// TOML file fall through to the defaults.
//
// # TOML Format
//
//	base_url = "https://rickandmortyapi.com/api"
//	timeout_ms = 10000
//	retry_attempts = 3
//	max_backoff_ms = 30000
//	log_file = "~/.local/state/portal/portal.log"
//	log_level = "info"
//
// Every field is optional. Tilde expansion is applied to log_file.
// retry_attempts may be set to 0 to disable retries; negative values are
// rejected.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return err
//	}
//	client, err := rickmorty.New(cfg.ClientOptions()...)
package config
