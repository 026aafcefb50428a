package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/portal/internal/rickmorty"
)

func newConfigCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying the config file, .env and
PORTAL_* environment variables, plus the retry schedule it implies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, root)
		},
	}
}

func runConfig(cmd *cobra.Command, root *rootFlags) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	delays := rickmorty.Delays(cfg.RetryAttempts, cfg.MaxBackoff)
	schedule := make([]string, len(delays))
	for i, d := range delays {
		schedule[i] = d.String()
	}
	retries := "nenhuma"
	if len(schedule) > 0 {
		retries = strings.Join(schedule, ", ")
	}

	rows := [][]string{
		{"base_url", cfg.BaseURL},
		{"timeout", cfg.Timeout.String()},
		{"retry_attempts", strconv.Itoa(cfg.RetryAttempts)},
		{"max_backoff", cfg.MaxBackoff.String()},
		{"retry_delays", retries},
		{"log_file", cfg.LogPath()},
		{"log_level", cfg.LogLevel},
	}
	return renderTable(cmd.OutOrStdout(), []string{"Chave", "Valor"}, rows)
}
