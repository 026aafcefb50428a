package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/portal/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "portal: %v\n", err)
		return 1
	}
	return 0
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	prefsPath  string
	baseURL    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "portal",
		Short: "Browse the Rick and Morty API from the terminal",
		Long: `portal is a terminal browser for the Rick and Morty API.

Run without a subcommand to open the interactive browser. The subcommands
print plain tables and are suitable for scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				BaseURL:    flags.baseURL,
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/portal/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/portal/prefs.toml)")
	pf.StringVar(&flags.baseURL, "base-url", "", "API root, overrides config and PORTAL_BASE_URL")

	root.AddCommand(
		newListCmd(flags),
		newShowCmd(flags),
		newEpisodesCmd(flags),
		newLocationsCmd(flags),
		newStatsCmd(flags),
		newConfigCmd(flags),
	)
	return root
}
