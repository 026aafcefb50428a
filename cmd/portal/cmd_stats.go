package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/portal/internal/characters"
	"github.com/five82/portal/internal/format"
	"github.com/five82/portal/internal/rickmorty"
)

type statsFlags struct {
	name   string
	status string
	pages  int
}

func newStatsCmd(root *rootFlags) *cobra.Command {
	flags := &statsFlags{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise characters by status and species",
		Long: `Fetch up to --pages pages of characters and print status counts
followed by one row per species.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, root, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.name, "name", "", "name substring")
	f.StringVar(&flags.status, "status", "", "alive, dead or unknown")
	f.IntVar(&flags.pages, "pages", 1, "number of pages to fetch")
	return cmd
}

func runStats(cmd *cobra.Command, root *rootFlags, flags *statsFlags) error {
	status, err := parseStatus(flags.status)
	if err != nil {
		return err
	}
	client, closeLog, err := root.newClient()
	if err != nil {
		return err
	}
	defer closeLog()

	filter := rickmorty.CharacterFilter{Name: flags.name, Status: status}
	var records []rickmorty.Character
	for page := 1; page <= max(flags.pages, 1); page++ {
		result, err := client.ListCharacters(cmd.Context(), filter, page)
		if errors.Is(err, rickmorty.ErrNotFound) {
			break
		}
		if err != nil {
			return fmt.Errorf("list characters page %d: %w", page, err)
		}
		records = append(records, result.Results...)
		if !result.Info.HasNext() {
			break
		}
	}

	stats := characters.ComputeStats(records)
	out := cmd.OutOrStdout()
	if err := renderTable(out, []string{"Total", "Vivos", "Mortos", "Desconhecido"}, [][]string{{
		strconv.Itoa(stats.Total),
		strconv.Itoa(stats.Alive),
		strconv.Itoa(stats.Dead),
		strconv.Itoa(stats.Unknown),
	}}); err != nil {
		return err
	}
	if stats.Total == 0 {
		return nil
	}

	groups := characters.GroupBySpecies(records)
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		sample := make([]string, 0, 3)
		for _, c := range g.Characters[:min(len(g.Characters), 3)] {
			sample = append(sample, c.Name)
		}
		rows = append(rows, []string{
			format.Species(g.Species),
			strconv.Itoa(len(g.Characters)),
			format.Truncate(strings.Join(sample, ", "), 48),
		})
	}
	return renderTable(out, []string{"Espécie", "Personagens", "Exemplos"}, rows)
}
