package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/portal/internal/format"
	"github.com/five82/portal/internal/rickmorty"
)

type episodeFlags struct {
	name string
	code string
	page int
}

func newEpisodesCmd(root *rootFlags) *cobra.Command {
	flags := &episodeFlags{}
	cmd := &cobra.Command{
		Use:   "episodes",
		Short: "List one page of episodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEpisodes(cmd, root, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.name, "name", "", "title substring")
	f.StringVar(&flags.code, "code", "", "episode code prefix, e.g. S01")
	f.IntVar(&flags.page, "page", 1, "page number")
	return cmd
}

func runEpisodes(cmd *cobra.Command, root *rootFlags, flags *episodeFlags) error {
	page := max(flags.page, 1)
	client, closeLog, err := root.newClient()
	if err != nil {
		return err
	}
	defer closeLog()

	result, err := client.ListEpisodes(cmd.Context(), rickmorty.EpisodeFilter{Name: flags.name, Code: flags.code}, page)
	if errors.Is(err, rickmorty.ErrNotFound) {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "Nenhum episódio encontrado")
		return err
	}
	if err != nil {
		return fmt.Errorf("list episodes: %w", err)
	}

	rows := make([][]string, 0, len(result.Results))
	for _, e := range result.Results {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			format.EpisodeLabel(e.Code),
			e.Name,
			e.AirDate,
			strconv.Itoa(len(e.Characters)),
		})
	}
	out := cmd.OutOrStdout()
	if err := renderTable(out, []string{"ID", "Episódio", "Título", "Exibição", "Personagens"}, rows); err != nil {
		return err
	}
	return renderPageFooter(out, result.Info, page)
}

type locationFlags struct {
	name      string
	typ       string
	dimension string
	page      int
}

func newLocationsCmd(root *rootFlags) *cobra.Command {
	flags := &locationFlags{}
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List one page of locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLocations(cmd, root, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.name, "name", "", "name substring")
	f.StringVar(&flags.typ, "type", "", "location type")
	f.StringVar(&flags.dimension, "dimension", "", "dimension")
	f.IntVar(&flags.page, "page", 1, "page number")
	return cmd
}

func runLocations(cmd *cobra.Command, root *rootFlags, flags *locationFlags) error {
	page := max(flags.page, 1)
	client, closeLog, err := root.newClient()
	if err != nil {
		return err
	}
	defer closeLog()

	filter := rickmorty.LocationFilter{Name: flags.name, Type: flags.typ, Dimension: flags.dimension}
	result, err := client.ListLocations(cmd.Context(), filter, page)
	if errors.Is(err, rickmorty.ErrNotFound) {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "Nenhum local encontrado")
		return err
	}
	if err != nil {
		return fmt.Errorf("list locations: %w", err)
	}

	rows := make([][]string, 0, len(result.Results))
	for _, l := range result.Results {
		rows = append(rows, []string{
			strconv.Itoa(l.ID),
			l.Name,
			orDash(l.Type),
			orDash(l.Dimension),
			strconv.Itoa(len(l.Residents)),
		})
	}
	out := cmd.OutOrStdout()
	if err := renderTable(out, []string{"ID", "Nome", "Tipo", "Dimensão", "Residentes"}, rows); err != nil {
		return err
	}
	return renderPageFooter(out, result.Info, page)
}

func orDash(s string) string {
	if s == "" || s == "unknown" {
		return "—"
	}
	return s
}
