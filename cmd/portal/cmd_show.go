package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/portal/internal/browse"
	"github.com/five82/portal/internal/format"
	"github.com/five82/portal/internal/rickmorty"
)

func newShowCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one character with origin, location and episodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, root, args)
		},
	}
}

func runShow(cmd *cobra.Command, root *rootFlags, args []string) error {
	id, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid character id %q", args[0])
	}

	client, closeLog, err := root.newClient()
	if err != nil {
		return err
	}
	defer closeLog()

	details, err := browse.LoadDetails(cmd.Context(), client, id)
	if errors.Is(err, rickmorty.ErrNotFound) {
		return fmt.Errorf("personagem %d não encontrado", id)
	}
	if err != nil {
		return err
	}

	c := details.Character
	rows := [][]string{
		{"Nome", c.Name},
		{"Status", format.Status(string(c.Status))},
		{"Espécie", format.Species(c.Species)},
		{"Gênero", format.Gender(string(c.Gender))},
		{"Origem", placeLabel(c.Origin, details.Origin)},
		{"Local", placeLabel(c.Location, details.Location)},
		{"Criado em", format.DateLong(c.Created)},
	}
	if c.Type != "" {
		rows = append(rows, []string{"Tipo", c.Type})
	}
	out := cmd.OutOrStdout()
	if err := renderTable(out, []string{"Campo", "Valor"}, rows); err != nil {
		return err
	}
	if len(details.Episodes) == 0 {
		return nil
	}

	episodes := make([][]string, 0, len(details.Episodes))
	for _, e := range details.Episodes {
		episodes = append(episodes, []string{format.EpisodeLabel(e.Code), e.Name, e.AirDate})
	}
	return renderTable(out, []string{"Episódio", "Título", "Exibição"}, episodes)
}

func placeLabel(ref rickmorty.Ref, loc *rickmorty.Location) string {
	if loc == nil {
		if ref.Name == "" || ref.Name == "unknown" {
			return "Desconhecido"
		}
		return ref.Name
	}
	if loc.Dimension == "" || loc.Dimension == "unknown" {
		return loc.Name
	}
	return fmt.Sprintf("%s (%s)", loc.Name, loc.Dimension)
}
