package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/portal/internal/characters"
	"github.com/five82/portal/internal/format"
	"github.com/five82/portal/internal/rickmorty"
)

type listFlags struct {
	name    string
	status  string
	species string
	typ     string
	gender  string
	page    int
	sort    bool
}

func newListCmd(root *rootFlags) *cobra.Command {
	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of characters",
		Long: `List one page of characters, optionally filtered.

Examples:
  portal list --name rick
  portal list --status dead --page 2 --sort`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, root, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.name, "name", "", "name substring")
	f.StringVar(&flags.status, "status", "", "alive, dead or unknown")
	f.StringVar(&flags.species, "species", "", "species")
	f.StringVar(&flags.typ, "type", "", "character type")
	f.StringVar(&flags.gender, "gender", "", "female, male, genderless or unknown")
	f.IntVar(&flags.page, "page", 1, "page number")
	f.BoolVar(&flags.sort, "sort", false, "sort the page by name")
	return cmd
}

func runList(cmd *cobra.Command, root *rootFlags, flags *listFlags) error {
	status, err := parseStatus(flags.status)
	if err != nil {
		return err
	}
	gender, err := parseGender(flags.gender)
	if err != nil {
		return err
	}
	page := max(flags.page, 1)

	client, closeLog, err := root.newClient()
	if err != nil {
		return err
	}
	defer closeLog()

	filter := rickmorty.CharacterFilter{
		Name:    flags.name,
		Status:  status,
		Species: flags.species,
		Type:    flags.typ,
		Gender:  gender,
	}
	result, err := client.ListCharacters(cmd.Context(), filter, page)
	if errors.Is(err, rickmorty.ErrNotFound) {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "Nenhum personagem encontrado")
		return err
	}
	if err != nil {
		return fmt.Errorf("list characters: %w", err)
	}

	records := result.Results
	if flags.sort {
		records = characters.SortByName(records)
	}
	rows := make([][]string, 0, len(records))
	for _, c := range records {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Name,
			format.Status(string(c.Status)),
			format.Species(c.Species),
			format.Gender(string(c.Gender)),
			strconv.Itoa(len(c.Episode)),
		})
	}
	out := cmd.OutOrStdout()
	if err := renderTable(out, []string{"ID", "Nome", "Status", "Espécie", "Gênero", "Episódios"}, rows); err != nil {
		return err
	}
	return renderPageFooter(out, result.Info, page)
}
