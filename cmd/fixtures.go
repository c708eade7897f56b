package cmd

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/zhubert/saasboard/internal/fixtures"
	"github.com/zhubert/saasboard/internal/projects"
)

var (
	fixturesFilter string
	fixturesSort   string
	fixturesDesc   bool
	fixturesLocale string
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Print the projects table without starting the TUI",
	Long: `Prints the fixture projects through the same filter and sort engine the
dashboard uses. Handy for checking a --data file before launching.`,
	Args: cobra.NoArgs,
	RunE: runFixtures,
}

func init() {
	fixturesCmd.Flags().StringVar(&fixturesFilter, "filter", "", "Case-insensitive match against name, owner or status")
	fixturesCmd.Flags().StringVar(&fixturesSort, "sort", "name", "Column to sort by: name, status, progress or owner")
	fixturesCmd.Flags().BoolVar(&fixturesDesc, "desc", false, "Sort descending")
	fixturesCmd.Flags().StringVar(&fixturesLocale, "locale", "en", "Locale for sorting text columns")
	rootCmd.AddCommand(fixturesCmd)
}

func runFixtures(cmd *cobra.Command, args []string) error {
	data, err := fixtures.Load(dataPath)
	if err != nil {
		return fmt.Errorf("error loading fixtures: %w", err)
	}

	field, err := projects.ParseField(fixturesSort)
	if err != nil {
		return err
	}
	spec := projects.SortSpec{Field: field, Direction: projects.Ascending}
	if fixturesDesc {
		spec.Direction = projects.Descending
	}

	engine := projects.NewEngine(data.Projects, fixturesLocale)
	engine.SetQuery(fixturesFilter)
	engine.SetSort(spec)
	return printProjects(cmd.OutOrStdout(), engine)
}

// printProjects writes the engine's current view as a table.
func printProjects(w io.Writer, engine *projects.Engine) error {
	if engine.Empty() {
		_, err := fmt.Fprintln(w, "No projects found matching your search.")
		return err
	}

	spec := engine.Sort()
	headers := make([]string, 0, len(projects.Fields()))
	for _, f := range projects.Fields() {
		h := f.Title()
		if f == spec.Field {
			h += " " + spec.Direction.Arrow()
		}
		headers = append(headers, h)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, p := range engine.Rows() {
		t.Row(p.Name, string(p.Status), strconv.Itoa(p.Progress)+"%", p.Owner)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}
