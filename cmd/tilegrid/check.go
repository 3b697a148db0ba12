package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/younwookim/tilegrid/internal/application/system"
	"github.com/younwookim/tilegrid/internal/domain/entity"
)

var flagCheckLevel bool

var checkCmd = &cobra.Command{
	Use:   "check <map>",
	Short: "Validate a map and print a preview",
	Long: `Parses a map file and reports its size and spawn cell, followed by a
colored preview using the configured palette. Exits non-zero if the map
is invalid.

Examples:
  tilegrid check ./maps/cave.map
  tilegrid check --level demo`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagCheckLevel, "level", false, "Treat the argument as a built-in map name")
}

var (
	checkTitleStyle = lipgloss.NewStyle().Bold(true)
	checkLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	palette, err := cfg.Palette.ToPalette()
	if err != nil {
		return err
	}

	src := mapSource{path: args[0]}
	if flagCheckLevel {
		src = mapSource{level: args[0]}
	}

	m, err := loadMap(cmd.Context(), src, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, checkTitleStyle.Render(src.String()+" OK"))
	fmt.Fprintf(out, "%s %dx%d\n", checkLabelStyle.Render("size "), m.Playground.Width(), m.Playground.Height())
	fmt.Fprintf(out, "%s %s\n", checkLabelStyle.Render("spawn"), m.Spawn)
	fmt.Fprintln(out)
	fmt.Fprint(out, renderPreview(m, palette))

	return nil
}

// renderPreview draws each tile as two colored cells; the spawn shows the
// player color
func renderPreview(m *system.MapResult, palette entity.Palette) string {
	styles := map[entity.Color]lipgloss.Style{}
	cell := func(c entity.Color) string {
		st, ok := styles[c]
		if !ok {
			st = lipgloss.NewStyle().Background(lipgloss.Color(c.String()))
			styles[c] = st
		}
		return st.Render("  ")
	}

	var b strings.Builder
	pg := m.Playground
	for row := 0; row < pg.Height(); row++ {
		for col := 0; col < pg.Width(); col++ {
			if (entity.GridPos{Col: col, Row: row}) == m.Spawn {
				b.WriteString(cell(palette.Player))
				continue
			}
			tile, _ := pg.TileAt(col, row)
			if c, ok := tile.Paint(); ok {
				b.WriteString(cell(c))
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
