package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List built-in maps",
	Long:  `Shows the maps embedded in the binary, usable with --level.`,
	Args:  cobra.NoArgs,
	RunE:  runMaps,
}

func runMaps(cmd *cobra.Command, args []string) error {
	loader := builtinLoader()
	names, err := loader.ListMaps()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No maps available.")
		return nil
	}

	fmt.Fprintln(out, "Built-in maps:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tilegrid play --level <name>' to play one.")
	return nil
}
