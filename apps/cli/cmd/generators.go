package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/reqvar/reqvar/packages/dynamic"
)

var categoryFlag string

var generatorsCmd = &cobra.Command{
	Use:   "generators",
	Short: "List the dynamic variables by category",
	Long: `List every dynamic variable the engine can generate, grouped by
category, with a freshly generated sample value for each.

Examples:
  reqvar generators
  reqvar generators --category network`,
	RunE: generatorsCommand,
}

func init() {
	generatorsCmd.Flags().StringVar(&categoryFlag, "category", "", "Only show one category")
	generatorsCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

func generatorsCommand(cmd *cobra.Command, args []string) error {
	if noColorFlag {
		color.NoColor = true
	}
	registry := dynamic.NewRegistry()
	heading := color.New(color.Bold, color.FgCyan)
	name := color.New(color.FgGreen)

	shown := 0
	for _, c := range dynamic.Categories() {
		if categoryFlag != "" && categoryFlag != string(c) {
			continue
		}
		gens := registry.ByCategory(c)
		if len(gens) == 0 {
			continue
		}
		heading.Fprintf(cmd.OutOrStdout(), "%s\n", c)
		for _, g := range gens {
			name.Fprintf(cmd.OutOrStdout(), "  {{$%s}}", g.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s (e.g. %s)\n", g.Description, g.Value())
			shown++
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if shown == 0 {
		return fmt.Errorf("unknown category %q (have: %v)", categoryFlag, dynamic.Categories())
	}
	return nil
}
