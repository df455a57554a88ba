package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reqvar/reqvar/packages/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract <json-file> <path>",
	Short: "Pull a value out of a JSON body by path expression",
	Long: `Extract the value addressed by a path expression from a JSON file,
exactly as response chaining does. Prints the extracted string on success.

Examples:
  reqvar extract response.json data.id
  reqvar extract response.json data.items[0].id`,
	Args: cobra.ExactArgs(2),
	RunE: extractCommand,
}

func extractCommand(cmd *cobra.Command, args []string) error {
	body, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read body file: %w", err)
	}

	value, err := extract.Extract(body, args[1])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
