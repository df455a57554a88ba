package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "reqvar",
	Short: "Resolve template variables in API requests.",
	Long: `reqvar is the variable resolution engine behind templated API
requests. It substitutes {{name}} placeholders from environment,
collection, and extracted scopes, generates dynamic values like
{{$guid}}, and extracts values from response bodies for chaining.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitInputError)
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(generatorsCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}
