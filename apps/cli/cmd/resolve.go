package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/reqvar/reqvar/packages/dynamic"
	"github.com/reqvar/reqvar/packages/resolver"
	"github.com/reqvar/reqvar/packages/scope"
	"github.com/reqvar/reqvar/packages/vars"
)

// watchDebounceDelay coalesces the bursts of write events editors produce.
const watchDebounceDelay = 300 * time.Millisecond

var (
	varsFlag    string
	envFlag     string
	dotenvFlag  string
	watchFlag   bool
	noColorFlag bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <template-file>",
	Short: "Substitute placeholders in a template file",
	Long: `Substitute every {{name}} and {{$generator}} placeholder in a template
file and print the result. Unresolved names and resolution diagnostics go to
stderr; the exit code is non-zero when anything failed to resolve.

Examples:
  reqvar resolve request.http --vars vars.yaml --env staging
  reqvar resolve body.json --vars vars.yaml --dotenv .env.local
  reqvar resolve request.http --vars vars.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: resolveCommand,
}

func init() {
	resolveCmd.Flags().StringVar(&varsFlag, "vars", "", "YAML variable file with collection and environments blocks")
	resolveCmd.Flags().StringVarP(&envFlag, "env", "e", "", "Environment to activate from the variable file")
	resolveCmd.Flags().StringVar(&dotenvFlag, "dotenv", "", ".env file overlaying the active environment")
	resolveCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-resolve when the template or variable files change")
	resolveCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

func resolveCommand(cmd *cobra.Command, args []string) error {
	if noColorFlag {
		color.NoColor = true
	}
	templatePath := args[0]
	registry := dynamic.NewRegistry()

	resolveOnce := func() (resolver.Result, error) {
		store, err := buildStore()
		if err != nil {
			return resolver.Result{}, err
		}
		text, err := os.ReadFile(templatePath)
		if err != nil {
			return resolver.Result{}, fmt.Errorf("cannot read template: %w", err)
		}
		return resolver.Substitute(string(text), store, registry), nil
	}

	result, err := resolveOnce()
	if err != nil {
		return err
	}
	report(cmd.OutOrStdout(), cmd.ErrOrStderr(), result)

	if !watchFlag {
		if !result.Clean() {
			os.Exit(ExitUnresolved)
		}
		return nil
	}
	return watchAndResolve(cmd, templatePath, resolveOnce)
}

// buildStore assembles the three-scope store from the CLI flags. It re-reads
// the files each time so watch mode picks up variable edits, not just
// template edits.
func buildStore() (*scope.Store, error) {
	var environment, collection *scope.Scope

	if varsFlag != "" {
		f, err := vars.Load(varsFlag)
		if err != nil {
			return nil, err
		}
		collection = f.CollectionScope()
		environment, err = f.EnvironmentScope(envFlag)
		if err != nil {
			return nil, err
		}
	} else if envFlag != "" {
		return nil, fmt.Errorf("--env requires --vars")
	}

	if dotenvFlag != "" {
		if environment == nil {
			environment = scope.NewScope()
		}
		if err := vars.OverlayDotEnv(environment, dotenvFlag); err != nil {
			return nil, err
		}
	}

	return scope.NewStore(environment, collection), nil
}

func report(out, errOut io.Writer, result resolver.Result) {
	fmt.Fprint(out, result.Text)

	if len(result.Unresolved) > 0 {
		yellow := color.New(color.FgYellow)
		yellow.Fprintf(errOut, "\nwarning: %d unresolved variable(s):\n", len(result.Unresolved))
		for _, name := range result.Unresolved {
			fmt.Fprintf(errOut, "  - {{%s}}\n", name)
		}
	}
	if len(result.Diagnostics) > 0 {
		red := color.New(color.FgRed)
		for _, d := range result.Diagnostics {
			red.Fprintf(errOut, "error: %s\n", d)
		}
	}
}

func watchAndResolve(cmd *cobra.Command, templatePath string, resolveOnce func() (resolver.Result, error)) error {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "watch",
	})

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	inputs := []string{templatePath, varsFlag, dotenvFlag}

	// Watch directories rather than files: editors replace files on save,
	// which drops a direct file watch.
	watchedDirs := make(map[string]bool)
	interesting := make(map[string]bool)
	for _, p := range inputs {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			interesting[abs] = true
		}
		dir := filepath.Dir(p)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			watchedDirs[dir] = true
		}
	}

	logger.Info("watching for changes", "template", templatePath)

	var debounceTimer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !interesting[abs] {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			changed := event.Name
			debounceTimer = time.AfterFunc(watchDebounceDelay, func() {
				logger.Info("file changed, re-resolving", "file", changed)
				result, err := resolveOnce()
				if err != nil {
					logger.Error("resolution failed", "err", err)
					return
				}
				report(cmd.OutOrStdout(), cmd.ErrOrStderr(), result)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", err)
		}
	}
}
