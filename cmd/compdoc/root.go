package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gnana997/compdoc/pkg/config"
	"github.com/gnana997/compdoc/pkg/docs"
)

// app holds the state of one invocation. It is built by newRootCmd and
// filled in by the root PersistentPreRunE.
type app struct {
	root    string
	cfgFile string

	cfg    *config.Config
	logger *slog.Logger
}

// service returns a docs.Service for the loaded configuration.
func (a *app) service() *docs.Service {
	return docs.NewService(a.cfg, a.logger)
}

// skipConfig lists commands that run without loading project configuration.
var skipConfig = map[string]bool{
	"help":       true,
	"completion": true,
	"__complete": true,
	"version":    true,
	"init":       true,
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "compdoc",
		Short: "Document a React component library",
		Long: `compdoc discovers the components of a TSX/JSX project, extracts their props
and doc comments, and generates usage examples, story scaffolds and reports.

Run "compdoc serve" to expose the same operations as MCP tools over stdio.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipConfig[cmd.Name()] {
				return nil
			}
			cfg, err := config.Load(a.root, a.cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Logger()
			if cfg.FileUsed != "" {
				a.logger.Debug("using config file", "path", cfg.FileUsed)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.root, "root", "r", ".", "project root directory")
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: compdoc.yaml in the project root)")
	flags.StringSlice("naming-convention", nil, "enabled naming conventions (pascal, kebab)")
	flags.StringSlice("ignore", nil, "glob patterns to ignore, replacing the defaults")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "append one JSONL record per MCP tool call to this file")

	_ = rootCmd.RegisterFlagCompletionFunc("naming-convention", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"pascal", "kebab"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		newServeCmd(a),
		newListCmd(a),
		newAnalyzeCmd(a),
		newUsageCmd(a),
		newStoryCmd(a),
		newSearchCmd(a),
		newSuggestCmd(a),
		newPropsCmd(a),
		newCallCmd(a),
		newWatchCmd(a),
		newInitCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}
