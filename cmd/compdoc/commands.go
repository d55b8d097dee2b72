package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnana997/compdoc/pkg/docs"
	mcpserver "github.com/gnana997/compdoc/pkg/mcp"
)

// textOperation is a docs.Service method taking one argument.
type textOperation func(s *docs.Service, arg string) (string, error)

// newOperationCmd builds a command that runs op on its single argument and
// prints the result.
func newOperationCmd(a *app, use, short string, op textOperation) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := op(a.service(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List components matching the naming conventions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.service().ListComponents()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newAnalyzeCmd(a *app) *cobra.Command {
	return newOperationCmd(a, "analyze <component>", "Print the documentation report of a component",
		(*docs.Service).AnalyzeComponent)
}

func newUsageCmd(a *app) *cobra.Command {
	return newOperationCmd(a, "usage <component>", "Print a minimal usage example",
		(*docs.Service).UsageExample)
}

func newStoryCmd(a *app) *cobra.Command {
	return newOperationCmd(a, "story <component>", "Write a Storybook story next to the component file",
		(*docs.Service).CreateStory)
}

func newSearchCmd(a *app) *cobra.Command {
	return newOperationCmd(a, "search <query>", "Find components by name substring",
		(*docs.Service).SearchComponents)
}

func newSuggestCmd(a *app) *cobra.Command {
	return newOperationCmd(a, "suggest <component>", "Print context for writing a component description",
		(*docs.Service).SuggestDescription)
}

// newCallCmd runs an MCP tool by name without starting a server, which is
// handy for checking tool output from a shell.
func newCallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [key=value...]",
		Short: "Invoke an MCP tool once and print its result",
		Example: `  compdoc call analyze_component componentName=Button
  compdoc call search_component query=butt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make(map[string]any, len(args)-1)
			for _, kv := range args[1:] {
				key, value, ok := strings.Cut(kv, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid argument %q (want key=value)", kv)
				}
				params[key] = value
			}

			srv := mcpserver.NewServer(a.service(), nil, a.logger, version)
			result := srv.Dispatch(cmd.Context(), args[0], params)
			text := resultText(result)
			if result.IsError {
				return fmt.Errorf("%s", text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "compdoc %s\n", version)
		},
	}
}
