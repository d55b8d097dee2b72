package main

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	mcpserver "github.com/gnana997/compdoc/pkg/mcp"
	"github.com/gnana997/compdoc/pkg/mcplog"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Long: `Start an MCP server on stdin/stdout exposing list_components,
analyze_component, generate_usage_example, create_storybook,
search_component and suggest_description.

Logs go to stderr. Set log_file (or --log-file) to record every tool call.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			calls, err := mcplog.Open(a.cfg.LogFile)
			if err != nil {
				return err
			}
			defer calls.Close()

			srv := mcpserver.NewServer(a.service(), calls, a.logger, version)
			if err := srv.ServeStdio(); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}

// resultText joins the text content of a tool result.
func resultText(result *mcp.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
