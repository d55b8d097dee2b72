package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names.
const (
	ToolListComponents     = "list_components"
	ToolAnalyzeComponent   = "analyze_component"
	ToolUsageExample       = "generate_usage_example"
	ToolCreateStorybook    = "create_storybook"
	ToolSearchComponent    = "search_component"
	ToolSuggestDescription = "suggest_description"
)

// Argument keys.
const (
	argComponentName = "componentName"
	argQuery         = "query"
)

func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{Tool: listComponentsTool(), Handler: s.handleListComponents},
		{Tool: analyzeComponentTool(), Handler: s.handleAnalyzeComponent},
		{Tool: usageExampleTool(), Handler: s.handleUsageExample},
		{Tool: createStorybookTool(), Handler: s.handleCreateStorybook},
		{Tool: searchComponentTool(), Handler: s.handleSearchComponent},
		{Tool: suggestDescriptionTool(), Handler: s.handleSuggestDescription},
	}
}

// ToolNames returns the registered tool names in registration order.
func ToolNames() []string {
	return []string{
		ToolListComponents,
		ToolAnalyzeComponent,
		ToolUsageExample,
		ToolCreateStorybook,
		ToolSearchComponent,
		ToolSuggestDescription,
	}
}

func componentNameArg() mcp.ToolOption {
	return mcp.WithString(argComponentName,
		mcp.Required(),
		mcp.Description("Component name, e.g. Button or date-picker"),
	)
}

func listComponentsTool() mcp.Tool {
	return mcp.NewTool(ToolListComponents,
		mcp.WithDescription("List all components in the project that match the configured naming conventions"),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func analyzeComponentTool() mcp.Tool {
	return mcp.NewTool(ToolAnalyzeComponent,
		mcp.WithDescription("Analyze a component: location, description, props and a usage example"),
		componentNameArg(),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func usageExampleTool() mcp.Tool {
	return mcp.NewTool(ToolUsageExample,
		mcp.WithDescription("Generate a minimal usage example with every required prop set"),
		componentNameArg(),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func createStorybookTool() mcp.Tool {
	return mcp.NewTool(ToolCreateStorybook,
		mcp.WithDescription("Write a Storybook story file next to the component, replacing any existing one"),
		componentNameArg(),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

func searchComponentTool() mcp.Tool {
	return mcp.NewTool(ToolSearchComponent,
		mcp.WithDescription("Find components whose name contains the query (case-insensitive)"),
		mcp.WithString(argQuery,
			mcp.Required(),
			mcp.Description("Substring to look for in component names"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func suggestDescriptionTool() mcp.Tool {
	return mcp.NewTool(ToolSuggestDescription,
		mcp.WithDescription("Collect context for writing a component description"),
		componentNameArg(),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}
