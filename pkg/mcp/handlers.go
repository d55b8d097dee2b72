package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Dispatch runs the operation called name with args and always returns a
// result. Unknown operations and handler failures become error results.
func (s *Server) Dispatch(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	handler, ok := s.handlers[name]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown operation: %s", name))
	}
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	result, err := handler(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return result
}

// toolResult converts an operation outcome into a tool result. Errors are
// reported to the client, never returned to the transport.
func toolResult(text string, err error) *mcp.CallToolResult {
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(text)
}

func (s *Server) handleListComponents(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.docs.ListComponents()), nil
}

func (s *Server) handleAnalyzeComponent(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString(argComponentName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(s.docs.AnalyzeComponent(name)), nil
}

func (s *Server) handleUsageExample(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString(argComponentName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(s.docs.UsageExample(name)), nil
}

func (s *Server) handleCreateStorybook(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString(argComponentName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(s.docs.CreateStory(name)), nil
}

func (s *Server) handleSearchComponent(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString(argQuery)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(s.docs.SearchComponents(query)), nil
}

func (s *Server) handleSuggestDescription(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString(argComponentName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(s.docs.SuggestDescription(name)), nil
}
