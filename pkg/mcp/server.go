// Package mcp exposes the compdoc operations as MCP tools over stdio.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/compdoc/pkg/docs"
	"github.com/gnana997/compdoc/pkg/mcplog"
	"github.com/gnana997/compdoc/pkg/util"
)

// ServerName is reported to clients during initialization.
const ServerName = "compdoc"

// Server implements the MCP server for compdoc.
type Server struct {
	mcpServer *server.MCPServer
	docs      *docs.Service
	calls     *mcplog.Logger // nil disables the tool-call log
	logger    *slog.Logger
	handlers  map[string]server.ToolHandlerFunc
}

// NewServer creates an MCP server backed by svc. calls may be nil.
func NewServer(svc *docs.Service, calls *mcplog.Logger, logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = util.NopLogger()
	}
	s := &Server{docs: svc, calls: calls, logger: logger}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if calls != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}
	s.mcpServer = server.NewMCPServer(ServerName, version, opts...)

	tools := s.tools()
	s.handlers = make(map[string]server.ToolHandlerFunc, len(tools))
	for _, t := range tools {
		s.handlers[t.Tool.Name] = t.Handler
	}
	s.mcpServer.AddTools(tools...)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio", "root", s.docs.Root(), "tools", len(s.handlers))
	return server.ServeStdio(s.mcpServer,
		server.WithErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError)))
}
