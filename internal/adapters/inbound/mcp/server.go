package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/textgate/textgate/internal/application"
	"github.com/textgate/textgate/internal/domain"
)

// NewTextGateMCPServer creates an MCP server exposing validation and scoring
// as tools, and the active policy and submission history as resources.
func NewTextGateMCPServer(svc *application.ScoreService, policy domain.Policy) *server.MCPServer {
	s := server.NewMCPServer(
		"textgate",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc, policy)

	return s
}
