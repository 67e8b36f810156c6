package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/textgate/textgate/internal/application"
	"github.com/textgate/textgate/internal/domain"
)

const (
	policyURI  = "textgate://policy"
	historyURI = "textgate://history"
)

// registerResources registers all textgate MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.ScoreService, policy domain.Policy) {
	s.AddResource(
		mcplib.NewResource(
			policyURI,
			"Validation Policy",
			mcplib.WithResourceDescription("Active validation policy"),
			mcplib.WithMIMEType("application/json"),
		),
		handlePolicyResource(policy),
	)

	s.AddResource(
		mcplib.NewResource(
			historyURI,
			"Submission History",
			mcplib.WithResourceDescription("Recorded submissions, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(svc),
	)
}

func handlePolicyResource(policy domain.Policy) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		view := struct {
			MinWords        int     `json:"min_words"`
			AcceptThreshold float64 `json:"accept_threshold"`
		}{
			MinWords:        policy.EffectiveMinWords(),
			AcceptThreshold: domain.AcceptThreshold,
		}
		return jsonContents(policyURI, view)
	}
}

func handleHistoryResource(svc *application.ScoreService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := svc.History()
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if entries == nil {
			entries = []domain.SubmissionEntry{}
		}
		return jsonContents(historyURI, entries)
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
