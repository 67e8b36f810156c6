package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/textgate/textgate/internal/application"
	"github.com/textgate/textgate/internal/domain"
)

// registerTools registers all textgate MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.ScoreService) {
	s.AddTool(
		mcplib.NewTool("textgate_validate",
			mcplib.WithDescription("Check a learner's text for non-English content, gibberish and length. Returns the verdict with penalty multiplier and issues as JSON"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("The submitted text"),
			),
		),
		handleValidate(svc),
	)

	s.AddTool(
		mcplib.NewTool("textgate_score",
			mcplib.WithDescription("Validate and score a learner's essay. Rejected texts are not scored; accepted texts get the model score scaled by the penalty multiplier"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("The submitted essay"),
			),
		),
		handleScore(svc),
	)
}

func handleValidate(svc *application.ScoreService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(svc.Validate(text))
	}
}

func handleScore(svc *application.ScoreService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		res, err := svc.Score(ctx, text)
		if err != nil {
			if errors.Is(err, domain.ErrNoScorer) {
				return errorResult("no scorer configured: set scorer.endpoint in .textgate.yaml"), nil
			}
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

// jsonResult marshals v as indented JSON and wraps it in a CallToolResult.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
