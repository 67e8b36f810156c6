package cli

import (
	mcpadapter "github.com/textgate/textgate/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the textgate MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(g))
	return cmd
}

func newMCPServeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start textgate MCP server (stdio)",
		Long:  "Start the textgate MCP server using stdio transport. This lets AI tutors validate and score learner texts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, g)
			if err != nil {
				return err
			}
			s := mcpadapter.NewTextGateMCPServer(rt.scoreService(), rt.cfg.Policy)
			return server.ServeStdio(s)
		},
	}
}
