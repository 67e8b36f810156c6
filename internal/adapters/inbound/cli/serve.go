package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/textgate/textgate/internal/adapters/inbound/httpapi"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the textgate HTTP service",
		Long:  "Serve POST /v1/validate and POST /v1/score until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, g)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = rt.cfg.Server.Addr
			}

			gin.SetMode(gin.ReleaseMode)
			router := httpapi.NewRouter(rt.scoreService(), rt.log, rt.cfg.Server.MaxBodyBytes)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return httpapi.Serve(ctx, addr, router, rt.log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address; overrides server.addr")

	return cmd
}
