package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/graph-presence-cli/internal/adapters/httpapi"
	"github.com/bnema/graph-presence-cli/internal/config"
	"github.com/bnema/graph-presence-cli/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /api/token and /api/presence over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if app.cfg.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			ln, err := net.Listen("tcp", app.cfg.ServerAddr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", app.cfg.ServerAddr, err)
			}

			router := httpapi.NewRouter(&httpapi.Handler{Endpoints: app.endpoints, Metrics: app.metrics})
			srv := httpapi.NewServer(app.cfg.ServerAddr, router)

			if err := httpapi.Serve(ctx, srv, ln); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			logging.Info("serve", "stopped")
			return nil
		},
	}

	cmd.Flags().String("addr", config.DefaultServerAddr, "Listen address")
	_ = app.viper.BindPFlag(config.KeyServerAddr, cmd.Flags().Lookup("addr"))

	return cmd
}
