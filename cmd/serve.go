package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jpsleep/sleepcheck/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assessment HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd, bootOptions{withAdvisor: true})
		if err != nil {
			return err
		}
		defer rt.Close()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = rt.cfg.Server.Addr
		}
		srv := server.New(server.Options{
			Service:  rt.service,
			Advisor:  rt.advisor,
			Metrics:  rt.metrics,
			Gatherer: rt.registry,
			Logger:   rt.log,
			Release:  rt.cfg.Log.Level != "debug",
		})

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default server.addr, :8080)")
}
