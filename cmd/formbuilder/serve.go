package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/server"
)

func serveCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a builder session over HTTP",
		Long: `Start an HTTP API over one in-memory builder session.

Endpoints:
  GET    /api/form                 current form
  PUT    /api/form/layout          {"layout": "2"}
  POST   /api/fields               {"type": "email"}
  PATCH  /api/fields/{id}          partial field update
  DELETE /api/fields/{id}
  POST   /api/fields/reorder       {"activeId", "overId"} or {"from", "to"}
  PUT    /api/editing              {"id"}
  DELETE /api/editing
  POST   /api/validate             {"values", "strict"}
  GET    /api/render/{renderer}    source, schema or preview
  GET    /ws                       snapshot feed
  GET    /metrics                  Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Addr = addr
			}
			form, err := a.loadForm()
			if err != nil {
				return err
			}
			s, err := a.newStore(form)
			if err != nil {
				return err
			}
			orch, err := a.newOrchestrator(s)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New(orch,
				server.WithLogger(a.logger),
				server.WithStrictValidation(a.cfg.Strict),
			).Run(ctx, a.cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
