package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yukikurage/kerja-workspace/internal/app"
)

func newServeCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r.verbose = true
			return r.withApp(func(a *app.App) error {
				return a.Serve(ctx)
			})
		},
	}
}
