// internal/commands/serve.go
package longctx

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwiater/longctx/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd serves the dashboard locally.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTML dashboard and chart API locally",
	Long: `Serve the dashboard at / and the chart projection at /api/chart. Both accept
?models=a,b to choose the selection, ?all=true for every model, and ?hover=<model> or
?family=<name> to emphasize one model or provider.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		builder, err := loadBuilder(cfg)
		if err != nil {
			return err
		}
		srv := server.New(builder, cfg.SelectedModels(), cfg.ShowAll)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", cfg.ListenAddr())
		return srv.ListenAndServe(ctx, cfg.ListenAddr())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default 127.0.0.1:8080)")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}
