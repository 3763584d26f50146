package cmd

import (
	"context"
	"os"
	"os/signal"

	"food-storefront/console"
	"food-storefront/screens"
	"food-storefront/services"

	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Browse and order from an interactive console",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		r := screens.New(cfg.Store.Lang, cfg.Store.Currency)
		sh := console.New(services.DefaultCatalog(), r, cmd.OutOrStdout(), log)
		return sh.Run(ctx, cmd.InOrStdin())
	},
}
