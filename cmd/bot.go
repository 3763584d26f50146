package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"food-storefront/bot"
	"food-storefront/metrics"
	"food-storefront/services"

	"github.com/spf13/cobra"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram storefront bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Telegram.Token == "" {
			return errors.New("TOKEN not set")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.Metrics.Addr != "" {
			go func() {
				log.WithField("addr", cfg.Metrics.Addr).Info("metrics listening")
				if err := metrics.Serve(ctx, cfg.Metrics.Addr); err != nil {
					log.WithError(err).Error("metrics server")
				}
			}()
		}

		b, err := bot.New(cfg, services.DefaultCatalog(), log)
		if err != nil {
			return err
		}
		log.Info("bot started")
		b.Start(ctx)
		log.Info("bot stopped")
		return nil
	},
}
