package cmd

import (
	"fmt"
	"os"

	"food-storefront/config"
	"food-storefront/lang"
	"food-storefront/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log *logrus.Logger

	langFlag     string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Demo restaurant storefront",
	Long:  `storefront serves a restaurant menu with a cart and checkout, either as a Telegram bot or as an interactive console shell. All data lives in memory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if langFlag != "" {
			if !lang.Valid(langFlag) {
				return fmt.Errorf("unsupported language %q", langFlag)
			}
			cfg.Store.Lang = langFlag
		}
		if logLevelFlag != "" {
			cfg.Log.Level = logLevelFlag
		}
		log = logging.New(cfg.Log)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "interface language (ar, en); overrides LANG_CODE")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level; overrides LOG_LEVEL")

	rootCmd.AddCommand(botCmd, shellCmd, catalogCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
