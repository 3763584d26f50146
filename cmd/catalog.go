package cmd

import (
	"fmt"

	"food-storefront/models"
	"food-storefront/screens"
	"food-storefront/services"

	"github.com/spf13/cobra"
)

var categoryFlag string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !services.ValidCategory(categoryFlag) {
			return fmt.Errorf("%w: %s", services.ErrUnknownCategory, categoryFlag)
		}
		r := screens.New(cfg.Store.Lang, cfg.Store.Currency)
		out := cmd.OutOrStdout()
		for _, it := range services.DefaultCatalog().Filter(categoryFlag) {
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", it.ID, it.Name, r.CategoryLabel(it.Category), r.Price(it.Price))
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVar(&categoryFlag, "category", models.CategoryAll, "category to list")
}
