package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"customer-support-agent/internal/app"
	"customer-support-agent/internal/order/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the order store schema and load the fixture orders and products",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.OrderStore.Seed = true

	repo, err := app.OpenOrderStore(ctx, cfg.OrderStore, newLogger(cfg))
	if err != nil {
		return err
	}
	defer repo.Close()

	_, total, err := repo.ListOrders(ctx, repository.ListOrdersOptions{Limit: 1})
	if err != nil {
		return err
	}
	products, err := repo.ListProducts(ctx, repository.ListProductsOptions{})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "order store ready at %s: %d orders, %d products\n", cfg.OrderStore.DSN, total, len(products))
	return nil
}
