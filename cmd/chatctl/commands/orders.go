package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"customer-support-agent/internal/app"
	"customer-support-agent/internal/order"
	"customer-support-agent/internal/order/usecase"
)

var (
	ordersStatus string
	ordersName   string
	ordersEmail  string
	ordersLimit  int
	ordersOffset int
)

var ordersCmd = &cobra.Command{
	Use:   "orders [order-id]",
	Short: "List orders, or show one order",
	Example: `  chatctl orders --status Shipped
  chatctl orders ORD12345`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOrders,
}

func init() {
	ordersCmd.Flags().StringVar(&ordersStatus, "status", "", "Filter by status")
	ordersCmd.Flags().StringVar(&ordersName, "name", "", "Filter by customer name (substring)")
	ordersCmd.Flags().StringVar(&ordersEmail, "email", "", "Filter by customer email (substring)")
	ordersCmd.Flags().IntVar(&ordersLimit, "limit", 20, "Maximum orders to list")
	ordersCmd.Flags().IntVar(&ordersOffset, "offset", 0, "Orders to skip")
}

func runOrders(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	l := newLogger(cfg)

	repo, err := app.OpenOrderStore(ctx, cfg.OrderStore, l)
	if err != nil {
		return err
	}
	defer repo.Close()
	uc := usecase.New(repo, l)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tCUSTOMER\tSTATUS\tTOTAL\tTRACKING\tETA")

	if len(args) == 1 {
		rec, err := uc.Fetch(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n", rec.OrderID, rec.CustomerName, rec.Status, rec.TotalAmount, rec.TrackingNumber, rec.EstimatedDelivery)
		return w.Flush()
	}

	out, err := uc.List(ctx, order.ListInput{
		Status:        ordersStatus,
		CustomerName:  ordersName,
		CustomerEmail: ordersEmail,
		Limit:         ordersLimit,
		Offset:        ordersOffset,
	})
	if err != nil {
		return err
	}
	for _, rec := range out.Orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n", rec.OrderID, rec.CustomerName, rec.Status, rec.TotalAmount, rec.TrackingNumber, rec.EstimatedDelivery)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d orders\n", len(out.Orders), out.Total)
	return nil
}
