package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "Query orders",
		Long:  "List orders by creation or update window, and fetch orders and their items by ID.",
	}

	ordersRoot.AddCommand(
		ordersListCmd(),
		ordersGetCmd(),
		ordersItemsCmd(),
	)

	return ordersRoot
}

func ordersListCmd() *cobra.Command {
	var (
		createdAfter  string
		createdBefore string
		updatedAfter  string
		updatedBefore string
		statuses      []string
		channels      []string
		buyerEmail    string
		perPage       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders created or updated in a window",
		Long: "List orders created or updated in a time window. Exactly one of\n" +
			"--created-after and --updated-after is required. Times are RFC 3339,\n" +
			"YYYY-MM-DD, or a duration meaning that long ago.",
		Example: `  # Orders updated in the last day
  mws orders list --updated-after 24h

  # Unshipped orders created since a date, every page
  mws orders list --created-after 2024-01-01 --status Unshipped --max-pages 0`,
		RunE: func(c *cobra.Command, _ []string) error {
			times, err := parseTimes(map[string]string{
				"created-after":  createdAfter,
				"created-before": createdBefore,
				"updated-after":  updatedAfter,
				"updated-before": updatedBefore,
			})
			if err != nil {
				return err
			}

			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.OrderPager(mws.ListOrdersRequest{
				CreatedAfter:        times["created-after"],
				CreatedBefore:       times["created-before"],
				LastUpdatedAfter:    times["updated-after"],
				LastUpdatedBefore:   times["updated-before"],
				OrderStatuses:       statuses,
				FulfillmentChannels: channels,
				BuyerEmail:          buyerEmail,
				MaxResultsPerPage:   perPage,
			}, pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No orders found.")
				return nil
			}
			if err := printOrdersTable(out, res.Items); err != nil {
				return err
			}
			printPageFooter(out, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&createdAfter, "created-after", "", "orders created after this time")
	cmd.Flags().StringVar(&createdBefore, "created-before", "", "orders created before this time")
	cmd.Flags().StringVar(&updatedAfter, "updated-after", "", "orders updated after this time")
	cmd.Flags().StringVar(&updatedBefore, "updated-before", "", "orders updated before this time")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "order status filter (repeatable)")
	cmd.Flags().StringSliceVar(&channels, "channel", nil, "fulfillment channel (AFN, MFN)")
	cmd.Flags().StringVar(&buyerEmail, "buyer-email", "", "buyer email filter")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page (1-100)")

	return cmd
}

func ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <order-id>...",
		Short:   "Show up to 50 orders by ID",
		Example: `  mws orders get 902-3159896-1390916`,
		Args:    cobra.RangeArgs(1, 50),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			list, err := client.GetOrder(c.Context(), args...)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, list.Orders)
			}
			if len(list.Orders) == 0 {
				return errors.New("no matching orders")
			}
			if len(list.Orders) > 1 {
				return printOrdersTable(out, list.Orders)
			}
			return printOrderDetail(out, &list.Orders[0])
		},
	}
}

func ordersItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "items <order-id>",
		Short:   "List the items of an order",
		Example: `  mws orders items 902-3159896-1390916`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.OrderItemPager(args[0], pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if err := printOrderItemsTable(out, res.Items); err != nil {
				return err
			}
			printPageFooter(out, res)
			return nil
		},
	}
}
