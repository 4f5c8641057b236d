package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func outboundCmd() *cobra.Command {
	outboundRoot := &cobra.Command{
		Use:   "outbound",
		Short: "Manage multi-channel fulfillment orders",
	}

	outboundRoot.AddCommand(
		outboundListCmd(),
		outboundGetCmd(),
		outboundCreateCmd(),
		outboundPreviewCmd(),
		outboundCancelCmd(),
	)

	return outboundRoot
}

func outboundListCmd() *cobra.Command {
	var since string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List fulfillment orders",
		Example: `  mws outbound list --since 720h`,
		RunE: func(c *cobra.Command, _ []string) error {
			start, err := parseTime(since)
			if err != nil {
				return fmt.Errorf("--since: %w", err)
			}
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.FulfillmentOrderPager(start, pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No fulfillment orders found.")
				return nil
			}
			if err := printFulfillmentOrdersTable(out, res.Items); err != nil {
				return err
			}
			printPageFooter(out, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&since, "since", "", "orders changed after this time")

	return cmd
}

func outboundGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <fulfillment-order-id>",
		Short: "Show a fulfillment order with its items and shipments",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			d, err := client.GetFulfillmentOrder(c.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), d)
			}
			return printFulfillmentOrderDetail(c.OutOrStdout(), d)
		},
	}
}

// readJSONFile decodes a request document given on the command line.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path from CLI argument
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func outboundCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <order.json>",
		Short: "Create a fulfillment order from a JSON document",
		Long: "Create a fulfillment order. The document holds the fields of the\n" +
			"order request; a fulfillment order ID is generated when it has none.",
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var req mws.CreateFulfillmentOrderRequest
			if err := readJSONFile(args[0], &req); err != nil {
				return err
			}
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			id, err := client.CreateFulfillmentOrder(c.Context(), req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), map[string]string{"seller_fulfillment_order_id": id})
			}
			fmt.Fprintf(c.OutOrStdout(), "Created fulfillment order %s\n", id)
			return nil
		},
	}
}

func outboundPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <preview.json>",
		Short: "Estimate fees and dates for a hypothetical order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var req mws.FulfillmentPreviewRequest
			if err := readJSONFile(args[0], &req); err != nil {
				return err
			}
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.GetFulfillmentPreview(c.Context(), req)
			if err != nil {
				return err
			}
			return outputJSON(c.OutOrStdout(), res.Previews)
		},
	}
}

func outboundCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <fulfillment-order-id>",
		Short: "Cancel a fulfillment order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			if err := client.CancelFulfillmentOrder(c.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Cancelled fulfillment order %s\n", args[0])
			return nil
		},
	}
}
