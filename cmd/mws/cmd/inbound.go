package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func inboundCmd() *cobra.Command {
	inboundRoot := &cobra.Command{
		Use:   "inbound",
		Short: "Inspect inbound shipments",
	}

	inboundRoot.AddCommand(
		inboundListCmd(),
		inboundItemsCmd(),
		inboundTransportCmd(),
	)

	return inboundRoot
}

func inboundListCmd() *cobra.Command {
	var (
		statuses     []string
		ids          []string
		updatedAfter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inbound shipments by status or ID",
		Example: `  mws inbound list --status WORKING --status SHIPPED
  mws inbound list --id FBA44JV8R`,
		RunE: func(c *cobra.Command, _ []string) error {
			if len(statuses) == 0 && len(ids) == 0 {
				return errors.New("pass --status or --id")
			}
			after, err := parseTime(updatedAfter)
			if err != nil {
				return fmt.Errorf("--updated-after: %w", err)
			}
			req := mws.ListInboundShipmentsRequest{
				ShipmentStatuses: statuses,
				ShipmentIDs:      ids,
				LastUpdatedAfter: after,
			}
			if !after.IsZero() {
				req.LastUpdatedBefore = now().UTC().Truncate(time.Second)
			}

			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.InboundShipmentPager(req, pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No inbound shipments found.")
				return nil
			}
			if err := printInboundShipmentsTable(out, res.Items); err != nil {
				return err
			}
			printPageFooter(out, res)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "shipment status filter")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "shipment ID filter")
	cmd.Flags().StringVar(&updatedAfter, "updated-after", "", "shipments updated after this time")

	return cmd
}

func inboundItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items <shipment-id>",
		Short: "List the items of an inbound shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.InboundShipmentItemPager(args[0], pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if err := printInboundItemsTable(out, res.Items); err != nil {
				return err
			}
			printPageFooter(out, res)
			return nil
		},
	}
}

func inboundTransportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transport <shipment-id>",
		Short: "Show the transport details of an inbound shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.GetTransportContent(c.Context(), args[0])
			if err != nil {
				return err
			}
			return outputJSON(c.OutOrStdout(), res)
		},
	}
}
