package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func inventoryCmd() *cobra.Command {
	var (
		since    string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "inventory [sku]...",
		Short: "Show fulfillment network inventory",
		Long: "Show supply levels either for the listed SKUs or for every SKU\n" +
			"changed since --since.",
		Example: `  mws inventory SKU-1 SKU-2
  mws inventory --since 24h --detailed --max-pages 0`,
		Args: cobra.MaximumNArgs(50),
		RunE: func(c *cobra.Command, args []string) error {
			start, err := parseTime(since)
			if err != nil {
				return fmt.Errorf("--since: %w", err)
			}
			if len(args) == 0 && start.IsZero() {
				return errors.New("pass SKUs or --since")
			}

			req := mws.ListInventorySupplyRequest{
				SellerSKUs:         args,
				QueryStartDateTime: start,
			}
			if detailed {
				req.ResponseGroup = "Detailed"
			}

			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.InventoryPager(req, pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No inventory found.")
				return nil
			}
			if err := printInventoryTable(out, res.Items); err != nil {
				return err
			}
			printPageFooter(out, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&since, "since", "", "SKUs whose supply changed after this time")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include supply detail")

	return cmd
}
