package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Look up catalog products and pricing",
		Long: "Look up catalog products by identifier or search term, and read\n" +
			"pricing for the seller's SKUs. Requires a marketplace ID.",
	}

	var condition string
	myPrice := skuPricingCmd("my-price", "Show your own offers for SKUs",
		func(c *cobra.Command, client *mws.Client, skus []string) (*mws.ProductResults, error) {
			return client.GetMyPriceForSKU(c.Context(), condition, skus...)
		})
	myPrice.Flags().StringVar(&condition, "condition", "", "item condition (New, Used, ...)")

	var lowestCondition string
	lowest := skuPricingCmd("lowest", "Show the lowest offers for SKUs",
		func(c *cobra.Command, client *mws.Client, skus []string) (*mws.ProductResults, error) {
			return client.GetLowestOfferListingsForSKU(c.Context(), lowestCondition, skus...)
		})
	lowest.Flags().StringVar(&lowestCondition, "condition", "", "item condition (New, Used, ...)")

	productsRoot.AddCommand(
		productsMatchCmd(),
		productsSearchCmd(),
		myPrice,
		lowest,
		skuPricingCmd("competitive", "Show buy-box pricing for SKUs",
			func(c *cobra.Command, client *mws.Client, skus []string) (*mws.ProductResults, error) {
				return client.GetCompetitivePricingForSKU(c.Context(), skus...)
			}),
		productsCategoriesCmd(),
	)

	return productsRoot
}

func productsMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <id-type> <id>...",
		Short: "Look up up to five products by identifier",
		Long:  "Look up products by ASIN, GCID, SellerSKU, UPC, EAN, ISBN or JAN.",
		Example: `  mws products match ASIN B002KT3XQM
  mws products match UPC 883974958450 883974951421`,
		Args: cobra.RangeArgs(2, 6),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.GetMatchingProductForID(c.Context(), args[0], args[1:]...)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), res.Results)
			}
			return printProductResults(c.OutOrStdout(), res.Results)
		},
	}
}

func productsSearchCmd() *cobra.Command {
	var queryContext string

	cmd := &cobra.Command{
		Use:     "search <query>",
		Short:   "Search the catalog",
		Example: `  mws products search "usb c cable" --context Electronics`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.ListMatchingProducts(c.Context(), args[0], queryContext)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), res.Products)
			}
			return printProductsTable(c.OutOrStdout(), res.Products)
		},
	}
	cmd.Flags().StringVar(&queryContext, "context", "", "query context, e.g. Books")

	return cmd
}

type skuPricingFunc func(*cobra.Command, *mws.Client, []string) (*mws.ProductResults, error)

func skuPricingCmd(use, short string, fn skuPricingFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <sku>...",
		Short: short + " (up to 20)",
		Args:  cobra.RangeArgs(1, 20),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := fn(c, client, args)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), res.Results)
			}
			return printProductResults(c.OutOrStdout(), res.Results)
		},
	}
}

func productsCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories <sku>",
		Short: "Show the browse categories of a SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.GetProductCategoriesForSKU(c.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), res.Categories)
			}
			return printCategories(c.OutOrStdout(), res.Categories)
		},
	}
}
