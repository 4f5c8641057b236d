package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func financesCmd() *cobra.Command {
	financesRoot := &cobra.Command{
		Use:   "finances",
		Short: "Inspect settlement groups and financial events",
	}

	financesRoot.AddCommand(
		financesGroupsCmd(),
		financesEventsCmd(),
	)

	return financesRoot
}

func financesGroupsCmd() *cobra.Command {
	var (
		since, until string
		perPage      int
	)

	cmd := &cobra.Command{
		Use:     "groups",
		Short:   "List financial event groups",
		Example: `  mws finances groups --since 2160h`,
		RunE: func(c *cobra.Command, _ []string) error {
			times, err := parseTimes(map[string]string{"since": since, "until": until})
			if err != nil {
				return err
			}
			if times["since"].IsZero() {
				return errors.New("--since is required")
			}
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.FinancialEventGroupPager(
				times["since"], times["until"], perPage, pagerOptions()...,
			).All(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No financial event groups found.")
				return nil
			}
			if err := printEventGroupsTable(out, res.Items); err != nil {
				return err
			}
			printPageFooter(out, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&since, "since", "", "groups opened after this time")
	cmd.Flags().StringVar(&until, "until", "", "groups opened before this time")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page (1-100)")

	return cmd
}

func financesEventsCmd() *cobra.Command {
	var (
		orderID, groupID string
		postedAfter      string
		postedBefore     string
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List financial events for an order, a group or a date range",
		Example: `  mws finances events --order 105-0457358-1245022
  mws finances events --posted-after 24h --max-pages 0`,
		RunE: func(c *cobra.Command, _ []string) error {
			times, err := parseTimes(map[string]string{
				"posted-after":  postedAfter,
				"posted-before": postedBefore,
			})
			if err != nil {
				return err
			}
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.FinancialEventsPager(mws.ListFinancialEventsRequest{
				AmazonOrderID:         orderID,
				FinancialEventGroupID: groupID,
				PostedAfter:           times["posted-after"],
				PostedBefore:          times["posted-before"],
			}, pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			var events mws.FinancialEvents
			for _, page := range res.Items {
				events.Merge(page)
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, events)
			}
			if err := printFinancialEvents(out, &events); err != nil {
				return err
			}
			printPageFooter(out, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&orderID, "order", "", "order ID")
	cmd.Flags().StringVar(&groupID, "group", "", "financial event group ID")
	cmd.Flags().StringVar(&postedAfter, "posted-after", "", "events posted after this time")
	cmd.Flags().StringVar(&postedBefore, "posted-before", "", "events posted before this time")

	return cmd
}
