package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/mws-toolkit/internal/api/client"
)

func serverCmd() *cobra.Command {
	serverRoot := &cobra.Command{
		Use:   "server",
		Short: "Query a running mws-sync server",
		Long: "Read synced orders, job history, throttle state, checkpoints and\n" +
			"report archives from an mws-sync server, and trigger syncs.",
	}

	serverRoot.AddCommand(
		serverOrdersCmd(),
		serverJobsCmd(),
		serverSyncCmd(),
		serverThrottleCmd(),
		serverCheckpointsCmd(),
		serverReportsCmd(),
	)

	return serverRoot
}

func serverOrdersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "Query synced orders",
	}

	var (
		params          apiclient.ListOrdersParams
		purchasedAfter  string
		purchasedBefore string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List synced orders with optional filters",
		Example: `  mws --store us server orders list --status Shipped --limit 20
  mws server orders list --purchased-after 168h --order-by order_total`,
		RunE: func(c *cobra.Command, _ []string) error {
			times, err := parseTimes(map[string]string{
				"purchased-after":  purchasedAfter,
				"purchased-before": purchasedBefore,
			})
			if err != nil {
				return err
			}
			params.Store = viper.GetString("store")
			params.PurchasedAfter = times["purchased-after"]
			params.PurchasedBefore = times["purchased-before"]

			resp, err := newClient().ListOrders(c.Context(), &params)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Orders) == 0 {
				fmt.Fprintln(out, "No orders found.")
				return nil
			}
			fmt.Fprintf(out, "Showing %d of %d orders\n\n", len(resp.Orders), resp.Total)
			return printStoredOrdersTable(out, resp.Orders)
		},
	}
	list.Flags().StringSliceVar(&params.Statuses, "status", nil, "order status filter")
	list.Flags().StringVar(&params.FulfillmentChannel, "channel", "", "fulfillment channel (AFN, MFN)")
	list.Flags().StringVar(&purchasedAfter, "purchased-after", "", "purchased after this time")
	list.Flags().StringVar(&purchasedBefore, "purchased-before", "", "purchased before this time")
	list.Flags().IntVar(&params.Limit, "limit", 50, "number of results")
	list.Flags().IntVar(&params.Offset, "offset", 0, "result offset")
	list.Flags().StringVar(&params.OrderBy, "order-by", "",
		"sort order (purchase_date, last_update_date, order_total)")

	get := &cobra.Command{
		Use:   "get <store> <order-id>",
		Short: "Show a synced order",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			o, err := newClient().GetOrder(c.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), o)
			}
			return printStoredOrderDetail(c.OutOrStdout(), o)
		},
	}

	items := &cobra.Command{
		Use:   "items <store> <order-id>",
		Short: "List the synced items of an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			its, err := newClient().ListOrderItems(c.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), its)
			}
			return printStoredItemsTable(c.OutOrStdout(), its)
		},
	}

	ordersRoot.AddCommand(list, get, items)
	return ordersRoot
}

func serverJobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "View scheduler job history",
		Long: "View the execution history of the scheduled jobs (order_sync,\n" +
			"report_archive). Each run records status, rows written and any error.",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List latest run per job",
		RunE: func(c *cobra.Command, _ []string) error {
			runs, err := newClient().ListJobs(c.Context())
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No job runs found.")
				return nil
			}
			return printJobRunsTable(out, runs)
		},
	}

	var limit int
	history := &cobra.Command{
		Use:   "history <job_name>",
		Short: "Show run history for a job",
		Args:  cobra.ExactArgs(1),
		Example: `  mws server jobs history order_sync
  mws server jobs history report_archive --limit 5 --output json`,
		RunE: func(c *cobra.Command, args []string) error {
			runs, err := newClient().GetJobHistory(c.Context(), args[0], limit)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintf(out, "No runs found for job %q.\n", args[0])
				return nil
			}
			return printJobRunsTable(out, runs)
		},
	}
	history.Flags().IntVar(&limit, "limit", 0, "number of runs (server default 20)")

	jobsRoot.AddCommand(list, history)
	return jobsRoot
}

type syncFunc func(*apiclient.Client, *cobra.Command) (*apiclient.SyncResult, error)

func serverSyncCmd() *cobra.Command {
	syncRoot := &cobra.Command{
		Use:   "sync",
		Short: "Run a sync job now and wait for it",
	}

	run := func(name string, fn syncFunc) *cobra.Command {
		return &cobra.Command{
			Use:   name,
			Short: "Run the " + name + " job",
			RunE: func(c *cobra.Command, _ []string) error {
				res, err := fn(newClient(), c)
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(c.OutOrStdout(), res)
				}
				fmt.Fprintf(c.OutOrStdout(), "%s %s.\n", res.Job, res.Status)
				return nil
			},
		}
	}

	syncRoot.AddCommand(
		run("orders", func(cl *apiclient.Client, c *cobra.Command) (*apiclient.SyncResult, error) {
			return cl.SyncOrders(c.Context())
		}),
		run("reports", func(cl *apiclient.Client, c *cobra.Command) (*apiclient.SyncResult, error) {
			return cl.SyncReports(c.Context())
		}),
	)
	return syncRoot
}

func serverThrottleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "throttle",
		Short: "Show the throttle state of every store",
		RunE: func(c *cobra.Command, _ []string) error {
			stores, err := newClient().GetThrottle(c.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), stores)
			}

			tw := newTabWriter(c.OutOrStdout())
			tw.writef("STORE\tGROUP\tTOKENS\tMAX\tRESTORE\tSERVER REMAINING\n")
			for _, s := range stores {
				for _, g := range s.Groups {
					remaining := "-"
					if g.ServerRemain != nil {
						remaining = fmt.Sprintf("%.0f", *g.ServerRemain)
					}
					tw.writef("%s\t%s\t%.1f\t%d\t%.0fs\t%s\n",
						s.Store, g.Group, g.Tokens, g.MaxQuota, g.RestoreSeconds, remaining)
				}
			}
			return tw.finish()
		},
	}
}

func serverCheckpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkpoints",
		Short: "Show the order sync cursor of every store",
		RunE: func(c *cobra.Command, _ []string) error {
			cps, err := newClient().ListCheckpoints(c.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), cps)
			}

			tw := newTabWriter(c.OutOrStdout())
			tw.writef("STORE\tCURSOR\tUPDATED\n")
			for _, cp := range cps {
				cursor, updated := "-", "-"
				if cp.Cursor != nil {
					cursor = formatTime(*cp.Cursor)
				}
				if cp.UpdatedAt != nil {
					updated = formatTime(*cp.UpdatedAt)
				}
				tw.writef("%s\t%s\t%s\n", cp.Store, cursor, updated)
			}
			return tw.finish()
		},
	}
}

func serverReportsCmd() *cobra.Command {
	var (
		reportType    string
		limit, offset int
	)

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List archived reports",
		RunE: func(c *cobra.Command, _ []string) error {
			resp, err := newClient().ListArchivedReports(
				c.Context(), viper.GetString("store"), reportType, limit, offset,
			)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Reports) == 0 {
				fmt.Fprintln(out, "No archived reports found.")
				return nil
			}
			fmt.Fprintf(out, "Showing %d of %d reports\n\n", len(resp.Reports), resp.Total)
			return printArchivedReportsTable(out, resp.Reports)
		},
	}
	cmd.Flags().StringVar(&reportType, "type", "", "report type filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")

	return cmd
}
