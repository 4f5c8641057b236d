package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func reportsCmd() *cobra.Command {
	reportsRoot := &cobra.Command{
		Use:   "reports",
		Short: "Request, list and download reports",
		Long: "Request report generation, follow report requests, download generated\n" +
			"reports and manage acknowledgements and schedules.",
	}

	reportsRoot.AddCommand(
		reportsListCmd(),
		reportsCountCmd(),
		reportsGetCmd(),
		reportsRequestCmd(),
		reportsRequestsCmd(),
		reportsCancelCmd(),
		reportsAckCmd(),
		reportsSchedulesCmd(),
		reportsScheduleCmd(),
	)

	return reportsRoot
}

func reportFilterFlags(cmd *cobra.Command, f *mws.ReportFilter, unacked *bool) {
	cmd.Flags().StringSliceVar(&f.ReportTypes, "type", nil, "report type filter (repeatable)")
	cmd.Flags().StringSliceVar(&f.RequestIDs, "request-id", nil, "report request ID filter")
	cmd.Flags().BoolVar(unacked, "unacked", false, "only reports not yet acknowledged")
}

func reportsListCmd() *cobra.Command {
	var (
		filter  mws.ReportFilter
		unacked bool
		since   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated reports",
		Example: `  mws reports list --type _GET_FLAT_FILE_ORDERS_DATA_ --unacked
  mws reports list --since 72h --output json`,
		RunE: func(c *cobra.Command, _ []string) error {
			from, err := parseTime(since)
			if err != nil {
				return fmt.Errorf("--since: %w", err)
			}
			filter.AvailableFromDate = from
			if unacked {
				filter.Acknowledged = new(bool)
			}

			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.ReportPager(filter, pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No reports found.")
				return nil
			}
			if err := printReportsTable(out, res.Items); err != nil {
				return err
			}
			printPageFooter(out, res)
			return nil
		},
	}
	reportFilterFlags(cmd, &filter, &unacked)
	cmd.Flags().StringVar(&since, "since", "", "reports available after this time")
	cmd.Flags().IntVar(&filter.MaxCount, "per-page", 0, "results per page (1-100)")

	return cmd
}

func reportsCountCmd() *cobra.Command {
	var (
		filter  mws.ReportFilter
		unacked bool
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count generated reports",
		RunE: func(c *cobra.Command, _ []string) error {
			if unacked {
				filter.Acknowledged = new(bool)
			}
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			n, err := client.GetReportCount(c.Context(), filter)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), map[string]int{"count": n})
			}
			fmt.Fprintln(c.OutOrStdout(), n)
			return nil
		},
	}
	reportFilterFlags(cmd, &filter, &unacked)

	return cmd
}

func reportsGetCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "get <report-id>",
		Short: "Download a report",
		Long: "Download a report body, verifying its checksum. The body is written\n" +
			"to --file, or to standard output.",
		Example: `  mws reports get 2291326454 --file orders.tsv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}

			if file == "" {
				body, err := client.GetReport(c.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = c.OutOrStdout().Write(body)
				return err
			}

			f, err := os.Create(file) //nolint:gosec // path from CLI flag
			if err != nil {
				return fmt.Errorf("creating %s: %w", file, err)
			}
			n, err := client.SaveReport(c.Context(), args[0], f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(c.ErrOrStderr(), "Wrote %d bytes to %s\n", n, file)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "write the report to this file")

	return cmd
}

func reportsRequestCmd() *cobra.Command {
	var (
		start, end   string
		options      string
		marketplaces []string
	)

	cmd := &cobra.Command{
		Use:     "request <report-type>",
		Short:   "Request a report",
		Example: `  mws reports request _GET_FLAT_FILE_OPEN_LISTINGS_DATA_ --start 168h`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			times, err := parseTimes(map[string]string{"start": start, "end": end})
			if err != nil {
				return err
			}
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.RequestReport(c.Context(), mws.RequestReportRequest{
				ReportType:     args[0],
				StartDate:      times["start"],
				EndDate:        times["end"],
				ReportOptions:  options,
				MarketplaceIDs: marketplaces,
			})
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res.ReportRequestInfo)
			}
			return printReportRequestsTable(out, []mws.ReportRequestInfo{res.ReportRequestInfo})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "report period start")
	cmd.Flags().StringVar(&end, "end", "", "report period end")
	cmd.Flags().StringVar(&options, "options", "", "report options, e.g. ShowSalesChannel=true")
	cmd.Flags().StringSliceVar(&marketplaces, "marketplace", nil, "marketplace IDs to cover")

	return cmd
}

func requestFilterFlags(cmd *cobra.Command, f *mws.ReportRequestFilter) {
	cmd.Flags().StringSliceVar(&f.RequestIDs, "request-id", nil, "report request ID filter")
	cmd.Flags().StringSliceVar(&f.ReportTypes, "type", nil, "report type filter")
	cmd.Flags().StringSliceVar(&f.ProcessingStatuses, "status", nil,
		"processing status filter, e.g. _DONE_")
}

func reportsRequestsCmd() *cobra.Command {
	var filter mws.ReportRequestFilter

	cmd := &cobra.Command{
		Use:     "requests",
		Short:   "List report requests",
		Example: `  mws reports requests --status _SUBMITTED_ --status _IN_PROGRESS_`,
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.ReportRequestPager(filter, pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No report requests found.")
				return nil
			}
			if err := printReportRequestsTable(out, res.Items); err != nil {
				return err
			}
			printPageFooter(out, res)
			return nil
		},
	}
	requestFilterFlags(cmd, &filter)

	return cmd
}

func reportsCancelCmd() *cobra.Command {
	var filter mws.ReportRequestFilter

	cmd := &cobra.Command{
		Use:     "cancel",
		Short:   "Cancel pending report requests",
		Example: `  mws reports cancel --request-id 2291326454`,
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.CancelReportRequests(c.Context(), filter)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), res.Requests)
			}
			fmt.Fprintf(c.OutOrStdout(), "Cancelled %d report request(s).\n", res.Count)
			return nil
		},
	}
	requestFilterFlags(cmd, &filter)

	return cmd
}

func reportsAckCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "ack <report-id>...",
		Short: "Acknowledge up to 100 reports",
		Example: `  mws reports ack 2291326454 2294446454
  mws reports ack 2291326454 --undo`,
		Args: cobra.RangeArgs(1, 100),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.UpdateReportAcknowledgements(c.Context(), !undo, args...)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), res.Reports)
			}
			fmt.Fprintf(c.OutOrStdout(), "Updated %d report(s).\n", res.Count)
			return nil
		},
	}
	cmd.Flags().BoolVar(&undo, "undo", false, "mark the reports unacknowledged")

	return cmd
}

func reportsSchedulesCmd() *cobra.Command {
	var types []string

	cmd := &cobra.Command{
		Use:   "schedules",
		Short: "List report schedules",
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.ReportSchedulePager(types, pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No report schedules found.")
				return nil
			}
			return printSchedulesTable(out, res.Items)
		},
	}
	cmd.Flags().StringSliceVar(&types, "type", nil, "report type filter")

	return cmd
}

func reportsScheduleCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "schedule <report-type> <schedule>",
		Short: "Create, change or delete a report schedule",
		Long: "Set the schedule of a report type. The schedule is a period such as\n" +
			"_1_DAY_ or _NEVER_ to delete it.",
		Example: `  mws reports schedule _GET_ORDERS_DATA_ _15_MINUTES_
  mws reports schedule _GET_ORDERS_DATA_ _NEVER_`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			date, err := parseTime(at)
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.ManageReportSchedule(c.Context(), args[0], args[1], date)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res.Schedules)
			}
			return printSchedulesTable(out, res.Schedules)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "first run of the schedule")

	return cmd
}
