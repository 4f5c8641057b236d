package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func feedsCmd() *cobra.Command {
	feedsRoot := &cobra.Command{
		Use:   "feeds",
		Short: "Submit feeds and follow their processing",
	}

	feedsRoot.AddCommand(
		feedsSubmitCmd(),
		feedsListCmd(),
		feedsCountCmd(),
		feedsResultCmd(),
		feedsCancelCmd(),
	)

	return feedsRoot
}

func feedsSubmitCmd() *cobra.Command {
	var (
		purge        bool
		contentType  string
		marketplaces []string
	)

	cmd := &cobra.Command{
		Use:   "submit <feed-type> <file>",
		Short: "Upload a feed document",
		Example: `  mws feeds submit _POST_PRODUCT_DATA_ products.xml
  mws feeds submit _POST_FLAT_FILE_INVLOADER_DATA_ inventory.txt \
    --content-type "text/tab-separated-values; charset=iso-8859-1"`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[1]) //nolint:gosec // path from CLI argument
			if err != nil {
				return fmt.Errorf("reading feed: %w", err)
			}
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.SubmitFeed(c.Context(), mws.SubmitFeedRequest{
				FeedType:        args[0],
				Content:         content,
				MarketplaceIDs:  marketplaces,
				PurgeAndReplace: purge,
				ContentType:     contentType,
			})
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res.FeedSubmissionInfo)
			}
			return printFeedSubmissionsTable(out, []mws.FeedSubmissionInfo{res.FeedSubmissionInfo})
		},
	}
	cmd.Flags().BoolVar(&purge, "purge", false, "replace all existing data of this feed type")
	cmd.Flags().StringVar(&contentType, "content-type", "", "body content type (default text/xml)")
	cmd.Flags().StringSliceVar(&marketplaces, "marketplace", nil, "marketplace IDs to apply to")

	return cmd
}

func submissionFilterFlags(cmd *cobra.Command, f *mws.FeedSubmissionFilter) {
	cmd.Flags().StringSliceVar(&f.SubmissionIDs, "id", nil, "submission ID filter")
	cmd.Flags().StringSliceVar(&f.FeedTypes, "type", nil, "feed type filter")
	cmd.Flags().StringSliceVar(&f.ProcessingStatuses, "status", nil,
		"processing status filter, e.g. _DONE_")
}

func feedsListCmd() *cobra.Command {
	var filter mws.FeedSubmissionFilter

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List feed submissions",
		Example: `  mws feeds list --status _IN_PROGRESS_`,
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.FeedSubmissionPager(filter, pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No feed submissions found.")
				return nil
			}
			if err := printFeedSubmissionsTable(out, res.Items); err != nil {
				return err
			}
			printPageFooter(out, res)
			return nil
		},
	}
	submissionFilterFlags(cmd, &filter)

	return cmd
}

func feedsCountCmd() *cobra.Command {
	var filter mws.FeedSubmissionFilter

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count feed submissions",
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			n, err := client.GetFeedSubmissionCount(c.Context(), filter)
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
	submissionFilterFlags(cmd, &filter)

	return cmd
}

func feedsResultCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "result <submission-id>",
		Short:   "Download the processing report of a feed",
		Example: `  mws feeds result 2291326430`,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			body, err := client.GetFeedSubmissionResult(c.Context(), args[0])
			if err != nil {
				return err
			}
			if file != "" {
				if err := os.WriteFile(file, body, 0o600); err != nil {
					return fmt.Errorf("writing %s: %w", file, err)
				}
				fmt.Fprintf(c.ErrOrStderr(), "Wrote %d bytes to %s\n", len(body), file)
				return nil
			}
			_, err = c.OutOrStdout().Write(body)
			return err
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "write the result to this file")

	return cmd
}

func feedsCancelCmd() *cobra.Command {
	var filter mws.FeedSubmissionFilter

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel feed submissions that have not started processing",
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.CancelFeedSubmissions(c.Context(), filter)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), res.Submissions)
			}
			fmt.Fprintf(c.OutOrStdout(), "Cancelled %d feed submission(s).\n", res.Count)
			return nil
		},
	}
	submissionFilterFlags(cmd, &filter)

	return cmd
}
