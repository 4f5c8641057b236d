package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

type statusRow struct {
	Section   string    `json:"section"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [section]...",
		Short: "Show the service status of API sections",
		Long: "Show the operational status of the named sections, or of every\n" +
			"section that reports one.",
		Example: `  mws status
  mws status orders inventory`,
		RunE: func(c *cobra.Command, args []string) error {
			sections, err := statusSections(args)
			if err != nil {
				return err
			}
			client, err := newMWSClient()
			if err != nil {
				return err
			}

			rows := make([]statusRow, 0, len(sections))
			for _, s := range sections {
				st, err := client.GetServiceStatus(c.Context(), s)
				if err != nil {
					return err
				}
				row := statusRow{Section: s.Name, Status: st.Status, Timestamp: st.Timestamp}
				if len(st.Messages) > 0 {
					row.Message = st.Messages[0].Text
				}
				rows = append(rows, row)
			}

			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), rows)
			}
			return printStatusTable(c.OutOrStdout(), rows)
		},
	}
}

func statusSections(names []string) ([]mws.Section, error) {
	if len(names) == 0 {
		var out []mws.Section
		for _, s := range mws.Sections() {
			if s.HasStatus {
				out = append(out, s)
			}
		}
		return out, nil
	}

	out := make([]mws.Section, 0, len(names))
	for _, name := range names {
		s, err := mws.SectionByName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func marketplacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "marketplaces",
		Short: "List known marketplaces and their endpoints",
		RunE: func(c *cobra.Command, _ []string) error {
			markets := mws.Marketplaces()
			if jsonOutput() {
				return outputJSON(c.OutOrStdout(), markets)
			}
			tw := newTabWriter(c.OutOrStdout())
			tw.writef("ID\tCOUNTRY\tENDPOINT\n")
			for _, m := range markets {
				tw.writef("%s\t%s\t%s\n", m.ID, m.Country, m.Endpoint)
			}
			return tw.finish()
		},
	}
}
