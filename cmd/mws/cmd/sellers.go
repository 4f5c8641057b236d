package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/mws-toolkit/pkg/mws"
)

func sellersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sellers",
		Short: "List the marketplaces the seller participates in",
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := newMWSClient()
			if err != nil {
				return err
			}
			res, err := client.ParticipationPager(pagerOptions()...).All(c.Context())
			if err != nil {
				return err
			}

			var all mws.ParticipationList
			for _, page := range res.Items {
				all.Participations = append(all.Participations, page.Participations...)
				all.Marketplaces = append(all.Marketplaces, page.Marketplaces...)
			}

			out := c.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, all)
			}
			return printParticipations(out, &all)
		},
	}
}
