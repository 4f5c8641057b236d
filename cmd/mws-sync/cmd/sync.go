package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/mws-toolkit/pkg/types"
)

func syncCommand() *cobra.Command {
	var reports bool

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one order sync (and optionally a report archive) and exit",
		Long: "Runs the same jobs the scheduler runs, once, through the job lock. " +
			"Useful from cron or for backfills after changing sync.lookback.",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			comp, err := build(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer comp.Close(context.WithoutCancel(ctx), logger)

			jobs := []string{domain.JobOrderSync}
			if reports {
				jobs = append(jobs, domain.JobReportArchive)
			}
			for _, job := range jobs {
				logger.Info("running job", "job", job)
				if err := comp.scheduler.RunNow(ctx, job); err != nil {
					return fmt.Errorf("%s: %w", job, err)
				}
			}
			logger.Info("sync complete")
			return nil
		},
	}

	syncCmd.Flags().BoolVar(&reports, "reports", false, "also archive unacknowledged reports")
	return syncCmd
}

func init() {
	rootCmd.AddCommand(syncCommand())
}
