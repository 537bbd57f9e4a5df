package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sourabhkumawat/healops/pkg/cleanup"
	"github.com/sourabhkumawat/healops/pkg/database"
)

// newCleanupServiceCmd builds the per-service purge command. Dry-run by
// default; --confirm performs the deletion in one transaction.
func newCleanupServiceCmd() *cobra.Command {
	var (
		service string
		confirm bool
	)
	cmd := &cobra.Command{
		Use:   "cleanup-service",
		Short: "Delete all data for one service (dry-run without --confirm)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			dbCfg, err := database.LoadConfigFromEnv()
			if err != nil {
				return fmt.Errorf("load database config: %w", err)
			}
			db, err := database.NewClient(ctx, dbCfg)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer db.Close()

			res, err := cleanup.NewPurger(db.Client).Purge(ctx, service, confirm)
			if err != nil {
				return err
			}
			verb := "deleted"
			if res.DryRun {
				verb = "would delete"
			}
			cmd.Printf("%s for service %q: %d email logs, %d incidents, %d resolution requests, %d logs\n",
				verb, res.ServiceName, res.EmailLogs, res.Incidents, res.Requests, res.Logs)
			if res.DryRun {
				cmd.Println("re-run with --confirm to delete")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&service, "service", "", "service name to purge")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "perform the deletion")
	_ = cmd.MarkFlagRequired("service")
	return cmd
}
