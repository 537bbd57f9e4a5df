package main

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/sourabhkumawat/healops/pkg/bus"
	"github.com/sourabhkumawat/healops/pkg/config"
	"github.com/sourabhkumawat/healops/pkg/models"
)

// newProduceCmd builds the headless task producer, used to inject work
// without a log ingestion front end.
func newProduceCmd() *cobra.Command {
	var (
		taskType   string
		logID      string
		incidentID string
		userID     string
		service    string
		source     string
	)
	cmd := &cobra.Command{
		Use:   "produce",
		Short: "Publish a task onto the message bus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Bus.RedisAddr,
				Password: cfg.Bus.RedisPassword,
			})
			defer rdb.Close()
			gateway := bus.NewGateway(rdb, cfg.Bus.Partitions)

			ctx := cmd.Context()
			switch models.TaskType(taskType) {
			case models.TaskProcessLogEntry:
				if logID == "" {
					return fmt.Errorf("process_log_entry requires --log-id")
				}
				if err := gateway.PublishProcessLog(ctx, logID, userID, service, source); err != nil {
					return err
				}
			case models.TaskResolveIncident:
				if incidentID == "" {
					return fmt.Errorf("resolve_incident requires --incident-id")
				}
				if err := gateway.PublishResolveIncident(ctx, incidentID, userID); err != nil {
					return err
				}
			case models.TaskRCACursorSlack:
				if incidentID == "" {
					return fmt.Errorf("rca_cursor_slack requires --incident-id")
				}
				if err := gateway.PublishRCACursorSlack(ctx, incidentID, userID); err != nil {
					return err
				}
			case models.TaskCreateTicket:
				if incidentID == "" {
					return fmt.Errorf("create_ticket requires --incident-id")
				}
				if err := gateway.PublishCreateTicket(ctx, incidentID); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown task type %q", taskType)
			}
			cmd.Printf("published %s\n", taskType)
			return nil
		},
	}
	cmd.Flags().StringVar(&taskType, "task", "", "task type: process_log_entry, resolve_incident, rca_cursor_slack, create_ticket")
	cmd.Flags().StringVar(&logID, "log-id", "", "log entry id (process_log_entry)")
	cmd.Flags().StringVar(&incidentID, "incident-id", "", "incident id")
	cmd.Flags().StringVar(&userID, "user-id", "", "acting user id")
	cmd.Flags().StringVar(&service, "service", "", "service name (process_log_entry partition key)")
	cmd.Flags().StringVar(&source, "source", "", "log source (process_log_entry partition key)")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}
