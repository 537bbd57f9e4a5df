package models

import "time"

// TaskType identifies a bus task shape.
type TaskType string

// Recognized task types on the incidents topic.
const (
	TaskProcessLogEntry TaskType = "process_log_entry"
	TaskResolveIncident TaskType = "resolve_incident"
	TaskRCACursorSlack  TaskType = "rca_cursor_slack"
	TaskCreateTicket    TaskType = "create_ticket"
)

// Task is the wire shape published to and consumed from the message bus.
// Values are UTF-8 JSON; CreatedAt is RFC-3339 UTC.
type Task struct {
	Type TaskType `json:"task_type"`

	// process_log_entry
	LogID string `json:"log_id,omitempty"`

	// resolve_incident / rca_cursor_slack
	IncidentID        string `json:"incident_id,omitempty"`
	RequestedByUserID string `json:"requested_by_user_id,omitempty"`
	UserID            string `json:"user_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Resolution triggers recorded on the ledger row.
const (
	TriggerIncidentCreatedFromLog = "incident_created_from_log"
	TriggerIncidentUpdatedFromLog = "incident_updated_from_log"
	TriggerManual                 = "manual"
)

// TriggerEvent is the snapshot of the log that opened an incident.
type TriggerEvent struct {
	LogID   string `json:"log_id"`
	Message string `json:"message"`
	Level   string `json:"level"`
}
