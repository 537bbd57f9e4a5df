// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentEventsColumns holds the columns for the "agent_events" table.
	AgentEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "incident_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "agent_name", Type: field.TypeString, Nullable: true},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// AgentEventsTable holds the schema information for the "agent_events" table.
	AgentEventsTable = &schema.Table{
		Name:       "agent_events",
		Columns:    AgentEventsColumns,
		PrimaryKey: []*schema.Column{AgentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentevent_incident_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[1], AgentEventsColumns[5]},
			},
			{
				Name:    "agentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[5]},
			},
		},
	}
	// AgentPlansColumns holds the columns for the "agent_plans" table.
	AgentPlansColumns = []*schema.Column{
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "incident_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "replan_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentPlansTable holds the schema information for the "agent_plans" table.
	AgentPlansTable = &schema.Table{
		Name:       "agent_plans",
		Columns:    AgentPlansColumns,
		PrimaryKey: []*schema.Column{AgentPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentplan_incident_id_version",
				Unique:  false,
				Columns: []*schema.Column{AgentPlansColumns[1], AgentPlansColumns[2]},
			},
		},
	}
	// AgentRecordsColumns holds the columns for the "agent_records" table.
	AgentRecordsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"available", "working", "idle", "disabled"}, Default: "available"},
		{Name: "current_task", Type: field.TypeString, Nullable: true},
		{Name: "completed_tasks", Type: field.TypeJSON, Nullable: true},
		{Name: "last_active_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentRecordsTable holds the schema information for the "agent_records" table.
	AgentRecordsTable = &schema.Table{
		Name:       "agent_records",
		Columns:    AgentRecordsColumns,
		PrimaryKey: []*schema.Column{AgentRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentrecord_status",
				Unique:  false,
				Columns: []*schema.Column{AgentRecordsColumns[4]},
			},
		},
	}
	// AgentWorkspacesColumns holds the columns for the "agent_workspaces" table.
	AgentWorkspacesColumns = []*schema.Column{
		{Name: "workspace_id", Type: field.TypeString, Unique: true},
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "files", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeJSON, Nullable: true},
		{Name: "plan_progress", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentWorkspacesTable holds the schema information for the "agent_workspaces" table.
	AgentWorkspacesTable = &schema.Table{
		Name:       "agent_workspaces",
		Columns:    AgentWorkspacesColumns,
		PrimaryKey: []*schema.Column{AgentWorkspacesColumns[0]},
	}
	// IncidentsColumns holds the columns for the "incidents" table.
	IncidentsColumns = []*schema.Column{
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "investigating", "healing", "resolved", "failed"}, Default: "open"},
		{Name: "service_name", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "integration_id", Type: field.TypeString, Nullable: true},
		{Name: "repo_name", Type: field.TypeString, Nullable: true},
		{Name: "log_ids", Type: field.TypeJSON},
		{Name: "trigger_event", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "root_cause", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "action_taken", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "code_fix_explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "pr_number", Type: field.TypeInt, Nullable: true},
		{Name: "pr_files_changed", Type: field.TypeJSON, Nullable: true},
		{Name: "pr_original_contents", Type: field.TypeJSON, Nullable: true},
	}
	// IncidentsTable holds the schema information for the "incidents" table.
	IncidentsTable = &schema.Table{
		Name:       "incidents",
		Columns:    IncidentsColumns,
		PrimaryKey: []*schema.Column{IncidentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incident_user_id_service_name_source_status",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[7], IncidentsColumns[5], IncidentsColumns[6], IncidentsColumns[4]},
			},
			{
				Name:    "incident_status_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[4], IncidentsColumns[14]},
			},
			{
				Name:    "incident_service_name",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[5]},
			},
		},
	}
	// IntegrationsColumns holds the columns for the "integrations" table.
	IntegrationsColumns = []*schema.Column{
		{Name: "integration_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"github", "signoz", "linear", "slack", "email"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "error"}, Default: "inactive"},
		{Name: "last_log_time", Type: field.TypeTime, Nullable: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IntegrationsTable holds the schema information for the "integrations" table.
	IntegrationsTable = &schema.Table{
		Name:       "integrations",
		Columns:    IntegrationsColumns,
		PrimaryKey: []*schema.Column{IntegrationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "integration_user_id_provider",
				Unique:  false,
				Columns: []*schema.Column{IntegrationsColumns[1], IntegrationsColumns[2]},
			},
			{
				Name:    "integration_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{IntegrationsColumns[1], IntegrationsColumns[3]},
			},
		},
	}
	// KnowledgeChunksColumns holds the columns for the "knowledge_chunks" table.
	KnowledgeChunksColumns = []*schema.Column{
		{Name: "chunk_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"past_fix", "code_pattern", "documentation"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeJSON},
		{Name: "content_hash", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// KnowledgeChunksTable holds the schema information for the "knowledge_chunks" table.
	KnowledgeChunksTable = &schema.Table{
		Name:       "knowledge_chunks",
		Columns:    KnowledgeChunksColumns,
		PrimaryKey: []*schema.Column{KnowledgeChunksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgechunk_source",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeChunksColumns[2]},
			},
		},
	}
	// LogEntriesColumns holds the columns for the "log_entries" table.
	LogEntriesColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "service_name", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"trace", "debug", "info", "warn", "error", "critical", "unknown"}, Default: "unknown"},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "source", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "integration_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "is_email", Type: field.TypeBool, Default: false},
	}
	// LogEntriesTable holds the schema information for the "log_entries" table.
	LogEntriesTable = &schema.Table{
		Name:       "log_entries",
		Columns:    LogEntriesColumns,
		PrimaryKey: []*schema.Column{LogEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "logentry_user_id_service_name_source",
				Unique:  false,
				Columns: []*schema.Column{LogEntriesColumns[6], LogEntriesColumns[2], LogEntriesColumns[5]},
			},
			{
				Name:    "logentry_service_name",
				Unique:  false,
				Columns: []*schema.Column{LogEntriesColumns[2]},
			},
			{
				Name:    "logentry_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LogEntriesColumns[1]},
			},
		},
	}
	// MemoryRecordsColumns holds the columns for the "memory_records" table.
	MemoryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "fingerprint", Type: field.TypeString, Unique: true},
		{Name: "error_type", Type: field.TypeString, Default: "unknown"},
		{Name: "known_fixes", Type: field.TypeJSON, Nullable: true},
		{Name: "past_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "typical_files_read", Type: field.TypeJSON, Nullable: true},
		{Name: "typical_files_modified", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence_score", Type: field.TypeInt, Default: 0},
		{Name: "times_seen", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MemoryRecordsTable holds the schema information for the "memory_records" table.
	MemoryRecordsTable = &schema.Table{
		Name:       "memory_records",
		Columns:    MemoryRecordsColumns,
		PrimaryKey: []*schema.Column{MemoryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryrecord_error_type",
				Unique:  false,
				Columns: []*schema.Column{MemoryRecordsColumns[2]},
			},
		},
	}
	// ResolutionRequestsColumns holds the columns for the "resolution_requests" table.
	ResolutionRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"queued", "in_flight", "completed", "failed"}, Default: "queued"},
		{Name: "requested_by_user_id", Type: field.TypeString},
		{Name: "requested_by_trigger", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2000},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ResolutionRequestsTable holds the schema information for the "resolution_requests" table.
	ResolutionRequestsTable = &schema.Table{
		Name:       "resolution_requests",
		Columns:    ResolutionRequestsColumns,
		PrimaryKey: []*schema.Column{ResolutionRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resolutionrequest_state",
				Unique:  false,
				Columns: []*schema.Column{ResolutionRequestsColumns[2]},
			},
			{
				Name:    "resolutionrequest_state_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{ResolutionRequestsColumns[2], ResolutionRequestsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentEventsTable,
		AgentPlansTable,
		AgentRecordsTable,
		AgentWorkspacesTable,
		IncidentsTable,
		IntegrationsTable,
		KnowledgeChunksTable,
		LogEntriesTable,
		MemoryRecordsTable,
		ResolutionRequestsTable,
	}
)

func init() {
}
