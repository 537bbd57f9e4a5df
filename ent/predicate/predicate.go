// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentEvent is the predicate function for agentevent builders.
type AgentEvent func(*sql.Selector)

// AgentPlan is the predicate function for agentplan builders.
type AgentPlan func(*sql.Selector)

// AgentRecord is the predicate function for agentrecord builders.
type AgentRecord func(*sql.Selector)

// AgentWorkspace is the predicate function for agentworkspace builders.
type AgentWorkspace func(*sql.Selector)

// Incident is the predicate function for incident builders.
type Incident func(*sql.Selector)

// Integration is the predicate function for integration builders.
type Integration func(*sql.Selector)

// KnowledgeChunk is the predicate function for knowledgechunk builders.
type KnowledgeChunk func(*sql.Selector)

// LogEntry is the predicate function for logentry builders.
type LogEntry func(*sql.Selector)

// MemoryRecord is the predicate function for memoryrecord builders.
type MemoryRecord func(*sql.Selector)

// ResolutionRequest is the predicate function for resolutionrequest builders.
type ResolutionRequest func(*sql.Selector)
