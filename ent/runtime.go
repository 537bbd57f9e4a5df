// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sourabhkumawat/healops/ent/agentevent"
	"github.com/sourabhkumawat/healops/ent/agentplan"
	"github.com/sourabhkumawat/healops/ent/agentrecord"
	"github.com/sourabhkumawat/healops/ent/agentworkspace"
	"github.com/sourabhkumawat/healops/ent/incident"
	"github.com/sourabhkumawat/healops/ent/integration"
	"github.com/sourabhkumawat/healops/ent/knowledgechunk"
	"github.com/sourabhkumawat/healops/ent/logentry"
	"github.com/sourabhkumawat/healops/ent/memoryrecord"
	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
	"github.com/sourabhkumawat/healops/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agenteventFields := schema.AgentEvent{}.Fields()
	_ = agenteventFields
	// agenteventDescTimestamp is the schema descriptor for timestamp field.
	agenteventDescTimestamp := agenteventFields[5].Descriptor()
	// agentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	agentevent.DefaultTimestamp = agenteventDescTimestamp.Default.(func() time.Time)
	agentplanFields := schema.AgentPlan{}.Fields()
	_ = agentplanFields
	// agentplanDescCreatedAt is the schema descriptor for created_at field.
	agentplanDescCreatedAt := agentplanFields[5].Descriptor()
	// agentplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentplan.DefaultCreatedAt = agentplanDescCreatedAt.Default.(func() time.Time)
	agentrecordFields := schema.AgentRecord{}.Fields()
	_ = agentrecordFields
	// agentrecordDescCreatedAt is the schema descriptor for created_at field.
	agentrecordDescCreatedAt := agentrecordFields[8].Descriptor()
	// agentrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrecord.DefaultCreatedAt = agentrecordDescCreatedAt.Default.(func() time.Time)
	agentworkspaceFields := schema.AgentWorkspace{}.Fields()
	_ = agentworkspaceFields
	// agentworkspaceDescCreatedAt is the schema descriptor for created_at field.
	agentworkspaceDescCreatedAt := agentworkspaceFields[5].Descriptor()
	// agentworkspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentworkspace.DefaultCreatedAt = agentworkspaceDescCreatedAt.Default.(func() time.Time)
	// agentworkspaceDescUpdatedAt is the schema descriptor for updated_at field.
	agentworkspaceDescUpdatedAt := agentworkspaceFields[6].Descriptor()
	// agentworkspace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentworkspace.DefaultUpdatedAt = agentworkspaceDescUpdatedAt.Default.(func() time.Time)
	// agentworkspace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentworkspace.UpdateDefaultUpdatedAt = agentworkspaceDescUpdatedAt.UpdateDefault.(func() time.Time)
	incidentFields := schema.Incident{}.Fields()
	_ = incidentFields
	// incidentDescFirstSeenAt is the schema descriptor for first_seen_at field.
	incidentDescFirstSeenAt := incidentFields[13].Descriptor()
	// incident.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	incident.DefaultFirstSeenAt = incidentDescFirstSeenAt.Default.(func() time.Time)
	// incidentDescLastSeenAt is the schema descriptor for last_seen_at field.
	incidentDescLastSeenAt := incidentFields[14].Descriptor()
	// incident.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	incident.DefaultLastSeenAt = incidentDescLastSeenAt.Default.(func() time.Time)
	// incidentDescCreatedAt is the schema descriptor for created_at field.
	incidentDescCreatedAt := incidentFields[15].Descriptor()
	// incident.DefaultCreatedAt holds the default value on creation for the created_at field.
	incident.DefaultCreatedAt = incidentDescCreatedAt.Default.(func() time.Time)
	integrationFields := schema.Integration{}.Fields()
	_ = integrationFields
	// integrationDescCreatedAt is the schema descriptor for created_at field.
	integrationDescCreatedAt := integrationFields[6].Descriptor()
	// integration.DefaultCreatedAt holds the default value on creation for the created_at field.
	integration.DefaultCreatedAt = integrationDescCreatedAt.Default.(func() time.Time)
	knowledgechunkFields := schema.KnowledgeChunk{}.Fields()
	_ = knowledgechunkFields
	// knowledgechunkDescCreatedAt is the schema descriptor for created_at field.
	knowledgechunkDescCreatedAt := knowledgechunkFields[6].Descriptor()
	// knowledgechunk.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgechunk.DefaultCreatedAt = knowledgechunkDescCreatedAt.Default.(func() time.Time)
	logentryFields := schema.LogEntry{}.Fields()
	_ = logentryFields
	// logentryDescTimestamp is the schema descriptor for timestamp field.
	logentryDescTimestamp := logentryFields[1].Descriptor()
	// logentry.DefaultTimestamp holds the default value on creation for the timestamp field.
	logentry.DefaultTimestamp = logentryDescTimestamp.Default.(func() time.Time)
	// logentryDescIsEmail is the schema descriptor for is_email field.
	logentryDescIsEmail := logentryFields[9].Descriptor()
	// logentry.DefaultIsEmail holds the default value on creation for the is_email field.
	logentry.DefaultIsEmail = logentryDescIsEmail.Default.(bool)
	memoryrecordFields := schema.MemoryRecord{}.Fields()
	_ = memoryrecordFields
	// memoryrecordDescErrorType is the schema descriptor for error_type field.
	memoryrecordDescErrorType := memoryrecordFields[1].Descriptor()
	// memoryrecord.DefaultErrorType holds the default value on creation for the error_type field.
	memoryrecord.DefaultErrorType = memoryrecordDescErrorType.Default.(string)
	// memoryrecordDescConfidenceScore is the schema descriptor for confidence_score field.
	memoryrecordDescConfidenceScore := memoryrecordFields[6].Descriptor()
	// memoryrecord.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	memoryrecord.DefaultConfidenceScore = memoryrecordDescConfidenceScore.Default.(int)
	// memoryrecordDescTimesSeen is the schema descriptor for times_seen field.
	memoryrecordDescTimesSeen := memoryrecordFields[7].Descriptor()
	// memoryrecord.DefaultTimesSeen holds the default value on creation for the times_seen field.
	memoryrecord.DefaultTimesSeen = memoryrecordDescTimesSeen.Default.(int)
	// memoryrecordDescCreatedAt is the schema descriptor for created_at field.
	memoryrecordDescCreatedAt := memoryrecordFields[8].Descriptor()
	// memoryrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryrecord.DefaultCreatedAt = memoryrecordDescCreatedAt.Default.(func() time.Time)
	// memoryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	memoryrecordDescUpdatedAt := memoryrecordFields[9].Descriptor()
	// memoryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	memoryrecord.DefaultUpdatedAt = memoryrecordDescUpdatedAt.Default.(func() time.Time)
	// memoryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	memoryrecord.UpdateDefaultUpdatedAt = memoryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	resolutionrequestFields := schema.ResolutionRequest{}.Fields()
	_ = resolutionrequestFields
	// resolutionrequestDescAttempts is the schema descriptor for attempts field.
	resolutionrequestDescAttempts := resolutionrequestFields[4].Descriptor()
	// resolutionrequest.DefaultAttempts holds the default value on creation for the attempts field.
	resolutionrequest.DefaultAttempts = resolutionrequestDescAttempts.Default.(int)
	// resolutionrequestDescLastError is the schema descriptor for last_error field.
	resolutionrequestDescLastError := resolutionrequestFields[5].Descriptor()
	// resolutionrequest.LastErrorValidator is a validator for the "last_error" field. It is called by the builders before save.
	resolutionrequest.LastErrorValidator = resolutionrequestDescLastError.Validators[0].(func(string) error)
	// resolutionrequestDescCreatedAt is the schema descriptor for created_at field.
	resolutionrequestDescCreatedAt := resolutionrequestFields[8].Descriptor()
	// resolutionrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	resolutionrequest.DefaultCreatedAt = resolutionrequestDescCreatedAt.Default.(func() time.Time)
}
