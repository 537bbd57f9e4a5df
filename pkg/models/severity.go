// Package models defines domain types shared across HealOps packages:
// severities, bus task payloads, and log metadata accessors.
package models

// LogSeverity is the severity attached to an ingested log entry.
type LogSeverity string

// Log severity levels, lowest to highest.
const (
	LogSeverityTrace    LogSeverity = "trace"
	LogSeverityDebug    LogSeverity = "debug"
	LogSeverityInfo     LogSeverity = "info"
	LogSeverityWarn     LogSeverity = "warn"
	LogSeverityError    LogSeverity = "error"
	LogSeverityCritical LogSeverity = "critical"
	LogSeverityUnknown  LogSeverity = "unknown"
)

// IsIncidentWorthy reports whether a log of this severity participates in
// incident creation. Only error and critical logs open or merge incidents.
func (s LogSeverity) IsIncidentWorthy() bool {
	return s == LogSeverityError || s == LogSeverityCritical
}

// IncidentSeverity is the severity of an incident aggregate.
type IncidentSeverity string

// Incident severity levels, lowest to highest.
const (
	IncidentSeverityLow      IncidentSeverity = "low"
	IncidentSeverityMedium   IncidentSeverity = "medium"
	IncidentSeverityHigh     IncidentSeverity = "high"
	IncidentSeverityCritical IncidentSeverity = "critical"
)

var incidentSeverityRank = map[IncidentSeverity]int{
	IncidentSeverityLow:      0,
	IncidentSeverityMedium:   1,
	IncidentSeverityHigh:     2,
	IncidentSeverityCritical: 3,
}

// Rank returns the ordinal position of the severity (low=0 .. critical=3).
// Unknown values rank below low.
func (s IncidentSeverity) Rank() int {
	if r, ok := incidentSeverityRank[s]; ok {
		return r
	}
	return -1
}

// Escalate returns the higher of the two severities. The reducer only ever
// escalates: an incident's severity never decreases across merges.
func (s IncidentSeverity) Escalate(other IncidentSeverity) IncidentSeverity {
	if other.Rank() > s.Rank() {
		return other
	}
	return s
}

// InitialIncidentSeverity maps the triggering log severity to the severity a
// newly created incident starts with. Critical logs open high incidents;
// everything else incident-worthy opens medium. Escalation to critical only
// happens on merge.
func InitialIncidentSeverity(log LogSeverity) IncidentSeverity {
	if log == LogSeverityCritical {
		return IncidentSeverityHigh
	}
	return IncidentSeverityMedium
}
