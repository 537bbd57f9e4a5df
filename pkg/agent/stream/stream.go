// Package stream is the append-only, size-bounded event log of one agent
// run. It is single-writer: only the agent loop that owns it may touch it,
// so no locking is needed.
package stream

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Event types emitted by the agent loop.
const (
	TypePlanStepStarted   = "PLAN_STEP_STARTED"
	TypePlanStepCompleted = "PLAN_STEP_COMPLETED"
	TypePlanStepFailed    = "PLAN_STEP_FAILED"
	TypePlanUpdated       = "PLAN_UPDATED"
	TypeToolCall          = "TOOL_CALL"
	TypeObservation       = "OBSERVATION"
	TypeError             = "ERROR"
	TypeCompression       = "COMPRESSION"
)

// Event is one entry of the stream.
type Event struct {
	Type      string
	Data      map[string]any
	AgentName string
	Timestamp time.Time
}

// Broadcaster receives every appended event, typically for WebSocket/NOTIFY
// fan-out. May be nil.
type Broadcaster interface {
	Broadcast(event Event)
}

// Stream is the bounded event log.
type Stream struct {
	events      []Event
	maxEvents   int
	broadcaster Broadcaster
	now         func() time.Time
}

// New creates a stream bounded to maxEvents entries.
func New(maxEvents int, broadcaster Broadcaster) *Stream {
	if maxEvents <= 0 {
		maxEvents = 100
	}
	return &Stream{
		maxEvents:   maxEvents,
		broadcaster: broadcaster,
		now:         time.Now,
	}
}

// AddEvent appends an event. When the stream exceeds its bound, the older
// half is collapsed into a single COMPRESSION event carrying a per-type
// breakdown; entries are never reordered.
func (s *Stream) AddEvent(eventType string, data map[string]any, agentName string) {
	event := Event{
		Type:      eventType,
		Data:      data,
		AgentName: agentName,
		Timestamp: s.now(),
	}
	s.events = append(s.events, event)

	if len(s.events) > s.maxEvents {
		s.compress()
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(event)
	}
}

// compress collapses the older half of the stream into one COMPRESSION event.
func (s *Stream) compress() {
	cut := len(s.events) / 2
	compressed := s.events[:cut]

	breakdown := make(map[string]any, 8)
	for _, e := range compressed {
		key := e.Type
		count, _ := breakdown[key].(int)
		breakdown[key] = count + 1
	}

	marker := Event{
		Type: TypeCompression,
		Data: map[string]any{
			"compressed_count": cut,
			"breakdown":        breakdown,
			"from":             compressed[0].Timestamp,
			"to":               compressed[cut-1].Timestamp,
		},
		// Takes the last compressed entry's timestamp so the stream stays
		// non-decreasing.
		Timestamp: compressed[cut-1].Timestamp,
	}

	remaining := make([]Event, 0, len(s.events)-cut+1)
	remaining = append(remaining, marker)
	remaining = append(remaining, s.events[cut:]...)
	s.events = remaining
}

// Events returns the current entries in order.
func (s *Stream) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the current entry count.
func (s *Stream) Len() int {
	return len(s.events)
}

// EventsByType returns all entries of one type, in order.
func (s *Stream) EventsByType(eventType string) []Event {
	var out []Event
	for _, e := range s.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// RecentEvents returns the last n entries, in order.
func (s *Stream) RecentEvents(n int) []Event {
	if n <= 0 || len(s.events) == 0 {
		return nil
	}
	if n > len(s.events) {
		n = len(s.events)
	}
	out := make([]Event, n)
	copy(out, s.events[len(s.events)-n:])
	return out
}

// ContextString renders the last max entries as LLM context, oldest first.
func (s *Stream) ContextString(max int) string {
	if max <= 0 {
		max = 20
	}
	recent := s.RecentEvents(max)
	if len(recent) == 0 {
		return "No events yet."
	}

	var b strings.Builder
	for _, e := range recent {
		fmt.Fprintf(&b, "[%s] %s", e.Timestamp.Format("15:04:05"), e.Type)
		if e.AgentName != "" {
			fmt.Fprintf(&b, " (%s)", e.AgentName)
		}
		if len(e.Data) > 0 {
			b.WriteString(": ")
			b.WriteString(formatData(e.Data))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatData renders event data deterministically, keys sorted.
func formatData(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := fmt.Sprintf("%v", data[k])
		if len(v) > 200 {
			v = v[:200] + "..."
		}
		parts = append(parts, fmt.Sprintf("%s=%s", k, v))
	}
	return strings.Join(parts, " ")
}
