package stream

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEventAndRecent(t *testing.T) {
	s := New(10, nil)
	s.AddEvent(TypePlanStepStarted, map[string]any{"step": 1}, "resolver")
	s.AddEvent(TypePlanStepCompleted, map[string]any{"step": 1}, "resolver")
	s.AddEvent(TypeError, map[string]any{"error": "boom"}, "")

	assert.Equal(t, 3, s.Len())

	recent := s.RecentEvents(2)
	require.Len(t, recent, 2)
	assert.Equal(t, TypePlanStepCompleted, recent[0].Type)
	assert.Equal(t, TypeError, recent[1].Type)

	errs := s.EventsByType(TypeError)
	require.Len(t, errs, 1)
	assert.Equal(t, "boom", errs[0].Data["error"])
}

func TestCompressionKeepsBoundAndBreakdown(t *testing.T) {
	s := New(10, nil)
	for i := 0; i < 25; i++ {
		s.AddEvent(TypeObservation, map[string]any{"i": i}, "")
	}

	assert.LessOrEqual(t, s.Len(), 11)

	events := s.Events()
	require.Equal(t, TypeCompression, events[0].Type)
	breakdown := events[0].Data["breakdown"].(map[string]any)
	assert.NotZero(t, breakdown[TypeObservation])

	// The newest event always survives compression.
	last := events[len(events)-1]
	assert.Equal(t, 24, last.Data["i"])
}

func TestContextString(t *testing.T) {
	s := New(100, nil)
	assert.Equal(t, "No events yet.", s.ContextString(20))

	s.AddEvent(TypePlanStepStarted, map[string]any{"step": 1, "description": "read files"}, "resolver")
	out := s.ContextString(20)
	assert.Contains(t, out, TypePlanStepStarted)
	assert.Contains(t, out, "(resolver)")
	assert.Contains(t, out, "description=read files")
}

type captureBroadcaster struct {
	events []Event
}

func (b *captureBroadcaster) Broadcast(e Event) { b.events = append(b.events, e) }

func TestBroadcasterReceivesEveryEvent(t *testing.T) {
	b := &captureBroadcaster{}
	s := New(10, b)
	s.AddEvent(TypeToolCall, nil, "")
	s.AddEvent(TypeObservation, nil, "")
	assert.Len(t, b.events, 2)
}

func TestProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50
	properties := gopter.NewProperties(params)

	properties.Property("stream stays bounded by max+1", prop.ForAll(
		func(n int) bool {
			s := New(10, nil)
			for i := 0; i < n; i++ {
				s.AddEvent(TypeObservation, nil, "")
			}
			return s.Len() <= 11
		},
		gen.IntRange(0, 200),
	))

	properties.Property("timestamps are non-decreasing", prop.ForAll(
		func(n int) bool {
			s := New(10, nil)
			tick := time.Unix(0, 0)
			s.now = func() time.Time {
				tick = tick.Add(time.Millisecond)
				return tick
			}
			for i := 0; i < n; i++ {
				s.AddEvent(fmt.Sprintf("TYPE_%d", i%3), nil, "")
			}
			events := s.Events()
			for i := 1; i < len(events); i++ {
				if events[i].Timestamp.Before(events[i-1].Timestamp) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 200),
	))

	properties.TestingRun(t)
}
