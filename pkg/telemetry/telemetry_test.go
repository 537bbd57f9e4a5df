package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sourabhkumawat/healops/pkg/llm"
	"github.com/stretchr/testify/assert"
)

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name  string
		usage llm.Usage
		want  float64
	}{
		{
			name:  "sonnet",
			usage: llm.Usage{Model: "claude-sonnet-4-5", InputTokens: 1_000_000, OutputTokens: 1_000_000},
			want:  18.0,
		},
		{
			name:  "haiku",
			usage: llm.Usage{Model: "claude-haiku-3-5", InputTokens: 2_000_000, OutputTokens: 0},
			want:  1.60,
		},
		{
			name:  "unknown model costs nothing",
			usage: llm.Usage{Model: "mystery-model", InputTokens: 1_000_000},
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimateCost(tt.usage), 1e-9)
		})
	}
}

func TestTrackerAccumulates(t *testing.T) {
	tr := NewTracker("inc-1")
	tr.RecordUsage(llm.Usage{Model: "claude-sonnet-4-5", InputTokens: 100, OutputTokens: 50, TotalTokens: 150})
	tr.RecordUsage(llm.Usage{Model: "claude-sonnet-4-5", InputTokens: 200, OutputTokens: 100, TotalTokens: 300})

	tokens, cost := tr.Totals()
	assert.Equal(t, 450, tokens)
	assert.Greater(t, cost, 0.0)
}

func TestMeterFeedsPrometheusCounters(t *testing.T) {
	const model = "claude-sonnet-meter-test"
	callsBefore := testutil.ToFloat64(llmCalls.WithLabelValues(model))
	inputBefore := testutil.ToFloat64(llmTokens.WithLabelValues(model, "input"))
	costBefore := testutil.ToFloat64(llmCost.WithLabelValues(model))

	Meter{}.RecordUsage(llm.Usage{Model: model, InputTokens: 1000, OutputTokens: 500, TotalTokens: 1500})

	assert.InDelta(t, callsBefore+1, testutil.ToFloat64(llmCalls.WithLabelValues(model)), 1e-9)
	assert.InDelta(t, inputBefore+1000, testutil.ToFloat64(llmTokens.WithLabelValues(model, "input")), 1e-9)
	assert.Greater(t, testutil.ToFloat64(llmCost.WithLabelValues(model)), costBefore)
}

func TestPhasePairing(t *testing.T) {
	tr := NewTracker("inc-1")
	tr.PhaseStart(PhasePlanCreateStart)
	tr.PhaseEnd(PhasePlanCreated, PhasePlanCreateStart)
	// Ending an unstarted phase must not panic.
	tr.PhaseEnd(PhaseCrewCompleted, PhaseCrewStart)
}
