// Package telemetry emits structured phase events for agent runs and tracks
// LLM token usage with estimated cost.
package telemetry

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sourabhkumawat/healops/pkg/llm"
)

// Phase names of the agent run lifecycle.
const (
	PhaseRunStart          = "run_start"
	PhaseMemoryRetrieveStart = "memory_retrieve_start"
	PhaseMemoryRetrieved   = "memory_retrieved"
	PhaseKnowledgeIndexStart = "knowledge_index_start"
	PhaseKnowledgeIndexed  = "knowledge_indexed"
	PhasePlanCreateStart   = "plan_create_start"
	PhasePlanCreated       = "plan_created"
	PhaseCrewStart         = "crew_start"
	PhaseCrewCompleted     = "crew_completed"
	PhaseCrewTimeout       = "crew_timeout"
	PhaseCrewFailed        = "crew_failed"
)

var (
	phaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "healops",
		Subsystem: "agent",
		Name:      "phase_duration_seconds",
		Help:      "Duration of agent run phases.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14),
	}, []string{"phase"})

	llmTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healops",
		Subsystem: "llm",
		Name:      "tokens_total",
		Help:      "LLM tokens consumed, by model and direction.",
	}, []string{"model", "direction"})

	llmCost = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healops",
		Subsystem: "llm",
		Name:      "estimated_cost_usd_total",
		Help:      "Estimated LLM spend in USD, by model.",
	}, []string{"model"})

	llmCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healops",
		Subsystem: "llm",
		Name:      "calls_total",
		Help:      "LLM calls, by model.",
	}, []string{"model"})

	incidentsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healops",
		Subsystem: "resolver",
		Name:      "runs_total",
		Help:      "Agent runs by terminal status.",
	}, []string{"status"})
)

// modelPrice is USD per million tokens.
type modelPrice struct {
	input  float64
	output float64
}

// priceTable maps model-name substrings to prices. Matched in order; first
// hit wins. Unknown models are counted with zero cost.
var priceTable = []struct {
	match string
	price modelPrice
}{
	{"claude-opus", modelPrice{input: 15.0, output: 75.0}},
	{"claude-sonnet", modelPrice{input: 3.0, output: 15.0}},
	{"claude-haiku", modelPrice{input: 0.80, output: 4.0}},
	{"claude-3-5-sonnet", modelPrice{input: 3.0, output: 15.0}},
	{"claude-3-5-haiku", modelPrice{input: 0.80, output: 4.0}},
	{"gpt-4o", modelPrice{input: 2.50, output: 10.0}},
	{"gpt-4o-mini", modelPrice{input: 0.15, output: 0.60}},
}

// Tracker accumulates usage for a single run and mirrors it to Prometheus.
type Tracker struct {
	logger *slog.Logger

	mu          sync.Mutex
	phaseStarts map[string]time.Time
	totalTokens int
	totalCost   float64
	calls       int
}

// NewTracker creates a tracker scoped to one incident run.
func NewTracker(incidentID string) *Tracker {
	return &Tracker{
		logger:      slog.Default().With("component", "telemetry", "incident_id", incidentID),
		phaseStarts: make(map[string]time.Time),
	}
}

// PhaseStart records the beginning of a phase.
func (t *Tracker) PhaseStart(phase string) {
	t.mu.Lock()
	t.phaseStarts[phase] = time.Now()
	t.mu.Unlock()
	t.logger.Info("Phase started", "phase", phase)
}

// PhaseEnd records the end of a phase, pairing it with the matching start
// phase when one was recorded.
func (t *Tracker) PhaseEnd(phase, startPhase string) {
	t.mu.Lock()
	start, ok := t.phaseStarts[startPhase]
	delete(t.phaseStarts, startPhase)
	t.mu.Unlock()

	var dur time.Duration
	if ok {
		dur = time.Since(start)
		phaseDuration.WithLabelValues(phase).Observe(dur.Seconds())
	}
	t.logger.Info("Phase finished", "phase", phase, "duration_ms", dur.Milliseconds())
}

// Event emits a single phase event with no duration pairing.
func (t *Tracker) Event(phase string, args ...any) {
	t.logger.Info("Phase event", append([]any{"phase", phase}, args...)...)
}

// RunFinished records the terminal status of the run.
func (t *Tracker) RunFinished(status string) {
	incidentsResolved.WithLabelValues(status).Inc()
	t.mu.Lock()
	tokens, cost, calls := t.totalTokens, t.totalCost, t.calls
	t.mu.Unlock()
	t.logger.Info("Run finished",
		"status", status,
		"llm_calls", calls,
		"total_tokens", tokens,
		"estimated_cost_usd", cost)
}

// Meter is the process-wide llm.UsageRecorder: it mirrors every call to the
// Prometheus counters without per-run accumulation. Use it as the shared LLM
// client's recorder; Tracker covers per-run totals.
type Meter struct{}

// RecordUsage implements llm.UsageRecorder.
func (Meter) RecordUsage(usage llm.Usage) {
	recordUsageMetrics(usage, EstimateCost(usage))
}

// recordUsageMetrics updates the Prometheus LLM counters for one call.
func recordUsageMetrics(usage llm.Usage, cost float64) {
	llmCalls.WithLabelValues(usage.Model).Inc()
	llmTokens.WithLabelValues(usage.Model, "input").Add(float64(usage.InputTokens))
	llmTokens.WithLabelValues(usage.Model, "output").Add(float64(usage.OutputTokens))
	llmCost.WithLabelValues(usage.Model).Add(cost)
}

// RecordUsage implements llm.UsageRecorder.
func (t *Tracker) RecordUsage(usage llm.Usage) {
	cost := EstimateCost(usage)
	recordUsageMetrics(usage, cost)

	t.mu.Lock()
	t.totalTokens += usage.TotalTokens
	t.totalCost += cost
	t.calls++
	t.mu.Unlock()

	t.logger.Debug("LLM usage",
		"model", usage.Model,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
		"total_tokens", usage.TotalTokens,
		"estimated_cost_usd", cost)
}

// Totals returns the accumulated token count and estimated cost for the run.
func (t *Tracker) Totals() (tokens int, costUSD float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalTokens, t.totalCost
}

// EstimateCost returns the USD cost of one call per the price table.
func EstimateCost(usage llm.Usage) float64 {
	model := strings.ToLower(usage.Model)
	for _, entry := range priceTable {
		if strings.Contains(model, entry.match) {
			return float64(usage.InputTokens)/1e6*entry.price.input +
				float64(usage.OutputTokens)/1e6*entry.price.output
		}
	}
	return 0
}
