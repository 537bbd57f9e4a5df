// Package planner creates and maintains the numbered step plan an agent run
// executes: LLM-generated plans with lenient JSON extraction, a deterministic
// fallback plan, and replanning that preserves completed work.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sourabhkumawat/healops/pkg/agent/prompt"
	"github.com/sourabhkumawat/healops/pkg/llm"
)

// Step statuses.
const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
	StatusSkipped    = "SKIPPED"
)

// DefaultMaxReplans bounds how many times a plan may be revised.
const DefaultMaxReplans = 3

// maxResultLen caps the stored step result.
const maxResultLen = 500

// Step is one numbered unit of work.
type Step struct {
	StepNumber     int        `json:"step_number"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	FilesToRead    []string   `json:"files_to_read,omitempty"`
	ExpectedOutput string     `json:"expected_output,omitempty"`
	Result         string     `json:"result,omitempty"`
	Errors         []string   `json:"errors,omitempty"`
	RetryCount     int        `json:"retry_count,omitempty"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// Planner owns the plan of one agent run. Single-writer: only the owning
// agent loop touches it.
type Planner struct {
	steps            []Step
	currentStepIndex int
	replanCount      int
	lastReplanReason string
	maxReplans       int
	logger           *slog.Logger
	now              func() time.Time
}

// New creates an empty planner.
func New(maxReplans int) *Planner {
	if maxReplans <= 0 {
		maxReplans = DefaultMaxReplans
	}
	return &Planner{
		maxReplans: maxReplans,
		logger:     slog.Default().With("component", "planner"),
		now:        time.Now,
	}
}

// CreatePlan asks the LLM for a plan. On any generation or parse failure it
// falls back to the fixed five-step plan; CreatePlan never fails.
func (p *Planner) CreatePlan(ctx context.Context, rootCause string, affectedFiles []string, client llm.Client, knowledgeContext string) []Step {
	steps := p.generate(ctx, client, prompt.BuildPlanPrompt(rootCause, affectedFiles, knowledgeContext))
	if len(steps) == 0 {
		p.logger.Warn("Plan generation failed, using fallback plan")
		steps = fallbackPlan()
	}
	p.steps = steps
	p.currentStepIndex = 0
	return p.Steps()
}

// Replan revises the plan, preserving every COMPLETED step (matched by
// description equality) with its original result. New non-duplicate steps
// are appended with renumbered step numbers; the cursor moves to the first
// PENDING step. Returns false when the replan budget is exhausted.
func (p *Planner) Replan(ctx context.Context, reason, newContext string, client llm.Client, knowledgeContext string) bool {
	if p.replanCount >= p.maxReplans {
		p.logger.Warn("Replan budget exhausted", "replan_count", p.replanCount)
		return false
	}
	p.replanCount++

	var completedDescs []string
	for _, s := range p.steps {
		if s.Status == StatusCompleted {
			completedDescs = append(completedDescs, s.Description)
		}
	}

	newSteps := p.generate(ctx, client, prompt.BuildReplanPrompt(reason, newContext, completedDescs, knowledgeContext))
	if len(newSteps) == 0 {
		newSteps = fallbackPlan()
	}

	p.steps = mergePlans(p.steps, newSteps)
	p.currentStepIndex = p.firstPendingIndex()
	p.lastReplanReason = reason
	p.logger.Info("Plan revised", "reason", reason, "replan_count", p.replanCount, "steps", len(p.steps))
	return true
}

// LastReplanReason returns what triggered the most recent successful replan,
// or "" when the plan was never revised.
func (p *Planner) LastReplanReason() string {
	return p.lastReplanReason
}

// mergePlans keeps completed steps and appends the new plan's non-duplicate
// steps renumbered after the highest used step number. O(n) over both plans.
func mergePlans(old, proposed []Step) []Step {
	var merged []Step
	completed := make(map[string]struct{})
	maxUsed := 0
	for _, s := range old {
		if s.Status == StatusCompleted {
			merged = append(merged, s)
			completed[s.Description] = struct{}{}
			if s.StepNumber > maxUsed {
				maxUsed = s.StepNumber
			}
		}
	}
	for _, s := range proposed {
		if _, done := completed[s.Description]; done {
			continue
		}
		maxUsed++
		merged = append(merged, Step{
			StepNumber:     maxUsed,
			Description:    s.Description,
			Status:         StatusPending,
			FilesToRead:    s.FilesToRead,
			ExpectedOutput: s.ExpectedOutput,
		})
	}
	return merged
}

// CurrentStep returns the step under the cursor, or nil when the plan is
// complete.
func (p *Planner) CurrentStep() *Step {
	if p.currentStepIndex < 0 || p.currentStepIndex >= len(p.steps) {
		return nil
	}
	return &p.steps[p.currentStepIndex]
}

// MarkStepInProgress marks the current step IN_PROGRESS and stamps its start
// time on the first transition.
func (p *Planner) MarkStepInProgress() {
	if s := p.CurrentStep(); s != nil {
		s.Status = StatusInProgress
		if s.StartedAt == nil {
			at := p.now()
			s.StartedAt = &at
		}
	}
}

// MarkStepCompleted marks the current step COMPLETED with its result,
// truncated to a bounded length.
func (p *Planner) MarkStepCompleted(result string) {
	if s := p.CurrentStep(); s != nil {
		s.Status = StatusCompleted
		if len(result) > maxResultLen {
			result = result[:maxResultLen]
		}
		s.Result = result
		at := p.now()
		s.CompletedAt = &at
	}
}

// MarkStepFailed marks the current step FAILED, appending the error to the
// step's error history (retries can fail more than once).
func (p *Planner) MarkStepFailed(stepErr string) {
	if s := p.CurrentStep(); s != nil {
		s.Status = StatusFailed
		s.Errors = append(s.Errors, stepErr)
		at := p.now()
		s.CompletedAt = &at
	}
}

// AdvanceToNextStep moves the cursor forward.
func (p *Planner) AdvanceToNextStep() {
	if p.currentStepIndex < len(p.steps) {
		p.currentStepIndex++
	}
}

// IsComplete reports whether no PENDING or IN_PROGRESS step remains at or
// after the cursor.
func (p *Planner) IsComplete() bool {
	for i := p.currentStepIndex; i < len(p.steps); i++ {
		if p.steps[i].Status == StatusPending || p.steps[i].Status == StatusInProgress {
			return false
		}
	}
	return true
}

// Progress returns (completed, total).
func (p *Planner) Progress() (int, int) {
	completed := 0
	for _, s := range p.steps {
		if s.Status == StatusCompleted {
			completed++
		}
	}
	return completed, len(p.steps)
}

// ReplanCount returns how many times the plan was revised.
func (p *Planner) ReplanCount() int {
	return p.replanCount
}

// Steps returns a copy of the plan.
func (p *Planner) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Restore replaces the plan with persisted steps, cursor at the first
// PENDING step.
func (p *Planner) Restore(steps []Step) {
	p.steps = make([]Step, len(steps))
	copy(p.steps, steps)
	p.currentStepIndex = p.firstPendingIndex()
}

// ToTodoMD renders the plan as the scratchpad's Markdown checklist.
func (p *Planner) ToTodoMD() string {
	var b strings.Builder
	b.WriteString("# Resolution Plan\n\n")
	completed, total := p.Progress()
	fmt.Fprintf(&b, "Progress: %d/%d steps completed\n\n", completed, total)
	for _, s := range p.steps {
		mark := " "
		switch s.Status {
		case StatusCompleted:
			mark = "x"
		case StatusInProgress:
			mark = "~"
		case StatusFailed:
			mark = "!"
		case StatusSkipped:
			mark = "-"
		}
		fmt.Fprintf(&b, "- [%s] %d. %s\n", mark, s.StepNumber, s.Description)
		if len(s.FilesToRead) > 0 {
			fmt.Fprintf(&b, "      files: %s\n", strings.Join(s.FilesToRead, ", "))
		}
		if s.ExpectedOutput != "" {
			fmt.Fprintf(&b, "      expect: %s\n", s.ExpectedOutput)
		}
		if s.Result != "" {
			fmt.Fprintf(&b, "      result: %s\n", s.Result)
		}
		for _, e := range s.Errors {
			fmt.Fprintf(&b, "      error: %s\n", e)
		}
	}
	return b.String()
}

func (p *Planner) firstPendingIndex() int {
	for i, s := range p.steps {
		if s.Status == StatusPending || s.Status == StatusInProgress {
			return i
		}
	}
	return len(p.steps)
}

func (p *Planner) generate(ctx context.Context, client llm.Client, userPrompt string) []Step {
	if client == nil {
		return nil
	}
	resp, err := client.Complete(ctx, llm.Request{
		System: prompt.PlanSystem,
		Prompt: userPrompt,
	})
	if err != nil {
		p.logger.Warn("Plan LLM call failed", "error", err)
		return nil
	}
	steps, err := ParseSteps(resp.Text)
	if err != nil {
		p.logger.Warn("Plan parse failed", "error", err)
		return nil
	}
	return steps
}

// fallbackPlan is the deterministic plan used when generation fails.
func fallbackPlan() []Step {
	descs := []string{
		"Read all affected files completely",
		"Trace dependencies of the affected code",
		"Analyze the root cause in the light of full context",
		"Generate the code fix",
		"Validate the fix",
	}
	steps := make([]Step, len(descs))
	for i, d := range descs {
		steps[i] = Step{StepNumber: i + 1, Description: d, Status: StatusPending}
	}
	return steps
}
