package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/sourabhkumawat/healops/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	responses []string
	err       error
	calls     int
}

func (s *scriptedLLM) Complete(_ context.Context, _ llm.Request) (*llm.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	idx := s.calls
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	s.calls++
	return &llm.Response{Text: s.responses[idx]}, nil
}

func TestCreatePlan_FromJSON(t *testing.T) {
	client := &scriptedLLM{responses: []string{
		`[{"step_number":1,"description":"Read all affected files"},{"step_number":2,"description":"Trace dependencies"}]`,
	}}
	p := New(3)
	steps := p.CreatePlan(context.Background(), "null deref", []string{"src/a.ts"}, client, "")

	require.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].StepNumber)
	assert.Equal(t, StatusPending, steps[0].Status)
	assert.False(t, p.IsComplete())
}

func TestCreatePlan_FallsBackOnLLMError(t *testing.T) {
	p := New(3)
	steps := p.CreatePlan(context.Background(), "rc", nil, &scriptedLLM{err: errors.New("down")}, "")

	require.Len(t, steps, 5)
	assert.Equal(t, "Read all affected files completely", steps[0].Description)
}

func TestCreatePlan_FallsBackOnGarbage(t *testing.T) {
	p := New(3)
	steps := p.CreatePlan(context.Background(), "rc", nil, &scriptedLLM{responses: []string{"sure, here is a plan!"}}, "")
	assert.Len(t, steps, 5)
}

func TestStepLifecycle(t *testing.T) {
	p := New(3)
	p.Restore([]Step{
		{StepNumber: 1, Description: "a", Status: StatusPending},
		{StepNumber: 2, Description: "b", Status: StatusPending},
	})

	step := p.CurrentStep()
	require.NotNil(t, step)
	assert.Equal(t, "a", step.Description)

	p.MarkStepInProgress()
	assert.Equal(t, StatusInProgress, p.CurrentStep().Status)

	p.MarkStepCompleted("done")
	p.AdvanceToNextStep()
	p.MarkStepFailed("boom")
	p.AdvanceToNextStep()

	assert.Nil(t, p.CurrentStep())
	assert.True(t, p.IsComplete())
	completed, total := p.Progress()
	assert.Equal(t, 1, completed)
	assert.Equal(t, 2, total)
}

func TestReplan_PreservesCompletedSteps(t *testing.T) {
	p := New(3)
	p.Restore([]Step{
		{StepNumber: 1, Description: "read files", Status: StatusCompleted, Result: "read 3 files"},
		{StepNumber: 2, Description: "bad approach", Status: StatusFailed},
	})

	client := &scriptedLLM{responses: []string{
		`[{"step_number":1,"description":"read files"},{"step_number":2,"description":"patch the guard"},{"step_number":3,"description":"validate"}]`,
	}}
	ok := p.Replan(context.Background(), "3 consecutive failures", "new info", client, "")
	require.True(t, ok)

	steps := p.Steps()
	require.Len(t, steps, 3)
	assert.Equal(t, "read files", steps[0].Description)
	assert.Equal(t, StatusCompleted, steps[0].Status)
	assert.Equal(t, "read 3 files", steps[0].Result)
	assert.Equal(t, "patch the guard", steps[1].Description)
	assert.Equal(t, 2, steps[1].StepNumber)
	assert.Equal(t, StatusPending, steps[1].Status)

	// Cursor sits at the first pending step.
	assert.Equal(t, "patch the guard", p.CurrentStep().Description)
	assert.Equal(t, 1, p.ReplanCount())
}

func TestStepTimestamps(t *testing.T) {
	p := New(3)
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return at }
	p.Restore([]Step{
		{StepNumber: 1, Description: "a", Status: StatusPending},
		{StepNumber: 2, Description: "b", Status: StatusPending},
	})

	p.MarkStepInProgress()
	require.NotNil(t, p.CurrentStep().StartedAt)
	assert.Equal(t, at, *p.CurrentStep().StartedAt)

	p.MarkStepCompleted("done")
	require.NotNil(t, p.CurrentStep().CompletedAt)

	p.AdvanceToNextStep()
	p.MarkStepFailed("first try")
	p.MarkStepFailed("second try")
	step := p.CurrentStep()
	assert.Equal(t, []string{"first try", "second try"}, step.Errors)
	require.NotNil(t, step.CompletedAt)
}

func TestSkippedStepsAreTerminal(t *testing.T) {
	p := New(3)
	p.Restore([]Step{
		{StepNumber: 1, Description: "a", Status: StatusCompleted},
		{StepNumber: 2, Description: "b", Status: StatusSkipped},
	})
	assert.True(t, p.IsComplete())
	completed, total := p.Progress()
	assert.Equal(t, 1, completed)
	assert.Equal(t, 2, total)

	md := p.ToTodoMD()
	assert.Contains(t, md, "- [-] 2. b")
}

func TestLastReplanReason(t *testing.T) {
	p := New(3)
	assert.Empty(t, p.LastReplanReason())

	p.Restore([]Step{{StepNumber: 1, Description: "a", Status: StatusFailed}})
	client := &scriptedLLM{responses: []string{`[{"step_number":1,"description":"b"}]`}}
	require.True(t, p.Replan(context.Background(), "critical step failure", "", client, ""))
	assert.Equal(t, "critical step failure", p.LastReplanReason())
}

func TestReplan_BudgetExhausted(t *testing.T) {
	p := New(1)
	p.Restore([]Step{{StepNumber: 1, Description: "a", Status: StatusFailed}})
	client := &scriptedLLM{responses: []string{`[{"step_number":1,"description":"b"}]`}}

	assert.True(t, p.Replan(context.Background(), "r1", "", client, ""))
	assert.False(t, p.Replan(context.Background(), "r2", "", client, ""))
}

func TestReplan_RepairsInvalidEscapes(t *testing.T) {
	p := New(3)
	p.Restore([]Step{{StepNumber: 1, Description: "done already", Status: StatusCompleted, Result: "ok"}})

	client := &scriptedLLM{responses: []string{
		"```json\n[{\"step_number\":1,\"description\":\"match pattern \\d+ in logs\"}]\n```",
	}}
	require.True(t, p.Replan(context.Background(), "scope change", "", client, ""))

	steps := p.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, StatusCompleted, steps[0].Status)
	assert.Contains(t, steps[1].Description, `\d+`)
}

func TestToTodoMD(t *testing.T) {
	p := New(3)
	p.Restore([]Step{
		{StepNumber: 1, Description: "read files", Status: StatusCompleted, Result: "ok"},
		{StepNumber: 2, Description: "fix bug", Status: StatusInProgress},
		{StepNumber: 3, Description: "validate", Status: StatusPending},
	})
	md := p.ToTodoMD()
	assert.Contains(t, md, "Progress: 1/3")
	assert.Contains(t, md, "- [x] 1. read files")
	assert.Contains(t, md, "- [~] 2. fix bug")
	assert.Contains(t, md, "- [ ] 3. validate")
}

func TestParseSteps_Shapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"raw array", `[{"step_number":1,"description":"a"}]`, 1},
		{"fenced", "Here you go:\n```json\n[{\"step_number\":1,\"description\":\"a\"}]\n```", 1},
		{"fenced no tag", "```\n[{\"description\":\"a\"},{\"description\":\"b\"}]\n```", 2},
		{"prose around array", `Sure! [{"description":"a"}] Hope that helps.`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := ParseSteps(tt.in)
			require.NoError(t, err)
			assert.Len(t, steps, tt.want)
		})
	}

	_, err := ParseSteps("no json here")
	assert.Error(t, err)
}

func TestParseSteps_CarriesStepDetails(t *testing.T) {
	steps, err := ParseSteps(`[{
		"step_number": 1,
		"description": "read the handler",
		"files_to_read": ["src/api/users.ts", "src/api/guard.ts"],
		"expected_output": "full handler context loaded"
	}]`)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, []string{"src/api/users.ts", "src/api/guard.ts"}, steps[0].FilesToRead)
	assert.Equal(t, "full handler context loaded", steps[0].ExpectedOutput)

	md := func() string {
		p := New(3)
		p.Restore(steps)
		return p.ToTodoMD()
	}()
	assert.Contains(t, md, "files: src/api/users.ts, src/api/guard.ts")
	assert.Contains(t, md, "expect: full handler context loaded")
}

func TestRepairInvalidEscapes(t *testing.T) {
	assert.Equal(t, `{"re":"\\d+"}`, RepairInvalidEscapes(`{"re":"\d+"}`))
	// Valid escapes are left alone.
	assert.Equal(t, `{"s":"line\nbreak \"q\" é"}`, RepairInvalidEscapes(`{"s":"line\nbreak \"q\" é"}`))
	// Backslashes outside strings are untouched.
	assert.Equal(t, `\d [1]`, RepairInvalidEscapes(`\d [1]`))
}

func TestReplanPreservesCompletedProperty(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50
	properties := gopter.NewProperties(params)

	properties.Property("every completed step survives a merge", prop.ForAll(
		func(completedCount, proposedCount int) bool {
			var old []Step
			for i := 0; i < completedCount; i++ {
				old = append(old, Step{
					StepNumber:  i + 1,
					Description: descFor(i),
					Status:      StatusCompleted,
					Result:      "r",
				})
			}
			var proposed []Step
			for i := 0; i < proposedCount; i++ {
				proposed = append(proposed, Step{Description: descFor(i + completedCount/2)})
			}
			merged := mergePlans(old, proposed)

			byDesc := make(map[string]Step)
			for _, s := range merged {
				byDesc[s.Description] = s
			}
			for _, s := range old {
				got, ok := byDesc[s.Description]
				if !ok || got.Status != StatusCompleted || got.Result != "r" {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 10),
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}

func descFor(i int) string {
	return "step description " + string(rune('a'+i%26))
}
