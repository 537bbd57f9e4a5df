package agent

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sourabhkumawat/healops/pkg/agent/prompt"
	"github.com/sourabhkumawat/healops/pkg/agent/stream"
	"github.com/sourabhkumawat/healops/pkg/config"
	"github.com/sourabhkumawat/healops/pkg/github"
	"github.com/sourabhkumawat/healops/pkg/knowledge"
	"github.com/sourabhkumawat/healops/pkg/llm"
	"github.com/sourabhkumawat/healops/pkg/memory"
	"github.com/sourabhkumawat/healops/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routeLLM answers plan and act requests separately, by system prompt.
type routeLLM struct {
	mu        sync.Mutex
	planJSON  []string
	planCalls int
	act       func(userPrompt string, call int) (string, error)
	actCalls  int
}

func (r *routeLLM) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch req.System {
	case prompt.PlanSystem:
		idx := r.planCalls
		if idx >= len(r.planJSON) {
			idx = len(r.planJSON) - 1
		}
		r.planCalls++
		return &llm.Response{Text: r.planJSON[idx]}, nil
	case prompt.ActSystem:
		r.actCalls++
		text, err := r.act(req.Prompt, r.actCalls)
		if err != nil {
			return nil, err
		}
		return &llm.Response{Text: text}, nil
	}
	return nil, errors.New("unexpected system prompt")
}

type loopRepo struct {
	mu    sync.Mutex
	files map[string]string
}

func (f *loopRepo) GetFileContents(_ context.Context, _, path, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files[path], nil
}

func (f *loopRepo) GetRepoStructure(context.Context, string, string, string, int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.files))
	for p := range f.files {
		out = append(out, p)
	}
	return out, nil
}

func (f *loopRepo) SearchCode(context.Context, string, string, int) ([]github.SearchResult, error) {
	return nil, nil
}

type loopMemory struct {
	mu     sync.Mutex
	ctx    memory.Context
	stored []string
}

func (m *loopMemory) RetrieveContext(context.Context, string) memory.Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ctx
}

func (m *loopMemory) StoreFixWithWorkspace(_ context.Context, fingerprint, _, _ string, _ memory.WorkspaceContext, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = append(m.stored, fingerprint)
}

func (m *loopMemory) SetErrorType(context.Context, string, string) {}

func (m *loopMemory) GetLearningPattern(context.Context, string) *memory.LearningPattern {
	return nil
}

type loopKnowledge struct{}

func (loopKnowledge) IndexPastFixes(context.Context, []knowledge.PastFix)  {}
func (loopKnowledge) IndexCodebasePatterns(context.Context, []string)      {}
func (loopKnowledge) RetrieveForPlanning(context.Context, string, []string) []knowledge.Item {
	return []knowledge.Item{{Content: "null guard before dereference", Score: 0.9}}
}
func (loopKnowledge) RetrieveRelevantKnowledge(context.Context, string, int) []knowledge.Item {
	return nil
}

type fakeRecorder struct {
	mu   sync.Mutex
	recs []RunRecord
}

func (r *fakeRecorder) PersistRun(_ context.Context, rec RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	return nil
}

func testConfig() config.AgentConfig {
	return config.AgentConfig{
		MaxIterations:      12,
		MaxReplans:         3,
		MaxRetriesPerStep:  3,
		MaxEventStreamSize: 100,
		StepTimeout:        5 * time.Second,
		CrewTimeout:        30 * time.Second,
		CodeExecTimeout:    5 * time.Second,
	}
}

func externalTrace() models.Metadata {
	return models.Metadata{
		models.MetaStackTrace: []any{
			map[string]any{"file": "/app/node_modules/express/lib/router/index.js", "line": float64(284)},
			map[string]any{"file": "/app/node_modules/express/lib/application.js", "line": float64(119)},
		},
	}
}

func appTrace() models.Metadata {
	return models.Metadata{
		models.MetaStackTrace: []any{
			map[string]any{"file": "/app/src/api/users.ts", "line": float64(42), "function": "getUser"},
			map[string]any{"file": "/app/node_modules/express/lib/router/index.js", "line": float64(284)},
		},
	}
}

func TestRun_SkipsExternalCodeIncident(t *testing.T) {
	client := &routeLLM{
		planJSON: []string{`[{"step_number":1,"description":"x"}]`},
		act:      func(string, int) (string, error) { return "", errors.New("should not act") },
	}
	loop := NewLoop(Options{
		Config:        testConfig(),
		LLM:           client,
		ScratchpadDir: t.TempDir(),
	})

	res := loop.Run(context.Background(), Input{
		IncidentID:  "inc-ext",
		ServiceName: "svc-a",
		Fingerprint: "fp-ext",
		Metadata:    externalTrace(),
	})

	assert.Equal(t, StatusSuccess, res.Status)
	assert.True(t, res.Skipped)
	assert.True(t, strings.HasPrefix(res.SkipExplanation, "## Why we didn't auto-resolve this incident"))
	assert.Contains(t, res.SkipExplanation, "node_modules/express")
	assert.Empty(t, res.Fixes)
	assert.Zero(t, client.planCalls)
	assert.Zero(t, client.actCalls)
}

func TestRun_SuccessfulResolution(t *testing.T) {
	client := &routeLLM{
		planJSON: []string{
			`[{"step_number":1,"description":"Read src/api/users.ts completely"},` +
				`{"step_number":2,"description":"Write the null guard fix"}]`,
		},
		act: func(userPrompt string, _ int) (string, error) {
			if strings.Contains(userPrompt, "Current step: Read") {
				return `{"tool_calls":[{"tool":"read_file","args":{"path":"src/api/users.ts"}}]}`, nil
			}
			return `{"tool_calls":[{"tool":"write_file","args":{"path":"src/api/users.ts","content":"if (!user) return null;\n"}}]}`, nil
		},
	}
	repo := &loopRepo{files: map[string]string{
		"src/api/users.ts": "export function getUser(id) { return db.find(id).name; }\n",
	}}
	mem := &loopMemory{}
	rec := &fakeRecorder{}
	loop := NewLoop(Options{
		Config:        testConfig(),
		LLM:           client,
		Repo:          repo,
		Memory:        mem,
		Knowledge:     loopKnowledge{},
		Recorder:      rec,
		ScratchpadDir: t.TempDir(),
	})

	res := loop.Run(context.Background(), Input{
		IncidentID:  "inc-ok",
		Title:       "TypeError in getUser",
		ServiceName: "svc-a",
		RootCause:   "db.find can return undefined",
		Fingerprint: "fp-ok",
		RepoName:    "acme/shop",
		Ref:         "main",
		Metadata:    appTrace(),
	})

	assert.Equal(t, StatusSuccess, res.Status)
	assert.False(t, res.Skipped)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, 2, res.PlanCompleted)
	assert.Contains(t, res.Fixes["src/api/users.ts"], "if (!user) return null;")
	assert.Equal(t, "fp-ok", res.Fingerprint)

	// Learning recorded and run persisted.
	require.Len(t, mem.stored, 1)
	assert.Equal(t, "fp-ok", mem.stored[0])
	require.Len(t, rec.recs, 1)
	assert.Equal(t, StatusSuccess, rec.recs[0].Status)
	assert.Len(t, rec.recs[0].Files, 1)

	var completedEvents int
	for _, e := range res.Events {
		if e.Type == stream.TypePlanStepCompleted {
			completedEvents++
		}
	}
	assert.Equal(t, 2, completedEvents)
}

func TestRun_ReadOnlySuccessReportsNoFixes(t *testing.T) {
	client := &routeLLM{
		planJSON: []string{`[{"step_number":1,"description":"Inspect src/api/users.ts for the failing guard"}]`},
		act: func(string, int) (string, error) {
			return `{"tool_calls":[{"tool":"read_file","args":{"path":"src/api/users.ts"}}]}`, nil
		},
	}
	repo := &loopRepo{files: map[string]string{
		"src/api/users.ts": "export function getUser(id) { return db.find(id).name; }\n",
	}}
	mem := &loopMemory{}
	rec := &fakeRecorder{}
	loop := NewLoop(Options{
		Config:        testConfig(),
		LLM:           client,
		Repo:          repo,
		Memory:        mem,
		Recorder:      rec,
		ScratchpadDir: t.TempDir(),
	})

	res := loop.Run(context.Background(), Input{
		IncidentID:  "inc-readonly",
		Title:       "TypeError in getUser",
		ServiceName: "svc-a",
		Fingerprint: "fp-readonly",
		RepoName:    "acme/shop",
		Ref:         "main",
		Metadata:    appTrace(),
	})

	assert.Equal(t, StatusSuccess, res.Status)
	// Files the run only read, preloaded or fetched through tools, are not
	// fixes: nothing to open a PR for and nothing to learn as a modification.
	assert.Empty(t, res.Fixes)
	assert.Empty(t, mem.stored)
	require.Len(t, rec.recs, 1)
	assert.Empty(t, rec.recs[0].Files)
}

func TestRun_RetryableErrorRetriesSameStep(t *testing.T) {
	client := &routeLLM{
		planJSON: []string{`[{"step_number":1,"description":"Apply the fix"}]`},
		act: func(_ string, call int) (string, error) {
			if call <= 2 {
				return "", errors.New("429 rate limit exceeded")
			}
			return `{"tool_calls":[{"tool":"write_file","args":{"path":"src/a.ts","content":"ok\n"}}]}`, nil
		},
	}
	loop := NewLoop(Options{
		Config:        testConfig(),
		LLM:           client,
		ScratchpadDir: t.TempDir(),
	})

	res := loop.Run(context.Background(), Input{
		IncidentID:  "inc-retry",
		Fingerprint: "fp-retry",
		Metadata:    models.Metadata{},
	})

	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, 3, res.Iterations)
	assert.Equal(t, 3, client.actCalls)
}

func TestRun_ReplansAfterConsecutiveFailures(t *testing.T) {
	client := &routeLLM{
		planJSON: []string{
			`[{"step_number":1,"description":"step one"},{"step_number":2,"description":"step two"},{"step_number":3,"description":"step three"}]`,
			`[{"step_number":1,"description":"fresh approach"}]`,
		},
		// Never emits valid tool-call JSON, so every step fails.
		act: func(string, int) (string, error) { return "I cannot comply.", nil },
	}
	rec := &fakeRecorder{}
	loop := NewLoop(Options{
		Config:        testConfig(),
		LLM:           client,
		Recorder:      rec,
		ScratchpadDir: t.TempDir(),
	})

	res := loop.Run(context.Background(), Input{
		IncidentID:  "inc-replan",
		Fingerprint: "fp-replan",
		Metadata:    models.Metadata{},
	})

	assert.Equal(t, StatusError, res.Status)
	assert.GreaterOrEqual(t, client.planCalls, 2)

	var planUpdated bool
	for _, e := range res.Events {
		if e.Type == stream.TypePlanUpdated {
			planUpdated = true
		}
	}
	assert.True(t, planUpdated)

	// The persisted run carries what triggered the last replan.
	require.Len(t, rec.recs, 1)
	assert.Greater(t, rec.recs[0].ReplanCount, 0)
	assert.Contains(t, rec.recs[0].ReplanReason, "consecutive step failures")
}

func TestRun_CrewTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.CrewTimeout = time.Nanosecond
	client := &routeLLM{
		planJSON: []string{`[{"step_number":1,"description":"step"}]`},
		act:      func(string, int) (string, error) { return "", errors.New("unreachable") },
	}
	loop := NewLoop(Options{Config: cfg, LLM: client, ScratchpadDir: t.TempDir()})

	res := loop.Run(context.Background(), Input{
		IncidentID:  "inc-slow",
		Fingerprint: "fp-slow",
		Metadata:    models.Metadata{},
	})

	assert.Equal(t, StatusError, res.Status)
	assert.Contains(t, res.Error, "timeout")

	var sawError bool
	for _, e := range res.Events {
		if e.Type == stream.TypeError {
			sawError = true
		}
	}
	assert.True(t, sawError)
}

// Two concurrent runs for distinct incidents never cross-write workspaces or
// event streams.
func TestRun_ConcurrentIsolation(t *testing.T) {
	client := &routeLLM{
		planJSON: []string{`[{"step_number":1,"description":"Write the fix file"}]`},
		act: func(userPrompt string, _ int) (string, error) {
			// Target a file named after the incident in the workspace header.
			switch {
			case strings.Contains(userPrompt, "incident inc-a"):
				return `{"tool_calls":[{"tool":"write_file","args":{"path":"src/fix-a.ts","content":"a\n"}}]}`, nil
			case strings.Contains(userPrompt, "incident inc-b"):
				return `{"tool_calls":[{"tool":"write_file","args":{"path":"src/fix-b.ts","content":"b\n"}}]}`, nil
			}
			return "", errors.New("unknown incident")
		},
	}
	loop := NewLoop(Options{
		Config:        testConfig(),
		LLM:           client,
		ScratchpadDir: t.TempDir(),
	})

	results := make(map[string]*Result, 2)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, id := range []string{"inc-a", "inc-b"} {
		wg.Add(1)
		go func(incidentID string) {
			defer wg.Done()
			res := loop.Run(context.Background(), Input{
				IncidentID:  incidentID,
				Fingerprint: "fp-" + incidentID,
				Metadata:    models.Metadata{},
			})
			mu.Lock()
			results[incidentID] = res
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	require.Len(t, results, 2)
	a, b := results["inc-a"], results["inc-b"]
	assert.Equal(t, StatusSuccess, a.Status)
	assert.Equal(t, StatusSuccess, b.Status)

	assert.Contains(t, a.Fixes, "src/fix-a.ts")
	assert.NotContains(t, a.Fixes, "src/fix-b.ts")
	assert.Contains(t, b.Fixes, "src/fix-b.ts")
	assert.NotContains(t, b.Fixes, "src/fix-a.ts")

	assert.Contains(t, a.WorkspaceState, "incident inc-a")
	assert.Contains(t, b.WorkspaceState, "incident inc-b")
	for _, e := range a.Events {
		if result, ok := e.Data["result"].(string); ok {
			assert.NotContains(t, result, "src/fix-b.ts")
		}
	}
}

func TestClassifyStepError(t *testing.T) {
	tests := []struct {
		msg     string
		errType string
		want    string
	}{
		{"execution exceeded budget", "timeout", errClassRetryable},
		{"429 rate limit", "", errClassRetryable},
		{"connection reset by peer", "", errClassRetryable},
		{"circuit breaker open", "", errClassCritical},
		{"line 3: unexpected \"}\"", "syntax_error", errClassNonRetryable},
		{"old_text not found in src/a.ts", "execution_error", errClassNonRetryable},
		{"no JSON object found in tool-call output", "format", errClassNonRetryable},
	}
	for _, tt := range tests {
		got := classifyStepError(errors.New(tt.msg), tt.errType)
		assert.Equal(t, tt.want, got, "msg %q type %q", tt.msg, tt.errType)
	}
}

func TestIsExternalCodeError(t *testing.T) {
	assert.True(t, IsExternalCodeError(externalTrace().StackFrames()))
	assert.False(t, IsExternalCodeError(appTrace().StackFrames()))
	assert.False(t, IsExternalCodeError(nil))
	// Frames without paths are not judged.
	assert.False(t, IsExternalCodeError([]models.StackFrame{{Function: "main"}}))
}
