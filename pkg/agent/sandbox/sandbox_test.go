package sandbox

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sourabhkumawat/healops/pkg/agent/planner"
	"github.com/sourabhkumawat/healops/pkg/agent/workspace"
	"github.com/sourabhkumawat/healops/pkg/github"
	"github.com/sourabhkumawat/healops/pkg/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	files     map[string]string
	structure []string
	searchHit string
}

func (f *fakeRepo) GetFileContents(_ context.Context, _, path, _ string) (string, error) {
	return f.files[path], nil
}

func (f *fakeRepo) GetRepoStructure(_ context.Context, _, _, _ string, _ int) ([]string, error) {
	return f.structure, nil
}

func (f *fakeRepo) SearchCode(_ context.Context, _, _ string, _ int) ([]github.SearchResult, error) {
	if f.searchHit == "" {
		return nil, nil
	}
	return []github.SearchResult{{Path: f.searchHit, Repo: "acme/shop"}}, nil
}

type fakeMemory struct{ ctx memory.Context }

func (f *fakeMemory) RetrieveContext(context.Context, string) memory.Context { return f.ctx }

func newSandbox(t *testing.T, ws *workspace.Workspace, repo RepoReader, mem MemoryReader) *Sandbox {
	t.Helper()
	s, err := New(Options{
		Workspace:   ws,
		Repo:        repo,
		Mem:         mem,
		RepoName:    "acme/shop",
		Ref:         "main",
		Fingerprint: "fp-1",
	})
	require.NoError(t, err)
	return s
}

func TestParseBatch_Shapes(t *testing.T) {
	s := newSandbox(t, workspace.New("inc-1"), nil, nil)

	batch, err := s.ParseBatch(`{"tool_calls":[{"tool":"read_file","args":{"path":"src/a.ts"}}]}`)
	require.NoError(t, err)
	require.Len(t, batch.ToolCalls, 1)
	assert.Equal(t, "read_file", batch.ToolCalls[0].Tool)

	fenced := "Here is the action:\n```json\n{\"tool_calls\":[{\"tool\":\"list_files\",\"args\":{}}]}\n```"
	batch, err = s.ParseBatch(fenced)
	require.NoError(t, err)
	assert.Equal(t, "list_files", batch.ToolCalls[0].Tool)

	// Invalid escape inside a string is repaired on the second attempt.
	batch, err = s.ParseBatch(`{"tool_calls":[{"tool":"write_file","args":{"path":"src/a.ts","content":"match \d+"}}]}`)
	require.NoError(t, err)
	assert.Contains(t, batch.ToolCalls[0].Args["content"], `\d+`)
}

func TestParseBatch_SchemaRejections(t *testing.T) {
	s := newSandbox(t, workspace.New("inc-1"), nil, nil)

	_, err := s.ParseBatch(`{"tool_calls":[]}`)
	assert.Error(t, err)

	_, err = s.ParseBatch(`{"tool_calls":[{"tool":"rm_rf","args":{}}]}`)
	assert.Error(t, err)

	_, err = s.ParseBatch(`{"actions":[{"tool":"read_file"}]}`)
	assert.Error(t, err)

	_, err = s.ParseBatch("no json at all")
	assert.Error(t, err)

	var calls []string
	for i := 0; i < 21; i++ {
		calls = append(calls, `{"tool":"list_files","args":{}}`)
	}
	_, err = s.ParseBatch(`{"tool_calls":[` + strings.Join(calls, ",") + `]}`)
	assert.Error(t, err)
}

func TestExecute_ReadWriteEdit(t *testing.T) {
	ws := workspace.New("inc-1")
	repo := &fakeRepo{files: map[string]string{
		"src/api/users.ts": "const limit = 10;\nexport function getUser() {}\n",
	}}
	s := newSandbox(t, ws, repo, nil)

	out := s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "read_file", Args: map[string]any{"path": "src/api/users.ts"}},
		{Tool: "apply_incremental_edit", Args: map[string]any{
			"path":     "src/api/users.ts",
			"old_text": "const limit = 10;",
			"new_text": "const limit = 50;",
		}},
		{Tool: "write_file", Args: map[string]any{"path": "src/api/new.ts", "content": "export {};\n"}},
	}})

	require.True(t, out.Success)
	require.Len(t, out.Results, 3)
	assert.Contains(t, out.FilesWritten["src/api/users.ts"], "const limit = 50;")
	assert.Equal(t, "export {};\n", out.FilesWritten["src/api/new.ts"])

	// Workspace reflects the declared writes and the read.
	content, ok := ws.GetFile("src/api/users.ts")
	require.True(t, ok)
	assert.Contains(t, content, "const limit = 50;")
	assert.Equal(t, []string{"src/api/users.ts"}, ws.FilesRead())
}

func TestExecute_ReadOnlyBatchWritesNothing(t *testing.T) {
	ws := workspace.New("inc-1")
	repo := &fakeRepo{files: map[string]string{
		"src/api/users.ts": "export function getUser() {}\n",
	}}
	s := newSandbox(t, ws, repo, nil)

	out := s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "read_file", Args: map[string]any{"path": "src/api/users.ts"}},
	}})

	require.True(t, out.Success)
	assert.Empty(t, out.FilesWritten)
	// The repo fetch is cached for later calls but is not a modification.
	_, cached := ws.GetFile("src/api/users.ts")
	assert.True(t, cached)
	assert.Empty(t, ws.Files())
	assert.Empty(t, ws.FilesModified())
	assert.Equal(t, []string{"src/api/users.ts"}, ws.FilesRead())
}

func TestExecute_PathSafety(t *testing.T) {
	s := newSandbox(t, workspace.New("inc-1"), nil, nil)

	out := s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "write_file", Args: map[string]any{"path": "/app/src/a.ts", "content": "x"}},
	}})

	require.False(t, out.Success)
	res := out.Results[0]
	assert.Equal(t, ErrorTypeExecution, res.ErrorType)
	require.NotEmpty(t, res.ErrorHints)
	assert.Contains(t, strings.Join(res.ErrorHints, " "), `"src/a.ts"`)
	assert.Empty(t, out.FilesWritten)
}

func TestExecute_EditOldTextMissing(t *testing.T) {
	ws := workspace.New("inc-1")
	ws.SetFile("src/a.ts", "hello")
	s := newSandbox(t, ws, nil, nil)

	out := s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "apply_incremental_edit", Args: map[string]any{
			"path": "src/a.ts", "old_text": "goodbye", "new_text": "x",
		}},
	}})
	assert.False(t, out.Success)
	assert.Equal(t, ErrorTypeExecution, out.ErrorType)
}

func TestExecute_WriteSizeLimit(t *testing.T) {
	s := newSandbox(t, workspace.New("inc-1"), nil, nil)
	big := strings.Repeat("a", maxWriteBytes+1)

	out := s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "write_file", Args: map[string]any{"path": "src/big.ts", "content": big}},
	}})
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "exceeds")
}

func TestExecute_Timeout(t *testing.T) {
	ws := workspace.New("inc-1")
	s := newSandbox(t, ws, nil, nil)
	s.timeout = -time.Nanosecond

	out := s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "write_file", Args: map[string]any{"path": "src/a.ts", "content": "x"}},
		{Tool: "write_file", Args: map[string]any{"path": "src/b.ts", "content": "y"}},
	}})
	assert.False(t, out.Success)
	assert.Equal(t, ErrorTypeTimeout, out.ErrorType)
}

func TestValidateCode(t *testing.T) {
	ws := workspace.New("inc-1")
	s := newSandbox(t, ws, nil, nil)

	out := s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "validate_code", Args: map[string]any{"content": "function f() { return [1, 2]; }\n"}},
	}})
	assert.True(t, out.Success)

	out = s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "validate_code", Args: map[string]any{"content": "function f() { return [1, 2; }\n"}},
	}})
	require.False(t, out.Success)
	assert.Equal(t, ErrorTypeSyntax, out.Results[0].ErrorType)

	// Brackets inside strings and comments do not count.
	out = s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "validate_code", Args: map[string]any{"content": "const s = \"([{\"; // }\nconst t = 1;\n"}},
	}})
	assert.True(t, out.Success)
}

func TestUpdateTodo(t *testing.T) {
	ws := workspace.New("inc-1")
	ws.SetPlan([]planner.Step{{StepNumber: 1, Description: "fix", Status: planner.StatusPending}})
	s := newSandbox(t, ws, nil, nil)

	out := s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "update_todo", Args: map[string]any{"step_number": float64(1), "status": "completed", "result": "done"}},
	}})
	require.True(t, out.Success)
	assert.Equal(t, planner.StatusCompleted, ws.Plan()[0].Status)

	out = s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "update_todo", Args: map[string]any{"step_number": float64(1), "status": "skipped", "result": "covered by step 2"}},
	}})
	require.True(t, out.Success)
	assert.Equal(t, planner.StatusSkipped, ws.Plan()[0].Status)

	out = s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "update_todo", Args: map[string]any{"step_number": float64(1), "status": "wat"}},
	}})
	assert.False(t, out.Success)
}

func TestRetrieveMemoryAndListFiles(t *testing.T) {
	ws := workspace.New("inc-1")
	mem := &fakeMemory{ctx: memory.Context{
		KnownFixes: []memory.Fix{{Description: "add null guard", Patch: "p"}},
		PastErrors: []memory.PastError{{Message: "timeout on step 2"}},
	}}
	repo := &fakeRepo{structure: []string{"src/a.ts", "src/b.ts"}}
	s := newSandbox(t, ws, repo, mem)

	out := s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "retrieve_memory", Args: map[string]any{}},
		{Tool: "list_files", Args: map[string]any{"path": "src", "max_depth": float64(2)}},
	}})
	require.True(t, out.Success)
	fixes := out.Results[0].Output["known_fixes"].([]map[string]any)
	assert.Equal(t, "add null guard", fixes[0]["description"])
	assert.Equal(t, 2, out.Results[1].Output["count"])
}

func TestFindSymbolDefinition(t *testing.T) {
	ws := workspace.New("inc-1")
	ws.SetFile("src/api/users.ts", "import x from 'y';\nexport function getUser(id) {\n}\n")
	s := newSandbox(t, ws, &fakeRepo{searchHit: "src/fallback.ts"}, nil)

	out := s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "find_symbol_definition", Args: map[string]any{"symbol": "getUser"}},
	}})
	require.True(t, out.Success)
	matches := out.Results[0].Output["matches"].([]map[string]any)
	require.Len(t, matches, 1)
	assert.Equal(t, "src/api/users.ts", matches[0]["path"])

	// Unknown symbol falls through to repo search.
	out = s.Execute(context.Background(), &Batch{ToolCalls: []ToolCall{
		{Tool: "find_symbol_definition", Args: map[string]any{"symbol": "nothingHere"}},
	}})
	require.True(t, out.Success)
	matches = out.Results[0].Output["matches"].([]map[string]any)
	require.Len(t, matches, 1)
	assert.Equal(t, "src/fallback.ts", matches[0]["path"])
}
