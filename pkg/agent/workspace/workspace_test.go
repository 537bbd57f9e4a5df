package workspace

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/sourabhkumawat/healops/pkg/agent/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesWrittenFlow(t *testing.T) {
	w := New("inc-1")
	w.SetFile("src/a.ts", "old")
	w.MarkFileRead("src/a.ts")

	w.ApplyFilesWritten(map[string]string{
		"src/a.ts": "new content",
		"src/b.ts": "created",
	})

	got, ok := w.GetFile("src/a.ts")
	require.True(t, ok)
	assert.Equal(t, "new content", got)
	assert.Equal(t, []string{"src/a.ts", "src/b.ts"}, w.FilesModified())
	assert.Equal(t, []string{"src/a.ts"}, w.FilesRead())
}

func TestReadCachingIsNotAWrite(t *testing.T) {
	w := New("inc-1")
	w.SetFile("src/api/users.ts", "original content")
	w.SetFile("src/api/guard.ts", "also original")
	w.MarkFileRead("src/api/users.ts")

	// Cached reads stay retrievable but never surface as fixes.
	assert.Empty(t, w.Files())
	assert.Empty(t, w.FilesModified())
	got, ok := w.GetFile("src/api/users.ts")
	require.True(t, ok)
	assert.Equal(t, "original content", got)
	assert.Len(t, w.CachedFiles(), 2)

	w.ApplyFilesWritten(map[string]string{"src/api/users.ts": "patched"})
	assert.Equal(t, map[string]string{"src/api/users.ts": "patched"}, w.Files())
	assert.Equal(t, []string{"src/api/users.ts"}, w.FilesModified())
}

func TestUpdateTodoStep(t *testing.T) {
	w := New("inc-1")
	w.SetPlan([]planner.Step{
		{StepNumber: 1, Description: "read", Status: planner.StatusPending},
		{StepNumber: 2, Description: "fix", Status: planner.StatusPending},
	})

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return at }

	w.UpdateTodoStep(1, planner.StatusInProgress, "")
	w.UpdateTodoStep(2, planner.StatusCompleted, "patched the guard")
	w.UpdateTodoStep(99, planner.StatusCompleted, "ignored")

	steps := w.Plan()
	assert.Equal(t, planner.StatusInProgress, steps[0].Status)
	require.NotNil(t, steps[0].StartedAt)
	assert.Equal(t, at, *steps[0].StartedAt)
	assert.Equal(t, planner.StatusCompleted, steps[1].Status)
	assert.Equal(t, "patched the guard", steps[1].Result)
	require.NotNil(t, steps[1].CompletedAt)
}

func TestUpdateTodoStep_Skipped(t *testing.T) {
	w := New("inc-1")
	w.SetPlan([]planner.Step{{StepNumber: 1, Description: "optional check", Status: planner.StatusPending}})

	w.UpdateTodoStep(1, planner.StatusSkipped, "not needed for this fix")

	steps := w.Plan()
	assert.Equal(t, planner.StatusSkipped, steps[0].Status)
	require.NotNil(t, steps[0].CompletedAt)
}

func TestState_BoundsFilesAndNotes(t *testing.T) {
	w := New("inc-1")
	for i := 0; i < 14; i++ {
		w.SetFile(fmt.Sprintf("src/file%02d.ts", i), "x")
	}
	w.SetPlan([]planner.Step{
		{StepNumber: 1, Description: "a", Status: planner.StatusCompleted},
		{StepNumber: 2, Description: "b", Status: planner.StatusPending},
	})
	for i := 0; i < 8; i++ {
		w.AddNote(fmt.Sprintf("note %d", i), "observation")
	}

	state := w.State()
	assert.Contains(t, state, "Files (14):")
	assert.Contains(t, state, "... and 4 more")
	assert.Contains(t, state, "Plan progress: 1/2 steps completed")
	assert.Contains(t, state, "note 7")
	assert.NotContains(t, state, "note 2")
}

func TestScratchpadSyncAndCleanup(t *testing.T) {
	dir := t.TempDir()
	w := New("inc-42")
	w.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	w.AddNote("first", "observation")
	w.AddNote("second", "decision")

	sp := NewScratchpad(dir, "inc-42")
	offset := sp.SyncFromWorkspace(w, "# Resolution Plan\n\n- [ ] 1. read\n")
	assert.Equal(t, 2, offset)

	plan, err := os.ReadFile(sp.PlanPath())
	require.NoError(t, err)
	assert.Contains(t, string(plan), "Resolution Plan")

	notes, err := os.ReadFile(sp.NotesPath())
	require.NoError(t, err)
	assert.Contains(t, string(notes), "[observation] first")
	assert.Contains(t, string(notes), "[decision] second")

	// Incremental sync only appends new notes.
	w.AddNote("third", "observation")
	offset = sp.SyncFromWorkspace(w, "# Resolution Plan\n")
	assert.Equal(t, 3, offset)
	notes, err = os.ReadFile(sp.NotesPath())
	require.NoError(t, err)
	assert.Equal(t, 1, countOccurrences(string(notes), "first"))

	sp.Cleanup()
	_, err = os.Stat(sp.PlanPath())
	assert.True(t, os.IsNotExist(err))
	// Cleanup of already-removed files does not panic.
	sp.Cleanup()
}

func countOccurrences(s, sub string) int {
	count := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			count++
		}
	}
	return count
}
