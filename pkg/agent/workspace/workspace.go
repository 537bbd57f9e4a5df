// Package workspace holds the in-memory file and plan state owned by one
// agent run, plus its externalized scratchpad mirror on disk. A workspace is
// owned exclusively by one agent loop; no locking is needed.
package workspace

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sourabhkumawat/healops/pkg/agent/planner"
)

// maxStateFiles bounds the file list in the textual state summary.
const maxStateFiles = 10

// maxStateNotes bounds the notes in the textual state summary.
const maxStateNotes = 5

// Note is one annotated observation.
type Note struct {
	Text     string
	Category string
	At       time.Time
}

// Workspace is the mutable state of one run.
type Workspace struct {
	IncidentID string

	files        map[string]string
	filesWritten map[string]struct{}
	filesRead    map[string]struct{}
	notes        []Note
	plan         []planner.Step
	now          func() time.Time
}

// New creates an empty workspace for an incident.
func New(incidentID string) *Workspace {
	return &Workspace{
		IncidentID:   incidentID,
		files:        make(map[string]string),
		filesWritten: make(map[string]struct{}),
		filesRead:    make(map[string]struct{}),
		now:          time.Now,
	}
}

// GetFile returns a file's current content.
func (w *Workspace) GetFile(path string) (string, bool) {
	content, ok := w.files[path]
	return content, ok
}

// SetFile caches a file's content without marking it written. Used to hold
// repo reads; cached files never surface as fixes.
func (w *Workspace) SetFile(path, content string) {
	w.files[path] = content
}

// MarkFileRead records that a file was read during the run. Used for
// learning patterns.
func (w *Workspace) MarkFileRead(path string) {
	w.filesRead[path] = struct{}{}
}

// ApplyFilesWritten syncs file contents from a tool invocation's declared
// files_written map and marks those paths as written. This is the only path
// that makes a file count as modified; nothing is inferred from generated
// code or from read caching.
func (w *Workspace) ApplyFilesWritten(files map[string]string) {
	for path, content := range files {
		w.files[path] = content
		w.filesWritten[path] = struct{}{}
	}
}

// Files returns a copy of the files written during the run.
func (w *Workspace) Files() map[string]string {
	out := make(map[string]string, len(w.filesWritten))
	for p := range w.filesWritten {
		out[p] = w.files[p]
	}
	return out
}

// CachedFiles returns every file the workspace holds, reads and writes
// alike.
func (w *Workspace) CachedFiles() map[string]string {
	out := make(map[string]string, len(w.files))
	for k, v := range w.files {
		out[k] = v
	}
	return out
}

// FilesRead returns the paths read during the run, sorted.
func (w *Workspace) FilesRead() []string {
	out := make([]string, 0, len(w.filesRead))
	for p := range w.filesRead {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// FilesModified returns the paths written during the run, sorted.
func (w *Workspace) FilesModified() []string {
	out := make([]string, 0, len(w.filesWritten))
	for p := range w.filesWritten {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// SetPlan snapshots the plan into the workspace.
func (w *Workspace) SetPlan(steps []planner.Step) {
	w.plan = make([]planner.Step, len(steps))
	copy(w.plan, steps)
}

// Plan returns the snapshotted plan.
func (w *Workspace) Plan() []planner.Step {
	out := make([]planner.Step, len(w.plan))
	copy(out, w.plan)
	return out
}

// UpdateTodoStep updates one snapshotted step's status and result by step
// number, stamping the transition times. Unknown step numbers are ignored.
func (w *Workspace) UpdateTodoStep(stepNumber int, status, result string) {
	for i := range w.plan {
		if w.plan[i].StepNumber == stepNumber {
			w.plan[i].Status = status
			if result != "" {
				w.plan[i].Result = result
			}
			at := w.now()
			switch status {
			case planner.StatusInProgress:
				if w.plan[i].StartedAt == nil {
					w.plan[i].StartedAt = &at
				}
			case planner.StatusCompleted, planner.StatusFailed, planner.StatusSkipped:
				w.plan[i].CompletedAt = &at
			}
			return
		}
	}
}

// AddNote appends an annotated note.
func (w *Workspace) AddNote(text, category string) {
	w.notes = append(w.notes, Note{Text: text, Category: category, At: w.now()})
}

// Notes returns all notes in order.
func (w *Workspace) Notes() []Note {
	out := make([]Note, len(w.notes))
	copy(out, w.notes)
	return out
}

// State renders the textual summary fed to the LLM: file list (bounded,
// reads and writes alike), plan progress, and the most recent notes.
func (w *Workspace) State() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Workspace for incident %s\n", w.IncidentID)

	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	fmt.Fprintf(&b, "Files (%d):\n", len(paths))
	shown := paths
	if len(shown) > maxStateFiles {
		shown = shown[:maxStateFiles]
	}
	for _, p := range shown {
		fmt.Fprintf(&b, "  - %s (%d bytes)\n", p, len(w.files[p]))
	}
	if len(paths) > maxStateFiles {
		fmt.Fprintf(&b, "  ... and %d more\n", len(paths)-maxStateFiles)
	}

	completed := 0
	for _, s := range w.plan {
		if s.Status == planner.StatusCompleted {
			completed++
		}
	}
	fmt.Fprintf(&b, "Plan progress: %d/%d steps completed\n", completed, len(w.plan))

	notes := w.notes
	if len(notes) > maxStateNotes {
		notes = notes[len(notes)-maxStateNotes:]
	}
	if len(notes) > 0 {
		b.WriteString("Recent notes:\n")
		for _, n := range notes {
			fmt.Fprintf(&b, "  [%s] %s\n", n.Category, n.Text)
		}
	}
	return b.String()
}
