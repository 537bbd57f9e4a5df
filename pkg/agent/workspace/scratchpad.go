package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultScratchpadDir is where run scratchpads land unless overridden.
const DefaultScratchpadDir = "/tmp/healops_scratchpads"

// Scratchpad mirrors a workspace's plan and notes to disk so a human (or a
// later run) can inspect an in-flight resolution. All writes are best-effort:
// a full disk never fails a run.
type Scratchpad struct {
	dir        string
	incidentID string
	// notesOffset tracks how many workspace notes are already on disk, so
	// repeated syncs append only new ones.
	notesOffset int
	logger      *slog.Logger
}

// NewScratchpad creates a scratchpad rooted at dir (DefaultScratchpadDir when
// empty) for the given incident.
func NewScratchpad(dir, incidentID string) *Scratchpad {
	if dir == "" {
		dir = DefaultScratchpadDir
	}
	return &Scratchpad{
		dir:        dir,
		incidentID: incidentID,
		logger:     slog.Default().With("component", "scratchpad", "incident_id", incidentID),
	}
}

// PlanPath returns the Markdown plan file path.
func (s *Scratchpad) PlanPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("scratchpad_%s.md", s.incidentID))
}

// NotesPath returns the append-only notes file path.
func (s *Scratchpad) NotesPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("notes_%s.txt", s.incidentID))
}

// WritePlan replaces the plan file with the given Markdown.
func (s *Scratchpad) WritePlan(planMD string) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Warn("Scratchpad dir creation failed", "error", err)
		return
	}
	if err := os.WriteFile(s.PlanPath(), []byte(planMD), 0o644); err != nil {
		s.logger.Warn("Scratchpad plan write failed", "error", err)
	}
}

// AppendNote appends one note line to the notes file.
func (s *Scratchpad) AppendNote(n Note) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Warn("Scratchpad dir creation failed", "error", err)
		return
	}
	f, err := os.OpenFile(s.NotesPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.logger.Warn("Scratchpad notes open failed", "error", err)
		return
	}
	defer f.Close()
	line := fmt.Sprintf("[%s] [%s] %s\n", n.At.Format("2006-01-02 15:04:05"), n.Category, n.Text)
	if _, err := f.WriteString(line); err != nil {
		s.logger.Warn("Scratchpad notes write failed", "error", err)
	}
}

// SyncFromWorkspace rewrites the plan file from the workspace snapshot and
// appends the notes recorded since the previous sync. Returns how many notes
// are now on disk.
func (s *Scratchpad) SyncFromWorkspace(w *Workspace, planMD string) int {
	s.WritePlan(planMD)
	notes := w.Notes()
	for i := s.notesOffset; i < len(notes); i++ {
		s.AppendNote(notes[i])
	}
	s.notesOffset = len(notes)
	return s.notesOffset
}

// Cleanup removes the scratchpad files. Best-effort.
func (s *Scratchpad) Cleanup() {
	for _, p := range []string{s.PlanPath(), s.NotesPath()} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Scratchpad cleanup failed", "path", p, "error", err)
		}
	}
}
