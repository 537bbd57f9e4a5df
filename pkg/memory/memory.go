// Package memory persists per-fingerprint records of prior resolution
// outcomes. Every operation swallows and logs failures: callers proceed
// without memory rather than blocking an incident on a bookkeeping store.
package memory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/memoryrecord"
)

// maxFixesPerRecord bounds the known_fixes list on a single record.
const maxFixesPerRecord = 20

// maxErrorsPerRecord bounds the past_errors list on a single record.
const maxErrorsPerRecord = 20

// maxTypicalFiles bounds each learned file list.
const maxTypicalFiles = 30

// Fix is one previously applied fix for a fingerprint.
type Fix struct {
	Description string `json:"description"`
	Patch       string `json:"patch"`
	IncidentID  string `json:"incident_id,omitempty"`
	StoredAt    string `json:"stored_at"`
}

// PastError is one previously observed failure for a fingerprint.
type PastError struct {
	Message    string `json:"message"`
	IncidentID string `json:"incident_id,omitempty"`
	StoredAt   string `json:"stored_at"`
}

// Context is what the agent loop gets back for a fingerprint.
type Context struct {
	KnownFixes []Fix
	PastErrors []PastError
	ErrorType  string
	TimesSeen  int
}

// WorkspaceContext captures what a successful run touched, for learning.
type WorkspaceContext struct {
	FilesRead     []string
	FilesModified []string
	ContextFiles  []string
	Changes       map[string]string
	IncidentID    string
}

// LearningPattern is the aggregated "what usually matters" view for an
// error type.
type LearningPattern struct {
	ErrorType            string
	TypicalFilesRead     []string
	TypicalFilesModified []string
	ConfidenceScore      int
}

// Store is the ent-backed memory store.
type Store struct {
	client *ent.Client
	logger *slog.Logger
}

// NewStore creates a memory store.
func NewStore(client *ent.Client) *Store {
	if client == nil {
		panic("memory.NewStore: client must not be nil")
	}
	return &Store{client: client, logger: slog.Default().With("component", "memory")}
}

// RetrieveContext returns known fixes and past errors for a fingerprint.
// On any failure (including no record) it returns an empty Context.
func (s *Store) RetrieveContext(ctx context.Context, fingerprint string) Context {
	row, err := s.client.MemoryRecord.Query().
		Where(memoryrecord.FingerprintEQ(fingerprint)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return Context{}
	}
	if err != nil {
		s.logger.Warn("Memory retrieve failed", "fingerprint", fingerprint, "error", err)
		return Context{}
	}
	return Context{
		KnownFixes: decodeFixes(row.KnownFixes),
		PastErrors: decodeErrors(row.PastErrors),
		ErrorType:  row.ErrorType,
		TimesSeen:  row.TimesSeen,
	}
}

// StoreFix appends a fix to the fingerprint's record, creating the record if
// needed. Idempotent: re-storing the same (description, patch) is a no-op.
func (s *Store) StoreFix(ctx context.Context, fingerprint, description, patchBlob string) {
	s.StoreFixWithWorkspace(ctx, fingerprint, description, patchBlob, WorkspaceContext{}, "")
}

// StoreFixWithWorkspace is StoreFix plus learning: the files the run read and
// modified are merged into the record's typical-file lists and the confidence
// score is bumped.
func (s *Store) StoreFixWithWorkspace(ctx context.Context, fingerprint, description, patchBlob string, ws WorkspaceContext, incidentID string) {
	row, err := s.client.MemoryRecord.Query().
		Where(memoryrecord.FingerprintEQ(fingerprint)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		fix := Fix{
			Description: description,
			Patch:       patchBlob,
			IncidentID:  incidentID,
			StoredAt:    time.Now().UTC().Format(time.RFC3339),
		}
		_, err = s.client.MemoryRecord.Create().
			SetFingerprint(fingerprint).
			SetKnownFixes(encodeFixes([]Fix{fix})).
			SetTypicalFilesRead(capList(ws.FilesRead, maxTypicalFiles)).
			SetTypicalFilesModified(capList(ws.FilesModified, maxTypicalFiles)).
			SetConfidenceScore(confidence(1)).
			Save(ctx)
		if err != nil {
			s.logger.Warn("Memory store failed", "fingerprint", fingerprint, "error", err)
		}
		return
	case err != nil:
		s.logger.Warn("Memory store lookup failed", "fingerprint", fingerprint, "error", err)
		return
	}

	fixes := decodeFixes(row.KnownFixes)
	if fixKey(description, patchBlob) != "" && containsFix(fixes, description, patchBlob) {
		// Same fix already recorded; only refresh the learning signal.
		s.bumpLearning(ctx, row, ws)
		return
	}
	fixes = append(fixes, Fix{
		Description: description,
		Patch:       patchBlob,
		IncidentID:  incidentID,
		StoredAt:    time.Now().UTC().Format(time.RFC3339),
	})
	if len(fixes) > maxFixesPerRecord {
		fixes = fixes[len(fixes)-maxFixesPerRecord:]
	}

	_, err = row.Update().
		SetKnownFixes(encodeFixes(fixes)).
		SetTypicalFilesRead(mergeList(row.TypicalFilesRead, ws.FilesRead, maxTypicalFiles)).
		SetTypicalFilesModified(mergeList(row.TypicalFilesModified, ws.FilesModified, maxTypicalFiles)).
		AddTimesSeen(1).
		SetConfidenceScore(confidence(row.TimesSeen + 1)).
		Save(ctx)
	if err != nil {
		s.logger.Warn("Memory store update failed", "fingerprint", fingerprint, "error", err)
	}
}

// StoreError records a failed attempt against the fingerprint so future runs
// can avoid repeating it.
func (s *Store) StoreError(ctx context.Context, fingerprint, message, incidentID string) {
	entry := PastError{
		Message:    message,
		IncidentID: incidentID,
		StoredAt:   time.Now().UTC().Format(time.RFC3339),
	}
	row, err := s.client.MemoryRecord.Query().
		Where(memoryrecord.FingerprintEQ(fingerprint)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = s.client.MemoryRecord.Create().
			SetFingerprint(fingerprint).
			SetPastErrors(encodeErrors([]PastError{entry})).
			Save(ctx)
	case err == nil:
		errs := append(decodeErrors(row.PastErrors), entry)
		if len(errs) > maxErrorsPerRecord {
			errs = errs[len(errs)-maxErrorsPerRecord:]
		}
		_, err = row.Update().
			SetPastErrors(encodeErrors(errs)).
			AddTimesSeen(1).
			Save(ctx)
	}
	if err != nil {
		s.logger.Warn("Memory error store failed", "fingerprint", fingerprint, "error", err)
	}
}

// SetErrorType tags the fingerprint's record with a classified error type so
// learning patterns can be looked up by type.
func (s *Store) SetErrorType(ctx context.Context, fingerprint, errorType string) {
	n, err := s.client.MemoryRecord.Update().
		Where(memoryrecord.FingerprintEQ(fingerprint)).
		SetErrorType(errorType).
		Save(ctx)
	if err != nil {
		s.logger.Warn("Memory error type update failed", "fingerprint", fingerprint, "error", err)
		return
	}
	if n == 0 {
		_, err = s.client.MemoryRecord.Create().
			SetFingerprint(fingerprint).
			SetErrorType(errorType).
			Save(ctx)
		if err != nil {
			s.logger.Warn("Memory error type create failed", "fingerprint", fingerprint, "error", err)
		}
	}
}

// GetLearningPattern returns the learned file pattern for an error type, or
// nil when nothing useful is known. The highest-confidence record wins.
func (s *Store) GetLearningPattern(ctx context.Context, errorType string) *LearningPattern {
	if errorType == "" || errorType == "unknown" {
		return nil
	}
	row, err := s.client.MemoryRecord.Query().
		Where(memoryrecord.ErrorTypeEQ(errorType)).
		Order(ent.Desc(memoryrecord.FieldConfidenceScore), ent.Desc(memoryrecord.FieldUpdatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		s.logger.Warn("Learning pattern lookup failed", "error_type", errorType, "error", err)
		return nil
	}
	if len(row.TypicalFilesRead) == 0 && len(row.TypicalFilesModified) == 0 {
		return nil
	}
	return &LearningPattern{
		ErrorType:            errorType,
		TypicalFilesRead:     row.TypicalFilesRead,
		TypicalFilesModified: row.TypicalFilesModified,
		ConfidenceScore:      row.ConfidenceScore,
	}
}

func (s *Store) bumpLearning(ctx context.Context, row *ent.MemoryRecord, ws WorkspaceContext) {
	_, err := row.Update().
		SetTypicalFilesRead(mergeList(row.TypicalFilesRead, ws.FilesRead, maxTypicalFiles)).
		SetTypicalFilesModified(mergeList(row.TypicalFilesModified, ws.FilesModified, maxTypicalFiles)).
		AddTimesSeen(1).
		SetConfidenceScore(confidence(row.TimesSeen + 1)).
		Save(ctx)
	if err != nil {
		s.logger.Warn("Memory learning update failed", "fingerprint", row.Fingerprint, "error", err)
	}
}

// confidence maps times_seen onto a 0..100 score. Saturates at five
// sightings.
func confidence(timesSeen int) int {
	score := timesSeen * 20
	if score > 100 {
		score = 100
	}
	return score
}

func fixKey(description, patch string) string {
	if description == "" && patch == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(description + "\x00" + patch))
	return hex.EncodeToString(sum[:8])
}

func containsFix(fixes []Fix, description, patch string) bool {
	key := fixKey(description, patch)
	for _, f := range fixes {
		if fixKey(f.Description, f.Patch) == key {
			return true
		}
	}
	return false
}

func capList(in []string, max int) []string {
	return mergeList(nil, in, max)
}

// mergeList appends new entries not already present, preserving order, and
// keeps the most recent max entries.
func mergeList(existing, add []string, max int) []string {
	seen := make(map[string]struct{}, len(existing))
	out := make([]string, 0, len(existing)+len(add))
	for _, v := range existing {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range add {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) > max {
		out = out[len(out)-max:]
	}
	return out
}

func encodeFixes(fixes []Fix) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(fixes))
	for _, f := range fixes {
		out = append(out, map[string]interface{}{
			"description": f.Description,
			"patch":       f.Patch,
			"incident_id": f.IncidentID,
			"stored_at":   f.StoredAt,
		})
	}
	return out
}

func decodeFixes(raw []map[string]interface{}) []Fix {
	out := make([]Fix, 0, len(raw))
	for _, m := range raw {
		out = append(out, Fix{
			Description: str(m["description"]),
			Patch:       str(m["patch"]),
			IncidentID:  str(m["incident_id"]),
			StoredAt:    str(m["stored_at"]),
		})
	}
	return out
}

func encodeErrors(errs []PastError) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(errs))
	for _, e := range errs {
		out = append(out, map[string]interface{}{
			"message":     e.Message,
			"incident_id": e.IncidentID,
			"stored_at":   e.StoredAt,
		})
	}
	return out
}

func decodeErrors(raw []map[string]interface{}) []PastError {
	out := make([]PastError, 0, len(raw))
	for _, m := range raw {
		out = append(out, PastError{
			Message:    str(m["message"]),
			IncidentID: str(m["incident_id"]),
			StoredAt:   str(m["stored_at"]),
		})
	}
	return out
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}
