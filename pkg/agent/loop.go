// Package agent runs the plan/act/observe cycle that resolves one incident:
// preparation (path extraction, memory warm start, knowledge indexing, plan
// creation), the bounded iteration loop driving the tool-call sandbox, and
// post-run persistence and learning.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sourabhkumawat/healops/pkg/agent/paths"
	"github.com/sourabhkumawat/healops/pkg/agent/planner"
	"github.com/sourabhkumawat/healops/pkg/agent/prompt"
	"github.com/sourabhkumawat/healops/pkg/agent/sandbox"
	"github.com/sourabhkumawat/healops/pkg/agent/stream"
	"github.com/sourabhkumawat/healops/pkg/agent/workspace"
	"github.com/sourabhkumawat/healops/pkg/config"
	"github.com/sourabhkumawat/healops/pkg/fingerprint"
	"github.com/sourabhkumawat/healops/pkg/knowledge"
	"github.com/sourabhkumawat/healops/pkg/llm"
	"github.com/sourabhkumawat/healops/pkg/memory"
	"github.com/sourabhkumawat/healops/pkg/models"
	"github.com/sourabhkumawat/healops/pkg/telemetry"
)

// Run statuses in the result envelope.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusError   = "error"
)

// Step error classes.
const (
	errClassRetryable    = "retryable"
	errClassCritical     = "critical"
	errClassNonRetryable = "non_retryable"
)

// maxPreloadFiles bounds how many files are preloaded into the act prompt.
const maxPreloadFiles = 10

// maxPreloadLines bounds preloaded file size; oversize files show head and
// tail only.
const maxPreloadLines = 2000

// fileNotFoundLimit stops retrying a step that keeps missing files.
const fileNotFoundLimit = 3

// consecutiveFailureLimit triggers a replan.
const consecutiveFailureLimit = 3

// MemoryStore is the subset of the memory store the loop uses.
type MemoryStore interface {
	RetrieveContext(ctx context.Context, fingerprint string) memory.Context
	StoreFixWithWorkspace(ctx context.Context, fingerprint, description, patchBlob string, ws memory.WorkspaceContext, incidentID string)
	SetErrorType(ctx context.Context, fingerprint, errorType string)
	GetLearningPattern(ctx context.Context, errorType string) *memory.LearningPattern
}

// KnowledgeStore is the subset of the knowledge retriever the loop uses.
type KnowledgeStore interface {
	IndexPastFixes(ctx context.Context, fixes []knowledge.PastFix)
	IndexCodebasePatterns(ctx context.Context, filePaths []string)
	RetrieveForPlanning(ctx context.Context, rootCause string, affectedFiles []string) []knowledge.Item
	RetrieveRelevantKnowledge(ctx context.Context, query string, k int) []knowledge.Item
}

// Input is everything a run needs about its incident.
type Input struct {
	IncidentID  string
	Title       string
	ServiceName string
	RootCause   string
	Fingerprint string
	RepoName    string
	Ref         string
	Messages    []string
	Metadata    models.Metadata
}

// Result is the run's terminal envelope.
type Result struct {
	Status          string
	Skipped         bool
	SkipExplanation string
	Iterations      int
	PlanCompleted   int
	PlanTotal       int
	Fixes           map[string]string
	Events          []stream.Event
	WorkspaceState  string
	Fingerprint     string
	Error           string
}

// Options wires a Loop. LLM is required; every other collaborator may be nil
// and the corresponding capability is skipped.
type Options struct {
	Config        config.AgentConfig
	LLM           llm.Client
	Repo          sandbox.RepoReader
	Memory        MemoryStore
	Knowledge     KnowledgeStore
	Recorder      Recorder
	Broadcaster   stream.Broadcaster
	ScratchpadDir string
	AgentName     string
}

// Loop orchestrates agent runs. Stateless across runs; each Run owns its
// workspace, stream, planner, and sandbox.
type Loop struct {
	cfg         config.AgentConfig
	llm         llm.Client
	repo        sandbox.RepoReader
	mem         MemoryStore
	know        KnowledgeStore
	recorder    Recorder
	broadcaster stream.Broadcaster
	scratchDir  string
	agentName   string
	logger      *slog.Logger
}

// NewLoop creates a loop from options, applying the environment-contract
// defaults for any unset bound.
func NewLoop(opts Options) *Loop {
	if opts.LLM == nil {
		panic("agent.NewLoop: LLM client must not be nil")
	}
	cfg := opts.Config
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = 50
	}
	if cfg.MaxReplans <= 0 {
		cfg.MaxReplans = planner.DefaultMaxReplans
	}
	if cfg.MaxRetriesPerStep <= 0 {
		cfg.MaxRetriesPerStep = 3
	}
	if cfg.MaxEventStreamSize <= 0 {
		cfg.MaxEventStreamSize = 100
	}
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = 180 * time.Second
	}
	if cfg.CrewTimeout <= 0 {
		cfg.CrewTimeout = 1200 * time.Second
	}
	if cfg.CodeExecTimeout <= 0 {
		cfg.CodeExecTimeout = sandbox.DefaultTimeout
	}
	name := opts.AgentName
	if name == "" {
		name = "resolver"
	}
	return &Loop{
		cfg:         cfg,
		llm:         opts.LLM,
		repo:        opts.Repo,
		mem:         opts.Memory,
		know:        opts.Knowledge,
		recorder:    opts.Recorder,
		broadcaster: opts.Broadcaster,
		scratchDir:  opts.ScratchpadDir,
		agentName:   name,
		logger:      slog.Default().With("component", "agent_loop"),
	}
}

// Run resolves one incident. It never panics on collaborator failure; the
// worst outcome is a Result with status error.
func (l *Loop) Run(ctx context.Context, in Input) *Result {
	logger := l.logger.With("incident_id", in.IncidentID)
	tracker := telemetry.NewTracker(in.IncidentID)
	tracker.Event(telemetry.PhaseRunStart, "service", in.ServiceName)

	frames := in.Metadata.StackFrames()
	if IsExternalCodeError(frames) {
		logger.Info("Skipping run, error originates in dependency code")
		tracker.RunFinished("skipped_external")
		return &Result{
			Status:          StatusSuccess,
			Skipped:         true,
			SkipExplanation: prompt.BuildSkipExplanation(in.ServiceName, ExternalFramePaths(frames)),
			Fingerprint:     in.Fingerprint,
			Fixes:           map[string]string{},
		}
	}

	ctx, cancel := context.WithTimeout(ctx, l.cfg.CrewTimeout)
	defer cancel()

	ws := workspace.New(in.IncidentID)
	st := stream.New(l.cfg.MaxEventStreamSize, l.broadcaster)
	sp := workspace.NewScratchpad(l.scratchDir, in.IncidentID)

	affected, knowledgeContext := l.prepare(ctx, in, frames, tracker)

	tracker.PhaseStart(telemetry.PhasePlanCreateStart)
	pl := planner.New(l.cfg.MaxReplans)
	pl.CreatePlan(ctx, in.RootCause, affected, l.llm, knowledgeContext)
	ws.SetPlan(pl.Steps())
	tracker.PhaseEnd(telemetry.PhasePlanCreated, telemetry.PhasePlanCreateStart)

	sb, err := sandbox.New(sandbox.Options{
		Workspace:   ws,
		Repo:        l.repo,
		Mem:         l.mem,
		RepoName:    in.RepoName,
		Ref:         in.Ref,
		Fingerprint: in.Fingerprint,
		Timeout:     l.cfg.CodeExecTimeout,
	})
	if err != nil {
		return l.finish(ctx, in, ws, st, sp, pl, 0, StatusError, err.Error(), tracker)
	}

	tracker.PhaseStart(telemetry.PhaseCrewStart)
	iterations, crewTimedOut := l.iterate(ctx, in, ws, st, sp, pl, sb, affected, knowledgeContext)

	status := StatusError
	errMsg := ""
	completed, total := pl.Progress()
	switch {
	case crewTimedOut:
		errMsg = "crew execution timeout exceeded"
		st.AddEvent(stream.TypeError, map[string]any{"error": errMsg}, l.agentName)
		tracker.Event(telemetry.PhaseCrewTimeout)
	case completed == total && total > 0:
		status = StatusSuccess
	case completed > 0:
		status = StatusPartial
	}
	if status != StatusError {
		tracker.Event(telemetry.PhaseCrewCompleted, "iterations", iterations)
	} else {
		tracker.Event(telemetry.PhaseCrewFailed, "iterations", iterations)
	}

	return l.finish(ctx, in, ws, st, sp, pl, iterations, status, errMsg, tracker)
}

// prepare runs the pre-loop phases and returns the affected files plus the
// enhanced knowledge context for planning.
func (l *Loop) prepare(ctx context.Context, in Input, frames []models.StackFrame, tracker *telemetry.Tracker) ([]string, string) {
	raw := in.Metadata.CodePaths()
	for _, f := range frames {
		raw = append(raw, framePath(f))
	}
	affected := paths.NormalizeAll(raw)

	var repoIndex []string
	if l.repo != nil && in.RepoName != "" {
		index, err := l.repo.GetRepoStructure(ctx, in.RepoName, "", in.Ref, 4)
		if err != nil {
			l.logger.Warn("Repo index fetch failed, proceeding without it", "error", err)
		} else {
			repoIndex = index
		}
	}

	var mctx memory.Context
	if l.mem != nil {
		tracker.PhaseStart(telemetry.PhaseMemoryRetrieveStart)
		mctx = l.mem.RetrieveContext(ctx, in.Fingerprint)
		errorType := mctx.ErrorType
		if errorType == "" {
			errorType = fingerprint.ClassifyErrorType(in.Fingerprint, in.RootCause)
			l.mem.SetErrorType(ctx, in.Fingerprint, errorType)
		}
		if lp := l.mem.GetLearningPattern(ctx, errorType); lp != nil {
			affected = mergeUnique(affected, lp.TypicalFilesModified, lp.TypicalFilesRead)
		}
		tracker.PhaseEnd(telemetry.PhaseMemoryRetrieved, telemetry.PhaseMemoryRetrieveStart)
	}

	var planItems []knowledge.Item
	if l.know != nil {
		tracker.PhaseStart(telemetry.PhaseKnowledgeIndexStart)
		if len(mctx.KnownFixes) > 0 {
			fixes := make([]knowledge.PastFix, 0, len(mctx.KnownFixes))
			for _, f := range mctx.KnownFixes {
				fixes = append(fixes, knowledge.PastFix{
					Description: f.Description,
					Patch:       f.Patch,
					IncidentID:  f.IncidentID,
				})
			}
			l.know.IndexPastFixes(ctx, fixes)
		}
		if len(repoIndex) > 0 {
			l.know.IndexCodebasePatterns(ctx, repoIndex)
		}
		planItems = l.know.RetrieveForPlanning(ctx, in.RootCause, affected)
		tracker.PhaseEnd(telemetry.PhaseKnowledgeIndexed, telemetry.PhaseKnowledgeIndexStart)
	}

	var b strings.Builder
	for _, item := range planItems {
		fmt.Fprintf(&b, "- %s\n", item.Content)
	}
	if langs := detectLanguages(repoIndex); len(langs) > 0 {
		fmt.Fprintf(&b, "Repository languages: %s\n", strings.Join(langs, ", "))
	}
	return affected, b.String()
}

// iterate runs the single-action-per-iteration loop. Returns iterations used
// and whether the crew budget expired.
func (l *Loop) iterate(ctx context.Context, in Input, ws *workspace.Workspace, st *stream.Stream, sp *workspace.Scratchpad, pl *planner.Planner, sb *sandbox.Sandbox, affected []string, knowledgeContext string) (int, bool) {
	logger := l.logger.With("incident_id", in.IncidentID)
	consecutiveFailures := 0
	fileNotFound := 0
	iterations := 0

	for iterations < l.cfg.MaxIterations {
		if ctx.Err() != nil {
			return iterations, true
		}
		if pl.IsComplete() {
			break
		}
		step := pl.CurrentStep()
		if step == nil {
			break
		}
		iterations++

		pl.MarkStepInProgress()
		ws.UpdateTodoStep(step.StepNumber, planner.StatusInProgress, "")
		st.AddEvent(stream.TypePlanStepStarted, map[string]any{
			"step_number": step.StepNumber,
			"description": step.Description,
		}, l.agentName)

		summary, errType, stepErr := l.executeStep(ctx, in, ws, st, sb, step, affected)

		if stepErr == nil {
			pl.MarkStepCompleted(summary)
			ws.UpdateTodoStep(step.StepNumber, planner.StatusCompleted, summary)
			st.AddEvent(stream.TypePlanStepCompleted, map[string]any{
				"step_number": step.StepNumber,
				"result":      summary,
			}, l.agentName)
			consecutiveFailures = 0
			fileNotFound = 0
			pl.AdvanceToNextStep()
			sp.SyncFromWorkspace(ws, pl.ToTodoMD())
			continue
		}

		msg := stepErr.Error()
		class := classifyStepError(stepErr, errType)
		st.AddEvent(stream.TypePlanStepFailed, map[string]any{
			"step_number": step.StepNumber,
			"error":       msg,
			"class":       class,
		}, l.agentName)
		logger.Warn("Step failed", "step", step.StepNumber, "class", class, "error", msg)

		if strings.Contains(strings.ToLower(msg), "file not found") {
			fileNotFound++
			if fileNotFound >= fileNotFoundLimit {
				pl.MarkStepFailed(msg + " (use relative repo paths like \"src/api/users.ts\")")
				ws.UpdateTodoStep(step.StepNumber, planner.StatusFailed, "")
				consecutiveFailures++
				fileNotFound = 0
				pl.AdvanceToNextStep()
				l.maybeReplan(ctx, ws, st, pl, &consecutiveFailures, "repeated file-not-found errors", knowledgeContext)
				sp.SyncFromWorkspace(ws, pl.ToTodoMD())
				continue
			}
		}

		switch class {
		case errClassRetryable:
			if step.RetryCount < l.cfg.MaxRetriesPerStep {
				step.RetryCount++
				continue
			}
			pl.MarkStepFailed(msg)
		case errClassCritical:
			pl.MarkStepFailed(msg)
		default:
			if step.RetryCount < 1 {
				step.RetryCount++
				continue
			}
			pl.MarkStepFailed(msg)
		}

		ws.UpdateTodoStep(step.StepNumber, planner.StatusFailed, "")
		consecutiveFailures++
		pl.AdvanceToNextStep()

		reason := ""
		if class == errClassCritical {
			reason = "critical step failure: " + msg
		} else if consecutiveFailures >= consecutiveFailureLimit {
			reason = fmt.Sprintf("%d consecutive step failures", consecutiveFailures)
		}
		if reason != "" {
			l.maybeReplan(ctx, ws, st, pl, &consecutiveFailures, reason, knowledgeContext)
		}
		sp.SyncFromWorkspace(ws, pl.ToTodoMD())
	}
	return iterations, ctx.Err() != nil && !pl.IsComplete()
}

// executeStep runs one plan step: build context, ask the LLM for a tool-call
// batch, execute it in the sandbox. Returns a result summary, or the sandbox
// error type plus the error when the step failed.
func (l *Loop) executeStep(ctx context.Context, in Input, ws *workspace.Workspace, st *stream.Stream, sb *sandbox.Sandbox, step *planner.Step, affected []string) (string, string, error) {
	stepCtx, cancel := context.WithTimeout(ctx, l.cfg.StepTimeout)
	defer cancel()

	preload := append(append([]string{}, step.FilesToRead...), affected...)
	actx := prompt.ActionContext{
		RootCause:       in.RootCause,
		StepDescription: step.Description,
		FileContents:    l.preloadFiles(stepCtx, in, ws, step.Description, preload),
		FilePaths:       affected,
		EventSummary:    st.ContextString(10),
		WorkspaceState:  ws.State(),
	}
	if l.mem != nil {
		mctx := l.mem.RetrieveContext(stepCtx, in.Fingerprint)
		for i, f := range mctx.KnownFixes {
			if i >= 3 {
				break
			}
			actx.KnownFixes = append(actx.KnownFixes, f.Description)
		}
		for i, e := range mctx.PastErrors {
			if i >= 2 {
				break
			}
			actx.PastErrors = append(actx.PastErrors, e.Message)
		}
	}
	if l.know != nil {
		for _, item := range l.know.RetrieveRelevantKnowledge(stepCtx, step.Description, 3) {
			actx.Knowledge = append(actx.Knowledge, item.Content)
		}
	}

	resp, err := l.llm.Complete(stepCtx, llm.Request{
		System: prompt.ActSystem,
		Prompt: prompt.BuildActPrompt(actx),
	})
	if err != nil {
		return "", "", fmt.Errorf("action generation: %w", err)
	}

	batch, err := sb.ParseBatch(resp.Text)
	if err != nil {
		return "", sandbox.ErrorTypeFormat, err
	}
	for _, call := range batch.ToolCalls {
		st.AddEvent(stream.TypeToolCall, map[string]any{"tool": call.Tool}, l.agentName)
	}

	out := sb.Execute(stepCtx, batch)
	st.AddEvent(stream.TypeObservation, map[string]any{
		"success":       out.Success,
		"tool_calls":    len(out.Results),
		"files_written": len(out.FilesWritten),
	}, l.agentName)
	if !out.Success {
		return "", out.ErrorType, errors.New(out.Error)
	}
	return summarizeBatch(out), "", nil
}

// maybeReplan revises the plan, resetting the failure counter on success.
func (l *Loop) maybeReplan(ctx context.Context, ws *workspace.Workspace, st *stream.Stream, pl *planner.Planner, consecutiveFailures *int, reason, knowledgeContext string) {
	if !pl.Replan(ctx, reason, "", l.llm, knowledgeContext) {
		return
	}
	*consecutiveFailures = 0
	ws.SetPlan(pl.Steps())
	st.AddEvent(stream.TypePlanUpdated, map[string]any{
		"reason":       reason,
		"replan_count": pl.ReplanCount(),
	}, l.agentName)
}

// finish syncs the scratchpad, persists the run, stores learning on success,
// and assembles the result envelope.
func (l *Loop) finish(ctx context.Context, in Input, ws *workspace.Workspace, st *stream.Stream, sp *workspace.Scratchpad, pl *planner.Planner, iterations int, status, errMsg string, tracker *telemetry.Tracker) *Result {
	// Persistence must survive an expired crew budget.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	sp.SyncFromWorkspace(ws, pl.ToTodoMD())

	fixes := ws.Files()
	completed, total := pl.Progress()

	if l.recorder != nil {
		rec := RunRecord{
			IncidentID:   in.IncidentID,
			Status:       status,
			Iterations:   iterations,
			Steps:        pl.Steps(),
			ReplanCount:  pl.ReplanCount(),
			ReplanReason: pl.LastReplanReason(),
			Files:        fixes,
			Notes:        ws.Notes(),
		}
		if err := l.recorder.PersistRun(ctx, rec); err != nil {
			l.logger.Warn("Run persistence failed", "incident_id", in.IncidentID, "error", err)
		}
	}

	if status == StatusSuccess && len(fixes) > 0 && l.mem != nil {
		l.mem.StoreFixWithWorkspace(ctx, in.Fingerprint,
			"Automated fix: "+in.Title,
			patchSummary(fixes),
			memory.WorkspaceContext{
				FilesRead:     ws.FilesRead(),
				FilesModified: ws.FilesModified(),
				Changes:       fixes,
				IncidentID:    in.IncidentID,
			},
			in.IncidentID)
	}

	tracker.RunFinished(status)
	return &Result{
		Status:         status,
		Iterations:     iterations,
		PlanCompleted:  completed,
		PlanTotal:      total,
		Fixes:          fixes,
		Events:         st.Events(),
		WorkspaceState: ws.State(),
		Fingerprint:    in.Fingerprint,
		Error:          errMsg,
	}
}

// preloadFiles loads the contents of files the step mentions plus the
// affected files, bounded in count and size.
func (l *Loop) preloadFiles(ctx context.Context, in Input, ws *workspace.Workspace, stepDescription string, affected []string) map[string]string {
	candidates := append(mentionedPaths(stepDescription), affected...)
	out := make(map[string]string)
	for _, path := range candidates {
		if len(out) >= maxPreloadFiles {
			break
		}
		if _, dup := out[path]; dup {
			continue
		}
		content, ok := ws.GetFile(path)
		if !ok && l.repo != nil && in.RepoName != "" {
			fetched, err := l.repo.GetFileContents(ctx, in.RepoName, path, in.Ref)
			if err != nil || fetched == "" {
				continue
			}
			ws.SetFile(path, fetched)
			content = fetched
		}
		if content == "" {
			continue
		}
		out[path] = clipLines(content)
	}
	return out
}

// mentionedPaths pulls path-looking tokens out of a step description.
func mentionedPaths(text string) []string {
	var out []string
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, "`'\",.()[]")
		if strings.Contains(tok, "/") && strings.Contains(filepath.Base(tok), ".") {
			if p := paths.Normalize(tok); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// clipLines keeps oversize files readable: head and tail with an elision
// marker.
func clipLines(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= maxPreloadLines {
		return content
	}
	head := lines[:maxPreloadLines/2]
	tail := lines[len(lines)-maxPreloadLines/4:]
	return strings.Join(head, "\n") +
		fmt.Sprintf("\n... (%d lines omitted) ...\n", len(lines)-len(head)-len(tail)) +
		strings.Join(tail, "\n")
}

// classifyStepError buckets a step failure for the retry policy.
func classifyStepError(err error, sandboxErrorType string) string {
	switch sandboxErrorType {
	case sandbox.ErrorTypeTimeout:
		return errClassRetryable
	case sandbox.ErrorTypeSyntax, sandbox.ErrorTypeFormat:
		return errClassNonRetryable
	}
	if llm.IsRetryable(err) {
		return errClassRetryable
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"circuit breaker", "context canceled", "cannot proceed", "fatal"} {
		if strings.Contains(msg, marker) {
			return errClassCritical
		}
	}
	return errClassNonRetryable
}

// summarizeBatch renders a short step result for the plan record.
func summarizeBatch(out *sandbox.BatchResult) string {
	tools := make([]string, 0, len(out.Results))
	for _, r := range out.Results {
		tools = append(tools, r.Tool)
	}
	summary := fmt.Sprintf("%d tool calls (%s)", len(out.Results), strings.Join(tools, ", "))
	if len(out.FilesWritten) > 0 {
		written := make([]string, 0, len(out.FilesWritten))
		for p := range out.FilesWritten {
			written = append(written, p)
		}
		sort.Strings(written)
		summary += "; wrote " + strings.Join(written, ", ")
	}
	return summary
}

// patchSummary renders workspace changes as one storable blob.
func patchSummary(files map[string]string) string {
	names := make([]string, 0, len(files))
	for p := range files {
		names = append(names, p)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, p := range names {
		fmt.Fprintf(&b, "--- %s ---\n%s\n", p, files[p])
	}
	return b.String()
}

// mergeUnique appends the extra lists onto base, deduplicated, keeping base
// order first.
func mergeUnique(base []string, extras ...[]string) []string {
	seen := make(map[string]struct{}, len(base))
	out := make([]string, 0, len(base))
	for _, p := range base {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	for _, extra := range extras {
		for _, p := range extra {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	return out
}

// detectLanguages maps file extensions in the repo index to language names.
func detectLanguages(filePaths []string) []string {
	langs := make(map[string]struct{})
	for _, p := range filePaths {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".ts", ".tsx":
			langs["TypeScript"] = struct{}{}
		case ".js", ".jsx", ".mjs":
			langs["JavaScript"] = struct{}{}
		case ".py":
			langs["Python"] = struct{}{}
		case ".go":
			langs["Go"] = struct{}{}
		case ".rb":
			langs["Ruby"] = struct{}{}
		case ".java":
			langs["Java"] = struct{}{}
		case ".rs":
			langs["Rust"] = struct{}{}
		}
	}
	out := make([]string, 0, len(langs))
	for l := range langs {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
