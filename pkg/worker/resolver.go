// Package worker consumes resolve_incident tasks: claim the ledger, run the
// root cause analysis and the agent loop, open the pull request, notify the
// ticket and the chat channel, and settle the ledger.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/ent/incident"
	"github.com/sourabhkumawat/healops/ent/logentry"
	"github.com/sourabhkumawat/healops/pkg/agent"
	"github.com/sourabhkumawat/healops/pkg/agent/prompt"
	"github.com/sourabhkumawat/healops/pkg/fingerprint"
	"github.com/sourabhkumawat/healops/pkg/github"
	"github.com/sourabhkumawat/healops/pkg/llm"
	"github.com/sourabhkumawat/healops/pkg/models"
)

// maxAnalysisMessages bounds how many log messages feed the analysis prompt.
const maxAnalysisMessages = 10

// settleTimeout bounds post-run persistence when the task context is gone.
const settleTimeout = 30 * time.Second

// branchPrefix is the head branch namespace for automated fix PRs.
const branchPrefix = "healops/fix-"

// Runner executes one agent run. Satisfied by *agent.Loop.
type Runner interface {
	Run(ctx context.Context, in agent.Input) *agent.Result
}

// RunnerFactory builds the Runner for one incident. A fresh Runner per run
// lets the caller bind per-incident collaborators (the event bridge).
type RunnerFactory func(incidentID string) Runner

// LedgerAPI is the resolution request state machine seam.
type LedgerAPI interface {
	TryClaim(ctx context.Context, incidentID string) (bool, error)
	MarkCompleted(ctx context.Context, incidentID string) error
	MarkFailed(ctx context.Context, incidentID string, cause error) error
}

// RepoHost opens pull requests and reads originals. Satisfied by
// *github.Client.
type RepoHost interface {
	GetFileContents(ctx context.Context, repo, path, ref string) (string, error)
	CreatePR(ctx context.Context, repo, title, body, headBranch, baseBranch string, changes []github.FileChange, draft bool) (*github.PullRequest, error)
}

// TicketClient comments on the incident's tracking ticket. Satisfied by
// *ticketing.Service.
type TicketClient interface {
	CommentOnTicket(ctx context.Context, inc *ent.Incident, body string) error
}

// ChatClient posts outcome notifications. Satisfied by *slack.Client.
type ChatClient interface {
	PostMessage(ctx context.Context, channel, text, thread string) (string, error)
}

// AgentStatus reflects run activity onto the agent record. Satisfied by
// *agent.Registry.
type AgentStatus interface {
	MarkWorking(ctx context.Context, name, task string) error
	MarkAvailable(ctx context.Context, name string, completedTask map[string]interface{}) error
}

// Resolver handles one resolve_incident task end to end.
type Resolver struct {
	client     *ent.Client
	ledger     LedgerAPI
	runners    RunnerFactory
	llm        llm.Client
	repo       RepoHost
	tickets    TicketClient
	chat       ChatClient
	registry   AgentStatus
	channel    string
	baseBranch string
	agentName  string
	now        func() time.Time
	logger     *slog.Logger
}

// ResolverOptions wires a Resolver. Repo, Tickets, Chat, and Registry may be
// nil; the corresponding side effect is skipped.
type ResolverOptions struct {
	Client     *ent.Client
	Ledger     LedgerAPI
	Runners    RunnerFactory
	LLM        llm.Client
	Repo       RepoHost
	Tickets    TicketClient
	Chat       ChatClient
	Registry   AgentStatus
	Channel    string
	BaseBranch string
	AgentName  string
}

// NewResolver creates a Resolver.
func NewResolver(opts ResolverOptions) *Resolver {
	if opts.Client == nil {
		panic("worker.NewResolver: client must not be nil")
	}
	if opts.Ledger == nil {
		panic("worker.NewResolver: ledger must not be nil")
	}
	if opts.Runners == nil {
		panic("worker.NewResolver: runner factory must not be nil")
	}
	base := opts.BaseBranch
	if base == "" {
		base = "main"
	}
	name := opts.AgentName
	if name == "" {
		name = "resolver"
	}
	return &Resolver{
		client:     opts.Client,
		ledger:     opts.Ledger,
		runners:    opts.Runners,
		llm:        opts.LLM,
		repo:       opts.Repo,
		tickets:    opts.Tickets,
		chat:       opts.Chat,
		registry:   opts.Registry,
		channel:    opts.Channel,
		baseBranch: base,
		agentName:  name,
		now:        time.Now,
		logger:     slog.Default().With("component", "worker"),
	}
}

// HandleTask is the bus consumer entry point.
func (r *Resolver) HandleTask(ctx context.Context, task models.Task) error {
	if task.Type != models.TaskResolveIncident {
		r.logger.Warn("Ignoring unexpected task type", "task_type", task.Type)
		return nil
	}
	return r.Resolve(ctx, task.IncidentID)
}

// Resolve claims the incident's resolution request and runs the job. A false
// claim drops the task as a duplicate. Any failure after the claim marks the
// ledger FAILED and acknowledges the task; redelivery would lose the claim
// race against itself.
func (r *Resolver) Resolve(ctx context.Context, incidentID string) error {
	logger := r.logger.With("incident_id", incidentID)

	claimed, err := r.ledger.TryClaim(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("claim incident %s: %w", incidentID, err)
	}
	if !claimed {
		logger.Info("Dropping duplicate resolve task, claim lost")
		return nil
	}

	defer func() {
		if p := recover(); p != nil {
			logger.Error("Resolution panicked", "panic", p)
			r.settleFailed(ctx, incidentID, fmt.Errorf("panic: %v", p))
		}
	}()

	if r.registry != nil {
		if err := r.registry.MarkWorking(ctx, r.agentName, "resolve "+incidentID); err != nil {
			logger.Warn("Agent status update failed", "error", err)
		}
	}
	outcome := r.resolveClaimed(ctx, incidentID, logger)
	if r.registry != nil {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
		defer cancel()
		if err := r.registry.MarkAvailable(sctx, r.agentName, outcome); err != nil {
			logger.Warn("Agent status update failed", "error", err)
		}
	}
	return nil
}

// resolveClaimed runs the job after a won claim and returns the completed
// task summary for the agent record.
func (r *Resolver) resolveClaimed(ctx context.Context, incidentID string, logger *slog.Logger) map[string]interface{} {
	inc, err := r.client.Incident.Get(ctx, incidentID)
	if err != nil {
		r.settleFailed(ctx, incidentID, fmt.Errorf("load incident: %w", err))
		return outcomeMap(incidentID, "error")
	}

	r.setStatus(ctx, inc.ID, incident.StatusInvestigating, logger)

	logs := r.loadLogs(ctx, inc, logger)
	messages := logMessages(logs)

	rootCause := inc.RootCause
	if rootCause == "" {
		rootCause = r.analyze(ctx, inc, messages, logger)
		if rootCause != "" {
			if err := r.client.Incident.UpdateOneID(inc.ID).SetRootCause(rootCause).Exec(ctx); err != nil {
				logger.Warn("Root cause persistence failed", "error", err)
			}
		}
	}

	fp := fingerprint.Compute(fingerprint.Header{
		IncidentID:  inc.ID,
		ServiceName: inc.ServiceName,
		Source:      inc.Source,
		Severity:    string(inc.Severity),
	}, messages)

	r.setStatus(ctx, inc.ID, incident.StatusHealing, logger)

	res := r.runners(inc.ID).Run(ctx, agent.Input{
		IncidentID:  inc.ID,
		Title:       inc.Title,
		ServiceName: inc.ServiceName,
		RootCause:   rootCause,
		Fingerprint: fp,
		RepoName:    inc.RepoName,
		Ref:         r.baseBranch,
		Messages:    messages,
		Metadata:    models.Metadata(inc.Metadata),
	})

	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancel()

	if res.Skipped {
		r.settleSkipped(sctx, inc, res, logger)
		return outcomeMap(inc.ID, "skipped_external")
	}

	switch res.Status {
	case agent.StatusSuccess:
		r.settleSuccess(sctx, inc, res, logger)
	case agent.StatusPartial:
		// Progress is persisted (root cause, workspace rows); a failed ledger
		// row lets the next trigger retry with the warm start.
		r.settleFailed(sctx, inc.ID, errors.New("resolution incomplete: plan not finished"))
	default:
		r.setStatus(sctx, inc.ID, incident.StatusFailed, logger)
		r.settleFailed(sctx, inc.ID, errors.New(firstNonEmpty(res.Error, "agent run failed")))
	}
	return outcomeMap(inc.ID, res.Status)
}

// settleSkipped records the external-code explanation and completes the
// ledger. No pull request is opened.
func (r *Resolver) settleSkipped(ctx context.Context, inc *ent.Incident, res *agent.Result, logger *slog.Logger) {
	err := r.client.Incident.UpdateOneID(inc.ID).
		SetCodeFixExplanation(res.SkipExplanation).
		SetActionTaken("Skipped: error originates in dependency code").
		SetStatus(incident.StatusResolved).
		SetResolvedAt(r.now().UTC()).
		Exec(ctx)
	if err != nil {
		logger.Warn("Skip outcome persistence failed", "error", err)
	}
	if err := r.ledger.MarkCompleted(ctx, inc.ID); err != nil {
		logger.Error("Ledger completion failed", "error", err)
	}
	r.notifyChat(ctx, fmt.Sprintf(
		":information_source: Incident %q (%s) was not auto-resolved: the error originates in dependency code.",
		inc.Title, inc.ServiceName))
}

// settleSuccess opens the PR when there are fixes, updates the incident, and
// completes the ledger.
func (r *Resolver) settleSuccess(ctx context.Context, inc *ent.Incident, res *agent.Result, logger *slog.Logger) {
	update := r.client.Incident.UpdateOneID(inc.ID).
		SetStatus(incident.StatusResolved).
		SetResolvedAt(r.now().UTC())

	var pr *github.PullRequest
	if len(res.Fixes) > 0 && r.repo != nil && inc.RepoName != "" {
		var err error
		pr, err = r.openPullRequest(ctx, inc, res, update)
		if err != nil {
			logger.Error("Pull request creation failed", "repo", inc.RepoName, "error", err)
			r.setStatus(ctx, inc.ID, incident.StatusFailed, logger)
			r.settleFailed(ctx, inc.ID, fmt.Errorf("create pull request: %w", err))
			return
		}
	}

	if pr != nil {
		update.SetActionTaken(fmt.Sprintf("Opened PR #%d with %d file(s) changed", pr.Number, len(res.Fixes)))
	} else {
		update.SetActionTaken("Resolved without code changes")
	}
	if err := update.Exec(ctx); err != nil {
		logger.Warn("Resolution persistence failed", "error", err)
	}

	if err := r.ledger.MarkCompleted(ctx, inc.ID); err != nil {
		logger.Error("Ledger completion failed", "error", err)
		r.settleFailed(ctx, inc.ID, fmt.Errorf("complete ledger: %w", err))
		return
	}

	if pr != nil {
		r.notifyTicket(ctx, inc, fmt.Sprintf("Automated fix ready for review: %s", pr.HTMLURL))
		r.notifyChat(ctx, fmt.Sprintf(
			":white_check_mark: Automated fix for %q (%s): %s", inc.Title, inc.ServiceName, pr.HTMLURL))
	}
}

// openPullRequest snapshots original contents, pushes the changes on a fresh
// branch, and opens the PR. The update builder receives the PR bookkeeping.
func (r *Resolver) openPullRequest(ctx context.Context, inc *ent.Incident, res *agent.Result, update *ent.IncidentUpdateOne) (*github.PullRequest, error) {
	paths := make([]string, 0, len(res.Fixes))
	for path := range res.Fixes {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	originals := make(map[string]string, len(paths))
	changes := make([]github.FileChange, 0, len(paths))
	for _, path := range paths {
		original, err := r.repo.GetFileContents(ctx, inc.RepoName, path, r.baseBranch)
		if err == nil {
			originals[path] = original
		}
		changes = append(changes, github.FileChange{Path: path, Content: res.Fixes[path]})
	}

	head := branchPrefix + shortID(inc.ID)
	pr, err := r.repo.CreatePR(ctx, inc.RepoName,
		"Fix: "+inc.Title,
		prBody(inc, res, paths),
		head, r.baseBranch, changes, false)
	if err != nil {
		return nil, err
	}

	update.SetPrURL(pr.HTMLURL).
		SetPrNumber(pr.Number).
		SetPrFilesChanged(paths).
		SetPrOriginalContents(originals)
	return pr, nil
}

// settleFailed marks the ledger FAILED. Errors are logged; the orphan scan
// eventually fails a stuck IN_FLIGHT row anyway.
func (r *Resolver) settleFailed(ctx context.Context, incidentID string, cause error) {
	if err := r.ledger.MarkFailed(ctx, incidentID, cause); err != nil {
		r.logger.Error("Ledger failure record failed", "incident_id", incidentID, "error", err)
	}
}

// analyze asks the LLM for the root cause. Best-effort: an empty result makes
// the planner fall back to its fixed plan.
func (r *Resolver) analyze(ctx context.Context, inc *ent.Incident, messages []string, logger *slog.Logger) string {
	if r.llm == nil {
		return ""
	}
	var traces []string
	for _, frame := range models.Metadata(inc.Metadata).StackFrames() {
		if frame.Raw != "" {
			traces = append(traces, frame.Raw)
		}
	}
	resp, err := r.llm.Complete(ctx, llm.Request{
		System: prompt.AnalysisSystem,
		Prompt: prompt.BuildAnalysisPrompt(inc.Title, messages, traces),
	})
	if err != nil {
		logger.Warn("Root cause analysis failed", "error", err)
		return ""
	}
	return strings.TrimSpace(resp.Text)
}

func (r *Resolver) loadLogs(ctx context.Context, inc *ent.Incident, logger *slog.Logger) []*ent.LogEntry {
	if len(inc.LogIds) == 0 {
		return nil
	}
	logs, err := r.client.LogEntry.Query().
		Where(logentry.IDIn(inc.LogIds...)).
		Order(ent.Asc(logentry.FieldTimestamp)).
		All(ctx)
	if err != nil {
		logger.Warn("Log load failed", "error", err)
		return nil
	}
	return logs
}

func (r *Resolver) setStatus(ctx context.Context, incidentID string, status incident.Status, logger *slog.Logger) {
	if err := r.client.Incident.UpdateOneID(incidentID).SetStatus(status).Exec(ctx); err != nil {
		logger.Warn("Incident status update failed", "status", status, "error", err)
	}
}

func (r *Resolver) notifyTicket(ctx context.Context, inc *ent.Incident, body string) {
	if r.tickets == nil {
		return
	}
	if err := r.tickets.CommentOnTicket(ctx, inc, body); err != nil {
		r.logger.Warn("Ticket comment failed", "incident_id", inc.ID, "error", err)
	}
}

func (r *Resolver) notifyChat(ctx context.Context, text string) {
	if r.chat == nil || r.channel == "" {
		return
	}
	if _, err := r.chat.PostMessage(ctx, r.channel, text, ""); err != nil {
		r.logger.Warn("Chat notification failed", "error", err)
	}
}

// prBody renders the pull request description.
func prBody(inc *ent.Incident, res *agent.Result, paths []string) string {
	var b strings.Builder
	b.WriteString("## Automated incident fix\n\n")
	fmt.Fprintf(&b, "Incident: **%s** (`%s`, severity %s)\n\n", inc.Title, inc.ServiceName, inc.Severity)
	if inc.RootCause != "" {
		b.WriteString("### Root cause\n\n")
		b.WriteString(inc.RootCause)
		b.WriteString("\n\n")
	}
	b.WriteString("### Files changed\n\n")
	for _, path := range paths {
		fmt.Fprintf(&b, "- `%s`\n", path)
	}
	fmt.Fprintf(&b, "\nResolved in %d agent iteration(s), %d/%d plan steps completed.\n",
		res.Iterations, res.PlanCompleted, res.PlanTotal)
	return b.String()
}

func logMessages(logs []*ent.LogEntry) []string {
	messages := make([]string, 0, len(logs))
	for _, row := range logs {
		messages = append(messages, row.Message)
		if len(messages) == maxAnalysisMessages {
			break
		}
	}
	return messages
}

func outcomeMap(incidentID, status string) map[string]interface{} {
	return map[string]interface{}{
		"incident_id": incidentID,
		"status":      status,
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
