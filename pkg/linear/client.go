// Package linear is the ticketing adapter: issue CRUD over the Linear
// GraphQL API with OAuth tokens refreshed ahead of expiry, and the enhanced
// Markdown description rendered for incident tickets.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// tokenRefreshLead is how long before expiry a token is refreshed.
const tokenRefreshLead = 5 * time.Minute

// defaultEndpoint is the Linear GraphQL endpoint.
const defaultEndpoint = "https://api.linear.app/graphql"

// tokenURL is the Linear OAuth token endpoint.
const tokenURL = "https://api.linear.app/oauth/token"

// Issue is the subset of Linear issue fields the system uses.
type Issue struct {
	ID         string   `json:"id"`
	Identifier string   `json:"identifier"`
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	Priority   int      `json:"priority"`
	StateID    string   `json:"-"`
	Assignee   string   `json:"-"`
	Labels     []string `json:"-"`
}

// OAuthToken is the persisted token state for a Linear integration.
type OAuthToken struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// Client talks to the Linear GraphQL API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
}

// NewClient builds a client that authenticates with OAuth and refreshes the
// access token five minutes before it expires.
func NewClient(ctx context.Context, clientID, clientSecret string, token OAuthToken) *Client {
	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
	}
	base := &oauth2.Token{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
	src := oauth2.ReuseTokenSourceWithExpiry(base, cfg.TokenSource(ctx, base), tokenRefreshLead)
	return &Client{
		httpClient: oauth2.NewClient(ctx, src),
		endpoint:   defaultEndpoint,
		logger:     slog.Default().With("component", "linear"),
	}
}

// NewClientWithHTTP builds a client over a prepared HTTP client and endpoint.
// Used by tests.
func NewClientWithHTTP(httpClient *http.Client, endpoint string) *Client {
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		logger:     slog.Default().With("component", "linear"),
	}
}

// CreateIssue opens a new Linear issue and returns it.
func (c *Client) CreateIssue(ctx context.Context, teamID, title, description string, priority int) (*Issue, error) {
	const mutation = `mutation IssueCreate($input: IssueCreateInput!) {
		issueCreate(input: $input) {
			success
			issue { id identifier title url priority }
		}
	}`
	vars := map[string]interface{}{
		"input": map[string]interface{}{
			"teamId":      teamID,
			"title":       title,
			"description": description,
			"priority":    priority,
		},
	}
	var out struct {
		IssueCreate struct {
			Success bool  `json:"success"`
			Issue   Issue `json:"issue"`
		} `json:"issueCreate"`
	}
	if err := c.do(ctx, mutation, vars, &out); err != nil {
		return nil, fmt.Errorf("create linear issue: %w", err)
	}
	if !out.IssueCreate.Success {
		return nil, fmt.Errorf("create linear issue: mutation reported failure")
	}
	c.logger.Info("Linear issue created", "identifier", out.IssueCreate.Issue.Identifier)
	return &out.IssueCreate.Issue, nil
}

// GetIssue fetches one issue by id.
func (c *Client) GetIssue(ctx context.Context, issueID string) (*Issue, error) {
	const query = `query Issue($id: String!) {
		issue(id: $id) {
			id identifier title url priority
			state { id }
			assignee { displayName }
			labels { nodes { name } }
		}
	}`
	var out struct {
		Issue struct {
			Issue
			State struct {
				ID string `json:"id"`
			} `json:"state"`
			Assignee struct {
				DisplayName string `json:"displayName"`
			} `json:"assignee"`
			Labels struct {
				Nodes []struct {
					Name string `json:"name"`
				} `json:"nodes"`
			} `json:"labels"`
		} `json:"issue"`
	}
	if err := c.do(ctx, query, map[string]interface{}{"id": issueID}, &out); err != nil {
		return nil, fmt.Errorf("get linear issue %s: %w", issueID, err)
	}
	issue := out.Issue.Issue
	issue.StateID = out.Issue.State.ID
	issue.Assignee = out.Issue.Assignee.DisplayName
	for _, l := range out.Issue.Labels.Nodes {
		issue.Labels = append(issue.Labels, l.Name)
	}
	return &issue, nil
}

// UpdateIssue patches the given fields on an issue. Supported keys: title,
// description, priority, stateId.
func (c *Client) UpdateIssue(ctx context.Context, issueID string, fields map[string]interface{}) error {
	const mutation = `mutation IssueUpdate($id: String!, $input: IssueUpdateInput!) {
		issueUpdate(id: $id, input: $input) { success }
	}`
	var out struct {
		IssueUpdate struct {
			Success bool `json:"success"`
		} `json:"issueUpdate"`
	}
	vars := map[string]interface{}{"id": issueID, "input": fields}
	if err := c.do(ctx, mutation, vars, &out); err != nil {
		return fmt.Errorf("update linear issue %s: %w", issueID, err)
	}
	if !out.IssueUpdate.Success {
		return fmt.Errorf("update linear issue %s: mutation reported failure", issueID)
	}
	return nil
}

// UpdateIssueState moves an issue to a workflow state.
func (c *Client) UpdateIssueState(ctx context.Context, issueID, stateID string) error {
	return c.UpdateIssue(ctx, issueID, map[string]interface{}{"stateId": stateID})
}

// AddCommentToIssue posts a comment on an issue.
func (c *Client) AddCommentToIssue(ctx context.Context, issueID, body string) error {
	const mutation = `mutation CommentCreate($input: CommentCreateInput!) {
		commentCreate(input: $input) { success }
	}`
	var out struct {
		CommentCreate struct {
			Success bool `json:"success"`
		} `json:"commentCreate"`
	}
	vars := map[string]interface{}{
		"input": map[string]interface{}{"issueId": issueID, "body": body},
	}
	if err := c.do(ctx, mutation, vars, &out); err != nil {
		return fmt.Errorf("comment on linear issue %s: %w", issueID, err)
	}
	if !out.CommentCreate.Success {
		return fmt.Errorf("comment on linear issue %s: mutation reported failure", issueID)
	}
	return nil
}

// botAssigneeMarkers identify issues already assigned to an automation.
var botAssigneeMarkers = []string{"bot", "healops", "agent", "automation"}

// GetOpenResolvableIssues lists open issues the resolver may pick up:
// unstarted or started issues in the given teams, excluding ones assigned to
// a bot, carrying an excluded label, or above maxPriority (Linear priority 1
// is urgent; 0 means no priority and is never filtered out).
func (c *Client) GetOpenResolvableIssues(ctx context.Context, teamIDs, excludeLabels []string, maxPriority int) ([]Issue, error) {
	const query = `query OpenIssues($filter: IssueFilter) {
		issues(filter: $filter, first: 50) {
			nodes {
				id identifier title url priority
				assignee { displayName }
				labels { nodes { name } }
			}
		}
	}`
	filter := map[string]interface{}{
		"state": map[string]interface{}{
			"type": map[string]interface{}{"in": []string{"triage", "backlog", "unstarted", "started"}},
		},
	}
	if len(teamIDs) > 0 {
		filter["team"] = map[string]interface{}{
			"id": map[string]interface{}{"in": teamIDs},
		}
	}
	var out struct {
		Issues struct {
			Nodes []struct {
				Issue
				Assignee struct {
					DisplayName string `json:"displayName"`
				} `json:"assignee"`
				Labels struct {
					Nodes []struct {
						Name string `json:"name"`
					} `json:"nodes"`
				} `json:"labels"`
			} `json:"nodes"`
		} `json:"issues"`
	}
	if err := c.do(ctx, query, map[string]interface{}{"filter": filter}, &out); err != nil {
		return nil, fmt.Errorf("list open resolvable issues: %w", err)
	}

	excluded := make(map[string]struct{}, len(excludeLabels))
	for _, l := range excludeLabels {
		excluded[strings.ToLower(l)] = struct{}{}
	}

	var issues []Issue
	for _, node := range out.Issues.Nodes {
		if isBotAssignee(node.Assignee.DisplayName) {
			continue
		}
		if maxPriority > 0 && node.Priority > maxPriority {
			continue
		}
		skip := false
		issue := node.Issue
		for _, l := range node.Labels.Nodes {
			issue.Labels = append(issue.Labels, l.Name)
			if _, ok := excluded[strings.ToLower(l.Name)]; ok {
				skip = true
			}
		}
		if skip {
			continue
		}
		issue.Assignee = node.Assignee.DisplayName
		issues = append(issues, issue)
	}
	return issues, nil
}

func isBotAssignee(displayName string) bool {
	if displayName == "" {
		return false
	}
	name := strings.ToLower(displayName)
	for _, marker := range botAssigneeMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// PriorityForSeverity maps incident severity onto Linear priority
// (1 urgent .. 4 low).
func PriorityForSeverity(severity string) int {
	switch strings.ToLower(severity) {
	case "critical":
		return 1
	case "high":
		return 2
	case "medium":
		return 3
	default:
		return 4
	}
}

type graphqlError struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, query string, vars map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": vars,
	})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("linear request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("linear returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode graphql data: %w", err)
		}
	}
	return nil
}
