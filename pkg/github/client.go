// Package github is the repo-host adapter: file reads, structure listing
// with a TTL cache, code search, commits, and pull request operations
// against the GitHub REST API.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// structureCacheTTL is how long a repo structure listing stays fresh.
const structureCacheTTL = 5 * time.Minute

// skipDirs are build and cache directories excluded from structure listings.
var skipDirs = map[string]struct{}{
	"node_modules": {},
	"__pycache__":  {},
	".git":         {},
	".next":        {},
	"dist":         {},
	"build":        {},
	"target":       {},
	"vendor":       {},
	".venv":        {},
	"venv":         {},
	"coverage":     {},
	".cache":       {},
}

// FileChange is one file in a PR or commit: path and full new content.
type FileChange struct {
	Path    string
	Content string
}

// PullRequest is the subset of PR fields the system uses.
type PullRequest struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
	Head    struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	} `json:"head"`
	Base struct {
		Ref string `json:"ref"`
	} `json:"base"`
	User struct {
		Login string `json:"login"`
	} `json:"user"`
	Draft bool `json:"draft"`
}

// RepoInfo is basic repository metadata.
type RepoInfo struct {
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	Language      string `json:"language"`
}

// SearchResult is one code search hit.
type SearchResult struct {
	Path    string `json:"path"`
	HTMLURL string `json:"html_url"`
	Repo    string `json:"-"`
}

// Client is the GitHub repo adapter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cache      *structureCache
	logger     *slog.Logger
}

// NewClient creates a GitHub client. token may be empty (public repos only,
// lower rate limits).
func NewClient(token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    "https://api.github.com",
		token:      token,
		cache:      newStructureCache(structureCacheTTL),
		logger:     slog.Default().With("component", "github"),
	}
}

// NewClientWithBaseURL is NewClient pointed at a different API host. Used by
// tests and GitHub Enterprise deployments.
func NewClientWithBaseURL(token, baseURL string, timeout time.Duration) *Client {
	c := NewClient(token, timeout)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// VerifyConnection checks that the token can reach the API.
func (c *Client) VerifyConnection(ctx context.Context) error {
	var out struct {
		Login string `json:"login"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/user", nil, &out); err != nil {
		return fmt.Errorf("verify github connection: %w", err)
	}
	return nil
}

// GetRepoInfo fetches repository metadata. repo is "owner/name".
func (c *Client) GetRepoInfo(ctx context.Context, repo string) (*RepoInfo, error) {
	var info RepoInfo
	if err := c.doJSON(ctx, http.MethodGet, "/repos/"+repo, nil, &info); err != nil {
		return nil, fmt.Errorf("get repo info for %s: %w", repo, err)
	}
	return &info, nil
}

// GetFileContents returns the decoded content of a file, or ("", nil) when
// the file does not exist. ref may be empty for the default branch.
func (c *Client) GetFileContents(ctx context.Context, repo, path, ref string) (string, error) {
	endpoint := fmt.Sprintf("/repos/%s/contents/%s", repo, strings.TrimPrefix(path, "/"))
	if ref != "" {
		endpoint += "?ref=" + url.QueryEscape(ref)
	}
	var out struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out)
	if err != nil {
		var se *statusError
		if asStatusError(err, &se) && se.code == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("get contents of %s in %s: %w", path, repo, err)
	}
	if out.Encoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(out.Content, "\n", ""))
		if err != nil {
			return "", fmt.Errorf("decode contents of %s: %w", path, err)
		}
		return string(decoded), nil
	}
	return out.Content, nil
}

// GetRepoStructure lists file paths under path up to maxDepth. Prefers a
// single recursive git tree fetch; when the tree response is truncated it
// falls back to recursive Contents API traversal. Results are cached for
// five minutes per (repo, ref, depth).
func (c *Client) GetRepoStructure(ctx context.Context, repo, path, ref string, maxDepth int) ([]string, error) {
	if maxDepth <= 0 {
		maxDepth = 4
	}
	if ref == "" {
		ref = "HEAD"
	}
	cacheKey := fmt.Sprintf("%s@%s:%s:%d", repo, ref, path, maxDepth)
	if paths, ok := c.cache.Get(cacheKey); ok {
		return paths, nil
	}

	paths, truncated, err := c.fetchTree(ctx, repo, ref)
	if err != nil {
		return nil, fmt.Errorf("get repo structure for %s: %w", repo, err)
	}
	if truncated {
		c.logger.Info("Tree response truncated, falling back to recursive traversal", "repo", repo)
		paths, err = c.walkContents(ctx, repo, path, ref, maxDepth, 0)
		if err != nil {
			return nil, fmt.Errorf("get repo structure for %s: %w", repo, err)
		}
	}

	filtered := make([]string, 0, len(paths))
	for _, p := range paths {
		if path != "" && !strings.HasPrefix(p, strings.TrimPrefix(path, "/")) {
			continue
		}
		if pathDepth(p) > maxDepth || hasSkippedDir(p) {
			continue
		}
		filtered = append(filtered, p)
	}

	c.cache.Set(cacheKey, filtered)
	return filtered, nil
}

func (c *Client) fetchTree(ctx context.Context, repo, ref string) (paths []string, truncated bool, err error) {
	endpoint := fmt.Sprintf("/repos/%s/git/trees/%s?recursive=1", repo, url.PathEscape(ref))
	var out struct {
		Truncated bool `json:"truncated"`
		Tree      []struct {
			Path string `json:"path"`
			Type string `json:"type"`
		} `json:"tree"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, false, err
	}
	for _, entry := range out.Tree {
		if entry.Type == "blob" {
			paths = append(paths, entry.Path)
		}
	}
	return paths, out.Truncated, nil
}

func (c *Client) walkContents(ctx context.Context, repo, path, ref string, maxDepth, depth int) ([]string, error) {
	if depth >= maxDepth {
		return nil, nil
	}
	endpoint := fmt.Sprintf("/repos/%s/contents/%s?ref=%s", repo, strings.TrimPrefix(path, "/"), url.QueryEscape(ref))
	var items []struct {
		Path string `json:"path"`
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &items); err != nil {
		return nil, err
	}
	var paths []string
	for _, item := range items {
		switch item.Type {
		case "file":
			paths = append(paths, item.Path)
		case "dir":
			if _, skip := skipDirs[item.Name]; skip {
				continue
			}
			sub, err := c.walkContents(ctx, repo, item.Path, ref, maxDepth, depth+1)
			if err != nil {
				c.logger.Warn("Failed to list subdirectory", "path", item.Path, "error", err)
				continue
			}
			paths = append(paths, sub...)
		}
	}
	return paths, nil
}

// SearchCode searches code in a single repository.
func (c *Client) SearchCode(ctx context.Context, repo, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 || limit > 30 {
		limit = 10
	}
	q := url.QueryEscape(fmt.Sprintf("%s repo:%s", query, repo))
	endpoint := fmt.Sprintf("/search/code?q=%s&per_page=%d", q, limit)
	var out struct {
		Items []SearchResult `json:"items"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, fmt.Errorf("search code in %s: %w", repo, err)
	}
	for i := range out.Items {
		out.Items[i].Repo = repo
	}
	return out.Items, nil
}

// CreateOrUpdateFile commits one file to branch, creating or replacing it.
func (c *Client) CreateOrUpdateFile(ctx context.Context, repo, path, branch, message, content string) error {
	endpoint := fmt.Sprintf("/repos/%s/contents/%s", repo, strings.TrimPrefix(path, "/"))

	body := map[string]interface{}{
		"message": message,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
		"branch":  branch,
	}
	// An update needs the current blob SHA.
	if sha, err := c.fileSHA(ctx, repo, path, branch); err == nil && sha != "" {
		body["sha"] = sha
	}

	if err := c.doJSON(ctx, http.MethodPut, endpoint, body, nil); err != nil {
		return fmt.Errorf("create or update %s in %s: %w", path, repo, err)
	}
	return nil
}

func (c *Client) fileSHA(ctx context.Context, repo, path, ref string) (string, error) {
	endpoint := fmt.Sprintf("/repos/%s/contents/%s?ref=%s", repo, strings.TrimPrefix(path, "/"), url.QueryEscape(ref))
	var out struct {
		SHA string `json:"sha"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return "", err
	}
	return out.SHA, nil
}

// CreatePR creates a branch off base, commits the changes onto it, and opens
// a pull request. Returns the created PR.
func (c *Client) CreatePR(ctx context.Context, repo, title, body, headBranch, baseBranch string, changes []FileChange, draft bool) (*PullRequest, error) {
	if len(changes) == 0 {
		return nil, fmt.Errorf("create pr in %s: no file changes", repo)
	}
	if baseBranch == "" {
		info, err := c.GetRepoInfo(ctx, repo)
		if err != nil {
			return nil, err
		}
		baseBranch = info.DefaultBranch
	}

	baseSHA, err := c.branchSHA(ctx, repo, baseBranch)
	if err != nil {
		return nil, fmt.Errorf("create pr in %s: %w", repo, err)
	}
	if err := c.createBranch(ctx, repo, headBranch, baseSHA); err != nil {
		return nil, fmt.Errorf("create pr in %s: %w", repo, err)
	}

	for _, change := range changes {
		msg := fmt.Sprintf("fix: update %s", change.Path)
		if err := c.CreateOrUpdateFile(ctx, repo, change.Path, headBranch, msg, change.Content); err != nil {
			return nil, err
		}
	}

	var pr PullRequest
	reqBody := map[string]interface{}{
		"title": title,
		"body":  body,
		"head":  headBranch,
		"base":  baseBranch,
		"draft": draft,
	}
	if err := c.doJSON(ctx, http.MethodPost, "/repos/"+repo+"/pulls", reqBody, &pr); err != nil {
		return nil, fmt.Errorf("open pr in %s: %w", repo, err)
	}
	c.logger.Info("Pull request created", "repo", repo, "number", pr.Number, "url", pr.HTMLURL)
	return &pr, nil
}

func (c *Client) branchSHA(ctx context.Context, repo, branch string) (string, error) {
	var out struct {
		Object struct {
			SHA string `json:"sha"`
		} `json:"object"`
	}
	endpoint := fmt.Sprintf("/repos/%s/git/ref/heads/%s", repo, branch)
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return "", fmt.Errorf("resolve branch %s: %w", branch, err)
	}
	return out.Object.SHA, nil
}

func (c *Client) createBranch(ctx context.Context, repo, branch, sha string) error {
	body := map[string]interface{}{
		"ref": "refs/heads/" + branch,
		"sha": sha,
	}
	err := c.doJSON(ctx, http.MethodPost, "/repos/"+repo+"/git/refs", body, nil)
	if err != nil {
		var se *statusError
		// 422 means the branch already exists; reuse it.
		if asStatusError(err, &se) && se.code == http.StatusUnprocessableEntity {
			return nil
		}
		return fmt.Errorf("create branch %s: %w", branch, err)
	}
	return nil
}

// GetPRDetails fetches one pull request.
func (c *Client) GetPRDetails(ctx context.Context, repo string, number int) (*PullRequest, error) {
	var pr PullRequest
	endpoint := fmt.Sprintf("/repos/%s/pulls/%d", repo, number)
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &pr); err != nil {
		return nil, fmt.Errorf("get pr %d in %s: %w", number, repo, err)
	}
	return &pr, nil
}

// CommentOnPR posts an issue comment on a pull request.
func (c *Client) CommentOnPR(ctx context.Context, repo string, number int, comment string) error {
	endpoint := fmt.Sprintf("/repos/%s/issues/%d/comments", repo, number)
	body := map[string]interface{}{"body": comment}
	if err := c.doJSON(ctx, http.MethodPost, endpoint, body, nil); err != nil {
		return fmt.Errorf("comment on pr %d in %s: %w", number, repo, err)
	}
	return nil
}

// RequestPRChanges submits a REQUEST_CHANGES review.
func (c *Client) RequestPRChanges(ctx context.Context, repo string, number int, comment string) error {
	return c.review(ctx, repo, number, "REQUEST_CHANGES", comment)
}

// ApprovePR submits an APPROVE review.
func (c *Client) ApprovePR(ctx context.Context, repo string, number int, comment string) error {
	return c.review(ctx, repo, number, "APPROVE", comment)
}

func (c *Client) review(ctx context.Context, repo string, number int, event, comment string) error {
	endpoint := fmt.Sprintf("/repos/%s/pulls/%d/reviews", repo, number)
	body := map[string]interface{}{"event": event}
	if comment != "" {
		body["body"] = comment
	}
	if err := c.doJSON(ctx, http.MethodPost, endpoint, body, nil); err != nil {
		return fmt.Errorf("submit %s review on pr %d in %s: %w", event, number, repo, err)
	}
	return nil
}

// ListPRsByAuthor returns open PRs authored by login.
func (c *Client) ListPRsByAuthor(ctx context.Context, repo, login string) ([]PullRequest, error) {
	endpoint := fmt.Sprintf("/repos/%s/pulls?state=open&per_page=50", repo)
	var prs []PullRequest
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &prs); err != nil {
		return nil, fmt.Errorf("list prs in %s: %w", repo, err)
	}
	var out []PullRequest
	for _, pr := range prs {
		if strings.EqualFold(pr.User.Login, login) {
			out = append(out, pr)
		}
	}
	return out, nil
}

// statusError carries a non-2xx HTTP status.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GitHub API returned HTTP %d: %s", e.code, e.body)
}

func asStatusError(err error, target **statusError) bool {
	return errors.As(err, target)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(data))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, endpoint, err)
	}
	return nil
}

func pathDepth(p string) int {
	return strings.Count(p, "/") + 1
}

func hasSkippedDir(p string) bool {
	for _, segment := range strings.Split(p, "/") {
		if _, skip := skipDirs[segment]; skip {
			return true
		}
	}
	return false
}
