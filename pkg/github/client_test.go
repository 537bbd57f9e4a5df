package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithBaseURL("test-token", srv.URL, 5*time.Second)
}

func TestGetFileContents_Base64(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/api/contents/src/app.ts", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"content":  base64.StdEncoding.EncodeToString([]byte("const x = 1\n")),
			"encoding": "base64",
		})
	}))

	got, err := c.GetFileContents(context.Background(), "acme/api", "src/app.ts", "")
	require.NoError(t, err)
	assert.Equal(t, "const x = 1\n", got)
}

func TestGetFileContents_NotFoundIsNotError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	got, err := c.GetFileContents(context.Background(), "acme/api", "missing.ts", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetRepoStructure_TreeFastPath(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/repos/acme/api/git/trees/main", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"truncated": false,
			"tree": []map[string]string{
				{"path": "src/app.ts", "type": "blob"},
				{"path": "src", "type": "tree"},
				{"path": "node_modules/lodash/index.js", "type": "blob"},
				{"path": "dist/bundle.js", "type": "blob"},
				{"path": "a/b/c/d/e/deep.ts", "type": "blob"},
			},
		})
	}))

	paths, err := c.GetRepoStructure(context.Background(), "acme/api", "", "main", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.ts"}, paths)

	// Second call is served from the cache.
	_, err = c.GetRepoStructure(context.Background(), "acme/api", "", "main", 4)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetRepoStructure_TruncatedFallsBackToTraversal(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/acme/api/git/trees/main":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"truncated": true})
		case "/repos/acme/api/contents/":
			_ = json.NewEncoder(w).Encode([]map[string]string{
				{"path": "README.md", "name": "README.md", "type": "file"},
				{"path": "src", "name": "src", "type": "dir"},
				{"path": "node_modules", "name": "node_modules", "type": "dir"},
			})
		case "/repos/acme/api/contents/src":
			_ = json.NewEncoder(w).Encode([]map[string]string{
				{"path": "src/app.ts", "name": "app.ts", "type": "file"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	paths, err := c.GetRepoStructure(context.Background(), "acme/api", "", "main", 4)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"README.md", "src/app.ts"}, paths)
}

func TestCreatePR(t *testing.T) {
	var sawBranchCreate, sawFilePut, sawPROpen bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/repos/acme/api/git/ref/heads/main":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"object": map[string]string{"sha": "abc123"},
			})
		case r.URL.Path == "/repos/acme/api/git/refs" && r.Method == http.MethodPost:
			sawBranchCreate = true
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "refs/heads/healops/fix-inc-1", body["ref"])
			assert.Equal(t, "abc123", body["sha"])
			w.WriteHeader(http.StatusCreated)
		case r.URL.Path == "/repos/acme/api/contents/src/app.ts" && r.Method == http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/repos/acme/api/contents/src/app.ts" && r.Method == http.MethodPut:
			sawFilePut = true
			w.WriteHeader(http.StatusCreated)
		case r.URL.Path == "/repos/acme/api/pulls" && r.Method == http.MethodPost:
			sawPROpen = true
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"number":   42,
				"html_url": "https://github.com/acme/api/pull/42",
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	pr, err := c.CreatePR(context.Background(), "acme/api",
		"Fix null dereference", "Automated fix", "healops/fix-inc-1", "main",
		[]FileChange{{Path: "src/app.ts", Content: "fixed"}}, false)
	require.NoError(t, err)
	assert.Equal(t, 42, pr.Number)
	assert.Equal(t, "https://github.com/acme/api/pull/42", pr.HTMLURL)
	assert.True(t, sawBranchCreate)
	assert.True(t, sawFilePut)
	assert.True(t, sawPROpen)
}

func TestCreatePR_NoChanges(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}))
	_, err := c.CreatePR(context.Background(), "acme/api", "t", "b", "h", "main", nil, false)
	assert.Error(t, err)
}

func TestListPRsByAuthor(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"number": 1, "user": map[string]string{"login": "healops-bot"}},
			{"number": 2, "user": map[string]string{"login": "human"}},
			{"number": 3, "user": map[string]string{"login": "HealOps-Bot"}},
		})
	}))

	prs, err := c.ListPRsByAuthor(context.Background(), "acme/api", "healops-bot")
	require.NoError(t, err)
	require.Len(t, prs, 2)
	assert.Equal(t, 1, prs[0].Number)
	assert.Equal(t, 3, prs[1].Number)
}

func TestStructureCacheExpiry(t *testing.T) {
	cache := newStructureCache(time.Millisecond)
	cache.Set("k", []string{"a"})
	got, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, got)

	time.Sleep(5 * time.Millisecond)
	_, ok = cache.Get("k")
	assert.False(t, ok)
}
