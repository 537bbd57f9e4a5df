package linear

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLinearClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithHTTP(srv.Client(), srv.URL)
}

func TestCreateIssue(t *testing.T) {
	c := newTestLinearClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		input := req.Variables["input"].(map[string]interface{})
		assert.Equal(t, "team-1", input["teamId"])
		assert.Equal(t, float64(2), input["priority"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"issueCreate": map[string]interface{}{
					"success": true,
					"issue": map[string]interface{}{
						"id":         "issue-1",
						"identifier": "OPS-42",
						"url":        "https://linear.app/acme/issue/OPS-42",
					},
				},
			},
		})
	})

	issue, err := c.CreateIssue(context.Background(), "team-1", "Fix svc-a", "details", 2)
	require.NoError(t, err)
	assert.Equal(t, "OPS-42", issue.Identifier)
}

func TestCreateIssue_GraphQLError(t *testing.T) {
	c := newTestLinearClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{{"message": "team not found"}},
		})
	})

	_, err := c.CreateIssue(context.Background(), "bad", "t", "d", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "team not found")
}

func TestGetOpenResolvableIssues_Filters(t *testing.T) {
	c := newTestLinearClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"issues": map[string]interface{}{
					"nodes": []map[string]interface{}{
						{
							"id": "i1", "identifier": "OPS-1", "priority": 2,
							"assignee": map[string]string{"displayName": "Jordan"},
							"labels":   map[string]interface{}{"nodes": []map[string]string{}},
						},
						{
							"id": "i2", "identifier": "OPS-2", "priority": 2,
							"assignee": map[string]string{"displayName": "HealOps Bot"},
							"labels":   map[string]interface{}{"nodes": []map[string]string{}},
						},
						{
							"id": "i3", "identifier": "OPS-3", "priority": 2,
							"assignee": map[string]string{},
							"labels": map[string]interface{}{"nodes": []map[string]string{
								{"name": "wontfix"},
							}},
						},
						{
							"id": "i4", "identifier": "OPS-4", "priority": 4,
							"assignee": map[string]string{},
							"labels":   map[string]interface{}{"nodes": []map[string]string{}},
						},
					},
				},
			},
		})
	})

	issues, err := c.GetOpenResolvableIssues(context.Background(), []string{"team-1"}, []string{"WontFix"}, 3)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "OPS-1", issues[0].Identifier)
}

func TestPriorityForSeverity(t *testing.T) {
	assert.Equal(t, 1, PriorityForSeverity("critical"))
	assert.Equal(t, 2, PriorityForSeverity("high"))
	assert.Equal(t, 3, PriorityForSeverity("medium"))
	assert.Equal(t, 4, PriorityForSeverity("low"))
	assert.Equal(t, 4, PriorityForSeverity(""))
}

func TestIsBotAssignee(t *testing.T) {
	assert.True(t, isBotAssignee("HealOps Bot"))
	assert.True(t, isBotAssignee("automation-user"))
	assert.False(t, isBotAssignee("Jordan"))
	assert.False(t, isBotAssignee(""))
}
