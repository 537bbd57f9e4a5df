package linear

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sourabhkumawat/healops/ent"
	"github.com/stretchr/testify/assert"
)

func testIncident(metadata map[string]interface{}) *ent.Incident {
	return &ent.Incident{
		ID:          "inc-1",
		Title:       "NullPointerException in svc-a",
		Description: "Detected error in svc-a",
		Severity:    "high",
		Status:      "open",
		ServiceName: "svc-a",
		Source:      "app",
		UserID:      "7",
		LogIds:      []string{"l1", "l2"},
		Metadata:    metadata,
		FirstSeenAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		LastSeenAt:  time.Date(2026, 8, 1, 10, 2, 0, 0, time.UTC),
		RootCause:   "missing null check in user lookup",
		RepoName:    "acme/api",
	}
}

func TestEnhancedDescription_Sections(t *testing.T) {
	md := EnhancedDescription(testIncident(map[string]interface{}{
		"traceId": "trace-1",
		"spanId":  "span-1",
	}), nil)

	assert.Contains(t, md, "## Incident Details")
	assert.Contains(t, md, "| Service | svc-a |")
	assert.Contains(t, md, "## Description")
	assert.Contains(t, md, "## Root Cause")
	assert.Contains(t, md, "missing null check")
	assert.Contains(t, md, "## Trace Information")
	assert.Contains(t, md, "`trace-1`")
	assert.Contains(t, md, "## Repository")
	assert.Contains(t, md, "`acme/api`")
}

func TestEnhancedDescription_SpanTableCapped(t *testing.T) {
	spans := make([]interface{}, 0, 25)
	for i := 0; i < 25; i++ {
		spans = append(spans, map[string]interface{}{
			"spanId": fmt.Sprintf("s%d", i),
			"name":   fmt.Sprintf("op-%d", i),
		})
	}
	md := EnhancedDescription(testIncident(map[string]interface{}{"spans": spans}), nil)

	assert.Contains(t, md, "## Spans")
	assert.Contains(t, md, "5 more spans omitted")
	assert.Equal(t, maxSpanRows, strings.Count(md, "| op-"))
}

func TestEnhancedDescription_ExecutionFlowCycleSafe(t *testing.T) {
	// a → b → a is a cycle; rendering must terminate.
	md := EnhancedDescription(testIncident(map[string]interface{}{
		"spans": []interface{}{
			map[string]interface{}{"spanId": "a", "parentSpanId": "b", "name": "op-a"},
			map[string]interface{}{"spanId": "b", "parentSpanId": "a", "name": "op-b"},
		},
	}), nil)

	assert.Contains(t, md, "## Execution Flow")
	assert.Equal(t, 1, strings.Count(md, "op-a ("))
	assert.Equal(t, 1, strings.Count(md, "op-b ("))
}

func TestEnhancedDescription_StackTracesFilterNodeModules(t *testing.T) {
	md := EnhancedDescription(testIncident(map[string]interface{}{
		"stackTrace": []interface{}{
			"at handler (src/api/users.ts:42)",
			"at run (node_modules/express/lib/router.js:10)",
		},
	}), nil)

	assert.Contains(t, md, "## Stack Traces")
	assert.Contains(t, md, "src/api/users.ts:42")
	assert.NotContains(t, md, "node_modules/express")
}

func TestEnhancedDescription_LongTraceTruncated(t *testing.T) {
	frames := make([]interface{}, 0, 100)
	for i := 0; i < 100; i++ {
		frames = append(frames, fmt.Sprintf("at frame%d (src/deep/call/stack/file%d.ts:%d)", i, i, i))
	}
	md := EnhancedDescription(testIncident(map[string]interface{}{"stackTrace": frames}), nil)
	assert.Contains(t, md, "... (truncated)")
}

func TestEnhancedDescription_RelatedLogs(t *testing.T) {
	logs := []*ent.LogEntry{
		{ID: "l1", Message: "boom", Severity: "error", Timestamp: time.Now()},
		{ID: "l2", Message: strings.Repeat("x", 300), Severity: "critical", Timestamp: time.Now()},
	}
	md := EnhancedDescription(testIncident(nil), logs)

	assert.Contains(t, md, "## Related Logs Summary")
	assert.Contains(t, md, "boom")
	assert.Contains(t, md, "...")
}
