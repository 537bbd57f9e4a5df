package linear

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sourabhkumawat/healops/ent"
	"github.com/sourabhkumawat/healops/pkg/models"
)

// maxSpanRows caps the Spans table.
const maxSpanRows = 20

// maxFlowDepth caps the execution flow tree depth.
const maxFlowDepth = 20

// maxStackTraces caps how many stack traces are rendered.
const maxStackTraces = 5

// maxStackTraceChars caps each rendered stack trace.
const maxStackTraceChars = 1000

// maxRelatedLogs caps the related-logs summary.
const maxRelatedLogs = 10

// EnhancedDescription renders the standard Markdown document attached to an
// incident ticket: details, trace tree, spans, stack traces, and log summary.
func EnhancedDescription(incident *ent.Incident, logs []*ent.LogEntry) string {
	meta := models.Metadata(incident.Metadata)
	var b strings.Builder

	b.WriteString("## Incident Details\n\n")
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Service | %s |\n", incident.ServiceName)
	fmt.Fprintf(&b, "| Source | %s |\n", incident.Source)
	fmt.Fprintf(&b, "| Severity | %s |\n", incident.Severity)
	fmt.Fprintf(&b, "| Status | %s |\n", incident.Status)
	fmt.Fprintf(&b, "| First seen | %s |\n", incident.FirstSeenAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "| Last seen | %s |\n", incident.LastSeenAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "| Log count | %d |\n", len(incident.LogIds))

	if incident.Description != "" {
		b.WriteString("\n## Description\n\n")
		b.WriteString(incident.Description)
		b.WriteString("\n")
	}

	if incident.RootCause != "" {
		b.WriteString("\n## Root Cause\n\n")
		b.WriteString(incident.RootCause)
		b.WriteString("\n")
	}

	if traceID := meta.String(models.MetaTraceID); traceID != "" {
		b.WriteString("\n## Trace Information\n\n")
		fmt.Fprintf(&b, "- Trace ID: `%s`\n", traceID)
		if spanID := meta.String(models.MetaSpanID); spanID != "" {
			fmt.Fprintf(&b, "- Span ID: `%s`\n", spanID)
		}
	}

	if spans := meta.Spans(); len(spans) > 0 {
		writeSpansTable(&b, spans)
		writeExecutionFlow(&b, spans)
	}

	writeStackTraces(&b, incident, logs)
	writeRelatedLogs(&b, logs)
	writeMetadata(&b, meta)

	if incident.ActionTaken != "" {
		b.WriteString("\n## Action Taken\n\n")
		b.WriteString(incident.ActionTaken)
		b.WriteString("\n")
	}

	if incident.RepoName != "" {
		b.WriteString("\n## Repository\n\n")
		fmt.Fprintf(&b, "`%s`\n", incident.RepoName)
	}

	return b.String()
}

func writeSpansTable(b *strings.Builder, spans []models.Span) {
	b.WriteString("\n## Spans\n\n")
	b.WriteString("| Span | Service | Duration (ms) | Status |\n|---|---|---|---|\n")
	shown := spans
	if len(shown) > maxSpanRows {
		shown = shown[:maxSpanRows]
	}
	for _, s := range shown {
		fmt.Fprintf(b, "| %s | %s | %.1f | %d |\n", s.Name, s.Service, s.DurationMS, s.StatusCode)
	}
	if len(spans) > maxSpanRows {
		fmt.Fprintf(b, "\n_%d more spans omitted._\n", len(spans)-maxSpanRows)
	}
}

// writeExecutionFlow renders the span parent/child relationships as an ASCII
// tree. Depth is capped and already-visited spans are never revisited, so a
// cyclic span graph cannot loop.
func writeExecutionFlow(b *strings.Builder, spans []models.Span) {
	children := make(map[string][]models.Span)
	byID := make(map[string]models.Span, len(spans))
	for _, s := range spans {
		byID[s.SpanID] = s
		children[s.ParentSpanID] = append(children[s.ParentSpanID], s)
	}

	var roots []models.Span
	for _, s := range spans {
		if s.ParentSpanID == "" {
			roots = append(roots, s)
			continue
		}
		if _, ok := byID[s.ParentSpanID]; !ok {
			roots = append(roots, s)
		}
	}
	if len(roots) == 0 && len(spans) > 0 {
		// Every span has a parent inside the set: a cycle. Start anywhere.
		roots = spans[:1]
	}
	if len(roots) == 0 {
		return
	}

	b.WriteString("\n## Execution Flow\n\n```\n")
	visited := make(map[string]struct{})
	for _, root := range roots {
		writeFlowNode(b, root, children, visited, 0)
	}
	b.WriteString("```\n")
}

func writeFlowNode(b *strings.Builder, span models.Span, children map[string][]models.Span, visited map[string]struct{}, depth int) {
	if depth > maxFlowDepth {
		return
	}
	if _, seen := visited[span.SpanID]; seen {
		return
	}
	visited[span.SpanID] = struct{}{}

	indent := strings.Repeat("  ", depth)
	marker := ""
	if depth > 0 {
		marker = "└─ "
	}
	label := span.Name
	if span.Service != "" {
		label = span.Service + ": " + label
	}
	fmt.Fprintf(b, "%s%s%s (%.1fms)\n", indent, marker, label, span.DurationMS)
	for _, child := range children[span.SpanID] {
		writeFlowNode(b, child, children, visited, depth+1)
	}
}

func writeStackTraces(b *strings.Builder, incident *ent.Incident, logs []*ent.LogEntry) {
	var traces []string
	appendTrace := func(meta models.Metadata) {
		frames := meta.StackFrames()
		if len(frames) == 0 {
			return
		}
		var lines []string
		for _, f := range frames {
			line := f.Raw
			if line == "" {
				line = fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function)
			}
			if strings.Contains(line, "node_modules") {
				continue
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			return
		}
		trace := strings.Join(lines, "\n")
		if len(trace) > maxStackTraceChars {
			trace = trace[:maxStackTraceChars] + "\n... (truncated)"
		}
		traces = append(traces, trace)
	}

	appendTrace(models.Metadata(incident.Metadata))
	for _, log := range logs {
		if len(traces) >= maxStackTraces {
			break
		}
		appendTrace(models.Metadata(log.Metadata))
	}
	if len(traces) > maxStackTraces {
		traces = traces[:maxStackTraces]
	}
	if len(traces) == 0 {
		return
	}

	b.WriteString("\n## Stack Traces\n")
	for _, trace := range traces {
		b.WriteString("\n```\n")
		b.WriteString(trace)
		b.WriteString("\n```\n")
	}
}

func writeRelatedLogs(b *strings.Builder, logs []*ent.LogEntry) {
	if len(logs) == 0 {
		return
	}
	b.WriteString("\n## Related Logs Summary\n\n")
	shown := logs
	if len(shown) > maxRelatedLogs {
		shown = shown[:maxRelatedLogs]
	}
	for _, log := range shown {
		msg := log.Message
		if len(msg) > 200 {
			msg = msg[:200] + "..."
		}
		fmt.Fprintf(b, "- `%s` [%s] %s\n", log.Timestamp.UTC().Format(time.RFC3339), log.Severity, msg)
	}
	if len(logs) > maxRelatedLogs {
		fmt.Fprintf(b, "\n_%d more logs omitted._\n", len(logs)-maxRelatedLogs)
	}
}

// metadataSkipKeys are rendered in their own sections and excluded from the
// generic metadata dump.
var metadataSkipKeys = map[string]struct{}{
	models.MetaSpans:      {},
	models.MetaStackTrace: {},
}

func writeMetadata(b *strings.Builder, meta models.Metadata) {
	if len(meta) == 0 {
		return
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		if _, skip := metadataSkipKeys[k]; skip {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)

	b.WriteString("\n## Metadata\n\n")
	for _, k := range keys {
		fmt.Fprintf(b, "- **%s**: %v\n", k, meta[k])
	}
}
