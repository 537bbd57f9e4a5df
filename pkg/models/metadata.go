package models

// Metadata is the free-form key/value tree carried by log entries and
// incidents. Well-known keys are accessed through the helpers below; anything
// else passes through opaquely.
type Metadata map[string]any

// Well-known metadata keys.
const (
	MetaTraceID    = "traceId"
	MetaSpanID     = "spanId"
	MetaParentSpan = "parentSpanId"
	MetaDuration   = "duration"
	MetaStatusCode = "statusCode"
	MetaCodePaths  = "codePaths"
	MetaStackTrace = "stackTrace"
	MetaSpans      = "spans"
	MetaTicketID   = "linearTicketId"
	MetaTicketURL  = "linearTicketUrl"
)

// Span is one entry of the span list carried in metadata, used by the
// enhanced ticket description to render the execution flow tree.
type Span struct {
	SpanID       string  `json:"spanId"`
	ParentSpanID string  `json:"parentSpanId,omitempty"`
	Name         string  `json:"name"`
	Service      string  `json:"service,omitempty"`
	DurationMS   float64 `json:"duration,omitempty"`
	StatusCode   int     `json:"statusCode,omitempty"`
}

// StackFrame is one frame of a structured stack trace in metadata.
type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Function string `json:"function,omitempty"`
	Raw      string `json:"raw,omitempty"`
}

// String returns the string value for key, or "" when absent or non-string.
func (m Metadata) String(key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// Merge returns a copy of m with all keys of other applied on top. Values
// from other overwrite on key collision; neither input is mutated.
func (m Metadata) Merge(other Metadata) Metadata {
	merged := make(Metadata, len(m)+len(other))
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// StackFrames decodes the structured stack trace from metadata. Entries may
// be maps (decoded JSON) or plain strings; both are accepted.
func (m Metadata) StackFrames() []StackFrame {
	raw, ok := m[MetaStackTrace]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	frames := make([]StackFrame, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			frames = append(frames, StackFrame{Raw: v})
		case map[string]any:
			f := StackFrame{Raw: asString(v["raw"])}
			f.File = asString(v["file"])
			f.Function = asString(v["function"])
			if line, ok := v["line"].(float64); ok {
				f.Line = int(line)
			}
			frames = append(frames, f)
		}
	}
	return frames
}

// Spans decodes the span list from metadata.
func (m Metadata) Spans() []Span {
	raw, ok := m[MetaSpans]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	spans := make([]Span, 0, len(items))
	for _, item := range items {
		v, ok := item.(map[string]any)
		if !ok {
			continue
		}
		s := Span{
			SpanID:       asString(v["spanId"]),
			ParentSpanID: asString(v["parentSpanId"]),
			Name:         asString(v["name"]),
			Service:      asString(v["service"]),
		}
		if d, ok := v["duration"].(float64); ok {
			s.DurationMS = d
		}
		if c, ok := v["statusCode"].(float64); ok {
			s.StatusCode = int(c)
		}
		spans = append(spans, s)
	}
	return spans
}

// CodePaths returns the code path hints carried in metadata.
func (m Metadata) CodePaths() []string {
	raw, ok := m[MetaCodePaths]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	paths := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			paths = append(paths, s)
		}
	}
	return paths
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
