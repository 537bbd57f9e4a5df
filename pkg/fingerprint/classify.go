package fingerprint

import "strings"

// Error-type buckets used by the memory layer to index learning patterns.
const (
	ErrorTypeNullDeref  = "null_dereference"
	ErrorTypeTimeout    = "timeout"
	ErrorTypeConnection = "connection"
	ErrorTypeAuth       = "authentication"
	ErrorTypeValidation = "validation"
	ErrorTypeResource   = "resource"
	ErrorTypeUnknown    = "unknown"
)

// classifierRules maps root-cause keywords to error-type buckets, checked in
// order. The first bucket with a matching keyword wins.
var classifierRules = []struct {
	errorType string
	keywords  []string
}{
	{ErrorTypeNullDeref, []string{"nullpointer", "null pointer", "nil pointer", "undefined is not", "cannot read propert", "nonetype"}},
	{ErrorTypeTimeout, []string{"timeout", "timed out", "deadline exceeded", "context canceled"}},
	{ErrorTypeConnection, []string{"connection refused", "connection reset", "econnrefused", "socket hang up", "broken pipe", "dns", "unreachable"}},
	{ErrorTypeAuth, []string{"unauthorized", "forbidden", "401", "403", "token expired", "invalid credentials", "authentication"}},
	{ErrorTypeValidation, []string{"validation", "invalid input", "schema", "parse error", "unexpected token", "malformed"}},
	{ErrorTypeResource, []string{"out of memory", "oom", "disk full", "no space left", "too many open files", "resource exhausted", "quota"}},
}

// ClassifyErrorType buckets a root-cause analysis into a coarse error type.
// The fingerprint is included so callers can fall back to it when the root
// cause is empty; classification itself is keyword-driven.
func ClassifyErrorType(fp, rootCause string) string {
	text := strings.ToLower(rootCause)
	if text == "" {
		text = strings.ToLower(fp)
	}
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.errorType
			}
		}
	}
	return ErrorTypeUnknown
}
