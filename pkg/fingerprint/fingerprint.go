// Package fingerprint derives stable incident signatures from incident
// headers and their first log messages. Volatile fragments (timestamps,
// addresses, UUIDs) are replaced with stable tokens before hashing so that
// recurring errors map to the same 16-hex fingerprint across occurrences.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

const (
	// maxMessageLen is the per-message truncation applied before joining.
	maxMessageLen = 200

	// maxLogs is how many leading log messages participate in the signature.
	maxLogs = 3
)

// normalizer rewrites one volatile fragment class to a stable token.
type normalizer struct {
	re    *regexp.Regexp
	token string
}

var normalizers = []normalizer{
	// ISO-8601 timestamps, with optional fractional seconds and zone.
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`), "[TIMESTAMP]"},
	// UUIDs before IPv4: a UUID's byte groups must not be half-eaten as numbers.
	{regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`), "[UUID]"},
	{regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), "[IP]"},
}

// Header is the subset of an incident the fingerprint depends on.
type Header struct {
	IncidentID  string
	ServiceName string
	Source      string
	Severity    string
}

// Normalize replaces timestamps, IPv4 addresses, and UUIDs in msg with
// stable tokens and truncates the result to 200 characters.
func Normalize(msg string) string {
	for _, n := range normalizers {
		msg = n.re.ReplaceAllString(msg, n.token)
	}
	msg = strings.TrimSpace(msg)
	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen]
	}
	return msg
}

// Compute derives the incident fingerprint: first 16 hex chars of SHA-256
// over service|source|severity|normalized(msg1)|normalized(msg2)|normalized(msg3).
// Only the first three log messages participate. Compute never fails: any
// panic in normalization degrades to a hash of the incident id.
func Compute(h Header, messages []string) (fp string) {
	defer func() {
		if r := recover(); r != nil {
			fp = hashPrefix(h.IncidentID)
		}
	}()

	parts := []string{h.ServiceName, h.Source, h.Severity}
	for i, msg := range messages {
		if i >= maxLogs {
			break
		}
		parts = append(parts, Normalize(msg))
	}
	return hashPrefix(strings.Join(parts, "|"))
}

func hashPrefix(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:16]
}
