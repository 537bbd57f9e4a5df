// Package paths normalizes file paths extracted from stack traces and log
// metadata into repo-relative form, and classifies frames that live in
// dependency code.
package paths

import (
	"sort"
	"strings"
)

// Prefixes stripped during normalization. Bundlers and containers prepend
// these to what is really a repo-relative path.
var stripPrefixes = []string{
	"webpack://",
	"webpack-internal:///",
	"/usr/src/app/",
	"/app/",
	"file://",
}

// Markers whose presence anywhere in a path means dependency or generated
// code rather than first-party source.
var dependencyMarkers = []string{
	"/node_modules/",
	"/.next/",
	"/site-packages/",
	"/dist-packages/",
	"node:internal/",
	"internal/process/",
	"/vendor/",
}

// Roots that anchor a repo-relative path. When one of these appears mid-path
// the leading noise before it is dropped.
var repoRoots = []string{"apps/", "packages/", "src/"}

// Normalize converts one raw frame path into repo-relative form. Returns ""
// when the path is dependency code or unusable.
func Normalize(raw string) string {
	p := strings.TrimSpace(raw)
	if p == "" {
		return ""
	}
	for _, prefix := range stripPrefixes {
		p = strings.TrimPrefix(p, prefix)
	}
	if IsDependencyPath(p) {
		return ""
	}

	// Re-anchor at a known repo root when container paths left noise in
	// front, e.g. "builds/x/src/api/users.ts" → "src/api/users.ts".
	for _, root := range repoRoots {
		if idx := strings.Index(p, "/"+root); idx >= 0 {
			p = p[idx+1:]
			break
		}
	}

	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	if p == "" || strings.HasPrefix(p, "..") {
		return ""
	}
	return p
}

// NormalizeAll normalizes and dedups a set of raw paths, sorted.
func NormalizeAll(raws []string) []string {
	seen := make(map[string]struct{})
	for _, raw := range raws {
		if p := Normalize(raw); p != "" {
			seen[p] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// IsDependencyPath reports whether a path points into third-party or
// generated code.
func IsDependencyPath(p string) bool {
	for _, marker := range dependencyMarkers {
		if strings.Contains(p, marker) {
			return true
		}
	}
	// Markers at the very start have no leading slash.
	return strings.HasPrefix(p, "node_modules/") || strings.HasPrefix(p, ".next/")
}

// IsSuspicious reports whether a path looks absolute or container-prefixed,
// meaning the model ignored the repo-relative convention.
func IsSuspicious(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	for _, prefix := range []string{"app/", "dist/", "build/", "usr/"} {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// Hints suggests repo-relative alternatives for a rejected path.
func Hints(p string) []string {
	hints := []string{"Use repo-relative paths like \"src/api/users.ts\", never absolute paths."}
	if n := Normalize(p); n != "" && n != p && !IsSuspicious(n) {
		hints = append(hints, "Did you mean \""+n+"\"?")
	}
	return hints
}
