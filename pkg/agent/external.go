package agent

import (
	"github.com/sourabhkumawat/healops/pkg/agent/paths"
	"github.com/sourabhkumawat/healops/pkg/models"
)

// IsExternalCodeError reports whether a stack trace originates entirely in
// dependency or runtime-internal code. An empty trace is not external: with
// no frames to judge, the run proceeds.
func IsExternalCodeError(frames []models.StackFrame) bool {
	judged := 0
	for _, f := range frames {
		p := framePath(f)
		if p == "" {
			continue
		}
		judged++
		if !paths.IsDependencyPath(p) {
			return false
		}
	}
	return judged > 0
}

// ExternalFramePaths returns the dependency-code paths of a trace, for the
// skip explanation document.
func ExternalFramePaths(frames []models.StackFrame) []string {
	var out []string
	for _, f := range frames {
		if p := framePath(f); p != "" && paths.IsDependencyPath(p) {
			out = append(out, p)
		}
	}
	return out
}

func framePath(f models.StackFrame) string {
	if f.File != "" {
		return f.File
	}
	return f.Raw
}
