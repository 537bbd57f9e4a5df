package sandbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourabhkumawat/healops/pkg/agent/paths"
	"github.com/sourabhkumawat/healops/pkg/agent/planner"
)

// maxListFiles bounds list_files output.
const maxListFiles = 500

// maxSearchMatches bounds find_symbol_definition output.
const maxSearchMatches = 5

func (s *Sandbox) readFile(ctx context.Context, args map[string]any) Result {
	path, res := s.requirePath(args)
	if res != nil {
		return *res
	}
	content, err := s.fetchFile(ctx, path)
	if err != nil {
		return failure(err.Error(), ErrorTypeExecution)
	}
	s.ws.MarkFileRead(path)
	return Result{Success: true, Output: map[string]any{"path": path, "content": content}}
}

func (s *Sandbox) writeFile(args map[string]any) Result {
	path, res := s.requirePath(args)
	if res != nil {
		return *res
	}
	content, ok := stringArg(args, "content")
	if !ok {
		return failure("write_file requires a string \"content\" argument", ErrorTypeFormat)
	}
	if len(content) > maxWriteBytes {
		return failure(fmt.Sprintf("write of %d bytes exceeds the %d byte limit", len(content), maxWriteBytes), ErrorTypeExecution)
	}
	return Result{
		Success:      true,
		Output:       map[string]any{"path": path, "bytes": len(content)},
		FilesWritten: map[string]string{path: content},
	}
}

func (s *Sandbox) applyIncrementalEdit(ctx context.Context, args map[string]any) Result {
	path, res := s.requirePath(args)
	if res != nil {
		return *res
	}
	oldText, ok := stringArg(args, "old_text")
	if !ok || oldText == "" {
		return failure("apply_incremental_edit requires a non-empty \"old_text\" argument", ErrorTypeFormat)
	}
	newText, _ := stringArg(args, "new_text")

	content, err := s.fetchFile(ctx, path)
	if err != nil {
		return failure(err.Error(), ErrorTypeExecution)
	}
	if !strings.Contains(content, oldText) {
		return failure(
			fmt.Sprintf("old_text not found in %s", path),
			ErrorTypeExecution,
			"Read the file first and copy old_text exactly, including whitespace.",
		)
	}
	updated := strings.Replace(content, oldText, newText, 1)
	if len(updated) > maxWriteBytes {
		return failure(fmt.Sprintf("edit grows %s past the %d byte limit", path, maxWriteBytes), ErrorTypeExecution)
	}
	return Result{
		Success:      true,
		Output:       map[string]any{"path": path, "replaced": 1},
		FilesWritten: map[string]string{path: updated},
	}
}

// validateCode does a light structural check: balanced brackets outside of
// string and comment context, and no unterminated strings. It is a sanity
// gate, not a compiler.
func (s *Sandbox) validateCode(args map[string]any) Result {
	content, ok := stringArg(args, "content")
	if !ok {
		path, pok := stringArg(args, "path")
		if !pok {
			return failure("validate_code requires \"content\" or \"path\"", ErrorTypeFormat)
		}
		content, ok = s.ws.GetFile(path)
		if !ok {
			return failure(fmt.Sprintf("file not in workspace: %s", path), ErrorTypeExecution)
		}
	}
	if issues := scanStructure(content); len(issues) > 0 {
		return Result{
			Success:    false,
			Output:     map[string]any{"issues": issues},
			Error:      issues[0],
			ErrorType:  ErrorTypeSyntax,
			ErrorHints: []string{"Fix the reported line before writing the file."},
		}
	}
	return Result{Success: true, Output: map[string]any{"valid": true}}
}

func (s *Sandbox) findSymbolDefinition(ctx context.Context, args map[string]any) Result {
	symbol, ok := stringArg(args, "symbol")
	if !ok || symbol == "" {
		return failure("find_symbol_definition requires a \"symbol\" argument", ErrorTypeFormat)
	}

	matches := make([]map[string]any, 0, maxSearchMatches)
	for path, content := range s.ws.CachedFiles() {
		for i, line := range strings.Split(content, "\n") {
			if looksLikeDefinition(line, symbol) {
				matches = append(matches, map[string]any{
					"path": path,
					"line": i + 1,
					"text": strings.TrimSpace(line),
				})
				break
			}
		}
		if len(matches) >= maxSearchMatches {
			break
		}
	}
	if len(matches) == 0 && s.repo != nil {
		results, err := s.repo.SearchCode(ctx, s.repoName, symbol, maxSearchMatches)
		if err != nil {
			return failure(fmt.Sprintf("symbol search failed: %v", err), ErrorTypeExecution)
		}
		for _, r := range results {
			matches = append(matches, map[string]any{"path": r.Path, "repository": r.Repo})
		}
	}
	return Result{Success: true, Output: map[string]any{"symbol": symbol, "matches": matches}}
}

func (s *Sandbox) updateTodo(args map[string]any) Result {
	stepNumber, ok := intArg(args, "step_number")
	if !ok {
		return failure("update_todo requires an integer \"step_number\" argument", ErrorTypeFormat)
	}
	status, _ := stringArg(args, "status")
	status = strings.ToUpper(strings.TrimSpace(status))
	switch status {
	case planner.StatusPending, planner.StatusInProgress, planner.StatusCompleted, planner.StatusFailed, planner.StatusSkipped:
	default:
		return failure(fmt.Sprintf("unknown todo status %q", status), ErrorTypeFormat,
			"Valid statuses: PENDING, IN_PROGRESS, COMPLETED, FAILED, SKIPPED.")
	}
	result, _ := stringArg(args, "result")
	s.ws.UpdateTodoStep(stepNumber, status, result)
	return Result{Success: true, Output: map[string]any{"step_number": stepNumber, "status": status}}
}

func (s *Sandbox) retrieveMemory(ctx context.Context) Result {
	if s.mem == nil {
		return failure("memory store not available in this run", ErrorTypeExecution)
	}
	mctx := s.mem.RetrieveContext(ctx, s.fingerprint)
	fixes := make([]map[string]any, 0, len(mctx.KnownFixes))
	for _, f := range mctx.KnownFixes {
		fixes = append(fixes, map[string]any{"description": f.Description, "patch": f.Patch})
	}
	errors := make([]string, 0, len(mctx.PastErrors))
	for _, e := range mctx.PastErrors {
		errors = append(errors, e.Message)
	}
	return Result{Success: true, Output: map[string]any{
		"known_fixes": fixes,
		"past_errors": errors,
	}}
}

func (s *Sandbox) listFiles(ctx context.Context, args map[string]any) Result {
	if s.repo == nil {
		return failure("repo adapter not available in this run", ErrorTypeExecution)
	}
	path, _ := stringArg(args, "path")
	depth, ok := intArg(args, "max_depth")
	if !ok {
		depth = 3
	}
	files, err := s.repo.GetRepoStructure(ctx, s.repoName, path, s.ref, depth)
	if err != nil {
		return failure(fmt.Sprintf("list files failed: %v", err), ErrorTypeExecution)
	}
	if len(files) > maxListFiles {
		files = files[:maxListFiles]
	}
	return Result{Success: true, Output: map[string]any{"files": files, "count": len(files)}}
}

// fetchFile resolves a file from the workspace first, then the repo adapter,
// caching repo content into the workspace.
func (s *Sandbox) fetchFile(ctx context.Context, path string) (string, error) {
	if content, ok := s.ws.GetFile(path); ok {
		return content, nil
	}
	if s.repo == nil {
		return "", fmt.Errorf("file not in workspace and no repo adapter: %s", path)
	}
	content, err := s.repo.GetFileContents(ctx, s.repoName, path, s.ref)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", path, err)
	}
	if content == "" {
		return "", fmt.Errorf("file not found: %s", path)
	}
	s.ws.SetFile(path, content)
	return content, nil
}

// requirePath extracts and vets the path argument. A non-nil Result is the
// structured rejection to return.
func (s *Sandbox) requirePath(args map[string]any) (string, *Result) {
	path, ok := stringArg(args, "path")
	if !ok || path == "" {
		res := failure("a non-empty \"path\" argument is required", ErrorTypeFormat)
		return "", &res
	}
	if paths.IsSuspicious(path) {
		res := failure(
			fmt.Sprintf("path %q looks absolute or container-prefixed", path),
			ErrorTypeExecution,
			paths.Hints(path)...,
		)
		return "", &res
	}
	return path, nil
}

func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func intArg(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// looksLikeDefinition matches common definition keywords across the
// languages the pipeline sees.
func looksLikeDefinition(line, symbol string) bool {
	trimmed := strings.TrimSpace(line)
	for {
		stripped := false
		for _, mod := range []string{"export ", "default ", "public ", "private ", "static ", "async "} {
			if strings.HasPrefix(trimmed, mod) {
				trimmed = strings.TrimPrefix(trimmed, mod)
				stripped = true
			}
		}
		if !stripped {
			break
		}
	}
	for _, kw := range []string{"func ", "function ", "def ", "class ", "const ", "type ", "interface ", "let ", "var "} {
		if strings.HasPrefix(trimmed, kw) && strings.Contains(trimmed, symbol) {
			return true
		}
	}
	// Method shorthand: "symbol(...) {" or "symbol = (" styles.
	return strings.HasPrefix(trimmed, symbol+"(") || strings.HasPrefix(trimmed, symbol+" = (") || strings.HasPrefix(trimmed, symbol+": ")
}

// scanStructure reports unbalanced brackets and unterminated strings,
// skipping bracket counting inside quotes. Line comments (// and #) are
// ignored.
func scanStructure(content string) []string {
	var issues []string
	var stack []byte
	var stackLines []int

	lines := strings.Split(content, "\n")
	for li, line := range lines {
		var quote byte
		escaped := false
		for i := 0; i < len(line); i++ {
			c := line[i]
			if escaped {
				escaped = false
				continue
			}
			if quote != 0 {
				switch c {
				case '\\':
					escaped = true
				case quote:
					quote = 0
				}
				continue
			}
			switch c {
			case '"', '\'', '`':
				quote = c
			case '/':
				if i+1 < len(line) && line[i+1] == '/' {
					i = len(line)
				}
			case '#':
				i = len(line)
			case '(', '[', '{':
				stack = append(stack, c)
				stackLines = append(stackLines, li+1)
			case ')', ']', '}':
				if len(stack) == 0 || !bracketMatches(stack[len(stack)-1], c) {
					issues = append(issues, fmt.Sprintf("line %d: unexpected %q", li+1, string(c)))
				} else {
					stack = stack[:len(stack)-1]
					stackLines = stackLines[:len(stackLines)-1]
				}
			}
		}
		// Backtick strings span lines in JS/TS; other quotes do not.
		if quote != 0 && quote != '`' {
			issues = append(issues, fmt.Sprintf("line %d: unterminated string", li+1))
		}
	}
	for i := range stack {
		issues = append(issues, fmt.Sprintf("line %d: unclosed %q", stackLines[i], string(stack[i])))
	}
	return issues
}

func bracketMatches(open, closing byte) bool {
	switch open {
	case '(':
		return closing == ')'
	case '[':
		return closing == ']'
	case '{':
		return closing == '}'
	}
	return false
}
