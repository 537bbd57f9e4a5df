// Package sandbox executes the structured tool-call batches the agent's LLM
// emits. A batch is a JSON object validated against a compiled schema, then
// its calls run sequentially against the run's workspace and repo adapter
// under a wall-clock budget. The sandbox never touches the remote repo;
// write_file and apply_incremental_edit update the workspace only.
package sandbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/sourabhkumawat/healops/pkg/agent/planner"
	"github.com/sourabhkumawat/healops/pkg/agent/workspace"
	"github.com/sourabhkumawat/healops/pkg/github"
	"github.com/sourabhkumawat/healops/pkg/memory"
)

// DefaultTimeout is the wall-clock budget for one batch.
const DefaultTimeout = 30 * time.Second

// maxToolCalls bounds one batch; mirrored in the schema.
const maxToolCalls = 20

// maxWriteBytes bounds one file write.
const maxWriteBytes = 1 << 20

// Error types reported in tool results.
const (
	ErrorTypeTimeout   = "timeout"
	ErrorTypeExecution = "execution_error"
	ErrorTypeSyntax    = "syntax_error"
	ErrorTypeFormat    = "format"
)

// batchSchema is the JSON Schema every tool-call batch must satisfy.
const batchSchema = `{
  "type": "object",
  "required": ["tool_calls"],
  "properties": {
    "tool_calls": {
      "type": "array",
      "minItems": 1,
      "maxItems": 20,
      "items": {
        "type": "object",
        "required": ["tool"],
        "properties": {
          "tool": {
            "enum": [
              "read_file", "write_file", "apply_incremental_edit",
              "validate_code", "find_symbol_definition", "update_todo",
              "retrieve_memory", "list_files"
            ]
          },
          "args": {"type": "object"}
        }
      }
    }
  }
}`

// ToolCall is one invocation in a batch.
type ToolCall struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args"`
}

// Batch is a validated set of tool calls.
type Batch struct {
	ToolCalls []ToolCall `json:"tool_calls"`
}

// Result is the outcome of one tool call.
type Result struct {
	Tool         string            `json:"tool"`
	Success      bool              `json:"success"`
	Output       map[string]any    `json:"output,omitempty"`
	Error        string            `json:"error,omitempty"`
	ErrorType    string            `json:"error_type,omitempty"`
	ErrorHints   []string          `json:"error_hints,omitempty"`
	FilesWritten map[string]string `json:"files_written,omitempty"`
}

// BatchResult aggregates one batch execution.
type BatchResult struct {
	Success      bool              `json:"success"`
	Results      []Result          `json:"results"`
	FilesWritten map[string]string `json:"files_written,omitempty"`
	Error        string            `json:"error,omitempty"`
	ErrorType    string            `json:"error_type,omitempty"`
}

// RepoReader is the subset of the repo adapter the sandbox reads through.
type RepoReader interface {
	GetFileContents(ctx context.Context, repo, path, ref string) (string, error)
	GetRepoStructure(ctx context.Context, repo, path, ref string, maxDepth int) ([]string, error)
	SearchCode(ctx context.Context, repo, query string, limit int) ([]github.SearchResult, error)
}

// MemoryReader is the subset of the memory store the retrieve_memory tool
// uses.
type MemoryReader interface {
	RetrieveContext(ctx context.Context, fingerprint string) memory.Context
}

// Sandbox executes batches for one agent run. Single-threaded: the owning
// loop invokes Execute sequentially.
type Sandbox struct {
	ws          *workspace.Workspace
	repo        RepoReader
	mem         MemoryReader
	repoName    string
	ref         string
	fingerprint string
	timeout     time.Duration
	schema      *jsonschema.Schema
	logger      *slog.Logger
}

// Options configures a Sandbox. Repo and Mem may be nil; the corresponding
// tools then report execution errors instead of failing construction.
type Options struct {
	Workspace   *workspace.Workspace
	Repo        RepoReader
	Mem         MemoryReader
	RepoName    string
	Ref         string
	Fingerprint string
	Timeout     time.Duration
}

// New creates a sandbox bound to one run's workspace.
func New(opts Options) (*Sandbox, error) {
	if opts.Workspace == nil {
		panic("sandbox requires a workspace")
	}
	schema, err := compileBatchSchema()
	if err != nil {
		return nil, fmt.Errorf("compile tool-call schema: %w", err)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Sandbox{
		ws:          opts.Workspace,
		repo:        opts.Repo,
		mem:         opts.Mem,
		repoName:    opts.RepoName,
		ref:         opts.Ref,
		fingerprint: opts.Fingerprint,
		timeout:     timeout,
		schema:      schema,
		logger:      slog.Default().With("component", "sandbox"),
	}, nil
}

func compileBatchSchema() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal([]byte(batchSchema), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("batch.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile("batch.json")
}

// ParseBatch extracts and validates a tool-call batch from LLM output.
// Accepts a raw JSON object or one inside a fenced code block, repairing
// invalid escape sequences on a second attempt.
func (s *Sandbox) ParseBatch(text string) (*Batch, error) {
	candidate := extractJSONObject(text)
	if candidate == "" {
		return nil, fmt.Errorf("no JSON object found in tool-call output")
	}

	var doc any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		repaired := planner.RepairInvalidEscapes(candidate)
		if err2 := json.Unmarshal([]byte(repaired), &doc); err2 != nil {
			return nil, fmt.Errorf("parse tool-call JSON: %w", err)
		}
		candidate = repaired
	}
	if err := s.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("tool-call batch failed schema validation: %w", err)
	}

	var batch Batch
	if err := json.Unmarshal([]byte(candidate), &batch); err != nil {
		return nil, fmt.Errorf("decode tool-call batch: %w", err)
	}
	return &batch, nil
}

// Execute runs the batch's calls in order under the wall-clock budget.
// Execution stops at the first timeout; earlier results are kept.
func (s *Sandbox) Execute(ctx context.Context, batch *Batch) *BatchResult {
	if len(batch.ToolCalls) > maxToolCalls {
		return &BatchResult{
			Error:     fmt.Sprintf("batch has %d tool calls, limit is %d", len(batch.ToolCalls), maxToolCalls),
			ErrorType: ErrorTypeFormat,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out := &BatchResult{
		Success:      true,
		FilesWritten: make(map[string]string),
	}
	for _, call := range batch.ToolCalls {
		if ctx.Err() != nil {
			out.Success = false
			out.Error = "tool-call batch exceeded execution budget"
			out.ErrorType = ErrorTypeTimeout
			out.Results = append(out.Results, Result{
				Tool:      call.Tool,
				Error:     out.Error,
				ErrorType: ErrorTypeTimeout,
			})
			break
		}

		res := s.run(ctx, call)
		out.Results = append(out.Results, res)
		for path, content := range res.FilesWritten {
			out.FilesWritten[path] = content
			s.ws.ApplyFilesWritten(map[string]string{path: content})
		}
		if !res.Success {
			out.Success = false
			if out.Error == "" {
				out.Error = res.Error
				out.ErrorType = res.ErrorType
			}
			if res.ErrorType == ErrorTypeTimeout {
				out.ErrorType = ErrorTypeTimeout
				break
			}
		}
	}
	return out
}

func (s *Sandbox) run(ctx context.Context, call ToolCall) Result {
	var res Result
	switch call.Tool {
	case "read_file":
		res = s.readFile(ctx, call.Args)
	case "write_file":
		res = s.writeFile(call.Args)
	case "apply_incremental_edit":
		res = s.applyIncrementalEdit(ctx, call.Args)
	case "validate_code":
		res = s.validateCode(call.Args)
	case "find_symbol_definition":
		res = s.findSymbolDefinition(ctx, call.Args)
	case "update_todo":
		res = s.updateTodo(call.Args)
	case "retrieve_memory":
		res = s.retrieveMemory(ctx)
	case "list_files":
		res = s.listFiles(ctx, call.Args)
	default:
		res = failure(fmt.Sprintf("unknown tool %q", call.Tool), ErrorTypeFormat)
	}
	res.Tool = call.Tool
	if ctx.Err() == context.DeadlineExceeded && !res.Success {
		res.ErrorType = ErrorTypeTimeout
	}
	return res
}

func failure(msg, errorType string, hints ...string) Result {
	return Result{Error: msg, ErrorType: errorType, ErrorHints: hints}
}

// extractJSONObject returns the best JSON-object candidate from the text:
// a fenced code block when present, otherwise the outermost {...} slice.
func extractJSONObject(text string) string {
	text = strings.TrimSpace(text)
	if start := strings.Index(text, "```"); start >= 0 {
		rest := text[start+3:]
		if nl := strings.Index(rest, "\n"); nl >= 0 {
			rest = rest[nl+1:]
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			text = strings.TrimSpace(rest[:end])
		} else {
			text = strings.TrimSpace(rest)
		}
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
