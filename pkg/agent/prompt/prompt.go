// Package prompt builds the LLM prompts used by the planner and the agent
// loop. Builders are pure string assembly; size caps keep prompts bounded.
package prompt

import (
	"fmt"
	"strings"
)

// maxContextChars caps any single context section.
const maxContextChars = 8000

// maxTitleMessageChars caps the log excerpt fed to title generation.
const maxTitleMessageChars = 500

// PlanSystem is the system prompt for plan generation.
const PlanSystem = `You are an incident resolution planner. You produce plans as JSON arrays only.
Each element: {"step_number": <int>, "description": "<what to do>", "files_to_read": ["<path>", ...], "expected_output": "<what success looks like>"}.
files_to_read and expected_output are optional.
Rules:
- Step 1 must read ALL affected files completely.
- Step 2 must trace dependencies of the affected code.
- Step 3 must analyze the root cause in the light of full context.
- Steps 4+ generate and validate fixes.
Respond with the JSON array and nothing else.`

// BuildPlanPrompt assembles the user prompt for initial plan creation.
func BuildPlanPrompt(rootCause string, affectedFiles []string, knowledgeContext string) string {
	var b strings.Builder
	b.WriteString("Create a resolution plan for this incident.\n\n")
	fmt.Fprintf(&b, "Root cause analysis:\n%s\n\n", clip(rootCause, maxContextChars))
	if len(affectedFiles) > 0 {
		fmt.Fprintf(&b, "Affected files:\n- %s\n\n", strings.Join(affectedFiles, "\n- "))
	}
	if knowledgeContext != "" {
		fmt.Fprintf(&b, "Relevant knowledge from past incidents:\n%s\n\n", clip(knowledgeContext, maxContextChars))
	}
	b.WriteString("Return the plan as a JSON array of steps.")
	return b.String()
}

// BuildReplanPrompt assembles the user prompt for replanning.
func BuildReplanPrompt(reason, newContext string, completedSteps []string, knowledgeContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The current plan needs revision. Reason: %s\n\n", reason)
	if len(completedSteps) > 0 {
		b.WriteString("Steps already completed (do NOT repeat these):\n")
		for _, desc := range completedSteps {
			fmt.Fprintf(&b, "- %s\n", desc)
		}
		b.WriteString("\n")
	}
	if newContext != "" {
		fmt.Fprintf(&b, "New context:\n%s\n\n", clip(newContext, maxContextChars))
	}
	if knowledgeContext != "" {
		fmt.Fprintf(&b, "Relevant knowledge:\n%s\n\n", clip(knowledgeContext, maxContextChars))
	}
	b.WriteString("Return the revised plan as a JSON array of steps.")
	return b.String()
}

// ActSystem is the system prompt for single-action tool-call generation.
const ActSystem = `You are an incident resolution agent executing ONE plan step at a time.
You act by emitting a JSON object with a "tool_calls" array. Available tools:
read_file, write_file, apply_incremental_edit, validate_code, find_symbol_definition, update_todo, retrieve_memory, list_files.
Each call: {"tool": "<name>", "args": {...}}.
Use repo-relative paths (e.g. "src/api/users.ts"), never absolute paths.
Respond with the JSON object and nothing else.`

// ActionContext carries everything the act prompt needs for one step.
type ActionContext struct {
	RootCause       string
	StepDescription string
	FileContents    map[string]string
	FilePaths       []string
	KnownFixes      []string
	PastErrors      []string
	Knowledge       []string
	EventSummary    string
	WorkspaceState  string
}

// BuildActPrompt assembles the user prompt for one action. Root cause comes
// first: it is the highest-priority context.
func BuildActPrompt(actx ActionContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Root cause (highest priority context):\n%s\n\n", clip(actx.RootCause, maxContextChars))
	fmt.Fprintf(&b, "Current step: %s\n\n", actx.StepDescription)

	if len(actx.FileContents) > 0 {
		b.WriteString("File contents:\n")
		for path, content := range actx.FileContents {
			fmt.Fprintf(&b, "--- %s ---\n%s\n", path, content)
		}
		b.WriteString("\n")
	}
	if len(actx.FilePaths) > 0 {
		fmt.Fprintf(&b, "Repository files:\n%s\n\n", clip(strings.Join(actx.FilePaths, "\n"), maxContextChars))
	}
	if len(actx.KnownFixes) > 0 {
		fmt.Fprintf(&b, "Known fixes for this error pattern:\n- %s\n\n", strings.Join(actx.KnownFixes, "\n- "))
	}
	if len(actx.PastErrors) > 0 {
		fmt.Fprintf(&b, "Past failed attempts (avoid repeating):\n- %s\n\n", strings.Join(actx.PastErrors, "\n- "))
	}
	if len(actx.Knowledge) > 0 {
		fmt.Fprintf(&b, "Relevant knowledge:\n- %s\n\n", clip(strings.Join(actx.Knowledge, "\n- "), maxContextChars))
	}
	if actx.EventSummary != "" {
		fmt.Fprintf(&b, "Recent events:\n%s\n", actx.EventSummary)
	}
	if actx.WorkspaceState != "" {
		fmt.Fprintf(&b, "Workspace:\n%s\n", actx.WorkspaceState)
	}
	b.WriteString("\nEmit the tool calls for this step now.")
	return b.String()
}

// TitleSystem is the system prompt for incident title generation.
const TitleSystem = `You title production incidents. Reply with exactly two lines:
TITLE: <at most 80 chars, specific, no trailing period>
DESCRIPTION: <one sentence summarizing the failure>`

// BuildTitlePrompt assembles the title-generation prompt from a log.
func BuildTitlePrompt(serviceName, severity, message string) string {
	return fmt.Sprintf("Service: %s\nSeverity: %s\nLog message:\n%s",
		serviceName, severity, clip(message, maxTitleMessageChars))
}

// AnalysisSystem is the system prompt for root cause analysis.
const AnalysisSystem = `You are a senior engineer doing root cause analysis of a production incident.
Be concrete: name the failing code path, the trigger, and the class of defect.
Structure: one paragraph of analysis, then "Likely fix:" with a short direction.`

// BuildAnalysisPrompt assembles the root-cause-analysis prompt.
func BuildAnalysisPrompt(title string, messages []string, stackTraces []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Incident: %s\n\n", title)
	if len(messages) > 0 {
		fmt.Fprintf(&b, "Log messages:\n- %s\n\n", clip(strings.Join(messages, "\n- "), maxContextChars))
	}
	if len(stackTraces) > 0 {
		fmt.Fprintf(&b, "Stack traces:\n%s\n\n", clip(strings.Join(stackTraces, "\n\n"), maxContextChars))
	}
	b.WriteString("Provide the root cause analysis.")
	return b.String()
}

// BuildSkipExplanation renders the human-readable document attached to an
// incident when the external-code guard decides not to auto-resolve it.
func BuildSkipExplanation(serviceName string, framePaths []string) string {
	var b strings.Builder
	b.WriteString("## Why we didn't auto-resolve this incident\n\n")
	fmt.Fprintf(&b, "The error in `%s` originates inside third-party dependency code, not in your application code. ", serviceName)
	b.WriteString("Automated code fixes are only applied to first-party code: patching a dependency inside your repository would be overwritten by the next install and could mask the real problem.\n\n")
	if len(framePaths) > 0 {
		b.WriteString("Frames that triggered this decision:\n\n")
		shown := framePaths
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for _, p := range shown {
			fmt.Fprintf(&b, "- `%s`\n", p)
		}
		b.WriteString("\n")
	}
	b.WriteString("Suggested next steps:\n\n")
	b.WriteString("1. Check whether a newer version of the dependency fixes this error.\n")
	b.WriteString("2. Review how your code calls into the dependency; the trigger may still be a first-party bug that surfaces inside library frames.\n")
	b.WriteString("3. If the dependency is at fault and no fix exists, consider pinning, patching via your package manager's override mechanism, or replacing it.\n")
	return b.String()
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n... (truncated)"
}
