package planner

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseSteps extracts a plan from LLM output. Accepted shapes: a raw JSON
// array, a JSON array inside a fenced code block, or either after repairing
// invalid escape sequences. Steps come back PENDING, renumbered 1..n when
// the model's numbering is missing or inconsistent.
func ParseSteps(text string) ([]Step, error) {
	candidate := extractJSONArray(text)
	if candidate == "" {
		return nil, fmt.Errorf("no JSON array found in plan output")
	}

	var raw []struct {
		StepNumber     int      `json:"step_number"`
		Description    string   `json:"description"`
		FilesToRead    []string `json:"files_to_read"`
		ExpectedOutput string   `json:"expected_output"`
	}
	if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
		repaired := RepairInvalidEscapes(candidate)
		if err2 := json.Unmarshal([]byte(repaired), &raw); err2 != nil {
			return nil, fmt.Errorf("parse plan JSON: %w", err)
		}
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("plan output is an empty array")
	}

	steps := make([]Step, 0, len(raw))
	for i, r := range raw {
		desc := strings.TrimSpace(r.Description)
		if desc == "" {
			continue
		}
		num := r.StepNumber
		if num != i+1 {
			num = i + 1
		}
		steps = append(steps, Step{
			StepNumber:     num,
			Description:    desc,
			Status:         StatusPending,
			FilesToRead:    r.FilesToRead,
			ExpectedOutput: strings.TrimSpace(r.ExpectedOutput),
		})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("plan output has no usable steps")
	}
	return steps, nil
}

// extractJSONArray returns the best JSON-array candidate from the text:
// a fenced code block when present, otherwise the outermost [...] slice.
func extractJSONArray(text string) string {
	text = strings.TrimSpace(text)

	if fenced := extractFencedBlock(text); fenced != "" {
		text = fenced
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// extractFencedBlock returns the contents of the first ``` fenced block,
// tolerating a language tag after the opening fence.
func extractFencedBlock(text string) string {
	start := strings.Index(text, "```")
	if start < 0 {
		return ""
	}
	rest := text[start+3:]
	if nl := strings.Index(rest, "\n"); nl >= 0 {
		// Skip a language tag like "json" on the fence line.
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// validJSONEscapes are the characters allowed after a backslash in JSON.
const validJSONEscapes = `"\/bfnrtu`

// RepairInvalidEscapes doubles any backslash inside a JSON string that is
// not followed by a recognized escape character, turning sequences like \d
// (common in LLM-emitted regexes) into valid JSON.
func RepairInvalidEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case !inString:
			if c == '"' {
				inString = true
			}
			b.WriteByte(c)
		case c == '\\':
			if i+1 < len(s) && strings.IndexByte(validJSONEscapes, s[i+1]) >= 0 {
				b.WriteByte(c)
				b.WriteByte(s[i+1])
				i++
			} else {
				b.WriteString(`\\`)
			}
		case c == '"':
			inString = false
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
