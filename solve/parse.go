package solve

import (
	"strings"

	"github.com/bytedance/sonic"
)

// ParseResponse turns raw AI output into a Solution. The capability
// enforces no schema, so parsing is defensive: a leading code fence is
// stripped, then strict JSON decoding is attempted. Unparseable output is
// not an error; the fence-stripped text becomes the solution with steps
// synthesized from its lines.
func ParseResponse(raw string) Solution {
	text := strings.TrimSpace(stripCodeFence(raw))

	var sol Solution
	if err := sonic.UnmarshalString(text, &sol); err == nil {
		if sol.Steps == nil {
			sol.Steps = []string{}
		}
		return sol
	}

	return synthesizeFromText(text)
}

// synthesizeFromText builds a Solution out of plain prose: the whole text
// is the solution, and each line becomes a step.
func synthesizeFromText(text string) Solution {
	var steps []string
	if strings.Contains(text, "\n") {
		steps = strings.Split(text, "\n")
	} else {
		steps = []string{text}
	}
	return Solution{
		SolutionText: text,
		Steps:        steps,
	}
}

// stripCodeFence removes a surrounding triple-backtick fence, with or
// without a json language tag, leaving other text untouched.
func stripCodeFence(s string) string {
	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
		return s
	}
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+len("```"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
		return s
	}
	return s
}
