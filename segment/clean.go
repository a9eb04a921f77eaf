package segment

import (
	"regexp"
	"strconv"
	"strings"
)

// minBodyLength is the validity floor for a cleaned question body.
const minBodyLength = 10

var (
	marksCaptureRegex = regexp.MustCompile(`(?i)\[(\d+)\s*marks?\]|\((\d+)\s*marks?\)|(\d+)\s*marks?`)
	marksStripRegex   = regexp.MustCompile(`(?i)\[\d+\s*marks?\]|\(\d+\s*marks?\)|\d+\s*marks?\s*$`)
)

// extractMarks captures the marks annotation from a raw question body.
// The first match wins, whichever bracket form it uses. Returns nil when
// no annotation is present.
func extractMarks(text string) *int {
	m := marksCaptureRegex.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	for _, group := range m[1:] {
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil || n <= 0 {
			return nil
		}
		return &n
	}
	return nil
}

// cleanBody strips marks annotations, drops any "OR"-introduced alternative
// branch, and collapses all whitespace to single spaces.
func cleanBody(text string) string {
	text = marksStripRegex.ReplaceAllString(text, "")
	if idx := strings.Index(text, "\nOR\n"); idx >= 0 {
		text = text[:idx]
	}
	return strings.Join(strings.Fields(text), " ")
}

// skipPrefixRegexes match section headers and instruction lines that must
// never become candidates, however long they are.
var skipPrefixRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Section [A-E]`),
	regexp.MustCompile(`(?i)^General Instructions`),
	regexp.MustCompile(`(?i)^Instructions`),
	regexp.MustCompile(`(?i)^Note:`),
	regexp.MustCompile(`(?i)^Answer`),
	regexp.MustCompile(`(?i)^consists of \d+ questions`),
	regexp.MustCompile(`(?i)^marks each`),
}

var (
	questionWordRegex = regexp.MustCompile(`(?i)\b(?:find|calculate|prove|solve|explain|define|derive|show that|evaluate|determine|state|write|what|which|how|why|when)\b`)
	conditionalRegex  = regexp.MustCompile(`(?i)\bif\b.*\bthen\b`)
	givenFindRegex    = regexp.MustCompile(`(?i)\bgiven\b.*\bfind\b`)
	mathSymbolRegex   = regexp.MustCompile(`[0-9+\-*/=^]`)
)

// isValidBody applies the validity filter: a length floor, a reject list of
// header/instruction prefixes, and at least one question signal (a literal
// "?", an interrogative token, or math symbols in a long-enough body).
func isValidBody(text string) bool {
	if len(text) < minBodyLength {
		return false
	}

	for _, re := range skipPrefixRegexes {
		if re.MatchString(text) {
			return false
		}
	}

	if strings.Contains(text, "?") {
		return true
	}
	if questionWordRegex.MatchString(text) {
		return true
	}
	if conditionalRegex.MatchString(text) || givenFindRegex.MatchString(text) {
		return true
	}
	// Fallback signal: looks like a math problem.
	if mathSymbolRegex.MatchString(text) && len(text) > 15 {
		return true
	}

	return false
}

var optionMarkerRegex = regexp.MustCompile(`[A-D][).]`)

// splitMCQ splits a validated body into stem and options when it carries
// option markers A)..D) or A...D. . A body yielding fewer than two options
// is kept whole as a descriptive question: MCQ requires at least 2 options.
func splitMCQ(body string) (stem string, options []string) {
	locs := optionMarkerRegex.FindAllStringIndex(body, -1)
	if len(locs) == 0 {
		return body, nil
	}

	opts := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(body)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		opt := strings.TrimSpace(body[loc[1]:end])
		if opt != "" {
			opts = append(opts, opt)
		}
	}

	if len(opts) < 2 {
		return body, nil
	}
	return strings.TrimSpace(body[:locs[0][0]]), opts
}

// buildCandidate runs the shared per-match pipeline (marks capture, body
// cleaning, validity filter, MCQ detection) over one raw strategy match.
// Returns false when the match is not a valid question.
func buildCandidate(label, rawBody string, kind Kind) (Candidate, bool) {
	marks := extractMarks(rawBody)
	body := cleanBody(rawBody)
	if !isValidBody(body) {
		return Candidate{}, false
	}

	stem, options := splitMCQ(body)
	return Candidate{
		Label:   label,
		Body:    stem,
		Kind:    kind,
		Options: options,
		Marks:   marks,
	}, true
}
