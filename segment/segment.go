// Package segment turns unstructured exam-paper text into an ordered,
// deduplicated list of question candidates. It runs a fixed priority list
// of pattern-matching strategies over normalized text, cleans and validates
// each match, and caps the merged result.
package segment

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoQuestionsFound is returned when no strategy yields a valid
// candidate. Callers must treat it as a terminal rejection: solving and
// rendering never run.
var ErrNoQuestionsFound = errors.New("no questions found in document text")

// maxCandidates caps the merged candidate list; full board papers rarely
// exceed it.
const maxCandidates = 50

// dedupKeyLength is how many leading body characters feed the dedup key.
const dedupKeyLength = 100

// minDedupKeyLength rejects candidates whose normalized key is too short
// to be meaningful.
const minDedupKeyLength = 10

// Strategy is one segmentation pass. Strategies receive normalized text
// and return cleaned, validated candidates in document order.
type Strategy interface {
	Name() string
	Segment(text string) []Candidate
}

// Engine runs an explicit ordered list of strategies. Order matters:
// dedup runs against a seen-set in strategy order, so earlier strategies
// win claims over text that multiple strategies match.
type Engine struct {
	strategies []Strategy
}

// NewEngine creates an Engine with the default strategy order:
// numbered, sub-question, case-study.
func NewEngine() *Engine {
	return &Engine{
		strategies: []Strategy{
			NumberedStrategy{},
			SubQuestionStrategy{},
			CaseStudyStrategy{},
		},
	}
}

// NewEngineWithStrategies creates an Engine with a custom strategy list.
func NewEngineWithStrategies(strategies ...Strategy) *Engine {
	return &Engine{strategies: strategies}
}

// Segment normalizes raw extracted text, runs every strategy in order,
// deduplicates across their output, and truncates to the candidate cap.
// Segmentation is pure and deterministic: the same text always yields the
// same ordered list.
func (e *Engine) Segment(raw string) ([]Candidate, error) {
	text := Normalize(raw)

	var merged []Candidate
	for _, s := range e.strategies {
		merged = append(merged, s.Segment(text)...)
	}

	unique := Dedupe(merged)
	if len(unique) > maxCandidates {
		unique = unique[:maxCandidates]
	}
	if len(unique) == 0 {
		return nil, ErrNoQuestionsFound
	}
	return unique, nil
}

// Dedupe removes duplicate candidates against a running seen-set,
// preserving input order. The key is the first 100 characters of the body,
// lowercased with non-alphanumerics stripped; candidates whose key is
// shorter than 10 characters are dropped outright.
func Dedupe(candidates []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]Candidate, 0, len(candidates))

	for _, c := range candidates {
		key := dedupKey(c.Body)
		if utf8.RuneCountInString(key) < minDedupKeyLength {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}

// dedupKey considers the first 100 characters of the body, not bytes, so
// multibyte text truncates on a rune boundary.
func dedupKey(body string) string {
	var b strings.Builder
	b.Grow(len(body))
	seen := 0
	for _, r := range strings.ToLower(body) {
		if seen >= dedupKeyLength {
			break
		}
		seen++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
