package segment

import "regexp"

var (
	// Lettered sub-parts: "(A) ...", "(b) ...".
	letteredMarkerRegex = regexp.MustCompile(`\(([A-Za-z])\)\s*`)
	// Roman-numeral sub-parts: "(i) ...", "(IV) ...".
	romanMarkerRegex = regexp.MustCompile(`\(([ivxIVX]+)\)\s*`)
	// A sub-question body ends at the next top-level numbered question or
	// an OR alternative line.
	subQuestionStopRegex = regexp.MustCompile(`(?m)^(?:\d+\.|OR$)`)
)

// SubQuestionStrategy extracts lettered and roman-numeral sub-questions.
// Sub-parts that duplicate a numbered match are culled by the engine's
// dedup pass, which favours the numbered strategy.
type SubQuestionStrategy struct{}

func (SubQuestionStrategy) Name() string { return "sub-question" }

func (SubQuestionStrategy) Segment(text string) []Candidate {
	var out []Candidate
	for _, re := range []*regexp.Regexp{letteredMarkerRegex, romanMarkerRegex} {
		markers := scanMarkers(re, text)
		bodies := sliceBodies(text, markers, subQuestionStopRegex)
		for i, m := range markers {
			if c, ok := buildCandidate("("+m.label+")", bodies[i], KindSubQuestion); ok {
				out = append(out, c)
			}
		}
	}
	return out
}
