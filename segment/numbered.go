package segment

import "regexp"

var (
	// "1. Question text" at the start of a line, 1-2 digit numbering.
	numberedMarkerRegex = regexp.MustCompile(`(?m)^(\d{1,2})\.\s+`)
	// "Q1. ..." / "Question 12: ..." variants.
	prefixedMarkerRegex = regexp.MustCompile(`(?m)^(?:Q|Question)\s*(\d{1,2})[.:]\s*`)
	// A numbered body ends at a section heading, an OR alternative line,
	// or an instruction block.
	numberedStopRegex = regexp.MustCompile(`(?m)^(?:Section|DIRECTION|OR$)`)
)

// NumberedStrategy extracts standard numbered questions ("1.", "2.") and
// the "Q<number>" variants. It runs first, so its candidates win dedup
// priority over the other strategies.
type NumberedStrategy struct{}

func (NumberedStrategy) Name() string { return "numbered" }

func (NumberedStrategy) Segment(text string) []Candidate {
	var out []Candidate
	for _, re := range []*regexp.Regexp{numberedMarkerRegex, prefixedMarkerRegex} {
		markers := scanMarkers(re, text)
		bodies := sliceBodies(text, markers, numberedStopRegex)
		for i, m := range markers {
			if c, ok := buildCandidate(m.label, bodies[i], KindNumbered); ok {
				out = append(out, c)
			}
		}
	}
	return out
}
