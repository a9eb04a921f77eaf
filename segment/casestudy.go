package segment

import "regexp"

var (
	caseHeadingRegex = regexp.MustCompile(`(?i)case study`)
	// Within a case-study span, sub-parts are lowercase roman numerals.
	caseSubPartRegex = regexp.MustCompile(`\(([ivx]+)\)\s*`)
)

// CaseStudyStrategy extracts roman-numeral sub-parts from spans introduced
// by a case-insensitive "case study" heading. Each span runs to the next
// such heading or end of text.
type CaseStudyStrategy struct{}

func (CaseStudyStrategy) Name() string { return "case-study" }

func (CaseStudyStrategy) Segment(text string) []Candidate {
	headings := caseHeadingRegex.FindAllStringIndex(text, -1)
	if headings == nil {
		return nil
	}

	var out []Candidate
	for i, h := range headings {
		end := len(text)
		if i+1 < len(headings) {
			end = headings[i+1][0]
		}
		span := text[h[0]:end]

		markers := scanMarkers(caseSubPartRegex, span)
		bodies := sliceBodies(span, markers, nil)
		for j, m := range markers {
			if c, ok := buildCandidate("Case-"+m.label, bodies[j], KindCaseStudy); ok {
				out = append(out, c)
			}
		}
	}
	return out
}
