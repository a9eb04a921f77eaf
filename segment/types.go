package segment

// Kind identifies which segmentation strategy produced a candidate.
type Kind string

const (
	// KindNumbered is a top-level numbered question ("1.", "Q3:").
	KindNumbered Kind = "numbered"
	// KindSubQuestion is a lettered or roman-numeral sub-part ("(A)", "(ii)").
	KindSubQuestion Kind = "sub-question"
	// KindCaseStudy is a sub-part extracted from a case-study span.
	KindCaseStudy Kind = "case-study"
)

// Candidate is a single question extracted from exam text. Candidates are
// immutable once produced by the Engine; later pipeline stages wrap them
// rather than editing them.
type Candidate struct {
	// Label is the question's original marker, e.g. "5", "(A)", "Case-ii".
	Label string
	// Body is the cleaned question text. For MCQs this is the stem only.
	Body string
	// Kind records the producing strategy.
	Kind Kind
	// Options holds MCQ options in document order. Either empty or
	// length >= 2, never exactly 1.
	Options []string
	// Marks is the marks annotation captured from the raw text, nil when
	// the paper did not state marks for this question.
	Marks *int
}

// IsMCQ reports whether the candidate carries multiple-choice options.
func (c Candidate) IsMCQ() bool {
	return len(c.Options) > 0
}

// Summary aggregates parse-level statistics over a candidate list.
type Summary struct {
	Total       int
	MCQ         int
	Descriptive int
	// TotalMarks sums only candidates whose marks annotation was present.
	TotalMarks int
}

// Summarize computes a Summary for a candidate list.
func Summarize(candidates []Candidate) Summary {
	s := Summary{Total: len(candidates)}
	for _, c := range candidates {
		if c.IsMCQ() {
			s.MCQ++
		} else {
			s.Descriptive++
		}
		if c.Marks != nil {
			s.TotalMarks += *c.Marks
		}
	}
	return s
}
