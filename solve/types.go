package solve

import (
	"time"

	"github.com/paperwise/paperwise/segment"
)

// Status records how a solution was obtained.
type Status string

const (
	// StatusOK means the AI capability produced the solution (including
	// the unparseable-but-present text case).
	StatusOK Status = "ok"
	// StatusFallback means the capability failed or timed out and a
	// synthesized placeholder was substituted.
	StatusFallback Status = "fallback"
)

// Solution is the structured answer for one question.
type Solution struct {
	SolutionText string   `json:"solution"`
	Steps        []string `json:"steps"`
	FinalAnswer  string   `json:"final_answer"`
	Explanation  string   `json:"explanation"`
}

// Solved pairs a candidate with its solution. The embedded candidate is
// the segmentation output, unmodified.
type Solved struct {
	segment.Candidate
	Solution
	Status Status
}

// SolutionSet is the ordered, complete result of solving a paper. Its
// question order always matches candidate order, and its length always
// matches the candidate count.
type SolutionSet struct {
	Subject     string
	ClassLevel  int
	StudentName string
	GeneratedAt time.Time
	Questions   []Solved
}

// TotalMarks sums marks over questions whose marks annotation was present
// at parse time. Questions without a stated marks value contribute 0 here
// even though prompt construction defaulted them to 1.
func (s *SolutionSet) TotalMarks() int {
	total := 0
	for _, q := range s.Questions {
		if q.Marks != nil {
			total += *q.Marks
		}
	}
	return total
}
