package segment

import (
	"strings"
	"testing"
)

func TestSubQuestionStrategy_LetteredParts(t *testing.T) {
	text := `(a) Explain why the sky appears blue during the day?
(b) Calculate the wavelength of light with frequency five hertz?`

	candidates := SubQuestionStrategy{}.Segment(text)
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Label != "(a)" {
		t.Errorf("Expected label '(a)', got %q", candidates[0].Label)
	}
	if candidates[1].Label != "(b)" {
		t.Errorf("Expected label '(b)', got %q", candidates[1].Label)
	}
	for i, c := range candidates {
		if c.Kind != KindSubQuestion {
			t.Errorf("Candidate %d: expected kind %q, got %q", i, KindSubQuestion, c.Kind)
		}
	}
}

func TestSubQuestionStrategy_RomanParts(t *testing.T) {
	text := `(ii) Define the principal focus of a concave mirror?
(iv) State the mirror formula and explain each term?`

	candidates := SubQuestionStrategy{}.Segment(text)
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Label != "(ii)" || candidates[1].Label != "(iv)" {
		t.Errorf("Unexpected labels: %q, %q", candidates[0].Label, candidates[1].Label)
	}
}

func TestSubQuestionStrategy_StopsAtNumberedQuestion(t *testing.T) {
	text := `(a) Explain the function of the human heart in circulation?
3. Describe the structure of a neuron with a labelled diagram.`

	candidates := SubQuestionStrategy{}.Segment(text)
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if strings.Contains(candidates[0].Body, "neuron") {
		t.Errorf("Expected body truncated at numbered question, got %q", candidates[0].Body)
	}
}

func TestCaseStudyStrategy_ExtractsSubParts(t *testing.T) {
	text := `Case Study 1: A shopkeeper sells apples and oranges at a fixed price.
(i) Find the total cost of five apples if each costs twelve rupees?
(ii) Calculate the profit when an apple bought for ten is sold for fifteen?`

	candidates := CaseStudyStrategy{}.Segment(text)
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Label != "Case-i" {
		t.Errorf("Expected label 'Case-i', got %q", candidates[0].Label)
	}
	if candidates[1].Label != "Case-ii" {
		t.Errorf("Expected label 'Case-ii', got %q", candidates[1].Label)
	}
	for i, c := range candidates {
		if c.Kind != KindCaseStudy {
			t.Errorf("Candidate %d: expected kind %q, got %q", i, KindCaseStudy, c.Kind)
		}
	}
}

func TestCaseStudyStrategy_NoHeadingNoCandidates(t *testing.T) {
	text := `(i) Find the median of the first ten natural numbers?
(ii) Calculate the mean of the same set of numbers?`

	if candidates := (CaseStudyStrategy{}).Segment(text); len(candidates) != 0 {
		t.Errorf("Expected no candidates without a case study heading, got %d", len(candidates))
	}
}

func TestCaseStudyStrategy_SeparateSpans(t *testing.T) {
	text := `Case Study 1: A train travels between two cities at constant speed.
(i) Find the distance covered in three hours at sixty kilometres per hour?
Case study 2: A farmer fences a rectangular field of fixed perimeter.
(i) Calculate the maximum area the farmer can enclose with forty metres?`

	candidates := CaseStudyStrategy{}.Segment(text)
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates across spans, got %d", len(candidates))
	}
	if !strings.Contains(candidates[0].Body, "distance") {
		t.Errorf("Unexpected first body: %q", candidates[0].Body)
	}
	if !strings.Contains(candidates[1].Body, "area") {
		t.Errorf("Unexpected second body: %q", candidates[1].Body)
	}
}

func TestNumberedStrategy_StopsAtSectionHeading(t *testing.T) {
	text := `5. Derive the quadratic formula from the standard form equation.
Section B
All questions in this section carry five marks each.`

	candidates := NumberedStrategy{}.Segment(text)
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if strings.Contains(candidates[0].Body, "Section") {
		t.Errorf("Expected body truncated at section heading, got %q", candidates[0].Body)
	}
}
