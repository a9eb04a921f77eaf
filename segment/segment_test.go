package segment

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestEngine_NumberedQuestions(t *testing.T) {
	text := `1. Find the value of x if 2x + 6 = 14?
2. Explain the process of photosynthesis in plants.`

	candidates, err := NewEngine().Segment(text)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}

	if candidates[0].Label != "1" {
		t.Errorf("Expected first label '1', got %q", candidates[0].Label)
	}
	if candidates[1].Label != "2" {
		t.Errorf("Expected second label '2', got %q", candidates[1].Label)
	}
	for i, c := range candidates {
		if c.Kind != KindNumbered {
			t.Errorf("Candidate %d: expected kind %q, got %q", i, KindNumbered, c.Kind)
		}
		if c.Marks != nil {
			t.Errorf("Candidate %d: expected no marks, got %d", i, *c.Marks)
		}
		if c.IsMCQ() {
			t.Errorf("Candidate %d: expected descriptive, got MCQ", i)
		}
	}
}

func TestEngine_QPrefixedQuestions(t *testing.T) {
	text := `Q1. State the law of conservation of energy with one example.
Question 2: Define acceleration and give its SI unit?`

	candidates, err := NewEngine().Segment(text)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Label != "1" || candidates[1].Label != "2" {
		t.Errorf("Expected labels '1' and '2', got %q and %q",
			candidates[0].Label, candidates[1].Label)
	}
}

func TestEngine_MCQSplitting(t *testing.T) {
	text := `1. Which of the following is a primary colour? A) Red B) Blue C) Green D) Yellow`

	candidates, err := NewEngine().Segment(text)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}

	c := candidates[0]
	if !c.IsMCQ() {
		t.Fatal("Expected MCQ candidate")
	}
	want := []string{"Red", "Blue", "Green", "Yellow"}
	if !reflect.DeepEqual(c.Options, want) {
		t.Errorf("Expected options %v, got %v", want, c.Options)
	}
	if strings.Contains(c.Body, "Red") {
		t.Errorf("Expected stem without options, got %q", c.Body)
	}
	if c.Body != "Which of the following is a primary colour?" {
		t.Errorf("Unexpected stem: %q", c.Body)
	}
}

func TestEngine_SingleOptionStaysDescriptive(t *testing.T) {
	text := `1. What does the abbreviation CPU stand for? A) Central Processing Unit`

	candidates, err := NewEngine().Segment(text)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].IsMCQ() {
		t.Errorf("One option must not make an MCQ, options: %v", candidates[0].Options)
	}
}

func TestEngine_NoQuestionsFound(t *testing.T) {
	text := `General Instructions: All questions are compulsory.
Section A contains multiple choice questions.
Note: use of calculators is not permitted.`

	candidates, err := NewEngine().Segment(text)
	if !errors.Is(err, ErrNoQuestionsFound) {
		t.Fatalf("Expected ErrNoQuestionsFound, got %v", err)
	}
	if candidates != nil {
		t.Errorf("Expected nil candidates, got %v", candidates)
	}
}

func TestEngine_Deterministic(t *testing.T) {
	text := `1. Calculate the area of a circle with radius 7 cm. [2 marks]
2. Which gas is most abundant in air? A) Oxygen B) Nitrogen C) Carbon dioxide D) Hydrogen
Case Study 1: A shopkeeper sells apples and oranges at a fixed price.
(i) Find the total cost of five apples if each costs twelve rupees?
(ii) Calculate the profit when an apple bought for ten is sold for fifteen?`

	engine := NewEngine()
	first, err := engine.Segment(text)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	for range 5 {
		again, err := engine.Segment(text)
		if err != nil {
			t.Fatalf("Repeat Segment failed: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Segmentation is not deterministic:\nfirst:  %v\nsecond: %v", first, again)
		}
	}
}

func TestEngine_CandidateCap(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 60; i++ {
		fmt.Fprintf(&b, "%d. What is the square of %d plus seven?\n", i, i)
	}

	candidates, err := NewEngine().Segment(b.String())
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if len(candidates) != maxCandidates {
		t.Errorf("Expected cap of %d candidates, got %d", maxCandidates, len(candidates))
	}
}

func TestEngine_ShortBodyRejected(t *testing.T) {
	text := `1. Solve.
2. Explain the difference between speed and velocity.`

	candidates, err := NewEngine().Segment(text)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Label != "2" {
		t.Errorf("Expected surviving label '2', got %q", candidates[0].Label)
	}
}

func TestDedupe_EarlierKindWins(t *testing.T) {
	body := "Explain the working of a transformer in detail."
	candidates := []Candidate{
		{Label: "3", Body: body, Kind: KindNumbered},
		{Label: "(a)", Body: body, Kind: KindSubQuestion},
	}

	unique := Dedupe(candidates)
	if len(unique) != 1 {
		t.Fatalf("Expected 1 unique candidate, got %d", len(unique))
	}
	if unique[0].Kind != KindNumbered {
		t.Errorf("Expected numbered candidate to win, got %q", unique[0].Kind)
	}
	if unique[0].Label != "3" {
		t.Errorf("Expected label '3', got %q", unique[0].Label)
	}
}

func TestDedupe_ShortKeyDropped(t *testing.T) {
	candidates := []Candidate{
		{Label: "1", Body: "x = 2?", Kind: KindNumbered},
		{Label: "2", Body: "Find the roots of the quadratic equation?", Kind: KindNumbered},
	}

	unique := Dedupe(candidates)
	if len(unique) != 1 {
		t.Fatalf("Expected 1 candidate after key filter, got %d", len(unique))
	}
	if unique[0].Label != "2" {
		t.Errorf("Expected label '2' to survive, got %q", unique[0].Label)
	}
}

func TestDedupe_MultibyteKeyTruncatesByCharacter(t *testing.T) {
	// 34 three-byte runes put the hundredth byte mid-rune; the key window
	// must still reach character 100 and see where the bodies diverge.
	prefix := strings.Repeat("अ", 34)
	candidates := []Candidate{
		{Label: "1", Body: prefix + "What is the value of seven plus three?", Kind: KindNumbered},
		{Label: "2", Body: prefix + "Explain the difference between mass and weight.", Kind: KindNumbered},
	}

	unique := Dedupe(candidates)
	if len(unique) != 2 {
		t.Fatalf("Expected both candidates kept, got %d", len(unique))
	}
}

func TestDedupe_KeyIgnoresCaseAndPunctuation(t *testing.T) {
	candidates := []Candidate{
		{Label: "1", Body: "Define Newton's first law of motion.", Kind: KindNumbered},
		{Label: "(a)", Body: "define newtons FIRST law, of motion", Kind: KindSubQuestion},
	}

	unique := Dedupe(candidates)
	if len(unique) != 1 {
		t.Fatalf("Expected case/punctuation variants to collapse, got %d candidates", len(unique))
	}
}
