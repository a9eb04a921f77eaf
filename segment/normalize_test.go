package segment

import (
	"strings"
	"testing"
)

func TestNormalize_RemovesPageArtifacts(t *testing.T) {
	text := "1. Explain osmosis with an example?\nPage 3\n2. Define diffusion in gases?"

	got := Normalize(text)
	if strings.Contains(got, "Page 3") {
		t.Errorf("Expected page artifact removed, got %q", got)
	}
	if !strings.Contains(got, "Explain osmosis") {
		t.Errorf("Expected question text preserved, got %q", got)
	}
}

func TestNormalize_RemovesTrailingLineNumbers(t *testing.T) {
	got := Normalize("Define the term valency?   12\nNext line of the paper.")
	if strings.Contains(got, "12") {
		t.Errorf("Expected trailing page number removed, got %q", got)
	}
}

func TestNormalize_CollapsesWhitespaceRuns(t *testing.T) {
	got := Normalize("First line.\n\n\n\n\nSecond   line.")
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("Expected newline run collapsed, got %q", got)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("Expected space run collapsed, got %q", got)
	}
	if got != "First line.\n\nSecond line." {
		t.Errorf("Unexpected normalized text: %q", got)
	}
}

func TestNormalize_FixesOCRDegreeSign(t *testing.T) {
	got := Normalize("The angle measures 45\U0001D45C in the triangle?")
	if !strings.Contains(got, "45°") {
		t.Errorf("Expected OCR look-alike replaced with degree sign, got %q", got)
	}
}

func TestNormalize_TrimsEdges(t *testing.T) {
	got := Normalize("\n\n  What is photosynthesis?  \n\n")
	if got != "What is photosynthesis?" {
		t.Errorf("Unexpected normalized text: %q", got)
	}
}
