package segment

import (
	"regexp"
	"strings"
)

var (
	pageArtifactRegex = regexp.MustCompile(`(?m)Page \d+|page \d+|\d+[ \t]*$`)
	newlineRunRegex   = regexp.MustCompile(`\n{3,}`)
	spaceRunRegex     = regexp.MustCompile(` {2,}`)
)

// ocrSubstitutions maps characters that OCR engines commonly emit in place
// of the degree sign (mathematical italic o/O look-alikes).
var ocrSubstitutions = strings.NewReplacer(
	"\U0001D45C", "°",
	"\U0001D442", "°",
)

// Normalize prepares raw extracted text for segmentation: page-number and
// footer artifacts are removed, whitespace runs are collapsed, and known
// OCR character substitutions are fixed.
func Normalize(text string) string {
	text = pageArtifactRegex.ReplaceAllString(text, "")
	text = newlineRunRegex.ReplaceAllString(text, "\n\n")
	text = spaceRunRegex.ReplaceAllString(text, " ")
	text = ocrSubstitutions.Replace(text)
	return strings.TrimSpace(text)
}
