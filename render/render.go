// Package render composes a finalized solution set into a downloadable
// artifact. Renderers are selected by format name from a registry; the
// composition order (title, metadata, per-question blocks) is fixed across
// formats.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/paperwise/paperwise/solve"
)

// Artifact is a rendered output document.
type Artifact struct {
	Bytes       []byte
	ContentType string
	// Filename is the suggested download name; storage and delivery are
	// up to the caller.
	Filename string
}

// Renderer produces one output format from a solution set.
type Renderer interface {
	// Format is the registry key, e.g. "pdf", "markdown", "html".
	Format() string

	// ContentType is the MIME type of the produced artifact.
	ContentType() string

	// Render composes the artifact. Failures are fatal to the request;
	// no partial artifact is ever returned.
	Render(set *solve.SolutionSet) (*Artifact, error)
}

// Registry holds renderers keyed by format name.
type Registry struct {
	renderers []Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry creates a registry with the built-in renderers:
// PDF, Markdown, and HTML.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&PDFRenderer{})
	r.Register(&MarkdownRenderer{})
	r.Register(&HTMLRenderer{})
	return r
}

// Register adds a renderer.
func (r *Registry) Register(renderer Renderer) {
	r.renderers = append(r.renderers, renderer)
}

// Get returns the renderer for a format name, or nil.
func (r *Registry) Get(format string) Renderer {
	for _, renderer := range r.renderers {
		if renderer.Format() == format {
			return renderer
		}
	}
	return nil
}

// markupEscaper escapes markup-reserved characters in free-form text.
// Extracted and AI-generated text may contain raw symbols.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeMarkup escapes &, < and > in free-form text before composition.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// artifactFilename builds the suggested download name:
// solutions_<timestamp>_<short id>.<ext>.
func artifactFilename(ext string) string {
	return fmt.Sprintf("solutions_%s_%s.%s",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
		ext)
}

// metadataDate formats the generation date for the metadata block.
func metadataDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// marksAnnotation renders the "[n marks]" suffix for a question heading,
// or "" when the paper stated no marks.
func marksAnnotation(q solve.Solved) string {
	if q.Marks == nil {
		return ""
	}
	return fmt.Sprintf(" [%d marks]", *q.Marks)
}
