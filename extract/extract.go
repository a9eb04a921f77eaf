// Package extract produces plain text from raw document bytes. Extractors
// are registered in a registry and selected by content type or file
// extension, one per supported input kind (PDF, DOCX, image/OCR).
package extract

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies extraction failures.
type ErrorKind string

const (
	// UnsupportedFormat means no extractor handles the input.
	UnsupportedFormat ErrorKind = "unsupported_format"
	// CorruptDocument means the bytes could not be decoded at all.
	CorruptDocument ErrorKind = "corrupt_document"
	// NoTextFound means decoding succeeded but yielded no usable text.
	NoTextFound ErrorKind = "no_text_found"
)

// Error is a typed extraction failure. It rejects the whole pipeline run
// before segmentation.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("extraction failed (%s)", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an extraction Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ee *Error
	if !errors.As(err, &ee) {
		return false
	}
	return ee.Kind == kind
}

// Text is the output of one extraction: the plain text plus the method
// that produced it. It is owned by a single pipeline run and discarded
// after segmentation.
type Text struct {
	Content string
	Method  string
}

// Extractor converts raw document bytes of one input kind into plain text.
type Extractor interface {
	// CanExtract returns true if this extractor handles the given content.
	// contentType is the MIME type (may be empty); path supplies the
	// extension fallback.
	CanExtract(contentType, path string) bool

	// Extract returns non-empty plain text or a typed *Error.
	Extract(ctx context.Context, content []byte) (*Text, error)
}

// Registry holds extractors in registration order and picks the first
// that can handle a given input.
type Registry struct {
	extractors []Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry creates a registry with the built-in extractors. The
// image extractor is only registered when an OCR reader is supplied.
func DefaultRegistry(reader Reader) *Registry {
	r := NewRegistry()
	r.Register(&PDFExtractor{})
	r.Register(&DocxExtractor{})
	if reader != nil {
		r.Register(&ImageExtractor{Reader: reader})
	}
	return r
}

// Register adds an extractor to the registry.
func (r *Registry) Register(e Extractor) {
	r.extractors = append(r.extractors, e)
}

// Extract picks the first matching extractor and runs it. Returns an
// UnsupportedFormat error when nothing matches.
func (r *Registry) Extract(ctx context.Context, contentType, path string, content []byte) (*Text, error) {
	for _, e := range r.extractors {
		if e.CanExtract(contentType, path) {
			return e.Extract(ctx, content)
		}
	}
	return nil, &Error{Kind: UnsupportedFormat, Err: fmt.Errorf("no extractor for %q (%s)", path, contentType)}
}
