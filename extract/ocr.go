package extract

import "context"

// Reader extracts text from a page image via an OCR engine or vision
// model. It is a consumed capability: implementations live outside this
// package (see solve.VisionReader for the production one).
type Reader interface {
	// Read returns the recognized text for a single page image.
	Read(ctx context.Context, mimeType string, image []byte, opts *ReadOptions) (string, error)
}

// ReadOptions configures a Read call.
type ReadOptions struct {
	// Language is the recognition language code (default "eng").
	Language string

	// MaxTokens caps output size for model-backed readers (0 = provider
	// default).
	MaxTokens int
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(ctx context.Context, mimeType string, image []byte, opts *ReadOptions) (string, error)

func (f ReaderFunc) Read(ctx context.Context, mimeType string, image []byte, opts *ReadOptions) (string, error) {
	return f(ctx, mimeType, image, opts)
}
