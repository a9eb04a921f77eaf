package extract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"path/filepath"
	"regexp"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imageExtensions maps lowercase file extensions to MIME types for images
// that are reasonable OCR candidates.
var imageExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
}

var imageMIMETypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/tiff": true,
	"image/webp": true,
	"image/bmp":  true,
	"image/gif":  true,
}

// ImageExtractor extracts text from scanned question papers via OCR.
// The input is normalized to RGB and re-encoded as PNG before it reaches
// the Reader, so readers never see palette or grayscale color modes.
type ImageExtractor struct {
	// Reader performs the actual recognition. Required.
	Reader Reader

	// ReadOptions configures the Reader call. Nil requests English OCR
	// with provider defaults.
	ReadOptions *ReadOptions
}

// CanExtract returns true for image MIME types or image file extensions.
func (e *ImageExtractor) CanExtract(contentType, path string) bool {
	if e.Reader == nil {
		return false
	}
	if imageMIMETypes[contentType] {
		return true
	}
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extract decodes the image, normalizes its color mode, runs OCR, and
// strips stray control artifacts from the result.
func (e *ImageExtractor) Extract(ctx context.Context, content []byte) (*Text, error) {
	if e.Reader == nil {
		return nil, fmt.Errorf("ImageExtractor: no Reader configured")
	}

	normalized, err := normalizeToRGB(content)
	if err != nil {
		return nil, &Error{Kind: CorruptDocument, Err: err}
	}

	opts := e.ReadOptions
	if opts == nil {
		opts = &ReadOptions{Language: "eng"}
	}

	raw, err := e.Reader.Read(ctx, "image/png", normalized, opts)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	text := cleanOCRText(raw)
	if text == "" {
		return nil, &Error{Kind: NoTextFound}
	}
	return &Text{Content: text, Method: "ocr"}, nil
}

// normalizeToRGB decodes any supported image format and re-encodes it as
// an RGB(A) PNG.
func normalizeToRGB(content []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	controlCharRegex = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]|\x{FFFD}`)
	blankLineRegex   = regexp.MustCompile(`\n+`)
)

// cleanOCRText strips control artifacts the OCR engine may emit and
// collapses blank lines.
func cleanOCRText(text string) string {
	text = controlCharRegex.ReplaceAllString(text, "")
	text = blankLineRegex.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
