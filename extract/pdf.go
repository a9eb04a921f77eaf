package extract

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts text from PDF documents, concatenating the plain
// text of every page in order.
type PDFExtractor struct{}

// CanExtract returns true for PDF content types or .pdf extensions.
func (PDFExtractor) CanExtract(contentType, path string) bool {
	if strings.Contains(contentType, "application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(path), ".pdf")
}

// Extract reads every page and joins the page texts with newlines.
func (PDFExtractor) Extract(ctx context.Context, content []byte) (*Text, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, &Error{Kind: CorruptDocument, Err: err}
	}

	var b strings.Builder
	totalPages := reader.NumPage()
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with undecodable content streams are skipped rather
			// than failing the document.
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return nil, &Error{Kind: NoTextFound}
	}
	return &Text{Content: text, Method: "pdf"}, nil
}
