package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// nsWordprocessingML is the OOXML WordprocessingML namespace.
const nsWordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// DocxExtractor extracts text from Microsoft Word (.docx) files:
// body paragraphs joined by newlines, and table cells joined by spaces
// within each row.
type DocxExtractor struct{}

// CanExtract returns true for DOCX content types or .docx/.doc extensions.
func (DocxExtractor) CanExtract(contentType, path string) bool {
	if strings.Contains(contentType, "application/vnd.openxmlformats-officedocument.wordprocessingml.document") {
		return true
	}
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".docx") || strings.HasSuffix(lower, ".doc")
}

// Extract walks word/document.xml and collects run text from paragraphs
// and table cells.
func (DocxExtractor) Extract(ctx context.Context, content []byte) (*Text, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, &Error{Kind: CorruptDocument, Err: fmt.Errorf("opening DOCX archive: %w", err)}
	}

	docXML, err := readZipFile(zr, "word/document.xml")
	if err != nil {
		return nil, &Error{Kind: CorruptDocument, Err: err}
	}

	text, err := walkDocumentXML(docXML)
	if err != nil {
		return nil, &Error{Kind: CorruptDocument, Err: fmt.Errorf("parsing document.xml: %w", err)}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &Error{Kind: NoTextFound}
	}
	return &Text{Content: text, Method: "docx"}, nil
}

// walkDocumentXML does a single token pass over the WordprocessingML body.
// Paragraph text is emitted one paragraph per line; inside tables, cell
// texts are joined with spaces and each row ends the line.
func walkDocumentXML(data []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var out strings.Builder
	var paragraph strings.Builder
	var cell strings.Builder
	var rowCells []string

	tableDepth := 0
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != nsWordprocessingML && t.Name.Space != "" {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tr":
				rowCells = rowCells[:0]
			case "tc":
				cell.Reset()
			case "p":
				if tableDepth == 0 {
					paragraph.Reset()
				}
			case "t":
				inText = true
			case "tab":
				writeRun(tableDepth, &paragraph, &cell, "\t")
			case "br":
				writeRun(tableDepth, &paragraph, &cell, "\n")
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "tr":
				if tableDepth > 0 {
					out.WriteString(strings.Join(rowCells, " "))
					out.WriteString("\n")
				}
			case "tc":
				if tableDepth > 0 {
					rowCells = append(rowCells, strings.TrimSpace(cell.String()))
				}
			case "p":
				if tableDepth == 0 {
					if text := strings.TrimSpace(paragraph.String()); text != "" {
						out.WriteString(text)
						out.WriteString("\n")
					}
				}
			case "t":
				inText = false
			}

		case xml.CharData:
			if inText {
				writeRun(tableDepth, &paragraph, &cell, string(t))
			}
		}
	}

	return out.String(), nil
}

func writeRun(tableDepth int, paragraph, cell *strings.Builder, s string) {
	if tableDepth > 0 {
		cell.WriteString(s)
	} else {
		paragraph.WriteString(s)
	}
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}
