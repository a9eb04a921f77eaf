package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/paperwise/paperwise/solve"
)

// PDFRenderer composes the solution set as a paginated A4 PDF.
type PDFRenderer struct{}

func (PDFRenderer) Format() string      { return "pdf" }
func (PDFRenderer) ContentType() string { return "application/pdf" }

func (PDFRenderer) Render(set *solve.SolutionSet) (*Artifact, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Core fonts are cp1252; translate UTF-8 text on the way in.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title block.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(30, 58, 138)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("%s Solutions - Class %d", set.Subject, set.ClassLevel)),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Metadata block.
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(31, 41, 55)
	meta := fmt.Sprintf("Student: %s\nDate: %s\nTotal Questions: %d\nTotal Marks: %d",
		set.StudentName, metadataDate(set.GeneratedAt), len(set.Questions), set.TotalMarks())
	pdf.MultiCell(0, 6, tr(meta), "", "C", false)
	pdf.Ln(8)

	for _, q := range set.Questions {
		writeQuestionBlock(pdf, tr, q)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}

	return &Artifact{
		Bytes:       buf.Bytes(),
		ContentType: "application/pdf",
		Filename:    artifactFilename("pdf"),
	}, nil
}

func writeQuestionBlock(pdf *fpdf.Fpdf, tr func(string) string, q solve.Solved) {
	// Question heading and text.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(31, 41, 55)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("Question %s%s:", q.Label, marksAnnotation(q))), "", "L", false)

	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, tr(q.Body), "", "L", false)

	if q.IsMCQ() {
		for i, opt := range q.Options {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%c) %s", 'A'+i, opt)), "", "L", false)
		}
	}
	pdf.Ln(2)

	// Solution heading.
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(124, 58, 237)
	pdf.CellFormat(0, 7, "Solution:", "", 1, "L", false, 0, "")

	// Steps as a bulleted list, or the raw solution text.
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(55, 65, 81)
	if len(q.Steps) > 0 {
		for _, step := range q.Steps {
			pdf.MultiCell(0, 6, tr("• "+step), "", "L", false)
		}
	} else {
		pdf.MultiCell(0, 6, tr(q.SolutionText), "", "L", false)
	}

	if q.FinalAnswer != "" {
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(5, 150, 105)
		pdf.MultiCell(0, 6, tr("Final Answer: "+q.FinalAnswer), "", "L", false)
	}

	if q.Explanation != "" {
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(124, 58, 237)
		pdf.CellFormat(0, 7, "Explanation:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(55, 65, 81)
		pdf.MultiCell(0, 6, tr(q.Explanation), "", "L", false)
	}

	// Visual separator.
	pdf.Ln(4)
	pdf.SetDrawColor(229, 231, 235)
	y := pdf.GetY()
	w, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.Line(left, y, w-right, y)
	pdf.Ln(6)
}
