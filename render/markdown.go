package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/paperwise/paperwise/solve"
)

// MarkdownRenderer composes the solution set as a Markdown document.
type MarkdownRenderer struct{}

func (MarkdownRenderer) Format() string      { return "markdown" }
func (MarkdownRenderer) ContentType() string { return "text/markdown; charset=utf-8" }

func (MarkdownRenderer) Render(set *solve.SolutionSet) (*Artifact, error) {
	body := composeMarkdown(set)
	return &Artifact{
		Bytes:       []byte(body),
		ContentType: "text/markdown; charset=utf-8",
		Filename:    artifactFilename("md"),
	}, nil
}

// HTMLRenderer composes the same Markdown document and converts it to a
// standalone HTML page with a fixed A4 page size for printing.
type HTMLRenderer struct{}

func (HTMLRenderer) Format() string      { return "html" }
func (HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (HTMLRenderer) Render(set *solve.SolutionSet) (*Artifact, error) {
	md := composeMarkdown(set)

	var converted bytes.Buffer
	if err := goldmark.Convert([]byte(md), &converted); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s Solutions - Class %d</title>\n", EscapeMarkup(set.Subject), set.ClassLevel)
	page.WriteString("<style>@page { size: A4; margin: 25mm; } body { font-family: serif; max-width: 160mm; margin: auto; }</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(converted.Bytes())
	page.WriteString("</body>\n</html>\n")

	return &Artifact{
		Bytes:       page.Bytes(),
		ContentType: "text/html; charset=utf-8",
		Filename:    artifactFilename("html"),
	}, nil
}

// composeMarkdown writes the fixed composition order: title block,
// metadata block, then one block per solved question with a trailing
// separator. All free-form text is markup-escaped first.
func composeMarkdown(set *solve.SolutionSet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Solutions - Class %d\n\n", EscapeMarkup(set.Subject), set.ClassLevel)

	fmt.Fprintf(&b, "**Student:** %s  \n", EscapeMarkup(set.StudentName))
	fmt.Fprintf(&b, "**Date:** %s  \n", metadataDate(set.GeneratedAt))
	fmt.Fprintf(&b, "**Total Questions:** %d  \n", len(set.Questions))
	fmt.Fprintf(&b, "**Total Marks:** %d\n\n", set.TotalMarks())

	for _, q := range set.Questions {
		fmt.Fprintf(&b, "**Question %s%s:** %s\n\n",
			EscapeMarkup(q.Label), marksAnnotation(q), EscapeMarkup(q.Body))

		if q.IsMCQ() {
			for i, opt := range q.Options {
				fmt.Fprintf(&b, "%c) %s  \n", 'A'+i, EscapeMarkup(opt))
			}
			b.WriteString("\n")
		}

		b.WriteString("**Solution:**\n\n")
		if len(q.Steps) > 0 {
			for _, step := range q.Steps {
				fmt.Fprintf(&b, "- %s\n", EscapeMarkup(step))
			}
			b.WriteString("\n")
		} else {
			fmt.Fprintf(&b, "%s\n\n", EscapeMarkup(q.SolutionText))
		}

		if q.FinalAnswer != "" {
			fmt.Fprintf(&b, "**Final Answer:** %s\n\n", EscapeMarkup(q.FinalAnswer))
		}
		if q.Explanation != "" {
			fmt.Fprintf(&b, "**Explanation:** %s\n\n", EscapeMarkup(q.Explanation))
		}

		b.WriteString("---\n\n")
	}

	return b.String()
}
