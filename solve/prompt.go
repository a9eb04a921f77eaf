package solve

import (
	"fmt"
	"strings"

	"github.com/paperwise/paperwise/segment"
)

// detailedMarksThreshold is the effective-marks value at which the prompt
// requests a step-by-step solution instead of a concise one.
const detailedMarksThreshold = 3

// EffectiveMarks returns the marks value used for prompt construction.
// An absent annotation defaults to 1 here; the parse-time value stays nil
// for rendering (see SolutionSet.TotalMarks).
func EffectiveMarks(c segment.Candidate) int {
	if c.Marks == nil {
		return 1
	}
	return *c.Marks
}

// BuildPrompt assembles the deterministic solve request for one candidate.
func BuildPrompt(c segment.Candidate, subject string, classLevel int) string {
	marks := EffectiveMarks(c)

	detail := "concise"
	if marks >= detailedMarksThreshold {
		detail = "detailed"
	}

	question := c.Body
	if c.IsMCQ() {
		var opts strings.Builder
		for i, opt := range c.Options {
			if i > 0 {
				opts.WriteString("\n")
			}
			fmt.Fprintf(&opts, "%c) %s", 'A'+i, opt)
		}
		question = fmt.Sprintf("%s\n\nOptions:\n%s", c.Body, opts.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert %s teacher helping a Class %d student solve a question from their exam paper.\n\n",
		subject, classLevel)
	fmt.Fprintf(&b, "Question Number: %s\n", c.Label)
	fmt.Fprintf(&b, "Question Type: %s\n", c.Kind)
	fmt.Fprintf(&b, "Marks: %d\n\n", marks)
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	fmt.Fprintf(&b, "Please provide a %s solution appropriate for %d marks.\n\n", detail, marks)
	b.WriteString(`Guidelines:
- For MCQ: Explain why the correct option is right and others are wrong
- For 1-2 marks: Give a concise solution with key steps
- For 3-5 marks: Provide detailed step-by-step solution with explanations
- For mathematical problems: Show all calculations clearly
- Use appropriate formulas and theorems
- Follow CBSE/Academic answer writing pattern

Format your response as JSON:
{
    "solution": "Complete solution text",
    "steps": [
        "Step 1: Understanding the problem...",
        "Step 2: Applying the formula/concept...",
        "Step 3: Calculation/Working..."
    ],
    "final_answer": "The final answer with proper units",
    "explanation": "Key concept or learning point"
}

`)
	fmt.Fprintf(&b, "Make the solution clear and exam-appropriate for Class %d.\n", classLevel)
	return b.String()
}
