package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paperwise",
	Short: "Paperwise - AI question paper solver",
	Long: `Paperwise extracts questions from exam papers and solves them with AI.

It accepts PDF, DOCX, and scanned-image papers, segments the questions
(numbered, sub-part, and case-study layouts), solves each one with an
AI model, and renders a complete solution document as PDF, Markdown,
or HTML.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(askCmd)
}
