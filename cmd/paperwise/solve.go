package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paperwise/paperwise/config"
	"github.com/paperwise/paperwise/extract"
	"github.com/paperwise/paperwise/logging"
	"github.com/paperwise/paperwise/pipeline"
	"github.com/paperwise/paperwise/render"
	"github.com/paperwise/paperwise/segment"
	"github.com/paperwise/paperwise/solve"
)

var (
	configPath   string
	subject      string
	classLevel   int
	studentName  string
	outputFormat string
	outputDir    string
	concurrency  int
)

var solveCmd = &cobra.Command{
	Use:   "solve <paper>",
	Short: "Solve every question in a question paper",
	Long: `Solve extracts questions from a paper and generates a solution document.

Examples:
  # Solve a PDF paper with defaults
  paperwise solve paper.pdf

  # Scanned paper, markdown output
  paperwise solve scan.jpg --subject Physics --class 12 --format markdown

  # With a config file
  paperwise solve paper.docx --config paperwise.yaml --student "A. Kumar"
`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	solveCmd.Flags().StringVarP(&subject, "subject", "s", "", "Paper subject (overrides config)")
	solveCmd.Flags().IntVar(&classLevel, "class", 0, "Class level (overrides config)")
	solveCmd.Flags().StringVar(&studentName, "student", "", "Student name for the cover block")
	solveCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: pdf, markdown, html (overrides config)")
	solveCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory to write the solution document into")
	solveCmd.Flags().IntVar(&concurrency, "concurrency", 0, "Concurrent AI calls (overrides config)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	paperPath := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cfg)

	logger := logging.New(&cfg.Logging)
	defer logger.Sync()

	content, err := os.ReadFile(paperPath)
	if err != nil {
		return fmt.Errorf("failed to read paper: %w", err)
	}

	p, err := buildPipeline(cfg, logger)
	if err != nil {
		return err
	}

	artifact, err := p.Run(ctx,
		pipeline.SourceDocument{Path: paperPath, Content: content},
		pipeline.RunOptions{
			Subject:     cfg.Defaults.Subject,
			ClassLevel:  cfg.Defaults.ClassLevel,
			StudentName: cfg.Defaults.StudentName,
			Format:      cfg.Defaults.Format,
		})
	if err != nil {
		return err
	}

	outPath := filepath.Join(outputDir, artifact.Filename)
	if err := os.WriteFile(outPath, artifact.Bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write solution document: %w", err)
	}

	fmt.Printf("Solutions written to: %s\n", outPath)
	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if subject != "" {
		cfg.Defaults.Subject = subject
	}
	if classLevel > 0 {
		cfg.Defaults.ClassLevel = classLevel
	}
	if studentName != "" {
		cfg.Defaults.StudentName = studentName
	}
	if outputFormat != "" {
		cfg.Defaults.Format = outputFormat
	}
	if concurrency > 0 {
		cfg.Solver.Concurrency = concurrency
	}
}

func buildPipeline(cfg *config.Config, logger *zap.Logger) (*pipeline.Pipeline, error) {
	solver, err := solve.NewOpenRouterSolver(cfg.Solver.APIKey, cfg.Solver.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create solver: %w", err)
	}

	var reader extract.Reader
	if cfg.Solver.VisionModel != "" {
		reader, err = solve.NewVisionReader(cfg.Solver.APIKey, cfg.Solver.VisionModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create OCR reader: %w", err)
		}
	}

	orchestrator := solve.NewOrchestrator(solver, solve.Options{
		Concurrency:        cfg.Solver.Concurrency,
		CallTimeout:        time.Duration(cfg.Solver.CallTimeout),
		RateLimitPerMinute: cfg.Solver.RateLimitPerMinute,
		Logger:             logger,
	})

	return pipeline.New(
		extract.DefaultRegistry(reader),
		segment.NewEngine(),
		orchestrator,
		render.DefaultRegistry(),
		logger,
	), nil
}
