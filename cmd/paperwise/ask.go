package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/paperwise/paperwise/config"
	"github.com/paperwise/paperwise/logging"
	"github.com/paperwise/paperwise/solve"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Solve a single question without a paper",
	Long: `Ask solves one free-form question and prints the solution.

Examples:
  paperwise ask "Find the roots of x^2 - 5x + 6 = 0"
  paperwise ask "State Newton's second law" --subject Physics --class 9
`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	askCmd.Flags().StringVarP(&subject, "subject", "s", "", "Question subject (overrides config)")
	askCmd.Flags().IntVar(&classLevel, "class", 0, "Class level (overrides config)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cfg)

	logger := logging.New(&cfg.Logging)
	defer logger.Sync()

	solver, err := solve.NewOpenRouterSolver(cfg.Solver.APIKey, cfg.Solver.Model)
	if err != nil {
		return fmt.Errorf("failed to create solver: %w", err)
	}

	orchestrator := solve.NewOrchestrator(solver, solve.Options{
		CallTimeout: time.Duration(cfg.Solver.CallTimeout),
		Logger:      logger,
	})

	solution, err := orchestrator.SolveOne(ctx, args[0], cfg.Defaults.Subject, cfg.Defaults.ClassLevel)
	if err != nil {
		return fmt.Errorf("failed to solve question: %w", err)
	}

	fmt.Println("Solution:")
	for _, step := range solution.Steps {
		fmt.Printf("  - %s\n", step)
	}
	if len(solution.Steps) == 0 && solution.SolutionText != "" {
		fmt.Printf("  %s\n", solution.SolutionText)
	}
	if solution.FinalAnswer != "" {
		fmt.Printf("\nFinal Answer: %s\n", solution.FinalAnswer)
	}
	if solution.Explanation != "" {
		fmt.Printf("\nExplanation: %s\n", solution.Explanation)
	}
	return nil
}
