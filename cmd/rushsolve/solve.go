package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JiCorrales/traffic-jam-solver/internal/progress"
	"github.com/JiCorrales/traffic-jam-solver/internal/puzzle"
	"github.com/JiCorrales/traffic-jam-solver/internal/solver"
)

// solveFlags holds the validated options for one `solve` invocation.
type solveFlags struct {
	Algorithm string        `validate:"oneof=bfs dfs backtrack astar"`
	MaxDepth  int           `validate:"min=0"`
	Timeout   time.Duration `validate:"min=0"`
}

func newSolveCmd() *cobra.Command {
	flags := solveFlags{Algorithm: "bfs"}

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a single puzzle file and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.New().Struct(flags); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			return runSolve(args[0], flags)
		},
	}
	cmd.Flags().StringVar(&flags.Algorithm, "algo", flags.Algorithm, "bfs|dfs|backtrack|astar")
	cmd.Flags().IntVar(&flags.MaxDepth, "max-depth", 0, "depth bound honored by dfs (0 = unbounded)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "abort the search after this long (0 = no timeout)")
	return cmd
}

func runSolve(path string, flags solveFlags) error {
	requestID := uuid.NewString()

	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: read puzzle: %w", requestID, err)
	}
	board, err := puzzle.Parse(string(text))
	if err != nil {
		return fmt.Errorf("%s: parse puzzle: %w", requestID, err)
	}

	opts := solver.Options{MaxDepth: flags.MaxDepth}
	if flags.Timeout > 0 {
		token := &progress.Token{}
		timer := time.AfterFunc(flags.Timeout, token.Cancel)
		defer timer.Stop()
		opts.Cancel = token
	}

	result, err := solver.Run(flags.Algorithm, board, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", requestID, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		RequestID string        `json:"requestId"`
		Result    solver.Result `json:"result"`
	}{requestID, result})
}

