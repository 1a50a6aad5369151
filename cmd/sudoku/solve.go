// Solve command runs a solving engine against a puzzle.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genghk79/Sudoku-Solver-2/internal/backtrack"
	"github.com/genghk79/Sudoku-Solver-2/internal/strategy"
	"github.com/genghk79/Sudoku-Solver-2/pkg/board"
	"github.com/genghk79/Sudoku-Solver-2/pkg/solver"
)

var (
	solveEngine string
	solveFile   string
	solveLast   bool
	solveOut    string
)

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle-id]",
	Short: "Solve a puzzle",
	Long: `Solve runs one of the two solving engines against a puzzle.

The puzzle comes from the library (by ID or --last) or from a file; files
are imported into the library first. The "strategies" engine applies
logical deduction rules and reports failure if they are not enough; the
"backtrack" engine searches exhaustively and always finds a solution when
one exists.

Example:
  sudoku solve --last
  sudoku solve --file puzzle.txt --engine backtrack
  sudoku solve 0198d2f0-1c3a-7c4e-b2ab-3f2e6f0a9b1c --out solved.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveEngine, "engine", "", "solving engine: strategies or backtrack (default: config)")
	solveCmd.Flags().StringVar(&solveFile, "file", "", "puzzle file to solve")
	solveCmd.Flags().BoolVar(&solveLast, "last", false, "solve the last-used puzzle")
	solveCmd.Flags().StringVar(&solveOut, "out", "", "write the solved grid to this file")
}

func runSolve(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	p, err := resolvePuzzle(store, args, solveFile, solveLast)
	if err != nil {
		return err
	}

	engineName := solveEngine
	if engineName == "" {
		engineName = cfg.GetString(cfgKeyEngine)
	}

	b, err := board.FromGrid(p.Grid)
	if err != nil {
		return fmt.Errorf("populate board: %w", err)
	}

	eng, err := solver.New(engineName, b, logger)
	if err != nil {
		return err
	}

	logger.Info("solving puzzle",
		zap.String("id", p.ID),
		zap.String("engine", engineName))

	start := time.Now()
	solveErr := eng.Solve()
	elapsed := time.Since(start)

	if solveErr != nil {
		switch {
		case errors.Is(solveErr, strategy.ErrInsufficientStrategy):
			return fmt.Errorf("the strategy rules stalled before solving the puzzle; try --engine %s", solver.Backtrack)
		case errors.Is(solveErr, strategy.ErrContradiction):
			return fmt.Errorf("the puzzle is contradictory as given: %w", solveErr)
		case errors.Is(solveErr, backtrack.ErrExhaustedSearch), errors.Is(solveErr, backtrack.ErrDeadEnd):
			return fmt.Errorf("the puzzle has no solution: %w", solveErr)
		default:
			return solveErr
		}
	}

	solved := b.Grid()
	if jsonOutput {
		out, err := json.MarshalIndent(map[string]any{
			"puzzle_id":  p.ID,
			"engine":     engineName,
			"elapsed_ms": elapsed.Milliseconds(),
			"grid":       solved,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(out))
	} else {
		fmt.Print(board.Render(solved))
		fmt.Printf("\nSolved with %s in %s\n", engineName, elapsed.Round(time.Microsecond))
	}

	if solveOut != "" {
		if err := writeGridFile(solveOut, solved); err != nil {
			return err
		}
	}
	return nil
}
