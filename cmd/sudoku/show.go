// Show command renders a puzzle grid for display.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genghk79/Sudoku-Solver-2/pkg/board"
)

var (
	showFile string
	showLast bool
)

var showCmd = &cobra.Command{
	Use:   "show [puzzle-id]",
	Short: "Display a puzzle grid",
	Long: `Show renders a puzzle as a grid, with '.' for blank cells.

The puzzle comes from the library (by ID or --last) or from a file.

Example:
  sudoku show 0198d2f0-1c3a-7c4e-b2ab-3f2e6f0a9b1c
  sudoku show --file puzzle.txt
  sudoku show --last`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showFile, "file", "", "puzzle file to display")
	showCmd.Flags().BoolVar(&showLast, "last", false, "display the last-used puzzle")
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	p, err := resolvePuzzle(store, args, showFile, showLast)
	if err != nil {
		return err
	}

	if p.Name != "" {
		fmt.Println(p.Name)
	}
	fmt.Print(board.Render(p.Grid))
	return nil
}
