// Add command imports a puzzle file into the library.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	addFile string
	addName string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Import a puzzle file into the library",
	Long: `Add imports a puzzle from a text file into the puzzle library and
marks it as the last-used puzzle.

The file must contain nine lines of nine comma-separated digits, with 0
marking a blank cell.

Example:
  sudoku add --file puzzle.txt
  sudoku add --file puzzle.txt --name "evil one"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addFile, "file", "", "puzzle file to import (required)")
	addCmd.Flags().StringVar(&addName, "name", "", "name for the puzzle (default: file name)")
	_ = addCmd.MarkFlagRequired("file")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	p, err := importGridFile(store, addFile, addName)
	if err != nil {
		return err
	}
	logger.Info("puzzle imported", zap.String("id", p.ID), zap.String("name", p.Name))

	if jsonOutput {
		out, err := json.MarshalIndent(map[string]string{
			"puzzle_id": p.ID,
			"name":      p.Name,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal puzzle: %w", err)
		}
		fmt.Println(string(out))
	} else {
		fmt.Printf("Added puzzle: %s\n", p.ID)
	}
	return nil
}
