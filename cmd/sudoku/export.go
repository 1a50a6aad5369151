// Export command writes a stored puzzle back to the text file format.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <puzzle-id>",
	Short: "Write a stored puzzle to a text file",
	Long: `Export writes a library puzzle to a file in the comma-separated
text format, the same format 'sudoku add' reads.

Example:
  sudoku export 0198d2f0-1c3a-7c4e-b2ab-3f2e6f0a9b1c --out puzzle.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (required)")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	p, err := store.Get(args[0])
	if err != nil {
		return err
	}

	if err := writeGridFile(exportOut, p.Grid); err != nil {
		return err
	}
	fmt.Printf("Exported puzzle %s to %s\n", p.ID, exportOut)
	return nil
}
