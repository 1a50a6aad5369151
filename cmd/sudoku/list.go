// List command prints the puzzle library contents.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List puzzles in the library",
	Long: `List prints every puzzle in the library, newest first.

Example:
  sudoku list
  sudoku list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	metas, err := store.List()
	if err != nil {
		return fmt.Errorf("list puzzles: %w", err)
	}

	if jsonOutput {
		type entry struct {
			PuzzleID  string    `json:"puzzle_id"`
			Name      string    `json:"name"`
			CreatedAt time.Time `json:"created_at"`
			UpdatedAt time.Time `json:"updated_at"`
		}
		entries := make([]entry, 0, len(metas))
		for _, m := range metas {
			entries = append(entries, entry{m.ID, m.Name, m.CreatedAt, m.UpdatedAt})
		}
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal puzzles: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(metas) == 0 {
		fmt.Println("No puzzles in the library.")
		return nil
	}
	for _, m := range metas {
		fmt.Printf("%s  %s  %s\n", m.ID, m.CreatedAt.Format(time.RFC3339), m.Name)
	}
	return nil
}
