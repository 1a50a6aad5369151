// Delete command removes a puzzle from the library.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <puzzle-id>",
	Short: "Remove a puzzle from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted puzzle: %s\n", args[0])
		return nil
	},
}
