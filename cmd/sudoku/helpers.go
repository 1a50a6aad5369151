// Shared helpers for sudoku CLI commands: library access, puzzle
// resolution, and grid file I/O.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/genghk79/Sudoku-Solver-2/internal/library"
	"github.com/genghk79/Sudoku-Solver-2/pkg/board"
)

// openStore attaches the puzzle library under the resolved data directory.
// The caller must defer store.Detach().
func openStore() (*library.Store, error) {
	store := library.NewStore()
	if err := store.Attach(library.Config{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach library: %w", err)
	}
	return store, nil
}

// resolvePuzzle loads the puzzle a command names: an explicit library ID,
// a --file path, or --last for the previously used puzzle. Files are
// imported into the library; whatever was resolved becomes the new
// last-used puzzle.
func resolvePuzzle(store *library.Store, args []string, file string, last bool) (library.Puzzle, error) {
	switch {
	case file != "":
		return importGridFile(store, file, "")
	case last:
		p, err := store.LastUsed()
		if errors.Is(err, library.ErrNoLastUsed) {
			return library.Puzzle{}, fmt.Errorf("no previous puzzle; import one with --file or 'sudoku add'")
		}
		return p, err
	case len(args) == 1:
		p, err := store.Get(args[0])
		if err != nil {
			return library.Puzzle{}, err
		}
		if err := store.SetLastUsed(p.ID); err != nil {
			return library.Puzzle{}, err
		}
		return p, nil
	default:
		return library.Puzzle{}, fmt.Errorf("specify a puzzle id, --file, or --last")
	}
}

// importGridFile reads a puzzle file, saves it to the library, and marks it
// last-used. The name defaults to the file's base name.
func importGridFile(store *library.Store, path, name string) (library.Puzzle, error) {
	grid, err := readGridFile(path)
	if err != nil {
		return library.Puzzle{}, err
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	p := library.Puzzle{Name: name, Grid: grid}
	p.ID, err = store.Save(p)
	if err != nil {
		return library.Puzzle{}, err
	}
	if err := store.SetLastUsed(p.ID); err != nil {
		return library.Puzzle{}, err
	}
	return p, nil
}

// readGridFile parses a puzzle file in the comma-separated text format.
func readGridFile(path string) (board.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return board.Grid{}, fmt.Errorf("open puzzle file: %w", err)
	}
	defer f.Close()

	grid, err := board.ParseGrid(f)
	if err != nil {
		return board.Grid{}, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

// writeGridFile writes a grid in the comma-separated text format.
func writeGridFile(path string, g board.Grid) error {
	if err := os.WriteFile(path, []byte(g.String()), 0o644); err != nil {
		return fmt.Errorf("write puzzle file: %w", err)
	}
	return nil
}
