// Package solver selects between the two solving engines by name. The
// engines are mutually exclusive: a board is handed to exactly one of them,
// and neither falls back to the other.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/genghk79/Sudoku-Solver-2/internal/backtrack"
	"github.com/genghk79/Sudoku-Solver-2/internal/strategy"
	"github.com/genghk79/Sudoku-Solver-2/pkg/board"
)

// Engine is a solving engine bound to a board. Solve runs to completion or
// to a fatal error; the board is left in whatever state the engine reached.
type Engine interface {
	Solve() error
}

// Engine names accepted by New.
const (
	// Strategies applies logical deduction rules and never guesses.
	Strategies = "strategies"
	// Backtrack searches exhaustively with chronological undo.
	Backtrack = "backtrack"
)

// ErrUnknownEngine is returned by New for an unrecognized engine name.
var ErrUnknownEngine = errors.New("unknown engine")

// Names returns the valid engine names for help text and error messages.
func Names() []string {
	return []string{Strategies, Backtrack}
}

// New creates the named engine for b. A nil logger disables logging.
func New(name string, b *board.Board, log *zap.Logger) (Engine, error) {
	switch name {
	case Strategies:
		return strategy.New(b, log), nil
	case Backtrack:
		return backtrack.New(b, log), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownEngine, name, strings.Join(Names(), ", "))
	}
}
