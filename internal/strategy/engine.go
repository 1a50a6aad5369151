// Package strategy implements the constraint-propagation solving engine.
// It applies logical deduction rules against a board until the puzzle is
// solved, no rule makes progress, or a contradiction surfaces. The engine
// never guesses; every committed answer is forced by the current state.
package strategy

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/genghk79/Sudoku-Solver-2/pkg/board"
)

// Strategy engine errors.
var (
	// ErrContradiction means a deduction or the given clues produced a
	// conflicting unit or a dead-end cell. The puzzle is unsolvable as
	// given, or a rule committed an unsound entry.
	ErrContradiction = errors.New("board contains a contradiction")

	// ErrInsufficientStrategy means a full rule cycle made no progress on
	// an incomplete board. The implemented rules cannot crack the puzzle.
	ErrInsufficientStrategy = errors.New("strategies stalled before completing the puzzle")
)

// Engine drives the deduction rules over a single board. It owns the board
// exclusively for the duration of Solve.
type Engine struct {
	board *board.Board
	log   *zap.Logger
}

// New creates a strategy engine for b. A nil logger disables logging.
func New(b *board.Board, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{board: b, log: log}
}

// makeEntry commits a deduced answer and verifies the commit did not create
// a conflict. A conflict here means the deduction was unsound given the
// current candidates: either the input puzzle is contradictory or a rule
// has a bug, so it is surfaced rather than solved around.
func (e *Engine) makeEntry(row, col int, v uint8) error {
	if err := e.board.SetAnswer(row, col, v); err != nil {
		return err
	}
	if e.board.HasConflict(row, col) {
		return fmt.Errorf("entry %d at (%d,%d) conflicts: %w", v, row, col, ErrContradiction)
	}
	return nil
}

// ApplySingles alternates the obvious-single and hidden-single rules until
// neither makes progress. The hidden scan only runs on iterations where the
// obvious scan came up empty; a committed single changes candidates
// everywhere, so the cheap rule gets first refusal each round.
func (e *Engine) ApplySingles() (bool, error) {
	progress := false
	for {
		obvious, err := e.ObviousSingles()
		if err != nil {
			return progress, err
		}
		hidden := false
		if !obvious {
			hidden, err = e.HiddenSingles()
			if err != nil {
				return progress, err
			}
		}
		if !obvious && !hidden {
			return progress, nil
		}
		progress = true
	}
}

// Solve runs the rule cycle until the puzzle completes: singles, then pairs,
// then triplets, then pointing sets, with a singles pass after each
// escalation. A cycle that makes no progress on an incomplete board stops
// with ErrInsufficientStrategy instead of spinning; a conflicted or
// dead-ended board stops with ErrContradiction.
func (e *Engine) Solve() error {
	e.log.Info("strategies solver started")
	for {
		if e.board.HasAnyConflict() {
			return fmt.Errorf("solve: %w", ErrContradiction)
		}

		progress, err := e.ApplySingles()
		if err != nil {
			return err
		}
		if e.board.IsComplete() {
			e.log.Info("puzzle solved by singles")
			return nil
		}

		if e.ObviousPairs() {
			progress = true
		}
		if e.HiddenPairs() {
			progress = true
		}
		more, err := e.ApplySingles()
		if err != nil {
			return err
		}
		progress = progress || more
		if e.board.IsComplete() {
			e.log.Info("puzzle solved after pairs")
			return nil
		}

		if e.ObviousTriplets() {
			progress = true
		}
		if e.HiddenTriplets() {
			progress = true
		}
		more, err = e.ApplySingles()
		if err != nil {
			return err
		}
		progress = progress || more
		if e.board.IsComplete() {
			e.log.Info("puzzle solved after triplets")
			return nil
		}

		if e.PointingSets() {
			progress = true
		}

		if !progress {
			if e.board.HasAnyConflict() {
				return fmt.Errorf("solve: %w", ErrContradiction)
			}
			return ErrInsufficientStrategy
		}
	}
}
