// Package backtrack implements the exhaustive-search solving engine:
// depth-first trial assignment over the empty cells in increasing linear
// index order, with an explicit history stack for chronological undo.
// Candidate sets are frozen once the search begins; the stack tracks which
// guesses remain untried at every depth.
package backtrack

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/genghk79/Sudoku-Solver-2/pkg/board"
)

// Backtracking engine errors.
var (
	// ErrBoardFull means forward-fill was asked to fill a board with no
	// empty cells left.
	ErrBoardFull = errors.New("cannot forward-fill a full board")

	// ErrDeadEnd means an empty cell had no candidates when forward-fill
	// reached it. The cell was unusable before the search even tried it.
	ErrDeadEnd = errors.New("empty cell has no candidates")

	// ErrExhaustedSearch means takeback emptied the entire history stack:
	// every assignment reachable from the given state was tried and failed,
	// so the puzzle has no solution.
	ErrExhaustedSearch = errors.New("search exhausted without finding a solution")
)

// progressInterval is how many search steps pass between progress reports.
const progressInterval = 1000

// historyEntry records one trial assignment: the cell's linear index, the
// guesses not yet tried there, and the guess currently written. Remaining
// guesses are kept in descending order and popped from the end, so trials
// run ascending 1 through 9.
type historyEntry struct {
	index     int
	remaining []uint8
	guess     uint8
}

// Engine drives the search over a single board. The history stack is owned
// exclusively by the engine and always lists, in order, the originally-empty
// cells currently holding a trial answer.
type Engine struct {
	board   *board.Board
	history []historyEntry
	steps   uint64
	log     *zap.Logger
}

// New creates a backtracking engine for b. A nil logger disables logging.
func New(b *board.Board, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{board: b, log: log}
}

// Steps returns the number of fill and takeback operations performed so far.
func (e *Engine) Steps() uint64 {
	return e.steps
}

// ForwardFill locates the next empty cell past the top of the stack, writes
// its smallest untried candidate as a trial answer, and pushes a history
// entry. Returns the filled cell's coordinates.
func (e *Engine) ForwardFill() (int, int, error) {
	idx := 0
	if n := len(e.history); n > 0 {
		idx = e.history[n-1].index + 1
	}
	for idx < 81 && e.board.Answer(idx/9, idx%9) != 0 {
		idx++
	}
	if idx == 81 {
		return 0, 0, ErrBoardFull
	}
	row, col := idx/9, idx%9

	// The candidate set was fixed before the search started; an empty set
	// here means the clues already ruled out every digit for this cell.
	remaining := e.board.CandidatesAt(row, col).Descending()
	if len(remaining) == 0 {
		return 0, 0, fmt.Errorf("cell (%d,%d): %w", row, col, ErrDeadEnd)
	}
	guess := remaining[len(remaining)-1]
	remaining = remaining[:len(remaining)-1]

	e.history = append(e.history, historyEntry{index: idx, remaining: remaining, guess: guess})
	e.board.SetAnswerRaw(row, col, guess)
	return row, col, nil
}

// TakebackAndFill pops exhausted entries off the stack, clearing their cells,
// until it finds one with an untried guess left; that guess is written in
// place of the old one. Returns the refilled cell's coordinates, or
// ErrExhaustedSearch when the stack runs out.
func (e *Engine) TakebackAndFill() (int, int, error) {
	for len(e.history) > 0 && len(e.history[len(e.history)-1].remaining) == 0 {
		top := e.history[len(e.history)-1]
		e.board.SetAnswerRaw(top.index/9, top.index%9, 0)
		e.history = e.history[:len(e.history)-1]
	}
	if len(e.history) == 0 {
		return 0, 0, ErrExhaustedSearch
	}

	top := &e.history[len(e.history)-1]
	top.guess = top.remaining[len(top.remaining)-1]
	top.remaining = top.remaining[:len(top.remaining)-1]
	row, col := top.index/9, top.index%9
	e.board.SetAnswerRaw(row, col, top.guess)
	return row, col, nil
}

// Solve runs the search to completion: forward-fill while the just-filled
// cell stays conflict-free, take back while it conflicts, until every cell
// is answered with no conflicts anywhere. Runs synchronously with no
// internal cancellation; a hopeless puzzle ends in ErrExhaustedSearch.
func (e *Engine) Solve() error {
	lastIdx := -1
	for idx := 80; idx >= 0; idx-- {
		if e.board.Answer(idx/9, idx%9) == 0 {
			lastIdx = idx
			break
		}
	}
	if lastIdx < 0 {
		if e.board.IsComplete() {
			return nil
		}
		return fmt.Errorf("board is full but conflicted: %w", ErrBoardFull)
	}

	e.log.Info("backtracking solver started",
		zap.Uint64("solution_space", e.board.SolutionSpace()))
	start := time.Now()

	for !e.board.IsComplete() {
		row, col, err := e.ForwardFill()
		if err != nil {
			return err
		}

		for !e.board.HasConflict(row, col) && e.board.Answer(lastIdx/9, lastIdx%9) == 0 {
			row, col, err = e.ForwardFill()
			if err != nil {
				return err
			}
			e.step(start)
		}

		for e.board.HasConflict(row, col) {
			row, col, err = e.TakebackAndFill()
			if err != nil {
				return err
			}
			e.step(start)
		}
	}

	e.log.Info("solution found",
		zap.Uint64("steps", e.steps),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// step counts one fill or takeback and periodically reports scan rate and
// the size of the remaining search space.
func (e *Engine) step(start time.Time) {
	e.steps++
	if e.steps%progressInterval != 0 {
		return
	}
	elapsed := time.Since(start)
	e.log.Info("search progress",
		zap.Uint64("steps", e.steps),
		zap.Duration("elapsed", elapsed),
		zap.Float64("steps_per_sec", float64(e.steps)/elapsed.Seconds()),
		zap.Uint64("solution_space", e.board.SolutionSpace()))
}
