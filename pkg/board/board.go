// Package board models the state of a 9x9 Sudoku grid: one answer and one
// candidate set per cell, with mutation primitives for both solving modes.
// The board knows nothing about solving strategy; engines drive it through
// SetAnswer (clue-commit with candidate propagation) or SetAnswerRaw
// (backtracking writes that leave every candidate set alone).
package board

import (
	"errors"
	"math"
)

// Board errors.
var (
	ErrInvalidValue    = errors.New("value must be between 1 and 9")
	ErrMalformedPuzzle = errors.New("puzzle must be a 9x9 grid of digits 0-9")
)

// Coord addresses a cell by row and column, both 0-8.
type Coord struct {
	Row, Col int
}

// Cell is one of the 81 grid cells. Answer is 0 while unanswered.
// Once SetAnswer commits an answer the candidate set is empty; during
// backtracking the answer is written directly and Candidates keeps the
// set it had when the search began.
type Cell struct {
	Answer     uint8
	Candidates Candidates
}

// Board holds the 81 cells in row-major order.
type Board struct {
	cells [81]Cell
}

// Index returns the linear index row*9+col.
func Index(row, col int) int {
	return row*9 + col
}

// BoxIndex returns the 3x3 box number (0-8) containing the cell.
func BoxIndex(row, col int) int {
	return 3*(row/3) + col/3
}

// RowCoords returns the nine coordinates of row n in column order.
func RowCoords(n int) [9]Coord {
	var cs [9]Coord
	for col := 0; col < 9; col++ {
		cs[col] = Coord{Row: n, Col: col}
	}
	return cs
}

// ColCoords returns the nine coordinates of column n in row order.
func ColCoords(n int) [9]Coord {
	var cs [9]Coord
	for row := 0; row < 9; row++ {
		cs[row] = Coord{Row: row, Col: n}
	}
	return cs
}

// BoxCoords returns the nine coordinates of box n, rows first.
func BoxCoords(n int) [9]Coord {
	var cs [9]Coord
	baseRow, baseCol := 3*(n/3), 3*(n%3)
	for i := 0; i < 9; i++ {
		cs[i] = Coord{Row: baseRow + i/3, Col: baseCol + i%3}
	}
	return cs
}

// New creates a blank board: every cell unanswered with all nine candidates.
func New() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i].Candidates = AllCandidates
	}
	return b
}

// FromGrid creates a board populated from g. Every non-zero entry is
// committed through SetAnswer, so candidate propagation happens exactly as
// it does for solver-committed answers. Entries above 9 are rejected.
func FromGrid(g Grid) (*Board, error) {
	b := New()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			v := g[row][col]
			if v == 0 {
				continue
			}
			if err := b.SetAnswer(row, col, v); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Answer returns the cell's answer, 0 while unanswered.
func (b *Board) Answer(row, col int) uint8 {
	return b.cells[Index(row, col)].Answer
}

// CandidatesAt returns the cell's candidate set.
func (b *Board) CandidatesAt(row, col int) Candidates {
	return b.cells[Index(row, col)].Candidates
}

// SetAnswer commits v as the cell's answer, clears the cell's candidate set,
// and removes v from the candidate set of every cell sharing the row, column,
// or box. This is the clue-commit path used for initial population and for
// propagation-confirmed answers.
func (b *Board) SetAnswer(row, col int, v uint8) error {
	if v < 1 || v > 9 {
		return ErrInvalidValue
	}
	cell := &b.cells[Index(row, col)]
	cell.Answer = v
	cell.Candidates = 0
	for _, c := range RowCoords(row) {
		b.RemoveCandidate(c.Row, c.Col, v)
	}
	for _, c := range ColCoords(col) {
		b.RemoveCandidate(c.Row, c.Col, v)
	}
	for _, c := range BoxCoords(BoxIndex(row, col)) {
		b.RemoveCandidate(c.Row, c.Col, v)
	}
	return nil
}

// SetCandidates replaces the cell's candidate set wholesale. Used by the
// hidden pair and triplet rules to shrink a set without touching the answer.
// Reports whether the set actually changed.
func (b *Board) SetCandidates(row, col int, cs Candidates) bool {
	cell := &b.cells[Index(row, col)]
	if cell.Candidates == cs {
		return false
	}
	cell.Candidates = cs
	return true
}

// RemoveCandidate discards v from the cell's candidate set. Reports whether
// v was present; removing an absent value is a no-op, not an error.
func (b *Board) RemoveCandidate(row, col int, v uint8) bool {
	cell := &b.cells[Index(row, col)]
	if !cell.Candidates.Has(v) {
		return false
	}
	cell.Candidates = cell.Candidates.Remove(v)
	return true
}

// SetAnswerRaw writes (or clears, when v is 0) the cell's answer without
// touching any candidate set anywhere. This is the only mutation the
// backtracking engine performs: candidate sets are frozen once the search
// begins, and remaining guesses live in the engine's own history.
func (b *Board) SetAnswerRaw(row, col int, v uint8) {
	b.cells[Index(row, col)].Answer = v
}

// HasConflict reports whether the row, column, or box containing the cell
// holds the same non-zero answer more than once anywhere within it.
func (b *Board) HasConflict(row, col int) bool {
	return b.unitHasDuplicate(RowCoords(row)) ||
		b.unitHasDuplicate(ColCoords(col)) ||
		b.unitHasDuplicate(BoxCoords(BoxIndex(row, col)))
}

// HasAnyConflict reports whether any row, column, or box holds a duplicate
// answer, or any unanswered cell has run out of candidates (a dead end under
// propagation semantics).
func (b *Board) HasAnyConflict() bool {
	for n := 0; n < 9; n++ {
		if b.unitHasDuplicate(RowCoords(n)) ||
			b.unitHasDuplicate(ColCoords(n)) ||
			b.unitHasDuplicate(BoxCoords(n)) {
			return true
		}
	}
	for i := range b.cells {
		if b.cells[i].Answer == 0 && b.cells[i].Candidates == 0 {
			return true
		}
	}
	return false
}

// IsComplete reports whether every cell is answered and no conflict exists.
func (b *Board) IsComplete() bool {
	for i := range b.cells {
		if b.cells[i].Answer == 0 {
			return false
		}
	}
	return !b.HasAnyConflict()
}

// SolutionSpace returns the product of candidate-set sizes over all
// unanswered cells, a rough measure of how much search space remains.
// Returns 0 when a dead end exists, 1 for a full board, and saturates at
// MaxUint64 instead of overflowing.
func (b *Board) SolutionSpace() uint64 {
	space := uint64(1)
	for i := range b.cells {
		if b.cells[i].Answer != 0 {
			continue
		}
		n := uint64(b.cells[i].Candidates.Count())
		if n == 0 {
			return 0
		}
		if space > math.MaxUint64/n {
			return math.MaxUint64
		}
		space *= n
	}
	return space
}

// Grid snapshots the current answers in row-major order, 0 for unanswered.
func (b *Board) Grid() Grid {
	var g Grid
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			g[row][col] = b.cells[Index(row, col)].Answer
		}
	}
	return g
}

func (b *Board) unitHasDuplicate(coords [9]Coord) bool {
	var seen [10]uint8
	for _, c := range coords {
		v := b.cells[Index(c.Row, c.Col)].Answer
		if v == 0 {
			continue
		}
		seen[v]++
		if seen[v] > 1 {
			return true
		}
	}
	return false
}
