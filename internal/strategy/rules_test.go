package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genghk79/Sudoku-Solver-2/pkg/board"
)

func newEngine(t *testing.T, b *board.Board) *Engine {
	t.Helper()
	return New(b, nil)
}

func TestObviousSingles(t *testing.T) {
	t.Run("commits a lone candidate", func(t *testing.T) {
		b := board.New()
		b.SetCandidates(3, 4, board.Of(7))

		e := newEngine(t, b)
		progress, err := e.ObviousSingles()
		require.NoError(t, err)
		assert.True(t, progress)
		assert.Equal(t, uint8(7), b.Answer(3, 4))
		assert.False(t, b.CandidatesAt(3, 5).Has(7), "commit propagated")
	})

	t.Run("idempotent", func(t *testing.T) {
		b := board.New()
		b.SetCandidates(3, 4, board.Of(7))

		e := newEngine(t, b)
		_, err := e.ObviousSingles()
		require.NoError(t, err)

		progress, err := e.ObviousSingles()
		require.NoError(t, err)
		assert.False(t, progress, "second call finds nothing to do")
	})

	t.Run("never fires against a fully given row", func(t *testing.T) {
		// One row fully given; no other cell may be claimed as a single,
		// since every unanswered cell still has several candidates.
		var g board.Grid
		for col := 0; col < 9; col++ {
			g[0][col] = uint8(col + 1)
		}
		b, err := board.FromGrid(g)
		require.NoError(t, err)

		e := newEngine(t, b)
		progress, err := e.ApplySingles()
		require.NoError(t, err)
		assert.False(t, progress)
		assert.Equal(t, g, b.Grid(), "no cell was touched")
	})
}

func TestHiddenSingles(t *testing.T) {
	// Digit 5 appears in only one cell of row 0.
	b := board.New()
	for col := 1; col < 9; col++ {
		b.RemoveCandidate(0, col, 5)
	}
	e := newEngine(t, b)
	progress, err := e.HiddenSingles()
	require.NoError(t, err)
	assert.True(t, progress)
	assert.Equal(t, uint8(5), b.Answer(0, 0))

	progress, err = e.HiddenSingles()
	require.NoError(t, err)
	assert.False(t, progress, "idempotent")
}

func TestObviousPairs(t *testing.T) {
	b := board.New()
	b.SetCandidates(0, 0, board.Of(4, 8))
	b.SetCandidates(0, 1, board.Of(4, 8))
	b.SetCandidates(0, 2, board.Of(2, 4, 8))

	e := newEngine(t, b)
	assert.True(t, e.ObviousPairs())

	// The pair is stripped from the rest of row 0 and box 0.
	assert.Equal(t, board.Of(2), b.CandidatesAt(0, 2))
	assert.False(t, b.CandidatesAt(0, 7).Has(4))
	assert.False(t, b.CandidatesAt(0, 7).Has(8))

	// The pair cells themselves are untouched.
	assert.Equal(t, board.Of(4, 8), b.CandidatesAt(0, 0))
	assert.Equal(t, board.Of(4, 8), b.CandidatesAt(0, 1))

	assert.False(t, e.ObviousPairs(), "idempotent")

	// Follow-up: the exposed single commits.
	progress, err := e.ObviousSingles()
	require.NoError(t, err)
	assert.True(t, progress)
	assert.Equal(t, uint8(2), b.Answer(0, 2))
}

func TestHiddenPairs(t *testing.T) {
	// Digits 4 and 8 appear only in cells (0,0) and (0,1) of row 0; the two
	// cells carry extra candidates that must be cleared.
	b := board.New()
	for col := 2; col < 9; col++ {
		b.RemoveCandidate(0, col, 4)
		b.RemoveCandidate(0, col, 8)
	}

	e := newEngine(t, b)
	assert.True(t, e.HiddenPairs())
	assert.Equal(t, board.Of(4, 8), b.CandidatesAt(0, 0))
	assert.Equal(t, board.Of(4, 8), b.CandidatesAt(0, 1))

	assert.False(t, e.HiddenPairs(), "idempotent")
}

func TestObviousTriplets(t *testing.T) {
	b := board.New()
	b.SetCandidates(0, 0, board.Of(1, 2))
	b.SetCandidates(0, 1, board.Of(2, 3))
	b.SetCandidates(0, 2, board.Of(1, 3))

	e := newEngine(t, b)
	assert.True(t, e.ObviousTriplets())

	for col := 3; col < 9; col++ {
		cs := b.CandidatesAt(0, col)
		assert.False(t, cs.Has(1) || cs.Has(2) || cs.Has(3),
			"triplet digits removed from (0,%d)", col)
	}
	assert.Equal(t, board.Of(1, 2), b.CandidatesAt(0, 0), "triplet cells untouched")

	assert.False(t, e.ObviousTriplets(), "idempotent")
}

func TestHiddenTriplets(t *testing.T) {
	// Digits 1, 2, 3 confined to cells (0,0), (0,1), (0,2) of row 0, with
	// each digit present in at least two of them.
	b := board.New()
	for col := 3; col < 9; col++ {
		for _, v := range []uint8{1, 2, 3} {
			b.RemoveCandidate(0, col, v)
		}
	}
	// Stagger the occurrences so each digit shows up exactly twice.
	b.RemoveCandidate(0, 0, 1)
	b.RemoveCandidate(0, 1, 2)
	b.RemoveCandidate(0, 2, 3)

	e := newEngine(t, b)
	assert.True(t, e.HiddenTriplets())

	assert.Equal(t, board.Of(2, 3), b.CandidatesAt(0, 0))
	assert.Equal(t, board.Of(1, 3), b.CandidatesAt(0, 1))
	assert.Equal(t, board.Of(1, 2), b.CandidatesAt(0, 2))

	assert.False(t, e.HiddenTriplets(), "idempotent")
}

func TestHiddenTripletsRequiresThreeCells(t *testing.T) {
	// Digits 1, 2, 3 spread across four cells: each digit is scarce, but
	// the union of contributing cells has size four, so nothing may fire.
	b := board.New()
	for col := 4; col < 9; col++ {
		for _, v := range []uint8{1, 2, 3} {
			b.RemoveCandidate(0, col, v)
		}
	}
	b.RemoveCandidate(0, 0, 1)
	b.RemoveCandidate(0, 1, 1)
	b.RemoveCandidate(0, 2, 2)
	b.RemoveCandidate(0, 3, 2)
	b.RemoveCandidate(0, 0, 3)
	b.RemoveCandidate(0, 3, 3)
	// Occurrences: 1 in cols 2,3; 2 in cols 0,1; 3 in cols 1,2.
	// Union spans cols 0-3.

	e := newEngine(t, b)
	assert.False(t, e.HiddenTriplets())
	assert.Equal(t, board.AllCandidates.Remove(1).Remove(3), b.CandidatesAt(0, 0))
}

func TestPointingSets(t *testing.T) {
	t.Run("row confined to box clears rest of box", func(t *testing.T) {
		// In row 0, digit 5 survives only in box 0.
		b := board.New()
		for col := 3; col < 9; col++ {
			b.RemoveCandidate(0, col, 5)
		}

		e := newEngine(t, b)
		assert.True(t, e.PointingSets())

		for _, c := range board.BoxCoords(0) {
			if c.Row == 0 {
				assert.True(t, b.CandidatesAt(c.Row, c.Col).Has(5), "(0,%d) keeps 5", c.Col)
				continue
			}
			assert.False(t, b.CandidatesAt(c.Row, c.Col).Has(5), "(%d,%d) loses 5", c.Row, c.Col)
		}
	})

	t.Run("box confined to column clears rest of column", func(t *testing.T) {
		// In box 0, digit 7 survives only in column 1.
		b := board.New()
		for _, c := range board.BoxCoords(0) {
			if c.Col != 1 {
				b.RemoveCandidate(c.Row, c.Col, 7)
			}
		}

		e := newEngine(t, b)
		assert.True(t, e.PointingSets())

		for row := 3; row < 9; row++ {
			assert.False(t, b.CandidatesAt(row, 1).Has(7), "(%d,1) loses 7", row)
		}
		assert.True(t, b.CandidatesAt(0, 1).Has(7), "box cells keep 7")
	})

	t.Run("idempotent", func(t *testing.T) {
		b := board.New()
		for col := 3; col < 9; col++ {
			b.RemoveCandidate(0, col, 5)
		}
		e := newEngine(t, b)
		assert.True(t, e.PointingSets())
		assert.False(t, e.PointingSets())
	})
}
