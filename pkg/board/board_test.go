package board

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardIsBlank(t *testing.T) {
	b := New()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			assert.Equal(t, uint8(0), b.Answer(row, col))
			assert.Equal(t, AllCandidates, b.CandidatesAt(row, col))
		}
	}
	assert.False(t, b.HasAnyConflict())
	assert.False(t, b.IsComplete())
}

func TestIndexing(t *testing.T) {
	assert.Equal(t, 0, Index(0, 0))
	assert.Equal(t, 80, Index(8, 8))
	assert.Equal(t, 13, Index(1, 4))

	assert.Equal(t, 0, BoxIndex(0, 0))
	assert.Equal(t, 1, BoxIndex(0, 3))
	assert.Equal(t, 4, BoxIndex(4, 4))
	assert.Equal(t, 8, BoxIndex(8, 8))
}

func TestUnitCoords(t *testing.T) {
	row := RowCoords(3)
	assert.Equal(t, Coord{Row: 3, Col: 0}, row[0])
	assert.Equal(t, Coord{Row: 3, Col: 8}, row[8])

	col := ColCoords(7)
	assert.Equal(t, Coord{Row: 0, Col: 7}, col[0])
	assert.Equal(t, Coord{Row: 8, Col: 7}, col[8])

	box := BoxCoords(4)
	assert.Equal(t, Coord{Row: 3, Col: 3}, box[0])
	assert.Equal(t, Coord{Row: 5, Col: 5}, box[8])
}

func TestSetAnswerPropagatesRemoval(t *testing.T) {
	b := New()
	require.NoError(t, b.SetAnswer(0, 0, 5))

	assert.Equal(t, uint8(5), b.Answer(0, 0))
	assert.Equal(t, Candidates(0), b.CandidatesAt(0, 0))

	// Row, column, and box peers all lose 5.
	assert.False(t, b.CandidatesAt(0, 8).Has(5))
	assert.False(t, b.CandidatesAt(8, 0).Has(5))
	assert.False(t, b.CandidatesAt(2, 2).Has(5))

	// An unrelated cell keeps it.
	assert.True(t, b.CandidatesAt(4, 4).Has(5))
}

func TestSetAnswerRejectsOutOfRange(t *testing.T) {
	b := New()
	assert.ErrorIs(t, b.SetAnswer(0, 0, 0), ErrInvalidValue)
	assert.ErrorIs(t, b.SetAnswer(0, 0, 10), ErrInvalidValue)
}

func TestSetAnswerRawLeavesCandidatesAlone(t *testing.T) {
	b := New()
	b.SetAnswerRaw(4, 4, 7)
	assert.Equal(t, uint8(7), b.Answer(4, 4))
	assert.Equal(t, AllCandidates, b.CandidatesAt(4, 4))
	assert.True(t, b.CandidatesAt(4, 5).Has(7), "peers keep their candidates")

	b.SetAnswerRaw(4, 4, 0)
	assert.Equal(t, uint8(0), b.Answer(4, 4))
	assert.Equal(t, AllCandidates, b.CandidatesAt(4, 4))
}

func TestRemoveCandidate(t *testing.T) {
	b := New()
	assert.True(t, b.RemoveCandidate(2, 3, 6))
	assert.False(t, b.CandidatesAt(2, 3).Has(6))
	assert.False(t, b.RemoveCandidate(2, 3, 6), "second removal reports no change")
}

func TestSetCandidates(t *testing.T) {
	b := New()
	assert.True(t, b.SetCandidates(0, 0, Of(4, 8)))
	assert.Equal(t, Of(4, 8), b.CandidatesAt(0, 0))
	assert.False(t, b.SetCandidates(0, 0, Of(4, 8)), "identical set reports no change")
}

func TestHasConflict(t *testing.T) {
	b := New()
	b.SetAnswerRaw(0, 0, 5)
	b.SetAnswerRaw(0, 8, 5)

	assert.True(t, b.HasConflict(0, 0), "row duplicate")
	assert.True(t, b.HasConflict(0, 8))
	assert.True(t, b.HasConflict(8, 0), "column shares cell (0,0) but not the duplicate")
	assert.False(t, b.HasConflict(8, 8))

	b.SetAnswerRaw(0, 8, 0)
	assert.False(t, b.HasConflict(0, 0))

	b.SetAnswerRaw(2, 1, 5)
	assert.True(t, b.HasConflict(1, 1), "box duplicate")
}

func TestHasAnyConflict(t *testing.T) {
	b := New()
	assert.False(t, b.HasAnyConflict())

	t.Run("duplicate in a column", func(t *testing.T) {
		b := New()
		b.SetAnswerRaw(1, 4, 3)
		b.SetAnswerRaw(7, 4, 3)
		assert.True(t, b.HasAnyConflict())
	})

	t.Run("dead-end cell", func(t *testing.T) {
		b := New()
		b.SetCandidates(5, 5, 0)
		assert.True(t, b.HasAnyConflict(), "unanswered cell with no candidates")
	})
}

func TestIsComplete(t *testing.T) {
	g, err := ParseGrid(gridReader(solvedGridText))
	require.NoError(t, err)

	b := New()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			b.SetAnswerRaw(row, col, g[row][col])
		}
	}
	assert.True(t, b.IsComplete())

	// Introduce a duplicate: still full, no longer complete.
	b.SetAnswerRaw(0, 0, b.Answer(0, 1))
	assert.True(t, b.HasAnyConflict())
	assert.False(t, b.IsComplete())
}

func TestSolutionSpace(t *testing.T) {
	t.Run("blank board saturates", func(t *testing.T) {
		assert.Equal(t, uint64(math.MaxUint64), New().SolutionSpace())
	})

	t.Run("dead end is zero", func(t *testing.T) {
		b := New()
		b.SetCandidates(0, 0, 0)
		assert.Equal(t, uint64(0), b.SolutionSpace())
	})

	t.Run("product over unanswered cells", func(t *testing.T) {
		b := New()
		for row := 0; row < 9; row++ {
			for col := 0; col < 9; col++ {
				b.SetAnswerRaw(row, col, 1)
			}
		}
		b.SetAnswerRaw(0, 0, 0)
		b.SetAnswerRaw(0, 1, 0)
		b.SetCandidates(0, 0, Of(4, 8))
		b.SetCandidates(0, 1, Of(2, 4, 8))
		assert.Equal(t, uint64(6), b.SolutionSpace())
	})

	t.Run("full board is one", func(t *testing.T) {
		b := New()
		for row := 0; row < 9; row++ {
			for col := 0; col < 9; col++ {
				b.SetAnswerRaw(row, col, 1)
			}
		}
		assert.Equal(t, uint64(1), b.SolutionSpace())
	})
}

func TestFromGrid(t *testing.T) {
	t.Run("populates through the clue-commit path", func(t *testing.T) {
		var g Grid
		g[0][0] = 5
		b, err := FromGrid(g)
		require.NoError(t, err)
		assert.Equal(t, uint8(5), b.Answer(0, 0))
		assert.False(t, b.CandidatesAt(0, 5).Has(5), "clue propagated across the row")
	})

	t.Run("rejects out-of-range entries", func(t *testing.T) {
		var g Grid
		g[3][3] = 12
		_, err := FromGrid(g)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("round-trips through Grid", func(t *testing.T) {
		g, err := ParseGrid(gridReader(easyGridText))
		require.NoError(t, err)
		b, err := FromGrid(g)
		require.NoError(t, err)
		assert.Equal(t, g, b.Grid())
	})
}
