package strategy

import (
	"math/bits"

	"go.uber.org/zap"

	"github.com/genghk79/Sudoku-Solver-2/pkg/board"
)

// allUnits returns the 27 units a solved board must satisfy: nine rows,
// nine columns, nine boxes, in that order.
func allUnits() [][9]board.Coord {
	units := make([][9]board.Coord, 0, 27)
	for n := 0; n < 9; n++ {
		units = append(units, board.RowCoords(n))
	}
	for n := 0; n < 9; n++ {
		units = append(units, board.ColCoords(n))
	}
	for n := 0; n < 9; n++ {
		units = append(units, board.BoxCoords(n))
	}
	return units
}

// cellUnits returns the row, column, and box containing the cell.
func cellUnits(row, col int) [3][9]board.Coord {
	return [3][9]board.Coord{
		board.RowCoords(row),
		board.ColCoords(col),
		board.BoxCoords(board.BoxIndex(row, col)),
	}
}

// positionMasks returns, for each digit, a bitmask of unit positions (0-8)
// whose candidate set contains that digit. The masks drive the hidden-pair
// and hidden-triplet scarcity checks.
func (e *Engine) positionMasks(unit [9]board.Coord) [10]uint16 {
	var pos [10]uint16
	for p, c := range unit {
		cs := e.board.CandidatesAt(c.Row, c.Col)
		for v := uint8(1); v <= 9; v++ {
			if cs.Has(v) {
				pos[v] |= 1 << p
			}
		}
	}
	return pos
}

// ObviousSingles commits every cell whose candidate set has shrunk to a
// single digit. Reports whether any answer was committed.
func (e *Engine) ObviousSingles() (bool, error) {
	progress := false
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			v, ok := e.board.CandidatesAt(row, col).Single()
			if !ok {
				continue
			}
			if err := e.makeEntry(row, col, v); err != nil {
				return progress, err
			}
			e.log.Info("obvious single",
				zap.Int("row", row), zap.Int("col", col), zap.Uint8("value", v))
			progress = true
		}
	}
	return progress, nil
}

// HiddenSingles commits, per unit, any digit whose only remaining home is a
// single cell, regardless of how many other candidates that cell carries.
func (e *Engine) HiddenSingles() (bool, error) {
	progress := false
	for _, unit := range allUnits() {
		for v := uint8(1); v <= 9; v++ {
			var hit board.Coord
			count := 0
			for _, c := range unit {
				if e.board.CandidatesAt(c.Row, c.Col).Has(v) {
					hit = c
					count++
				}
			}
			if count != 1 {
				continue
			}
			if err := e.makeEntry(hit.Row, hit.Col, v); err != nil {
				return progress, err
			}
			e.log.Info("hidden single",
				zap.Int("row", hit.Row), zap.Int("col", hit.Col), zap.Uint8("value", v))
			progress = true
		}
	}
	return progress, nil
}

// ObviousPairs scans every two-candidate cell for a later cell in one of its
// units holding the identical pair. On a match the two digits are removed
// from every other cell of that unit. Only the first match per unit is
// acted on; a later scan picks up anything the removals expose.
func (e *Engine) ObviousPairs() bool {
	progress := false
	for idx := 0; idx < 81; idx++ {
		row, col := idx/9, idx%9
		pair := e.board.CandidatesAt(row, col)
		if pair.Count() != 2 {
			continue
		}
		for _, unit := range cellUnits(row, col) {
			if e.eliminatePair(unit, idx, pair) {
				progress = true
			}
		}
	}
	return progress
}

func (e *Engine) eliminatePair(unit [9]board.Coord, refIdx int, pair board.Candidates) bool {
	changed := false
	for _, c := range unit {
		matchIdx := board.Index(c.Row, c.Col)
		// Cells before the reference were already tried as references.
		if matchIdx <= refIdx {
			continue
		}
		if e.board.CandidatesAt(c.Row, c.Col) != pair {
			continue
		}
		for _, o := range unit {
			oi := board.Index(o.Row, o.Col)
			if oi == refIdx || oi == matchIdx {
				continue
			}
			for _, v := range pair.Values() {
				if e.board.RemoveCandidate(o.Row, o.Col, v) {
					changed = true
				}
			}
		}
		e.log.Info("obvious pair",
			zap.String("pair", pair.String()),
			zap.Int("cell_a", refIdx), zap.Int("cell_b", matchIdx))
		break
	}
	return changed
}

// HiddenPairs finds, per unit, two digits that each appear in exactly the
// same two cells and nowhere else. Those two cells can hold nothing but the
// pair, so their candidate sets are cut down to it.
func (e *Engine) HiddenPairs() bool {
	progress := false
	for _, unit := range allUnits() {
		pos := e.positionMasks(unit)
		for v1 := uint8(1); v1 <= 8; v1++ {
			if bits.OnesCount16(pos[v1]) != 2 {
				continue
			}
			for v2 := v1 + 1; v2 <= 9; v2++ {
				if pos[v2] != pos[v1] {
					continue
				}
				pair := board.Of(v1, v2)
				for p := 0; p < 9; p++ {
					if pos[v1]&(1<<p) == 0 {
						continue
					}
					c := unit[p]
					if e.board.SetCandidates(c.Row, c.Col, pair) {
						progress = true
						e.log.Info("hidden pair",
							zap.String("pair", pair.String()),
							zap.Int("row", c.Row), zap.Int("col", c.Col))
					}
				}
			}
		}
	}
	return progress
}

// ObviousTriplets finds, per unit, three cells of candidate size 2 or 3
// whose candidate union has exactly three digits. Those digits are locked
// to the triplet and removed from every other cell of the unit.
func (e *Engine) ObviousTriplets() bool {
	progress := false
	for _, unit := range allUnits() {
		var narrow []int
		for p, c := range unit {
			n := e.board.CandidatesAt(c.Row, c.Col).Count()
			if n == 2 || n == 3 {
				narrow = append(narrow, p)
			}
		}
		for i := 0; i < len(narrow); i++ {
			for j := i + 1; j < len(narrow); j++ {
				for k := j + 1; k < len(narrow); k++ {
					a, b, c := unit[narrow[i]], unit[narrow[j]], unit[narrow[k]]
					union := e.board.CandidatesAt(a.Row, a.Col) |
						e.board.CandidatesAt(b.Row, b.Col) |
						e.board.CandidatesAt(c.Row, c.Col)
					if union.Count() != 3 {
						continue
					}
					in := map[int]bool{narrow[i]: true, narrow[j]: true, narrow[k]: true}
					for p, o := range unit {
						if in[p] {
							continue
						}
						for _, v := range union.Values() {
							if e.board.RemoveCandidate(o.Row, o.Col, v) {
								progress = true
							}
						}
					}
					e.log.Info("obvious triplet",
						zap.String("triplet", union.String()),
						zap.Int("cell_a", board.Index(a.Row, a.Col)),
						zap.Int("cell_b", board.Index(b.Row, b.Col)),
						zap.Int("cell_c", board.Index(c.Row, c.Col)))
				}
			}
		}
	}
	return progress
}

// HiddenTriplets finds, per unit, three digits each appearing 2 or 3 times
// whose occurrences resolve to exactly three distinct cells. Those cells'
// candidate sets are intersected down to the triplet. The cell count is
// checked on the union of the contributing cells, not on any wrapper.
func (e *Engine) HiddenTriplets() bool {
	progress := false
	for _, unit := range allUnits() {
		pos := e.positionMasks(unit)
		scarce := func(v uint8) bool {
			n := bits.OnesCount16(pos[v])
			return n == 2 || n == 3
		}
		for v1 := uint8(1); v1 <= 7; v1++ {
			if !scarce(v1) {
				continue
			}
			for v2 := v1 + 1; v2 <= 8; v2++ {
				if !scarce(v2) {
					continue
				}
				for v3 := v2 + 1; v3 <= 9; v3++ {
					if !scarce(v3) {
						continue
					}
					cellsMask := pos[v1] | pos[v2] | pos[v3]
					if bits.OnesCount16(cellsMask) != 3 {
						continue
					}
					triplet := board.Of(v1, v2, v3)
					for p := 0; p < 9; p++ {
						if cellsMask&(1<<p) == 0 {
							continue
						}
						c := unit[p]
						trimmed := e.board.CandidatesAt(c.Row, c.Col) & triplet
						if e.board.SetCandidates(c.Row, c.Col, trimmed) {
							progress = true
							e.log.Info("hidden triplet",
								zap.String("triplet", triplet.String()),
								zap.Int("row", c.Row), zap.Int("col", c.Col))
						}
					}
				}
			}
		}
	}
	return progress
}

// PointingSets handles line/box intersections both ways: a digit confined
// within a row or column to a single box is removed from the rest of that
// box, and a digit confined within a box to a single row or column is
// removed from the rest of that line.
func (e *Engine) PointingSets() bool {
	progress := false

	// Digit confined within a row to one box.
	for row := 0; row < 9; row++ {
		for v := uint8(1); v <= 9; v++ {
			box := -1
			confined := true
			for col := 0; col < 9; col++ {
				if !e.board.CandidatesAt(row, col).Has(v) {
					continue
				}
				b := board.BoxIndex(row, col)
				if box == -1 {
					box = b
				} else if box != b {
					confined = false
					break
				}
			}
			if box == -1 || !confined {
				continue
			}
			for _, c := range board.BoxCoords(box) {
				if c.Row == row {
					continue
				}
				if e.board.RemoveCandidate(c.Row, c.Col, v) {
					progress = true
					e.log.Info("pointing set",
						zap.Uint8("value", v), zap.Int("row", row), zap.Int("box", box))
				}
			}
		}
	}

	// Digit confined within a column to one box.
	for col := 0; col < 9; col++ {
		for v := uint8(1); v <= 9; v++ {
			box := -1
			confined := true
			for row := 0; row < 9; row++ {
				if !e.board.CandidatesAt(row, col).Has(v) {
					continue
				}
				b := board.BoxIndex(row, col)
				if box == -1 {
					box = b
				} else if box != b {
					confined = false
					break
				}
			}
			if box == -1 || !confined {
				continue
			}
			for _, c := range board.BoxCoords(box) {
				if c.Col == col {
					continue
				}
				if e.board.RemoveCandidate(c.Row, c.Col, v) {
					progress = true
					e.log.Info("pointing set",
						zap.Uint8("value", v), zap.Int("col", col), zap.Int("box", box))
				}
			}
		}
	}

	// Digit confined within a box to one row or column.
	for box := 0; box < 9; box++ {
		for v := uint8(1); v <= 9; v++ {
			rowHome, colHome := -1, -1
			sameRow, sameCol := true, true
			found := false
			for _, c := range board.BoxCoords(box) {
				if !e.board.CandidatesAt(c.Row, c.Col).Has(v) {
					continue
				}
				found = true
				if rowHome == -1 {
					rowHome, colHome = c.Row, c.Col
					continue
				}
				if c.Row != rowHome {
					sameRow = false
				}
				if c.Col != colHome {
					sameCol = false
				}
			}
			if !found {
				continue
			}
			if sameRow {
				for _, c := range board.RowCoords(rowHome) {
					if board.BoxIndex(c.Row, c.Col) == box {
						continue
					}
					if e.board.RemoveCandidate(c.Row, c.Col, v) {
						progress = true
						e.log.Info("pointing set",
							zap.Uint8("value", v), zap.Int("box", box), zap.Int("row", rowHome))
					}
				}
			}
			if sameCol {
				for _, c := range board.ColCoords(colHome) {
					if board.BoxIndex(c.Row, c.Col) == box {
						continue
					}
					if e.board.RemoveCandidate(c.Row, c.Col, v) {
						progress = true
						e.log.Info("pointing set",
							zap.Uint8("value", v), zap.Int("box", box), zap.Int("col", colHome))
					}
				}
			}
		}
	}

	return progress
}
