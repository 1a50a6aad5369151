package board

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Grid is a 9x9 snapshot of answers, 0 for blank cells. It is the exchange
// format between the board and the outside world: puzzle files, the library,
// and the display all speak Grid.
type Grid [9][9]uint8

// ParseGrid reads the plain-text puzzle format: nine lines of nine
// comma-separated integers 0-9, where 0 marks a blank cell. Surrounding
// whitespace around each number is tolerated; anything else is rejected
// with ErrMalformedPuzzle.
func ParseGrid(r io.Reader) (Grid, error) {
	var g Grid
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return Grid{}, fmt.Errorf("read puzzle: %w", err)
	}
	if len(lines) != 9 {
		return Grid{}, fmt.Errorf("%w: got %d rows", ErrMalformedPuzzle, len(lines))
	}
	for row, line := range lines {
		fields := strings.Split(line, ",")
		if len(fields) != 9 {
			return Grid{}, fmt.Errorf("%w: row %d has %d columns", ErrMalformedPuzzle, row, len(fields))
		}
		for col, field := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || n < 0 || n > 9 {
				return Grid{}, fmt.Errorf("%w: row %d column %d is %q", ErrMalformedPuzzle, row, col, strings.TrimSpace(field))
			}
			g[row][col] = uint8(n)
		}
	}
	return g, nil
}

// String renders the grid in the same comma-separated format ParseGrid
// reads, with a trailing newline. ParseGrid(strings.NewReader(g.String()))
// round-trips exactly.
func (g Grid) String() string {
	var sb strings.Builder
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if col > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(g[row][col])))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Render formats the grid for human display: '.' for blanks, a '|' between
// box columns, and a dashed rule between box rows.
//
//	5 3 . | . 7 . | . . .
//	6 . . | 1 9 5 | . . .
//	. 9 8 | . . . | . 6 .
//	---------------------
func Render(g Grid) string {
	var sb strings.Builder
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if g[row][col] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(int(g[row][col])))
			}
			switch {
			case col == 2 || col == 5:
				sb.WriteString(" | ")
			case col < 8:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		if row == 2 || row == 5 {
			sb.WriteString(strings.Repeat("-", 21))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
