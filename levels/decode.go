package levels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrEmptyGrid  = errors.New("levels: grid has no rows")
	ErrRaggedGrid = errors.New("levels: rows differ in length")
	ErrBadToken   = errors.New("levels: tile is not a non-negative integer")
)

// Grid is a rectangular tile layout indexed [row][col].
type Grid [][]uint32

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Decode parses whitespace-separated base-10 tile codes, one row per line.
// Blank lines are ignored. The result is always non-empty and rectangular;
// anything else is reported as an error instead of being truncated.
func Decode(r io.Reader) (Grid, error) {
	var grid Grid
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]uint32, len(fields))
		for i, tok := range fields {
			v, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrBadToken, lineNo, i+1, tok)
			}
			row[i] = uint32(v)
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: line %d has %d tiles, want %d", ErrRaggedGrid, lineNo, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("levels: scan: %w", err)
	}
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	return grid, nil
}
