// Package sudoku is a small constraint-elimination Sudoku solver:
// candidates are pruned against solved row/column/subgrid peers, hidden
// singles are placed, naked pairs are pruned from their common peers,
// and a single level of
// guess-and-test on copies finishes off the grids deduction can't.
package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"strings"
)

const (
	SubgridSize = 3
	GridSize    = SubgridSize * SubgridSize
	NumCells    = GridSize * GridSize
)

// Cell is a bitmask of candidate digits; bit n set means digit n is
// still possible. A parsed blank holds no candidates until the first
// Solve pass fills them in.
type Cell uint16

const allDigits Cell = 0b1111111110 // bits 1..9

func cellOf(digit int) Cell {
	return 1 << digit
}

func (c Cell) Count() int {
	return bits.OnesCount16(uint16(c))
}

func (c Cell) Solved() bool {
	return c.Count() == 1
}

// Solution is the cell's digit, or 0 if it isn't solved yet.
func (c Cell) Solution() int {
	if !c.Solved() {
		return 0
	}
	return bits.TrailingZeros16(uint16(c))
}

func (c Cell) Has(digit int) bool {
	return c&cellOf(digit) != 0
}

func (c Cell) Remove(digit int) Cell {
	return c &^ cellOf(digit)
}

type Grid struct {
	cells [GridSize][GridSize]Cell
}

// Parse reads nine rows of nine digits (0 for a blank cell).
func Parse(s string) (*Grid, error) {
	var g Grid
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != GridSize {
		return nil, fmt.Errorf("sudoku: expected %d rows, got %d", GridSize, len(lines))
	}
	for row, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != GridSize {
			return nil, fmt.Errorf("sudoku: row %d has %d cells, expected %d", row, len(line), GridSize)
		}
		for col := 0; col < GridSize; col++ {
			ch := line[col]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("sudoku: bad character %q in row %d", ch, row)
			}
			if ch != '0' {
				g.cells[row][col] = cellOf(int(ch - '0'))
			}
		}
	}
	return &g, nil
}

// ReadAll consumes a Project-Euler-96-style file: each grid is a header
// line containing "Grid" followed by nine rows of digits.
func ReadAll(r io.Reader) ([]*Grid, error) {
	var grids []*Grid
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !strings.Contains(scanner.Text(), "Grid") {
			continue
		}
		var rows []string
		for len(rows) < GridSize && scanner.Scan() {
			rows = append(rows, scanner.Text())
		}
		if len(rows) < GridSize {
			return nil, fmt.Errorf("sudoku: truncated grid after %d rows", len(rows))
		}
		g, err := Parse(strings.Join(rows, "\n"))
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return grids, nil
}

func (g *Grid) Cell(row, col int) Cell {
	return g.cells[row][col]
}

// forPeers visits every cell sharing a row, column, or subgrid with
// (row, col), excluding the cell itself.
func (g *Grid) forPeers(row, col int, f func(r, c int)) {
	for i := 0; i < GridSize; i++ {
		if i != col {
			f(row, i)
		}
		if i != row {
			f(i, col)
		}
	}
	baseRow := row / SubgridSize * SubgridSize
	baseCol := col / SubgridSize * SubgridSize
	for r := baseRow; r < baseRow+SubgridSize; r++ {
		for c := baseCol; c < baseCol+SubgridSize; c++ {
			if r != row && c != col {
				f(r, c)
			}
		}
	}
}

// initialise gives every blank cell the digits its solved peers leave
// feasible.
func (g *Grid) initialise() {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g.cells[row][col] != 0 {
				continue
			}
			cands := allDigits
			g.forPeers(row, col, func(r, c int) {
				if g.cells[r][c].Solved() {
					cands = cands.Remove(g.cells[r][c].Solution())
				}
			})
			g.cells[row][col] = cands
		}
	}
}

// removeCandidates prunes each unsolved cell against its solved peers.
func (g *Grid) removeCandidates() {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g.cells[row][col].Solved() {
				continue
			}
			g.forPeers(row, col, func(r, c int) {
				if g.cells[r][c].Solved() {
					g.cells[row][col] = g.cells[row][col].Remove(g.cells[r][c].Solution())
				}
			})
		}
	}
}

// placeHiddenSingles solves cells holding a candidate no other cell in
// the same unit can take, one unit kind at a time.
func (g *Grid) placeHiddenSingles() {
	unitCells := func(kind, row, col int) Cell {
		var others Cell
		switch kind {
		case 0:
			for i := 0; i < GridSize; i++ {
				if i != col {
					others |= g.cells[row][i]
				}
			}
		case 1:
			for i := 0; i < GridSize; i++ {
				if i != row {
					others |= g.cells[i][col]
				}
			}
		default:
			baseRow := row / SubgridSize * SubgridSize
			baseCol := col / SubgridSize * SubgridSize
			for r := baseRow; r < baseRow+SubgridSize; r++ {
				for c := baseCol; c < baseCol+SubgridSize; c++ {
					if r != row || c != col {
						others |= g.cells[r][c]
					}
				}
			}
		}
		return others
	}

	for kind := 0; kind < 3; kind++ {
		for row := 0; row < GridSize; row++ {
			for col := 0; col < GridSize; col++ {
				if g.cells[row][col].Solved() {
					continue
				}
				others := unitCells(kind, row, col)
				for digit := 1; digit <= GridSize; digit++ {
					if g.cells[row][col].Has(digit) && !others.Has(digit) {
						g.cells[row][col] = cellOf(digit)
					}
				}
			}
		}
	}
}

// removeNakedPairs finds two cells in a shared unit holding the same
// two candidates and removes that pair from every common peer.
func (g *Grid) removeNakedPairs() {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			pair := g.cells[row][col]
			if pair.Count() != 2 {
				continue
			}
			g.forPeers(row, col, func(r, c int) {
				if g.cells[r][c] != pair || (r == row && c == col) {
					return
				}
				g.forCommonPeers(row, col, r, c, func(pr, pc int) {
					if !g.cells[pr][pc].Solved() {
						g.cells[pr][pc] &^= pair
					}
				})
			})
		}
	}
}

func (g *Grid) forCommonPeers(r1, c1, r2, c2 int, f func(r, c int)) {
	seen := make(map[[2]int]bool)
	g.forPeers(r1, c1, func(r, c int) {
		seen[[2]int{r, c}] = true
	})
	g.forPeers(r2, c2, func(r, c int) {
		if seen[[2]int{r, c}] && !(r == r1 && c == c1) && !(r == r2 && c == c2) {
			f(r, c)
		}
	})
}

func (g *Grid) totalCandidates() int {
	ct := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			ct += g.cells[row][col].Count()
		}
	}
	return ct
}

// Solved reports whether every cell holds exactly one digit.
func (g *Grid) Solved() bool {
	return g.totalCandidates() == NumCells
}

// Solve runs the elimination loop until the candidate count stops
// shrinking. It reports whether the grid came out fully solved.
func (g *Grid) Solve() bool {
	g.initialise()
	before, after := 0, -1
	for before != after && after != NumCells {
		before = after

		g.removeCandidates()
		g.placeHiddenSingles()
		g.removeNakedPairs()

		after = g.totalCandidates()
	}
	return after == NumCells
}

// SolveByGuessing finds a cell with exactly two candidates and tries
// each on a copy of the grid; whichever copy solves is committed. One
// correct guess is always enough for a well-formed puzzle, so there is
// no deeper recursion.
func (g *Grid) SolveByGuessing() bool {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g.cells[row][col].Count() != 2 {
				continue
			}

			first := bits.TrailingZeros16(uint16(g.cells[row][col]))

			trial := *g
			trial.cells[row][col] = cellOf(first)
			if trial.Solve() {
				g.cells[row][col] = cellOf(first)
				g.Solve()
				return true
			}

			trial = *g
			trial.cells[row][col] = trial.cells[row][col].Remove(first)
			if trial.Solve() {
				g.cells[row][col] = g.cells[row][col].Remove(first)
				g.Solve()
				return true
			}
		}
	}
	return false
}

// CornerValue is the n-digit number read from the top-left corner of a
// solved grid.
func (g *Grid) CornerValue(n int) int {
	v := 0
	for col := 0; col < n; col++ {
		v = v*10 + g.cells[0][col].Solution()
	}
	return v
}

func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			sb.WriteByte(byte('0' + g.cells[row][col].Solution()))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
