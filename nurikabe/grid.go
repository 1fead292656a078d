package nurikabe

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// SetLogger swaps the package logger. The CLI uses this to route engine
// chatter through its own formatter and hooks.
func SetLogger(l *logrus.Logger) {
	log = l
}

const prngSeed = 1729

// Grid is one Nurikabe puzzle in progress. All solving mutates the grid
// in place; hypothetical search works on clones.
type Grid struct {
	width      int
	height     int
	totalBlack int // black cells in the finished solution: w*h - sum of clues

	cells    [][]State   // cells[y][x]
	regionOf [][]*Region // parallel to cells; nil while a cell is unknown
	regions  []*Region

	sitrep SitRep
	output []reportEntry

	prng *rand.PCG
	rng  *rand.Rand

	// Progress, when set, is offered an update after every successful
	// analysis step; the send never blocks, so an update is dropped when
	// the channel is full. Clones never report progress.
	Progress chan ProgressUpdate
}

type ProgressUpdate struct {
	Action string
	Known  int
	Size   int
}

// NewGrid parses the puzzle string s into a width-by-height grid.
// A run of digits is one clue, a space is one unknown cell, newlines
// separate rows but carry no cells, and any other character is an
// error. The grid must receive exactly width*height cells.
func NewGrid(width, height int, s string) (*Grid, error) {
	if width < 1 {
		return nil, fmt.Errorf("nurikabe: width must be at least 1")
	}
	if height < 1 {
		return nil, fmt.Errorf("nurikabe: height must be at least 1")
	}

	v, err := parsePuzzle(s)
	if err != nil {
		return nil, err
	}
	if len(v) != width*height {
		return nil, fmt.Errorf("nurikabe: puzzle must contain %d numbers and spaces, got %d", width*height, len(v))
	}

	g := &Grid{
		width:      width,
		height:     height,
		totalBlack: width * height,
		cells:      make([][]State, height),
		regionOf:   make([][]*Region, height),
		sitrep:     KeepGoing,
		prng:       rand.NewPCG(prngSeed, 0),
	}
	g.rng = rand.New(g.prng)
	for y := 0; y < height; y++ {
		g.cells[y] = make([]State, width)
		g.regionOf[y] = make([]*Region, width)
		for x := 0; x < width; x++ {
			g.cells[y][x] = Unknown
		}
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			n := v[x+y*width]
			if n <= 0 {
				continue
			}

			// Horizontally adjacent clues cannot occur because their
			// digits would have concatenated during parsing, so only
			// the cell above needs checking.
			if g.valid(x, y-1) && g.cells[y-1][x] > 0 {
				return nil, fmt.Errorf("nurikabe: puzzle contains vertically adjacent numbers")
			}

			g.cells[y][x] = State(n)
			g.addRegion(x, y)
			g.totalBlack -= n
		}
	}

	g.report("I'm okay to go!", nil, 0, nil)
	return g, nil
}

func parsePuzzle(s string) ([]int, error) {
	var v []int
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			n := 0
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				n = n*10 + int(s[i]-'0')
				i++
			}
			i--
			v = append(v, n)
		case c == ' ':
			v = append(v, 0)
		case c == '\n':
			// Row separator; contributes nothing.
		default:
			return nil, fmt.Errorf("nurikabe: puzzle may contain only digits, spaces, and newlines (found %q)", c)
		}
	}
	return v, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Known counts the cells whose state has been determined.
func (g *Grid) Known() int {
	ct := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] != Unknown {
				ct++
			}
		}
	}
	return ct
}

func (g *Grid) valid(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) cell(x, y int) State {
	return g.cells[y][x]
}

func (g *Grid) region(x, y int) *Region {
	return g.regionOf[y][x]
}

func (g *Grid) forValidNeighbors(x, y int, f func(x, y int)) {
	if x > 0 {
		f(x-1, y)
	}
	if x+1 < g.width {
		f(x+1, y)
	}
	if y > 0 {
		f(x, y-1)
	}
	if y+1 < g.height {
		f(x, y+1)
	}
}

func (g *Grid) validUnknownNeighbors(x, y int) CoordSet {
	cs := EmptyCoordSet()
	g.forValidNeighbors(x, y, func(a, b int) {
		if g.cells[b][a] == Unknown {
			cs.Add(Coord{a, b})
		}
	})
	return cs
}

// addRegion wraps the known cell at (x, y) in a fresh singleton region
// whose liberties are its unknown neighbors.
func (g *Grid) addRegion(x, y int) {
	r := newRegion(g.cells[y][x], Coord{x, y}, g.validUnknownNeighbors(x, y))
	g.regionOf[y][x] = r
	g.regions = append(g.regions, r)
}

// mark colors an unknown cell. Marking a known cell is a contradiction,
// remembered in the sitrep for Solve to report. The new cell starts as
// its own region and is fused with each compatible neighbor.
func (g *Grid) mark(s State, x, y int) {
	if s != White && s != Black {
		panic("nurikabe: mark: s must be either White or Black")
	}

	if g.cells[y][x] != Unknown {
		g.sitrep = ContradictionFound
		return
	}

	g.cells[y][x] = s

	for _, r := range g.regions {
		r.unknowns.Del(Coord{x, y})
	}

	g.addRegion(x, y)

	g.forValidNeighbors(x, y, func(a, b int) {
		g.fuseRegions(g.region(x, y), g.region(a, b))
	})
}

// fuseRegions merges r2 into r1 (or vice versa; the larger region wins,
// except that a numbered region always becomes the primary so a fused
// white region is adopted by the island). Fusing two numbered regions
// is a contradiction; black never fuses with non-black.
func (g *Grid) fuseRegions(r1, r2 *Region) {
	if r1 == nil || r2 == nil || r1 == r2 {
		return
	}

	if r1.Numbered() && r2.Numbered() {
		g.sitrep = ContradictionFound
		return
	}

	if r1.Black() != r2.Black() {
		return
	}

	if r2.Size() > r1.Size() {
		r1, r2 = r2, r1
	}
	if r2.Numbered() {
		r1, r2 = r2, r1
	}

	r1.coords.AddAll(r2.coords)
	r1.unknowns.AddAll(r2.unknowns)

	for c := range r2.coords {
		g.regionOf[c.Y][c.X] = r1
	}

	g.removeRegion(r2)
}

func (g *Grid) removeRegion(r *Region) {
	for i, o := range g.regions {
		if o == r {
			g.regions[i] = g.regions[len(g.regions)-1]
			g.regions = g.regions[:len(g.regions)-1]
			return
		}
	}
}

// Clone deep-copies the grid for hypothetical search. Regions are
// cloned and cell ownership remapped through them, so the clone shares
// nothing mutable with the parent. The report log stays behind; nobody
// reads a hypothetical's narration.
func (g *Grid) Clone() *Grid {
	Watch.Start("Clone")
	defer Watch.Stop("Clone")

	n := &Grid{
		width:      g.width,
		height:     g.height,
		totalBlack: g.totalBlack,
		cells:      make([][]State, g.height),
		regionOf:   make([][]*Region, g.height),
		regions:    make([]*Region, 0, len(g.regions)),
		sitrep:     g.sitrep,
		prng:       clonePCG(g.prng),
	}
	n.rng = rand.New(n.prng)

	for y := 0; y < g.height; y++ {
		n.cells[y] = make([]State, g.width)
		copy(n.cells[y], g.cells[y])
		n.regionOf[y] = make([]*Region, g.width)
	}

	for _, r := range g.regions {
		nr := r.clone()
		n.regions = append(n.regions, nr)
		for c := range nr.coords {
			n.regionOf[c.Y][c.X] = nr
		}
	}

	return n
}

func clonePCG(src *rand.PCG) *rand.PCG {
	state, err := src.MarshalBinary()
	if err != nil {
		panic("nurikabe: clonePCG: " + err.Error())
	}
	dst := &rand.PCG{}
	if err := dst.UnmarshalBinary(state); err != nil {
		panic("nurikabe: clonePCG: " + err.Error())
	}
	return dst
}

func stateChar(s State) string {
	switch {
	case s == Unknown:
		return "_"
	case s == White:
		return "."
	case s == Black:
		return "X"
	case int(s) < 10:
		return string(rune(int(s) + '0'))
	case int(s) < 36:
		return string(rune(int(s) - 10 + 'a'))
	default:
		return "?"
	}
}

func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteString(stateChar(g.cells[y][x]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (g *Grid) sendProgress(action string) {
	if g.Progress == nil {
		return
	}
	select {
	case g.Progress <- ProgressUpdate{action, g.Known(), g.width * g.height}:
	default:
	}
}

// report appends one entry to the output log rendered by Write.
func (g *Grid) report(msg string, updated CoordSet, failedGuesses int, failedCoords CoordSet) {
	snapshot := make([][]State, g.height)
	for y := 0; y < g.height; y++ {
		snapshot[y] = make([]State, g.width)
		copy(snapshot[y], g.cells[y])
	}
	g.output = append(g.output, reportEntry{
		msg:           msg,
		cells:         snapshot,
		updated:       updated,
		when:          time.Now(),
		failedGuesses: failedGuesses,
		failedCoords:  failedCoords,
	})
}

// process commits a rule's proposed marks. It reports false when the
// rule found nothing, so the driver can move on to the next analysis.
func (g *Grid) process(verbose bool, markBlack, markWhite CoordSet, msg string, failedGuesses int, failedCoords CoordSet) bool {
	if markBlack.IsEmpty() && markWhite.IsEmpty() {
		return false
	}

	for _, c := range markBlack.Sorted() {
		g.mark(Black, c.X, c.Y)
	}
	for _, c := range markWhite.Sorted() {
		g.mark(White, c.X, c.Y)
	}

	log.WithFields(logrus.Fields{
		"black": markBlack.Size(),
		"white": markWhite.Size(),
	}).Debug(msg)

	if verbose {
		updated := markBlack.Copy()
		updated.AddAll(markWhite)

		t := msg
		if g.sitrep == ContradictionFound {
			t += " (Contradiction found! Attempted to fuse two numbered regions or mark an already known cell.)"
		}
		g.report(t, updated, failedGuesses, failedCoords)
	}

	g.sendProgress(msg)

	return true
}
