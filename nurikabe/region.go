package nurikabe

// State is the content of one cell. Numbered cells are positive, which
// lets a clue double as its own target size.
type State int

const (
	Unknown State = -3
	White   State = -2
	Black   State = -1
)

// Region is a maximal 4-connected group of known cells. It carries the
// uniform state of its members and the unknown cells it borders (its
// liberties). Unknown cells never belong to a region.
type Region struct {
	state    State
	coords   CoordSet
	unknowns CoordSet
}

func newRegion(state State, c Coord, unknowns CoordSet) *Region {
	if state == Unknown {
		panic("nurikabe: newRegion: state must be known")
	}
	return &Region{
		state:    state,
		coords:   SingleCoordSet(c),
		unknowns: unknowns,
	}
}

func (r *Region) White() bool {
	return r.state == White
}

func (r *Region) Black() bool {
	return r.state == Black
}

func (r *Region) Numbered() bool {
	return r.state > 0
}

// Number is the clue of a numbered region. Calling it on anything else
// is a logic error, not a puzzle contradiction.
func (r *Region) Number() int {
	if !r.Numbered() {
		panic("nurikabe: Region.Number: region is not numbered")
	}
	return int(r.state)
}

func (r *Region) Size() int {
	return len(r.coords)
}

func (r *Region) Contains(c Coord) bool {
	return r.coords.Contains(c)
}

func (r *Region) clone() *Region {
	return &Region{
		state:    r.state,
		coords:   r.coords.Copy(),
		unknowns: r.unknowns.Copy(),
	}
}
