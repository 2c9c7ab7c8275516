package field

import "strconv"

type Kind uint8

const (
	Dirt Kind = iota
	Mine
)

func (k Kind) String() string {
	switch k {
	case Dirt:
		return "dirt"
	case Mine:
		return "mine"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

const (
	MarkedRune  = '*'
	CoveredRune = '.'
	MineRune    = 'X'
	BlankRune   = '/'
)

// Tile is a single square of the grid. Adjacent is set while the grid is
// built and never changes afterwards.
type Tile struct {
	Kind     Kind
	Marked   bool
	Covered  bool
	Adjacent uint8
}

func (t Tile) IsMine() bool { return t.Kind == Mine }

func (t Tile) IsDirt() bool { return t.Kind == Dirt }

// Rune is the character a player sees for the tile.
func (t Tile) Rune() rune {
	switch {
	case t.Marked:
		return MarkedRune
	case t.Covered:
		return CoveredRune
	case t.Kind == Mine:
		return MineRune
	case t.Adjacent == 0:
		return BlankRune
	default:
		return rune('0' + t.Adjacent)
	}
}

func (t *Tile) uncover() (wasMarked bool) {
	wasMarked = t.Marked
	t.Marked = false
	t.Covered = false
	return
}
