package field

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

const (
	Size     = 9
	Area     = Size * Size
	MinMines = 1
	MaxMines = Area - 1
)

type Position struct {
	Row, Col int
}

func positionOf(i int) Position {
	return Position{Row: i / Size, Col: i % Size}
}

func (p Position) InBounds() bool {
	return 0 <= p.Row && p.Row < Size && 0 <= p.Col && p.Col < Size
}

// neighbors yields the up to 8 in-bounds positions surrounding p.
func (p Position) neighbors() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				n := Position{p.Row + dr, p.Col + dc}
				if n.InBounds() && !yield(n) {
					return
				}
			}
		}
	}
}

// Grid is a 9x9 minefield. It is not safe for concurrent use.
type Grid struct {
	tiles     [Size][Size]Tile
	mines     []Position
	dirts     []Position
	mineCount int
	markCount int
}

// New places mineCount mines uniformly at random using r.
func New(mineCount int, r *rand.Rand) (*Grid, error) {
	if mineCount < MinMines || mineCount > MaxMines {
		return nil, InvalidMineCountError{mineCount}
	}
	return build(r.Perm(Area), mineCount), nil
}

// build turns the first mineCount entries of perm into mines and the rest
// into dirt, then counts adjacent mines.
func build(perm []int, mineCount int) *Grid {
	g := &Grid{
		mines:     make([]Position, 0, mineCount),
		dirts:     make([]Position, 0, Area-mineCount),
		mineCount: mineCount,
	}
	for i, linear := range perm {
		p := positionOf(linear)
		kind := Dirt
		if i < mineCount {
			kind = Mine
			g.mines = append(g.mines, p)
		} else {
			g.dirts = append(g.dirts, p)
		}
		g.tiles[p.Row][p.Col] = Tile{Kind: kind, Covered: true}
	}
	for _, m := range g.mines {
		for n := range m.neighbors() {
			g.tiles[n.Row][n.Col].Adjacent++
		}
	}

	Log.WithFields(logrus.Fields{
		"mines": g.mineCount,
	}).Debug("grid built")

	return g
}

func (g *Grid) MineCount() int { return g.mineCount }

func (g *Grid) MarkCount() int { return g.markCount }

// Mines returns the mine positions in placement order.
func (g *Grid) Mines() []Position { return slices.Clone(g.mines) }

// Tile returns a copy of the tile at (row, col). It panics when the
// position is outside the grid.
func (g *Grid) Tile(row, col int) Tile { return g.tiles[row][col] }

func (g *Grid) Representation(row, col int) rune {
	return g.tiles[row][col].Rune()
}

// Check reports why (row, col) can't be marked or uncovered, or nil if it
// can.
func (g *Grid) Check(row, col int) error {
	if !(Position{row, col}).InBounds() {
		return ErrOutOfBounds
	}
	if !g.tiles[row][col].Covered {
		return ErrAlreadyUncovered
	}
	return nil
}

func (g *Grid) IsAvailable(row, col int) bool {
	return g.Check(row, col) == nil
}

func (g *Grid) ToggleMark(row, col int) error {
	if err := g.Check(row, col); err != nil {
		return err
	}
	t := &g.tiles[row][col]
	if t.Marked {
		t.Marked = false
		g.markCount--
		return nil
	}
	if g.markCount == g.mineCount {
		return ErrMarkLimitExceeded
	}
	t.Marked = true
	g.markCount++
	return nil
}
