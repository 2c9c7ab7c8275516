package field

import "github.com/sirupsen/logrus"

// Uncover opens (row, col). Opening a mine opens every mine on the grid;
// opening dirt floods outwards through blank tiles and stops at numbered
// ones.
func (g *Grid) Uncover(row, col int) error {
	if err := g.Check(row, col); err != nil {
		return err
	}
	if g.tiles[row][col].IsMine() {
		g.detonate()
		Log.WithFields(logrus.Fields{
			"row": row, "col": col,
		}).Debug("mine uncovered")
		return nil
	}
	g.flood(Position{row, col})
	return nil
}

func (g *Grid) reveal(p Position) {
	if g.tiles[p.Row][p.Col].uncover() {
		g.markCount--
	}
}

func (g *Grid) detonate() {
	for _, m := range g.mines {
		g.reveal(m)
	}
}

func (g *Grid) flood(start Position) {
	stack := []Position{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.IsAvailable(p.Row, p.Col) || !g.tiles[p.Row][p.Col].IsDirt() {
			continue
		}
		g.reveal(p)
		if g.tiles[p.Row][p.Col].Adjacent > 0 {
			continue
		}
		// pushed in reverse: up, down, left, right are popped in that order
		stack = append(stack,
			Position{p.Row, p.Col + 1},
			Position{p.Row, p.Col - 1},
			Position{p.Row + 1, p.Col},
			Position{p.Row - 1, p.Col},
		)
	}
}

// AllMinesCovered is false once the player has stepped on a mine.
func (g *Grid) AllMinesCovered() bool {
	for _, m := range g.mines {
		if !g.tiles[m.Row][m.Col].Covered {
			return false
		}
	}
	return true
}

func (g *Grid) AllMinesMarked() bool {
	for _, m := range g.mines {
		if !g.tiles[m.Row][m.Col].Marked {
			return false
		}
	}
	return true
}

// AllDirtsCovered reports whether no dirt tile has been uncovered yet.
// It only holds for an untouched board, yet the game loop still treats it
// as a win.
func (g *Grid) AllDirtsCovered() bool {
	for _, d := range g.dirts {
		if !g.tiles[d.Row][d.Col].Covered {
			return false
		}
	}
	return true
}
