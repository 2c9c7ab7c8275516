package game

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-cli/internal/field"
)

const (
	boardHeader = " |123456789|"
	boardBorder = "—│—————————│"
)

// Board renders the grid framed by column numbers and row numbers.
func Board(g *field.Grid) string {
	var b strings.Builder
	fmt.Fprintln(&b, boardHeader)
	fmt.Fprintln(&b, boardBorder)
	for row := range field.Size {
		fmt.Fprintf(&b, "%d│", row+1)
		for col := range field.Size {
			b.WriteRune(g.Representation(row, col))
		}
		fmt.Fprintln(&b, "│")
	}
	fmt.Fprintln(&b, boardBorder)
	return b.String()
}
