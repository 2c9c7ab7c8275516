package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-cli/internal/field"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newTestSession(t *testing.T, mineCount int) *Session {
	t.Helper()
	grid, err := field.New(mineCount, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return NewSession(grid, nil)
}

func numberedDirt(t *testing.T, g *field.Grid) field.Position {
	t.Helper()
	for row := range field.Size {
		for col := range field.Size {
			if tile := g.Tile(row, col); tile.IsDirt() && tile.Adjacent > 0 {
				return field.Position{Row: row, Col: col}
			}
		}
	}
	t.Fatal("no numbered dirt tile")
	return field.Position{}
}

func line(p field.Position, action Action) string {
	return fmt.Sprintf("%d %d %s", p.Col+1, p.Row+1, action)
}

func TestBoard(t *testing.T) {
	s := newTestSession(t, 10)
	want := " |123456789|\n" +
		"—│—————————│\n" +
		"1│.........│\n" +
		"2│.........│\n" +
		"3│.........│\n" +
		"4│.........│\n" +
		"5│.........│\n" +
		"6│.........│\n" +
		"7│.........│\n" +
		"8│.........│\n" +
		"9│.........│\n" +
		"—│—————————│\n"
	assert.Equal(t, want, Board(s.Grid()))
}

func TestUncoverNumberedDirtContinues(t *testing.T) {
	s := newTestSession(t, 10)
	assert.True(t, s.Grid().AllMinesCovered())
	assert.True(t, s.Grid().AllDirtsCovered())

	p := numberedDirt(t, s.Grid())
	outcome, err := s.Execute(line(p, Free))
	require.NoError(t, err)
	assert.Equal(t, Continue, outcome)
	assert.True(t, s.Grid().AllMinesCovered())

	rows := strings.Split(Board(s.Grid()), "\n")
	covered := strings.Count(strings.Join(rows[2:11], ""), ".")
	assert.Equal(t, field.Area-1, covered)
}

func TestMarkAllMinesWins(t *testing.T) {
	s := newTestSession(t, 10)
	_, err := s.Execute(line(numberedDirt(t, s.Grid()), Free))
	require.NoError(t, err)

	mines := s.Grid().Mines()
	for i, m := range mines {
		outcome, err := s.Execute(line(m, Mark))
		require.NoError(t, err)
		if i < len(mines)-1 {
			assert.Equal(t, Continue, outcome)
		} else {
			assert.Equal(t, Won, outcome)
		}
	}
	assert.True(t, s.Grid().AllMinesMarked())
	assert.True(t, s.Over())
}

func TestUncoverMineLoses(t *testing.T) {
	s := newTestSession(t, 10)
	mines := s.Grid().Mines()

	var out strings.Builder
	require.NoError(t, s.Handle(&out, line(mines[3], Free)))

	assert.Equal(t, Lost, s.Outcome())
	assert.False(t, s.Grid().AllMinesCovered())
	for _, m := range mines {
		assert.Equal(t, field.MineRune, s.Grid().Representation(m.Row, m.Col))
	}
	assert.Equal(t, 10, strings.Count(out.String(), "X"))
	assert.True(t, strings.HasSuffix(out.String(), MsgLost+"\n"))
}

func TestMarkUncoveredTileFails(t *testing.T) {
	s := newTestSession(t, 10)
	p := numberedDirt(t, s.Grid())
	_, err := s.Execute(line(p, Free))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, s.Handle(&out, line(p, Mark)))
	assert.Equal(t, MsgUnavailable+"\n", out.String())
	assert.Equal(t, 0, s.Grid().MarkCount())

	_, err = s.Execute(line(p, Mark))
	assert.ErrorIs(t, err, field.ErrAlreadyUncovered)
}

func TestOutOfBoundsCommand(t *testing.T) {
	s := newTestSession(t, 10)
	_, err := s.Execute("10 1 free")
	assert.ErrorIs(t, err, field.ErrOutOfBounds)
	_, err = s.Execute("1 0 mine")
	assert.ErrorIs(t, err, field.ErrOutOfBounds)
	assert.True(t, s.Grid().AllDirtsCovered())
}

func TestMarkLimitMessage(t *testing.T) {
	s := newTestSession(t, 1)
	_, err := s.Execute(line(numberedDirt(t, s.Grid()), Free))
	require.NoError(t, err)

	var dirt []field.Position
	for row := range field.Size {
		for col := range field.Size {
			if tile := s.Grid().Tile(row, col); tile.IsDirt() && tile.Covered {
				dirt = append(dirt, field.Position{Row: row, Col: col})
			}
		}
	}
	require.GreaterOrEqual(t, len(dirt), 2)

	_, err = s.Execute(line(dirt[0], Mark))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, s.Handle(&out, line(dirt[1], Mark)))
	assert.Equal(t, MsgMarkLimit+"\n", out.String())
	assert.Equal(t, 1, s.Grid().MarkCount())
}

// The win check treats an untouched board as won, so marking anything
// before the first uncover ends the game.
func TestFirstMarkOnUntouchedBoardWins(t *testing.T) {
	s := newTestSession(t, 10)
	outcome, err := s.Execute(line(s.Grid().Mines()[0], Mark))
	require.NoError(t, err)
	assert.Equal(t, Won, outcome)
	assert.False(t, s.Grid().AllMinesMarked())
}

func TestCommandsAfterGameOver(t *testing.T) {
	s := newTestSession(t, 10)
	_, err := s.Execute(line(s.Grid().Mines()[0], Free))
	require.NoError(t, err)

	outcome, err := s.Execute("1 1 mine")
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, Lost, outcome)
}

func TestRejectedCommandsDontMutate(t *testing.T) {
	s := newTestSession(t, 10)
	before := Board(s.Grid())

	for _, l := range []string{"1 1 dig", "1 free", "x y mine", "0 0 free"} {
		var out strings.Builder
		require.NoError(t, s.Handle(&out, l))
		assert.NotContains(t, out.String(), boardHeader)
	}
	assert.Equal(t, before, Board(s.Grid()))
	assert.Equal(t, Continue, s.Outcome())
}
