package game

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-cli/internal/field"
)

func TestParseMineCount(t *testing.T) {
	n, err := ParseMineCount(" 10 \n")
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	_, err = ParseMineCount("ten")
	assert.Error(t, err)

	var mcErr field.InvalidMineCountError
	_, err = ParseMineCount("81")
	assert.ErrorAs(t, err, &mcErr)
	_, err = ParseMineCount("0")
	assert.ErrorAs(t, err, &mcErr)
}

func TestAskMineCount(t *testing.T) {
	var out strings.Builder
	term := NewTerminal(strings.NewReader("many\n0\n12\n"), &out)

	n, err := term.AskMineCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, 3, strings.Count(out.String(), MsgMineCount))
}

func TestTerminalPlayUntilLoss(t *testing.T) {
	s := newTestSession(t, 10)
	mine := s.Grid().Mines()[0]
	input := strings.Join([]string{
		"1 1 jump",
		"0 0 free",
		line(mine, Free),
		"1 1 free",
	}, "\n")

	var out strings.Builder
	term := NewTerminal(strings.NewReader(input), &out)
	require.NoError(t, term.Play(context.Background(), s))

	text := out.String()
	assert.Equal(t, Lost, s.Outcome())
	assert.Contains(t, text, MsgUnknown)
	assert.Contains(t, text, MsgUnavailable)
	assert.True(t, strings.HasSuffix(text, MsgLost+"\n"))
	assert.Equal(t, 3, strings.Count(text, MsgPrompt))
	assert.Equal(t, 2, strings.Count(text, boardHeader))
}

func TestTerminalPlayEndOfInput(t *testing.T) {
	s := newTestSession(t, 10)
	var out strings.Builder
	term := NewTerminal(strings.NewReader(""), &out)

	require.NoError(t, term.Play(context.Background(), s))
	assert.Equal(t, Continue, s.Outcome())
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}

func TestTerminalPlayCancelled(t *testing.T) {
	s := newTestSession(t, 10)
	var out strings.Builder
	term := NewTerminal(blockingReader{}, &out)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, term.Play(ctx, s), context.DeadlineExceeded)
}
