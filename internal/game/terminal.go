package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-cli/internal/field"
)

// Terminal plays a session over a line-oriented reader and writer, such as
// stdin and stdout.
type Terminal struct {
	lines <-chan string
	errCh <-chan error
	out   io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	lines := make(chan string)
	errCh := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		errCh <- scanner.Err()
		close(errCh)
	}()
	return &Terminal{lines: lines, errCh: errCh, out: out}
}

// readLine returns io.EOF once the input is exhausted.
func (t *Terminal) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-t.lines:
		if ok {
			return line, nil
		}
		if err := <-t.errCh; err != nil {
			return "", err
		}
		return "", io.EOF
	}
}

func ParseMineCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("mine count must be an int: %w", err)
	}
	if n < field.MinMines || n > field.MaxMines {
		return 0, field.InvalidMineCountError{Count: n}
	}
	return n, nil
}

// AskMineCount prompts until the player enters a valid mine count.
func (t *Terminal) AskMineCount(ctx context.Context) (int, error) {
	for {
		if _, err := fmt.Fprintln(t.out, MsgMineCount); err != nil {
			return 0, err
		}
		line, err := t.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := ParseMineCount(line)
		if err == nil {
			return n, nil
		}
		Log.WithError(err).Debug("invalid mine count")
		if _, err := fmt.Fprintln(t.out, err.Error()); err != nil {
			return 0, err
		}
	}
}

// Play prints the board and runs commands until the game ends. Running out
// of input ends the game early without an error.
func (t *Terminal) Play(ctx context.Context, s *Session) error {
	if _, err := io.WriteString(t.out, Board(s.Grid())); err != nil {
		return err
	}
	for !s.Over() {
		if _, err := fmt.Fprintln(t.out, MsgPrompt); err != nil {
			return err
		}
		line, err := t.readLine(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.Handle(t.out, line); err != nil {
			return err
		}
	}
	return nil
}
