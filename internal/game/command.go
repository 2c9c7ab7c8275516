package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Action uint8

const (
	Mark Action = iota + 1
	Free
)

func (a Action) String() string {
	switch a {
	case Mark:
		return "mine"
	case Free:
		return "free"
	default:
		return "Action(" + strconv.Itoa(int(a)) + ")"
	}
}

var (
	ErrUnknownAction    = errors.New(`action must be one of 'mine', 'free'`)
	ErrMalformedCommand = errors.New("malformed command")
)

func decodeAction(s string) (action Action, err error) {
	switch strings.ToLower(s) {
	case "mine":
		action = Mark
	case "free":
		action = Free
	default:
		err = ErrUnknownAction
	}
	return
}

// Command is a parsed player move with 0-based coordinates.
type Command struct {
	Row, Col int
	Action   Action
}

func parseColRow(twoStrings []string) (col int, row int, err error) {
	if col, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("%w: column must be an int", ErrMalformedCommand)
		return
	}
	if row, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("%w: row must be an int", ErrMalformedCommand)
		return
	}
	return
}

// ParseCommand reads "<col> <row> <action>" with 1-based coordinates,
// column first.
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return Command{}, fmt.Errorf(
			"%w: want 3 arguments, have %d", ErrMalformedCommand, len(parts),
		)
	}
	col, row, err := parseColRow(parts[:2])
	if err != nil {
		return Command{}, err
	}
	action, err := decodeAction(parts[2])
	if err != nil {
		return Command{}, err
	}
	return Command{Row: row - 1, Col: col - 1, Action: action}, nil
}
