package field

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("tile is unavailable")
	ErrOutOfBounds       = fmt.Errorf("outside the field: %w", ErrUnavailable)
	ErrAlreadyUncovered  = fmt.Errorf("already uncovered: %w", ErrUnavailable)
	ErrMarkLimitExceeded = errors.New("mark count can't exceed mine count")
)

type InvalidMineCountError struct {
	Count int
}

// [InvalidMineCountError] implements [error]
func (e InvalidMineCountError) Error() string {
	return fmt.Sprintf(
		"invalid mine count %d: must be between %d and %d",
		e.Count, MinMines, MaxMines,
	)
}
