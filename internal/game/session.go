package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/field"
)

var Log = logrus.New()

const (
	MsgMineCount   = "How many mines do you want on the field?"
	MsgPrompt      = "Set/unset mines marks or claim a cell as free:"
	MsgUnavailable = "It is outside the field or already uncovered!"
	MsgMarkLimit   = "The number of marked cells can't be more than mines!"
	MsgLost        = "You stepped on a mine and failed!"
	MsgWon         = "Congratulations! You found all the mines!"
	MsgUnknown     = `Unknown action, use "mine" or "free"!`
	MsgMalformed   = `Type a column, a row and an action, e.g. "3 5 free"!`
	MsgGameOver    = "The game is over!"
)

var ErrGameOver = errors.New("game is over")

type Outcome uint8

const (
	Continue Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", o)
	}
}

// Session drives one game on one grid. Commands must be executed one at a
// time.
type Session struct {
	grid    *field.Grid
	outcome Outcome
	log     *logrus.Entry
}

func NewSession(grid *field.Grid, log *logrus.Entry) *Session {
	if log == nil {
		log = logrus.NewEntry(Log)
	}
	return &Session{grid: grid, log: log}
}

func (s *Session) Grid() *field.Grid { return s.grid }

func (s *Session) Outcome() Outcome { return s.outcome }

func (s *Session) Over() bool { return s.outcome != Continue }

func (s *Session) evaluate() Outcome {
	if !s.grid.AllMinesCovered() {
		return Lost
	}
	if s.grid.AllMinesMarked() || s.grid.AllDirtsCovered() {
		return Won
	}
	return Continue
}

func (s *Session) Apply(cmd Command) (Outcome, error) {
	if s.Over() {
		return s.outcome, ErrGameOver
	}

	var err error
	switch cmd.Action {
	case Mark:
		err = s.grid.ToggleMark(cmd.Row, cmd.Col)
	case Free:
		err = s.grid.Uncover(cmd.Row, cmd.Col)
	default:
		err = ErrUnknownAction
	}
	if err != nil {
		return s.outcome, err
	}

	s.outcome = s.evaluate()
	s.log.WithFields(logrus.Fields{
		"row":     cmd.Row,
		"col":     cmd.Col,
		"action":  cmd.Action.String(),
		"marks":   s.grid.MarkCount(),
		"outcome": s.outcome.String(),
	}).Debug("command applied")
	return s.outcome, nil
}

// Execute parses and applies one raw command line.
func (s *Session) Execute(line string) (Outcome, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return s.outcome, err
	}
	return s.Apply(cmd)
}

func message(err error) string {
	switch {
	case errors.Is(err, field.ErrUnavailable):
		return MsgUnavailable
	case errors.Is(err, field.ErrMarkLimitExceeded):
		return MsgMarkLimit
	case errors.Is(err, ErrUnknownAction):
		return MsgUnknown
	case errors.Is(err, ErrMalformedCommand):
		return MsgMalformed
	case errors.Is(err, ErrGameOver):
		return MsgGameOver
	default:
		return err.Error()
	}
}

// Handle executes line and writes the player-facing feedback to w: an
// error message, or the board followed by the verdict once the game ends.
func (s *Session) Handle(w io.Writer, line string) error {
	_, err := s.Execute(line)
	if err != nil {
		s.log.WithError(err).WithField("line", line).Debug("command rejected")
		_, werr := fmt.Fprintln(w, message(err))
		return werr
	}

	if _, err := io.WriteString(w, Board(s.grid)); err != nil {
		return err
	}
	switch s.outcome {
	case Lost:
		_, err = fmt.Fprintln(w, MsgLost)
	case Won:
		_, err = fmt.Fprintln(w, MsgWon)
	}
	if s.Over() {
		s.log.WithField("outcome", s.outcome.String()).Info("game over")
	}
	return err
}
