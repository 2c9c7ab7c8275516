package server

import (
	"bytes"
	"fmt"
	"iter"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/field"
	"github.com/vancomm/minesweeper-cli/internal/game"
)

type playParams struct {
	Mines int    `schema:"mines"`
	Seed  uint64 `schema:"seed"`
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

func (s *Server) newSession(r *http.Request) (*game.Session, error) {
	params := playParams{
		Mines: s.config.MineCount,
		Seed:  s.config.Seed,
	}
	if err := s.decoder.Decode(&params, r.URL.Query()); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	if params.Mines == 0 {
		params.Mines = DefaultMineCount
	}

	grid, err := field.New(params.Mines, game.NewRand(params.Seed))
	if err != nil {
		return nil, err
	}

	log := s.log.WithFields(logrus.Fields{
		"remoteAddr": r.RemoteAddr,
		"mines":      params.Mines,
		"seed":       params.Seed,
	})
	return game.NewSession(grid, log), nil
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	session, err := s.newSession(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	c, err := s.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		s.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer c.Close()

	s.log.Debug("established WS connection")

	if err := s.play(c, session); err != nil {
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			s.log.WithError(err).Warn("abnormal ws break")
		}
	}
}

// play answers every text frame with the feedback for each command line in
// it, followed by the prompt while the game goes on.
func (s *Server) play(c *websocket.Conn, session *game.Session) error {
	var buf bytes.Buffer
	buf.WriteString(game.Board(session.Grid()))
	buf.WriteString(game.MsgPrompt + "\n")
	if err := c.WriteMessage(websocket.TextMessage, buf.Bytes()); err != nil {
		return err
	}

	for !session.Over() {
		if timeout := s.ws.IdleTimeout.Duration; timeout > 0 {
			c.SetReadDeadline(time.Now().Add(timeout))
		}
		mt, message, err := c.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		text := strings.TrimSpace(string(message))
		s.log.Debug("\t> ", text)

		buf.Reset()
		for _, line := range byPiece(text, "\n") {
			if err := session.Handle(&buf, strings.TrimSpace(line)); err != nil {
				return err
			}
			if session.Over() {
				break
			}
		}
		if !session.Over() {
			buf.WriteString(game.MsgPrompt + "\n")
		}
		if err := c.WriteMessage(websocket.TextMessage, buf.Bytes()); err != nil {
			return err
		}
		s.log.Debug("\t< <board>")
	}

	return c.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, session.Outcome().String()),
		time.Now().Add(time.Second),
	)
}
