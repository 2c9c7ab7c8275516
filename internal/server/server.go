package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/middleware"
	"golang.org/x/sync/errgroup"
)

const DefaultMineCount = 10

// Server lets players play over websocket connections, one game per
// connection.
type Server struct {
	log     *logrus.Entry
	config  *config.Config
	ws      *config.WebSocket
	decoder *schema.Decoder
}

func New(c *config.Config, log *logrus.Entry) (*Server, error) {
	ws, err := config.NewWebSocket(c)
	if err != nil {
		return nil, err
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Server{
		log:     log,
		config:  c,
		ws:      ws,
		decoder: decoder,
	}, nil
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /play", s.handlePlay)
	return mux
}

func (s *Server) Handler() http.Handler {
	return middleware.Wrap(s.ServeMux(),
		middleware.Cors(),
		middleware.Logging(s.log),
	)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.config.Addr,
		Handler: s.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	s.log.Infof("ready to serve @ %s", s.config.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
