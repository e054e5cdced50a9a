package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/salinity-service/config"
	"github.com/guttosm/salinity-service/internal/logger"
)

// writeSlack is added to the request timeout so the 504 written by the
// timeout middleware still reaches the client.
const writeSlack = 5 * time.Second

// Server serves an App until its context is cancelled, then drains in-flight
// calculations and flushes request logs.
type Server struct {
	app             *App
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// NewServer prepares a server for a on cfg.Port.
func NewServer(a *App, cfg config.ServerConfig) *Server {
	return &Server{
		app: a,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           a.Engine,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      max(cfg.RequestTimeout, 0) + writeSlack,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
		shutdownTimeout: 10 * time.Second,
	}
}

// Run listens and blocks until ctx is done or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	l := logger.Component("server")
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info().Str("addr", ln.Addr().String()).Msg("Salinity service listening")
		if err := s.httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		l.Info().Msg("Shutting down, draining requests")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return errors.Join(s.httpServer.Shutdown(shutdownCtx), s.app.Close(shutdownCtx))
	})

	err := g.Wait()
	if err != nil {
		l.Error().Err(err).Msg("Server stopped with error")
		return err
	}
	l.Info().Msg("Server stopped")
	return nil
}
