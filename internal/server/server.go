package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/osouza/go-user-accounts/internal/config"
	"github.com/osouza/go-user-accounts/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wraps the given router in an HTTP server bound to the configured
// listen address.
func NewServer(router http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	address := cfg.ListenAddress()
	if address == "" {
		return nil, errNoListenAddress
	}

	return &server{
		httpServer: newHTTPServer(router, address, cfg.RequestTimeout, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until a stop signal arrives, then shuts down gracefully.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}
