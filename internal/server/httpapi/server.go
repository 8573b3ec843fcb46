// Package httpapi exposes the account lifecycle over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/accountd/internal/logging"
	"github.com/dmitrijs2005/accountd/internal/server/accounts"
	"github.com/dmitrijs2005/accountd/internal/server/token"
)

// Server owns the HTTP listener and routes requests to the account service.
type Server struct {
	accounts *accounts.Service
	issuer   *token.Issuer
	logger   logging.Logger
	server   *http.Server
}

func NewServer(addr string, svc *accounts.Service, issuer *token.Issuer, allowedOrigins []string, logger logging.Logger) *Server {
	s := &Server{
		accounts: svc,
		issuer:   issuer,
		logger:   logger,
	}
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.routes(allowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Run serves until the context is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "http server starting", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
