package httpserver

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// httpServer builds the listener config shared by plain and TLS modes so the
// configured timeouts apply to both.
func (s *Server) httpServer() (*http.Server, error) {
	srv := &http.Server{
		Addr:         net.JoinHostPort(s.config.Host, s.config.Port),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}
	if s.config.TLSCertFile == "" || s.config.TLSKeyFile == "" {
		return srv, nil
	}
	cert, err := tls.LoadX509KeyPair(s.config.TLSCertFile, s.config.TLSKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS key pair: %w", err)
	}
	srv.TLSConfig = &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}
	return srv, nil
}

// Start blocks serving requests until Shutdown; it returns http.ErrServerClosed after a clean stop.
func (s *Server) Start() error {
	s.LogMetricsInitialization()

	srv, err := s.httpServer()
	if err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"addr":        srv.Addr,
		"tls":         srv.TLSConfig != nil,
		"environment": s.config.Environment,
	}).Info("edge cache listening")
	return s.echo.StartServer(srv)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("draining in-flight requests")
	return s.echo.Shutdown(ctx)
}

// Echo exposes the router for in-process tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
