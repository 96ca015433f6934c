package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/qaforge/qaforge/config"
	"github.com/qaforge/qaforge/errors"
	"github.com/qaforge/qaforge/logger"
)

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 10 * time.Second

// Start binds the listener and serves until Stop or a listener error.
// The configured port falls back to the default range when taken, and a
// config watcher keeps reload-safe settings live.
func (s *Server) Start(port int) error {
	actualPort, err := findAvailablePort(port)
	if err != nil {
		return errors.Wrap(err, "failed to find available port")
	}

	if actualPort != port {
		logger.Infow("Port in use, using alternative",
			"requested_port", port,
			"actual_port", actualPort,
		)
	}

	s.startConfigWatcher()

	mux := s.setupHTTPRoutes()
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", actualPort),
		Handler: mux,
	}

	logger.Infow("Server ready",
		"url", fmt.Sprintf("http://localhost:%d", actualPort),
		"port", actualPort,
		"output_dir", s.writer.Dir(),
		"publish_source", s.Publisher().CredentialSource(),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "http server failed")
	}
	return nil
}

// startConfigWatcher begins watching the project config file if one
// exists; a missing file just means no live reload.
func (s *Server) startConfigWatcher() {
	path := config.ConfigFilePath()
	if path == "" {
		logger.Debugw("No config file found, live reload disabled")
		return
	}

	watcher, err := config.NewWatcher(path)
	if err != nil {
		logger.Warnw("Failed to start config watcher", "path", path, "error", err)
		return
	}

	watcher.OnReload(s.applyConfig)
	watcher.Start()
	s.watcher = watcher
	logger.Infow("Config watcher started", "path", path)
}

// Stop shuts the server down gracefully, draining in-flight requests
// up to ShutdownTimeout.
func (s *Server) Stop() error {
	logger.Infow("Server shutting down")
	s.cancel()

	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			logger.Warnw("Failed to stop config watcher", "error", err)
		}
	}

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return errors.Wrap(err, "http server shutdown failed")
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(ShutdownTimeout):
		logger.Warnw("Shutdown timed out waiting for background work",
			"timeout", ShutdownTimeout)
	}

	logger.Infow("Server stopped")
	return nil
}
