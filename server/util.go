package server

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/qaforge/qaforge/config"
	"github.com/qaforge/qaforge/errors"
)

// checkOrigin validates a request origin against the configured allow
// list. Prefix matching lets any port on an allowed host through.
func checkOrigin(r *http.Request, cfg *config.Config) bool {
	origin := r.Header.Get("Origin")

	// Requests without an Origin header (curl, tests) pass through
	if origin == "" {
		return true
	}

	allowed := cfg.Server.AllowedOrigins
	if len(allowed) == 0 {
		return strings.HasPrefix(origin, "http://localhost") ||
			strings.HasPrefix(origin, "https://localhost")
	}

	for _, allowedOrigin := range allowed {
		if strings.HasPrefix(origin, allowedOrigin) {
			return true
		}
	}
	return false
}

// isPortAvailable checks if a port is available for binding
func isPortAvailable(port int) bool {
	addr := fmt.Sprintf(":%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return false
	}
	listener.Close()
	return true
}

// findAvailablePort returns the requested port if free, then the
// default port, then scans the range above the default.
func findAvailablePort(requestedPort int) (int, error) {
	if isPortAvailable(requestedPort) {
		return requestedPort, nil
	}

	if requestedPort != config.DefaultServerPort && isPortAvailable(config.DefaultServerPort) {
		return config.DefaultServerPort, nil
	}

	for i := 1; i <= config.FallbackPortScan; i++ {
		port := config.DefaultServerPort + i
		if port != requestedPort && isPortAvailable(port) {
			return port, nil
		}
	}

	return 0, errors.Newf("no available port found (tried %d and %d-%d)",
		requestedPort, config.DefaultServerPort, config.DefaultServerPort+config.FallbackPortScan)
}
