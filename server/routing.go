package server

import (
	"net/http"
)

// setupHTTPRoutes configures all HTTP handlers on a fresh mux
func (s *Server) setupHTTPRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", s.corsMiddleware(s.HandleHealth))
	mux.HandleFunc("/api/generate", s.corsMiddleware(s.rateLimitMiddleware(s.HandleGenerate)))
	mux.HandleFunc("/api/download/", s.corsMiddleware(s.HandleDownload))
	mux.HandleFunc("/api/credentials/status", s.corsMiddleware(s.HandleCredentialStatus))

	return mux
}

// corsMiddleware sets CORS headers for allowed origins and answers
// preflight requests.
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		s.mu.RLock()
		cfg := s.cfg
		s.mu.RUnlock()

		if origin != "" && checkOrigin(r, cfg) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}
