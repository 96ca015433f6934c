package server

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// hostLimiter applies a per-host token bucket to the generate endpoint.
// Buckets are keyed by remote host so one noisy client cannot starve
// the rest.
type hostLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// newHostLimiter allows ratePerMinute requests per host with a small
// burst. Zero or negative disables limiting.
func newHostLimiter(ratePerMinute int) *hostLimiter {
	l := &hostLimiter{buckets: make(map[string]*rate.Limiter)}
	l.configure(ratePerMinute)
	return l
}

func (l *hostLimiter) configure(ratePerMinute int) {
	if ratePerMinute <= 0 {
		l.limit = rate.Inf
		l.burst = 0
		return
	}
	l.limit = rate.Limit(float64(ratePerMinute) / 60.0)
	l.burst = ratePerMinute
}

// setRate replaces the limit and resets existing buckets
func (l *hostLimiter) setRate(ratePerMinute int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.configure(ratePerMinute)
	l.buckets = make(map[string]*rate.Limiter)
}

// allow reports whether the host may proceed
func (l *hostLimiter) allow(host string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.limit == rate.Inf {
		return true
	}

	bucket, ok := l.buckets[host]
	if !ok {
		bucket = rate.NewLimiter(l.limit, l.burst)
		l.buckets[host] = bucket
	}
	return bucket.Allow()
}

// requestHost extracts the host part of the remote address
func requestHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// rateLimitMiddleware rejects over-limit requests with 429
func (s *Server) rateLimitMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.allow(requestHost(r)) {
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded, try again later")
			return
		}
		next(w, r)
	}
}
