// Package server exposes the generation pipeline over an HTTP JSON API:
// health, generate, artifact download, and credential status.
package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/qaforge/qaforge/config"
	"github.com/qaforge/qaforge/gen"
	"github.com/qaforge/qaforge/logger"
	"github.com/qaforge/qaforge/publish"
)

// Server wires the generator, the artifact writer and the publisher
// behind the HTTP API.
type Server struct {
	cfg       *config.Config
	generator *gen.Generator
	writer    *gen.Writer
	limiter   *hostLimiter

	mu        sync.RWMutex
	publisher *publish.Publisher

	httpServer *http.Server
	watcher    *config.Watcher
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewServer assembles a server from loaded config. Publishing starts in
// whatever state the credentials allow; a missing credential source is
// not an error.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	writer := gen.NewWriter(cfg.Output.Dir)
	generator := gen.NewGenerator(writer, gen.OptionsFromConfig(cfg))

	publisher, err := publish.NewPublisher(ctx, resolvePublishCreds(ctx, cfg), cfg.Publish.ShareAnyone)
	if err != nil {
		return nil, err
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		cfg:       cfg,
		generator: generator,
		writer:    writer,
		limiter:   newHostLimiter(cfg.Server.RatePerMinute),
		publisher: publisher,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// resolvePublishCreds resolves Google credentials when publishing is
// enabled. A disabled adapter or malformed credentials both come back
// as SourceNone; local generation never blocks on publish setup.
func resolvePublishCreds(ctx context.Context, cfg *config.Config) *publish.Credentials {
	if !cfg.Publish.Enabled {
		return &publish.Credentials{Source: publish.SourceNone}
	}
	creds, err := publish.ResolveCredentials(ctx, cfg.Publish.CredentialsFile)
	if err != nil {
		logger.Warnw("Failed to resolve Google credentials, publishing disabled", "error", err)
		return &publish.Credentials{Source: publish.SourceNone}
	}
	return creds
}

// Publisher returns the current publisher; config reloads may swap it
func (s *Server) Publisher() *publish.Publisher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.publisher
}

// applyConfig absorbs a reloaded config: generation options, rate
// limits, and a re-resolved publisher.
func (s *Server) applyConfig(cfg *config.Config) error {
	s.generator.SetOptions(gen.OptionsFromConfig(cfg))
	s.limiter.setRate(cfg.Server.RatePerMinute)

	publisher, err := publish.NewPublisher(s.ctx, resolvePublishCreds(s.ctx, cfg), cfg.Publish.ShareAnyone)
	if err != nil {
		logger.Warnw("Publisher rebuild failed on reload, keeping previous publisher", "error", err)
		return nil
	}

	s.mu.Lock()
	s.cfg = cfg
	s.publisher = publisher
	s.mu.Unlock()

	logger.Infow("Server config applied",
		"rate_per_minute", cfg.Server.RatePerMinute,
		"plan_format", cfg.Generate.PlanFormat,
		"publish_source", publisher.CredentialSource())
	return nil
}
