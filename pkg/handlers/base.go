package handlers

import (
	"context"
	"fmt"
	"time"

	"frotaweb/pkg/config"
	"frotaweb/pkg/i18n"
	"frotaweb/pkg/leadform"
	"frotaweb/pkg/logger"
	"frotaweb/pkg/pages"
	"frotaweb/pkg/relay"
	"frotaweb/pkg/scheduler"
	"frotaweb/pkg/web"

	"go.uber.org/zap"
)

// Version is reported by the health and status endpoints.
const Version = "1.0.0"

// ServiceName identifies the service in health responses.
const ServiceName = "frotaweb"

// HandlerService provides the HTTP handlers of the site and its API
type HandlerService struct {
	config    *config.Config
	ctx       context.Context
	resolver  *pages.Resolver
	renderer  *web.Renderer
	relay     *relay.Client
	sender    leadform.Sender
	guard     *leadform.Guard
	scheduler *scheduler.TaskScheduler
	startedAt time.Time

	// tickInterval overrides the carousel interval of every set when positive.
	tickInterval time.Duration
}

// NewHandlerService creates a new handler service
func NewHandlerService(ctx context.Context, cfg *config.Config) (*HandlerService, error) {
	logger.Info("Initializing handler service")

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	relayClient, err := relay.NewClient(&relay.Config{
		BaseURL:   cfg.Relay.BaseURL,
		Email:     cfg.Relay.Email,
		Timeout:   cfg.Relay.TimeoutDuration(),
		UserAgent: cfg.Relay.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create relay client: %w", err)
	}

	resolver := pages.NewResolver(pages.Options{
		SEO:          cfg.Site.SEOBuilder(),
		FinanceEmail: cfg.Site.FinanceEmail,
	})

	logger.Info("Handler service initialized",
		zap.String("relay_endpoint", relayClient.Endpoint()),
		zap.Int("pages", len(pages.Routes())))

	return &HandlerService{
		config:    cfg,
		ctx:       ctx,
		resolver:  resolver,
		renderer:  renderer,
		relay:     relayClient,
		sender:    relayClient,
		guard:     leadform.NewGuard(cfg.RateLimit.DuplicateWindowDuration()),
		startedAt: time.Now(),
	}, nil
}

// SetScheduler sets the scheduler reference (called after scheduler is created)
func (h *HandlerService) SetScheduler(s *scheduler.TaskScheduler) {
	h.scheduler = s
}

// SetSender replaces the relay as the destination of form submissions
func (h *HandlerService) SetSender(s leadform.Sender) {
	h.sender = s
}

// GetRelay returns the relay client, probed by the scheduler
func (h *HandlerService) GetRelay() *relay.Client {
	return h.relay
}

// GetGuard returns the submission token guard, pruned by the scheduler
func (h *HandlerService) GetGuard() *leadform.Guard {
	return h.guard
}

// IsSchedulerAvailable checks if scheduler is available
func (h *HandlerService) IsSchedulerAvailable() bool {
	return h.scheduler != nil
}

// DefaultLocale is the site locale used when the visitor expressed no preference
func (h *HandlerService) DefaultLocale() i18n.Locale {
	return i18n.ParseLocale(h.config.Site.DefaultLocale)
}
