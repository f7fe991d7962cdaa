package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "frotaweb/docs" // swagger docs
	"frotaweb/pkg/config"
	"frotaweb/pkg/handlers"
	"frotaweb/pkg/logger"
	"frotaweb/pkg/middleware"
	"frotaweb/pkg/pages"
	"frotaweb/pkg/scheduler"
	"frotaweb/pkg/web"
)

// Server constants
const (
	DefaultIdleTimeout = 120 * time.Second
	APIPrefix          = "/api/v1"
)

// Config holds HTTP server configuration
type Config struct {
	Config *config.Config
}

// HTTPServer represents the HTTP server component
type HTTPServer struct {
	server     *http.Server
	engine     *gin.Engine
	config     *Config
	ctx        context.Context
	handlerSvc *handlers.HandlerService
	limiter    *middleware.ClientLimiter
}

// NewHTTPServer creates a new HTTP server instance
func NewHTTPServer(ctx context.Context, cfg *Config) (*HTTPServer, error) {
	serverCfg := cfg.Config.Server
	logger.Info("Initializing HTTP server",
		zap.String("address", serverCfg.Address),
		zap.Int("port", serverCfg.Port))

	handlerSvc, err := handlers.NewHandlerService(ctx, cfg.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create handler service: %w", err)
	}

	s := &HTTPServer{
		engine:     gin.New(),
		config:     cfg,
		ctx:        ctx,
		handlerSvc: handlerSvc,
	}
	if rl := cfg.Config.RateLimit; rl.Enabled {
		s.limiter = middleware.NewClientLimiter(rl.RequestsPerMinute, rl.Burst)
	}

	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", serverCfg.Address, serverCfg.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  time.Duration(serverCfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(serverCfg.WriteTimeout) * time.Second,
		IdleTimeout:  DefaultIdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	logger.Info("HTTP server initialized", zap.String("listen_addr", addr))
	return s, nil
}

// Handler returns the routed gin engine
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Routes lists the registered routes
func (s *HTTPServer) Routes() gin.RoutesInfo {
	return s.engine.Routes()
}

// HandlerService returns the handler service
func (s *HTTPServer) HandlerService() *handlers.HandlerService {
	return s.handlerSvc
}

// Pruners lists the in-memory tables the scheduler should expire
func (s *HTTPServer) Pruners() []scheduler.Pruner {
	pruners := []scheduler.Pruner{s.handlerSvc.GetGuard()}
	if s.limiter != nil {
		pruners = append(pruners, s.limiter)
	}
	return pruners
}

// SetScheduler sets the scheduler reference in the handler service
func (s *HTTPServer) SetScheduler(ts *scheduler.TaskScheduler) {
	s.handlerSvc.SetScheduler(ts)
}

// setupRoutes configures all HTTP routes
func (s *HTTPServer) setupRoutes() {
	h := s.handlerSvc

	s.engine.Use(
		middleware.RequestID(),
		middleware.GinZapLogger(logger.Logger),
		middleware.Recovery(h.RenderFailure),
		middleware.ErrorHandler(h.RenderFailure),
		middleware.Locale(h.DefaultLocale()),
	)

	s.engine.GET("/health", h.HealthCheck)
	s.engine.GET("/sitemap.xml", h.Sitemap)
	s.engine.GET("/robots.txt", h.Robots)

	s.engine.StaticFS("/static", http.FS(web.Static()))
	if dir := s.config.Config.Server.AssetsDir; dir != "" {
		s.engine.Static("/imagens", filepath.Join(dir, "imagens"))
	}

	if s.config.Config.Server.EnableSwagger {
		s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	s.setupPageRoutes()
	s.setupAPIRoutes()

	s.engine.NoRoute(h.NotFound)

	logger.Info("HTTP routes configured", zap.Int("routes", len(s.engine.Routes())))
}

// setupPageRoutes registers every page, the form endpoints and the carousel streams
func (s *HTTPServer) setupPageRoutes() {
	h := s.handlerSvc

	for _, d := range pages.Routes() {
		s.engine.GET(d.Route, h.ServePage)
	}

	forms := s.engine.Group("/forms")
	forms.Use(middleware.RateLimit(s.limiter, h.RenderFailure))
	forms.POST("/:kind", h.SubmitForm)

	s.engine.GET("/carousel/:name/stream", h.StreamCarousel)
}

// setupAPIRoutes configures API v1 routes
func (s *HTTPServer) setupAPIRoutes() {
	h := s.handlerSvc

	api := s.engine.Group(APIPrefix)
	api.Use(cors.New(s.corsConfig()))

	api.GET("/status", h.GetStatus)
	api.GET("/cities", h.GetCities)
	api.GET("/reference", h.GetReference)
	api.GET("/organization", h.GetOrganization)
	api.GET("/pages", h.GetPages)
}

func (s *HTTPServer) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	origins := s.config.Config.Server.AllowedOrigins
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Start starts the HTTP server
func (s *HTTPServer) Start() error {
	logger.Info("Starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	return nil
}
