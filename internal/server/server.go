// Package server hosts the Spectrum DS page and theme API over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/spectrum/internal/config"
	"github.com/alexisbeaulieu97/spectrum/internal/logger"
)

// DefaultAddr is the listen address used when Config.Addr is empty.
const DefaultAddr = "localhost:8080"

const shutdownTimeout = 5 * time.Second

// Config controls how the server is built.
type Config struct {
	Addr         string
	EnableCORS   bool
	Debug        bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns the settings used by `spectrum serve`.
func DefaultConfig() Config {
	return Config{
		Addr:         DefaultAddr,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

// Server serves the page, the stylesheet snippet and the theme API.
type Server struct {
	cfg     Config
	presets *config.File
	log     *logger.Logger
	engine  *gin.Engine
}

// New builds a server for presets. A nil presets file uses the built-ins.
func New(cfg Config, presets *config.File, log *logger.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if presets == nil {
		presets = config.Builtin()
	}
	if log == nil {
		log = logger.Nop()
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))
	if cfg.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{http.MethodGet, http.MethodOptions}
		engine.Use(cors.New(corsConfig))
	}

	s := &Server{
		cfg:     cfg,
		presets: presets,
		log:     log,
		engine:  engine,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/", s.handlePage)
	s.engine.GET("/theme.css", s.handleStylesheet)
	s.engine.GET("/api/theme", s.handleTheme)
	s.engine.GET("/healthz", s.handleHealth)
}

// Handler exposes the routes, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(map[string]any{"addr": s.cfg.Addr}).Info("server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
