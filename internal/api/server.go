package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_sync/internal/config"
)

type Server struct {
	config     config.ServerConfig
	handler    *Handler
	logger     *slog.Logger
	httpServer *http.Server
}

func NewServer(cfg config.ServerConfig, handler *Handler, logger *slog.Logger) *Server {
	s := &Server{
		config:  cfg,
		handler: handler,
		logger:  logger.With("component", "http_server"),
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	return s
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	if s.config.GinMode != "" {
		gin.SetMode(s.config.GinMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(Recovery(s.logger))
	router.Use(RequestLogger(s.logger))
	router.Use(SetupCORS())

	SetupRoutes(router, s.handler)
	return router
}

// Start blocks until the server stops. A clean Shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("starting api server", "address", s.config.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down api server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
