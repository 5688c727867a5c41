// Package server exposes the upload pipeline over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mateusribeiro/certidao-ocr/internal/common"
	"github.com/mateusribeiro/certidao-ocr/internal/export"
)

type Server struct {
	http   *http.Server
	logger *slog.Logger
}

func NewServer(cfg common.Config, jobs JobRunner, audit JobRecorder, exportSvc *export.Service, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(logger))
	engine.Use(MaxBodySize(cfg.Server.MaxUploadBytes))
	engine.Use(CORS())

	api := NewAPI(cfg, jobs, audit, exportSvc, logger)
	registerRoutes(engine, api)

	return &Server{
		http: &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Run() error {
	s.logger.Info("server.listen", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server.shutdown")
	return s.http.Shutdown(ctx)
}
