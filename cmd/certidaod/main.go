package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/mateusribeiro/certidao-ocr/gen/ent"
	"github.com/mateusribeiro/certidao-ocr/internal/common"
	"github.com/mateusribeiro/certidao-ocr/internal/export"
	"github.com/mateusribeiro/certidao-ocr/internal/notify"
	"github.com/mateusribeiro/certidao-ocr/internal/ocr"
	"github.com/mateusribeiro/certidao-ocr/internal/pipeline"
	"github.com/mateusribeiro/certidao-ocr/internal/repository"
	"github.com/mateusribeiro/certidao-ocr/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	for _, dir := range []string{cfg.Dirs.UploadDir, cfg.Dirs.ScratchDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("create working dir", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Progress sink: Redis when configured, otherwise a no-op.
	var sink notify.Sink = notify.NopSink{}
	if cfg.Notify.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Notify.RedisAddr,
			Password: cfg.Notify.RedisPassword,
		})
		defer rdb.Close()
		sink = notify.NewRedisSink(rdb, logger)
		logger.Info("progress sink enabled", "redis", cfg.Notify.RedisAddr)
	}

	// Job journal: optional, enabled by DB_URL.
	var audit server.JobRecorder
	var exportSvc *export.Service
	if cfg.Database.DSN != "" {
		entc, pool, err := repository.Open(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("open journal", "error", err)
			os.Exit(1)
		}
		defer repository.Close(entc, pool, logger)

		if err := migrate(ctx, entc); err != nil {
			logger.Error("journal migration", "error", err)
			os.Exit(1)
		}

		jobs := repository.NewScanJobRepository(entc, logger)
		audit = repository.NewAuditor(jobs, logger)
		exportSvc = export.NewService(jobs, logger)
		logger.Info("job journal enabled")
	}

	raster := ocr.NewRasterizer(ocr.RasterConfig{
		Pdftoppm: cfg.OCR.Pdftoppm,
		DPI:      cfg.OCR.DPI,
		MaxPages: cfg.OCR.MaxPages,
	}, logger)
	engine := ocr.NewTesseractEngine(cfg.OCR.TessdataDir)
	pages := pipeline.NewPageProcessor(engine, sink, cfg.OCR.Language, logger)
	orch := pipeline.NewOrchestrator(raster, pages, cfg.Dirs.ScratchDir, logger)

	srv := server.NewServer(*cfg, orch, audit, exportSvc, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("stopped")
}

func migrate(ctx context.Context, entc *ent.Client) error {
	mctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return entc.Schema.Create(mctx)
}
