// Command runocr runs the scan pipeline over a local PDF and prints the
// result document as JSON. Useful for smoke-testing the OCR stack without the
// HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/mateusribeiro/certidao-ocr/internal/common"
	"github.com/mateusribeiro/certidao-ocr/internal/extract"
	"github.com/mateusribeiro/certidao-ocr/internal/notify"
	"github.com/mateusribeiro/certidao-ocr/internal/ocr"
	"github.com/mateusribeiro/certidao-ocr/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <file.pdf>")
		os.Exit(2)
	}
	source := os.Args[1]
	if _, err := os.Stat(source); err != nil {
		logger.Error("cannot read input", "file", source, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	scratch, err := os.MkdirTemp("", "runocr-*")
	if err != nil {
		logger.Error("create scratch dir", "error", err)
		os.Exit(1)
	}
	defer os.RemoveAll(scratch)

	// The pipeline deletes its source on completion; work on a copy so the
	// caller keeps their file.
	work := filepath.Join(scratch, filepath.Base(source))
	if err := copyFile(source, work); err != nil {
		logger.Error("stage input", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	raster := ocr.NewRasterizer(ocr.RasterConfig{
		Pdftoppm: cfg.OCR.Pdftoppm,
		DPI:      cfg.OCR.DPI,
		MaxPages: cfg.OCR.MaxPages,
	}, logger)
	engine := ocr.NewTesseractEngine(cfg.OCR.TessdataDir)
	pages := pipeline.NewPageProcessor(engine, notify.NopSink{}, cfg.OCR.Language, logger)
	orch := pipeline.NewOrchestrator(raster, pages, scratch, logger)

	start := time.Now()
	result, err := orch.Run(ctx, work, filepath.Base(source), "")
	if err != nil {
		logger.Error("scan failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("marshal result", "error", err)
		os.Exit(1)
	}
	if err := extract.ValidateJSONAgainstSchema(extract.BuildResultJSONSchema(), data); err != nil {
		logger.Error("result failed schema validation", "error", err)
		os.Exit(1)
	}

	logger.Info("scan OK",
		"pages", len(result.Pages),
		"type", result.Fields.CertificateType,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	fmt.Println(string(data))
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
