// Package pipeline sequences the scan job: rasterize the uploaded PDF, OCR
// each page in order, extract structured fields, clean up temp artifacts.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mateusribeiro/certidao-ocr/constants"
	"github.com/mateusribeiro/certidao-ocr/internal/common"
	"github.com/mateusribeiro/certidao-ocr/internal/extract"
)

// Rasterizer renders a PDF into per-page images named "<outPrefix>-N" under
// outDir and returns their paths in page order.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath, outDir, outPrefix string) ([]string, error)
}

// PageResult is one recognized page. Immutable once appended.
type PageResult struct {
	Page int    `json:"pagina"`
	Text string `json:"texto"`
}

// JobResult is the response document for one completed scan job.
type JobResult struct {
	File   string         `json:"arquivo"`
	Pages  []PageResult   `json:"paginas"`
	Fields extract.Fields `json:"dadosExtraidos"`
}

// Orchestrator drives a whole job as a strictly sequential pipeline:
// rasterization completes before any OCR begins, and pages are recognized one
// at a time in increasing page order to bound peak memory. Independent jobs
// may run concurrently; scratch filenames are unique per job, so no locking
// is needed.
type Orchestrator struct {
	raster     Rasterizer
	pages      *PageProcessor
	scratchDir string
	logger     *slog.Logger
}

func NewOrchestrator(raster Rasterizer, pages *PageProcessor, scratchDir string, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{raster: raster, pages: pages, scratchDir: scratchDir, logger: logger}
}

// Run processes one uploaded PDF end to end. sourcePath is owned by the
// orchestrator until terminal cleanup; originalName is only used for
// validation and the response; channelID addresses the client's progress
// channel and may be empty.
//
// Failure semantics: a non-PDF name fails before any filesystem mutation; a
// rasterization failure leaves the source file in place for the caller; an
// OCR failure on any page aborts the job atomically (partial pages are
// discarded) but still removes every remaining raster image and the source.
func (o *Orchestrator) Run(ctx context.Context, sourcePath, originalName, channelID string) (*JobResult, error) {
	if !constants.AllowedExt(filepath.Ext(originalName)) {
		return nil, common.NewFailure(common.KindInvalidInput, "only PDF uploads are accepted", nil)
	}

	stored := filepath.Base(sourcePath)
	prefix := strings.TrimSuffix(stored, filepath.Ext(stored))
	log := o.logger.With("file", originalName, "channel", channelID)

	log.Info("pipeline.start", "prefix", prefix)
	images, err := o.raster.Rasterize(ctx, sourcePath, o.scratchDir, prefix)
	if err != nil {
		log.Error("pipeline.raster.failed", "error", err)
		return nil, err
	}
	log.Info("pipeline.raster.ok", "pages", len(images))

	result := &JobResult{File: originalName, Pages: make([]PageResult, 0, len(images))}
	var full strings.Builder

	for i, img := range images {
		page := i + 1
		log.Info("pipeline.page.start", "page", page, "image", filepath.Base(img))
		text, err := o.pages.Process(ctx, img, channelID)
		if err != nil {
			// atomic failure: drop partial pages, but still release every
			// remaining raster image and the source file
			o.removeImages(images[i+1:])
			o.removeSource(sourcePath)
			log.Error("pipeline.page.failed", "page", page, "error", err)
			return nil, err
		}
		result.Pages = append(result.Pages, PageResult{Page: page, Text: text})
		if full.Len() > 0 {
			full.WriteString("\n\n")
		}
		full.WriteString(text)
		log.Info("pipeline.page.ok", "page", page, "bytes", len(text))
	}

	result.Fields = extract.ExtractFields(full.String())
	o.removeSource(sourcePath)

	log.Info("pipeline.ok", "pages", len(result.Pages), "type", result.Fields.CertificateType)
	return result, nil
}

func (o *Orchestrator) removeImages(paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			o.logger.Warn("pipeline.image_cleanup_failed", "image", filepath.Base(p), "error", err)
		}
	}
}

// removeSource deletes the uploaded PDF. Best-effort housekeeping: a failure
// here is logged and never masks the job outcome.
func (o *Orchestrator) removeSource(path string) {
	if err := os.Remove(path); err != nil {
		o.logger.Warn("pipeline.source_cleanup_failed", "file", filepath.Base(path), "error", err)
	}
}
