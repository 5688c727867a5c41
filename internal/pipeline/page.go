package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mateusribeiro/certidao-ocr/internal/common"
	"github.com/mateusribeiro/certidao-ocr/internal/notify"
	"github.com/mateusribeiro/certidao-ocr/internal/ocr"
	"github.com/mateusribeiro/certidao-ocr/internal/progress"
)

// progressEvent is the event name published for every throttled progress
// update and for the terminal 100%.
const progressEvent = "ocrProgress"

// PageProcessor recognizes one rasterized page image. It owns the image file
// for the duration of Process and deletes it exactly once on every exit path.
type PageProcessor struct {
	engine   ocr.Engine
	sink     notify.Sink
	language string
	logger   *slog.Logger
}

func NewPageProcessor(engine ocr.Engine, sink notify.Sink, language string, logger *slog.Logger) *PageProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	if language == "" {
		language = "por"
	}
	return &PageProcessor{engine: engine, sink: sink, language: language, logger: logger}
}

// Process runs OCR for imagePath, streaming throttled progress to channelID.
// A fresh reporter is scoped to this image, so a later page's 10% can never be
// suppressed by an earlier page's watermark. The terminal 100% is published
// and the image removed whether recognition succeeded or failed.
func (p *PageProcessor) Process(ctx context.Context, imagePath, channelID string) (string, error) {
	image := filepath.Base(imagePath)
	reporter := progress.NewReporter(image, func(ev progress.Event) {
		p.sink.Publish(ctx, channelID, progressEvent, ev)
	})

	defer func() {
		p.sink.Publish(ctx, channelID, progressEvent, progress.Event{Image: image, Progress: 100})
		if err := os.Remove(imagePath); err != nil {
			p.logger.Warn("pipeline.page.cleanup_failed", "image", image, "error", err)
		} else {
			p.logger.Debug("pipeline.page.cleaned", "image", image)
		}
	}()

	text, err := p.engine.Recognize(ctx, imagePath, p.language, func(status string, fraction float64) {
		if status == ocr.StatusRecognizing {
			reporter.Observe(fraction)
		}
	})
	if err != nil {
		return "", common.NewFailure(common.KindOCRError,
			fmt.Sprintf("recognition failed for %s", image), err)
	}

	return ocr.Normalize(text), nil
}
