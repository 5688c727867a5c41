package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Progress statuses reported by engines. Only StatusRecognizing carries
// fractions that track actual recognition work; the rest are setup markers.
const (
	StatusLoading     = "loading image"
	StatusRecognizing = "recognizing text"
)

// ProgressFunc receives raw engine progress: a status label and a fraction in
// [0,1]. Callbacks may fire at any frequency and need not be monotonic.
type ProgressFunc func(status string, fraction float64)

// Engine recognizes text in a single page image.
type Engine interface {
	Recognize(ctx context.Context, imagePath, language string, onProgress ProgressFunc) (string, error)
}

// TesseractEngine implements Engine on top of the Tesseract C API via
// gosseract. One client is created per image; recognition is single-flight
// per call to bound memory.
type TesseractEngine struct {
	tessdataDir   string
	clientFactory func() *gosseract.Client
}

func NewTesseractEngine(tessdataDir string) *TesseractEngine {
	return &TesseractEngine{
		tessdataDir:   tessdataDir,
		clientFactory: gosseract.NewClient,
	}
}

// Recognize runs OCR over the image at imagePath. The Tesseract API exposes no
// incremental progress, so the stream is coarse: 0 when recognition starts and
// 1 when it completes. Callers must not rely on intermediate fractions.
func (e *TesseractEngine) Recognize(ctx context.Context, imagePath, language string, onProgress ProgressFunc) (string, error) {
	report := func(status string, fraction float64) {
		if onProgress != nil {
			onProgress(status, fraction)
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := e.clientFactory()
	defer c.Close()

	report(StatusLoading, 0)
	if e.tessdataDir != "" {
		if err := c.SetTessdataPrefix(e.tessdataDir); err != nil {
			return "", fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := c.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if language != "" {
		if err := c.SetLanguage(language); err != nil {
			return "", fmt.Errorf("set language: %w", err)
		}
	}

	report(StatusRecognizing, 0)
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	report(StatusRecognizing, 1)

	return text, nil
}
