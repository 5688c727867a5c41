package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mateusribeiro/certidao-ocr/internal/common"
	"github.com/mateusribeiro/certidao-ocr/internal/ocr"
)

// fakeRaster materializes page images on disk the way pdftoppm would.
type fakeRaster struct {
	pages int
	err   error
}

func (f *fakeRaster) Rasterize(_ context.Context, _, outDir, outPrefix string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var images []string
	for i := 1; i <= f.pages; i++ {
		path := filepath.Join(outDir, fmt.Sprintf("%s-%d.jpg", outPrefix, i))
		if err := os.WriteFile(path, []byte("jpg"), 0o644); err != nil {
			return nil, err
		}
		images = append(images, path)
	}
	return images, nil
}

// pageTextEngine returns a distinct text per page so ordering is observable.
type pageTextEngine struct {
	texts  map[string]string
	failOn string
}

func (e *pageTextEngine) Recognize(_ context.Context, imagePath, _ string, _ ocr.ProgressFunc) (string, error) {
	base := filepath.Base(imagePath)
	if base == e.failOn {
		return "", errors.New("tesseract: boom")
	}
	return e.texts[base], nil
}

func writeSourcePDF(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestOrchestrator(raster Rasterizer, engine ocr.Engine, scratch string) *Orchestrator {
	pages := NewPageProcessor(engine, &fakeSink{}, "por", nil)
	return NewOrchestrator(raster, pages, scratch, nil)
}

func TestOrchestratorRunSuccess(t *testing.T) {
	scratch := t.TempDir()
	uploads := t.TempDir()
	source := writeSourcePDF(t, uploads, "1700000000-certidao.pdf")

	engine := &pageTextEngine{texts: map[string]string{
		"1700000000-certidao-1.jpg": "CERTIDÃO DE NASCIMENTO\nNome: João da Silva",
		"1700000000-certidao-2.jpg": "CPF: 123.456.789-00\n12/05/1990",
	}}
	o := newTestOrchestrator(&fakeRaster{pages: 2}, engine, scratch)

	result, err := o.Run(context.Background(), source, "certidao.pdf", "chan-1")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.File != "certidao.pdf" {
		t.Errorf("file = %s, want certidao.pdf", result.File)
	}
	if len(result.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(result.Pages))
	}
	for i, p := range result.Pages {
		if p.Page != i+1 {
			t.Errorf("pages[%d].Page = %d, want %d", i, p.Page, i+1)
		}
	}

	// fields come from the concatenation of every page
	if result.Fields.Name == nil || *result.Fields.Name != "João da Silva" {
		t.Errorf("name not extracted: %+v", result.Fields)
	}
	if result.Fields.CPF == nil || *result.Fields.CPF != "12345678900" {
		t.Errorf("cpf not extracted: %+v", result.Fields)
	}
	if result.Fields.CertificateType != "Nascimento" {
		t.Errorf("type = %s, want Nascimento", result.Fields.CertificateType)
	}

	if _, err := os.Stat(source); !os.IsNotExist(err) {
		t.Errorf("source pdf not removed")
	}
	leftovers, _ := filepath.Glob(filepath.Join(scratch, "*.jpg"))
	if len(leftovers) != 0 {
		t.Errorf("scratch images left behind: %v", leftovers)
	}
}

func TestOrchestratorRejectsNonPDF(t *testing.T) {
	scratch := t.TempDir()
	uploads := t.TempDir()
	source := writeSourcePDF(t, uploads, "1700000000-photo.png")

	o := newTestOrchestrator(&fakeRaster{pages: 1}, &pageTextEngine{}, scratch)

	_, err := o.Run(context.Background(), source, "photo.png", "")
	if err == nil {
		t.Fatal("expected error")
	}
	kind, ok := common.KindOf(err)
	if !ok || kind != common.KindInvalidInput {
		t.Fatalf("kind = %v (ok=%v), want %s", kind, ok, common.KindInvalidInput)
	}

	// validation precedes any filesystem mutation
	if _, err := os.Stat(source); err != nil {
		t.Fatalf("source should be untouched: %v", err)
	}
}

func TestOrchestratorRasterFailureKeepsSource(t *testing.T) {
	scratch := t.TempDir()
	uploads := t.TempDir()
	source := writeSourcePDF(t, uploads, "1700000000-certidao.pdf")

	rasterErr := common.NewFailure(common.KindConversionError, "pdftoppm failed", nil)
	o := newTestOrchestrator(&fakeRaster{err: rasterErr}, &pageTextEngine{}, scratch)

	_, err := o.Run(context.Background(), source, "certidao.pdf", "")
	if !errors.Is(err, rasterErr) {
		t.Fatalf("err = %v, want raster failure", err)
	}

	if _, err := os.Stat(source); err != nil {
		t.Fatalf("source should be left in place: %v", err)
	}
}

func TestOrchestratorPageFailureIsAtomic(t *testing.T) {
	scratch := t.TempDir()
	uploads := t.TempDir()
	source := writeSourcePDF(t, uploads, "1700000000-certidao.pdf")

	engine := &pageTextEngine{
		texts:  map[string]string{"1700000000-certidao-1.jpg": "página um"},
		failOn: "1700000000-certidao-2.jpg",
	}
	o := newTestOrchestrator(&fakeRaster{pages: 3}, engine, scratch)

	result, err := o.Run(context.Background(), source, "certidao.pdf", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if result != nil {
		t.Fatalf("expected no partial result, got %+v", result)
	}
	kind, ok := common.KindOf(err)
	if !ok || kind != common.KindOCRError {
		t.Fatalf("kind = %v (ok=%v), want %s", kind, ok, common.KindOCRError)
	}

	// every raster image and the source must be released
	leftovers, _ := filepath.Glob(filepath.Join(scratch, "*.jpg"))
	if len(leftovers) != 0 {
		t.Errorf("scratch images left behind: %v", leftovers)
	}
	if _, err := os.Stat(source); !os.IsNotExist(err) {
		t.Errorf("source pdf not removed")
	}
}
