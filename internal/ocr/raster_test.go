package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mateusribeiro/certidao-ocr/internal/common"
)

// fakeRunner simulates pdftoppm by dropping page images next to the prefix.
type fakeRunner struct {
	pages  int
	err    error
	stderr string
	calls  [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return nil, []byte(f.stderr), f.err
	}
	prefix := args[len(args)-1]
	for i := 1; i <= f.pages; i++ {
		path := fmt.Sprintf("%s-%d.jpg", prefix, i)
		if err := os.WriteFile(path, []byte("jpg"), 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func newTestRasterizer(cfg RasterConfig, runner Runner) *Rasterizer {
	r := NewRasterizer(cfg, slog.Default())
	r.runner = runner
	return r
}

func TestRasterizeOrdersPagesNumerically(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{pages: 12}
	r := newTestRasterizer(RasterConfig{}, runner)

	images, err := r.Rasterize(context.Background(), "in.pdf", dir, "scan")
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	if len(images) != 12 {
		t.Fatalf("got %d images, want 12", len(images))
	}
	// lexicographic order would put scan-10 before scan-2
	for i, img := range images {
		want := fmt.Sprintf("scan-%d.jpg", i+1)
		if filepath.Base(img) != want {
			t.Fatalf("images[%d] = %s, want %s", i, filepath.Base(img), want)
		}
	}
}

func TestRasterizeCommandLine(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{pages: 1}
	r := newTestRasterizer(RasterConfig{Pdftoppm: "pdftoppm", DPI: 300}, runner)

	if _, err := r.Rasterize(context.Background(), "doc.pdf", dir, "doc"); err != nil {
		t.Fatalf("rasterize: %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(runner.calls))
	}
	got := runner.calls[0]
	want := []string{"pdftoppm", "-r", "300", "-jpeg", "doc.pdf", filepath.Join(dir, "doc")}
	if len(got) != len(want) {
		t.Fatalf("argv = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("argv[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRasterizeMaxPagesCap(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{pages: 5}
	r := newTestRasterizer(RasterConfig{MaxPages: 3}, runner)

	images, err := r.Rasterize(context.Background(), "in.pdf", dir, "scan")
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("got %d images, want 3", len(images))
	}
}

func TestRasterizePrefixWithMetacharacters(t *testing.T) {
	// upload names like "certidao [2a via].pdf" reach the prefix verbatim
	dir := t.TempDir()
	runner := &fakeRunner{pages: 2}
	r := newTestRasterizer(RasterConfig{}, runner)

	images, err := r.Rasterize(context.Background(), "in.pdf", dir, "1700000000-certidao [2a via]")
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2", len(images))
	}
	for i, img := range images {
		want := fmt.Sprintf("1700000000-certidao [2a via]-%d.jpg", i+1)
		if filepath.Base(img) != want {
			t.Fatalf("images[%d] = %s, want %s", i, filepath.Base(img), want)
		}
	}
}

func TestRasterizeIgnoresOtherJobs(t *testing.T) {
	dir := t.TempDir()
	// another job whose prefix extends ours, plus a non-page sibling
	for _, name := range []string{"scan-extra-1.jpg", "scan-1.txt", "scan-.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	runner := &fakeRunner{pages: 2}
	r := newTestRasterizer(RasterConfig{}, runner)

	images, err := r.Rasterize(context.Background(), "in.pdf", dir, "scan")
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2: %v", len(images), images)
	}
	for i, img := range images {
		want := fmt.Sprintf("scan-%d.jpg", i+1)
		if filepath.Base(img) != want {
			t.Fatalf("images[%d] = %s, want %s", i, filepath.Base(img), want)
		}
	}
}

func TestRasterizeCommandFailure(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{err: errors.New("exit status 1"), stderr: "Syntax Error: corrupt stream"}
	r := newTestRasterizer(RasterConfig{}, runner)

	_, err := r.Rasterize(context.Background(), "broken.pdf", dir, "scan")
	if err == nil {
		t.Fatal("expected error")
	}
	kind, ok := common.KindOf(err)
	if !ok || kind != common.KindConversionError {
		t.Fatalf("kind = %v (ok=%v), want %s", kind, ok, common.KindConversionError)
	}
}

func TestRasterizeEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{pages: 0}
	r := newTestRasterizer(RasterConfig{}, runner)

	_, err := r.Rasterize(context.Background(), "blank.pdf", dir, "scan")
	if err == nil {
		t.Fatal("expected error")
	}
	kind, ok := common.KindOf(err)
	if !ok || kind != common.KindEmptyOutput {
		t.Fatalf("kind = %v (ok=%v), want %s", kind, ok, common.KindEmptyOutput)
	}
}
