package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mateusribeiro/certidao-ocr/internal/common"
)

// RasterConfig configures the pdftoppm invocation.
type RasterConfig struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	DPI      int    // default 300
	MaxPages int    // 0 = no limit
}

// Rasterizer renders PDF pages into one JPEG per page via poppler's pdftoppm.
type Rasterizer struct {
	cfg    RasterConfig
	runner Runner
	logger *slog.Logger
}

func NewRasterizer(cfg RasterConfig, logger *slog.Logger) *Rasterizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Rasterizer{cfg: cfg, runner: execRunner{}, logger: logger}
}

// pdftoppm numbers pages without zero padding ("page-1.jpg", ..., "page-10.jpg"),
// so plain lexicographic order breaks past nine pages.
var rePageIndex = regexp.MustCompile(`-(\d+)\.jpg$`)

// Rasterize renders every page of pdfPath into outDir as "<outPrefix>-N.jpg"
// and returns the image paths in ascending page order.
func (r *Rasterizer) Rasterize(ctx context.Context, pdfPath, outDir, outPrefix string) ([]string, error) {
	prefix := filepath.Join(outDir, outPrefix)

	// pdftoppm -r 300 -jpeg <in.pdf> <outDir/prefix>
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, "-r", strconv.Itoa(r.cfg.DPI), "-jpeg", pdfPath, prefix)
	if err != nil {
		return nil, common.NewFailure(common.KindConversionError,
			fmt.Sprintf("pdftoppm failed: %s", truncate(string(errb), 512)), err)
	}

	matches, err := listPageImages(outDir, outPrefix)
	if err != nil {
		return nil, common.NewFailure(common.KindConversionError,
			fmt.Sprintf("listing page images: %v", err), err)
	}
	sort.Slice(matches, func(i, j int) bool {
		pi, pj := pageIndex(matches[i]), pageIndex(matches[j])
		if pi != pj {
			return pi < pj
		}
		return matches[i] < matches[j]
	})
	if r.cfg.MaxPages > 0 && len(matches) > r.cfg.MaxPages {
		matches = matches[:r.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, common.NewFailure(common.KindEmptyOutput, "pdftoppm produced no page images", nil)
	}

	r.logger.Debug("raster.ok", "pdf", filepath.Base(pdfPath), "pages", len(matches), "dpi", r.cfg.DPI)
	return matches, nil
}

// listPageImages scans outDir for "<outPrefix>-N.jpg" entries. The prefix is
// matched literally: upload names may carry glob metacharacters ("[2a via]"),
// and requiring "-<digits>.jpg" keeps one job's pages out of another job's
// listing when its prefix extends ours.
func listPageImages(outDir, outPrefix string) ([]string, error) {
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, err
	}
	var matches []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		rest, ok := strings.CutPrefix(e.Name(), outPrefix+"-")
		if !ok {
			continue
		}
		n, ok := strings.CutSuffix(rest, ".jpg")
		if !ok || n == "" {
			continue
		}
		if strings.IndexFunc(n, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
			continue
		}
		matches = append(matches, filepath.Join(outDir, e.Name()))
	}
	return matches, nil
}

func pageIndex(path string) int {
	m := rePageIndex.FindStringSubmatch(path)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
