package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mateusribeiro/certidao-ocr/internal/extract"
	"github.com/mateusribeiro/certidao-ocr/internal/repository"
)

// Service is a tiny façade over the job journal that produces XLSX bytes.
type Service struct {
	jobs   repository.ScanJobRepository
	logger *slog.Logger
}

func NewService(jobs repository.ScanJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, logger: logger}
}

// ExportJobsXLSX returns an XLSX workbook of the most recent jobs, one row
// per processed upload. limit <= 0 exports everything.
func (s *Service) ExportJobsXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	jobs, err := s.jobs.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Jobs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Started At",
		"File",
		"Status",
		"Pages",
		"Certificate Type",
		"Name",
		"CPF",
		"Birth Date",
		"Duration (ms)",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, j := range jobs {
		var fields extract.Fields
		if len(j.ExtractedFields) > 0 {
			_ = json.Unmarshal(j.ExtractedFields, &fields)
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, j.StartedAt.Format(time.RFC3339))
		write(2, j.FileName)
		write(3, j.Status)
		write(4, j.Pages)
		write(5, fields.CertificateType)
		write(6, deref(fields.Name))
		write(7, deref(fields.CPF))
		write(8, deref(fields.BirthDate))
		write(9, j.DurationMs)

		errMsg := ""
		if j.ErrorMessage != nil {
			errMsg = *j.ErrorMessage
		}
		write(10, truncate(errMsg, 140))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 22) // timestamp
	_ = f.SetColWidth(sheet, "B", "B", 40) // file
	_ = f.SetColWidth(sheet, "E", "E", 18) // type
	_ = f.SetColWidth(sheet, "F", "F", 30) // name
	_ = f.SetColWidth(sheet, "J", "J", 48) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(jobs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
