package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mateusribeiro/certidao-ocr/constants"
	"github.com/mateusribeiro/certidao-ocr/internal/common"
	"github.com/mateusribeiro/certidao-ocr/internal/pipeline"
)

// Auditor writes one journal row per finished job. Best-effort: a journal
// write failure is logged and never surfaces to the HTTP caller.
type Auditor struct {
	jobs ScanJobRepository
	log  *slog.Logger
}

func NewAuditor(jobs ScanJobRepository, log *slog.Logger) *Auditor {
	if log == nil {
		log = slog.Default()
	}
	return &Auditor{jobs: jobs, log: log}
}

func (a *Auditor) RecordResult(ctx context.Context, originalName, channelID string, result *pipeline.JobResult, runErr error, startedAt time.Time) {
	rec := JobRecord{
		FileName:  originalName,
		ChannelID: channelID,
		Status:    constants.JobStatusOK,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
	}

	if runErr != nil {
		rec.Status = constants.JobStatusFailed
		rec.ErrorMessage = runErr.Error()
		if kind, ok := common.KindOf(runErr); ok {
			rec.ErrorKind = string(kind)
		}
	} else if result != nil {
		rec.Pages = len(result.Pages)
		if data, err := json.Marshal(result.Fields); err == nil {
			rec.Fields = data
		}
	}

	if _, err := a.jobs.Record(ctx, rec); err != nil {
		a.log.Warn("audit.record_failed", "file", originalName, "error", err)
	}
}
