package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mateusribeiro/certidao-ocr/constants"
	"github.com/mateusribeiro/certidao-ocr/gen/ent"
	"github.com/mateusribeiro/certidao-ocr/gen/ent/scanjob"
)

// JobRecord is one finished job, success or failure.
type JobRecord struct {
	FileName     string
	ChannelID    string
	Pages        int
	Status       constants.JobStatus
	ErrorKind    string
	ErrorMessage string
	Fields       json.RawMessage
	StartedAt    time.Time
	Duration     time.Duration
}

type ScanJobRepository interface {
	Record(ctx context.Context, rec JobRecord) (*ent.ScanJob, error)
	List(ctx context.Context, limit int) ([]*ent.ScanJob, error)
}

type scanJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewScanJobRepository(entc *ent.Client, log *slog.Logger) ScanJobRepository {
	return &scanJobRepo{ent: entc, log: log}
}

func (r *scanJobRepo) Record(ctx context.Context, rec JobRecord) (*ent.ScanJob, error) {
	create := r.ent.ScanJob.
		Create().
		SetFileName(rec.FileName).
		SetChannelID(rec.ChannelID).
		SetPages(rec.Pages).
		SetStatus(string(rec.Status)).
		SetStartedAt(rec.StartedAt).
		SetDurationMs(rec.Duration.Milliseconds()).
		SetFinishedAt(rec.StartedAt.Add(rec.Duration))
	if rec.ErrorKind != "" {
		create = create.SetErrorKind(rec.ErrorKind)
	}
	if rec.ErrorMessage != "" {
		create = create.SetErrorMessage(rec.ErrorMessage)
	}
	if rec.Fields != nil {
		create = create.SetExtractedFields(rec.Fields)
	}

	job, err := create.Save(ctx)
	if err != nil {
		r.log.Error("scan_job record failed", "file", rec.FileName, "err", err)
		return nil, err
	}
	r.log.Info("scan_job recorded", "job_id", job.ID, "file", rec.FileName, "status", rec.Status)
	return job, nil
}

func (r *scanJobRepo) List(ctx context.Context, limit int) ([]*ent.ScanJob, error) {
	q := r.ent.ScanJob.
		Query().
		Order(ent.Desc(scanjob.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	jobs, err := q.All(ctx)
	if err != nil {
		r.log.Error("scan_job list failed", "err", err)
		return nil, err
	}
	return jobs, nil
}
