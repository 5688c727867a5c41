package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mateusribeiro/certidao-ocr/constants"
	"github.com/mateusribeiro/certidao-ocr/internal/common"
	"github.com/mateusribeiro/certidao-ocr/internal/export"
	"github.com/mateusribeiro/certidao-ocr/internal/pipeline"
)

// channelHeader carries the client's progress channel id; browsers send it
// alongside the multipart upload so page progress can be pushed while the
// request is still in flight.
const channelHeader = "X-Channel-Id"

// JobRunner runs one upload end to end and produces the result document.
type JobRunner interface {
	Run(ctx context.Context, sourcePath, originalName, channelID string) (*pipeline.JobResult, error)
}

// JobRecorder persists a journal row for a finished job. Optional.
type JobRecorder interface {
	RecordResult(ctx context.Context, originalName, channelID string, result *pipeline.JobResult, runErr error, startedAt time.Time)
}

type API struct {
	cfg    common.Config
	jobs   JobRunner
	audit  JobRecorder
	export *export.Service
	logger *slog.Logger
}

func NewAPI(cfg common.Config, jobs JobRunner, audit JobRecorder, exportSvc *export.Service, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{cfg: cfg, jobs: jobs, audit: audit, export: exportSvc, logger: logger}
}

func registerRoutes(r *gin.Engine, api *API) {
	r.GET("/health", api.handleHealth)
	r.POST("/upload", api.handleUpload)
	r.GET("/export", api.handleExport)
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (a *API) handleUpload(c *gin.Context) {
	startedAt := time.Now()
	channelID := c.GetHeader(channelHeader)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "missing pdf file")
		return
	}

	originalName := filepath.Base(fileHeader.Filename)
	if !constants.AllowedExt(filepath.Ext(originalName)) {
		respondMessage(c, http.StatusBadRequest, "only PDF uploads are accepted")
		return
	}

	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), originalName)
	sourcePath := filepath.Join(a.cfg.Dirs.UploadDir, storedName)
	if err := c.SaveUploadedFile(fileHeader, sourcePath); err != nil {
		a.logger.Error("upload.save_failed", "file", originalName, "error", err)
		respondMessage(c, http.StatusInternalServerError, "unable to store uploaded file")
		return
	}

	// a job runs to completion or terminal failure once started; a client
	// disconnect must not kill pdftoppm mid-flight and orphan the upload
	ctx := context.WithoutCancel(c.Request.Context())
	result, err := a.jobs.Run(ctx, sourcePath, originalName, channelID)
	if a.audit != nil {
		a.audit.RecordResult(ctx, originalName, channelID, result, err, startedAt)
	}
	if err != nil {
		a.logger.Error("upload.job_failed", "file", originalName, "error", err)
		respondMessage(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (a *API) handleExport(c *gin.Context) {
	if a.export == nil {
		respondMessage(c, http.StatusNotFound, "journal is not configured")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondMessage(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	data, err := a.export.ExportJobsXLSX(c.Request.Context(), limit)
	if err != nil {
		a.logger.Error("export.failed", "error", err)
		respondMessage(c, http.StatusInternalServerError, "export failed")
		return
	}

	name := fmt.Sprintf("jobs-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func statusForError(err error) int {
	var f *common.Failure
	if errors.As(err, &f) && f.Kind == common.KindInvalidInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
