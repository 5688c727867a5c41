package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mateusribeiro/certidao-ocr/internal/common"
	"github.com/mateusribeiro/certidao-ocr/internal/extract"
	"github.com/mateusribeiro/certidao-ocr/internal/pipeline"
)

type fakeJobRunner struct {
	result    *pipeline.JobResult
	err       error
	gotName   string
	gotChan   string
	gotSource string
	gotCtxErr error
}

func (f *fakeJobRunner) Run(ctx context.Context, sourcePath, originalName, channelID string) (*pipeline.JobResult, error) {
	f.gotSource = sourcePath
	f.gotName = originalName
	f.gotChan = channelID
	f.gotCtxErr = ctx.Err()
	return f.result, f.err
}

func setupTestServer(t *testing.T, jobs JobRunner) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := common.Config{
		Server: common.ServerConfig{Addr: ":8080", MaxUploadBytes: 1 << 20},
		Dirs:   common.DirsConfig{UploadDir: t.TempDir(), ScratchDir: t.TempDir()},
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	api := NewAPI(cfg, jobs, nil, nil, nil)
	registerRoutes(engine, api)
	return engine
}

func multipartPDF(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte("%PDF-1.4")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestHealthHandler(t *testing.T) {
	engine := setupTestServer(t, &fakeJobRunner{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUploadMissingFile(t *testing.T) {
	engine := setupTestServer(t, &fakeJobRunner{})

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == nil {
		t.Fatalf("expected error message in response")
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	runner := &fakeJobRunner{}
	engine := setupTestServer(t, runner)

	buf, contentType := multipartPDF(t, "file", "selfie.png")
	req := httptest.NewRequest(http.MethodPost, "/upload", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if runner.gotName != "" {
		t.Fatalf("pipeline should not run for rejected uploads")
	}
}

func TestUploadSuccess(t *testing.T) {
	name := "João da Silva"
	cpf := "12345678900"
	date := "12/05/1990"
	runner := &fakeJobRunner{result: &pipeline.JobResult{
		File: "certidao.pdf",
		Pages: []pipeline.PageResult{
			{Page: 1, Text: "CERTIDÃO DE NASCIMENTO"},
			{Page: 2, Text: "Nome: João da Silva"},
		},
		Fields: extract.Fields{
			Name:            &name,
			CPF:             &cpf,
			BirthDate:       &date,
			CertificateType: extract.TypeBirth,
		},
	}}
	engine := setupTestServer(t, runner)

	buf, contentType := multipartPDF(t, "file", "certidao.pdf")
	req := httptest.NewRequest(http.MethodPost, "/upload", buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Channel-Id", "chan-42")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if runner.gotName != "certidao.pdf" {
		t.Errorf("original name = %s, want certidao.pdf", runner.gotName)
	}
	if runner.gotChan != "chan-42" {
		t.Errorf("channel = %s, want chan-42", runner.gotChan)
	}
	if _, err := os.Stat(runner.gotSource); err != nil {
		t.Errorf("uploaded file was not stored: %v", err)
	}

	// the response document honors the published contract
	if err := extract.ValidateJSONAgainstSchema(extract.BuildResultJSONSchema(), rec.Body.Bytes()); err != nil {
		t.Fatalf("response failed schema validation: %v", err)
	}

	var body struct {
		File  string `json:"arquivo"`
		Pages []struct {
			Page int    `json:"pagina"`
			Text string `json:"texto"`
		} `json:"paginas"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.File != "certidao.pdf" || len(body.Pages) != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestUploadPipelineFailureStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", common.NewFailure(common.KindInvalidInput, "only PDF uploads are accepted", nil), http.StatusBadRequest},
		{"conversion", common.NewFailure(common.KindConversionError, "pdftoppm failed", nil), http.StatusInternalServerError},
		{"ocr", common.NewFailure(common.KindOCRError, "recognition failed", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := setupTestServer(t, &fakeJobRunner{err: tc.err})

			buf, contentType := multipartPDF(t, "file", "certidao.pdf")
			req := httptest.NewRequest(http.MethodPost, "/upload", buf)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestUploadRunsDetachedFromRequestContext(t *testing.T) {
	// a disconnect cancels the request context; the job must still run to
	// completion or terminal failure
	runner := &fakeJobRunner{result: &pipeline.JobResult{
		File:   "certidao.pdf",
		Pages:  []pipeline.PageResult{{Page: 1, Text: "x"}},
		Fields: extract.Fields{CertificateType: extract.TypeUnknown},
	}}
	engine := setupTestServer(t, runner)

	buf, contentType := multipartPDF(t, "file", "certidao.pdf")
	req := httptest.NewRequest(http.MethodPost, "/upload", buf)
	req.Header.Set("Content-Type", contentType)

	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if runner.gotName == "" {
		t.Fatal("pipeline did not run")
	}
	if runner.gotCtxErr != nil {
		t.Fatalf("job context carries cancellation: %v", runner.gotCtxErr)
	}
}

func TestExportWithoutJournal(t *testing.T) {
	engine := setupTestServer(t, &fakeJobRunner{})

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
