package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgentry11/candidate-verification-app/internal/adapter/organizer"
	"github.com/mgentry11/candidate-verification-app/internal/adapter/report"
	"github.com/mgentry11/candidate-verification-app/internal/analysis"
	"github.com/mgentry11/candidate-verification-app/internal/config"
	"github.com/mgentry11/candidate-verification-app/internal/domain"
	"github.com/mgentry11/candidate-verification-app/internal/identity"
	"github.com/mgentry11/candidate-verification-app/internal/usecase"
)

type stubExtractor struct{}

func (stubExtractor) Extract(_ context.Context, filename string, data []byte) (string, error) {
	if strings.HasSuffix(filename, ".txt") {
		return string(data), nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, filepath.Ext(filename))
}

type stubGitHub struct{}

func (stubGitHub) FindProfiles(context.Context, string) (domain.GitHubPresence, error) {
	return domain.GitHubPresence{}, domain.ErrNotFound
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	an := analysis.New(analysis.DefaultRuleset(), analysis.WithClock(func() time.Time {
		return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	}))
	ex := stubExtractor{}
	pc := identity.NewPresenceChecker(stubGitHub{}, "US")
	verify := usecase.NewVerifyService(an, ex, pc, identity.NewLinkedInVerifier(nil))
	batch := usecase.NewBatchService(an, ex)
	cfg := config.Config{MaxUploadMB: 1, MaxBatchFiles: 10}
	return NewServer(cfg, verify, batch, report.New(), organizer.New(an, ex))
}

func multipartBody(t *testing.T, field string, files map[string]string, values map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range values {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error.Code
}

func TestVerifyResumeHandler_JSON(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	body := `{"resume_text":"Implemented kafka pipeline processing 2M events daily, reduced costs by 30%"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/resume", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.VerifyResumeHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res domain.ResumeVerification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Assessment.Level)
	assert.NotEmpty(t, res.Assessment.Recommendation)
}

func TestVerifyResumeHandler_JSONMissingText(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/resume", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	s.VerifyResumeHandler()(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION", decodeErrorCode(t, rec))
}

func TestVerifyResumeHandler_Multipart(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	buf, ct := multipartBody(t, "resume", map[string]string{
		"candidate.txt": "Built CI pipelines with Jenkins 2.4, cut deploy time by 40% for a team of 6",
	}, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/resume", buf)
	req.Header.Set("Content-Type", ct)
	s.VerifyResumeHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res domain.ResumeVerification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.GreaterOrEqual(t, res.Assessment.Score, 0)
}

func TestVerifyResumeHandler_MultipartBadExtension(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	buf, ct := multipartBody(t, "resume", map[string]string{"malware.exe": "MZ binary"}, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/resume", buf)
	req.Header.Set("Content-Type", ct)
	s.VerifyResumeHandler()(rec, req)

	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, "UNSUPPORTED_FORMAT", decodeErrorCode(t, rec))
}

func TestVerifyResumeHandler_MultipartMissingFile(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	buf, ct := multipartBody(t, "resume", nil, map[string]string{"job_description": "golang"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/resume", buf)
	req.Header.Set("Content-Type", ct)
	s.VerifyResumeHandler()(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", decodeErrorCode(t, rec))
}

func TestVerifyLinkedInHandler(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	body := `{"profile_url":"https://linkedin.com/in/janedoe-golang"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/linkedin", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.VerifyLinkedInHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var rep domain.LinkedInReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, "janedoe-golang", rep.Username)
}

func TestVerifyLinkedInHandler_MissingURL(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/linkedin", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	s.VerifyLinkedInHandler()(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION", decodeErrorCode(t, rec))
}

func TestVerifyPresenceHandler(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	body := `{"name":"Jane Doe","email":"jane.doe@gmail.com"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/presence", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.VerifyPresenceHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var rep domain.PresenceReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.NotEmpty(t, rep.PresenceLevel)
}

func TestVerifyPresenceHandler_NoIdentifiers(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/presence", strings.NewReader(`{"location":"Austin, TX"}`))
	req.Header.Set("Content-Type", "application/json")
	s.VerifyPresenceHandler()(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", decodeErrorCode(t, rec))
}

func TestVerifyComprehensiveHandler(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	payload := map[string]any{
		"resume_text": "Implemented payment gateway in Go 1.22, reduced latency by 35% across a team of 4",
		"candidate":   map[string]any{"name": "Jane Doe", "email": "jane.doe@gmail.com"},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/comprehensive", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.VerifyComprehensiveHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var rep domain.ComprehensiveReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.NotEmpty(t, rep.Assessment.Level)
	assert.Equal(t, "Jane Doe", rep.Candidate.Name)
}

func TestBatchHandler(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	buf, ct := multipartBody(t, "files", map[string]string{
		"a.txt": "Designed inventory service handling 500k requests daily, improved uptime to 99.9%",
		"b.txt": "Certified Kubernetes administrator with deep kubenetes experience",
	}, map[string]string{"job_description": "golang microservices"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/batch", buf)
	req.Header.Set("Content-Type", ct)
	s.BatchHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res domain.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.TotalFiles)
	assert.Equal(t, 2, res.Processed)
	require.Len(t, res.Entries, 2)
	// Entries come back sorted by risk descending.
	assert.GreaterOrEqual(t, res.Entries[0].Assessment.Score, res.Entries[1].Assessment.Score)
}

func TestBatchHandler_NoFiles(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	buf, ct := multipartBody(t, "files", nil, map[string]string{"job_description": "golang"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/batch", buf)
	req.Header.Set("Content-Type", ct)
	s.BatchHandler()(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatchHandler_NotMultipart(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/verify/batch", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	s.BatchHandler()(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportsHandler_HTML(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	result := domain.BatchResult{
		TotalFiles: 1,
		Processed:  1,
		Entries: []domain.BatchEntry{{
			ID:            "1",
			Filename:      "a.txt",
			CandidateName: "Jane Doe",
			Assessment:    domain.RiskAssessment{Score: 80, Level: domain.RiskCritical, Recommendation: "REJECT"},
		}},
		Summary: domain.BatchSummary{CriticalRisk: 1},
	}
	body, err := json.Marshal(map[string]any{"result": result})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.ReportsHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
}

func TestReportsHandler_Text(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	result := domain.BatchResult{
		TotalFiles: 1,
		Processed:  1,
		Entries: []domain.BatchEntry{{
			ID:         "1",
			Filename:   "a.txt",
			Assessment: domain.RiskAssessment{Score: 10, Level: domain.RiskLow, Recommendation: "PROCEED WITH NORMAL SCREENING"},
		}},
		Summary: domain.BatchSummary{LowRisk: 1},
	}
	body, err := json.Marshal(map[string]any{"format": "text", "result": result})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.ReportsHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "a.txt")
}

func TestReportsHandler_EmptyResult(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/reports", strings.NewReader(`{"format":"html","result":{}}`))
	req.Header.Set("Content-Type", "application/json")
	s.ReportsHandler()(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrganizeHandler(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	outDir := t.TempDir()

	buf, ct := multipartBody(t, "files", map[string]string{
		"resume.txt": "Implemented search service in Go 1.21, reduced p99 latency by 45%",
	}, map[string]string{"output_directory": outDir})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/organize", buf)
	req.Header.Set("Content-Type", ct)
	s.OrganizeHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res organizer.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.OrganizedCount)
	assert.Equal(t, outDir, res.OutputDir)
}

func TestOrganizeHandler_MissingOutputDir(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	buf, ct := multipartBody(t, "files", map[string]string{"resume.txt": "plain resume"}, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/organize", buf)
	req.Header.Set("Content-Type", ct)
	s.OrganizeHandler()(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", decodeErrorCode(t, rec))
}

func TestHealthzHandler(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.HealthzHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzHandler(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.ReadyzHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	s.GitHubCheck = func(context.Context) error { return fmt.Errorf("unreachable") }
	rec = httptest.NewRecorder()
	s.ReadyzHandler()(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
