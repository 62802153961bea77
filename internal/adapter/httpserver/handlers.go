package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"github.com/mgentry11/candidate-verification-app/internal/adapter/observability"
	"github.com/mgentry11/candidate-verification-app/internal/adapter/organizer"
	"github.com/mgentry11/candidate-verification-app/internal/adapter/report"
	"github.com/mgentry11/candidate-verification-app/internal/config"
	"github.com/mgentry11/candidate-verification-app/internal/domain"
	"github.com/mgentry11/candidate-verification-app/internal/usecase"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg       config.Config
	Verify    usecase.VerifyService
	Batch     usecase.BatchService
	Reports   *report.Generator
	Organizer *organizer.Organizer

	// Optional readiness probes for the external lookup providers.
	GitHubCheck  func(ctx context.Context) error
	ArchiveCheck func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers wired.
func NewServer(cfg config.Config, verify usecase.VerifyService, batch usecase.BatchService, gen *report.Generator, org *organizer.Organizer) *Server {
	return &Server{Cfg: cfg, Verify: verify, Batch: batch, Reports: gen, Organizer: org}
}

// allowedExt enforces an allowlist for uploads: .txt, .pdf, .docx
func allowedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".pdf", ".docx":
		return true
	default:
		return false
	}
}

func allowedMIMEFor(m string, filename string) bool {
	m = strings.ToLower(m)
	// For .txt files, accept any text/* since some detectors misclassify rich text
	if strings.HasSuffix(strings.ToLower(filename), ".txt") && strings.HasPrefix(m, "text/") {
		return true
	}
	if strings.HasPrefix(m, "text/plain") { // allow parameters such as charset
		return true
	}
	return m == "application/pdf" || m == "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

func decodeAndValidate(r *http.Request, dst any) (map[string]string, error) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return nil, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument)
	}
	if err := getValidator().Struct(dst); err != nil {
		verrs := map[string]string{}
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				verrs[strings.ToLower(fe.Field())] = fe.Tag()
			}
		}
		return verrs, fmt.Errorf("%w: validation failed", domain.ErrValidation)
	}
	return nil, nil
}

// checkUpload validates an uploaded document by extension and sniffed content.
func checkUpload(h *multipart.FileHeader, data []byte) error {
	if !allowedExt(h.Filename) {
		return fmt.Errorf("%w: extension not allowed: %s", domain.ErrUnsupportedFormat, h.Filename)
	}
	m := mimetype.Detect(data)
	if !allowedMIMEFor(m.String(), h.Filename) {
		return fmt.Errorf("%w: content type %s not allowed for %s", domain.ErrUnsupportedFormat, m.String(), h.Filename)
	}
	return nil
}

func readUpload(f multipart.File) ([]byte, error) {
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read upload: %v", domain.ErrInvalidArgument, err)
	}
	return data, nil
}

// VerifyResumeHandler screens one resume. It accepts either a multipart form
// with a "resume" file, or a JSON body with "resume_text".
func (s *Server) VerifyResumeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		var (
			res domain.ResumeVerification
			err error
		)
		if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			res, err = s.verifyResumeMultipart(w, r)
		} else {
			res, err = s.verifyResumeJSON(w, r)
		}
		if err != nil {
			observability.ObserveScreening("resume", "error", time.Since(start))
			return
		}
		observability.ObserveScreening("resume", "ok", time.Since(start))
		observability.ObserveScores(res.Assessment.Score, res.Bundle.AIDetection.Confidence)
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) verifyResumeMultipart(w http.ResponseWriter, r *http.Request) (domain.ResumeVerification, error) {
	maxBytes := s.Cfg.MaxUploadBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		err = mapParseError(err, s.Cfg.MaxUploadMB)
		writeError(w, r, err, nil)
		return domain.ResumeVerification{}, err
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		err = fmt.Errorf("%w: resume file required", domain.ErrInvalidArgument)
		writeError(w, r, err, map[string]string{"field": "resume"})
		return domain.ResumeVerification{}, err
	}
	data, err := readUpload(file)
	if err != nil {
		writeError(w, r, err, nil)
		return domain.ResumeVerification{}, err
	}
	if err := checkUpload(header, data); err != nil {
		writeError(w, r, err, map[string]string{"filename": header.Filename})
		return domain.ResumeVerification{}, err
	}
	res, err := s.Verify.VerifyResumeFile(r.Context(), header.Filename, data, r.FormValue("job_description"))
	if err != nil {
		writeError(w, r, err, nil)
		return domain.ResumeVerification{}, err
	}
	return res, nil
}

func (s *Server) verifyResumeJSON(w http.ResponseWriter, r *http.Request) (domain.ResumeVerification, error) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req struct {
		ResumeText     string `json:"resume_text" validate:"required"`
		JobDescription string `json:"job_description" validate:"max=20000"`
	}
	if details, err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err, details)
		return domain.ResumeVerification{}, err
	}
	res, err := s.Verify.VerifyResumeText(r.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		writeError(w, r, err, nil)
		return domain.ResumeVerification{}, err
	}
	return res, nil
}

// VerifyLinkedInHandler vets a LinkedIn profile URL.
func (s *Server) VerifyLinkedInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		var req struct {
			ProfileURL string `json:"profile_url" validate:"required,max=2000"`
		}
		if details, err := decodeAndValidate(r, &req); err != nil {
			writeError(w, r, err, details)
			return
		}
		start := time.Now()
		rep, err := s.Verify.VerifyLinkedIn(r.Context(), req.ProfileURL)
		if err != nil {
			observability.ObserveScreening("linkedin", "error", time.Since(start))
			writeError(w, r, err, nil)
			return
		}
		observability.ObserveScreening("linkedin", "ok", time.Since(start))
		writeJSON(w, http.StatusOK, rep)
	}
}

// VerifyPresenceHandler assembles the online-presence report for a candidate.
func (s *Server) VerifyPresenceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		var req struct {
			Name     string `json:"name" validate:"max=200"`
			Email    string `json:"email" validate:"omitempty,max=320"`
			Phone    string `json:"phone" validate:"max=50"`
			Location string `json:"location" validate:"max=200"`
			LinkedIn string `json:"linkedin" validate:"max=2000"`
		}
		if details, err := decodeAndValidate(r, &req); err != nil {
			writeError(w, r, err, details)
			return
		}
		start := time.Now()
		rep, err := s.Verify.VerifyPresence(r.Context(), domain.CandidateInfo{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Location: req.Location,
			LinkedIn: req.LinkedIn,
		})
		if err != nil {
			observability.ObserveScreening("presence", "error", time.Since(start))
			writeError(w, r, err, nil)
			return
		}
		observability.ObserveScreening("presence", "ok", time.Since(start))
		writeJSON(w, http.StatusOK, rep)
	}
}

// VerifyComprehensiveHandler runs every check and blends them into one score.
func (s *Server) VerifyComprehensiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 4<<20)
		var req struct {
			ResumeText      string                  `json:"resume_text" validate:"required"`
			JobDescription  string                  `json:"job_description" validate:"max=20000"`
			Candidate       domain.CandidateInfo    `json:"candidate"`
			LinkedInSignals *domain.LinkedInSignals `json:"linkedin_signals"`
		}
		if details, err := decodeAndValidate(r, &req); err != nil {
			writeError(w, r, err, details)
			return
		}
		start := time.Now()
		rep, err := s.Verify.VerifyComprehensive(r.Context(), req.ResumeText, req.JobDescription, req.Candidate, req.LinkedInSignals)
		if err != nil {
			observability.ObserveScreening("comprehensive", "error", time.Since(start))
			writeError(w, r, err, nil)
			return
		}
		observability.ObserveScreening("comprehensive", "ok", time.Since(start))
		observability.ObserveScores(rep.Assessment.Score, rep.Resume.AIDetection.Confidence)
		writeJSON(w, http.StatusOK, rep)
	}
}

// BatchHandler screens a multipart batch of resume files.
func (s *Server) BatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			writeError(w, r, fmt.Errorf("%w: content-type must be multipart/form-data", domain.ErrInvalidArgument), nil)
			return
		}
		maxBytes := s.Cfg.MaxUploadBytes() * int64(s.Cfg.MaxBatchFiles)
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			writeError(w, r, mapParseError(err, s.Cfg.MaxUploadMB), nil)
			return
		}
		var headers []*multipart.FileHeader
		if r.MultipartForm != nil {
			headers = r.MultipartForm.File["files"]
		}
		if len(headers) == 0 {
			writeError(w, r, fmt.Errorf("%w: at least one file required", domain.ErrInvalidArgument), map[string]string{"field": "files"})
			return
		}
		if len(headers) > s.Cfg.MaxBatchFiles {
			writeError(w, r, fmt.Errorf("%w: too many files (max %d)", domain.ErrInvalidArgument, s.Cfg.MaxBatchFiles), nil)
			return
		}

		files := make([]usecase.BatchFile, 0, len(headers))
		for _, h := range headers {
			f, err := h.Open()
			if err != nil {
				writeError(w, r, fmt.Errorf("%w: open %s: %v", domain.ErrInvalidArgument, h.Filename, err), nil)
				return
			}
			data, err := readUpload(f)
			if err != nil {
				writeError(w, r, err, nil)
				return
			}
			files = append(files, usecase.BatchFile{Filename: h.Filename, Data: data})
		}

		start := time.Now()
		result := s.Batch.Run(r.Context(), files, r.FormValue("job_description"))
		observability.ObserveScreening("batch", "ok", time.Since(start))
		for _, e := range result.Entries {
			outcome := "ok"
			if e.Error != "" {
				outcome = "error"
			} else {
				observability.ObserveScores(e.Assessment.Score, e.AIConfidence)
			}
			observability.BatchFilesTotal.WithLabelValues(outcome).Inc()
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// ReportsHandler renders a screening report from previously returned batch
// results. Format "html" (default) or "text".
func (s *Server) ReportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 16<<20)
		var req struct {
			Format string             `json:"format" validate:"omitempty,oneof=html text"`
			Result domain.BatchResult `json:"result"`
		}
		if details, err := decodeAndValidate(r, &req); err != nil {
			writeError(w, r, err, details)
			return
		}
		if len(req.Result.Entries) == 0 {
			writeError(w, r, fmt.Errorf("%w: result with entries required", domain.ErrInvalidArgument), map[string]string{"field": "result"})
			return
		}
		switch req.Format {
		case "text":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, s.Reports.Text(req.Result))
		default:
			html, err := s.Reports.HTML(req.Result)
			if err != nil {
				writeError(w, r, err, nil)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, html)
		}
	}
}

// OrganizeHandler scores uploaded files and sorts them into risk-level
// folders under the requested output directory.
func (s *Server) OrganizeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			writeError(w, r, fmt.Errorf("%w: content-type must be multipart/form-data", domain.ErrInvalidArgument), nil)
			return
		}
		maxBytes := s.Cfg.MaxUploadBytes() * int64(s.Cfg.MaxBatchFiles)
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			writeError(w, r, mapParseError(err, s.Cfg.MaxUploadMB), nil)
			return
		}
		outputDir := r.FormValue("output_directory")
		var headers []*multipart.FileHeader
		if r.MultipartForm != nil {
			headers = r.MultipartForm.File["files"]
		}
		files := make([]organizer.File, 0, len(headers))
		for _, h := range headers {
			f, err := h.Open()
			if err != nil {
				writeError(w, r, fmt.Errorf("%w: open %s: %v", domain.ErrInvalidArgument, h.Filename, err), nil)
				return
			}
			data, err := readUpload(f)
			if err != nil {
				writeError(w, r, err, nil)
				return
			}
			files = append(files, organizer.File{Filename: h.Filename, Data: data})
		}

		res, err := s.Organizer.Run(r.Context(), outputDir, r.FormValue("job_description"), files)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// HealthzHandler reports process liveness.
func (s *Server) HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// ReadyzHandler probes the configured external lookup providers.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := make([]check, 0, 2)
		if s.GitHubCheck != nil {
			if err := s.GitHubCheck(ctx); err != nil {
				checks = append(checks, check{Name: "github", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "github", OK: true})
			}
		}
		if s.ArchiveCheck != nil {
			if err := s.ArchiveCheck(ctx); err != nil {
				checks = append(checks, check{Name: "archive", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "archive", OK: true})
			}
		}
		st := http.StatusOK
		for _, c := range checks {
			if !c.OK {
				st = http.StatusServiceUnavailable
				break
			}
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}

// mapParseError converts multipart/body errors into the error taxonomy,
// flagging oversize bodies explicitly.
func mapParseError(err error, maxMB int64) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "too large") {
		return fmt.Errorf("%w: payload too large (max %d MB per file)", domain.ErrInvalidArgument, maxMB)
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
}
