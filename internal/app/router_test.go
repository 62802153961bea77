package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpserver "github.com/mgentry11/candidate-verification-app/internal/adapter/httpserver"
	"github.com/mgentry11/candidate-verification-app/internal/adapter/organizer"
	"github.com/mgentry11/candidate-verification-app/internal/adapter/report"
	"github.com/mgentry11/candidate-verification-app/internal/analysis"
	"github.com/mgentry11/candidate-verification-app/internal/config"
	"github.com/mgentry11/candidate-verification-app/internal/identity"
	"github.com/mgentry11/candidate-verification-app/internal/usecase"
)

func TestParseOrigins(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"*"}, ParseOrigins(""))
	assert.Equal(t, []string{"*"}, ParseOrigins("*"))
	assert.Equal(t, []string{"*"}, ParseOrigins(" , , "))
	assert.Equal(t, []string{"https://a.example", "https://b.example"},
		ParseOrigins("https://a.example, https://b.example"))
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	an := analysis.New(analysis.DefaultRuleset())
	verify := usecase.NewVerifyService(an, nil, identity.NewPresenceChecker(nil, "US"), identity.NewLinkedInVerifier(nil))
	batch := usecase.NewBatchService(an, nil)
	cfg := config.Config{CORSAllowOrigins: "*", RateLimitPerMin: 100, MaxUploadMB: 1, MaxBatchFiles: 10}
	srv := httpserver.NewServer(cfg, verify, batch, report.New(), organizer.New(an, nil))
	return BuildRouter(cfg, srv)
}

func TestRouterHealthEndpoints(t *testing.T) {
	t.Parallel()
	h := testRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouterSecurityHeaders(t *testing.T) {
	t.Parallel()
	h := testRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouterUnknownRoute(t *testing.T) {
	t.Parallel()
	h := testRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
