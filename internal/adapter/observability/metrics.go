package observability

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	ScreeningsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "screenings_total",
			Help: "Total number of candidate screenings by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
	ScreeningDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "screening_duration_seconds",
			Help:    "Screening duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"kind"},
	)

	LookupRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_requests_total",
			Help: "Total number of external lookup requests by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	BatchFilesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "batch_files_total",
			Help: "Total number of files screened in batch runs by outcome",
		},
		[]string{"outcome"},
	)

	// Score outcome distributions
	RiskScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "screening_risk_score",
			Help:    "Distribution of resume risk scores ([0,100])",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
	AIConfidenceHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "screening_ai_confidence",
			Help:    "Distribution of AI-generation confidence ([0,1])",
			Buckets: []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)
)

func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(ScreeningsTotal)
	prometheus.MustRegister(ScreeningDuration)
	prometheus.MustRegister(LookupRequestsTotal)
	prometheus.MustRegister(BatchFilesTotal)
	prometheus.MustRegister(RiskScoreHistogram)
	prometheus.MustRegister(AIConfidenceHistogram)
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		// Route pattern may be unavailable outside chi router; guard nil
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			// fallback when route pattern is unavailable
			route = r.URL.Path
		}
		method := r.Method
		status := ww.Status()
		HTTPRequestsTotal.WithLabelValues(route, method, http.StatusText(status)).Inc()
		HTTPRequestDuration.WithLabelValues(route, method).Observe(dur)
	})
}

// ObserveScreening records the duration and outcome of a single screening.
func ObserveScreening(kind, outcome string, dur time.Duration) {
	ScreeningsTotal.WithLabelValues(kind, outcome).Inc()
	ScreeningDuration.WithLabelValues(kind).Observe(dur.Seconds())
}

// ObserveLookup records the outcome of an external lookup request.
func ObserveLookup(provider, outcome string) {
	LookupRequestsTotal.WithLabelValues(provider, outcome).Inc()
}

// ObserveScores records the resulting scores from completed screenings.
func ObserveScores(riskScore int, aiConfidence float64) {
	if riskScore >= 0 && riskScore <= 100 {
		RiskScoreHistogram.Observe(float64(riskScore))
	}
	if aiConfidence >= 0 && aiConfidence <= 1 {
		AIConfidenceHistogram.Observe(aiConfidence)
	}
}
