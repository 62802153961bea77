package observability

import (
	"log/slog"
	"os"

	"github.com/mgentry11/candidate-verification-app/internal/config"
)

// SetupLogger builds the service-wide JSON slog logger. Every line carries
// the service and env fields so screening logs can be filtered per deployment.
// Dev runs at debug to surface per-rule analyzer decisions; elsewhere info.
func SetupLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(
		slog.String("service", cfg.OTELServiceName),
		slog.String("env", cfg.AppEnv),
	)
}
