package bootstrap

import (
	"log/slog"

	"home-dispatch/internal/handler/middleware"
	"home-dispatch/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the zap-backed slog logger and installs it as the default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
