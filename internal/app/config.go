package app

import (
	"go.uber.org/zap"

	"linediff/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Logger   *zap.Logger     // required
	Notifier domain.Notifier // optional; defaults to the stdout notifier
}
