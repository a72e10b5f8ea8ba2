package logging

import (
	"github.com/rs/zerolog"

	"palette/internal/domain"
)

// HostLogger receives the model's failure reports (a macro that cannot run,
// an asset that no longer resolves) and writes them at error level
type HostLogger struct {
	logger zerolog.Logger
	notify func(msg string)
}

// Ensure HostLogger implements domain.Logger
var _ domain.Logger = (*HostLogger)(nil)

// NewHostLogger creates a HostLogger for a component
func NewHostLogger(component string) *HostLogger {
	return &HostLogger{logger: GetLogger(component)}
}

// NewHostLoggerWith wraps an existing zerolog logger
func NewHostLoggerWith(logger zerolog.Logger) *HostLogger {
	return &HostLogger{logger: logger}
}

// Notify registers fn to also receive every reported message, e.g. for a status line
func (l *HostLogger) Notify(fn func(msg string)) {
	l.notify = fn
}

// Error logs msg at error level
func (l *HostLogger) Error(msg string) {
	l.logger.Error().Msg(msg)
	if l.notify != nil {
		l.notify(msg)
	}
}
