package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestHostLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := NewHostLoggerWith(zerolog.New(&buf))

	var notified []string
	l.Notify(func(msg string) { notified = append(notified, msg) })
	l.Error("macro Build: class Tools has no method Build")

	out := buf.String()
	assert.True(t, strings.Contains(out, `"level":"error"`), "got %s", out)
	assert.Contains(t, out, "has no method Build")
	require.Len(t, notified, 1)
	assert.Equal(t, "macro Build: class Tools has no method Build", notified[0])
}

func TestLogFilePath(t *testing.T) {
	assert.True(t, strings.HasSuffix(LogFilePath(), "palette.log"))
}
