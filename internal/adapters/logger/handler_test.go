package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glance/internal/adapters/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		handler    slog.Level
		level      slog.Level
		msg        string
		goldenName string
	}{
		{"info", slog.LevelInfo, slog.LevelInfo, "information message", "handler_info"},
		{"warn", slog.LevelInfo, slog.LevelWarn, "warning message", "handler_warn"},
		{"error", slog.LevelInfo, slog.LevelError, "error message", "handler_error"},
		{"debug shown", slog.LevelDebug, slog.LevelDebug, "debug message", "handler_debug"},
		{"debug filtered", slog.LevelInfo, slog.LevelDebug, "debug message", "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: tt.handler}))
			lg.Log(t.Context(), tt.level, tt.msg)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil).
		WithAttrs([]slog.Attr{slog.String("source", "he")}).
		WithAttrs([]slog.Attr{slog.String("target", "en")})
	slog.New(handler).Info("translator ready", "cached", 3)

	goldie.New(t).Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_Group(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, nil).WithGroup("refresh")
	slog.New(handler).Info("reconciled", "retired", 2)

	goldie.New(t).Assert(t, "handler_group", buf.Bytes())
}

func TestPrettyHandler_DynamicLevel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	level := &slog.LevelVar{}
	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}))

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	level.Set(slog.LevelDebug)
	lg.Debug("visible")
	assert.Equal(t, "● visible\n", buf.String())
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	require.NotPanics(t, func() {
		logger.NewPrettyHandler(nil, nil)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrettyHandler_WriteError(t *testing.T) {
	lg := slog.New(logger.NewPrettyHandler(failingWriter{}, nil))
	err := lg.Handler().Handle(t.Context(), slog.NewRecord(time.Now(), slog.LevelInfo, "msg", 0))
	require.Error(t, err)
}
