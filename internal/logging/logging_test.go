package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestNewTextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("installing skill", "name", "python-clean-code")

	out := buf.String()
	if !strings.Contains(out, "installing skill") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "name=python-clean-code") {
		t.Errorf("output missing attribute: %q", out)
	}
}

func TestNewJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("msg", "k", "v")

	out := buf.String()
	if !strings.Contains(out, `"msg":"msg"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
}

func TestHandlerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatText, Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message should appear: %q", out)
	}
}

func TestHandlerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("scope", "local")}).WithGroup("copy"))
	logger.Info("done", "files", 3)

	out := buf.String()
	if !strings.Contains(out, "scope=local") {
		t.Errorf("missing pre-set attr: %q", out)
	}
	if !strings.Contains(out, "copy.files=3") {
		t.Errorf("missing grouped attr: %q", out)
	}
}

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)
	logger := slog.New(h)
	logger.Info("fan out")

	if !strings.Contains(a.String(), "fan out") {
		t.Error("first handler missed the record")
	}
	if !strings.Contains(b.String(), "fan out") {
		t.Error("second handler missed the record")
	}
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("multi handler should be enabled at info")
	}
}

type failingHandler struct{ err error }

func (f failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (f failingHandler) Handle(context.Context, slog.Record) error { return f.err }
func (f failingHandler) WithAttrs([]slog.Attr) slog.Handler        { return f }
func (f failingHandler) WithGroup(string) slog.Handler             { return f }

func TestMultiHandlerJoinsErrors(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(
		failingHandler{err: errFirst},
		slog.NewTextHandler(&buf, nil),
		failingHandler{err: errSecond},
	)

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "still delivered", 0)
	err := h.Handle(context.Background(), rec)

	if !strings.Contains(buf.String(), "still delivered") {
		t.Error("healthy handler should still receive the record")
	}
	if err == nil || !strings.Contains(err.Error(), "first sink down") ||
		!strings.Contains(err.Error(), "second sink down") {
		t.Errorf("error should carry both failures, got %v", err)
	}
}

var (
	errFirst  = errors.New("first sink down")
	errSecond = errors.New("second sink down")
)

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want slog.Level
	}{
		{0, slog.LevelInfo},
		{1, slog.LevelDebug},
		{2, slog.LevelDebug - 4},
		{5, slog.LevelDebug - 4},
	}
	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.v); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestSupportsColorNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if supportsColor(true) {
		t.Error("NO_COLOR should disable colors even on a TTY")
	}
}

func TestSupportsColorDumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	if supportsColor(true) {
		t.Error("TERM=dumb should disable colors")
	}
}

func TestSupportsColorNonTTY(t *testing.T) {
	var buf bytes.Buffer
	if SupportsColor(&buf) {
		t.Error("a bytes.Buffer is not a TTY")
	}
}
