// Package testutil provides slog capture helpers for asserting on log
// output in tests.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// LogRecord is one captured log record.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// CaptureHandler is a slog.Handler that buffers records for inspection.
type CaptureHandler struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewLogger returns a logger whose output can be asserted on.
func NewLogger(t *testing.T) (*slog.Logger, *CaptureHandler) {
	t.Helper()
	h := &CaptureHandler{}
	return slog.New(h), h
}

// Handle implements slog.Handler.
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, LogRecord{Level: r.Level, Message: r.Message, Attrs: attrs})
	return nil
}

// Enabled implements slog.Handler; tests capture every level.
func (h *CaptureHandler) Enabled(context.Context, slog.Level) bool { return true }

// WithAttrs implements slog.Handler.
func (h *CaptureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

// WithGroup implements slog.Handler.
func (h *CaptureHandler) WithGroup(string) slog.Handler { return h }

// Records returns a copy of the captured records.
func (h *CaptureHandler) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]LogRecord, len(h.records))
	copy(out, h.records)
	return out
}

// ContainsMessage reports whether any record at the given level contains
// the substring.
func (h *CaptureHandler) ContainsMessage(level slog.Level, substr string) bool {
	for _, r := range h.Records() {
		if r.Level == level && strings.Contains(r.Message, substr) {
			return true
		}
	}
	return false
}

// AssertLogged fails the test when no record at the given level contains
// the substring.
func AssertLogged(t *testing.T, h *CaptureHandler, level slog.Level, substr string) {
	t.Helper()
	if h.ContainsMessage(level, substr) {
		return
	}
	t.Errorf("expected a %s log containing %q", level, substr)
	for _, r := range h.Records() {
		t.Logf("  captured: [%s] %s %v", r.Level, r.Message, r.Attrs)
	}
}
