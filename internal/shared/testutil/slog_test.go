package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureHandler(t *testing.T) {
	logger, h := NewLogger(t)

	logger.Info("loaded source tables", slog.Int("rows", 42))
	logger.Warn("aggregate produced no rows")

	records := h.Records()
	assert.Len(t, records, 2)
	assert.Equal(t, 42, int(records[0].Attrs["rows"].(int64)))

	assert.True(t, h.ContainsMessage(slog.LevelWarn, "no rows"))
	assert.False(t, h.ContainsMessage(slog.LevelError, "no rows"))
}
