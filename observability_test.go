package fixedarray

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	arr, err := Make[int32](4, WithMetricsCollector(metrics))
	require.NoError(t, err)

	_, err = Make[int32](-1, WithMetricsCollector(metrics))
	require.Error(t, err)

	require.NoError(t, arr.AssignValues(1, 2)) // allocate 8, release 16
	arr.Release()                              // release 8

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.AllocateCount)
	assert.Equal(t, int64(1), stats.AllocateErrors)
	assert.Equal(t, int64(24), stats.AllocatedBytes)
	assert.Equal(t, int64(2), stats.ReleaseCount)
	assert.Equal(t, int64(24), stats.ReleasedBytes)
	assert.Equal(t, int64(0), stats.LiveBytes)
}

func TestMetricsCollector_Budgeted(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	budget := NewBudget(BudgetConfig{})

	arr, err := Make[int64](4, WithMetricsCollector(metrics), WithBudget(budget))
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(32), stats.AllocatedBytes)

	arr.Release()
	stats = metrics.GetStats()
	assert.Equal(t, int64(32), stats.ReleasedBytes)
	assert.Equal(t, int64(0), stats.LiveBytes)
}

func TestWithMetricsCollectorNil(t *testing.T) {
	arr, err := Make[int](2, WithMetricsCollector(nil))
	require.NoError(t, err)
	arr.Release()
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	arr, err := Make[int64](3, WithLogger(logger))
	require.NoError(t, err)
	arr.Release()

	_, err = Make[int64](-2, WithLogger(logger))
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "buffer allocated", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, float64(3), rec["count"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "buffer released", rec["msg"])

	rec = nil
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &rec))
	assert.Equal(t, "buffer allocation failed", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Contains(t, rec["error"], "negative count")
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil)).WithCount(5).WithBytes(40)

	logger.Info("sized")
	assert.Contains(t, buf.String(), "count=5")
	assert.Contains(t, buf.String(), "bytes=40")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))

	arr, err := Make[int](1, WithLogger(nil))
	require.NoError(t, err)
	arr.Release()
}

func TestWithLogLevel(t *testing.T) {
	o := applyOptions([]Option{WithLogLevel(slog.LevelWarn)})

	assert.True(t, o.logger.Enabled(t.Context(), slog.LevelWarn))
	assert.False(t, o.logger.Enabled(t.Context(), slog.LevelDebug))
}
