package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeLines parses every JSON log line in buf.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any

	for line := range strings.Lines(buf.String()) {
		var rec map[string]any

		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)

		records = append(records, rec)
	}

	return records
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	Get().Info("default subsystem")

	ctx := WithSubsystem(t.Context(), "overridden")
	Get(ctx).Info("overridden subsystem")

	ctx = With(t.Context(), "structure", "trie", "words", 2)
	Get(ctx).Debug("with values")

	Get(WithMuted(t.Context(), true)).Error("muted")

	log.Print("legacy")

	records := decodeLines(t, &buf)
	require.Len(t, records, 4)

	assert.Equal(t, "default subsystem", records[0]["msg"])
	assert.Equal(t, "test", records[0]["subsystem"])

	assert.Equal(t, "overridden", records[1]["subsystem"])

	assert.Equal(t, "DEBUG", records[2]["level"])
	assert.Equal(t, "trie", records[2]["structure"])
	assert.InDelta(t, 2, records[2]["words"], 0)

	assert.Equal(t, "legacy", records[3]["msg"])
	assert.Equal(t, "INFO", records[3]["level"])
}

func TestLogger_MinLevel(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		MinLevel:  slog.LevelWarn,
		Output:    &buf,
	})

	Get().Info("hidden")
	Get().Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "subsystem=test")
}

func TestWith(t *testing.T) {
	t.Parallel()

	t.Run("no values returns same context", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()
		assert.Equal(t, ctx, With(ctx))
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()

		ctx := With(nil, "k", "v") //nolint:staticcheck
		assert.Equal(t, []any{"k", "v"}, getValues(ctx))
	})

	t.Run("siblings do not share values", func(t *testing.T) {
		t.Parallel()

		parent := With(t.Context(), "a", 1)
		left := With(parent, "b", 2)
		right := With(parent, "c", 3)

		assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
		assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
	})
}

func TestWithMuted(t *testing.T) {
	t.Parallel()

	assert.False(t, isMuted(context.Background()))
	assert.True(t, isMuted(WithMuted(t.Context(), true)))
	assert.False(t, isMuted(WithMuted(t.Context(), false)))
	assert.Same(t, nullLogger, Get(WithMuted(t.Context(), true)))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	dataSet := []struct {
		name     string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"warn+2", slog.LevelWarn + 2},
	}

	for _, d := range dataSet {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(d.name)
			require.NoError(t, err)
			assert.Equal(t, d.expected, level)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := ParseLevel("loud")
		require.ErrorIs(t, err, ErrInvalidLogLevel)
	})
}
