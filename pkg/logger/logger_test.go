package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestContextFieldsPropagate(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-1")
	ctx = logg.WithFields(ctx, map[string]any{"user_id": "u-1"})
	logg.Info(ctx, "hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "req-1", lines[0]["request_id"])
	require.Equal(t, "u-1", lines[0]["user_id"])
	require.Equal(t, "test", lines[0]["service"])
}

func TestErrorIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	logg.Error(context.Background(), "boom", errors.New("broken"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "stack")
	require.Equal(t, "broken", lines[0]["error"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf, Level: zerolog.WarnLevel})

	logg.Info(context.Background(), "dropped")
	logg.Warn(context.Background(), "kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "kept", lines[0]["message"])
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	require.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}
