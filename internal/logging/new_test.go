package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsImplementation(t *testing.T) {
	tests := []struct {
		format string
		want   any
	}{
		{FormatText, &SlogLogger{}},
		{"", &SlogLogger{}},
		{"bogus", &SlogLogger{}},
		{FormatJSON, &ZerologLogger{}},
		{FormatConsole, &ZerologLogger{}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			l := New(Options{Format: tt.format, Output: &bytes.Buffer{}})
			assert.IsType(t, tt.want, l)
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Format: FormatText, Level: "error", Output: &buf})

	l.Warn(context.Background(), "quiet")
	assert.Empty(t, buf.String())

	l.Error(context.Background(), "loud")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestNop_DoesNothing(t *testing.T) {
	var l Logger = Nop{}
	l.With("a", 1).Info(context.Background(), "x")
}

func TestNew_JSONTimestampLeavesGlobalFormat(t *testing.T) {
	before := zerolog.TimeFieldFormat

	var buf bytes.Buffer
	New(Options{Format: FormatJSON, Output: &buf}).Info(context.Background(), "hello")

	assert.Equal(t, before, zerolog.TimeFieldFormat)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	ts, ok := line[zerolog.TimestampFieldName].(string)
	require.True(t, ok, "timestamp missing: %s", buf.String())
	_, err := time.Parse(time.RFC3339Nano, ts)
	assert.NoError(t, err)
}

func TestTimestampHook_UsesClock(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 9, 30, 0, 123456789, time.FixedZone("UTC+2", 2*3600))

	var buf bytes.Buffer
	l := zerolog.New(&buf).Hook(timestampHook{now: func() time.Time { return fixed }})
	l.Info().Msg("x")

	assert.Contains(t, buf.String(), `"time":"2024-01-01T07:30:00.123456789Z"`)
}
