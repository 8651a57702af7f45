package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info")
	require.NoError(t, err)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	assert.NotContains(t, out, "msg=dbg")
	assert.Contains(t, out, "level=INFO msg=inf b=2")
	assert.Contains(t, out, "level=WARN msg=wrn c=3")
	assert.Contains(t, out, "level=ERROR msg=err d=4")
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug")
	require.NoError(t, err)

	log.With("section", "education-1").Warn(context.Background(), "payload issue", "field", "gpa")
	assert.Contains(t, buf.String(), "section=education-1")
	assert.Contains(t, buf.String(), "field=gpa")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelWarn, false},
		{"DEBUG", slog.LevelDebug, false},
		{" error ", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
