package shader

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, l.Enabled(context.Background(), level), "level %v", level)
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	driver := newFakeDriver()
	unit, err := CompileVertex(driver, vertexSource)
	require.NoError(t, err)
	unit.Destroy()

	assert.Contains(t, buf.String(), "shader compiled")
	assert.Contains(t, buf.String(), "stage=vertex")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestReadInfoLog(t *testing.T) {
	tests := []struct {
		name   string
		length int32
		log    string
		want   string
	}{
		{"empty", 0, "", ""},
		{"exact", 6, "error", "error"},
		{"driver writes less", 32, "short", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requested int
			got := readInfoLog(tt.length, func(buf []byte) int32 {
				requested = len(buf)
				return copyLog(tt.log, buf)
			})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, int(tt.length), requested)
		})
	}
}
