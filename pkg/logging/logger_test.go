package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLogger_PageChanged(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo).WithPage("p1", "Home")
	l.PageChanged("Home", "Logs")

	recs := decode(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "page changed", recs[0]["msg"])
	assert.Equal(t, "panekit", recs[0]["system"])
	assert.Equal(t, "p1", recs[0]["page_id"])
	assert.Equal(t, "Logs", recs[0]["to"])
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo).WithComponent("c1")
	l.FocusMoved("c1", false)
	l.EventIgnored("click", "not routed")
	assert.Empty(t, decode(t, &buf))

	l = New(&buf, slog.LevelDebug).WithComponent("c1")
	l.FocusMoved("c1", false)
	recs := decode(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "c1", recs[0]["component_id"])
}

func TestLogger_FrameSlowIsThrottled(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)
	for range 10 {
		l.FrameSlow(80*time.Millisecond, 50*time.Millisecond)
	}
	l.WithPage("p", "P").FrameSlow(time.Second, 50*time.Millisecond)

	recs := decode(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "slow frame", recs[0]["msg"])
}

func TestLogger_AlertScheduled(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo).AlertScheduled("a1", "Saved", 2*time.Second)

	recs := decode(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "a1", recs[0]["alert_id"])
	assert.EqualValues(t, 2*time.Second, recs[0]["duration"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{" INFO ", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "panekit.log")
	l, closer, err := Open(path, slog.LevelInfo)
	require.NoError(t, err)
	l.PageChanged("a", "b")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"page changed"`)

	l, closer, err = Open("", slog.LevelInfo)
	require.NoError(t, err)
	l.PageChanged("a", "b")
	assert.NoError(t, closer.Close())
}
