package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"logfmt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, FormatJSON, 0)
	log.Info("[Scan] Deleted log group", "name", "/app/i-aaaaaaaaaaaaaaaaa/log")
	log.Error(errors.New("boom"), "[Scan] Listing failed", "kind", "queue")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
	assert.Equal(t, "[Scan] Deleted log group", info["msg"])
	assert.Equal(t, "/app/i-aaaaaaaaaaaaaaaaa/log", info["name"])
	assert.Contains(t, info, "ts")

	var errLine map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &errLine))
	assert.Equal(t, "boom", errLine["error"])
	assert.Equal(t, "queue", errLine["kind"])
}

func TestNew_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, FormatText, 0)
	log.Info("[Janitor] Pass complete", "deleted", 3)

	out := buf.String()
	assert.Contains(t, out, `"msg"="[Janitor] Pass complete"`)
	assert.Contains(t, out, `"deleted"=3`)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestNew_AutoFallsBackToJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, FormatAuto, 0).Info("hello")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "a buffer is not a terminal: %s", buf.String())
}

func TestNew_Verbosity(t *testing.T) {
	t.Parallel()

	var quiet, verbose bytes.Buffer
	New(&quiet, FormatJSON, 0).V(1).Info("[Scan] Instance is live")
	New(&verbose, FormatJSON, 1).V(1).Info("[Scan] Instance is live")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "Instance is live")
}

func TestIsTerminal_NonFile(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
