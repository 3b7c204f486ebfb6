package commands

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfid-proxy/rfid-go/pkg/log"
)

func readAll(t *testing.T, path string) []log.Event {
	t.Helper()
	reader, err := log.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	var events []log.Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return events
		}
		require.NoError(t, err)
		events = append(events, event)
	}
}

func TestRunFilterBySession(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	out := filepath.Join(t.TempDir(), "filtered.rlog")

	var buf bytes.Buffer
	err := RunFilter(path, FilterOptions{Output: out, SessionID: "def67890"}, &buf)
	require.NoError(t, err)

	assert.Equal(t, "Filtered 1 events to "+out+"\n", buf.String())
	events := readAll(t, out)
	require.Len(t, events, 1)
	assert.NotNil(t, events[0].Error)
}

func TestRunFilterCombinesCriteria(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	out := filepath.Join(t.TempDir(), "filtered.rlog")

	opts := FilterOptions{
		Output:    out,
		Port:      "/dev/ttyUSB0",
		Direction: "out",
		Code:      "SET_RF_POWER",
	}
	var buf bytes.Buffer
	require.NoError(t, RunFilter(path, opts, &buf))

	events := readAll(t, out)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].Command)
	assert.Equal(t, []byte{0x1E}, events[0].Command.Payload)
}

func TestRunFilterByTimeRange(t *testing.T) {
	path := createTestLogFile(t, sessionEvents())
	out := filepath.Join(t.TempDir(), "filtered.rlog")

	opts := FilterOptions{
		Output:    out,
		TimeStart: "2026-03-02T09:30:01Z",
		TimeEnd:   "2026-03-02T09:30:03Z",
	}
	var buf bytes.Buffer
	require.NoError(t, RunFilter(path, opts, &buf))

	events := readAll(t, out)
	require.Len(t, events, 1)
	assert.NotNil(t, events[0].Inventory)
}

func TestBuildFilterRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		opts FilterOptions
	}{
		{"time-start", FilterOptions{TimeStart: "yesterday"}},
		{"time-end", FilterOptions{TimeEnd: "tomorrow"}},
		{"layer", FilterOptions{Layer: "service"}},
		{"direction", FilterOptions{Direction: "sideways"}},
		{"category", FilterOptions{Category: "state"}},
		{"code", FilterOptions{Code: "NOPE"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildFilter(tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestBuildFilterSetsFields(t *testing.T) {
	f, err := buildFilter(FilterOptions{Layer: "wire", Category: "message", Code: "0x21"})
	require.NoError(t, err)

	require.NotNil(t, f.Layer)
	assert.Equal(t, log.LayerWire, *f.Layer)
	require.NotNil(t, f.Category)
	assert.Equal(t, log.CategoryMessage, *f.Category)
	require.NotNil(t, f.Code)
	assert.Equal(t, "GET_READER_INFO", f.Code.String())
	assert.Nil(t, f.Direction)
}
