package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

func writeCapture(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.rlog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	for _, e := range events {
		logger.Log(e)
	}
	require.NoError(t, logger.Close())
	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var events []Event
	for {
		e, err := r.Next()
		if err == io.EOF {
			return events
		}
		require.NoError(t, err)
		events = append(events, e)
	}
}

func sampleEvents(base time.Time) []Event {
	return []Event{
		{Timestamp: base, SessionID: "s-1", Direction: DirectionOut, Layer: LayerTransport, Category: CategoryMessage,
			Frame: &FrameEvent{Size: 6}},
		{Timestamp: base.Add(time.Second), SessionID: "s-1", Direction: DirectionOut, Layer: LayerWire, Category: CategoryMessage,
			Command: &CommandEvent{Address: 0xFF, Code: wire.CmdTagInventory}},
		{Timestamp: base.Add(2 * time.Second), SessionID: "s-1", Direction: DirectionIn, Layer: LayerWire, Category: CategoryMessage,
			Response: &ResponseEvent{Code: wire.CmdTagInventory, Status: wire.StatusSuccess}},
		{Timestamp: base.Add(3 * time.Second), SessionID: "s-2", Direction: DirectionIn, Layer: LayerReader, Category: CategoryInventory,
			Port: "sim", Inventory: &InventoryEvent{Antenna: 1}},
		{Timestamp: base.Add(4 * time.Second), SessionID: "s-2", Direction: DirectionIn, Layer: LayerTransport, Category: CategoryError,
			Error: &ErrorEventData{Layer: LayerTransport, Message: "timeout"}},
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	path := writeCapture(t, sampleEvents(base))

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	events := readAll(t, r)
	require.Len(t, events, 5)
	assert.NotNil(t, events[0].Frame)
	assert.NotNil(t, events[4].Error)
}

func TestReaderEmptyFile(t *testing.T) {
	path := writeCapture(t, nil)

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.rlog"))
	assert.Error(t, err)
}

func TestFilteredReader(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	path := writeCapture(t, sampleEvents(base))

	in := DirectionIn
	wireLayer := LayerWire
	errCat := CategoryError
	inventory := wire.CmdTagInventory
	power := wire.CmdSetRFPower
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"no filter", Filter{}, 5},
		{"session", Filter{SessionID: "s-2"}, 2},
		{"port", Filter{Port: "sim"}, 1},
		{"direction", Filter{Direction: &in}, 3},
		{"layer", Filter{Layer: &wireLayer}, 2},
		{"category", Filter{Category: &errCat}, 1},
		{"code", Filter{Code: &inventory}, 2},
		{"code without match", Filter{Code: &power}, 0},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{SessionID: "s-1", Direction: &in}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			require.NoError(t, err)
			defer r.Close()

			assert.Len(t, readAll(t, r), tt.want)
		})
	}
}

func TestEventCode(t *testing.T) {
	code, ok := EventCode(Event{Command: &CommandEvent{Code: wire.CmdSetRFPower}})
	assert.True(t, ok)
	assert.Equal(t, wire.CmdSetRFPower, code)

	code, ok = EventCode(Event{Response: &ResponseEvent{Code: wire.CmdGetReaderInfo}})
	assert.True(t, ok)
	assert.Equal(t, wire.CmdGetReaderInfo, code)

	_, ok = EventCode(Event{Frame: &FrameEvent{}})
	assert.False(t, ok)
}
