package reader

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rfid-proxy/rfid-go/internal/channeltest"
	"github.com/rfid-proxy/rfid-go/pkg/log"
	"github.com/rfid-proxy/rfid-go/pkg/transport"
	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

func expectedFrame(t *testing.T, addr uint8, code wire.CommandCode, payload ...byte) []byte {
	t.Helper()
	frame, err := wire.Encode(wire.Command{Address: addr, Code: code, Payload: payload})
	require.NoError(t, err)
	return frame
}

func replyTo(t *testing.T, ch *channeltest.Channel, code wire.CommandCode, status wire.Status, payload ...byte) {
	t.Helper()
	ch.QueueBytes(channeltest.ReplyFrame(t, wire.Response{
		Address: 0x00,
		Code:    code,
		Status:  status,
		Payload: payload,
	})...)
}

func TestRun(t *testing.T) {
	ch := channeltest.New()
	replyTo(t, ch, wire.CmdGetReaderInfo, wire.StatusSuccess, 0x01, 0x02)

	c := New(ch, WithPollAttempts(10))
	resp, err := c.Run(context.Background(), wire.NewCommand(wire.CmdGetReaderInfo))
	require.NoError(t, err)

	assert.Equal(t, uint8(2), resp.Size)
	assert.Equal(t, uint8(0x00), resp.Address)
	assert.Equal(t, wire.CmdGetReaderInfo, resp.Code)
	assert.Equal(t, wire.StatusSuccess, resp.Status)
	assert.Equal(t, []byte{0x01, 0x02}, resp.Payload)

	require.Len(t, ch.Writes(), 1)
	assert.Equal(t, expectedFrame(t, 0xFF, wire.CmdGetReaderInfo), ch.Writes()[0])
}

func TestRunStatusIsNotFailure(t *testing.T) {
	ch := channeltest.New()
	replyTo(t, ch, wire.CmdReadData, wire.StatusIllegalCommand)

	resp, err := New(ch).Run(context.Background(), wire.NewCommand(wire.CmdReadData))
	require.NoError(t, err)
	assert.Equal(t, wire.StatusIllegalCommand, resp.Status)
}

func TestRunTimeout(t *testing.T) {
	ch := channeltest.New()

	_, err := New(ch, WithPollAttempts(5)).Run(context.Background(), wire.NewCommand(wire.CmdSetRFPower, 10))
	assert.ErrorIs(t, err, transport.ErrTimeout)
	assert.Equal(t, 5, ch.Reads())
	assert.Len(t, ch.Writes(), 1)
}

func TestRunChecksumMismatch(t *testing.T) {
	frame := channeltest.ReplyFrame(t, wire.Response{Code: wire.CmdSetRFPower})
	frame[2] ^= 0x01

	ch := channeltest.New().QueueBytes(frame...)
	resp, err := New(ch, WithPollAttempts(10)).Run(context.Background(), wire.NewCommand(wire.CmdSetRFPower, 10))
	assert.ErrorIs(t, err, wire.ErrChecksumMismatch)
	assert.Nil(t, resp)
}

func TestRunMalformed(t *testing.T) {
	ch := channeltest.New().QueueBytes(0x02, 0x00, 0x2F)

	_, err := New(ch, WithPollAttempts(10)).Run(context.Background(), wire.NewCommand(wire.CmdSetRFPower, 10))
	assert.ErrorIs(t, err, wire.ErrMalformed)
}

func TestRunWriteError(t *testing.T) {
	ch := channeltest.New()
	ch.FailWrites(errors.New("unplugged"))

	_, err := New(ch).Run(context.Background(), wire.NewCommand(wire.CmdSetRFPower, 10))
	assert.ErrorIs(t, err, transport.ErrIO)
	assert.Equal(t, 0, ch.Reads())
}

func TestRunPayloadTooLarge(t *testing.T) {
	m := new(channeltest.MockChannel)

	cmd := wire.NewCommand(wire.CmdWriteData, make([]byte, wire.MaxPayloadSize+1)...)
	_, err := New(m).Run(context.Background(), cmd)
	assert.ErrorIs(t, err, wire.ErrPayloadTooLarge)
	m.AssertNotCalled(t, "Write", mock.Anything)
}

func TestWithAddress(t *testing.T) {
	ch := channeltest.New()
	replyTo(t, ch, wire.CmdSetBuzzerEnabled, wire.StatusSuccess)

	c := New(ch, WithAddress(0x00))
	assert.Equal(t, uint8(0x00), c.Address())
	require.NoError(t, c.SetBuzzer(context.Background(), 1))
	assert.Equal(t, expectedFrame(t, 0x00, wire.CmdSetBuzzerEnabled, 1), ch.Writes()[0])
}

// capturingLogger records events for test verification.
type capturingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (l *capturingLogger) Log(event log.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *capturingLogger) Events() []log.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]log.Event(nil), l.events...)
}

func TestClientLogsExchange(t *testing.T) {
	ch := channeltest.New()
	replyTo(t, ch, wire.CmdTagInventory, wire.StatusInventoryEarly, 0x08, 0x01, 0x02, 0xAA, 0xBB, 0x50)

	logger := &capturingLogger{}
	c := New(ch,
		WithLogger(logger, "session-1"),
		WithPortName("sim"),
		WithSearch([]byte{0xAA}),
		WithPollAttempts(10),
	)

	_, err := c.Inventory(context.Background())
	require.NoError(t, err)

	events := logger.Events()
	require.Len(t, events, 5)

	for _, e := range events {
		assert.Equal(t, "session-1", e.SessionID)
		assert.Equal(t, "sim", e.Port)
	}

	require.NotNil(t, events[0].Command)
	assert.Equal(t, wire.CmdTagInventory, events[0].Command.Code)
	assert.Equal(t, log.DirectionOut, events[0].Direction)

	require.NotNil(t, events[1].Frame)
	assert.Equal(t, log.DirectionOut, events[1].Direction)
	require.NotNil(t, events[2].Frame)
	assert.Equal(t, log.DirectionIn, events[2].Direction)

	require.NotNil(t, events[3].Response)
	assert.Equal(t, wire.StatusInventoryEarly, events[3].Response.Status)
	assert.NotNil(t, events[3].Response.RoundTrip)

	inv := events[4].Inventory
	require.NotNil(t, inv)
	assert.Equal(t, log.LayerReader, events[4].Layer)
	assert.Equal(t, log.CategoryInventory, events[4].Category)
	assert.Equal(t, uint8(4), inv.Antenna)
	assert.Equal(t, []byte{0xAA}, inv.Searched)
	require.Len(t, inv.Tags, 1)
	assert.True(t, inv.Tags[0].Found)
}

func TestClientLogsDecodeError(t *testing.T) {
	frame := channeltest.ReplyFrame(t, wire.Response{Code: wire.CmdSetRFPower})
	frame[len(frame)-1] ^= 0xFF

	logger := &capturingLogger{}
	ch := channeltest.New().QueueBytes(frame...)
	err := New(ch, WithLogger(logger, "s"), WithPollAttempts(10)).SetPower(context.Background(), 5)
	require.ErrorIs(t, err, wire.ErrChecksumMismatch)

	events := logger.Events()
	last := events[len(events)-1]
	require.NotNil(t, last.Error)
	assert.Equal(t, log.LayerWire, last.Error.Layer)
	assert.Equal(t, "decode SET_RF_POWER", last.Error.Context)
}
