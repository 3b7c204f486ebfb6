package reader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rfid-proxy/rfid-go/internal/channeltest"
	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

func TestSetPower(t *testing.T) {
	for _, value := range []uint8{0, 15, 30} {
		ch := channeltest.New()
		replyTo(t, ch, wire.CmdSetRFPower, wire.StatusSuccess)

		require.NoError(t, New(ch).SetPower(context.Background(), value), "power %d", value)
		require.Len(t, ch.Writes(), 1)
		assert.Equal(t, expectedFrame(t, 0xFF, wire.CmdSetRFPower, value), ch.Writes()[0])
	}
}

func TestSetScanTime(t *testing.T) {
	for _, value := range []uint8{3, 20, 255} {
		ch := channeltest.New()
		replyTo(t, ch, wire.CmdSetInventoryTime, wire.StatusSuccess)

		require.NoError(t, New(ch).SetScanTime(context.Background(), value), "scan time %d", value)
		assert.Equal(t, expectedFrame(t, 0xFF, wire.CmdSetInventoryTime, value), ch.Writes()[0])
	}
}

func TestSetBuzzerSendsValueAsGiven(t *testing.T) {
	for _, value := range []uint8{0, 1, 7} {
		ch := channeltest.New()
		replyTo(t, ch, wire.CmdSetBuzzerEnabled, wire.StatusSuccess)

		require.NoError(t, New(ch).SetBuzzer(context.Background(), value))
		assert.Equal(t, expectedFrame(t, 0xFF, wire.CmdSetBuzzerEnabled, value), ch.Writes()[0])
	}
}

func TestInvalidParametersNeverTouchTheChannel(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Client) error
	}{
		{"power 31", func(c *Client) error { return c.SetPower(context.Background(), 31) }},
		{"power 255", func(c *Client) error { return c.SetPower(context.Background(), 255) }},
		{"scan time 0", func(c *Client) error { return c.SetScanTime(context.Background(), 0) }},
		{"scan time 2", func(c *Client) error { return c.SetScanTime(context.Background(), 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(channeltest.MockChannel)

			err := tt.call(New(m))
			assert.ErrorIs(t, err, ErrInvalidParameter)
			m.AssertNotCalled(t, "Write", mock.Anything)
			m.AssertNotCalled(t, "Read", mock.Anything)
		})
	}
}

func TestConfigureDiscardsResponse(t *testing.T) {
	ch := channeltest.New()
	replyTo(t, ch, wire.CmdSetRFPower, wire.StatusParameterError)

	assert.NoError(t, New(ch).SetPower(context.Background(), 10))
	assert.False(t, ch.Pending())
}

func TestSetPowerWithMockChannel(t *testing.T) {
	reply := channeltest.ReplyFrame(t, wire.Response{Code: wire.CmdSetRFPower})
	want := expectedFrame(t, 0xFF, wire.CmdSetRFPower, 30)

	m := new(channeltest.MockChannel)
	m.On("Write", want).Return(len(want), nil).Once()

	read := 0
	m.On("Read", mock.Anything).Return(1, nil).Run(func(args mock.Arguments) {
		p := args.Get(0).([]byte)
		p[0] = reply[read]
		read++
	})

	require.NoError(t, New(m).SetPower(context.Background(), 30))
	m.AssertExpectations(t)
	assert.Equal(t, len(reply), read)
}
