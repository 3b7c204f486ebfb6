package reader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rfid-proxy/rfid-go/pkg/log"
	"github.com/rfid-proxy/rfid-go/pkg/transport"
	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// ErrInvalidParameter indicates a value was rejected before any I/O.
var ErrInvalidParameter = errors.New("invalid parameter")

// Client runs command exchanges with a reader over a channel.
type Client struct {
	framer     *transport.Framer
	framerOpts []transport.Option

	address uint8
	search  []byte

	// Logging support (optional)
	logger    log.Logger
	sessionID string
	port      string
}

// New creates a client for the reader on ch. The client never closes ch.
func New(ch transport.Channel, opts ...Option) *Client {
	c := &Client{
		address: wire.BroadcastAddress,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.framer = transport.NewFramer(ch, c.framerOpts...)
	return c
}

// Address returns the reader address commands are sent to.
func (c *Client) Address() uint8 {
	return c.address
}

// Run performs one exchange: encode, write, receive, decode. The reply's
// status byte is not checked; callers inspect Response.Status.
func (c *Client) Run(ctx context.Context, cmd wire.Command) (*wire.Response, error) {
	frame, err := wire.Encode(cmd)
	if err != nil {
		c.logError(err, log.LayerWire, "encode "+cmd.Code.String())
		return nil, err
	}

	c.logCommand(cmd)
	start := time.Now()

	if err := c.framer.WriteFrame(frame); err != nil {
		return nil, fmt.Errorf("send %s: %w", cmd.Code, err)
	}

	raw, err := c.framer.ReadFrame(ctx)
	if err != nil {
		return nil, fmt.Errorf("receive %s: %w", cmd.Code, err)
	}

	resp, err := wire.Decode(raw)
	if err != nil {
		c.logError(err, log.LayerWire, "decode "+cmd.Code.String())
		return nil, fmt.Errorf("decode %s: %w", cmd.Code, err)
	}

	c.logResponse(resp, time.Since(start))
	return resp, nil
}

// Exec builds a command for the client's address and runs it.
func (c *Client) Exec(ctx context.Context, code wire.CommandCode, payload ...byte) (*wire.Response, error) {
	cmd := wire.NewCommand(code, payload...)
	cmd.Address = c.address
	return c.Run(ctx, cmd)
}

func (c *Client) logCommand(cmd wire.Command) {
	if c.logger == nil {
		return
	}
	c.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: c.sessionID,
		Direction: log.DirectionOut,
		Layer:     log.LayerWire,
		Category:  log.CategoryMessage,
		Port:      c.port,
		Command: &log.CommandEvent{
			Address: cmd.Address,
			Code:    cmd.Code,
			Payload: append([]byte(nil), cmd.Payload...),
		},
	})
}

func (c *Client) logResponse(resp *wire.Response, rtt time.Duration) {
	if c.logger == nil {
		return
	}
	c.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: c.sessionID,
		Direction: log.DirectionIn,
		Layer:     log.LayerWire,
		Category:  log.CategoryMessage,
		Port:      c.port,
		Response: &log.ResponseEvent{
			Address:   resp.Address,
			Code:      resp.Code,
			Status:    resp.Status,
			Payload:   append([]byte(nil), resp.Payload...),
			RoundTrip: &rtt,
		},
	})
}

func (c *Client) logError(err error, layer log.Layer, op string) {
	if c.logger == nil {
		return
	}
	c.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: c.sessionID,
		Direction: log.DirectionIn,
		Layer:     layer,
		Category:  log.CategoryError,
		Port:      c.port,
		Error: &log.ErrorEventData{
			Layer:   layer,
			Message: err.Error(),
			Context: op,
		},
	})
}
