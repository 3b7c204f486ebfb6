package reader

import (
	"github.com/rfid-proxy/rfid-go/pkg/log"
	"github.com/rfid-proxy/rfid-go/pkg/transport"
)

// Option configures a Client.
type Option func(*Client)

// WithAddress sets the reader address commands are sent to. The default
// is the broadcast address 0xFF.
func WithAddress(addr uint8) Option {
	return func(c *Client) {
		c.address = addr
	}
}

// WithPollAttempts bounds the reads spent waiting for each reply.
func WithPollAttempts(n int) Option {
	return func(c *Client) {
		c.framerOpts = append(c.framerOpts, transport.WithPollAttempts(n))
	}
}

// WithLogger captures the exchanges to logger. Frames, commands,
// responses, inventories and errors are logged under sessionID.
func WithLogger(logger log.Logger, sessionID string) Option {
	return func(c *Client) {
		c.logger = logger
		c.sessionID = sessionID
		c.framerOpts = append(c.framerOpts, transport.WithLogger(logger, sessionID))
	}
}

// WithPortName records the channel name in log events.
func WithPortName(name string) Option {
	return func(c *Client) {
		c.port = name
		c.framerOpts = append(c.framerOpts, transport.WithPortName(name))
	}
}

// WithSearch marks inventory tags whose EPC starts with epc in logged
// inventory events.
func WithSearch(epc []byte) Option {
	return func(c *Client) {
		c.search = append([]byte(nil), epc...)
	}
}
