// Package channeltest provides scripted byte channels for testing reader
// exchanges without hardware.
package channeltest

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// step is one scripted read result.
type step struct {
	data []byte
	idle int
	err  error
}

// Channel is a scripted transport. Reads replay queued steps in order;
// once the script is exhausted every read returns 0, nil. Writes are
// recorded.
type Channel struct {
	// Handlers are callbacks for channel operations.
	Handlers Handlers

	steps      []step
	writes     [][]byte
	reads      int
	writeErr   error
	shortWrite bool

	mu sync.Mutex
}

// Handlers holds callbacks for channel operations.
type Handlers struct {
	// OnWrite is called with every written frame. A non-nil return is
	// queued as the reply.
	OnWrite func(frame []byte) []byte
}

// New creates an empty channel.
func New() *Channel {
	return &Channel{}
}

// QueueBytes queues data to be returned by the next reads. A read with a
// smaller buffer consumes the data across several calls.
func (c *Channel) QueueBytes(data ...byte) *Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.steps = append(c.steps, step{data: append([]byte(nil), data...)})
	return c
}

// QueueIdle queues n reads returning 0, nil.
func (c *Channel) QueueIdle(n int) *Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.steps = append(c.steps, step{idle: n})
	return c
}

// QueueError queues a read failing with err.
func (c *Channel) QueueError(err error) *Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.steps = append(c.steps, step{err: err})
	return c
}

// FailWrites makes every write fail with err.
func (c *Channel) FailWrites(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeErr = err
}

// ShortWrites makes every write report one byte less than requested.
func (c *Channel) ShortWrites() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shortWrite = true
}

// Read implements transport.Channel.
func (c *Channel) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reads++
	for len(c.steps) > 0 {
		s := &c.steps[0]
		switch {
		case s.err != nil:
			err := s.err
			c.steps = c.steps[1:]
			return 0, err
		case s.idle > 0:
			s.idle--
			if s.idle == 0 {
				c.steps = c.steps[1:]
			}
			return 0, nil
		case len(s.data) > 0:
			n := copy(p, s.data)
			s.data = s.data[n:]
			if len(s.data) == 0 {
				c.steps = c.steps[1:]
			}
			return n, nil
		default:
			c.steps = c.steps[1:]
		}
	}
	return 0, nil
}

// Write implements transport.Channel.
func (c *Channel) Write(p []byte) (int, error) {
	c.mu.Lock()
	if c.writeErr != nil {
		err := c.writeErr
		c.mu.Unlock()
		return 0, err
	}
	frame := append([]byte(nil), p...)
	c.writes = append(c.writes, frame)
	n := len(p)
	if c.shortWrite && n > 0 {
		n--
	}
	handler := c.Handlers.OnWrite
	c.mu.Unlock()

	if handler != nil {
		if reply := handler(frame); reply != nil {
			c.QueueBytes(reply...)
		}
	}
	return n, nil
}

// Writes returns every frame written, in order.
func (c *Channel) Writes() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.writes))
	for i, w := range c.writes {
		out[i] = append([]byte(nil), w...)
	}
	return out
}

// Written returns all written bytes concatenated.
func (c *Channel) Written() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return bytes.Join(c.writes, nil)
}

// Reads returns the number of Read calls made.
func (c *Channel) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

// Pending reports whether scripted reads remain.
func (c *Channel) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.steps) > 0
}

// ReplyFrame encodes r as the bytes a reader puts on the wire, ready for
// QueueBytes.
func ReplyFrame(tb testing.TB, r wire.Response) []byte {
	tb.Helper()
	frame, err := wire.EncodeResponse(r)
	if err != nil {
		tb.Fatalf("EncodeResponse: %v", err)
	}
	return frame
}
