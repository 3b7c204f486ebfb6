package transport

import (
	"context"
	"io"
)

// Channel is the byte transport a reader is attached to.
//
// Read may return 0, nil when no data is available yet; the receive loop
// treats that as one spent poll attempt. Any error is fatal to the exchange.
type Channel interface {
	io.Reader
	io.Writer
}

// FrameReadWriter sends request frames and receives reply frames.
// Implemented by Framer.
type FrameReadWriter interface {
	// WriteFrame writes a complete encoded frame.
	WriteFrame(frame []byte) error

	// ReadFrame receives one reply, count byte first.
	ReadFrame(ctx context.Context) ([]byte, error)
}

// Compile-time interface satisfaction checks.
var (
	_ FrameReadWriter = (*Framer)(nil)
	_ Channel         = (*SerialChannel)(nil)
)
