package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rfid-proxy/rfid-go/pkg/log"
)

// Framing constants.
const (
	// DefaultPollAttempts bounds the reads spent waiting for a reply.
	DefaultPollAttempts = 1_000_000

	// MaxLogFrameDataSize is the maximum frame data included in log events.
	MaxLogFrameDataSize = 256
)

// Transport errors.
var (
	// ErrIO indicates a channel read or write failed or came up short.
	ErrIO = errors.New("channel I/O error")

	// ErrTimeout indicates the poll budget ran out before a reply arrived.
	ErrTimeout = errors.New("timed out waiting for reply")
)

// Option configures a Framer.
type Option func(*Framer)

// WithPollAttempts sets the number of reads spent waiting for the length
// byte, and again for the body. Values below 1 are ignored.
func WithPollAttempts(n int) Option {
	return func(f *Framer) {
		if n > 0 {
			f.attempts = n
		}
	}
}

// WithLogger captures frames and transport errors to logger.
func WithLogger(logger log.Logger, sessionID string) Option {
	return func(f *Framer) {
		f.logger = logger
		f.sessionID = sessionID
	}
}

// WithPortName records the channel name in log events.
func WithPortName(name string) Option {
	return func(f *Framer) {
		f.port = name
	}
}

// Framer writes request frames to a Channel and receives reply frames from
// it. A Framer is not safe for concurrent use; callers run one exchange at
// a time.
type Framer struct {
	ch       Channel
	attempts int

	// Logging support (optional)
	logger    log.Logger
	sessionID string
	port      string
}

// NewFramer creates a framer over ch.
func NewFramer(ch Channel, opts ...Option) *Framer {
	f := &Framer{
		ch:       ch,
		attempts: DefaultPollAttempts,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// PollAttempts returns the configured poll budget.
func (f *Framer) PollAttempts() int {
	return f.attempts
}

// WriteFrame writes frame in full.
func (f *Framer) WriteFrame(frame []byte) error {
	n, err := f.ch.Write(frame)
	if err != nil {
		err = fmt.Errorf("%w: write: %w", ErrIO, err)
		f.logError(err, "send", log.DirectionOut)
		return err
	}
	if n != len(frame) {
		err = fmt.Errorf("%w: short write: %d of %d bytes", ErrIO, n, len(frame))
		f.logError(err, "send", log.DirectionOut)
		return err
	}

	if f.logger != nil {
		f.logger.Log(f.makeFrameEvent(frame, log.DirectionOut))
	}
	return nil
}

// ReadFrame receives one reply. It polls for the length byte, reads that
// many bytes, and returns them behind a byte holding the count actually
// read. Running out of attempts before the length byte is ErrTimeout;
// running out while reading the body is ErrIO.
func (f *Framer) ReadFrame(ctx context.Context) ([]byte, error) {
	var lengthBuf [1]byte
	if _, err := f.poll(ctx, lengthBuf[:]); err != nil {
		f.logError(err, "receive length", log.DirectionIn)
		return nil, err
	}

	length := int(lengthBuf[0])
	buf := make([]byte, 1+length)
	n, err := f.poll(ctx, buf[1:])
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			err = fmt.Errorf("%w: short read: %d of %d bytes", ErrIO, n, length)
		}
		f.logError(err, "receive body", log.DirectionIn)
		return nil, err
	}
	buf[0] = byte(n)

	if f.logger != nil {
		f.logger.Log(f.makeFrameEvent(buf, log.DirectionIn))
	}
	return buf, nil
}

// poll fills p, spending at most f.attempts reads. It returns the number
// of bytes read.
func (f *Framer) poll(ctx context.Context, p []byte) (int, error) {
	got := 0
	for attempt := 0; got < len(p); attempt++ {
		if attempt >= f.attempts {
			return got, fmt.Errorf("%w after %d attempts", ErrTimeout, f.attempts)
		}
		if err := ctx.Err(); err != nil {
			return got, err
		}

		n, err := f.ch.Read(p[got:])
		if n > 0 {
			got += n
		}
		if err != nil {
			return got, fmt.Errorf("%w: read: %w", ErrIO, err)
		}
	}
	return got, nil
}

// makeFrameEvent creates a log event for a frame.
func (f *Framer) makeFrameEvent(data []byte, direction log.Direction) log.Event {
	frameData := data
	truncated := false
	if len(data) > MaxLogFrameDataSize {
		frameData = data[:MaxLogFrameDataSize]
		truncated = true
	}

	return log.Event{
		Timestamp: time.Now(),
		SessionID: f.sessionID,
		Direction: direction,
		Layer:     log.LayerTransport,
		Category:  log.CategoryMessage,
		Port:      f.port,
		Frame: &log.FrameEvent{
			Size:      len(data),
			Data:      append([]byte(nil), frameData...),
			Truncated: truncated,
		},
	}
}

func (f *Framer) logError(err error, op string, direction log.Direction) {
	if f.logger == nil {
		return
	}
	f.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: f.sessionID,
		Direction: direction,
		Layer:     log.LayerTransport,
		Category:  log.CategoryError,
		Port:      f.port,
		Error: &log.ErrorEventData{
			Layer:   log.LayerTransport,
			Message: err.Error(),
			Context: op,
		},
	})
}

// Receive reads one reply from ch with the default poll budget.
func Receive(ctx context.Context, ch Channel) ([]byte, error) {
	return NewFramer(ch).ReadFrame(ctx)
}
