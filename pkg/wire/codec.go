package wire

import (
	"errors"
	"fmt"

	"github.com/rfid-proxy/rfid-go/pkg/crc"
)

// Frame constants.
const (
	// HeaderOverhead is added to the payload size to form the length byte.
	HeaderOverhead = 4

	// MaxPayloadSize is the largest payload whose length byte fits in a byte.
	MaxPayloadSize = 0xFF - HeaderOverhead

	// MinResponseSize is the smallest buffer Decode accepts: count, address,
	// code, status and the checksum.
	MinResponseSize = HeaderOverhead + crc.Size

	// ResponseBufferSize bounds a received frame: one count byte plus at
	// most 255 body bytes.
	ResponseBufferSize = 256
)

// Codec errors.
var (
	// ErrMalformed indicates a response shorter than MinResponseSize.
	ErrMalformed = errors.New("malformed frame")

	// ErrChecksumMismatch indicates the trailing checksum does not match.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrPayloadTooLarge indicates a payload whose length byte would overflow.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// Encode serializes cmd into a request frame.
func Encode(cmd Command) ([]byte, error) {
	size := len(cmd.Payload)
	if size > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, size, MaxPayloadSize)
	}

	length := size + HeaderOverhead
	frame := make([]byte, 0, length+1)
	frame = append(frame, byte(length), cmd.Address, byte(cmd.Code))
	frame = append(frame, cmd.Payload...)
	return crc.Append(frame), nil
}

// Decode parses a received buffer (count byte first) into a Response.
// The payload is copied so buf may be reused.
func Decode(buf []byte) (*Response, error) {
	if len(buf) < MinResponseSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformed, len(buf), MinResponseSize)
	}
	if !crc.Verify(buf) {
		n := len(buf) - crc.Size
		return nil, fmt.Errorf("%w: got %02X %02X, want %04X",
			ErrChecksumMismatch, buf[n], buf[n+1], crc.Checksum(buf[:n]))
	}

	size := len(buf) - MinResponseSize
	payload := make([]byte, size)
	copy(payload, buf[HeaderOverhead:HeaderOverhead+size])

	return &Response{
		Size:    uint8(size),
		Address: buf[1],
		Code:    CommandCode(buf[2]),
		Status:  Status(buf[3]),
		Payload: payload,
	}, nil
}

// EncodeResponse serializes r the way a reader sends it: count byte,
// address, code, status, payload and checksum. The count byte is the number
// of bytes that follow it. Simulators and tests use it to produce replies.
func EncodeResponse(r Response) ([]byte, error) {
	size := len(r.Payload)
	if size > 0xFF-(MinResponseSize-1) {
		return nil, fmt.Errorf("%w: %d", ErrPayloadTooLarge, size)
	}

	frame := make([]byte, 0, size+MinResponseSize)
	frame = append(frame, byte(size+MinResponseSize-1), r.Address, byte(r.Code), byte(r.Status))
	frame = append(frame, r.Payload...)
	return crc.Append(frame), nil
}
