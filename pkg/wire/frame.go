package wire

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// BroadcastAddress reaches whichever reader is on the line.
const BroadcastAddress uint8 = 0xFF

// Command is a request for a reader.
type Command struct {
	Address uint8
	Code    CommandCode
	Payload []byte
}

// NewCommand builds a command for the broadcast address.
func NewCommand(code CommandCode, payload ...byte) Command {
	return Command{Address: BroadcastAddress, Code: code, Payload: payload}
}

// String returns a one-line description, e.g.
// "<ReaderCommand: addr=0xFF, cmd=SET_RF_POWER(0x2F), size=0x01, data=1E>".
func (c Command) String() string {
	return fmt.Sprintf("<ReaderCommand: addr=0x%02X, cmd=%s(0x%02X), size=0x%02X%s>",
		c.Address, c.Code, uint8(c.Code), len(c.Payload), dataSuffix(c.Payload))
}

// Response is a decoded reply from a reader.
type Response struct {
	// Size is the payload length.
	Size uint8

	// Address is the replying reader's address.
	Address uint8

	// Code echoes the command code of the request.
	Code CommandCode

	// Status is the reader's result code.
	Status Status

	Payload []byte
}

// String returns a one-line description of the response.
func (r *Response) String() string {
	return fmt.Sprintf("<ReaderResponse: size=0x%02X, addr=0x%02X, cmd=%s(0x%02X), status=%s(0x%02X)%s>",
		r.Size, r.Address, r.Code, uint8(r.Code), r.Status, uint8(r.Status), dataSuffix(r.Payload))
}

func dataSuffix(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return ", data=" + FormatHex(data)
}

// FormatHex renders data as space-separated upper-case hex pairs.
func FormatHex(data []byte) string {
	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}

// ParseHex parses hex bytes such as "E2000017", "e2 00 00 17" or
// "E2:00:00:17".
func ParseHex(s string) ([]byte, error) {
	clean := strings.NewReplacer(" ", "", ":", "", "-", "").Replace(strings.TrimSpace(s))
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "0x"), "0X")
	data, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return data, nil
}
