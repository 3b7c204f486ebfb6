package reader

import (
	"context"
	"fmt"

	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// InfoPayloadSize is the length of a reader information reply.
const InfoPayloadSize = 8

// Info describes a reader's firmware and current settings.
type Info struct {
	VersionMajor uint8
	VersionMinor uint8
	Type         uint8

	// Protocols is a bitmask of supported air protocols.
	Protocols uint8

	MaxFrequency uint8
	MinFrequency uint8
	Power        uint8
	ScanTime     uint8
}

// Version returns the firmware version as "major.minor".
func (i *Info) Version() string {
	return fmt.Sprintf("%d.%d", i.VersionMajor, i.VersionMinor)
}

// String returns a one-line summary.
func (i *Info) String() string {
	return fmt.Sprintf("<ReaderInfo: version=%s, type=0x%02X, protocols=0x%02X, freq=0x%02X-0x%02X, power=%d, scan_time=%d>",
		i.Version(), i.Type, i.Protocols, i.MinFrequency, i.MaxFrequency, i.Power, i.ScanTime)
}

// ParseInfo decodes a reader information payload.
func ParseInfo(payload []byte) (*Info, error) {
	if len(payload) < InfoPayloadSize {
		return nil, fmt.Errorf("%w: reader info needs %d bytes, have %d",
			wire.ErrMalformed, InfoPayloadSize, len(payload))
	}
	return &Info{
		VersionMajor: payload[0],
		VersionMinor: payload[1],
		Type:         payload[2],
		Protocols:    payload[3],
		MaxFrequency: payload[4],
		MinFrequency: payload[5],
		Power:        payload[6],
		ScanTime:     payload[7],
	}, nil
}

// Payload returns the 8-byte wire form of i.
func (i *Info) Payload() []byte {
	return []byte{
		i.VersionMajor, i.VersionMinor, i.Type, i.Protocols,
		i.MaxFrequency, i.MinFrequency, i.Power, i.ScanTime,
	}
}

// Info queries the reader's firmware version and settings.
func (c *Client) Info(ctx context.Context) (*Info, error) {
	resp, err := c.Exec(ctx, wire.CmdGetReaderInfo)
	if err != nil {
		return nil, err
	}
	info, err := ParseInfo(resp.Payload)
	if err != nil {
		return nil, fmt.Errorf("reader info (status %s): %w", resp.Status, err)
	}
	return info, nil
}
