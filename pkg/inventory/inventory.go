// Package inventory decodes tag inventory replies.
//
// An inventory payload names the antenna that answered, followed by a
// length-prefixed record per tag:
//
//	antenna_code(1) tag_count(1) { epc_len(1) epc(epc_len) rssi(1) } * tag_count
//
// Any inconsistency voids the whole report; no partial result is returned.
package inventory

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// Decoding errors.
var (
	// ErrInvalidAntenna indicates an antenna code outside {1, 2, 4, 8}.
	ErrInvalidAntenna = errors.New("invalid antenna code")

	// ErrTruncated indicates a record runs past the end of the payload.
	ErrTruncated = errors.New("inventory payload truncated")
)

// MaxAntennas is the number of antenna ports a reader has.
const MaxAntennas = 4

// Tag is one transponder seen during an inventory round.
type Tag struct {
	RSSI uint8
	EPC  []byte
}

// EPCString returns the EPC as upper-case hex.
func (t Tag) EPCString() string {
	return strings.ToUpper(hex.EncodeToString(t.EPC))
}

// Report is the result of one inventory exchange.
type Report struct {
	// Antenna is the 1-based antenna port that answered.
	Antenna uint8

	// Tags are the tags in the order the reader listed them.
	Tags []Tag
}

// AntennaIndex maps an antenna bitmask code to its 1-based port number.
func AntennaIndex(code uint8) (uint8, error) {
	switch code {
	case 0x01:
		return 1, nil
	case 0x02:
		return 2, nil
	case 0x04:
		return 3, nil
	case 0x08:
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidAntenna, code)
	}
}

// AntennaCode is the inverse of AntennaIndex.
func AntennaCode(index uint8) (uint8, error) {
	if index < 1 || index > MaxAntennas {
		return 0, fmt.Errorf("%w: antenna %d", ErrInvalidAntenna, index)
	}
	return 1 << (index - 1), nil
}

// Decode parses the payload of an inventory reply.
func Decode(resp *wire.Response) (*Report, error) {
	return DecodePayload(resp.Payload)
}

// DecodePayload parses a raw inventory payload.
func DecodePayload(payload []byte) (*Report, error) {
	if len(payload) < 2 {
		return nil, fmt.Errorf("%w: header needs 2 bytes, have %d", ErrTruncated, len(payload))
	}

	antenna, err := AntennaIndex(payload[0])
	if err != nil {
		return nil, err
	}

	count := int(payload[1])
	report := &Report{
		Antenna: antenna,
		Tags:    make([]Tag, 0, count),
	}

	cursor := 2
	for i := 0; i < count; i++ {
		if cursor >= len(payload) {
			return nil, fmt.Errorf("%w: tag %d missing EPC length", ErrTruncated, i+1)
		}
		epcLen := int(payload[cursor])
		cursor++

		if cursor+epcLen > len(payload) {
			return nil, fmt.Errorf("%w: tag %d EPC needs %d bytes, have %d",
				ErrTruncated, i+1, epcLen, len(payload)-cursor)
		}
		epc := make([]byte, epcLen)
		copy(epc, payload[cursor:cursor+epcLen])
		cursor += epcLen

		if cursor >= len(payload) {
			return nil, fmt.Errorf("%w: tag %d missing RSSI", ErrTruncated, i+1)
		}
		rssi := payload[cursor]
		cursor++

		report.Tags = append(report.Tags, Tag{RSSI: rssi, EPC: epc})
	}

	return report, nil
}

// EncodePayload serializes a report into inventory payload form. Readers
// and simulators use it to answer inventory requests.
func EncodePayload(r *Report) ([]byte, error) {
	code, err := AntennaCode(r.Antenna)
	if err != nil {
		return nil, err
	}
	if len(r.Tags) > 0xFF {
		return nil, fmt.Errorf("too many tags: %d", len(r.Tags))
	}

	payload := []byte{code, byte(len(r.Tags))}
	for i, tag := range r.Tags {
		if len(tag.EPC) > 0xFF {
			return nil, fmt.Errorf("tag %d: EPC too long: %d bytes", i+1, len(tag.EPC))
		}
		payload = append(payload, byte(len(tag.EPC)))
		payload = append(payload, tag.EPC...)
		payload = append(payload, tag.RSSI)
	}
	return payload, nil
}
