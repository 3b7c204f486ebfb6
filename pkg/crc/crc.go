package crc

import "github.com/sigurn/crc16"

// Size is the number of checksum bytes trailing a frame.
const Size = 2

// Initial is the checksum of an empty span.
const Initial uint16 = 0xFFFF

var table = crc16.MakeTable(crc16.CRC16_MCRF4XX)

// Checksum returns the CRC-16/MCRF4XX of data. A nil or empty slice yields
// Initial.
func Checksum(data []byte) uint16 {
	if len(data) == 0 {
		return Initial
	}
	return crc16.Checksum(data, table)
}

// Append computes the checksum over frame and appends it low byte first.
func Append(frame []byte) []byte {
	sum := Checksum(frame)
	return append(frame, byte(sum), byte(sum>>8))
}

// Verify reports whether the last two bytes of frame hold the checksum of
// the bytes before them.
func Verify(frame []byte) bool {
	if len(frame) < Size {
		return false
	}
	n := len(frame) - Size
	sum := Checksum(frame[:n])
	return frame[n] == byte(sum) && frame[n+1] == byte(sum>>8)
}
