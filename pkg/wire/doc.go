// Package wire defines the binary frame format spoken by UHF RFID readers on
// their serial line.
//
// # Request Frames
//
// A request carries a length byte, the reader address, a command code, an
// optional payload and a CRC-16/MCRF4XX checksum, low byte first:
//
//	[length][address][code][payload...][crc_lsb][crc_msb]
//
// The length byte is the payload size plus 4, so a request occupies
// length+1 bytes on the wire. The checksum covers every byte before it.
//
// # Response Frames
//
// The receive path hands Decode the reply with its leading byte count:
//
//	[count][address][code][status][payload...][crc_lsb][crc_msb]
//
// The checksum covers the count byte, the header and the payload. A reply
// that is too short or fails the checksum is rejected in full.
//
// # Command Codes
//
// CommandCode values are generated from docs/opcodes.yaml by rfid-opgen.
package wire
