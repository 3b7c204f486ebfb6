// Package crc computes the CRC-16/MCRF4XX checksum that protects every reader
// frame.
//
// The checksum uses the reflected polynomial 0x8408 with initial value 0xFFFF
// and no final XOR. It is appended to a frame low byte first.
package crc
