// Package transport moves reader frames over a byte channel.
//
// A Channel is anything that can write bytes and read them back, where a
// read may return zero bytes to mean "nothing yet". Serial ports opened with
// OpenSerial behave this way once their read timeout expires.
//
// Framer writes encoded requests and receives replies. Receiving polls for
// the length byte with a bounded number of read attempts, then reads the
// announced number of bytes:
//
//	f := transport.NewFramer(ch, transport.WithPollAttempts(300))
//	if err := f.WriteFrame(frame); err != nil { ... }
//	reply, err := f.ReadFrame(ctx)
//
// The reply starts with the number of bytes actually read, followed by
// those bytes, which is the shape wire.Decode expects.
package transport
