// Package reader drives command exchanges with an RFID reader.
//
// A Client owns nothing but its settings: the caller opens the channel,
// hands it to New, and closes it when done. Each call runs one
// half-duplex exchange (encode, write, receive, decode) and blocks until
// the reply arrives or the poll budget runs out.
//
//	ch, _ := transport.OpenSerial(transport.SerialConfig{Port: "/dev/ttyUSB0"})
//	defer ch.Close()
//
//	c := reader.New(ch, reader.WithPollAttempts(300))
//	if err := c.SetPower(ctx, 30); err != nil { ... }
//	report, err := c.Inventory(ctx)
//
// Parameter checks happen before any I/O; an out-of-range value returns
// ErrInvalidParameter and leaves the channel untouched.
//
// A Client is not safe for concurrent use. Hosts sharing one channel
// between goroutines must serialize exchanges themselves.
package reader
