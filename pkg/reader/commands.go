package reader

import (
	"context"
	"fmt"

	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// Parameter ranges accepted by the reader.
const (
	MinPower    = 0
	MaxPower    = 30
	MinScanTime = 3
	MaxScanTime = 255
)

// SetPower sets the RF output power, 0 to 30.
func (c *Client) SetPower(ctx context.Context, value uint8) error {
	if value > MaxPower {
		return fmt.Errorf("%w: power %d outside %d-%d", ErrInvalidParameter, value, MinPower, MaxPower)
	}
	return c.configure(ctx, wire.CmdSetRFPower, value)
}

// SetScanTime sets the inventory scan time, 3 to 255.
func (c *Client) SetScanTime(ctx context.Context, value uint8) error {
	if value < MinScanTime {
		return fmt.Errorf("%w: scan time %d outside %d-%d", ErrInvalidParameter, value, MinScanTime, MaxScanTime)
	}
	return c.configure(ctx, wire.CmdSetInventoryTime, value)
}

// SetBuzzer enables (1) or disables (0) the buzzer. Other values are sent
// as given.
func (c *Client) SetBuzzer(ctx context.Context, value uint8) error {
	return c.configure(ctx, wire.CmdSetBuzzerEnabled, value)
}

// configure runs a single-byte configuration command and discards the reply.
func (c *Client) configure(ctx context.Context, code wire.CommandCode, value uint8) error {
	_, err := c.Exec(ctx, code, value)
	return err
}
