package reader

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/rfid-proxy/rfid-go/pkg/inventory"
	"github.com/rfid-proxy/rfid-go/pkg/log"
	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// InventoryParams is the configuration sent with a tag inventory request.
type InventoryParams struct {
	QValue        uint8
	Session       uint8
	MaskSource    uint8
	MaskAddress   uint16
	MaskLength    uint8
	Target        uint8
	AntennaSelect uint8
	ScanTime      uint8
}

// DefaultInventoryParams is the configuration every inventory request
// carries. It is fixed for all clients:
// q-value 4, session 0, mask source 1, no mask, target A, antenna select
// 0x80 and a scan time of 0x14.
var DefaultInventoryParams = InventoryParams{
	QValue:        0x04,
	Session:       0x00,
	MaskSource:    0x01,
	MaskAddress:   0x0000,
	MaskLength:    0x00,
	Target:        0x00,
	AntennaSelect: 0x80,
	ScanTime:      0x14,
}

// Payload returns the 9-byte request payload.
func (p InventoryParams) Payload() []byte {
	b := make([]byte, 9)
	b[0] = p.QValue
	b[1] = p.Session
	b[2] = p.MaskSource
	binary.BigEndian.PutUint16(b[3:5], p.MaskAddress)
	b[5] = p.MaskLength
	b[6] = p.Target
	b[7] = p.AntennaSelect
	b[8] = p.ScanTime
	return b
}

// Inventory scans for tags and decodes the reply.
func (c *Client) Inventory(ctx context.Context) (*inventory.Report, error) {
	resp, err := c.Exec(ctx, wire.CmdTagInventory, DefaultInventoryParams.Payload()...)
	if err != nil {
		return nil, err
	}

	report, err := inventory.Decode(resp)
	if err != nil {
		c.logError(err, log.LayerReader, "decode inventory")
		return nil, fmt.Errorf("inventory (status %s): %w", resp.Status, err)
	}

	c.logInventory(report)
	return report, nil
}

func (c *Client) logInventory(report *inventory.Report) {
	if c.logger == nil {
		return
	}

	tags := make([]log.TagRecord, len(report.Tags))
	for i, tag := range report.Tags {
		tags[i] = log.TagRecord{
			EPC:   tag.EPC,
			RSSI:  tag.RSSI,
			Found: tag.Matches(c.search),
		}
	}

	c.logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: c.sessionID,
		Direction: log.DirectionIn,
		Layer:     log.LayerReader,
		Category:  log.CategoryInventory,
		Port:      c.port,
		Inventory: &log.InventoryEvent{
			Antenna:  report.Antenna,
			Tags:     tags,
			Searched: c.search,
		},
	})
}
