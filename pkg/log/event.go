package log

import (
	"time"

	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// Event is a protocol event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID groups the events of one host session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates data flow relative to the host.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Port is the serial port or channel name.
	Port string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Frame     *FrameEvent     `cbor:"10,keyasint,omitempty"` // Transport layer
	Command   *CommandEvent   `cbor:"11,keyasint,omitempty"` // Wire layer, outgoing
	Response  *ResponseEvent  `cbor:"12,keyasint,omitempty"` // Wire layer, incoming
	Inventory *InventoryEvent `cbor:"13,keyasint,omitempty"` // Reader layer
	Error     *ErrorEventData `cbor:"14,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of data flow.
type Direction uint8

const (
	// DirectionIn indicates data received from the reader.
	DirectionIn Direction = 0
	// DirectionOut indicates data sent to the reader.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerTransport is the byte channel (raw frames).
	LayerTransport Layer = 0
	// LayerWire is the frame codec (commands and responses).
	LayerWire Layer = 1
	// LayerReader is the reader command layer (decoded results).
	LayerReader Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerWire:
		return "WIRE"
	case LayerReader:
		return "READER"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a frame, command or response.
	CategoryMessage Category = 0
	// CategoryInventory indicates a decoded tag inventory.
	CategoryInventory Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryInventory:
		return "INVENTORY"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures raw frame bytes at the transport layer.
type FrameEvent struct {
	// Size is the frame size in bytes.
	Size int `cbor:"1,keyasint"`

	// Data is the raw frame bytes (may be truncated).
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// CommandEvent captures a command handed to the frame encoder.
type CommandEvent struct {
	Address uint8            `cbor:"1,keyasint"`
	Code    wire.CommandCode `cbor:"2,keyasint"`
	Payload []byte           `cbor:"3,keyasint,omitempty"`
}

// ResponseEvent captures a decoded response.
type ResponseEvent struct {
	Address uint8            `cbor:"1,keyasint"`
	Code    wire.CommandCode `cbor:"2,keyasint"`
	Status  wire.Status      `cbor:"3,keyasint"`
	Payload []byte           `cbor:"4,keyasint,omitempty"`

	// RoundTrip is the time from the first byte written to the decoded
	// response. Stored as nanoseconds.
	RoundTrip *time.Duration `cbor:"5,keyasint,omitempty"`
}

// InventoryEvent captures a decoded inventory.
type InventoryEvent struct {
	// Antenna is the antenna index (1-4).
	Antenna uint8 `cbor:"1,keyasint"`

	Tags []TagRecord `cbor:"2,keyasint,omitempty"`

	// Searched is the EPC the host was looking for, if any.
	Searched []byte `cbor:"3,keyasint,omitempty"`
}

// TagRecord is one tag of an inventory.
type TagRecord struct {
	EPC  []byte `cbor:"1,keyasint"`
	RSSI uint8  `cbor:"2,keyasint"`

	// Found marks tags that match the searched EPC.
	Found bool `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
