// Package simulator provides an in-memory RFID reader.
//
// A Reader is a transport.Channel: frames written to it are decoded and
// executed against its state, and the replies become readable. It lets
// the CLI and tests exercise full exchanges without hardware.
package simulator

import (
	"sync"

	"github.com/rfid-proxy/rfid-go/pkg/crc"
	"github.com/rfid-proxy/rfid-go/pkg/inventory"
	"github.com/rfid-proxy/rfid-go/pkg/reader"
	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// Config describes the simulated reader.
type Config struct {
	// Address is the reader's own address. Defaults to 0x00.
	Address uint8

	// Antenna is the 1-based port reported by inventories. Defaults to 1.
	Antenna uint8

	// Tags are the tags in the field.
	Tags []inventory.Tag

	// VersionMajor and VersionMinor are reported by get reader info.
	VersionMajor uint8
	VersionMinor uint8

	// Power and ScanTime are the initial settings.
	Power    uint8
	ScanTime uint8
}

// Default settings of a freshly powered reader.
const (
	DefaultPower    = 30
	DefaultScanTime = 10
	ReaderType      = 0x0F
	ProtocolMask    = 0x02
	MaxFrequency    = 0x3E
	MinFrequency    = 0x00
)

// Fault alters how the simulator answers the next request.
type Fault int

const (
	// FaultNone answers normally.
	FaultNone Fault = iota
	// FaultSilent swallows the request without replying.
	FaultSilent
	// FaultCorrupt replies with a damaged checksum.
	FaultCorrupt
)

// State is a snapshot of the simulated reader's settings.
type State struct {
	Address  uint8
	Power    uint8
	ScanTime uint8
	Buzzer   bool
}

// Reader is a simulated reader. It is safe for concurrent use.
type Reader struct {
	mu sync.Mutex

	cfg   Config
	state State

	in     []byte
	out    []byte
	faults []Fault

	requests []wire.Command
}

// New creates a simulated reader.
func New(cfg Config) *Reader {
	if cfg.Antenna == 0 {
		cfg.Antenna = 1
	}
	if cfg.Power == 0 {
		cfg.Power = DefaultPower
	}
	if cfg.ScanTime == 0 {
		cfg.ScanTime = DefaultScanTime
	}
	return &Reader{
		cfg: cfg,
		state: State{
			Address:  cfg.Address,
			Power:    cfg.Power,
			ScanTime: cfg.ScanTime,
			Buzzer:   true,
		},
	}
}

// State returns the current settings.
func (r *Reader) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// SetTags replaces the tags in the field.
func (r *Reader) SetTags(tags ...inventory.Tag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg.Tags = append([]inventory.Tag(nil), tags...)
}

// InjectFault queues faults applied to the following requests, one each.
func (r *Reader) InjectFault(faults ...Fault) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faults = append(r.faults, faults...)
}

// Requests returns every well-formed request received, in order.
func (r *Reader) Requests() []wire.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]wire.Command(nil), r.requests...)
}

// Write accepts request bytes. Complete frames are executed immediately.
func (r *Reader) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.in = append(r.in, p...)
	for len(r.in) > 0 {
		total := int(r.in[0]) + 1
		if len(r.in) < total {
			break
		}
		frame := r.in[:total]
		r.in = r.in[total:]
		r.handleFrame(frame)
	}
	return len(p), nil
}

// Read returns pending reply bytes, or 0, nil when there are none.
func (r *Reader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := copy(p, r.out)
	r.out = r.out[n:]
	return n, nil
}

func (r *Reader) nextFault() Fault {
	if len(r.faults) == 0 {
		return FaultNone
	}
	f := r.faults[0]
	r.faults = r.faults[1:]
	return f
}

func (r *Reader) handleFrame(frame []byte) {
	fault := r.nextFault()
	if fault == FaultSilent {
		return
	}

	// Shortest request is length, address, code and checksum.
	if len(frame) < 5 {
		return
	}
	code := wire.CommandCode(frame[2])

	if !crc.Verify(frame) {
		r.reply(code, wire.StatusParameterError, nil, fault)
		return
	}

	cmd := wire.Command{
		Address: frame[1],
		Code:    code,
		Payload: append([]byte(nil), frame[3:len(frame)-crc.Size]...),
	}
	if cmd.Address != wire.BroadcastAddress && cmd.Address != r.state.Address {
		return
	}
	r.requests = append(r.requests, cmd)

	status, payload := r.execute(cmd)
	r.reply(code, status, payload, fault)
}

func (r *Reader) execute(cmd wire.Command) (wire.Status, []byte) {
	switch cmd.Code {
	case wire.CmdTagInventory:
		return r.inventory()

	case wire.CmdGetReaderInfo:
		info := reader.Info{
			VersionMajor: r.cfg.VersionMajor,
			VersionMinor: r.cfg.VersionMinor,
			Type:         ReaderType,
			Protocols:    ProtocolMask,
			MaxFrequency: MaxFrequency,
			MinFrequency: MinFrequency,
			Power:        r.state.Power,
			ScanTime:     r.state.ScanTime,
		}
		return wire.StatusSuccess, info.Payload()

	case wire.CmdSetRFPower:
		return r.setByte(cmd, func(v uint8) bool {
			if v > reader.MaxPower {
				return false
			}
			r.state.Power = v
			return true
		})

	case wire.CmdSetInventoryTime:
		return r.setByte(cmd, func(v uint8) bool {
			if v < reader.MinScanTime {
				return false
			}
			r.state.ScanTime = v
			return true
		})

	case wire.CmdSetBuzzerEnabled:
		return r.setByte(cmd, func(v uint8) bool {
			r.state.Buzzer = v != 0
			return true
		})

	case wire.CmdSetReaderAddress:
		return r.setByte(cmd, func(v uint8) bool {
			if v == wire.BroadcastAddress {
				return false
			}
			r.state.Address = v
			return true
		})

	default:
		return wire.StatusIllegalCommand, nil
	}
}

// setByte applies a single-byte setting through apply, which reports
// whether the value is acceptable.
func (r *Reader) setByte(cmd wire.Command, apply func(uint8) bool) (wire.Status, []byte) {
	if len(cmd.Payload) != 1 {
		return wire.StatusLengthError, nil
	}
	if !apply(cmd.Payload[0]) {
		return wire.StatusParameterError, nil
	}
	return wire.StatusSuccess, nil
}

func (r *Reader) inventory() (wire.Status, []byte) {
	payload, err := inventory.EncodePayload(&inventory.Report{
		Antenna: r.cfg.Antenna,
		Tags:    r.cfg.Tags,
	})
	if err != nil {
		return wire.StatusExecuteError, nil
	}
	if len(r.cfg.Tags) == 0 {
		return wire.StatusNoTag, payload
	}
	return wire.StatusSuccess, payload
}

func (r *Reader) reply(code wire.CommandCode, status wire.Status, payload []byte, fault Fault) {
	frame, err := wire.EncodeResponse(wire.Response{
		Address: r.state.Address,
		Code:    code,
		Status:  status,
		Payload: payload,
	})
	if err != nil {
		frame, _ = wire.EncodeResponse(wire.Response{
			Address: r.state.Address,
			Code:    code,
			Status:  wire.StatusExecuteError,
		})
	}
	if fault == FaultCorrupt {
		frame[len(frame)-1] ^= 0xFF
	}
	r.out = append(r.out, frame...)
}
