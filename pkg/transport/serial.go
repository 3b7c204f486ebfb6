package transport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// Serial defaults used by the reader firmware.
const (
	DefaultSerialPort  = "/dev/ttyUSB0"
	DefaultBaudRate    = 57600
	DefaultReadTimeout = 10 * time.Millisecond
)

// SerialConfig describes a serial line to a reader.
type SerialConfig struct {
	// Port is the device path, e.g. /dev/ttyUSB0 or COM3.
	Port string

	// BaudRate defaults to 57600.
	BaudRate int

	// ReadTimeout bounds each read. A read that times out returns 0, nil
	// and costs one poll attempt. Defaults to 10ms.
	ReadTimeout time.Duration
}

func (c SerialConfig) withDefaults() SerialConfig {
	if c.Port == "" {
		c.Port = DefaultSerialPort
	}
	if c.BaudRate == 0 {
		c.BaudRate = DefaultBaudRate
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	return c
}

// SerialChannel is a Channel over a serial port opened 8N1.
type SerialChannel struct {
	port serial.Port
	name string
}

// OpenSerial opens the serial port described by cfg.
func OpenSerial(cfg SerialConfig) (*SerialChannel, error) {
	cfg = cfg.withDefaults()

	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", cfg.Port, err)
	}
	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", cfg.Port, err)
	}

	return &SerialChannel{port: port, name: cfg.Port}, nil
}

// Read reads from the port. It returns 0, nil when the read timeout expires.
func (s *SerialChannel) Read(p []byte) (int, error) {
	return s.port.Read(p)
}

// Write writes to the port.
func (s *SerialChannel) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

// Close closes the port.
func (s *SerialChannel) Close() error {
	return s.port.Close()
}

// Name returns the device path the channel was opened on.
func (s *SerialChannel) Name() string {
	return s.name
}

// ListPorts returns the serial ports present on this machine.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}
