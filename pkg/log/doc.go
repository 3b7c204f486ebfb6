// Package log provides structured protocol capture for reader exchanges.
//
// This package defines the Logger interface and Event types for recording
// what crossed the serial line at several layers (transport, wire, reader).
// It is separate from operational logging (slog): protocol capture is a
// machine-readable trace for debugging and later analysis with rfid-log.
//
// # Basic Usage
//
// Hosts pass a Logger to the transport and reader layers:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For field captures: write to a binary file
//	logger, _ := log.NewFileLogger("/var/log/rfid/reader.rlog")
//
//	// Both
//	logger := log.NewMultiLogger(slogAdapter, fileLogger)
//
// # Event Types
//
//   - Transport: raw frame bytes in and out (FrameEvent)
//   - Wire: encoded commands and decoded responses (CommandEvent, ResponseEvent)
//   - Reader: decoded inventories (InventoryEvent)
//
// Failures at any layer are recorded as ErrorEventData.
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with the .rlog
// extension.
package log
