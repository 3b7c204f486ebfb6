// Package commands implements the rfid-log CLI commands.
package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rfid-proxy/rfid-go/pkg/log"
	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Layer     *log.Layer
	Direction *log.Direction
	Category  *log.Category
	Code      *wire.CommandCode
}

func (f ViewFilter) filter() log.Filter {
	return log.Filter{
		Layer:     f.Layer,
		Direction: f.Direction,
		Category:  f.Category,
		Code:      f.Code,
	}
}

// eventType returns a short label for the event payload.
func eventType(event log.Event) string {
	switch {
	case event.Frame != nil:
		return "Frame"
	case event.Command != nil:
		return "Command"
	case event.Response != nil:
		return "Response"
	case event.Inventory != nil:
		return "Inventory"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] %-3s %s %s\n",
		ts, shortenSessionID(event.SessionID), event.Direction, event.Layer, eventType(event))

	switch {
	case event.Frame != nil:
		formatFrameDetails(w, event.Frame)
	case event.Command != nil:
		formatCommandDetails(w, event.Command)
	case event.Response != nil:
		formatResponseDetails(w, event.Response)
	case event.Inventory != nil:
		formatInventoryDetails(w, event.Inventory)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatFrameDetails(w io.Writer, frame *log.FrameEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", frame.Size)
	if len(frame.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(frame.Data))
		if frame.Truncated {
			fmt.Fprintf(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatCommandDetails(w io.Writer, cmd *log.CommandEvent) {
	fmt.Fprintf(w, "  Address: 0x%02X\n", cmd.Address)
	fmt.Fprintf(w, "  Command: %s (0x%02X)\n", cmd.Code, uint8(cmd.Code))
	if len(cmd.Payload) > 0 {
		fmt.Fprintf(w, "  Payload: %s\n", wire.FormatHex(cmd.Payload))
	}
}

func formatResponseDetails(w io.Writer, resp *log.ResponseEvent) {
	fmt.Fprintf(w, "  Address: 0x%02X\n", resp.Address)
	fmt.Fprintf(w, "  Command: %s (0x%02X)\n", resp.Code, uint8(resp.Code))
	fmt.Fprintf(w, "  Status: %s (0x%02X)\n", resp.Status, uint8(resp.Status))
	if resp.RoundTrip != nil {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(*resp.RoundTrip))
	}
	if len(resp.Payload) > 0 {
		fmt.Fprintf(w, "  Payload: %s\n", wire.FormatHex(resp.Payload))
	}
}

func formatInventoryDetails(w io.Writer, inv *log.InventoryEvent) {
	fmt.Fprintf(w, "  Antenna: %d\n", inv.Antenna)
	fmt.Fprintf(w, "  Tags: %d\n", len(inv.Tags))
	if len(inv.Searched) > 0 {
		fmt.Fprintf(w, "  Searched: %s\n", wire.FormatHex(inv.Searched))
	}
	for i, tag := range inv.Tags {
		mark := ""
		if tag.Found {
			mark = " [*FOUND*]"
		}
		fmt.Fprintf(w, "    [%d] rssi=%d epc=%s%s\n", i+1, tag.RSSI, wire.FormatHex(tag.EPC), mark)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer)
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	return parseLayer(s)
}

func parseLayer(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "transport":
		return log.LayerTransport, nil
	case "wire":
		return log.LayerWire, nil
	case "reader":
		return log.LayerReader, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be transport, wire, or reader)", s)
	}
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	return parseDirection(s)
}

func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "message":
		return log.CategoryMessage, nil
	case "inventory":
		return log.CategoryInventory, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be message, inventory, or error)", s)
	}
}

// ParseCodeFlag parses a command code given as a number (0x2F, 47) or a
// name (SET_RF_POWER, case-insensitive).
func ParseCodeFlag(s string) (wire.CommandCode, error) {
	return parseCode(s)
}

func parseCode(s string) (wire.CommandCode, error) {
	if v, err := strconv.ParseUint(s, 0, 8); err == nil {
		return wire.CommandCode(v), nil
	}
	name := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for _, c := range wire.CommandCodes() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid command code: %s", s)
}

// forEachEvent streams the events of the capture at path that match
// filter into fn, stopping at the first error fn returns.
func forEachEvent(path string, filter log.Filter, fn func(log.Event) error) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	return forEachEvent(path, filter.filter(), func(event log.Event) error {
		formatEvent(output, event)
		return nil
	})
}
