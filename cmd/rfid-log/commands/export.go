package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rfid-proxy/rfid-go/pkg/log"
	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// RunExport exports the log file to the specified format. An empty output
// writes to stdout.
func RunExport(path, format, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return ExportTo(path, format, w)
}

// ExportTo exports the log file to w.
func ExportTo(path, format string, w io.Writer) error {
	switch format {
	case "jsonl":
		encoder := json.NewEncoder(w)
		return forEachEvent(path, log.Filter{}, func(event log.Event) error {
			if err := encoder.Encode(event); err != nil {
				return fmt.Errorf("failed to encode event: %w", err)
			}
			return nil
		})
	case "csv":
		return exportCSV(path, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

var csvHeader = []string{"timestamp", "session_id", "port", "direction", "layer", "category", "type", "command", "status", "data"}

func exportCSV(path string, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	err := forEachEvent(path, log.Filter{}, func(event log.Event) error {
		if err := cw.Write(csvRow(event)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		return nil
	})
	cw.Flush()
	if err != nil {
		return err
	}
	return cw.Error()
}

// csvRow flattens an event into the columns of csvHeader.
func csvRow(event log.Event) []string {
	var command, status, data string
	if code, ok := log.EventCode(event); ok {
		command = code.String()
	}
	switch {
	case event.Frame != nil:
		data = wire.FormatHex(event.Frame.Data)
	case event.Command != nil:
		data = wire.FormatHex(event.Command.Payload)
	case event.Response != nil:
		status = event.Response.Status.String()
		data = wire.FormatHex(event.Response.Payload)
	case event.Inventory != nil:
		data = strconv.Itoa(len(event.Inventory.Tags)) + " tags"
	case event.Error != nil:
		data = event.Error.Message
	}

	return []string{
		event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		event.SessionID,
		event.Port,
		event.Direction.String(),
		event.Layer.String(),
		event.Category.String(),
		eventType(event),
		command,
		status,
		data,
	}
}
