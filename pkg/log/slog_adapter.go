package log

import (
	"context"
	"encoding/hex"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger at debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event as one structured record.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Port != "" {
		attrs = append(attrs, slog.String("port", event.Port))
	}

	switch {
	case event.Frame != nil:
		attrs = append(attrs,
			slog.Int("frame_size", event.Frame.Size),
			slog.String("frame", hex.EncodeToString(event.Frame.Data)),
			slog.Bool("truncated", event.Frame.Truncated),
		)
	case event.Command != nil:
		attrs = append(attrs,
			slog.Int("addr", int(event.Command.Address)),
			slog.String("cmd", event.Command.Code.String()),
			slog.Int("size", len(event.Command.Payload)),
		)
	case event.Response != nil:
		attrs = append(attrs,
			slog.Int("addr", int(event.Response.Address)),
			slog.String("cmd", event.Response.Code.String()),
			slog.String("status", event.Response.Status.String()),
			slog.Int("size", len(event.Response.Payload)),
		)
		if event.Response.RoundTrip != nil {
			attrs = append(attrs, slog.Duration("round_trip", *event.Response.RoundTrip))
		}
	case event.Inventory != nil:
		found := 0
		for _, t := range event.Inventory.Tags {
			if t.Found {
				found++
			}
		}
		attrs = append(attrs,
			slog.Int("antenna", int(event.Inventory.Antenna)),
			slog.Int("tags", len(event.Inventory.Tags)),
		)
		if len(event.Inventory.Searched) > 0 {
			attrs = append(attrs, slog.Int("found", found))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "protocol", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
