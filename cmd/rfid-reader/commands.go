package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/rfid-proxy/rfid-go/cmd/rfid-reader/interactive"
	"github.com/rfid-proxy/rfid-go/pkg/inventory"
	"github.com/rfid-proxy/rfid-go/pkg/reader"
	"github.com/rfid-proxy/rfid-go/pkg/transport"
	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// commandFunc runs one subcommand against an open reader.
type commandFunc func(ctx context.Context, c *reader.Client, cfg *Config, args []string, out io.Writer) error

var commands = map[string]commandFunc{
	"inventory": runInventory,
	"power":     runPower,
	"scan-time": runScanTime,
	"buzzer":    runBuzzer,
	"info":      runInfo,
}

// applySettings sends the buzzer, power and scan time settings from cfg,
// in that order, before the command runs.
func applySettings(ctx context.Context, c *reader.Client, cfg *Config) error {
	if cfg.Buzzer != nil {
		if err := c.SetBuzzer(ctx, uint8(*cfg.Buzzer)); err != nil {
			return fmt.Errorf("set buzzer: %w", err)
		}
		log.Printf("Buzzer set to %d", *cfg.Buzzer)
	}
	if cfg.Power != nil {
		if err := c.SetPower(ctx, uint8(*cfg.Power)); err != nil {
			return fmt.Errorf("set power: %w", err)
		}
		log.Printf("Power set to %d", *cfg.Power)
	}
	if cfg.ScanTime != nil {
		if err := c.SetScanTime(ctx, uint8(*cfg.ScanTime)); err != nil {
			return fmt.Errorf("set scan time: %w", err)
		}
		log.Printf("Scan time set to %d", *cfg.ScanTime)
	}
	return nil
}

func runInventory(ctx context.Context, c *reader.Client, cfg *Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("inventory", flag.ContinueOnError)
	count := fs.Int("count", 1, "Inventory rounds to run (0 runs until interrupted)")
	interval := fs.Duration("interval", 0, "Pause between rounds")
	search := fs.String("search", cfg.SearchEPC, "EPC prefix to highlight")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *count < 0 {
		return fmt.Errorf("count must not be negative, got %d", *count)
	}

	var searched []byte
	if *search != "" {
		epc, err := wire.ParseHex(*search)
		if err != nil {
			return fmt.Errorf("search EPC: %w", err)
		}
		searched = epc
	}

	for round := 0; *count == 0 || round < *count; round++ {
		if round > 0 && *interval > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(*interval):
			}
		}

		report, err := c.Inventory(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := inventory.Format(out, report, searched); err != nil {
			return err
		}
		if found := report.Found(searched); len(found) > 0 {
			log.Printf("Found %d matching tag(s) on antenna %d", len(found), report.Antenna)
		}
	}
	return nil
}

func runPower(ctx context.Context, c *reader.Client, _ *Config, args []string, out io.Writer) error {
	return runSetting(ctx, "power", c.SetPower, args, out)
}

func runScanTime(ctx context.Context, c *reader.Client, _ *Config, args []string, out io.Writer) error {
	return runSetting(ctx, "scan time", c.SetScanTime, args, out)
}

func runBuzzer(ctx context.Context, c *reader.Client, _ *Config, args []string, out io.Writer) error {
	return runSetting(ctx, "buzzer", c.SetBuzzer, args, out)
}

func runSetting(ctx context.Context, name string, set func(context.Context, uint8) error, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%s: exactly one value required", name)
	}
	v, err := strconv.ParseUint(args[0], 0, 8)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := set(ctx, uint8(v)); err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	fmt.Fprintf(out, "%s set to %d\n", name, v)
	return nil
}

func runInfo(ctx context.Context, c *reader.Client, _ *Config, _ []string, out io.Writer) error {
	info, err := c.Info(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, info)
	return nil
}

func runPorts(out io.Writer) error {
	ports, err := transport.ListPorts()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Fprintln(out, "No serial ports found")
		return nil
	}
	for _, p := range ports {
		fmt.Fprintln(out, p)
	}
	return nil
}

func runShell(ctx context.Context, cancel context.CancelFunc, c *reader.Client, cfg *Config) error {
	sh, err := interactive.New(c, cfg.searchBytes())
	if err != nil {
		return err
	}
	log.SetOutput(sh.Stdout())
	sh.Run(ctx, cancel)
	return nil
}
