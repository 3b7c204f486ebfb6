// Command rfid-reader drives an RFID reader over a serial line.
//
// It opens the port 8N1 raw, optionally applies buzzer, power and scan
// time settings, then runs one command:
//
// Usage:
//
//	rfid-reader [flags] <command> [args]
//
// Commands:
//
//	inventory [-count N] [-interval D] [-search EPC]   Scan for tags
//	power <0-30>                                       Set RF power
//	scan-time <3-255>                                  Set inventory scan time
//	buzzer <0|1>                                       Disable or enable the buzzer
//	info                                               Show firmware and settings
//	ports                                              List serial ports
//	shell                                              Interactive mode
//
// Flags:
//
//	-config string       YAML configuration file
//	-port string         Serial port, or "sim" for the simulator (default "/dev/ttyUSB0")
//	-baud int            Baud rate (default 57600)
//	-address int         Reader address (default 255)
//	-read-timeout dur    Serial read timeout (default 10ms)
//	-poll-attempts int   Reads spent waiting for a reply (default 300)
//	-power int           RF power to set before the command
//	-scan-time int       Scan time to set before the command
//	-buzzer int          Buzzer setting to apply before the command
//	-search string       EPC prefix to highlight in inventories
//	-protocol-log string File path for protocol event logging (CBOR format)
//	-log-level string    Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Read tags once with full power
//	rfid-reader -power 30 inventory
//
//	# Watch for one tag every second against the simulator
//	rfid-reader -port sim inventory -count 0 -interval 1s -search E200
//
//	# Capture the exchange for rfid-log
//	rfid-reader -protocol-log reader.rlog info
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	rfidlog "github.com/rfid-proxy/rfid-go/pkg/log"
	"github.com/rfid-proxy/rfid-go/pkg/reader"
	"github.com/rfid-proxy/rfid-go/pkg/simulator"
	"github.com/rfid-proxy/rfid-go/pkg/transport"
)

const usage = `rfid-reader - RFID reader host

Usage:
  rfid-reader [flags] <command> [args]

Commands:
  inventory   Scan for tags
  power       Set RF power (0-30)
  scan-time   Set inventory scan time (3-255)
  buzzer      Disable (0) or enable (1) the buzzer
  info        Show reader firmware and settings
  ports       List serial ports
  shell       Interactive mode

Flags:
`

func main() {
	cfg, args, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("Received signal: %v", sig)
		cancel()
	}()

	if err := run(ctx, cancel, cfg, args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs reads flags and the optional config file. Flags given on the
// command line override the file.
func parseArgs(args []string, stderr io.Writer) (Config, []string, error) {
	fs := flag.NewFlagSet("rfid-reader", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	def := DefaultConfig()
	var flags Config
	var power, scanTime, buzzer int

	configFile := fs.String("config", "", "YAML configuration file")
	fs.StringVar(&flags.Port, "port", def.Port, `Serial port, or "sim" for the simulator`)
	fs.IntVar(&flags.Baud, "baud", def.Baud, "Baud rate")
	fs.IntVar(&flags.Address, "address", def.Address, "Reader address")
	fs.DurationVar(&flags.ReadTimeout, "read-timeout", def.ReadTimeout, "Serial read timeout")
	fs.IntVar(&flags.PollAttempts, "poll-attempts", def.PollAttempts, "Reads spent waiting for a reply")
	fs.IntVar(&power, "power", -1, "RF power to set before the command (0-30)")
	fs.IntVar(&scanTime, "scan-time", -1, "Scan time to set before the command (3-255)")
	fs.IntVar(&buzzer, "buzzer", -1, "Buzzer setting to apply before the command (0 or 1)")
	fs.StringVar(&flags.SearchEPC, "search", "", "EPC prefix to highlight in inventories")
	fs.StringVar(&flags.ProtocolLog, "protocol-log", "", "File path for protocol event logging (CBOR format)")
	fs.StringVar(&flags.LogLevel, "log-level", def.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	cfg := def
	if *configFile != "" {
		loaded, err := LoadConfig(*configFile)
		if err != nil {
			return Config{}, nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = flags.Port
		case "baud":
			cfg.Baud = flags.Baud
		case "address":
			cfg.Address = flags.Address
		case "read-timeout":
			cfg.ReadTimeout = flags.ReadTimeout
		case "poll-attempts":
			cfg.PollAttempts = flags.PollAttempts
		case "power":
			cfg.Power = &power
		case "scan-time":
			cfg.ScanTime = &scanTime
		case "buzzer":
			cfg.Buzzer = &buzzer
		case "search":
			cfg.SearchEPC = flags.SearchEPC
		case "protocol-log":
			cfg.ProtocolLog = flags.ProtocolLog
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})

	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, fs.Args(), nil
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
}

// channel is an open reader channel.
type channel interface {
	transport.Channel
	io.Closer
}

// simChannel adapts the simulator, which has nothing to close.
type simChannel struct {
	*simulator.Reader
}

func (simChannel) Close() error { return nil }

func openChannel(cfg *Config) (channel, error) {
	if cfg.Port == SimulatorPort {
		sc, err := cfg.simulatorConfig()
		if err != nil {
			return nil, err
		}
		return simChannel{simulator.New(sc)}, nil
	}
	port, err := transport.OpenSerial(transport.SerialConfig{
		Port:        cfg.Port,
		BaudRate:    cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, err
	}
	return port, nil
}

// protocolLogger builds the protocol event sink for cfg. The returned
// close function flushes any log file.
func protocolLogger(cfg *Config) (rfidlog.Logger, func() error, error) {
	var loggers []rfidlog.Logger
	closeFn := func() error { return nil }

	if cfg.ProtocolLog != "" {
		fl, err := rfidlog.NewFileLogger(cfg.ProtocolLog)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create protocol logger: %w", err)
		}
		log.Printf("Protocol logging to: %s", cfg.ProtocolLog)
		loggers = append(loggers, fl)
		closeFn = fl.Close
	}

	if cfg.LogLevel == "debug" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		loggers = append(loggers, rfidlog.NewSlogAdapter(slog.New(handler)))
	}

	if len(loggers) == 0 {
		return nil, closeFn, nil
	}
	return rfidlog.NewMultiLogger(loggers...), closeFn, nil
}

func run(ctx context.Context, cancel context.CancelFunc, cfg Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("command required (inventory, power, scan-time, buzzer, info, ports, shell)")
	}
	cmd, cmdArgs := args[0], args[1:]

	if cmd == "ports" {
		return runPorts(out)
	}
	if _, ok := commands[cmd]; !ok && cmd != "shell" {
		return fmt.Errorf("unknown command: %s", cmd)
	}

	ch, err := openChannel(&cfg)
	if err != nil {
		return err
	}
	defer ch.Close()
	log.Printf("Opened %s (%d baud, address 0x%02X)", cfg.Port, cfg.Baud, cfg.Address)

	logger, closeLog, err := protocolLogger(&cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			log.Printf("Error closing protocol log: %v", err)
		}
	}()

	opts := []reader.Option{
		reader.WithAddress(uint8(cfg.Address)),
		reader.WithPollAttempts(cfg.PollAttempts),
		reader.WithPortName(cfg.Port),
		reader.WithSearch(cfg.searchBytes()),
	}
	// Only set logger when non-nil to avoid typed-nil interface issue.
	if logger != nil {
		opts = append(opts, reader.WithLogger(logger, rfidlog.NewSessionID()))
	}
	client := reader.New(ch, opts...)

	if err := applySettings(ctx, client, &cfg); err != nil {
		return err
	}

	if cmd == "shell" {
		return runShell(ctx, cancel, client, &cfg)
	}
	return commands[cmd](ctx, client, &cfg, cmdArgs, out)
}
