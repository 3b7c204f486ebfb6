// Command rfid-log is a tool for viewing and analyzing RFID protocol log files.
//
// Log files are created by rfid-reader when run with -protocol-log.
//
// Usage:
//
//	rfid-log <command> [flags] <file.rlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View only reader-layer events (decoded inventories)
//	rfid-log view -layer reader session.rlog
//
//	# View every exchange of one command
//	rfid-log view -code SET_RF_POWER session.rlog
//
//	# Export to CSV
//	rfid-log export -format csv -o session.csv session.rlog
//
//	# Keep only the errors of one session
//	rfid-log filter -session 5f0c2a1e -category error -o errors.rlog session.rlog
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rfid-proxy/rfid-go/cmd/rfid-log/commands"
)

const usage = `rfid-log - RFID Protocol Log Analyzer

Usage:
  rfid-log <command> [flags] <file.rlog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "rfid-log <command> -help" for more information about a command.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	cmd, rest := args[0], args[1:]

	var err error
	switch cmd {
	case "view":
		err = runView(rest, stdout, stderr)
	case "export":
		err = runExport(rest, stdout, stderr)
	case "filter":
		err = runFilter(rest, stdout, stderr)
	case "stats":
		err = runStats(rest, stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(stderr, usage)
		return 1
	}

	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newFlagSet builds a subcommand flag set whose usage text goes to stderr.
func newFlagSet(name, summary string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, `rfid-log %s - %s

Usage:
  rfid-log %s [flags] <file.rlog>

Flags:
`, name, summary, name)
		fs.PrintDefaults()
	}
	return fs
}

// logPath returns the single positional argument.
func logPath(fs *flag.FlagSet) (string, error) {
	if fs.NArg() < 1 {
		fs.Usage()
		return "", fmt.Errorf("log file path required")
	}
	return fs.Arg(0), nil
}

func runView(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("view", "View log file in human-readable format", stderr)

	layer := fs.String("layer", "", "Filter by layer (transport, wire, reader)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (message, inventory, error)")
	code := fs.String("code", "", "Filter by command code (name or number, e.g. SET_RF_POWER or 0x2F)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := logPath(fs)
	if err != nil {
		return err
	}

	var filter commands.ViewFilter

	if *layer != "" {
		l, err := commands.ParseLayerFlag(*layer)
		if err != nil {
			return err
		}
		filter.Layer = &l
	}

	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			return err
		}
		filter.Direction = &d
	}

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			return err
		}
		filter.Category = &c
	}

	if *code != "" {
		c, err := commands.ParseCodeFlag(*code)
		if err != nil {
			return err
		}
		filter.Code = &c
	}

	return commands.RunView(path, filter, stdout)
}

func runExport(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("export", "Export log file to JSON or CSV format", stderr)

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := logPath(fs)
	if err != nil {
		return err
	}

	if *output == "" {
		return commands.ExportTo(path, *format, stdout)
	}
	return commands.RunExport(path, *format, *output)
}

func runFilter(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("filter", "Filter log file and write to new file", stderr)

	var opts commands.FilterOptions
	fs.StringVar(&opts.Output, "o", "", "Output file (required)")
	fs.StringVar(&opts.SessionID, "session", "", "Filter by session ID")
	fs.StringVar(&opts.Port, "port", "", "Filter by port name")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter events after time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter events before time (RFC3339)")
	fs.StringVar(&opts.Layer, "layer", "", "Filter by layer (transport, wire, reader)")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (message, inventory, error)")
	fs.StringVar(&opts.Code, "code", "", "Filter by command code (name or number)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := logPath(fs)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		fs.Usage()
		return fmt.Errorf("output file required (-o)")
	}

	return commands.RunFilter(path, opts, stdout)
}

func runStats(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("stats", "Show statistics about the log file", stderr)

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := logPath(fs)
	if err != nil {
		return err
	}

	return commands.RunStats(path, stdout)
}
