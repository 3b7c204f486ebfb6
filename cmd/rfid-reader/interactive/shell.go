// Package interactive provides the interactive command-line interface
// for rfid-reader.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rfid-proxy/rfid-go/pkg/inventory"
	"github.com/rfid-proxy/rfid-go/pkg/reader"
	"github.com/rfid-proxy/rfid-go/pkg/wire"
)

// Shell runs reader commands typed at a prompt.
type Shell struct {
	client *reader.Client
	rl     *readline.Instance
	out    io.Writer

	// search is the EPC prefix highlighted in inventory listings.
	search []byte
}

// New creates a shell driving client.
func New(client *reader.Client, search []byte) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rfid> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newShell(client, rl.Stdout(), search)
	s.rl = rl
	return s, nil
}

func newShell(client *reader.Client, out io.Writer, search []byte) *Shell {
	return &Shell{
		client: client,
		out:    out,
		search: search,
	}
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.execute(ctx, line) {
			cancel()
			return
		}
	}
}

// execute runs one command line. It returns false when the shell should exit.
func (s *Shell) execute(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "inventory", "inv", "i":
		s.cmdInventory(ctx, args)

	case "power", "p":
		s.cmdSetting(ctx, args, "power", s.client.SetPower)

	case "scan-time", "scan":
		s.cmdSetting(ctx, args, "scan time", s.client.SetScanTime)

	case "buzzer", "b":
		s.cmdSetting(ctx, args, "buzzer", s.client.SetBuzzer)

	case "info":
		s.cmdInfo(ctx)

	case "search":
		s.cmdSearch(args)

	case "raw":
		s.cmdRaw(ctx, args)

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `
Commands:
  inventory [n]        Scan for tags (n rounds, default 1)
  power <0-30>         Set RF power
  scan-time <3-255>    Set inventory scan time
  buzzer <0|1>         Disable or enable the buzzer
  info                 Show reader firmware and settings
  search [epc|clear]   Show, set or clear the highlighted EPC prefix
  raw <code> [hex]     Send any command code with a hex payload
  help                 Show this help
  quit                 Exit
`)
}

func (s *Shell) cmdInventory(ctx context.Context, args []string) {
	rounds := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(s.out, "Invalid round count: %s\n", args[0])
			return
		}
		rounds = n
	}

	for i := 0; i < rounds; i++ {
		report, err := s.client.Inventory(ctx)
		if err != nil {
			fmt.Fprintf(s.out, "Inventory failed: %v\n", err)
			return
		}
		if err := inventory.Format(s.out, report, s.search); err != nil {
			fmt.Fprintf(s.out, "Output failed: %v\n", err)
			return
		}
	}
}

func (s *Shell) cmdSetting(ctx context.Context, args []string, name string, set func(context.Context, uint8) error) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "Usage: %s <value>\n", name)
		return
	}
	value, err := parseByte(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid %s: %v\n", name, err)
		return
	}
	if err := set(ctx, value); err != nil {
		fmt.Fprintf(s.out, "Set %s failed: %v\n", name, err)
		return
	}
	fmt.Fprintf(s.out, "%s set to %d\n", name, value)
}

func (s *Shell) cmdInfo(ctx context.Context) {
	info, err := s.client.Info(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Info failed: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, info)
}

func (s *Shell) cmdSearch(args []string) {
	if len(args) == 0 {
		if len(s.search) == 0 {
			fmt.Fprintln(s.out, "No search EPC set")
		} else {
			fmt.Fprintf(s.out, "Searching for %s\n", wire.FormatHex(s.search))
		}
		return
	}

	if strings.EqualFold(args[0], "clear") {
		s.search = nil
		fmt.Fprintln(s.out, "Search cleared")
		return
	}

	epc, err := wire.ParseHex(strings.Join(args, ""))
	if err != nil {
		fmt.Fprintf(s.out, "Invalid EPC: %v\n", err)
		return
	}
	s.search = epc
	fmt.Fprintf(s.out, "Searching for %s\n", wire.FormatHex(epc))
}

func (s *Shell) cmdRaw(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: raw <code> [hex payload]")
		return
	}
	code, err := parseByte(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid command code: %v\n", err)
		return
	}
	var payload []byte
	if len(args) > 1 {
		payload, err = wire.ParseHex(strings.Join(args[1:], ""))
		if err != nil {
			fmt.Fprintf(s.out, "Invalid payload: %v\n", err)
			return
		}
	}

	resp, err := s.client.Exec(ctx, wire.CommandCode(code), payload...)
	if err != nil {
		fmt.Fprintf(s.out, "Command failed: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, resp)
}

// parseByte accepts decimal, 0x-prefixed hex, or octal.
func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
