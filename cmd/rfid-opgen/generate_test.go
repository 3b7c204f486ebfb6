package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *RawTable {
	return &RawTable{
		Package: "wire",
		Type:    "CommandCode",
		Prefix:  "Cmd",
		Commands: []RawCommandDef{
			{Name: "TagInventory", Value: 0x01, Kind: KindAction, Description: "Scan the field"},
			{Name: "WriteEPC", Value: 0x04, Kind: KindAction, Description: "Write a new EPC"},
			{Name: "SetRFPower", Value: 0x2F, Kind: KindConfig, Description: "Set the RF output power"},
			{Name: "SetBuzzerEnabled", Value: 0x40, Kind: KindConfig, Description: "Enable or disable the buzzer"},
		},
	}
}

func mustContain(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("output missing %q\n--- output ---\n%s", want, output)
	}
}

func TestGenerateConstants(t *testing.T) {
	output, err := Generate(sampleTable())
	require.NoError(t, err)

	mustContain(t, output, "package wire")
	mustContain(t, output, "type CommandCode uint8")
	mustContain(t, output, "CmdTagInventory CommandCode = 0x01")
	mustContain(t, output, "CmdSetRFPower CommandCode = 0x2F")
	mustContain(t, output, "// CmdSetRFPower: set the RF output power.")
}

func TestGenerateString(t *testing.T) {
	output, err := Generate(sampleTable())
	require.NoError(t, err)

	mustContain(t, output, `return "TAG_INVENTORY"`)
	mustContain(t, output, `return "WRITE_EPC"`)
	mustContain(t, output, `return "SET_RF_POWER"`)
	mustContain(t, output, `return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(c))`)
}

func TestGenerateKinds(t *testing.T) {
	output, err := Generate(sampleTable())
	require.NoError(t, err)

	mustContain(t, output, "case CmdTagInventory, CmdWriteEPC:")
	mustContain(t, output, "case CmdSetRFPower, CmdSetBuzzerEnabled:")
	mustContain(t, output, "func CommandCodes() []CommandCode {")
}

func TestGenerateRequiresBothKinds(t *testing.T) {
	table := sampleTable()
	table.Commands = table.Commands[:2]

	_, err := Generate(table)
	assert.Error(t, err)
}

func TestWriteFormattedAddsImports(t *testing.T) {
	output, err := Generate(sampleTable())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "opcode_gen.go")
	require.NoError(t, writeFormatted(path, output))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	mustContain(t, string(data), `import "fmt"`)
	mustContain(t, string(data), "\tCmdTagInventory CommandCode = 0x01")
}

func TestUpperSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TagInventory", "TAG_INVENTORY"},
		{"WriteEPC", "WRITE_EPC"},
		{"SetRFPower", "SET_RF_POWER"},
		{"EASConfiguration", "EAS_CONFIGURATION"},
		{"QTInventory", "QT_INVENTORY"},
		{"GetMonza4QTParameters", "GET_MONZA4QT_PARAMETERS"},
		{"SetWorkMode288M", "SET_WORK_MODE288M"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, upperSnake(tt.in))
		})
	}
}
