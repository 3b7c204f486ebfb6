package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kinds a command may declare.
const (
	KindAction = "action"
	KindConfig = "config"
)

// RawTable is the opcode table loaded from YAML.
type RawTable struct {
	Package  string          `yaml:"package"`
	Type     string          `yaml:"type"`
	Prefix   string          `yaml:"prefix"`
	Commands []RawCommandDef `yaml:"commands"`
}

// RawCommandDef describes a single command code.
type RawCommandDef struct {
	Name        string `yaml:"name"`
	Value       int    `yaml:"value"`
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
}

// LoadTable reads and validates an opcode table.
func LoadTable(path string) (*RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTable(data)
}

// ParseTable decodes and validates an opcode table from YAML bytes.
func ParseTable(data []byte) (*RawTable, error) {
	var table RawTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if table.Package == "" {
		table.Package = "wire"
	}
	if table.Type == "" {
		table.Type = "CommandCode"
	}
	if err := table.validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

func (t *RawTable) validate() error {
	if len(t.Commands) == 0 {
		return fmt.Errorf("no commands defined")
	}

	names := make(map[string]bool, len(t.Commands))
	values := make(map[int]string, len(t.Commands))
	for _, c := range t.Commands {
		if c.Name == "" {
			return fmt.Errorf("command 0x%02X has no name", c.Value)
		}
		if c.Value < 0 || c.Value > 0xFF {
			return fmt.Errorf("command %s: value %d does not fit a byte", c.Name, c.Value)
		}
		if c.Kind != KindAction && c.Kind != KindConfig {
			return fmt.Errorf("command %s: unknown kind %q", c.Name, c.Kind)
		}
		if names[c.Name] {
			return fmt.Errorf("duplicate command name %s", c.Name)
		}
		if other, ok := values[c.Value]; ok {
			return fmt.Errorf("commands %s and %s share value 0x%02X", other, c.Name, c.Value)
		}
		names[c.Name] = true
		values[c.Value] = c.Name
	}
	return nil
}
