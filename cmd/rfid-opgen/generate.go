package main

import (
	"fmt"
	"strings"
)

// Generate renders the command code source for table. The result is not
// formatted; writeFormatted runs it through goimports.
func Generate(table *RawTable) (string, error) {
	data := tableData{
		Package: table.Package,
		Type:    table.Type,
		Prefix:  table.Prefix,
		All:     table.Commands,
	}
	for _, c := range table.Commands {
		switch c.Kind {
		case KindAction:
			data.Actions = append(data.Actions, c)
		case KindConfig:
			data.Configs = append(data.Configs, c)
		}
	}
	if len(data.Actions) == 0 || len(data.Configs) == 0 {
		return "", fmt.Errorf("table needs at least one action and one config command")
	}

	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "codes", data); err != nil {
		return "", fmt.Errorf("template codes: %w", err)
	}
	return b.String(), nil
}
