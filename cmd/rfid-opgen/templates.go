package main

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"
)

var funcMap = template.FuncMap{
	"firstLower": firstLower,
	"upperSnake": upperSnake,
	"hexByte":    func(v int) string { return fmt.Sprintf("0x%02X", v) },
	"quote":      func(s string) string { return fmt.Sprintf("%q", s) },
}

var templates = template.Must(template.New("").Funcs(funcMap).Parse(codesTmpl))

// tableData is the template input for the command code file.
type tableData struct {
	Package string
	Type    string
	Prefix  string
	All     []RawCommandDef
	Actions []RawCommandDef
	Configs []RawCommandDef
}

const codesTmpl = `{{define "codes"}}
// Code generated by rfid-opgen. DO NOT EDIT.

package {{.Package}}

// {{.Type}} identifies the reader operation a frame carries.
type {{.Type}} uint8

const (
{{- range .All}}
// {{$.Prefix}}{{.Name}}: {{firstLower .Description}}.
{{$.Prefix}}{{.Name}} {{$.Type}} = {{hexByte .Value}}
{{- end}}
)

// String returns the command name.
func (c {{.Type}}) String() string {
switch c {
{{- range .All}}
case {{$.Prefix}}{{.Name}}:
return {{quote (upperSnake .Name)}}
{{- end}}
default:
return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(c))
}
}

// IsAction reports whether c operates on tags in the field.
func (c {{.Type}}) IsAction() bool {
switch c {
case {{range $i, $c := .Actions}}{{if $i}}, {{end}}{{$.Prefix}}{{$c.Name}}{{end}}:
return true
}
return false
}

// IsConfig reports whether c reads or changes reader settings.
func (c {{.Type}}) IsConfig() bool {
switch c {
case {{range $i, $c := .Configs}}{{if $i}}, {{end}}{{$.Prefix}}{{$c.Name}}{{end}}:
return true
}
return false
}

// IsValid reports whether c is a known command code.
func (c {{.Type}}) IsValid() bool {
return c.IsAction() || c.IsConfig()
}

// {{.Type}}s returns every known command code in table order.
func {{.Type}}s() []{{.Type}} {
return []{{.Type}}{
{{- range .All}}
{{$.Prefix}}{{.Name}},
{{- end}}
}
}
{{end}}`

func firstLower(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// upperSnake converts "SetRFPower" to "SET_RF_POWER" and
// "GetMonza4QTParameters" to "GET_MONZA4QT_PARAMETERS".
func upperSnake(name string) string {
	r := []rune(name)
	var b strings.Builder
	for i, c := range r {
		if i > 0 && unicode.IsUpper(c) {
			prev := r[i-1]
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(c))
	}
	return b.String()
}
