// Command access generates the narrowing-store / widening-load family of
// linmem.Memory methods: one function per (result width) × (source width)
// × (signedness) combination from the scalar access table. Each variant is
// a few lines of mechanical transcription over those three parameters, so
// rather than hand-write all of them we generate them from a single
// template and check the output in as access_gen.go.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"
	"text/template"
)

// narrowing describes a store that truncates a wider value to width bits
// before writing its little-endian encoding.
type narrowing struct {
	ResultType string // i32 or i64
	GoType     string // int32 or int64
	Width      int    // narrow width in bytes
	NarrowGo   string // int8, int16, int32
}

// widening describes a load that reads a narrow value and sign- or
// zero-extends it to the result width.
type widening struct {
	ResultType string // i32 or i64
	GoType     string // int32 or int64
	SrcName    string // I8, U8, I16, U16, I32, U32
	SrcGo      string // int8, uint8, int16, uint16, int32, uint32
	Width      int    // source width in bytes
}

var narrowings = []narrowing{
	{"I32", "int32", 1, "int8"},
	{"I32", "int32", 2, "int16"},
	{"I64", "int64", 1, "int8"},
	{"I64", "int64", 2, "int16"},
	{"I64", "int64", 4, "int32"},
}

var widenings = []widening{
	{"I32", "int32", "I8", "int8", 1},
	{"I32", "int32", "U8", "uint8", 1},
	{"I32", "int32", "I16", "int16", 2},
	{"I32", "int32", "U16", "uint16", 2},
	{"I64", "int64", "I8", "int8", 1},
	{"I64", "int64", "U8", "uint8", 1},
	{"I64", "int64", "I16", "int16", 2},
	{"I64", "int64", "U16", "uint16", 2},
	{"I64", "int64", "I32", "int32", 4},
	{"I64", "int64", "U32", "uint32", 4},
}

const tmplSrc = `// Code generated by internal/codegen/access. DO NOT EDIT.

package linmem

import "encoding/binary"

{{range .Narrowings}}
// Write{{.ResultType}}To{{.NarrowGo | title}} truncates value to {{.NarrowGo}} (bit-level wrap, modulo 2^{{mul .Width 8}}) then
// stores its little-endian encoding at addr.
func (m *Memory) Write{{.ResultType}}To{{.NarrowGo | title}}(addr int32, value {{.GoType}}) {
	buf := m.slice()
{{- if eq .Width 1}}
	buf[addr] = byte({{.NarrowGo}}(value))
{{- else}}
	var tmp [{{.Width}}]byte
	putUint{{mul .Width 8}}(tmp[:], uint{{mul .Width 8}}({{.NarrowGo}}(value)))
	copy(buf[addr:addr+{{.Width}}], tmp[:])
{{- end}}
}
{{end}}
{{range .Widenings}}
// Read{{.ResultType}}From{{.SrcName}} reads a {{.Width}}-byte {{.SrcGo}} at addr and {{if hasPrefix .SrcName "U"}}zero{{else}}sign{{end}}-extends it to {{if eq .ResultType "I32"}}i32{{else}}i64{{end}}.
func (m *Memory) Read{{.ResultType}}From{{.SrcName}}(addr int32) {{.GoType}} {
	buf := m.slice()
{{- if eq .Width 1}}
	return {{.GoType}}({{.SrcGo}}(buf[addr]))
{{- else}}
	return {{.GoType}}({{.SrcGo}}(binary.LittleEndian.Uint{{mul .Width 8}}(buf[addr : addr+{{.Width}}])))
{{- end}}
}
{{end}}
func putUint16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func putUint32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
`

func main() {
	out := flag.String("out", "access_gen.go", "output file")
	flag.Parse()

	funcs := template.FuncMap{
		"mul": func(a, b int) int { return a * b },
		"title": func(s string) string {
			switch s {
			case "int8":
				return "I8"
			case "int16":
				return "I16"
			case "int32":
				return "I32"
			}
			return s
		},
		"hasPrefix": func(s, prefix string) bool {
			return len(s) >= len(prefix) && s[:len(prefix)] == prefix
		},
	}

	tmpl := template.Must(template.New("access").Funcs(funcs).Parse(tmplSrc))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Narrowings []narrowing
		Widenings  []widening
	}{narrowings, widenings}); err != nil {
		log.Fatalf("executing template: %v", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("formatting generated source: %v\n%s", err, buf.String())
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
}
