// Command atomic generates the narrow-width / RMW-op / compare-exchange
// family of linmem.Memory atomic methods. The surface is a cross product
// of (cell width) x (RMW operator) x (result width), all mechanical
// transcriptions over the shared wordPtr/atomicRMWMasked/atomicCASMasked
// and uint64Ptr/atomicRMW64/atomicCAS64 helpers in atomic.go, so rather
// than hand-write all of them we generate them from a single template and
// check the output in as atomic_gen.go.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"
	"text/template"
)

// narrowLoad describes an AtomicReadI{32,64}From{name} function.
type narrowLoad struct {
	Result string // I32 or I64
	GoType string // int32 or int64
	Name   string // I8, U8, I16, U16, I32, U32
	GoNarrow string
	Width  int // bits
	Signed bool
}

// narrowStore describes an AtomicWriteI{32,64}To{name} function.
type narrowStore struct {
	Result string
	GoType string
	Name   string
	Width  int
}

// rmwVariant describes one width variant of one RMW operator, for either
// the i32 or the i64 result family.
type rmwVariant struct {
	Result string // I32 or I64
	GoType string // int32 or int64
	Suffix string // "", ToI8, ToI16, ToI32
	Width  int    // 0 means full-width (direct i32/i64 cell)
}

// rmwOp describes one RMW operator across all its width variants.
type rmwOp struct {
	Name string // Add, Sub, And, Or, Xor, Exchange
	Expr string // Go expression combining old and arg
}

// casVariant describes one width variant of compare-exchange.
type casVariant struct {
	Result string
	GoType string
	Suffix string
	Width  int
}

var narrowLoads = []narrowLoad{
	{"I32", "int32", "I8", "int8", 8, true},
	{"I32", "int32", "U8", "uint8", 8, false},
	{"I32", "int32", "I16", "int16", 16, true},
	{"I32", "int32", "U16", "uint16", 16, false},
	{"I64", "int64", "I8", "int8", 8, true},
	{"I64", "int64", "U8", "uint8", 8, false},
	{"I64", "int64", "I16", "int16", 16, true},
	{"I64", "int64", "U16", "uint16", 16, false},
	{"I64", "int64", "I32", "int32", 32, true},
	{"I64", "int64", "U32", "uint32", 32, false},
}

var narrowStores = []narrowStore{
	{"I32", "int32", "I8", 8},
	{"I32", "int32", "I16", 16},
	{"I64", "int64", "I8", 8},
	{"I64", "int64", "I16", 16},
	{"I64", "int64", "I32", 32},
}

var rmwVariants = []rmwVariant{
	{"I32", "int32", "", 0},
	{"I32", "int32", "ToI8", 8},
	{"I32", "int32", "ToI16", 16},
	{"I64", "int64", "", 0},
	{"I64", "int64", "ToI8", 8},
	{"I64", "int64", "ToI16", 16},
	{"I64", "int64", "ToI32", 32},
}

var rmwOps = []rmwOp{
	{"Add", "old + arg"},
	{"Sub", "old - arg"},
	{"And", "old & arg"},
	{"Or", "old | arg"},
	{"Xor", "old ^ arg"},
	{"Exchange", "arg"},
}

var casVariants = []casVariant{
	{"I32", "int32", "", 0},
	{"I32", "int32", "ToI8", 8},
	{"I32", "int32", "ToI16", 16},
	{"I64", "int64", "", 0},
	{"I64", "int64", "ToI8", 8},
	{"I64", "int64", "ToI16", 16},
	{"I64", "int64", "ToI32", 32},
}

const tmplSrc = `// Code generated by internal/codegen/atomic. DO NOT EDIT.

package linmem
{{range .NarrowLoads}}
// AtomicRead{{.Result}}From{{.Name}} performs a SeqCst load of the {{.Width}}-bit
// cell at addr, reinterpreted as {{.GoNarrow}}, and {{if .Signed}}sign{{else}}zero{{end}}-extends
// it to {{.Result | lower}}.
func (m *Memory) AtomicRead{{.Result}}From{{.Name}}(addr int32) {{.GoType}} {
	ptr, shift := m.wordPtr(addr)
	field := atomicLoadMasked(ptr, shift, {{.Width}})
	return {{.GoType}}({{.GoNarrow}}(field))
}
{{end}}
{{range .NarrowStores}}
// AtomicWrite{{.Result}}To{{.Name}} truncates value to {{.Width}} bits and performs a
// SeqCst store into the cell at addr.
func (m *Memory) AtomicWrite{{.Result}}To{{.Name}}(addr int32, value {{.GoType}}) {
	ptr, shift := m.wordPtr(addr)
	atomicStoreMasked(ptr, shift, {{.Width}}, uint32(value))
}
{{end}}
{{range .RMWOps}}{{$op := .}}{{range $.RMWVariants}}
{{if eq .Width 0}}// AtomicRMW{{$op.Name}}{{.Result}}{{.Suffix}} atomically applies {{$op.Name | lower}} to the {{.Result | lower}} cell
// at addr with operand value and returns the cell's prior value.
{{else}}// AtomicRMW{{$op.Name}}{{.Result}}{{.Suffix}} atomically applies {{$op.Name | lower}} to the
// {{.Width}}-bit cell at addr with operand value, returning the cell's prior
// value sign-extended to {{.Result | lower}}.
{{end -}}
func (m *Memory) AtomicRMW{{$op.Name}}{{.Result}}{{.Suffix}}(addr int32, value {{.GoType}}) {{.GoType}} {
{{- if eq .Width 0}}
{{- if eq .Result "I32"}}
	ptr, shift := m.wordPtr(addr)
	old := atomicRMWMasked(ptr, shift, 32, func(old uint32) uint32 {
		arg := uint32(value)
		return {{$op.Expr}}
	})
	return int32(old)
{{- else}}
	ptr := m.uint64Ptr(addr)
	old := atomicRMW64(ptr, func(old uint64) uint64 {
		arg := uint64(value)
		return {{$op.Expr}}
	})
	return int64(old)
{{- end}}
{{- else}}
	ptr, shift := m.wordPtr(addr)
	old := atomicRMWMasked(ptr, shift, {{.Width}}, func(old uint32) uint32 {
		arg := uint32(value)
		return {{$op.Expr}}
	})
	return {{.GoType}}(int{{.Width}}(old))
{{- end}}
}
{{end}}{{end}}
{{range .CASVariants}}
// AtomicCompareExchange{{.Result}}{{.Suffix}}{{if eq .Width 0}} performs a single-trial SeqCst compare-exchange
// of the {{.Result | lower}} cell at addr: if its value equals current, stores newVal.
// Either way, returns the observed prior value (never a boolean
// indicator).{{else}} is the {{.Width}}-bit-cell form of
// AtomicCompareExchange{{.Result}}.{{end}}
func (m *Memory) AtomicCompareExchange{{.Result}}{{.Suffix}}(addr int32, current {{.GoType}}, newVal {{.GoType}}) {{.GoType}} {
{{- if eq .Width 0}}
{{- if eq .Result "I32"}}
	ptr, shift := m.wordPtr(addr)
	return int32(atomicCASMasked(ptr, shift, 32, uint32(current), uint32(newVal)))
{{- else}}
	ptr := m.uint64Ptr(addr)
	return int64(atomicCAS64(ptr, uint64(current), uint64(newVal)))
{{- end}}
{{- else}}
	ptr, shift := m.wordPtr(addr)
	return {{.GoType}}(int{{.Width}}(atomicCASMasked(ptr, shift, {{.Width}}, uint32(current), uint32(newVal))))
{{- end}}
}
{{end}}
`

func main() {
	out := flag.String("out", "atomic_gen.go", "output file")
	flag.Parse()

	funcs := template.FuncMap{
		"lower": func(s string) string {
			b := []byte(s)
			for i, c := range b {
				if c >= 'A' && c <= 'Z' {
					b[i] = c + ('a' - 'A')
				}
			}
			return string(b)
		},
	}

	tmpl := template.Must(template.New("atomic").Funcs(funcs).Parse(tmplSrc))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		NarrowLoads  []narrowLoad
		NarrowStores []narrowStore
		RMWOps       []rmwOp
		RMWVariants  []rmwVariant
		CASVariants  []casVariant
	}{narrowLoads, narrowStores, rmwOps, rmwVariants, casVariants}); err != nil {
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
