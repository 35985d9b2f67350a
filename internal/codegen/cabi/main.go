// Command cabi generates the cgo //export wrappers for every scalar and
// atomic combination in the ABI table (§4.2, §4.3), each one a thin
// call-through from a C-compatible signature to the matching
// linmem.Memory method. Mirrors internal/codegen/access and
// internal/codegen/atomic, which generate the Go-side combinatorial
// surface this package wraps.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"
	"text/template"
)

type plainOp struct {
	Result string // I32, I64, F32, F64
	GoType string
}

type narrowWrite struct {
	Result string
	GoType string
	Narrow string
}

type widenRead struct {
	Result string
	GoType string
	Src    string
}

type rmwVariant struct {
	Result string
	GoType string
	Suffix string // "", ToI8, ToI16, ToI32
	CName  string // "", _to_i8, _to_i16, _to_i32
}

var plainReads = []plainOp{
	{"I32", "int32"}, {"I64", "int64"}, {"F32", "float32"}, {"F64", "float64"},
}

var narrowWrites = []narrowWrite{
	{"I32", "int32", "I8"}, {"I32", "int32", "I16"},
	{"I64", "int64", "I8"}, {"I64", "int64", "I16"}, {"I64", "int64", "I32"},
}

var widenReads = []widenRead{
	{"I32", "int32", "I8"}, {"I32", "int32", "U8"}, {"I32", "int32", "I16"}, {"I32", "int32", "U16"},
	{"I64", "int64", "I8"}, {"I64", "int64", "U8"}, {"I64", "int64", "I16"}, {"I64", "int64", "U16"},
	{"I64", "int64", "I32"}, {"I64", "int64", "U32"},
}

var rmwOps = []string{"Add", "Sub", "And", "Or", "Xor", "Exchange"}

var rmwVariants = []rmwVariant{
	{"I32", "int32", "", ""},
	{"I32", "int32", "ToI8", "_to_i8"},
	{"I32", "int32", "ToI16", "_to_i16"},
	{"I64", "int64", "", ""},
	{"I64", "int64", "ToI8", "_to_i8"},
	{"I64", "int64", "ToI16", "_to_i16"},
	{"I64", "int64", "ToI32", "_to_i32"},
}

const tmplSrc = `// Code generated by internal/codegen/cabi. DO NOT EDIT.

package main

import "C"

{{range .PlainReads}}
//export read_{{.Result | lower}}
func read_{{.Result | lower}}(handle uintptr, addr int32) {{.GoType}} {
	m := lookupHandle(handle)
	return m.Read{{.Result}}(addr)
}
{{end}}
{{range .PlainReads}}
//export write_{{.Result | lower}}
func write_{{.Result | lower}}(handle uintptr, addr int32, value {{.GoType}}) {
	m := lookupHandle(handle)
	m.Write{{.Result}}(addr, value)
}
{{end}}
{{range .NarrowWrites}}
//export write_{{.Result | lower}}_to_{{.Narrow | lower}}
func write_{{.Result | lower}}_to_{{.Narrow | lower}}(handle uintptr, addr int32, value {{.GoType}}) {
	m := lookupHandle(handle)
	m.Write{{.Result}}To{{.Narrow}}(addr, value)
}
{{end}}
{{range .WidenReads}}
//export read_{{.Result | lower}}_from_{{.Src | lower}}
func read_{{.Result | lower}}_from_{{.Src | lower}}(handle uintptr, addr int32) {{.GoType}} {
	m := lookupHandle(handle)
	return m.Read{{.Result}}From{{.Src}}(addr)
}
{{end}}
{{range .PlainReads}}{{if or (eq .Result "I32") (eq .Result "I64")}}
//export atomic_read_{{.Result | lower}}
func atomic_read_{{.Result | lower}}(handle uintptr, addr int32) {{.GoType}} {
	m := lookupHandle(handle)
	return m.AtomicRead{{.Result}}(addr)
}

//export atomic_write_{{.Result | lower}}
func atomic_write_{{.Result | lower}}(handle uintptr, addr int32, value {{.GoType}}) {
	m := lookupHandle(handle)
	m.AtomicWrite{{.Result}}(addr, value)
}
{{end}}{{end}}
{{range .WidenReads}}
//export atomic_read_{{.Result | lower}}_from_{{.Src | lower}}
func atomic_read_{{.Result | lower}}_from_{{.Src | lower}}(handle uintptr, addr int32) {{.GoType}} {
	m := lookupHandle(handle)
	return m.AtomicRead{{.Result}}From{{.Src}}(addr)
}
{{end}}
{{range .NarrowWrites}}
//export atomic_write_{{.Result | lower}}_to_{{.Narrow | lower}}
func atomic_write_{{.Result | lower}}_to_{{.Narrow | lower}}(handle uintptr, addr int32, value {{.GoType}}) {
	m := lookupHandle(handle)
	m.AtomicWrite{{.Result}}To{{.Narrow}}(addr, value)
}
{{end}}
{{range .RMWOps}}{{$op := .}}{{range $.RMWVariants}}
//export atomic_rmw_{{$op | lower}}_{{.Result | lower}}{{.CName}}
func atomic_rmw_{{$op | lower}}_{{.Result | lower}}{{.CName}}(handle uintptr, addr int32, value {{.GoType}}) {{.GoType}} {
	m := lookupHandle(handle)
	return m.AtomicRMW{{$op}}{{.Result}}{{.Suffix}}(addr, value)
}
{{end}}{{end}}
{{range .RMWVariants}}
//export atomic_compare_exchange_{{.Result | lower}}{{.CName}}
func atomic_compare_exchange_{{.Result | lower}}{{.CName}}(handle uintptr, addr int32, current {{.GoType}}, newVal {{.GoType}}) {{.GoType}} {
	m := lookupHandle(handle)
	return m.AtomicCompareExchange{{.Result}}{{.Suffix}}(addr, current, newVal)
}
{{end}}
`

func main() {
	out := flag.String("out", "cabi_gen.go", "output file")
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

	tmpl := template.Must(template.New("cabi").Funcs(funcs).Parse(tmplSrc))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		PlainReads   []plainOp
		NarrowWrites []narrowWrite
		WidenReads   []widenRead
		RMWOps       []string
		RMWVariants  []rmwVariant
	}{plainReads, narrowWrites, widenReads, rmwOps, rmwVariants}); err != nil {
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
