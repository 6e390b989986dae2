package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams/internal/ckutil"
)

// Specifications is the struct which the specifications JSON is unmarshaled into.
type Specifications struct {
	// Enums is a collection of constant families, like the CKM_ mechanism
	// codes, describing the name of the family and each of its values.
	Enums   []EnumDef `json:"enums"`
	Package string    `json:"-"`
}

// EnumDef describes a family of PKCS#11 constants.
type EnumDef struct {
	// Name of the family, with spaces, e.g. "Mechanism Type".  The go type
	// name is derived from it.
	Name string `json:"name"`
	// Comment describing the family.  Generator will add this to
	// the golang source code comment on the type generated for it.
	Comment string `json:"comment"`
	// Prefix shared by the constant names, e.g. "CKM_".  It is stripped
	// from the go constant names.
	Prefix string `json:"prefix"`
	// Values is a map of PKCS#11 constant names to values.
	// The values may either be JSON numbers, or a JSON string
	// containing a hex encoded number, e.g. "0x00001050"
	Values map[string]interface{} `json:"values"`
}

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(flag.CommandLine.Output(), "Usage of ckgen:")
		_, _ = fmt.Fprintln(flag.CommandLine.Output(), "")
		_, _ = fmt.Fprintln(flag.CommandLine.Output(), "Generates go code which defines PKCS#11 constants and registers their names with ckabi.")
		_, _ = fmt.Fprintln(flag.CommandLine.Output(), "Specifications are defined in a JSON file.")
		_, _ = fmt.Fprintln(flag.CommandLine.Output(), "")
		flag.PrintDefaults()
	}

	var specs Specifications

	var inputFilename string
	var outputFilename string
	var usage bool

	flag.StringVar(&inputFilename, "i", "", "Input `filename` of specifications.  Required.")
	flag.StringVar(&outputFilename, "o", "", "Output `filename`.  Defaults to standard out.")
	flag.StringVar(&specs.Package, "p", "ck", "Go `package` name in generated code.")
	flag.BoolVar(&usage, "h", false, "Show this usage message.")
	flag.Parse()

	if usage {
		flag.Usage()
		os.Exit(0)
	}

	if inputFilename == "" {
		fmt.Println("input file name cannot be empty")
		flag.Usage()
		os.Exit(1)
	}

	inputFile, err := os.Open(inputFilename)
	if err != nil {
		fmt.Println("error opening input file: ", err.Error())
		os.Exit(1)
	}
	defer inputFile.Close()

	err = json.NewDecoder(bufio.NewReader(inputFile)).Decode(&specs)
	if err != nil {
		fmt.Println("error reading input file: ", err.Error())
		os.Exit(1)
	}

	src, err := genCode(&specs)
	if err != nil {
		fmt.Println("error generating code: ", err.Error())
		os.Exit(1)
	}

	outputWriter := os.Stdout

	if outputFilename != "" {
		p, err := filepath.Abs(outputFilename)
		if err != nil {
			panic(err)
		}

		fmt.Println("writing to", p)

		f, err := os.Create(p)
		if err != nil {
			panic(err)
		}

		outputWriter = f

		defer func() {
			err := f.Sync()
			if err != nil {
				fmt.Println("error syncing file: ", err.Error())
			}
			err = f.Close()
			if err != nil {
				fmt.Println("error closing file: ", err.Error())
			}
		}()
	}

	_, err = outputWriter.WriteString(src)
	if err != nil {
		fmt.Println("error writing to output file", err.Error())
		os.Exit(1)
	}
}

type constVal struct {
	FullName string
	Name     string
	Value    uint32
}

type enumVal struct {
	Name     string
	Comment  string
	Prefix   string
	Var      string
	TypeName string
	Vals     []constVal
}

type inputs struct {
	Package      string
	Imports      []string
	CKABIPackage string
	Enums        []enumVal
}

func parseUint32(v interface{}) (uint32, error) {
	switch n := v.(type) {
	case string:
		return ckutil.ParseUint32(n)
	case float64:
		if n < 0 || n > 0xFFFFFFFF || n != float64(uint32(n)) {
			return 0, merry.Errorf("value out of range for CK_ULONG constant: %v", n)
		}
		return uint32(n), nil
	default:
		return 0, merry.New("value must be a number, or a hex string, like 0x00001050")
	}
}

func prepareInput(s *Specifications) (*inputs, error) {
	in := inputs{
		Package: s.Package,
	}

	if s.Package != "ckabi" {
		in.Imports = append(in.Imports, "github.com/gemalto/ckparams/ckabi")
		in.CKABIPackage = "ckabi."
	}

	for _, v := range s.Enums {
		if v.Prefix == "" {
			return nil, merry.Errorf("enum %v has no prefix", v.Name)
		}
		ev := enumVal{
			Name:     v.Name,
			Comment:  v.Comment,
			Prefix:   v.Prefix,
			TypeName: ckutil.NormalizeName(v.Name),
		}
		ev.Var = strings.ToLower(string([]rune(ev.TypeName)[:1]))

		seen := map[string]bool{}
		for key, value := range v.Values {
			if !strings.HasPrefix(key, v.Prefix) {
				return nil, merry.Errorf("enum %v: value %v does not have prefix %v", v.Name, key, v.Prefix)
			}
			n := ckutil.ConstName(key, v.Prefix)
			if seen[n] {
				return nil, merry.Errorf("enum %v: duplicate constant name %v", v.Name, n)
			}
			seen[n] = true

			i, err := parseUint32(value)
			if err != nil {
				return nil, merry.Prependf(err, "enum %v: invalid value for %v (%v)", v.Name, key, value)
			}

			ev.Vals = append(ev.Vals, constVal{key, n, i})
		}

		// sort the vals by value order, then name, so output is stable
		sort.Slice(ev.Vals, func(i, j int) bool {
			if ev.Vals[i].Value == ev.Vals[j].Value {
				return ev.Vals[i].Name < ev.Vals[j].Name
			}
			return ev.Vals[i].Value < ev.Vals[j].Value
		})

		in.Enums = append(in.Enums, ev)
	}

	return &in, nil
}

func genCode(s *Specifications) (string, error) {
	buf := bytes.NewBuffer(nil)

	in, err := prepareInput(s)
	if err != nil {
		return "", err
	}

	tmpl := template.New("root")
	tmpl.Funcs(template.FuncMap{
		"ckabiPackage": func() string { return in.CKABIPackage },
		"trimUnderscore": func(s string) string { return strings.TrimSuffix(s, "_") },
	})
	template.Must(tmpl.Parse(global))
	template.Must(tmpl.New("enumeration").Parse(enumerationTmpl))

	err = tmpl.Execute(buf, in)
	if err != nil {
		return "", merry.Prepend(err, "executing template")
	}

	// format returns the gofmt-ed contents of the Generator's buffer.
	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Should never happen, but can arise when developing this code.
		// The user can compile the output to see the error.
		log.Printf("warning: internal error: invalid Go generated: %s", err)
		log.Printf("warning: compile the package to analyze the error")
		return buf.String(), nil
	}

	return string(src), nil
}

const global = `// Code generated by ckgen; DO NOT EDIT.

package {{.Package}}

{{with .Imports}}
import (
{{range .}} "{{.}}"
{{end}})
{{end}}

{{range .Enums}}{{template "enumeration" .}}{{end}}
`

const enumerationTmpl = `{{ $typeName := .TypeName }}// {{.Comment}}
type {{.TypeName}} uint32

const ({{range .Vals}}
	{{$typeName}}{{.Name}} {{$typeName}} = {{.Value | printf "0x%08x"}}{{end}}
)

var {{.TypeName}}Enum = {{ckabiPackage}}NewEnum("{{.Prefix}}")

func init() {
	m := map[{{.TypeName}}]string{
{{range .Vals}}		{{$typeName}}{{.Name}}: "{{.FullName}}",
{{end}}	}

	for v, name := range m {
		{{.TypeName}}Enum.RegisterValue(uint32(v), name)
	}
	{{ckabiPackage}}RegisterEnum("{{.Name}}", &{{.TypeName}}Enum)
}

func ({{.Var}} {{.TypeName}}) MarshalText() (text []byte, err error) {
	return []byte({{.Var}}.String()), nil
}

func ({{.Var}} *{{.TypeName}}) UnmarshalText(text []byte) error {
	v, err := {{.TypeName}}Enum.Parse(string(text))
	if err != nil {
		return err
	}
	*{{.Var}} = {{.TypeName}}(v)
	return nil
}

func ({{.Var}} {{.TypeName}}) String() string {
	return {{.TypeName}}Enum.Format(uint32({{.Var}}))
}

// Parse{{.TypeName}} parses a {{trimUnderscore .Prefix}} name, with or without the {{.Prefix}} prefix, or a decimal or hex value.
func Parse{{.TypeName}}(s string) ({{.TypeName}}, error) {
	v, err := {{.TypeName}}Enum.Parse(s)
	return {{.TypeName}}(v), err
}

`
