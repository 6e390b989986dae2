package ckabi

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams/internal/ckutil"
)

// Enum is a registry of the names of a family of PKCS#11 constants, like the
// CKM_ mechanism codes.
type Enum struct {
	prefix       string
	valuesToName map[uint32]string
	nameToValue  map[string]uint32
}

// NewEnum returns an empty Enum.  prefix is the common prefix of the constant
// names, like "CKM_".  Names may be parsed with or without it.
func NewEnum(prefix string) Enum {
	return Enum{
		prefix:       prefix,
		valuesToName: map[uint32]string{},
		nameToValue:  map[string]uint32{},
	}
}

// RegisterValue adds a name for a value.  When a value is registered under more
// than one name, the first name is used when formatting, and all of them are
// accepted when parsing.
func (e *Enum) RegisterValue(v uint32, name string) {
	if _, ok := e.valuesToName[v]; !ok {
		e.valuesToName[v] = name
	}
	e.nameToValue[strings.ToUpper(name)] = v
}

func (e *Enum) Prefix() string {
	return e.prefix
}

func (e *Enum) Name(v uint32) (string, bool) {
	name, ok := e.valuesToName[v]
	return name, ok
}

func (e *Enum) Value(name string) (uint32, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if v, ok := e.nameToValue[name]; ok {
		return v, true
	}
	v, ok := e.nameToValue[e.prefix+name]
	return v, ok
}

// Values returns the registered values in ascending order.
func (e *Enum) Values() []uint32 {
	values := make([]uint32, 0, len(e.valuesToName))
	for v := range e.valuesToName {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}

// Format returns the name of the value, or its value in hex if the value
// is not registered.
func (e *Enum) Format(v uint32) string {
	if name, ok := e.valuesToName[v]; ok {
		return name
	}
	return fmt.Sprintf("%#08x", v)
}

// Parse accepts a registered name, a decimal number, or a hex number prefixed with
// "0x".
func (e *Enum) Parse(s string) (uint32, error) {
	if v, ok := e.Value(s); ok {
		return v, nil
	}
	v, err := ckutil.ParseUint32(s)
	if err != nil {
		return 0, merry.Prependf(err, "must be a number, hex string, or %s value name", e.prefix)
	}
	return v, nil
}

var enumRegistry = sync.Map{}

// RegisterEnum makes an Enum available by name to LookupEnum.
func RegisterEnum(name string, e *Enum) {
	enumRegistry.Store(name, e)
}

func LookupEnum(name string) (*Enum, bool) {
	v, ok := enumRegistry.Load(name)
	if !ok {
		return nil, false
	}
	return v.(*Enum), true
}

// EnumNames returns the names of all registered enums, sorted.
func EnumNames() []string {
	var names []string
	enumRegistry.Range(func(key, _ interface{}) bool {
		names = append(names, key.(string))
		return true
	})
	sort.Strings(names)
	return names
}
