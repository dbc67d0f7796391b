package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks an argument that is explicitly absent. It renders as
// "undefined", which keeps it distinguishable from nil ("null").
var Undefined fmt.Stringer = undefined{}

// JoinArgs renders every argument with FormatArg and joins them with a
// single space. Zero arguments join to the empty string.
func JoinArgs(args []any) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		return FormatArg(args[0])
	}

	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatArg(arg))
	}
	return sb.String()
}

// FormatArg returns the textual form of a single log argument.
//
// Strings pass through unchanged, scalars use their default representation,
// and composite values (maps, slices, arrays, structs, pointers) are encoded
// as JSON. When encoding fails, for example on a cyclic structure, the
// value's String method is used if it has one, otherwise a type placeholder.
func FormatArg(arg any) string {
	switch v := arg.(type) {
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	case error:
		if isNilPointer(v) {
			return "null"
		}
		return v.Error()
	case fmt.Stringer:
		if isComposite(reflect.TypeOf(v).Kind()) {
			break
		}
		return v.String()
	}

	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return "null"
		}
		if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
			return "function " + fn.Name()
		}
		return "function"
	case reflect.Chan, reflect.UnsafePointer:
		return "[" + rv.Type().String() + "]"
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float(), rv.Type().Bits())
	case reflect.String:
		return rv.String()
	}

	if isComposite(rv.Kind()) {
		if s, err := marshal(arg); err == nil {
			return s
		}
		if s, ok := arg.(fmt.Stringer); ok {
			return s.String()
		}
		return "[object " + rv.Type().String() + "]"
	}
	return fmt.Sprint(arg)
}

// isNilPointer reports whether v holds a typed nil pointer, whose methods
// may dereference it.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func isComposite(k reflect.Kind) bool {
	switch k {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer, reflect.Interface:
		return true
	}
	return false
}

// marshal encodes v as compact JSON without HTML escaping.
func marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
