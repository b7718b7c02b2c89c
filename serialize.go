package anyval

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
)

// Appender is implemented by element types that render themselves.
type Appender interface {
	AppendJSON(dst []byte) []byte
}

var nullLiteral = []byte("null")

// AppendJSON appends the rendering of v to dst: null when empty, otherwise
// whatever the element's type renders. Strings are quoted but not escaped.
func (v *Value) AppendJSON(dst []byte) []byte {
	if v.ops == nil {
		return append(dst, nullLiteral...)
	}
	return v.ops.serialize(dst, &v.buf)
}

// String returns the rendering of v.
func (v *Value) String() string {
	return string(v.AppendJSON(nil))
}

// Serialize writes the rendering of v followed by a newline.
func Serialize(w io.Writer, v *Value) error {
	buf := v.AppendJSON(make([]byte, 0, 32))
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("anyval: serialize: %w", err)
	}
	return nil
}

func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	dst = append(dst, s...)
	return append(dst, '"')
}

// appendElement renders one element. Nil references render null. Then
// self-rendering types win, then the common scalars, then any type with a
// String method, and finally the underlying kind of named scalars. Anything
// left uses fmt's default form.
func appendElement[T any](dst []byte, x *T) []byte {
	rv := reflect.ValueOf(x).Elem()
	if isNil(rv) {
		return append(dst, nullLiteral...)
	}
	if a, ok := any(x).(Appender); ok {
		return a.AppendJSON(dst)
	}
	switch e := any(*x).(type) {
	case Appender:
		return e.AppendJSON(dst)
	case string:
		return appendQuoted(dst, e)
	case bool:
		return strconv.AppendBool(dst, e)
	case int:
		return strconv.AppendInt(dst, int64(e), 10)
	case int64:
		return strconv.AppendInt(dst, e, 10)
	case float64:
		return strconv.AppendFloat(dst, e, 'g', -1, 64)
	case fmt.Stringer:
		return append(dst, e.String()...)
	}

	switch rv.Kind() {
	case reflect.String:
		return appendQuoted(dst, rv.String())
	case reflect.Bool:
		return strconv.AppendBool(dst, rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(dst, rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.AppendUint(dst, rv.Uint(), 10)
	case reflect.Float32:
		return strconv.AppendFloat(dst, rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.AppendFloat(dst, rv.Float(), 'g', -1, 64)
	}
	return fmt.Append(dst, *x)
}

// isNil reports whether rv is a nil reference, looking through interfaces.
func isNil(rv reflect.Value) bool {
	for rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
