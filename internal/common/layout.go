package common

import (
	"reflect"
	"unsafe"
)

// WordSize and WordAlign describe the inline slot of a value: one machine
// pointer wide and pointer aligned.
const (
	WordSize  = unsafe.Sizeof(uintptr(0))
	WordAlign = unsafe.Alignof(uintptr(0))
)

// IsFixedKind reports whether k is a fixed-size primitive kind.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// IsPointerFree reports whether values of t carry no pointers, so that a
// bitwise copy is a complete copy and the bits may live in a uintptr.
func IsPointerFree(t reflect.Type) bool {
	if IsFixedKind(t.Kind()) {
		return true
	}
	switch t.Kind() {
	case reflect.Array:
		return t.Len() == 0 || IsPointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !IsPointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsInPlace reports whether t is stored directly in the inline word rather
// than behind an owned heap cell.
func IsInPlace(t reflect.Type) bool {
	return IsPointerFree(t) && t.Size() <= WordSize && t.Align() <= int(WordAlign)
}
