package anyval

import (
	"reflect"
	"unsafe"
)

// buffer is the inline slot of a Value. In-place elements live in word;
// out-of-line elements live in a heap cell owned through cell. The two
// are kept apart because the collector must never see scalar bits in a
// pointer field.
type buffer struct {
	word uintptr
	cell unsafe.Pointer
}

// Cloner is implemented by element types whose copy must be deeper than Go
// assignment, such as containers of Values.
type Cloner[T any] interface {
	Clone() T
}

// clone returns a copy of x that shares no Value storage with it. Slices,
// arrays, maps and interfaces that may hold Values or Cloners are rebuilt
// element by element; everything else is copied by assignment.
func clone[T any](x *T) T {
	if c, ok := any(x).(Cloner[T]); ok {
		return c.Clone()
	}
	t := reflect.TypeFor[T]()
	if !mayHoldCloners(t, nil) {
		return *x
	}
	out := reflect.New(t)
	out.Elem().Set(cloneValue(reflect.ValueOf(x).Elem()))
	return *out.Interface().(*T)
}

// isCloner reports whether *t has a method Clone() t.
func isCloner(t reflect.Type) bool {
	m, ok := reflect.PointerTo(t).MethodByName("Clone")
	return ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1 && m.Type.Out(0) == t
}

func mayHoldCloners(t reflect.Type, seen map[reflect.Type]bool) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Slice, reflect.Array, reflect.Map:
		if seen[t] {
			return false
		}
		if seen == nil {
			seen = make(map[reflect.Type]bool)
		}
		seen[t] = true
		e := t.Elem()
		return isCloner(e) || mayHoldCloners(e, seen)
	default:
		return false
	}
}

// cloneValue returns a copy of v of the same type.
func cloneValue(v reflect.Value) reflect.Value {
	t := v.Type()
	if t.Kind() != reflect.Interface && isCloner(t) {
		p := reflect.New(t)
		p.Elem().Set(v)
		return p.MethodByName("Clone").Call(nil)[0]
	}
	switch v.Kind() {
	case reflect.Interface:
		out := reflect.New(t).Elem()
		if !v.IsNil() {
			out.Set(cloneValue(v.Elem()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(t, v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(cloneValue(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(t).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(cloneValue(v.Index(i)))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(t, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneValue(iter.Value()))
		}
		return out
	default:
		return v
	}
}

// get returns the element held in b. The caller guarantees b holds a T laid
// out as inPlace says.
func get[T any](b *buffer, inPlace bool) *T {
	if inPlace {
		return (*T)(unsafe.Pointer(&b.word))
	}
	return (*T)(b.cell)
}

// construct places x into b, which must hold no live element. Out-of-line
// elements are cloned inside their new cell so the Value never aliases the
// caller's copy.
func construct[T any](b *buffer, inPlace bool, x T) {
	if inPlace {
		*(*T)(unsafe.Pointer(&b.word)) = x
		return
	}
	cell := new(T)
	*cell = x
	*cell = clone(cell)
	b.cell = unsafe.Pointer(cell)
}

func copyInPlace(dst, src *buffer) {
	dst.word = src.word
}

func moveInPlace(dst, src *buffer) {
	dst.word = src.word
	src.word = 0
}

func destroyInPlace(b *buffer) {
	b.word = 0
}

func copyOutOfLine[T any](dst, src *buffer) {
	cell := new(T)
	*cell = clone((*T)(src.cell))
	dst.cell = unsafe.Pointer(cell)
}

// moveOutOfLine hands the cell over; nothing is allocated or copied.
func moveOutOfLine(dst, src *buffer) {
	dst.cell = src.cell
	src.cell = nil
}

// destroyOutOfLine drops the only reference to the cell; the collector
// frees it.
func destroyOutOfLine(b *buffer) {
	b.cell = nil
}
