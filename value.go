// Package anyval provides Value, a container that holds one element of any
// type chosen at construction, and a JSON-like serializer for it.
//
// Small pointer-free elements (at most one machine word) are stored inside
// the Value itself; everything else lives in a heap cell the Value owns.
// Element-specific work goes through a per-type operations record that all
// Values of that type share.
//
// Assigning a Value with = copies its bits and aliases any heap cell. Use
// Clone, Move, CopyFrom and MoveFrom wherever value semantics matter.
package anyval

import (
	"reflect"

	"github.com/samber/mo"
)

// Value is empty, holds an element, or holds a Meta tag. The zero Value is
// empty.
type Value struct {
	buf buffer
	ops *ops
}

// Empty returns a Value holding nothing.
func Empty() Value {
	return Value{}
}

// Of returns a Value holding x.
func Of[T any](x T) Value {
	var v Value
	v.ops = lookup[T](false)
	construct(&v.buf, v.ops.inPlace, x)
	return v
}

// FromOption returns a Value holding the option's element, or an empty
// Value when the option is absent.
func FromOption[T any](o mo.Option[T]) Value {
	if x, ok := o.Get(); ok {
		return Of(x)
	}
	return Value{}
}

// FromPtr is FromOption for nil-able pointers.
func FromPtr[T any](p *T) Value {
	if p == nil {
		return Value{}
	}
	return Of(*p)
}

// Assign replaces whatever v holds with x.
func Assign[T any](v *Value, x T) {
	tmp := Of(x)
	v.MoveFrom(&tmp)
}

// Clone returns an independent copy of v.
func (v *Value) Clone() Value {
	if v.ops == nil {
		return Value{}
	}
	out := Value{ops: v.ops}
	v.ops.copy(&out.buf, &v.buf)
	return out
}

// Move returns a Value that takes over v's element and leaves v empty.
func (v *Value) Move() Value {
	var out Value
	out.MoveFrom(v)
	return out
}

// CopyFrom makes v an independent copy of src. The copy is built before v
// is touched.
func (v *Value) CopyFrom(src *Value) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.MoveFrom(&tmp)
}

// MoveFrom releases v's element, takes over src's and leaves src empty.
func (v *Value) MoveFrom(src *Value) {
	if v == src {
		return
	}
	v.Reset()
	if src.ops == nil {
		return
	}
	v.ops = src.ops
	src.ops.move(&v.buf, &src.buf)
	src.ops = nil
}

// Reset destroys the element, if any, and leaves v empty.
func (v *Value) Reset() {
	if v.ops == nil {
		return
	}
	v.ops.destroy(&v.buf)
	v.ops = nil
}

// HasValue reports whether v holds an element. Meta values do not count.
func (v *Value) HasValue() bool {
	return v.ops != nil && !v.ops.meta
}

// Type returns the type of the held element or tag, or nil when v is empty.
func (v *Value) Type() reflect.Type {
	if v.ops == nil {
		return nil
	}
	return v.ops.typ
}

// SameType reports whether a and b share one operations record: same state
// kind and same element type.
func SameType(a, b *Value) bool {
	return a.ops == b.ops
}

// Interface returns a copy of the held element boxed as any, or nil.
func (v *Value) Interface() any {
	if v.ops == nil {
		return nil
	}
	return v.ops.iface(&v.buf)
}
