package anyval

import (
	"fmt"
	"reflect"

	"github.com/samber/mo"
)

// As returns a copy of the T held by v. v must hold a T; violations panic
// unless built with anyval_unchecked, where the result is undefined.
func As[T any](v *Value) T {
	return *AsPtr[T](v)
}

// AsPtr returns a pointer to the T held by v, valid until v is reset,
// reassigned or moved from. Same preconditions as As.
func AsPtr[T any](v *Value) *T {
	if checked {
		if err := holds[T](v); err != nil {
			panic(err)
		}
	}
	return get[T](&v.buf, v.ops.inPlace)
}

// AsOpt returns None for an empty v and Some(As[T](v)) otherwise.
func AsOpt[T any](v *Value) mo.Option[T] {
	if v.ops == nil {
		return mo.None[T]()
	}
	return mo.Some(As[T](v))
}

// TryAs is As with the checks always on and reported as errors.
func TryAs[T any](v *Value) (T, error) {
	if err := holds[T](v); err != nil {
		var zero T
		return zero, err
	}
	return *get[T](&v.buf, v.ops.inPlace), nil
}

func holds[T any](v *Value) error {
	if v.ops == nil {
		return fmt.Errorf("anyval: access as %s: %w", reflect.TypeFor[T](), ErrEmpty)
	}
	want := reflect.TypeFor[T]()
	if v.ops.id != typeID(want) {
		return fmt.Errorf("anyval: access as %s, holds %s: %w", want, v.ops.typ, ErrTypeMismatch)
	}
	return nil
}
