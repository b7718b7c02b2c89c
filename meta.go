package anyval

import (
	"fmt"
	"unsafe"

	"github.com/rawbytedev/anyval/internal/common"
)

// Meta is a small bookkeeping tag a Value can carry instead of an element.
// Meta values are neither empty nor occupied and are not meant to be
// serialized.
type Meta uint8

// Meta must fit the inline word.
var (
	_ [common.WordSize - unsafe.Sizeof(Meta(0))]struct{}
	_ [common.WordAlign - unsafe.Alignof(Meta(0))]struct{}
)

// SetMeta destroys any element and stores m.
func (v *Value) SetMeta(m Meta) {
	v.Reset()
	v.ops = lookup[Meta](true)
	construct(&v.buf, true, m)
}

// GetMeta returns the stored tag. v must be a meta value.
func (v *Value) GetMeta() Meta {
	if checked && !v.IsMeta() {
		panic(fmt.Errorf("anyval: get meta: %w", ErrNotMeta))
	}
	return *get[Meta](&v.buf, true)
}

// IsMeta reports whether v holds a Meta tag.
func (v *Value) IsMeta() bool {
	return v.ops != nil && v.ops.meta
}
