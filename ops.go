package anyval

import (
	"reflect"
	"sync"

	"github.com/rawbytedev/anyval/internal/common"
)

// ops is the per-type operations record shared by every Value holding that
// type. Records are built once and never mutated afterwards.
type ops struct {
	id      uint64
	typ     reflect.Type
	inPlace bool
	meta    bool

	copy      func(dst, src *buffer)
	move      func(dst, src *buffer)
	destroy   func(b *buffer)
	serialize func(dst []byte, b *buffer) []byte
	iface     func(b *buffer) any
}

type opsKey struct {
	typ  reflect.Type
	meta bool
}

type registry struct {
	mu   sync.RWMutex
	ops  map[opsKey]*ops
	ids  map[reflect.Type]uint64
	next uint64
}

var types = &registry{
	ops: make(map[opsKey]*ops),
	ids: make(map[reflect.Type]uint64),
}

// lookup returns the record for T, building it on first use.
func lookup[T any](meta bool) *ops {
	r := types
	key := opsKey{typ: reflect.TypeFor[T](), meta: meta}

	r.mu.RLock()
	if o, ok := r.ops[key]; ok {
		r.mu.RUnlock()
		return o
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check
	if o, ok := r.ops[key]; ok {
		return o
	}
	o := newOps[T](r.idLocked(key.typ), key.typ, meta)
	r.ops[key] = o
	return o
}

// typeID returns the sequence number assigned to t. Meta and plain records
// of one type share it.
func typeID(t reflect.Type) uint64 {
	r := types
	r.mu.RLock()
	if id, ok := r.ids[t]; ok {
		r.mu.RUnlock()
		return id
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.idLocked(t)
}

func (r *registry) idLocked(t reflect.Type) uint64 {
	if id, ok := r.ids[t]; ok {
		return id
	}
	id := r.next
	r.next++
	r.ids[t] = id
	return id
}

func newOps[T any](id uint64, typ reflect.Type, meta bool) *ops {
	inPlace := common.IsInPlace(typ)
	o := &ops{
		id:      id,
		typ:     typ,
		inPlace: inPlace,
		meta:    meta,
	}
	if inPlace {
		o.copy = copyInPlace
		o.move = moveInPlace
		o.destroy = destroyInPlace
	} else {
		o.copy = copyOutOfLine[T]
		o.move = moveOutOfLine
		o.destroy = destroyOutOfLine
	}
	o.serialize = func(dst []byte, b *buffer) []byte {
		return appendElement(dst, get[T](b, inPlace))
	}
	o.iface = func(b *buffer) any {
		return clone(get[T](b, inPlace))
	}
	return o
}
