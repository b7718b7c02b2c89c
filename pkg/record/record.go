// Package record is an insertion-ordered map of string keys to anyval
// Values, with a compact JSON-like rendering.
package record

import (
	"fmt"
	"io"
	"iter"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/anyval"
)

type entry struct {
	key string
	val anyval.Value
}

// Record maps keys to Values and remembers insertion order. A Record owns
// its Values: inserting copies, Clone copies deeply.
type Record struct {
	entries []entry
	index   map[string]int
}

// New returns an empty Record.
func New() *Record {
	return &Record{index: make(map[string]int)}
}

func (r *Record) lazyInit() {
	if r.index == nil {
		r.index = make(map[string]int)
	}
}

// Len returns the number of entries.
func (r *Record) Len() int {
	return len(r.entries)
}

// Emplace inserts a copy of v under key unless key is already present. It
// reports whether the insert happened.
func (r *Record) Emplace(key string, v anyval.Value) bool {
	r.lazyInit()
	if _, ok := r.index[key]; ok {
		return false
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, entry{key: key})
	r.entries[len(r.entries)-1].val.CopyFrom(&v)
	return true
}

// Put is Emplace for a bare element.
func Put[T any](r *Record, key string, x T) bool {
	return r.Emplace(key, anyval.Of(x))
}

// Set stores a copy of v under key, replacing any previous Value.
func (r *Record) Set(key string, v anyval.Value) {
	r.At(key).CopyFrom(&v)
}

// Get returns the Value stored under key.
func (r *Record) Get(key string) (*anyval.Value, bool) {
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return &r.entries[i].val, true
}

// At returns the Value stored under key, inserting an empty one first if
// key is missing. The pointer is valid until the next insert or delete.
func (r *Record) At(key string) *anyval.Value {
	r.lazyInit()
	i, ok := r.index[key]
	if !ok {
		i = len(r.entries)
		r.index[key] = i
		r.entries = append(r.entries, entry{key: key})
	}
	return &r.entries[i].val
}

// Delete removes key and reports whether it was present.
func (r *Record) Delete(key string) bool {
	i, ok := r.index[key]
	if !ok {
		return false
	}
	r.entries[i].val.Reset()
	copy(r.entries[i:], r.entries[i+1:])
	r.entries[len(r.entries)-1] = entry{}
	r.entries = r.entries[:len(r.entries)-1]
	delete(r.index, key)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].key] = j
	}
	return true
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.entries))
	for i := range r.entries {
		keys[i] = r.entries[i].key
	}
	return keys
}

// All iterates entries in insertion order.
func (r *Record) All() iter.Seq2[string, *anyval.Value] {
	return func(yield func(string, *anyval.Value) bool) {
		for i := range r.entries {
			if !yield(r.entries[i].key, &r.entries[i].val) {
				return
			}
		}
	}
}

// Clone returns a deep copy of r.
func (r *Record) Clone() Record {
	out := Record{
		entries: make([]entry, len(r.entries)),
		index:   make(map[string]int, len(r.entries)),
	}
	for i := range r.entries {
		out.entries[i].key = r.entries[i].key
		out.entries[i].val = r.entries[i].val.Clone()
		out.index[r.entries[i].key] = i
	}
	return out
}

// Reset destroys every Value and empties r.
func (r *Record) Reset() {
	for i := range r.entries {
		r.entries[i].val.Reset()
	}
	clear(r.entries)
	r.entries = r.entries[:0]
	clear(r.index)
}

// AppendJSON appends {"k1":v1,"k2":v2} with no whitespace and no escaping.
func (r *Record) AppendJSON(dst []byte) []byte {
	dst = append(dst, '{')
	for i := range r.entries {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '"')
		dst = append(dst, r.entries[i].key...)
		dst = append(dst, '"', ':')
		dst = r.entries[i].val.AppendJSON(dst)
	}
	return append(dst, '}')
}

// String returns the rendering of r.
func (r *Record) String() string {
	return string(r.AppendJSON(nil))
}

// Serialize writes the rendering of r followed by a newline.
func Serialize(w io.Writer, r *Record) error {
	buf := r.AppendJSON(make([]byte, 0, 64))
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("record: serialize: %w", err)
	}
	return nil
}

// MarshalYAML renders r as a YAML mapping in insertion order. Meta values
// come out as their integer tag. The receiver is a value so that records
// boxed by Value.Interface are picked up by the encoder.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := range r.entries {
		var key, val yaml.Node
		key.SetString(r.entries[i].key)
		if err := val.Encode(r.entries[i].val.Interface()); err != nil {
			return nil, fmt.Errorf("record: yaml %q: %w", r.entries[i].key, err)
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}
