package anyval

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

var sink Value

func BenchmarkOfInPlace(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = Of(i)
	}
}

func BenchmarkOfOutOfLine(b *testing.B) {
	p := point{X: 1, Y: 2}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = Of(p)
	}
}

func BenchmarkClone(b *testing.B) {
	v := Of("This is string")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = v.Clone()
	}
}

func BenchmarkMove(b *testing.B) {
	a := Of(point{X: 1})
	var c Value
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.MoveFrom(&a)
		a.MoveFrom(&c)
	}
}

func BenchmarkAppendJSON(b *testing.B) {
	values := []Value{Of(10), Of(12.3), Of("This is string")}
	buf := make([]byte, 0, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = buf[:0]
		for j := range values {
			buf = values[j].AppendJSON(buf)
		}
	}
}

func BenchmarkJSONMarshal(b *testing.B) {
	values := []any{10, 12.3, "This is string"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(values)
	}
}

func BenchmarkYaml(b *testing.B) {
	values := []any{10, 12.3, "This is string"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = yaml.Marshal(values)
	}
}
