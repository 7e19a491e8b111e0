package jsonbuf

import "testing"

// BenchmarkWriterObject measures a representative telemetry document.
// The writer's contract is zero allocations; allocs/op is the number
// that matters here.
func BenchmarkWriterObject(b *testing.B) {
	buf := make([]byte, 512)
	w := NewWriter(buf)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		w.Reset(buf)
		w.BeginObject()
		w.Key("id")
		w.Uint32(uint32(i))
		w.Key("name")
		w.String("sensor-42")
		w.Key("ok")
		w.Bool(true)
		w.Key("values")
		w.BeginArray()
		w.Float64(1.25)
		w.Float64(2.5)
		w.Float64(3.75)
		w.EndArray()
		w.EndObject()
		if _, err := w.Finalize(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWriterEscapedString(b *testing.B) {
	buf := make([]byte, 256)
	w := NewWriter(buf)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		w.Reset(buf)
		w.String("said \"hi\"\tpath C:\\tmp\nend")
		if _, err := w.Finalize(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWriterIntegers(b *testing.B) {
	buf := make([]byte, 512)
	w := NewWriter(buf)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		w.Reset(buf)
		w.BeginArray()
		for j := int64(1); j < 1_000_000_000_000; j *= 1000 {
			w.Int64(-j)
			w.Uint64(uint64(j))
		}
		w.EndArray()
		if _, err := w.Finalize(); err != nil {
			b.Fatal(err)
		}
	}
}
