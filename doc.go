// Package jsonbuf provides a streaming JSON writer that serializes
// incrementally into a fixed-capacity, caller-owned byte slice.
//
// The writer is designed for embedded and otherwise allocation-constrained
// targets:
//
//   - No heap allocation, no intermediate document model
//   - Strict bounds checking against the bound slice's capacity
//   - Automatic comma placement and object/array grammar enforcement
//   - Proper JSON string escaping, including \u00xx control escapes
//   - Nested objects and arrays up to MaxDepth levels
//
// # Basic Usage
//
// Bind a writer to a buffer, emit tokens, then finalize:
//
//	var buf [256]byte
//	w := jsonbuf.NewWriter(buf[:])
//
//	w.BeginObject()
//	w.Key("id")
//	w.Uint32(123)
//	w.Key("name")
//	w.String("motor")
//	w.Key("values")
//	w.BeginArray()
//	w.Float64(1.0)
//	w.Float64(2.5)
//	w.EndArray()
//	w.EndObject()
//
//	out, err := w.Finalize()
//	if err != nil {
//		// handle unclosed containers or a prior write failure
//	}
//	// out holds the JSON bytes; there is no trailing terminator.
//
// # Error Handling
//
// Every mutating operation returns an error. The first failure (capacity
// exhausted, structural violation, formatting failure) puts the writer
// into a sticky error state: all subsequent mutating calls are no-ops
// that report the same failure, and Finalize refuses to produce output.
// Callers that do not check every return value can therefore still rely
// on Finalize to reject a broken document. Reset is the only recovery.
//
// # Concurrency
//
// A Writer is owned by exactly one goroutine at a time. It holds no
// resources beyond the borrowed slice and performs no locking; callers
// that share a writer must provide their own exclusion.
package jsonbuf
