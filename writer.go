package jsonbuf

import (
	"math"
	"strconv"
)

// frame tracks the state of one open container.
type frame struct {
	isObject    bool // object vs array
	first       bool // no element or pair written yet
	expectValue bool // a key was written, its value is still pending
}

// Writer serializes JSON incrementally into a fixed-capacity byte slice
// owned by the caller. It allocates nothing: all state is a write cursor,
// a sticky error, and a fixed-size container stack.
//
// The zero value is not usable; construct with NewWriter or bind with
// Reset. A Writer must not be shared between goroutines without external
// synchronization.
type Writer struct {
	buf       []byte
	n         int
	err       error
	depth     int
	floatPrec int
	stack     [MaxDepth]frame
}

// NewWriter returns a writer bound to buf. The slice's length is the
// writer's capacity; the writer never grows, reallocates, or retains it
// beyond the binding.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf, floatPrec: DefaultFloatPrecision}
}

// Reset rebinds the writer to buf and restores pristine state: cursor
// zero, no error, no open containers, default float precision. Safe to
// call regardless of prior error state.
func (w *Writer) Reset(buf []byte) {
	w.buf = buf
	w.n = 0
	w.err = nil
	w.depth = 0
	w.floatPrec = DefaultFloatPrecision
}

// SetFloatPrecision sets the number of decimal digits used for
// subsequently written floats. The value is stored as-is; an excessive
// precision simply runs into the normal capacity failure when a float is
// written.
func (w *Writer) SetFloatPrecision(digits int) {
	w.floatPrec = digits
}

// Ok reports whether no error has occurred since construction or Reset.
func (w *Writer) Ok() bool {
	return w.err == nil
}

// Err returns the first error recorded by the writer, or nil.
func (w *Writer) Err() error {
	return w.err
}

// Size returns the number of bytes written so far.
func (w *Writer) Size() int {
	return w.n
}

// Capacity returns the total capacity of the bound slice.
func (w *Writer) Capacity() int {
	return len(w.buf)
}

// Depth returns the number of currently open containers.
func (w *Writer) Depth() int {
	return w.depth
}

// BeginObject opens a JSON object. Valid at an empty root, as the value
// following Key inside an object, or as the next element of an array.
func (w *Writer) BeginObject() error {
	return w.openContainer("BeginObject", '{', true)
}

// BeginArray opens a JSON array under the same placement rules as
// BeginObject.
func (w *Writer) BeginArray() error {
	return w.openContainer("BeginArray", '[', false)
}

// EndObject closes the innermost container, which must be an object.
func (w *Writer) EndObject() error {
	return w.closeContainer("EndObject", '}', true)
}

// EndArray closes the innermost container, which must be an array.
func (w *Writer) EndArray() error {
	return w.closeContainer("EndArray", ']', false)
}

// Key writes an object key: the escaped, quoted name followed by a
// colon. Valid only while the innermost open container is an object.
func (w *Writer) Key(name string) error {
	if w.err != nil {
		return w.err
	}
	if w.depth == 0 || !w.stack[w.depth-1].isObject {
		return w.fail("Key", ErrNotInObject, "")
	}

	f := &w.stack[w.depth-1]
	if !f.first {
		if err := w.appendByte("Key", ','); err != nil {
			return err
		}
	}
	f.first = false

	if err := appendQuoted(w, "Key", name); err != nil {
		return err
	}
	if err := w.appendByte("Key", ':'); err != nil {
		return err
	}

	f.expectValue = true
	return nil
}

// String writes s as an escaped JSON string value.
func (w *Writer) String(s string) error {
	return writeQuotedValue(w, "String", s)
}

// StringBytes writes b as an escaped JSON string value. The bytes are
// treated as UTF-8 text and need not be terminated.
func (w *Writer) StringBytes(b []byte) error {
	return writeQuotedValue(w, "StringBytes", b)
}

// Bool writes true or false.
func (w *Writer) Bool(v bool) error {
	tok := tokenFalse
	if v {
		tok = tokenTrue
	}
	return w.writeToken("Bool", tok)
}

// Null writes the null literal.
func (w *Writer) Null() error {
	return w.writeToken("Null", tokenNull)
}

// Int32 writes a 32-bit signed integer in decimal form.
func (w *Writer) Int32(v int32) error {
	return w.writeInt("Int32", int64(v))
}

// Uint32 writes a 32-bit unsigned integer in decimal form.
func (w *Writer) Uint32(v uint32) error {
	return w.writeUint("Uint32", uint64(v))
}

// Int64 writes a 64-bit signed integer in decimal form.
func (w *Writer) Int64(v int64) error {
	return w.writeInt("Int64", v)
}

// Uint64 writes a 64-bit unsigned integer in decimal form.
func (w *Writer) Uint64(v uint64) error {
	return w.writeUint("Uint64", v)
}

// Float32 writes a single-precision float in fixed (non-scientific)
// notation with the configured precision.
func (w *Writer) Float32(v float32) error {
	return w.writeFloat("Float32", float64(v))
}

// Float64 writes a double-precision float in fixed (non-scientific)
// notation with the configured precision.
func (w *Writer) Float64(v float64) error {
	return w.writeFloat("Float64", v)
}

// Raw copies fragment verbatim with the same comma placement as any
// value. No escaping or syntax validation is performed: the caller
// guarantees the fragment is valid JSON.
func (w *Writer) Raw(fragment []byte) error {
	if w.err != nil {
		return w.err
	}
	if err := w.beforeValue("Raw"); err != nil {
		return err
	}
	if w.n+len(fragment) > len(w.buf) {
		return w.fail("Raw", ErrBufferFull, "")
	}
	w.n += copy(w.buf[w.n:], fragment)
	w.markValueWritten()
	return nil
}

// Finalize returns the written bytes. It succeeds only when no error has
// occurred and every opened container has been closed. The returned
// slice aliases the bound buffer and carries no trailing terminator;
// consumers must use its length rather than scan for one.
//
// Finalize performs no mutation and may be called repeatedly with
// identical results. It does not seal the writer: further operations
// remain callable and would mutate the region again.
func (w *Writer) Finalize() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.depth != 0 {
		return nil, &WriteError{Op: "Finalize", Offset: w.n, Err: ErrUnclosedContainer}
	}
	return w.buf[:w.n], nil
}

// openContainer writes the opening delimiter and pushes a frame.
func (w *Writer) openContainer(op string, open byte, isObject bool) error {
	if w.err != nil {
		return w.err
	}
	if err := w.beforeValue(op); err != nil {
		return err
	}
	if err := w.appendByte(op, open); err != nil {
		return err
	}

	// The delimiter is already in the buffer and counted when this check
	// fires. The sticky error keeps it from ever reaching a finalized
	// document.
	if w.depth >= MaxDepth {
		return w.fail(op, ErrDepthLimit, "")
	}

	w.stack[w.depth] = frame{isObject: isObject, first: true}
	w.depth++
	return nil
}

// closeContainer writes the closing delimiter and pops the frame.
func (w *Writer) closeContainer(op string, closer byte, isObject bool) error {
	if w.err != nil {
		return w.err
	}
	if w.depth == 0 {
		return w.fail(op, ErrNoOpenContainer, "")
	}
	if w.stack[w.depth-1].isObject != isObject {
		return w.fail(op, ErrContainerMismatch, "")
	}
	if err := w.appendByte(op, closer); err != nil {
		return err
	}

	w.depth--

	// The closed container served as the pending value of the enclosing
	// object, if any.
	if w.depth > 0 {
		w.stack[w.depth-1].expectValue = false
	}
	return nil
}

// beforeValue resolves comma placement for the next value-position token.
// At root it instead enforces the single-root-value rule.
func (w *Writer) beforeValue(op string) error {
	if w.depth == 0 {
		if w.n != 0 {
			return w.fail(op, ErrRootComplete, "")
		}
		return nil
	}

	f := &w.stack[w.depth-1]
	if f.isObject && f.expectValue {
		// The comma for this pair was emitted with its key.
		return nil
	}
	if !f.first {
		if err := w.appendByte(op, ','); err != nil {
			return err
		}
	}
	f.first = false
	return nil
}

// markValueWritten resolves the enclosing object's pending key/value
// pairing after a value has been emitted.
func (w *Writer) markValueWritten() {
	if w.depth > 0 && w.stack[w.depth-1].isObject {
		w.stack[w.depth-1].expectValue = false
	}
}

func writeQuotedValue[T ~string | ~[]byte](w *Writer, op string, s T) error {
	if w.err != nil {
		return w.err
	}
	if err := w.beforeValue(op); err != nil {
		return err
	}
	if err := appendQuoted(w, op, s); err != nil {
		return err
	}
	w.markValueWritten()
	return nil
}

func (w *Writer) writeToken(op, tok string) error {
	if w.err != nil {
		return w.err
	}
	if err := w.beforeValue(op); err != nil {
		return err
	}
	if w.n+len(tok) > len(w.buf) {
		return w.fail(op, ErrBufferFull, "")
	}
	w.n += copy(w.buf[w.n:], tok)
	w.markValueWritten()
	return nil
}

func (w *Writer) writeInt(op string, v int64) error {
	if w.err != nil {
		return w.err
	}
	if err := w.beforeValue(op); err != nil {
		return err
	}
	var scratch [intScratchSize]byte
	if err := appendRun(w, op, strconv.AppendInt(scratch[:0], v, 10)); err != nil {
		return err
	}
	w.markValueWritten()
	return nil
}

func (w *Writer) writeUint(op string, v uint64) error {
	if w.err != nil {
		return w.err
	}
	if err := w.beforeValue(op); err != nil {
		return err
	}
	var scratch [intScratchSize]byte
	if err := appendRun(w, op, strconv.AppendUint(scratch[:0], v, 10)); err != nil {
		return err
	}
	w.markValueWritten()
	return nil
}

// writeFloat renders v in fixed notation with floatPrec digits, directly
// into the remaining region. The precision is unclamped, so the render is
// bounds-checked against remaining capacity instead of a scratch buffer:
// strconv only spills to a fresh allocation when the region is too small,
// in which case nothing has been written and the capacity failure fires.
func (w *Writer) writeFloat(op string, v float64) error {
	if w.err != nil {
		return w.err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return w.fail(op, ErrNonFiniteNumber, strconv.FormatFloat(v, 'g', -1, 64))
	}
	if err := w.beforeValue(op); err != nil {
		return err
	}

	rem := w.buf[w.n:w.n:len(w.buf)]
	out := strconv.AppendFloat(rem, v, 'f', w.floatPrec, 64)
	if len(out) > len(w.buf)-w.n {
		return w.fail(op, ErrBufferFull, "")
	}
	w.n += len(out)
	w.markValueWritten()
	return nil
}

// appendByte writes a single byte with a capacity check.
func (w *Writer) appendByte(op string, c byte) error {
	if w.n >= len(w.buf) {
		return w.fail(op, ErrBufferFull, "")
	}
	w.buf[w.n] = c
	w.n++
	return nil
}

// fail records the first error and returns the sticky one.
func (w *Writer) fail(op string, sentinel error, msg string) error {
	if w.err == nil {
		w.err = &WriteError{Op: op, Offset: w.n, Message: msg, Err: sentinel}
	}
	return w.err
}
