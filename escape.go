package jsonbuf

// needsEscape is a pre-computed lookup table for bytes that require
// escaping inside a JSON string. Index is the byte value.
var needsEscape = [256]bool{
	// Control characters (0x00-0x1F)
	0x00: true, 0x01: true, 0x02: true, 0x03: true, 0x04: true, 0x05: true, 0x06: true, 0x07: true,
	0x08: true, 0x09: true, 0x0A: true, 0x0B: true, 0x0C: true, 0x0D: true, 0x0E: true, 0x0F: true,
	0x10: true, 0x11: true, 0x12: true, 0x13: true, 0x14: true, 0x15: true, 0x16: true, 0x17: true,
	0x18: true, 0x19: true, 0x1A: true, 0x1B: true, 0x1C: true, 0x1D: true, 0x1E: true, 0x1F: true,
	// Quote and backslash
	'"':  true,
	'\\': true,
	// All other bytes (0x20-0xFF except " and \) are copied verbatim.
}

const hexChars = "0123456789abcdef"

// appendQuoted writes s as a quoted, escaped JSON string. Safe runs are
// copied in batches; escapes are emitted byte by byte. Every append is
// bounds-checked, so a failure can leave a partial token behind — the
// sticky error keeps it from reaching finalized output.
func appendQuoted[T ~string | ~[]byte](w *Writer, op string, s T) error {
	if err := w.appendByte(op, '"'); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !needsEscape[c] {
			continue
		}

		if err := appendRun(w, op, s[start:i]); err != nil {
			return err
		}
		if err := w.appendEscape(op, c); err != nil {
			return err
		}
		start = i + 1
	}

	if err := appendRun(w, op, s[start:]); err != nil {
		return err
	}
	return w.appendByte(op, '"')
}

// appendRun copies a run of bytes that need no escaping.
func appendRun[T ~string | ~[]byte](w *Writer, op string, s T) error {
	if len(s) == 0 {
		return nil
	}
	if w.n+len(s) > len(w.buf) {
		return w.fail(op, ErrBufferFull, "")
	}
	for i := 0; i < len(s); i++ {
		w.buf[w.n] = s[i]
		w.n++
	}
	return nil
}

// appendEscape writes the escape sequence for a single byte from the
// needsEscape table.
func (w *Writer) appendEscape(op string, c byte) error {
	switch c {
	case '"':
		return w.appendPair(op, '\\', '"')
	case '\\':
		return w.appendPair(op, '\\', '\\')
	case '\b':
		return w.appendPair(op, '\\', 'b')
	case '\f':
		return w.appendPair(op, '\\', 'f')
	case '\n':
		return w.appendPair(op, '\\', 'n')
	case '\r':
		return w.appendPair(op, '\\', 'r')
	case '\t':
		return w.appendPair(op, '\\', 't')
	default:
		// Remaining control characters -> \u00xx with lowercase hex.
		if w.n+6 > len(w.buf) {
			return w.fail(op, ErrBufferFull, "")
		}
		w.buf[w.n] = '\\'
		w.buf[w.n+1] = 'u'
		w.buf[w.n+2] = '0'
		w.buf[w.n+3] = '0'
		w.buf[w.n+4] = hexChars[c>>4]
		w.buf[w.n+5] = hexChars[c&0x0f]
		w.n += 6
		return nil
	}
}

func (w *Writer) appendPair(op string, a, b byte) error {
	if w.n+2 > len(w.buf) {
		return w.fail(op, ErrBufferFull, "")
	}
	w.buf[w.n] = a
	w.buf[w.n+1] = b
	w.n += 2
	return nil
}
