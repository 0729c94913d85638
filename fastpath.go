package charconv

import "github.com/ucwgo/charconv/internal/tables"

// fallbackByte is emitted in place of any Unicode scalar a single-byte
// destination charset cannot represent, the same convention the reference
// cs2cs tool falls back to for unmappable output.
const fallbackByte = '?'

// readSingle decodes one byte from a legacy single-byte source charset.
// Every byte maps to something (legacy decode is total, spec.md invariant
// 4), so this can never suspend.
func (c *Converter) readSingle() (rune, bool) {
	b := c.src[c.srcPos]
	c.srcPos++
	return c.sourceCS.Decode(b), true
}

// fusedSingleByte is the identity shortcut of spec.md §4.2: when both ends
// are legacy single-byte charsets, the canonical Index computed from the
// source byte can be handed straight to the destination's encode table,
// skipping the intermediate Unicode scalar entirely. It is provably
// equivalent to the general path because the canonical Index space is
// shared and bijective by construction (internIndexFor interns each scalar
// exactly once).
//
// Returns true if it stopped on a byte that needs the general (expansion)
// path — the caller should handle exactly that one unit with readCode /
// writeCode and then try the fused path again. Returns false once either
// window is fully drained, with nothing left for the general path to do.
func (c *Converter) fusedSingleByte() bool {
	for c.srcRemaining() > 0 && c.destRemaining() > 0 {
		b := c.src[c.srcPos]
		idx := c.sourceCS.InToInternal[b]
		out := c.destCS.EncodeIndex(idx)
		obyte, isByte, _, isExpansion := tables.DecodeOutIndex(out)
		if isExpansion {
			return true
		}
		c.srcPos++
		if isByte {
			c.dst[c.dstPos] = obyte
		} else {
			c.dst[c.dstPos] = fallbackByte
		}
		c.dstPos++
	}
	return false
}

// --- UTF-8 source ---------------------------------------------------------

// utf8LeadLen classifies a UTF-8 lead byte by its bit pattern alone. The
// returned length is how many bytes the general decoder will consume as one
// unit regardless of whether the sequence turns out well formed; validity
// (overlong, surrogate, out-of-range, bad continuation) is checked only
// once the full length-determined run has been gathered (spec.md §8.2.5:
// C3 28 consumes both bytes as a single malformed unit).
func utf8LeadLen(b byte) (n int, validLead bool) {
	switch {
	case b < 0x80:
		return 1, true
	case b&0xE0 == 0xC0:
		return 2, true
	case b&0xF0 == 0xE0:
		return 3, true
	case b&0xF8 == 0xF0:
		return 4, true
	default:
		return 1, false
	}
}

// decodeUTF8Seq validates a fully buffered sequence whose length was
// already fixed by utf8LeadLen. Strict RFC 3629: rejects overlong
// encodings, surrogate code points, and values above U+10FFFF.
func decodeUTF8Seq(buf []byte) (rune, bool) {
	n := len(buf)
	if n == 1 {
		return rune(buf[0]), buf[0] < 0x80
	}
	var r rune
	switch n {
	case 2:
		r = rune(buf[0] & 0x1F)
	case 3:
		r = rune(buf[0] & 0x0F)
	case 4:
		r = rune(buf[0] & 0x07)
	}
	for i := 1; i < n; i++ {
		cb := buf[i]
		if cb&0xC0 != 0x80 {
			return 0, false
		}
		r = r<<6 | rune(cb&0x3F)
	}
	var minCode rune
	switch n {
	case 2:
		minCode = 0x80
	case 3:
		minCode = 0x800
	case 4:
		minCode = 0x10000
	}
	if r < minCode || r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
		return 0, false
	}
	return r, true
}

// readUTF8 gathers and decodes one UTF-8 sequence, suspending
// (PhasePartialUTF8Read) if the source window runs out before the
// length-determined run is fully buffered.
func (c *Converter) readUTF8() (rune, bool) {
	if c.u8have == 0 {
		b := c.src[c.srcPos]
		c.srcPos++
		n, _ := utf8LeadLen(b)
		c.u8buf[0] = b
		c.u8have = 1
		c.u8need = n
	}
	for c.u8have < c.u8need {
		if c.srcRemaining() == 0 {
			c.phase = PhasePartialUTF8Read
			return 0, false
		}
		c.u8buf[c.u8have] = c.src[c.srcPos]
		c.srcPos++
		c.u8have++
	}
	r, valid := decodeUTF8Seq(c.u8buf[:c.u8have])
	c.u8have = 0
	c.u8need = 0
	c.phase = PhaseRunning
	if !valid {
		return tables.Replacement, true
	}
	return r, true
}

// writeUTF8 encodes r as UTF-8 directly into dst, suspending
// (PhasePartialSequenceWrite) if it only partially fits.
func (c *Converter) writeUTF8(r rune) bool {
	var buf [4]byte
	n := encodeUTF8(buf[:], r)
	return c.writeBytes(buf[:n])
}

// encodeUTF8 writes the UTF-8 encoding of r into buf (which must be at
// least 4 bytes) and returns the number of bytes written. r is always a
// valid scalar (0..0x10FFFF, non-surrogate) by construction of every
// readCode path, so this never needs a fallback.
func encodeUTF8(buf []byte, r rune) int {
	switch {
	case r < 0x80:
		buf[0] = byte(r)
		return 1
	case r < 0x800:
		buf[0] = 0xC0 | byte(r>>6)
		buf[1] = 0x80 | byte(r&0x3F)
		return 2
	case r < 0x10000:
		buf[0] = 0xE0 | byte(r>>12)
		buf[1] = 0x80 | byte((r>>6)&0x3F)
		buf[2] = 0x80 | byte(r&0x3F)
		return 3
	default:
		buf[0] = 0xF0 | byte(r>>18)
		buf[1] = 0x80 | byte((r>>12)&0x3F)
		buf[2] = 0x80 | byte((r>>6)&0x3F)
		buf[3] = 0x80 | byte(r&0x3F)
		return 4
	}
}

// --- UTF-16 source ---------------------------------------------------------

func get16(b0, b1 byte, bigEndian bool) uint16 {
	if bigEndian {
		return uint16(b0)<<8 | uint16(b1)
	}
	return uint16(b1)<<8 | uint16(b0)
}

func put16(buf []byte, v uint16, bigEndian bool) {
	if bigEndian {
		buf[0] = byte(v >> 8)
		buf[1] = byte(v)
	} else {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
	}
}

// nextUnit returns the next raw UTF-16 code unit, honoring a requeued unit
// left over from a rejected low-surrogate candidate before consuming new
// source bytes. ok is false only when a genuinely new unit is needed but
// the source window does not hold two more bytes.
func (c *Converter) nextUnit() (unit uint16, b0, b1 byte, ok bool) {
	if c.requeueLen == 2 {
		b0, b1 = c.requeue[0], c.requeue[1]
		c.requeueLen = 0
		return get16(b0, b1, c.sourceClass == classUTF16BE), b0, b1, true
	}
	if c.u16have == 0 {
		if c.srcRemaining() < 1 {
			c.phase = PhasePartialUTF16Read
			return 0, 0, 0, false
		}
		c.u16buf[0] = c.src[c.srcPos]
		c.srcPos++
		c.u16have = 1
	}
	if c.u16have == 1 {
		if c.srcRemaining() < 1 {
			c.phase = PhasePartialUTF16Read
			return 0, 0, 0, false
		}
		c.u16buf[1] = c.src[c.srcPos]
		c.srcPos++
		c.u16have = 2
	}
	b0, b1 = c.u16buf[0], c.u16buf[1]
	c.u16have = 0
	return get16(b0, b1, c.sourceClass == classUTF16BE), b0, b1, true
}

// readUTF16 decodes one scalar from a UTF-16 source, including surrogate
// pairs. A lone high surrogate whose following unit is not a valid low
// surrogate leaves that following unit unconsumed — honored here by raw
// requeue bytes rather than rolling back srcPos, since the unit may have
// been gathered across a suspension boundary (spec.md §4.3/§8.2.4).
func (c *Converter) readUTF16(bigEndian bool) (rune, bool) {
	if c.hasPending {
		hi := c.pendingHi
		c.hasPending = false
		unit, b0, b1, ok := c.nextUnit()
		if !ok {
			c.hasPending = true
			c.pendingHi = hi
			return 0, false
		}
		if unit >= 0xDC00 && unit <= 0xDFFF {
			r := 0x10000 + (rune(hi)-0xD800)<<10 + (rune(unit) - 0xDC00)
			c.phase = PhaseRunning
			return r, true
		}
		// Not a valid low surrogate: requeue its raw bytes, lone high
		// surrogate becomes Replacement.
		c.requeue[0], c.requeue[1] = b0, b1
		c.requeueLen = 2
		c.phase = PhaseRunning
		return tables.Replacement, true
	}

	unit, _, _, ok := c.nextUnit()
	if !ok {
		return 0, false
	}
	switch {
	case unit >= 0xD800 && unit <= 0xDBFF:
		c.pendingHi = unit
		c.hasPending = true
		hi := unit
		u2, b0, b1, ok := c.nextUnit()
		if !ok {
			// hasPending already recorded; resume will retry nextUnit.
			return 0, false
		}
		c.hasPending = false
		if u2 >= 0xDC00 && u2 <= 0xDFFF {
			r := 0x10000 + (rune(hi)-0xD800)<<10 + (rune(u2) - 0xDC00)
			return r, true
		}
		c.requeue[0], c.requeue[1] = b0, b1
		c.requeueLen = 2
		return tables.Replacement, true
	case unit >= 0xDC00 && unit <= 0xDFFF:
		// Lone low surrogate with no preceding high: malformed on its own.
		return tables.Replacement, true
	default:
		return rune(unit), true
	}
}

// writeUTF16 encodes r as one or two UTF-16 code units, suspending
// (PhasePartialSequenceWrite) if it only partially fits.
func (c *Converter) writeUTF16(r rune, bigEndian bool) bool {
	var buf [4]byte
	var n int
	if r < 0x10000 {
		put16(buf[:2], uint16(r), bigEndian)
		n = 2
	} else {
		v := r - 0x10000
		hi := uint16(0xD800 + (v >> 10))
		lo := uint16(0xDC00 + (v & 0x3FF))
		put16(buf[0:2], hi, bigEndian)
		put16(buf[2:4], lo, bigEndian)
		n = 4
	}
	return c.writeBytes(buf[:n])
}

// --- single-byte destination -----------------------------------------------

// writeSingle encodes r into the destination's legacy charset: either a
// single literal byte, a multi-byte string-table expansion, or (if r has no
// representation there) the fallback byte.
func (c *Converter) writeSingle(r rune) bool {
	out := c.destCS.Encode(r)
	b, isByte, exp, isExpansion := tables.DecodeOutIndex(out)
	switch {
	case isExpansion:
		return c.writeBytes(exp.Bytes)
	case isByte:
		return c.writeBytes([]byte{b})
	default:
		return c.writeBytes([]byte{fallbackByte})
	}
}

// --- shared pending-write plumbing -----------------------------------------

// writeBytes copies out to dst, buffering and suspending
// (PhasePartialSingleWrite / PhasePartialSequenceWrite) if dst fills first.
func (c *Converter) writeBytes(out []byte) bool {
	n := copy(c.dst[c.dstPos:], out)
	c.dstPos += n
	if n == len(out) {
		return true
	}
	copy(c.pendingOut[:], out[n:])
	c.pendingLen = len(out) - n
	c.pendingOffset = 0
	if len(out) == 1 {
		c.phase = PhasePartialSingleWrite
	} else {
		c.phase = PhasePartialSequenceWrite
	}
	return false
}

// flushPendingWrite resumes a suspended writeBytes call, copying as much of
// the buffered remainder as the (possibly new) destination window holds.
func (c *Converter) flushPendingWrite() bool {
	remaining := c.pendingOut[c.pendingOffset:c.pendingLen]
	n := copy(c.dst[c.dstPos:], remaining)
	c.dstPos += n
	c.pendingOffset += n
	if c.pendingOffset == c.pendingLen {
		c.pendingLen = 0
		c.pendingOffset = 0
		c.phase = PhaseRunning
		return true
	}
	return false
}
