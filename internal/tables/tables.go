// Package tables holds the static, read-only translation data the
// transcoder core runs against: per-charset byte<->index maps, the shared
// Unicode bridge tables, and the shared multi-byte expansion pool.
//
// Everything here is built once at package init time and never mutated
// afterward, so a *Charset may be shared across any number of concurrent
// converters (see the top-level package's Converter type).
package tables

// Index is the internal canonical identifier shared by every legacy
// charset's decode and encode tables. Index 0 is reserved and means
// "no mapping"; it is never a valid decode result and never addresses the
// string table.
type Index = uint16

const (
	// Unmapped is the reserved sentinel Index meaning "no canonical
	// character assigned" (decode) or "this charset cannot represent the
	// requested character" (encode).
	Unmapped Index = 0

	// NUL is the canonical Index for U+0000. It is carved out separately
	// from the Index==byte identity range below so that Index 0 can stay
	// reserved for Unmapped (see DESIGN.md, "index-zero ambiguity").
	NUL Index = 256

	// Replacement is the Unicode scalar substituted for any code point
	// that cannot be decoded from the source or encoded into the
	// destination (spec: UNI_REPLACEMENT).
	Replacement rune = 0xFFFC

	// MaxExpansion bounds the length in bytes of any single string-table
	// entry.
	MaxExpansion = 8
)

// OutIndex is the result of a destination charset's InternalToOut lookup.
// Its own small value space is reused across charsets:
//
//	0         -> no destination mapping (the converter emits '?')
//	1..256    -> a single literal output byte, value-1
//	0x101..   -> an entry in the shared StringTable, at offset (v - 0x101)
type OutIndex = uint16

const outStringBase OutIndex = 0x101

// byteOut packs a literal output byte into an OutIndex.
func byteOut(b byte) OutIndex { return OutIndex(b) + 1 }

// Expansion is one entry in the shared string table: a short literal byte
// sequence emitted in place of a single canonical character when the
// destination charset cannot represent it with one byte.
type Expansion struct {
	Bytes []byte
}

// StringTable is the shared pool referenced by OutIndex values >= outStringBase.
var StringTable []Expansion

// addExpansion appends a new entry and returns its OutIndex.
func addExpansion(b []byte) OutIndex {
	if len(b) == 0 || len(b) > MaxExpansion {
		panic("tables: expansion length out of range")
	}
	StringTable = append(StringTable, Expansion{Bytes: append([]byte(nil), b...)})
	return outStringBase + OutIndex(len(StringTable)-1)
}

// internalToUnicode maps a canonical Index to its Unicode scalar. Shared
// across every charset: this is spec.md's "InternalToUnicode table".
var internalToUnicode []rune

// unicodeToInternal is the shared two-level page table mapping a Unicode
// scalar to its canonical Index. A nil page means no character on that
// 256-codepoint page has a canonical Index at all.
var unicodeToInternal [256]*[256]Index

// nextIndex is the bump allocator used while building the canonical space.
var nextIndex Index = NUL + 1

// internIndexFor returns the canonical Index for scalar r, allocating a
// fresh one (and registering it in internalToUnicode/unicodeToInternal) if
// this scalar has not been seen yet. Used only during package-init table
// construction, never from the hot path.
func internIndexFor(r rune) Index {
	page := unicodeToInternal[(r>>8)&0xFF]
	if page == nil {
		page = &[256]Index{}
		unicodeToInternal[(r>>8)&0xFF] = page
	}
	if idx := page[r&0xFF]; idx != Unmapped {
		return idx
	}
	idx := nextIndex
	nextIndex++
	if int(idx) >= len(internalToUnicode) {
		grown := make([]rune, int(idx)+1)
		copy(grown, internalToUnicode)
		internalToUnicode = grown
	}
	internalToUnicode[idx] = r
	page[r&0xFF] = idx
	return idx
}

// bridgeReady forces wireBridge to run during package variable
// initialization, which completes before any init function (including the
// one in charsets.go that builds every Charset on top of the bridge).
var bridgeReady = wireBridge()

func wireBridge() bool {
	// Indices 1..255 are the identity range (Index == Unicode scalar ==
	// Latin-1 byte value); Index 256 is the carved-out NUL slot. Both
	// ranges are wired into the shared bridge tables up front so every
	// per-charset Charset can reuse them via setDecode.
	internalToUnicode = make([]rune, NUL+1)
	page0 := &[256]Index{}
	unicodeToInternal[0] = page0
	page0[0] = NUL
	internalToUnicode[NUL] = 0
	for b := 1; b <= 0xFF; b++ {
		page0[b] = Index(b)
		internalToUnicode[b] = rune(b)
	}
	nextIndex = NUL + 1
	return true
}

// InternalToUnicode returns the Unicode scalar for a canonical Index, or
// Replacement if idx is Unmapped or out of range.
func InternalToUnicode(idx Index) rune {
	if idx == Unmapped || int(idx) >= len(internalToUnicode) {
		return Replacement
	}
	return internalToUnicode[idx]
}

// UnicodeToInternal returns the canonical Index for a Unicode scalar, or
// Unmapped if no charset in this registry can represent it.
func UnicodeToInternal(r rune) Index {
	// The page table covers the BMP only; no registered charset maps a
	// scalar above U+FFFF.
	if r < 0 || r > 0xFFFF {
		return Unmapped
	}
	page := unicodeToInternal[(r>>8)&0xFF]
	if page == nil {
		return Unmapped
	}
	return page[r&0xFF]
}

// Charset is the pair of artifacts a legacy single-byte charset
// contributes: a decode table (byte -> canonical Index) and an encode
// table (canonical Index -> OutIndex). Either may be used independently;
// a charset used only as a source never consults InternalToOut, and vice
// versa.
type Charset struct {
	Name         string
	InToInternal [256]Index
	InternalToOut []OutIndex
}

// Decode returns the Unicode scalar for input byte b.
func (c *Charset) Decode(b byte) rune {
	return InternalToUnicode(c.InToInternal[b])
}

// Encode returns the OutIndex for Unicode scalar r, or 0 if this charset
// cannot represent r at all (including the case where no charset can).
func (c *Charset) Encode(r rune) OutIndex {
	idx := UnicodeToInternal(r)
	if idx == Unmapped || int(idx) >= len(c.InternalToOut) {
		return 0
	}
	return c.InternalToOut[idx]
}

// EncodeIndex looks up OutIndex directly from an already-resolved canonical
// Index, skipping the Unicode round trip. Used by the converter's fused
// single-byte-to-single-byte fast path (spec.md §4.2's "fused identity
// shortcut"); by construction this always agrees with Encode(InternalToUnicode(idx)).
func (c *Charset) EncodeIndex(idx Index) OutIndex {
	if idx == Unmapped || int(idx) >= len(c.InternalToOut) {
		return 0
	}
	return c.InternalToOut[idx]
}

// DecodeOutIndex splits an OutIndex into the write step's three cases.
func DecodeOutIndex(idx OutIndex) (b byte, isByte bool, exp Expansion, isExpansion bool) {
	switch {
	case idx == 0:
		return 0, false, Expansion{}, false
	case idx <= 256:
		return byte(idx - 1), true, Expansion{}, false
	default:
		return 0, false, StringTable[idx-outStringBase], true
	}
}

// growOut extends InternalToOut so index idx can be assigned.
func (c *Charset) growOut(idx Index) {
	if int(idx) < len(c.InternalToOut) {
		return
	}
	grown := make([]OutIndex, int(idx)+1)
	copy(grown, c.InternalToOut)
	c.InternalToOut = grown
}

// setDecode records that byte b decodes to scalar r, interning a canonical
// Index for r if needed, and (since every single-byte charset can losslessly
// represent its own bytes) also wires the matching encode entry so that
// decoding then re-encoding into the same charset round-trips.
func (c *Charset) setDecode(b byte, r rune) {
	idx := internIndexFor(r)
	c.InToInternal[b] = idx
	c.growOut(idx)
	c.InternalToOut[idx] = byteOut(b)
}

// setEncodeExpansion wires an encode-only mapping (canonical Index -> OutIndex)
// without touching InToInternal, for destination-only translations such as
// ASCII transliteration expansions.
func (c *Charset) setEncodeExpansion(r rune, expansion []byte) {
	idx := internIndexFor(r)
	c.growOut(idx)
	c.InternalToOut[idx] = addExpansion(expansion)
}
