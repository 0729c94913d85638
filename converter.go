package charconv

import "github.com/ucwgo/charconv/internal/tables"

// encClass is the coarse encoding family used to pick a fast-path function.
// Every legacy single-byte charset shares the same class: the difference
// between, say, iso-8859-2 and koi8-r is only which *tables.Charset backs
// it, never how bytes are framed.
type encClass int

const (
	classSingleByte encClass = iota
	classUTF8
	classUTF16BE
	classUTF16LE
)

func classOf(id CharsetID) encClass {
	if !isUnicodeID(id) {
		return classSingleByte
	}
	switch id {
	case UTF8:
		return classUTF8
	case UTF16BE:
		return classUTF16BE
	default:
		return classUTF16LE
	}
}

// Converter is the suspendable state machine of spec.md §3.1/§4.1. It holds
// no I/O of its own: callers repeatedly attach a source window and a
// destination window with SetSource/SetDest and call Run until both are
// exhausted. A Converter may be suspended (Run returns DestEnd or
// SourceEnd) and resumed arbitrarily later, including with a brand new
// backing array for either window, as long as the byte contents already
// consumed are never replayed.
type Converter struct {
	sourceID, destID       CharsetID
	sourceClass, destClass encClass
	sourceCS, destCS       *tables.Charset

	src    []byte
	srcPos int

	dst    []byte
	dstPos int

	phase Phase

	// UTF-8 partial read state (PhasePartialUTF8Read).
	u8buf  [4]byte
	u8have int
	u8need int

	// UTF-16 partial read / surrogate state (PhasePartialUTF16Read).
	u16buf     [2]byte
	u16have    int
	pendingHi  uint16 // high surrogate awaiting its low half
	hasPending bool
	requeue    [2]byte // raw bytes of a rejected low-surrogate candidate
	requeueLen int

	// Pending output not yet fully flushed to dst (PhasePartial*Write).
	pendingOut    [tables.MaxExpansion]byte
	pendingLen    int
	pendingOffset int
}

// Init resets the Converter to its zero state and binds the source and
// destination charsets for the lifetime of the conversion. It must be
// called before the first Run.
func (c *Converter) Init(source, dest CharsetID) error {
	*c = Converter{}
	c.sourceID = source
	c.destID = dest
	c.sourceClass = classOf(source)
	c.destClass = classOf(dest)
	if c.sourceClass == classSingleByte {
		c.sourceCS = legacyCharset(source)
		if c.sourceCS == nil {
			return ErrUnknownCharset
		}
	}
	if c.destClass == classSingleByte {
		c.destCS = legacyCharset(dest)
		if c.destCS == nil {
			return ErrUnknownCharset
		}
	}
	return nil
}

// SetSource attaches a new source window. src[0] is the next unread byte.
// Bytes before the window (already consumed by earlier Run calls) must
// never reappear in a later window.
func (c *Converter) SetSource(src []byte) {
	c.src = src
	c.srcPos = 0
}

// SetDest attaches a new destination window. dst[0] is the next write
// position.
func (c *Converter) SetDest(dst []byte) {
	c.dst = dst
	c.dstPos = 0
}

// SourcePos returns how many bytes of the current source window have been
// consumed so far.
func (c *Converter) SourcePos() int { return c.srcPos }

// DestPos returns how many bytes of the current destination window have
// been written so far.
func (c *Converter) DestPos() int { return c.dstPos }

// PhaseState reports the Phase the Converter is currently suspended in.
func (c *Converter) PhaseState() Phase { return c.phase }

// srcRemaining reports unread bytes left in the attached source window.
func (c *Converter) srcRemaining() int { return len(c.src) - c.srcPos }

// destRemaining reports unwritten bytes left in the attached destination window.
func (c *Converter) destRemaining() int { return len(c.dst) - c.dstPos }

// Run drives the state machine until the source window is exhausted, the
// destination window is full, or both happen on the same step (spec.md
// §4.1). It never blocks and never allocates.
func (c *Converter) Run() RunResult {
	if c.phase != PhaseRunning {
		if !c.resume() {
			return c.currentResult()
		}
	}

	for {
		if c.requeueLen == 0 && c.srcRemaining() == 0 {
			return c.currentResult()
		}
		if c.destRemaining() == 0 {
			return c.currentResult()
		}

		if c.sourceClass == classSingleByte && c.destClass == classSingleByte {
			if !c.fusedSingleByte() {
				// Fully drained one of the windows; let the top of the
				// loop re-evaluate and return.
				continue
			}
			// Stopped on a byte that needs the general path (a
			// string-table expansion); handle exactly that one unit
			// below, then loop back into the fused shortcut.
		}

		r, ok := c.readCode()
		if !ok {
			// A partial read suspended us; phase has been set by readCode.
			return c.currentResult()
		}

		if !c.writeCode(r) {
			return c.currentResult()
		}
	}
}

// currentResult classifies why Run just stopped.
func (c *Converter) currentResult() RunResult {
	srcDone := c.requeueLen == 0 && c.srcRemaining() == 0
	dstDone := c.destRemaining() == 0
	switch {
	case srcDone && dstDone:
		return SourceAndDestEnd
	case dstDone:
		return DestEnd
	default:
		return SourceEnd
	}
}

// resume completes whatever step was interrupted before rejoining the
// normal loop. It returns false if it could not finish that step (the
// destination window filled again before the pending output was flushed).
func (c *Converter) resume() bool {
	switch c.phase {
	case PhasePartialSingleWrite, PhasePartialSequenceWrite:
		return c.flushPendingWrite()
	case PhasePartialUTF8Read, PhasePartialUTF16Read:
		// Nothing to do here directly: readCode re-enters the same
		// gathering logic using the buffered partial state.
		c.phase = PhaseRunning
		return true
	default:
		c.phase = PhaseRunning
		return true
	}
}

// readCode decodes the next Unicode scalar from the source, dispatching on
// the source's encoding class. It returns ok=false if the source window ran
// out mid-sequence, in which case it has already set phase to the
// appropriate partial-read tag and buffered what it saw. A malformed
// sequence is never an error return: it yields tables.Replacement instead,
// per spec.md §7.1's silent-substitution rule.
func (c *Converter) readCode() (rune, bool) {
	switch c.sourceClass {
	case classSingleByte:
		return c.readSingle()
	case classUTF8:
		return c.readUTF8()
	case classUTF16BE:
		return c.readUTF16(true)
	default:
		return c.readUTF16(false)
	}
}

// writeCode encodes Unicode scalar r into the destination, dispatching on
// the destination's encoding class. It returns false if the destination
// window filled before the full (possibly multi-byte) output could be
// written, in which case phase and the pending-write buffer are already set.
func (c *Converter) writeCode(r rune) bool {
	switch c.destClass {
	case classSingleByte:
		return c.writeSingle(r)
	case classUTF8:
		return c.writeUTF8(r)
	case classUTF16BE:
		return c.writeUTF16(r, true)
	default:
		return c.writeUTF16(r, false)
	}
}
