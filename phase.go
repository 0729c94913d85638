package charconv

// Phase names where, if anywhere, the last Run call was interrupted mid
// code-point. It is exported so callers that persist a Converter (or just
// want to observe suspension behavior in tests) can inspect it; nothing in
// this package requires a caller to branch on it.
type Phase int

const (
	// PhaseRunning means no multi-step read or write was left half done;
	// the next Run call starts a fresh code point.
	PhaseRunning Phase = iota

	// PhasePartialUTF8Read means a UTF-8 lead byte (and zero or more of
	// its continuation bytes) has been consumed and buffered, but the
	// full sequence is not yet available.
	PhasePartialUTF8Read

	// PhasePartialUTF16Read means the first or second 16-bit code unit of
	// a UTF-16 source is only partially available.
	PhasePartialUTF16Read

	// PhasePartialSingleWrite means a single output byte was computed but
	// the destination window was full before it could be emitted.
	PhasePartialSingleWrite

	// PhasePartialSequenceWrite means a multi-byte output (a string-table
	// expansion, or a UTF-8/UTF-16 encoding of a code point) was only
	// partially copied to the destination before it filled.
	PhasePartialSequenceWrite
)

// RunResult reports why the most recent call to Run returned control to
// the caller (spec.md §4.1).
type RunResult int

const (
	// SourceEnd means the input window was fully consumed.
	SourceEnd RunResult = iota
	// DestEnd means the output window filled before input was exhausted.
	DestEnd
	// SourceAndDestEnd means both happened on the same Run call.
	SourceAndDestEnd
)

func (r RunResult) String() string {
	switch r {
	case SourceEnd:
		return "SourceEnd"
	case DestEnd:
		return "DestEnd"
	case SourceAndDestEnd:
		return "SourceAndDestEnd"
	default:
		return "RunResult(?)"
	}
}
