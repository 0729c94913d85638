// Package charsetio provides the two convenience wrappers spec.md §6.3
// names as the non-goal "memory-pool-based one-shot conversion helpers":
// ConvertStack, which sizes its own scratch buffer, and ConvertPool, which
// reuses a caller-supplied backing slice instead of allocating one (the Go
// analogue of original_source/charset/mp-charconv.c's memory-pool
// argument — Go has no arena allocator in the retrieval pack, so the
// "pool" here is simply a slice the caller owns and can reuse across
// calls).
package charsetio

import (
	"fmt"
	"unicode/utf8"

	"github.com/ucwgo/charconv"
)

// sizingFactor bounds, per source byte, how much a single canonical code
// point can expand to in the worst case. A source byte can decode to at
// most one Unicode scalar, and utf8.UTFMax (4) is the most bytes that
// scalar could re-encode to; sizingFactor is one less than that because a
// single source byte already accounts for 1 of those worst-case bytes.
// ConvertStack and ConvertPool both size their scratch buffer as
// 3*len(input)+1 per spec.md §6.3's documented worst-case contract, which
// comfortably covers ordinary text; callers converting into a charset with
// long string-table expansions on nearly every character should use
// ConvertPool with a larger pool instead.
const sizingFactor = utf8.UTFMax - 1

// ConvertStack converts the entirety of input from one charset to another
// in one call, sizing its own scratch buffer per spec.md §6.3's
// 3*len(input)+1 contract. It returns ErrUnknownCharset if either name is
// not registered.
func ConvertStack(input string, from, to string) (string, error) {
	fromID := charconv.LookupCharset(from)
	if fromID == charconv.Unknown {
		return "", fmt.Errorf("charsetio: source charset %q: %w", from, charconv.ErrUnknownCharset)
	}
	toID := charconv.LookupCharset(to)
	if toID == charconv.Unknown {
		return "", fmt.Errorf("charsetio: destination charset %q: %w", to, charconv.ErrUnknownCharset)
	}
	buf := make([]byte, sizingFactor*len(input)+1)
	return convert(buf, input, fromID, toID)
}

// ConvertPool converts input using pool as scratch space instead of
// allocating one, returning an error if pool is too small to hold the
// worst-case output (spec.md §6.3's 3*len(input)+1 contract). Callers that
// convert many short strings back to back can reuse the same pool across
// calls.
func ConvertPool(pool []byte, input string, from, to string) (string, error) {
	fromID := charconv.LookupCharset(from)
	if fromID == charconv.Unknown {
		return "", fmt.Errorf("charsetio: source charset %q: %w", from, charconv.ErrUnknownCharset)
	}
	toID := charconv.LookupCharset(to)
	if toID == charconv.Unknown {
		return "", fmt.Errorf("charsetio: destination charset %q: %w", to, charconv.ErrUnknownCharset)
	}
	if len(pool) < sizingFactor*len(input)+1 {
		return "", fmt.Errorf("charsetio: pool too small: need at least %d bytes, have %d", sizingFactor*len(input)+1, len(pool))
	}
	return convert(pool, input, fromID, toID)
}

// convert drives a single-shot Converter over all of input, trusting that
// buf is large enough that Run never reports DestEnd; that guarantee is
// the whole point of the 3*len(input)+1 sizing contract.
func convert(buf []byte, input string, from, to charconv.CharsetID) (string, error) {
	var c charconv.Converter
	if err := c.Init(from, to); err != nil {
		return "", err
	}
	c.SetSource([]byte(input))
	c.SetDest(buf)
	result := c.Run()
	if result != charconv.SourceEnd && c.SourcePos() < len(input) {
		return "", fmt.Errorf("charsetio: scratch buffer exhausted before input (wrote %d bytes, sizing contract violated)", c.DestPos())
	}
	return string(buf[:c.DestPos()]), nil
}
