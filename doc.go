// Package charconv provides a streaming, bounded-memory character-set
// transcoder between legacy single-byte codepages and Unicode (UTF-8,
// UTF-16BE, UTF-16LE).
//
// # Overview
//
// A Converter holds no buffers of its own. Callers attach a source window
// and a destination window with SetSource/SetDest and call Run, which
// consumes as much of the source as it can encode into the destination and
// then returns, reporting whether it stopped because the source ran out or
// the destination filled up. A Converter can be suspended at any point,
// including mid code point, and resumed later against entirely new backing
// arrays for either window: the state needed to pick up exactly where it
// left off lives in the Converter itself.
//
// # Basic usage
//
//	var c charconv.Converter
//	if err := c.Init(charconv.LookupCharset("iso-8859-2"), charconv.UTF8); err != nil {
//	    // unknown charset name
//	}
//	c.SetSource(srcChunk)
//	c.SetDest(dstChunk)
//	for {
//	    switch c.Run() {
//	    case charconv.SourceEnd:
//	        // this chunk is fully consumed; get more source bytes
//	    case charconv.DestEnd:
//	        // dst is full; drain it and call SetDest again
//	    case charconv.SourceAndDestEnd:
//	        // both at once
//	    }
//	}
//
// # Design
//
// Every legacy charset shares one canonical Unicode bridge: decoding a
// byte from any single-byte charset and re-encoding it into any other
// always passes through the same Unicode scalar, so round-tripping through
// a third charset never loses information the destination can represent.
// When source and destination are both legacy single-byte charsets, a
// fused fast path skips the Unicode round trip entirely and looks the
// output byte up directly from the input byte.
//
// Malformed source bytes and unrepresentable destination characters are
// never reported as errors: spec behavior is to substitute silently (U+FFFC
// on decode, the fallback byte '?' on encode) and
// keep going, matching how the original C transcoder this package is
// modeled on behaves.
//
// See subpackage unicat for the Unicode categorizer (case mapping,
// unaccenting, ligature expansion) and charsetio for one-shot
// string-to-string conversion helpers.
package charconv
