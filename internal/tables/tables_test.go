package tables

import "testing"

// spec.md §6.2: round-tripping any byte through in_to_x -> InternalToUnicode
// -> UnicodeToInternal[charset] -> x_to_out must yield either the byte back
// or a declared alternative (here: Unmapped, which Charset.Decode/Encode
// both resolve to Replacement / fallback at the converter layer).
func TestCharsetRoundTripOrUnmapped(t *testing.T) {
	for _, name := range Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			cs := Lookup(name)
			if cs == nil {
				t.Fatalf("Lookup(%q) = nil", name)
			}
			for b := 0; b <= 0xFF; b++ {
				idx := cs.InToInternal[byte(b)]
				if idx == Unmapped {
					continue
				}
				r := InternalToUnicode(idx)
				back := cs.Encode(r)
				bb, isByte, _, _ := DecodeOutIndex(back)
				if !isByte || bb != byte(b) {
					t.Fatalf("byte 0x%02X: round trip produced out=%v, want byte 0x%02X", b, back, b)
				}
			}
		})
	}
}

func TestSharedCanonicalSpaceAgreesAcrossCharsets(t *testing.T) {
	l1 := Lookup("iso-8859-1")
	w1252 := Lookup("windows-1252")
	if l1 == nil || w1252 == nil {
		t.Fatalf("expected iso-8859-1 and windows-1252 to be registered")
	}
	// Both charsets decode 0xE9 to the same scalar (é); the canonical Index
	// backing that scalar must be identical across charsets (tables.go's
	// "shared" bridge tables), so cross-charset transcoding is lossless for
	// characters both sides can represent.
	r1 := l1.Decode(0xE9)
	r2 := w1252.Decode(0xE9)
	if r1 != r2 {
		t.Fatalf("iso-8859-1 and windows-1252 disagree on byte 0xE9: %U vs %U", r1, r2)
	}
	if UnicodeToInternal(r1) != UnicodeToInternal(r2) {
		t.Fatalf("canonical Index for %U differs depending on which charset asked", r1)
	}
}

func TestUnmappedDecodesToReplacement(t *testing.T) {
	ascii := Lookup("us-ascii")
	if ascii == nil {
		t.Fatalf("us-ascii not registered")
	}
	if r := ascii.Decode(0x80); r != Replacement {
		t.Fatalf("us-ascii.Decode(0x80) = %U, want Replacement", r)
	}
}

func TestExpansionAddressing(t *testing.T) {
	translit := Lookup("ascii-translit")
	if translit == nil {
		t.Fatalf("ascii-translit not registered")
	}
	out := translit.Encode(0x0153) // œ
	_, isByte, exp, isExpansion := DecodeOutIndex(out)
	if isByte || !isExpansion {
		t.Fatalf("Encode(œ) = %v, want a string-table expansion", out)
	}
	if string(exp.Bytes) != "oe" {
		t.Fatalf("œ expanded to %q, want \"oe\"", exp.Bytes)
	}
}
