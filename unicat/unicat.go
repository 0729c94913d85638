// Package unicat is the Unicode categorizer of spec.md §4.5 and
// original_source/libucw/charset/unicat.h: pure, total, table-driven
// queries over a rune's general category, case mapping, and (for the
// common Latin letters this module ships data for) its unaccented and
// ligature-expanded forms. None of it participates in the suspending
// Run loop — every function here takes a whole rune and returns a whole
// result, no partial state.
package unicat

// CategoryFlags is a bitmask classification of a rune, mirroring libucw's
// UNICAT_* flags: Letter, Upper, Lower, Control, Digit, HexDigit, Space,
// Ligature (spec.md §4.5). A rune can set several at once (e.g. 'A' is
// both Letter and Upper; '5' is both Digit and HexDigit).
type CategoryFlags uint8

const (
	CategoryNone     CategoryFlags = 0
	CategoryLetter   CategoryFlags = 1 << 0
	CategoryUpper    CategoryFlags = 1 << 1
	CategoryLower    CategoryFlags = 1 << 2
	CategoryControl  CategoryFlags = 1 << 3
	CategoryDigit    CategoryFlags = 1 << 4
	CategoryHexDigit CategoryFlags = 1 << 5
	CategorySpace    CategoryFlags = 1 << 6
	CategoryLigature CategoryFlags = 1 << 7
)

// page is one 256-entry slice of per-codepoint data. Unset entries are the
// zero value, matching how a never-touched rune should behave (no
// category, case mapping is identity, no unaccented/ligature form).
type page struct {
	category [256]CategoryFlags
	upper    [256]rune
	lower    [256]rune
	unaccent [256]rune
	ligature [256]string
}

// pages is the nullable two-level table spec.md §2/§4.5 describes: most of
// the 0x10FFFF rune space has no entry here at all, and a nil page means
// "every rune on this page behaves as its own default" without needing
// 256 explicit zero entries.
var pages [0x1100]*page

func pageFor(r rune, create bool) *page {
	if r < 0 || r > 0x10FFFF {
		return nil
	}
	hi := r >> 8
	if int(hi) >= len(pages) {
		return nil
	}
	p := pages[hi]
	if p == nil && create {
		p = &page{}
		pages[hi] = p
	}
	return p
}

func init() {
	buildASCIICategories()
	buildLatin1Categories()
	buildCaseMappings()
	buildUnaccentTable()
	buildLigatureTable()
}

// Category returns the CategoryFlags for r, or CategoryNone if r has no
// entry (the conservative, always-total default).
func Category(r rune) CategoryFlags {
	p := pageFor(r, false)
	if p == nil {
		return CategoryNone
	}
	return p.category[r&0xFF]
}

// ToUpper returns the upper-case mapping of r, or r unchanged if none is
// recorded.
func ToUpper(r rune) rune {
	p := pageFor(r, false)
	if p == nil {
		return r
	}
	if u := p.upper[r&0xFF]; u != 0 {
		return u
	}
	return r
}

// ToLower returns the lower-case mapping of r, or r unchanged if none is
// recorded.
func ToLower(r rune) rune {
	p := pageFor(r, false)
	if p == nil {
		return r
	}
	if l := p.lower[r&0xFF]; l != 0 {
		return l
	}
	return r
}

// Unaccent returns the base letter for an accented r (e.g. 'é' -> 'e'), or
// r unchanged if it carries no recorded accent.
func Unaccent(r rune) rune {
	p := pageFor(r, false)
	if p == nil {
		return r
	}
	if u := p.unaccent[r&0xFF]; u != 0 {
		return u
	}
	return r
}

// ExpandLigature returns the multi-character expansion of a ligature rune
// (e.g. 'œ' -> "oe"), and reports whether r is a recorded ligature at all.
// Non-ligature runes report ok=false; callers fall back to the rune
// itself.
func ExpandLigature(r rune) (expansion string, ok bool) {
	p := pageFor(r, false)
	if p == nil {
		return "", false
	}
	if s := p.ligature[r&0xFF]; s != "" {
		return s, true
	}
	return "", false
}

func setCategory(r rune, f CategoryFlags) {
	pageFor(r, true).category[r&0xFF] = f
}

// addCategory ORs f into r's existing flags, for runes that satisfy more
// than one category (a hex digit is also a digit; a ligature is also a
// letter).
func addCategory(r rune, f CategoryFlags) {
	p := pageFor(r, true)
	p.category[r&0xFF] |= f
}

func setCase(r, upper, lower rune) {
	p := pageFor(r, true)
	p.upper[r&0xFF] = upper
	p.lower[r&0xFF] = lower
}

func setUnaccent(r, base rune) {
	pageFor(r, true).unaccent[r&0xFF] = base
}

func setLigature(r rune, expansion string) {
	pageFor(r, true).ligature[r&0xFF] = expansion
}

func buildASCIICategories() {
	for r := rune(0x00); r <= 0x1F; r++ {
		addCategory(r, CategoryControl)
	}
	addCategory(0x7F, CategoryControl)
	for r := rune('A'); r <= 'Z'; r++ {
		addCategory(r, CategoryLetter|CategoryUpper)
	}
	for r := rune('a'); r <= 'z'; r++ {
		addCategory(r, CategoryLetter|CategoryLower)
	}
	for r := rune('0'); r <= '9'; r++ {
		addCategory(r, CategoryDigit|CategoryHexDigit)
	}
	for r := rune('A'); r <= 'F'; r++ {
		addCategory(r, CategoryHexDigit)
	}
	for r := rune('a'); r <= 'f'; r++ {
		addCategory(r, CategoryHexDigit)
	}
	for _, r := range []rune{' ', '\t', '\n', '\r', '\v', '\f'} {
		addCategory(r, CategorySpace)
	}
}

func buildLatin1Categories() {
	for r := rune(0x80); r <= 0x9F; r++ {
		addCategory(r, CategoryControl)
	}
	upper := []rune{0xC0, 0xC1, 0xC2, 0xC3, 0xC4, 0xC5, 0xC6, 0xC7, 0xC8, 0xC9,
		0xCA, 0xCB, 0xCC, 0xCD, 0xCE, 0xCF, 0xD0, 0xD1, 0xD2, 0xD3, 0xD4, 0xD5,
		0xD6, 0xD8, 0xD9, 0xDA, 0xDB, 0xDC, 0xDD, 0xDE}
	for _, r := range upper {
		addCategory(r, CategoryLetter|CategoryUpper)
	}
	lower := []rune{0xDF, 0xE0, 0xE1, 0xE2, 0xE3, 0xE4, 0xE5, 0xE6, 0xE7, 0xE8,
		0xE9, 0xEA, 0xEB, 0xEC, 0xED, 0xEE, 0xEF, 0xF0, 0xF1, 0xF2, 0xF3, 0xF4,
		0xF5, 0xF6, 0xF8, 0xF9, 0xFA, 0xFB, 0xFC, 0xFD, 0xFE, 0xFF}
	for _, r := range lower {
		addCategory(r, CategoryLetter|CategoryLower)
	}
	addCategory(0xA0, CategorySpace)
}

func buildCaseMappings() {
	for r := rune('A'); r <= 'Z'; r++ {
		setCase(r, r, r+0x20)
	}
	for r := rune('a'); r <= 'z'; r++ {
		setCase(r, r-0x20, r)
	}
	// Latin-1 upper/lower pairs (0xC0-0xDE <-> 0xE0-0xFE), skipping 0xD7/0xF7
	// (multiplication/division signs, not letters).
	for r := rune(0xC0); r <= 0xDE; r++ {
		if r == 0xD7 {
			continue
		}
		setCase(r, r, r+0x20)
		setCase(r+0x20, r, r+0x20)
	}
}

func buildUnaccentTable() {
	m := map[rune]rune{
		0xC0: 'A', 0xC1: 'A', 0xC2: 'A', 0xC3: 'A', 0xC4: 'A', 0xC5: 'A',
		0xC7: 'C', 0xC8: 'E', 0xC9: 'E', 0xCA: 'E', 0xCB: 'E',
		0xCC: 'I', 0xCD: 'I', 0xCE: 'I', 0xCF: 'I', 0xD1: 'N',
		0xD2: 'O', 0xD3: 'O', 0xD4: 'O', 0xD5: 'O', 0xD6: 'O', 0xD8: 'O',
		0xD9: 'U', 0xDA: 'U', 0xDB: 'U', 0xDC: 'U', 0xDD: 'Y',
		0xE0: 'a', 0xE1: 'a', 0xE2: 'a', 0xE3: 'a', 0xE4: 'a', 0xE5: 'a',
		0xE7: 'c', 0xE8: 'e', 0xE9: 'e', 0xEA: 'e', 0xEB: 'e',
		0xEC: 'i', 0xED: 'i', 0xEE: 'i', 0xEF: 'i', 0xF1: 'n',
		0xF2: 'o', 0xF3: 'o', 0xF4: 'o', 0xF5: 'o', 0xF6: 'o', 0xF8: 'o',
		0xF9: 'u', 0xFA: 'u', 0xFB: 'u', 0xFC: 'u', 0xFD: 'y', 0xFF: 'y',
	}
	for r, base := range m {
		setUnaccent(r, base)
	}
}

func buildLigatureTable() {
	m := map[rune]string{
		0x0152: "OE",
		0x0153: "oe",
		0x00DF: "ss",
		0xFB00: "ff",
		0xFB01: "fi",
		0xFB02: "fl",
		0xFB03: "ffi",
		0xFB04: "ffl",
	}
	for r, expansion := range m {
		setLigature(r, expansion)
		addCategory(r, CategoryLetter|CategoryLigature)
	}
}
