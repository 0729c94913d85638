package charconv

import (
	"sort"
	"strings"

	"github.com/ucwgo/charconv/internal/tables"
)

// CharsetID names a supported source or destination encoding: either one
// of the three Unicode pseudo-charsets or a registered legacy single-byte
// charset (spec.md §3.1/§6.1).
type CharsetID int

// Unknown is the sentinel CharsetID returned by LookupCharset when a name
// is not registered (spec.md §7.3: "surfaced as a distinguished sentinel").
const Unknown CharsetID = 0

// The three Unicode pseudo-charsets. Every other valid CharsetID addresses
// a legacy single-byte charset and is never a compile-time constant: it is
// assigned at init time from the tables registry and can only be obtained
// through LookupCharset or Charsets.
const (
	UTF8 CharsetID = iota + 1
	UTF16BE
	UTF16LE

	firstLegacy
)

// legacyName/legacyByName back the CharsetID <-> name mapping for every
// registered legacy charset (everything in internal/tables); aliases are
// resolved separately through the aliases map below.
var (
	legacyName   []string
	legacyByName = map[string]CharsetID{}
	legacyTable  []*tables.Charset
)

// aliases maps informal spellings to the canonical registry name they
// resolve to, in the style of go-charset's NormalizedName folding (lower
// case, '_' -> '-') plus a short alias list for common alternate spellings.
var aliases = map[string]string{
	"ascii":    "us-ascii",
	"ansi_x3.4-1968": "us-ascii",
	"latin1":   "iso-8859-1",
	"l1":       "iso-8859-1",
	"latin2":   "iso-8859-2",
	"l2":       "iso-8859-2",
	"cp1252":   "windows-1252",
	"win-1252": "windows-1252",
	"cp850":    "cp852", // nearest registered DOS codepage family member
	"mac":      "macintosh",
	"macroman": "macintosh",
	"koi8r":    "koi8-r",
}

func init() {
	names := tables.Names()
	sort.Strings(names)
	legacyName = make([]string, 0, len(names))
	legacyTable = make([]*tables.Charset, 0, len(names))
	for i, name := range names {
		id := firstLegacy + CharsetID(i)
		legacyName = append(legacyName, name)
		legacyTable = append(legacyTable, tables.Lookup(name))
		legacyByName[name] = id
	}
}

// NormalizeName folds s the way the charset registry compares names:
// ASCII letters to lower case, underscores to hyphens. Matches the
// normalization rule used by the reference go-charset package.
func NormalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return r - 'A' + 'a'
		case r == '_':
			return '-'
		default:
			return r
		}
	}, s)
}

// LookupCharset maps a case-insensitive charset name to its CharsetID, or
// returns Unknown if the name is not registered (spec.md §6.1/§7.3).
func LookupCharset(name string) CharsetID {
	norm := NormalizeName(name)
	switch norm {
	case "utf-8", "utf8":
		return UTF8
	case "utf-16be", "utf16be", "ucs-2be":
		return UTF16BE
	case "utf-16le", "utf16le", "ucs-2le":
		return UTF16LE
	}
	if canon, ok := aliases[norm]; ok {
		norm = canon
	}
	if id, ok := legacyByName[norm]; ok {
		return id
	}
	return Unknown
}

// Name returns the canonical registered name for id, or "" if id is
// Unknown or not a valid CharsetID.
func Name(id CharsetID) string {
	switch id {
	case UTF8:
		return "utf-8"
	case UTF16BE:
		return "utf-16be"
	case UTF16LE:
		return "utf-16le"
	}
	i := int(id - firstLegacy)
	if i < 0 || i >= len(legacyName) {
		return ""
	}
	return legacyName[i]
}

// Charsets returns the canonical names of the three Unicode pseudo-charsets
// first, followed by every registered legacy charset in sorted order.
func Charsets() []string {
	out := make([]string, 0, len(legacyName)+3)
	out = append(out, "utf-8", "utf-16be", "utf-16le")
	out = append(out, legacyName...)
	return out
}

// legacyCharset resolves id to its *tables.Charset, or nil if id does not
// name a legacy charset (i.e. it is Unknown or one of the UTF-* ids).
func legacyCharset(id CharsetID) *tables.Charset {
	i := int(id - firstLegacy)
	if i < 0 || i >= len(legacyTable) {
		return nil
	}
	return legacyTable[i]
}

func isUnicodeID(id CharsetID) bool {
	return id == UTF8 || id == UTF16BE || id == UTF16LE
}
