package unicat

import "testing"

func TestCategoryASCII(t *testing.T) {
	cases := []struct {
		r    rune
		want CategoryFlags
	}{
		{'A', CategoryUpper},
		{'A', CategoryLetter},
		{'z', CategoryLower},
		{'z', CategoryLetter},
		{'5', CategoryDigit},
		{'5', CategoryHexDigit},
		{'F', CategoryHexDigit},
		{' ', CategorySpace},
		{0x01, CategoryControl},
		{0x7F, CategoryControl},
	}
	for _, c := range cases {
		if got := Category(c.r); got&c.want == 0 {
			t.Errorf("Category(%q) = %v, want flag %v set", c.r, got, c.want)
		}
	}
}

func TestCategoryLigatureIncludesLigatureAndLetterFlags(t *testing.T) {
	got := Category(0x0153) // œ
	if got&CategoryLigature == 0 {
		t.Errorf("Category(œ) = %v, want CategoryLigature set", got)
	}
	if got&CategoryLetter == 0 {
		t.Errorf("Category(œ) = %v, want CategoryLetter set", got)
	}
}

func TestCategoryNonHexLetterExcludesHexDigit(t *testing.T) {
	if got := Category('G'); got&CategoryHexDigit != 0 {
		t.Errorf("Category('G') = %v, want CategoryHexDigit unset", got)
	}
}

func TestCategoryDefaultsToNone(t *testing.T) {
	if got := Category(0x4E2D); got != CategoryNone { // 中, not in our tables
		t.Errorf("Category(untouched rune) = %v, want CategoryNone", got)
	}
}

func TestCaseMappingASCII(t *testing.T) {
	if ToUpper('a') != 'A' {
		t.Errorf("ToUpper('a') = %q, want 'A'", ToUpper('a'))
	}
	if ToLower('Z') != 'z' {
		t.Errorf("ToLower('Z') = %q, want 'z'", ToLower('Z'))
	}
	if ToUpper('1') != '1' {
		t.Errorf("ToUpper('1') = %q, want identity", ToUpper('1'))
	}
}

func TestCaseMappingLatin1(t *testing.T) {
	if got := ToUpper(0x00E9); got != 0x00C9 { // é -> É
		t.Errorf("ToUpper(é) = %U, want É", got)
	}
	if got := ToLower(0x00C9); got != 0x00E9 { // É -> é
		t.Errorf("ToLower(É) = %U, want é", got)
	}
}

func TestUnaccent(t *testing.T) {
	if got := Unaccent(0x00E9); got != 'e' { // é -> e
		t.Errorf("Unaccent(é) = %q, want 'e'", got)
	}
	if got := Unaccent('e'); got != 'e' {
		t.Errorf("Unaccent('e') = %q, want identity", got)
	}
}

func TestExpandLigature(t *testing.T) {
	exp, ok := ExpandLigature(0x0153) // œ
	if !ok || exp != "oe" {
		t.Errorf("ExpandLigature(œ) = (%q, %v), want (\"oe\", true)", exp, ok)
	}
	_, ok = ExpandLigature('a')
	if ok {
		t.Errorf("ExpandLigature('a') reported ok=true, want false")
	}
}
