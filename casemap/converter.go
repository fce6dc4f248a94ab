package casemap

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// CodeSpace bounds the scanned range: every code point in [0, CodeSpace)
	// gets classified, surrogate and unassigned values included.
	CodeSpace = 0x110000

	// ASCIIEnd is the first code point after the ASCII block. Single entries
	// below it are never recorded: consumers convert ASCII themselves before
	// any table lookup.
	ASCIIEnd = 0x80

	// MaxExpansion is the widest mapping a multi entry can hold. No mapping
	// shipped with the cases package exceeds it; Build fails if one ever does.
	MaxExpansion = 3
)

// Mapping is the full case conversion of one code point.
//
// Src is the code point the library actually converted. It equals the scanned
// code point except for values Go cannot encode (surrogates), which collapse
// to U+FFFD during string conversion. Those self-map and land in no table.
type Mapping struct {
	Src rune
	Out []rune
}

// Expands reports whether the conversion changed the code point count.
func (m Mapping) Expands() bool {
	return len(m.Out) != 1
}

// Self reports whether the conversion left the code point as is.
func (m Mapping) Self() bool {
	return len(m.Out) == 1 && m.Out[0] == m.Src
}

// Converter maps single code points through the full Unicode case conversion
// of the cases package, untailored to any language. Not safe for concurrent
// use: the underlying caser keeps state between calls.
type Converter struct {
	caser cases.Caser
}

func NewConverter(d Direction) *Converter {
	c := &Converter{}
	if d == ToUpper {
		c.caser = cases.Upper(language.Und)
	} else {
		c.caser = cases.Lower(language.Und)
	}
	return c
}

// Map converts one code point. It fails when the string form of r holds
// anything but exactly one code point, or when the conversion comes back
// empty.
func (c *Converter) Map(r rune) (Mapping, error) {
	s := string(r)
	src, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return Mapping{}, fmt.Errorf("code point %U does not form a single code point string", r)
	}
	out := []rune(c.caser.String(s))
	if len(out) == 0 {
		return Mapping{}, fmt.Errorf("case mapping of %U is empty", r)
	}
	return Mapping{Src: src, Out: out}, nil
}
