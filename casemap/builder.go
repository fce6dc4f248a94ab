package casemap

import "fmt"

// SingleEntry records a conversion to exactly one differing code point.
type SingleEntry struct {
	From rune
	To   rune
}

// MultiEntry records a conversion that expands to several code points.
// Slots past the mapping's true length stay zero.
type MultiEntry struct {
	From rune
	To   [MaxExpansion]rune
}

// Tables holds the two lookup shapes for one direction, each in ascending
// From order.
type Tables struct {
	Multi  []MultiEntry
	Single []SingleEntry
}

// Builder produces the lookup tables for one direction.
type Builder struct {
	dir Direction

	// mapFn stands in for Converter.Map in tests.
	mapFn func(rune) (Mapping, error)
}

func NewBuilder(d Direction) *Builder {
	return &Builder{dir: d, mapFn: NewConverter(d).Map}
}

// Build scans the code point space twice: the first pass records every
// mapping that changes the code point count (ASCII included), the second
// every mapping to a single differing code point outside ASCII. Entries come
// out ascending by From because the scans themselves ascend. Any mapping
// wider than MaxExpansion aborts the build.
func (b *Builder) Build() (Tables, error) {
	var t Tables

	for r := rune(0); r < CodeSpace; r++ {
		m, err := b.mapFn(r)
		if err != nil {
			return Tables{}, err
		}
		if !m.Expands() {
			continue
		}
		if len(m.Out) == 0 {
			return Tables{}, fmt.Errorf("case mapping of %U is empty", r)
		}
		if len(m.Out) > MaxExpansion {
			return Tables{}, fmt.Errorf("case mapping of %U has %d code points, table slots hold %d",
				r, len(m.Out), MaxExpansion)
		}
		e := MultiEntry{From: r}
		copy(e.To[:], m.Out)
		t.Multi = append(t.Multi, e)
	}

	for r := rune(ASCIIEnd); r < CodeSpace; r++ {
		m, err := b.mapFn(r)
		if err != nil {
			return Tables{}, err
		}
		if m.Expands() || m.Self() {
			continue
		}
		t.Single = append(t.Single, SingleEntry{From: r, To: m.Out[0]})
	}

	return t, nil
}

// Build generates the tables for one direction from the library case data.
func Build(d Direction) (Tables, error) {
	return NewBuilder(d).Build()
}
