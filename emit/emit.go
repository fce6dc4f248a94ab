package emit

import (
	"fmt"
	"io"

	"github.com/unicase/casegen/casemap"
)

// Type names the consuming C code declares the arrays with.
const (
	multiType  = "UnicodeConversionMultiChar"
	singleType = "UnicodeConversionSingleChar"
)

func macroDir(d casemap.Direction) string {
	if d == casemap.ToUpper {
		return "UPPERCASING"
	}
	return "LOWERCASING"
}

func arrayDir(d casemap.Direction) string {
	if d == casemap.ToUpper {
		return "uppercasing"
	}
	return "lowercasing"
}

// printer keeps the first write error and drops everything after it, so the
// emission below reads as a flat sequence of prints.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Tables renders one direction as C source: the multi-char table under the
// "Multiple chars." heading, then the single-char table under "Differences".
// Each array carries its size macro and sits between clang-format toggles so
// the generated rows never get reflowed. A table with no entries still gets
// its full frame.
func Tables(w io.Writer, d casemap.Direction, t casemap.Tables) error {
	p := &printer{w: w}

	p.printf("Multiple chars.\n")
	p.printf("// clang-format off\n")
	p.printf("#define NUM_%s_MULTICHAR_ENTRIES %d\n", macroDir(d), len(t.Multi))
	p.printf("const %s %s_multi[NUM_%s_MULTICHAR_ENTRIES] = {\n", multiType, arrayDir(d), macroDir(d))
	for _, e := range t.Multi {
		p.printf("    {%d, {%d, %d, %d}},\n", e.From, e.To[0], e.To[1], e.To[2])
	}
	p.printf("};\n")
	p.printf("// clang-format on\n")

	p.printf("\nDifferences\n")
	p.printf("// clang-format off\n")
	p.printf("#define NUM_%s_SINGLE_ENTRIES %d\n", macroDir(d), len(t.Single))
	p.printf("const %s %s_single[NUM_%s_SINGLE_ENTRIES] = {\n", singleType, arrayDir(d), macroDir(d))
	for _, e := range t.Single {
		p.printf("    {%d, %d},\n", e.From, e.To)
	}
	p.printf("};\n")
	p.printf("// clang-format on\n")

	return p.err
}
