package main

import (
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/rangetable"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/unicase/casegen/casemap"
	"github.com/unicase/casegen/logger"
)

var (
	direction = kingpin.Flag("direction", "Conversion direction to inspect: upper or lower.").
		Default("lower").Enum("upper", "lower")
)

// report prints a row when the single-code-point mapping of r encodes to a
// different UTF-8 width than r itself. Expanding mappings belong to casegen's
// multi table and are not this tool's business.
func report(conv *casemap.Converter, r rune, script string) {
	m, err := conv.Map(r)
	if err != nil {
		logger.Fatal("can't map code point", zap.Int32("codepoint", int32(r)), zap.Error(err))
	}
	if m.Expands() || m.Self() {
		return
	}

	to := m.Out[0]
	fromWidth, toWidth := utf8.RuneLen(m.Src), utf8.RuneLen(to)
	if fromWidth == toWidth {
		return
	}

	fmt.Printf("| %c | %c | %U | %U | %d | %d | %s |\n", m.Src, to, m.Src, to, fromWidth, toWidth, script)
}

func main() {
	kingpin.Parse()

	d, err := casemap.ParseDirection(*direction)
	if err != nil {
		logger.Fatal("bad direction", zap.Error(err))
	}
	conv := casemap.NewConverter(d)

	fmt.Printf("| from | to | unicode from | unicode to | width from | width to | script |\n")
	fmt.Printf("| - | - | - | - | - | - | - |\n")
	names := make([]string, 0, len(unicode.Scripts))
	for name := range unicode.Scripts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		rangetable.Visit(unicode.Scripts[name], func(r rune) {
			report(conv, r, name)
		})
	}
}
