package emit

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicase/casegen/casemap"
)

func sampleTables() casemap.Tables {
	return casemap.Tables{
		Multi: []casemap.MultiEntry{
			{From: 0xDF, To: [casemap.MaxExpansion]rune{83, 83, 0}},
			{From: 0x390, To: [casemap.MaxExpansion]rune{921, 776, 769}},
		},
		Single: []casemap.SingleEntry{
			{From: 181, To: 924},
			{From: 257, To: 256},
		},
	}
}

func TestTablesUpperFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tables(&buf, casemap.ToUpper, sampleTables()))

	want := `Multiple chars.
// clang-format off
#define NUM_UPPERCASING_MULTICHAR_ENTRIES 2
const UnicodeConversionMultiChar uppercasing_multi[NUM_UPPERCASING_MULTICHAR_ENTRIES] = {
    {223, {83, 83, 0}},
    {912, {921, 776, 769}},
};
// clang-format on

Differences
// clang-format off
#define NUM_UPPERCASING_SINGLE_ENTRIES 2
const UnicodeConversionSingleChar uppercasing_single[NUM_UPPERCASING_SINGLE_ENTRIES] = {
    {181, 924},
    {257, 256},
};
// clang-format on
`
	assert.Equal(t, want, buf.String())
}

func TestTablesLowerNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tables(&buf, casemap.ToLower, casemap.Tables{}))

	out := buf.String()
	assert.Contains(t, out, "#define NUM_LOWERCASING_MULTICHAR_ENTRIES 0")
	assert.Contains(t, out, "#define NUM_LOWERCASING_SINGLE_ENTRIES 0")
	assert.Contains(t, out, "const UnicodeConversionMultiChar lowercasing_multi[NUM_LOWERCASING_MULTICHAR_ENTRIES] = {\n};")
	assert.Contains(t, out, "const UnicodeConversionSingleChar lowercasing_single[NUM_LOWERCASING_SINGLE_ENTRIES] = {\n};")
	assert.NotContains(t, out, "UPPERCASING")
}

func TestTablesCountsMatchRows(t *testing.T) {
	tabs := sampleTables()

	var buf bytes.Buffer
	require.NoError(t, Tables(&buf, casemap.ToLower, tabs))

	// every entry renders as exactly one indented row
	rows := strings.Count(buf.String(), "\n    {")
	assert.Equal(t, len(tabs.Multi)+len(tabs.Single), rows)
}

func TestTablesBothDirectionsConcatenate(t *testing.T) {
	tabs := sampleTables()

	var upper, lower, combined bytes.Buffer
	require.NoError(t, Tables(&upper, casemap.ToUpper, tabs))
	require.NoError(t, Tables(&lower, casemap.ToLower, tabs))
	require.NoError(t, Tables(&combined, casemap.ToUpper, tabs))
	require.NoError(t, Tables(&combined, casemap.ToLower, tabs))

	// a both run is two single runs back to back, no separator in between
	assert.Equal(t, upper.String()+lower.String(), combined.String())
	assert.Equal(t, 2, strings.Count(combined.String(), "Multiple chars.\n"))
	assert.Equal(t, 2, strings.Count(combined.String(), "\nDifferences\n"))
}

// failingWriter errors once its budget is spent.
type failingWriter struct {
	budget int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.budget <= 0 {
		return 0, errors.New("write refused")
	}
	w.budget -= len(p)
	return len(p), nil
}

func TestTablesWriterErrorPropagates(t *testing.T) {
	err := Tables(&failingWriter{budget: 40}, casemap.ToUpper, sampleTables())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write refused")
}
