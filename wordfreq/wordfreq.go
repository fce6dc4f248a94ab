package wordfreq

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
)

// Entry is one distinct word and how often it occurred.
type Entry struct {
	Word  string
	Count int
}

// Count tallies whitespace-separated words from r.
func Count(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		counts[sc.Text()]++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning words: %w", err)
	}

	return counts, nil
}

// Sorted flattens counts ordered by count descending; equal counts order by
// word descending.
func Sorted(counts map[string]int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, Entry{Word: word, Count: count})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(b.Word, a.Word)
	})

	return entries
}
