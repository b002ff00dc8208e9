package domain

import "sort"

// Entry is one row of a frequency table.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Table maps words to their occurrence counts. Entries are kept in ascending
// byte-wise order of the word. The zero value is an empty table.
//
// A Table is read-only once built; accessors hand out copies.
type Table struct {
	entries []Entry
	counts  map[string]int
}

// Aggregate counts the occurrences of each word.
func Aggregate(words []string) Table {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	entries := make([]Entry, 0, len(counts))
	for w, c := range counts {
		entries = append(entries, Entry{Word: w, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})

	return Table{entries: entries, counts: counts}
}

// Entries returns the table rows in lexicographic order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t Table) Len() int {
	return len(t.entries)
}

// Count returns the number of occurrences of word.
func (t Table) Count(word string) (int, bool) {
	c, ok := t.counts[word]
	return c, ok
}

// Total is the number of words that were aggregated.
func (t Table) Total() int {
	n := 0
	for _, e := range t.entries {
		n += e.Count
	}
	return n
}

// MaxOccurrences returns every entry whose count equals the highest count in
// the table, in the table's order. An empty table yields an empty result.
func MaxOccurrences(t Table) []Entry {
	max := 0
	for _, e := range t.entries {
		if e.Count > max {
			max = e.Count
		}
	}

	out := []Entry{}
	for _, e := range t.entries {
		if e.Count == max {
			out = append(out, e)
		}
	}
	return out
}
