package table

import (
	"sort"
	"strings"
)

// TermHit is one glossary term found in a piece of text, with its definition.
type TermHit struct {
	Term       string
	Definition string
}

// Terms scans text for glossary terms and returns the hits in order of first
// appearance. Longer terms win over shorter ones at the same position, and
// overlapping matches are skipped, so a term never matches again inside a
// region already consumed by a longer term.
func (t *Table) Terms(text string) []TermHit {
	if len(t.Glossary) == 0 || text == "" {
		return nil
	}

	// Longest-first so a term that is a prefix of another never shadows it.
	terms := make([]string, 0, len(t.Glossary))
	for term := range t.Glossary {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})

	type match struct {
		start, end int
		term       string
	}
	var matches []match
	for _, term := range terms {
		from := 0
		for {
			i := strings.Index(text[from:], term)
			if i < 0 {
				break
			}
			start := from + i
			matches = append(matches, match{start: start, end: start + len(term), term: term})
			from = start + len(term)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].end > matches[j].end
	})

	var hits []TermHit
	seen := make(map[string]bool)
	lastEnd := 0
	for _, m := range matches {
		if m.start < lastEnd {
			continue // overlaps an earlier (longer) match
		}
		lastEnd = m.end
		if seen[m.term] {
			continue
		}
		seen[m.term] = true
		hits = append(hits, TermHit{Term: m.term, Definition: t.Glossary[m.term]})
	}
	return hits
}
