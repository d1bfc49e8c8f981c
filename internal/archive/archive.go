// Package archive filters the full content set for browsing. Filtering is a
// pure function of (records, activeTag, query); the caller re-runs it on
// every input change and redraws from scratch.
package archive

import (
	"sort"
	"strings"

	"github.com/ponderhq/ponder/internal/thought"
)

// Tags returns the sorted distinct tag set across all records.
func Tags(records []thought.Thought) []string {
	seen := map[string]struct{}{}
	for _, r := range records {
		for _, tag := range r.Tags {
			seen[tag] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Filter returns the records matching both the active tag and the query, in
// original record order. An empty tag matches everything; an empty (or
// all-whitespace) query matches everything.
func Filter(records []thought.Thought, activeTag, query string) []thought.Thought {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]thought.Thought, 0, len(records))
	for _, r := range records {
		if textMatch(r, q) && tagMatch(r, activeTag) {
			out = append(out, r)
		}
	}
	return out
}

// textMatch is a case-insensitive substring test against the body or the
// reflection; either field matching includes the record.
func textMatch(r thought.Thought, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Text), q) ||
		strings.Contains(strings.ToLower(r.Reflection), q)
}

func tagMatch(r thought.Thought, tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
