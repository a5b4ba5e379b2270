package hero

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Canonical normalizes a character name for use as a catalog key.
// Every name entering the system (file records, user input) goes through here.
func Canonical(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	// cases.Caser is stateful, so a fresh one per call keeps this safe for
	// concurrent handlers.
	return cases.Fold().String(trimmed)
}

// CanonicalNames canonicalizes each name and drops blanks. Repeats and order
// are kept.
func CanonicalNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if c := Canonical(n); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// CanonicalList canonicalizes each name, dropping blanks and repeats while
// keeping first-seen order.
func CanonicalList(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		c := Canonical(n)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// SplitNames splits whitespace separated user input into canonical names.
func SplitNames(text string) []string {
	return CanonicalNames(strings.Fields(text))
}

// NameSet is an unordered set of canonical names
type NameSet map[string]struct{}

// NewNameSet builds a set from already canonical names
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts a name
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports membership. Safe on a nil set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names
func (s NameSet) Len() int {
	return len(s)
}

// Union adds every name from other into s
func (s NameSet) Union(other NameSet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Clone returns an independent copy
func (s NameSet) Clone() NameSet {
	out := make(NameSet, len(s))
	out.Union(s)
	return out
}

// Sorted returns the names in lexicographic order
func (s NameSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
