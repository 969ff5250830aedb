package contact

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// fuzzyMinLen is the shortest query that is also matched with a one-edit
// tolerance against name words.
const fuzzyMinLen = 4

// Matches reports whether c satisfies the list filter query. Matching is
// case-insensitive: a substring of the name, a digit run inside the number,
// an exact category, or a name word within one edit of the query.
func Matches(c Contact, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	name := strings.ToLower(c.Name)
	if strings.Contains(name, q) {
		return true
	}
	if digits := SanitizeNumber(q); digits != "" && digits == q && strings.Contains(c.Number, digits) {
		return true
	}
	if string(c.Category) == q {
		return true
	}

	if len(q) < fuzzyMinLen {
		return false
	}
	for _, word := range strings.Fields(name) {
		if levenshtein.ComputeDistance(word, q) <= 1 {
			return true
		}
	}
	return false
}

// Filter returns the store indices of contacts matching query, in order.
func (s *Store) Filter(query string) []int {
	idx := make([]int, 0, len(s.contacts))
	for i, c := range s.contacts {
		if Matches(c, query) {
			idx = append(idx, i)
		}
	}
	return idx
}
