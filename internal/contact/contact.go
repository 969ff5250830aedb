// Package contact defines the contact record, its fixed category set and
// the ordered in-memory Store holding committed contacts.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNumberLen is the maximum number of digits a contact number may hold.
const MaxNumberLen = 11

// Category classifies a contact. Only the values in Categories are valid.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryFamily   Category = "family"
)

// DefaultCategory is the category preselected for new drafts.
const DefaultCategory = CategoryPersonal

// Categories lists every valid category in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryFamily}

// ErrUnknownCategory indicates a category outside the fixed set.
var ErrUnknownCategory = errors.New("contact: unknown category")

// ParseCategory trims and lowercases s and returns the matching Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryFamily:
		return true
	}
	return false
}

// Label returns the capitalized display label, e.g. "Work".
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(string(c))
	return string(unicode.ToUpper(r)) + string(c)[size:]
}

// Contact is a committed, normalized contact record.
type Contact struct {
	ID       string   `yaml:"id,omitempty"`
	Name     string   `yaml:"name"`
	Number   string   `yaml:"number"`
	Category Category `yaml:"category"`
}

// NewID returns a fresh contact identifier.
func NewID() string {
	return uuid.NewString()
}

// SanitizeNumber drops every rune that is not an ASCII digit and truncates
// the result to MaxNumberLen digits.
func SanitizeNumber(s string) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == MaxNumberLen {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsNumber reports whether s is a non-empty run of at most MaxNumberLen digits.
func IsNumber(s string) bool {
	if s == "" || len(s) > MaxNumberLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Initial returns the upper-cased first letter of name for avatar display,
// or "?" when name is blank.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// Description renders the secondary list line, "<number> - <category>".
func (c Contact) Description() string {
	return c.Number + " - " + string(c.Category)
}
