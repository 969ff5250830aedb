// Package form implements the contact form controller. It owns the draft
// bound to an open form and the edit target, sanitizes input as it is
// typed, and validates and normalizes the draft before committing it to a
// contact.Store.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/agenda/internal/contact"
)

// Field identifies an editable draft field.
type Field int

const (
	FieldName Field = iota
	FieldNumber
	FieldCategory
)

// String returns the lowercase field name.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldNumber:
		return "number"
	case FieldCategory:
		return "category"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Label returns the display label used in prompts and notices.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldNumber:
		return "Number"
	case FieldCategory:
		return "Category"
	default:
		return f.String()
	}
}

// Draft is the unvalidated contact data bound to an open form.
type Draft struct {
	Name     string
	Number   string
	Category string
}

// DefaultDraft returns the empty draft used for new contacts.
func DefaultDraft() Draft {
	return Draft{Category: string(contact.DefaultCategory)}
}

// DraftOf seeds a draft from a stored contact.
func DraftOf(c contact.Contact) Draft {
	return Draft{Name: c.Name, Number: c.Number, Category: string(c.Category)}
}

// ErrUnknownField is returned by UpdateField for a field outside the draft.
var ErrUnknownField = errors.New("form: unknown field")

// ValidationError reports draft fields that failed validation on submit.
type ValidationError struct {
	Fields []Field
}

// Error implements error.
func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.String()
	}
	return "form: invalid " + strings.Join(names, ", ")
}

// Has reports whether f failed validation.
func (e *ValidationError) Has(f Field) bool {
	for _, got := range e.Fields {
		if got == f {
			return true
		}
	}
	return false
}

// Message returns the user-facing notice text.
func (e *ValidationError) Message() string {
	if e.Has(FieldName) || e.Has(FieldNumber) {
		return "Name and Number are required."
	}
	if e.Has(FieldCategory) {
		labels := make([]string, len(contact.Categories))
		for i, c := range contact.Categories {
			labels[i] = c.Label()
		}
		return "Category must be one of " + strings.Join(labels, ", ") + "."
	}
	return "Invalid contact."
}

// Normalize trims name and number, trims and lowercases category, and
// returns the resulting contact. The draft is not modified. A missing name
// or number, a number that is not all digits, or a category outside the
// fixed set yields a *ValidationError.
func Normalize(d Draft) (contact.Contact, error) {
	name := strings.TrimSpace(d.Name)
	number := strings.TrimSpace(d.Number)

	var invalid []Field
	if name == "" {
		invalid = append(invalid, FieldName)
	}
	if !contact.IsNumber(number) {
		invalid = append(invalid, FieldNumber)
	}
	category, err := contact.ParseCategory(d.Category)
	if err != nil {
		invalid = append(invalid, FieldCategory)
	}
	if len(invalid) > 0 {
		return contact.Contact{}, &ValidationError{Fields: invalid}
	}

	return contact.Contact{Name: name, Number: number, Category: category}, nil
}
