package form

import (
	"errors"
	"fmt"

	"github.com/smileynet/agenda/internal/contact"
)

// State is the form's lifecycle state.
type State int

const (
	StateClosed State = iota // No form shown.
	StateNew                 // Form open for a new contact.
	StateEdit                // Form open to replace an existing contact.
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateNew:
		return "open-new"
	case StateEdit:
		return "open-edit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrNotOpen is returned when editing or submitting a closed form.
	ErrNotOpen = errors.New("form: not open")
	// ErrTargetGone is returned on submit when the contact being edited
	// was removed from the store after the form opened.
	ErrTargetGone = errors.New("form: edit target no longer exists")
)

// Controller drives the contact form: closed, open-new, or open-edit.
// The edit target is captured by contact ID so it survives reordering of
// the store between open and submit.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	store    *contact.Store
	state    State
	draft    Draft
	targetID string
}

// NewController returns a closed Controller committing to store.
func NewController(store *contact.Store) *Controller {
	return &Controller{store: store, draft: DefaultDraft()}
}

// OpenForNew opens the form with a default draft and no edit target.
func (c *Controller) OpenForNew() {
	c.state = StateNew
	c.draft = DefaultDraft()
	c.targetID = ""
}

// OpenForEdit opens the form with a copy of the record at index i.
// The stored record is not touched until Submit succeeds.
func (c *Controller) OpenForEdit(i int) error {
	rec, err := c.store.At(i)
	if err != nil {
		return fmt.Errorf("form: open for edit: %w", err)
	}
	c.state = StateEdit
	c.draft = DraftOf(rec)
	c.targetID = rec.ID
	return nil
}

// UpdateField stores value into the draft field. Numbers are sanitized as
// they are typed: non-digits are dropped and the result is capped at
// contact.MaxNumberLen. Name and category are stored raw.
func (c *Controller) UpdateField(f Field, value string) error {
	if c.state == StateClosed {
		return ErrNotOpen
	}
	switch f {
	case FieldName:
		c.draft.Name = value
	case FieldNumber:
		c.draft.Number = contact.SanitizeNumber(value)
	case FieldCategory:
		c.draft.Category = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
	return nil
}

// Close hides the form, resets the draft, and clears the edit target.
func (c *Controller) Close() {
	c.state = StateClosed
	c.draft = DefaultDraft()
	c.targetID = ""
}

// Submit validates and normalizes the draft, then appends it (new) or
// replaces the edit target (edit) and closes the form. On any error the
// form stays open with the draft unchanged and the store is not modified.
func (c *Controller) Submit() (contact.Contact, error) {
	if c.state == StateClosed {
		return contact.Contact{}, ErrNotOpen
	}

	rec, err := Normalize(c.draft)
	if err != nil {
		return contact.Contact{}, err
	}

	switch c.state {
	case StateEdit:
		i := c.store.IndexOf(c.targetID)
		if i < 0 {
			return contact.Contact{}, ErrTargetGone
		}
		if err := c.store.ReplaceAt(i, rec); err != nil {
			return contact.Contact{}, fmt.Errorf("form: submit: %w", err)
		}
		rec, _ = c.store.At(i)
	default:
		rec = c.store.Add(rec)
	}

	c.Close()
	return rec, nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Visible reports whether the form is open.
func (c *Controller) Visible() bool {
	return c.state != StateClosed
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft {
	return c.draft
}

// TargetID returns the ID of the contact being edited, or "".
func (c *Controller) TargetID() string {
	return c.targetID
}

// EditIndex returns the current store index of the edit target,
// or -1 when the form is not in edit mode or the target is gone.
func (c *Controller) EditIndex() int {
	if c.state != StateEdit {
		return -1
	}
	return c.store.IndexOf(c.targetID)
}
