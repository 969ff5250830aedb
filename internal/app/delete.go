package app

import (
	"fmt"

	"github.com/smileynet/agenda/internal/contact"
)

// DeletePrompt is the confirmation shown before a contact is removed.
type DeletePrompt struct {
	Contact contact.Contact
}

// Title returns the prompt heading.
func (p DeletePrompt) Title() string {
	return "Delete contact?"
}

// Message returns the prompt body naming the contact.
func (p DeletePrompt) Message() string {
	return fmt.Sprintf("Do you really want to delete %q?", p.Contact.Name)
}

// RequestDelete starts the two-step delete of the contact at index i.
// Nothing is removed until ConfirmDelete.
func (s *State) RequestDelete(i int) (DeletePrompt, error) {
	c, err := s.store.At(i)
	if err != nil {
		return DeletePrompt{}, fmt.Errorf("app: request delete: %w", err)
	}
	s.pending = &DeletePrompt{Contact: c}
	s.log.Debug("delete requested", "index", i, "id", c.ID)
	return *s.pending, nil
}

// PendingDelete returns the prompt awaiting confirmation, if any.
func (s *State) PendingDelete() (DeletePrompt, bool) {
	if s.pending == nil {
		return DeletePrompt{}, false
	}
	return *s.pending, true
}

// CancelDelete drops the pending confirmation. The store is unchanged.
func (s *State) CancelDelete() {
	if s.pending != nil {
		s.log.Debug("delete cancelled", "id", s.pending.Contact.ID)
	}
	s.pending = nil
}

// ConfirmDelete removes the contact named by the pending prompt and returns
// it. The contact is located by ID, so the removal is exact even if indices
// shifted after the request.
func (s *State) ConfirmDelete() (contact.Contact, error) {
	if s.pending == nil {
		return contact.Contact{}, ErrNoPendingDelete
	}
	id := s.pending.Contact.ID
	s.pending = nil

	i := s.store.IndexOf(id)
	if i < 0 {
		return contact.Contact{}, fmt.Errorf("app: confirm delete %s: %w", id, contact.ErrIndexOutOfRange)
	}
	removed, err := s.store.RemoveAt(i)
	if err != nil {
		return contact.Contact{}, fmt.Errorf("app: confirm delete: %w", err)
	}
	s.log.Info("contact deleted", "id", removed.ID, "total", s.store.Len())
	return removed, nil
}
