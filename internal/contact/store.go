package contact

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates an index outside the store's bounds.
var ErrIndexOutOfRange = errors.New("contact: index out of range")

// Store is an ordered sequence of contacts. Order is insertion order;
// replacing a record keeps its position and its ID.
//
// A Store is not safe for concurrent use. It is owned by a single event loop.
type Store struct {
	contacts []Contact
}

// NewStore returns a Store holding initial in order. Contacts without an ID
// are assigned one.
func NewStore(initial ...Contact) *Store {
	s := &Store{}
	for _, c := range initial {
		s.Add(c)
	}
	return s
}

// Add appends c to the end of the store and returns the stored record.
// The caller is responsible for validation.
func (s *Store) Add(c Contact) Contact {
	if c.ID == "" {
		c.ID = NewID()
	}
	s.contacts = append(s.contacts, c)
	return c
}

// ReplaceAt overwrites the record at i with c, preserving the existing ID.
func (s *Store) ReplaceAt(i int, c Contact) error {
	if err := s.check(i); err != nil {
		return err
	}
	c.ID = s.contacts[i].ID
	s.contacts[i] = c
	return nil
}

// RemoveAt deletes the record at i, shifting later records left,
// and returns the removed record.
func (s *Store) RemoveAt(i int) (Contact, error) {
	if err := s.check(i); err != nil {
		return Contact{}, err
	}
	removed := s.contacts[i]
	s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
	return removed, nil
}

// At returns a copy of the record at i.
func (s *Store) At(i int) (Contact, error) {
	if err := s.check(i); err != nil {
		return Contact{}, err
	}
	return s.contacts[i], nil
}

// Len returns the number of stored contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// All returns a copy of the stored sequence.
func (s *Store) All() []Contact {
	return append([]Contact(nil), s.contacts...)
}

// IndexOf returns the current position of the contact with the given ID,
// or -1 if no such contact exists.
func (s *Store) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, c := range s.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.contacts) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(s.contacts))
	}
	return nil
}
