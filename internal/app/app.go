// Package app holds the application state behind the contact screen: the
// contact store, the form controller, and the pending delete confirmation.
// The state is created and owned by the caller and passed to whatever drives
// it (the TUI, a test), so no rendering environment is needed to exercise it.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/smileynet/agenda/internal/contact"
	"github.com/smileynet/agenda/internal/form"
)

// ErrNoPendingDelete is returned by ConfirmDelete when nothing is awaiting
// confirmation.
var ErrNoPendingDelete = errors.New("app: no delete awaiting confirmation")

// State is the single owner of the contact screen's data.
// It is not safe for concurrent use; all calls come from one event loop.
type State struct {
	store   *contact.Store
	form    *form.Controller
	pending *DeletePrompt
	log     *slog.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger for state mutations.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// WithContacts preloads the store. Contacts are expected to be normalized.
func WithContacts(cs ...contact.Contact) Option {
	return func(s *State) {
		for _, c := range cs {
			s.store.Add(c)
		}
	}
}

// New returns an empty State with a closed form.
func New(opts ...Option) *State {
	store := contact.NewStore()
	s := &State{
		store: store,
		form:  form.NewController(store),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the contact store.
func (s *State) Store() *contact.Store {
	return s.store
}

// Form returns the form controller.
func (s *State) Form() *form.Controller {
	return s.form
}

// Contacts returns a copy of the stored contacts in display order.
func (s *State) Contacts() []contact.Contact {
	return s.store.All()
}

// OpenForNew opens the form for a new contact.
func (s *State) OpenForNew() {
	s.form.OpenForNew()
	s.log.Debug("form opened", "state", s.form.State())
}

// OpenForEdit opens the form on the contact at index i.
func (s *State) OpenForEdit(i int) error {
	if err := s.form.OpenForEdit(i); err != nil {
		return err
	}
	s.log.Debug("form opened", "state", s.form.State(), "index", i, "id", s.form.TargetID())
	return nil
}

// UpdateField forwards a field change to the form.
func (s *State) UpdateField(f form.Field, value string) error {
	return s.form.UpdateField(f, value)
}

// CloseForm cancels or dismisses the form without committing.
func (s *State) CloseForm() {
	if s.form.Visible() {
		s.log.Debug("form closed", "state", s.form.State())
	}
	s.form.Close()
}

// Submit commits the form draft. See form.Controller.Submit.
func (s *State) Submit() (contact.Contact, error) {
	mode := s.form.State()
	c, err := s.form.Submit()
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			s.log.Info("submit rejected", "fields", fmt.Sprint(verr.Fields))
		} else {
			s.log.Warn("submit failed", "error", err)
		}
		return contact.Contact{}, err
	}
	if mode == form.StateEdit {
		s.log.Info("contact updated", "id", c.ID, "category", c.Category)
	} else {
		s.log.Info("contact added", "id", c.ID, "category", c.Category, "total", s.store.Len())
	}
	return c, nil
}
