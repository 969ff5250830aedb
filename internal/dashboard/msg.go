// Package dashboard implements the contact screen TUI: a contact list with
// a detail pane, a modal form for adding and editing, a delete confirmation
// prompt, and a blocking validation notice. All data lives in an app.State
// owned by the caller.
package dashboard

import "github.com/smileynet/agenda/internal/contact"

// Mode represents the current screen mode.
type Mode int

const (
	ModeBrowse  Mode = iota // Browsing the contact list.
	ModeFilter              // Typing a list filter query.
	ModeForm                // Form modal open (new or edit).
	ModeNotice              // Blocking notice shown over the open form.
	ModeConfirm             // Delete confirmation prompt.
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeFilter:
		return "filter"
	case ModeForm:
		return "form"
	case ModeNotice:
		return "notice"
	case ModeConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// --- tea.Msg types ---

// ContactSavedMsg reports a successful form submission.
type ContactSavedMsg struct {
	Contact contact.Contact
	Edited  bool
}

// ContactDeletedMsg reports a confirmed delete.
type ContactDeletedMsg struct {
	Contact contact.Contact
}
