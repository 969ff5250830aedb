package dashboard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/agenda/internal/app"
	"github.com/smileynet/agenda/internal/form"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// headerHeight is the number of lines used by the title line.
const headerHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the root Bubble Tea model for the contact screen.
// It routes input by mode and renders the list, detail pane and modals.
type Model struct {
	state  *app.State
	mode   Mode
	width  int
	height int
	browse browseState
	editor editorState
	notice string
	status string
	help   help.Model

	browseKeys  browseKeys
	filterKeys  filterKeys
	formKeys    formKeys
	confirmKeys confirmKeys
}

// NewModel creates a Model in browse mode over state.
// A nil state is replaced by an empty one.
func NewModel(state *app.State) Model {
	if state == nil {
		state = app.New()
	}
	return Model{
		state:       state,
		mode:        ModeBrowse,
		browse:      newBrowseState().refresh(state.Store()),
		editor:      newEditorState(),
		help:        help.New(),
		browseKeys:  BrowseKeyMap(),
		filterKeys:  FilterKeyMap(),
		formKeys:    FormKeyMap(),
		confirmKeys: ConfirmKeyMap(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current screen mode.
func (m Model) Mode() Mode {
	return m.mode
}

// State returns the application state driven by the model.
func (m Model) State() *app.State {
	return m.state
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// Notice returns the text of the blocking notice, empty when none is shown.
func (m Model) Notice() string {
	if m.mode != ModeNotice {
		return ""
	}
	return m.notice
}

// SelectedIndex returns the store index under the list cursor, or -1.
func (m Model) SelectedIndex() int {
	return m.browse.SelectedIndex()
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ContactSavedMsg:
		verb := "Added"
		if msg.Edited {
			verb = "Saved"
		}
		m.status = fmt.Sprintf("%s %s", verb, msg.Contact.Name)
		return m, nil

	case ContactDeletedMsg:
		m.status = fmt.Sprintf("Deleted %s", msg.Contact.Name)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other widget messages.
	var cmd tea.Cmd
	switch m.mode {
	case ModeFilter:
		m.browse.filter, cmd = m.browse.filter.Update(msg)
	case ModeForm:
		m.editor, cmd = m.editor.updateCursor(msg)
	}
	return m, cmd
}

// handleKey processes key messages with global and mode-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeFilter:
		return m.handleFilterKey(msg)
	case ModeForm:
		return m.handleFormKey(msg)
	case ModeNotice:
		// Any key dismisses; the draft is still open behind the notice.
		m.mode = ModeForm
		m.notice = ""
		return m, nil
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.browseKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.browseKeys.Up), key.Matches(msg, m.browseKeys.Down):
		m.browse = m.browse.handleKey(msg)

	case key.Matches(msg, m.browseKeys.New):
		m.state.OpenForNew()
		return m.openForm()

	case key.Matches(msg, m.browseKeys.Edit):
		i := m.browse.SelectedIndex()
		if i < 0 {
			return m, nil
		}
		if err := m.state.OpenForEdit(i); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m.openForm()

	case key.Matches(msg, m.browseKeys.Delete):
		i := m.browse.SelectedIndex()
		if i < 0 {
			return m, nil
		}
		if _, err := m.state.RequestDelete(i); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = ModeConfirm

	case key.Matches(msg, m.browseKeys.Filter):
		m.mode = ModeFilter
		var cmd tea.Cmd
		m.browse, cmd = m.browse.startFilter()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.filterKeys.Apply):
		m.browse = m.browse.stopFilter(m.state.Store(), false)
		m.mode = ModeBrowse
		return m, nil
	case key.Matches(msg, m.filterKeys.Clear):
		m.browse = m.browse.stopFilter(m.state.Store(), true)
		m.mode = ModeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.browse, cmd = m.browse.updateFilter(msg, m.state.Store())
	return m, cmd
}

// openForm mirrors the freshly opened draft into the editor widgets.
func (m Model) openForm() (tea.Model, tea.Cmd) {
	m.mode = ModeForm
	var cmd tea.Cmd
	m.editor, cmd = m.editor.load(m.state.Form().Draft())
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.state.CloseForm()
		m.mode = ModeBrowse
		return m, nil

	case key.Matches(msg, m.formKeys.Submit):
		return m.submit()

	case key.Matches(msg, m.formKeys.Next):
		m.editor, cmd = m.editor.cycle(1)
		return m, cmd

	case key.Matches(msg, m.formKeys.Prev):
		m.editor, cmd = m.editor.cycle(-1)
		return m, cmd
	}
	m.editor, cmd = m.editor.handleKey(msg, m.state)
	return m, cmd
}

// submit commits the form. Validation failures raise the blocking notice
// and keep the form open; other failures close the form and report on the
// status line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	edited := m.state.Form().State() == form.StateEdit
	c, err := m.state.Submit()
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			m.notice = verr.Message()
			m.mode = ModeNotice
			return m, nil
		}
		m.state.CloseForm()
		m.mode = ModeBrowse
		m.status = err.Error()
		m.browse = m.browse.refresh(m.state.Store())
		return m, nil
	}

	m.mode = ModeBrowse
	m.browse = m.browse.refresh(m.state.Store())
	m.browse = m.browse.selectIndex(m.state.Store().IndexOf(c.ID))
	return m, func() tea.Msg {
		return ContactSavedMsg{Contact: c, Edited: edited}
	}
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmKeys.Confirm):
		removed, err := m.state.ConfirmDelete()
		m.mode = ModeBrowse
		m.browse = m.browse.refresh(m.state.Store())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, func() tea.Msg {
			return ContactDeletedMsg{Contact: removed}
		}

	case key.Matches(msg, m.confirmKeys.Cancel):
		m.state.CancelDelete()
		m.mode = ModeBrowse
	}
	return m, nil
}

// contentHeight returns the usable height for pane content,
// accounting for the header, border chrome and the help bar.
func (m Model) contentHeight() int {
	h := m.height - headerHeight - borderChrome - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the header, the two-pane layout or the active modal, and
// the help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := titleText.Render(fmt.Sprintf("Contacts (%d)", m.state.Store().Len()))
	if m.status != "" {
		header += "  " + statusText.Render(m.status)
	}

	var body string
	if modal, ok := m.viewModal(); ok {
		body = lipgloss.Place(m.width, m.contentHeight()+borderChrome,
			lipgloss.Center, lipgloss.Center, DialogBorder().Render(modal))
	} else {
		body = m.viewPanes()
	}
	helpView := m.help.View(HelpBindings(m.mode))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, helpView)
}

// viewPanes renders the contact list and the detail pane side by side.
func (m Model) viewPanes() string {
	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	leftStyle := FocusedBorder().
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle := UnfocusedBorder().
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	store := m.state.Store()
	leftPane := leftStyle.Render(m.browse.View(store, leftWidth-borderChrome, contentHeight, m.mode == ModeFilter))
	rightPane := rightStyle.Render(viewDetail(store, m.browse.SelectedIndex()))
	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

// viewModal returns the body of the active modal, if any.
func (m Model) viewModal() (string, bool) {
	switch m.mode {
	case ModeForm:
		f := m.state.Form()
		return m.editor.View(f.Draft(), f.State() == form.StateEdit), true
	case ModeNotice:
		return viewNotice(m.notice), true
	case ModeConfirm:
		if p, ok := m.state.PendingDelete(); ok {
			return viewConfirm(p), true
		}
	}
	return "", false
}
