package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/agenda/internal/app"
	"github.com/smileynet/agenda/internal/contact"
	"github.com/smileynet/agenda/internal/form"
)

// formFocus identifies the focused form control.
type formFocus int

const (
	focusName formFocus = iota
	focusNumber
	focusCategory
	focusCount
)

// formInputWidth is the visible width of the text inputs.
const formInputWidth = 30

// editorState holds the widgets of the form modal. The draft itself lives
// in the form controller; widgets only mirror it.
type editorState struct {
	name   textinput.Model
	number textinput.Model
	focus  formFocus
}

func newEditorState() editorState {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Name"
	name.Width = formInputWidth

	number := textinput.New()
	number.Prompt = ""
	number.Placeholder = "digits only"
	number.Width = formInputWidth

	return editorState{name: name, number: number}
}

// load mirrors d into the widgets and focuses the name input.
func (es editorState) load(d form.Draft) (editorState, tea.Cmd) {
	es.name.SetValue(d.Name)
	es.name.CursorEnd()
	es.number.SetValue(d.Number)
	es.number.CursorEnd()
	return es.setFocus(focusName)
}

// setFocus moves keyboard focus to f.
func (es editorState) setFocus(f formFocus) (editorState, tea.Cmd) {
	es.focus = f
	es.name.Blur()
	es.number.Blur()
	switch f {
	case focusName:
		return es, es.name.Focus()
	case focusNumber:
		return es, es.number.Focus()
	}
	return es, nil
}

// cycle moves focus by delta, wrapping.
func (es editorState) cycle(delta int) (editorState, tea.Cmd) {
	next := (int(es.focus) + delta + int(focusCount)) % int(focusCount)
	return es.setFocus(formFocus(next))
}

// handleKey routes a key to the focused control and pushes the resulting
// value into the form controller. The number input is rewritten with the
// sanitized draft value after every keystroke.
func (es editorState) handleKey(msg tea.KeyMsg, state *app.State) (editorState, tea.Cmd) {
	var cmd tea.Cmd
	switch es.focus {
	case focusName:
		es.name, cmd = es.name.Update(msg)
		_ = state.UpdateField(form.FieldName, es.name.Value())

	case focusNumber:
		es.number, cmd = es.number.Update(msg)
		_ = state.UpdateField(form.FieldNumber, es.number.Value())
		if clean := state.Form().Draft().Number; clean != es.number.Value() {
			es.number.SetValue(clean)
		}

	case focusCategory:
		switch msg.String() {
		case "left", "h":
			_ = state.UpdateField(form.FieldCategory, string(stepCategory(state.Form().Draft().Category, -1)))
		case "right", "l", " ":
			_ = state.UpdateField(form.FieldCategory, string(stepCategory(state.Form().Draft().Category, 1)))
		}
	}
	return es, cmd
}

// updateCursor forwards non-key messages (cursor blink) to the focused input.
func (es editorState) updateCursor(msg tea.Msg) (editorState, tea.Cmd) {
	var cmd tea.Cmd
	switch es.focus {
	case focusName:
		es.name, cmd = es.name.Update(msg)
	case focusNumber:
		es.number, cmd = es.number.Update(msg)
	}
	return es, cmd
}

// stepCategory returns the category delta positions away from current,
// wrapping. An unrecognized current value starts from the default.
func stepCategory(current string, delta int) contact.Category {
	n := len(contact.Categories)
	pos := -1
	if c, err := contact.ParseCategory(current); err == nil {
		for i, cat := range contact.Categories {
			if cat == c {
				pos = i
			}
		}
	}
	if pos < 0 {
		return contact.DefaultCategory
	}
	return contact.Categories[(pos+delta+n)%n]
}

// View renders the form modal body.
func (es editorState) View(d form.Draft, editing bool) string {
	title, submit := "Add Contact", "Add"
	if editing {
		title, submit = "Edit Contact", "Save"
	}

	var b strings.Builder
	b.WriteString(titleText.Render(title))
	b.WriteString("\n\n")
	b.WriteString(es.label("Name", focusName))
	b.WriteString("\n" + es.name.View() + "\n\n")
	b.WriteString(es.label("Number", focusNumber))
	fmt.Fprintf(&b, " %s", mutedText.Render(fmt.Sprintf("%d/%d", len(d.Number), contact.MaxNumberLen)))
	b.WriteString("\n" + es.number.View() + "\n\n")
	b.WriteString(es.label("Category", focusCategory))
	b.WriteString("\n" + viewCategories(d.Category))
	fmt.Fprintf(&b, "\n\n  [Esc] Cancel   [Enter] %s", submit)
	return b.String()
}

func (es editorState) label(text string, f formFocus) string {
	if es.focus == f {
		return focusedLabel.Render(text)
	}
	return text
}

// viewCategories renders the category radio row.
func viewCategories(current string) string {
	selected, _ := contact.ParseCategory(current)
	parts := make([]string, len(contact.Categories))
	for i, c := range contact.Categories {
		mark := "( )"
		if c == selected {
			mark = "(•)"
		}
		parts[i] = mark + " " + c.Label()
	}
	return strings.Join(parts, "   ")
}
