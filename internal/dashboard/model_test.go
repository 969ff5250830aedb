package dashboard

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/smileynet/agenda/internal/app"
	"github.com/smileynet/agenda/internal/contact"
	"github.com/smileynet/agenda/internal/form"
)

func TestNewModel_DefaultMode(t *testing.T) {
	m := NewModel(nil)
	if m.Mode() != ModeBrowse {
		t.Errorf("mode = %s, want browse", m.Mode())
	}
	if m.State() == nil {
		t.Fatal("State() = nil, want an empty state")
	}
	if m.SelectedIndex() != -1 {
		t.Errorf("SelectedIndex() = %d, want -1 on empty list", m.SelectedIndex())
	}
}

func TestModel_QuitInBrowseMode(t *testing.T) {
	m := newSizedModel(nil, 100, 30)

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q in browse mode should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q command produced %T, want tea.QuitMsg", cmd())
	}
}

func TestModel_QTypesIntoForm(t *testing.T) {
	m := newSizedModel(nil, 100, 30)
	m = press(t, m, runes("n"))

	updated, _ := m.Update(runes("q"))
	m = updated.(Model)

	if m.Mode() != ModeForm {
		t.Fatalf("mode = %s, want form", m.Mode())
	}
	if got := m.State().Form().Draft().Name; got != "q" {
		t.Errorf("draft name = %q, want %q", got, "q")
	}
}

func TestModel_CtrlCQuitsFromForm(t *testing.T) {
	m := newSizedModel(nil, 100, 30)
	m = press(t, m, runes("n"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c command should produce tea.QuitMsg")
	}
}

func TestModel_WindowSizeMsg(t *testing.T) {
	m := NewModel(nil)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before sizing = %q, want Initializing...", got)
	}

	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.width != 120 || m.height != 50 {
		t.Errorf("size = %dx%d, want 120x50", m.width, m.height)
	}
}

func TestModel_EmptyListView(t *testing.T) {
	m := newSizedModel(nil, 100, 30)
	view := m.View()

	for _, want := range []string{"Contacts (0)", EmptyListText} {
		if !containsPlainText(view, want) {
			t.Errorf("View() should contain %q", want)
		}
	}
}

func TestModel_ListView(t *testing.T) {
	m := newSizedModel(sampleState(), 100, 30)
	view := m.View()

	for _, want := range []string{"Contacts (2)", "[A] Ana", "[B] Bia", CursorMarker + "[A]"} {
		if !containsPlainText(view, want) {
			t.Errorf("View() should contain %q", want)
		}
	}
}

func TestModel_CursorWraps(t *testing.T) {
	m := newSizedModel(sampleState(), 100, 30)

	m = press(t, m, runes("k"))
	if m.SelectedIndex() != 1 {
		t.Errorf("after k from top: selected = %d, want 1", m.SelectedIndex())
	}
	m = press(t, m, runes("j"))
	if m.SelectedIndex() != 0 {
		t.Errorf("after j from bottom: selected = %d, want 0", m.SelectedIndex())
	}
}

func TestModel_AddContact(t *testing.T) {
	m := newSizedModel(nil, 100, 30)

	m = press(t, m, runes("n"))
	if !containsPlainText(m.View(), "Add Contact") {
		t.Error("form should be titled Add Contact")
	}
	m = typeText(t, m, "Ana")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "11 9999-0000")

	if got := m.editor.number.Value(); got != "11999990000" {
		t.Errorf("number input = %q, want sanitized 11999990000", got)
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, updated.(Model), cmd)

	if m.Mode() != ModeBrowse {
		t.Fatalf("mode = %s, want browse", m.Mode())
	}
	all := m.State().Contacts()
	if len(all) != 1 {
		t.Fatalf("contacts = %d, want 1", len(all))
	}
	want := contact.Contact{ID: all[0].ID, Name: "Ana", Number: "11999990000", Category: contact.CategoryPersonal}
	if all[0] != want {
		t.Errorf("stored = %+v, want %+v", all[0], want)
	}
	if m.Status() != "Added Ana" {
		t.Errorf("status = %q, want %q", m.Status(), "Added Ana")
	}
}

func TestModel_NumberCappedWhileTyping(t *testing.T) {
	m := newSizedModel(nil, 100, 30)
	m = press(t, m, runes("n"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "1234567890123")

	if got := m.State().Form().Draft().Number; got != "12345678901" {
		t.Errorf("draft number = %q, want 12345678901", got)
	}
}

func TestModel_CategoryRadio(t *testing.T) {
	m := newSizedModel(nil, 100, 30)
	m = press(t, m, runes("n"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.State().Form().Draft().Category; got != string(contact.CategoryFamily) {
		t.Errorf("after right: category = %q, want family", got)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.State().Form().Draft().Category; got != string(contact.CategoryWork) {
		t.Errorf("after right wrap: category = %q, want work", got)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.State().Form().Draft().Category; got != string(contact.CategoryFamily) {
		t.Errorf("after left wrap: category = %q, want family", got)
	}
	if !containsPlainText(m.View(), "(•) Family") {
		t.Error("view should mark Family as selected")
	}
}

func TestModel_SubmitBlankShowsNotice(t *testing.T) {
	m := newSizedModel(nil, 100, 30)
	m = press(t, m, runes("n"))
	m = typeText(t, m, "Ana")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Mode() != ModeNotice {
		t.Fatalf("mode = %s, want notice", m.Mode())
	}
	if m.Notice() != "Name and Number are required." {
		t.Errorf("notice = %q", m.Notice())
	}
	if !containsPlainText(m.View(), "Name and Number are required.") {
		t.Error("view should show the notice text")
	}
	if m.State().Store().Len() != 0 {
		t.Error("store should be unchanged after a rejected submit")
	}

	// Any key returns to the form with the draft intact.
	m = press(t, m, runes("x"))
	if m.Mode() != ModeForm {
		t.Fatalf("after dismiss: mode = %s, want form", m.Mode())
	}
	if got := m.State().Form().Draft().Name; got != "Ana" {
		t.Errorf("draft name = %q, want Ana", got)
	}
}

func TestModel_EditContact(t *testing.T) {
	m := newSizedModel(sampleState(), 100, 30)
	m = press(t, m, runes("j"))
	m = press(t, m, runes("e"))

	if m.State().Form().State() != form.StateEdit {
		t.Fatalf("form state = %s, want open-edit", m.State().Form().State())
	}
	if !containsPlainText(m.View(), "Edit Contact") {
		t.Error("form should be titled Edit Contact")
	}
	if got := m.editor.name.Value(); got != "Bia" {
		t.Errorf("name input = %q, want Bia", got)
	}

	m = typeText(t, m, "na")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, updated.(Model), cmd)

	c, err := m.State().Store().At(1)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "Biana" || c.Category != contact.CategoryFamily {
		t.Errorf("edited = %+v", c)
	}
	if m.State().Store().Len() != 2 {
		t.Errorf("len = %d, want 2", m.State().Store().Len())
	}
	if m.Status() != "Saved Biana" {
		t.Errorf("status = %q", m.Status())
	}
}

func TestModel_CancelFormLeavesStore(t *testing.T) {
	state := sampleState()
	before := state.Contacts()
	m := newSizedModel(state, 100, 30)

	m = press(t, m, runes("e"))
	m = typeText(t, m, "zzz")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	if m.Mode() != ModeBrowse {
		t.Fatalf("mode = %s, want browse", m.Mode())
	}
	if m.State().Form().Visible() {
		t.Error("form should be closed")
	}
	after := state.Contacts()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("contact %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestModel_DeleteConfirm(t *testing.T) {
	m := newSizedModel(sampleState(), 100, 30)

	m = press(t, m, runes("d"))
	if m.Mode() != ModeConfirm {
		t.Fatalf("mode = %s, want confirm", m.Mode())
	}
	view := m.View()
	for _, want := range []string{"Delete contact?", `Do you really want to delete "Ana"?`} {
		if !containsPlainText(view, want) {
			t.Errorf("confirm view should contain %q", want)
		}
	}

	updated, cmd := m.Update(runes("y"))
	m = settle(t, updated.(Model), cmd)

	all := m.State().Contacts()
	if len(all) != 1 || all[0].Name != "Bia" {
		t.Errorf("contacts = %+v, want only Bia", all)
	}
	if m.Status() != "Deleted Ana" {
		t.Errorf("status = %q", m.Status())
	}
	if m.SelectedIndex() != 0 {
		t.Errorf("selected = %d, want 0", m.SelectedIndex())
	}
}

func TestModel_DeleteCancel(t *testing.T) {
	m := newSizedModel(sampleState(), 100, 30)

	m = press(t, m, runes("d"))
	m = press(t, m, runes("n"))

	if m.Mode() != ModeBrowse {
		t.Fatalf("mode = %s, want browse", m.Mode())
	}
	if m.State().Store().Len() != 2 {
		t.Error("cancel should keep both contacts")
	}
	if _, ok := m.State().PendingDelete(); ok {
		t.Error("pending delete should be cleared")
	}
}

func TestModel_ActionsIgnoredOnEmptyList(t *testing.T) {
	m := newSizedModel(nil, 100, 30)

	for _, k := range []string{"e", "d"} {
		m = press(t, m, runes(k))
		if m.Mode() != ModeBrowse {
			t.Errorf("%s on empty list: mode = %s, want browse", k, m.Mode())
		}
	}
}

func TestModel_Filter(t *testing.T) {
	m := newSizedModel(sampleState(), 100, 30)

	m = press(t, m, runes("/"))
	if m.Mode() != ModeFilter {
		t.Fatalf("mode = %s, want filter", m.Mode())
	}
	m = typeText(t, m, "bia")
	if m.SelectedIndex() != 1 {
		t.Errorf("selected = %d, want 1 (Bia)", m.SelectedIndex())
	}
	if containsPlainText(m.View(), "[A] Ana") {
		t.Error("filtered view should hide Ana")
	}

	// Edit acts on the filtered row's store index.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, runes("e"))
	if got := m.State().Form().EditIndex(); got != 1 {
		t.Errorf("edit index = %d, want 1", got)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	m = press(t, m, runes("/"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !containsPlainText(m.View(), "[A] Ana") {
		t.Error("clearing the filter should show Ana again")
	}
}

func TestModel_HelpBarReflectsMode(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		wantText string
	}{
		{"browse", nil, "new contact"},
		{"form", []tea.KeyMsg{runes("n")}, "next field"},
		{"confirm", []tea.KeyMsg{runes("d")}, "cancel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSizedModel(sampleState(), 120, 30)
			for _, k := range tt.keys {
				m = press(t, m, k)
			}
			if !containsPlainText(m.View(), tt.wantText) {
				t.Errorf("View() should contain %q", tt.wantText)
			}
		})
	}
}

// TestModel_Teatest_AddAndDelete drives a full session through a running program.
func TestModel_Teatest_AddAndDelete(t *testing.T) {
	state := app.New()
	m := NewModel(state)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))

	tm.Type("n")
	tm.Type("Ana")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("11 9999-0000")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	tm.Type("n")
	tm.Type("Bia")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("21888877770")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	// Cursor is on Bia after the add; move to Ana and delete her.
	tm.Type("k")
	tm.Type("d")
	tm.Type("y")
	tm.Type("q")

	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	if final.Mode() != ModeBrowse {
		t.Errorf("final mode = %s, want browse", final.Mode())
	}
	all := final.State().Contacts()
	if len(all) != 1 {
		t.Fatalf("contacts = %+v, want one", all)
	}
	if all[0].Name != "Bia" || all[0].Number != "21888877770" || all[0].Category != contact.CategoryFamily {
		t.Errorf("remaining = %+v, want Bia/21888877770/family", all[0])
	}
}
