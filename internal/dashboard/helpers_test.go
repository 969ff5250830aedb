package dashboard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/agenda/internal/app"
	"github.com/smileynet/agenda/internal/contact"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// runes builds a key message for typed characters.
func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg to m and returns the updated model. The returned command
// is discarded; tests that care about it call m.Update directly.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// typeText sends s to m one character at a time.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runes(string(r)))
	}
	return m
}

// settle runs cmd and feeds its message back into m. Only use it with
// commands that return immediately.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	return press(t, m, cmd())
}

// sampleState returns a state holding Ana (work) and Bia (family).
func sampleState() *app.State {
	return app.New(app.WithContacts(
		contact.Contact{Name: "Ana", Number: "11999990000", Category: contact.CategoryWork},
		contact.Contact{Name: "Bia", Number: "2188887777", Category: contact.CategoryFamily},
	))
}

// newSizedModel returns a model over state that has received a window size.
func newSizedModel(state *app.State, w, h int) Model {
	m := NewModel(state)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}
