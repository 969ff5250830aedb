package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/agenda/internal/contact"
)

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

// EmptyListText is shown when the store holds no contacts.
const EmptyListText = "No contacts yet!"

// browseState manages the contact list cursor and the optional filter.
// Rows are store indices so that actions resolve to the right record
// even while a filter hides some contacts.
type browseState struct {
	visible []int
	cursor  int
	query   string
	filter  textinput.Model
}

func newBrowseState() browseState {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name, number or category"
	return browseState{filter: ti}
}

// refresh recomputes the visible rows from store and clamps the cursor.
func (bs browseState) refresh(store *contact.Store) browseState {
	bs.visible = store.Filter(bs.query)
	if bs.cursor >= len(bs.visible) {
		bs.cursor = len(bs.visible) - 1
	}
	if bs.cursor < 0 {
		bs.cursor = 0
	}
	return bs
}

// selectIndex moves the cursor to the row showing store index i, if visible.
func (bs browseState) selectIndex(i int) browseState {
	for row, idx := range bs.visible {
		if idx == i {
			bs.cursor = row
			return bs
		}
	}
	return bs
}

// SelectedIndex returns the store index under the cursor, or -1 when the
// list is empty.
func (bs browseState) SelectedIndex() int {
	if len(bs.visible) == 0 || bs.cursor < 0 || bs.cursor >= len(bs.visible) {
		return -1
	}
	return bs.visible[bs.cursor]
}

// handleKey moves the cursor, wrapping at both ends.
func (bs browseState) handleKey(msg tea.KeyMsg) browseState {
	switch msg.String() {
	case "up", "k":
		if len(bs.visible) > 0 {
			bs.cursor--
			if bs.cursor < 0 {
				bs.cursor = len(bs.visible) - 1
			}
		}
	case "down", "j":
		if len(bs.visible) > 0 {
			bs.cursor++
			if bs.cursor >= len(bs.visible) {
				bs.cursor = 0
			}
		}
	}
	return bs
}

// startFilter focuses the filter input, seeded with the current query.
func (bs browseState) startFilter() (browseState, tea.Cmd) {
	bs.filter.SetValue(bs.query)
	return bs, bs.filter.Focus()
}

// updateFilter forwards a key to the filter input and re-filters live.
func (bs browseState) updateFilter(msg tea.Msg, store *contact.Store) (browseState, tea.Cmd) {
	var cmd tea.Cmd
	bs.filter, cmd = bs.filter.Update(msg)
	bs.query = bs.filter.Value()
	bs.cursor = 0
	return bs.refresh(store), cmd
}

// stopFilter blurs the filter input. When clear is set the query is dropped.
func (bs browseState) stopFilter(store *contact.Store, clear bool) browseState {
	bs.filter.Blur()
	if clear {
		bs.query = ""
		bs.filter.SetValue("")
	}
	return bs.refresh(store)
}

// View renders the list pane content for the given dimensions.
func (bs browseState) View(store *contact.Store, width, height int, filtering bool) string {
	var b strings.Builder

	rows := height
	if filtering || bs.query != "" {
		if filtering {
			b.WriteString(bs.filter.View())
		} else {
			b.WriteString(mutedText.Render("filter: " + bs.query))
		}
		b.WriteString("\n")
		rows--
	}

	if store.Len() == 0 {
		b.WriteString(EmptyListText + "\n\n" + mutedText.Render("press n to add one"))
		return b.String()
	}
	if len(bs.visible) == 0 {
		b.WriteString(mutedText.Render(fmt.Sprintf("No contacts match %q", bs.query)))
		return b.String()
	}

	start := 0
	if rows > 0 && bs.cursor >= rows {
		start = bs.cursor - rows + 1
	}
	for row := start; row < len(bs.visible); row++ {
		if rows > 0 && row-start >= rows {
			break
		}
		if row > start {
			b.WriteByte('\n')
		}
		c, err := store.At(bs.visible[row])
		if err != nil {
			continue
		}
		if row == bs.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		b.WriteString(Avatar(c.Name) + " " + c.Name + "  " + mutedText.Render(c.Description()))
	}
	return b.String()
}

// viewDetail renders the right pane for the contact at store index i.
func viewDetail(store *contact.Store, i int) string {
	c, err := store.At(i)
	if err != nil {
		return mutedText.Render("Select a contact")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Avatar(c.Name), titleText.Render(c.Name))
	fmt.Fprintf(&b, "\n  %s\n", c.Description())
	fmt.Fprintf(&b, "\n  Number:   %s", c.Number)
	fmt.Fprintf(&b, "\n  Category: %s", CategoryBadge(c.Category))
	fmt.Fprintf(&b, "\n\n%s", mutedText.Render("id "+c.ID))
	return b.String()
}
