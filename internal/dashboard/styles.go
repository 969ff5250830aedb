package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/agenda/internal/contact"
)

// MinLeftWidth is the minimum character width for the left pane.
const MinLeftWidth = 28

// Category badge colors. Unknown categories render gray.
var categoryColors = map[contact.Category]lipgloss.AdaptiveColor{
	contact.CategoryWork:     {Light: "4", Dark: "12"},   // blue
	contact.CategoryPersonal: {Light: "2", Dark: "10"},   // green
	contact.CategoryFamily:   {Light: "208", Dark: "208"}, // orange
}

var grayColor = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}

// accentColor highlights avatars, the status line and dialogs.
var accentColor = lipgloss.AdaptiveColor{Light: "161", Dark: "204"}

var (
	mutedText    = lipgloss.NewStyle().Foreground(grayColor)
	titleText    = lipgloss.NewStyle().Bold(true)
	errorText    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}).Bold(true)
	statusText   = lipgloss.NewStyle().Foreground(accentColor)
	avatar       = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	focusedLabel = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}).Bold(true)
)

// CategoryBadge returns the category name colored by category.
func CategoryBadge(c contact.Category) string {
	color, ok := categoryColors[c]
	if !ok {
		color = grayColor
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(c))
}

// Avatar returns the bracketed initial for a contact name, e.g. "[A]".
func Avatar(name string) string {
	return avatar.Render("[" + contact.Initial(name) + "]")
}

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// DialogBorder returns the style for modal dialogs (form, prompt, notice).
func DialogBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(1, 2)
}

// PaneWidths calculates the left and right pane widths from a total width.
// Left pane gets 1/3 (minimum MinLeftWidth), right pane gets the rest.
func PaneWidths(totalWidth int) (left, right int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	left = totalWidth / 3
	if left < MinLeftWidth {
		left = MinLeftWidth
	}
	right = totalWidth - left
	if right < 0 {
		right = 0
	}
	return left, right
}
