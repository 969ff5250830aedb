package dashboard

import (
	"fmt"
	"strings"

	"github.com/smileynet/agenda/internal/app"
)

// viewConfirm renders the delete confirmation prompt.
func viewConfirm(p app.DeletePrompt) string {
	var b strings.Builder
	b.WriteString(titleText.Render(p.Title()))
	fmt.Fprintf(&b, "\n\n  %s\n", p.Message())
	fmt.Fprintf(&b, "\n  %s  %s", Avatar(p.Contact.Name), p.Contact.Description())
	b.WriteString("\n\n  This cannot be undone.")
	b.WriteString("\n\n  [Enter] Delete   [Esc] Cancel")
	return b.String()
}

// viewNotice renders the blocking error notice.
func viewNotice(text string) string {
	var b strings.Builder
	b.WriteString(errorText.Render("Error"))
	fmt.Fprintf(&b, "\n\n  %s", text)
	b.WriteString("\n\n  [any key] OK")
	return b.String()
}
