package dashboard

import (
	"testing"

	"github.com/smileynet/agenda/internal/app"
	"github.com/smileynet/agenda/internal/contact"
)

func TestViewConfirm_ShowsPrompt(t *testing.T) {
	p := app.DeletePrompt{Contact: contact.Contact{Name: "Caio", Number: "3133334444", Category: contact.CategoryWork}}

	view := viewConfirm(p)

	for _, want := range []string{"Delete contact?", `"Caio"`, "[C]", "3133334444 - work", "[Esc] Cancel"} {
		if !containsPlainText(view, want) {
			t.Errorf("viewConfirm() should contain %q, got:\n%s", want, stripANSI(view))
		}
	}
}

func TestViewNotice_ShowsMessage(t *testing.T) {
	view := viewNotice("Name and Number are required.")

	for _, want := range []string{"Error", "Name and Number are required.", "any key"} {
		if !containsPlainText(view, want) {
			t.Errorf("viewNotice() should contain %q", want)
		}
	}
}

func TestStepCategory(t *testing.T) {
	tests := []struct {
		current string
		delta   int
		want    contact.Category
	}{
		{"work", 1, contact.CategoryPersonal},
		{"family", 1, contact.CategoryWork},
		{"work", -1, contact.CategoryFamily},
		{"Personal", -1, contact.CategoryWork},
		{"", 1, contact.DefaultCategory},
		{"friends", -1, contact.DefaultCategory},
	}
	for _, tt := range tests {
		if got := stepCategory(tt.current, tt.delta); got != tt.want {
			t.Errorf("stepCategory(%q, %d) = %q, want %q", tt.current, tt.delta, got, tt.want)
		}
	}
}

func TestViewCategories_MarksSelected(t *testing.T) {
	got := viewCategories("work")
	if !containsPlainText(got, "(•) Work") {
		t.Errorf("viewCategories(work) = %q, want Work selected", got)
	}
	if containsPlainText(got, "(•) Family") {
		t.Errorf("viewCategories(work) = %q, Family should not be selected", got)
	}
}
