package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func press(code rune) tea.Msg {
	return tea.KeyPressMsg{Code: code}
}

// typeRune presses a printable key, carrying the text the terminal
// would deliver.
func typeRune(r rune) tea.Msg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "first", Disabled: true},
		{Label: "second"},
		{Label: "third", Disabled: true},
		{Label: "fourth"},
	})

	if m.Selected != 1 {
		t.Fatalf("initial cursor = %d, want 1 (first enabled)", m.Selected)
	}

	m, _ = m.Update(press(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("down from 1 landed on %d, want 3", m.Selected)
	}

	m, _ = m.Update(press(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("down at the end moved to %d, want to stay at 3", m.Selected)
	}

	m, _ = m.Update(press(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("up from 3 landed on %d, want 1", m.Selected)
	}
}

func TestMenuEnterFiresAction(t *testing.T) {
	fired := false
	m := NewMenu([]MenuItem{
		{Label: "go", Action: func() tea.Cmd {
			fired = true
			return nil
		}},
	})

	m.Update(press(tea.KeyEnter))
	if !fired {
		t.Error("enter should fire the selected action")
	}
}

func TestMultiChoiceLocksAfterSubmit(t *testing.T) {
	q := NewMultiChoice("Which part stores energy?", []string{"Wire", "Battery", "Switch"}, 1)

	q, _ = q.Update(press(tea.KeyDown))
	q, _ = q.Update(press(tea.KeyEnter))

	if !q.Submitted || q.ChosenIndex != 1 {
		t.Fatalf("after submit: Submitted=%v ChosenIndex=%d", q.Submitted, q.ChosenIndex)
	}
	if !q.IsCorrect() {
		t.Error("battery is the right answer")
	}

	q, _ = q.Update(press(tea.KeyDown))
	if q.ChosenIndex != 1 {
		t.Errorf("submitted question moved cursor: ChosenIndex=%d", q.ChosenIndex)
	}
}

func TestMultiChoiceViewLettersOptions(t *testing.T) {
	q := NewMultiChoice("Pick one", []string{"volt", "amp", "ohm"}, 0)
	view := q.View()
	for _, want := range []string{"A)", "B)", "C)", "Pick one"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestProgressBarClampsPercent(t *testing.T) {
	over := NewProgressBar("", 1.5, false, 20).View()
	under := NewProgressBar("", -0.3, false, 20).View()
	if over == "" || under == "" {
		t.Fatal("bars should render at any percent")
	}
	// Width stays on budget even when percent runs past the ends.
	if w, want := len([]rune(stripANSI(over))), len([]rune(stripANSI(under))); w != want {
		t.Errorf("bar widths differ: %d vs %d", w, want)
	}
}

func TestTextInputCharLimit(t *testing.T) {
	in := NewTextInput("Your name", 4)
	for _, r := range "Rosalind" {
		in, _ = in.Update(typeRune(r))
	}
	if got := in.Value(); got != "Rosa" {
		t.Errorf("value = %q, want the 4-rune cap applied", got)
	}
}

// stripANSI removes color escape sequences so width checks see only
// the printed cells.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
