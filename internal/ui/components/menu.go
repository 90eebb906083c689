package components

import tea "charm.land/bubbletea/v2"

// MenuItem is one entry in a navigation menu. Disabled entries are
// skipped by the cursor and never fire their Action.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu tracks cursor movement over a list of items. It carries no
// rendering; screens draw the menu in their own layout and read
// Selected for the cursor position.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.seek(0, 1)
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// Update moves the cursor on up/down (and vi keys) and fires the
// selected item's action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.Selected = m.seek(m.Selected-1, -1)
	case "down", "j":
		m.Selected = m.seek(m.Selected+1, 1)
	case "enter":
		if item, ok := m.current(); ok && item.Action != nil {
			return m, item.Action()
		}
	}
	return m, nil
}

func (m Menu) current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	item := m.Items[m.Selected]
	return item, !item.Disabled
}

// seek walks from start in the given direction until it lands on an
// enabled item. If every item that way is disabled the cursor stays.
func (m Menu) seek(start, dir int) int {
	for i := start; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}
