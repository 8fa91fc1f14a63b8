package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhilash/crammer/internal/ui/theme"
)

// Choices is a single-select list for answer options. It handles any number
// of options; labels run A, B, C, ... as far as needed.
type Choices struct {
	Options  []string
	Selected int

	// Chosen is the index confirmed with enter, -1 until then. The caller
	// reads Value and decides what to do; the component never grades.
	Chosen int
}

// NewChoices creates a selector over the given options.
func NewChoices(options []string) Choices {
	return Choices{Options: options, Chosen: -1}
}

// Init returns nil.
func (c Choices) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c Choices) Update(msg tea.Msg) (Choices, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Chosen = c.Selected
	}

	return c, nil
}

// Select moves the highlight to the option matching value, if present.
// Used to restore state when navigating back to an answered question.
func (c *Choices) Select(value string) {
	for i, opt := range c.Options {
		if opt == value {
			c.Selected = i
			c.Chosen = i
			return
		}
	}
}

// Value returns the confirmed option text, empty until one is chosen.
func (c Choices) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// View renders the option list.
func (c Choices) View() string {
	var s string
	for i, opt := range c.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
