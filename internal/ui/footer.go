package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects which set of bindings the footer shows
type FooterMode int

const (
	FooterLoading FooterMode = iota
	FooterEmpty
	FooterBrowsing
	FooterModal
)

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width          int
	mode           FooterMode
	sidebarFocused bool
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(mode FooterMode, sidebarFocused bool) {
	f.mode = mode
	f.sidebarFocused = sidebarFocused
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// Bindings returns the bindings shown for the current context
func (f *Footer) Bindings() []KeyBinding {
	switch f.mode {
	case FooterModal:
		return []KeyBinding{
			{Key: "enter", Desc: "open"},
			{Key: "esc", Desc: "cancel"},
		}
	case FooterBrowsing:
		bindings := []KeyBinding{}
		if f.sidebarFocused {
			bindings = append(bindings, KeyBinding{Key: "↑/↓", Desc: "select file"})
		} else {
			bindings = append(bindings, KeyBinding{Key: "↑/↓", Desc: "scroll"})
		}
		return append(bindings,
			KeyBinding{Key: "tab", Desc: "switch pane"},
			KeyBinding{Key: "c", Desc: "copy"},
			KeyBinding{Key: "pgup/dn", Desc: "page"},
			KeyBinding{Key: "o", Desc: "open session"},
			KeyBinding{Key: "q", Desc: "quit"},
		)
	default:
		return []KeyBinding{
			{Key: "o", Desc: "open session"},
			{Key: "q", Desc: "quit"},
		}
	}
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
