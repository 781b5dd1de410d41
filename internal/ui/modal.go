package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/codeview/internal/keys"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// =============================================================================
// SessionPromptState - State for the Open Session modal
// =============================================================================

// SessionPromptState asks for a session identifier. Recent sessions are
// listed below the input; up/down copies one into the input.
type SessionPromptState struct {
	Input     textinput.Model
	Recent    []string
	RecentIdx int // -1 while the typed value is not from the list
}

func (*SessionPromptState) modalState() {}

func (s *SessionPromptState) Title() string { return "Open Session" }

func (s *SessionPromptState) Help() string {
	if len(s.Recent) > 0 {
		return "↑/↓ recent sessions  Enter: open  Esc: cancel"
	}
	return "Enter: open  Esc: cancel"
}

func (s *SessionPromptState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	label := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Session id:")

	inputView := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1).
		Render(s.Input.View())

	parts := []string{title, label, inputView}

	if len(s.Recent) > 0 {
		recentLabel := lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1).
			Render("Recent:")

		var list strings.Builder
		for i, id := range s.Recent {
			style := SidebarItemStyle
			prefix := "  "
			if i == s.RecentIdx {
				style = SidebarSelectedStyle
				prefix = "> "
			}
			list.WriteString(style.Render(prefix + id))
			if i < len(s.Recent)-1 {
				list.WriteString("\n")
			}
		}
		parts = append(parts, recentLabel, list.String())
	}

	parts = append(parts, ModalHelpStyle.Render(s.Help()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *SessionPromptState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && len(s.Recent) > 0 {
		switch keyMsg.String() {
		case keys.Up:
			if s.RecentIdx > 0 {
				s.RecentIdx--
			} else {
				s.RecentIdx = 0
			}
			s.Input.SetValue(s.Recent[s.RecentIdx])
			s.Input.CursorEnd()
			return s, nil
		case keys.Down:
			if s.RecentIdx < len(s.Recent)-1 {
				s.RecentIdx++
			}
			s.Input.SetValue(s.Recent[s.RecentIdx])
			s.Input.CursorEnd()
			return s, nil
		}
	}

	before := s.Input.Value()
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	if s.Input.Value() != before {
		s.RecentIdx = -1
	}
	return s, cmd
}

// GetSessionID returns the trimmed session id typed or picked by the user
func (s *SessionPromptState) GetSessionID() string {
	return strings.TrimSpace(s.Input.Value())
}

// NewSessionPromptState creates a SessionPromptState pre-filled with the
// most recent session, if any.
func NewSessionPromptState(recent []string) *SessionPromptState {
	ti := textinput.New()
	ti.Placeholder = "chat session id"
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	ti.Focus()

	state := &SessionPromptState{
		Input:     ti,
		Recent:    recent,
		RecentIdx: -1,
	}
	if len(recent) > 0 {
		state.RecentIdx = 0
		state.Input.SetValue(recent[0])
		state.Input.CursorEnd()
	}
	return state
}
