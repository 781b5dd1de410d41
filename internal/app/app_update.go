package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/codeview/internal/keys"
	"github.com/zhubert/codeview/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg)

	case tea.MouseWheelMsg:
		return m, m.handleMouseWheel(msg)

	case FilesLoadedMsg:
		return m.handleFilesLoaded(msg)

	case CopyResultMsg:
		return m.handleCopyResult(msg)

	case CopyResetMsg:
		m.handleCopyReset(msg)
		return m, nil

	case ui.SpinnerTickMsg:
		return m, m.handleSpinnerTick()
	}

	// Let the modal's text input see cursor blinks and similar messages
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	return m, nil
}

// handleKeyPress routes key presses. Modal keys come first, then global
// shortcuts, then the focused panel.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "o":
		m.showSessionPrompt()
		return m, nil
	}

	if m.state != StateBrowsing {
		return m, nil
	}

	switch key {
	case keys.Tab, keys.ShiftTab:
		m.toggleFocus()
		return m, nil
	case "c", "y":
		return m, m.copySelected()
	case keys.PgUp, keys.PgDown:
		// Paging always scrolls the code, whichever panel is focused
		viewer, cmd := m.viewer.Update(msg)
		m.viewer = viewer
		return m, cmd
	}

	if m.focus == FocusSidebar {
		before := m.fileList.SelectedIndex()
		fileList, cmd := m.fileList.Update(msg)
		m.fileList = fileList
		if m.fileList.SelectedIndex() != before {
			m.syncViewer()
		}
		return m, cmd
	}

	switch key {
	case keys.Home, "g":
		m.viewer.GotoTop()
		return m, nil
	case keys.End, "G":
		m.viewer.GotoBottom()
		return m, nil
	}

	viewer, cmd := m.viewer.Update(msg)
	m.viewer = viewer
	return m, cmd
}

// showSessionPrompt opens the session modal pre-filled from history
func (m *Model) showSessionPrompt() {
	var recent []string
	if m.config != nil {
		recent = m.config.GetRecentSessions()
	}
	m.modal.Show(ui.NewSessionPromptState(recent))
}

// handleModalKey handles keys while a modal is open
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch s := m.modal.State.(type) {
	case *ui.SessionPromptState:
		switch msg.String() {
		case keys.Escape:
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			id := s.GetSessionID()
			if id == "" {
				m.modal.SetError("Enter a session id")
				return m, nil
			}
			m.modal.Hide()
			return m, m.SetSession(id)
		}
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
