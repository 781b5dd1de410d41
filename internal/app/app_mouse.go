package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/codeview/internal/ui"
)

// inContent reports whether screen row y falls between the header and footer
func (m *Model) inContent(y int) bool {
	ctx := ui.GetViewContext()
	return y >= ui.HeaderHeight && y < ui.HeaderHeight+ctx.ContentHeight
}

// handleMouseClick selects a file row, or copies when the copy button is hit.
// Coordinates are adjusted to be panel-local before hit testing.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if m.modal.IsVisible() || m.state != StateBrowsing {
		return nil
	}
	if msg.Button != tea.MouseLeft || !m.inContent(msg.Y) {
		return nil
	}

	sidebarWidth := m.fileList.Width()
	localY := msg.Y - ui.HeaderHeight

	if msg.X < sidebarWidth {
		m.setFocus(FocusSidebar)
		if idx := m.fileList.IndexAt(localY); idx >= 0 && idx != m.fileList.SelectedIndex() {
			m.fileList.Select(idx)
			m.syncViewer()
		}
		return nil
	}

	m.setFocus(FocusViewer)
	if m.viewer.CopyButtonHit(msg.X-sidebarWidth, localY) {
		return m.copySelected()
	}
	return nil
}

// handleMouseWheel scrolls the panel under the pointer
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	if m.modal.IsVisible() || m.state != StateBrowsing {
		return nil
	}

	if msg.X < m.fileList.Width() {
		switch msg.Button {
		case tea.MouseWheelUp:
			if m.fileList.MoveUp() {
				m.syncViewer()
			}
		case tea.MouseWheelDown:
			if m.fileList.MoveDown() {
				m.syncViewer()
			}
		}
		return nil
	}

	viewer, cmd := m.viewer.Update(msg)
	m.viewer = viewer
	return cmd
}
