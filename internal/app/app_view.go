package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/codeview/internal/ui"
)

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterContext()

	header := m.header.View()
	footer := m.footer.View()

	ctx := ui.GetViewContext()
	var body string
	switch m.state {
	case StateLoading:
		body = ui.RenderLoading(ctx.TerminalWidth, ctx.ContentHeight, m.spinnerFrame)
	case StateEmpty:
		body = ui.RenderEmpty(ctx.TerminalWidth, ctx.ContentHeight)
	default:
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.fileList.View(),
			m.viewer.View(),
		)
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		footer,
	)

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	return view
}

// updateFooterContext sets the footer bindings for the current state
func (m *Model) updateFooterContext() {
	mode := ui.FooterEmpty
	switch {
	case m.modal.IsVisible():
		mode = ui.FooterModal
	case m.state == StateLoading:
		mode = ui.FooterLoading
	case m.state == StateBrowsing:
		mode = ui.FooterBrowsing
	}
	m.footer.SetContext(mode, m.focus == FocusSidebar)
}

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.fileList.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.viewer.SetSize(ctx.ViewerWidth, ctx.ContentHeight)
}
