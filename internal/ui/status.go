package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// spinnerFrames is the shimmering loading spinner
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// Placeholder messages for the non-browsing states
const (
	LoadingMessage = "Loading code files..."
	EmptyMessage   = "No code files available"
)

// SpinnerTickMsg advances the loading spinner
type SpinnerTickMsg time.Time

// SpinnerTick returns a command that fires the next spinner frame
func SpinnerTick() tea.Cmd {
	return tea.Tick(SpinnerInterval, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

// SpinnerFrame returns the spinner glyph for frame n
func SpinnerFrame(n int) string {
	if n < 0 {
		n = -n
	}
	return spinnerFrames[n%len(spinnerFrames)]
}

// RenderLoading renders the loading placeholder filling width x height
func RenderLoading(width, height, frame int) string {
	content := StatusLoadingStyle.Render(SpinnerFrame(frame) + " " + LoadingMessage)
	return placeInPanel(width, height, content)
}

// RenderEmpty renders the "no files" placeholder filling width x height
func RenderEmpty(width, height int) string {
	return placeInPanel(width, height, StatusEmptyStyle.Render(EmptyMessage))
}

// placeInPanel centers content inside a bordered panel of the given outer size
func placeInPanel(width, height int, content string) string {
	ctx := GetViewContext()
	inner := lipgloss.Place(
		max(ctx.InnerWidth(width), 0), max(ctx.InnerHeight(height), 0),
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return PanelStyle.Width(width).Height(height).Render(inner)
}
