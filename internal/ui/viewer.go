package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/codeview/internal/codefile"
)

// Copy button labels
const (
	CopyLabel   = "⧉ copy"
	CopiedLabel = "✓ copied"
)

// Viewer is the content pane: a file header with a copy button above the
// highlighted file content.
type Viewer struct {
	width    int
	height   int
	focused  bool
	file     *codefile.File
	copied   bool
	viewport viewport.Model

	// Render cache key
	renderedFile  *codefile.File
	renderedWidth int
}

// NewViewer creates an empty viewer
func NewViewer() *Viewer {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Viewer{viewport: vp}
}

// SetSize sets the viewer panel dimensions
func (v *Viewer) SetSize(width, height int) {
	v.width = width
	v.height = height

	ctx := GetViewContext()
	v.viewport.SetWidth(max(ctx.InnerWidth(width), 1))
	v.viewport.SetHeight(max(ctx.InnerHeight(height)-ViewerHeaderHeight, 1))
	v.refresh()

	ctx.Log("Viewer.SetSize", "outerWidth", width, "outerHeight", height,
		"viewportWidth", v.viewport.Width(), "viewportHeight", v.viewport.Height())
}

// Width returns the viewer width
func (v *Viewer) Width() int {
	return v.width
}

// SetFocused sets the focus state
func (v *Viewer) SetFocused(focused bool) {
	v.focused = focused
}

// IsFocused returns the focus state
func (v *Viewer) IsFocused() bool {
	return v.focused
}

// SetFile shows f, or nothing when f is nil. Switching files scrolls to the top.
func (v *Viewer) SetFile(f *codefile.File) {
	changed := v.file != f
	v.file = f
	v.refresh()
	if changed {
		v.viewport.GotoTop()
	}
}

// File returns the file being shown, or nil
func (v *Viewer) File() *codefile.File {
	return v.file
}

// SetCopied toggles the copied indicator on the copy button
func (v *Viewer) SetCopied(copied bool) {
	v.copied = copied
}

// IsCopied reports whether the copied indicator is showing
func (v *Viewer) IsCopied() bool {
	return v.copied
}

// HighlightLanguage returns the label used to highlight the current file
func (v *Viewer) HighlightLanguage() string {
	if v.file == nil {
		return ""
	}
	return v.file.HighlightLanguage()
}

// refresh re-highlights the content when the file or width changed
func (v *Viewer) refresh() {
	codeWidth := v.viewport.Width()
	if v.renderedFile == v.file && v.renderedWidth == codeWidth {
		return
	}
	v.renderedFile = v.file
	v.renderedWidth = codeWidth

	if v.file == nil {
		v.viewport.SetContent("")
		return
	}
	v.viewport.SetContent(highlightCode(v.file.Content, v.file.HighlightLanguage(), codeWidth))
}

// copyButton renders the copy button for the current indicator state
func (v *Viewer) copyButton() string {
	if v.copied {
		return CopyButtonCopiedStyle.Render(CopiedLabel)
	}
	return CopyButtonStyle.Render(CopyLabel)
}

// CopyButtonHit reports whether panel-local coordinates (x, y) fall on the
// copy button. Row 0 is the panel's top border, row 1 the file header.
func (v *Viewer) CopyButtonHit(x, y int) bool {
	if v.file == nil || y != 1 {
		return false
	}
	innerWidth := GetViewContext().InnerWidth(v.width)
	buttonWidth := lipgloss.Width(v.copyButton())
	// Panel border (1) + header padding (1) on each side
	right := 1 + innerWidth - 1
	left := right - buttonWidth
	return x >= left && x < right
}

// Update handles scrolling
func (v *Viewer) Update(msg tea.Msg) (*Viewer, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// GotoTop scrolls to the first line
func (v *Viewer) GotoTop() {
	v.viewport.GotoTop()
}

// GotoBottom scrolls to the last line
func (v *Viewer) GotoBottom() {
	v.viewport.GotoBottom()
}

// AtTop reports whether the content is scrolled to the first line
func (v *Viewer) AtTop() bool {
	return v.viewport.AtTop()
}

// renderHeader renders the file name, language and copy button row
func (v *Viewer) renderHeader(innerWidth int) string {
	button := v.copyButton()
	buttonWidth := lipgloss.Width(button)

	// Header padding takes one column on each side
	available := innerWidth - 2 - buttonWidth - 1
	if available < 1 {
		available = 1
	}

	icon := SidebarIconStyle.Render(FileIcon)
	name := ViewerFileNameStyle.Render(v.file.Name)
	meta := HeaderMetaStyle.Render(fmt.Sprintf("  %s · %s", v.file.HighlightLanguage(), lineCount(v.file.Lines())))
	left := ansi.Truncate(icon+" "+name+meta, available, "…")

	gap := innerWidth - 2 - lipgloss.Width(left) - buttonWidth
	if gap < 1 {
		gap = 1
	}

	return ViewerHeaderStyle.Width(innerWidth).Render(left + strings.Repeat(" ", gap) + button)
}

func lineCount(n int) string {
	if n == 1 {
		return "1 line"
	}
	return fmt.Sprintf("%d lines", n)
}

// View renders the viewer panel
func (v *Viewer) View() string {
	style := PanelStyle
	if v.focused {
		style = PanelFocusedStyle
	}

	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(v.width)

	if v.file == nil {
		return style.Width(v.width).Height(v.height).Render("")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		v.renderHeader(innerWidth),
		v.viewport.View(),
	)

	return style.Width(v.width).Height(v.height).Render(content)
}
