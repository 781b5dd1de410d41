package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/codeview/internal/codefile"
	"github.com/zhubert/codeview/internal/keys"
)

// FileIcon prefixes every file row and the viewer header
const FileIcon = "▤"

// fileRowsTop is the panel-local row of the first file: top border, title, separator.
const fileRowsTop = 1 + SidebarTitleHeight

// FileList is the left panel listing the loaded files in server order.
// Selection is tracked by position so files sharing a name stay distinct.
type FileList struct {
	files        []codefile.File
	selectedIdx  int // -1 when nothing is selected
	width        int
	height       int
	focused      bool
	scrollOffset int
}

// NewFileList creates an empty file list
func NewFileList() *FileList {
	return &FileList{selectedIdx: -1}
}

// SetSize sets the file list dimensions
func (f *FileList) SetSize(width, height int) {
	f.width = width
	f.height = height
	f.ensureVisible()

	ctx := GetViewContext()
	ctx.Log("FileList.SetSize",
		"outerWidth", width,
		"outerHeight", height,
		"visibleRows", f.visibleRows(),
	)
}

// Width returns the file list width
func (f *FileList) Width() int {
	return f.width
}

// SetFocused sets the focus state
func (f *FileList) SetFocused(focused bool) {
	f.focused = focused
}

// IsFocused returns the focus state
func (f *FileList) IsFocused() bool {
	return f.focused
}

// SetFiles replaces the list. The first file becomes selected, or nothing
// when the list is empty.
func (f *FileList) SetFiles(files []codefile.File) {
	f.files = files
	f.scrollOffset = 0
	if len(files) > 0 {
		f.selectedIdx = 0
	} else {
		f.selectedIdx = -1
	}
}

// Clear drops all files and the selection
func (f *FileList) Clear() {
	f.SetFiles(nil)
}

// Files returns the loaded files
func (f *FileList) Files() []codefile.File {
	return f.files
}

// Len returns the number of loaded files
func (f *FileList) Len() int {
	return len(f.files)
}

// SelectedIndex returns the selected position, or -1
func (f *FileList) SelectedIndex() int {
	return f.selectedIdx
}

// SelectedFile returns the selected file, or nil
func (f *FileList) SelectedFile() *codefile.File {
	if f.selectedIdx < 0 || f.selectedIdx >= len(f.files) {
		return nil
	}
	return &f.files[f.selectedIdx]
}

// Select selects the file at idx. Returns false when idx is out of range.
func (f *FileList) Select(idx int) bool {
	if idx < 0 || idx >= len(f.files) {
		return false
	}
	f.selectedIdx = idx
	f.ensureVisible()
	return true
}

// MoveUp selects the previous file. Returns true if the selection changed.
func (f *FileList) MoveUp() bool {
	if f.selectedIdx <= 0 {
		return false
	}
	return f.Select(f.selectedIdx - 1)
}

// MoveDown selects the next file. Returns true if the selection changed.
func (f *FileList) MoveDown() bool {
	if f.selectedIdx >= len(f.files)-1 {
		return false
	}
	return f.Select(f.selectedIdx + 1)
}

// IndexAt maps a panel-local row to a file index, or -1 if the row holds no file.
func (f *FileList) IndexAt(y int) int {
	row := y - fileRowsTop
	if row < 0 || row >= f.visibleRows() {
		return -1
	}
	idx := row + f.scrollOffset
	if idx >= len(f.files) {
		return -1
	}
	return idx
}

// visibleRows is the number of file rows that fit in the panel
func (f *FileList) visibleRows() int {
	return max(GetViewContext().InnerHeight(f.height)-SidebarTitleHeight, 0)
}

// ensureVisible scrolls so the selected row is on screen
func (f *FileList) ensureVisible() {
	visible := f.visibleRows()
	if visible == 0 || f.selectedIdx < 0 {
		f.scrollOffset = 0
		return
	}
	if f.selectedIdx < f.scrollOffset {
		f.scrollOffset = f.selectedIdx
	} else if f.selectedIdx >= f.scrollOffset+visible {
		f.scrollOffset = f.selectedIdx - visible + 1
	}

	maxScroll := max(len(f.files)-visible, 0)
	if f.scrollOffset > maxScroll {
		f.scrollOffset = maxScroll
	}
	if f.scrollOffset < 0 {
		f.scrollOffset = 0
	}
}

// Update handles keyboard navigation while focused
func (f *FileList) Update(msg tea.Msg) (*FileList, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if !f.focused {
			return f, nil
		}
		switch msg.String() {
		case keys.Up, "k":
			f.MoveUp()
		case keys.Down, "j":
			f.MoveDown()
		case keys.Home, "g":
			f.Select(0)
		case keys.End, "G":
			f.Select(len(f.files) - 1)
		}
	}
	return f, nil
}

// renderRow renders one file row at the given inner width
func (f *FileList) renderRow(idx, innerWidth int) string {
	style := SidebarItemStyle
	if idx == f.selectedIdx {
		style = SidebarSelectedStyle
	}

	// Row padding takes one column on each side, icon and space two more
	nameWidth := max(innerWidth-4, 1)
	name := runewidth.Truncate(f.files[idx].Name, nameWidth, "…")

	icon := FileIcon
	if idx != f.selectedIdx {
		icon = SidebarIconStyle.Render(FileIcon)
	}
	return style.Width(innerWidth).MaxHeight(1).Render(icon + " " + name)
}

// View renders the file list panel
func (f *FileList) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if f.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(f.width)
	if innerWidth <= 0 {
		return style.Width(f.width).Height(f.height).Render("")
	}

	title := PanelTitleStyle.Render(fmt.Sprintf("Files (%d)", len(f.files)))
	separator := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Render(strings.Repeat("─", innerWidth))

	lines := []string{title, separator}

	f.ensureVisible()
	visible := f.visibleRows()
	for i := f.scrollOffset; i < len(f.files) && i < f.scrollOffset+visible; i++ {
		lines = append(lines, f.renderRow(i, innerWidth))
	}

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(f.width).Height(f.height).Render(strings.Join(lines, "\n"))
}
