package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/codeview/internal/clipboard"
	"github.com/zhubert/codeview/internal/codefile"
	"github.com/zhubert/codeview/internal/config"
	"github.com/zhubert/codeview/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusViewer
)

// AppState represents the current state of the application.
// Loading is entered on start and on every session change; it settles into
// Empty or Browsing when the fetch completes.
type AppState int

const (
	StateEmpty    AppState = iota // No session, or the session has no files
	StateLoading                  // Fetch in flight
	StateBrowsing                 // Files loaded, one selected
)

// String returns a human-readable name for the state
func (s AppState) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateLoading:
		return "Loading"
	case StateBrowsing:
		return "Browsing"
	default:
		return "Unknown"
	}
}

// FileSource lists the code files generated in a chat session.
// *codeclient.Client satisfies it.
type FileSource interface {
	ListFiles(ctx context.Context, sessionID string) ([]codefile.File, error)
}

// ClipboardWriter writes text to the native clipboard
type ClipboardWriter func(text string) error

// Model is the main Bubble Tea model
type Model struct {
	config    *config.Config
	version   string
	source    FileSource
	writeClip ClipboardWriter

	header   *ui.Header
	footer   *ui.Footer
	fileList *ui.FileList
	viewer   *ui.Viewer
	modal    *ui.Modal

	width  int
	height int
	focus  Focus

	// State machine
	state AppState

	sessionID       string
	startSession    string // opened by Init
	generationIndex int

	// fetchSeq tags each fetch so only the latest result is applied
	fetchSeq    uint64
	cancelFetch context.CancelFunc

	// copySeq tags each copy so an old reset timer cannot clear a newer indicator
	copySeq uint64
	// copiedIdx is the list position of the last copied file, -1 when none.
	// The indicator shows only while that file is selected.
	copiedIdx int

	spinnerFrame int
	spinning     bool

	// lastFetchErr is the typed error of the most recent failed fetch, nil after a success
	lastFetchErr error
}

// FilesLoadedMsg carries a fetch result for the session and sequence it was issued for
type FilesLoadedMsg struct {
	SessionID string
	Seq       uint64
	Files     []codefile.File
	Err       error
}

// CopyResultMsg reports the native clipboard write for copy Seq of the file
// at list position Index
type CopyResultMsg struct {
	Seq   uint64
	Index int
	Name  string
	Err   error
}

// CopyResetMsg clears the copied indicator if no newer copy happened
type CopyResetMsg struct {
	Seq uint64
}

// New creates a new app model reading files from source
func New(cfg *config.Config, source FileSource, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:          cfg,
		version:         version,
		source:          source,
		writeClip:       clipboard.WriteText,
		header:          ui.NewHeader(),
		footer:          ui.NewFooter(),
		fileList:        ui.NewFileList(),
		viewer:          ui.NewViewer(),
		modal:           ui.NewModal(),
		focus:           FocusSidebar,
		state:           StateEmpty,
		generationIndex: -1,
		copiedIdx:       -1,
	}
	m.fileList.SetFocused(true)

	return m
}

// SetStartSession sets the session Init opens
func (m *Model) SetStartSession(sessionID string) {
	m.startSession = sessionID
}

// SetGenerationIndex records the caller's generation index. It is shown in
// the header only; selection always starts at the first file.
func (m *Model) SetGenerationIndex(idx int) {
	m.generationIndex = idx
	m.header.SetGenerationIndex(idx)
}

// SetClipboardWriter replaces the native clipboard writer
func (m *Model) SetClipboardWriter(w ClipboardWriter) {
	m.writeClip = w
}

// State returns the current application state
func (m *Model) State() AppState {
	return m.state
}

// SessionID returns the current session identifier
func (m *Model) SessionID() string {
	return m.sessionID
}

// Files returns the loaded files in server order
func (m *Model) Files() []codefile.File {
	return m.fileList.Files()
}

// SelectedFile returns the selected file, or nil
func (m *Model) SelectedFile() *codefile.File {
	return m.fileList.SelectedFile()
}

// SelectedIndex returns the selected position, or -1
func (m *Model) SelectedIndex() int {
	return m.fileList.SelectedIndex()
}

// IsLoading reports whether a fetch is in flight
func (m *Model) IsLoading() bool {
	return m.state == StateLoading
}

// IsCopied reports whether the copied indicator is showing
func (m *Model) IsCopied() bool {
	return m.viewer.IsCopied()
}

// LastFetchError returns the typed error of the most recent failed fetch
func (m *Model) LastFetchError() error {
	return m.lastFetchErr
}

// setState transitions the state machine
func (m *Model) setState(newState AppState) {
	if m.state != newState {
		appLog().Debug("state transition", "from", m.state, "to", newState, "sessionID", m.sessionID)
	}
	m.state = newState
}

// settle leaves Loading for Browsing or Empty depending on the list
func (m *Model) settle() {
	if m.fileList.Len() > 0 {
		m.setState(StateBrowsing)
	} else {
		m.setState(StateEmpty)
	}
}

// Init opens the start session, if any
func (m *Model) Init() tea.Cmd {
	if m.startSession == "" {
		return nil
	}
	id := m.startSession
	m.startSession = ""
	return m.SetSession(id)
}

// toggleFocus switches focus between the file list and the viewer
func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		m.focus = FocusViewer
	} else {
		m.focus = FocusSidebar
	}
	m.fileList.SetFocused(m.focus == FocusSidebar)
	m.viewer.SetFocused(m.focus == FocusViewer)
}

// setFocus focuses the given panel
func (m *Model) setFocus(f Focus) {
	if m.focus != f {
		m.toggleFocus()
	}
}

// syncViewer shows the selected file in the viewer
func (m *Model) syncViewer() {
	m.viewer.SetFile(m.fileList.SelectedFile())
	m.syncCopied()
}

// syncCopied shows the copied indicator only for the copied file
func (m *Model) syncCopied() {
	m.viewer.SetCopied(m.copiedIdx >= 0 && m.copiedIdx == m.fileList.SelectedIndex())
}
