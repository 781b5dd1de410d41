package app

import (
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/codeview/internal/codefile"
	"github.com/zhubert/codeview/internal/config"
	"github.com/zhubert/codeview/internal/errors"
	"github.com/zhubert/codeview/internal/ui"
)

func TestAppState_String(t *testing.T) {
	tests := []struct {
		state AppState
		want  string
	}{
		{StateEmpty, "Empty"},
		{StateLoading, "Loading"},
		{StateBrowsing, "Browsing"},
		{AppState(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("AppState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestNew_StartsEmptyWithoutSession(t *testing.T) {
	src := newFakeSource()
	m, _ := testModel(testConfig(), src)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init without a session should not fetch")
	}
	if m.State() != StateEmpty {
		t.Errorf("state = %v, want Empty", m.State())
	}
	if m.SelectedFile() != nil {
		t.Error("no file should be selected")
	}
	if src.callCount() != 0 {
		t.Error("source should not be called")
	}
}

func TestInit_StartSessionEntersLoading(t *testing.T) {
	src := newFakeSource()
	src.files["chat-1"] = sampleFiles()
	m, _ := testModelWithSize(testConfig(), src, 100, 30)
	m.SetStartSession("chat-1")

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init with a session should return the fetch command")
	}
	if !m.IsLoading() {
		t.Errorf("state = %v, want Loading", m.State())
	}
	if m.SelectedFile() != nil {
		t.Error("nothing should be selected while loading")
	}
	if view := ansi.Strip(m.RenderToString()); !strings.Contains(view, ui.LoadingMessage) {
		t.Errorf("loading view should show %q:\n%s", ui.LoadingMessage, view)
	}

	completeFetch(m)

	if m.State() != StateBrowsing {
		t.Fatalf("state = %v, want Browsing", m.State())
	}
	if m.IsLoading() {
		t.Error("loading flag should be cleared")
	}
}

func TestFetch_SelectsFirstFile(t *testing.T) {
	m, src, _ := browsingModel(t)

	if len(m.Files()) != 2 {
		t.Fatalf("expected 2 files, got %d", len(m.Files()))
	}
	if got := m.SelectedFile(); got == nil || got.Name != "a.py" {
		t.Fatalf("selected = %v, want a.py", got)
	}
	if got := m.viewer.HighlightLanguage(); got != "python" {
		t.Errorf("highlight language = %q, want python", got)
	}
	if src.calls[0] != "chat-1" {
		t.Errorf("fetched %q, want chat-1", src.calls[0])
	}

	view := ansi.Strip(m.RenderToString())
	for _, want := range []string{"a.py", "b.txt", "1 │ print(1)", ui.CopyLabel} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}
}

func TestSelect_SecondFileUsesPlainText(t *testing.T) {
	m, src, _ := browsingModel(t)
	calls := src.callCount()

	sendKey(m, "j")

	if got := m.SelectedFile(); got == nil || got.Name != "b.txt" {
		t.Fatalf("selected = %v, want b.txt", got)
	}
	if got := m.viewer.HighlightLanguage(); got != codefile.PlainText {
		t.Errorf("highlight language = %q, want %q", got, codefile.PlainText)
	}
	if m.State() != StateBrowsing {
		t.Error("selection change must not enter Loading")
	}
	if src.callCount() != calls {
		t.Error("selection change must not refetch")
	}
	if view := ansi.Strip(m.RenderToString()); !strings.Contains(view, "1 │ hello") {
		t.Errorf("viewer should show b.txt:\n%s", view)
	}
}

func TestFetch_EmptyList(t *testing.T) {
	src := newFakeSource()
	src.files["chat-empty"] = []codefile.File{}
	m, _ := testModelWithSize(testConfig(), src, 100, 30)

	m.SetSession("chat-empty")
	completeFetch(m)

	if m.State() != StateEmpty {
		t.Errorf("state = %v, want Empty", m.State())
	}
	if m.SelectedFile() != nil {
		t.Error("empty list should have no selection")
	}
	view := ansi.Strip(m.RenderToString())
	if !strings.Contains(view, ui.EmptyMessage) {
		t.Errorf("view should show %q:\n%s", ui.EmptyMessage, view)
	}
	if strings.Contains(view, ui.LoadingMessage) {
		t.Error("loading indicator should be gone")
	}
}

func TestFetch_FailureIsSwallowed(t *testing.T) {
	src := newFakeSource()
	src.err = errors.FetchStatus("chat-1", 500)
	m, _ := testModelWithSize(testConfig(), src, 100, 30)

	m.SetSession("chat-1")
	completeFetch(m)

	if m.IsLoading() {
		t.Error("loading flag should be cleared after a failure")
	}
	if m.State() != StateEmpty {
		t.Errorf("state = %v, want Empty", m.State())
	}
	if !errors.Is(m.LastFetchError(), errors.KindNetwork) {
		t.Errorf("LastFetchError() = %v, want a network error", m.LastFetchError())
	}
	if view := ansi.Strip(m.RenderToString()); strings.Contains(view, "500") {
		t.Error("the failure should not be shown to the user")
	}
}

func TestFetch_FailureKeepsPreviousList(t *testing.T) {
	m, _, _ := browsingModel(t)

	// A failed result for the current request leaves the list as it was
	m.Update(FilesLoadedMsg{
		SessionID: m.SessionID(),
		Seq:       m.fetchSeq,
		Err:       errors.FetchFailed("chat-1", stderrors.New("connection refused")),
	})

	if m.State() != StateBrowsing || len(m.Files()) != 2 {
		t.Errorf("list should be kept, state=%v files=%d", m.State(), len(m.Files()))
	}
	if m.LastFetchError() == nil {
		t.Error("LastFetchError should be recorded")
	}
}

func TestFetch_StaleResponseDiscarded(t *testing.T) {
	src := newFakeSource()
	src.files["old"] = []codefile.File{{Name: "old.go", Content: "package old"}}
	src.files["new"] = []codefile.File{{Name: "new.go", Content: "package new"}}
	m, _ := testModelWithSize(testConfig(), src, 100, 30)

	m.SetSession("old")
	oldSeq := m.fetchSeq
	m.SetSession("new")

	// The old request settles last
	completeFetch(m)
	m.Update(FilesLoadedMsg{SessionID: "old", Seq: oldSeq, Files: src.files["old"]})

	if got := m.SelectedFile(); got == nil || got.Name != "new.go" {
		t.Fatalf("selected = %v, want new.go", got)
	}
	if len(m.Files()) != 1 || m.Files()[0].Name != "new.go" {
		t.Errorf("files = %v, stale list should be discarded", m.Files())
	}
}

func TestFetch_StaleSequenceForSameSession(t *testing.T) {
	src := newFakeSource()
	m, _ := testModelWithSize(testConfig(), src, 100, 30)

	m.SetSession("chat-1")
	firstSeq := m.fetchSeq
	m.SetSession("chat-1")

	m.Update(FilesLoadedMsg{SessionID: "chat-1", Seq: firstSeq, Files: sampleFiles()})
	if !m.IsLoading() {
		t.Error("a superseded result for the same session should be ignored")
	}
}

func TestSetSession_SameSessionFailedRefreshKeepsList(t *testing.T) {
	m, src, _ := browsingModel(t)
	src.err = errors.FetchStatus("chat-1", 503)

	if cmd := m.SetSession("chat-1"); cmd == nil {
		t.Fatal("re-opening the session should fetch again")
	}
	if !m.IsLoading() {
		t.Error("a refresh should enter Loading")
	}
	if len(m.Files()) != 2 {
		t.Errorf("files = %d during refresh, want the previous 2", len(m.Files()))
	}

	completeFetch(m)

	if m.State() != StateBrowsing {
		t.Errorf("state = %v, want Browsing with the previous list", m.State())
	}
	if got := m.SelectedFile(); got == nil || got.Name != "a.py" {
		t.Errorf("selected = %v, want a.py", got)
	}
	if m.LastFetchError() == nil {
		t.Error("LastFetchError should be recorded")
	}
}

func TestSetSession_ClearsListAndSelection(t *testing.T) {
	m, _, _ := browsingModel(t)

	m.SetSession("chat-2")

	if len(m.Files()) != 0 || m.SelectedFile() != nil {
		t.Error("switching sessions should clear the list and selection")
	}
	if !m.IsLoading() {
		t.Error("switching sessions should enter Loading")
	}
	if m.SessionID() != "chat-2" {
		t.Errorf("SessionID() = %q, want chat-2", m.SessionID())
	}
}

func TestSetSession_EmptyIDDoesNotFetch(t *testing.T) {
	src := newFakeSource()
	m, _ := testModel(testConfig(), src)

	if cmd := m.SetSession("  "); cmd != nil {
		t.Error("empty session should not fetch")
	}
	if m.State() != StateEmpty {
		t.Errorf("state = %v, want Empty", m.State())
	}
}

func TestSetSession_RecordsRecentSession(t *testing.T) {
	cfg := &config.Config{}
	cfg.SetFilePath(filepath.Join(t.TempDir(), "config.json"))
	m, _ := testModel(cfg, newFakeSource())

	m.SetSession("chat-1")
	m.SetSession("chat-2")

	if got := cfg.GetRecentSessions(); len(got) != 2 || got[0] != "chat-2" {
		t.Errorf("recent sessions = %v", got)
	}

	loaded, err := config.LoadFrom(cfg.FilePath())
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.LastSession() != "chat-2" {
		t.Errorf("saved last session = %q, want chat-2", loaded.LastSession())
	}
}

func TestDuplicateNames_SelectByPosition(t *testing.T) {
	src := newFakeSource()
	src.files["dup"] = []codefile.File{
		{Name: "main.go", Content: "first"},
		{Name: "main.go", Content: "second"},
	}
	m, _ := testModelWithSize(testConfig(), src, 100, 30)
	m.SetSession("dup")
	completeFetch(m)

	sendKey(m, "j")

	if m.SelectedIndex() != 1 {
		t.Fatalf("SelectedIndex() = %d, want 1", m.SelectedIndex())
	}
	if m.SelectedFile().Content != "second" {
		t.Errorf("selected content = %q, want second", m.SelectedFile().Content)
	}
}

func TestGenerationIndex_ShownButNotUsedForSelection(t *testing.T) {
	src := newFakeSource()
	src.files["chat-1"] = sampleFiles()
	m, _ := testModelWithSize(testConfig(), src, 100, 30)
	m.SetGenerationIndex(1)
	m.SetSession("chat-1")
	completeFetch(m)

	if m.SelectedIndex() != 0 {
		t.Errorf("selection should start at the first file, got %d", m.SelectedIndex())
	}
	if view := ansi.Strip(m.RenderToString()); !strings.Contains(view, "gen 1") {
		t.Errorf("header should show the generation index:\n%s", view)
	}
}

func TestFocus_TabToggles(t *testing.T) {
	m, _, _ := browsingModel(t)

	sendKey(m, "tab")
	if m.focus != FocusViewer {
		t.Fatal("tab should focus the viewer")
	}

	// j scrolls the viewer instead of changing the file
	sendKey(m, "j")
	if m.SelectedIndex() != 0 {
		t.Error("keys in the viewer should not change the selection")
	}

	sendKey(m, "tab")
	if m.focus != FocusSidebar {
		t.Error("tab should return focus to the file list")
	}
}

func TestQuit(t *testing.T) {
	m, _ := testModel(testConfig(), newFakeSource())

	for _, key := range []string{"q", "ctrl+c"} {
		cmd := sendKey(m, key)
		if cmd == nil {
			t.Fatalf("%s should return a command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should quit", key)
		}
	}
}

func TestView_Unsized(t *testing.T) {
	m, _ := testModel(testConfig(), newFakeSource())
	if m.RenderToString() != "Loading..." {
		t.Error("unsized model should render a placeholder")
	}
	v := m.View()
	if !v.AltScreen {
		t.Error("view should use the alt screen")
	}
}

func TestSpinner_StopsWhenSettled(t *testing.T) {
	m, _, _ := browsingModel(t)

	_, cmd := m.Update(ui.SpinnerTickMsg{})
	if cmd != nil {
		t.Error("spinner should stop once loading is over")
	}
	if m.spinning {
		t.Error("spinning flag should be cleared")
	}
}
