package app

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/zhubert/codeview/internal/ui"
)

func TestCopy_WritesFullContentAndShowsIndicator(t *testing.T) {
	m, _, clip := browsingModel(t)

	cmd := sendKey(m, "c")
	if cmd == nil {
		t.Fatal("c should return a copy command")
	}
	res := copyResult(t, cmd)
	if clip.last() != "print(1)" {
		t.Errorf("clipboard = %q, want the selected file content", clip.last())
	}
	if m.IsCopied() {
		t.Error("indicator should wait for the clipboard write")
	}

	_, resetCmd := m.Update(res)
	if !m.IsCopied() {
		t.Fatal("indicator should show after a successful copy")
	}
	if resetCmd == nil {
		t.Error("a reset timer should be scheduled")
	}

	m.Update(CopyResetMsg{Seq: res.Seq})
	if m.IsCopied() {
		t.Error("indicator should clear when the timer fires")
	}
}

func TestCopy_IndicatorDuration(t *testing.T) {
	if ui.CopiedIndicatorDuration != 2*time.Second {
		t.Errorf("CopiedIndicatorDuration = %v, want 2s", ui.CopiedIndicatorDuration)
	}
}

func TestCopy_IndicatorFollowsCopiedFile(t *testing.T) {
	m, _, _ := browsingModel(t)

	res := copyResult(t, sendKey(m, "c"))
	if res.Index != 0 {
		t.Errorf("result index = %d, want 0", res.Index)
	}
	m.Update(res)

	sendKey(m, "j")
	if got := m.SelectedFile(); got == nil || got.Name != "b.txt" {
		t.Fatalf("selected = %v, want b.txt", got)
	}
	if m.IsCopied() {
		t.Error("indicator should not show on a file that was never copied")
	}
	if view := m.RenderToString(); containsStripped(view, ui.CopiedLabel) {
		t.Errorf("view should not show %q for b.txt", ui.CopiedLabel)
	}

	// Back on the copied file before the timer fires
	sendKey(m, "k")
	if !m.IsCopied() {
		t.Error("indicator should show again on the copied file")
	}

	m.Update(CopyResetMsg{Seq: res.Seq})
	sendKey(m, "j")
	sendKey(m, "k")
	if m.IsCopied() {
		t.Error("indicator should stay cleared after the timer fired")
	}
}

func TestCopy_NewerCopyKeepsIndicator(t *testing.T) {
	m, _, _ := browsingModel(t)

	first := copyResult(t, sendKey(m, "c"))
	m.Update(first)
	second := copyResult(t, sendKey(m, "y"))
	m.Update(second)

	// The first timer fires after the second copy
	m.Update(CopyResetMsg{Seq: first.Seq})
	if !m.IsCopied() {
		t.Error("an old timer must not clear a newer copy's indicator")
	}

	m.Update(CopyResetMsg{Seq: second.Seq})
	if m.IsCopied() {
		t.Error("the latest timer should clear the indicator")
	}
}

func TestCopy_FailureShowsNoIndicator(t *testing.T) {
	m, _, clip := browsingModel(t)
	clip.err = stderrors.New("no display")

	res := copyResult(t, sendKey(m, "c"))
	if res.Err == nil {
		t.Fatal("expected the write error in the result")
	}

	_, cmd := m.Update(res)
	if m.IsCopied() {
		t.Error("failed copy must not show the indicator")
	}
	if cmd != nil {
		t.Error("failed copy should not schedule a reset")
	}
}

func TestCopy_CopiesSelectedFile(t *testing.T) {
	m, _, clip := browsingModel(t)

	sendKey(m, "j")
	copyResult(t, sendKey(m, "c"))

	if clip.last() != "hello" {
		t.Errorf("clipboard = %q, want b.txt content", clip.last())
	}
}

func TestCopy_IgnoredWithoutSelection(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), newFakeSource(), 100, 30)

	if cmd := sendKey(m, "c"); cmd != nil {
		t.Error("copy without a selected file should do nothing")
	}
}

func TestCopy_SessionChangeClearsIndicator(t *testing.T) {
	m, _, _ := browsingModel(t)

	res := copyResult(t, sendKey(m, "c"))
	m.Update(res)
	m.SetSession("chat-2")

	if m.IsCopied() {
		t.Error("switching sessions should clear the indicator")
	}
	// A late result from the old copy does not bring it back
	m.Update(res)
	if m.IsCopied() {
		t.Error("a copy result from before the switch should be ignored")
	}
}

func TestCopy_IndicatorRendered(t *testing.T) {
	m, _, _ := browsingModel(t)

	m.Update(copyResult(t, sendKey(m, "c")))

	if view := m.RenderToString(); !containsStripped(view, ui.CopiedLabel) {
		t.Errorf("view should show %q", ui.CopiedLabel)
	}
}
