package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/codeview/internal/errors"
	"github.com/zhubert/codeview/internal/ui"
)

// copySelected copies the selected file's full content to the clipboard:
// OSC 52 through the terminal plus the native clipboard. The native write
// decides whether the copied indicator shows.
func (m *Model) copySelected() tea.Cmd {
	file := m.fileList.SelectedFile()
	if file == nil {
		return nil
	}

	m.copySeq++
	seq := m.copySeq
	idx := m.fileList.SelectedIndex()
	name := file.Name
	content := file.Content
	write := m.writeClip

	return tea.Batch(
		// OSC 52 escape sequence (works in modern terminals)
		tea.SetClipboard(content),
		func() tea.Msg {
			var err error
			if write != nil {
				err = write(content)
			}
			return CopyResultMsg{Seq: seq, Index: idx, Name: name, Err: err}
		},
	)
}

// handleCopyResult shows the copied indicator and schedules its reset
func (m *Model) handleCopyResult(msg CopyResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		err := errors.ClipboardWriteFailed(msg.Name, msg.Err)
		appLog().Error("clipboard write failed", "error", err)
		return m, nil
	}
	if msg.Seq != m.copySeq {
		return m, nil
	}

	m.copiedIdx = msg.Index
	m.syncCopied()
	appLog().Debug("copied file", "name", msg.Name, "index", msg.Index, "seq", msg.Seq)

	seq := msg.Seq
	return m, tea.Tick(ui.CopiedIndicatorDuration, func(time.Time) tea.Msg {
		return CopyResetMsg{Seq: seq}
	})
}

// handleCopyReset clears the indicator unless a newer copy superseded it
func (m *Model) handleCopyReset(msg CopyResetMsg) {
	if msg.Seq != m.copySeq {
		return
	}
	m.copiedIdx = -1
	m.syncCopied()
}
