package app

import (
	"context"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/codeview/internal/errors"
	"github.com/zhubert/codeview/internal/logger"
	"github.com/zhubert/codeview/internal/ui"
)

// appLog returns the app component logger. It is resolved per call so it
// follows logger.Init and logger.Reset.
func appLog() *slog.Logger {
	return logger.WithComponent("app")
}

// SetSession switches to sessionID. Any in-flight fetch is cancelled and a
// new one is started. A different id clears the list and selection; the same
// id re-fetches and keeps the current list until the result arrives, so a
// failed refresh leaves the previous files in place. An empty id leaves the
// model Empty without fetching.
func (m *Model) SetSession(sessionID string) tea.Cmd {
	sessionID = strings.TrimSpace(sessionID)

	if m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}

	if sessionID != m.sessionID || sessionID == "" {
		m.fileList.Clear()
	}
	m.sessionID = sessionID
	m.header.SetSessionID(sessionID)
	m.copiedIdx = -1
	m.syncViewer()
	m.copySeq++
	m.fetchSeq++
	m.lastFetchErr = nil

	if sessionID == "" {
		m.setState(StateEmpty)
		return nil
	}

	m.recordSession(sessionID)
	m.setState(StateLoading)

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelFetch = cancel

	logger.WithSession(sessionID).Info("fetching code files", "seq", m.fetchSeq)
	return tea.Batch(fetchFiles(ctx, m.source, sessionID, m.fetchSeq), m.startSpinner())
}

// fetchFiles runs one ListFiles call and reports it as a FilesLoadedMsg
func fetchFiles(ctx context.Context, source FileSource, sessionID string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		files, err := source.ListFiles(ctx, sessionID)
		return FilesLoadedMsg{SessionID: sessionID, Seq: seq, Files: files, Err: err}
	}
}

// handleFilesLoaded applies a fetch result unless a newer fetch superseded it
func (m *Model) handleFilesLoaded(msg FilesLoadedMsg) (tea.Model, tea.Cmd) {
	sessionLog := logger.WithSession(msg.SessionID)

	if msg.SessionID != m.sessionID || msg.Seq != m.fetchSeq {
		sessionLog.Debug("discarding stale file list",
			"seq", msg.Seq, "currentSession", m.sessionID, "currentSeq", m.fetchSeq)
		return m, nil
	}

	if m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}

	if msg.Err != nil {
		// The previous list stays as it was; no retry
		m.lastFetchErr = msg.Err
		sessionLog.Error("failed to fetch code files", "error", msg.Err, "kind", errors.GetKind(msg.Err))
		m.settle()
		return m, nil
	}

	m.lastFetchErr = nil
	m.fileList.SetFiles(msg.Files)
	m.syncViewer()
	m.settle()

	sessionLog.Info("code files loaded", "count", len(msg.Files))
	return m, nil
}

// startSpinner starts the loading spinner unless it is already ticking
func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return ui.SpinnerTick()
}

// handleSpinnerTick advances the spinner while loading
func (m *Model) handleSpinnerTick() tea.Cmd {
	if m.state != StateLoading {
		m.spinning = false
		return nil
	}
	m.spinnerFrame++
	return ui.SpinnerTick()
}

// recordSession adds sessionID to the recent sessions and saves the config
func (m *Model) recordSession(sessionID string) {
	if m.config == nil || !m.config.AddRecentSession(sessionID) {
		return
	}
	if m.config.FilePath() == "" {
		return
	}
	if err := m.config.Save(); err != nil {
		appLog().Warn("failed to save recent sessions", "error", err)
	}
}
