// Package ui provides the user interface components for codeview.
//
// # Overview
//
// The ui package implements the visual components using the Bubble Tea
// framework and Lipgloss styling library. Components follow the
// Model-Update-View pattern established by Bubble Tea and are composed by
// the app package.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├──────────────┬──────────────────────────────────────┤
//	│              │ ▤ name  lang · n lines      ⧉ copy   │
//	│   FileList   ├──────────────────────────────────────┤
//	│   (1/4,      │  1 │ highlighted code                │
//	│   24..40)    │  2 │ ...                             │
//	│              │                                      │
//	├──────────────┴──────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// While loading, or when a session has no files, both panels are replaced
// by a single placeholder panel (RenderLoading, RenderEmpty).
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: App title, session id and generation index over a gradient.
//
// Footer: Context-aware keyboard shortcuts.
//
// FileList: One row per file in server order. Selection is positional.
//
// Viewer: File header with a copy button above a viewport holding the
// chroma-highlighted content with a line-number gutter and soft wrapping.
//
// Modal: Popup dialogs. SessionPromptState switches the session.
//
// # Styles
//
// Styles are rebuilt from the active Theme by regenerateStyles. Code is
// always highlighted with the SyntaxStyle chroma style regardless of theme.
package ui
