// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/4 of total width)
	SidebarWidthRatio = 4

	// MinSidebarWidth keeps file names readable on narrow terminals
	MinSidebarWidth = 24

	// MaxSidebarWidth matches a fixed-width file rail on wide terminals
	MaxSidebarWidth = 40

	// SidebarTitleHeight is the "Files" title plus its separator
	SidebarTitleHeight = 2

	// ViewerHeaderHeight is the file header plus its bottom border
	ViewerHeaderHeight = 2

	// MinTerminalWidth and MinTerminalHeight clamp layout math
	MinTerminalWidth  = 40
	MinTerminalHeight = 10

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)

// Timing
const (
	// CopiedIndicatorDuration is how long the copy button shows "copied"
	CopiedIndicatorDuration = 2 * time.Second

	// SpinnerInterval is the loading spinner frame interval
	SpinnerInterval = 100 * time.Millisecond
)

// SyntaxStyle is the chroma style used for all code, independent of the UI theme.
const SyntaxStyle = "monokai"
