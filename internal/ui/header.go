package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Header represents the top header bar
type Header struct {
	width           int
	sessionID       string
	generationIndex int
	hasGeneration   bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSessionID sets the session shown on the right of the header
func (h *Header) SetSessionID(id string) {
	h.sessionID = id
}

// SetGenerationIndex sets the generation shown next to the session.
// Negative values hide it.
func (h *Header) SetGenerationIndex(idx int) {
	h.generationIndex = idx
	h.hasGeneration = idx >= 0
}

// View renders the header
func (h *Header) View() string {
	titleText := " codeview"
	var rightText, mutedText string
	if h.sessionID != "" {
		rightText = "session " + h.sessionID
		if h.hasGeneration {
			mutedText = fmt.Sprintf(" (gen %d)", h.generationIndex)
		}
	}
	right := rightText + mutedText
	if right != "" {
		right += " "
	}

	paddingLen := h.width - ansi.StringWidth(titleText) - ansi.StringWidth(right)
	if paddingLen < 0 {
		// Not enough room: keep the title and cut the session text
		right = ansi.Truncate(right, max(h.width-ansi.StringWidth(titleText)-1, 0), "…")
		paddingLen = max(h.width-ansi.StringWidth(titleText)-ansi.StringWidth(right), 0)
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + right

	mutedStart := -1
	if mutedText != "" {
		mutedStart = strings.Index(fullContent, mutedText)
	}

	return h.renderGradient(fullContent, mutedStart)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// Bytes from mutedStart onward use the muted text color.
func (h *Header) renderGradient(content string, mutedStart int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	bytePos := 0
	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 9) // Bold for "codeview" title

		if mutedStart >= 0 && bytePos >= mutedStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
		bytePos += len(string(r))
	}

	return result.String()
}
