package ui

import "charm.land/lipgloss/v2"

// Color palette, replaced by regenerateStyles when the theme changes
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple when focused
	ColorBg          = lipgloss.Color("#1F2937") // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorError       = lipgloss.Color("#EF4444") // Red
	ColorSuccess     = lipgloss.Color("#10B981") // Green
	ColorGutter      = lipgloss.Color("#6B7280") // Line numbers
)

var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
	HeaderMetaStyle  lipgloss.Style

	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style

	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style

	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarIconStyle     lipgloss.Style

	ViewerHeaderStyle     lipgloss.Style
	ViewerFileNameStyle   lipgloss.Style
	CopyButtonStyle       lipgloss.Style
	CopyButtonCopiedStyle lipgloss.Style
	GutterStyle           lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	StatusLoadingStyle lipgloss.Style
	StatusEmptyStyle   lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

func init() {
	regenerateStyles()
}

// buildStyles rebuilds every style from the palette and theme
func buildStyles(t Theme) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	HeaderMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	SidebarIconStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	ViewerHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ViewerFileNameStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	CopyButtonStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Border(lipgloss.RoundedBorder(), false, true).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	CopyButtonCopiedStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true).
		Border(lipgloss.RoundedBorder(), false, true).
		BorderForeground(ColorSuccess).
		Padding(0, 1)

	GutterStyle = lipgloss.NewStyle().
		Foreground(ColorGutter)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
