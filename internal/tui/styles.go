package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Color Palette
// ---------------------------------------------------------------------------

// ColorPrimary is the main accent color used for titles and highlights.
var ColorPrimary = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// ColorAccent is a green accent for completed items and progress.
var ColorAccent = lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"}

// ColorWarning represents cautionary notes such as the tax disclaimer.
var ColorWarning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// ColorError represents failures, e.g. the advice fallback notice.
var ColorError = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

// ColorMuted is a subdued foreground color for secondary text.
var ColorMuted = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

// ColorBorder is the standard panel border color.
var ColorBorder = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

// ColorHighlight is a background highlight for the selected option or task.
var ColorHighlight = lipgloss.AdaptiveColor{Light: "#EFF6FF", Dark: "#1F2937"}

// ---------------------------------------------------------------------------
// Theme
// ---------------------------------------------------------------------------

// Theme holds all lipgloss styles for the questionnaire screens. Widths are
// not baked in; the views size panels from the current terminal width.
type Theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Badge      lipgloss.Style
	Panel      lipgloss.Style
	Question   lipgloss.Style
	Option     lipgloss.Style
	OptionSel  lipgloss.Style
	Guide      lipgloss.Style
	Term       lipgloss.Style
	Category   lipgloss.Style
	TaskDone   lipgloss.Style
	TaskTitle  lipgloss.Style
	TaskDetail lipgloss.Style
	Reference  lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	Disclaimer lipgloss.Style
}

// DefaultTheme builds the standard theme.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Subtitle: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2),
		Question: lipgloss.NewStyle().
			Bold(true),
		Option: lipgloss.NewStyle().
			Padding(0, 1),
		OptionSel: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorHighlight),
		Guide: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorBorder).
			PaddingLeft(1),
		Term: lipgloss.NewStyle().
			Underline(true),
		Category: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		TaskDone: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(ColorMuted),
		TaskTitle: lipgloss.NewStyle(),
		TaskDetail: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Reference: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Underline(true),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Error: lipgloss.NewStyle().
			Foreground(ColorError),
		Disclaimer: lipgloss.NewStyle().
			Foreground(ColorWarning),
	}
}
