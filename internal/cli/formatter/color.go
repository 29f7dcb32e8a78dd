package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/daneverett/homeslate/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles. SetInteractive rebuilds these, so keep
// references to the variables rather than copies.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

var interactive bool

func init() {
	SetInteractive(true)
}

// SetInteractive toggles ANSI styling. When stdout is a pipe or a
// redirect the CLI calls this with false so downstream tools see
// plain text.
func SetInteractive(on bool) {
	interactive = on
	if !on {
		plain := lipgloss.NewStyle()
		StyleGreen = plain
		StyleYellow = plain
		StyleRed = plain
		StyleBlue = plain
		StylePurple = plain
		StyleDim = plain
		StyleFg = plain
		StyleHeader = plain
		StyleBold = plain
		return
	}
	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// Interactive reports whether styled rendering is enabled.
func Interactive() bool {
	return interactive
}

// TierColor returns the lipgloss style corresponding to a priority tier.
func TierColor(tier domain.PriorityTier) lipgloss.Style {
	switch tier {
	case domain.TierCritical:
		return StyleRed
	case domain.TierImportant:
		return StyleYellow
	case domain.TierFlexible:
		return StyleGreen
	default:
		return StyleDim
	}
}

// TierIndicator returns a colored tier indicator string such as "● CRITICAL".
func TierIndicator(tier domain.PriorityTier) string {
	switch tier {
	case domain.TierCritical:
		return StyleRed.Render("● CRITICAL")
	case domain.TierImportant:
		return StyleYellow.Render("● IMPORTANT")
	case domain.TierFlexible:
		return StyleGreen.Render("● FLEXIBLE")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// StatusPill returns a colored indicator for a work item status.
func StatusPill(status domain.WorkItemStatus) string {
	switch status {
	case domain.WorkItemPending:
		return StyleBlue.Render("pending")
	case domain.WorkItemScheduled:
		return StylePurple.Render("scheduled")
	case domain.WorkItemDone:
		return StyleGreen.Render("done")
	case domain.WorkItemSkipped:
		return StyleDim.Render("skipped")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
