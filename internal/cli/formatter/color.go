package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/parcel/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// KindStyle returns the lipgloss style used for nodes of the given kind.
func KindStyle(kind domain.NodeKind) lipgloss.Style {
	switch kind {
	case domain.KindBox:
		return StyleBold
	case domain.KindReceipt:
		return StylePurple
	case domain.KindTool:
		return StyleYellow
	case domain.KindElectronic:
		return StyleBlue
	case domain.KindAccessory:
		return StyleGreen
	default:
		return StyleFg
	}
}

// KindIcon returns the glyph shown before a node title in tree views.
func KindIcon(kind domain.NodeKind) string {
	switch kind {
	case domain.KindBox:
		return "▣"
	case domain.KindReceipt:
		return "≡"
	default:
		return "•"
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
