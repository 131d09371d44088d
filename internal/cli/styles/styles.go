package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/quadro/internal/config/colors"
	"github.com/thenoetrevino/quadro/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Column styles used by 'board show'
	ColumnStyle lipgloss.Style
	ColumnWidth = 28

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Column:", "Blocks:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "History"

	// Status styles
	BlockedStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	scheme colors.ColorScheme
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	c.ApplyDefaults()
	scheme = c

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.CardBorder)).
		Padding(1, 2).
		Width(CardWidth)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Bold(true).
		MarginTop(1)

	BlockedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Blocked))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg))
}

// KindColor returns the scheme color for a column kind
func KindColor(kind models.ColumnKind) string {
	switch kind {
	case models.ColumnKindInitial:
		return scheme.Initial
	case models.ColumnKindPending:
		return scheme.Pending
	case models.ColumnKindFinal:
		return scheme.Final
	case models.ColumnKindCancel:
		return scheme.Cancel
	default:
		return scheme.Normal
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderKind renders a column kind as "[KIND]" in its color
func RenderKind(kind models.ColumnKind) string {
	return BoldColoredText("["+string(kind)+"]", KindColor(kind))
}

// RenderColumnHeader renders "Name [KIND]"
func RenderColumnHeader(name string, kind models.ColumnKind) string {
	return TitleStyle.Render(name) + " " + RenderKind(kind)
}

// RenderCardLine renders a card as "#ID Title", marked when blocked
// Format: "#12 Write docs" or "#12 Write docs BLOCKED"
func RenderCardLine(id int, title string, blocked bool) string {
	line := LabelStyle.Render(fmt.Sprintf("#%d", id)) + " " + ValueStyle.Render(title)
	if blocked {
		line += " " + BlockedStyle.Render("BLOCKED")
	}
	return line
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderColumn wraps content in a styled column border
func RenderColumn(content string) string {
	return ColumnStyle.Render(content)
}

// JoinColumns lays rendered columns out side by side
func JoinColumns(columns ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
