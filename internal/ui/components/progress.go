package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/ui/theme"
)

var (
	progressLabelStyle   = lipgloss.NewStyle().Foreground(theme.Text)
	progressFilledStyle  = lipgloss.NewStyle().Background(theme.Secondary)
	progressEmptyStyle   = lipgloss.NewStyle().Background(theme.Border)
	progressPercentStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar. The bar flexes to fill whatever width
// the label and percentage readout leave over, never below 4 cells.
func (p ProgressBar) View() string {
	var b strings.Builder

	label := ""
	if p.Label != "" {
		label = progressLabelStyle.Render(p.Label) + "  "
		b.WriteString(label)
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - lipgloss.Width(label) - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = min(max(filled, 0), barWidth)

	b.WriteString(progressFilledStyle.Render(strings.Repeat(" ", filled)))
	b.WriteString(progressEmptyStyle.Render(strings.Repeat(" ", barWidth-filled)))

	if p.ShowPercent {
		b.WriteString(progressPercentStyle.Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}

	return b.String()
}
