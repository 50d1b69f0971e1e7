package cli

import (
	"fmt"
	"strings"

	"github.com/Nojands/FinanzApp/internal/domain/risk"
	"github.com/Nojands/FinanzApp/internal/domain/simulation"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorText   = lipgloss.Color("#FFFCF0")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorYellow = lipgloss.Color("#D0A215")
	colorRed    = lipgloss.Color("#D14D41")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	borderStyle = lipgloss.NewStyle().Foreground(colorBorder)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	greenStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	yellowStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	redStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// Table is a bordered text table. Cells may carry ANSI styling; widths are
// measured on the visible text.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(60).
		Align(lipgloss.Center).
		Padding(0, 1)
	return box.Render(titleStyle.Render(title))
}

func RenderTable(t Table) string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	b.WriteString(rule("╭", "┬", "╮", widths))
	b.WriteString(line(t.Headers, widths, func(s string) string { return headerStyle.Render(s) }))
	b.WriteString(rule("├", "┼", "┤", widths))
	for _, row := range t.Rows {
		b.WriteString(line(row, widths, nil))
	}
	b.WriteString(rule("╰", "┴", "╯", widths))
	return b.String()
}

func rule(left, mid, right string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return borderStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
}

// line pads every cell to its column width. The first column is left aligned,
// the others hold amounts and are right aligned.
func line(cells []string, widths []int, style func(string) string) string {
	var b strings.Builder
	b.WriteString(borderStyle.Render("│"))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := strings.Repeat(" ", w-lipgloss.Width(cell))
		if i == 0 {
			cell = cell + pad
		} else {
			cell = pad + cell
		}
		if style != nil {
			cell = style(cell)
		}
		b.WriteString(" " + cell + " ")
		b.WriteString(borderStyle.Render("│"))
	}
	b.WriteString("\n")
	return b.String()
}

func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Signed renders negative amounts in red.
func Signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return redStyle.Render(Money(d))
	}
	return Money(d)
}

func RiskBadge(level risk.Level) string {
	switch level {
	case risk.LevelGreen:
		return greenStyle.Render("● VERDE")
	case risk.LevelYellow:
		return yellowStyle.Render("● AMARELO")
	case risk.LevelRed:
		return redStyle.Render("● VERMELHO")
	default:
		return mutedStyle.Render(string(level))
	}
}

func VerdictBadge(v simulation.Verdict) string {
	switch v {
	case simulation.VerdictYes:
		return greenStyle.Render("SIM, pode comprar")
	case simulation.VerdictCaution:
		return yellowStyle.Render("COM CAUTELA")
	case simulation.VerdictNo:
		return redStyle.Render("NÃO recomendado")
	default:
		return string(v)
	}
}

func Muted(format string, args ...interface{}) string {
	return mutedStyle.Render(fmt.Sprintf(format, args...))
}
