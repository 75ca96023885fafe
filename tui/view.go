package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	doneStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("voicesep — live separation"))
	b.WriteString("\n\n")

	status := "running"
	if m.done {
		status = "done"
	}
	fmt.Fprintf(&b, "epoch %d  slice %s  %s\n\n", m.epoch, m.lastSpan, status)

	b.WriteString(renderCostBar("total  ", m.lastCost.Total))
	b.WriteString(renderCostBar("pitch  ", m.lastCost.Pitch))
	b.WriteString(renderCostBar("gap    ", m.lastCost.Gap))
	b.WriteString(renderCostBar("chord  ", m.lastCost.Chord))
	b.WriteString(renderCostBar("overlap", m.lastCost.Overlap))
	b.WriteString(renderCostBar("cross  ", m.lastCost.Cross))
	b.WriteString("\n")

	b.WriteString(renderParams(m.params))
	b.WriteString("\n")

	if m.done {
		b.WriteString(doneStyle.Render(fmt.Sprintf("separation finished: %d voices", len(m.result.Voices))))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("↑/↓ select  ←/→ adjust  r rerun  q quit"))
	return b.String()
}

func renderCostBar(label string, value float64) string {
	const width = 30
	filled := int(value * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := barStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s %.3f\n", labelStyle.Render(label), bar, value)
}

func renderParams(pm *ParamManager) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("penalty weights"))
	b.WriteString("\n")
	for i, p := range pm.All() {
		line := fmt.Sprintf("%-16s", p.Name)
		if p.IsInt {
			line += fmt.Sprintf("%d", *p.IntValue)
		} else {
			line += fmt.Sprintf("%.2f", *p.Value)
		}
		if i == pm.Selected() {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(labelStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
