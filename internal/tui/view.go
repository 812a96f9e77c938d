package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpaper/internal/ui/components"
	"github.com/abhisek/mathpaper/internal/ui/layout"
	"github.com/abhisek/mathpaper/internal/ui/theme"
)

func (m *Sitting) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if !layout.Fits(m.width, m.height) {
		v.SetContent(layout.TooSmall(m.width, m.height))
		return v
	}

	top := m.masthead().Render(m.width)
	bottom := layout.Hints(m.keyHints(), m.width)
	v.SetContent(layout.Sheet(top, m.content(m.width), bottom, m.width, m.height))
	return v
}

func (m *Sitting) masthead() layout.Masthead {
	h := layout.Masthead{Paper: "Arithmetic paper"}
	if m.phase == phaseSummary {
		h.Position = "Results"
		return h
	}
	h.Timed = true
	h.Remaining = m.sess.Remaining(m.now())
	if len(m.questions) > 0 {
		h.Position = fmt.Sprintf("Question %d of %d", m.current+1, len(m.questions))
	}
	return h
}

func (m *Sitting) content(width int) string {
	var b strings.Builder
	switch m.phase {
	case phaseSummary:
		b.WriteString(RenderSummary(m.summary))
	case phaseConfirmEnd:
		b.WriteString(m.renderConfirm(width))
	default:
		b.WriteString(m.renderQuestion(width))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Render("  " + m.errMsg))
	}
	return b.String()
}

func (m *Sitting) renderQuestion(width int) string {
	if len(m.questions) == 0 {
		return theme.Hint.Render("\n  This paper has no questions.")
	}
	q := m.questions[m.current]

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(components.NewProgressBar("Answered", m.answered(), len(m.questions), width-8).View())
	b.WriteString("\n")
	b.WriteString(theme.Rule.Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	marks := "1 mark"
	if q.MarkValue != 1 {
		marks = fmt.Sprintf("%d marks", q.MarkValue)
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		theme.SlotNumber.Render(fmt.Sprintf("%d.", q.SlotNumber)) + "  " + theme.Marks.Render(marks)))
	b.WriteString("\n\n")

	b.WriteString(theme.Prompt.Width(width).Align(lipgloss.Center).Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + m.input.View()))
	return b.String()
}

func (m *Sitting) renderConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Inherit(theme.Prompt).Render("Hand in your paper?"))
	b.WriteString("\n")
	b.WriteString(center.Inherit(theme.Subtitle).Render(
		fmt.Sprintf("You have answered %d of %d questions.", m.answered(), len(m.questions))))
	b.WriteString("\n\n")
	b.WriteString(center.Inherit(theme.Correct).Render("[Y] Yes, hand in"))
	b.WriteString("\n")
	b.WriteString(center.Inherit(theme.Title).Render("[N] No, keep going"))
	return b.String()
}
