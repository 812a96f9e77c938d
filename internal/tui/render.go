package tui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/practice"
	"github.com/abhisek/mathpaper/internal/session"
	"github.com/abhisek/mathpaper/internal/ui/theme"
)

// RenderPaper renders qs one per line for printing to a terminal. With
// withAnswers set each line ends with the correct answer.
func RenderPaper(qs []paper.TestQuestion, withAnswers bool) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Arithmetic paper"))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   %d questions, %d marks", len(qs), paper.TotalMarks(qs))))
	b.WriteString("\n\n")
	for _, q := range qs {
		b.WriteString(questionLine(q, withAnswers))
		b.WriteString("\n")
	}
	return b.String()
}

func questionLine(q paper.TestQuestion, withAnswer bool) string {
	line := theme.SlotNumber.Render(fmt.Sprintf("%d.", q.SlotNumber)) + "  " +
		theme.Body.Width(36).Render(q.Text)
	if q.MarkValue != 1 {
		line += theme.Marks.Render(fmt.Sprintf(" [%d marks]", q.MarkValue))
	}
	if withAnswer {
		line += "  " + theme.Answer.Render(q.Answer)
	}
	return line
}

// RenderSummary renders a marked sitting.
func RenderSummary(sum *session.Summary) string {
	if sum == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Score: %d / %d", sum.Marks, sum.MaxMarks)))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   %.1f%%", sum.Percentage)))
	b.WriteString("\n")

	ended := "handed in"
	if sum.Reason == session.FinishExpired {
		ended = "time ran out"
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Answered %d of %d, %s after %s",
		sum.Answered, sum.Questions, ended, sum.Duration.Round(time.Second))))
	b.WriteString("\n\n")

	for _, tr := range sum.TypeResults {
		style := theme.Correct
		if tr.Marks < tr.MaxMarks {
			style = theme.Incorrect
		}
		b.WriteString(fmt.Sprintf("  %-28s %s\n", tr.Type,
			style.Render(fmt.Sprintf("%d/%d", tr.Marks, tr.MaxMarks))))
	}

	if len(sum.WrongSlots) > 0 {
		slots := make([]string, len(sum.WrongSlots))
		for i, s := range sum.WrongSlots {
			slots[i] = fmt.Sprint(s)
		}
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("To practise: "))
		b.WriteString(theme.Body.Render("questions " + strings.Join(slots, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPlan renders a weekly practice plan grouped by day.
func RenderPlan(plan *practice.Plan, withAnswers bool) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Practice plan"))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   from %d mistakes", plan.ErrorCount)))
	b.WriteString("\n")

	for _, day := range plan.Days {
		var lines []string
		for _, q := range day.Questions {
			lines = append(lines, questionLine(q, withAnswers))
		}
		card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			append([]string{theme.Title.Render(day.Day)}, lines...)...))
		b.WriteString("\n")
		b.WriteString(card)
	}
	b.WriteString("\n")
	return b.String()
}
