// Package layout frames a sitting like an exam sheet: a masthead carrying
// the clock, the question area, and a ruled line of key hints.
package layout

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpaper/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 16

	// LowTime is when the clock switches to the warning style.
	LowTime = 5 * time.Minute
)

// KeyHint is one key binding shown under the sheet.
type KeyHint struct {
	Key         string
	Description string
}

// Masthead is the top line of the sheet. Remaining is only drawn when
// Timed is set.
type Masthead struct {
	Paper     string
	Position  string
	Remaining time.Duration
	Timed     bool
}

// Fits reports whether a width x height terminal can hold a sheet.
func Fits(width, height int) bool {
	return width >= MinWidth && height >= MinHeight
}

// TooSmall asks the pupil to enlarge the terminal.
func TooSmall(width, height int) string {
	msg := theme.Body.Render(fmt.Sprintf("Make the window at least %d x %d", MinWidth, MinHeight)) +
		"\n" + theme.Hint.Render(fmt.Sprintf("now %d x %d", width, height))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// Clock renders the time left as m:ss, switching style in the last
// LowTime of the sitting.
func Clock(remaining time.Duration) string {
	remaining = max(remaining, 0).Round(time.Second)
	text := fmt.Sprintf("%d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)
	if remaining <= LowTime {
		return theme.ClockLow.Render(text)
	}
	return theme.Clock.Render(text)
}

// Render draws the masthead over a heavy rule.
func (h Masthead) Render(width int) string {
	left := theme.Title.Render(h.Paper)
	if h.Position != "" {
		left += theme.Subtitle.Render("  " + h.Position)
	}
	var right string
	if h.Timed {
		right = theme.Subtitle.Render("time left ") + Clock(h.Remaining)
	}
	gap := max(width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return " " + left + strings.Repeat(" ", gap) + right + "\n" +
		theme.Rule.Render(strings.Repeat("━", width))
}

// Hints draws the key hints under a light rule.
func Hints(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, theme.Key.Render(h.Key)+" "+theme.Hint.Render(h.Description))
	}
	return theme.Rule.Render(strings.Repeat("─", width)) + "\n " +
		strings.Join(parts, theme.Rule.Render("  ·  "))
}

// Sheet stacks top, body and bottom, padding or clipping body so the
// whole sheet is exactly height lines.
func Sheet(top, body, bottom string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(top)-lipgloss.Height(bottom), 0)
	body = lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, top, body, bottom)
}
