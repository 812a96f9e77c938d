package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathpaper/internal/ui/theme"
)

// answerRunes are the characters that can appear in an answer: digits,
// separators, fraction and decimal marks, and the remainder notations.
const answerRunes = "0123456789 ,./-remaindREMAIND"

// AnswerInput wraps bubbles/textinput for typing answers.
type AnswerInput struct {
	Model    textinput.Model
	MaxWidth int
	saved    bool
}

// NewAnswerInput creates a focused input holding value.
func NewAnswerInput(placeholder, value string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	ti.SetValue(value)
	ti.Focus()

	return AnswerInput{Model: ti, MaxWidth: maxWidth, saved: value != ""}
}

// Init returns the initial command.
func (t AnswerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Printable keys that cannot appear in an
// answer are dropped.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len([]rune(key)) == 1 && !strings.ContainsRune(answerRunes, []rune(key)[0]) {
			return t, nil
		}
	}

	before := t.Model.Value()
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != before {
		t.saved = false
	}
	return t, cmd
}

// View renders the input with a marker once the value is recorded.
func (t AnswerInput) View() string {
	view := t.Model.View()
	if t.saved {
		view += " " + theme.Correct.Render("✓")
	}
	return view
}

// Value returns the trimmed input value.
func (t AnswerInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// MarkSaved shows the recorded marker until the value changes again.
func (t *AnswerInput) MarkSaved() {
	t.saved = true
}

// Saved reports whether the current value has been recorded.
func (t AnswerInput) Saved() bool {
	return t.saved
}
