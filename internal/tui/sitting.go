// Package tui runs a timed sitting of a paper in the terminal.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/session"
	"github.com/abhisek/mathpaper/internal/store"
	"github.com/abhisek/mathpaper/internal/ui/components"
	"github.com/abhisek/mathpaper/internal/ui/layout"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseConfirmEnd
	phaseSummary
)

// Sitting is the Bubble Tea model for one sitting. Answers are recorded on
// the session and appended to the response log as they are entered.
type Sitting struct {
	sess      *session.TestSession
	repo      store.SessionRepo
	now       func() time.Time
	questions []paper.TestQuestion

	current int
	input   components.AnswerInput
	phase   phase
	summary *session.Summary
	errMsg  string

	width  int
	height int
}

var _ tea.Model = (*Sitting)(nil)

// NewSitting creates a sitting over ts. repo may be nil, in which case
// nothing is persisted. now defaults to time.Now.
func NewSitting(ts *session.TestSession, repo store.SessionRepo, now func() time.Time) *Sitting {
	if now == nil {
		now = time.Now
	}
	m := &Sitting{
		sess:      ts,
		repo:      repo,
		now:       now,
		questions: ts.Questions(),
	}
	m.focus(0)
	return m
}

// Summary returns the marked result once the sitting has ended.
func (m *Sitting) Summary() *session.Summary {
	return m.summary
}

func (m *Sitting) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.input.Init())
}

func (m *Sitting) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timerTickMsg:
		if m.phase == phaseSummary {
			return m, nil
		}
		if m.sess.Remaining(m.now()) <= 0 {
			return m, m.finish(session.FinishExpired)
		}
		return m, tickCmd()

	case timeUpMsg:
		if m.phase == phaseSummary {
			return m, nil
		}
		return m, m.finish(session.FinishExpired)

	case finishMsg:
		return m, m.finish(session.FinishManual)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseAnswering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Sitting) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.phase {
	case phaseSummary:
		return m, tea.Quit

	case phaseConfirmEnd:
		switch key {
		case "y", "Y":
			return m, func() tea.Msg { return finishMsg{} }
		case "n", "N", "esc":
			m.phase = phaseAnswering
		}
		return m, nil
	}

	switch key {
	case "ctrl+c":
		m.record()
		return m, func() tea.Msg { return finishMsg{} }
	case "esc":
		m.record()
		m.phase = phaseConfirmEnd
		return m, nil
	case "enter":
		m.record()
		return m, m.focus(m.current + 1)
	case "tab", "down":
		m.record()
		return m, m.focus(m.current + 1)
	case "shift+tab", "up":
		m.record()
		return m, m.focus(m.current - 1)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// focus moves to question i, clamped to the paper, and loads its latest
// answer into the input.
func (m *Sitting) focus(i int) tea.Cmd {
	m.current = min(max(i, 0), len(m.questions)-1)
	var latest string
	if len(m.questions) > 0 {
		latest, _ = m.sess.LatestAnswer(m.questions[m.current].QuestionID)
	}
	m.input = components.NewAnswerInput("Type your answer...", latest, 24)
	return m.input.Init()
}

// record saves the input as the current question's response when it
// differs from the latest recorded answer.
func (m *Sitting) record() {
	if len(m.questions) == 0 || m.input.Saved() {
		return
	}
	answer := m.input.Value()
	q := m.questions[m.current]
	if latest, _ := m.sess.LatestAnswer(q.QuestionID); latest == answer {
		m.input.MarkSaved()
		return
	}

	at := m.now()
	if err := m.sess.RecordResponse(q.QuestionID, answer, at); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.input.MarkSaved()

	if m.repo == nil {
		return
	}
	_, err := m.repo.AppendResponse(context.Background(), store.ResponseEvent{
		SessionID:  m.sess.ID(),
		QuestionID: q.QuestionID,
		SlotNumber: q.SlotNumber,
		Answer:     answer,
		RecordedAt: at,
	})
	if err != nil {
		m.errMsg = fmt.Sprintf("save answer: %v", err)
	}
}

// finish finalizes the session, stores it, and shows the summary. The
// session may already have been finalized by the exam timer.
func (m *Sitting) finish(reason session.FinishReason) tea.Cmd {
	if m.phase == phaseSummary {
		return nil
	}
	m.sess.Finalize(m.now(), reason)

	if m.repo != nil {
		if err := m.repo.Save(context.Background(), m.sess.Snapshot()); err != nil {
			m.errMsg = fmt.Sprintf("save session: %v", err)
		}
	}

	sum, err := session.BuildSummary(m.sess)
	if err != nil {
		m.errMsg = err.Error()
		return tea.Quit
	}
	m.summary = sum
	m.phase = phaseSummary
	return nil
}

func (m *Sitting) answered() int {
	n := 0
	for _, q := range m.questions {
		if a, ok := m.sess.LatestAnswer(q.QuestionID); ok && a != "" {
			n++
		}
	}
	return n
}

func (m *Sitting) keyHints() []layout.KeyHint {
	switch m.phase {
	case phaseConfirmEnd:
		return []layout.KeyHint{
			{Key: "Y", Description: "Hand in"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseSummary:
		return []layout.KeyHint{{Key: "any key", Description: "Exit"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Save & next"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Esc", Description: "Hand in"},
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
