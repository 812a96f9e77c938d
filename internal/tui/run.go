package tui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathpaper/internal/session"
	"github.com/abhisek/mathpaper/internal/store"
)

// Run sits ts in the terminal until it is handed in or its time runs out,
// and returns the marked summary. The exam timer finalizes the session
// even when the program is not reading input.
func Run(ts *session.TestSession, repo store.SessionRepo) (*session.Summary, error) {
	m := NewSitting(ts, repo, time.Now)
	p := tea.NewProgram(m)

	timer := session.StartTimer(ts, time.Now, func(bool) {
		p.Send(timeUpMsg{})
	})
	defer timer.Stop()

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run sitting: %w", err)
	}
	sitting, ok := final.(*Sitting)
	if !ok || sitting.Summary() == nil {
		return nil, session.ErrNotFinalized
	}
	return sitting.Summary(), nil
}
