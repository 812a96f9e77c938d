package session

import "time"

// Timer finalizes a session when its time runs out. Ending the sitting by
// hand and expiry race safely: whichever reaches Finalize first wins.
type Timer struct {
	t *time.Timer
}

// StartTimer arms a timer for the time remaining on s. onExpire, if set,
// runs on the timer goroutine after Finalize and receives its result.
func StartTimer(s *TestSession, now func() time.Time, onExpire func(finalized bool)) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{t: time.AfterFunc(s.Remaining(now()), func() {
		ok := s.Finalize(now(), FinishExpired)
		if onExpire != nil {
			onExpire(ok)
		}
	})}
}

// Stop disarms the timer. It reports false if the timer already fired.
func (t *Timer) Stop() bool {
	return t.t.Stop()
}
