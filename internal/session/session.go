package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathpaper/internal/paper"
)

// DefaultDuration is the length of a sitting.
const DefaultDuration = 30 * time.Minute

var (
	// ErrFinalized is returned when a response arrives after the sitting
	// has been marked.
	ErrFinalized = errors.New("session already finalized")

	// ErrUnknownQuestion is returned for a response to a question that is
	// not on the paper.
	ErrUnknownQuestion = errors.New("question not on this paper")

	// ErrNotFinalized is returned by operations that need marks.
	ErrNotFinalized = errors.New("session not finalized")
)

// FinishReason records what ended a sitting.
type FinishReason string

const (
	FinishManual  FinishReason = "manual"
	FinishExpired FinishReason = "expired"
)

// Response is one answer as typed by the pupil.
type Response struct {
	Answer string    `json:"answer"`
	At     time.Time `json:"at"`
}

// ResponseRecord holds the latest answer to a question and every answer it
// replaced, oldest first.
type ResponseRecord struct {
	Latest  Response   `json:"latest"`
	History []Response `json:"history"`
}

// QuestionMark is the score given to one question at finalization.
type QuestionMark struct {
	QuestionID   string `json:"question_id"`
	SlotNumber   int    `json:"slot_number"`
	MarksAwarded int    `json:"marks_awarded"`
}

// Record is the serializable state of a sitting. It round-trips through
// JSON unchanged, including in-flight response history.
type Record struct {
	SessionID       string                     `json:"session_id"`
	Student         string                     `json:"student,omitempty"`
	StartedAt       time.Time                  `json:"started_at"`
	DurationSeconds int                        `json:"duration_seconds"`
	EndsAt          time.Time                  `json:"ends_at"`
	Questions       []paper.TestQuestion       `json:"questions"`
	Responses       map[string]*ResponseRecord `json:"responses"`

	// Marks is nil until the session is finalized.
	Marks             []QuestionMark `json:"marks"`
	TotalMarksAwarded int            `json:"total_marks_awarded"`
	CompletedAt       *time.Time     `json:"completed_at"`
	FinishReason      FinishReason   `json:"finish_reason,omitempty"`
}

// TestSession is the aggregate root for one sitting. Responses accumulate
// until the session is finalized exactly once, after which it is read-only.
// It is safe for concurrent use; the exam timer finalizes from its own
// goroutine.
type TestSession struct {
	mu  sync.Mutex
	rec Record
}

// NewID returns a random session ID.
func NewID() string {
	return uuid.NewString()
}

// New starts a sitting of questions at startedAt.
func New(id, student string, questions []paper.TestQuestion, startedAt time.Time, duration time.Duration) *TestSession {
	return &TestSession{rec: Record{
		SessionID:       id,
		Student:         student,
		StartedAt:       startedAt,
		DurationSeconds: int(duration / time.Second),
		EndsAt:          startedAt.Add(duration),
		Questions:       slices.Clone(questions),
		Responses:       make(map[string]*ResponseRecord),
	}}
}

// FromRecord restores a session, for example after loading it from the
// store.
func FromRecord(r Record) *TestSession {
	r = cloneRecord(r)
	if r.Responses == nil {
		r.Responses = make(map[string]*ResponseRecord)
	}
	return &TestSession{rec: r}
}

// ID returns the session ID.
func (s *TestSession) ID() string {
	return s.rec.SessionID
}

// EndsAt returns when the sitting's time runs out.
func (s *TestSession) EndsAt() time.Time {
	return s.rec.EndsAt
}

// Questions returns the paper in slot order.
func (s *TestSession) Questions() []paper.TestQuestion {
	return s.rec.Questions
}

// Snapshot returns a deep copy of the current state.
func (s *TestSession) Snapshot() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecord(s.rec)
}

// IsFinalized reports whether the session has been marked.
func (s *TestSession) IsFinalized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.CompletedAt != nil
}

// Remaining returns the time left at now, never negative.
func (s *TestSession) Remaining(now time.Time) time.Duration {
	return max(s.rec.EndsAt.Sub(now), 0)
}

// RecordResponse stores answer as the latest response to questionID. Any
// previous latest answer is appended to the history first.
func (s *TestSession) RecordResponse(questionID, answer string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec.CompletedAt != nil {
		return ErrFinalized
	}
	if s.question(questionID) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}

	next := Response{Answer: answer, At: at}
	r, ok := s.rec.Responses[questionID]
	if !ok {
		s.rec.Responses[questionID] = &ResponseRecord{Latest: next, History: []Response{}}
		return nil
	}
	r.History = append(r.History, r.Latest)
	r.Latest = next
	return nil
}

// LatestAnswer returns the pupil's current answer to questionID.
func (s *TestSession) LatestAnswer(questionID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rec.Responses[questionID]
	if !ok {
		return "", false
	}
	return r.Latest.Answer, true
}

// Finalize marks every question against its latest response and closes
// the session. Only the first call has any effect; it returns true for
// that call and false for every later one.
func (s *TestSession) Finalize(at time.Time, reason FinishReason) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec.CompletedAt != nil {
		return false
	}

	marks := make([]QuestionMark, 0, len(s.rec.Questions))
	total := 0
	for i := range s.rec.Questions {
		q := &s.rec.Questions[i]
		var answer string
		if r, ok := s.rec.Responses[q.QuestionID]; ok {
			answer = r.Latest.Answer
		}
		awarded := q.Mark(answer)
		total += awarded
		marks = append(marks, QuestionMark{QuestionID: q.QuestionID, SlotNumber: q.SlotNumber, MarksAwarded: awarded})
	}

	completed := at
	s.rec.Marks = marks
	s.rec.TotalMarksAwarded = total
	s.rec.CompletedAt = &completed
	s.rec.FinishReason = reason

	slog.Info("session finalized",
		"session_id", s.rec.SessionID,
		"reason", reason,
		"marks", total,
		"max_marks", paper.TotalMarks(s.rec.Questions))
	return true
}

func (s *TestSession) question(id string) *paper.TestQuestion {
	for i := range s.rec.Questions {
		if s.rec.Questions[i].QuestionID == id {
			return &s.rec.Questions[i]
		}
	}
	return nil
}

func (s *TestSession) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

func (s *TestSession) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if r.Responses == nil {
		r.Responses = make(map[string]*ResponseRecord)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = r
	return nil
}

func cloneRecord(r Record) Record {
	out := r
	out.Questions = slices.Clone(r.Questions)
	if r.Responses != nil {
		out.Responses = maps.Clone(r.Responses)
		for id, rr := range r.Responses {
			c := *rr
			c.History = slices.Clone(rr.History)
			out.Responses[id] = &c
		}
	}
	out.Marks = slices.Clone(r.Marks)
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		out.CompletedAt = &t
	}
	return out
}
