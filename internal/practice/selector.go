package practice

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/abhisek/mathpaper/internal/session"
)

const (
	// PlanSize is the number of questions in a weekly plan.
	PlanSize = 30

	// PerDay is the number of questions practised each weekday.
	PerDay = 6

	// errorPadThreshold is the error count below which error templates are
	// resampled, up to errorPadTarget questions.
	errorPadThreshold = 10
	errorPadTarget    = 15

	// challengeFromSlot is the first slot of the harder half of the paper.
	challengeFromSlot = 19
)

var weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// Day is one weekday's share of a plan.
type Day struct {
	Day       string               `json:"day"`
	Questions []paper.TestQuestion `json:"questions"`
}

// Plan is a five-day practice plan built from one sitting.
type Plan struct {
	SessionID  string    `json:"session_id"`
	CreatedAt  time.Time `json:"created_at"`
	ErrorCount int       `json:"error_count"`
	Days       []Day     `json:"days"`
}

// Questions returns the plan's questions in order, Monday first.
func (p *Plan) Questions() []paper.TestQuestion {
	var out []paper.TestQuestion
	for _, d := range p.Days {
		out = append(out, d.Questions...)
	}
	return out
}

// Selector turns marked sittings into fresh practice questions.
type Selector struct {
	gen   *problemgen.Generator
	newID func() string
}

// NewSelector creates a Selector drawing from gen. A nil newID defaults to
// random UUIDs.
func NewSelector(gen *problemgen.Generator, newID func() string) *Selector {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Selector{gen: gen, newID: newID}
}

// GenerateVariation produces a fresh question with the same difficulty
// shape as template. The template's constraint flags select the
// specialized generator; when none match, the generic generator for the
// template's type is used.
func (s *Selector) GenerateVariation(template paper.TestQuestion) (paper.TestQuestion, error) {
	q, matched, err := s.gen.GenerateFromFlags(template.Type, template.ConstraintFlags)
	if err != nil {
		return paper.TestQuestion{}, fmt.Errorf("variation of slot %d: %w", template.SlotNumber, err)
	}
	if !matched {
		if q, err = s.gen.Generate(template.Type); err != nil {
			return paper.TestQuestion{}, fmt.Errorf("variation of slot %d: %w", template.SlotNumber, err)
		}
	}
	return paper.TestQuestion{
		Question:        q,
		QuestionID:      s.newID(),
		SlotNumber:      template.SlotNumber,
		MarkValue:       template.MarkValue,
		ConstraintFlags: slices.Clone(template.ConstraintFlags),
	}, nil
}

// GenerateWeeklyPractice builds a 30-question plan from a finalized
// sitting:
//
//  1. one fresh variation per error, in slot order;
//  2. with fewer than 10 errors, more variations of randomly chosen errors
//     until the pool holds 15;
//  3. variations of randomly chosen questions from slot 19 onwards until
//     the pool holds 30.
//
// The pool is truncated to 30 and split into five days of six, Monday to
// Friday, so the week runs from the pupil's own mistakes to harder
// challenges.
func (s *Selector) GenerateWeeklyPractice(ts *session.TestSession, now time.Time) (*Plan, error) {
	rec := ts.Snapshot()
	errs, err := analyzeRecord(rec)
	if err != nil {
		return nil, err
	}

	rng := s.gen.Rand()
	pool := make([]paper.TestQuestion, 0, PlanSize)
	add := func(template paper.TestQuestion) error {
		v, err := s.GenerateVariation(template)
		if err != nil {
			return err
		}
		pool = append(pool, v)
		return nil
	}

	for _, e := range errs {
		if err := add(e); err != nil {
			return nil, err
		}
	}
	if len(errs) > 0 && len(errs) < errorPadThreshold {
		for len(pool) < errorPadTarget {
			if err := add(errs[rng.IntN(len(errs))]); err != nil {
				return nil, err
			}
		}
	}

	var challenges []paper.TestQuestion
	for _, q := range rec.Questions {
		if q.SlotNumber >= challengeFromSlot {
			challenges = append(challenges, q)
		}
	}
	for len(pool) < PlanSize && len(challenges) > 0 {
		if err := add(challenges[rng.IntN(len(challenges))]); err != nil {
			return nil, err
		}
	}
	if len(pool) > PlanSize {
		pool = pool[:PlanSize]
	}

	plan := &Plan{SessionID: rec.SessionID, CreatedAt: now, ErrorCount: len(errs)}
	for i, wd := range weekdays {
		lo, hi := min(i*PerDay, len(pool)), min((i+1)*PerDay, len(pool))
		plan.Days = append(plan.Days, Day{Day: wd.String(), Questions: pool[lo:hi]})
	}

	slog.Info("practice plan built",
		"session_id", rec.SessionID,
		"errors", len(errs),
		"questions", len(pool))
	return plan, nil
}
