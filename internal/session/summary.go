package session

import (
	"time"

	"github.com/abhisek/mathpaper/internal/problemgen"
)

// TypeResult aggregates marks for one question type.
type TypeResult struct {
	Type      problemgen.QuestionType
	Questions int
	Correct   int
	Marks     int
	MaxMarks  int
}

// Summary holds the data shown once a sitting is marked.
type Summary struct {
	SessionID   string
	Student     string
	Duration    time.Duration
	Reason      FinishReason
	Questions   int
	Answered    int
	Correct     int
	Marks       int
	MaxMarks    int
	Percentage  float64
	TypeResults []TypeResult
	WrongSlots  []int
}

// BuildSummary creates a Summary from a finalized session. Type results
// appear in the order their first question appears on the paper.
func BuildSummary(s *TestSession) (*Summary, error) {
	rec := s.Snapshot()
	if rec.CompletedAt == nil {
		return nil, ErrNotFinalized
	}

	sum := &Summary{
		SessionID: rec.SessionID,
		Student:   rec.Student,
		Duration:  rec.CompletedAt.Sub(rec.StartedAt),
		Reason:    rec.FinishReason,
		Questions: len(rec.Questions),
		Marks:     rec.TotalMarksAwarded,
	}

	awarded := make(map[string]int, len(rec.Marks))
	for _, m := range rec.Marks {
		awarded[m.QuestionID] = m.MarksAwarded
	}

	index := map[problemgen.QuestionType]int{}
	for _, q := range rec.Questions {
		got := awarded[q.QuestionID]
		sum.MaxMarks += q.MarkValue
		if r, ok := rec.Responses[q.QuestionID]; ok && r.Latest.Answer != "" {
			sum.Answered++
		}

		i, ok := index[q.Type]
		if !ok {
			i = len(sum.TypeResults)
			index[q.Type] = i
			sum.TypeResults = append(sum.TypeResults, TypeResult{Type: q.Type})
		}
		tr := &sum.TypeResults[i]
		tr.Questions++
		tr.Marks += got
		tr.MaxMarks += q.MarkValue

		if got == q.MarkValue {
			sum.Correct++
			tr.Correct++
		} else {
			sum.WrongSlots = append(sum.WrongSlots, q.SlotNumber)
		}
	}

	if sum.MaxMarks > 0 {
		sum.Percentage = float64(sum.Marks) / float64(sum.MaxMarks) * 100
	}
	return sum, nil
}
