package practice

import (
	"cmp"
	"slices"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/session"
)

// ErrNotFinalized is returned when practice is requested for a sitting
// that has not been marked.
var ErrNotFinalized = session.ErrNotFinalized

// AnalyzeErrors returns the questions that did not earn full marks,
// ordered by slot number so earlier, easier mistakes come first.
func AnalyzeErrors(s *session.TestSession) ([]paper.TestQuestion, error) {
	return analyzeRecord(s.Snapshot())
}

func analyzeRecord(rec session.Record) ([]paper.TestQuestion, error) {
	if rec.CompletedAt == nil || rec.Marks == nil {
		return nil, ErrNotFinalized
	}
	awarded := make(map[string]int, len(rec.Marks))
	for _, m := range rec.Marks {
		awarded[m.QuestionID] = m.MarksAwarded
	}

	var wrong []paper.TestQuestion
	for _, q := range rec.Questions {
		if awarded[q.QuestionID] < q.MarkValue {
			wrong = append(wrong, q)
		}
	}
	slices.SortStableFunc(wrong, func(a, b paper.TestQuestion) int {
		return cmp.Compare(a.SlotNumber, b.SlotNumber)
	})
	return wrong, nil
}
