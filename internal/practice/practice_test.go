package practice

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/abhisek/mathpaper/internal/session"
)

var start = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64) *problemgen.Generator {
	return problemgen.New(problemgen.NewRand(seed), problemgen.DefaultConfig())
}

func counter(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// sitPaper builds a finalized session where the slots in wrong are answered
// incorrectly and every other slot correctly.
func sitPaper(t *testing.T, seed uint64, wrong ...int) *session.TestSession {
	t.Helper()
	qs, err := paper.NewAssembler(newTestGenerator(seed), counter("q")).Generate()
	require.NoError(t, err)

	s := session.New("s1", "", qs, start, session.DefaultDuration)
	skip := map[int]bool{}
	for _, w := range wrong {
		skip[w] = true
	}
	for _, q := range qs {
		if skip[q.SlotNumber] {
			continue
		}
		require.NoError(t, s.RecordResponse(q.QuestionID, q.Answer, start))
	}
	require.True(t, s.Finalize(start.Add(20*time.Minute), session.FinishManual))
	return s
}

func TestAnalyzeErrors_OrderedBySlot(t *testing.T) {
	qs := []paper.TestQuestion{
		{QuestionID: "a", SlotNumber: 3, MarkValue: 1},
		{QuestionID: "b", SlotNumber: 31, MarkValue: 2},
		{QuestionID: "c", SlotNumber: 7, MarkValue: 1},
		{QuestionID: "d", SlotNumber: 12, MarkValue: 1},
	}
	completed := start.Add(time.Hour)
	s := session.FromRecord(session.Record{
		SessionID: "s1",
		Questions: qs,
		// Stored out of slot order.
		Marks: []session.QuestionMark{
			{QuestionID: "d", SlotNumber: 12, MarksAwarded: 0},
			{QuestionID: "b", SlotNumber: 31, MarksAwarded: 2},
			{QuestionID: "c", SlotNumber: 7, MarksAwarded: 1},
			{QuestionID: "a", SlotNumber: 3, MarksAwarded: 0},
		},
		TotalMarksAwarded: 3,
		CompletedAt:       &completed,
	})

	errs, err := AnalyzeErrors(s)
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, "a", errs[0].QuestionID)
	assert.Equal(t, "d", errs[1].QuestionID)
}

func TestAnalyzeErrors_PartialMarksCountAsError(t *testing.T) {
	completed := start
	s := session.FromRecord(session.Record{
		Questions:   []paper.TestQuestion{{QuestionID: "x", SlotNumber: 35, MarkValue: 2}},
		Marks:       []session.QuestionMark{{QuestionID: "x", SlotNumber: 35, MarksAwarded: 1}},
		CompletedAt: &completed,
	})
	errs, err := AnalyzeErrors(s)
	require.NoError(t, err)
	assert.Len(t, errs, 1)
}

func TestAnalyzeErrors_NotFinalized(t *testing.T) {
	s := session.New("s1", "", nil, start, time.Minute)
	_, err := AnalyzeErrors(s)
	assert.ErrorIs(t, err, ErrNotFinalized)
}

func TestGenerateVariation_KeepsShape(t *testing.T) {
	qs, err := paper.NewAssembler(newTestGenerator(1), counter("q")).Generate()
	require.NoError(t, err)
	sel := NewSelector(newTestGenerator(2), counter("v"))

	for _, template := range qs {
		v, err := sel.GenerateVariation(template)
		require.NoError(t, err, "slot %d", template.SlotNumber)
		assert.Equal(t, template.Type, v.Type, "slot %d", template.SlotNumber)
		assert.Equal(t, template.SlotNumber, v.SlotNumber)
		assert.Equal(t, template.MarkValue, v.MarkValue)
		assert.Equal(t, template.ConstraintFlags, v.ConstraintFlags)
		assert.NotEqual(t, template.QuestionID, v.QuestionID)
	}
}

func TestGenerateVariation_FallsBackToGeneric(t *testing.T) {
	sel := NewSelector(newTestGenerator(3), nil)
	v, err := sel.GenerateVariation(paper.TestQuestion{
		Question:        problemgen.Question{Type: problemgen.TypeCube},
		SlotNumber:      15,
		MarkValue:       1,
		ConstraintFlags: []string{"retiredFlag"},
	})
	require.NoError(t, err)
	assert.Equal(t, problemgen.TypeCube, v.Type)
	assert.NotEmpty(t, v.QuestionID)
}

func TestGenerateWeeklyPractice_FewErrors(t *testing.T) {
	s := sitPaper(t, 4, 2, 16, 23)
	sel := NewSelector(newTestGenerator(5), counter("p"))

	plan, err := sel.GenerateWeeklyPractice(s, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, plan.ErrorCount)
	require.Len(t, plan.Days, 5)
	assert.Equal(t, "Monday", plan.Days[0].Day)
	assert.Equal(t, "Friday", plan.Days[4].Day)
	for _, d := range plan.Days {
		assert.Len(t, d.Questions, PerDay)
	}

	pool := plan.Questions()
	require.Len(t, pool, PlanSize)
	assert.Equal(t, []int{2, 16, 23}, []int{pool[0].SlotNumber, pool[1].SlotNumber, pool[2].SlotNumber})
	for _, q := range pool[3:15] {
		assert.Contains(t, []int{2, 16, 23}, q.SlotNumber, "padding must resample errors")
	}
	for _, q := range pool[15:] {
		assert.GreaterOrEqual(t, q.SlotNumber, 19, "challenges come from the harder half")
	}
}

func TestGenerateWeeklyPractice_ManyErrors(t *testing.T) {
	var wrong []int
	for slot := 1; slot <= 12; slot++ {
		wrong = append(wrong, slot)
	}
	s := sitPaper(t, 6, wrong...)
	plan, err := NewSelector(newTestGenerator(7), nil).GenerateWeeklyPractice(s, start)
	require.NoError(t, err)

	pool := plan.Questions()
	require.Len(t, pool, PlanSize)
	for i := 0; i < 12; i++ {
		assert.Equal(t, i+1, pool[i].SlotNumber)
	}
	for _, q := range pool[12:] {
		assert.GreaterOrEqual(t, q.SlotNumber, 19)
	}
}

func TestGenerateWeeklyPractice_Truncates(t *testing.T) {
	var wrong []int
	for slot := 1; slot <= 36; slot++ {
		wrong = append(wrong, slot)
	}
	s := sitPaper(t, 8, wrong...)
	plan, err := NewSelector(newTestGenerator(9), nil).GenerateWeeklyPractice(s, start)
	require.NoError(t, err)
	assert.Equal(t, 36, plan.ErrorCount)
	pool := plan.Questions()
	require.Len(t, pool, PlanSize)
	assert.Equal(t, 30, pool[29].SlotNumber)
}

func TestGenerateWeeklyPractice_NoErrors(t *testing.T) {
	s := sitPaper(t, 10)
	plan, err := NewSelector(newTestGenerator(11), nil).GenerateWeeklyPractice(s, start)
	require.NoError(t, err)
	assert.Equal(t, 0, plan.ErrorCount)
	for _, q := range plan.Questions() {
		assert.GreaterOrEqual(t, q.SlotNumber, 19)
	}
	assert.Len(t, plan.Questions(), PlanSize)
}

func TestGenerateWeeklyPractice_NotFinalized(t *testing.T) {
	s := session.New("s1", "", nil, start, time.Minute)
	_, err := NewSelector(newTestGenerator(12), nil).GenerateWeeklyPractice(s, start)
	assert.ErrorIs(t, err, ErrNotFinalized)
}
