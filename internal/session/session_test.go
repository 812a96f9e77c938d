package session

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/problemgen"
)

var start = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testQuestions() []paper.TestQuestion {
	return []paper.TestQuestion{
		{
			Question:        problemgen.Question{Type: problemgen.TypeMultiplyByPowerOf10, Text: "4.2 × 100 =", Answer: "420", Operands: []string{"4.2", "100"}},
			QuestionID:      "q1",
			SlotNumber:      1,
			MarkValue:       1,
			ConstraintFlags: []string{problemgen.FlagMultiplyBy10_100_1000},
		},
		{
			Question:        problemgen.Question{Type: problemgen.TypeFractionAddition, Text: "1/4 + 1/4 =", Answer: "1/2", Operands: []string{"1/4", "1/4"}},
			QuestionID:      "q2",
			SlotNumber:      16,
			MarkValue:       1,
			ConstraintFlags: []string{problemgen.FlagFractionSameDenominator},
		},
		{
			Question:        problemgen.Question{Type: problemgen.TypeLongDivision, Text: "966 ÷ 42 =", Answer: "23", Operands: []string{"966", "42"}},
			QuestionID:      "q3",
			SlotNumber:      33,
			MarkValue:       2,
			ConstraintFlags: []string{problemgen.FlagDivision3By2},
		},
	}
}

func testSession() *TestSession {
	return New("s1", "Asha", testQuestions(), start, DefaultDuration)
}

func TestNew(t *testing.T) {
	s := testSession()
	rec := s.Snapshot()
	assert.Equal(t, 1800, rec.DurationSeconds)
	assert.Equal(t, start.Add(30*time.Minute), rec.EndsAt)
	assert.Nil(t, rec.Marks)
	assert.Nil(t, rec.CompletedAt)
	assert.False(t, s.IsFinalized())
}

func TestRecordResponse_AppendsHistory(t *testing.T) {
	s := testSession()
	require.NoError(t, s.RecordResponse("q1", "42", start.Add(time.Minute)))
	require.NoError(t, s.RecordResponse("q1", "4200", start.Add(2*time.Minute)))
	require.NoError(t, s.RecordResponse("q1", "420", start.Add(3*time.Minute)))

	r := s.Snapshot().Responses["q1"]
	assert.Equal(t, "420", r.Latest.Answer)
	require.Len(t, r.History, 2)
	assert.Equal(t, "42", r.History[0].Answer)
	assert.Equal(t, "4200", r.History[1].Answer)
	assert.Equal(t, start.Add(time.Minute), r.History[0].At)

	got, ok := s.LatestAnswer("q1")
	assert.True(t, ok)
	assert.Equal(t, "420", got)
}

func TestRecordResponse_UnknownQuestion(t *testing.T) {
	err := testSession().RecordResponse("nope", "1", start)
	assert.True(t, errors.Is(err, ErrUnknownQuestion))
}

func TestRecordResponse_AfterFinalize(t *testing.T) {
	s := testSession()
	s.Finalize(start.Add(time.Minute), FinishManual)
	assert.ErrorIs(t, s.RecordResponse("q1", "420", start.Add(2*time.Minute)), ErrFinalized)
}

func TestFinalize_Marks(t *testing.T) {
	s := testSession()
	require.NoError(t, s.RecordResponse("q1", "420", start))
	require.NoError(t, s.RecordResponse("q2", "0.5", start))
	require.NoError(t, s.RecordResponse("q3", "23", start))

	assert.True(t, s.Finalize(start.Add(10*time.Minute), FinishManual))

	rec := s.Snapshot()
	assert.Equal(t, []QuestionMark{
		{QuestionID: "q1", SlotNumber: 1, MarksAwarded: 1},
		{QuestionID: "q2", SlotNumber: 16, MarksAwarded: 0},
		{QuestionID: "q3", SlotNumber: 33, MarksAwarded: 2},
	}, rec.Marks)
	assert.Equal(t, 3, rec.TotalMarksAwarded)
	assert.Equal(t, FinishManual, rec.FinishReason)
}

func TestFinalize_Idempotent(t *testing.T) {
	s := testSession()
	require.NoError(t, s.RecordResponse("q2", "2/4", start))

	require.True(t, s.Finalize(start.Add(5*time.Minute), FinishManual))
	first := s.Snapshot()

	assert.False(t, s.Finalize(start.Add(30*time.Minute), FinishExpired))
	second := s.Snapshot()

	assert.Equal(t, first.Marks, second.Marks)
	assert.Equal(t, first.TotalMarksAwarded, second.TotalMarksAwarded)
	assert.Equal(t, *first.CompletedAt, *second.CompletedAt)
	assert.Equal(t, FinishManual, second.FinishReason)
}

func TestFinalize_ConcurrentCallsEffectiveOnce(t *testing.T) {
	s := testSession()
	var wg sync.WaitGroup
	var mu sync.Mutex
	effective := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if s.Finalize(start.Add(time.Duration(i)*time.Second), FinishManual) {
				mu.Lock()
				effective++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, effective)
}

func TestJSONRoundTrip(t *testing.T) {
	s := testSession()
	require.NoError(t, s.RecordResponse("q1", "42", start.Add(time.Minute)))
	require.NoError(t, s.RecordResponse("q1", "420", start.Add(2*time.Minute)))

	first, err := json.Marshal(s)
	require.NoError(t, err)

	var restored TestSession
	require.NoError(t, json.Unmarshal(first, &restored))
	second, err := json.Marshal(&restored)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
	assert.Equal(t, string(first), string(second))

	require.NoError(t, restored.RecordResponse("q2", "1/2", start.Add(3*time.Minute)))
	assert.True(t, restored.Finalize(start.Add(4*time.Minute), FinishManual))
	assert.Equal(t, 2, restored.Snapshot().TotalMarksAwarded)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := testSession()
	require.NoError(t, s.RecordResponse("q1", "1", start))
	snap := s.Snapshot()
	snap.Responses["q1"].Latest.Answer = "changed"
	got, _ := s.LatestAnswer("q1")
	assert.Equal(t, "1", got)
}

func TestTimer_FinalizesOnExpiry(t *testing.T) {
	now := time.Now()
	s := New("s2", "", testQuestions(), now, 20*time.Millisecond)

	done := make(chan bool, 1)
	StartTimer(s, time.Now, func(ok bool) { done <- ok })

	select {
	case ok := <-done:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
	assert.True(t, s.IsFinalized())
	assert.Equal(t, FinishExpired, s.Snapshot().FinishReason)
}

func TestTimer_ManualEndWins(t *testing.T) {
	now := time.Now()
	s := New("s3", "", testQuestions(), now, 20*time.Millisecond)

	done := make(chan bool, 1)
	timer := StartTimer(s, time.Now, func(ok bool) { done <- ok })
	require.True(t, s.Finalize(time.Now(), FinishManual))

	if timer.Stop() {
		return
	}
	select {
	case ok := <-done:
		assert.False(t, ok, "expiry after manual end must not finalize again")
	case <-time.After(2 * time.Second):
		t.Fatal("timer callback did not run")
	}
	assert.Equal(t, FinishManual, s.Snapshot().FinishReason)
}

func TestBuildSummary(t *testing.T) {
	s := testSession()
	_, err := BuildSummary(s)
	assert.ErrorIs(t, err, ErrNotFinalized)

	require.NoError(t, s.RecordResponse("q1", "420", start))
	require.NoError(t, s.RecordResponse("q3", "22", start))
	s.Finalize(start.Add(12*time.Minute), FinishManual)

	sum, err := BuildSummary(s)
	require.NoError(t, err)
	assert.Equal(t, 12*time.Minute, sum.Duration)
	assert.Equal(t, 3, sum.Questions)
	assert.Equal(t, 2, sum.Answered)
	assert.Equal(t, 1, sum.Correct)
	assert.Equal(t, 1, sum.Marks)
	assert.Equal(t, 4, sum.MaxMarks)
	assert.InDelta(t, 25.0, sum.Percentage, 1e-9)
	assert.Equal(t, []int{16, 33}, sum.WrongSlots)
	require.Len(t, sum.TypeResults, 3)
	assert.Equal(t, problemgen.TypeMultiplyByPowerOf10, sum.TypeResults[0].Type)
}
