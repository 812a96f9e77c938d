package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/practice"
	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/abhisek/mathpaper/internal/session"
)

var start = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testPaper(t *testing.T) []paper.TestQuestion {
	t.Helper()
	gen := problemgen.New(problemgen.NewRand(3), problemgen.DefaultConfig())
	qs, err := paper.NewAssembler(gen, nil).Generate()
	require.NoError(t, err)
	return qs
}

// markedSession answers the first two questions: one right, one wrong.
func markedSession(t *testing.T) *session.TestSession {
	t.Helper()
	qs := testPaper(t)
	ts := session.New("s1", "Asha", qs, start, session.DefaultDuration)
	require.NoError(t, ts.RecordResponse(qs[0].QuestionID, qs[0].Answer, start.Add(time.Minute)))
	require.NoError(t, ts.RecordResponse(qs[1].QuestionID, "-1", start.Add(2*time.Minute)))
	require.True(t, ts.Finalize(start.Add(5*time.Minute), session.FinishManual))
	return ts
}

func roundTrip(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(f, &buf))
	out, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })
	return out
}

func TestPaperWorkbook(t *testing.T) {
	qs := testPaper(t)
	f, err := Paper(qs)
	require.NoError(t, err)
	f = roundTrip(t, f)

	assert.Equal(t, []string{PaperSheet}, f.GetSheetList())
	rows, err := f.GetRows(PaperSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1+paper.SlotCount+1)
	assert.Equal(t, []string{"Q", "Question", "Answer", "Marks"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, qs[0].Text, rows[1][1])
	assert.Equal(t, "40", rows[len(rows)-1][3])

	for _, row := range rows[1 : len(rows)-1] {
		assert.Empty(t, row[2], "paper must not carry answers")
	}
}

func TestAnswerKeyWorkbook(t *testing.T) {
	qs := testPaper(t)
	f, err := AnswerKey(qs)
	require.NoError(t, err)
	f = roundTrip(t, f)

	rows, err := f.GetRows(AnswerSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1+paper.SlotCount)
	for i, q := range qs {
		assert.Equal(t, q.Answer, rows[i+1][2], "slot %d", q.SlotNumber)
		assert.Equal(t, string(q.Type), rows[i+1][4])
	}
}

func TestMarkSheetWorkbook(t *testing.T) {
	ts := markedSession(t)
	f, err := MarkSheetFor(ts.Snapshot())
	require.NoError(t, err)
	f = roundTrip(t, f)

	assert.Equal(t, []string{MarkSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(MarkSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1+paper.SlotCount+1)
	assert.Equal(t, ts.Questions()[0].Answer, rows[1][2])
	assert.Equal(t, "1", rows[1][4])
	assert.Equal(t, "-1", rows[2][2])
	assert.Equal(t, "0", rows[2][4])

	total := rows[len(rows)-1]
	assert.Equal(t, "1", total[4])
	assert.Equal(t, "40", total[5])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, "Type", summary[0][0])
	last := summary[len(summary)-1]
	assert.Equal(t, []string{"Percentage", "2.5%"}, last)
}

func TestMarkSheetRequiresFinalizedSession(t *testing.T) {
	ts := session.New("s1", "", testPaper(t), start, session.DefaultDuration)
	_, err := MarkSheetFor(ts.Snapshot())
	assert.ErrorIs(t, err, session.ErrNotFinalized)
}

func TestPracticePlanWorkbook(t *testing.T) {
	ts := markedSession(t)
	sel := practice.NewSelector(problemgen.New(problemgen.NewRand(4), problemgen.DefaultConfig()), nil)
	plan, err := sel.GenerateWeeklyPractice(ts, start.Add(time.Hour))
	require.NoError(t, err)

	f, err := PracticePlan(plan)
	require.NoError(t, err)
	f = roundTrip(t, f)

	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, f.GetSheetList())
	for _, day := range plan.Days {
		rows, err := f.GetRows(day.Day)
		require.NoError(t, err)
		require.Len(t, rows, 1+len(day.Questions))
		assert.Equal(t, day.Questions[0].Text, rows[1][2])
	}
}

func TestSessionJSON_RoundTrip(t *testing.T) {
	rec := markedSession(t).Snapshot()

	var buf bytes.Buffer
	require.NoError(t, SessionJSON(&buf, rec))
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("}\n")))

	var got session.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	want, _ := json.Marshal(rec)
	have, _ := json.Marshal(got)
	assert.JSONEq(t, string(want), string(have))
}

func TestPlanJSON(t *testing.T) {
	ts := markedSession(t)
	sel := practice.NewSelector(problemgen.New(problemgen.NewRand(5), problemgen.DefaultConfig()), nil)
	plan, err := sel.GenerateWeeklyPractice(ts, start)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PlanJSON(&buf, plan))

	var got practice.Plan
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, plan.SessionID, got.SessionID)
	assert.Len(t, got.Questions(), practice.PlanSize)
}
