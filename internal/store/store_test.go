package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/practice"
	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/abhisek/mathpaper/internal/session"
)

var testDBCount int

func openTestStore(t *testing.T) *Store {
	t.Helper()
	testDBCount++
	s, err := Open(fmt.Sprintf("file:memdb%d?mode=memory&cache=shared", testDBCount))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var start = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testSession(t *testing.T, id string, startedAt time.Time) *session.TestSession {
	t.Helper()
	gen := problemgen.New(problemgen.NewRand(1), problemgen.DefaultConfig())
	qs, err := paper.NewAssembler(gen, nil).Generate()
	if err != nil {
		t.Fatalf("generate paper: %v", err)
	}
	return session.New(id, "Asha", qs, startedAt, session.DefaultDuration)
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"sessions", "response_events", "practice_plans", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSessionSaveAndGet_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	ts := testSession(t, "s1", start)
	q := ts.Questions()[0]
	if err := ts.RecordResponse(q.QuestionID, "1", start.Add(time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := ts.RecordResponse(q.QuestionID, q.Answer, start.Add(2*time.Minute)); err != nil {
		t.Fatal(err)
	}
	want := ts.Snapshot()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	wantJSON, _ := json.Marshal(want)
	gotJSON, _ := json.Marshal(got)
	if string(wantJSON) != string(gotJSON) {
		t.Errorf("round trip changed the session:\nwant %s\ngot  %s", wantJSON, gotJSON)
	}
	if len(got.Responses[q.QuestionID].History) != 1 {
		t.Errorf("history = %v, want one superseded answer", got.Responses[q.QuestionID].History)
	}
}

func TestSessionSave_Upserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	ts := testSession(t, "s1", start)
	if err := repo.Save(ctx, ts.Snapshot()); err != nil {
		t.Fatal(err)
	}
	ts.Finalize(start.Add(10*time.Minute), session.FinishManual)
	if err := repo.Save(ctx, ts.Snapshot()); err != nil {
		t.Fatal(err)
	}

	rows, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].CompletedAt == nil || !rows[0].CompletedAt.Equal(start.Add(10*time.Minute)) {
		t.Errorf("completed_at = %v", rows[0].CompletedAt)
	}
	if rows[0].MaxMarks != 40 {
		t.Errorf("max marks = %d, want 40", rows[0].MaxMarks)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if got.CompletedAt == nil || got.Marks == nil {
		t.Error("finalized state not persisted")
	}
}

func TestSessionGet_NotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Sessions().Get(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := s.Sessions().Latest(context.Background()); err != ErrNotFound {
		t.Fatalf("latest on empty store: err = %v, want ErrNotFound", err)
	}
}

func TestSessionListAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ts := testSession(t, fmt.Sprintf("s%d", i), start.Add(time.Duration(i)*time.Hour))
		if err := repo.Save(ctx, ts.Snapshot()); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].ID != "s2" || rows[1].ID != "s1" {
		t.Errorf("rows = %+v, want s2, s1", rows)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if latest.SessionID != "s2" {
		t.Errorf("latest = %s, want s2", latest.SessionID)
	}
}

func TestResponseLog_OrderedBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if err := repo.Save(ctx, testSession(t, id, start).Snapshot()); err != nil {
			t.Fatal(err)
		}
	}

	answers := []struct{ session, answer string }{
		{"a", "1"}, {"b", "x"}, {"a", "2"}, {"a", "3"},
	}
	for i, a := range answers {
		_, err := repo.AppendResponse(ctx, ResponseEvent{
			SessionID:  a.session,
			QuestionID: "q",
			SlotNumber: 1,
			Answer:     a.answer,
			RecordedAt: start.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.Responses(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	var got []string
	for i, ev := range events {
		got = append(got, ev.Answer)
		if i > 0 && ev.Sequence <= events[i-1].Sequence {
			t.Errorf("sequence not increasing: %d after %d", ev.Sequence, events[i-1].Sequence)
		}
	}
	if fmt.Sprint(got) != "[1 2 3]" {
		t.Errorf("answers = %v, want [1 2 3]", got)
	}
}

func TestResponseLog_RequiresSession(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Sessions().AppendResponse(context.Background(), ResponseEvent{SessionID: "ghost", QuestionID: "q"})
	if err == nil {
		t.Fatal("expected foreign key violation for unknown session")
	}
}

func TestPlanSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	ts := testSession(t, "s1", start)
	ts.Finalize(start.Add(time.Minute), session.FinishManual)
	if err := s.Sessions().Save(ctx, ts.Snapshot()); err != nil {
		t.Fatal(err)
	}

	sel := practice.NewSelector(problemgen.New(problemgen.NewRand(2), problemgen.DefaultConfig()), nil)
	plan, err := sel.GenerateWeeklyPractice(ts, start.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Plans().Save(ctx, plan); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	got, err := s.Plans().Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest plan: %v", err)
	}
	if len(got.Days) != 5 || len(got.Questions()) != practice.PlanSize {
		t.Errorf("plan shape = %d days, %d questions", len(got.Days), len(got.Questions()))
	}
	if got.Days[0].Questions[0].Text != plan.Days[0].Questions[0].Text {
		t.Error("plan questions changed in storage")
	}

	if _, err := s.Plans().Latest(ctx, "other"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
