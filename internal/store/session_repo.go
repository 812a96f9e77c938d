package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/session"
)

// sessionRepo implements SessionRepo with ent's SQL builder.
type sessionRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *sessionRepo) Save(ctx context.Context, rec session.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	var completed any
	if rec.CompletedAt != nil {
		completed = rec.CompletedAt.UnixMilli()
	}

	query, args := builder().Insert(sessionsTable).
		Columns("id", "student", "started_at", "ends_at", "completed_at", "total_marks", "max_marks", "data").
		Values(rec.SessionID, rec.Student, rec.StartedAt.UnixMilli(), rec.EndsAt.UnixMilli(),
			completed, rec.TotalMarksAwarded, paper.TotalMarks(rec.Questions), string(data)).
		OnConflict(entsql.ConflictColumns("id"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (session.Record, error) {
	query, args := builder().Select("data").
		From(entsql.Table(sessionsTable)).
		Where(entsql.EQ("id", id)).
		Query()
	return r.load(ctx, query, args)
}

func (r *sessionRepo) Latest(ctx context.Context) (session.Record, error) {
	query, args := builder().Select("data").
		From(entsql.Table(sessionsTable)).
		OrderBy(entsql.Desc("started_at")).
		Limit(1).
		Query()
	return r.load(ctx, query, args)
}

func (r *sessionRepo) load(ctx context.Context, query string, args []any) (session.Record, error) {
	var data string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Record{}, ErrNotFound
	}
	if err != nil {
		return session.Record{}, fmt.Errorf("query session: %w", err)
	}
	var rec session.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return session.Record{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return rec, nil
}

func (r *sessionRepo) List(ctx context.Context, limit int) ([]SessionRow, error) {
	sel := builder().Select("id", "student", "started_at", "completed_at", "total_marks", "max_marks").
		From(entsql.Table(sessionsTable)).
		OrderBy(entsql.Desc("started_at"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRow
	for rows.Next() {
		var row SessionRow
		var started int64
		var completed sql.NullInt64
		if err := rows.Scan(&row.ID, &row.Student, &started, &completed, &row.TotalMarks, &row.MaxMarks); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		row.StartedAt = time.UnixMilli(started).UTC()
		if completed.Valid {
			t := time.UnixMilli(completed.Int64).UTC()
			row.CompletedAt = &t
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *sessionRepo) AppendResponse(ctx context.Context, ev ResponseEvent) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(responseEventsTable).
		Columns("sequence", "session_id", "question_id", "slot_number", "answer", "recorded_at").
		Values(seqNum, ev.SessionID, ev.QuestionID, ev.SlotNumber, ev.Answer, ev.RecordedAt.UnixMilli()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("save response event: %w", err)
	}
	return seqNum, nil
}

func (r *sessionRepo) Responses(ctx context.Context, sessionID string) ([]ResponseEvent, error) {
	query, args := builder().Select("sequence", "session_id", "question_id", "slot_number", "answer", "recorded_at").
		From(entsql.Table(responseEventsTable)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("sequence").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query response events: %w", err)
	}
	defer rows.Close()

	var out []ResponseEvent
	for rows.Next() {
		var ev ResponseEvent
		var at int64
		if err := rows.Scan(&ev.Sequence, &ev.SessionID, &ev.QuestionID, &ev.SlotNumber, &ev.Answer, &at); err != nil {
			return nil, fmt.Errorf("scan response event: %w", err)
		}
		ev.RecordedAt = time.UnixMilli(at).UTC()
		out = append(out, ev)
	}
	return out, rows.Err()
}
