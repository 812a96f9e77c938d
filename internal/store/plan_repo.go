package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathpaper/internal/practice"
)

// planRepo implements PlanRepo with ent's SQL builder.
type planRepo struct {
	db *sql.DB
}

func (r *planRepo) Save(ctx context.Context, plan *practice.Plan) (int64, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return 0, fmt.Errorf("marshal plan: %w", err)
	}
	query, args := builder().Insert(practicePlansTable).
		Columns("session_id", "created_at", "data").
		Values(plan.SessionID, plan.CreatedAt.UnixMilli(), string(data)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("save plan: %w", err)
	}
	return res.LastInsertId()
}

func (r *planRepo) Latest(ctx context.Context, sessionID string) (*practice.Plan, error) {
	query, args := builder().Select("data").
		From(entsql.Table(practicePlansTable)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy(entsql.Desc("id")).
		Limit(1).
		Query()

	var data string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query plan: %w", err)
	}
	var plan practice.Plan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &plan, nil
}
