package store

import (
	"context"
	"time"

	"github.com/abhisek/mathpaper/internal/practice"
	"github.com/abhisek/mathpaper/internal/session"
)

// SessionRow is the index entry of a stored sitting.
type SessionRow struct {
	ID          string
	Student     string
	StartedAt   time.Time
	CompletedAt *time.Time
	TotalMarks  int
	MaxMarks    int
}

// ResponseEvent is one answer typed during a sitting. Events are never
// updated or deleted; Sequence orders them globally.
type ResponseEvent struct {
	Sequence   int64
	SessionID  string
	QuestionID string
	SlotNumber int
	Answer     string
	RecordedAt time.Time
}

// SessionRepo stores sittings and their response log.
type SessionRepo interface {
	// Save inserts or replaces the full session document.
	Save(ctx context.Context, rec session.Record) error

	// Get loads a session by ID. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (session.Record, error)

	// Latest loads the most recently started session.
	Latest(ctx context.Context) (session.Record, error)

	// List returns index rows, newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]SessionRow, error)

	// AppendResponse adds ev to the response log and returns its sequence.
	AppendResponse(ctx context.Context, ev ResponseEvent) (int64, error)

	// Responses returns the response log of a session in sequence order.
	Responses(ctx context.Context, sessionID string) ([]ResponseEvent, error)
}

// PlanRepo stores weekly practice plans.
type PlanRepo interface {
	// Save stores plan and returns its row ID.
	Save(ctx context.Context, plan *practice.Plan) (int64, error)

	// Latest returns the newest plan built for sessionID.
	Latest(ctx context.Context, sessionID string) (*practice.Plan, error)
}
