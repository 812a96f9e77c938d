package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names.
const (
	sessionsTable       = "sessions"
	responseEventsTable = "response_events"
	practicePlansTable  = "practice_plans"
)

var (
	sessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "student", Type: field.TypeString, Default: ""},
		{Name: "started_at", Type: field.TypeInt64},
		{Name: "ends_at", Type: field.TypeInt64},
		{Name: "completed_at", Type: field.TypeInt64, Nullable: true},
		{Name: "total_marks", Type: field.TypeInt, Default: 0},
		{Name: "max_marks", Type: field.TypeInt},
		{Name: "data", Type: field.TypeString, Size: 2147483647},
	}
	sessionsTableDef = &schema.Table{
		Name:       sessionsTable,
		Columns:    sessionsColumns,
		PrimaryKey: []*schema.Column{sessionsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "session_started_at", Columns: []*schema.Column{sessionsColumns[2]}},
		},
	}

	responseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "slot_number", Type: field.TypeInt},
		{Name: "answer", Type: field.TypeString},
		{Name: "recorded_at", Type: field.TypeInt64},
	}
	responseEventsTableDef = &schema.Table{
		Name:       responseEventsTable,
		Columns:    responseEventsColumns,
		PrimaryKey: []*schema.Column{responseEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "response_events_sessions_responses",
				Columns:    []*schema.Column{responseEventsColumns[2]},
				RefColumns: []*schema.Column{sessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "responseevent_session_id_sequence", Columns: []*schema.Column{responseEventsColumns[2], responseEventsColumns[1]}},
		},
	}

	practicePlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "data", Type: field.TypeString, Size: 2147483647},
	}
	practicePlansTableDef = &schema.Table{
		Name:       practicePlansTable,
		Columns:    practicePlansColumns,
		PrimaryKey: []*schema.Column{practicePlansColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "practice_plans_sessions_plans",
				Columns:    []*schema.Column{practicePlansColumns[1]},
				RefColumns: []*schema.Column{sessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}

	tables = []*schema.Table{
		sessionsTableDef,
		responseEventsTableDef,
		practicePlansTableDef,
	}
)

func init() {
	responseEventsTableDef.ForeignKeys[0].RefTable = sessionsTableDef
	practicePlansTableDef.ForeignKeys[0].RefTable = sessionsTableDef
}
