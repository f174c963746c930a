// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "answer_text", Type: field.TypeString, Size: 2147483647},
		{Name: "submitted_at", Type: field.TypeTime},
		{Name: "question_answer", Type: field.TypeUUID, Unique: true},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_questions_answer",
				Columns:    []*schema.Column{AnswersColumns[3]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// EvaluationsColumns holds the columns for the "evaluations" table.
	EvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "score", Type: field.TypeInt},
		{Name: "strengths", Type: field.TypeJSON},
		{Name: "missing_points", Type: field.TypeJSON},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647},
		{Name: "next_focus_topic", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "answer_evaluation", Type: field.TypeUUID, Unique: true},
	}
	// EvaluationsTable holds the schema information for the "evaluations" table.
	EvaluationsTable = &schema.Table{
		Name:       "evaluations",
		Columns:    EvaluationsColumns,
		PrimaryKey: []*schema.Column{EvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluations_answers_evaluation",
				Columns:    []*schema.Column{EvaluationsColumns[8]},
				RefColumns: []*schema.Column{AnswersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// LlmCallsColumns holds the columns for the "llm_calls" table.
	LlmCallsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmCallsTable holds the schema information for the "llm_calls" table.
	LlmCallsTable = &schema.Table{
		Name:       "llm_calls",
		Columns:    LlmCallsColumns,
		PrimaryKey: []*schema.Column{LlmCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcall_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmCallsColumns[3]},
			},
			{
				Name:    "llmcall_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmCallsColumns[11]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"easy", "medium", "hard"}},
		{Name: "expected_points", Type: field.TypeJSON},
		{Name: "follow_up_triggers", Type: field.TypeJSON, Nullable: true},
		{Name: "rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_follow_up", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "question_follow_up", Type: field.TypeUUID, Unique: true, Nullable: true},
		{Name: "session_questions", Type: field.TypeUUID},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_questions_follow_up",
				Columns:    []*schema.Column{QuestionsColumns[11]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "questions_sessions_questions",
				Columns:    []*schema.Column{QuestionsColumns[12]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_order_index_session_questions",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[12]},
			},
			{
				Name:    "question_fingerprint_session_questions",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[3], QuestionsColumns[12]},
			},
			{
				Name:    "question_is_follow_up",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[9]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "topic_scores", Type: field.TypeJSON},
		{Name: "strengths", Type: field.TypeJSON},
		{Name: "weaknesses", Type: field.TypeJSON},
		{Name: "improvement_tips", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_report", Type: field.TypeUUID, Unique: true},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_sessions_report",
				Columns:    []*schema.Column{ReportsColumns[7]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ResumesColumns holds the columns for the "resumes" table.
	ResumesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "profile", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ResumesTable holds the schema information for the "resumes" table.
	ResumesTable = &schema.Table{
		Name:       "resumes",
		Columns:    ResumesColumns,
		PrimaryKey: []*schema.Column{ResumesColumns[0]},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "abandoned"}, Default: "in_progress"},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"role", "topics", "resume"}},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"easy", "medium", "hard"}, Default: "medium"},
		{Name: "num_questions", Type: field.TypeInt, Nullable: true},
		{Name: "time_limit_mins", Type: field.TypeInt, Nullable: true},
		{Name: "no_repeats", Type: field.TypeBool, Default: true},
		{Name: "focus_weak_areas", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "resume_sessions", Type: field.TypeUUID, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_resumes_sessions",
				Columns:    []*schema.Column{SessionsColumns[12]},
				RefColumns: []*schema.Column{ResumesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		EvaluationsTable,
		LlmCallsTable,
		QuestionsTable,
		ReportsTable,
		ResumesTable,
		SessionsTable,
	}
)

func init() {
	AnswersTable.ForeignKeys[0].RefTable = QuestionsTable
	EvaluationsTable.ForeignKeys[0].RefTable = AnswersTable
	QuestionsTable.ForeignKeys[0].RefTable = QuestionsTable
	QuestionsTable.ForeignKeys[1].RefTable = SessionsTable
	ReportsTable.ForeignKeys[0].RefTable = SessionsTable
	SessionsTable.ForeignKeys[0].RefTable = ResumesTable
}
