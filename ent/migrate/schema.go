// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "test_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "expected", Type: field.TypeString},
		{Name: "given", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "skipped", Type: field.TypeBool, Default: false},
		{Name: "overridden", Type: field.TypeBool, Default: false},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_test_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_card_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
		},
	}
	// TestEventsColumns holds the columns for the "test_events" table.
	TestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "test_id", Type: field.TypeString},
		{Name: "set_id", Type: field.TypeString},
		{Name: "set_title", Type: field.TypeString},
		{Name: "total", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "incorrect", Type: field.TypeInt},
		{Name: "skipped", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// TestEventsTable holds the schema information for the "test_events" table.
	TestEventsTable = &schema.Table{
		Name:       "test_events",
		Columns:    TestEventsColumns,
		PrimaryKey: []*schema.Column{TestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[1]},
			},
			{
				Name:    "testevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[2]},
			},
			{
				Name:    "testevent_test_id",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[3]},
			},
			{
				Name:    "testevent_set_id",
				Unique:  false,
				Columns: []*schema.Column{TestEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		TestEventsTable,
	}
)

func init() {
}
