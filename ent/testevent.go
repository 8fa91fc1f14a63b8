// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhilash/crammer/ent/testevent"
)

// TestEvent is the model entity for the TestEvent schema.
type TestEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global append order, shared across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// When the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping this test's answer events
	TestID string `json:"test_id,omitempty"`
	// Flashcard set the test covered
	SetID string `json:"set_id,omitempty"`
	// Set title at test time, for display without a fetch
	SetTitle string `json:"set_title,omitempty"`
	// Questions in the test
	Total int `json:"total,omitempty"`
	// Correct answers at submit time
	Correct int `json:"correct,omitempty"`
	// Incorrect answers at submit time
	Incorrect int `json:"incorrect,omitempty"`
	// Questions left unanswered
	Skipped int `json:"skipped,omitempty"`
	// Percentage score, -1 when the test had no questions
	Score int `json:"score,omitempty"`
	// Wall time from start to submit
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testevent.FieldID, testevent.FieldSequence, testevent.FieldTotal, testevent.FieldCorrect, testevent.FieldIncorrect, testevent.FieldSkipped, testevent.FieldScore, testevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case testevent.FieldTestID, testevent.FieldSetID, testevent.FieldSetTitle:
			values[i] = new(sql.NullString)
		case testevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestEvent fields.
func (_m *TestEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case testevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case testevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case testevent.FieldTestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value.Valid {
				_m.TestID = value.String
			}
		case testevent.FieldSetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field set_id", values[i])
			} else if value.Valid {
				_m.SetID = value.String
			}
		case testevent.FieldSetTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field set_title", values[i])
			} else if value.Valid {
				_m.SetTitle = value.String
			}
		case testevent.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case testevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case testevent.FieldIncorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect", values[i])
			} else if value.Valid {
				_m.Incorrect = int(value.Int64)
			}
		case testevent.FieldSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = int(value.Int64)
			}
		case testevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case testevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TestEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TestEvent.
// Note that you need to call TestEvent.Unwrap() before calling this method if this TestEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestEvent) Update() *TestEventUpdateOne {
	return NewTestEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestEvent) Unwrap() *TestEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TestEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("test_id=")
	builder.WriteString(_m.TestID)
	builder.WriteString(", ")
	builder.WriteString("set_id=")
	builder.WriteString(_m.SetID)
	builder.WriteString(", ")
	builder.WriteString("set_title=")
	builder.WriteString(_m.SetTitle)
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("incorrect=")
	builder.WriteString(fmt.Sprintf("%v", _m.Incorrect))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// TestEvents is a parsable slice of TestEvent.
type TestEvents []*TestEvent
