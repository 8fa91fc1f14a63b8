// Code generated by ent, DO NOT EDIT.

package testevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhilash/crammer/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTestID, v))
}

// SetID applies equality check predicate on the "set_id" field. It's identical to SetIDEQ.
func SetID(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSetID, v))
}

// SetTitle applies equality check predicate on the "set_title" field. It's identical to SetTitleEQ.
func SetTitle(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSetTitle, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTotal, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldCorrect, v))
}

// Incorrect applies equality check predicate on the "incorrect" field. It's identical to IncorrectEQ.
func Incorrect(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldIncorrect, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSkipped, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldScore, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDGT applies the GT predicate on the "test_id" field.
func TestIDGT(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldTestID, v))
}

// TestIDGTE applies the GTE predicate on the "test_id" field.
func TestIDGTE(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldTestID, v))
}

// TestIDLT applies the LT predicate on the "test_id" field.
func TestIDLT(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldTestID, v))
}

// TestIDLTE applies the LTE predicate on the "test_id" field.
func TestIDLTE(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldTestID, v))
}

// TestIDContains applies the Contains predicate on the "test_id" field.
func TestIDContains(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldContains(FieldTestID, v))
}

// TestIDHasPrefix applies the HasPrefix predicate on the "test_id" field.
func TestIDHasPrefix(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldHasPrefix(FieldTestID, v))
}

// TestIDHasSuffix applies the HasSuffix predicate on the "test_id" field.
func TestIDHasSuffix(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldHasSuffix(FieldTestID, v))
}

// TestIDEqualFold applies the EqualFold predicate on the "test_id" field.
func TestIDEqualFold(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEqualFold(FieldTestID, v))
}

// TestIDContainsFold applies the ContainsFold predicate on the "test_id" field.
func TestIDContainsFold(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldContainsFold(FieldTestID, v))
}

// SetIDEQ applies the EQ predicate on the "set_id" field.
func SetIDEQ(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSetID, v))
}

// SetIDNEQ applies the NEQ predicate on the "set_id" field.
func SetIDNEQ(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldSetID, v))
}

// SetIDIn applies the In predicate on the "set_id" field.
func SetIDIn(vs ...string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldSetID, vs...))
}

// SetIDNotIn applies the NotIn predicate on the "set_id" field.
func SetIDNotIn(vs ...string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldSetID, vs...))
}

// SetIDGT applies the GT predicate on the "set_id" field.
func SetIDGT(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldSetID, v))
}

// SetIDGTE applies the GTE predicate on the "set_id" field.
func SetIDGTE(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldSetID, v))
}

// SetIDLT applies the LT predicate on the "set_id" field.
func SetIDLT(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldSetID, v))
}

// SetIDLTE applies the LTE predicate on the "set_id" field.
func SetIDLTE(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldSetID, v))
}

// SetIDContains applies the Contains predicate on the "set_id" field.
func SetIDContains(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldContains(FieldSetID, v))
}

// SetIDHasPrefix applies the HasPrefix predicate on the "set_id" field.
func SetIDHasPrefix(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldHasPrefix(FieldSetID, v))
}

// SetIDHasSuffix applies the HasSuffix predicate on the "set_id" field.
func SetIDHasSuffix(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldHasSuffix(FieldSetID, v))
}

// SetIDEqualFold applies the EqualFold predicate on the "set_id" field.
func SetIDEqualFold(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEqualFold(FieldSetID, v))
}

// SetIDContainsFold applies the ContainsFold predicate on the "set_id" field.
func SetIDContainsFold(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldContainsFold(FieldSetID, v))
}

// SetTitleEQ applies the EQ predicate on the "set_title" field.
func SetTitleEQ(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSetTitle, v))
}

// SetTitleNEQ applies the NEQ predicate on the "set_title" field.
func SetTitleNEQ(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldSetTitle, v))
}

// SetTitleIn applies the In predicate on the "set_title" field.
func SetTitleIn(vs ...string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldSetTitle, vs...))
}

// SetTitleNotIn applies the NotIn predicate on the "set_title" field.
func SetTitleNotIn(vs ...string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldSetTitle, vs...))
}

// SetTitleGT applies the GT predicate on the "set_title" field.
func SetTitleGT(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldSetTitle, v))
}

// SetTitleGTE applies the GTE predicate on the "set_title" field.
func SetTitleGTE(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldSetTitle, v))
}

// SetTitleLT applies the LT predicate on the "set_title" field.
func SetTitleLT(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldSetTitle, v))
}

// SetTitleLTE applies the LTE predicate on the "set_title" field.
func SetTitleLTE(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldSetTitle, v))
}

// SetTitleContains applies the Contains predicate on the "set_title" field.
func SetTitleContains(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldContains(FieldSetTitle, v))
}

// SetTitleHasPrefix applies the HasPrefix predicate on the "set_title" field.
func SetTitleHasPrefix(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldHasPrefix(FieldSetTitle, v))
}

// SetTitleHasSuffix applies the HasSuffix predicate on the "set_title" field.
func SetTitleHasSuffix(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldHasSuffix(FieldSetTitle, v))
}

// SetTitleEqualFold applies the EqualFold predicate on the "set_title" field.
func SetTitleEqualFold(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEqualFold(FieldSetTitle, v))
}

// SetTitleContainsFold applies the ContainsFold predicate on the "set_title" field.
func SetTitleContainsFold(v string) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldContainsFold(FieldSetTitle, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldTotal, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldCorrect, v))
}

// IncorrectEQ applies the EQ predicate on the "incorrect" field.
func IncorrectEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldIncorrect, v))
}

// IncorrectNEQ applies the NEQ predicate on the "incorrect" field.
func IncorrectNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldIncorrect, v))
}

// IncorrectIn applies the In predicate on the "incorrect" field.
func IncorrectIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldIncorrect, vs...))
}

// IncorrectNotIn applies the NotIn predicate on the "incorrect" field.
func IncorrectNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldIncorrect, vs...))
}

// IncorrectGT applies the GT predicate on the "incorrect" field.
func IncorrectGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldIncorrect, v))
}

// IncorrectGTE applies the GTE predicate on the "incorrect" field.
func IncorrectGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldIncorrect, v))
}

// IncorrectLT applies the LT predicate on the "incorrect" field.
func IncorrectLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldIncorrect, v))
}

// IncorrectLTE applies the LTE predicate on the "incorrect" field.
func IncorrectLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldIncorrect, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldSkipped, v))
}

// SkippedIn applies the In predicate on the "skipped" field.
func SkippedIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldSkipped, vs...))
}

// SkippedNotIn applies the NotIn predicate on the "skipped" field.
func SkippedNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldSkipped, vs...))
}

// SkippedGT applies the GT predicate on the "skipped" field.
func SkippedGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldSkipped, v))
}

// SkippedGTE applies the GTE predicate on the "skipped" field.
func SkippedGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldSkipped, v))
}

// SkippedLT applies the LT predicate on the "skipped" field.
func SkippedLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldSkipped, v))
}

// SkippedLTE applies the LTE predicate on the "skipped" field.
func SkippedLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldSkipped, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldScore, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.TestEvent {
	return predicate.TestEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestEvent) predicate.TestEvent {
	return predicate.TestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestEvent) predicate.TestEvent {
	return predicate.TestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestEvent) predicate.TestEvent {
	return predicate.TestEvent(sql.NotPredicates(p))
}
