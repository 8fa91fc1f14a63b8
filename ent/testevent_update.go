// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhilash/crammer/ent/predicate"
	"github.com/abhilash/crammer/ent/testevent"
)

// TestEventUpdate is the builder for updating TestEvent entities.
type TestEventUpdate struct {
	config
	hooks    []Hook
	mutation *TestEventMutation
}

// Where appends a list predicates to the TestEventUpdate builder.
func (_u *TestEventUpdate) Where(ps ...predicate.TestEvent) *TestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *TestEventUpdate) SetTestID(v string) *TestEventUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableTestID(v *string) *TestEventUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetSetID sets the "set_id" field.
func (_u *TestEventUpdate) SetSetID(v string) *TestEventUpdate {
	_u.mutation.SetSetID(v)
	return _u
}

// SetNillableSetID sets the "set_id" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableSetID(v *string) *TestEventUpdate {
	if v != nil {
		_u.SetSetID(*v)
	}
	return _u
}

// SetSetTitle sets the "set_title" field.
func (_u *TestEventUpdate) SetSetTitle(v string) *TestEventUpdate {
	_u.mutation.SetSetTitle(v)
	return _u
}

// SetNillableSetTitle sets the "set_title" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableSetTitle(v *string) *TestEventUpdate {
	if v != nil {
		_u.SetSetTitle(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *TestEventUpdate) SetTotal(v int) *TestEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableTotal(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *TestEventUpdate) AddTotal(v int) *TestEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TestEventUpdate) SetCorrect(v int) *TestEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableCorrect(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *TestEventUpdate) AddCorrect(v int) *TestEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *TestEventUpdate) SetIncorrect(v int) *TestEventUpdate {
	_u.mutation.ResetIncorrect()
	_u.mutation.SetIncorrect(v)
	return _u
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableIncorrect(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetIncorrect(*v)
	}
	return _u
}

// AddIncorrect adds value to the "incorrect" field.
func (_u *TestEventUpdate) AddIncorrect(v int) *TestEventUpdate {
	_u.mutation.AddIncorrect(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *TestEventUpdate) SetSkipped(v int) *TestEventUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableSkipped(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *TestEventUpdate) AddSkipped(v int) *TestEventUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *TestEventUpdate) SetScore(v int) *TestEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableScore(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TestEventUpdate) AddScore(v int) *TestEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *TestEventUpdate) SetDurationSecs(v int) *TestEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *TestEventUpdate) SetNillableDurationSecs(v *int) *TestEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *TestEventUpdate) AddDurationSecs(v int) *TestEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the TestEventMutation object of the builder.
func (_u *TestEventUpdate) Mutation() *TestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestEventUpdate) check() error {
	if v, ok := _u.mutation.TestID(); ok {
		if err := testevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SetID(); ok {
		if err := testevent.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.set_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testevent.Table, testevent.Columns, sqlgraph.NewFieldSpec(testevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(testevent.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SetID(); ok {
		_spec.SetField(testevent.FieldSetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SetTitle(); ok {
		_spec.SetField(testevent.FieldSetTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(testevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(testevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(testevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(testevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(testevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrect(); ok {
		_spec.AddField(testevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(testevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(testevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(testevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(testevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(testevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(testevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestEventUpdateOne is the builder for updating a single TestEvent entity.
type TestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestEventMutation
}

// SetTestID sets the "test_id" field.
func (_u *TestEventUpdateOne) SetTestID(v string) *TestEventUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableTestID(v *string) *TestEventUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetSetID sets the "set_id" field.
func (_u *TestEventUpdateOne) SetSetID(v string) *TestEventUpdateOne {
	_u.mutation.SetSetID(v)
	return _u
}

// SetNillableSetID sets the "set_id" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableSetID(v *string) *TestEventUpdateOne {
	if v != nil {
		_u.SetSetID(*v)
	}
	return _u
}

// SetSetTitle sets the "set_title" field.
func (_u *TestEventUpdateOne) SetSetTitle(v string) *TestEventUpdateOne {
	_u.mutation.SetSetTitle(v)
	return _u
}

// SetNillableSetTitle sets the "set_title" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableSetTitle(v *string) *TestEventUpdateOne {
	if v != nil {
		_u.SetSetTitle(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *TestEventUpdateOne) SetTotal(v int) *TestEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableTotal(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *TestEventUpdateOne) AddTotal(v int) *TestEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TestEventUpdateOne) SetCorrect(v int) *TestEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableCorrect(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *TestEventUpdateOne) AddCorrect(v int) *TestEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *TestEventUpdateOne) SetIncorrect(v int) *TestEventUpdateOne {
	_u.mutation.ResetIncorrect()
	_u.mutation.SetIncorrect(v)
	return _u
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableIncorrect(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetIncorrect(*v)
	}
	return _u
}

// AddIncorrect adds value to the "incorrect" field.
func (_u *TestEventUpdateOne) AddIncorrect(v int) *TestEventUpdateOne {
	_u.mutation.AddIncorrect(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *TestEventUpdateOne) SetSkipped(v int) *TestEventUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableSkipped(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *TestEventUpdateOne) AddSkipped(v int) *TestEventUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *TestEventUpdateOne) SetScore(v int) *TestEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableScore(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TestEventUpdateOne) AddScore(v int) *TestEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *TestEventUpdateOne) SetDurationSecs(v int) *TestEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *TestEventUpdateOne) SetNillableDurationSecs(v *int) *TestEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *TestEventUpdateOne) AddDurationSecs(v int) *TestEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the TestEventMutation object of the builder.
func (_u *TestEventUpdateOne) Mutation() *TestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestEventUpdate builder.
func (_u *TestEventUpdateOne) Where(ps ...predicate.TestEvent) *TestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestEventUpdateOne) Select(field string, fields ...string) *TestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestEvent entity.
func (_u *TestEventUpdateOne) Save(ctx context.Context) (*TestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestEventUpdateOne) SaveX(ctx context.Context) *TestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestEventUpdateOne) check() error {
	if v, ok := _u.mutation.TestID(); ok {
		if err := testevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SetID(); ok {
		if err := testevent.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.set_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TestEventUpdateOne) sqlSave(ctx context.Context) (_node *TestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testevent.Table, testevent.Columns, sqlgraph.NewFieldSpec(testevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testevent.FieldID)
		for _, f := range fields {
			if !testevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(testevent.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SetID(); ok {
		_spec.SetField(testevent.FieldSetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SetTitle(); ok {
		_spec.SetField(testevent.FieldSetTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(testevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(testevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(testevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(testevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(testevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrect(); ok {
		_spec.AddField(testevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(testevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(testevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(testevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(testevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(testevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(testevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &TestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
