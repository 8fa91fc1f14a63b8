// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhilash/crammer/ent/testevent"
)

// TestEventCreate is the builder for creating a TestEvent entity.
type TestEventCreate struct {
	config
	mutation *TestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TestEventCreate) SetSequence(v int64) *TestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TestEventCreate) SetTimestamp(v time.Time) *TestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableTimestamp(v *time.Time) *TestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *TestEventCreate) SetTestID(v string) *TestEventCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetSetID sets the "set_id" field.
func (_c *TestEventCreate) SetSetID(v string) *TestEventCreate {
	_c.mutation.SetSetID(v)
	return _c
}

// SetSetTitle sets the "set_title" field.
func (_c *TestEventCreate) SetSetTitle(v string) *TestEventCreate {
	_c.mutation.SetSetTitle(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *TestEventCreate) SetTotal(v int) *TestEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *TestEventCreate) SetCorrect(v int) *TestEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetIncorrect sets the "incorrect" field.
func (_c *TestEventCreate) SetIncorrect(v int) *TestEventCreate {
	_c.mutation.SetIncorrect(v)
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *TestEventCreate) SetSkipped(v int) *TestEventCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *TestEventCreate) SetScore(v int) *TestEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *TestEventCreate) SetDurationSecs(v int) *TestEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *TestEventCreate) SetNillableDurationSecs(v *int) *TestEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the TestEventMutation object of the builder.
func (_c *TestEventCreate) Mutation() *TestEventMutation {
	return _c.mutation
}

// Save creates the TestEvent in the database.
func (_c *TestEventCreate) Save(ctx context.Context) (*TestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestEventCreate) SaveX(ctx context.Context) *TestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := testevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := testevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`ent: missing required field "TestEvent.test_id"`)}
	}
	if v, ok := _c.mutation.TestID(); ok {
		if err := testevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.test_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SetID(); !ok {
		return &ValidationError{Name: "set_id", err: errors.New(`ent: missing required field "TestEvent.set_id"`)}
	}
	if v, ok := _c.mutation.SetID(); ok {
		if err := testevent.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "TestEvent.set_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SetTitle(); !ok {
		return &ValidationError{Name: "set_title", err: errors.New(`ent: missing required field "TestEvent.set_title"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "TestEvent.total"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "TestEvent.correct"`)}
	}
	if _, ok := _c.mutation.Incorrect(); !ok {
		return &ValidationError{Name: "incorrect", err: errors.New(`ent: missing required field "TestEvent.incorrect"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "TestEvent.skipped"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "TestEvent.score"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "TestEvent.duration_secs"`)}
	}
	return nil
}

func (_c *TestEventCreate) sqlSave(ctx context.Context) (*TestEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestEventCreate) createSpec() (*TestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testevent.Table, sqlgraph.NewFieldSpec(testevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(testevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(testevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TestID(); ok {
		_spec.SetField(testevent.FieldTestID, field.TypeString, value)
		_node.TestID = value
	}
	if value, ok := _c.mutation.SetID(); ok {
		_spec.SetField(testevent.FieldSetID, field.TypeString, value)
		_node.SetID = value
	}
	if value, ok := _c.mutation.SetTitle(); ok {
		_spec.SetField(testevent.FieldSetTitle, field.TypeString, value)
		_node.SetTitle = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(testevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(testevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Incorrect(); ok {
		_spec.SetField(testevent.FieldIncorrect, field.TypeInt, value)
		_node.Incorrect = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(testevent.FieldSkipped, field.TypeInt, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(testevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(testevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// TestEventCreateBulk is the builder for creating many TestEvent entities in bulk.
type TestEventCreateBulk struct {
	config
	err      error
	builders []*TestEventCreate
}

// Save creates the TestEvent entities in the database.
func (_c *TestEventCreateBulk) Save(ctx context.Context) ([]*TestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestEventCreateBulk) SaveX(ctx context.Context) []*TestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
