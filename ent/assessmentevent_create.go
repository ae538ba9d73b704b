// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jpsleep/sleepcheck/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AssessmentEventCreate) SetAssessmentID(v string) *AssessmentEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *AssessmentEventCreate) SetSource(v string) *AssessmentEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetInputs sets the "inputs" field.
func (_c *AssessmentEventCreate) SetInputs(v json.RawMessage) *AssessmentEventCreate {
	_c.mutation.SetInputs(v)
	return _c
}

// SetBmi sets the "bmi" field.
func (_c *AssessmentEventCreate) SetBmi(v float64) *AssessmentEventCreate {
	_c.mutation.SetBmi(v)
	return _c
}

// SetBmiCategory sets the "bmi_category" field.
func (_c *AssessmentEventCreate) SetBmiCategory(v string) *AssessmentEventCreate {
	_c.mutation.SetBmiCategory(v)
	return _c
}

// SetPrediction sets the "prediction" field.
func (_c *AssessmentEventCreate) SetPrediction(v int) *AssessmentEventCreate {
	_c.mutation.SetPrediction(v)
	return _c
}

// SetProbability sets the "probability" field.
func (_c *AssessmentEventCreate) SetProbability(v float64) *AssessmentEventCreate {
	_c.mutation.SetProbability(v)
	return _c
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableProbability(v *float64) *AssessmentEventCreate {
	if v != nil {
		_c.SetProbability(*v)
	}
	return _c
}

// SetLabels sets the "labels" field.
func (_c *AssessmentEventCreate) SetLabels(v []string) *AssessmentEventCreate {
	_c.mutation.SetLabels(v)
	return _c
}

// SetLatencyUs sets the "latency_us" field.
func (_c *AssessmentEventCreate) SetLatencyUs(v int64) *AssessmentEventCreate {
	_c.mutation.SetLatencyUs(v)
	return _c
}

// SetNillableLatencyUs sets the "latency_us" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableLatencyUs(v *int64) *AssessmentEventCreate {
	if v != nil {
		_c.SetLatencyUs(*v)
	}
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.LatencyUs(); !ok {
		v := assessmentevent.DefaultLatencyUs
		_c.mutation.SetLatencyUs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "AssessmentEvent.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "AssessmentEvent.source"`)}
	}
	if _, ok := _c.mutation.Inputs(); !ok {
		return &ValidationError{Name: "inputs", err: errors.New(`ent: missing required field "AssessmentEvent.inputs"`)}
	}
	if _, ok := _c.mutation.Bmi(); !ok {
		return &ValidationError{Name: "bmi", err: errors.New(`ent: missing required field "AssessmentEvent.bmi"`)}
	}
	if _, ok := _c.mutation.BmiCategory(); !ok {
		return &ValidationError{Name: "bmi_category", err: errors.New(`ent: missing required field "AssessmentEvent.bmi_category"`)}
	}
	if _, ok := _c.mutation.Prediction(); !ok {
		return &ValidationError{Name: "prediction", err: errors.New(`ent: missing required field "AssessmentEvent.prediction"`)}
	}
	if _, ok := _c.mutation.LatencyUs(); !ok {
		return &ValidationError{Name: "latency_us", err: errors.New(`ent: missing required field "AssessmentEvent.latency_us"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
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

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(assessmentevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Inputs(); ok {
		_spec.SetField(assessmentevent.FieldInputs, field.TypeJSON, value)
		_node.Inputs = value
	}
	if value, ok := _c.mutation.Bmi(); ok {
		_spec.SetField(assessmentevent.FieldBmi, field.TypeFloat64, value)
		_node.Bmi = value
	}
	if value, ok := _c.mutation.BmiCategory(); ok {
		_spec.SetField(assessmentevent.FieldBmiCategory, field.TypeString, value)
		_node.BmiCategory = value
	}
	if value, ok := _c.mutation.Prediction(); ok {
		_spec.SetField(assessmentevent.FieldPrediction, field.TypeInt, value)
		_node.Prediction = value
	}
	if value, ok := _c.mutation.Probability(); ok {
		_spec.SetField(assessmentevent.FieldProbability, field.TypeFloat64, value)
		_node.Probability = &value
	}
	if value, ok := _c.mutation.Labels(); ok {
		_spec.SetField(assessmentevent.FieldLabels, field.TypeJSON, value)
		_node.Labels = value
	}
	if value, ok := _c.mutation.LatencyUs(); ok {
		_spec.SetField(assessmentevent.FieldLatencyUs, field.TypeInt64, value)
		_node.LatencyUs = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
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
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
