// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jpsleep/sleepcheck/ent/assessmentevent"
	"github.com/jpsleep/sleepcheck/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdate) SetAssessmentID(v string) *AssessmentEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAssessmentID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AssessmentEventUpdate) SetSource(v string) *AssessmentEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSource(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *AssessmentEventUpdate) SetInputs(v json.RawMessage) *AssessmentEventUpdate {
	_u.mutation.SetInputs(v)
	return _u
}

// AppendInputs appends value to the "inputs" field.
func (_u *AssessmentEventUpdate) AppendInputs(v json.RawMessage) *AssessmentEventUpdate {
	_u.mutation.AppendInputs(v)
	return _u
}

// SetBmi sets the "bmi" field.
func (_u *AssessmentEventUpdate) SetBmi(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetBmi()
	_u.mutation.SetBmi(v)
	return _u
}

// SetNillableBmi sets the "bmi" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableBmi(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetBmi(*v)
	}
	return _u
}

// AddBmi adds value to the "bmi" field.
func (_u *AssessmentEventUpdate) AddBmi(v float64) *AssessmentEventUpdate {
	_u.mutation.AddBmi(v)
	return _u
}

// SetBmiCategory sets the "bmi_category" field.
func (_u *AssessmentEventUpdate) SetBmiCategory(v string) *AssessmentEventUpdate {
	_u.mutation.SetBmiCategory(v)
	return _u
}

// SetNillableBmiCategory sets the "bmi_category" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableBmiCategory(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetBmiCategory(*v)
	}
	return _u
}

// SetPrediction sets the "prediction" field.
func (_u *AssessmentEventUpdate) SetPrediction(v int) *AssessmentEventUpdate {
	_u.mutation.ResetPrediction()
	_u.mutation.SetPrediction(v)
	return _u
}

// SetNillablePrediction sets the "prediction" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePrediction(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPrediction(*v)
	}
	return _u
}

// AddPrediction adds value to the "prediction" field.
func (_u *AssessmentEventUpdate) AddPrediction(v int) *AssessmentEventUpdate {
	_u.mutation.AddPrediction(v)
	return _u
}

// SetProbability sets the "probability" field.
func (_u *AssessmentEventUpdate) SetProbability(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableProbability(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *AssessmentEventUpdate) AddProbability(v float64) *AssessmentEventUpdate {
	_u.mutation.AddProbability(v)
	return _u
}

// ClearProbability clears the value of the "probability" field.
func (_u *AssessmentEventUpdate) ClearProbability() *AssessmentEventUpdate {
	_u.mutation.ClearProbability()
	return _u
}

// SetLabels sets the "labels" field.
func (_u *AssessmentEventUpdate) SetLabels(v []string) *AssessmentEventUpdate {
	_u.mutation.SetLabels(v)
	return _u
}

// AppendLabels appends value to the "labels" field.
func (_u *AssessmentEventUpdate) AppendLabels(v []string) *AssessmentEventUpdate {
	_u.mutation.AppendLabels(v)
	return _u
}

// ClearLabels clears the value of the "labels" field.
func (_u *AssessmentEventUpdate) ClearLabels() *AssessmentEventUpdate {
	_u.mutation.ClearLabels()
	return _u
}

// SetLatencyUs sets the "latency_us" field.
func (_u *AssessmentEventUpdate) SetLatencyUs(v int64) *AssessmentEventUpdate {
	_u.mutation.ResetLatencyUs()
	_u.mutation.SetLatencyUs(v)
	return _u
}

// SetNillableLatencyUs sets the "latency_us" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableLatencyUs(v *int64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetLatencyUs(*v)
	}
	return _u
}

// AddLatencyUs adds value to the "latency_us" field.
func (_u *AssessmentEventUpdate) AddLatencyUs(v int64) *AssessmentEventUpdate {
	_u.mutation.AddLatencyUs(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(assessmentevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(assessmentevent.FieldInputs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldInputs, value)
		})
	}
	if value, ok := _u.mutation.Bmi(); ok {
		_spec.SetField(assessmentevent.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBmi(); ok {
		_spec.AddField(assessmentevent.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BmiCategory(); ok {
		_spec.SetField(assessmentevent.FieldBmiCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prediction(); ok {
		_spec.SetField(assessmentevent.FieldPrediction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrediction(); ok {
		_spec.AddField(assessmentevent.FieldPrediction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(assessmentevent.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(assessmentevent.FieldProbability, field.TypeFloat64, value)
	}
	if _u.mutation.ProbabilityCleared() {
		_spec.ClearField(assessmentevent.FieldProbability, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Labels(); ok {
		_spec.SetField(assessmentevent.FieldLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldLabels, value)
		})
	}
	if _u.mutation.LabelsCleared() {
		_spec.ClearField(assessmentevent.FieldLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.LatencyUs(); ok {
		_spec.SetField(assessmentevent.FieldLatencyUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyUs(); ok {
		_spec.AddField(assessmentevent.FieldLatencyUs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdateOne) SetAssessmentID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAssessmentID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AssessmentEventUpdateOne) SetSource(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSource(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *AssessmentEventUpdateOne) SetInputs(v json.RawMessage) *AssessmentEventUpdateOne {
	_u.mutation.SetInputs(v)
	return _u
}

// AppendInputs appends value to the "inputs" field.
func (_u *AssessmentEventUpdateOne) AppendInputs(v json.RawMessage) *AssessmentEventUpdateOne {
	_u.mutation.AppendInputs(v)
	return _u
}

// SetBmi sets the "bmi" field.
func (_u *AssessmentEventUpdateOne) SetBmi(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetBmi()
	_u.mutation.SetBmi(v)
	return _u
}

// SetNillableBmi sets the "bmi" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableBmi(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetBmi(*v)
	}
	return _u
}

// AddBmi adds value to the "bmi" field.
func (_u *AssessmentEventUpdateOne) AddBmi(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddBmi(v)
	return _u
}

// SetBmiCategory sets the "bmi_category" field.
func (_u *AssessmentEventUpdateOne) SetBmiCategory(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetBmiCategory(v)
	return _u
}

// SetNillableBmiCategory sets the "bmi_category" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableBmiCategory(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetBmiCategory(*v)
	}
	return _u
}

// SetPrediction sets the "prediction" field.
func (_u *AssessmentEventUpdateOne) SetPrediction(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetPrediction()
	_u.mutation.SetPrediction(v)
	return _u
}

// SetNillablePrediction sets the "prediction" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePrediction(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPrediction(*v)
	}
	return _u
}

// AddPrediction adds value to the "prediction" field.
func (_u *AssessmentEventUpdateOne) AddPrediction(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddPrediction(v)
	return _u
}

// SetProbability sets the "probability" field.
func (_u *AssessmentEventUpdateOne) SetProbability(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableProbability(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *AssessmentEventUpdateOne) AddProbability(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddProbability(v)
	return _u
}

// ClearProbability clears the value of the "probability" field.
func (_u *AssessmentEventUpdateOne) ClearProbability() *AssessmentEventUpdateOne {
	_u.mutation.ClearProbability()
	return _u
}

// SetLabels sets the "labels" field.
func (_u *AssessmentEventUpdateOne) SetLabels(v []string) *AssessmentEventUpdateOne {
	_u.mutation.SetLabels(v)
	return _u
}

// AppendLabels appends value to the "labels" field.
func (_u *AssessmentEventUpdateOne) AppendLabels(v []string) *AssessmentEventUpdateOne {
	_u.mutation.AppendLabels(v)
	return _u
}

// ClearLabels clears the value of the "labels" field.
func (_u *AssessmentEventUpdateOne) ClearLabels() *AssessmentEventUpdateOne {
	_u.mutation.ClearLabels()
	return _u
}

// SetLatencyUs sets the "latency_us" field.
func (_u *AssessmentEventUpdateOne) SetLatencyUs(v int64) *AssessmentEventUpdateOne {
	_u.mutation.ResetLatencyUs()
	_u.mutation.SetLatencyUs(v)
	return _u
}

// SetNillableLatencyUs sets the "latency_us" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableLatencyUs(v *int64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetLatencyUs(*v)
	}
	return _u
}

// AddLatencyUs adds value to the "latency_us" field.
func (_u *AssessmentEventUpdateOne) AddLatencyUs(v int64) *AssessmentEventUpdateOne {
	_u.mutation.AddLatencyUs(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(assessmentevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(assessmentevent.FieldInputs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldInputs, value)
		})
	}
	if value, ok := _u.mutation.Bmi(); ok {
		_spec.SetField(assessmentevent.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBmi(); ok {
		_spec.AddField(assessmentevent.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BmiCategory(); ok {
		_spec.SetField(assessmentevent.FieldBmiCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prediction(); ok {
		_spec.SetField(assessmentevent.FieldPrediction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrediction(); ok {
		_spec.AddField(assessmentevent.FieldPrediction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(assessmentevent.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(assessmentevent.FieldProbability, field.TypeFloat64, value)
	}
	if _u.mutation.ProbabilityCleared() {
		_spec.ClearField(assessmentevent.FieldProbability, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Labels(); ok {
		_spec.SetField(assessmentevent.FieldLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldLabels, value)
		})
	}
	if _u.mutation.LabelsCleared() {
		_spec.ClearField(assessmentevent.FieldLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.LatencyUs(); ok {
		_spec.SetField(assessmentevent.FieldLatencyUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyUs(); ok {
		_spec.AddField(assessmentevent.FieldLatencyUs, field.TypeInt64, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
