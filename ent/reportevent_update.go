// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jpsleep/sleepcheck/ent/predicate"
	"github.com/jpsleep/sleepcheck/ent/reportevent"
)

// ReportEventUpdate is the builder for updating ReportEvent entities.
type ReportEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReportEventMutation
}

// Where appends a list predicates to the ReportEventUpdate builder.
func (_u *ReportEventUpdate) Where(ps ...predicate.ReportEvent) *ReportEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ReportEventUpdate) SetAssessmentID(v string) *ReportEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableAssessmentID(v *string) *ReportEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetDestination sets the "destination" field.
func (_u *ReportEventUpdate) SetDestination(v string) *ReportEventUpdate {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableDestination(v *string) *ReportEventUpdate {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetLabels sets the "labels" field.
func (_u *ReportEventUpdate) SetLabels(v []string) *ReportEventUpdate {
	_u.mutation.SetLabels(v)
	return _u
}

// AppendLabels appends value to the "labels" field.
func (_u *ReportEventUpdate) AppendLabels(v []string) *ReportEventUpdate {
	_u.mutation.AppendLabels(v)
	return _u
}

// ClearLabels clears the value of the "labels" field.
func (_u *ReportEventUpdate) ClearLabels() *ReportEventUpdate {
	_u.mutation.ClearLabels()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ReportEventUpdate) SetSizeBytes(v int) *ReportEventUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableSizeBytes(v *int) *ReportEventUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ReportEventUpdate) AddSizeBytes(v int) *ReportEventUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ReportEventUpdate) SetSuccess(v bool) *ReportEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableSuccess(v *bool) *ReportEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReportEventUpdate) SetErrorMessage(v string) *ReportEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableErrorMessage(v *string) *ReportEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the ReportEventMutation object of the builder.
func (_u *ReportEventUpdate) Mutation() *ReportEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportEventUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := reportevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ReportEvent.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportevent.Table, reportevent.Columns, sqlgraph.NewFieldSpec(reportevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(reportevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(reportevent.FieldDestination, field.TypeString, value)
	}
	if value, ok := _u.mutation.Labels(); ok {
		_spec.SetField(reportevent.FieldLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportevent.FieldLabels, value)
		})
	}
	if _u.mutation.LabelsCleared() {
		_spec.ClearField(reportevent.FieldLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(reportevent.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(reportevent.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(reportevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reportevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportEventUpdateOne is the builder for updating a single ReportEvent entity.
type ReportEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ReportEventUpdateOne) SetAssessmentID(v string) *ReportEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableAssessmentID(v *string) *ReportEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetDestination sets the "destination" field.
func (_u *ReportEventUpdateOne) SetDestination(v string) *ReportEventUpdateOne {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableDestination(v *string) *ReportEventUpdateOne {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetLabels sets the "labels" field.
func (_u *ReportEventUpdateOne) SetLabels(v []string) *ReportEventUpdateOne {
	_u.mutation.SetLabels(v)
	return _u
}

// AppendLabels appends value to the "labels" field.
func (_u *ReportEventUpdateOne) AppendLabels(v []string) *ReportEventUpdateOne {
	_u.mutation.AppendLabels(v)
	return _u
}

// ClearLabels clears the value of the "labels" field.
func (_u *ReportEventUpdateOne) ClearLabels() *ReportEventUpdateOne {
	_u.mutation.ClearLabels()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ReportEventUpdateOne) SetSizeBytes(v int) *ReportEventUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableSizeBytes(v *int) *ReportEventUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ReportEventUpdateOne) AddSizeBytes(v int) *ReportEventUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ReportEventUpdateOne) SetSuccess(v bool) *ReportEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableSuccess(v *bool) *ReportEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReportEventUpdateOne) SetErrorMessage(v string) *ReportEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableErrorMessage(v *string) *ReportEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the ReportEventMutation object of the builder.
func (_u *ReportEventUpdateOne) Mutation() *ReportEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportEventUpdate builder.
func (_u *ReportEventUpdateOne) Where(ps ...predicate.ReportEvent) *ReportEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportEventUpdateOne) Select(field string, fields ...string) *ReportEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportEvent entity.
func (_u *ReportEventUpdateOne) Save(ctx context.Context) (*ReportEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportEventUpdateOne) SaveX(ctx context.Context) *ReportEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportEventUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := reportevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ReportEvent.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportEventUpdateOne) sqlSave(ctx context.Context) (_node *ReportEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportevent.Table, reportevent.Columns, sqlgraph.NewFieldSpec(reportevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportevent.FieldID)
		for _, f := range fields {
			if !reportevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportevent.FieldID {
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
		_spec.SetField(reportevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(reportevent.FieldDestination, field.TypeString, value)
	}
	if value, ok := _u.mutation.Labels(); ok {
		_spec.SetField(reportevent.FieldLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportevent.FieldLabels, value)
		})
	}
	if _u.mutation.LabelsCleared() {
		_spec.ClearField(reportevent.FieldLabels, field.TypeJSON)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(reportevent.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(reportevent.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(reportevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reportevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &ReportEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
