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
	"github.com/google/uuid"
	"github.com/mockmate/mockmate/ent/answer"
	"github.com/mockmate/mockmate/ent/evaluation"
	"github.com/mockmate/mockmate/ent/predicate"
)

// EvaluationUpdate is the builder for updating Evaluation entities.
type EvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationMutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdate) Where(ps ...predicate.Evaluation) *EvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *EvaluationUpdate) SetStrengths(v []string) *EvaluationUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *EvaluationUpdate) AppendStrengths(v []string) *EvaluationUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// SetMissingPoints sets the "missing_points" field.
func (_u *EvaluationUpdate) SetMissingPoints(v []string) *EvaluationUpdate {
	_u.mutation.SetMissingPoints(v)
	return _u
}

// AppendMissingPoints appends value to the "missing_points" field.
func (_u *EvaluationUpdate) AppendMissingPoints(v []string) *EvaluationUpdate {
	_u.mutation.AppendMissingPoints(v)
	return _u
}

// SetAnswerID sets the "answer" edge to the Answer entity by ID.
func (_u *EvaluationUpdate) SetAnswerID(id uuid.UUID) *EvaluationUpdate {
	_u.mutation.SetAnswerID(id)
	return _u
}

// SetAnswer sets the "answer" edge to the Answer entity.
func (_u *EvaluationUpdate) SetAnswer(v *Answer) *EvaluationUpdate {
	return _u.SetAnswerID(v.ID)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdate) Mutation() *EvaluationMutation {
	return _u.mutation
}

// ClearAnswer clears the "answer" edge to the Answer entity.
func (_u *EvaluationUpdate) ClearAnswer() *EvaluationUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdate) check() error {
	if _u.mutation.AnswerCleared() && len(_u.mutation.AnswerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.answer"`)
	}
	return nil
}

func (_u *EvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(evaluation.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldStrengths, value)
		})
	}
	if value, ok := _u.mutation.MissingPoints(); ok {
		_spec.SetField(evaluation.FieldMissingPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldMissingPoints, value)
		})
	}
	if _u.mutation.NextFocusTopicCleared() {
		_spec.ClearField(evaluation.FieldNextFocusTopic, field.TypeString)
	}
	if _u.mutation.AnswerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evaluation.AnswerTable,
			Columns: []string{evaluation.AnswerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evaluation.AnswerTable,
			Columns: []string{evaluation.AnswerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationUpdateOne is the builder for updating a single Evaluation entity.
type EvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationMutation
}

// SetStrengths sets the "strengths" field.
func (_u *EvaluationUpdateOne) SetStrengths(v []string) *EvaluationUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *EvaluationUpdateOne) AppendStrengths(v []string) *EvaluationUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// SetMissingPoints sets the "missing_points" field.
func (_u *EvaluationUpdateOne) SetMissingPoints(v []string) *EvaluationUpdateOne {
	_u.mutation.SetMissingPoints(v)
	return _u
}

// AppendMissingPoints appends value to the "missing_points" field.
func (_u *EvaluationUpdateOne) AppendMissingPoints(v []string) *EvaluationUpdateOne {
	_u.mutation.AppendMissingPoints(v)
	return _u
}

// SetAnswerID sets the "answer" edge to the Answer entity by ID.
func (_u *EvaluationUpdateOne) SetAnswerID(id uuid.UUID) *EvaluationUpdateOne {
	_u.mutation.SetAnswerID(id)
	return _u
}

// SetAnswer sets the "answer" edge to the Answer entity.
func (_u *EvaluationUpdateOne) SetAnswer(v *Answer) *EvaluationUpdateOne {
	return _u.SetAnswerID(v.ID)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdateOne) Mutation() *EvaluationMutation {
	return _u.mutation
}

// ClearAnswer clears the "answer" edge to the Answer entity.
func (_u *EvaluationUpdateOne) ClearAnswer() *EvaluationUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdateOne) Where(ps ...predicate.Evaluation) *EvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationUpdateOne) Select(field string, fields ...string) *EvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evaluation entity.
func (_u *EvaluationUpdateOne) Save(ctx context.Context) (*Evaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdateOne) SaveX(ctx context.Context) *Evaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdateOne) check() error {
	if _u.mutation.AnswerCleared() && len(_u.mutation.AnswerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.answer"`)
	}
	return nil
}

func (_u *EvaluationUpdateOne) sqlSave(ctx context.Context) (_node *Evaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluation.FieldID)
		for _, f := range fields {
			if !evaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluation.FieldID {
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
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(evaluation.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldStrengths, value)
		})
	}
	if value, ok := _u.mutation.MissingPoints(); ok {
		_spec.SetField(evaluation.FieldMissingPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluation.FieldMissingPoints, value)
		})
	}
	if _u.mutation.NextFocusTopicCleared() {
		_spec.ClearField(evaluation.FieldNextFocusTopic, field.TypeString)
	}
	if _u.mutation.AnswerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evaluation.AnswerTable,
			Columns: []string{evaluation.AnswerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evaluation.AnswerTable,
			Columns: []string{evaluation.AnswerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Evaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
