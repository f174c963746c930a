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
	"github.com/mockmate/mockmate/ent/predicate"
	"github.com/mockmate/mockmate/ent/report"
	"github.com/mockmate/mockmate/ent/schema"
	"github.com/mockmate/mockmate/ent/session"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicScores sets the "topic_scores" field.
func (_u *ReportUpdate) SetTopicScores(v []schema.TopicScore) *ReportUpdate {
	_u.mutation.SetTopicScores(v)
	return _u
}

// AppendTopicScores appends value to the "topic_scores" field.
func (_u *ReportUpdate) AppendTopicScores(v []schema.TopicScore) *ReportUpdate {
	_u.mutation.AppendTopicScores(v)
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *ReportUpdate) SetStrengths(v []string) *ReportUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *ReportUpdate) AppendStrengths(v []string) *ReportUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// SetWeaknesses sets the "weaknesses" field.
func (_u *ReportUpdate) SetWeaknesses(v []string) *ReportUpdate {
	_u.mutation.SetWeaknesses(v)
	return _u
}

// AppendWeaknesses appends value to the "weaknesses" field.
func (_u *ReportUpdate) AppendWeaknesses(v []string) *ReportUpdate {
	_u.mutation.AppendWeaknesses(v)
	return _u
}

// SetImprovementTips sets the "improvement_tips" field.
func (_u *ReportUpdate) SetImprovementTips(v []string) *ReportUpdate {
	_u.mutation.SetImprovementTips(v)
	return _u
}

// AppendImprovementTips appends value to the "improvement_tips" field.
func (_u *ReportUpdate) AppendImprovementTips(v []string) *ReportUpdate {
	_u.mutation.AppendImprovementTips(v)
	return _u
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *ReportUpdate) SetSessionID(id uuid.UUID) *ReportUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *ReportUpdate) SetSession(v *Session) *ReportUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *ReportUpdate) ClearSession() *ReportUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.session"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicScores(); ok {
		_spec.SetField(report.FieldTopicScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldTopicScores, value)
		})
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(report.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldStrengths, value)
		})
	}
	if value, ok := _u.mutation.Weaknesses(); ok {
		_spec.SetField(report.FieldWeaknesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeaknesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldWeaknesses, value)
		})
	}
	if value, ok := _u.mutation.ImprovementTips(); ok {
		_spec.SetField(report.FieldImprovementTips, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovementTips(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldImprovementTips, value)
		})
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   report.SessionTable,
			Columns: []string{report.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   report.SessionTable,
			Columns: []string{report.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetTopicScores sets the "topic_scores" field.
func (_u *ReportUpdateOne) SetTopicScores(v []schema.TopicScore) *ReportUpdateOne {
	_u.mutation.SetTopicScores(v)
	return _u
}

// AppendTopicScores appends value to the "topic_scores" field.
func (_u *ReportUpdateOne) AppendTopicScores(v []schema.TopicScore) *ReportUpdateOne {
	_u.mutation.AppendTopicScores(v)
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *ReportUpdateOne) SetStrengths(v []string) *ReportUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *ReportUpdateOne) AppendStrengths(v []string) *ReportUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// SetWeaknesses sets the "weaknesses" field.
func (_u *ReportUpdateOne) SetWeaknesses(v []string) *ReportUpdateOne {
	_u.mutation.SetWeaknesses(v)
	return _u
}

// AppendWeaknesses appends value to the "weaknesses" field.
func (_u *ReportUpdateOne) AppendWeaknesses(v []string) *ReportUpdateOne {
	_u.mutation.AppendWeaknesses(v)
	return _u
}

// SetImprovementTips sets the "improvement_tips" field.
func (_u *ReportUpdateOne) SetImprovementTips(v []string) *ReportUpdateOne {
	_u.mutation.SetImprovementTips(v)
	return _u
}

// AppendImprovementTips appends value to the "improvement_tips" field.
func (_u *ReportUpdateOne) AppendImprovementTips(v []string) *ReportUpdateOne {
	_u.mutation.AppendImprovementTips(v)
	return _u
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *ReportUpdateOne) SetSessionID(id uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *ReportUpdateOne) SetSession(v *Session) *ReportUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *ReportUpdateOne) ClearSession() *ReportUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.session"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
	if value, ok := _u.mutation.TopicScores(); ok {
		_spec.SetField(report.FieldTopicScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldTopicScores, value)
		})
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(report.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldStrengths, value)
		})
	}
	if value, ok := _u.mutation.Weaknesses(); ok {
		_spec.SetField(report.FieldWeaknesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeaknesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldWeaknesses, value)
		})
	}
	if value, ok := _u.mutation.ImprovementTips(); ok {
		_spec.SetField(report.FieldImprovementTips, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovementTips(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, report.FieldImprovementTips, value)
		})
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   report.SessionTable,
			Columns: []string{report.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   report.SessionTable,
			Columns: []string{report.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
