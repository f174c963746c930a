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
	"github.com/mockmate/mockmate/ent/predicate"
	"github.com/mockmate/mockmate/ent/question"
	"github.com/mockmate/mockmate/ent/session"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExpectedPoints sets the "expected_points" field.
func (_u *QuestionUpdate) SetExpectedPoints(v []string) *QuestionUpdate {
	_u.mutation.SetExpectedPoints(v)
	return _u
}

// AppendExpectedPoints appends value to the "expected_points" field.
func (_u *QuestionUpdate) AppendExpectedPoints(v []string) *QuestionUpdate {
	_u.mutation.AppendExpectedPoints(v)
	return _u
}

// SetFollowUpTriggers sets the "follow_up_triggers" field.
func (_u *QuestionUpdate) SetFollowUpTriggers(v []string) *QuestionUpdate {
	_u.mutation.SetFollowUpTriggers(v)
	return _u
}

// AppendFollowUpTriggers appends value to the "follow_up_triggers" field.
func (_u *QuestionUpdate) AppendFollowUpTriggers(v []string) *QuestionUpdate {
	_u.mutation.AppendFollowUpTriggers(v)
	return _u
}

// ClearFollowUpTriggers clears the value of the "follow_up_triggers" field.
func (_u *QuestionUpdate) ClearFollowUpTriggers() *QuestionUpdate {
	_u.mutation.ClearFollowUpTriggers()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *QuestionUpdate) SetRationale(v string) *QuestionUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableRationale(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *QuestionUpdate) ClearRationale() *QuestionUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *QuestionUpdate) SetSessionID(id uuid.UUID) *QuestionUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *QuestionUpdate) SetSession(v *Session) *QuestionUpdate {
	return _u.SetSessionID(v.ID)
}

// SetFollowUpID sets the "follow_up" edge to the Question entity by ID.
func (_u *QuestionUpdate) SetFollowUpID(id uuid.UUID) *QuestionUpdate {
	_u.mutation.SetFollowUpID(id)
	return _u
}

// SetNillableFollowUpID sets the "follow_up" edge to the Question entity by ID if the given value is not nil.
func (_u *QuestionUpdate) SetNillableFollowUpID(id *uuid.UUID) *QuestionUpdate {
	if id != nil {
		_u = _u.SetFollowUpID(*id)
	}
	return _u
}

// SetFollowUp sets the "follow_up" edge to the Question entity.
func (_u *QuestionUpdate) SetFollowUp(v *Question) *QuestionUpdate {
	return _u.SetFollowUpID(v.ID)
}

// SetParentID sets the "parent" edge to the Question entity by ID.
func (_u *QuestionUpdate) SetParentID(id uuid.UUID) *QuestionUpdate {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the Question entity by ID if the given value is not nil.
func (_u *QuestionUpdate) SetNillableParentID(id *uuid.UUID) *QuestionUpdate {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the Question entity.
func (_u *QuestionUpdate) SetParent(v *Question) *QuestionUpdate {
	return _u.SetParentID(v.ID)
}

// SetAnswerID sets the "answer" edge to the Answer entity by ID.
func (_u *QuestionUpdate) SetAnswerID(id uuid.UUID) *QuestionUpdate {
	_u.mutation.SetAnswerID(id)
	return _u
}

// SetNillableAnswerID sets the "answer" edge to the Answer entity by ID if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAnswerID(id *uuid.UUID) *QuestionUpdate {
	if id != nil {
		_u = _u.SetAnswerID(*id)
	}
	return _u
}

// SetAnswer sets the "answer" edge to the Answer entity.
func (_u *QuestionUpdate) SetAnswer(v *Answer) *QuestionUpdate {
	return _u.SetAnswerID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *QuestionUpdate) ClearSession() *QuestionUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearFollowUp clears the "follow_up" edge to the Question entity.
func (_u *QuestionUpdate) ClearFollowUp() *QuestionUpdate {
	_u.mutation.ClearFollowUp()
	return _u
}

// ClearParent clears the "parent" edge to the Question entity.
func (_u *QuestionUpdate) ClearParent() *QuestionUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearAnswer clears the "answer" edge to the Answer entity.
func (_u *QuestionUpdate) ClearAnswer() *QuestionUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.session"`)
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExpectedPoints(); ok {
		_spec.SetField(question.FieldExpectedPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldExpectedPoints, value)
		})
	}
	if value, ok := _u.mutation.FollowUpTriggers(); ok {
		_spec.SetField(question.FieldFollowUpTriggers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFollowUpTriggers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldFollowUpTriggers, value)
		})
	}
	if _u.mutation.FollowUpTriggersCleared() {
		_spec.ClearField(question.FieldFollowUpTriggers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(question.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(question.FieldRationale, field.TypeString)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SessionTable,
			Columns: []string{question.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SessionTable,
			Columns: []string{question.SessionColumn},
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
	if _u.mutation.FollowUpCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   question.FollowUpTable,
			Columns: []string{question.FollowUpColumn},
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FollowUpIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   question.FollowUpTable,
			Columns: []string{question.FollowUpColumn},
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   question.ParentTable,
			Columns: []string{question.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   question.ParentTable,
			Columns: []string{question.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   question.AnswerTable,
			Columns: []string{question.AnswerColumn},
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
			Inverse: false,
			Table:   question.AnswerTable,
			Columns: []string{question.AnswerColumn},
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
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetExpectedPoints sets the "expected_points" field.
func (_u *QuestionUpdateOne) SetExpectedPoints(v []string) *QuestionUpdateOne {
	_u.mutation.SetExpectedPoints(v)
	return _u
}

// AppendExpectedPoints appends value to the "expected_points" field.
func (_u *QuestionUpdateOne) AppendExpectedPoints(v []string) *QuestionUpdateOne {
	_u.mutation.AppendExpectedPoints(v)
	return _u
}

// SetFollowUpTriggers sets the "follow_up_triggers" field.
func (_u *QuestionUpdateOne) SetFollowUpTriggers(v []string) *QuestionUpdateOne {
	_u.mutation.SetFollowUpTriggers(v)
	return _u
}

// AppendFollowUpTriggers appends value to the "follow_up_triggers" field.
func (_u *QuestionUpdateOne) AppendFollowUpTriggers(v []string) *QuestionUpdateOne {
	_u.mutation.AppendFollowUpTriggers(v)
	return _u
}

// ClearFollowUpTriggers clears the value of the "follow_up_triggers" field.
func (_u *QuestionUpdateOne) ClearFollowUpTriggers() *QuestionUpdateOne {
	_u.mutation.ClearFollowUpTriggers()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *QuestionUpdateOne) SetRationale(v string) *QuestionUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableRationale(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *QuestionUpdateOne) ClearRationale() *QuestionUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// SetSessionID sets the "session" edge to the Session entity by ID.
func (_u *QuestionUpdateOne) SetSessionID(id uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *QuestionUpdateOne) SetSession(v *Session) *QuestionUpdateOne {
	return _u.SetSessionID(v.ID)
}

// SetFollowUpID sets the "follow_up" edge to the Question entity by ID.
func (_u *QuestionUpdateOne) SetFollowUpID(id uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetFollowUpID(id)
	return _u
}

// SetNillableFollowUpID sets the "follow_up" edge to the Question entity by ID if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableFollowUpID(id *uuid.UUID) *QuestionUpdateOne {
	if id != nil {
		_u = _u.SetFollowUpID(*id)
	}
	return _u
}

// SetFollowUp sets the "follow_up" edge to the Question entity.
func (_u *QuestionUpdateOne) SetFollowUp(v *Question) *QuestionUpdateOne {
	return _u.SetFollowUpID(v.ID)
}

// SetParentID sets the "parent" edge to the Question entity by ID.
func (_u *QuestionUpdateOne) SetParentID(id uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the Question entity by ID if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableParentID(id *uuid.UUID) *QuestionUpdateOne {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the Question entity.
func (_u *QuestionUpdateOne) SetParent(v *Question) *QuestionUpdateOne {
	return _u.SetParentID(v.ID)
}

// SetAnswerID sets the "answer" edge to the Answer entity by ID.
func (_u *QuestionUpdateOne) SetAnswerID(id uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetAnswerID(id)
	return _u
}

// SetNillableAnswerID sets the "answer" edge to the Answer entity by ID if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAnswerID(id *uuid.UUID) *QuestionUpdateOne {
	if id != nil {
		_u = _u.SetAnswerID(*id)
	}
	return _u
}

// SetAnswer sets the "answer" edge to the Answer entity.
func (_u *QuestionUpdateOne) SetAnswer(v *Answer) *QuestionUpdateOne {
	return _u.SetAnswerID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *QuestionUpdateOne) ClearSession() *QuestionUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearFollowUp clears the "follow_up" edge to the Question entity.
func (_u *QuestionUpdateOne) ClearFollowUp() *QuestionUpdateOne {
	_u.mutation.ClearFollowUp()
	return _u
}

// ClearParent clears the "parent" edge to the Question entity.
func (_u *QuestionUpdateOne) ClearParent() *QuestionUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearAnswer clears the "answer" edge to the Answer entity.
func (_u *QuestionUpdateOne) ClearAnswer() *QuestionUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.session"`)
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.ExpectedPoints(); ok {
		_spec.SetField(question.FieldExpectedPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpectedPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldExpectedPoints, value)
		})
	}
	if value, ok := _u.mutation.FollowUpTriggers(); ok {
		_spec.SetField(question.FieldFollowUpTriggers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFollowUpTriggers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldFollowUpTriggers, value)
		})
	}
	if _u.mutation.FollowUpTriggersCleared() {
		_spec.ClearField(question.FieldFollowUpTriggers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(question.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(question.FieldRationale, field.TypeString)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SessionTable,
			Columns: []string{question.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SessionTable,
			Columns: []string{question.SessionColumn},
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
	if _u.mutation.FollowUpCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   question.FollowUpTable,
			Columns: []string{question.FollowUpColumn},
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FollowUpIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   question.FollowUpTable,
			Columns: []string{question.FollowUpColumn},
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   question.ParentTable,
			Columns: []string{question.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   question.ParentTable,
			Columns: []string{question.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   question.AnswerTable,
			Columns: []string{question.AnswerColumn},
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
			Inverse: false,
			Table:   question.AnswerTable,
			Columns: []string{question.AnswerColumn},
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
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
