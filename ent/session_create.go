// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mockmate/mockmate/ent/question"
	"github.com/mockmate/mockmate/ent/report"
	"github.com/mockmate/mockmate/ent/resume"
	"github.com/mockmate/mockmate/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *SessionCreate) SetMode(v session.Mode) *SessionCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *SessionCreate) SetRole(v string) *SessionCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *SessionCreate) SetNillableRole(v *string) *SessionCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetTopics sets the "topics" field.
func (_c *SessionCreate) SetTopics(v []string) *SessionCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *SessionCreate) SetDifficulty(v session.Difficulty) *SessionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *SessionCreate) SetNillableDifficulty(v *session.Difficulty) *SessionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetNumQuestions sets the "num_questions" field.
func (_c *SessionCreate) SetNumQuestions(v int) *SessionCreate {
	_c.mutation.SetNumQuestions(v)
	return _c
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_c *SessionCreate) SetNillableNumQuestions(v *int) *SessionCreate {
	if v != nil {
		_c.SetNumQuestions(*v)
	}
	return _c
}

// SetTimeLimitMins sets the "time_limit_mins" field.
func (_c *SessionCreate) SetTimeLimitMins(v int) *SessionCreate {
	_c.mutation.SetTimeLimitMins(v)
	return _c
}

// SetNillableTimeLimitMins sets the "time_limit_mins" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTimeLimitMins(v *int) *SessionCreate {
	if v != nil {
		_c.SetTimeLimitMins(*v)
	}
	return _c
}

// SetNoRepeats sets the "no_repeats" field.
func (_c *SessionCreate) SetNoRepeats(v bool) *SessionCreate {
	_c.mutation.SetNoRepeats(v)
	return _c
}

// SetNillableNoRepeats sets the "no_repeats" field if the given value is not nil.
func (_c *SessionCreate) SetNillableNoRepeats(v *bool) *SessionCreate {
	if v != nil {
		_c.SetNoRepeats(*v)
	}
	return _c
}

// SetFocusWeakAreas sets the "focus_weak_areas" field.
func (_c *SessionCreate) SetFocusWeakAreas(v bool) *SessionCreate {
	_c.mutation.SetFocusWeakAreas(v)
	return _c
}

// SetNillableFocusWeakAreas sets the "focus_weak_areas" field if the given value is not nil.
func (_c *SessionCreate) SetNillableFocusWeakAreas(v *bool) *SessionCreate {
	if v != nil {
		_c.SetFocusWeakAreas(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionCreate) SetStartedAt(v time.Time) *SessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStartedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *SessionCreate) SetEndedAt(v time.Time) *SessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableEndedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableID(v *uuid.UUID) *SessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *SessionCreate) AddQuestionIDs(ids ...uuid.UUID) *SessionCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *SessionCreate) AddQuestions(v ...*Question) *SessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// SetReportID sets the "report" edge to the Report entity by ID.
func (_c *SessionCreate) SetReportID(id uuid.UUID) *SessionCreate {
	_c.mutation.SetReportID(id)
	return _c
}

// SetNillableReportID sets the "report" edge to the Report entity by ID if the given value is not nil.
func (_c *SessionCreate) SetNillableReportID(id *uuid.UUID) *SessionCreate {
	if id != nil {
		_c = _c.SetReportID(*id)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *SessionCreate) SetReport(v *Report) *SessionCreate {
	return _c.SetReportID(v.ID)
}

// SetResumeID sets the "resume" edge to the Resume entity by ID.
func (_c *SessionCreate) SetResumeID(id uuid.UUID) *SessionCreate {
	_c.mutation.SetResumeID(id)
	return _c
}

// SetNillableResumeID sets the "resume" edge to the Resume entity by ID if the given value is not nil.
func (_c *SessionCreate) SetNillableResumeID(id *uuid.UUID) *SessionCreate {
	if id != nil {
		_c = _c.SetResumeID(*id)
	}
	return _c
}

// SetResume sets the "resume" edge to the Resume entity.
func (_c *SessionCreate) SetResume(v *Resume) *SessionCreate {
	return _c.SetResumeID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := session.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.NoRepeats(); !ok {
		v := session.DefaultNoRepeats
		_c.mutation.SetNoRepeats(v)
	}
	if _, ok := _c.mutation.FocusWeakAreas(); !ok {
		v := session.DefaultFocusWeakAreas
		_c.mutation.SetFocusWeakAreas(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := session.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := session.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "Session.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := session.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Session.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Session.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := session.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Session.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NoRepeats(); !ok {
		return &ValidationError{Name: "no_repeats", err: errors.New(`ent: missing required field "Session.no_repeats"`)}
	}
	if _, ok := _c.mutation.FocusWeakAreas(); !ok {
		return &ValidationError{Name: "focus_weak_areas", err: errors.New(`ent: missing required field "Session.focus_weak_areas"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Session.started_at"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(session.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(session.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(session.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(session.FieldDifficulty, field.TypeEnum, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.NumQuestions(); ok {
		_spec.SetField(session.FieldNumQuestions, field.TypeInt, value)
		_node.NumQuestions = &value
	}
	if value, ok := _c.mutation.TimeLimitMins(); ok {
		_spec.SetField(session.FieldTimeLimitMins, field.TypeInt, value)
		_node.TimeLimitMins = &value
	}
	if value, ok := _c.mutation.NoRepeats(); ok {
		_spec.SetField(session.FieldNoRepeats, field.TypeBool, value)
		_node.NoRepeats = value
	}
	if value, ok := _c.mutation.FocusWeakAreas(); ok {
		_spec.SetField(session.FieldFocusWeakAreas, field.TypeBool, value)
		_node.FocusWeakAreas = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QuestionsTable,
			Columns: []string{session.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   session.ReportTable,
			Columns: []string{session.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResumeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.ResumeTable,
			Columns: []string{session.ResumeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.resume_sessions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
