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
	"github.com/google/uuid"
	"github.com/mateusribeiro/certidao-ocr/gen/ent/scanjob"
)

// ScanJobCreate is the builder for creating a ScanJob entity.
type ScanJobCreate struct {
	config
	mutation *ScanJobMutation
	hooks    []Hook
}

// SetFileName sets the "file_name" field.
func (sjc *ScanJobCreate) SetFileName(s string) *ScanJobCreate {
	sjc.mutation.SetFileName(s)
	return sjc
}

// SetChannelID sets the "channel_id" field.
func (sjc *ScanJobCreate) SetChannelID(s string) *ScanJobCreate {
	sjc.mutation.SetChannelID(s)
	return sjc
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (sjc *ScanJobCreate) SetNillableChannelID(s *string) *ScanJobCreate {
	if s != nil {
		sjc.SetChannelID(*s)
	}
	return sjc
}

// SetPages sets the "pages" field.
func (sjc *ScanJobCreate) SetPages(i int) *ScanJobCreate {
	sjc.mutation.SetPages(i)
	return sjc
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (sjc *ScanJobCreate) SetNillablePages(i *int) *ScanJobCreate {
	if i != nil {
		sjc.SetPages(*i)
	}
	return sjc
}

// SetStatus sets the "status" field.
func (sjc *ScanJobCreate) SetStatus(s string) *ScanJobCreate {
	sjc.mutation.SetStatus(s)
	return sjc
}

// SetErrorKind sets the "error_kind" field.
func (sjc *ScanJobCreate) SetErrorKind(s string) *ScanJobCreate {
	sjc.mutation.SetErrorKind(s)
	return sjc
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (sjc *ScanJobCreate) SetNillableErrorKind(s *string) *ScanJobCreate {
	if s != nil {
		sjc.SetErrorKind(*s)
	}
	return sjc
}

// SetErrorMessage sets the "error_message" field.
func (sjc *ScanJobCreate) SetErrorMessage(s string) *ScanJobCreate {
	sjc.mutation.SetErrorMessage(s)
	return sjc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (sjc *ScanJobCreate) SetNillableErrorMessage(s *string) *ScanJobCreate {
	if s != nil {
		sjc.SetErrorMessage(*s)
	}
	return sjc
}

// SetExtractedFields sets the "extracted_fields" field.
func (sjc *ScanJobCreate) SetExtractedFields(jm json.RawMessage) *ScanJobCreate {
	sjc.mutation.SetExtractedFields(jm)
	return sjc
}

// SetDurationMs sets the "duration_ms" field.
func (sjc *ScanJobCreate) SetDurationMs(i int64) *ScanJobCreate {
	sjc.mutation.SetDurationMs(i)
	return sjc
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (sjc *ScanJobCreate) SetNillableDurationMs(i *int64) *ScanJobCreate {
	if i != nil {
		sjc.SetDurationMs(*i)
	}
	return sjc
}

// SetStartedAt sets the "started_at" field.
func (sjc *ScanJobCreate) SetStartedAt(t time.Time) *ScanJobCreate {
	sjc.mutation.SetStartedAt(t)
	return sjc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (sjc *ScanJobCreate) SetNillableStartedAt(t *time.Time) *ScanJobCreate {
	if t != nil {
		sjc.SetStartedAt(*t)
	}
	return sjc
}

// SetFinishedAt sets the "finished_at" field.
func (sjc *ScanJobCreate) SetFinishedAt(t time.Time) *ScanJobCreate {
	sjc.mutation.SetFinishedAt(t)
	return sjc
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (sjc *ScanJobCreate) SetNillableFinishedAt(t *time.Time) *ScanJobCreate {
	if t != nil {
		sjc.SetFinishedAt(*t)
	}
	return sjc
}

// SetID sets the "id" field.
func (sjc *ScanJobCreate) SetID(u uuid.UUID) *ScanJobCreate {
	sjc.mutation.SetID(u)
	return sjc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (sjc *ScanJobCreate) SetNillableID(u *uuid.UUID) *ScanJobCreate {
	if u != nil {
		sjc.SetID(*u)
	}
	return sjc
}

// Mutation returns the ScanJobMutation object of the builder.
func (sjc *ScanJobCreate) Mutation() *ScanJobMutation {
	return sjc.mutation
}

// Save creates the ScanJob in the database.
func (sjc *ScanJobCreate) Save(ctx context.Context) (*ScanJob, error) {
	sjc.defaults()
	return withHooks(ctx, sjc.sqlSave, sjc.mutation, sjc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sjc *ScanJobCreate) SaveX(ctx context.Context) *ScanJob {
	v, err := sjc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sjc *ScanJobCreate) Exec(ctx context.Context) error {
	_, err := sjc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sjc *ScanJobCreate) ExecX(ctx context.Context) {
	if err := sjc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sjc *ScanJobCreate) defaults() {
	if _, ok := sjc.mutation.Pages(); !ok {
		v := scanjob.DefaultPages
		sjc.mutation.SetPages(v)
	}
	if _, ok := sjc.mutation.DurationMs(); !ok {
		v := scanjob.DefaultDurationMs
		sjc.mutation.SetDurationMs(v)
	}
	if _, ok := sjc.mutation.StartedAt(); !ok {
		v := scanjob.DefaultStartedAt()
		sjc.mutation.SetStartedAt(v)
	}
	if _, ok := sjc.mutation.ID(); !ok {
		v := scanjob.DefaultID()
		sjc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sjc *ScanJobCreate) check() error {
	if _, ok := sjc.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ScanJob.file_name"`)}
	}
	if v, ok := sjc.mutation.FileName(); ok {
		if err := scanjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ScanJob.file_name": %w`, err)}
		}
	}
	if _, ok := sjc.mutation.Pages(); !ok {
		return &ValidationError{Name: "pages", err: errors.New(`ent: missing required field "ScanJob.pages"`)}
	}
	if _, ok := sjc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScanJob.status"`)}
	}
	if v, ok := sjc.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	if _, ok := sjc.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ScanJob.duration_ms"`)}
	}
	if _, ok := sjc.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ScanJob.started_at"`)}
	}
	return nil
}

func (sjc *ScanJobCreate) sqlSave(ctx context.Context) (*ScanJob, error) {
	if err := sjc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sjc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sjc.driver, _spec); err != nil {
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
	sjc.mutation.id = &_node.ID
	sjc.mutation.done = true
	return _node, nil
}

func (sjc *ScanJobCreate) createSpec() (*ScanJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ScanJob{config: sjc.config}
		_spec = sqlgraph.NewCreateSpec(scanjob.Table, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	)
	if id, ok := sjc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := sjc.mutation.FileName(); ok {
		_spec.SetField(scanjob.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := sjc.mutation.ChannelID(); ok {
		_spec.SetField(scanjob.FieldChannelID, field.TypeString, value)
		_node.ChannelID = value
	}
	if value, ok := sjc.mutation.Pages(); ok {
		_spec.SetField(scanjob.FieldPages, field.TypeInt, value)
		_node.Pages = value
	}
	if value, ok := sjc.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := sjc.mutation.ErrorKind(); ok {
		_spec.SetField(scanjob.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := sjc.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := sjc.mutation.ExtractedFields(); ok {
		_spec.SetField(scanjob.FieldExtractedFields, field.TypeJSON, value)
		_node.ExtractedFields = value
	}
	if value, ok := sjc.mutation.DurationMs(); ok {
		_spec.SetField(scanjob.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := sjc.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := sjc.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// ScanJobCreateBulk is the builder for creating many ScanJob entities in bulk.
type ScanJobCreateBulk struct {
	config
	err      error
	builders []*ScanJobCreate
}

// Save creates the ScanJob entities in the database.
func (sjcb *ScanJobCreateBulk) Save(ctx context.Context) ([]*ScanJob, error) {
	if sjcb.err != nil {
		return nil, sjcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sjcb.builders))
	nodes := make([]*ScanJob, len(sjcb.builders))
	mutators := make([]Mutator, len(sjcb.builders))
	for i := range sjcb.builders {
		func(i int, root context.Context) {
			builder := sjcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScanJobMutation)
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
					_, err = mutators[i+1].Mutate(root, sjcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sjcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sjcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sjcb *ScanJobCreateBulk) SaveX(ctx context.Context) []*ScanJob {
	v, err := sjcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sjcb *ScanJobCreateBulk) Exec(ctx context.Context) error {
	_, err := sjcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sjcb *ScanJobCreateBulk) ExecX(ctx context.Context) {
	if err := sjcb.Exec(ctx); err != nil {
		panic(err)
	}
}
