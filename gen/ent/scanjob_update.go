// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mateusribeiro/certidao-ocr/gen/ent/predicate"
	"github.com/mateusribeiro/certidao-ocr/gen/ent/scanjob"
)

// ScanJobUpdate is the builder for updating ScanJob entities.
type ScanJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScanJobMutation
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (sju *ScanJobUpdate) Where(ps ...predicate.ScanJob) *ScanJobUpdate {
	sju.mutation.Where(ps...)
	return sju
}

// SetFileName sets the "file_name" field.
func (sju *ScanJobUpdate) SetFileName(s string) *ScanJobUpdate {
	sju.mutation.SetFileName(s)
	return sju
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (sju *ScanJobUpdate) SetNillableFileName(s *string) *ScanJobUpdate {
	if s != nil {
		sju.SetFileName(*s)
	}
	return sju
}

// SetChannelID sets the "channel_id" field.
func (sju *ScanJobUpdate) SetChannelID(s string) *ScanJobUpdate {
	sju.mutation.SetChannelID(s)
	return sju
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (sju *ScanJobUpdate) SetNillableChannelID(s *string) *ScanJobUpdate {
	if s != nil {
		sju.SetChannelID(*s)
	}
	return sju
}

// ClearChannelID clears the value of the "channel_id" field.
func (sju *ScanJobUpdate) ClearChannelID() *ScanJobUpdate {
	sju.mutation.ClearChannelID()
	return sju
}

// SetPages sets the "pages" field.
func (sju *ScanJobUpdate) SetPages(i int) *ScanJobUpdate {
	sju.mutation.ResetPages()
	sju.mutation.SetPages(i)
	return sju
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (sju *ScanJobUpdate) SetNillablePages(i *int) *ScanJobUpdate {
	if i != nil {
		sju.SetPages(*i)
	}
	return sju
}

// AddPages adds i to the "pages" field.
func (sju *ScanJobUpdate) AddPages(i int) *ScanJobUpdate {
	sju.mutation.AddPages(i)
	return sju
}

// SetStatus sets the "status" field.
func (sju *ScanJobUpdate) SetStatus(s string) *ScanJobUpdate {
	sju.mutation.SetStatus(s)
	return sju
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sju *ScanJobUpdate) SetNillableStatus(s *string) *ScanJobUpdate {
	if s != nil {
		sju.SetStatus(*s)
	}
	return sju
}

// SetErrorKind sets the "error_kind" field.
func (sju *ScanJobUpdate) SetErrorKind(s string) *ScanJobUpdate {
	sju.mutation.SetErrorKind(s)
	return sju
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (sju *ScanJobUpdate) SetNillableErrorKind(s *string) *ScanJobUpdate {
	if s != nil {
		sju.SetErrorKind(*s)
	}
	return sju
}

// ClearErrorKind clears the value of the "error_kind" field.
func (sju *ScanJobUpdate) ClearErrorKind() *ScanJobUpdate {
	sju.mutation.ClearErrorKind()
	return sju
}

// SetErrorMessage sets the "error_message" field.
func (sju *ScanJobUpdate) SetErrorMessage(s string) *ScanJobUpdate {
	sju.mutation.SetErrorMessage(s)
	return sju
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (sju *ScanJobUpdate) SetNillableErrorMessage(s *string) *ScanJobUpdate {
	if s != nil {
		sju.SetErrorMessage(*s)
	}
	return sju
}

// ClearErrorMessage clears the value of the "error_message" field.
func (sju *ScanJobUpdate) ClearErrorMessage() *ScanJobUpdate {
	sju.mutation.ClearErrorMessage()
	return sju
}

// SetExtractedFields sets the "extracted_fields" field.
func (sju *ScanJobUpdate) SetExtractedFields(jm json.RawMessage) *ScanJobUpdate {
	sju.mutation.SetExtractedFields(jm)
	return sju
}

// AppendExtractedFields appends jm to the "extracted_fields" field.
func (sju *ScanJobUpdate) AppendExtractedFields(jm json.RawMessage) *ScanJobUpdate {
	sju.mutation.AppendExtractedFields(jm)
	return sju
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (sju *ScanJobUpdate) ClearExtractedFields() *ScanJobUpdate {
	sju.mutation.ClearExtractedFields()
	return sju
}

// SetDurationMs sets the "duration_ms" field.
func (sju *ScanJobUpdate) SetDurationMs(i int64) *ScanJobUpdate {
	sju.mutation.ResetDurationMs()
	sju.mutation.SetDurationMs(i)
	return sju
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (sju *ScanJobUpdate) SetNillableDurationMs(i *int64) *ScanJobUpdate {
	if i != nil {
		sju.SetDurationMs(*i)
	}
	return sju
}

// AddDurationMs adds i to the "duration_ms" field.
func (sju *ScanJobUpdate) AddDurationMs(i int64) *ScanJobUpdate {
	sju.mutation.AddDurationMs(i)
	return sju
}

// SetStartedAt sets the "started_at" field.
func (sju *ScanJobUpdate) SetStartedAt(t time.Time) *ScanJobUpdate {
	sju.mutation.SetStartedAt(t)
	return sju
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (sju *ScanJobUpdate) SetNillableStartedAt(t *time.Time) *ScanJobUpdate {
	if t != nil {
		sju.SetStartedAt(*t)
	}
	return sju
}

// SetFinishedAt sets the "finished_at" field.
func (sju *ScanJobUpdate) SetFinishedAt(t time.Time) *ScanJobUpdate {
	sju.mutation.SetFinishedAt(t)
	return sju
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (sju *ScanJobUpdate) SetNillableFinishedAt(t *time.Time) *ScanJobUpdate {
	if t != nil {
		sju.SetFinishedAt(*t)
	}
	return sju
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (sju *ScanJobUpdate) ClearFinishedAt() *ScanJobUpdate {
	sju.mutation.ClearFinishedAt()
	return sju
}

// Mutation returns the ScanJobMutation object of the builder.
func (sju *ScanJobUpdate) Mutation() *ScanJobMutation {
	return sju.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (sju *ScanJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, sju.sqlSave, sju.mutation, sju.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sju *ScanJobUpdate) SaveX(ctx context.Context) int {
	affected, err := sju.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (sju *ScanJobUpdate) Exec(ctx context.Context) error {
	_, err := sju.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sju *ScanJobUpdate) ExecX(ctx context.Context) {
	if err := sju.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sju *ScanJobUpdate) check() error {
	if v, ok := sju.mutation.FileName(); ok {
		if err := scanjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ScanJob.file_name": %w`, err)}
		}
	}
	if v, ok := sju.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	return nil
}

func (sju *ScanJobUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := sju.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	if ps := sju.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sju.mutation.FileName(); ok {
		_spec.SetField(scanjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := sju.mutation.ChannelID(); ok {
		_spec.SetField(scanjob.FieldChannelID, field.TypeString, value)
	}
	if sju.mutation.ChannelIDCleared() {
		_spec.ClearField(scanjob.FieldChannelID, field.TypeString)
	}
	if value, ok := sju.mutation.Pages(); ok {
		_spec.SetField(scanjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := sju.mutation.AddedPages(); ok {
		_spec.AddField(scanjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := sju.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := sju.mutation.ErrorKind(); ok {
		_spec.SetField(scanjob.FieldErrorKind, field.TypeString, value)
	}
	if sju.mutation.ErrorKindCleared() {
		_spec.ClearField(scanjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := sju.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if sju.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := sju.mutation.ExtractedFields(); ok {
		_spec.SetField(scanjob.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := sju.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldExtractedFields, value)
		})
	}
	if sju.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(scanjob.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := sju.mutation.DurationMs(); ok {
		_spec.SetField(scanjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := sju.mutation.AddedDurationMs(); ok {
		_spec.AddField(scanjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := sju.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := sju.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if sju.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, sju.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	sju.mutation.done = true
	return n, nil
}

// ScanJobUpdateOne is the builder for updating a single ScanJob entity.
type ScanJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanJobMutation
}

// SetFileName sets the "file_name" field.
func (sjuo *ScanJobUpdateOne) SetFileName(s string) *ScanJobUpdateOne {
	sjuo.mutation.SetFileName(s)
	return sjuo
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (sjuo *ScanJobUpdateOne) SetNillableFileName(s *string) *ScanJobUpdateOne {
	if s != nil {
		sjuo.SetFileName(*s)
	}
	return sjuo
}

// SetChannelID sets the "channel_id" field.
func (sjuo *ScanJobUpdateOne) SetChannelID(s string) *ScanJobUpdateOne {
	sjuo.mutation.SetChannelID(s)
	return sjuo
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (sjuo *ScanJobUpdateOne) SetNillableChannelID(s *string) *ScanJobUpdateOne {
	if s != nil {
		sjuo.SetChannelID(*s)
	}
	return sjuo
}

// ClearChannelID clears the value of the "channel_id" field.
func (sjuo *ScanJobUpdateOne) ClearChannelID() *ScanJobUpdateOne {
	sjuo.mutation.ClearChannelID()
	return sjuo
}

// SetPages sets the "pages" field.
func (sjuo *ScanJobUpdateOne) SetPages(i int) *ScanJobUpdateOne {
	sjuo.mutation.ResetPages()
	sjuo.mutation.SetPages(i)
	return sjuo
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (sjuo *ScanJobUpdateOne) SetNillablePages(i *int) *ScanJobUpdateOne {
	if i != nil {
		sjuo.SetPages(*i)
	}
	return sjuo
}

// AddPages adds i to the "pages" field.
func (sjuo *ScanJobUpdateOne) AddPages(i int) *ScanJobUpdateOne {
	sjuo.mutation.AddPages(i)
	return sjuo
}

// SetStatus sets the "status" field.
func (sjuo *ScanJobUpdateOne) SetStatus(s string) *ScanJobUpdateOne {
	sjuo.mutation.SetStatus(s)
	return sjuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sjuo *ScanJobUpdateOne) SetNillableStatus(s *string) *ScanJobUpdateOne {
	if s != nil {
		sjuo.SetStatus(*s)
	}
	return sjuo
}

// SetErrorKind sets the "error_kind" field.
func (sjuo *ScanJobUpdateOne) SetErrorKind(s string) *ScanJobUpdateOne {
	sjuo.mutation.SetErrorKind(s)
	return sjuo
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (sjuo *ScanJobUpdateOne) SetNillableErrorKind(s *string) *ScanJobUpdateOne {
	if s != nil {
		sjuo.SetErrorKind(*s)
	}
	return sjuo
}

// ClearErrorKind clears the value of the "error_kind" field.
func (sjuo *ScanJobUpdateOne) ClearErrorKind() *ScanJobUpdateOne {
	sjuo.mutation.ClearErrorKind()
	return sjuo
}

// SetErrorMessage sets the "error_message" field.
func (sjuo *ScanJobUpdateOne) SetErrorMessage(s string) *ScanJobUpdateOne {
	sjuo.mutation.SetErrorMessage(s)
	return sjuo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (sjuo *ScanJobUpdateOne) SetNillableErrorMessage(s *string) *ScanJobUpdateOne {
	if s != nil {
		sjuo.SetErrorMessage(*s)
	}
	return sjuo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (sjuo *ScanJobUpdateOne) ClearErrorMessage() *ScanJobUpdateOne {
	sjuo.mutation.ClearErrorMessage()
	return sjuo
}

// SetExtractedFields sets the "extracted_fields" field.
func (sjuo *ScanJobUpdateOne) SetExtractedFields(jm json.RawMessage) *ScanJobUpdateOne {
	sjuo.mutation.SetExtractedFields(jm)
	return sjuo
}

// AppendExtractedFields appends jm to the "extracted_fields" field.
func (sjuo *ScanJobUpdateOne) AppendExtractedFields(jm json.RawMessage) *ScanJobUpdateOne {
	sjuo.mutation.AppendExtractedFields(jm)
	return sjuo
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (sjuo *ScanJobUpdateOne) ClearExtractedFields() *ScanJobUpdateOne {
	sjuo.mutation.ClearExtractedFields()
	return sjuo
}

// SetDurationMs sets the "duration_ms" field.
func (sjuo *ScanJobUpdateOne) SetDurationMs(i int64) *ScanJobUpdateOne {
	sjuo.mutation.ResetDurationMs()
	sjuo.mutation.SetDurationMs(i)
	return sjuo
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (sjuo *ScanJobUpdateOne) SetNillableDurationMs(i *int64) *ScanJobUpdateOne {
	if i != nil {
		sjuo.SetDurationMs(*i)
	}
	return sjuo
}

// AddDurationMs adds i to the "duration_ms" field.
func (sjuo *ScanJobUpdateOne) AddDurationMs(i int64) *ScanJobUpdateOne {
	sjuo.mutation.AddDurationMs(i)
	return sjuo
}

// SetStartedAt sets the "started_at" field.
func (sjuo *ScanJobUpdateOne) SetStartedAt(t time.Time) *ScanJobUpdateOne {
	sjuo.mutation.SetStartedAt(t)
	return sjuo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (sjuo *ScanJobUpdateOne) SetNillableStartedAt(t *time.Time) *ScanJobUpdateOne {
	if t != nil {
		sjuo.SetStartedAt(*t)
	}
	return sjuo
}

// SetFinishedAt sets the "finished_at" field.
func (sjuo *ScanJobUpdateOne) SetFinishedAt(t time.Time) *ScanJobUpdateOne {
	sjuo.mutation.SetFinishedAt(t)
	return sjuo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (sjuo *ScanJobUpdateOne) SetNillableFinishedAt(t *time.Time) *ScanJobUpdateOne {
	if t != nil {
		sjuo.SetFinishedAt(*t)
	}
	return sjuo
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (sjuo *ScanJobUpdateOne) ClearFinishedAt() *ScanJobUpdateOne {
	sjuo.mutation.ClearFinishedAt()
	return sjuo
}

// Mutation returns the ScanJobMutation object of the builder.
func (sjuo *ScanJobUpdateOne) Mutation() *ScanJobMutation {
	return sjuo.mutation
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (sjuo *ScanJobUpdateOne) Where(ps ...predicate.ScanJob) *ScanJobUpdateOne {
	sjuo.mutation.Where(ps...)
	return sjuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sjuo *ScanJobUpdateOne) Select(field string, fields ...string) *ScanJobUpdateOne {
	sjuo.fields = append([]string{field}, fields...)
	return sjuo
}

// Save executes the query and returns the updated ScanJob entity.
func (sjuo *ScanJobUpdateOne) Save(ctx context.Context) (*ScanJob, error) {
	return withHooks(ctx, sjuo.sqlSave, sjuo.mutation, sjuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sjuo *ScanJobUpdateOne) SaveX(ctx context.Context) *ScanJob {
	node, err := sjuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sjuo *ScanJobUpdateOne) Exec(ctx context.Context) error {
	_, err := sjuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sjuo *ScanJobUpdateOne) ExecX(ctx context.Context) {
	if err := sjuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sjuo *ScanJobUpdateOne) check() error {
	if v, ok := sjuo.mutation.FileName(); ok {
		if err := scanjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ScanJob.file_name": %w`, err)}
		}
	}
	if v, ok := sjuo.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	return nil
}

func (sjuo *ScanJobUpdateOne) sqlSave(ctx context.Context) (_node *ScanJob, err error) {
	if err := sjuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	id, ok := sjuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sjuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanjob.FieldID)
		for _, f := range fields {
			if !scanjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sjuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sjuo.mutation.FileName(); ok {
		_spec.SetField(scanjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := sjuo.mutation.ChannelID(); ok {
		_spec.SetField(scanjob.FieldChannelID, field.TypeString, value)
	}
	if sjuo.mutation.ChannelIDCleared() {
		_spec.ClearField(scanjob.FieldChannelID, field.TypeString)
	}
	if value, ok := sjuo.mutation.Pages(); ok {
		_spec.SetField(scanjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := sjuo.mutation.AddedPages(); ok {
		_spec.AddField(scanjob.FieldPages, field.TypeInt, value)
	}
	if value, ok := sjuo.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := sjuo.mutation.ErrorKind(); ok {
		_spec.SetField(scanjob.FieldErrorKind, field.TypeString, value)
	}
	if sjuo.mutation.ErrorKindCleared() {
		_spec.ClearField(scanjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := sjuo.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if sjuo.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := sjuo.mutation.ExtractedFields(); ok {
		_spec.SetField(scanjob.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := sjuo.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scanjob.FieldExtractedFields, value)
		})
	}
	if sjuo.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(scanjob.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := sjuo.mutation.DurationMs(); ok {
		_spec.SetField(scanjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := sjuo.mutation.AddedDurationMs(); ok {
		_spec.AddField(scanjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := sjuo.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := sjuo.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if sjuo.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	_node = &ScanJob{config: sjuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sjuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sjuo.mutation.done = true
	return _node, nil
}
