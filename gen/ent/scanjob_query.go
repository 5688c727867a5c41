// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mateusribeiro/certidao-ocr/gen/ent/predicate"
	"github.com/mateusribeiro/certidao-ocr/gen/ent/scanjob"
)

// ScanJobQuery is the builder for querying ScanJob entities.
type ScanJobQuery struct {
	config
	ctx        *QueryContext
	order      []scanjob.OrderOption
	inters     []Interceptor
	predicates []predicate.ScanJob
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ScanJobQuery builder.
func (sjq *ScanJobQuery) Where(ps ...predicate.ScanJob) *ScanJobQuery {
	sjq.predicates = append(sjq.predicates, ps...)
	return sjq
}

// Limit the number of records to be returned by this query.
func (sjq *ScanJobQuery) Limit(limit int) *ScanJobQuery {
	sjq.ctx.Limit = &limit
	return sjq
}

// Offset to start from.
func (sjq *ScanJobQuery) Offset(offset int) *ScanJobQuery {
	sjq.ctx.Offset = &offset
	return sjq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (sjq *ScanJobQuery) Unique(unique bool) *ScanJobQuery {
	sjq.ctx.Unique = &unique
	return sjq
}

// Order specifies how the records should be ordered.
func (sjq *ScanJobQuery) Order(o ...scanjob.OrderOption) *ScanJobQuery {
	sjq.order = append(sjq.order, o...)
	return sjq
}

// First returns the first ScanJob entity from the query.
// Returns a *NotFoundError when no ScanJob was found.
func (sjq *ScanJobQuery) First(ctx context.Context) (*ScanJob, error) {
	nodes, err := sjq.Limit(1).All(setContextOp(ctx, sjq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{scanjob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (sjq *ScanJobQuery) FirstX(ctx context.Context) *ScanJob {
	node, err := sjq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ScanJob ID from the query.
// Returns a *NotFoundError when no ScanJob ID was found.
func (sjq *ScanJobQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = sjq.Limit(1).IDs(setContextOp(ctx, sjq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{scanjob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (sjq *ScanJobQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := sjq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ScanJob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ScanJob entity is found.
// Returns a *NotFoundError when no ScanJob entities are found.
func (sjq *ScanJobQuery) Only(ctx context.Context) (*ScanJob, error) {
	nodes, err := sjq.Limit(2).All(setContextOp(ctx, sjq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{scanjob.Label}
	default:
		return nil, &NotSingularError{scanjob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (sjq *ScanJobQuery) OnlyX(ctx context.Context) *ScanJob {
	node, err := sjq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ScanJob ID in the query.
// Returns a *NotSingularError when more than one ScanJob ID is found.
// Returns a *NotFoundError when no entities are found.
func (sjq *ScanJobQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = sjq.Limit(2).IDs(setContextOp(ctx, sjq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{scanjob.Label}
	default:
		err = &NotSingularError{scanjob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (sjq *ScanJobQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := sjq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ScanJobs.
func (sjq *ScanJobQuery) All(ctx context.Context) ([]*ScanJob, error) {
	ctx = setContextOp(ctx, sjq.ctx, ent.OpQueryAll)
	if err := sjq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ScanJob, *ScanJobQuery]()
	return withInterceptors[[]*ScanJob](ctx, sjq, qr, sjq.inters)
}

// AllX is like All, but panics if an error occurs.
func (sjq *ScanJobQuery) AllX(ctx context.Context) []*ScanJob {
	nodes, err := sjq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ScanJob IDs.
func (sjq *ScanJobQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if sjq.ctx.Unique == nil && sjq.path != nil {
		sjq.Unique(true)
	}
	ctx = setContextOp(ctx, sjq.ctx, ent.OpQueryIDs)
	if err = sjq.Select(scanjob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (sjq *ScanJobQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := sjq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (sjq *ScanJobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, sjq.ctx, ent.OpQueryCount)
	if err := sjq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, sjq, querierCount[*ScanJobQuery](), sjq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (sjq *ScanJobQuery) CountX(ctx context.Context) int {
	count, err := sjq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (sjq *ScanJobQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, sjq.ctx, ent.OpQueryExist)
	switch _, err := sjq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (sjq *ScanJobQuery) ExistX(ctx context.Context) bool {
	exist, err := sjq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ScanJobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (sjq *ScanJobQuery) Clone() *ScanJobQuery {
	if sjq == nil {
		return nil
	}
	return &ScanJobQuery{
		config:     sjq.config,
		ctx:        sjq.ctx.Clone(),
		order:      append([]scanjob.OrderOption{}, sjq.order...),
		inters:     append([]Interceptor{}, sjq.inters...),
		predicates: append([]predicate.ScanJob{}, sjq.predicates...),
		// clone intermediate query.
		sql:  sjq.sql.Clone(),
		path: sjq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FileName string `json:"file_name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ScanJob.Query().
//		GroupBy(scanjob.FieldFileName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (sjq *ScanJobQuery) GroupBy(field string, fields ...string) *ScanJobGroupBy {
	sjq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ScanJobGroupBy{build: sjq}
	grbuild.flds = &sjq.ctx.Fields
	grbuild.label = scanjob.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FileName string `json:"file_name,omitempty"`
//	}
//
//	client.ScanJob.Query().
//		Select(scanjob.FieldFileName).
//		Scan(ctx, &v)
func (sjq *ScanJobQuery) Select(fields ...string) *ScanJobSelect {
	sjq.ctx.Fields = append(sjq.ctx.Fields, fields...)
	sbuild := &ScanJobSelect{ScanJobQuery: sjq}
	sbuild.label = scanjob.Label
	sbuild.flds, sbuild.scan = &sjq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ScanJobSelect configured with the given aggregations.
func (sjq *ScanJobQuery) Aggregate(fns ...AggregateFunc) *ScanJobSelect {
	return sjq.Select().Aggregate(fns...)
}

func (sjq *ScanJobQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range sjq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, sjq); err != nil {
				return err
			}
		}
	}
	for _, f := range sjq.ctx.Fields {
		if !scanjob.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if sjq.path != nil {
		prev, err := sjq.path(ctx)
		if err != nil {
			return err
		}
		sjq.sql = prev
	}
	return nil
}

func (sjq *ScanJobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ScanJob, error) {
	var (
		nodes = []*ScanJob{}
		_spec = sjq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ScanJob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ScanJob{config: sjq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, sjq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (sjq *ScanJobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := sjq.querySpec()
	_spec.Node.Columns = sjq.ctx.Fields
	if len(sjq.ctx.Fields) > 0 {
		_spec.Unique = sjq.ctx.Unique != nil && *sjq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, sjq.driver, _spec)
}

func (sjq *ScanJobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	_spec.From = sjq.sql
	if unique := sjq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if sjq.path != nil {
		_spec.Unique = true
	}
	if fields := sjq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanjob.FieldID)
		for i := range fields {
			if fields[i] != scanjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := sjq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := sjq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := sjq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := sjq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (sjq *ScanJobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(sjq.driver.Dialect())
	t1 := builder.Table(scanjob.Table)
	columns := sjq.ctx.Fields
	if len(columns) == 0 {
		columns = scanjob.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if sjq.sql != nil {
		selector = sjq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if sjq.ctx.Unique != nil && *sjq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range sjq.predicates {
		p(selector)
	}
	for _, p := range sjq.order {
		p(selector)
	}
	if offset := sjq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := sjq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ScanJobGroupBy is the group-by builder for ScanJob entities.
type ScanJobGroupBy struct {
	selector
	build *ScanJobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (sjgb *ScanJobGroupBy) Aggregate(fns ...AggregateFunc) *ScanJobGroupBy {
	sjgb.fns = append(sjgb.fns, fns...)
	return sjgb
}

// Scan applies the selector query and scans the result into the given value.
func (sjgb *ScanJobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sjgb.build.ctx, ent.OpQueryGroupBy)
	if err := sjgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScanJobQuery, *ScanJobGroupBy](ctx, sjgb.build, sjgb, sjgb.build.inters, v)
}

func (sjgb *ScanJobGroupBy) sqlScan(ctx context.Context, root *ScanJobQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(sjgb.fns))
	for _, fn := range sjgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*sjgb.flds)+len(sjgb.fns))
		for _, f := range *sjgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*sjgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sjgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ScanJobSelect is the builder for selecting fields of ScanJob entities.
type ScanJobSelect struct {
	*ScanJobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sjs *ScanJobSelect) Aggregate(fns ...AggregateFunc) *ScanJobSelect {
	sjs.fns = append(sjs.fns, fns...)
	return sjs
}

// Scan applies the selector query and scans the result into the given value.
func (sjs *ScanJobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sjs.ctx, ent.OpQuerySelect)
	if err := sjs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScanJobQuery, *ScanJobSelect](ctx, sjs.ScanJobQuery, sjs, sjs.inters, v)
}

func (sjs *ScanJobSelect) sqlScan(ctx context.Context, root *ScanJobQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sjs.fns))
	for _, fn := range sjs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sjs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sjs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
