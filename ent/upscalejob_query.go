// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pixelrelay/upscaled/ent/predicate"
	"github.com/pixelrelay/upscaled/ent/tile"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
)

// UpscaleJobQuery is the builder for querying UpscaleJob entities.
type UpscaleJobQuery struct {
	config
	ctx        *QueryContext
	order      []upscalejob.OrderOption
	inters     []Interceptor
	predicates []predicate.UpscaleJob
	withTiles  *TileQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UpscaleJobQuery builder.
func (_q *UpscaleJobQuery) Where(ps ...predicate.UpscaleJob) *UpscaleJobQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *UpscaleJobQuery) Limit(limit int) *UpscaleJobQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *UpscaleJobQuery) Offset(offset int) *UpscaleJobQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *UpscaleJobQuery) Unique(unique bool) *UpscaleJobQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *UpscaleJobQuery) Order(o ...upscalejob.OrderOption) *UpscaleJobQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTiles chains the current query on the "tiles" edge.
func (_q *UpscaleJobQuery) QueryTiles() *TileQuery {
	query := (&TileClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(upscalejob.Table, upscalejob.FieldID, selector),
			sqlgraph.To(tile.Table, tile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, upscalejob.TilesTable, upscalejob.TilesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first UpscaleJob entity from the query.
// Returns a *NotFoundError when no UpscaleJob was found.
func (_q *UpscaleJobQuery) First(ctx context.Context) (*UpscaleJob, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{upscalejob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *UpscaleJobQuery) FirstX(ctx context.Context) *UpscaleJob {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UpscaleJob ID from the query.
// Returns a *NotFoundError when no UpscaleJob ID was found.
func (_q *UpscaleJobQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{upscalejob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *UpscaleJobQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UpscaleJob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UpscaleJob entity is found.
// Returns a *NotFoundError when no UpscaleJob entities are found.
func (_q *UpscaleJobQuery) Only(ctx context.Context) (*UpscaleJob, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{upscalejob.Label}
	default:
		return nil, &NotSingularError{upscalejob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *UpscaleJobQuery) OnlyX(ctx context.Context) *UpscaleJob {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UpscaleJob ID in the query.
// Returns a *NotSingularError when more than one UpscaleJob ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *UpscaleJobQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{upscalejob.Label}
	default:
		err = &NotSingularError{upscalejob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *UpscaleJobQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UpscaleJobs.
func (_q *UpscaleJobQuery) All(ctx context.Context) ([]*UpscaleJob, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UpscaleJob, *UpscaleJobQuery]()
	return withInterceptors[[]*UpscaleJob](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *UpscaleJobQuery) AllX(ctx context.Context) []*UpscaleJob {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UpscaleJob IDs.
func (_q *UpscaleJobQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(upscalejob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *UpscaleJobQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *UpscaleJobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*UpscaleJobQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *UpscaleJobQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *UpscaleJobQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *UpscaleJobQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UpscaleJobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *UpscaleJobQuery) Clone() *UpscaleJobQuery {
	if _q == nil {
		return nil
	}
	return &UpscaleJobQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]upscalejob.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.UpscaleJob{}, _q.predicates...),
		withTiles:  _q.withTiles.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTiles tells the query-builder to eager-load the nodes that are connected to
// the "tiles" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UpscaleJobQuery) WithTiles(opts ...func(*TileQuery)) *UpscaleJobQuery {
	query := (&TileClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTiles = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.UpscaleJob.Query().
//		GroupBy(upscalejob.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *UpscaleJobQuery) GroupBy(field string, fields ...string) *UpscaleJobGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UpscaleJobGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = upscalejob.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.UpscaleJob.Query().
//		Select(upscalejob.FieldUserID).
//		Scan(ctx, &v)
func (_q *UpscaleJobQuery) Select(fields ...string) *UpscaleJobSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &UpscaleJobSelect{UpscaleJobQuery: _q}
	sbuild.label = upscalejob.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UpscaleJobSelect configured with the given aggregations.
func (_q *UpscaleJobQuery) Aggregate(fns ...AggregateFunc) *UpscaleJobSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *UpscaleJobQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !upscalejob.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *UpscaleJobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UpscaleJob, error) {
	var (
		nodes       = []*UpscaleJob{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withTiles != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UpscaleJob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UpscaleJob{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withTiles; query != nil {
		if err := _q.loadTiles(ctx, query, nodes,
			func(n *UpscaleJob) { n.Edges.Tiles = []*Tile{} },
			func(n *UpscaleJob, e *Tile) { n.Edges.Tiles = append(n.Edges.Tiles, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *UpscaleJobQuery) loadTiles(ctx context.Context, query *TileQuery, nodes []*UpscaleJob, init func(*UpscaleJob), assign func(*UpscaleJob, *Tile)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*UpscaleJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(tile.FieldJobID)
	}
	query.Where(predicate.Tile(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(upscalejob.TilesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *UpscaleJobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *UpscaleJobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(upscalejob.Table, upscalejob.Columns, sqlgraph.NewFieldSpec(upscalejob.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upscalejob.FieldID)
		for i := range fields {
			if fields[i] != upscalejob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *UpscaleJobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(upscalejob.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = upscalejob.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UpscaleJobGroupBy is the group-by builder for UpscaleJob entities.
type UpscaleJobGroupBy struct {
	selector
	build *UpscaleJobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *UpscaleJobGroupBy) Aggregate(fns ...AggregateFunc) *UpscaleJobGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *UpscaleJobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UpscaleJobQuery, *UpscaleJobGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *UpscaleJobGroupBy) sqlScan(ctx context.Context, root *UpscaleJobQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UpscaleJobSelect is the builder for selecting fields of UpscaleJob entities.
type UpscaleJobSelect struct {
	*UpscaleJobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *UpscaleJobSelect) Aggregate(fns ...AggregateFunc) *UpscaleJobSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *UpscaleJobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UpscaleJobQuery, *UpscaleJobSelect](ctx, _s.UpscaleJobQuery, _s, _s.inters, v)
}

func (_s *UpscaleJobSelect) sqlScan(ctx context.Context, root *UpscaleJobQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
