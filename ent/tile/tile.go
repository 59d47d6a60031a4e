// Code generated by ent, DO NOT EDIT.

package tile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tile type in the database.
	Label = "tile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldTileIndex holds the string denoting the tile_index field in the database.
	FieldTileIndex = "tile_index"
	// FieldX holds the string denoting the x field in the database.
	FieldX = "x"
	// FieldY holds the string denoting the y field in the database.
	FieldY = "y"
	// FieldWidth holds the string denoting the width field in the database.
	FieldWidth = "width"
	// FieldHeight holds the string denoting the height field in the database.
	FieldHeight = "height"
	// FieldInputURL holds the string denoting the input_url field in the database.
	FieldInputURL = "input_url"
	// FieldStages holds the string denoting the stages field in the database.
	FieldStages = "stages"
	// FieldCurrentPredictionID holds the string denoting the current_prediction_id field in the database.
	FieldCurrentPredictionID = "current_prediction_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldParentTileIndex holds the string denoting the parent_tile_index field in the database.
	FieldParentTileIndex = "parent_tile_index"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// UpscaleJobFieldID holds the string denoting the ID field of the UpscaleJob.
	UpscaleJobFieldID = "job_id"
	// Table holds the table name of the tile in the database.
	Table = "tiles"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "tiles"
	// JobInverseTable is the table name for the UpscaleJob entity.
	// It exists in this package in order to avoid circular dependency with the "upscalejob" package.
	JobInverseTable = "upscale_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for tile fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldTileIndex,
	FieldX,
	FieldY,
	FieldWidth,
	FieldHeight,
	FieldInputURL,
	FieldStages,
	FieldCurrentPredictionID,
	FieldStatus,
	FieldParentTileIndex,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Tile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByTileIndex orders the results by the tile_index field.
func ByTileIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTileIndex, opts...).ToFunc()
}

// ByX orders the results by the x field.
func ByX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldX, opts...).ToFunc()
}

// ByY orders the results by the y field.
func ByY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldY, opts...).ToFunc()
}

// ByWidth orders the results by the width field.
func ByWidth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWidth, opts...).ToFunc()
}

// ByHeight orders the results by the height field.
func ByHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeight, opts...).ToFunc()
}

// ByInputURL orders the results by the input_url field.
func ByInputURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputURL, opts...).ToFunc()
}

// ByCurrentPredictionID orders the results by the current_prediction_id field.
func ByCurrentPredictionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPredictionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByParentTileIndex orders the results by the parent_tile_index field.
func ByParentTileIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTileIndex, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, UpscaleJobFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
