// Code generated by ent, DO NOT EDIT.

package upscalejob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the upscalejob type in the database.
	Label = "upscale_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldInputURL holds the string denoting the input_url field in the database.
	FieldInputURL = "input_url"
	// FieldOriginalWidth holds the string denoting the original_width field in the database.
	FieldOriginalWidth = "original_width"
	// FieldOriginalHeight holds the string denoting the original_height field in the database.
	FieldOriginalHeight = "original_height"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldRequestedScale holds the string denoting the requested_scale field in the database.
	FieldRequestedScale = "requested_scale"
	// FieldTargetScale holds the string denoting the target_scale field in the database.
	FieldTargetScale = "target_scale"
	// FieldChain holds the string denoting the chain field in the database.
	FieldChain = "chain"
	// FieldTemplate holds the string denoting the template field in the database.
	FieldTemplate = "template"
	// FieldGrid holds the string denoting the grid field in the database.
	FieldGrid = "grid"
	// FieldUsingTiling holds the string denoting the using_tiling field in the database.
	FieldUsingTiling = "using_tiling"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldTotalStages holds the string denoting the total_stages field in the database.
	FieldTotalStages = "total_stages"
	// FieldPredictionID holds the string denoting the prediction_id field in the database.
	FieldPredictionID = "prediction_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldLastCallbackAt holds the string denoting the last_callback_at field in the database.
	FieldLastCallbackAt = "last_callback_at"
	// FieldCurrentOutputURL holds the string denoting the current_output_url field in the database.
	FieldCurrentOutputURL = "current_output_url"
	// FieldFinalOutputURL holds the string denoting the final_output_url field in the database.
	FieldFinalOutputURL = "final_output_url"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeTiles holds the string denoting the tiles edge name in mutations.
	EdgeTiles = "tiles"
	// TileFieldID holds the string denoting the ID field of the Tile.
	TileFieldID = "id"
	// Table holds the table name of the upscalejob in the database.
	Table = "upscale_jobs"
	// TilesTable is the table that holds the tiles relation/edge.
	TilesTable = "tiles"
	// TilesInverseTable is the table name for the Tile entity.
	// It exists in this package in order to avoid circular dependency with the "tile" package.
	TilesInverseTable = "tiles"
	// TilesColumn is the table column denoting the tiles relation/edge.
	TilesColumn = "job_id"
)

// Columns holds all SQL columns for upscalejob fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldInputURL,
	FieldOriginalWidth,
	FieldOriginalHeight,
	FieldCategory,
	FieldRequestedScale,
	FieldTargetScale,
	FieldChain,
	FieldTemplate,
	FieldGrid,
	FieldUsingTiling,
	FieldCurrentStage,
	FieldTotalStages,
	FieldPredictionID,
	FieldStatus,
	FieldRetryCount,
	FieldLastCallbackAt,
	FieldCurrentOutputURL,
	FieldFinalOutputURL,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldCompletedAt,
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
	// DefaultUsingTiling holds the default value on creation for the "using_tiling" field.
	DefaultUsingTiling bool
	// DefaultCurrentStage holds the default value on creation for the "current_stage" field.
	DefaultCurrentStage int
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Category defines the type for the "category" enum field.
type Category string

// CategoryPhoto is the default value of the Category enum.
const DefaultCategory = CategoryPhoto

// Category values.
const (
	CategoryPhoto Category = "photo"
	CategoryArt   Category = "art"
	CategoryText  Category = "text"
	CategoryAnime Category = "anime"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryPhoto, CategoryArt, CategoryText, CategoryAnime:
		return nil
	default:
		return fmt.Errorf("upscalejob: invalid enum value for category field: %q", c)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusProcessing is the default value of the Status enum.
const DefaultStatus = StatusProcessing

// Status values.
const (
	StatusProcessing     Status = "processing"
	StatusTilesReady     Status = "tiles_ready"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
	StatusPartialSuccess Status = "partial_success"
	StatusNeedsSplit     Status = "needs_split"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusProcessing, StatusTilesReady, StatusCompleted, StatusFailed, StatusPartialSuccess, StatusNeedsSplit:
		return nil
	default:
		return fmt.Errorf("upscalejob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the UpscaleJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByInputURL orders the results by the input_url field.
func ByInputURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputURL, opts...).ToFunc()
}

// ByOriginalWidth orders the results by the original_width field.
func ByOriginalWidth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalWidth, opts...).ToFunc()
}

// ByOriginalHeight orders the results by the original_height field.
func ByOriginalHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalHeight, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByRequestedScale orders the results by the requested_scale field.
func ByRequestedScale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedScale, opts...).ToFunc()
}

// ByTargetScale orders the results by the target_scale field.
func ByTargetScale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetScale, opts...).ToFunc()
}

// ByUsingTiling orders the results by the using_tiling field.
func ByUsingTiling(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsingTiling, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByTotalStages orders the results by the total_stages field.
func ByTotalStages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalStages, opts...).ToFunc()
}

// ByPredictionID orders the results by the prediction_id field.
func ByPredictionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByLastCallbackAt orders the results by the last_callback_at field.
func ByLastCallbackAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCallbackAt, opts...).ToFunc()
}

// ByCurrentOutputURL orders the results by the current_output_url field.
func ByCurrentOutputURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentOutputURL, opts...).ToFunc()
}

// ByFinalOutputURL orders the results by the final_output_url field.
func ByFinalOutputURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalOutputURL, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTilesCount orders the results by tiles count.
func ByTilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTilesStep(), opts...)
	}
}

// ByTiles orders the results by tiles terms.
func ByTiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TilesInverseTable, TileFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TilesTable, TilesColumn),
	)
}
