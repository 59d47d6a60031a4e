// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/models"
)

// UpscaleJob is the model entity for the UpscaleJob schema.
type UpscaleJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning principal
	UserID string `json:"user_id,omitempty"`
	// Original image in the staging blob prefix
	InputURL string `json:"input_url,omitempty"`
	// OriginalWidth holds the value of the "original_width" field.
	OriginalWidth int `json:"original_width,omitempty"`
	// OriginalHeight holds the value of the "original_height" field.
	OriginalHeight int `json:"original_height,omitempty"`
	// Category holds the value of the "category" field.
	Category upscalejob.Category `json:"category,omitempty"`
	// RequestedScale holds the value of the "requested_scale" field.
	RequestedScale int `json:"requested_scale,omitempty"`
	// Effective scale after the output-dimension guard
	TargetScale int `json:"target_scale,omitempty"`
	// Ordered per-stage model/scale plan
	Chain []models.ChainStage `json:"chain,omitempty"`
	// Per-stage tile counts and client-split factors
	Template []models.TemplateStage `json:"template,omitempty"`
	// null when the job runs whole-image
	Grid *models.TilingGrid `json:"grid,omitempty"`
	// UsingTiling holds the value of the "using_tiling" field.
	UsingTiling bool `json:"using_tiling,omitempty"`
	// 1-indexed stage cursor
	CurrentStage int `json:"current_stage,omitempty"`
	// TotalStages holds the value of the "total_stages" field.
	TotalStages int `json:"total_stages,omitempty"`
	// Current prediction for non-tiled jobs
	PredictionID *string `json:"prediction_id,omitempty"`
	// Status holds the value of the "status" field.
	Status upscalejob.Status `json:"status,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// For silent-job detection by the reconciler
	LastCallbackAt *time.Time `json:"last_callback_at,omitempty"`
	// Latest intermediate output
	CurrentOutputURL *string `json:"current_output_url,omitempty"`
	// FinalOutputURL holds the value of the "final_output_url" field.
	FinalOutputURL *string `json:"final_output_url,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UpscaleJobQuery when eager-loading is set.
	Edges        UpscaleJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UpscaleJobEdges holds the relations/edges for other nodes in the graph.
type UpscaleJobEdges struct {
	// Tiles holds the value of the tiles edge.
	Tiles []*Tile `json:"tiles,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TilesOrErr returns the Tiles value or an error if the edge
// was not loaded in eager-loading.
func (e UpscaleJobEdges) TilesOrErr() ([]*Tile, error) {
	if e.loadedTypes[0] {
		return e.Tiles, nil
	}
	return nil, &NotLoadedError{edge: "tiles"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UpscaleJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case upscalejob.FieldChain, upscalejob.FieldTemplate, upscalejob.FieldGrid:
			values[i] = new([]byte)
		case upscalejob.FieldUsingTiling:
			values[i] = new(sql.NullBool)
		case upscalejob.FieldOriginalWidth, upscalejob.FieldOriginalHeight, upscalejob.FieldRequestedScale, upscalejob.FieldTargetScale, upscalejob.FieldCurrentStage, upscalejob.FieldTotalStages, upscalejob.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case upscalejob.FieldID, upscalejob.FieldUserID, upscalejob.FieldInputURL, upscalejob.FieldCategory, upscalejob.FieldPredictionID, upscalejob.FieldStatus, upscalejob.FieldCurrentOutputURL, upscalejob.FieldFinalOutputURL, upscalejob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case upscalejob.FieldLastCallbackAt, upscalejob.FieldCreatedAt, upscalejob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UpscaleJob fields.
func (_m *UpscaleJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case upscalejob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case upscalejob.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case upscalejob.FieldInputURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_url", values[i])
			} else if value.Valid {
				_m.InputURL = value.String
			}
		case upscalejob.FieldOriginalWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field original_width", values[i])
			} else if value.Valid {
				_m.OriginalWidth = int(value.Int64)
			}
		case upscalejob.FieldOriginalHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field original_height", values[i])
			} else if value.Valid {
				_m.OriginalHeight = int(value.Int64)
			}
		case upscalejob.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = upscalejob.Category(value.String)
			}
		case upscalejob.FieldRequestedScale:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requested_scale", values[i])
			} else if value.Valid {
				_m.RequestedScale = int(value.Int64)
			}
		case upscalejob.FieldTargetScale:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_scale", values[i])
			} else if value.Valid {
				_m.TargetScale = int(value.Int64)
			}
		case upscalejob.FieldChain:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chain", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Chain); err != nil {
					return fmt.Errorf("unmarshal field chain: %w", err)
				}
			}
		case upscalejob.FieldTemplate:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field template", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Template); err != nil {
					return fmt.Errorf("unmarshal field template: %w", err)
				}
			}
		case upscalejob.FieldGrid:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field grid", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Grid); err != nil {
					return fmt.Errorf("unmarshal field grid: %w", err)
				}
			}
		case upscalejob.FieldUsingTiling:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field using_tiling", values[i])
			} else if value.Valid {
				_m.UsingTiling = value.Bool
			}
		case upscalejob.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = int(value.Int64)
			}
		case upscalejob.FieldTotalStages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_stages", values[i])
			} else if value.Valid {
				_m.TotalStages = int(value.Int64)
			}
		case upscalejob.FieldPredictionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prediction_id", values[i])
			} else if value.Valid {
				_m.PredictionID = new(string)
				*_m.PredictionID = value.String
			}
		case upscalejob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = upscalejob.Status(value.String)
			}
		case upscalejob.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case upscalejob.FieldLastCallbackAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_callback_at", values[i])
			} else if value.Valid {
				_m.LastCallbackAt = new(time.Time)
				*_m.LastCallbackAt = value.Time
			}
		case upscalejob.FieldCurrentOutputURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_output_url", values[i])
			} else if value.Valid {
				_m.CurrentOutputURL = new(string)
				*_m.CurrentOutputURL = value.String
			}
		case upscalejob.FieldFinalOutputURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_output_url", values[i])
			} else if value.Valid {
				_m.FinalOutputURL = new(string)
				*_m.FinalOutputURL = value.String
			}
		case upscalejob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case upscalejob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case upscalejob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UpscaleJob.
// This includes values selected through modifiers, order, etc.
func (_m *UpscaleJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTiles queries the "tiles" edge of the UpscaleJob entity.
func (_m *UpscaleJob) QueryTiles() *TileQuery {
	return NewUpscaleJobClient(_m.config).QueryTiles(_m)
}

// Update returns a builder for updating this UpscaleJob.
// Note that you need to call UpscaleJob.Unwrap() before calling this method if this UpscaleJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UpscaleJob) Update() *UpscaleJobUpdateOne {
	return NewUpscaleJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UpscaleJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UpscaleJob) Unwrap() *UpscaleJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UpscaleJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UpscaleJob) String() string {
	var builder strings.Builder
	builder.WriteString("UpscaleJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("input_url=")
	builder.WriteString(_m.InputURL)
	builder.WriteString(", ")
	builder.WriteString("original_width=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalWidth))
	builder.WriteString(", ")
	builder.WriteString("original_height=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalHeight))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("requested_scale=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestedScale))
	builder.WriteString(", ")
	builder.WriteString("target_scale=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetScale))
	builder.WriteString(", ")
	builder.WriteString("chain=")
	builder.WriteString(fmt.Sprintf("%v", _m.Chain))
	builder.WriteString(", ")
	builder.WriteString("template=")
	builder.WriteString(fmt.Sprintf("%v", _m.Template))
	builder.WriteString(", ")
	builder.WriteString("grid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Grid))
	builder.WriteString(", ")
	builder.WriteString("using_tiling=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsingTiling))
	builder.WriteString(", ")
	builder.WriteString("current_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStage))
	builder.WriteString(", ")
	builder.WriteString("total_stages=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalStages))
	builder.WriteString(", ")
	if v := _m.PredictionID; v != nil {
		builder.WriteString("prediction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.LastCallbackAt; v != nil {
		builder.WriteString("last_callback_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CurrentOutputURL; v != nil {
		builder.WriteString("current_output_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FinalOutputURL; v != nil {
		builder.WriteString("final_output_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UpscaleJobs is a parsable slice of UpscaleJob.
type UpscaleJobs []*UpscaleJob
