// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pixelrelay/upscaled/ent/tile"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/models"
)

// Tile is the model entity for the Tile schema.
type Tile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// 0..totalTiles-1, row-major
	TileIndex int `json:"tile_index,omitempty"`
	// X holds the value of the "x" field.
	X int `json:"x,omitempty"`
	// Y holds the value of the "y" field.
	Y int `json:"y,omitempty"`
	// Width holds the value of the "width" field.
	Width int `json:"width,omitempty"`
	// Height holds the value of the "height" field.
	Height int `json:"height,omitempty"`
	// Tile crop in the staging blob prefix
	InputURL string `json:"input_url,omitempty"`
	// Slot k-1 holds stage k's prediction id and output URL
	Stages []models.StageSlot `json:"stages,omitempty"`
	// Prediction of the in-flight stage; callback lookup key
	CurrentPredictionID *string `json:"current_prediction_id,omitempty"`
	// pending, stage{k}_processing, stage{k}_complete, failed
	Status string `json:"status,omitempty"`
	// Set when this tile was produced by a client-side split
	ParentTileIndex *int `json:"parent_tile_index,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TileQuery when eager-loading is set.
	Edges        TileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TileEdges holds the relations/edges for other nodes in the graph.
type TileEdges struct {
	// Job holds the value of the job edge.
	Job *UpscaleJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TileEdges) JobOrErr() (*UpscaleJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: upscalejob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Tile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tile.FieldStages:
			values[i] = new([]byte)
		case tile.FieldID, tile.FieldTileIndex, tile.FieldX, tile.FieldY, tile.FieldWidth, tile.FieldHeight, tile.FieldParentTileIndex:
			values[i] = new(sql.NullInt64)
		case tile.FieldJobID, tile.FieldInputURL, tile.FieldCurrentPredictionID, tile.FieldStatus, tile.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case tile.FieldCreatedAt, tile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Tile fields.
func (_m *Tile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tile.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case tile.FieldTileIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tile_index", values[i])
			} else if value.Valid {
				_m.TileIndex = int(value.Int64)
			}
		case tile.FieldX:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field x", values[i])
			} else if value.Valid {
				_m.X = int(value.Int64)
			}
		case tile.FieldY:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field y", values[i])
			} else if value.Valid {
				_m.Y = int(value.Int64)
			}
		case tile.FieldWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field width", values[i])
			} else if value.Valid {
				_m.Width = int(value.Int64)
			}
		case tile.FieldHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				_m.Height = int(value.Int64)
			}
		case tile.FieldInputURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_url", values[i])
			} else if value.Valid {
				_m.InputURL = value.String
			}
		case tile.FieldStages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stages); err != nil {
					return fmt.Errorf("unmarshal field stages: %w", err)
				}
			}
		case tile.FieldCurrentPredictionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_prediction_id", values[i])
			} else if value.Valid {
				_m.CurrentPredictionID = new(string)
				*_m.CurrentPredictionID = value.String
			}
		case tile.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case tile.FieldParentTileIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_tile_index", values[i])
			} else if value.Valid {
				_m.ParentTileIndex = new(int)
				*_m.ParentTileIndex = int(value.Int64)
			}
		case tile.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case tile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Tile.
// This includes values selected through modifiers, order, etc.
func (_m *Tile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the Tile entity.
func (_m *Tile) QueryJob() *UpscaleJobQuery {
	return NewTileClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this Tile.
// Note that you need to call Tile.Unwrap() before calling this method if this Tile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Tile) Update() *TileUpdateOne {
	return NewTileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Tile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Tile) Unwrap() *Tile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Tile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Tile) String() string {
	var builder strings.Builder
	builder.WriteString("Tile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("tile_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.TileIndex))
	builder.WriteString(", ")
	builder.WriteString("x=")
	builder.WriteString(fmt.Sprintf("%v", _m.X))
	builder.WriteString(", ")
	builder.WriteString("y=")
	builder.WriteString(fmt.Sprintf("%v", _m.Y))
	builder.WriteString(", ")
	builder.WriteString("width=")
	builder.WriteString(fmt.Sprintf("%v", _m.Width))
	builder.WriteString(", ")
	builder.WriteString("height=")
	builder.WriteString(fmt.Sprintf("%v", _m.Height))
	builder.WriteString(", ")
	builder.WriteString("input_url=")
	builder.WriteString(_m.InputURL)
	builder.WriteString(", ")
	builder.WriteString("stages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stages))
	builder.WriteString(", ")
	if v := _m.CurrentPredictionID; v != nil {
		builder.WriteString("current_prediction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ParentTileIndex; v != nil {
		builder.WriteString("parent_tile_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
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
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tiles is a parsable slice of Tile.
type Tiles []*Tile
