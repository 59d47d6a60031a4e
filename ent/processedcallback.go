// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pixelrelay/upscaled/ent/processedcallback"
)

// ProcessedCallback is the model entity for the ProcessedCallback schema.
type ProcessedCallback struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Filled in once the owner is located
	JobID string `json:"job_id,omitempty"`
	// Provider-reported terminal status
	Outcome string `json:"outcome,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt   time.Time `json:"received_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessedCallback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processedcallback.FieldID, processedcallback.FieldJobID, processedcallback.FieldOutcome:
			values[i] = new(sql.NullString)
		case processedcallback.FieldReceivedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessedCallback fields.
func (_m *ProcessedCallback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processedcallback.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case processedcallback.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case processedcallback.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case processedcallback.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessedCallback.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessedCallback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProcessedCallback.
// Note that you need to call ProcessedCallback.Unwrap() before calling this method if this ProcessedCallback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessedCallback) Update() *ProcessedCallbackUpdateOne {
	return NewProcessedCallbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessedCallback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessedCallback) Unwrap() *ProcessedCallback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessedCallback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessedCallback) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessedCallback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProcessedCallbacks is a parsable slice of ProcessedCallback.
type ProcessedCallbacks []*ProcessedCallback
