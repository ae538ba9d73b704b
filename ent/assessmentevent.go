// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jpsleep/sleepcheck/ent/assessmentevent"
)

// AssessmentEvent is the model entity for the AssessmentEvent schema.
type AssessmentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence shared by all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the assessment
	AssessmentID string `json:"assessment_id,omitempty"`
	// Surface that ran it: tui, cli or http
	Source string `json:"source,omitempty"`
	// Validated raw inputs as submitted
	Inputs json.RawMessage `json:"inputs,omitempty"`
	// Bmi holds the value of the "bmi" field.
	Bmi float64 `json:"bmi,omitempty"`
	// BmiCategory holds the value of the "bmi_category" field.
	BmiCategory string `json:"bmi_category,omitempty"`
	// Binary classifier output, 1 = disorder indicated
	Prediction int `json:"prediction,omitempty"`
	// Positive-class probability when the classifier reports one
	Probability *float64 `json:"probability,omitempty"`
	// Disorder labels in rule order
	Labels []string `json:"labels,omitempty"`
	// LatencyUs holds the value of the "latency_us" field.
	LatencyUs    int64 `json:"latency_us,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldInputs, assessmentevent.FieldLabels:
			values[i] = new([]byte)
		case assessmentevent.FieldBmi, assessmentevent.FieldProbability:
			values[i] = new(sql.NullFloat64)
		case assessmentevent.FieldID, assessmentevent.FieldSequence, assessmentevent.FieldPrediction, assessmentevent.FieldLatencyUs:
			values[i] = new(sql.NullInt64)
		case assessmentevent.FieldAssessmentID, assessmentevent.FieldSource, assessmentevent.FieldBmiCategory:
			values[i] = new(sql.NullString)
		case assessmentevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentEvent fields.
func (_m *AssessmentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assessmentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case assessmentevent.FieldAssessmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_id", values[i])
			} else if value.Valid {
				_m.AssessmentID = value.String
			}
		case assessmentevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case assessmentevent.FieldInputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Inputs); err != nil {
					return fmt.Errorf("unmarshal field inputs: %w", err)
				}
			}
		case assessmentevent.FieldBmi:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bmi", values[i])
			} else if value.Valid {
				_m.Bmi = value.Float64
			}
		case assessmentevent.FieldBmiCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bmi_category", values[i])
			} else if value.Valid {
				_m.BmiCategory = value.String
			}
		case assessmentevent.FieldPrediction:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prediction", values[i])
			} else if value.Valid {
				_m.Prediction = int(value.Int64)
			}
		case assessmentevent.FieldProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field probability", values[i])
			} else if value.Valid {
				_m.Probability = new(float64)
				*_m.Probability = value.Float64
			}
		case assessmentevent.FieldLabels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field labels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Labels); err != nil {
					return fmt.Errorf("unmarshal field labels: %w", err)
				}
			}
		case assessmentevent.FieldLatencyUs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_us", values[i])
			} else if value.Valid {
				_m.LatencyUs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentEvent.
// Note that you need to call AssessmentEvent.Unwrap() before calling this method if this AssessmentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentEvent) Update() *AssessmentEventUpdateOne {
	return NewAssessmentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentEvent) Unwrap() *AssessmentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("assessment_id=")
	builder.WriteString(_m.AssessmentID)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("inputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Inputs))
	builder.WriteString(", ")
	builder.WriteString("bmi=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bmi))
	builder.WriteString(", ")
	builder.WriteString("bmi_category=")
	builder.WriteString(_m.BmiCategory)
	builder.WriteString(", ")
	builder.WriteString("prediction=")
	builder.WriteString(fmt.Sprintf("%v", _m.Prediction))
	builder.WriteString(", ")
	if v := _m.Probability; v != nil {
		builder.WriteString("probability=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("labels=")
	builder.WriteString(fmt.Sprintf("%v", _m.Labels))
	builder.WriteString(", ")
	builder.WriteString("latency_us=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyUs))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentEvents is a parsable slice of AssessmentEvent.
type AssessmentEvents []*AssessmentEvent
