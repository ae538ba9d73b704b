// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldInputs holds the string denoting the inputs field in the database.
	FieldInputs = "inputs"
	// FieldBmi holds the string denoting the bmi field in the database.
	FieldBmi = "bmi"
	// FieldBmiCategory holds the string denoting the bmi_category field in the database.
	FieldBmiCategory = "bmi_category"
	// FieldPrediction holds the string denoting the prediction field in the database.
	FieldPrediction = "prediction"
	// FieldProbability holds the string denoting the probability field in the database.
	FieldProbability = "probability"
	// FieldLabels holds the string denoting the labels field in the database.
	FieldLabels = "labels"
	// FieldLatencyUs holds the string denoting the latency_us field in the database.
	FieldLatencyUs = "latency_us"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAssessmentID,
	FieldSource,
	FieldInputs,
	FieldBmi,
	FieldBmiCategory,
	FieldPrediction,
	FieldProbability,
	FieldLabels,
	FieldLatencyUs,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	AssessmentIDValidator func(string) error
	// DefaultLatencyUs holds the default value on creation for the "latency_us" field.
	DefaultLatencyUs int64
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAssessmentID orders the results by the assessment_id field.
func ByAssessmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByBmi orders the results by the bmi field.
func ByBmi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBmi, opts...).ToFunc()
}

// ByBmiCategory orders the results by the bmi_category field.
func ByBmiCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBmiCategory, opts...).ToFunc()
}

// ByPrediction orders the results by the prediction field.
func ByPrediction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrediction, opts...).ToFunc()
}

// ByProbability orders the results by the probability field.
func ByProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProbability, opts...).ToFunc()
}

// ByLatencyUs orders the results by the latency_us field.
func ByLatencyUs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyUs, opts...).ToFunc()
}
