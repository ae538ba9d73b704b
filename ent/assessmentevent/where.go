// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jpsleep/sleepcheck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSource, v))
}

// Bmi applies equality check predicate on the "bmi" field. It's identical to BmiEQ.
func Bmi(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldBmi, v))
}

// BmiCategory applies equality check predicate on the "bmi_category" field. It's identical to BmiCategoryEQ.
func BmiCategory(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldBmiCategory, v))
}

// Prediction applies equality check predicate on the "prediction" field. It's identical to PredictionEQ.
func Prediction(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldPrediction, v))
}

// Probability applies equality check predicate on the "probability" field. It's identical to ProbabilityEQ.
func Probability(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldProbability, v))
}

// LatencyUs applies equality check predicate on the "latency_us" field. It's identical to LatencyUsEQ.
func LatencyUs(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldLatencyUs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldAssessmentID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldSource, v))
}

// BmiEQ applies the EQ predicate on the "bmi" field.
func BmiEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldBmi, v))
}

// BmiNEQ applies the NEQ predicate on the "bmi" field.
func BmiNEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldBmi, v))
}

// BmiIn applies the In predicate on the "bmi" field.
func BmiIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldBmi, vs...))
}

// BmiNotIn applies the NotIn predicate on the "bmi" field.
func BmiNotIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldBmi, vs...))
}

// BmiGT applies the GT predicate on the "bmi" field.
func BmiGT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldBmi, v))
}

// BmiGTE applies the GTE predicate on the "bmi" field.
func BmiGTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldBmi, v))
}

// BmiLT applies the LT predicate on the "bmi" field.
func BmiLT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldBmi, v))
}

// BmiLTE applies the LTE predicate on the "bmi" field.
func BmiLTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldBmi, v))
}

// BmiCategoryEQ applies the EQ predicate on the "bmi_category" field.
func BmiCategoryEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldBmiCategory, v))
}

// BmiCategoryNEQ applies the NEQ predicate on the "bmi_category" field.
func BmiCategoryNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldBmiCategory, v))
}

// BmiCategoryIn applies the In predicate on the "bmi_category" field.
func BmiCategoryIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldBmiCategory, vs...))
}

// BmiCategoryNotIn applies the NotIn predicate on the "bmi_category" field.
func BmiCategoryNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldBmiCategory, vs...))
}

// BmiCategoryGT applies the GT predicate on the "bmi_category" field.
func BmiCategoryGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldBmiCategory, v))
}

// BmiCategoryGTE applies the GTE predicate on the "bmi_category" field.
func BmiCategoryGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldBmiCategory, v))
}

// BmiCategoryLT applies the LT predicate on the "bmi_category" field.
func BmiCategoryLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldBmiCategory, v))
}

// BmiCategoryLTE applies the LTE predicate on the "bmi_category" field.
func BmiCategoryLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldBmiCategory, v))
}

// BmiCategoryContains applies the Contains predicate on the "bmi_category" field.
func BmiCategoryContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldBmiCategory, v))
}

// BmiCategoryHasPrefix applies the HasPrefix predicate on the "bmi_category" field.
func BmiCategoryHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldBmiCategory, v))
}

// BmiCategoryHasSuffix applies the HasSuffix predicate on the "bmi_category" field.
func BmiCategoryHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldBmiCategory, v))
}

// BmiCategoryEqualFold applies the EqualFold predicate on the "bmi_category" field.
func BmiCategoryEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldBmiCategory, v))
}

// BmiCategoryContainsFold applies the ContainsFold predicate on the "bmi_category" field.
func BmiCategoryContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldBmiCategory, v))
}

// PredictionEQ applies the EQ predicate on the "prediction" field.
func PredictionEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldPrediction, v))
}

// PredictionNEQ applies the NEQ predicate on the "prediction" field.
func PredictionNEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldPrediction, v))
}

// PredictionIn applies the In predicate on the "prediction" field.
func PredictionIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldPrediction, vs...))
}

// PredictionNotIn applies the NotIn predicate on the "prediction" field.
func PredictionNotIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldPrediction, vs...))
}

// PredictionGT applies the GT predicate on the "prediction" field.
func PredictionGT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldPrediction, v))
}

// PredictionGTE applies the GTE predicate on the "prediction" field.
func PredictionGTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldPrediction, v))
}

// PredictionLT applies the LT predicate on the "prediction" field.
func PredictionLT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldPrediction, v))
}

// PredictionLTE applies the LTE predicate on the "prediction" field.
func PredictionLTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldPrediction, v))
}

// ProbabilityEQ applies the EQ predicate on the "probability" field.
func ProbabilityEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldProbability, v))
}

// ProbabilityNEQ applies the NEQ predicate on the "probability" field.
func ProbabilityNEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldProbability, v))
}

// ProbabilityIn applies the In predicate on the "probability" field.
func ProbabilityIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldProbability, vs...))
}

// ProbabilityNotIn applies the NotIn predicate on the "probability" field.
func ProbabilityNotIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldProbability, vs...))
}

// ProbabilityGT applies the GT predicate on the "probability" field.
func ProbabilityGT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldProbability, v))
}

// ProbabilityGTE applies the GTE predicate on the "probability" field.
func ProbabilityGTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldProbability, v))
}

// ProbabilityLT applies the LT predicate on the "probability" field.
func ProbabilityLT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldProbability, v))
}

// ProbabilityLTE applies the LTE predicate on the "probability" field.
func ProbabilityLTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldProbability, v))
}

// ProbabilityIsNil applies the IsNil predicate on the "probability" field.
func ProbabilityIsNil() predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIsNull(FieldProbability))
}

// ProbabilityNotNil applies the NotNil predicate on the "probability" field.
func ProbabilityNotNil() predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotNull(FieldProbability))
}

// LabelsIsNil applies the IsNil predicate on the "labels" field.
func LabelsIsNil() predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIsNull(FieldLabels))
}

// LabelsNotNil applies the NotNil predicate on the "labels" field.
func LabelsNotNil() predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotNull(FieldLabels))
}

// LatencyUsEQ applies the EQ predicate on the "latency_us" field.
func LatencyUsEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldLatencyUs, v))
}

// LatencyUsNEQ applies the NEQ predicate on the "latency_us" field.
func LatencyUsNEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldLatencyUs, v))
}

// LatencyUsIn applies the In predicate on the "latency_us" field.
func LatencyUsIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldLatencyUs, vs...))
}

// LatencyUsNotIn applies the NotIn predicate on the "latency_us" field.
func LatencyUsNotIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldLatencyUs, vs...))
}

// LatencyUsGT applies the GT predicate on the "latency_us" field.
func LatencyUsGT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldLatencyUs, v))
}

// LatencyUsGTE applies the GTE predicate on the "latency_us" field.
func LatencyUsGTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldLatencyUs, v))
}

// LatencyUsLT applies the LT predicate on the "latency_us" field.
func LatencyUsLT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldLatencyUs, v))
}

// LatencyUsLTE applies the LTE predicate on the "latency_us" field.
func LatencyUsLTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldLatencyUs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.NotPredicates(p))
}
