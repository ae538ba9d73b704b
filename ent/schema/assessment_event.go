package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records one completed screening.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Comment("UUID of the assessment"),
		field.String("source").
			Comment("Surface that ran it: tui, cli or http"),
		field.JSON("inputs", json.RawMessage{}).
			Comment("Validated raw inputs as submitted"),
		field.Float("bmi"),
		field.String("bmi_category"),
		field.Int("prediction").
			Comment("Binary classifier output, 1 = disorder indicated"),
		field.Float("probability").
			Optional().
			Nillable().
			Comment("Positive-class probability when the classifier reports one"),
		field.Strings("labels").
			Optional().
			Comment("Disorder labels in rule order"),
		field.Int64("latency_us").
			Default(0),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("source"),
	}
}
