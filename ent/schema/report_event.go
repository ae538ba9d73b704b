package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReportEvent records a report export attempt.
type ReportEvent struct {
	ent.Schema
}

func (ReportEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReportEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty(),
		field.String("destination").
			Comment(`File path, or "download" for in-memory renders`),
		field.Strings("labels").
			Optional(),
		field.Int("size_bytes").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
	}
}

func (ReportEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
	}
}
