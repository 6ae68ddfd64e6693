package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/db/ent/schema/utils"
)

type ExtractionField struct{ ent.Schema }

func (ExtractionField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_fields"},
	}
}

func (ExtractionField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("record_id", uuid.UUID{}),
		field.String("field_name").NotEmpty(),
		field.String("field_type").NotEmpty(),
		// Polymorphic scalar/array, stored as JSON.
		field.JSON("extracted_value", json.RawMessage{}).Optional(),
		field.Float32("confidence").Default(0),
		// Source snippet + page + char offsets, nullable.
		field.JSON("evidence", json.RawMessage{}).Optional(),
		field.String("field_status").Default(string(constants.FieldStatusMissing)).
			Validate(utils.EnumValidator(
				string(constants.FieldStatusPass),
				string(constants.FieldStatusFailValidation),
				string(constants.FieldStatusNeedsReview),
				string(constants.FieldStatusMissing),
				string(constants.FieldStatusSkippedDocType),
			)),
		// Ordered list of {rule, message, severity}.
		field.JSON("validation_errors", json.RawMessage{}).Optional(),
	}
}

func (ExtractionField) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("record", ExtractionRecord.Type).
			Ref("fields").
			Field("record_id").
			Unique().
			Required(),
		edge.To("review_events", ReviewEvent.Type),
	}
}

func (ExtractionField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("record_id", "field_name").Unique(),
	}
}
