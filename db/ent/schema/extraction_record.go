package schema

import (
	"encoding/json"
	"time"

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

type ExtractionRecord struct{ ent.Schema }

func (ExtractionRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_records"},
	}
}

func (ExtractionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("run_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}),
		field.String("record_status").Default(string(constants.RecordStatusNeedsReview)).
			Validate(utils.EnumValidator(
				string(constants.RecordStatusCompliant),
				string(constants.RecordStatusNonCompliant),
				string(constants.RecordStatusNeedsReview),
				string(constants.RecordStatusSkipped),
			)),
		// Ordered list of human-readable rule-violation strings.
		field.JSON("failed_rules", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("records").
			Field("run_id").
			Unique().
			Required(),
		edge.From("document", Document.Type).
			Ref("records").
			Field("document_id").
			Unique().
			Required(),
		edge.To("fields", ExtractionField.Type),
	}
}

func (ExtractionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "document_id"),
	}
}
