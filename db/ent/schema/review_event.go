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

// ReviewEvent preserves the audit trail of human edits to extracted fields.
type ReviewEvent struct{ ent.Schema }

func (ReviewEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "review_events"},
	}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("field_id", uuid.UUID{}),
		field.String("action").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.ReviewActionEdit),
				string(constants.ReviewActionApprove),
				string(constants.ReviewActionReject),
			)),
		field.JSON("old_value", json.RawMessage{}).Optional(),
		field.JSON("new_value", json.RawMessage{}).Optional(),
		field.String("actor").NotEmpty(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ReviewEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("extraction_field", ExtractionField.Type).
			Ref("review_events").
			Field("field_id").
			Unique().
			Required(),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("field_id", "created_at"),
	}
}
