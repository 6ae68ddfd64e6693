package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/constants"
	"github.com/veridoc-ai/veridoc/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("file_url").NotEmpty(),
		field.String("file_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("status").Default("UPLOADED"),
		field.Float("doc_type_score").Optional().Nillable(),
		field.String("doc_type_detected").Optional().Nillable(),
		field.String("doc_type_reason").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("skip_reason").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("documents").
			Field("project_id").
			Unique().
			Required(),
		edge.To("steps", RunStep.Type),
		edge.To("records", ExtractionRecord.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
	}
}
