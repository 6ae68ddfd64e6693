package schema

import (
	"encoding/json"

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

// RunStep is the durable audit trail: one row per stage attempt per
// document, updated exactly twice (start, then finish).
type RunStep struct{ ent.Schema }

func (RunStep) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "run_steps"},
	}
}

func (RunStep) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("run_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}),
		field.String("step_name").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.StepParseDocument),
				string(constants.StepClassifyDocument),
				string(constants.StepChunkDocument),
				string(constants.StepLLMExtraction),
				string(constants.StepValidation),
				string(constants.StepPersistResults),
			)),
		field.String("status").Default(string(constants.StepStatusPending)),
		field.JSON("input", json.RawMessage{}).Optional(),
		field.JSON("output", json.RawMessage{}).Optional(),
		field.String("error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (RunStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("steps").
			Field("run_id").
			Unique().
			Required(),
		edge.From("document", Document.Type).
			Ref("steps").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (RunStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "document_id", "step_name"),
	}
}
