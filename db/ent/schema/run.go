package schema

import (
	"encoding/json"
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

type Run struct{ ent.Schema }

func (Run) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_runs"},
	}
}

func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("status").Default(string(constants.RunStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.RunStatusPending),
				string(constants.RunStatusProcessing),
				string(constants.RunStatusCompleted),
				string(constants.RunStatusFailed),
			)),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
		// Frozen at run creation; later edits to project/template must not
		// affect an in-flight or historical run.
		field.JSON("settings_snapshot", json.RawMessage{}),
		field.JSON("template_snapshot", json.RawMessage{}),
		field.Float("cost_estimate").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,6)"}),
		field.Int("processed_count").Default(0),
		field.Int("skipped_count").Default(0),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("runs").
			Field("project_id").
			Unique().
			Required(),
		edge.To("steps", RunStep.Type),
		edge.To("records", ExtractionRecord.Type),
	}
}

func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status", "created_at"),
	}
}
