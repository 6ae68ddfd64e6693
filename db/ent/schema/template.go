package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Template holds the live template configuration. Runs never read this
// after creation; they carry their own frozen snapshot.
type Template struct{ ent.Schema }

func (Template) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "templates"},
	}
}

func (Template) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("slug").NotEmpty(),
		field.Int("version").Default(1),
		// Full template config: fields, validators, extraction prompt,
		// detection keywords. Stored as one JSON document.
		field.JSON("config", json.RawMessage{}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Template) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug", "version").Unique(),
	}
}
