package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/ocrmark/ocrmark/db/ent/schema/utils"
)

type BatchRun struct{ ent.Schema }

func (BatchRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batch_runs"},
	}
}

func (BatchRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("input_dir").NotEmpty(),
		field.String("output_dir").NotEmpty(),
		field.String("mode").NotEmpty().
			Validate(utils.EnumValidator("general", "accurate", "table", "handwriting")),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator("RUNNING", "FINISHED")),
		field.Int("total").Default(0),
		field.Int("succeeded").Default(0),
		field.Int("failed").Default(0),
		field.Float32("success_rate").Default(0),
	}
}

func (BatchRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", OcrJob.Type),
	}
}

func (BatchRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
	}
}
