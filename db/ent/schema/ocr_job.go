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

type OcrJob struct{ ent.Schema }

func (OcrJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_jobs"},
	}
}

func (OcrJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so failed jobs can be queried per run
		field.UUID("run_id", uuid.UUID{}),
		field.String("source_path").NotEmpty(),
		field.String("artifact_path").NotEmpty(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator("QUEUED", "RUNNING", "SUCCEEDED", "FAILED")),
		field.Time("recorded_at").Default(time.Now),
		field.Int("retries").Default(0),
		field.Int("char_count").Default(0),
		field.Int("word_count").Default(0),
		field.Int64("duration_ms").Default(0),
		field.String("error_message").Optional().Nillable(),
	}
}

func (OcrJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", BatchRun.Type).
			Ref("jobs").
			Field("run_id").
			Unique().
			Required(),
	}
}

func (OcrJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "status"),
		index.Fields("source_path"),
	}
}
