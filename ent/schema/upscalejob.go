package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/pixelrelay/upscaled/pkg/models"
)

// UpscaleJob holds the schema definition for the UpscaleJob entity.
// One row per upscale request; authoritative state for the whole pipeline.
type UpscaleJob struct {
	ent.Schema
}

// Fields of the UpscaleJob.
func (UpscaleJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Comment("Owning principal"),
		field.String("input_url").
			Comment("Original image in the staging blob prefix"),
		field.Int("original_width"),
		field.Int("original_height"),
		field.Enum("category").
			Values("photo", "art", "text", "anime").
			Default("photo"),
		field.Int("requested_scale"),
		field.Int("target_scale").
			Comment("Effective scale after the output-dimension guard"),
		field.JSON("chain", []models.ChainStage{}).
			Comment("Ordered per-stage model/scale plan"),
		field.JSON("template", []models.TemplateStage{}).
			Optional().
			Comment("Per-stage tile counts and client-split factors"),
		field.JSON("grid", &models.TilingGrid{}).
			Optional().
			Comment("null when the job runs whole-image"),
		field.Bool("using_tiling").
			Default(false),
		field.Int("current_stage").
			Default(1).
			Comment("1-indexed stage cursor"),
		field.Int("total_stages"),
		field.String("prediction_id").
			Optional().
			Nillable().
			Comment("Current prediction for non-tiled jobs"),
		field.Enum("status").
			Values("processing", "tiles_ready", "completed", "failed", "partial_success", "needs_split").
			Default("processing"),
		field.Int("retry_count").
			Default(0),
		field.Time("last_callback_at").
			Optional().
			Nillable().
			Comment("For silent-job detection by the reconciler"),
		field.String("current_output_url").
			Optional().
			Nillable().
			Comment("Latest intermediate output"),
		field.String("final_output_url").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the UpscaleJob.
func (UpscaleJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tiles", Tile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the UpscaleJob.
func (UpscaleJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
		index.Fields("prediction_id"),
		index.Fields("status", "last_callback_at"),
		index.Fields("status", "created_at"),
	}
}
