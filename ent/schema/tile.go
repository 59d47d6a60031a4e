package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/pixelrelay/upscaled/pkg/models"
)

// Tile holds the schema definition for the Tile entity.
// One row per cell of a tiled job's grid; carries the per-stage slot list.
type Tile struct {
	ent.Schema
}

// Fields of the Tile.
func (Tile) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_id").
			Immutable(),
		field.Int("tile_index").
			Immutable().
			Comment("0..totalTiles-1, row-major"),

		// Crop rectangle in original-image coordinates.
		field.Int("x"),
		field.Int("y"),
		field.Int("width"),
		field.Int("height"),

		field.String("input_url").
			Comment("Tile crop in the staging blob prefix"),
		field.JSON("stages", []models.StageSlot{}).
			Comment("Slot k-1 holds stage k's prediction id and output URL"),
		field.String("current_prediction_id").
			Optional().
			Nillable().
			Comment("Prediction of the in-flight stage; callback lookup key"),
		field.String("status").
			Default(models.TileStatusPending).
			Comment("pending, stage{k}_processing, stage{k}_complete, failed"),
		field.Int("parent_tile_index").
			Optional().
			Nillable().
			Comment("Set when this tile was produced by a client-side split"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Tile.
func (Tile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", UpscaleJob.Type).
			Ref("tiles").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Tile.
func (Tile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "tile_index").
			Unique(),
		index.Fields("current_prediction_id"),
		index.Fields("job_id", "status"),
	}
}
