// Package models defines plain data types shared across layers:
// upscale plans, tile geometry, per-stage slots, and tile status helpers.
package models

// Category classifies image content; it drives model selection.
type Category string

const (
	CategoryPhoto Category = "photo"
	CategoryArt   Category = "art"
	CategoryText  Category = "text"
	CategoryAnime Category = "anime"
)

// ParseCategory maps a request string to a Category.
// Unknown or empty values fall back to photo.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryArt, CategoryText, CategoryAnime:
		return Category(s)
	default:
		return CategoryPhoto
	}
}

// ChainStage is one remote inference invocation within a chain.
type ChainStage struct {
	Stage int    `json:"stage"` // 1-indexed
	Model string `json:"model"`
	Scale int    `json:"scale"`
}

// TemplateStage carries per-stage tiling expectations. SplitFromPrevious is
// non-zero when a stage's input would exceed the GPU budget and the client
// must split each tile k² ways before resuming.
type TemplateStage struct {
	Stage             int `json:"stage"`
	Scale             int `json:"scale"`
	ExpectedTiles     int `json:"expectedTiles"`
	SplitFromPrevious int `json:"splitFromPrevious,omitempty"`
}

// TilingGrid describes how the original image is cut.
type TilingGrid struct {
	TilesX     int `json:"tilesX"`
	TilesY     int `json:"tilesY"`
	TileWidth  int `json:"tileWidth"`
	TileHeight int `json:"tileHeight"`
	Overlap    int `json:"overlap"`
	TotalTiles int `json:"totalTiles"`
}

// Rect is a crop rectangle in original-image coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StageSlot records one stage's prediction and output for a tile.
// Slot k-1 of a tile's stages list belongs to stage k.
type StageSlot struct {
	PredictionID string `json:"prediction_id,omitempty"`
	OutputURL    string `json:"output_url,omitempty"`
}

// Plan is the planner's full answer for a submission.
type Plan struct {
	EffectiveScale int
	Chain          []ChainStage
	Template       []TemplateStage
	Grid           *TilingGrid
	UsingTiling    bool
}

// TotalStages returns the chain length.
func (p *Plan) TotalStages() int { return len(p.Chain) }
