package planner

import (
	"fmt"
	"math"

	"github.com/pixelrelay/upscaled/pkg/models"
)

const (
	// GPUSideLimit is the side of the provider's per-call pixel budget
	// (≈2.1 M pixels as a square).
	GPUSideLimit = 1448

	// NativeSafeSide bounds whole-image submissions: a single-stage job
	// within this square needs no tiling.
	NativeSafeSide = 1400

	baseOverlap    = 64
	minOverlap     = 32
	minTileSide    = 64
	maxUsableTiles = 60
)

// OverlapFor returns the tile overlap for a target scale. High scales shrink
// the overlap proportionally so tile counts stay bounded, never below the
// seam-safe floor.
func OverlapFor(targetScale int) int {
	if targetScale <= 16 {
		return baseOverlap
	}
	o := baseOverlap * 16 / targetScale
	if o < minOverlap {
		o = minOverlap
	}
	return o
}

// MinTileSize derives the tile side from the stage-2 input constraint: a
// tile upscaled by the first stage must still fit the GPU square.
func MinTileSize(firstStageScale int) int {
	m := GPUSideLimit / firstStageScale
	if m < minTileSide {
		m = minTileSide
	}
	return m
}

// NeedsTiling reports whether a chain on an image of the given size can run
// whole-image: a single native-scale stage over an image inside the
// native-safe square.
func NeedsTiling(width, height int, chain []int) bool {
	if len(chain) != 1 {
		return true
	}
	if chain[0] > 4 {
		return true
	}
	return width > NativeSafeSide || height > NativeSafeSide
}

// PlanGrid computes the tiling grid for an image and chain.
func PlanGrid(width, height int, chain []int, targetScale int) (*models.TilingGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("empty chain")
	}

	min := MinTileSize(chain[0])
	overlap := OverlapFor(targetScale)

	tilesX := int(math.Ceil(float64(width) / float64(min)))
	tilesY := int(math.Ceil(float64(height) / float64(min)))

	tileW := (width + tilesX - 1) / tilesX
	if tileW > min-overlap {
		tileW = min - overlap
	}
	tileH := (height + tilesY - 1) / tilesY
	if tileH > min-overlap {
		tileH = min - overlap
	}

	grid := &models.TilingGrid{
		TilesX:     tilesX,
		TilesY:     tilesY,
		TileWidth:  tileW,
		TileHeight: tileH,
		Overlap:    overlap,
		TotalTiles: tilesX * tilesY,
	}
	if err := validateGrid(grid, chain); err != nil {
		return nil, err
	}
	return grid, nil
}

func validateGrid(grid *models.TilingGrid, chain []int) error {
	if grid.TileWidth <= 0 || grid.TileHeight <= 0 || grid.TilesX <= 0 || grid.TilesY <= 0 {
		return fmt.Errorf("degenerate tiling grid %+v", *grid)
	}
	expanded := grid.TileWidth + grid.Overlap
	if h := grid.TileHeight + grid.Overlap; h > expanded {
		expanded = h
	}
	// Stage-1 input, and stage-2 input after the first upscale, must both
	// fit the GPU square.
	if expanded > GPUSideLimit {
		return fmt.Errorf("stage-1 input %dpx exceeds GPU side limit", expanded)
	}
	if len(chain) > 1 && expanded*chain[0] > GPUSideLimit {
		return fmt.Errorf("stage-2 input %dpx exceeds GPU side limit", expanded*chain[0])
	}
	return nil
}

// TileRects returns the crop rectangle of every tile in row-major order.
// Interior tiles are expanded by the overlap on the right/bottom; boundary
// tiles extend to the image edge.
func TileRects(width, height int, grid *models.TilingGrid) []models.Rect {
	rects := make([]models.Rect, 0, grid.TotalTiles)
	for ty := 0; ty < grid.TilesY; ty++ {
		for tx := 0; tx < grid.TilesX; tx++ {
			x := tx * grid.TileWidth
			y := ty * grid.TileHeight
			w := grid.TileWidth + grid.Overlap
			h := grid.TileHeight + grid.Overlap
			if tx == grid.TilesX-1 || x+w > width {
				w = width - x
			}
			if ty == grid.TilesY-1 || y+h > height {
				h = height - y
			}
			rects = append(rects, models.Rect{X: x, Y: y, Width: w, Height: h})
		}
	}
	return rects
}

// BuildTemplate computes per-stage tile expectations. A stage whose input
// would exceed the GPU square requires a client-side split of k² per tile
// before it may launch; entry to that stage is then gated on POST /resume.
func BuildTemplate(grid *models.TilingGrid, chain []int) []models.TemplateStage {
	template := make([]models.TemplateStage, 0, len(chain))
	inputSide := grid.TileWidth + grid.Overlap
	if h := grid.TileHeight + grid.Overlap; h > inputSide {
		inputSide = h
	}
	expected := grid.TotalTiles

	for i, scale := range chain {
		split := 0
		if inputSide > GPUSideLimit {
			k := int(math.Ceil(float64(inputSide) / float64(GPUSideLimit)))
			split = k * k
			inputSide = (inputSide + k - 1) / k
			expected *= split
		}
		template = append(template, models.TemplateStage{
			Stage:             i + 1,
			Scale:             scale,
			ExpectedTiles:     expected,
			SplitFromPrevious: split,
		})
		inputSide *= scale
	}
	return template
}

// MaxSafeScale returns the largest valid target scale whose plan keeps the
// effective tile count within bounds for this image, or 0 if none does.
func MaxSafeScale(width, height int, category models.Category) int {
	best := 0
	for _, s := range ValidScales {
		chain, err := ScaleChain(s, category)
		if err != nil {
			continue
		}
		if !NeedsTiling(width, height, chain) {
			best = s
			continue
		}
		grid, err := PlanGrid(width, height, chain, s)
		if err != nil {
			continue
		}
		if grid.TotalTiles <= maxUsableTiles {
			best = s
		}
	}
	return best
}
