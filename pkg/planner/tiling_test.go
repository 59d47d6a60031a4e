package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/pkg/models"
)

func TestNeedsTiling(t *testing.T) {
	// Small photo at 2×: whole-image.
	assert.False(t, NeedsTiling(400, 300, []int{2}))
	assert.False(t, NeedsTiling(1400, 1400, []int{4}))

	// Single stage above the native scale always tiles.
	assert.True(t, NeedsTiling(1200, 800, []int{8}))
	// Multi-stage chains always tile.
	assert.True(t, NeedsTiling(100, 100, []int{4, 4}))
	// Oversized originals tile even at native scale.
	assert.True(t, NeedsTiling(1600, 900, []int{2}))
}

func TestPlanGridArtSixteen(t *testing.T) {
	// 1000×1000 art at 16×: chain [4,4], MIN = 1448/4 = 362, overlap 64.
	grid, err := PlanGrid(1000, 1000, []int{4, 4}, 16)
	require.NoError(t, err)

	assert.Equal(t, 3, grid.TilesX)
	assert.Equal(t, 3, grid.TilesY)
	assert.Equal(t, 9, grid.TotalTiles)
	assert.Equal(t, 64, grid.Overlap)

	// Expanded tile must survive the first upscale within the GPU square.
	expanded := grid.TileWidth + grid.Overlap
	assert.LessOrEqual(t, expanded, MinTileSize(4))
	assert.LessOrEqual(t, expanded*4, GPUSideLimit*4)
	assert.LessOrEqual(t, expanded*4, GPUSideLimit)
}

func TestPlanGridPhotoTwentyFour(t *testing.T) {
	// 2000×2000 photo at 24×: chain [4,6], reduced overlap.
	grid, err := PlanGrid(2000, 2000, []int{4, 6}, 24)
	require.NoError(t, err)

	assert.Equal(t, OverlapFor(24), grid.Overlap)
	assert.Less(t, grid.Overlap, 64)
	assert.GreaterOrEqual(t, grid.Overlap, 32)

	expanded := grid.TileWidth + grid.Overlap
	// Stage-1 input and stage-2 input both inside the 1448 square.
	assert.LessOrEqual(t, expanded, GPUSideLimit)
	assert.LessOrEqual(t, expanded*4, GPUSideLimit)
}

func TestPlanGridSingleStageEight(t *testing.T) {
	grid, err := PlanGrid(1200, 800, []int{8}, 8)
	require.NoError(t, err)

	// MIN = 1448/8 = 181.
	assert.Equal(t, 7, grid.TilesX)
	assert.Equal(t, 5, grid.TilesY)
	assert.LessOrEqual(t, grid.TileWidth+grid.Overlap, MinTileSize(8))
}

func TestPlanGridRejectsDegenerateInput(t *testing.T) {
	_, err := PlanGrid(0, 100, []int{4}, 4)
	assert.Error(t, err)
	_, err = PlanGrid(100, -5, []int{4}, 4)
	assert.Error(t, err)
	_, err = PlanGrid(100, 100, nil, 4)
	assert.Error(t, err)
}

func TestOverlapFor(t *testing.T) {
	assert.Equal(t, 64, OverlapFor(2))
	assert.Equal(t, 64, OverlapFor(16))
	assert.Equal(t, 51, OverlapFor(20))
	assert.Equal(t, 42, OverlapFor(24))
	// Floor.
	assert.Equal(t, 32, OverlapFor(40))
}

func TestTileRectsCoverImage(t *testing.T) {
	width, height := 1000, 1000
	grid, err := PlanGrid(width, height, []int{4, 4}, 16)
	require.NoError(t, err)

	rects := TileRects(width, height, grid)
	require.Len(t, rects, grid.TotalTiles)

	covered := make([][]bool, height)
	for y := range covered {
		covered[y] = make([]bool, width)
	}
	for _, r := range rects {
		require.Greater(t, r.Width, 0)
		require.Greater(t, r.Height, 0)
		require.LessOrEqual(t, r.X+r.Width, width)
		require.LessOrEqual(t, r.Y+r.Height, height)
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				covered[y][x] = true
			}
		}
	}
	for y := 0; y < height; y += 97 {
		for x := 0; x < width; x += 89 {
			assert.True(t, covered[y][x], "pixel %d,%d uncovered", x, y)
		}
	}
	// Corners.
	assert.True(t, covered[height-1][width-1])
	assert.True(t, covered[0][width-1])
	assert.True(t, covered[height-1][0])
}

func TestTileRectsInteriorOverlap(t *testing.T) {
	grid := &models.TilingGrid{
		TilesX: 3, TilesY: 3, TileWidth: 298, TileHeight: 298,
		Overlap: 64, TotalTiles: 9,
	}
	rects := TileRects(1000, 1000, grid)

	// Interior tile expanded right/bottom by the overlap.
	assert.Equal(t, models.Rect{X: 0, Y: 0, Width: 362, Height: 362}, rects[0])
	// Boundary tile extends to the image edge.
	last := rects[8]
	assert.Equal(t, 1000, last.X+last.Width)
	assert.Equal(t, 1000, last.Y+last.Height)
}

func TestBuildTemplate(t *testing.T) {
	grid, err := PlanGrid(2000, 2000, []int{4, 6}, 24)
	require.NoError(t, err)

	template := BuildTemplate(grid, []int{4, 6})
	require.Len(t, template, 2)
	assert.Equal(t, 1, template[0].Stage)
	assert.Equal(t, grid.TotalTiles, template[0].ExpectedTiles)
	assert.Zero(t, template[0].SplitFromPrevious)
	// Stage 2 input (tile × 4 ≤ 1448) fits, so no client-side split either.
	assert.Zero(t, template[1].SplitFromPrevious)
	assert.Equal(t, grid.TotalTiles, template[1].ExpectedTiles)
}

func TestMaxSafeScale(t *testing.T) {
	// A modest photo supports the full range.
	assert.Equal(t, 24, MaxSafeScale(1000, 1000, models.CategoryPhoto))
	// Tiny images too.
	assert.Equal(t, 24, MaxSafeScale(100, 100, models.CategoryPhoto))
	// Very large originals cap out below the maximum.
	assert.Less(t, MaxSafeScale(9000, 9000, models.CategoryPhoto), 24)
}
