package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/registry"
)

func newTestPlanner() *Planner {
	return New(registry.New())
}

func TestEffectiveScale(t *testing.T) {
	// No guard pressure: requested wins.
	s, err := EffectiveScale(8, 24, 1200)
	require.NoError(t, err)
	assert.Equal(t, 8, s)

	// Plan cap wins over the request.
	s, err = EffectiveScale(24, 8, 1200)
	require.NoError(t, err)
	assert.Equal(t, 8, s)

	// Dimension guard: 2732 × 24 = 65568 > 65536, 2732 × 20 fits.
	s, err = EffectiveScale(24, 24, 2732)
	require.NoError(t, err)
	assert.Equal(t, 20, s)

	// Guard below 2×: unscalable.
	_, err = EffectiveScale(24, 24, 40000)
	assert.ErrorIs(t, err, ErrUnscalable)
}

func TestPlanSmallPhotoNoTiling(t *testing.T) {
	plan, err := newTestPlanner().Plan(400, 300, 2, models.CategoryPhoto, "")
	require.NoError(t, err)

	assert.False(t, plan.UsingTiling)
	assert.Nil(t, plan.Grid)
	require.Len(t, plan.Chain, 1)
	assert.Equal(t, 2, plan.Chain[0].Scale)
	assert.Equal(t, registry.ModelPhoto, plan.Chain[0].Model)
}

func TestPlanArtSixteen(t *testing.T) {
	plan, err := newTestPlanner().Plan(1000, 1000, 16, models.CategoryArt, "")
	require.NoError(t, err)

	require.Len(t, plan.Chain, 2)
	assert.Equal(t, registry.ModelArt, plan.Chain[0].Model)
	assert.Equal(t, registry.ModelPhoto, plan.Chain[1].Model)
	assert.True(t, plan.UsingTiling)
	require.NotNil(t, plan.Grid)
	assert.Equal(t, 9, plan.Grid.TotalTiles)
}

func TestPlanAnimeEight(t *testing.T) {
	plan, err := newTestPlanner().Plan(800, 1200, 8, models.CategoryAnime, "")
	require.NoError(t, err)

	require.Len(t, plan.Chain, 2)
	assert.Equal(t, []models.ChainStage{
		{Stage: 1, Model: registry.ModelAnime, Scale: 4},
		{Stage: 2, Model: registry.ModelPhoto, Scale: 2},
	}, plan.Chain)
}

func TestPlanChainProductEqualsEffectiveScale(t *testing.T) {
	p := newTestPlanner()
	for _, scale := range ValidScales {
		plan, err := p.Plan(1000, 800, scale, models.CategoryPhoto, "")
		require.NoError(t, err)
		product := 1
		for _, st := range plan.Chain {
			product *= st.Scale
		}
		assert.Equal(t, plan.EffectiveScale, product)
	}
}

func TestNewScaleError(t *testing.T) {
	serr := NewScaleError(28, 2000, 2000, models.CategoryPhoto)
	assert.Equal(t, 28, serr.Requested)
	assert.Equal(t, 24, serr.MaxSupported)
	assert.Equal(t, ValidScales, serr.ValidScales)
	require.Len(t, serr.Suggestions, 2)
	assert.Contains(t, serr.Suggestions[1], "resize")
}
