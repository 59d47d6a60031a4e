package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/pkg/models"
)

func TestScaleChainSingleStage(t *testing.T) {
	for _, scale := range []int{2, 4, 8} {
		chain, err := ScaleChain(scale, models.CategoryPhoto)
		require.NoError(t, err)
		assert.Equal(t, []int{scale}, chain, "scale %d", scale)
	}
}

func TestScaleChainDefaultDecompositions(t *testing.T) {
	cases := map[int][]int{
		10: {2, 5},
		12: {3, 4},
		16: {4, 4},
		20: {4, 5},
		24: {4, 6},
	}
	for target, want := range cases {
		chain, err := ScaleChain(target, models.CategoryPhoto)
		require.NoError(t, err)
		assert.Equal(t, want, chain, "target %d", target)
	}
}

func TestScaleChainArtLeadsWithSpecializedPass(t *testing.T) {
	cases := map[int][]int{
		4:  {4},
		8:  {4, 2},
		12: {4, 3},
		16: {4, 4},
		20: {4, 5},
		24: {4, 6},
	}
	for _, category := range []models.Category{models.CategoryArt, models.CategoryText, models.CategoryAnime} {
		for target, want := range cases {
			chain, err := ScaleChain(target, category)
			require.NoError(t, err)
			assert.Equal(t, want, chain, "%s %d", category, target)
		}
	}

	// 10 has no specialized decomposition; art falls back to the default.
	chain, err := ScaleChain(10, models.CategoryArt)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, chain)
}

func TestScaleChainProductEqualsTarget(t *testing.T) {
	for _, category := range []models.Category{
		models.CategoryPhoto, models.CategoryArt, models.CategoryText, models.CategoryAnime,
	} {
		for _, target := range ValidScales {
			chain, err := ScaleChain(target, category)
			require.NoError(t, err)
			require.LessOrEqual(t, len(chain), 2)
			product := 1
			for _, s := range chain {
				assert.LessOrEqual(t, s, maxStageScalePhoto)
				product *= s
			}
			assert.Equal(t, target, product, "%s %d", category, target)
		}
	}
}

func TestScaleChainRejectsUnsupportedScale(t *testing.T) {
	for _, scale := range []int{0, 1, 3, 6, 28, 32} {
		_, err := ScaleChain(scale, models.CategoryPhoto)
		assert.Error(t, err, "scale %d", scale)
	}
}
