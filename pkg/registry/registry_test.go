package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/pkg/models"
)

func TestPickPhoto(t *testing.T) {
	r := New()

	sel := r.Pick(models.CategoryPhoto, 1, 4, "")
	assert.Equal(t, ModelPhoto, sel.Model)
	assert.Equal(t, true, sel.Input["face_enhance"])

	// Face enhancement only at per-stage scale ≤ 4.
	sel = r.Pick(models.CategoryPhoto, 1, 8, "")
	assert.Equal(t, ModelPhoto, sel.Model)
	assert.Equal(t, false, sel.Input["face_enhance"])
}

func TestPickArtFirstStageOnly(t *testing.T) {
	r := New()

	sel := r.Pick(models.CategoryArt, 1, 4, "")
	assert.Equal(t, ModelArt, sel.Model)

	// Stage 2 of an art chain runs on the already-upscaled intermediate,
	// which the specialized model cannot tile.
	sel = r.Pick(models.CategoryArt, 2, 4, "")
	assert.Equal(t, ModelPhoto, sel.Model)
	assert.Equal(t, false, sel.Input["face_enhance"])

	// A non-4 first stage also falls through to the photo model.
	sel = r.Pick(models.CategoryText, 1, 2, "")
	assert.Equal(t, ModelPhoto, sel.Model)
}

func TestPickAnime(t *testing.T) {
	r := New()

	sel := r.Pick(models.CategoryAnime, 1, 4, "")
	assert.Equal(t, ModelAnime, sel.Model)

	sel = r.Pick(models.CategoryAnime, 1, 5, "")
	assert.Equal(t, ModelPhoto, sel.Model)
}

func TestPickUnknownCategoryFallsBackToPhoto(t *testing.T) {
	r := New()
	sel := r.Pick(models.Category("hologram"), 1, 2, "")
	assert.Equal(t, ModelPhoto, sel.Model)
}

func TestPickPinnedModel(t *testing.T) {
	r := New()

	// Valid pin overrides category inference.
	sel := r.Pick(models.CategoryPhoto, 1, 4, ModelAnime)
	assert.Equal(t, ModelAnime, sel.Model)

	// Pin violating the scale constraint is ignored.
	sel = r.Pick(models.CategoryPhoto, 1, 8, ModelAnime)
	assert.Equal(t, ModelPhoto, sel.Model)

	// Non-tilable pin cannot serve stage 2.
	sel = r.Pick(models.CategoryArt, 2, 4, ModelArt)
	assert.Equal(t, ModelPhoto, sel.Model)

	// Unknown pin is ignored.
	sel = r.Pick(models.CategoryPhoto, 1, 2, "acme/superres")
	assert.Equal(t, ModelPhoto, sel.Model)
}

func TestList(t *testing.T) {
	specs := New().List()
	require.Len(t, specs, 3)
	assert.Equal(t, ModelPhoto, specs[0].ID)
}
