package stitcher

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/blobstore"
	"github.com/pixelrelay/upscaled/pkg/config"
	"github.com/pixelrelay/upscaled/pkg/imaging"
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/services"
	"github.com/pixelrelay/upscaled/test/util"
)

// downloadFake serves scripted output URLs; the stitcher never submits.
type downloadFake struct {
	mu      sync.Mutex
	outputs map[string][]byte
}

func (d *downloadFake) Submit(context.Context, provider.SubmitRequest) (*provider.Prediction, error) {
	return nil, fmt.Errorf("not supported")
}

func (d *downloadFake) Get(context.Context, string) (*provider.Prediction, error) {
	return nil, fmt.Errorf("not supported")
}

func (d *downloadFake) Download(_ context.Context, url string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if data, ok := d.outputs[url]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("no content at %s", url)
}

func (d *downloadFake) serve(url string, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.outputs[url] = data
}

var _ provider.Client = (*downloadFake)(nil)

type stitchHarness struct {
	stitcher *Stitcher
	jobs     *services.JobService
	tiles    *services.TileService
	blob     *blobstore.MemoryStore
	provider *downloadFake
}

func setupStitcher(t *testing.T) *stitchHarness {
	entClient, _ := util.SetupTestDatabase(t)
	jobs := services.NewJobService(entClient)
	tiles := services.NewTileService(entClient)
	blob := blobstore.NewMemoryStore()
	prov := &downloadFake{outputs: map[string][]byte{}}
	cfg := &config.Config{
		Blob: config.BlobConfig{StagingPrefix: "staging", PermanentPrefix: "outputs"},
	}
	return &stitchHarness{
		stitcher: New(cfg, jobs, tiles, prov, blob),
		jobs:     jobs,
		tiles:    tiles,
		blob:     blob,
		provider: prov,
	}
}

// createReadyJob persists a 2x1 tiled job over a 200x100 original at 2x and
// walks the given tiles through stage 1. Tiles listed in failedTiles fail
// instead and contribute no output.
func createReadyJob(t *testing.T, h *stitchHarness, failedTiles ...int) *ent.UpscaleJob {
	t.Helper()
	ctx := context.Background()

	grid := &models.TilingGrid{TilesX: 2, TilesY: 1, TileWidth: 100, TileHeight: 100, Overlap: 0, TotalTiles: 2}
	plan := &models.Plan{
		EffectiveScale: 2,
		Chain:          []models.ChainStage{{Stage: 1, Model: "nightmareai/real-esrgan", Scale: 2}},
		Template:       []models.TemplateStage{{Stage: 1, Scale: 2, ExpectedTiles: 2}},
		Grid:           grid,
		UsingTiling:    true,
	}
	job, err := h.jobs.CreateJob(ctx, services.CreateJobInput{
		UserID:         "user-1",
		InputURL:       "mem://staging/original.png",
		OriginalWidth:  200,
		OriginalHeight: 100,
		Category:       models.CategoryPhoto,
		RequestedScale: 2,
		Plan:           plan,
		TileRects: []models.Rect{
			{X: 0, Y: 0, Width: 100, Height: 100},
			{X: 100, Y: 0, Width: 100, Height: 100},
		},
		TileInputURLs: []string{"mem://staging/t0.png", "mem://staging/t1.png"},
	})
	require.NoError(t, err)

	failed := map[int]bool{}
	for _, idx := range failedTiles {
		failed[idx] = true
	}

	tiles, err := h.tiles.ListAll(ctx, job.ID)
	require.NoError(t, err)
	for _, tile := range tiles {
		require.NoError(t, h.tiles.ClaimStage(ctx, tile.ID, 1))
		if failed[tile.TileIndex] {
			require.NoError(t, h.tiles.MarkFailed(ctx, tile.ID, "inference crashed"))
			continue
		}
		predID := fmt.Sprintf("pred-%d", tile.TileIndex)
		require.NoError(t, h.tiles.RecordLaunch(ctx, tile.ID, 1, predID))
		url := fmt.Sprintf("https://cdn.test/%s.png", predID)
		h.provider.serve(url, tileOutput(t, tile.TileIndex))
		require.NoError(t, h.tiles.CompleteStage(ctx, tile.ID, 1, url))
	}
	require.NoError(t, h.jobs.Transition(ctx, job.ID, upscalejob.StatusProcessing, upscalejob.StatusTilesReady))
	return job
}

// tileOutput renders a 200x200 upscaled tile in a solid per-tile color.
func tileOutput(t *testing.T, index int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	c := color.RGBA{R: uint8(50 + index*100), G: 0, B: 0, A: 255}
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, c)
		}
	}
	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)
	return data
}

func TestStitch_AllTilesComplete(t *testing.T) {
	h := setupStitcher(t)
	ctx := context.Background()
	job := createReadyJob(t, h)

	require.NoError(t, h.stitcher.Stitch(ctx, job.ID))

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusCompleted, got.Status)
	require.NotNil(t, got.FinalOutputURL)

	data, ok := h.blob.GetByURL(*got.FinalOutputURL)
	require.True(t, ok)
	final, _, err := imaging.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 400, final.Bounds().Dx())
	assert.Equal(t, 200, final.Bounds().Dy())

	// The second tile's region carries the second tile's color.
	r, _, _, _ := final.At(300, 100).RGBA()
	assert.Equal(t, uint32(150), r>>8)
}

func TestStitch_MissingTileYieldsPartialSuccess(t *testing.T) {
	h := setupStitcher(t)
	ctx := context.Background()
	job := createReadyJob(t, h, 1)

	require.NoError(t, h.stitcher.Stitch(ctx, job.ID))

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusPartialSuccess, got.Status)
	require.NotNil(t, got.FinalOutputURL)

	data, ok := h.blob.GetByURL(*got.FinalOutputURL)
	require.True(t, ok)
	final, _, err := imaging.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 400, final.Bounds().Dx())

	// The missing tile's region stayed canvas white.
	r, g, b, _ := final.At(300, 100).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestStitch_EarlierStageOutputYieldsPartialSuccess(t *testing.T) {
	h := setupStitcher(t)
	ctx := context.Background()

	// Two-stage 4x chain over a 200x100 original. Tile 0 finishes both
	// stages; tile 1 runs out of GPU memory in stage 2 and keeps only its
	// stage 1 intermediate.
	grid := &models.TilingGrid{TilesX: 2, TilesY: 1, TileWidth: 100, TileHeight: 100, Overlap: 0, TotalTiles: 2}
	plan := &models.Plan{
		EffectiveScale: 4,
		Chain: []models.ChainStage{
			{Stage: 1, Model: "nightmareai/real-esrgan", Scale: 2},
			{Stage: 2, Model: "nightmareai/real-esrgan", Scale: 2},
		},
		Template: []models.TemplateStage{
			{Stage: 1, Scale: 2, ExpectedTiles: 2},
			{Stage: 2, Scale: 2, ExpectedTiles: 2},
		},
		Grid:        grid,
		UsingTiling: true,
	}
	job, err := h.jobs.CreateJob(ctx, services.CreateJobInput{
		UserID:         "user-1",
		InputURL:       "mem://staging/original.png",
		OriginalWidth:  200,
		OriginalHeight: 100,
		Category:       models.CategoryPhoto,
		RequestedScale: 4,
		Plan:           plan,
		TileRects: []models.Rect{
			{X: 0, Y: 0, Width: 100, Height: 100},
			{X: 100, Y: 0, Width: 100, Height: 100},
		},
		TileInputURLs: []string{"mem://staging/t0.png", "mem://staging/t1.png"},
	})
	require.NoError(t, err)

	tiles, err := h.tiles.ListAll(ctx, job.ID)
	require.NoError(t, err)
	for _, tile := range tiles {
		require.NoError(t, h.tiles.ClaimStage(ctx, tile.ID, 1))
		require.NoError(t, h.tiles.RecordLaunch(ctx, tile.ID, 1, fmt.Sprintf("pred-%d-s1", tile.TileIndex)))
		s1URL := fmt.Sprintf("https://cdn.test/t%d-s1.png", tile.TileIndex)
		h.provider.serve(s1URL, solidPNG(t, 200, 200, uint8(50+tile.TileIndex*100)))
		require.NoError(t, h.tiles.CompleteStage(ctx, tile.ID, 1, s1URL))

		require.NoError(t, h.tiles.ClaimStage(ctx, tile.ID, 2))
		require.NoError(t, h.tiles.RecordLaunch(ctx, tile.ID, 2, fmt.Sprintf("pred-%d-s2", tile.TileIndex)))
		if tile.TileIndex == 1 {
			require.NoError(t, h.tiles.MarkFailed(ctx, tile.ID, "CUDA out of memory"))
			continue
		}
		s2URL := fmt.Sprintf("https://cdn.test/t%d-s2.png", tile.TileIndex)
		h.provider.serve(s2URL, solidPNG(t, 400, 400, uint8(50+tile.TileIndex*100)))
		require.NoError(t, h.tiles.CompleteStage(ctx, tile.ID, 2, s2URL))
	}
	require.NoError(t, h.jobs.Transition(ctx, job.ID, upscalejob.StatusProcessing, upscalejob.StatusTilesReady))

	require.NoError(t, h.stitcher.Stitch(ctx, job.ID))

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusPartialSuccess, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "earlier stage")
	require.NotNil(t, got.FinalOutputURL)

	data, ok := h.blob.GetByURL(*got.FinalOutputURL)
	require.True(t, ok)
	final, _, err := imaging.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 800, final.Bounds().Dx())
	assert.Equal(t, 400, final.Bounds().Dy())

	// Tile 1's region is filled from its rescaled stage 1 output, not left
	// canvas white.
	r, _, _, _ := final.At(600, 200).RGBA()
	assert.Equal(t, uint32(150), r>>8)
}

// solidPNG renders a square solid-red-channel image.
func solidPNG(t *testing.T, width, height int, red uint8) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := color.RGBA{R: red, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)
	return data
}

func TestStitch_RequiresTilesReady(t *testing.T) {
	h := setupStitcher(t)
	ctx := context.Background()
	job := createReadyJob(t, h)

	// Drive to completed once, then a replay conflicts.
	require.NoError(t, h.stitcher.Stitch(ctx, job.ID))
	assert.ErrorIs(t, h.stitcher.Stitch(ctx, job.ID), services.ErrConflict)
}

func TestStitch_UnknownJob(t *testing.T) {
	h := setupStitcher(t)
	assert.ErrorIs(t, h.stitcher.Stitch(context.Background(), "no-such-job"), services.ErrNotFound)
}
