package orchestrator

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/blobstore"
	"github.com/pixelrelay/upscaled/pkg/config"
	"github.com/pixelrelay/upscaled/pkg/imaging"
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/planner"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/quota"
	"github.com/pixelrelay/upscaled/pkg/registry"
	"github.com/pixelrelay/upscaled/pkg/services"
	"github.com/pixelrelay/upscaled/test/util"
)

// fakeProvider records submissions and serves scripted predictions and
// downloads. Downloads fall through to the memory blob store so staged
// inputs are fetchable by URL.
type fakeProvider struct {
	mu        sync.Mutex
	nextID    int
	submits   []provider.SubmitRequest
	preds     map[string]*provider.Prediction
	outputs   map[string][]byte
	blob      *blobstore.MemoryStore
	submitErr error
}

func newFakeProvider(blob *blobstore.MemoryStore) *fakeProvider {
	return &fakeProvider{
		preds:   map[string]*provider.Prediction{},
		outputs: map[string][]byte{},
		blob:    blob,
	}
}

func (f *fakeProvider) Submit(_ context.Context, req provider.SubmitRequest) (*provider.Prediction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.nextID++
	id := fmt.Sprintf("pred-%d", f.nextID)
	f.submits = append(f.submits, req)
	p := &provider.Prediction{ID: id, Status: provider.StatusStarting}
	f.preds[id] = p
	return &provider.Prediction{ID: id, Status: provider.StatusStarting}, nil
}

func (f *fakeProvider) Get(_ context.Context, id string) (*provider.Prediction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.preds[id]
	if !ok {
		return nil, fmt.Errorf("unknown prediction %s", id)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProvider) Download(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	if data, ok := f.outputs[url]; ok {
		f.mu.Unlock()
		return data, nil
	}
	f.mu.Unlock()
	if f.blob != nil {
		if data, ok := f.blob.GetByURL(url); ok {
			return data, nil
		}
	}
	return nil, fmt.Errorf("no content at %s", url)
}

// serve makes url downloadable.
func (f *fakeProvider) serve(url string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[url] = data
}

// setTerminal flips a recorded prediction's state, as the real provider
// would between polls.
func (f *fakeProvider) setTerminal(id string, status provider.Status, output, errMsg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.preds[id]
	p.Status = status
	p.Output = output
	p.Error = errMsg
}

func (f *fakeProvider) submitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submits)
}

func (f *fakeProvider) lastSubmit() provider.SubmitRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submits[len(f.submits)-1]
}

func (f *fakeProvider) lastPredictionID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fmt.Sprintf("pred-%d", f.nextID)
}

var _ provider.Client = (*fakeProvider)(nil)

// stitchRecorder stands in for the stitcher; the real one is covered in its
// own package.
type stitchRecorder struct {
	mu   sync.Mutex
	jobs []string
}

func (s *stitchRecorder) Stitch(_ context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, jobID)
	return nil
}

func (s *stitchRecorder) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.jobs...)
}

type testHarness struct {
	orch     *Orchestrator
	jobs     *services.JobService
	tiles    *services.TileService
	blob     *blobstore.MemoryStore
	provider *fakeProvider
	stitcher *stitchRecorder
}

func setupOrchestrator(t *testing.T) *testHarness {
	entClient, _ := util.SetupTestDatabase(t)

	cfg := &config.Config{
		HTTP: config.HTTPConfig{CallbackBaseURL: "https://api.test"},
		Blob: config.BlobConfig{StagingPrefix: "staging", PermanentPrefix: "outputs"},
		Launch: config.LaunchConfig{
			Interval:            time.Millisecond,
			MaxRateLimitRetries: 1,
		},
	}

	jobs := services.NewJobService(entClient)
	tiles := services.NewTileService(entClient)
	reg := registry.New()
	blob := blobstore.NewMemoryStore()
	prov := newFakeProvider(blob)
	rec := &stitchRecorder{}

	orch := New(cfg, jobs, tiles, planner.New(reg), reg, quota.NewOracle(), prov, blob, rec)
	return &testHarness{
		orch:     orch,
		jobs:     jobs,
		tiles:    tiles,
		blob:     blob,
		provider: prov,
		stitcher: rec,
	}
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	data, err := imaging.EncodePNG(img)
	require.NoError(t, err)
	return data
}

func TestSubmit_WholeImageLifecycle(t *testing.T) {
	h := setupOrchestrator(t)
	ctx := context.Background()

	job, err := h.orch.Submit(ctx, SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: encodePNG(t, 200, 150),
		Category:  "photo",
		Scale:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusProcessing, job.Status)
	assert.False(t, job.UsingTiling)
	assert.Equal(t, 1, job.TotalStages)
	assert.Equal(t, 4, job.TargetScale)

	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))
	require.Equal(t, 1, h.provider.submitCount())
	req := h.provider.lastSubmit()
	assert.Equal(t, registry.ModelPhoto, req.Model)
	assert.Equal(t, "https://api.test/callback", req.WebhookURL)
	assert.Equal(t, job.InputURL, req.Input["image"])

	// Original landed in staging.
	_, ok := h.blob.GetByURL(job.InputURL)
	assert.True(t, ok)

	predID := h.provider.lastPredictionID()
	h.provider.serve("https://cdn.test/out1.png", encodePNG(t, 800, 600))
	require.NoError(t, h.orch.OnCompletion(ctx, CompletionEvent{
		PredictionID: predID,
		Status:       provider.StatusSucceeded,
		Output:       "https://cdn.test/out1.png",
	}))

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusCompleted, got.Status)
	require.NotNil(t, got.FinalOutputURL)
	_, ok = h.blob.GetByURL(*got.FinalOutputURL)
	assert.True(t, ok)
}

func TestSubmit_Rejections(t *testing.T) {
	h := setupOrchestrator(t)
	ctx := context.Background()
	img := encodePNG(t, 100, 100)

	_, err := h.orch.Submit(ctx, SubmitInput{
		UserID: "user-1", Plan: quota.PlanPro, ImageData: img, Scale: 5,
	})
	var scaleErr *planner.ScaleError
	require.ErrorAs(t, err, &scaleErr)
	assert.Equal(t, planner.ValidScales, scaleErr.ValidScales)

	_, err = h.orch.Submit(ctx, SubmitInput{
		UserID: "user-1", Plan: quota.PlanFree, ImageData: img, Scale: 16,
	})
	var capErr *services.PlanCapError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 4, capErr.MaxScale)

	_, err = h.orch.Submit(ctx, SubmitInput{
		UserID: "user-1", Plan: quota.PlanPro, ImageData: []byte("not an image"), Scale: 4,
	})
	var valErr *services.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "image", valErr.Field)
}

// completeStageTiles drives every in-flight tile of a stage to success,
// returning how many events were applied.
func completeStageTiles(t *testing.T, h *testHarness, jobID string, stage int) int {
	t.Helper()
	ctx := context.Background()
	tiles, err := h.tiles.ListByStatuses(ctx, jobID, models.TileStageProcessing(stage))
	require.NoError(t, err)
	for _, tile := range tiles {
		require.NotNil(t, tile.CurrentPredictionID)
		out := fmt.Sprintf("https://cdn.test/%s-s%d.png", *tile.CurrentPredictionID, stage)
		require.NoError(t, h.orch.OnCompletion(ctx, CompletionEvent{
			PredictionID: *tile.CurrentPredictionID,
			Status:       provider.StatusSucceeded,
			Output:       out,
		}))
	}
	return len(tiles)
}

func TestSubmit_TiledLifecycle(t *testing.T) {
	h := setupOrchestrator(t)
	ctx := context.Background()

	job, err := h.orch.Submit(ctx, SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: encodePNG(t, 800, 800),
		Category:  "photo",
		Scale:     16,
	})
	require.NoError(t, err)
	require.True(t, job.UsingTiling)
	require.NotNil(t, job.Grid)
	assert.Equal(t, 2, job.TotalStages)
	totalTiles := job.Grid.TotalTiles
	require.Greater(t, totalTiles, 1)

	tiles, err := h.tiles.ListAll(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, tiles, totalTiles)
	for _, tile := range tiles {
		_, ok := h.blob.GetByURL(tile.InputURL)
		assert.True(t, ok, "tile crop staged")
	}

	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))
	assert.Equal(t, totalTiles, h.provider.submitCount())

	// Stage 1 completions advance the barrier and fan stage 2 out.
	n := completeStageTiles(t, h, job.ID, 1)
	assert.Equal(t, totalTiles, n)
	assert.Equal(t, 2*totalTiles, h.provider.submitCount())

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStage)
	assert.Equal(t, upscalejob.StatusProcessing, got.Status)

	// Stage 2 completions hand the job to the stitcher.
	completeStageTiles(t, h, job.ID, 2)
	got, err = h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusTilesReady, got.Status)
	assert.Equal(t, []string{job.ID}, h.stitcher.calls())
}

func TestTiled_MajorityFailureFailsJob(t *testing.T) {
	h := setupOrchestrator(t)
	ctx := context.Background()

	job, err := h.orch.Submit(ctx, SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: encodePNG(t, 800, 800),
		Category:  "photo",
		Scale:     8,
	})
	require.NoError(t, err)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))

	tiles, err := h.tiles.ListByStatuses(ctx, job.ID, models.TileStageProcessing(1))
	require.NoError(t, err)
	failures := len(tiles)/2 + 1
	for _, tile := range tiles[:failures] {
		require.NoError(t, h.orch.OnCompletion(ctx, CompletionEvent{
			PredictionID: *tile.CurrentPredictionID,
			Status:       provider.StatusFailed,
			Error:        "inference crashed",
		}))
	}

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusFailed, got.Status)
}

func TestOnCompletion_DuplicateEventIsNoOp(t *testing.T) {
	h := setupOrchestrator(t)
	ctx := context.Background()

	job, err := h.orch.Submit(ctx, SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: encodePNG(t, 800, 800),
		Category:  "photo",
		Scale:     8,
	})
	require.NoError(t, err)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))
	launched := h.provider.submitCount()

	tiles, err := h.tiles.ListByStatuses(ctx, job.ID, models.TileStageProcessing(1))
	require.NoError(t, err)
	ev := CompletionEvent{
		PredictionID: *tiles[0].CurrentPredictionID,
		Status:       provider.StatusSucceeded,
		Output:       "https://cdn.test/dup.png",
	}
	require.NoError(t, h.orch.OnCompletion(ctx, ev))
	require.NoError(t, h.orch.OnCompletion(ctx, ev))

	// The replay applied nothing: same submission count, tile completed once.
	assert.Equal(t, launched, h.provider.submitCount())
	tile, err := h.tiles.Get(ctx, tiles[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.TileStageComplete(1), tile.Status)
}

func TestOnCompletion_NonTerminalIgnored(t *testing.T) {
	h := setupOrchestrator(t)
	require.NoError(t, h.orch.OnCompletion(context.Background(), CompletionEvent{
		PredictionID: "pred-77",
		Status:       provider.StatusProcessing,
	}))
}

func TestOnCompletion_UnknownPredictionRedeliverable(t *testing.T) {
	h := setupOrchestrator(t)
	ctx := context.Background()

	job, err := h.orch.Submit(ctx, SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: encodePNG(t, 200, 150),
		Category:  "photo",
		Scale:     4,
	})
	require.NoError(t, err)

	// Webhook arrives before the launch recorded its prediction id. The
	// event must not be marked processed, or the redelivery would be
	// swallowed as a duplicate.
	ev := CompletionEvent{
		PredictionID: "pred-1",
		Status:       provider.StatusSucceeded,
		Output:       "https://cdn.test/early.png",
	}
	require.NoError(t, h.orch.OnCompletion(ctx, ev))
	seen, err := h.jobs.CallbackProcessed(ctx, "pred-1")
	require.NoError(t, err)
	assert.False(t, seen)

	// Launch records pred-1 as the job's prediction; the redelivered event
	// now finds its owner and finishes the job.
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))
	h.provider.serve("https://cdn.test/early.png", encodePNG(t, 800, 600))
	require.NoError(t, h.orch.OnCompletion(ctx, ev))

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusCompleted, got.Status)
}

func TestWholeImage_OOMWithoutPriorStageFails(t *testing.T) {
	h := setupOrchestrator(t)
	ctx := context.Background()

	job, err := h.orch.Submit(ctx, SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: encodePNG(t, 300, 300),
		Category:  "photo",
		Scale:     4,
	})
	require.NoError(t, err)
	require.False(t, job.UsingTiling)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))
	launched := h.provider.submitCount()

	// Memory exhaustion repeats on retry, so the stage is not relaunched;
	// with no earlier stage output to keep, the job fails outright.
	require.NoError(t, h.orch.OnCompletion(ctx, CompletionEvent{
		PredictionID: h.provider.lastPredictionID(),
		Status:       provider.StatusFailed,
		Error:        "CUDA out of memory",
	}))
	assert.Equal(t, launched, h.provider.submitCount())

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "memory")
}

func TestResume_ConvertsNeedsSplitToTiled(t *testing.T) {
	h := setupOrchestrator(t)
	ctx := context.Background()

	job, err := h.orch.Submit(ctx, SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: encodePNG(t, 300, 300),
		Category:  "photo",
		Scale:     4,
	})
	require.NoError(t, err)
	require.False(t, job.UsingTiling)
	require.NoError(t, h.jobs.Transition(ctx, job.ID, upscalejob.StatusProcessing, upscalejob.StatusNeedsSplit))

	// Resume re-crops the original and converts the job to tiled processing.
	resumed, err := h.orch.Resume(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusProcessing, resumed.Status)
	assert.True(t, resumed.UsingTiling)
	require.NotNil(t, resumed.Grid)
	assert.Equal(t, 1, resumed.CurrentStage)

	tiles, err := h.tiles.ListAll(ctx, job.ID)
	require.NoError(t, err)
	assert.Len(t, tiles, resumed.Grid.TotalTiles)

	// Resuming anything but needs_split conflicts.
	_, err = h.orch.Resume(ctx, job.ID)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestWholeImage_TransientRetriesThenExhaustion(t *testing.T) {
	h := setupOrchestrator(t)
	ctx := context.Background()

	job, err := h.orch.Submit(ctx, SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: encodePNG(t, 160, 120),
		Category:  "photo",
		Scale:     4,
	})
	require.NoError(t, err)
	require.False(t, job.UsingTiling)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))

	// Three transient failures relaunch the stage each time.
	for attempt := 1; attempt <= 3; attempt++ {
		require.NoError(t, h.orch.OnCompletion(ctx, CompletionEvent{
			PredictionID: h.provider.lastPredictionID(),
			Status:       provider.StatusFailed,
			Error:        "worker preempted",
		}))
		assert.Equal(t, 1+attempt, h.provider.submitCount())

		got, err := h.jobs.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, upscalejob.StatusProcessing, got.Status)
	}

	// The fourth exhausts the budget; with no earlier stage output the job
	// fails.
	require.NoError(t, h.orch.OnCompletion(ctx, CompletionEvent{
		PredictionID: h.provider.lastPredictionID(),
		Status:       provider.StatusFailed,
		Error:        "worker preempted",
	}))
	assert.Equal(t, 4, h.provider.submitCount())

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusFailed, got.Status)
}

func TestTiled_StageTwoOOMSettlesForEarlierOutputs(t *testing.T) {
	h := setupOrchestrator(t)
	ctx := context.Background()

	job, err := h.orch.Submit(ctx, SubmitInput{
		UserID:    "user-1",
		Plan:      quota.PlanPro,
		ImageData: encodePNG(t, 800, 800),
		Category:  "photo",
		Scale:     16,
	})
	require.NoError(t, err)
	require.Equal(t, 2, job.TotalStages)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))

	n := completeStageTiles(t, h, job.ID, 1)
	require.Greater(t, n, 2)

	// Stage 2: a majority of tiles exhaust GPU memory, the rest finish.
	// Memory failures repeat on retry, so instead of failing the job the
	// stage drains and settles for the stage 1 intermediates.
	tiles, err := h.tiles.ListByStatuses(ctx, job.ID, models.TileStageProcessing(2))
	require.NoError(t, err)
	require.Len(t, tiles, n)
	failures := n/2 + 1
	for _, tile := range tiles[:failures] {
		require.NoError(t, h.orch.OnCompletion(ctx, CompletionEvent{
			PredictionID: *tile.CurrentPredictionID,
			Status:       provider.StatusFailed,
			Error:        "CUDA out of memory. Tried to allocate 2.1 GiB",
		}))
	}
	for _, tile := range tiles[failures:] {
		require.NoError(t, h.orch.OnCompletion(ctx, CompletionEvent{
			PredictionID: *tile.CurrentPredictionID,
			Status:       provider.StatusSucceeded,
			Output:       fmt.Sprintf("https://cdn.test/%s-s2.png", *tile.CurrentPredictionID),
		}))
	}

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusTilesReady, got.Status)
	assert.Equal(t, []string{job.ID}, h.stitcher.calls())
}
