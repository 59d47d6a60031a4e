package reconciler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/blobstore"
	"github.com/pixelrelay/upscaled/pkg/config"
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/orchestrator"
	"github.com/pixelrelay/upscaled/pkg/planner"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/quota"
	"github.com/pixelrelay/upscaled/pkg/registry"
	"github.com/pixelrelay/upscaled/pkg/services"
	"github.com/pixelrelay/upscaled/test/util"
)

type scriptedProvider struct {
	mu      sync.Mutex
	nextID  int
	submits []provider.SubmitRequest
	preds   map[string]*provider.Prediction
	outputs map[string][]byte
}

func newScriptedProvider() *scriptedProvider {
	return &scriptedProvider{
		preds:   map[string]*provider.Prediction{},
		outputs: map[string][]byte{},
	}
}

func (f *scriptedProvider) Submit(_ context.Context, req provider.SubmitRequest) (*provider.Prediction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := fmt.Sprintf("pred-%d", f.nextID)
	f.submits = append(f.submits, req)
	f.preds[id] = &provider.Prediction{ID: id, Status: provider.StatusProcessing}
	return &provider.Prediction{ID: id, Status: provider.StatusStarting}, nil
}

func (f *scriptedProvider) Get(_ context.Context, id string) (*provider.Prediction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.preds[id]
	if !ok {
		return nil, fmt.Errorf("unknown prediction %s", id)
	}
	cp := *p
	return &cp, nil
}

func (f *scriptedProvider) Download(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if data, ok := f.outputs[url]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("no content at %s", url)
}

func (f *scriptedProvider) setTerminal(id string, status provider.Status, output, errMsg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.preds[id].Status = status
	f.preds[id].Output = output
	f.preds[id].Error = errMsg
}

// setCreated backdates a prediction's provider-side submission time.
func (f *scriptedProvider) setCreated(id string, createdAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.preds[id].CreatedAt = createdAt
}

func (f *scriptedProvider) serve(url string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[url] = data
}

func (f *scriptedProvider) submitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submits)
}

var _ provider.Client = (*scriptedProvider)(nil)

type noopStitcher struct {
	mu   sync.Mutex
	jobs []string
}

func (s *noopStitcher) Stitch(_ context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, jobID)
	return nil
}

type reconcilerHarness struct {
	service  *Service
	orch     *orchestrator.Orchestrator
	jobs     *services.JobService
	tiles    *services.TileService
	blob     *blobstore.MemoryStore
	provider *scriptedProvider
	stitcher *noopStitcher
}

func setupReconciler(t *testing.T) *reconcilerHarness {
	entClient, _ := util.SetupTestDatabase(t)

	cfg := &config.Config{
		HTTP: config.HTTPConfig{CallbackBaseURL: "https://api.test"},
		Blob: config.BlobConfig{StagingPrefix: "staging", PermanentPrefix: "outputs"},
		Launch: config.LaunchConfig{
			Interval:            time.Millisecond,
			MaxRateLimitRetries: 1,
		},
		Reconciler: config.ReconcilerConfig{
			Interval:     time.Minute,
			SilentAfter:  0,
			StageTimeout: 4 * time.Minute,
		},
	}

	jobs := services.NewJobService(entClient)
	tiles := services.NewTileService(entClient)
	reg := registry.New()
	blob := blobstore.NewMemoryStore()
	prov := newScriptedProvider()
	st := &noopStitcher{}

	orch := orchestrator.New(cfg, jobs, tiles, planner.New(reg), reg, quota.NewOracle(), prov, blob, st)
	svc := NewService(&cfg.Reconciler, jobs, tiles, orch, prov)
	return &reconcilerHarness{
		service:  svc,
		orch:     orch,
		jobs:     jobs,
		tiles:    tiles,
		blob:     blob,
		provider: prov,
		stitcher: st,
	}
}

func wholeImageJob(t *testing.T, h *reconcilerHarness) *ent.UpscaleJob {
	t.Helper()
	job, err := h.jobs.CreateJob(context.Background(), services.CreateJobInput{
		UserID:         "user-1",
		InputURL:       "mem://staging/original.png",
		OriginalWidth:  200,
		OriginalHeight: 150,
		Category:       models.CategoryPhoto,
		RequestedScale: 4,
		Plan: &models.Plan{
			EffectiveScale: 4,
			Chain:          []models.ChainStage{{Stage: 1, Model: registry.ModelPhoto, Scale: 4}},
			Template:       []models.TemplateStage{{Stage: 1, Scale: 4, ExpectedTiles: 1}},
		},
	})
	require.NoError(t, err)
	return job
}

func tiledJob(t *testing.T, h *reconcilerHarness) *ent.UpscaleJob {
	t.Helper()
	grid := &models.TilingGrid{TilesX: 2, TilesY: 1, TileWidth: 100, TileHeight: 100, Overlap: 0, TotalTiles: 2}
	job, err := h.jobs.CreateJob(context.Background(), services.CreateJobInput{
		UserID:         "user-1",
		InputURL:       "mem://staging/original.png",
		OriginalWidth:  200,
		OriginalHeight: 100,
		Category:       models.CategoryPhoto,
		RequestedScale: 2,
		Plan: &models.Plan{
			EffectiveScale: 2,
			Chain:          []models.ChainStage{{Stage: 1, Model: registry.ModelPhoto, Scale: 2}},
			Template:       []models.TemplateStage{{Stage: 1, Scale: 2, ExpectedTiles: 2}},
			Grid:           grid,
			UsingTiling:    true,
		},
		TileRects: []models.Rect{
			{X: 0, Y: 0, Width: 100, Height: 100},
			{X: 100, Y: 0, Width: 100, Height: 100},
		},
		TileInputURLs: []string{"mem://staging/t0.png", "mem://staging/t1.png"},
	})
	require.NoError(t, err)
	return job
}

func TestRunOnce_RelaunchesUnlaunchedWholeImage(t *testing.T) {
	h := setupReconciler(t)
	ctx := context.Background()
	job := wholeImageJob(t, h)

	results := h.service.RunOnce(ctx)
	require.Len(t, results, 1)
	assert.Equal(t, job.ID, results[0].JobID)
	assert.Equal(t, "checked", results[0].Outcome)

	assert.Equal(t, 1, h.provider.submitCount())
	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PredictionID)
}

func TestRunOnce_AppliesMissedWholeImageCompletion(t *testing.T) {
	h := setupReconciler(t)
	ctx := context.Background()
	job := wholeImageJob(t, h)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))

	// The provider finished but the webhook never arrived.
	h.provider.setTerminal("pred-1", provider.StatusSucceeded, "https://cdn.test/final.png", "")
	h.provider.serve("https://cdn.test/final.png", []byte("png-bytes"))

	results := h.service.RunOnce(ctx)
	require.Len(t, results, 1)
	assert.Equal(t, "checked", results[0].Outcome)

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusCompleted, got.Status)
	require.NotNil(t, got.FinalOutputURL)
	_, ok := h.blob.GetByURL(*got.FinalOutputURL)
	assert.True(t, ok)
}

func TestRunOnce_RecoversRecordedButUnfinalizedJob(t *testing.T) {
	h := setupReconciler(t)
	ctx := context.Background()
	job := wholeImageJob(t, h)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))

	// The callback was recorded, then the process died before the final copy.
	h.provider.setTerminal("pred-1", provider.StatusSucceeded, "https://cdn.test/final.png", "")
	h.provider.serve("https://cdn.test/final.png", []byte("png-bytes"))
	require.NoError(t, h.jobs.MarkCallbackProcessed(ctx, "pred-1", job.ID, "succeeded"))

	h.service.RunOnce(ctx)

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusCompleted, got.Status)
}

func TestRunOnce_StillRunningOnlyTouchesWatchdog(t *testing.T) {
	h := setupReconciler(t)
	ctx := context.Background()
	job := wholeImageJob(t, h)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))

	h.service.RunOnce(ctx)

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusProcessing, got.Status)
	assert.NotNil(t, got.LastCallbackAt)
	assert.Equal(t, 1, h.provider.submitCount())
}

func TestRunOnce_AppliesMissedTileCompletions(t *testing.T) {
	h := setupReconciler(t)
	ctx := context.Background()
	job := tiledJob(t, h)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))
	require.Equal(t, 2, h.provider.submitCount())

	h.provider.setTerminal("pred-1", provider.StatusSucceeded, "https://cdn.test/t0.png", "")
	h.provider.setTerminal("pred-2", provider.StatusSucceeded, "https://cdn.test/t1.png", "")

	h.service.RunOnce(ctx)

	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusTilesReady, got.Status)
	assert.Equal(t, []string{job.ID}, h.stitcher.jobs)
}

func TestRunOnce_ReopensClaimedUnlaunchedTile(t *testing.T) {
	h := setupReconciler(t)
	ctx := context.Background()
	job := tiledJob(t, h)

	// One tile was claimed right before a crash; no prediction exists for it.
	tiles, err := h.tiles.ListAll(ctx, job.ID)
	require.NoError(t, err)
	require.NoError(t, h.tiles.ClaimStage(ctx, tiles[0].ID, 1))

	h.service.RunOnce(ctx)

	// Both tiles ended up launched: the claimed one was reopened and refanned
	// together with the pending one.
	assert.Equal(t, 2, h.provider.submitCount())
	inflight, err := h.tiles.ListByStatuses(ctx, job.ID, models.TileStageProcessing(1))
	require.NoError(t, err)
	assert.Len(t, inflight, 2)
	for _, tile := range inflight {
		assert.NotNil(t, tile.CurrentPredictionID)
	}
}

func TestRunOnce_TimesOutStalledWholeImageStage(t *testing.T) {
	h := setupReconciler(t)
	ctx := context.Background()
	job := wholeImageJob(t, h)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))

	// The prediction has been sitting non-terminal past the stage bound.
	// The reconciler abandons it; the failure is transient, so the stage
	// is relaunched under a fresh prediction.
	h.provider.setCreated("pred-1", time.Now().Add(-10*time.Minute))

	h.service.RunOnce(ctx)

	assert.Equal(t, 2, h.provider.submitCount())
	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusProcessing, got.Status)
	require.NotNil(t, got.PredictionID)
	assert.Equal(t, "pred-2", *got.PredictionID)
}

func TestRunOnce_FreshPredictionIsNotTimedOut(t *testing.T) {
	h := setupReconciler(t)
	ctx := context.Background()
	job := wholeImageJob(t, h)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))

	h.provider.setCreated("pred-1", time.Now().Add(-time.Minute))

	h.service.RunOnce(ctx)

	assert.Equal(t, 1, h.provider.submitCount())
	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PredictionID)
	assert.Equal(t, "pred-1", *got.PredictionID)
}

func TestRunOnce_TimesOutStalledTileStage(t *testing.T) {
	h := setupReconciler(t)
	ctx := context.Background()
	job := tiledJob(t, h)
	require.NoError(t, h.orch.LaunchJob(ctx, job.ID))
	require.Equal(t, 2, h.provider.submitCount())

	h.provider.setCreated("pred-1", time.Now().Add(-10*time.Minute))
	h.provider.setCreated("pred-2", time.Now().Add(-10*time.Minute))

	h.service.RunOnce(ctx)

	// Both tiles abandoned; with every tile failed the stage drains and the
	// job fails.
	got, err := h.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusFailed, got.Status)
	failed, err := h.tiles.ListByStatuses(ctx, job.ID, models.TileStatusFailed)
	require.NoError(t, err)
	assert.Len(t, failed, 2)
}

func TestStartStop(t *testing.T) {
	h := setupReconciler(t)
	ctx := context.Background()

	h.service.Start(ctx)
	h.service.Stop()
}
