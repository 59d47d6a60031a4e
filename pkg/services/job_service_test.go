package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/test/util"
)

func setupJobService(t *testing.T) (*JobService, *ent.Client) {
	entClient, _ := util.SetupTestDatabase(t)
	return NewJobService(entClient), entClient
}

func tiledPlan() *models.Plan {
	grid := &models.TilingGrid{TilesX: 2, TilesY: 2, TileWidth: 298, TileHeight: 298, Overlap: 64, TotalTiles: 4}
	return &models.Plan{
		EffectiveScale: 8,
		Chain: []models.ChainStage{
			{Stage: 1, Model: "nightmareai/real-esrgan", Scale: 4},
			{Stage: 2, Model: "nightmareai/real-esrgan", Scale: 2},
		},
		Template: []models.TemplateStage{
			{Stage: 1, Scale: 4, ExpectedTiles: 4},
			{Stage: 2, Scale: 2, ExpectedTiles: 4},
		},
		Grid:        grid,
		UsingTiling: true,
	}
}

func wholeImagePlan() *models.Plan {
	return &models.Plan{
		EffectiveScale: 4,
		Chain:          []models.ChainStage{{Stage: 1, Model: "nightmareai/real-esrgan", Scale: 4}},
		Template:       []models.TemplateStage{{Stage: 1, Scale: 4, ExpectedTiles: 1}},
		UsingTiling:    false,
	}
}

func createTiledJob(t *testing.T, svc *JobService) *ent.UpscaleJob {
	t.Helper()
	plan := tiledPlan()
	rects := []models.Rect{
		{X: 0, Y: 0, Width: 362, Height: 362},
		{X: 298, Y: 0, Width: 302, Height: 362},
		{X: 0, Y: 298, Width: 362, Height: 302},
		{X: 298, Y: 298, Width: 302, Height: 302},
	}
	urls := []string{"mem://t0", "mem://t1", "mem://t2", "mem://t3"}
	job, err := svc.CreateJob(context.Background(), CreateJobInput{
		UserID:         "user-1",
		InputURL:       "mem://original",
		OriginalWidth:  600,
		OriginalHeight: 600,
		Category:       models.CategoryPhoto,
		RequestedScale: 8,
		Plan:           plan,
		TileRects:      rects,
		TileInputURLs:  urls,
	})
	require.NoError(t, err)
	return job
}

func TestCreateJob_Tiled(t *testing.T) {
	svc, _ := setupJobService(t)
	ctx := context.Background()

	job := createTiledJob(t, svc)
	assert.Equal(t, upscalejob.StatusProcessing, job.Status)
	assert.Equal(t, 8, job.TargetScale)
	assert.Equal(t, 2, job.TotalStages)
	assert.Equal(t, 1, job.CurrentStage)
	assert.True(t, job.UsingTiling)

	tiles, err := svc.GetJobTiles(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, tiles, 4)
	for i, tile := range tiles {
		assert.Equal(t, i, tile.TileIndex)
		assert.Equal(t, models.TileStatusPending, tile.Status)
		assert.Len(t, tile.Stages, 2)
		assert.Empty(t, tile.Stages[0].PredictionID)
	}
}

func TestCreateJob_Validation(t *testing.T) {
	svc, _ := setupJobService(t)
	ctx := context.Background()

	_, err := svc.CreateJob(ctx, CreateJobInput{Plan: wholeImagePlan()})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "user_id", valErr.Field)

	_, err = svc.CreateJob(ctx, CreateJobInput{UserID: "user-1"})
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "plan", valErr.Field)

	// Tiled plan with a mismatched rect count never reaches commit.
	_, err = svc.CreateJob(ctx, CreateJobInput{
		UserID:        "user-1",
		InputURL:      "mem://original",
		Plan:          tiledPlan(),
		TileRects:     []models.Rect{{Width: 10, Height: 10}},
		TileInputURLs: []string{"mem://t0"},
	})
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "tiles", valErr.Field)
}

func TestGetJob_NotFound(t *testing.T) {
	svc, _ := setupJobService(t)
	_, err := svc.GetJob(context.Background(), "no-such-job")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransition_LoserGetsConflict(t *testing.T) {
	svc, _ := setupJobService(t)
	ctx := context.Background()
	job := createTiledJob(t, svc)

	err := svc.Transition(ctx, job.ID, upscalejob.StatusProcessing, upscalejob.StatusTilesReady)
	require.NoError(t, err)

	// Second identical transition matches zero rows.
	err = svc.Transition(ctx, job.ID, upscalejob.StatusProcessing, upscalejob.StatusTilesReady)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusTilesReady, got.Status)
}

func TestMarkCompleted_FromExpectedState(t *testing.T) {
	svc, _ := setupJobService(t)
	ctx := context.Background()
	job := createTiledJob(t, svc)

	require.NoError(t, svc.Transition(ctx, job.ID, upscalejob.StatusProcessing, upscalejob.StatusTilesReady))
	require.NoError(t, svc.MarkCompleted(ctx, job.ID, "mem://final.png", upscalejob.StatusTilesReady))

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusCompleted, got.Status)
	require.NotNil(t, got.FinalOutputURL)
	assert.Equal(t, "mem://final.png", *got.FinalOutputURL)
	assert.NotNil(t, got.CompletedAt)

	// Terminal states stay terminal.
	assert.ErrorIs(t, svc.MarkCompleted(ctx, job.ID, "mem://other.png", upscalejob.StatusTilesReady), ErrConflict)
	require.NoError(t, svc.MarkFailed(ctx, job.ID, "too late"))
	got, err = svc.GetJob(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusCompleted, got.Status)
}

func TestMarkPartialSuccess(t *testing.T) {
	svc, _ := setupJobService(t)
	ctx := context.Background()
	job := createTiledJob(t, svc)

	err := svc.MarkPartialSuccess(ctx, job.ID, "mem://stage1.png", "stage 2 retries exhausted")
	require.NoError(t, err)

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, upscalejob.StatusPartialSuccess, got.Status)
	require.NotNil(t, got.FinalOutputURL)
	assert.Equal(t, "mem://stage1.png", *got.FinalOutputURL)

	assert.ErrorIs(t, svc.MarkPartialSuccess(ctx, job.ID, "mem://again.png", "dup"), ErrConflict)
}

func TestIncrementRetry(t *testing.T) {
	svc, _ := setupJobService(t)
	ctx := context.Background()
	job := createTiledJob(t, svc)

	n, err := svc.IncrementRetry(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = svc.IncrementRetry(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestFindJobByPredictionID(t *testing.T) {
	svc, _ := setupJobService(t)
	ctx := context.Background()
	job := createTiledJob(t, svc)

	_, err := svc.FindJobByPredictionID(ctx, "pred-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.SetPredictionID(ctx, job.ID, "pred-1"))
	got, err := svc.FindJobByPredictionID(ctx, "pred-1")
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
}

func TestListSilentProcessing(t *testing.T) {
	svc, _ := setupJobService(t)
	ctx := context.Background()

	silent := createTiledJob(t, svc)
	chatty := createTiledJob(t, svc)
	done := createTiledJob(t, svc)

	require.NoError(t, svc.TouchCallback(ctx, chatty.ID))
	require.NoError(t, svc.MarkFailed(ctx, done.ID, "boom"))

	// Threshold in the future: chatty's fresh timestamp is still older than it,
	// so both processing jobs qualify; with a past threshold only the silent
	// one (nil last_callback_at) does.
	jobs, err := svc.ListSilentProcessing(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, silent.ID, jobs[0].ID)

	jobs, err = svc.ListSilentProcessing(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestMarkCallbackProcessed_Idempotency(t *testing.T) {
	svc, _ := setupJobService(t)
	ctx := context.Background()

	err := svc.MarkCallbackProcessed(ctx, "pred-9", "job-9", "succeeded")
	require.NoError(t, err)

	err = svc.MarkCallbackProcessed(ctx, "pred-9", "job-9", "succeeded")
	assert.True(t, errors.Is(err, ErrAlreadyProcessed))

	seen, err := svc.CallbackProcessed(ctx, "pred-9")
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = svc.CallbackProcessed(ctx, "pred-unknown")
	require.NoError(t, err)
	assert.False(t, seen)
}
