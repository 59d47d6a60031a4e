package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/test/util"
)

func setupTileService(t *testing.T) (*TileService, *JobService, *ent.UpscaleJob) {
	entClient, _ := util.SetupTestDatabase(t)
	jobs := NewJobService(entClient)
	job := createTiledJob(t, jobs)
	return NewTileService(entClient), jobs, job
}

func TestClaimStage_SingleWinner(t *testing.T) {
	tiles, jobs, job := setupTileService(t)
	ctx := context.Background()

	all, err := jobs.GetJobTiles(ctx, job.ID)
	require.NoError(t, err)
	tileID := all[0].ID

	require.NoError(t, tiles.ClaimStage(ctx, tileID, 1))
	assert.ErrorIs(t, tiles.ClaimStage(ctx, tileID, 1), ErrConflict)

	got, err := tiles.Get(ctx, tileID)
	require.NoError(t, err)
	assert.Equal(t, models.TileStageProcessing(1), got.Status)
}

func TestClaimStage_RequiresPriorStageComplete(t *testing.T) {
	tiles, jobs, job := setupTileService(t)
	ctx := context.Background()

	all, err := jobs.GetJobTiles(ctx, job.ID)
	require.NoError(t, err)
	tileID := all[0].ID

	// Stage 2 cannot be claimed on a pending tile.
	assert.ErrorIs(t, tiles.ClaimStage(ctx, tileID, 2), ErrConflict)

	require.NoError(t, tiles.ClaimStage(ctx, tileID, 1))
	require.NoError(t, tiles.RecordLaunch(ctx, tileID, 1, "pred-s1"))
	require.NoError(t, tiles.CompleteStage(ctx, tileID, 1, "mem://s1-out"))
	require.NoError(t, tiles.ClaimStage(ctx, tileID, 2))
}

func TestRecordLaunch_AndFindByPrediction(t *testing.T) {
	tiles, jobs, job := setupTileService(t)
	ctx := context.Background()

	all, err := jobs.GetJobTiles(ctx, job.ID)
	require.NoError(t, err)
	tileID := all[2].ID

	require.NoError(t, tiles.ClaimStage(ctx, tileID, 1))
	require.NoError(t, tiles.RecordLaunch(ctx, tileID, 1, "pred-abc"))

	got, err := tiles.FindByPredictionID(ctx, "pred-abc")
	require.NoError(t, err)
	assert.Equal(t, tileID, got.ID)
	assert.Equal(t, 1, StageOfPrediction(got, "pred-abc"))
	assert.Equal(t, 0, StageOfPrediction(got, "pred-unknown"))

	_, err = tiles.FindByPredictionID(ctx, "pred-unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteStage_StoresOutputAndAdvances(t *testing.T) {
	tiles, jobs, job := setupTileService(t)
	ctx := context.Background()

	all, err := jobs.GetJobTiles(ctx, job.ID)
	require.NoError(t, err)
	tileID := all[1].ID

	require.NoError(t, tiles.ClaimStage(ctx, tileID, 1))
	require.NoError(t, tiles.RecordLaunch(ctx, tileID, 1, "pred-x"))
	require.NoError(t, tiles.CompleteStage(ctx, tileID, 1, "mem://out-x"))

	got, err := tiles.Get(ctx, tileID)
	require.NoError(t, err)
	assert.Equal(t, models.TileStageComplete(1), got.Status)
	require.Len(t, got.Stages, 2)
	assert.Equal(t, "pred-x", got.Stages[0].PredictionID)
	assert.Equal(t, "mem://out-x", got.Stages[0].OutputURL)
	assert.Empty(t, got.Stages[1].OutputURL)

	// Replayed completion matches zero rows.
	assert.ErrorIs(t, tiles.CompleteStage(ctx, tileID, 1, "mem://out-x"), ErrConflict)
}

func TestMarkFailed_AndCounts(t *testing.T) {
	tiles, jobs, job := setupTileService(t)
	ctx := context.Background()

	all, err := jobs.GetJobTiles(ctx, job.ID)
	require.NoError(t, err)

	// Tiles 0 and 1 finish stage 1, tile 2 moves on to stage 2, tile 3 fails.
	for _, idx := range []int{0, 1, 2} {
		tileID := all[idx].ID
		require.NoError(t, tiles.ClaimStage(ctx, tileID, 1))
		require.NoError(t, tiles.CompleteStage(ctx, tileID, 1, "mem://out"))
	}
	require.NoError(t, tiles.ClaimStage(ctx, all[2].ID, 2))
	require.NoError(t, tiles.MarkFailed(ctx, all[3].ID, "out of memory"))

	total, err := tiles.CountTotal(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	failed, err := tiles.CountFailed(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	// Stage-2 claim still counts as at-or-beyond stage 1.
	n, err := tiles.CountAtOrBeyond(ctx, job.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = tiles.CountAtOrBeyond(ctx, job.ID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	stuck, err := tiles.ListByStatuses(ctx, job.ID, models.TileStageComplete(1))
	require.NoError(t, err)
	assert.Len(t, stuck, 2)

	// Failed is terminal.
	require.NoError(t, tiles.MarkFailed(ctx, all[3].ID, "again"))
	got, err := tiles.Get(ctx, all[3].ID)
	require.NoError(t, err)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "out of memory", *got.ErrorMessage)
}
