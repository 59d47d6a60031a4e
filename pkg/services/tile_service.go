package services

import (
	"context"
	"fmt"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/ent/tile"
	"github.com/pixelrelay/upscaled/pkg/models"
)

// TileService manages Tile rows. Stage progression is claim-based: a
// conditional status update claims the tile for a stage before any provider
// call, so two racing handlers can never double-launch the same tile.
type TileService struct {
	client *ent.Client
}

// NewTileService creates a TileService.
func NewTileService(client *ent.Client) *TileService {
	return &TileService{client: client}
}

// Get fetches a tile by row id.
func (s *TileService) Get(ctx context.Context, tileID int) (*ent.Tile, error) {
	t, err := s.client.Tile.Get(ctx, tileID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tile %d: %w", tileID, err)
	}
	return t, nil
}

// FindByPredictionID locates the tile whose in-flight stage owns the
// prediction.
func (s *TileService) FindByPredictionID(ctx context.Context, predictionID string) (*ent.Tile, error) {
	t, err := s.client.Tile.Query().
		Where(tile.CurrentPredictionIDEQ(predictionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tile by prediction %s: %w", predictionID, err)
	}
	return t, nil
}

// StageOfPrediction scans a tile's slots for the stage a prediction belongs
// to. Returns 0 when the prediction is not recorded on the tile.
func StageOfPrediction(t *ent.Tile, predictionID string) int {
	for i, slot := range t.Stages {
		if slot.PredictionID == predictionID {
			return i + 1
		}
	}
	return 0
}

// ClaimStage conditionally moves a tile into stage{k}_processing. The
// expected prior state is pending for stage 1, stage{k-1}_complete
// otherwise. ErrConflict means another handler claimed it first.
func (s *TileService) ClaimStage(ctx context.Context, tileID, stage int) error {
	expected := models.TileStatusPending
	if stage > 1 {
		expected = models.TileStageComplete(stage - 1)
	}
	n, err := s.client.Tile.Update().
		Where(tile.IDEQ(tileID), tile.StatusEQ(expected)).
		SetStatus(models.TileStageProcessing(stage)).
		ClearCurrentPredictionID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to claim stage %d on tile %d: %w", stage, tileID, err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

// RecordLaunch writes a launched prediction into the tile's stage slot.
// Only valid on a tile previously claimed for the stage.
func (s *TileService) RecordLaunch(ctx context.Context, tileID, stage int, predictionID string) error {
	t, err := s.Get(ctx, tileID)
	if err != nil {
		return err
	}
	stages := ensureSlots(t.Stages, stage)
	stages[stage-1].PredictionID = predictionID

	err = s.client.Tile.UpdateOneID(tileID).
		SetStages(stages).
		SetCurrentPredictionID(predictionID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record launch on tile %d: %w", tileID, err)
	}
	return nil
}

// CompleteStage conditionally moves a claimed tile to stage{k}_complete and
// stores the stage output URL. ErrConflict means the tile was not in
// stage{k}_processing: the completion was already applied or the tile
// failed meanwhile.
func (s *TileService) CompleteStage(ctx context.Context, tileID, stage int, outputURL string) error {
	t, err := s.Get(ctx, tileID)
	if err != nil {
		return err
	}
	stages := ensureSlots(t.Stages, stage)
	stages[stage-1].OutputURL = outputURL

	n, err := s.client.Tile.Update().
		Where(tile.IDEQ(tileID), tile.StatusEQ(models.TileStageProcessing(stage))).
		SetStages(stages).
		SetStatus(models.TileStageComplete(stage)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete stage %d on tile %d: %w", stage, tileID, err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

// Reopen rolls a tile claimed for stage k but never launched back to its
// pre-claim status, so a stage launcher can claim it again. Guarded on the
// prediction id still being unset.
func (s *TileService) Reopen(ctx context.Context, tileID, stage int) error {
	previous := models.TileStatusPending
	if stage > 1 {
		previous = models.TileStageComplete(stage - 1)
	}
	n, err := s.client.Tile.Update().
		Where(
			tile.IDEQ(tileID),
			tile.StatusEQ(models.TileStageProcessing(stage)),
			tile.CurrentPredictionIDIsNil(),
		).
		SetStatus(previous).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reopen tile %d: %w", tileID, err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

// MarkFailed moves a tile to failed unless it already is.
func (s *TileService) MarkFailed(ctx context.Context, tileID int, message string) error {
	_, err := s.client.Tile.Update().
		Where(tile.IDEQ(tileID), tile.StatusNEQ(models.TileStatusFailed)).
		SetStatus(models.TileStatusFailed).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark tile %d failed: %w", tileID, err)
	}
	return nil
}

// CountTotal returns the number of tiles in a job.
func (s *TileService) CountTotal(ctx context.Context, jobID string) (int, error) {
	n, err := s.client.Tile.Query().Where(tile.JobIDEQ(jobID)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count tiles for job %s: %w", jobID, err)
	}
	return n, nil
}

// CountFailed returns the number of failed tiles in a job.
func (s *TileService) CountFailed(ctx context.Context, jobID string) (int, error) {
	n, err := s.client.Tile.Query().
		Where(tile.JobIDEQ(jobID), tile.StatusEQ(models.TileStatusFailed)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count failed tiles for job %s: %w", jobID, err)
	}
	return n, nil
}

// CountAtOrBeyond returns the number of tiles that completed stage k,
// counting tiles already working on (or past) later stages.
func (s *TileService) CountAtOrBeyond(ctx context.Context, jobID string, stage, totalStages int) (int, error) {
	n, err := s.client.Tile.Query().
		Where(tile.JobIDEQ(jobID), tile.StatusIn(models.TileStatusesAtOrBeyond(stage, totalStages)...)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count tiles at stage %d for job %s: %w", stage, jobID, err)
	}
	return n, nil
}

// ListByStatuses returns a job's tiles in the given statuses, row-major.
func (s *TileService) ListByStatuses(ctx context.Context, jobID string, statuses ...string) ([]*ent.Tile, error) {
	tiles, err := s.client.Tile.Query().
		Where(tile.JobIDEQ(jobID), tile.StatusIn(statuses...)).
		Order(ent.Asc(tile.FieldTileIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tiles for job %s: %w", jobID, err)
	}
	return tiles, nil
}

// ListAll returns every tile of a job in row-major order.
func (s *TileService) ListAll(ctx context.Context, jobID string) ([]*ent.Tile, error) {
	tiles, err := s.client.Tile.Query().
		Where(tile.JobIDEQ(jobID)).
		Order(ent.Asc(tile.FieldTileIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tiles for job %s: %w", jobID, err)
	}
	return tiles, nil
}

// ensureSlots grows a slot list so index stage-1 exists.
func ensureSlots(stages []models.StageSlot, stage int) []models.StageSlot {
	out := make([]models.StageSlot, len(stages))
	copy(out, stages)
	for len(out) < stage {
		out = append(out, models.StageSlot{})
	}
	return out
}
