package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/ent/processedcallback"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/models"
)

// JobService manages UpscaleJob rows. All status changes that race between
// handlers go through conditional updates; the loser observes ErrConflict
// and exits.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a JobService.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJobInput is everything needed to persist a new job with its tiles.
type CreateJobInput struct {
	// JobID lets the caller pre-generate the id so blob keys can reference
	// it before the row exists. Generated when empty.
	JobID          string
	UserID         string
	InputURL       string
	OriginalWidth  int
	OriginalHeight int
	Category       models.Category
	RequestedScale int
	Plan           *models.Plan
	// TileInputs maps tile index to (crop rect, staged input URL). Empty for
	// non-tiled jobs.
	TileRects     []models.Rect
	TileInputURLs []string
}

// CreateJob persists a job and, for tiled plans, its tile rows in one
// transaction. Tiles start pending with empty stage slots.
func (s *JobService) CreateJob(httpCtx context.Context, in CreateJobInput) (*ent.UpscaleJob, error) {
	if in.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if in.Plan == nil {
		return nil, NewValidationError("plan", "required")
	}

	// Critical write: decouple from the request context.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	jobID := in.JobID
	if jobID == "" {
		jobID = uuid.New().String()
	}
	builder := tx.UpscaleJob.Create().
		SetID(jobID).
		SetUserID(in.UserID).
		SetInputURL(in.InputURL).
		SetOriginalWidth(in.OriginalWidth).
		SetOriginalHeight(in.OriginalHeight).
		SetCategory(upscalejob.Category(in.Category)).
		SetRequestedScale(in.RequestedScale).
		SetTargetScale(in.Plan.EffectiveScale).
		SetChain(in.Plan.Chain).
		SetTemplate(in.Plan.Template).
		SetUsingTiling(in.Plan.UsingTiling).
		SetTotalStages(in.Plan.TotalStages()).
		SetStatus(upscalejob.StatusProcessing)
	if in.Plan.Grid != nil {
		builder.SetGrid(in.Plan.Grid)
	}

	job, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if in.Plan.UsingTiling {
		if len(in.TileRects) != in.Plan.Grid.TotalTiles || len(in.TileInputURLs) != len(in.TileRects) {
			return nil, NewValidationError("tiles", "rects and input URLs must match the grid")
		}
		builders := make([]*ent.TileCreate, len(in.TileRects))
		for i, r := range in.TileRects {
			builders[i] = tx.Tile.Create().
				SetJobID(jobID).
				SetTileIndex(i).
				SetX(r.X).
				SetY(r.Y).
				SetWidth(r.Width).
				SetHeight(r.Height).
				SetInputURL(in.TileInputURLs[i]).
				SetStages(make([]models.StageSlot, in.Plan.TotalStages())).
				SetStatus(models.TileStatusPending)
		}
		if _, err := tx.Tile.CreateBulk(builders...).Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create tiles: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit job: %w", err)
	}
	return job, nil
}

// GetJob fetches a job by id.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.UpscaleJob, error) {
	job, err := s.client.UpscaleJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}
	return job, nil
}

// GetJobTiles returns a job's tiles in row-major order.
func (s *JobService) GetJobTiles(ctx context.Context, jobID string) ([]*ent.Tile, error) {
	tiles, err := s.client.UpscaleJob.Query().
		Where(upscalejob.IDEQ(jobID)).
		QueryTiles().
		Order(ent.Asc("tile_index")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tiles for job %s: %w", jobID, err)
	}
	return tiles, nil
}

// FindJobByPredictionID locates a non-tiled job by its current prediction.
func (s *JobService) FindJobByPredictionID(ctx context.Context, predictionID string) (*ent.UpscaleJob, error) {
	job, err := s.client.UpscaleJob.Query().
		Where(upscalejob.PredictionIDEQ(predictionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job by prediction %s: %w", predictionID, err)
	}
	return job, nil
}

// Transition performs a conditional status update. Zero matched rows means
// another handler already moved the job; the caller gets ErrConflict.
func (s *JobService) Transition(ctx context.Context, jobID string, from, to upscalejob.Status) error {
	n, err := s.client.UpscaleJob.Update().
		Where(upscalejob.IDEQ(jobID), upscalejob.StatusEQ(from)).
		SetStatus(to).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition job %s from %s to %s: %w", jobID, from, to, err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

// TouchCallback refreshes the silent-job watchdog timestamp.
func (s *JobService) TouchCallback(ctx context.Context, jobID string) error {
	err := s.client.UpscaleJob.UpdateOneID(jobID).
		SetLastCallbackAt(time.Now()).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to touch job %s: %w", jobID, err)
	}
	return nil
}

// SetStageCursor advances the job's 1-indexed stage cursor and records the
// latest intermediate output.
func (s *JobService) SetStageCursor(ctx context.Context, jobID string, stage int, currentOutputURL string) error {
	upd := s.client.UpscaleJob.UpdateOneID(jobID).SetCurrentStage(stage)
	if currentOutputURL != "" {
		upd.SetCurrentOutputURL(currentOutputURL)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set stage cursor on job %s: %w", jobID, err)
	}
	return nil
}

// SetPredictionID records the in-flight prediction of a non-tiled job.
func (s *JobService) SetPredictionID(ctx context.Context, jobID, predictionID string) error {
	if err := s.client.UpscaleJob.UpdateOneID(jobID).SetPredictionID(predictionID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to set prediction on job %s: %w", jobID, err)
	}
	return nil
}

// MarkFailed moves a job to failed with an error message. Terminal states
// are never overwritten.
func (s *JobService) MarkFailed(ctx context.Context, jobID, message string) error {
	_, err := s.client.UpscaleJob.Update().
		Where(upscalejob.IDEQ(jobID), upscalejob.StatusIn(
			upscalejob.StatusProcessing, upscalejob.StatusTilesReady, upscalejob.StatusNeedsSplit,
		)).
		SetStatus(upscalejob.StatusFailed).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job %s failed: %w", jobID, err)
	}
	return nil
}

// MarkPartialSuccess ends a job with a usable but incomplete output: an
// earlier-stage intermediate, or a stitch with some tiles missing.
func (s *JobService) MarkPartialSuccess(ctx context.Context, jobID, finalURL, message string) error {
	n, err := s.client.UpscaleJob.Update().
		Where(upscalejob.IDEQ(jobID), upscalejob.StatusIn(
			upscalejob.StatusProcessing, upscalejob.StatusTilesReady,
		)).
		SetStatus(upscalejob.StatusPartialSuccess).
		SetFinalOutputURL(finalURL).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job %s partial-success: %w", jobID, err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

// MarkCompleted ends a job with its permanent output URL. from is the state
// the caller believes the job is in (processing for non-tiled jobs,
// tiles_ready after stitching).
func (s *JobService) MarkCompleted(ctx context.Context, jobID, finalURL string, from upscalejob.Status) error {
	n, err := s.client.UpscaleJob.Update().
		Where(upscalejob.IDEQ(jobID), upscalejob.StatusEQ(from)).
		SetStatus(upscalejob.StatusCompleted).
		SetFinalOutputURL(finalURL).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete job %s: %w", jobID, err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

// IncrementRetry bumps the retry counter and returns the new count.
func (s *JobService) IncrementRetry(ctx context.Context, jobID string) (int, error) {
	job, err := s.client.UpscaleJob.UpdateOneID(jobID).
		AddRetryCount(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to increment retry on job %s: %w", jobID, err)
	}
	return job.RetryCount, nil
}

// ListSilentProcessing returns processing jobs whose last callback is absent
// or older than the threshold, i.e. candidates for reconciliation.
func (s *JobService) ListSilentProcessing(ctx context.Context, olderThan time.Time) ([]*ent.UpscaleJob, error) {
	jobs, err := s.client.UpscaleJob.Query().
		Where(
			upscalejob.StatusEQ(upscalejob.StatusProcessing),
			upscalejob.Or(
				upscalejob.LastCallbackAtIsNil(),
				upscalejob.LastCallbackAtLT(olderThan),
			),
		).
		Order(ent.Asc("created_at")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query silent jobs: %w", err)
	}
	return jobs, nil
}

// ListByStatus returns jobs in a given status, oldest first.
func (s *JobService) ListByStatus(ctx context.Context, status upscalejob.Status) ([]*ent.UpscaleJob, error) {
	jobs, err := s.client.UpscaleJob.Query().
		Where(upscalejob.StatusEQ(status)).
		Order(ent.Asc("created_at")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs by status: %w", err)
	}
	return jobs, nil
}

// ConvertToTiled re-plans a needs_split job as a tiled one: the job gets a
// grid and goes back to processing at stage 1, and tile rows are inserted,
// all in one transaction.
func (s *JobService) ConvertToTiled(ctx context.Context, jobID string, plan *models.Plan, rects []models.Rect, inputURLs []string) error {
	if plan == nil || plan.Grid == nil {
		return NewValidationError("plan", "a tiled plan is required")
	}
	if len(rects) != plan.Grid.TotalTiles || len(inputURLs) != len(rects) {
		return NewValidationError("tiles", "rects and input URLs must match the grid")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.UpscaleJob.Update().
		Where(upscalejob.IDEQ(jobID), upscalejob.StatusEQ(upscalejob.StatusNeedsSplit)).
		SetChain(plan.Chain).
		SetTemplate(plan.Template).
		SetGrid(plan.Grid).
		SetUsingTiling(true).
		SetCurrentStage(1).
		SetTotalStages(plan.TotalStages()).
		ClearPredictionID().
		SetStatus(upscalejob.StatusProcessing).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to convert job %s to tiled: %w", jobID, err)
	}
	if n == 0 {
		return ErrConflict
	}

	builders := make([]*ent.TileCreate, len(rects))
	for i, r := range rects {
		builders[i] = tx.Tile.Create().
			SetJobID(jobID).
			SetTileIndex(i).
			SetX(r.X).
			SetY(r.Y).
			SetWidth(r.Width).
			SetHeight(r.Height).
			SetInputURL(inputURLs[i]).
			SetStages(make([]models.StageSlot, plan.TotalStages())).
			SetStatus(models.TileStatusPending)
	}
	if _, err := tx.Tile.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("failed to create tiles for job %s: %w", jobID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tiled conversion: %w", err)
	}
	return nil
}

// MarkCallbackProcessed records a completion event's prediction id. The
// unique insert is the at-most-once guarantee: a duplicate returns
// ErrAlreadyProcessed and the caller skips re-application.
func (s *JobService) MarkCallbackProcessed(ctx context.Context, predictionID, jobID, outcome string) error {
	builder := s.client.ProcessedCallback.Create().
		SetID(predictionID).
		SetOutcome(outcome)
	if jobID != "" {
		builder.SetJobID(jobID)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyProcessed
		}
		return fmt.Errorf("failed to record callback %s: %w", predictionID, err)
	}
	return nil
}

// CallbackProcessed reports whether a prediction id was already applied.
func (s *JobService) CallbackProcessed(ctx context.Context, predictionID string) (bool, error) {
	exists, err := s.client.ProcessedCallback.Query().
		Where(processedcallback.IDEQ(predictionID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check callback %s: %w", predictionID, err)
	}
	return exists, nil
}
