package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/blobstore"
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/services"
)

// maxWholeImageRetries bounds transient-failure retries of a non-tiled
// stage. Tiled stages do not retry individual tiles; the failure ratio
// decides the job's fate instead.
const maxWholeImageRetries = 3

// CompletionEvent is one provider webhook (or reconciler poll result).
type CompletionEvent struct {
	PredictionID string
	Status       provider.Status
	Output       string
	Error        string
}

// OnCompletion applies a prediction's terminal state to its owning job or
// tile. Every event is recorded before its effects are applied, so webhook
// replays and reconciler races collapse into a single application.
func (o *Orchestrator) OnCompletion(ctx context.Context, ev CompletionEvent) error {
	if ev.PredictionID == "" {
		return services.NewValidationError("prediction_id", "required")
	}
	if !ev.Status.Terminal() {
		// The events filter asks for terminal states only; ignore the rest.
		return nil
	}

	if job, err := o.jobs.FindJobByPredictionID(ctx, ev.PredictionID); err == nil {
		return o.applyWholeImage(ctx, job, ev)
	} else if !errors.Is(err, services.ErrNotFound) {
		return err
	}

	if tile, err := o.tiles.FindByPredictionID(ctx, ev.PredictionID); err == nil {
		return o.applyTile(ctx, tile, ev)
	} else if !errors.Is(err, services.ErrNotFound) {
		return err
	}

	// Unknown prediction: a stale webhook for an already-superseded launch,
	// or one that raced RecordLaunch. Leave it unrecorded so a later delivery
	// (webhook retry or reconciler poll) lands once the owner row is visible.
	o.logger.Warn("Completion event for unknown prediction", "prediction_id", ev.PredictionID, "status", ev.Status)
	return nil
}

// applyTile applies a completion event to a tiled job.
func (o *Orchestrator) applyTile(ctx context.Context, tile *ent.Tile, ev CompletionEvent) error {
	job, err := o.jobs.GetJob(ctx, tile.JobID)
	if err != nil {
		return err
	}

	if err := o.jobs.MarkCallbackProcessed(ctx, ev.PredictionID, job.ID, string(ev.Status)); err != nil {
		if errors.Is(err, services.ErrAlreadyProcessed) {
			return nil
		}
		return err
	}
	if err := o.jobs.TouchCallback(ctx, job.ID); err != nil {
		o.logger.Warn("Failed to touch callback timestamp", "job_id", job.ID, "error", err)
	}

	stage := services.StageOfPrediction(tile, ev.PredictionID)
	if stage == 0 {
		stage = job.CurrentStage
	}

	if ev.Status == provider.StatusSucceeded && ev.Output != "" {
		if err := o.tiles.CompleteStage(ctx, tile.ID, stage, ev.Output); err != nil {
			if errors.Is(err, services.ErrConflict) {
				return nil
			}
			return err
		}
		o.logger.Info("Tile stage complete", "job_id", job.ID, "tile_index", tile.TileIndex, "stage", stage)
	} else {
		msg := ev.Error
		if msg == "" {
			msg = fmt.Sprintf("prediction ended %s", ev.Status)
		}
		if err := o.tiles.MarkFailed(ctx, tile.ID, msg); err != nil {
			return err
		}
		o.logger.Warn("Tile failed", "job_id", job.ID, "tile_index", tile.TileIndex, "stage", stage, "error", msg)
	}

	return o.advanceTiledJob(ctx, job, stage)
}

// advanceTiledJob checks a stage barrier after any tile reached a terminal
// state for that stage: once every tile has either completed the stage or
// failed, the job moves on. More than half the tiles failing fails the job;
// a smaller loss still stitches what survived. Memory-exhaustion failures
// past stage 1 never fail the job outright: the failed tiles still hold a
// usable earlier output, so the job settles for a stitch of those.
func (o *Orchestrator) advanceTiledJob(ctx context.Context, job *ent.UpscaleJob, stage int) error {
	total, err := o.tiles.CountTotal(ctx, job.ID)
	if err != nil {
		return err
	}
	failed, err := o.tiles.CountFailed(ctx, job.ID)
	if err != nil {
		return err
	}
	settle := stage > 1 && failed > 0 && o.memoryWall(ctx, job.ID)
	if failed*2 > total && !settle {
		o.logger.Warn("Failing job, tile failures exceed half", "job_id", job.ID, "failed", failed, "total", total)
		return o.jobs.MarkFailed(ctx, job.ID,
			fmt.Sprintf("%d of %d tiles failed", failed, total))
	}

	done, err := o.tiles.CountAtOrBeyond(ctx, job.ID, stage, job.TotalStages)
	if err != nil {
		return err
	}
	if done+failed < total {
		// Stage still in flight.
		return nil
	}
	if done == 0 && !settle {
		return o.jobs.MarkFailed(ctx, job.ID, "no tiles produced output")
	}

	if settle {
		o.logger.Warn("Memory wall, settling for earlier stage outputs",
			"job_id", job.ID, "stage", stage, "failed", failed, "total", total)
	} else if stage < job.TotalStages {
		if err := o.jobs.SetStageCursor(ctx, job.ID, stage+1, ""); err != nil {
			return err
		}
		o.logger.Info("Advancing tiled job", "job_id", job.ID, "from_stage", stage, "to_stage", stage+1)
		return o.LaunchStage(ctx, job, stage+1)
	}

	// Final stage done: exactly one handler wins the transition and stitches.
	if err := o.jobs.Transition(ctx, job.ID, upscalejob.StatusProcessing, upscalejob.StatusTilesReady); err != nil {
		if errors.Is(err, services.ErrConflict) {
			return nil
		}
		return err
	}
	o.logger.Info("All tiles ready, stitching", "job_id", job.ID, "failed_tiles", failed)
	return o.stitcher.Stitch(ctx, job.ID)
}

// memoryWall reports whether any failed tile hit GPU memory exhaustion.
// Those failures repeat on any retry of the same input.
func (o *Orchestrator) memoryWall(ctx context.Context, jobID string) bool {
	failedTiles, err := o.tiles.ListByStatuses(ctx, jobID, models.TileStatusFailed)
	if err != nil {
		o.logger.Error("Failed to list failed tiles", "job_id", jobID, "error", err)
		return false
	}
	for _, t := range failedTiles {
		if t.ErrorMessage != nil && provider.IsOutOfMemory(*t.ErrorMessage) {
			return true
		}
	}
	return false
}

// CheckStageBarrier re-runs the stage-advance check outside a completion
// event. The reconciler uses it to finish jobs whose last completion was
// applied but whose advance or stitch was lost.
func (o *Orchestrator) CheckStageBarrier(ctx context.Context, job *ent.UpscaleJob, stage int) error {
	return o.advanceTiledJob(ctx, job, stage)
}

// RecoverWholeImage re-drives a non-tiled job whose prediction completed and
// was recorded, but whose follow-up action was lost to a crash: either the
// next stage's launch or the final copy into permanent storage.
func (o *Orchestrator) RecoverWholeImage(ctx context.Context, job *ent.UpscaleJob, pred *provider.Prediction) error {
	if job.Status != upscalejob.StatusProcessing {
		return nil
	}
	if pred.Status != provider.StatusSucceeded || pred.Output == "" {
		// A recorded failure with no applied effect resolves on retry
		// exhaustion; nothing to re-drive here.
		return nil
	}
	if job.CurrentOutputURL != nil && *job.CurrentOutputURL == pred.Output {
		// The stage cursor advanced past this prediction but its launch never
		// happened.
		o.logger.Info("Recovering lost stage launch", "job_id", job.ID, "stage", job.CurrentStage)
		return o.launchWholeImage(ctx, job, job.CurrentStage, pred.Output)
	}
	if job.CurrentStage == job.TotalStages {
		o.logger.Info("Recovering lost finalization", "job_id", job.ID)
		return o.finalizeWholeImage(ctx, job, pred.Output)
	}
	return nil
}

// applyWholeImage applies a completion event to a non-tiled job.
func (o *Orchestrator) applyWholeImage(ctx context.Context, job *ent.UpscaleJob, ev CompletionEvent) error {
	if err := o.jobs.MarkCallbackProcessed(ctx, ev.PredictionID, job.ID, string(ev.Status)); err != nil {
		if errors.Is(err, services.ErrAlreadyProcessed) {
			return nil
		}
		return err
	}
	if err := o.jobs.TouchCallback(ctx, job.ID); err != nil {
		o.logger.Warn("Failed to touch callback timestamp", "job_id", job.ID, "error", err)
	}

	if job.Status != upscalejob.StatusProcessing {
		return nil
	}
	stage := job.CurrentStage

	if ev.Status == provider.StatusSucceeded && ev.Output != "" {
		if stage < job.TotalStages {
			if err := o.jobs.SetStageCursor(ctx, job.ID, stage+1, ev.Output); err != nil {
				return err
			}
			job, err := o.jobs.GetJob(ctx, job.ID)
			if err != nil {
				return err
			}
			return o.launchWholeImage(ctx, job, stage+1, ev.Output)
		}
		return o.finalizeWholeImage(ctx, job, ev.Output)
	}

	return o.handleWholeImageFailure(ctx, job, stage, ev)
}

// handleWholeImageFailure decides between retrying, settling for an earlier
// stage's output, and failing.
func (o *Orchestrator) handleWholeImageFailure(ctx context.Context, job *ent.UpscaleJob, stage int, ev CompletionEvent) error {
	if provider.IsOutOfMemory(ev.Error) {
		// Retrying the same input hits the same wall.
		if stage > 1 && job.CurrentOutputURL != nil {
			msg := fmt.Sprintf("stage %d ran out of GPU memory, keeping stage %d output", stage, stage-1)
			o.logger.Warn("Settling for partial result after memory exhaustion", "job_id", job.ID, "stage", stage)
			err := o.jobs.MarkPartialSuccess(ctx, job.ID, *job.CurrentOutputURL, msg)
			if errors.Is(err, services.ErrConflict) {
				return nil
			}
			return err
		}
		o.logger.Warn("Whole-image stage out of GPU memory", "job_id", job.ID, "stage", stage)
		return o.jobs.MarkFailed(ctx, job.ID, fmt.Sprintf("stage %d ran out of GPU memory", stage))
	}

	retries, err := o.jobs.IncrementRetry(ctx, job.ID)
	if err != nil {
		return err
	}
	if retries <= maxWholeImageRetries {
		inputURL := job.InputURL
		if stage > 1 && job.CurrentOutputURL != nil {
			inputURL = *job.CurrentOutputURL
		}
		o.logger.Info("Retrying whole-image stage", "job_id", job.ID, "stage", stage, "attempt", retries)
		return o.launchWholeImage(ctx, job, stage, inputURL)
	}

	if stage > 1 && job.CurrentOutputURL != nil {
		// The earlier stage produced a usable intermediate.
		msg := fmt.Sprintf("stage %d failed after %d retries, keeping stage %d output", stage, maxWholeImageRetries, stage-1)
		o.logger.Warn("Settling for partial result", "job_id", job.ID, "stage", stage)
		err := o.jobs.MarkPartialSuccess(ctx, job.ID, *job.CurrentOutputURL, msg)
		if errors.Is(err, services.ErrConflict) {
			return nil
		}
		return err
	}

	msg := ev.Error
	if msg == "" {
		msg = fmt.Sprintf("prediction ended %s", ev.Status)
	}
	return o.jobs.MarkFailed(ctx, job.ID, fmt.Sprintf("stage %d failed after %d retries: %s", stage, maxWholeImageRetries, msg))
}

// finalizeWholeImage copies the last stage's output into permanent storage
// and completes the job.
func (o *Orchestrator) finalizeWholeImage(ctx context.Context, job *ent.UpscaleJob, outputURL string) error {
	data, err := o.provider.Download(ctx, outputURL)
	if err != nil {
		// The job stays processing; the reconciler re-polls the prediction
		// and retries the copy via RecoverWholeImage.
		return fmt.Errorf("download final output for job %s: %w", job.ID, err)
	}

	key := blobstore.PermanentKey(o.cfg.Blob.PermanentPrefix, job.ID, "final.png")
	url, err := o.blob.Put(ctx, key, data, "image/png")
	if err != nil {
		return fmt.Errorf("store final output for job %s: %w", job.ID, err)
	}

	if err := o.jobs.MarkCompleted(ctx, job.ID, url, upscalejob.StatusProcessing); err != nil {
		if errors.Is(err, services.ErrConflict) {
			return nil
		}
		return err
	}
	o.logger.Info("Job completed", "job_id", job.ID, "output", url)
	return nil
}
