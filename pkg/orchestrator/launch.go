package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/services"
)

// LaunchJob starts stage 1 of a freshly submitted job. Any submission
// failure here fails the whole job: nothing has run yet, so the client
// should just resubmit.
func (o *Orchestrator) LaunchJob(ctx context.Context, jobID string) error {
	job, err := o.jobs.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	if job.UsingTiling {
		return o.LaunchStage(ctx, job, 1)
	}
	return o.launchWholeImage(ctx, job, 1, job.InputURL)
}

// LaunchStage fans stage predictions out over a job's eligible tiles,
// staggered by the launch interval. Each tile is claimed before submission,
// so concurrent launchers of the same stage never double-submit.
func (o *Orchestrator) LaunchStage(ctx context.Context, job *ent.UpscaleJob, stage int) error {
	eligible := models.TileStatusPending
	if stage > 1 {
		eligible = models.TileStageComplete(stage - 1)
	}
	tiles, err := o.tiles.ListByStatuses(ctx, job.ID, eligible)
	if err != nil {
		return err
	}
	if len(tiles) == 0 {
		return nil
	}

	sel := o.stageSelection(job, stage)
	launched := 0
	for _, t := range tiles {
		if launched > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(o.cfg.Launch.Interval):
			}
		}

		if err := o.tiles.ClaimStage(ctx, t.ID, stage); err != nil {
			if errors.Is(err, services.ErrConflict) {
				continue
			}
			return err
		}

		inputURL := t.InputURL
		if stage > 1 {
			inputURL = t.Stages[stage-2].OutputURL
		}
		pred, err := o.provider.Submit(ctx, provider.SubmitRequest{
			Model:      sel.Model,
			Version:    sel.Version,
			Input:      withImage(sel.Input, inputURL),
			WebhookURL: o.webhookURL(),
		})
		if err != nil {
			// Retries inside the provider client are exhausted; a stage that
			// cannot launch leaves the pipeline incoherent.
			msg := fmt.Sprintf("stage %d launch failed: %v", stage, err)
			if ferr := o.tiles.MarkFailed(ctx, t.ID, msg); ferr != nil {
				o.logger.Error("Failed to mark tile failed", "tile_id", t.ID, "error", ferr)
			}
			if ferr := o.jobs.MarkFailed(ctx, job.ID, msg); ferr != nil {
				o.logger.Error("Failed to mark job failed", "job_id", job.ID, "error", ferr)
			}
			return fmt.Errorf("launch stage %d of job %s: %w", stage, job.ID, err)
		}

		if err := o.tiles.RecordLaunch(ctx, t.ID, stage, pred.ID); err != nil {
			// The prediction is in flight but unrecorded; the reconciler's
			// launch-gap repair re-claims the tile on its next pass.
			o.logger.Error("Failed to record launch", "tile_id", t.ID, "prediction_id", pred.ID, "error", err)
		}
		launched++
	}

	o.logger.Info("Stage launched", "job_id", job.ID, "stage", stage, "predictions", launched)
	return nil
}

// launchWholeImage submits one stage of a non-tiled job.
func (o *Orchestrator) launchWholeImage(ctx context.Context, job *ent.UpscaleJob, stage int, inputURL string) error {
	sel := o.stageSelection(job, stage)
	pred, err := o.provider.Submit(ctx, provider.SubmitRequest{
		Model:      sel.Model,
		Version:    sel.Version,
		Input:      withImage(sel.Input, inputURL),
		WebhookURL: o.webhookURL(),
	})
	if err != nil {
		msg := fmt.Sprintf("stage %d launch failed: %v", stage, err)
		if ferr := o.jobs.MarkFailed(ctx, job.ID, msg); ferr != nil {
			o.logger.Error("Failed to mark job failed", "job_id", job.ID, "error", ferr)
		}
		return fmt.Errorf("launch stage %d of job %s: %w", stage, job.ID, err)
	}

	if err := o.jobs.SetPredictionID(ctx, job.ID, pred.ID); err != nil {
		return err
	}
	o.logger.Info("Whole-image stage launched", "job_id", job.ID, "stage", stage, "prediction_id", pred.ID)
	return nil
}

// withImage copies a base selection input and adds the stage's input image.
func withImage(base map[string]any, imageURL string) map[string]any {
	input := make(map[string]any, len(base)+1)
	for k, v := range base {
		input[k] = v
	}
	input["image"] = imageURL
	return input
}
