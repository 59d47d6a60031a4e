package orchestrator

import (
	"context"
	"fmt"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/imaging"
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/planner"
	"github.com/pixelrelay/upscaled/pkg/services"
)

// Resume converts a needs_split job into a tiled one and relaunches it from
// stage 1. Only jobs parked in needs_split can resume; anything else is a
// state conflict the API surfaces as 409.
func (o *Orchestrator) Resume(ctx context.Context, jobID string) (*ent.UpscaleJob, error) {
	job, err := o.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != upscalejob.StatusNeedsSplit {
		return nil, services.ErrConflict
	}

	data, err := o.provider.Download(ctx, job.InputURL)
	if err != nil {
		return nil, fmt.Errorf("fetch original for job %s: %w", jobID, err)
	}
	img, _, err := imaging.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode original for job %s: %w", jobID, err)
	}
	width, height := imaging.Dimensions(img)

	scales := make([]int, len(job.Chain))
	for i, cs := range job.Chain {
		scales[i] = cs.Scale
	}
	grid, err := planner.PlanGrid(width, height, scales, job.TargetScale)
	if err != nil {
		return nil, fmt.Errorf("plan grid for job %s: %w", jobID, err)
	}

	plan := &models.Plan{
		EffectiveScale: job.TargetScale,
		Chain:          job.Chain,
		Template:       planner.BuildTemplate(grid, scales),
		Grid:           grid,
		UsingTiling:    true,
	}
	rects := planner.TileRects(width, height, grid)
	tileURLs, err := o.stageTileCrops(ctx, jobID, img, rects)
	if err != nil {
		return nil, err
	}

	if err := o.jobs.ConvertToTiled(ctx, jobID, plan, rects, tileURLs); err != nil {
		return nil, err
	}
	o.logger.Info("Job resumed with tiling", "job_id", jobID, "tiles", grid.TotalTiles)

	job, err = o.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return job, nil
}
