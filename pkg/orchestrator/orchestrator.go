// Package orchestrator drives the upscale pipeline: it plans submissions,
// persists jobs and tiles, fans predictions out to the inference provider,
// and applies completion events until the job reaches a terminal state.
package orchestrator

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/pkg/blobstore"
	"github.com/pixelrelay/upscaled/pkg/config"
	"github.com/pixelrelay/upscaled/pkg/imaging"
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/planner"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/quota"
	"github.com/pixelrelay/upscaled/pkg/registry"
	"github.com/pixelrelay/upscaled/pkg/services"
)

// Stitcher assembles a tiled job's final output once its tiles are ready.
type Stitcher interface {
	Stitch(ctx context.Context, jobID string) error
}

// Orchestrator owns the job lifecycle from submission to terminal state.
type Orchestrator struct {
	cfg      *config.Config
	jobs     *services.JobService
	tiles    *services.TileService
	planner  *planner.Planner
	registry *registry.Registry
	quota    *quota.Oracle
	provider provider.Client
	blob     blobstore.Store
	stitcher Stitcher
	logger   *slog.Logger
}

// New wires an Orchestrator.
func New(
	cfg *config.Config,
	jobs *services.JobService,
	tiles *services.TileService,
	pl *planner.Planner,
	reg *registry.Registry,
	oracle *quota.Oracle,
	prov provider.Client,
	blob blobstore.Store,
	stitcher Stitcher,
) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		jobs:     jobs,
		tiles:    tiles,
		planner:  pl,
		registry: reg,
		quota:    oracle,
		provider: prov,
		blob:     blob,
		stitcher: stitcher,
		logger:   slog.Default(),
	}
}

// SubmitInput is a validated upscale request.
type SubmitInput struct {
	UserID      string
	Plan        string // subscription plan name
	ImageData   []byte
	Category    string
	Scale       int
	PinnedModel string
}

// Submit plans and persists a new job. The caller is expected to follow up
// with LaunchJob, typically in a background goroutine, so the HTTP response
// does not wait for the throttled fan-out.
func (o *Orchestrator) Submit(ctx context.Context, in SubmitInput) (*ent.UpscaleJob, error) {
	if in.UserID == "" {
		return nil, services.NewValidationError("user_id", "required")
	}
	if len(in.ImageData) == 0 {
		return nil, services.NewValidationError("image", "required")
	}

	img, _, err := imaging.Decode(in.ImageData)
	if err != nil {
		return nil, services.NewValidationError("image", "not a decodable PNG or JPEG")
	}
	width, height := imaging.Dimensions(img)
	category := models.ParseCategory(in.Category)

	if !planner.IsValidScale(in.Scale) {
		return nil, planner.NewScaleError(in.Scale, width, height, category)
	}
	planCap := o.quota.MaxScale(in.Plan)
	if in.Scale > planCap {
		return nil, &services.PlanCapError{Plan: in.Plan, MaxScale: planCap}
	}

	maxDim := width
	if height > maxDim {
		maxDim = height
	}
	effective, err := planner.EffectiveScale(in.Scale, planCap, maxDim)
	if err != nil {
		return nil, err
	}

	plan, err := o.planner.Plan(width, height, effective, category, in.PinnedModel)
	if err != nil {
		return nil, err
	}

	jobID := uuid.New().String()
	inputURL, err := o.blob.Put(ctx,
		blobstore.StagingKey(o.cfg.Blob.StagingPrefix, jobID, "original.png"),
		in.ImageData, "image/png")
	if err != nil {
		return nil, fmt.Errorf("store original image: %w", err)
	}

	var rects []models.Rect
	var tileURLs []string
	if plan.UsingTiling {
		rects = planner.TileRects(width, height, plan.Grid)
		tileURLs, err = o.stageTileCrops(ctx, jobID, img, rects)
		if err != nil {
			return nil, err
		}
	}

	job, err := o.jobs.CreateJob(ctx, services.CreateJobInput{
		JobID:          jobID,
		UserID:         in.UserID,
		InputURL:       inputURL,
		OriginalWidth:  width,
		OriginalHeight: height,
		Category:       category,
		RequestedScale: in.Scale,
		Plan:           plan,
		TileRects:      rects,
		TileInputURLs:  tileURLs,
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("Job submitted",
		"job_id", job.ID,
		"user_id", in.UserID,
		"scale", effective,
		"stages", plan.TotalStages(),
		"tiling", plan.UsingTiling,
		"tiles", len(rects))
	return job, nil
}

// stageTileCrops cuts the original into grid cells and stages each crop.
func (o *Orchestrator) stageTileCrops(ctx context.Context, jobID string, img image.Image, rects []models.Rect) ([]string, error) {
	urls := make([]string, len(rects))
	for i, r := range rects {
		crop, err := imaging.Crop(img, r)
		if err != nil {
			return nil, fmt.Errorf("crop tile %d: %w", i, err)
		}
		data, err := imaging.EncodePNG(crop)
		if err != nil {
			return nil, fmt.Errorf("encode tile %d: %w", i, err)
		}
		key := blobstore.StagingKey(o.cfg.Blob.StagingPrefix, jobID, fmt.Sprintf("tile_%03d.png", i))
		url, err := o.blob.Put(ctx, key, data, "image/png")
		if err != nil {
			return nil, fmt.Errorf("stage tile %d: %w", i, err)
		}
		urls[i] = url
	}
	return urls, nil
}

// webhookURL is where the provider posts completion events.
func (o *Orchestrator) webhookURL() string {
	return o.cfg.HTTP.CallbackBaseURL + "/callback"
}

// stageSelection rebuilds the provider input for one stage of a job's chain.
// Passing the recorded chain model as the pin reproduces the original pick.
func (o *Orchestrator) stageSelection(job *ent.UpscaleJob, stage int) registry.Selection {
	cs := job.Chain[stage-1]
	return o.registry.Pick(models.Category(job.Category), stage, cs.Scale, cs.Model)
}
