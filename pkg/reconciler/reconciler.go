// Package reconciler is the safety net under the webhook-driven pipeline.
// It periodically finds processing jobs that have gone silent and repairs
// them: polling in-flight predictions the webhook never reported, recovering
// jobs stuck between a finished stage and the next launch, and finishing
// jobs whose tiles are all done.
//
// Every repair is applied through the same idempotent paths the webhook
// handler uses, so a late-arriving webhook and a reconciler poll of the same
// prediction collapse into one application. Safe to run in multiple pods.
package reconciler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/pkg/config"
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/orchestrator"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/services"
)

// Service is the reconciliation loop.
type Service struct {
	cfg      *config.ReconcilerConfig
	jobs     *services.JobService
	tiles    *services.TileService
	orch     *orchestrator.Orchestrator
	provider provider.Client
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a reconciler.
func NewService(
	cfg *config.ReconcilerConfig,
	jobs *services.JobService,
	tiles *services.TileService,
	orch *orchestrator.Orchestrator,
	prov provider.Client,
) *Service {
	return &Service{
		cfg:      cfg,
		jobs:     jobs,
		tiles:    tiles,
		orch:     orch,
		provider: prov,
		logger:   slog.Default(),
	}
}

// Start launches the background reconciliation loop. The first pass runs
// immediately so work orphaned by a restart is picked up without waiting an
// interval.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Reconciler started",
		"interval", s.cfg.Interval,
		"silent_after", s.cfg.SilentAfter,
		"stage_timeout", s.cfg.StageTimeout)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Reconciler stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// CheckResult reports what one reconciliation pass did to one job.
type CheckResult struct {
	JobID   string `json:"jobId"`
	Outcome string `json:"outcome"`
}

// RunOnce performs a single reconciliation pass over every silent processing
// job. Also invoked directly by the manual check endpoint.
func (s *Service) RunOnce(ctx context.Context) []CheckResult {
	threshold := time.Now().Add(-s.cfg.SilentAfter)
	jobs, err := s.jobs.ListSilentProcessing(ctx, threshold)
	if err != nil {
		s.logger.Error("Reconciler: listing silent jobs failed", "error", err)
		return nil
	}
	results := make([]CheckResult, 0, len(jobs))
	for _, job := range jobs {
		if ctx.Err() != nil {
			return results
		}
		outcome := "checked"
		if err := s.reconcileJob(ctx, job); err != nil {
			s.logger.Error("Reconciler: job pass failed", "job_id", job.ID, "error", err)
			outcome = "error: " + err.Error()
		}
		results = append(results, CheckResult{JobID: job.ID, Outcome: outcome})
	}
	return results
}

func (s *Service) reconcileJob(ctx context.Context, job *ent.UpscaleJob) error {
	if !job.UsingTiling {
		return s.reconcileWholeImage(ctx, job)
	}
	return s.reconcileTiled(ctx, job)
}

// reconcileWholeImage polls the job's in-flight prediction and relays the
// result through the normal completion path.
func (s *Service) reconcileWholeImage(ctx context.Context, job *ent.UpscaleJob) error {
	if job.PredictionID == nil || *job.PredictionID == "" {
		// Submitted but never launched, likely a crash between CreateJob and
		// the launch goroutine.
		s.logger.Info("Reconciler: relaunching unlaunched job", "job_id", job.ID)
		return s.orch.LaunchJob(ctx, job.ID)
	}

	pred, err := s.provider.Get(ctx, *job.PredictionID)
	if err != nil {
		return err
	}
	if !pred.Status.Terminal() {
		if s.stageTimedOut(pred) {
			s.logger.Warn("Reconciler: abandoning stalled prediction",
				"job_id", job.ID, "prediction_id", pred.ID, "age", time.Since(pred.CreatedAt))
			return s.orch.OnCompletion(ctx, orchestrator.CompletionEvent{
				PredictionID: pred.ID,
				Status:       provider.StatusFailed,
				Error:        provider.ErrStageTimeout.Error(),
			})
		}
		// Still running; refresh the watchdog so the job is not re-polled
		// every pass.
		return s.jobs.TouchCallback(ctx, job.ID)
	}

	seen, err := s.jobs.CallbackProcessed(ctx, pred.ID)
	if err != nil {
		return err
	}
	if seen {
		// The completion was recorded but its follow-up may have been lost.
		return s.orch.RecoverWholeImage(ctx, job, pred)
	}

	s.logger.Info("Reconciler: applying missed completion",
		"job_id", job.ID, "prediction_id", pred.ID, "status", pred.Status)
	return s.orch.OnCompletion(ctx, orchestrator.CompletionEvent{
		PredictionID: pred.ID,
		Status:       pred.Status,
		Output:       pred.Output,
		Error:        pred.Error,
	})
}

// reconcileTiled repairs a silent tiled job stage by stage: in-flight tiles
// are polled, claimed-but-unlaunched tiles are relaunched, and a stage whose
// tiles all finished while the advance was lost gets re-advanced.
func (s *Service) reconcileTiled(ctx context.Context, job *ent.UpscaleJob) error {
	stage := job.CurrentStage

	inflight, err := s.tiles.ListByStatuses(ctx, job.ID, models.TileStageProcessing(stage))
	if err != nil {
		return err
	}

	progressed := false
	for _, t := range inflight {
		if t.CurrentPredictionID == nil || *t.CurrentPredictionID == "" {
			// Claimed but never submitted: a crash or failed RecordLaunch.
			// Re-open the tile so the stage launcher can claim it again.
			if err := s.reopenTile(ctx, t, stage); err != nil {
				s.logger.Error("Reconciler: reopening tile failed", "tile_id", t.ID, "error", err)
			}
			progressed = true
			continue
		}

		pred, err := s.provider.Get(ctx, *t.CurrentPredictionID)
		if err != nil {
			s.logger.Warn("Reconciler: prediction poll failed",
				"job_id", job.ID, "tile_index", t.TileIndex, "error", err)
			continue
		}
		if !pred.Status.Terminal() {
			if !s.stageTimedOut(pred) {
				continue
			}
			s.logger.Warn("Reconciler: abandoning stalled tile prediction",
				"job_id", job.ID, "tile_index", t.TileIndex, "prediction_id", pred.ID)
			pred.Status = provider.StatusFailed
			pred.Error = provider.ErrStageTimeout.Error()
			pred.Output = ""
		}
		progressed = true
		if err := s.orch.OnCompletion(ctx, orchestrator.CompletionEvent{
			PredictionID: pred.ID,
			Status:       pred.Status,
			Output:       pred.Output,
			Error:        pred.Error,
		}); err != nil {
			s.logger.Error("Reconciler: applying tile completion failed",
				"job_id", job.ID, "tile_index", t.TileIndex, "error", err)
		}
	}

	// Relaunch tiles waiting for this stage (reopened above, or a lost
	// stage-advance fan-out).
	if stage == 1 {
		progressed = s.relaunchEligible(ctx, job, stage, models.TileStatusPending) || progressed
	} else {
		progressed = s.relaunchEligible(ctx, job, stage, models.TileStageComplete(stage-1)) || progressed
	}

	// A job can be silent with every tile done when the final transition was
	// lost (crash between the last completion and the stitch). Re-running the
	// barrier check is idempotent.
	if !progressed {
		if err := s.orch.CheckStageBarrier(ctx, job, stage); err != nil && !errors.Is(err, services.ErrConflict) {
			return err
		}
	}
	return s.jobs.TouchCallback(ctx, job.ID)
}

// stageTimedOut reports whether a non-terminal prediction has exceeded the
// per-stage processing bound. Predictions without a creation timestamp are
// never timed out.
func (s *Service) stageTimedOut(pred *provider.Prediction) bool {
	if s.cfg.StageTimeout <= 0 || pred.CreatedAt.IsZero() {
		return false
	}
	return time.Since(pred.CreatedAt) > s.cfg.StageTimeout
}

// reopenTile rolls a claimed tile with no recorded prediction back to its
// pre-claim status.
func (s *Service) reopenTile(ctx context.Context, t *ent.Tile, stage int) error {
	return s.tiles.Reopen(ctx, t.ID, stage)
}

// relaunchEligible fans the current stage out over tiles still waiting for
// it. Reports whether any tile was eligible.
func (s *Service) relaunchEligible(ctx context.Context, job *ent.UpscaleJob, stage int, eligible string) bool {
	waiting, err := s.tiles.ListByStatuses(ctx, job.ID, eligible)
	if err != nil || len(waiting) == 0 {
		return false
	}
	s.logger.Info("Reconciler: relaunching stalled stage",
		"job_id", job.ID, "stage", stage, "tiles", len(waiting))
	if err := s.orch.LaunchStage(ctx, job, stage); err != nil {
		s.logger.Error("Reconciler: stage relaunch failed", "job_id", job.ID, "stage", stage, "error", err)
	}
	return true
}
