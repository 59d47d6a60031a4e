package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelrelay/upscaled/pkg/imaging"
	"github.com/pixelrelay/upscaled/pkg/orchestrator"
	"github.com/pixelrelay/upscaled/pkg/services"
	"github.com/pixelrelay/upscaled/pkg/status"
)

// SubmitJob handles POST /submit.
// 1. Validate the principal and decode the payload.
// 2. Plan and persist the job via the orchestrator.
// 3. Launch the first stage in the background and answer immediately.
func (s *Server) SubmitJob(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", "invalid JSON"))
		return
	}
	if req.UserID == "" {
		respondUnauthorized(c)
		return
	}

	imageData, err := imaging.DecodeBase64(req.ImageBase64)
	if err != nil {
		respondError(c, services.NewValidationError("imageBase64", "invalid base64 payload"))
		return
	}

	job, err := s.orch.Submit(c.Request.Context(), orchestrator.SubmitInput{
		UserID:      req.UserID,
		Plan:        req.Plan,
		ImageData:   imageData,
		Category:    req.Quality,
		Scale:       req.Scale,
		PinnedModel: req.SelectedModel,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// Fan-out is throttled per prediction; do it off the request path.
	go func() {
		if err := s.orch.LaunchJob(context.Background(), job.ID); err != nil {
			s.logger.Error("Failed to launch job", "job_id", job.ID, "error", err)
		}
	}()

	resp := SubmitResponse{
		Success:       true,
		JobID:         job.ID,
		EstimatedTime: status.EstimateTotalSeconds(job),
		EstimatedCost: status.EstimateCost(job),
		TotalStages:   job.TotalStages,
		OriginalDimensions: Dimensions{
			Width:  job.OriginalWidth,
			Height: job.OriginalHeight,
		},
		TargetScale: job.TargetScale,
	}
	if job.UsingTiling && job.Grid != nil {
		resp.TotalTiles = job.Grid.TotalTiles
	}
	c.JSON(http.StatusOK, resp)
}

// JobStatus handles GET /status?jobId=...
func (s *Server) JobStatus(c *gin.Context) {
	jobID := c.Query("jobId")
	if jobID == "" {
		respondError(c, services.NewValidationError("jobId", "required"))
		return
	}

	st, err := s.statuses.Read(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse(st))
}

// ResumeJob handles POST /resume. It converts a needs_split job to tiled
// processing and relaunches it from stage 1.
func (s *Server) ResumeJob(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.JobID == "" {
		respondError(c, services.NewValidationError("jobId", "required"))
		return
	}

	job, err := s.orch.Resume(c.Request.Context(), req.JobID)
	if err != nil {
		respondError(c, err)
		return
	}

	go func() {
		if err := s.orch.LaunchJob(context.Background(), job.ID); err != nil {
			s.logger.Error("Failed to relaunch resumed job", "job_id", job.ID, "error", err)
		}
	}()

	totalTiles := 0
	if job.Grid != nil {
		totalTiles = job.Grid.TotalTiles
	}
	c.JSON(http.StatusOK, ResumeResponse{
		Success:       true,
		JobID:         job.ID,
		NextStage:     job.CurrentStage,
		TilesLaunched: totalTiles,
		TotalTiles:    totalTiles,
	})
}
