package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelrelay/upscaled/pkg/services"
)

// CheckAll handles POST /check-all: one manual reconciliation pass over every
// silent processing job.
func (s *Server) CheckAll(c *gin.Context) {
	results := s.reconciler.RunOnce(c.Request.Context())
	c.JSON(http.StatusOK, CheckAllResponse{
		Success: true,
		Checked: len(results),
		Results: results,
	})
}

// StitchJob handles POST /stitch: server-side assembly of a tiles_ready job.
func (s *Server) StitchJob(c *gin.Context) {
	var req StitchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.JobID == "" {
		respondError(c, services.NewValidationError("jobId", "required"))
		return
	}

	if err := s.stitcher.Stitch(c.Request.Context(), req.JobID); err != nil {
		respondError(c, err)
		return
	}

	job, err := s.jobs.GetJob(c.Request.Context(), req.JobID)
	if err != nil {
		respondError(c, err)
		return
	}
	finalURL := ""
	if job.FinalOutputURL != nil {
		finalURL = *job.FinalOutputURL
	}
	c.JSON(http.StatusOK, StitchResponse{
		Success:  true,
		JobID:    job.ID,
		FinalURL: finalURL,
		Dimensions: Dimensions{
			Width:  job.OriginalWidth * job.TargetScale,
			Height: job.OriginalHeight * job.TargetScale,
		},
	})
}
