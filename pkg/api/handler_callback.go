package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelrelay/upscaled/pkg/orchestrator"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/services"
)

// ProviderCallback handles POST /callback, the provider's completion webhook.
// The provider retries on non-2xx, so processing errors are logged and
// acknowledged rather than surfaced: our reconciler repairs anything a
// dropped event leaves behind, and a retry storm helps nobody.
func (s *Server) ProviderCallback(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", "invalid JSON"))
		return
	}
	if req.ID == "" {
		respondError(c, services.NewValidationError("id", "required"))
		return
	}

	ev := orchestrator.CompletionEvent{
		PredictionID: req.ID,
		Status:       provider.Status(req.Status),
		Output:       firstOutput(req.Output),
		Error:        req.Error,
	}
	if err := s.orch.OnCompletion(c.Request.Context(), ev); err != nil {
		s.logger.Error("Callback processing failed",
			"prediction_id", req.ID, "status", req.Status, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "received": true})
}

// firstOutput normalizes the webhook's output field, which some models emit
// as a single URL and others as a list.
func firstOutput(out any) string {
	switch v := out.(type) {
	case string:
		return v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				return s
			}
		}
	}
	return ""
}
