package api

import (
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/reconciler"
	"github.com/pixelrelay/upscaled/pkg/status"
)

// SubmitResponse answers POST /submit.
type SubmitResponse struct {
	Success            bool       `json:"success"`
	JobID              string     `json:"jobId"`
	EstimatedTime      int        `json:"estimatedTime"`
	EstimatedCost      float64    `json:"estimatedCost"`
	TotalStages        int        `json:"totalStages"`
	TotalTiles         int        `json:"totalTiles,omitempty"`
	OriginalDimensions Dimensions `json:"originalDimensions"`
	TargetScale        int        `json:"targetScale"`
}

// Dimensions is a width/height pair.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StageInfo is one chain entry in a status response.
type StageInfo struct {
	Stage int    `json:"stage"`
	Model string `json:"model"`
	Scale int    `json:"scale"`
}

// StatusResponse answers GET /status.
type StatusResponse struct {
	Success                bool               `json:"success"`
	JobID                  string             `json:"jobId"`
	Status                 string             `json:"status"`
	Progress               float64            `json:"progress"`
	CurrentStage           int                `json:"currentStage"`
	TotalStages            int                `json:"totalStages"`
	CurrentOutputURL       string             `json:"currentOutputUrl,omitempty"`
	FinalOutputURL         string             `json:"finalOutputUrl,omitempty"`
	ErrorMessage           string             `json:"errorMessage,omitempty"`
	EstimatedTimeRemaining int                `json:"estimatedTimeRemaining"`
	EstimatedCost          float64            `json:"estimatedCost"`
	UsingTiling            bool               `json:"usingTiling"`
	TilingInfo             *models.TilingGrid `json:"tilingInfo,omitempty"`
	Stages                 []StageInfo        `json:"stages"`

	// Populated only for tiles_ready so a client can stitch on its own.
	TilesData   []status.TileData  `json:"tiles_data,omitempty"`
	TileGrid    *models.TilingGrid `json:"tile_grid,omitempty"`
	TargetScale int                `json:"target_scale,omitempty"`
}

// ResumeResponse answers POST /resume.
type ResumeResponse struct {
	Success       bool   `json:"success"`
	JobID         string `json:"jobId"`
	NextStage     int    `json:"nextStage"`
	TilesLaunched int    `json:"tilesLaunched"`
	TilesFailed   int    `json:"tilesFailed"`
	TotalTiles    int    `json:"totalTiles"`
}

// StitchResponse answers POST /stitch.
type StitchResponse struct {
	Success    bool       `json:"success"`
	JobID      string     `json:"jobId"`
	FinalURL   string     `json:"finalUrl"`
	Dimensions Dimensions `json:"dimensions"`
}

// CheckAllResponse answers POST /check-all.
type CheckAllResponse struct {
	Success bool                     `json:"success"`
	Checked int                      `json:"checked"`
	Results []reconciler.CheckResult `json:"results"`
}

// ErrorResponse is the uniform error shape.
type ErrorResponse struct {
	Success     bool   `json:"success"`
	Error       string `json:"error"`
	Message     string `json:"message,omitempty"`
	ValidScales []int  `json:"validScales,omitempty"`
}

func statusResponse(st *status.JobStatus) *StatusResponse {
	resp := &StatusResponse{
		Success:                true,
		JobID:                  st.JobID,
		Status:                 st.Status,
		Progress:               st.Progress,
		CurrentStage:           st.CurrentStage,
		TotalStages:            st.TotalStages,
		CurrentOutputURL:       st.CurrentOutputURL,
		FinalOutputURL:         st.FinalOutputURL,
		ErrorMessage:           st.Error,
		EstimatedTimeRemaining: st.EstimatedSecondsRemaining,
		EstimatedCost:          st.EstimatedCost,
		UsingTiling:            st.UsingTiling,
		TilingInfo:             st.TileGrid,
		Stages:                 make([]StageInfo, 0, len(st.Chain)),
	}
	for _, cs := range st.Chain {
		resp.Stages = append(resp.Stages, StageInfo{Stage: cs.Stage, Model: cs.Model, Scale: cs.Scale})
	}
	if len(st.TilesData) > 0 {
		resp.TilesData = st.TilesData
		resp.TileGrid = st.TileGrid
		resp.TargetScale = st.TargetScale
	}
	return resp
}
