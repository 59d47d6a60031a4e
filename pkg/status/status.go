// Package status reads job state and derives the client-facing view:
// progress percentage, time and cost estimates, and the tile payload a
// client needs to assemble a tiles_ready job itself.
package status

import (
	"context"
	"math"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/services"
)

// Estimation constants. Remote stages on tiles run far smaller inputs than
// whole images, hence the split.
const (
	secondsPerTileStage  = 3
	secondsPerWholeStage = 5
	dollarsPerPrediction = 0.0023
)

// TileData is one tile's contribution to a tiles_ready payload.
type TileData struct {
	Index     int         `json:"index"`
	Rect      models.Rect `json:"rect"`
	Status    string      `json:"status"`
	OutputURL string      `json:"outputUrl,omitempty"`
}

// JobStatus is the derived, client-facing view of a job.
type JobStatus struct {
	JobID                     string
	Status                    string
	Category                  string
	RequestedScale            int
	TargetScale               int
	CurrentStage              int
	TotalStages               int
	Chain                     []models.ChainStage
	Progress                  float64
	EstimatedSecondsRemaining int
	EstimatedCost             float64
	CurrentOutputURL          string
	FinalOutputURL            string
	Error                     string
	UsingTiling               bool
	TileGrid                  *models.TilingGrid
	TilesData                 []TileData
}

// Reader derives job status views.
type Reader struct {
	jobs  *services.JobService
	tiles *services.TileService
}

// NewReader creates a Reader.
func NewReader(jobs *services.JobService, tiles *services.TileService) *Reader {
	return &Reader{jobs: jobs, tiles: tiles}
}

// Read builds the status view for one job.
func (r *Reader) Read(ctx context.Context, jobID string) (*JobStatus, error) {
	job, err := r.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	st := &JobStatus{
		JobID:          job.ID,
		Status:         string(job.Status),
		Category:       string(job.Category),
		RequestedScale: job.RequestedScale,
		TargetScale:    job.TargetScale,
		CurrentStage:   job.CurrentStage,
		TotalStages:    job.TotalStages,
		Chain:          job.Chain,
		UsingTiling:    job.UsingTiling,
		TileGrid:       job.Grid,
		EstimatedCost:  EstimateCost(job),
	}
	if job.ErrorMessage != nil {
		st.Error = *job.ErrorMessage
	}
	if job.FinalOutputURL != nil {
		st.FinalOutputURL = *job.FinalOutputURL
	}
	if job.CurrentOutputURL != nil {
		st.CurrentOutputURL = *job.CurrentOutputURL
	}

	var tiles []*ent.Tile
	if job.UsingTiling {
		tiles, err = r.tiles.ListAll(ctx, jobID)
		if err != nil {
			return nil, err
		}
	}

	st.Progress = progress(job, tiles)
	st.EstimatedSecondsRemaining = remainingSeconds(job, st.Progress)

	// tiles_ready hands assembly to the client: it gets every tile's final
	// output and geometry.
	if job.Status == upscalejob.StatusTilesReady {
		st.TilesData = tilesData(tiles)
	}
	return st, nil
}

// progress computes completion as a percentage. Each stage contributes an
// equal share; within a stage, tiled jobs advance tile by tile.
func progress(job *ent.UpscaleJob, tiles []*ent.Tile) float64 {
	switch job.Status {
	case upscalejob.StatusCompleted, upscalejob.StatusPartialSuccess:
		return 100
	case upscalejob.StatusFailed:
		return 0
	}

	n := job.TotalStages
	if n == 0 {
		return 0
	}
	stageShare := 100.0 / float64(n)

	if !job.UsingTiling {
		done := float64(job.CurrentStage - 1)
		p := done * stageShare
		if job.Status == upscalejob.StatusProcessing {
			// Credit half of the in-flight stage.
			p += stageShare / 2
		}
		return clampPercent(p)
	}

	total := len(tiles)
	if total == 0 {
		return 0
	}
	p := 0.0
	for stage := 1; stage <= n; stage++ {
		reached := 0
		for _, t := range tiles {
			if models.TileStageReached(t.Status, stage) {
				reached++
			}
		}
		p += float64(reached) / float64(total) * stageShare
	}
	return clampPercent(p)
}

// EstimateTotalSeconds predicts a job's end-to-end processing time.
func EstimateTotalSeconds(job *ent.UpscaleJob) int {
	if job.UsingTiling && job.Grid != nil {
		return secondsPerTileStage * job.Grid.TotalTiles * job.TotalStages
	}
	return secondsPerWholeStage * job.TotalStages
}

// EstimateCost predicts a job's provider spend from its prediction count.
func EstimateCost(job *ent.UpscaleJob) float64 {
	predictions := job.TotalStages
	if job.UsingTiling && job.Grid != nil {
		predictions = job.Grid.TotalTiles * job.TotalStages
	}
	return math.Round(float64(predictions)*dollarsPerPrediction*10000) / 10000
}

func remainingSeconds(job *ent.UpscaleJob, progressPct float64) int {
	if progressPct >= 100 {
		return 0
	}
	total := float64(EstimateTotalSeconds(job))
	return int(math.Ceil(total * (100 - progressPct) / 100))
}

func tilesData(tiles []*ent.Tile) []TileData {
	data := make([]TileData, 0, len(tiles))
	for _, t := range tiles {
		td := TileData{
			Index:  t.TileIndex,
			Rect:   models.Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height},
			Status: t.Status,
		}
		for k := len(t.Stages) - 1; k >= 0; k-- {
			if t.Stages[k].OutputURL != "" {
				td.OutputURL = t.Stages[k].OutputURL
				break
			}
		}
		data = append(data, td)
	}
	return data
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return math.Round(p*10) / 10
}
