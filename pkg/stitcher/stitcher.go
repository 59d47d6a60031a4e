// Package stitcher assembles a tiled job's upscaled tiles into the final
// image. Tile outputs are fetched concurrently, composited row-major onto a
// white canvas (later tiles overwrite overlap bands), and the result is
// written to permanent storage.
package stitcher

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/pixelrelay/upscaled/ent"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/blobstore"
	"github.com/pixelrelay/upscaled/pkg/config"
	"github.com/pixelrelay/upscaled/pkg/imaging"
	"github.com/pixelrelay/upscaled/pkg/provider"
	"github.com/pixelrelay/upscaled/pkg/services"
)

// downloadConcurrency bounds parallel tile-output fetches.
const downloadConcurrency = 8

// Stitcher downloads tile outputs and composites the final image.
type Stitcher struct {
	cfg      *config.Config
	jobs     *services.JobService
	tiles    *services.TileService
	provider provider.Client
	blob     blobstore.Store
	logger   *slog.Logger
}

// New creates a Stitcher.
func New(cfg *config.Config, jobs *services.JobService, tiles *services.TileService, prov provider.Client, blob blobstore.Store) *Stitcher {
	return &Stitcher{
		cfg:      cfg,
		jobs:     jobs,
		tiles:    tiles,
		provider: prov,
		blob:     blob,
		logger:   slog.Default(),
	}
}

// Stitch assembles and finalizes a tiles_ready job. Tiles without any output
// are skipped; a skipped tile or one composited from an earlier stage's
// intermediate downgrades the job to partial_success. A job that yields
// nothing at all fails.
func (s *Stitcher) Stitch(ctx context.Context, jobID string) error {
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	if job.Status != upscalejob.StatusTilesReady {
		return services.ErrConflict
	}

	tiles, err := s.tiles.ListAll(ctx, jobID)
	if err != nil {
		return err
	}
	if len(tiles) == 0 {
		return s.jobs.MarkFailed(ctx, jobID, "no tiles to stitch")
	}

	images := s.fetchOutputs(ctx, tiles)

	scale := job.TargetScale
	canvas := image.NewRGBA(image.Rect(0, 0, job.OriginalWidth*scale, job.OriginalHeight*scale))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	composited := 0
	degraded := 0
	for i, t := range tiles {
		if images[i] == nil {
			continue
		}
		if _, stage, ok := bestOutput(t); ok && stage < job.TotalStages {
			degraded++
		}
		s.composite(canvas, t, images[i], scale)
		composited++
	}
	if composited == 0 {
		return s.jobs.MarkFailed(ctx, jobID, "no tile outputs available for stitching")
	}

	data, err := imaging.EncodePNG(canvas)
	if err != nil {
		return fmt.Errorf("encode stitched image for job %s: %w", jobID, err)
	}
	key := blobstore.PermanentKey(s.cfg.Blob.PermanentPrefix, jobID, "final.png")
	url, err := s.blob.Put(ctx, key, data, "image/png")
	if err != nil {
		return fmt.Errorf("store stitched image for job %s: %w", jobID, err)
	}

	skipped := len(tiles) - composited
	switch {
	case skipped > 0:
		s.logger.Warn("Stitched with missing tiles", "job_id", jobID, "skipped", skipped, "total", len(tiles))
		err = s.jobs.MarkPartialSuccess(ctx, jobID, url,
			fmt.Sprintf("%d of %d tiles missing from the stitched output", skipped, len(tiles)))
	case degraded > 0:
		s.logger.Warn("Stitched from earlier stage outputs", "job_id", jobID, "degraded", degraded, "total", len(tiles))
		err = s.jobs.MarkPartialSuccess(ctx, jobID, url,
			fmt.Sprintf("%d of %d tiles delivered an earlier stage's output", degraded, len(tiles)))
	default:
		err = s.jobs.MarkCompleted(ctx, jobID, url, upscalejob.StatusTilesReady)
	}
	if errors.Is(err, services.ErrConflict) {
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Info("Job stitched", "job_id", jobID, "tiles", composited, "output", url)
	return nil
}

// fetchOutputs downloads and decodes each tile's best output concurrently.
// Fetch failures degrade the tile to skipped rather than failing the stitch.
func (s *Stitcher) fetchOutputs(ctx context.Context, tiles []*ent.Tile) []image.Image {
	images := make([]image.Image, len(tiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(downloadConcurrency)
	for i, t := range tiles {
		g.Go(func() error {
			url, _, ok := bestOutput(t)
			if !ok {
				return nil
			}
			data, err := s.provider.Download(gctx, url)
			if err != nil {
				s.logger.Warn("Skipping tile, output fetch failed",
					"job_id", t.JobID, "tile_index", t.TileIndex, "error", err)
				return nil
			}
			img, _, err := imaging.Decode(data)
			if err != nil {
				s.logger.Warn("Skipping tile, output not decodable",
					"job_id", t.JobID, "tile_index", t.TileIndex, "error", err)
				return nil
			}
			images[i] = img
			return nil
		})
	}
	// Workers never return errors; Wait only observes context cancellation.
	_ = g.Wait()
	return images
}

// bestOutput walks a tile's stage slots backward and returns the most
// upscaled output it produced, with the stage that produced it. A tile that
// failed a later stage still contributes its earlier intermediate.
func bestOutput(t *ent.Tile) (string, int, bool) {
	for k := len(t.Stages) - 1; k >= 0; k-- {
		if t.Stages[k].OutputURL != "" {
			return t.Stages[k].OutputURL, k + 1, true
		}
	}
	return "", 0, false
}

// composite draws one tile output into its target-scale region. Outputs from
// an earlier stage than the full chain are rescaled to the region, so partial
// tiles land at the right size (softer, but geometrically correct).
func (s *Stitcher) composite(canvas *image.RGBA, t *ent.Tile, img image.Image, scale int) {
	dst := image.Rect(t.X*scale, t.Y*scale, (t.X+t.Width)*scale, (t.Y+t.Height)*scale)
	src := img.Bounds()
	if src.Dx() == dst.Dx() && src.Dy() == dst.Dy() {
		draw.Draw(canvas, dst, img, src.Min, draw.Src)
		return
	}
	xdraw.CatmullRom.Scale(canvas, dst, img, src, xdraw.Src, nil)
}
