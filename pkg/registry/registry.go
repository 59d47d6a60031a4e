// Package registry holds the static catalog of upscaler models and the
// per-stage selection rules.
package registry

import (
	"log/slog"

	"github.com/pixelrelay/upscaled/pkg/models"
)

// Model identifiers used across the planner and orchestrator.
const (
	ModelPhoto = "nightmareai/real-esrgan"
	ModelArt   = "mv-lab/swin2sr"
	ModelAnime = "xinntao/realesrgan"
)

// ModelSpec describes one catalog entry.
type ModelSpec struct {
	ID           string            `json:"id"`
	Version      string            `json:"version"`
	NativeScales []int             `json:"native_scales"`
	MaxScale     int               `json:"max_scale"`
	Categories   []models.Category `json:"categories"`
	// Tilable is false for models that cannot process large already-upscaled
	// intermediates; such models are only eligible for stage 1.
	Tilable bool `json:"tilable"`
}

// Selection is the planner-facing answer: which model to run a stage on and
// the base provider input for it.
type Selection struct {
	Model   string
	Version string
	Input   map[string]any
}

var catalog = map[string]ModelSpec{
	ModelPhoto: {
		ID:           ModelPhoto,
		Version:      "f121d640bd286e1fdc67f9799164c1d5be36ff74576ee11c803ae5b665dd46aa",
		NativeScales: []int{2, 4},
		MaxScale:     10,
		Categories:   []models.Category{models.CategoryPhoto},
		Tilable:      true,
	},
	ModelArt: {
		ID:           ModelArt,
		Version:      "a01b0512c545060123fc393ee4f349f1c39194d2dfcb8e27e6d806b6d9b63b84",
		NativeScales: []int{4},
		MaxScale:     4,
		Categories:   []models.Category{models.CategoryArt, models.CategoryText},
		Tilable:      false,
	},
	ModelAnime: {
		ID:           ModelAnime,
		Version:      "c1e79f19d6c47dd09cbbbb24ef9b6b307b25767b4ac832cf04a3fba762c16fc6",
		NativeScales: []int{4},
		MaxScale:     4,
		Categories:   []models.Category{models.CategoryAnime},
		Tilable:      true,
	},
}

// Registry answers model-selection queries against the static catalog.
type Registry struct {
	logger *slog.Logger
}

// New creates a Registry.
func New() *Registry {
	return &Registry{logger: slog.Default()}
}

// List returns every catalog entry, for the read-only catalog endpoint.
func (r *Registry) List() []ModelSpec {
	specs := make([]ModelSpec, 0, len(catalog))
	for _, id := range []string{ModelPhoto, ModelArt, ModelAnime} {
		specs = append(specs, catalog[id])
	}
	return specs
}

// Get looks up a model by identifier.
func (r *Registry) Get(id string) (ModelSpec, bool) {
	spec, ok := catalog[id]
	return spec, ok
}

// Pick selects the model for one stage of a chain.
//
// Rules:
//   - photo (and anything unrecognized): the photo model at every scale,
//     face enhancement only when the stage scale is ≤ 4.
//   - art/text: the specialized model only for a first stage of scale
//     exactly 4, since it cannot tile large intermediates. Every other stage runs
//     the photo model with face enhancement off.
//   - anime: the anime model when the stage scale is ≤ 4, photo otherwise.
//   - a pinned model wins unless the stage scale exceeds what it supports.
func (r *Registry) Pick(category models.Category, stage, scale int, pinned string) Selection {
	if pinned != "" {
		spec, ok := catalog[pinned]
		switch {
		case !ok:
			r.logger.Warn("Ignoring unknown pinned model", "model", pinned)
		case scale > spec.MaxScale || (!spec.Tilable && stage > 1):
			r.logger.Warn("Pinned model cannot serve stage, falling back",
				"model", pinned, "stage", stage, "scale", scale)
		default:
			return r.selection(spec, category, stage, scale)
		}
	}

	switch category {
	case models.CategoryArt, models.CategoryText:
		if stage == 1 && scale == 4 {
			return r.selection(catalog[ModelArt], category, stage, scale)
		}
		// Later stages operate on large intermediates the specialized model
		// cannot tile.
		return r.photoSelection(scale, false)
	case models.CategoryAnime:
		if scale <= 4 {
			return r.selection(catalog[ModelAnime], category, stage, scale)
		}
		return r.photoSelection(scale, false)
	default:
		return r.photoSelection(scale, scale <= 4)
	}
}

func (r *Registry) selection(spec ModelSpec, category models.Category, stage, scale int) Selection {
	switch spec.ID {
	case ModelPhoto:
		return r.photoSelection(scale, scale <= 4)
	case ModelArt:
		return Selection{
			Model:   spec.ID,
			Version: spec.Version,
			Input: map[string]any{
				"task": "classical_sr",
			},
		}
	case ModelAnime:
		return Selection{
			Model:   spec.ID,
			Version: spec.Version,
			Input: map[string]any{
				"model_name": "RealESRGAN_x4plus_anime_6B",
				"scale":      scale,
			},
		}
	default:
		return r.photoSelection(scale, false)
	}
}

func (r *Registry) photoSelection(scale int, faceEnhance bool) Selection {
	spec := catalog[ModelPhoto]
	return Selection{
		Model:   spec.ID,
		Version: spec.Version,
		Input: map[string]any{
			"scale":        scale,
			"face_enhance": faceEnhance,
		},
	}
}
