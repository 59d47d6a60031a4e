package planner

import (
	"errors"
	"fmt"

	"github.com/pixelrelay/upscaled/pkg/models"
	"github.com/pixelrelay/upscaled/pkg/registry"
)

// MaxOutputDimension caps the final image side. The effective target scale
// is reduced until the output fits.
const MaxOutputDimension = 65536

// ErrUnscalable is returned when the dimension guard leaves no valid scale.
var ErrUnscalable = errors.New("image cannot be upscaled within the output dimension limit")

// ScaleError is a structured rejection for out-of-range scale requests,
// carrying actionable suggestions for the client.
type ScaleError struct {
	Requested    int
	MaxSupported int
	Suggestions  []string
	ValidScales  []int
}

func (e *ScaleError) Error() string {
	return fmt.Sprintf("scale %d not supported (max %d)", e.Requested, e.MaxSupported)
}

// NewScaleError builds a ScaleError for a rejected request, suggesting the
// largest safe scale for this image and an input resize.
func NewScaleError(requested, width, height int, category models.Category) *ScaleError {
	suggestions := []string{
		fmt.Sprintf("request a scale of %d or lower", MaxScale),
	}
	if safe := MaxSafeScale(width, height, category); safe > 0 && safe < requested {
		suggestions[0] = fmt.Sprintf("request a scale of %d or lower", safe)
	}
	suggestions = append(suggestions, "resize the input image down before submitting")
	return &ScaleError{
		Requested:    requested,
		MaxSupported: MaxScale,
		Suggestions:  suggestions,
		ValidScales:  ValidScales,
	}
}

// EffectiveScale picks the largest valid scale that is ≤ requested,
// ≤ allowedMax (the principal's plan cap), and keeps both output dimensions
// under MaxOutputDimension. Returns ErrUnscalable when none qualifies.
func EffectiveScale(requested, allowedMax, maxDim int) (int, error) {
	if maxDim <= 0 {
		return 0, fmt.Errorf("invalid image dimension %d", maxDim)
	}
	best := 0
	for _, s := range ValidScales {
		if s > requested || s > allowedMax {
			break
		}
		if maxDim*s > MaxOutputDimension {
			break
		}
		best = s
	}
	if best < 2 {
		return 0, ErrUnscalable
	}
	return best, nil
}

// Planner turns (image, scale, category) into a full execution plan.
type Planner struct {
	registry *registry.Registry
}

// New creates a Planner over a model registry.
func New(reg *registry.Registry) *Planner {
	return &Planner{registry: reg}
}

// Plan computes the chain, model per stage, and tiling grid for an
// already-guarded effective scale.
func (p *Planner) Plan(width, height, effectiveScale int, category models.Category, pinned string) (*models.Plan, error) {
	scales, err := ScaleChain(effectiveScale, category)
	if err != nil {
		return nil, err
	}

	chain := make([]models.ChainStage, len(scales))
	for i, s := range scales {
		sel := p.registry.Pick(category, i+1, s, pinned)
		chain[i] = models.ChainStage{Stage: i + 1, Model: sel.Model, Scale: s}
	}

	plan := &models.Plan{
		EffectiveScale: effectiveScale,
		Chain:          chain,
	}

	if !NeedsTiling(width, height, scales) {
		plan.Template = []models.TemplateStage{{Stage: 1, Scale: scales[0], ExpectedTiles: 1}}
		return plan, nil
	}

	grid, err := PlanGrid(width, height, scales, effectiveScale)
	if err != nil {
		return nil, err
	}
	plan.Grid = grid
	plan.UsingTiling = true
	plan.Template = BuildTemplate(grid, scales)
	return plan, nil
}
