// Package planner decomposes a target scale into a chain of provider
// invocations and computes the tiling grid that keeps every stage inside the
// provider's GPU budget.
package planner

import (
	"fmt"

	"github.com/pixelrelay/upscaled/pkg/models"
)

// ValidScales is the supported integer scale set, ascending.
var ValidScales = []int{2, 4, 8, 10, 12, 16, 20, 24}

// MaxScale is the authoritative maximum target scale.
const MaxScale = 24

// Per-stage caps: the photo model accepts up to 10×, the specialized art
// model exactly 4×. Chains are capped at two stages; taller chains are
// unreliable under reconciler visibility and GPU memory growth.
const (
	maxStageScalePhoto = 10
	maxChainLength     = 2
)

// IsValidScale reports whether s is in the supported scale set.
func IsValidScale(s int) bool {
	for _, v := range ValidScales {
		if v == s {
			return true
		}
	}
	return false
}

// Fixed decompositions. Art, text, and anime chains lead with a 4× pass so
// the category's specialized model (which tops out at 4×) can run first;
// photo chains minimize intermediate growth with the largest first factor
// the caps allow.
var (
	leadingFourChains = map[int][]int{
		2:  {2},
		4:  {4},
		8:  {4, 2},
		12: {4, 3},
		16: {4, 4},
		20: {4, 5},
		24: {4, 6},
	}
	defaultChains = map[int][]int{
		2:  {2},
		4:  {4},
		8:  {8},
		10: {2, 5},
		12: {3, 4},
		16: {4, 4},
		20: {4, 5},
		24: {4, 6},
	}
)

// ScaleChain returns the ordered per-stage scale factors for a target scale.
// The product of the factors always equals target.
func ScaleChain(target int, category models.Category) ([]int, error) {
	if !IsValidScale(target) {
		return nil, fmt.Errorf("unsupported target scale %d", target)
	}

	var chain []int
	switch category {
	case models.CategoryArt, models.CategoryText, models.CategoryAnime:
		if c, ok := leadingFourChains[target]; ok {
			chain = c
		} else {
			chain = defaultChains[target]
		}
	default:
		chain = defaultChains[target]
	}

	if len(chain) > maxChainLength {
		return nil, fmt.Errorf("no chain of length ≤ %d for scale %d", maxChainLength, target)
	}
	product := 1
	for _, s := range chain {
		if s > maxStageScalePhoto {
			return nil, fmt.Errorf("stage scale %d exceeds per-call cap", s)
		}
		product *= s
	}
	if product != target {
		return nil, fmt.Errorf("chain %v does not multiply to %d", chain, target)
	}
	return chain, nil
}
