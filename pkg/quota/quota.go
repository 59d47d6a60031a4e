// Package quota maps subscription plans to the maximum upscale factor they
// allow. Billing itself lives outside this service; handlers receive the
// plan name from the authenticated request.
package quota

import "log/slog"

// Plan names recognized by the oracle.
const (
	PlanFree    = "free"
	PlanBasic   = "basic"
	PlanPro     = "pro"
	PlanPremium = "premium"
)

var planCaps = map[string]int{
	PlanFree:    4,
	PlanBasic:   8,
	PlanPro:     16,
	PlanPremium: 24,
}

// Oracle answers plan-cap queries.
type Oracle struct {
	logger *slog.Logger
}

// NewOracle creates an Oracle.
func NewOracle() *Oracle {
	return &Oracle{logger: slog.Default()}
}

// MaxScale returns the largest scale the plan may request. Unknown plans get
// the free cap.
func (o *Oracle) MaxScale(plan string) int {
	if cap, ok := planCaps[plan]; ok {
		return cap
	}
	o.logger.Warn("Unknown plan, applying free cap", "plan", plan)
	return planCaps[PlanFree]
}
