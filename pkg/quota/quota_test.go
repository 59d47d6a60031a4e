package quota

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxScale(t *testing.T) {
	o := NewOracle()
	assert.Equal(t, 4, o.MaxScale(PlanFree))
	assert.Equal(t, 8, o.MaxScale(PlanBasic))
	assert.Equal(t, 16, o.MaxScale(PlanPro))
	assert.Equal(t, 24, o.MaxScale(PlanPremium))
	assert.Equal(t, 4, o.MaxScale("enterprise-trial"))
	assert.Equal(t, 4, o.MaxScale(""))
}
