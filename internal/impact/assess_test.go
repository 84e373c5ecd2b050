package impact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/seatemp/internal/impact"
	"github.com/lox/seatemp/internal/models"
)

func TestAssess_ThresholdDoesNotMoveBleachingRule(t *testing.T) {
	s := seriesOf(t, 26.0, 27.0, 27.8)

	low := impact.Assess(s, models.NewThresholdSetting(26.0))
	high := impact.Assess(s, models.NewThresholdSetting(30.0))

	assert.Equal(t, low.Impacts, high.Impacts)
	assert.Equal(t, []string{seaLevelMsg, ecosystemMsg}, low.Messages())
	assert.Equal(t, impact.SeverityElevated, low.Severity)
}

func TestAssess_YearsAbove(t *testing.T) {
	s := seriesOf(t, 26.0, 28.1, 27.9, 28.5)

	a := impact.Assess(s, models.NewThresholdSetting(28.0))
	assert.Equal(t, []int{2001, 2003}, a.YearsAbove)
	assert.True(t, a.HasData)
	assert.Equal(t, models.Reading{Year: 2003, Temperature: 28.5}, a.Latest)
	assert.Equal(t, 28.0, a.Threshold.Value)

	a = impact.Assess(s, models.NewThresholdSetting(30.0))
	assert.Empty(t, a.YearsAbove)
}

func TestAssess_Fallback(t *testing.T) {
	a := impact.Assess(seriesOf(t, 25.0, 26.0, 27.0), models.DefaultThreshold())
	assert.Empty(t, a.Impacts)
	assert.Equal(t, impact.SeverityNone, a.Severity)
	assert.Equal(t, []string{impact.FallbackMessage}, a.Messages())
}

func TestAssess_EmptySeries(t *testing.T) {
	a := impact.Assess(seriesOf(t), models.DefaultThreshold())
	assert.False(t, a.HasData)
	assert.Empty(t, a.Impacts)
	assert.Empty(t, a.YearsAbove)
	assert.Equal(t, []string{impact.FallbackMessage}, a.Messages())
}
