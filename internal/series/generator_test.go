package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(DefaultConfig())
	b := Generate(DefaultConfig())

	assert.Equal(t, a.Years(), b.Years())
	assert.Equal(t, a.Temperatures(), b.Temperatures())
}

func TestGenerate_SeedChangesNoise(t *testing.T) {
	cfg := DefaultConfig()
	a := Generate(cfg)
	cfg.Seed = 43
	b := Generate(cfg)

	assert.Equal(t, a.Years(), b.Years())
	assert.NotEqual(t, a.Temperatures(), b.Temperatures())
}

func TestGenerate_Lengths(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       int
	}{
		{name: "default range", start: 1980, end: 2025, want: 46},
		{name: "single year", start: 2000, end: 2000, want: 1},
		{name: "inverted range is empty", start: 2025, end: 1980, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.StartYear, cfg.EndYear = tt.start, tt.end
			s := Generate(cfg)

			assert.Equal(t, tt.want, s.Len())
			assert.Len(t, s.Years(), tt.want)
			assert.Len(t, s.Temperatures(), tt.want)
			assert.Equal(t, tt.want == 0, s.Empty())
		})
	}
}

func TestGenerate_YearsStrictlyIncreasing(t *testing.T) {
	years := Generate(DefaultConfig()).Years()
	require.NotEmpty(t, years)
	assert.Equal(t, DefaultStartYear, years[0])
	assert.Equal(t, DefaultEndYear, years[len(years)-1])
	for i := 1; i < len(years); i++ {
		assert.Equal(t, years[i-1]+1, years[i], "index %d", i)
	}
}

func TestGenerate_NoNoiseIsLinearTrend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NoiseStdDev = 0
	s := Generate(cfg)

	for i, r := range s.Readings() {
		want := 26.0 + 0.02*float64(i)
		assert.InDelta(t, want, r.Temperature, 1e-9, "year %d", r.Year)
	}
}

func TestGenerate_NoiseShape(t *testing.T) {
	cfg := DefaultConfig()
	s := Generate(cfg)

	residuals := make([]float64, 0, s.Len())
	for _, r := range s.Readings() {
		trend := cfg.BaseTemperature + cfg.WarmingRatePerYear*float64(r.Year-cfg.StartYear)
		residuals = append(residuals, r.Temperature-trend)
	}

	mean, sd := stat.MeanStdDev(residuals, nil)
	assert.InDelta(t, 0, mean, 0.15)
	assert.Greater(t, sd, 0.1)
	assert.Less(t, sd, 0.3)
}

func TestTail(t *testing.T) {
	s := Generate(DefaultConfig())

	rows := Tail(s, 10)
	require.Len(t, rows, 10)
	for i, r := range rows {
		assert.Equal(t, 2016+i, r.Year)
	}
	last, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, last, rows[9])

	assert.Len(t, Tail(s, 100), 46)
	assert.Empty(t, Tail(s, 0))
	assert.Empty(t, Tail(s, -3))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.NoiseStdDev = -0.1
	assert.ErrorContains(t, cfg.Validate(), "must not be negative")

	cfg = DefaultConfig()
	cfg.BaseTemperature = math.NaN()
	assert.ErrorContains(t, cfg.Validate(), "base temperature must be finite")

	cfg = DefaultConfig()
	cfg.StartYear, cfg.EndYear = 2025, 1980
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.Years())
}
