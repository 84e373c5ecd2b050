package series

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lox/seatemp/internal/models"
)

const (
	DefaultStartYear          = 1980
	DefaultEndYear            = 2025
	DefaultSeed               = 42
	DefaultBaseTemperature    = 26.0
	DefaultWarmingRatePerYear = 0.02
	DefaultNoiseStdDev        = 0.2
)

// Config describes the synthetic series: a linear warming trend from
// BaseTemperature plus Gaussian noise, one value per year.
type Config struct {
	StartYear          int
	EndYear            int // inclusive
	Seed               uint64
	BaseTemperature    float64
	WarmingRatePerYear float64
	NoiseStdDev        float64
}

func DefaultConfig() Config {
	return Config{
		StartYear:          DefaultStartYear,
		EndYear:            DefaultEndYear,
		Seed:               DefaultSeed,
		BaseTemperature:    DefaultBaseTemperature,
		WarmingRatePerYear: DefaultWarmingRatePerYear,
		NoiseStdDev:        DefaultNoiseStdDev,
	}
}

// Validate reports parameters that cannot describe a sensible series.
// Generate does not call it: an inverted year range just yields an empty series.
func (c Config) Validate() error {
	var errs []error
	for name, v := range map[string]float64{
		"base temperature": c.BaseTemperature,
		"warming rate":     c.WarmingRatePerYear,
		"noise stddev":     c.NoiseStdDev,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", name, v))
		}
	}
	if c.NoiseStdDev < 0 {
		errs = append(errs, fmt.Errorf("noise stddev must not be negative, got %v", c.NoiseStdDev))
	}
	return errors.Join(errs...)
}

// Years returns the number of years the config covers.
func (c Config) Years() int {
	if c.EndYear < c.StartYear {
		return 0
	}
	return c.EndYear - c.StartYear + 1
}

// Generate builds the series. The random source is created here from
// c.Seed and discarded on return, so equal configs always produce equal
// series and no global random state is touched.
func Generate(c Config) models.TemperatureSeries {
	n := c.Years()
	years := make([]int, n)
	temps := make([]float64, n)

	noise := distuv.Normal{
		Mu:    0,
		Sigma: c.NoiseStdDev,
		Src:   rand.NewPCG(c.Seed, c.Seed),
	}

	for i := 0; i < n; i++ {
		y := c.StartYear + i
		years[i] = y
		temps[i] = c.BaseTemperature + c.WarmingRatePerYear*float64(y-c.StartYear) + noise.Rand()
	}

	s, err := models.NewTemperatureSeries(years, temps)
	if err != nil {
		// years are contiguous by construction
		panic(fmt.Sprintf("series: generate: %v", err))
	}
	return s
}

// Tail returns the last n readings in ascending year order.
func Tail(s models.TemperatureSeries, n int) []models.Reading {
	if n <= 0 {
		return nil
	}
	rows := s.Readings()
	if n >= len(rows) {
		return rows
	}
	return rows[len(rows)-n:]
}
