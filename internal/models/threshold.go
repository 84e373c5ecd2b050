package models

import "math"

// Bounds of the coral bleaching threshold slider.
const (
	ThresholdMin     = 26.0
	ThresholdMax     = 30.0
	ThresholdStep    = 0.1
	ThresholdDefault = 28.0
)

// ThresholdSetting is the user-selected reference temperature for the
// custom chart. It is passed by value and never stored.
type ThresholdSetting struct {
	Value float64
}

func DefaultThreshold() ThresholdSetting {
	return ThresholdSetting{Value: ThresholdDefault}
}

// NewThresholdSetting clamps v into [ThresholdMin, ThresholdMax] and snaps it
// to the nearest ThresholdStep, mirroring what the slider allows.
func NewThresholdSetting(v float64) ThresholdSetting {
	if math.IsNaN(v) {
		return DefaultThreshold()
	}
	v = math.Max(ThresholdMin, math.Min(ThresholdMax, v))
	steps := math.Round((v - ThresholdMin) / ThresholdStep)
	v = ThresholdMin + steps*ThresholdStep
	// Strip binary noise so 28.000000000000004 renders and compares as 28.0.
	v = math.Round(v*10) / 10
	return ThresholdSetting{Value: v}
}
