package impact

import "github.com/lox/seatemp/internal/models"

// Assessment is everything the dashboard shows about one series at one
// threshold setting.
type Assessment struct {
	Impacts   []Impact
	Severity  Severity
	Latest    models.Reading
	HasData   bool
	Mean      float64
	Threshold models.ThresholdSetting
	// YearsAbove lists the years whose temperature is above the custom
	// threshold. It only annotates the custom chart.
	YearsAbove []int
}

// Assess combines Analyze with the custom threshold summary. The threshold
// does not feed back into the impact list: coral bleaching is always judged
// against BleachingThreshold.
func Assess(s models.TemperatureSeries, threshold models.ThresholdSetting) Assessment {
	a := Assessment{
		Impacts:   Analyze(s),
		Mean:      Mean(s),
		Threshold: threshold,
	}
	a.Severity = MaxSeverity(a.Impacts)
	a.Latest, a.HasData = s.Latest()

	for _, r := range s.Readings() {
		if r.Temperature > threshold.Value {
			a.YearsAbove = append(a.YearsAbove, r.Year)
		}
	}
	return a
}

// Messages returns the impact lines, or the single fallback line when
// nothing fired.
func (a Assessment) Messages() []string {
	if len(a.Impacts) == 0 {
		return []string{FallbackMessage}
	}
	msgs := make([]string, len(a.Impacts))
	for i, imp := range a.Impacts {
		msgs[i] = imp.String()
	}
	return msgs
}
