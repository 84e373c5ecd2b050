package impact

// Metric selects which summary of the series a rule compares.
type Metric int

const (
	MetricLatest Metric = iota // most recent year's temperature
	MetricMean                 // mean over the whole series
)

func (m Metric) String() string {
	switch m {
	case MetricLatest:
		return "latest"
	case MetricMean:
		return "mean"
	default:
		return "unknown"
	}
}

// Severity orders impacts for theming; higher is worse.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityModerate
	SeverityElevated
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityModerate:
		return "moderate"
	case SeverityElevated:
		return "elevated"
	case SeverityHigh:
		return "high"
	default:
		return "none"
	}
}

// BleachingThreshold is the fixed coral bleaching reference used by the
// built-in rule and the default chart. The user threshold does not move it.
const BleachingThreshold = 28.0

// Rule fires when its metric is strictly greater than Threshold.
type Rule struct {
	ID        string
	Title     string
	Detail    string
	Metric    Metric
	Threshold float64
	Severity  Severity
}

func (r Rule) Triggered(latest, mean float64) bool {
	switch r.Metric {
	case MetricLatest:
		return latest > r.Threshold
	case MetricMean:
		return mean > r.Threshold
	}
	return false
}

func (r Rule) Message() string {
	return r.Title + ": " + r.Detail
}

// BuiltinRules are evaluated in this order.
var BuiltinRules = []Rule{
	{
		ID:        "coral_bleaching",
		Title:     "Coral Bleaching",
		Detail:    "High risk due to temperatures exceeding 28°C.",
		Metric:    MetricLatest,
		Threshold: BleachingThreshold,
		Severity:  SeverityHigh,
	},
	{
		ID:        "sea_level_rise",
		Title:     "Sea Level Rise",
		Detail:    "Accelerated due to thermal expansion and ice melt.",
		Metric:    MetricLatest,
		Threshold: 27.5,
		Severity:  SeverityElevated,
	},
	{
		ID:        "ecosystem_stress",
		Title:     "Marine Ecosystem Stress",
		Detail:    "Increased stress on fish and plankton populations.",
		Metric:    MetricMean,
		Threshold: 26.5,
		Severity:  SeverityModerate,
	},
}
