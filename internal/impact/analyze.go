package impact

import (
	"gonum.org/v1/gonum/stat"

	"github.com/lox/seatemp/internal/models"
)

// FallbackMessage is shown when no rule fires.
const FallbackMessage = "No significant impacts detected based on current temperature thresholds."

// Impact is a triggered rule together with the value that triggered it.
type Impact struct {
	Rule  Rule
	Value float64
}

func (i Impact) String() string {
	return i.Rule.Message()
}

// Mean returns the arithmetic mean temperature, or 0 for an empty series.
func Mean(s models.TemperatureSeries) float64 {
	if s.Empty() {
		return 0
	}
	return stat.Mean(s.Temperatures(), nil)
}

// Analyze evaluates BuiltinRules against s in order. Rules are independent;
// every rule that holds contributes one impact. An empty series yields none.
func Analyze(s models.TemperatureSeries) []Impact {
	return Evaluate(BuiltinRules, s)
}

// Evaluate runs an arbitrary rule set in the given order.
func Evaluate(rules []Rule, s models.TemperatureSeries) []Impact {
	latest, ok := s.Latest()
	if !ok {
		return nil
	}
	mean := Mean(s)

	var impacts []Impact
	for _, r := range rules {
		if !r.Triggered(latest.Temperature, mean) {
			continue
		}
		v := latest.Temperature
		if r.Metric == MetricMean {
			v = mean
		}
		impacts = append(impacts, Impact{Rule: r, Value: v})
	}
	return impacts
}

// Messages is Analyze reduced to display strings.
func Messages(s models.TemperatureSeries) []string {
	impacts := Analyze(s)
	msgs := make([]string, 0, len(impacts))
	for _, i := range impacts {
		msgs = append(msgs, i.String())
	}
	return msgs
}

func MaxSeverity(impacts []Impact) Severity {
	worst := SeverityNone
	for _, i := range impacts {
		if i.Rule.Severity > worst {
			worst = i.Rule.Severity
		}
	}
	return worst
}
