package api

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/lox/seatemp/internal/impact"
	"github.com/lox/seatemp/internal/models"
	"github.com/lox/seatemp/internal/series"
	"github.com/lox/seatemp/internal/theme"
)

const (
	siteTitle = "Ocean Temperature Impact Visualizer"
	tableRows = 10
)

// DashboardData is the view model for the index page and the text report.
type DashboardData struct {
	Title       string
	Period      string
	StartYear   int
	EndYear     int
	Palette     theme.Palette
	Impacts     []ImpactView
	Fallback    string
	Latest      models.Reading
	HasData     bool
	Mean        float64
	Slider      SliderData
	Custom      CustomData
	Table       []models.Reading
	GeneratedAt time.Time
}

// ImpactView is one triggered impact as shown on the page.
type ImpactView struct {
	ID       string
	Title    string
	Detail   string
	Severity string
}

// SliderData drives the threshold range input.
type SliderData struct {
	Min   float64
	Max   float64
	Step  float64
	Value float64
}

// CustomData is the "Custom Threshold Analysis" section, rendered on its own
// by the partial endpoint.
type CustomData struct {
	Threshold  float64
	ChartURL   string
	YearsAbove []int
	TotalYears int
}

func (s *Server) buildDashboard(threshold models.ThresholdSetting) DashboardData {
	ts, a := s.snapshot(threshold)

	data := DashboardData{
		Title:     siteTitle,
		StartYear: s.cfg.StartYear,
		EndYear:   s.cfg.EndYear,
		Period:    fmt.Sprintf("%d–%d", s.cfg.StartYear, s.cfg.EndYear),
		Palette:   theme.ForSeverity(a.Severity),
		Latest:    a.Latest,
		HasData:   a.HasData,
		Mean:      a.Mean,
		Slider: SliderData{
			Min:   models.ThresholdMin,
			Max:   models.ThresholdMax,
			Step:  models.ThresholdStep,
			Value: threshold.Value,
		},
		Custom:      buildCustom(ts, a),
		Table:       series.Tail(ts, tableRows),
		GeneratedAt: s.clock.Now().UTC(),
	}
	for _, imp := range a.Impacts {
		data.Impacts = append(data.Impacts, ImpactView{
			ID:       imp.Rule.ID,
			Title:    imp.Rule.Title,
			Detail:   imp.Rule.Detail,
			Severity: imp.Rule.Severity.String(),
		})
	}
	if len(data.Impacts) == 0 {
		data.Fallback = impact.FallbackMessage
	}
	return data
}

func buildCustom(ts models.TemperatureSeries, a impact.Assessment) CustomData {
	return CustomData{
		Threshold:  a.Threshold.Value,
		ChartURL:   customChartURL(a.Threshold),
		YearsAbove: a.YearsAbove,
		TotalYears: ts.Len(),
	}
}

func customChartURL(t models.ThresholdSetting) string {
	q := url.Values{}
	q.Set("threshold", strconv.FormatFloat(t.Value, 'f', 1, 64))
	return "/chart/custom.png?" + q.Encode()
}
