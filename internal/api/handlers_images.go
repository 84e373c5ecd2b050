package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/lox/seatemp/internal/chart"
	"github.com/lox/seatemp/internal/httputil"
	"github.com/lox/seatemp/internal/imagegen"
	"github.com/lox/seatemp/internal/metrics"
	"github.com/lox/seatemp/internal/models"
	"github.com/lox/seatemp/internal/series"
	"github.com/lox/seatemp/internal/theme"
)

// chartFormat reads ?format=, defaulting to PNG.
func chartFormat(r *http.Request) (string, error) {
	format := r.URL.Query().Get("format")
	if format == "" {
		return chart.FormatPNG, nil
	}
	if !chart.ValidFormat(format) {
		return "", fmt.Errorf("unsupported chart format %q", format)
	}
	return format, nil
}

func (s *Server) handleDefaultChart(w http.ResponseWriter, r *http.Request) {
	format, err := chartFormat(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := s.clock.Now()
	data, err := chart.Default(series.Generate(s.cfg), format)
	metrics.ChartRenderLatency.WithLabelValues("default", format).Observe(s.clock.Since(start).Seconds())
	if err != nil {
		httputil.Logger(r.Context(), s.log).WithError(err).Error("render default chart")
		http.Error(w, "Chart rendering failed", http.StatusInternalServerError)
		return
	}
	serveImage(w, chart.ContentType(format), data)
}

func (s *Server) handleCustomChart(w http.ResponseWriter, r *http.Request) {
	threshold, err := parseThreshold(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	format, err := chartFormat(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := s.clock.Now()
	data, err := chart.Custom(series.Generate(s.cfg), threshold, format)
	metrics.ChartRenderLatency.WithLabelValues("custom", format).Observe(s.clock.Since(start).Seconds())
	if err != nil {
		httputil.Logger(r.Context(), s.log).WithError(err).WithField("threshold", threshold.Value).Error("render custom chart")
		http.Error(w, "Chart rendering failed", http.StatusInternalServerError)
		return
	}
	serveImage(w, chart.ContentType(format), data)
}

// handleOGImage serves the share card for link previews.
func (s *Server) handleOGImage(w http.ResponseWriter, r *http.Request) {
	_, a := s.snapshot(models.DefaultThreshold())
	palette := theme.ForSeverity(a.Severity)

	headline := "No significant impacts detected"
	if len(a.Impacts) > 0 {
		headline = a.Impacts[0].Rule.Title + " risk"
	}

	data, err := imagegen.GenerateCard(imagegen.CardData{
		Temperature: a.Latest.Temperature,
		Year:        a.Latest.Year,
		Headline:    headline,
		Background:  palette.Background,
		Accent:      palette.Accent,
	})
	if err != nil {
		httputil.Logger(r.Context(), s.log).WithError(err).Error("generate share card")
		http.Error(w, "Image generation failed", http.StatusInternalServerError)
		return
	}
	serveImage(w, "image/png", data)
}

func serveImage(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}
