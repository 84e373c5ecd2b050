package api

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/lox/seatemp/internal/httputil"
	"github.com/lox/seatemp/internal/metrics"
	"github.com/lox/seatemp/internal/models"
)

// parseThreshold reads ?threshold=. A missing value selects the default and
// an out-of-range one is clamped onto the slider grid.
func parseThreshold(r *http.Request) (models.ThresholdSetting, error) {
	raw := r.URL.Query().Get("threshold")
	if raw == "" {
		return models.DefaultThreshold(), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return models.ThresholdSetting{}, fmt.Errorf("invalid threshold %q", raw)
	}
	return models.NewThresholdSetting(v), nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	threshold, err := parseThreshold(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := s.buildDashboard(threshold)
	metrics.RendersTotal.WithLabelValues("page").Inc()
	metrics.ImpactsDetected.WithLabelValues("page").Set(float64(len(data.Impacts)))
	s.render(w, r, "index.html", data)
}

func (s *Server) handleCustomPartial(w http.ResponseWriter, r *http.Request) {
	threshold, err := parseThreshold(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ts, a := s.snapshot(threshold)
	metrics.RendersTotal.WithLabelValues("partial").Inc()
	s.render(w, r, "custom", buildCustom(ts, a))
}

// render executes a template into a buffer so a failure can still be
// reported with a 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		httputil.Logger(r.Context(), s.log).WithError(err).WithField("template", name).Error("render template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	buf.WriteTo(w)
}

// RenderReport writes the HTML report for threshold to w. The CLI converts
// it to plain text.
func (s *Server) RenderReport(w io.Writer, threshold models.ThresholdSetting) error {
	data := s.buildDashboard(threshold)
	metrics.RendersTotal.WithLabelValues("report").Inc()
	metrics.ImpactsDetected.WithLabelValues("report").Set(float64(len(data.Impacts)))
	if err := s.tmpl.ExecuteTemplate(w, "report.html", data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
