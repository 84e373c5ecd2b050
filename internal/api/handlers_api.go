package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lox/seatemp/internal/httputil"
	"github.com/lox/seatemp/internal/impact"
	"github.com/lox/seatemp/internal/models"
	"github.com/lox/seatemp/internal/series"
)

const maxTableRows = 1000

// ImpactJSON is one triggered impact in the /api/impacts response.
type ImpactJSON struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Detail    string  `json:"detail"`
	Message   string  `json:"message"`
	Metric    string  `json:"metric"`
	Threshold float64 `json:"threshold"`
	Value     float64 `json:"value"`
	Severity  string  `json:"severity"`
}

// ImpactsResponse is the /api/impacts payload.
type ImpactsResponse struct {
	Threshold  float64         `json:"threshold"`
	Latest     *models.Reading `json:"latest,omitempty"`
	Mean       float64         `json:"mean"`
	Severity   string          `json:"severity"`
	Impacts    []ImpactJSON    `json:"impacts"`
	Messages   []string        `json:"messages"`
	YearsAbove []int           `json:"years_above"`
}

func (s *Server) handleAPISeries(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, series.Generate(s.cfg))
}

func (s *Server) handleAPIImpacts(w http.ResponseWriter, r *http.Request) {
	threshold, err := parseThreshold(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, a := s.snapshot(threshold)
	resp := ImpactsResponse{
		Threshold:  a.Threshold.Value,
		Mean:       a.Mean,
		Severity:   a.Severity.String(),
		Impacts:    make([]ImpactJSON, 0, len(a.Impacts)),
		Messages:   a.Messages(),
		YearsAbove: a.YearsAbove,
	}
	if a.HasData {
		latest := a.Latest
		resp.Latest = &latest
	}
	if resp.YearsAbove == nil {
		resp.YearsAbove = []int{}
	}
	for _, imp := range a.Impacts {
		resp.Impacts = append(resp.Impacts, impactJSON(imp))
	}
	s.writeJSON(w, r, resp)
}

func impactJSON(imp impact.Impact) ImpactJSON {
	return ImpactJSON{
		ID:        imp.Rule.ID,
		Title:     imp.Rule.Title,
		Detail:    imp.Rule.Detail,
		Message:   imp.String(),
		Metric:    imp.Rule.Metric.String(),
		Threshold: imp.Rule.Threshold,
		Value:     imp.Value,
		Severity:  imp.Rule.Severity.String(),
	}
}

func (s *Server) handleAPITable(w http.ResponseWriter, r *http.Request) {
	rows := tableRows
	if raw := r.URL.Query().Get("rows"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTableRows {
			http.Error(w, "rows must be an integer between 1 and 1000", http.StatusBadRequest)
			return
		}
		rows = n
	}

	readings := series.Tail(series.Generate(s.cfg), rows)
	if readings == nil {
		readings = []models.Reading{}
	}
	s.writeJSON(w, r, readings)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		httputil.Logger(r.Context(), s.log).WithError(err).Warn("encode response")
	}
}
