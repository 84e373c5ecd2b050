package api

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/lox/seatemp/internal/httputil"
	"github.com/lox/seatemp/internal/impact"
	"github.com/lox/seatemp/internal/models"
	"github.com/lox/seatemp/internal/series"
)

// Options configures a Server. Zero values fall back to sensible defaults.
type Options struct {
	Addr            string
	Series          series.Config
	Logger          logrus.FieldLogger
	Clock           clockwork.Clock
	ShutdownTimeout time.Duration
}

type Server struct {
	addr            string
	cfg             series.Config
	log             logrus.FieldLogger
	clock           clockwork.Clock
	shutdownTimeout time.Duration
	tmpl            *template.Template
}

func NewServer(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	return &Server{
		addr:            opts.Addr,
		cfg:             opts.Series,
		log:             opts.Logger,
		clock:           opts.Clock,
		shutdownTimeout: opts.ShutdownTimeout,
		tmpl:            newTemplates(),
	}
}

// routes lists every registered path, used to keep the metrics label set
// bounded.
var routes = map[string]bool{
	"/":                  true,
	"/partials/custom":   true,
	"/chart/default.png": true,
	"/chart/custom.png":  true,
	"/og-image.png":      true,
	"/api/series":        true,
	"/api/impacts":       true,
	"/api/table":         true,
	"/health":            true,
	"/metrics":           true,
}

func routeLabel(r *http.Request) string {
	if routes[r.URL.Path] {
		return r.URL.Path
	}
	return "other"
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/partials/custom", s.handleCustomPartial)
	mux.HandleFunc("/chart/default.png", s.handleDefaultChart)
	mux.HandleFunc("/chart/custom.png", s.handleCustomChart)
	mux.HandleFunc("/og-image.png", s.handleOGImage)
	mux.HandleFunc("/api/series", s.handleAPISeries)
	mux.HandleFunc("/api/impacts", s.handleAPIImpacts)
	mux.HandleFunc("/api/table", s.handleAPITable)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return httputil.Middleware(mux, s.log, s.clock, routeLabel)
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.WithError(err).Warn("shutdown")
		}
	}()

	s.log.WithField("addr", s.addr).Info("listening")
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// snapshot regenerates the series and assesses it against threshold. Nothing
// is cached between requests.
func (s *Server) snapshot(threshold models.ThresholdSetting) (models.TemperatureSeries, impact.Assessment) {
	ts := series.Generate(s.cfg)
	return ts, impact.Assess(ts, threshold)
}
