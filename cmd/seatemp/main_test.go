package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/seatemp/internal/config"
	"github.com/lox/seatemp/internal/impact"
	"github.com/lox/seatemp/internal/series"
)

func testApp(t *testing.T, cfg series.Config) (*App, *bytes.Buffer) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	var out bytes.Buffer
	c := &config.Config{
		Addr: ":0",
		Series: config.Series{
			StartYear:       cfg.StartYear,
			EndYear:         cfg.EndYear,
			Seed:            cfg.Seed,
			BaseTemperature: cfg.BaseTemperature,
			WarmingRate:     cfg.WarmingRatePerYear,
			NoiseStdDev:     cfg.NoiseStdDev,
		},
	}
	return &App{Ctx: context.Background(), Config: c, Log: logger, Out: &out}, &out
}

func TestReportCmd_NoImpacts(t *testing.T) {
	cfg := series.DefaultConfig()
	cfg.NoiseStdDev = 0
	app, out := testApp(t, cfg)

	require.NoError(t, (&ReportCmd{Threshold: 27}).Run(app))

	text := out.String()
	assert.Contains(t, text, "OCEAN TEMPERATURE IMPACT VISUALIZER")
	assert.Contains(t, text, impact.FallbackMessage)
	assert.Contains(t, text, "Custom threshold 27.0°C")
	assert.Contains(t, text, "2016: 26.72°C")
	assert.Contains(t, text, "2025: 26.90°C")
	assert.NotContains(t, text, "<p>")
	assert.NotContains(t, text, "2015: ")
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestReportCmd_ClampsThreshold(t *testing.T) {
	app, out := testApp(t, series.DefaultConfig())

	require.NoError(t, (&ReportCmd{Threshold: 45}).Run(app))
	assert.Contains(t, out.String(), "Custom threshold 30.0°C")
}

func TestChartCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	app, _ := testApp(t, series.DefaultConfig())

	require.NoError(t, (&ChartCmd{Out: dir, Threshold: 27.5, Format: "svg"}).Run(app))

	def, err := os.ReadFile(filepath.Join(dir, "default.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(def), "Coral Bleaching Threshold (28°C)")

	custom, err := os.ReadFile(filepath.Join(dir, "custom.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(custom), "Custom Threshold (27.5°C)")
}
