package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/lox/seatemp/internal/api"
	"github.com/lox/seatemp/internal/chart"
	"github.com/lox/seatemp/internal/config"
	"github.com/lox/seatemp/internal/htmlutil"
	"github.com/lox/seatemp/internal/logging"
	"github.com/lox/seatemp/internal/models"
	"github.com/lox/seatemp/internal/series"
)

type CLI struct {
	config.Config `embed:""`

	Serve  ServeCmd  `cmd:"" default:"1" help:"Serve the dashboard over HTTP."`
	Report ReportCmd `cmd:"" help:"Print the impact report as plain text."`
	Chart  ChartCmd  `cmd:"" help:"Write both charts to a directory."`
}

// App carries the resources shared by every command.
type App struct {
	Ctx    context.Context
	Config *config.Config
	Log    logrus.FieldLogger
	Out    io.Writer
}

func (a *App) server() *api.Server {
	return api.NewServer(api.Options{
		Addr:            a.Config.Addr,
		Series:          a.Config.Series.Config(),
		Logger:          a.Log,
		Clock:           clockwork.NewRealClock(),
		ShutdownTimeout: a.Config.ShutdownTimeout,
	})
}

type ServeCmd struct{}

func (c *ServeCmd) Run(app *App) error {
	return app.server().Run(app.Ctx)
}

type ReportCmd struct {
	Threshold float64 `help:"Custom threshold (°C), clamped to 26.0-30.0." default:"28.0"`
}

func (c *ReportCmd) Run(app *App) error {
	var buf bytes.Buffer
	if err := app.server().RenderReport(&buf, models.NewThresholdSetting(c.Threshold)); err != nil {
		return err
	}
	_, err := io.WriteString(app.Out, htmlutil.ToText(buf.String()))
	return err
}

type ChartCmd struct {
	Out       string  `help:"Output directory." default:"." type:"path"`
	Threshold float64 `help:"Custom threshold (°C), clamped to 26.0-30.0." default:"28.0"`
	Format    string  `help:"Image format." default:"png" enum:"png,svg"`
}

func (c *ChartCmd) Run(app *App) error {
	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	ts := series.Generate(app.Config.Series.Config())
	threshold := models.NewThresholdSetting(c.Threshold)

	charts := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"default", func() ([]byte, error) { return chart.Default(ts, c.Format) }},
		{"custom", func() ([]byte, error) { return chart.Custom(ts, threshold, c.Format) }},
	}
	for _, ch := range charts {
		data, err := ch.render()
		if err != nil {
			return fmt.Errorf("render %s chart: %w", ch.name, err)
		}
		path := filepath.Join(c.Out, ch.name+"."+c.Format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		app.Log.WithFields(logrus.Fields{"chart": ch.name, "path": path, "bytes": len(data)}).Info("chart written")
	}
	return nil
}

func main() {
	if err := config.LoadDotenv(config.EnvFile(os.Args[1:])); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("seatemp"),
		kong.Description("Ocean temperature impact visualizer."),
		kong.UsageOnError(),
		config.Vars(),
	)

	logger, closer, err := logging.New(logging.Options{
		Level:  cli.LogLevel,
		Format: cli.LogFormat,
		File:   cli.LogFile,
	}, os.Stderr)
	kctx.FatalIfErrorf(err)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &App{Ctx: ctx, Config: &cli.Config, Log: logger, Out: os.Stdout}
	if err := kctx.Run(app); err != nil {
		logger.WithError(err).WithField("command", kctx.Command()).Fatal("command failed")
	}
}
