package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lox/seatemp/internal/impact"
	"github.com/lox/seatemp/internal/models"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Chart canvas size, matching a 10x6 inch figure.
const (
	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch
)

var (
	SeriesColor    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	BleachingColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	CustomColor    = color.RGBA{R: 255, G: 165, B: 0, A: 255}
)

// Reference is a horizontal dashed line drawn across the series.
type Reference struct {
	Value float64
	Label string
	Color color.Color
}

type Options struct {
	Title  string
	Format string // FormatPNG when empty
}

// ContentType returns the MIME type for a chart format.
func ContentType(format string) string {
	if format == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// ValidFormat reports whether format is one Render can produce.
func ValidFormat(format string) bool {
	return format == "" || format == FormatPNG || format == FormatSVG
}

// Default renders the trend with the fixed coral bleaching line at 28°C.
func Default(s models.TemperatureSeries, format string) ([]byte, error) {
	return Render(s, Reference{
		Value: impact.BleachingThreshold,
		Label: fmt.Sprintf("Coral Bleaching Threshold (%s°C)", strconv.FormatFloat(impact.BleachingThreshold, 'f', -1, 64)),
		Color: BleachingColor,
	}, Options{Title: "Simulated Ocean Temperature Trend", Format: format})
}

// Custom renders the trend with the user's threshold line.
func Custom(s models.TemperatureSeries, threshold models.ThresholdSetting, format string) ([]byte, error) {
	return Render(s, Reference{
		Value: threshold.Value,
		Label: fmt.Sprintf("Custom Threshold (%.1f°C)", threshold.Value),
		Color: CustomColor,
	}, Options{Title: "Temperature with Custom Threshold", Format: format})
}

// Render draws the series as a line with a dashed reference line and
// returns the encoded image.
func Render(s models.TemperatureSeries, ref Reference, opts Options) ([]byte, error) {
	format := opts.Format
	if format == "" {
		format = FormatPNG
	}
	if !ValidFormat(format) {
		return nil, fmt.Errorf("unsupported chart format %q", format)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Temperature (°C)"
	p.X.Tick.Marker = yearTicks{step: 5}
	p.Add(plotter.NewGrid())

	if first, last, ok := s.Span(); ok {
		pts := make(plotter.XYs, 0, s.Len())
		for _, r := range s.Readings() {
			pts = append(pts, plotter.XY{X: float64(r.Year), Y: r.Temperature})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("series line: %w", err)
		}
		line.Color = SeriesColor
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add("Sea Surface Temperature", line)

		refLine, err := plotter.NewLine(plotter.XYs{
			{X: float64(first), Y: ref.Value},
			{X: float64(last), Y: ref.Value},
		})
		if err != nil {
			return nil, fmt.Errorf("reference line: %w", err)
		}
		refLine.Color = ref.Color
		refLine.LineStyle.Width = vg.Points(1.5)
		refLine.LineStyle.DashArray = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(refLine)
		p.Legend.Add(ref.Label, refLine)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = vg.Points(10)

	writer, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return nil, fmt.Errorf("create %s writer: %w", format, err)
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// yearTicks puts a tick on every whole year and labels multiples of step.
type yearTicks struct {
	step int
}

func (t yearTicks) Ticks(min, max float64) []plot.Tick {
	lo, hi := int(math.Ceil(min)), int(math.Floor(max))
	var ticks []plot.Tick
	for y := lo; y <= hi; y++ {
		tick := plot.Tick{Value: float64(y)}
		if y%t.step == 0 {
			tick.Label = strconv.Itoa(y)
		}
		ticks = append(ticks, tick)
	}
	return ticks
}
