package imagegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontLarge   font.Face
	fontRegular font.Face
	fontOnce    sync.Once
	fontErr     error
)

func loadFonts() {
	fontOnce.Do(func() {
		regularFont, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse Go Regular: %w", err)
			return
		}
		fontRegular, err = opentype.NewFace(regularFont, &opentype.FaceOptions{
			Size:    36,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fontErr = fmt.Errorf("create regular face: %w", err)
			return
		}

		// Medium weight for the large temperature figure
		mediumFont, err := opentype.Parse(gomedium.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse Go Medium: %w", err)
			return
		}
		fontLarge, err = opentype.NewFace(mediumFont, &opentype.FaceOptions{
			Size:    120,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fontErr = fmt.Errorf("create large face: %w", err)
			return
		}
	})
}

// CardWidth and CardHeight are the standard Open Graph image dimensions.
const (
	CardWidth  = 1200
	CardHeight = 630
)

// CardData contains the dynamic text for the share card.
type CardData struct {
	Temperature float64 // latest annual temperature in Celsius
	Year        int
	Headline    string // first impact title, or a calm message
	Background  string // hex colours from the active palette
	Accent      string
}

// GenerateCard renders a share card for the dashboard as PNG.
func GenerateCard(data CardData) ([]byte, error) {
	loadFonts()
	if fontErr != nil {
		return nil, fmt.Errorf("load fonts: %w", fontErr)
	}

	img := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
	drawGradient(img, parseHex(data.Background, color.RGBA{20, 20, 40, 255}))
	drawAccentBar(img, parseHex(data.Accent, color.RGBA{79, 195, 247, 255}))
	drawTextOverlay(img, data)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode card: %w", err)
	}
	return buf.Bytes(), nil
}

// drawGradient fills the card, darkening base towards the bottom.
func drawGradient(img *image.RGBA, base color.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		progress := float64(y) / float64(bounds.Dy())
		shade := 1 - progress*0.5
		c := color.RGBA{
			R: uint8(float64(base.R) * shade),
			G: uint8(float64(base.G) * shade),
			B: uint8(float64(base.B) * shade),
			A: 255,
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawAccentBar(img *image.RGBA, accent color.RGBA) {
	for y := 0; y < 12; y++ {
		for x := 0; x < CardWidth; x++ {
			img.SetRGBA(x, y, accent)
		}
	}
}

func drawTextOverlay(img *image.RGBA, data CardData) {
	white := color.RGBA{255, 255, 255, 255}
	lightGray := color.RGBA{200, 200, 200, 255}

	drawText(img, fmt.Sprintf("%.1f°C", data.Temperature), 60, CardHeight-260, white, fontLarge)
	if data.Year != 0 {
		drawText(img, fmt.Sprintf("Sea surface temperature, %d", data.Year), 60, CardHeight-180, lightGray, fontRegular)
	}
	if data.Headline != "" {
		drawText(img, data.Headline, 60, CardHeight-110, white, fontRegular)
	}
	drawText(img, "Ocean Temperature Impact Visualizer", 60, CardHeight-40, lightGray, fontRegular)
}

func drawText(img *image.RGBA, text string, x, y int, col color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// parseHex reads "#rrggbb", returning fallback for anything else.
func parseHex(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
