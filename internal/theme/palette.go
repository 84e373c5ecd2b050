package theme

import "github.com/lox/seatemp/internal/impact"

// Palette defines the page colour scheme for an impact severity.
type Palette struct {
	// Background is the main page background color
	Background string
	// Card is the background for cards/panels
	Card string
	// CardBorder is an optional border/highlight for cards
	CardBorder string
	// Text is the primary text color
	Text string
	// TextMuted is the secondary/muted text color
	TextMuted string
	// Accent is the primary accent color (links, slider)
	Accent string
	// Alert colours the impact list markers
	Alert string
	// Name is used as a CSS class on the page body
	Name string
}

// DefaultPalette is the calm ocean theme used when nothing is triggered.
var DefaultPalette = Palette{
	Background: "#0b1d2a",
	Card:       "#12293a",
	CardBorder: "#1f4058",
	Text:       "#e8f1f7",
	TextMuted:  "#7f98aa",
	Accent:     "#4fc3f7",
	Alert:      "#81c784",
	Name:       "calm",
}

var palettes = map[impact.Severity]Palette{
	impact.SeverityModerate: {
		Background: "#13222a",
		Card:       "#1b3038",
		CardBorder: "#2e4a52",
		Text:       "#eef3f0",
		TextMuted:  "#8aa09a",
		Accent:     "#4dd0c8",
		Alert:      "#ffd54f",
		Name:       "watch",
	},
	impact.SeverityElevated: {
		Background: "#221d18", // warm dark
		Card:       "#30281f",
		CardBorder: "#4a3c2c",
		Text:       "#fff4e6",
		TextMuted:  "#a8927a",
		Accent:     "#ffaa66",
		Alert:      "#ff8a3d",
		Name:       "warning",
	},
	impact.SeverityHigh: {
		Background: "#2a1414",
		Card:       "#3a1d1d",
		CardBorder: "#5c2a2a",
		Text:       "#fff0f0",
		TextMuted:  "#b08888",
		Accent:     "#ff7043",
		Alert:      "#ff3b30",
		Name:       "alert",
	},
}

// ForSeverity returns the palette for the worst triggered impact.
func ForSeverity(s impact.Severity) Palette {
	if p, ok := palettes[s]; ok {
		return p
	}
	return DefaultPalette
}
