// ABOUTME: RenderedArtifact domain model represents a generated label image and its parameters
// ABOUTME: Provides render options with defaults and RGB color parsing for symbol rendering

package domain

import (
	"fmt"
	"strings"
	"time"
)

// Default render parameters for label symbols.
const (
	// DefaultSymbolWidth is the rendered image width and height in pixels
	DefaultSymbolWidth = 200

	// DefaultQuietZone is the blank border around the symbol, in modules
	DefaultQuietZone = 2
)

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as an uppercase "#RRGGBB" string
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor parses a "#RRGGBB" string (the leading '#' is optional)
func ParseHexColor(s string) (RGBColor, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: expected 6 hex digits", s)
	}

	var c RGBColor
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

// RenderOptions holds the parameters for rendering a label symbol
type RenderOptions struct {
	// Width is the image width and height in pixels
	Width int

	// Margin is the quiet zone around the symbol, in modules
	Margin int

	// Foreground is the module color
	Foreground RGBColor

	// Background is the canvas color
	Background RGBColor
}

// DefaultRenderOptions returns the standard rendering parameters:
// 200x200 pixels, a 2-module quiet zone, pure black on pure white.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:      DefaultSymbolWidth,
		Margin:     DefaultQuietZone,
		Foreground: RGBColor{R: 0, G: 0, B: 0},
		Background: RGBColor{R: 255, G: 255, B: 255},
	}
}

// Normalized returns a copy with unusable values replaced by defaults.
// A non-positive width or negative margin falls back to the default; an
// identical foreground/background pair falls back to black on white.
func (o RenderOptions) Normalized() RenderOptions {
	defaults := DefaultRenderOptions()

	if o.Width <= 0 {
		o.Width = defaults.Width
	}
	if o.Margin < 0 {
		o.Margin = defaults.Margin
	}
	if o.Foreground == o.Background {
		o.Foreground = defaults.Foreground
		o.Background = defaults.Background
	}

	return o
}

// RenderedArtifact is the result of one render invocation. Each invocation
// produces its own artifact; a new render for the same article supersedes
// the previous artifact rather than mutating it.
type RenderedArtifact struct {
	// RenderID uniquely identifies this render invocation
	RenderID string

	// ArticleID is the identity token of the source article. Callers use it
	// to discard results that arrive after the article selection changed.
	ArticleID string

	// DataURI is the raster image as a self-contained data URI
	DataURI string

	// ContentType is the media type of the embedded image
	ContentType string

	// Width, Margin, Foreground and Background are the parameters the
	// artifact was rendered with
	Width      int
	Margin     int
	Foreground RGBColor
	Background RGBColor

	// RenderedAt is when the render completed
	RenderedAt time.Time
}
