package stylize

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Palette indices of the two-colour output produced by Dither and Posterize.
const (
	InkIndex   = 0 // "black": dark pixels and halftone dots
	PaperIndex = 1 // "white": light pixels and halftone background
)

// Duotone is the pair of colours a rendering is printed with.
//
// The transforms decide per pixel between "black" and "white"; Ink is used
// for black and Paper for white. The zero Duotone is treated as the default,
// true black on true white.
type Duotone struct {
	Ink   colorful.Color
	Paper colorful.Color
}

func (d Duotone) orDefault() Duotone {
	if d == (Duotone{}) {
		return DefaultDuotone()
	}
	return d
}

// DefaultDuotone returns black ink on white paper.
func DefaultDuotone() Duotone {
	return Duotone{
		Ink:   colorful.Color{R: 0, G: 0, B: 0},
		Paper: colorful.Color{R: 1, G: 1, B: 1},
	}
}

// ParseDuotone parses ink and paper colours with ParseColor. An empty string
// keeps the default for that colour.
func ParseDuotone(ink, paper string) (Duotone, error) {
	d := DefaultDuotone()
	if ink != "" {
		c, err := ParseColor(ink)
		if err != nil {
			return d, fmt.Errorf("ink: %w", err)
		}
		d.Ink = c
	}
	if paper != "" {
		c, err := ParseColor(paper)
		if err != nil {
			return d, fmt.Errorf("paper: %w", err)
		}
		d.Paper = c
	}
	return d, nil
}

// ParseColor accepts "#RRGGBB", "#RGB" or an SVG 1.1 colour keyword such as
// "navy" or "ivory" (case-insensitive).
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		// colorful.Hex scans leniently, so "#12345" would otherwise parse.
		if len(s) != 4 && len(s) != 7 {
			return colorful.Color{}, &ParamError{Name: "color", Value: s, Reason: "expected #RRGGBB or #RGB"}
		}
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return colorful.Color{}, &ParamError{Name: "color", Value: s, Reason: "expected #RRGGBB or #RGB"}
		}
		return c, nil
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c, nil
	}
	return colorful.Color{}, &ParamError{Name: "color", Value: s, Reason: "unknown colour name"}
}

// InkRGBA returns the ink colour as opaque 8-bit RGBA.
func (d Duotone) InkRGBA() color.RGBA { return toRGBA(d.Ink) }

// PaperRGBA returns the paper colour as opaque 8-bit RGBA.
func (d Duotone) PaperRGBA() color.RGBA { return toRGBA(d.Paper) }

// Palette returns the two-entry palette indexed by InkIndex and PaperIndex.
func (d Duotone) Palette() color.Palette {
	return color.Palette{d.InkRGBA(), d.PaperRGBA()}
}

func (d Duotone) String() string {
	return d.Ink.Clamped().Hex() + "/" + d.Paper.Clamped().Hex()
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
