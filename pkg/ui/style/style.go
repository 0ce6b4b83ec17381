// Package style picks page styles suited to the terminal's color support.
package style

import (
	"github.com/muesli/termenv"

	"github.com/odvcencio/panekit/pkg/ui/backend"
)

// Palette holds the styles pages and widgets draw with.
type Palette struct {
	Primary   backend.Style
	Secondary backend.Style
	Highlight backend.Style
}

// Monochrome uses the terminal's own colors and marks highlights with
// reverse video only.
func Monochrome() Palette {
	return Palette{
		Primary:   backend.DefaultStyle(),
		Secondary: backend.DefaultStyle(),
		Highlight: backend.DefaultStyle().Reverse(true),
	}
}

// ForProfile returns the palette for a color profile.
func ForProfile(p termenv.Profile) Palette {
	switch p {
	case termenv.Ascii:
		return Monochrome()
	case termenv.TrueColor:
		return Palette{
			Primary:   backend.DefaultStyle().Foreground(backend.ColorRGB(0xe6, 0xe6, 0xe6)).Background(backend.ColorRGB(0x1f, 0x2a, 0x44)),
			Secondary: backend.DefaultStyle().Foreground(backend.ColorRGB(0x9e, 0xe4, 0x93)).Background(backend.ColorRGB(0x12, 0x12, 0x12)),
			Highlight: backend.DefaultStyle().Foreground(backend.ColorRGB(0x1f, 0x2a, 0x44)).Background(backend.ColorRGB(0xf2, 0xc1, 0x4e)),
		}
	default:
		return Palette{
			Primary:   backend.DefaultStyle().Foreground(backend.ColorWhite).Background(backend.ColorBlue),
			Secondary: backend.DefaultStyle().Foreground(backend.ColorGreen).Background(backend.ColorBlack),
			Highlight: backend.DefaultStyle().Foreground(backend.ColorBlack).Background(backend.ColorYellow),
		}
	}
}

// Detect reads NO_COLOR and the environment's color profile.
func Detect() Palette {
	if termenv.EnvNoColor() {
		return Monochrome()
	}
	return ForProfile(termenv.EnvColorProfile())
}
