// Package theme resolves the light/dark/system preference into a palette.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the user's theme preference.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"
)

// ErrUnknownMode is returned by Parse for anything but light, dark or system.
var ErrUnknownMode = errors.New("unknown theme")

// Modes lists the preferences in the order the switch shows them.
func Modes() []Mode {
	return []Mode{Light, Dark, System}
}

// Label is the switch caption for m.
func (m Mode) Label() string {
	switch m {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return "System"
	}
}

// Icon is a one-cell glyph for m.
func (m Mode) Icon() string {
	switch m {
	case Light:
		return "☀"
	case Dark:
		return "☾"
	default:
		return "◐"
	}
}

// Parse normalizes a stored preference. Empty input means System.
func Parse(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", System:
		return System, nil
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w %q (want light, dark or system)", ErrUnknownMode, value)
	}
}

// Next cycles light → dark → system → light.
func (m Mode) Next() Mode {
	modes := Modes()
	for i, candidate := range modes {
		if candidate == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return System
}

// IsDark resolves m against the terminal. hasDarkBackground is only consulted
// for System.
func (m Mode) IsDark(hasDarkBackground func() bool) bool {
	switch m {
	case Dark:
		return true
	case Light:
		return false
	default:
		if hasDarkBackground == nil {
			return true
		}
		return hasDarkBackground()
	}
}

// DetectDark queries the terminal background through lipgloss.
func DetectDark() bool {
	return lipgloss.HasDarkBackground()
}

// Palette is the resolved set of colors for one appearance.
type Palette struct {
	Dark      bool
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Subtle    lipgloss.Color
	Accent    lipgloss.Color
	Highlight lipgloss.Color
	Border    lipgloss.Color
	Award     lipgloss.Color
	Backdrop  lipgloss.Color
}

// PaletteFor returns the zinc-toned palette for a dark or light appearance.
func PaletteFor(dark bool) Palette {
	if dark {
		return Palette{
			Dark:      true,
			Text:      lipgloss.Color("254"),
			Muted:     lipgloss.Color("248"),
			Subtle:    lipgloss.Color("242"),
			Accent:    lipgloss.Color("255"),
			Highlight: lipgloss.Color("237"),
			Border:    lipgloss.Color("239"),
			Award:     lipgloss.Color("214"),
			Backdrop:  lipgloss.Color("235"),
		}
	}
	return Palette{
		Dark:      false,
		Text:      lipgloss.Color("234"),
		Muted:     lipgloss.Color("241"),
		Subtle:    lipgloss.Color("245"),
		Accent:    lipgloss.Color("232"),
		Highlight: lipgloss.Color("254"),
		Border:    lipgloss.Color("252"),
		Award:     lipgloss.Color("166"),
		Backdrop:  lipgloss.Color("253"),
	}
}

// GlamourStyle is the standard glamour style matching the appearance.
func (p Palette) GlamourStyle() string {
	if p.Dark {
		return "dark"
	}
	return "light"
}
