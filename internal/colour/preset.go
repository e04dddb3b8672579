package colour

import (
	"fmt"
	"strings"
)

// PresetScheme names a fixed palette that does not depend on any input.
type PresetScheme string

const (
	// PresetGradientGalaxy runs from midnight blue through violet to pink.
	PresetGradientGalaxy PresetScheme = "gradient_galaxy"

	// PresetNatureGreen is a set of green, olive and khaki tones.
	PresetNatureGreen PresetScheme = "nature_green"
)

var presets = map[PresetScheme][]RGB{
	PresetGradientGalaxy: {
		{R: 25, G: 25, B: 112},
		{R: 75, G: 0, B: 130},
		{R: 138, G: 43, B: 226},
		{R: 255, G: 192, B: 203},
		{R: 255, G: 20, B: 147},
	},
	PresetNatureGreen: {
		{R: 34, G: 139, B: 34},
		{R: 0, G: 128, B: 0},
		{R: 154, G: 205, B: 50},
		{R: 85, G: 107, B: 47},
		{R: 240, G: 230, B: 140},
	},
}

// ValidPresetSchemes returns all preset schemes in a stable order.
func ValidPresetSchemes() []PresetScheme {
	return []PresetScheme{PresetGradientGalaxy, PresetNatureGreen}
}

// ParsePresetScheme resolves a scheme name. Hyphens are accepted in place of
// underscores.
func ParsePresetScheme(name string) (PresetScheme, error) {
	scheme := PresetScheme(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	if _, ok := presets[scheme]; !ok {
		return "", fmt.Errorf("%w: unknown preset scheme: %q (valid schemes: %v)", ErrInvalidArgument, name, ValidPresetSchemes())
	}
	return scheme, nil
}

// String implements fmt.Stringer.
func (s PresetScheme) String() string {
	return string(s)
}

// Preset returns a copy of the scheme's palette. Unknown schemes fail with
// ErrInvalidArgument and no palette.
func Preset(scheme PresetScheme) (*Palette, error) {
	colours, ok := presets[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset scheme: %q (valid schemes: %v)", ErrInvalidArgument, string(scheme), ValidPresetSchemes())
	}
	return NewPalette(append([]RGB(nil), colours...)), nil
}
