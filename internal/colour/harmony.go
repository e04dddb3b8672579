package colour

import (
	"fmt"
	"strings"
)

// HarmonyRule names a fixed pattern of hue offsets relative to a seed colour.
type HarmonyRule string

const (
	// HarmonyComplementary pairs the seed with the opposite hue.
	HarmonyComplementary HarmonyRule = "complementary"

	// HarmonyTriadic spaces three hues roughly a third of a turn apart.
	HarmonyTriadic HarmonyRule = "triadic"

	// HarmonyAnalogous places one neighbour either side of the seed.
	HarmonyAnalogous HarmonyRule = "analogous"

	// HarmonySplitComplementary flanks the complement at ±0.1 turns.
	HarmonySplitComplementary HarmonyRule = "split_complementary"
)

// harmonyOffsets lists the hue offsets of each rule, seed first.
var harmonyOffsets = map[HarmonyRule][]float64{
	HarmonyComplementary:      {0, 0.5},
	HarmonyTriadic:            {0, 0.33, 0.67},
	HarmonyAnalogous:          {0, 0.08, -0.08},
	HarmonySplitComplementary: {0, 0.4, 0.6},
}

// ValidHarmonyRules returns all harmony rules in a stable order.
func ValidHarmonyRules() []HarmonyRule {
	return []HarmonyRule{
		HarmonyComplementary,
		HarmonyTriadic,
		HarmonyAnalogous,
		HarmonySplitComplementary,
	}
}

// ParseHarmonyRule resolves a rule name. Hyphens are accepted in place of
// underscores.
func ParseHarmonyRule(name string) (HarmonyRule, error) {
	rule := HarmonyRule(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	if _, ok := harmonyOffsets[rule]; !ok {
		return "", fmt.Errorf("%w: unknown harmony rule: %q (valid rules: %v)", ErrInvalidArgument, name, ValidHarmonyRules())
	}
	return rule, nil
}

// String implements fmt.Stringer.
func (r HarmonyRule) String() string {
	return string(r)
}

// Offsets returns the rule's hue offsets in output order.
func (r HarmonyRule) Offsets() ([]float64, error) {
	offsets, ok := harmonyOffsets[r]
	if !ok {
		return nil, fmt.Errorf("%w: unknown harmony rule: %q", ErrInvalidArgument, string(r))
	}
	return append([]float64(nil), offsets...), nil
}

// Harmonize applies rule to seed, holding saturation and value fixed.
// Hues wrap modulo 1 so every result lies in [0, 1).
func Harmonize(seed HSV, rule HarmonyRule) ([]HSV, error) {
	offsets, err := rule.Offsets()
	if err != nil {
		return nil, err
	}
	out := make([]HSV, len(offsets))
	for i, off := range offsets {
		out[i] = seed.Rotate(off)
	}
	return out, nil
}

// Generate returns the colours related to seed under rule, seed-equivalent
// colour first. It is a pure function of its inputs.
func Generate(seed RGB, rule HarmonyRule) (*Palette, error) {
	hues, err := Harmonize(seed.HSV(), rule)
	if err != nil {
		return nil, err
	}
	colours := make([]RGB, len(hues))
	for i, h := range hues {
		colours[i] = h.RGB()
	}
	return NewPalette(colours), nil
}
