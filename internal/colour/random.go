package colour

import (
	"fmt"
	"math/rand/v2"
)

// RandomHarmony picks a seed colour from p and a harmony rule using rng, then
// generates the harmony. The randomness lives entirely in rng, so callers that
// need reproducible output pass a seeded source.
func RandomHarmony(p *Palette, rng *rand.Rand) (RGB, HarmonyRule, *Palette, error) {
	if p == nil || p.Len() == 0 {
		return RGB{}, "", nil, fmt.Errorf("%w: no colours to pick a seed from", ErrInvalidArgument)
	}
	if rng == nil {
		return RGB{}, "", nil, fmt.Errorf("%w: random source cannot be nil", ErrInvalidArgument)
	}

	seed := p.Colors[rng.IntN(p.Len())]
	rules := ValidHarmonyRules()
	rule := rules[rng.IntN(len(rules))]

	generated, err := Generate(seed, rule)
	if err != nil {
		return RGB{}, "", nil, err
	}
	return seed, rule, generated, nil
}
