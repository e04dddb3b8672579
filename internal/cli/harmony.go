package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// harmonyOptions holds the harmony command flags.
type harmonyOptions struct {
	rule string
	outputOptions
}

func harmonyRuleNames() []string {
	rules := colour.ValidHarmonyRules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.String()
	}
	return names
}

// newHarmonyCmd creates the harmony command.
func newHarmonyCmd(root *rootOptions) *cobra.Command {
	opts := &harmonyOptions{}

	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Generate colours related to a seed colour",
		Long: `Generate colours related to a seed colour by rotating its hue while
keeping saturation and value fixed. The seed colour is always printed first.

Rules:
  complementary         seed, +0.5 turn
  triadic               seed, +0.33, +0.67 turns
  analogous             seed, +0.08, -0.08 turns
  split_complementary   seed, +0.4, +0.6 turns

Examples:
  swatch harmony '#ff0000'
  swatch harmony 1a2b3c --rule triadic -f rgb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHarmony(cmd, root, opts, args[0])
		},
	}

	addEnumFlag(cmd, &opts.rule, "rule", "r", colour.HarmonyComplementary.String(), harmonyRuleNames(), "harmony rule")
	addOutputFlags(cmd, &opts.outputOptions, root.config)

	return cmd
}

// runHarmony executes the harmony command.
func runHarmony(cmd *cobra.Command, root *rootOptions, opts *harmonyOptions, seedArg string) error {
	seed, err := colour.ParseHex(seedArg)
	if err != nil {
		return fmt.Errorf("invalid seed colour: %w", err)
	}

	rule, err := colour.ParseHarmonyRule(opts.rule)
	if err != nil {
		return err
	}

	palette, err := colour.Generate(seed, rule)
	if err != nil {
		return fmt.Errorf("failed to generate harmony: %w", err)
	}

	root.logger.Debug("generated harmony", "seed", seed.Hex(), "rule", rule, "colours", strings.Join(palette.ToHex(), " "))
	return printPalette(cmd, root, palette, &opts.outputOptions)
}
