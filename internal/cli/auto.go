package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// autoOptions holds the auto command flags.
type autoOptions struct {
	colours int
	seed    uint64
	outputOptions
}

// newAutoCmd creates the auto command.
func newAutoCmd(root *rootOptions) *cobra.Command {
	opts := &autoOptions{}

	cmd := &cobra.Command{
		Use:   "auto <image>",
		Short: "Generate a random harmony from an image's colours",
		Long: `Extract the dominant colours of an image, pick one of them at random
as the seed and apply a randomly chosen harmony rule to it.

Pass --seed to make the choice reproducible.

Examples:
  swatch auto photo.jpg
  swatch auto --seed 42 -f table photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuto(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", root.config.Colours, fmt.Sprintf("number of colours to pick the seed from (1-%d)", colour.MaxColourCount))
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default: random)")
	addOutputFlags(cmd, &opts.outputOptions, root.config)

	return cmd
}

// runAuto executes the auto command.
func runAuto(cmd *cobra.Command, root *rootOptions, opts *autoOptions, path string) error {
	extracted, err := extractPalette(root, path, opts.colours)
	if err != nil {
		return err
	}

	seed := opts.seed
	if !cmd.Flags().Changed("seed") {
		seed = rand.Uint64()
	}
	root.logger.Debug("random seed", "seed", seed)

	base, rule, palette, err := colour.RandomHarmony(extracted, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return fmt.Errorf("failed to generate colours: %w", err)
	}

	if !root.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Base colour %s, %s harmony\n", base.Hex(), rule)
	}
	return printPalette(cmd, root, palette, &opts.outputOptions)
}
