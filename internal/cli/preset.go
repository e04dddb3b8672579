package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// presetOptions holds the preset command flags.
type presetOptions struct {
	list bool
	outputOptions
}

func presetSchemeNames() []string {
	schemes := colour.ValidPresetSchemes()
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = s.String()
	}
	return names
}

// newPresetCmd creates the preset command.
func newPresetCmd(root *rootOptions) *cobra.Command {
	opts := &presetOptions{}

	cmd := &cobra.Command{
		Use:   "preset [scheme]",
		Short: "Print a fixed preset palette",
		Long: `Print one of the built-in five colour palettes.

Schemes:
  gradient_galaxy   midnight blue through violet to pink
  nature_green      greens, olive and khaki

Examples:
  swatch preset nature_green
  swatch preset --list`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: presetSchemeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list || len(args) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(presetSchemeNames(), "\n"))
				return err
			}
			return runPreset(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "list available schemes")
	addOutputFlags(cmd, &opts.outputOptions, root.config)

	return cmd
}

// runPreset executes the preset command.
func runPreset(cmd *cobra.Command, root *rootOptions, opts *presetOptions, name string) error {
	scheme, err := colour.ParsePresetScheme(name)
	if err != nil {
		return err
	}

	palette, err := colour.Preset(scheme)
	if err != nil {
		return err
	}

	root.logger.Debug("loaded preset", "scheme", scheme)
	return printPalette(cmd, root, palette, &opts.outputOptions)
}
