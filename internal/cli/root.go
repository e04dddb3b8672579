// Package cli provides the command-line interface for Swatch.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/version"
)

// rootOptions holds state shared by every subcommand.
type rootOptions struct {
	verbose bool
	quiet   bool

	config   config.Config
	warnings []string
	logger   hclog.Logger
}

// NewRootCmd builds the swatch command tree. Each call returns an
// independent tree, so tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	builder := config.NewBuilder().WithDotEnv().WithEnvConfig()
	opts := &rootOptions{
		config: builder.Build(),
		logger: hclog.NewNullLogger(),
	}
	opts.warnings = builder.Warnings()

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Extract dominant colour palettes and generate colour harmonies",
		Long: `Swatch extracts the dominant colours of an image and generates related
colour sets from colour-theory harmony rules or fixed preset schemes.

Every colour is printed as #rrggbb so it can be pasted straight into
other tools.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
			for _, w := range opts.warnings {
				opts.logger.Warn(w)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(opts))
	rootCmd.AddCommand(newHarmonyCmd(opts))
	rootCmd.AddCommand(newPresetCmd(opts))
	rootCmd.AddCommand(newAutoCmd(opts))

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
