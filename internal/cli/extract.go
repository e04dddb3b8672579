package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
)

// extractOptions holds the extract command flags.
type extractOptions struct {
	colours int
	outputOptions
}

// newExtractCmd creates the extract command.
func newExtractCmd(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract the dominant colours of an image",
		Long: `Extract the dominant colours of an image.

The image is reduced to a 150x150 working copy, quantized with median cut
and the resulting colours are printed from most to least frequent. Images
with fewer distinct colours than requested produce a shorter palette.

If a directory is given, a random image from it is used.

Supported image formats: JPEG, PNG, GIF, BMP, WebP

Examples:
  # Extract 5 colours (default) from an image
  swatch extract photo.jpg

  # Extract 8 colours as a table with swatches
  swatch extract -c 8 -f table --preview always photo.png

  # Extract colours as JSON into a file
  swatch extract -f json -o palette.json photo.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", root.config.Colours, fmt.Sprintf("maximum number of colours to extract (1-%d)", colour.MaxColourCount))
	addOutputFlags(cmd, &opts.outputOptions, root.config)

	return cmd
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, root *rootOptions, opts *extractOptions, path string) error {
	palette, err := extractPalette(root, path, opts.colours)
	if err != nil {
		return err
	}
	return printPalette(cmd, root, palette, &opts.outputOptions)
}

// extractPalette loads the image at path and quantizes it to at most count colours.
func extractPalette(root *rootOptions, path string, count int) (*colour.Palette, error) {
	config := colour.ExtractorConfig{
		Algorithm:  colour.AlgorithmMedianCut,
		ColorCount: count,
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := image.ValidateImagePath(path); err != nil {
		return nil, fmt.Errorf("invalid image path: %w", err)
	}

	resolved, err := image.ResolveImagePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image path: %w", err)
	}
	if resolved != path {
		root.logger.Info("selected image from directory", "dir", path, "image", resolved)
	}

	root.logger.Debug("loading image", "path", resolved)
	img, err := image.NewFileLoader().Load(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	root.logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}

	palette, err := extractor.Extract(img, config.ColorCount)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}

	root.logger.Debug("extracted colours", "requested", config.ColorCount, "found", palette.Len(), "algorithm", config.Algorithm)
	return palette, nil
}
