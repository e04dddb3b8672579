package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
)

// outputOptions are the flags shared by every command that prints a palette.
type outputOptions struct {
	format  string
	output  string
	preview string
}

// addOutputFlags registers --format, --output and --preview with defaults from cfg.
func addOutputFlags(cmd *cobra.Command, opts *outputOptions, cfg config.Config) {
	addEnumFlag(cmd, &opts.format, "format", "f", cfg.Format, config.ValidFormats(), "output format")
	addEnumFlag(cmd, &opts.preview, "preview", "", cfg.Preview, config.ValidPreviewModes(), "show colour swatches")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
}

// resolvePreview decides whether swatches are drawn. In auto mode they are
// drawn only when w is a terminal.
func resolvePreview(mode string, w io.Writer) bool {
	switch mode {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "table":
		return formatTable(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("%w: unsupported format: %s (supported: %s)", colour.ErrInvalidArgument, format, strings.Join(config.ValidFormats(), ", "))
	}
}

// formatHex formats the palette as hex colour codes.
func formatHex(palette *colour.Palette, showPreview bool) string {
	var b strings.Builder
	for _, c := range palette.Colors {
		if showPreview {
			b.WriteString(colour.FormatColourWithPreview(c, 8))
		} else {
			b.WriteString(c.Hex())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatRGB formats the palette as RGB values.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	var b strings.Builder
	for _, c := range palette.Colors {
		if showPreview {
			b.WriteString(colour.ColourPreview(c, 8) + "  ")
		}
		b.WriteString(c.String())
		b.WriteString("\n")
	}
	return b.String()
}

// formatTable lays the palette out as swatch, RGB and hex columns.
func formatTable(palette *colour.Palette, showPreview bool) string {
	headers := []string{"#", "HEX", "RGB"}
	if showPreview {
		headers = append(headers, "SWATCH")
	}

	table := NewTable(headers)
	for i, c := range palette.Colors {
		row := []string{strconv.Itoa(i + 1), c.Hex(), fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)}
		if showPreview {
			row = append(row, colour.ColourPreviewWithText(c, c.Hex(), 10))
		}
		table.AddRow(row)
	}
	return table.Render()
}

// writeOutput writes to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, root *rootOptions, output, path string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), output)
		return err
	}

	root.logger.Debug("writing output", "path", path)
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil { // #nosec G306 - palette files are meant to be shared
		return fmt.Errorf("failed to write output file: %w", err)
	}
	root.logger.Info("wrote palette", "path", path)
	return nil
}

// printPalette formats palette with opts and writes it out.
func printPalette(cmd *cobra.Command, root *rootOptions, palette *colour.Palette, opts *outputOptions) error {
	var showPreview bool
	if opts.output == "" {
		showPreview = resolvePreview(opts.preview, cmd.OutOrStdout())
	} else {
		showPreview = opts.preview == config.PreviewAlways
	}

	output, err := formatPalette(palette, opts.format, showPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return writeOutput(cmd, root, output, opts.output)
}
