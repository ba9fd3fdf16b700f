package main

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/setanarut/kaleidoslice"
	"github.com/setanarut/kaleidoslice/utils"
	"github.com/spf13/cobra"
)

var sliceCmd = &cobra.Command{
	Use:   "slice",
	Short: "Quad-mirror an image and interleave its strips",
	RunE:  runSlice,
}

func init() {
	sliceCmd.Flags().StringP("input", "i", "", "Input image (png, jpeg, gif, bmp, tiff, webp)")
	sliceCmd.Flags().StringP("output", "o", "", "Output image, format from extension")
	sliceCmd.Flags().IntP("slices", "n", 0, "Column strip count, even and >= 2 (0 derives it from the image size)")
	sliceCmd.Flags().Int("workers", 0, "Strip pairs copied concurrently (0 derives it from the image size)")
	sliceCmd.Flags().Int("max-size", 0, "Downscale input so its longest side is at most this (0 disables)")
	sliceCmd.Flags().String("format", "", "Output format override (png, jpeg, gif, bmp, tiff)")
	sliceCmd.Flags().String("palette", "", "Also write the result's palette as tiles to this file")
	sliceCmd.Flags().IntP("colors", "k", 7, "Palette size for --palette")
	sliceCmd.MarkFlagRequired("input")
	sliceCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(sliceCmd)
}

// resolveOptions layers config values and then non-zero flag values
// over the size-derived defaults.
func resolveOptions(size image.Point, c *utils.Config, slices, workers int) kaleidoslice.Options {
	opt := kaleidoslice.OptionsFromSize(size)
	if c.Slices != 0 {
		opt.Slices = c.Slices
	}
	if c.Workers != 0 {
		opt.Workers = c.Workers
	}
	if slices != 0 {
		opt.Slices = slices
	}
	if workers != 0 {
		opt.Workers = workers
	}
	return opt
}

// outputSettings returns the max input size and output format, flags
// first, then config, then the output file extension.
func outputSettings(cmd *cobra.Command, outputPath string) (int, string) {
	maxSize := cfg.MaxSize
	if cmd.Flags().Changed("max-size") {
		maxSize, _ = cmd.Flags().GetInt("max-size")
	}
	format := cfg.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	if format == "" {
		format = utils.FormatFromPath(outputPath)
	}
	return maxSize, format
}

func runSlice(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	slices, _ := cmd.Flags().GetInt("slices")
	workers, _ := cmd.Flags().GetInt("workers")
	palettePath, _ := cmd.Flags().GetString("palette")
	colors, _ := cmd.Flags().GetInt("colors")
	maxSize, format := outputSettings(cmd, outputPath)

	// Reject a bad count before touching the input file.
	if slices != 0 {
		if err := kaleidoslice.ValidateSliceCount(slices); err != nil {
			return fmt.Errorf("--slices: %w", err)
		}
	}
	if workers < 0 {
		return fmt.Errorf("--workers must not be negative, got %d", workers)
	}

	img, err := utils.ReadImage(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	src := img.Bounds().Size()
	img = utils.FitImage(img, maxSize)
	if fit := img.Bounds().Size(); fit != src {
		slog.Info("downscaled input", "from", src, "to", fit, "max_size", maxSize)
	}

	opt := resolveOptions(img.Bounds().Size(), cfg, slices, workers)
	slog.Debug("slicing", "input", inputPath, "slices", opt.Slices, "workers", opt.Workers)

	start := time.Now()
	out, err := kaleidoslice.Process(img, opt)
	if err != nil {
		return fmt.Errorf("slicing: %w", err)
	}
	slog.Debug("sliced", "elapsed", time.Since(start))

	if err := utils.SaveImageAs(out, outputPath, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	b := out.Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "Sliced %dx%d → %dx%d (%d slices)\n", img.Bounds().Dx(), img.Bounds().Dy(), b.Dx(), b.Dy(), opt.Slices)
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s (%s)\n", outputPath, format)

	if palettePath == "" {
		return nil
	}
	palette := utils.ExtractPalette(out, colors, utils.PaletteMethodDominantColor)
	if len(palette) == 0 {
		slog.Warn("result has no opaque pixels, skipping palette")
		return nil
	}
	utils.SortPaletteByBrightness(palette)
	if err := utils.SavePalette(palette, 64, palettePath); err != nil {
		return fmt.Errorf("writing palette: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Palette: %s\n", palettePath)
	return nil
}
