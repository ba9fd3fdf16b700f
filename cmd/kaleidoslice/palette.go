package main

import (
	"fmt"

	"github.com/setanarut/kaleidoslice/utils"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Extract a color palette from an image",
	RunE:  runPalette,
}

func init() {
	paletteCmd.Flags().StringP("input", "i", "", "Input image")
	paletteCmd.Flags().StringP("output", "o", "", "Optional palette tile image")
	paletteCmd.Flags().IntP("colors", "k", 7, "Number of colors")
	paletteCmd.Flags().String("method", "dominantcolor", "Extraction method (dominantcolor, kmeans)")
	paletteCmd.Flags().Int("tile", 64, "Tile size in pixels for --output")
	paletteCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	k, _ := cmd.Flags().GetInt("colors")
	methodStr, _ := cmd.Flags().GetString("method")
	tile, _ := cmd.Flags().GetInt("tile")

	method, err := utils.ParsePaletteMethod(methodStr)
	if err != nil {
		return err
	}
	if k < 1 {
		return fmt.Errorf("--colors must be at least 1, got %d", k)
	}

	img, err := utils.ReadImage(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	palette := utils.ExtractPalette(img, k, method)
	if len(palette) == 0 {
		return fmt.Errorf("%s has no opaque pixels", inputPath)
	}
	utils.SortPaletteByBrightness(palette)

	for _, h := range utils.PaletteHex(palette) {
		fmt.Fprintln(cmd.OutOrStdout(), h)
	}
	if outputPath != "" {
		if err := utils.SavePalette(palette, tile, outputPath); err != nil {
			return fmt.Errorf("writing palette: %w", err)
		}
	}
	return nil
}
