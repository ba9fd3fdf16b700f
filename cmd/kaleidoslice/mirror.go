package main

import (
	"fmt"

	"github.com/setanarut/kaleidoslice"
	"github.com/setanarut/kaleidoslice/utils"
	"github.com/spf13/cobra"
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Write the 2x2 mirrored canvas without slicing",
	RunE:  runMirror,
}

func init() {
	mirrorCmd.Flags().StringP("input", "i", "", "Input image")
	mirrorCmd.Flags().StringP("output", "o", "", "Output image, format from extension")
	mirrorCmd.Flags().Int("max-size", 0, "Downscale input so its longest side is at most this (0 disables)")
	mirrorCmd.Flags().String("format", "", "Output format override")
	mirrorCmd.MarkFlagRequired("input")
	mirrorCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(mirrorCmd)
}

func runMirror(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	maxSize, format := outputSettings(cmd, outputPath)

	img, err := utils.ReadImage(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	src, err := kaleidoslice.FromImage(utils.FitImage(img, maxSize))
	if err != nil {
		return err
	}
	quad, err := kaleidoslice.MirrorQuad(src)
	if err != nil {
		return err
	}
	if err := utils.SaveImageAs(quad.ToImage(), outputPath, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Mirrored %dx%d → %dx%d\n", src.Width(), src.Height(), quad.Width(), quad.Height())
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s (%s)\n", outputPath, format)
	return nil
}
