package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/setanarut/kaleidoslice"
	"github.com/setanarut/kaleidoslice/utils"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show image size, channel statistics and suggested slice count",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	img, format, err := utils.DecodeImage(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	s := utils.ChannelStats(img)
	opt := kaleidoslice.OptionsFromSize(img.Bounds().Size())
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "File:        %s\n", path)
	fmt.Fprintf(w, "Format:      %s\n", format)
	fmt.Fprintf(w, "Dimensions:  %d x %d\n", s.Width, s.Height)
	fmt.Fprintf(w, "Opaque:      %d of %d pixels\n", s.Opaque, s.Width*s.Height)
	if s.Opaque > 0 {
		for _, c := range []struct {
			name string
			st   utils.ChannelStat
		}{{"Red", s.R}, {"Green", s.G}, {"Blue", s.B}, {"Alpha", s.A}} {
			fmt.Fprintf(w, "  %-6s mean %6.1f  stddev %6.1f\n", c.name, c.st.Mean, c.st.StdDev)
		}
		palette := utils.ExtractPalette(img, 5, utils.PaletteMethodDominantColor)
		fmt.Fprintf(w, "Palette:     %s\n", strings.Join(utils.PaletteHex(palette), " "))
	}
	fmt.Fprintf(w, "Suggested:   --slices %d (canvas %d x %d)\n", opt.Slices, 2*s.Width, 2*s.Height)
	return nil
}
