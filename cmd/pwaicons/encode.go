package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/pwaicons/internal/png"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a raw RGB buffer to PNG",
	Args:  cobra.NoArgs,
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("input", "i", "", "Input raw RGB file")
	encodeCmd.Flags().StringP("output", "o", "", "Output PNG file")
	encodeCmd.Flags().Int("size", 0, "Image width and height")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("output")
	encodeCmd.MarkFlagRequired("size")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	size, _ := cmd.Flags().GetInt("size")
	log := newLogger(cmd)
	out := cmd.OutOrStdout()

	pixels, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	expected := size * size * 3
	if size <= 0 || len(pixels) != expected {
		return fmt.Errorf("expected %d bytes for %dx%d RGB, got %d", expected, size, size, len(pixels))
	}

	encoded, err := png.EncodeRGB(pixels, size)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	log.WithField("bytes", len(encoded)).Debug("encoded png")

	if err := os.WriteFile(outputPath, encoded, png.FilePerm); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(out, "Encoded %dx%d RGB → %s (%s bytes)\n", size, size, outputPath, humanize.Comma(int64(len(encoded))))
	return nil
}
