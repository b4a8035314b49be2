package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/davesmith10/pwaicons/internal/png"
	"github.com/davesmith10/pwaicons/internal/raster"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Rasterize an icon to a raw RGB buffer (raw output + JSON sidecar)",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "Output raw RGB file")
	renderCmd.Flags().Int("size", 0, "Icon width and height")
	renderCmd.MarkFlagRequired("output")
	renderCmd.MarkFlagRequired("size")
	rootCmd.AddCommand(renderCmd)
}

type renderMeta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Style  string `json:"style"`
}

func runRender(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	size, _ := cmd.Flags().GetInt("size")
	style, err := styleFlag(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd)
	out := cmd.OutOrStdout()

	img, err := raster.Render(size, style)
	if err != nil {
		return err
	}
	log.WithField("style", style.Name).Debug("rendered pixel buffer")

	if err := os.WriteFile(outputPath, img.Pixels, png.FilePerm); err != nil {
		return fmt.Errorf("writing raw RGB: %w", err)
	}

	meta := renderMeta{
		Width:  img.Size,
		Height: img.Size,
		Format: "RGB8",
		Style:  style.Name,
	}
	metaJSON, _ := json.MarshalIndent(meta, "", "  ")
	metaPath := strings.TrimSuffix(outputPath, ".raw") + ".json"
	if err := os.WriteFile(metaPath, metaJSON, png.FilePerm); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	fmt.Fprintf(out, "Rendered %dx%d %s icon → raw RGB (%d bytes)\n", img.Size, img.Size, style.Name, len(img.Pixels))
	fmt.Fprintf(out, "Sidecar: %s\n", metaPath)
	return nil
}
