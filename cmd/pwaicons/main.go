package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/pwaicons/internal/pipeline"
	"github.com/davesmith10/pwaicons/internal/raster"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "pwaicons",
	Short:         "Generate the PWA app icons (icon-512.png, icon-192.png)",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Log pipeline details to stderr")
	rootCmd.PersistentFlags().String("style", raster.Circle.Name, "Icon style (circle, gradient)")
	rootCmd.Flags().String("dir", ".", "Output directory")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns a stderr logger for diagnostics. Progress lines for the
// user go to stdout separately.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func styleFlag(cmd *cobra.Command) (raster.Style, error) {
	name, _ := cmd.Flags().GetString("style")
	return raster.ParseStyle(name)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	style, err := styleFlag(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Generating icons...")
	err = pipeline.GenerateAll(dir, pipeline.DefaultTargets, style, log, func(w *pipeline.Written) {
		fmt.Fprintf(out, "  %s  (%d×%d, %s bytes)\n", w.Path, w.Size, w.Size, humanize.Comma(int64(w.Bytes)))
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Done!")
	return nil
}
