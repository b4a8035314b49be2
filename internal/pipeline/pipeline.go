package pipeline

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/davesmith10/pwaicons/internal/png"
	"github.com/davesmith10/pwaicons/internal/raster"
	"github.com/sirupsen/logrus"
)

// Target names one icon to generate.
type Target struct {
	Size int
	Name string
}

// DefaultTargets are the PWA manifest icons, largest first.
var DefaultTargets = []Target{
	{Size: 512, Name: "icon-512.png"},
	{Size: 192, Name: "icon-192.png"},
}

// Options controls a single render → encode run.
type Options struct {
	Size   int
	Style  raster.Style
	Logger logrus.FieldLogger // optional; nil discards
}

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte // encoded PNG
	Pixels []byte // raw RGB buffer the PNG was encoded from
	Size   int
}

// Written describes an icon persisted by Write.
type Written struct {
	Path  string
	Size  int
	Bytes int
}

// Run executes the pipeline for one icon: rasterize → encode.
func Run(opts Options) (*Result, error) {
	log := loggerOrDiscard(opts.Logger).WithFields(logrus.Fields{
		"size":  opts.Size,
		"style": opts.Style.Name,
	})

	// 1. Rasterize
	img, err := raster.Render(opts.Size, opts.Style)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	log.Debug("rendered pixel buffer")

	// 2. Encode PNG
	data, err := png.EncodeRGB(img.Pixels, img.Size)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	log.WithField("bytes", len(data)).Debug("encoded png")

	return &Result{
		Data:   data,
		Pixels: img.Pixels,
		Size:   img.Size,
	}, nil
}

// Write runs the pipeline for target in style and writes the PNG to dir.
func Write(dir string, target Target, style raster.Style, logger logrus.FieldLogger) (*Written, error) {
	log := loggerOrDiscard(logger)
	path := filepath.Join(dir, target.Name)

	result, err := Run(Options{Size: target.Size, Style: style, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target.Name, err)
	}

	// 3. Persist
	n, err := png.WriteFile(path, result.Data)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"path":  path,
		"size":  target.Size,
		"style": style.Name,
		"bytes": n,
	}).Debug("wrote icon")

	return &Written{Path: path, Size: target.Size, Bytes: n}, nil
}

// GenerateAll writes every target in order, calling report after each file.
// It stops at the first failure; files already written are left in place.
func GenerateAll(dir string, targets []Target, style raster.Style, logger logrus.FieldLogger, report func(*Written)) error {
	for _, t := range targets {
		w, err := Write(dir, t, style, logger)
		if err != nil {
			return err
		}
		if report != nil {
			report(w)
		}
	}
	return nil
}

func loggerOrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l != nil {
		return l
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}
