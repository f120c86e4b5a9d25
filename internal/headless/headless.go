// Package headless renders the animation offscreen and exports each frame as an image file.
package headless

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"wirecube/internal/anim"
	"wirecube/internal/canvas"
	"wirecube/internal/mesh"
	"wirecube/internal/render"
)

type Options struct {
	Width, Height int
	Frames        int
	OutDir        string
	Pattern       string // fmt pattern taking the frame index, e.g. frame-%03d.png
	Anim          anim.Config
	Style         canvas.Style
	Pipeline      render.Pipeline
	ShowVertices  bool
}

func DefaultOptions() Options {
	return Options{
		Width:    800,
		Height:   800,
		Frames:   60,
		OutDir:   "output",
		Pattern:  "frame-%03d.png",
		Anim:     anim.DefaultConfig(),
		Style:    canvas.DefaultStyle(),
		Pipeline: render.DefaultPipeline(800, 800),
	}
}

// Run renders opt.Frames frames and returns the paths of the written files.
func Run(ctx context.Context, m *mesh.Mesh, opt Options) ([]string, error) {
	if opt.Frames < 1 {
		return nil, fmt.Errorf("headless: frames must be positive, got %d", opt.Frames)
	}
	if err := os.MkdirAll(opt.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("headless: %w", err)
	}
	raster := canvas.NewRaster(opt.Width, opt.Height)
	r := render.New(m, canvas.NewDrawer(raster, opt.Style), opt.Pipeline)
	r.ShowVertices = opt.ShowVertices

	var q anim.Queue
	d := anim.NewDriver(opt.Anim, r, &q)

	paths := make([]string, 0, opt.Frames)
	export := func() error {
		p, err := canvas.ExportFrame(opt.OutDir, opt.Pattern, len(paths), raster.Image())
		if err != nil {
			return err
		}
		paths = append(paths, p)
		slog.Debug("Exported frame", "path", p, "angle", d.State().Angle, "lines", r.LastStats().Lines)
		return nil
	}

	d.Start()
	if err := export(); err != nil {
		return paths, err
	}
	for len(paths) < opt.Frames {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		if !q.Step() {
			break
		}
		if err := export(); err != nil {
			return paths, err
		}
	}
	slog.Info("Rendered frames", "count", len(paths), "dir", opt.OutDir)
	return paths, nil
}
