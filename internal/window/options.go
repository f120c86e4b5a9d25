// Package window shows the animation in a GLFW window drawn with OpenGL.
package window

import (
	"wirecube/internal/anim"
	"wirecube/internal/canvas"
	"wirecube/internal/render"
)

type Options struct {
	Title         string
	Width, Height int
	Mode          anim.Mode
	Anim          anim.Config
	Style         canvas.Style
	Pipeline      render.Pipeline
	ShowVertices  bool
}

func DefaultOptions() Options {
	return Options{
		Title:    "Wirecube",
		Width:    800,
		Height:   800,
		Mode:     anim.ModeRefresh,
		Anim:     anim.DefaultConfig(),
		Style:    canvas.DefaultStyle(),
		Pipeline: render.DefaultPipeline(800, 800),
	}
}
