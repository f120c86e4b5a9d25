package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"wirecube/internal/anim"
	"wirecube/internal/render"
)

type logLevelFlag struct {
	value slog.Level
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level")
	}
	l.value = v
	return nil
}

// defined flags
var (
	levelFlag        logLevelFlag
	modeFlag         anim.Mode
	depthPolicyFlag  render.DepthPolicy
	animateDepthFlag = flag.Bool("animate-depth", false, "Move the cube away from the viewer over time")
	verticesFlag     = flag.Bool("vertices", false, "Draw a point on every vertex")
	headlessFlag     = flag.Bool("headless", false, "Render offscreen and write frames to files instead of opening a window")
	framesFlag       = flag.Int("frames", 60, "Number of frames to render in headless mode")
	outFlag          = flag.String("out", "output", "Output directory for headless mode")
	patternFlag      = flag.String("pattern", "frame-%03d.png", "File name pattern for headless frames (.png or .ppm)")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
	flag.Var(&modeFlag, "mode", "frame scheduling: refresh or fixed")
	flag.Var(&depthPolicyFlag, "depth-policy", "vertices behind the viewer: skip or clamp")
}
