package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"wirecube/internal/headless"
	"wirecube/internal/mesh"
	"wirecube/internal/window"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cube := mesh.Cube()
	if err := cube.Validate(); err != nil {
		log.Fatal(err)
	}

	if *headlessFlag {
		opt := headless.DefaultOptions()
		opt.Frames = *framesFlag
		opt.OutDir = *outFlag
		opt.Pattern = *patternFlag
		opt.Anim.AnimateDepth = *animateDepthFlag
		opt.Pipeline.Policy = depthPolicyFlag
		opt.ShowVertices = *verticesFlag
		if _, err := headless.Run(ctx, cube, opt); err != nil {
			log.Fatal(err)
		}
		return
	}

	opt := window.DefaultOptions()
	opt.Mode = modeFlag
	opt.Anim.AnimateDepth = *animateDepthFlag
	opt.Pipeline.Policy = depthPolicyFlag
	opt.ShowVertices = *verticesFlag
	if err := window.Run(ctx, cube, opt); err != nil {
		log.Fatal(err)
	}
}
