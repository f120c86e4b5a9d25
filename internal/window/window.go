//go:build cgo

package window

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"wirecube/internal/anim"
	"wirecube/internal/canvas"
	"wirecube/internal/mesh"
	"wirecube/internal/render"
)

// Run opens a window and animates m until the window is closed or ctx is done.
// All GL calls happen on the calling goroutine, which is locked to its OS thread.
func Run(ctx context.Context, m *mesh.Mesh, opt Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(opt.Width, opt.Height, opt.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize gl: %w", err)
	}
	slog.Info("Opened window", "gl", gl.GoStr(gl.GetString(gl.VERSION)), "mode", opt.Mode)

	var tick <-chan time.Time
	switch opt.Mode {
	case anim.ModeRefresh:
		glfw.SwapInterval(1)
	case anim.ModeFixedDelay:
		// Disable VSync so the ticker alone paces frames
		glfw.SwapInterval(0)
		ticker := time.NewTicker(time.Duration(opt.Anim.Step * float64(time.Second)))
		defer ticker.Stop()
		tick = ticker.C
	default:
		return fmt.Errorf("unsupported mode %v", opt.Mode)
	}

	surface, err := newGLSurface(opt.Width, opt.Height)
	if err != nil {
		return err
	}
	defer surface.delete()

	r := render.New(m, canvas.NewDrawer(surface, opt.Style), opt.Pipeline)
	r.ShowVertices = opt.ShowVertices
	var q anim.Queue
	driver := anim.NewDriver(opt.Anim, r, &q)

	lastFpsTime := glfw.GetTime()
	frameCount := 0
	started := false

	for !window.ShouldClose() {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		if !started {
			driver.Start()
			started = true
		} else if !q.Step() {
			break
		}

		fbWidth, fbHeight := window.GetFramebufferSize()
		surface.flush(fbWidth, fbHeight)
		window.SwapBuffers()
		glfw.PollEvents()

		// FPS Counter Update (every 1 second)
		frameCount++
		if currentTime := glfw.GetTime(); currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d", opt.Title, frameCount))
			slog.Debug("Frame rate", "fps", frameCount, "frames", driver.Frames(), "angle", driver.State().Angle)
			frameCount = 0
			lastFpsTime = currentTime
		}
	}
	return nil
}
