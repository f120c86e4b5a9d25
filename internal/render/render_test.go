package render_test

import (
	"flag"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wirecube/internal/anim"
	"wirecube/internal/canvas"
	"wirecube/internal/canvas/canvastest"
	"wirecube/internal/geom"
	"wirecube/internal/mesh"
	"wirecube/internal/render"
)

const tolerance = 1e-9

func newRenderer(rec *canvastest.Recorder) *render.Renderer {
	d := canvas.NewDrawer(rec, canvas.DefaultStyle())
	return render.New(mesh.Cube(), d, render.DefaultPipeline(800, 800))
}

func TestPipelineVertex(t *testing.T) {
	pl := render.DefaultPipeline(800, 800)
	got, ok := pl.Vertex(geom.Point3{X: 0.25, Y: 0.25, Z: 0.25}, anim.InitialState())
	require.True(t, ok)
	assert.InDelta(t, 480, got.X, tolerance)
	assert.InDelta(t, 320, got.Y, tolerance)

	t.Run("rotation is applied before the depth offset", func(t *testing.T) {
		s := anim.State{Angle: math.Pi / 2, Depth: 1}
		got, ok := pl.Vertex(geom.Point3{X: 0.5}, s)
		require.True(t, ok)
		// (0.5,0,0) turns into (0,0,0.5), then moves to z=1.5 and projects onto the origin.
		assert.InDelta(t, 400, got.X, tolerance)
		assert.InDelta(t, 400, got.Y, tolerance)
	})
}

func TestPipelineDepthPolicy(t *testing.T) {
	p := geom.Point3{X: 0.25, Y: 0.25, Z: -1}
	s := anim.InitialState()

	t.Run("skip", func(t *testing.T) {
		pl := render.DefaultPipeline(800, 800)
		_, ok := pl.Vertex(p, s)
		assert.False(t, ok)
	})
	t.Run("clamp", func(t *testing.T) {
		pl := render.DefaultPipeline(800, 800)
		pl.Policy = render.DepthClamp
		got, ok := pl.Vertex(p, s)
		require.True(t, ok)
		assert.True(t, got.IsFinite())
		assert.Greater(t, got.X, 800.0)
	})
}

func TestRendererDrawsTwelveEdges(t *testing.T) {
	rec := canvastest.NewRecorder(800, 800)
	r := newRenderer(rec)

	st := r.DrawFrame(anim.InitialState())
	assert.Equal(t, render.Stats{Lines: 12}, st)
	assert.Equal(t, 12, rec.Count(canvastest.OpStrokeLine))
	assert.Equal(t, 0, rec.Count(canvastest.OpFillRect))
	for _, c := range rec.Calls {
		assert.Equal(t, canvas.Foreground, c.Color)
		assert.Equal(t, 3.0, c.Width)
	}

	t.Run("first edge runs from vertex 0 to vertex 1", func(t *testing.T) {
		first := rec.Calls[0].Coords
		assert.InDelta(t, 480, first[0], tolerance)
		assert.InDelta(t, 320, first[1], tolerance)
		assert.InDelta(t, 480, first[2], tolerance)
		assert.InDelta(t, 480, first[3], tolerance)
	})
}

func TestRendererShowVertices(t *testing.T) {
	rec := canvastest.NewRecorder(800, 800)
	r := newRenderer(rec)
	r.ShowVertices = true
	r.Draw(anim.InitialState())
	assert.Equal(t, render.Stats{Lines: 12, Points: 8}, r.LastStats())
	assert.Equal(t, 8, rec.Count(canvastest.OpFillRect))
}

func TestRendererSkipsEdgesBehindTheEye(t *testing.T) {
	rec := canvastest.NewRecorder(800, 800)
	r := newRenderer(rec)
	// Depth 0 puts the front face at z=0.25 and the back face at z=-0.25.
	st := r.DrawFrame(anim.State{Angle: 0, Depth: 0})
	assert.Equal(t, 4, st.Lines)
	assert.Equal(t, 8, st.Skipped)
}

func TestRendererAsScene(t *testing.T) {
	rec := canvastest.NewRecorder(800, 800)
	r := newRenderer(rec)
	var q anim.Queue
	d := anim.NewDriver(anim.DefaultConfig(), r, &q)

	d.Start()
	require.Len(t, rec.Calls, 13)
	assert.Equal(t, canvastest.OpClear, rec.Calls[0].Op)
	assert.Equal(t, canvas.Background, rec.Calls[0].Color)

	rec.Reset()
	require.True(t, q.Step())
	assert.Equal(t, 1, rec.Count(canvastest.OpClear))
	assert.Equal(t, canvastest.OpClear, rec.Calls[0].Op, "clear comes before any draw")
	assert.Equal(t, 12, rec.Count(canvastest.OpStrokeLine))
}

func TestDepthPolicyFlag(t *testing.T) {
	var p render.DepthPolicy
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&p, "depth-policy", "")
	require.NoError(t, fs.Parse([]string{"-depth-policy", "clamp"}))
	assert.Equal(t, render.DepthClamp, p)
	assert.Error(t, p.Set("wrap"))
	assert.Equal(t, "skip", render.DepthSkip.String())
}
