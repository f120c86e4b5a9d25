// Package anim drives the animation: it owns the rotation state and advances it once per frame.
package anim

import "math"

const fullTurn = 2 * math.Pi

// State is the per-frame animation state.
type State struct {
	Angle float64 // radians in [0, 2π)
	Depth float64 // offset added to every vertex z
}

func InitialState() State {
	return State{Angle: 0, Depth: 1}
}

// Config controls how State advances per tick.
type Config struct {
	AngularSpeed float64 // radians per second
	Step         float64 // nominal seconds per tick
	DepthSpeed   float64 // depth units per second
	AnimateDepth bool
}

// DefaultConfig turns once every 4 seconds at 60 ticks per second with a fixed depth.
func DefaultConfig() Config {
	return Config{
		AngularSpeed: fullTurn / 4,
		Step:         1.0 / 60,
		DepthSpeed:   1,
	}
}

// Tick returns the state after one frame.
func (c Config) Tick(s State) State {
	s.Angle = wrapAngle(s.Angle + c.AngularSpeed*c.Step)
	if c.AnimateDepth {
		s.Depth += c.DepthSpeed * c.Step
	}
	return s
}

// TicksPerTurn returns how many ticks one full rotation takes.
func (c Config) TicksPerTurn() float64 {
	return fullTurn / math.Abs(c.AngularSpeed*c.Step)
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a = 0
	}
	return a
}
