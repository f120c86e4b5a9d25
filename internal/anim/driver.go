package anim

import "log/slog"

// Scene is what the driver redraws every frame.
type Scene interface {
	Clear()
	Draw(s State)
}

// Driver owns the animation state and redraws the scene once per scheduled frame.
type Driver struct {
	cfg    Config
	scene  Scene
	sched  Scheduler
	state  State
	frames uint64
}

func NewDriver(cfg Config, scene Scene, sched Scheduler) *Driver {
	return &Driver{
		cfg:   cfg,
		scene: scene,
		sched: sched,
		state: InitialState(),
	}
}

// Start renders the first frame right away.
// Every frame schedules the next one, so the animation runs until the host stops stepping.
func (d *Driver) Start() {
	slog.Debug("Starting animation", "angularSpeed", d.cfg.AngularSpeed, "step", d.cfg.Step, "animateDepth", d.cfg.AnimateDepth)
	d.frame()
}

func (d *Driver) frame() {
	d.scene.Clear()
	d.state = d.cfg.Tick(d.state)
	d.scene.Draw(d.state)
	d.frames++
	d.sched.RequestFrame(d.frame)
}

// State returns the state used for the latest frame.
func (d *Driver) State() State {
	return d.state
}

// Frames returns the number of frames rendered so far.
func (d *Driver) Frames() uint64 {
	return d.frames
}
