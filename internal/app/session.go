package app

import (
	"fmt"

	"torus-life/internal/census"
	"torus-life/internal/view"
	"torus-life/pkg/core"
	"torus-life/pkg/life"
)

// Session is the toolkit-independent state of an interactive viewer: the
// engine, the camera, and the play/pause and display toggles. Frontends
// translate input events into Session commands and render from its state.
type Session struct {
	cfg     *Config
	sim     *life.Life
	camera  *view.Camera
	pacer   *core.FixedStep
	tracker *census.Tracker

	period  int
	playing bool
	flat    bool
	dirty   bool
}

// NewSession seeds an engine from cfg. The session starts paused.
func NewSession(cfg *Config) (*Session, error) {
	sim, err := cfg.NewEngine()
	if err != nil {
		return nil, err
	}
	s := &Session{
		cfg:     cfg,
		sim:     sim,
		camera:  view.NewCamera(),
		pacer:   core.NewFixedStep(cfg.Rate),
		tracker: census.NewTracker(census.DefaultWindow),
		dirty:   true,
	}
	s.camera.OnChange(func(view.Change) { s.dirty = true })
	s.tracker.Observe(sim.View())
	return s, nil
}

// Cells returns the read-only view of the current generation.
func (s *Session) Cells() life.View { return s.sim.View() }

// Camera returns the board camera.
func (s *Session) Camera() *view.Camera { return s.camera }

// Advance steps the engine exactly once.
func (s *Session) Advance() {
	s.sim.Step()
	s.period, _ = s.tracker.Observe(s.sim.View())
	s.dirty = true
}

// Tick advances once if auto-play is on and the pacer says a step is due.
// It reports whether the engine advanced.
func (s *Session) Tick() bool {
	if !s.playing || !s.pacer.ShouldStep() {
		return false
	}
	s.Advance()
	return true
}

// TogglePlay starts or stops auto-play.
func (s *Session) TogglePlay() {
	s.playing = !s.playing
	if s.playing {
		s.pacer.Restart()
	}
	s.dirty = true
}

// Playing reports whether auto-play is on.
func (s *Session) Playing() bool { return s.playing }

// ToggleFlat switches between the projected board and the flat pixel view.
func (s *Session) ToggleFlat() {
	s.flat = !s.flat
	s.dirty = true
}

// Flat reports whether the flat view is active.
func (s *Session) Flat() bool { return s.flat }

// Reset rebuilds the engine from the config. A non-zero seed replaces the soup
// seed first.
func (s *Session) Reset(seed int64) error {
	if seed != 0 {
		s.cfg.Seed = seed
	}
	sim, err := s.cfg.NewEngine()
	if err != nil {
		return err
	}
	s.sim = sim
	s.period = 0
	s.tracker.Reset()
	s.tracker.Observe(sim.View())
	s.dirty = true
	return nil
}

// TakeDirty reports whether anything visible changed since the last call and
// clears the flag.
func (s *Session) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	size := s.sim.Size()
	period := "-"
	if s.period > 0 {
		period = fmt.Sprint(s.period)
	}
	name := s.cfg.Pattern
	if s.cfg.PatternFile != "" {
		name = s.cfg.PatternFile
	}
	mode := "board"
	if s.flat {
		mode = "flat"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.StringParam("pattern", "Pattern", name),
				core.StringParam("size", "Size", fmt.Sprintf("%dx%d", size.W, size.H)),
				core.IntParam("generation", "Generation", s.sim.Generation()),
				core.IntParam("population", "Population", census.Population(s.sim.View())),
				core.StringParam("period", "Period", period),
				core.BoolParam("playing", "Auto-play", s.playing),
			},
		},
		{
			Name: "Camera",
			Params: []core.Parameter{
				core.FloatParam("rot_x", "Rotation X", s.camera.Degrees(view.AxisX), 1),
				core.FloatParam("rot_y", "Rotation Y", s.camera.Degrees(view.AxisY), 1),
				core.FloatParam("rot_z", "Rotation Z", s.camera.Degrees(view.AxisZ), 1),
				core.FloatParam("zoom", "Zoom", s.camera.Zoom(), 1),
				core.StringParam("mode", "Mode", mode),
			},
		},
	}}
}
