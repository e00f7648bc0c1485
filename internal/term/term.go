// Package term is an interactive terminal viewer for a Life engine.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"torus-life/internal/census"
	"torus-life/pkg/core"
)

// Engine is the part of a Life engine the viewer drives.
type Engine interface {
	Step()
	Generation() int
}

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(119, 136, 153))
	deadStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(47, 79, 79))
	statusStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(64, 224, 208))
)

// Viewer draws an engine two terminal columns per cell and maps keys onto
// engine steps: n advances one generation, space toggles auto-play, q or Esc
// quits.
type Viewer struct {
	screen   tcell.Screen
	sim      Engine
	cells    core.Cells
	interval time.Duration
	playing  bool
}

// New returns a Viewer that auto-plays at rate generations per second. cells
// must be a view that follows sim across steps.
func New(screen tcell.Screen, sim Engine, cells core.Cells, rate int) *Viewer {
	if rate <= 0 {
		rate = 1
	}
	return &Viewer{screen: screen, sim: sim, cells: cells, interval: time.Second / time.Duration(rate)}
}

// Playing reports whether auto-play is on.
func (v *Viewer) Playing() bool { return v.playing }

// Draw paints the current generation and a status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	cells := v.cells
	s := cells.Size()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			style := deadStyle
			if cells.Alive(y, x) {
				style = aliveStyle
			}
			v.screen.SetContent(x*2, y, ' ', nil, style)
			v.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	mode := "paused"
	if v.playing {
		mode = "playing"
	}
	status := fmt.Sprintf("gen %d  pop %d  %s  [n] step [space] play [q] quit",
		v.sim.Generation(), census.Population(cells), mode)
	for i, r := range status {
		v.screen.SetContent(i, s.H, r, nil, statusStyle)
	}
	v.screen.Show()
}

// HandleEvent applies a single terminal event and reports whether the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
			return true
		case ev.Rune() == 'n':
			v.sim.Step()
		case ev.Rune() == ' ':
			v.playing = !v.playing
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

// Run processes events until the user quits, the screen is finalised, or ctx
// is done.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if !v.playing {
				continue
			}
			v.sim.Step()
		}
		v.Draw()
	}
}
