//go:build ebiten

package app

import (
	"time"

	"torus-life/internal/render"
	"torus-life/internal/ui"
	"torus-life/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	board   *render.BoardRenderer
	painter *render.GridPainter
	hud     *ui.HUD
	frame   *ebiten.Image
	size    int
	err     error
}

// New constructs a Game rendering into a square window of size pixels.
func New(session *Session, size int) *Game {
	s := session.Cells().Size()
	return &Game{
		session: session,
		board:   render.NewBoardRenderer(),
		painter: render.NewGridPainter(s.W, s.H),
		hud:     ui.NewHUD(session, hudWidth),
		size:    size,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.session.ToggleFlat()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Camera().Reset()
	}
	g.handleMouse()

	g.session.Tick()
	g.hud.Update()
	return nil
}

func (g *Game) reset(seed int64) {
	if err := g.session.Reset(seed); err != nil {
		g.err = err
		return
	}
	s := g.session.Cells().Size()
	if w, h := g.painter.Size(); w != s.W || h != s.H {
		g.painter = render.NewGridPainter(s.W, s.H)
	}
}

func (g *Game) handleMouse() {
	cam := g.session.Camera()
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		cam.Press(x, y)
	}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		cam.Drag(x, y, view.ButtonLeft)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		cam.Drag(x, y, view.ButtonRight)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		cam.Scroll(dy)
	}
}

// Draw renders the current generation, redrawing the cached frame only when
// the session reports a visible change.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if g.frame == nil || g.frame.Bounds() != b {
		g.frame = ebiten.NewImage(b.Dx(), b.Dy())
		g.session.dirty = true
	}
	if g.session.TakeDirty() {
		g.frame.Fill(render.Background)
		cells := g.session.Cells()
		if g.session.Flat() {
			s := cells.Size()
			scale := max(1, min(b.Dx()/s.W, b.Dy()/s.H))
			g.painter.Blit(g.frame, cells, render.AliveColor, render.DeadColor, scale)
		} else {
			g.board.Draw(g.frame, cells, g.session.Camera())
		}
	}
	screen.DrawImage(g.frame, nil)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}
