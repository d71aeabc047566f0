package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/driver"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/render"
)

const (
	// ticksPerSecond is ebiten's fixed update rate.
	ticksPerSecond = 60

	// A held step key repeats after repeatDelay ticks, every repeatInterval ticks.
	repeatDelay    = 30
	repeatInterval = 3
)

var keys = map[rune]ebiten.Key{
	's': ebiten.KeyS,
	'r': ebiten.KeyR,
	'b': ebiten.KeyB,
	'd': ebiten.KeyD,
	'h': ebiten.KeyH,
	'1': ebiten.Key1,
	'2': ebiten.Key2,
	'-': ebiten.KeyMinus,
	'q': ebiten.KeyQ,
}

type window struct {
	session  *driver.Session
	autostep int
	budget   int
	log      logrus.FieldLogger
}

func newWindow(s *driver.Session, autostep int, log logrus.FieldLogger) *window {
	return &window{session: s, autostep: autostep, log: log}
}

// update is the ebiten frame callback. Returning driver.ErrQuit ends Run.
func (w *window) update(screen *ebiten.Image) error {
	if err := w.input(); err != nil {
		return err
	}
	if err := w.auto(); err != nil {
		return err
	}
	if ebiten.IsDrawingSkipped() {
		return nil
	}

	return w.draw(screen)
}

func (w *window) input() error {
	for _, r := range driver.Keys() {
		if !pressed(keys[r], r == 's') {
			continue
		}
		cmd, _ := driver.KeyCommand(r)
		if err := w.apply(cmd); err != nil {
			return err
		}
	}

	return nil
}

func pressed(k ebiten.Key, repeat bool) bool {
	if inpututil.IsKeyJustPressed(k) {
		return true
	}
	if !repeat {
		return false
	}
	d := inpututil.KeyPressDuration(k)
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// auto spends autostep steps per second, spread over the ticks.
func (w *window) auto() error {
	if w.autostep == 0 {
		return nil
	}
	w.budget += w.autostep
	for ; w.budget >= ticksPerSecond; w.budget -= ticksPerSecond {
		if w.session.Finder().Status().Terminal() {
			w.budget = 0
			break
		}
		if err := w.apply(driver.Step); err != nil {
			return err
		}
	}

	return nil
}

// apply runs cmd. Only Quit ends the window; other failures are logged and
// leave the session as it was.
func (w *window) apply(cmd driver.Command) error {
	_, err := w.session.Apply(cmd)
	switch {
	case err == nil:
	case errors.Is(err, driver.ErrQuit):
		return err
	default:
		w.log.WithError(err).WithField("command", cmd).Error("command failed")
	}

	return nil
}

func (w *window) draw(screen *ebiten.Image) error {
	if err := screen.Fill(render.BackgroundColor); err != nil {
		return err
	}
	f := w.session.Finder()
	v := f.Grid()
	geo := render.NewGeometry(v, render.Width, render.Height)

	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			cell := v.CellAt(c)
			outer := geo.Rect(c)
			fill := outer
			if ring, ok := render.Border(cell); ok {
				ebitenutil.DrawRect(screen, float64(outer.Min.X), float64(outer.Min.Y),
					float64(outer.Dx()), float64(outer.Dy()), ring)
				fill = geo.Inner(c)
			}
			ebitenutil.DrawRect(screen, float64(fill.Min.X), float64(fill.Min.Y),
				float64(fill.Dx()), float64(fill.Dy()), render.Fill(cell))
		}
	}

	for x := 0; x <= geo.Cols; x++ {
		px := float64(x * geo.CellW)
		ebitenutil.DrawLine(screen, px, 0, px, float64(geo.Rows*geo.CellH), render.GridColor)
	}
	for y := 0; y <= geo.Rows; y++ {
		py := float64(y * geo.CellH)
		ebitenutil.DrawLine(screen, 0, py, float64(geo.Cols*geo.CellW), py, render.GridColor)
	}

	ebitenutil.DebugPrintAt(screen, render.Caption(f), 4, 4)

	return nil
}
