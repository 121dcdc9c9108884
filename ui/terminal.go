// Package ui is the interactive full-screen terminal front end. It only reads
// cell states and summaries from a model.World and feeds toggles back to it.
package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	// cellWidth is how many terminal columns one cell occupies
	cellWidth = 2

	controls = "space start/pause · click toggle · ←/a slower · →/d faster · n step · q quit"
)

var (
	styleAlive  = tcell.StyleDefault.Background(tcell.NewRGBColor(80, 210, 80))
	styleDead   = tcell.StyleDefault.Background(tcell.NewRGBColor(10, 10, 10))
	styleStatus = tcell.StyleDefault.Foreground(tcell.NewRGBColor(250, 250, 100))
	styleText   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(245, 240, 235))
	styleAlert  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(250, 30, 20))
)

// Terminal drives a world from keyboard and mouse events on a tcell screen
type Terminal struct {
	screen    tcell.Screen
	world     *model.World
	frameRate time.Duration

	paused  bool
	message string // shown instead of the controls, e.g. the game over verdict

	// last cell toggled during the current mouse drag
	dragging bool
	lastDrag model.Coord
}

// NewTerminal creates a paused terminal UI for world. The screen is
// initialised by Run.
func NewTerminal(screen tcell.Screen, world *model.World, frameRate time.Duration) *Terminal {
	return &Terminal{
		screen:    screen,
		world:     world,
		frameRate: max(frameRate, utils.MinFrameRate),
		paused:    true,
	}
}

// Run shows the world until the user quits or ctx is done
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "[Terminal.Run] failed to init screen")
	}
	t.screen.EnableMouse()

	var (
		eg     errgroup.Group
		events = make(chan tcell.Event)
		done   = make(chan struct{})
	)

	eg.Go(func() error {
		defer t.screen.Fini()
		defer close(done)
		return t.loop(ctx, events)
	})

	eg.Go(func() error {
		for {
			// PollEvent returns nil once Fini has been called
			ev := t.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})

	return eg.Wait()
}

func (t *Terminal) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(t.frameRate)
	defer ticker.Stop()

	t.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			rate := t.frameRate
			if t.handle(ev) {
				return nil
			}
			if rate != t.frameRate {
				ticker.Reset(t.frameRate)
			}
		case <-ticker.C:
			t.tick()
		}
		t.draw()
	}
}

// handle applies one input event and reports whether the user asked to quit
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyLeft:
			t.frameRate = utils.Slower(t.frameRate)
		case tcell.KeyRight:
			t.frameRate = utils.Faster(t.frameRate)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				t.paused = !t.paused
			case 'a':
				t.frameRate = utils.Slower(t.frameRate)
			case 'd':
				t.frameRate = utils.Faster(t.frameRate)
			case 'n':
				if t.paused {
					t.advance()
				}
			}
		}
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		t.dragging = false
		return
	}
	x, y := ev.Position()
	at := model.Coord{Row: y, Column: x / cellWidth}
	if t.dragging && at == t.lastDrag {
		return
	}
	t.dragging, t.lastDrag = true, at
	t.world.Toggle(at.Row, at.Column)
	t.message = ""
}

// tick advances one generation unless the game is paused
func (t *Terminal) tick() {
	if t.paused {
		return
	}
	t.advance()
}

// advance steps the world, or ends the game when no cell is left alive
func (t *Terminal) advance() {
	if t.world.LivingCount() == 0 {
		t.paused = true
		t.message = "Unfortunately, the cells live no more. Game over! " + model.Verdict(t.world.Generation())
		return
	}
	t.world.Step()
}

func (t *Terminal) draw() {
	grid := t.world.Grid()
	for coord := range grid.AllCoordinates() {
		style := styleDead
		if alive, _ := grid.Alive(coord.Row, coord.Column); alive {
			style = styleAlive
		}
		for dx := range cellWidth {
			t.screen.SetContent(coord.Column*cellWidth+dx, coord.Row, ' ', nil, style)
		}
	}

	status := t.world.Summary()
	if t.paused {
		status += " [paused]"
	}
	status += " · delay " + t.frameRate.String()
	t.drawLine(grid.Rows(), status, styleStatus)

	if t.message != "" {
		t.drawLine(grid.Rows()+1, t.message, styleAlert)
	} else {
		t.drawLine(grid.Rows()+1, controls, styleText)
	}
	t.screen.Show()
}

// drawLine writes text on row y and blanks the rest of that row
func (t *Terminal) drawLine(y int, text string, style tcell.Style) {
	width, _ := t.screen.Size()
	x := 0
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
