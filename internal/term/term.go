// Package term renders a simulation in a terminal with tcell, redrawing only
// the cells that flipped since the previous frame.
package term

import (
	"context"
	"sync"
	"time"

	"torus-life/internal/ui"
	"torus-life/pkg/core"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const (
	// Each board cell is drawn two columns wide so it looks square.
	cellWidth = 2
	// Row 0 holds the status line.
	boardTop = 1
	maxTPS   = 240
)

// Options configures a Viewer.
type Options struct {
	TPS    int
	Paused bool
	// Frame is the polling interval of the render loop.
	Frame time.Duration
}

// Viewer draws a core.Sim onto a tcell screen and maps keys and clicks onto
// simulation calls.
type Viewer struct {
	screen tcell.Screen
	sim    core.Sim
	pacer  *core.FixedStep

	tps    int
	paused bool
	frame  time.Duration

	buttons tcell.ButtonMask

	aliveStyle tcell.Style
	deadStyle  tcell.Style
	textStyle  tcell.Style
}

// New returns a Viewer for an already initialised screen.
func New(screen tcell.Screen, sim core.Sim, opts Options) *Viewer {
	if opts.TPS <= 0 {
		opts.TPS = 10
	}
	if opts.Frame <= 0 {
		opts.Frame = time.Second / 60
	}
	return &Viewer{
		screen:     screen,
		sim:        sim,
		pacer:      core.NewFixedStep(opts.TPS),
		tps:        opts.TPS,
		paused:     opts.Paused,
		frame:      opts.Frame,
		aliveStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		deadStyle:  tcell.StyleDefault,
		textStyle:  tcell.StyleDefault.Reverse(true),
	}
}

func (v *Viewer) drawCell(row, col int, alive bool) {
	r, style := ' ', v.deadStyle
	if alive {
		r, style = '█', v.aliveStyle
	}
	x, y := col*cellWidth, row+boardTop
	for i := 0; i < cellWidth; i++ {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *Viewer) drawStatus() {
	w, _ := v.screen.Size()
	line := []rune(ui.Status(v.sim, v.paused, v.tps))
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		v.screen.SetContent(x, 0, r, nil, v.textStyle)
	}
}

// DrawFull repaints the whole board.
func (v *Viewer) DrawFull() {
	v.screen.Clear()
	state := v.sim.State()
	for row := 0; row < state.Size(); row++ {
		for col := 0; col < state.Size(); col++ {
			v.drawCell(row, col, state.AliveAt(col, row))
		}
	}
	v.drawStatus()
	v.screen.Show()
}

// DrawDelta repaints only the given cells from the current state.
func (v *Viewer) DrawDelta(cells []core.Cell) {
	state := v.sim.State()
	for _, c := range cells {
		v.drawCell(c.Row, c.Col, state.AliveAt(c.Col, c.Row))
	}
	v.drawStatus()
	v.screen.Show()
}

// Step advances the simulation n generations and redraws what flipped.
func (v *Viewer) Step(n int) {
	for i := 0; i < n; i++ {
		v.sim.Tick()
		v.DrawDelta(v.sim.Flipped())
	}
}

func (v *Viewer) setTPS(tps int) {
	v.tps = min(max(tps, 1), maxTPS)
	v.pacer.SetTPS(v.tps)
	v.drawStatus()
	v.screen.Show()
}

func (v *Viewer) advance(now time.Time) {
	n := v.pacer.Advance(now)
	if v.paused {
		return
	}
	v.Step(n)
}

// HandleEvent applies one input event and reports whether the viewer should
// quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.DrawFull()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && v.buttons&tcell.Button1 == 0
		v.buttons = buttons
		if pressed {
			x, y := ev.Position()
			v.toggle(y-boardTop, x/cellWidth)
		}
	}
	return false
}

func (v *Viewer) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
		v.drawStatus()
		v.screen.Show()
	case 'n':
		v.Step(1)
	case 'r':
		v.sim.Reset()
		v.DrawDelta(v.sim.Flipped())
	case 'c':
		v.sim.Clear()
		v.DrawDelta(v.sim.Flipped())
	case '+', '=':
		v.setTPS(v.tps * 2)
	case '-':
		v.setTPS(v.tps / 2)
	}
	return false
}

func (v *Viewer) toggle(row, col int) {
	if err := v.sim.ToggleCell(row, col); err != nil {
		// Clicks on the status line or past the board edge.
		return
	}
	v.DrawDelta(v.sim.Flipped())
}

// Run drives the viewer until ctx is cancelled or the user quits, then
// finalises the screen. Only the render loop touches the simulation; the
// event poller hands events over a channel.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var once sync.Once
	fini := func() { once.Do(v.screen.Fini) }
	defer fini()

	events := make(chan tcell.Event)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer fini()
		defer cancel()

		ticker := time.NewTicker(v.frame)
		defer ticker.Stop()

		v.DrawFull()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if v.HandleEvent(ev) {
					return nil
				}
			case now := <-ticker.C:
				v.advance(now)
			}
		}
	})

	return g.Wait()
}
