// Package viewer is the interactive terminal front end: it generates a grid,
// lets a walker roam it, and regenerates on demand.
package viewer

import (
	"backrooms/internal/gamemap"
	"backrooms/internal/generate"
	"backrooms/internal/render"
	"backrooms/internal/survey"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// Options configures a Viewer.
type Options struct {
	Width, Height int
	Seed          int64 // 0 picks a time-derived seed
	Mode          generate.Mode
	Config        generate.Config
	Theme         int
	// OnReport, when set, is called after every generation run.
	OnReport func(generate.Report)
}

// maxMessages bounds the message log.
const maxMessages = 50

// Viewer owns one screen, one generator and the walker's position.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	opts     Options
	gen      *generate.Generator
	rng      *rand.Rand // draws seeds for reseeding
	report   generate.Report
	summary  survey.Summary
	pos      gamemap.Point
	theme    int
	messages []string
}

// New creates a Viewer drawing onto an initialized screen and runs the first
// generation. A zero Config means generate.DefaultConfig.
func New(screen tcell.Screen, opts Options) *Viewer {
	if opts.Config == (generate.Config{}) {
		opts.Config = generate.DefaultConfig()
	}
	v := &Viewer{
		screen:   screen,
		renderer: render.NewRenderer(screen, opts.Theme),
		opts:     opts,
		theme:    opts.Theme,
	}
	v.gen = generate.NewWithConfig(opts.Width, opts.Height, opts.Seed, opts.Config)
	v.rng = rand.New(rand.NewSource(v.gen.Seed()))
	v.pos = gamemap.Point{X: opts.Width / 2, Z: opts.Height / 2}
	v.regenerate(opts.Mode)
	v.addMessage("Arrows/hjkl move. m maze, b backrooms, c chunked, r reseed, t theme, q quit.")
	return v
}

// NewLocal creates a Viewer on the local terminal.
func NewLocal(opts Options) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen, opts), nil
}

// Report returns the summary of the latest generation run.
func (v *Viewer) Report() generate.Report { return v.report }

// Position returns the walker's cell.
func (v *Viewer) Position() gamemap.Point { return v.pos }

// Generator returns the generator currently in use.
func (v *Viewer) Generator() *generate.Generator { return v.gen }

// Messages returns the message log, oldest first.
func (v *Viewer) Messages() []string { return v.messages }

// Run is the main loop. It returns when the user quits and finalizes the
// screen.
func (v *Viewer) Run() {
	defer v.screen.Fini()
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
			v.renderer.Resize()
		case *tcell.EventKey:
			if !v.processAction(keyToAction(ev)) {
				return
			}
		}
	}
}

func (v *Viewer) draw() {
	v.renderer.CenterOn(v.pos.X, v.pos.Z)
	v.renderer.DrawFrame(v.gen, v.pos)
	v.renderer.DrawHUD(v.status(), v.messages)
}

// status collects what the HUD shows for the current position.
func (v *Viewer) status() render.Status {
	cx, cz := gamemap.ChunkOf(v.pos.X, v.pos.Z, gamemap.ChunkSize)
	return render.Status{
		Mode:       v.report.Mode.String(),
		Seed:       v.report.Seed,
		Width:      v.gen.Width(),
		Height:     v.gen.Height(),
		Coverage:   v.summary.Coverage,
		Regions:    v.summary.Regions,
		X:          v.pos.X,
		Z:          v.pos.Z,
		ChunkX:     cx,
		ChunkZ:     cz,
		ChunkCells: len(v.gen.Chunk(cx, cz)),
	}
}

// processAction applies one action. It returns false when the viewer should stop.
func (v *Viewer) processAction(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionMaze:
		v.regenerate(generate.ModeClassic)
	case ActionBackrooms:
		v.regenerate(generate.ModeBackrooms)
	case ActionChunked:
		v.regenerate(generate.ModeChunked)
	case ActionReseed:
		v.reseed()
	case ActionTheme:
		v.theme++
		v.renderer.SetTheme(v.theme)
		v.addMessage(fmt.Sprintf("Theme: %s", v.renderer.Theme().Name))
	default:
		dx, dz := actionToDelta(a)
		if dx != 0 || dz != 0 {
			if res, to := TryMove(v.gen, v.pos, dx, dz); res == MoveOK {
				v.pos = to
			}
		}
	}
	return true
}

// reseed swaps in a generator with a fresh seed and reruns the current mode.
func (v *Viewer) reseed() {
	seed := v.rng.Int63()
	for seed == 0 {
		seed = v.rng.Int63()
	}
	v.gen = generate.NewWithConfig(v.opts.Width, v.opts.Height, seed, v.opts.Config)
	v.regenerate(v.report.Mode)
}

// regenerate runs mode on the current generator and moves the walker to the
// nearest open cell of the largest region.
func (v *Viewer) regenerate(mode generate.Mode) {
	v.report = v.gen.Generate(mode)
	v.summary = survey.Survey(v.gen)
	if p, ok := survey.Spawn(v.gen, v.pos.X, v.pos.Z); ok {
		v.pos = p
	} else {
		v.pos = gamemap.Point{X: v.gen.Width() / 2, Z: v.gen.Height() / 2}
	}
	v.addMessage(fmt.Sprintf("Generated %s: %s", mode, v.summary))
	if v.opts.OnReport != nil {
		v.opts.OnReport(v.report)
	}
}

func (v *Viewer) addMessage(msg string) {
	v.messages = append(v.messages, msg)
	if len(v.messages) > maxMessages {
		v.messages = v.messages[len(v.messages)-maxMessages:]
	}
}
