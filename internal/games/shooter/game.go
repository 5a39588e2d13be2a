// Package shooter implements the space shooter: a player ship surviving
// waves of enemy ships, asteroids and enemy fire while the difficulty rises
// with the score. The simulation lives in the sim subpackage; this package
// drives it from the platform tick and draws it.
package shooter

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/clock"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/sim"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "shooter"

// configPath stores the custom config path set via CLI
var configPath string

// defaultAudio and defaultLogger are used by games created through the registry.
var (
	defaultAudio  core.AudioSink
	defaultLogger *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetAudio sets the audio sink used by games created with New.
func SetAudio(a core.AudioSink) {
	defaultAudio = a
}

// SetLogger sets the logger used by games created with New.
func SetLogger(l *log.Logger) {
	defaultLogger = l
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Options configures a Game.
type Options struct {
	ConfigPath string
	Audio      core.AudioSink
	Logger     *log.Logger
}

// Game adapts a sim.Session to the platform: it owns the timer queue,
// advances it by the frame's elapsed time and renders the world.
type Game struct {
	opts    Options
	runtime core.RuntimeConfig
	cfg     config.ShooterConfig
	queue   *clock.Queue
	session *sim.Session
	layout  layout
}

// New creates a game using the package-level settings.
func New() *Game {
	return NewWithOptions(Options{
		ConfigPath: configPath,
		Audio:      defaultAudio,
		Logger:     defaultLogger,
	})
}

// NewWithOptions creates a game with explicit settings. Each SSH session
// uses this to get its own silent audio sink.
func NewWithOptions(opts Options) *Game {
	if opts.Audio == nil {
		opts.Audio = &core.NopAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset loads the configuration and builds a fresh session in the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShooter(g.opts.ConfigPath)
	if err != nil {
		g.opts.Logger.Warn("using default config", "err", err)
		cfg = config.DefaultShooterConfig()
	}
	g.cfg = cfg

	g.queue = clock.NewQueue()
	g.session = sim.NewSession(cfg, g.queue, sim.Options{
		Audio:  g.opts.Audio,
		Logger: g.opts.Logger,
		Seed:   runtime.Seed,
	})
	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, cfg.Field.Width, cfg.Field.Height)
}

// Step fires the timers that came due during the frame, then advances the
// simulation by one logical step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}

	elapsed := in.Elapsed
	if elapsed <= 0 {
		elapsed = g.runtime.TickDuration()
	}
	g.queue.Advance(elapsed)

	if in.Click != nil {
		target := g.clickTarget(in.Click.X, in.Click.Y)
		in.Click = &target
	}
	g.session.Step(in)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Level: 1}
	}
	w := g.session.World()
	return core.GameState{
		Score:    w.Score,
		Level:    w.Level,
		GameOver: g.session.Stage() == sim.StageGameOver,
		Quit:     g.session.QuitRequested(),
	}
}

// Session exposes the running session for inspection.
func (g *Game) Session() *sim.Session {
	return g.session
}

// clickTarget maps a clicked cell into field coordinates. A click on a
// drawn button lands on that button's centre, since buttons are drawn
// larger than their field box on small terminals.
func (g *Game) clickTarget(cellX, cellY float64) core.Vec2 {
	x, y := int(cellX), int(cellY)
	for _, b := range g.session.Buttons() {
		if inRect(g.buttonRect(b), x, y) {
			return b.Box.Center
		}
	}
	return g.layout.toField(cellX, cellY)
}
