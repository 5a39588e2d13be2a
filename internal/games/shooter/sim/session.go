package sim

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/clock"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Timers is the timer service a Session schedules its callbacks on.
// clock.Queue satisfies it.
type Timers interface {
	Every(period time.Duration, fn func()) clock.Token
	After(delay time.Duration, fn func()) clock.Token
	Cancel(tok clock.Token)
}

// Periodic callbacks, in scheduling order.
const (
	timerShoot = iota
	timerEnemies
	timerAsteroids
	timerPickups
	timerCount
)

// Options configures a Session. Zero values get silent defaults.
type Options struct {
	Audio  core.AudioSink
	Logger *log.Logger
	Seed   int64
}

// Session is the context every subsystem works through: the current World,
// the stage, and the injected timer, audio and random sources.
type Session struct {
	cfg    config.ShooterConfig
	sizes  Sizes
	timers Timers
	audio  core.AudioSink
	log    *log.Logger
	rng    *rand.Rand

	stage   Stage
	world   *World
	canMove bool
	dead    bool
	quit    bool

	periodic [timerCount]clock.Token
	gameOver clock.Token
}

// NewSession creates a session in the Menu stage with an empty world.
func NewSession(cfg config.ShooterConfig, timers Timers, opts Options) *Session {
	audio := opts.Audio
	if audio == nil {
		audio = &core.NopAudio{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:    cfg,
		sizes:  NewSizes(cfg),
		timers: timers,
		audio:  audio,
		log:    logger.WithPrefix("shooter"),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		stage:  StageMenu,
		world:  NewWorld(cfg),
	}
	s.applyVolumes()
	if cfg.Audio.Muted && !audio.Muted() {
		audio.ToggleMute()
	}
	audio.PlayMusic()
	return s
}

// World returns the current world. Callers must treat it as read-only.
func (s *Session) World() *World { return s.world }

// Stage returns the current stage.
func (s *Session) Stage() Stage { return s.stage }

// Sizes returns the bounding box size table.
func (s *Session) Sizes() *Sizes { return &s.sizes }

// Config returns the session configuration.
func (s *Session) Config() config.ShooterConfig { return s.cfg }

// Audio returns the audio sink.
func (s *Session) Audio() core.AudioSink { return s.audio }

// CanMove reports whether player input is enabled.
func (s *Session) CanMove() bool { return s.canMove }

// QuitRequested reports whether the exit action was taken.
func (s *Session) QuitRequested() bool { return s.quit }

// TimersActive reports whether each periodic callback is scheduled,
// in the order shoot, enemies, asteroids, pickups.
func (s *Session) TimersActive() [4]bool {
	var out [4]bool
	for i, tok := range s.periodic {
		out[i] = tok != 0
	}
	return out
}

// GameOverPending reports whether the death-to-game-over transition is scheduled.
func (s *Session) GameOverPending() bool {
	return s.gameOver != 0
}

// Step advances the simulation by one logical step. Discrete actions and
// clicks are routed to the stage machine first; only the Play stage runs
// the simulation.
func (s *Session) Step(in core.InputFrame) {
	s.handleInput(in)
	if s.stage != StagePlay {
		return
	}

	w := s.world
	if w.UpdateDifficulty(s.cfg.Difficulty.ScorePerLevel) {
		s.log.Debug("level up", "level", w.Level, "score", w.Score)
	}
	s.resolveCollisions()
	s.moveEntities()
	s.prune()
	w.Player.animate()
	s.scrollBackdrop()
	if s.canMove {
		s.movePlayer(in.Direction())
	}
}

func (s *Session) schedulePeriodic() {
	t := s.cfg.Timers
	s.periodic[timerShoot] = s.timers.Every(t.ShootInterval, s.Shoot)
	s.periodic[timerEnemies] = s.timers.Every(t.EnemyInterval, s.CreateEnemies)
	s.periodic[timerAsteroids] = s.timers.Every(t.AsteroidInterval, s.CreateAsteroids)
	s.periodic[timerPickups] = s.timers.Every(t.PickupInterval, s.CreateHealthPickup)
}

func (s *Session) cancelPeriodic() {
	for i, tok := range s.periodic {
		if tok != 0 {
			s.timers.Cancel(tok)
			s.periodic[i] = 0
		}
	}
}

// cancelAll cancels the periodic callbacks and any pending game over.
func (s *Session) cancelAll() {
	s.cancelPeriodic()
	if s.gameOver != 0 {
		s.timers.Cancel(s.gameOver)
		s.gameOver = 0
	}
}

func (s *Session) applyVolumes() {
	for snd := core.Sound(0); snd < core.SoundCount; snd++ {
		level := s.cfg.Audio.Effects
		if v, ok := s.cfg.Audio.Volumes[snd.String()]; ok {
			level = v
		}
		s.audio.SetVolume(snd, level)
	}
}

func (s *Session) play(snd core.Sound) {
	s.audio.PlaySound(snd)
}
