package sim

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Player is the player ship: an entity plus its health and shield pools.
type Player struct {
	Pos core.Vec2

	Health    float64
	MaxHealth float64
	Shield    float64
	MaxShield float64
	Speed     float64

	// Frame is the idle animation phase in [1, animFrames).
	Frame float64

	animStep   float64
	animFrames float64
}

// NewPlayer creates a player with full health and shield.
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{
		Pos:        core.Vec2{X: cfg.StartX, Y: cfg.StartY},
		Health:     cfg.MaxHealth,
		MaxHealth:  cfg.MaxHealth,
		Shield:     cfg.MaxShield,
		MaxShield:  cfg.MaxShield,
		Speed:      cfg.Speed,
		Frame:      1,
		animStep:   cfg.AnimStep,
		animFrames: cfg.AnimFrames,
	}
}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// TakeDamage applies amount to the shield first and the remainder to health.
// Neither pool goes below zero. It returns the damage actually absorbed and
// whether this call brought health to zero.
func (p *Player) TakeDamage(amount float64) (absorbed float64, killed bool) {
	if amount <= 0 {
		return 0, false
	}
	wasAlive := p.Alive()

	if p.Shield >= amount {
		p.Shield -= amount
		return amount, false
	}
	absorbed = p.Shield
	amount -= p.Shield
	p.Shield = 0

	if amount > p.Health {
		amount = p.Health
	}
	p.Health -= amount
	absorbed += amount

	return absorbed, wasAlive && p.Health == 0
}

// Heal adds health up to the maximum.
func (p *Player) Heal(amount float64) {
	p.Health = core.ClampF(p.Health+amount, 0, p.MaxHealth)
}

// RechargeShield adds shield up to the maximum.
func (p *Player) RechargeShield(amount float64) {
	p.Shield = core.ClampF(p.Shield+amount, 0, p.MaxShield)
}

// HealthFraction returns health as a fraction of the maximum, for display.
func (p *Player) HealthFraction() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(p.Health/p.MaxHealth, 0, 1)
}

// ShieldFraction returns shield as a fraction of the maximum, for display.
func (p *Player) ShieldFraction() float64 {
	if p.MaxShield <= 0 {
		return 0
	}
	return core.ClampF(p.Shield/p.MaxShield, 0, 1)
}

func (p *Player) animate() {
	p.Frame += p.animStep
	if p.Frame >= p.animFrames {
		p.Frame = 1
	}
}

// damagePlayer routes damage through the health model and starts the death
// sequence the first time health reaches zero.
func (s *Session) damagePlayer(amount float64) {
	p := s.world.Player
	if _, killed := p.TakeDamage(amount); killed {
		s.killPlayer()
	}
}

// killPlayer runs the death sequence: explosion at the ship, input disabled,
// spawn and fire timers cancelled, game over scheduled.
func (s *Session) killPlayer() {
	if s.dead {
		return
	}
	s.dead = true
	s.canMove = false

	p := s.world.Player
	s.world.spawnExplosion(p.Pos, s.cfg.Explosion.Life)
	s.cancelPeriodic()
	s.gameOver = s.timers.After(s.cfg.Timers.GameOverDelay, s.enterGameOver)

	s.log.Info("player destroyed", "score", s.world.Score, "level", s.world.Level)
}
