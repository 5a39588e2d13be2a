package sim

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestTakeDamageNeverNegative(t *testing.T) {
	cfg := config.DefaultShooterConfig().Player

	for health := 0.0; health <= cfg.MaxHealth; health += 25 {
		for shield := 0.0; shield <= cfg.MaxShield; shield += 20 {
			for _, amount := range []float64{0, 1, 10, 15, 50, 99, 100, 150, 250, 1000} {
				p := NewPlayer(cfg)
				p.Health, p.Shield = health, shield

				absorbed, _ := p.TakeDamage(amount)

				if p.Health < 0 || p.Shield < 0 {
					t.Fatalf("h=%v s=%v dmg=%v: pools went negative (h=%v s=%v)",
						health, shield, amount, p.Health, p.Shield)
				}
				want := math.Min(amount, health+shield)
				if absorbed != want {
					t.Errorf("h=%v s=%v dmg=%v: absorbed %v, expected %v",
						health, shield, amount, absorbed, want)
				}
				if lost := (health + shield) - (p.Health + p.Shield); lost != want {
					t.Errorf("h=%v s=%v dmg=%v: pools lost %v, expected %v",
						health, shield, amount, lost, want)
				}
			}
		}
	}
}

func TestTakeDamageShieldFirst(t *testing.T) {
	tests := []struct {
		name         string
		health       float64
		shield       float64
		amount       float64
		wantHealth   float64
		wantShield   float64
		wantKilled   bool
		wantAbsorbed float64
	}{
		{"shield covers all", 150, 100, 10, 150, 90, false, 10},
		{"shield exactly", 150, 10, 10, 150, 0, false, 10},
		{"spill over", 150, 15, 50, 115, 0, false, 50},
		{"no shield", 150, 0, 10, 140, 0, false, 10},
		{"lethal", 40, 5, 50, 0, 0, true, 45},
		{"already dead", 0, 0, 10, 0, 0, false, 0},
		{"negative amount", 100, 50, -5, 100, 50, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(config.DefaultShooterConfig().Player)
			p.Health, p.Shield = tt.health, tt.shield

			absorbed, killed := p.TakeDamage(tt.amount)

			if p.Health != tt.wantHealth || p.Shield != tt.wantShield {
				t.Errorf("health/shield = %v/%v, expected %v/%v", p.Health, p.Shield, tt.wantHealth, tt.wantShield)
			}
			if killed != tt.wantKilled {
				t.Errorf("killed = %v, expected %v", killed, tt.wantKilled)
			}
			if absorbed != tt.wantAbsorbed {
				t.Errorf("absorbed = %v, expected %v", absorbed, tt.wantAbsorbed)
			}
		})
	}
}

func TestHealAndRechargeClamp(t *testing.T) {
	p := NewPlayer(config.DefaultShooterConfig().Player)
	p.Health, p.Shield = 140, 95

	p.Heal(20)
	p.RechargeShield(15)

	if p.Health != 150 {
		t.Errorf("Health = %v, expected clamp at 150", p.Health)
	}
	if p.Shield != 100 {
		t.Errorf("Shield = %v, expected clamp at 100", p.Shield)
	}

	p.Health = 0
	p.Heal(20)
	if p.Health != 20 {
		t.Errorf("Health = %v after healing from 0, expected 20", p.Health)
	}
}

func TestDeathSequence(t *testing.T) {
	s, q, a := newPlaySession(t)
	w := s.World()
	p := w.Player
	p.Shield = 0

	// Three asteroid hits at 50 damage take 150 health to zero.
	for i := 0; i < 3; i++ {
		w.Asteroids = append(w.Asteroids, Entity{Category: CategoryAsteroid, Pos: p.Pos, Speed: 1})
		step(s)
	}

	if p.Health != 0 {
		t.Fatalf("Health = %v, expected 0", p.Health)
	}
	last := w.Explosions[len(w.Explosions)-1]
	if last.Pos != p.Pos {
		t.Errorf("death explosion at %v, expected player position %v", last.Pos, p.Pos)
	}
	if s.CanMove() {
		t.Error("player input should be disabled after death")
	}
	if active := s.TimersActive(); active != [4]bool{} {
		t.Errorf("periodic timers still active after death: %v", active)
	}
	if q.Len() != 1 || !s.GameOverPending() {
		t.Fatalf("expected only the game over timer pending, have %d timers", q.Len())
	}

	q.Advance(999 * time.Millisecond)
	if s.Stage() != StagePlay {
		t.Fatalf("stage = %v before the delay elapsed, expected play", s.Stage())
	}

	q.Advance(time.Millisecond)
	if s.Stage() != StageGameOver {
		t.Errorf("stage = %v one second after death, expected game-over", s.Stage())
	}
	if a.count(core.SoundLose) != 1 {
		t.Errorf("lose sound played %d times, expected 1", a.count(core.SoundLose))
	}
}

func TestDeathTriggersOnce(t *testing.T) {
	s, q, _ := newPlaySession(t)
	w := s.World()
	w.Player.Shield = 0
	w.Player.Health = 10

	for i := 0; i < 3; i++ {
		w.EnemyBullets = append(w.EnemyBullets, Entity{Category: CategoryEnemyBullet, Pos: w.Player.Pos})
	}
	step(s)

	if q.Len() != 1 {
		t.Errorf("%d timers pending, expected exactly one game over timer", q.Len())
	}
	if n := len(w.Explosions); n != 1 {
		t.Errorf("%d explosions, expected 1 death explosion", n)
	}
}

func TestDeadPlayerDoesNotMove(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()
	w.Player.Shield = 0
	w.Player.Health = 10
	w.EnemyBullets = append(w.EnemyBullets, Entity{Category: CategoryEnemyBullet, Pos: w.Player.Pos})
	step(s)

	before := w.Player.Pos
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	s.Step(in)

	if w.Player.Pos != before {
		t.Errorf("dead player moved from %v to %v", before, w.Player.Pos)
	}
}
