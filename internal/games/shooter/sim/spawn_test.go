package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/clock"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestShootRespectsCap(t *testing.T) {
	s, _, a := newPlaySession(t)
	w := s.World()

	for i := 0; i < 40; i++ {
		s.Shoot()
		if n := len(w.PlayerBullets); n > 15 {
			t.Fatalf("%d player bullets after Shoot, cap is 15", n)
		}
	}
	if n := len(w.PlayerBullets); n != 15 {
		t.Errorf("%d player bullets, expected to fill up to 15", n)
	}
	if a.count(core.SoundLaser) != 15 {
		t.Errorf("laser played %d times, expected once per bullet", a.count(core.SoundLaser))
	}
}

func TestShootSpawnsAtNose(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()
	w.Level = 2

	s.Shoot()

	b := w.PlayerBullets[0]
	if b.Pos != (core.Vec2{X: 300, Y: 636}) {
		t.Errorf("bullet at %v, expected (300, 636)", b.Pos)
	}
	if b.Speed != 17 {
		t.Errorf("bullet speed = %v, expected 15 + level", b.Speed)
	}
}

func TestSpawnersIdleOutsidePlay(t *testing.T) {
	s, _, _ := newTestSession(t)
	w := s.World()

	for i := 0; i < 100; i++ {
		s.Shoot()
		s.CreateEnemies()
		s.CreateAsteroids()
		s.CreateHealthPickup()
	}

	if n := w.EntityCount(); n != 0 {
		t.Errorf("%d entities spawned in the menu, expected 0", n)
	}
}

func TestSpawnThresholds(t *testing.T) {
	s, _, _ := newTestSession(t)

	tests := []struct {
		level    int
		enemy    float64
		asteroid float64
	}{
		{1, 0.85, 0.77},
		{2, 0.80, 0.74},
		{10, 0.40, 0.50},
		{18, 0, 0.26},
		{40, 0, 0},
	}

	for _, tt := range tests {
		if got := s.EnemyThreshold(tt.level); math.Abs(got-tt.enemy) > 1e-9 {
			t.Errorf("EnemyThreshold(%d) = %v, expected %v", tt.level, got, tt.enemy)
		}
		if got := s.AsteroidThreshold(tt.level); math.Abs(got-tt.asteroid) > 1e-9 {
			t.Errorf("AsteroidThreshold(%d) = %v, expected %v", tt.level, got, tt.asteroid)
		}
	}
}

func TestCreateEnemiesPlacement(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()
	w.Level = 4

	for i := 0; i < 500; i++ {
		before := len(w.Enemies)
		s.CreateEnemies()
		if n := len(w.Enemies) - before; n > 3+w.Level/2 {
			t.Fatalf("wave of %d enemies, expected at most %d", n, 3+w.Level/2)
		}
	}
	if len(w.Enemies) == 0 {
		t.Fatal("no enemies spawned in 500 calls")
	}

	for _, e := range w.Enemies {
		if e.Pos.X < 104 || e.Pos.X > 496 {
			t.Errorf("enemy x = %v outside [104, 496]", e.Pos.X)
		}
		if e.Pos.Y != -100 {
			t.Errorf("enemy y = %v, expected -100", e.Pos.Y)
		}
		if e.Speed != 5 {
			t.Errorf("enemy speed = %v, expected 3 + 0.5*4", e.Speed)
		}
		if e.FireAfter < 100 || e.FireAfter > 300 {
			t.Errorf("FireAfter = %d outside [100, 300]", e.FireAfter)
		}
		if e.DriftAfter < 20 || e.DriftAfter > 50 {
			t.Errorf("DriftAfter = %d outside [20, 50]", e.DriftAfter)
		}
	}
}

func TestSaturatedSpawnAlwaysFires(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()
	w.Level = 40

	for i := 0; i < 50; i++ {
		s.CreateEnemies()
		s.CreateAsteroids()
	}

	// Float64 can return exactly 0, which never beats a zero threshold,
	// but not 50 times in a row.
	if len(w.Asteroids) < 45 {
		t.Errorf("%d asteroids from 50 saturated calls", len(w.Asteroids))
	}
	if len(w.Enemies) < 45 {
		t.Errorf("%d enemies from 50 saturated calls", len(w.Enemies))
	}
}

func TestCreateAsteroidsPlacement(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()

	for i := 0; i < 500; i++ {
		s.CreateAsteroids()
	}
	if len(w.Asteroids) == 0 {
		t.Fatal("no asteroids spawned in 500 calls")
	}
	for _, a := range w.Asteroids {
		if a.Pos.X < 50 || a.Pos.X > 550 || a.Pos.Y != -50 {
			t.Errorf("asteroid at %v, expected x in [50, 550] and y = -50", a.Pos)
		}
		if math.Abs(a.Speed-1.3) > 1e-9 {
			t.Errorf("asteroid speed = %v, expected 1 + 0.3*1", a.Speed)
		}
		if a.Variant < 0 || a.Variant >= 5 {
			t.Errorf("variant = %d outside [0, 5)", a.Variant)
		}
	}
}

func TestCreateHealthPickupKinds(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Pickups.Chance = 1
	s := NewSession(cfg, clock.NewQueue(), Options{Seed: 7})
	s.Start()
	w := s.World()

	for i := 0; i < 200; i++ {
		s.CreateHealthPickup()
	}

	var health, shield int
	for _, p := range w.Pickups {
		switch p.Category {
		case CategoryHealthPickup:
			health++
			if p.Amount != 20 {
				t.Errorf("health pickup amount = %v, expected 20", p.Amount)
			}
		case CategoryShieldPickup:
			shield++
			if p.Amount != 15 {
				t.Errorf("shield pickup amount = %v, expected 15", p.Amount)
			}
		default:
			t.Errorf("unexpected pickup category %v", p.Category)
		}
		if p.Speed != 2 {
			t.Errorf("pickup speed = %v, expected 2", p.Speed)
		}
	}
	if health == 0 || shield == 0 {
		t.Errorf("health=%d shield=%d, expected both kinds", health, shield)
	}
}

func TestPickupChanceZeroNeverSpawns(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Pickups.Chance = 0
	s := NewSession(cfg, clock.NewQueue(), Options{Seed: 7})
	s.Start()

	for i := 0; i < 200; i++ {
		s.CreateHealthPickup()
	}
	if n := len(s.World().Pickups); n != 0 {
		t.Errorf("%d pickups with zero chance", n)
	}
}
