package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestPlayerMovesDiagonallyAtUnitSpeed(t *testing.T) {
	s, _, _ := newPlaySession(t)
	p := s.World().Player

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionRight)
	s.Step(in)

	d := 5 / math.Sqrt2
	if math.Abs(p.Pos.X-(300+d)) > 1e-9 || math.Abs(p.Pos.Y-(700-d)) > 1e-9 {
		t.Errorf("player at %v, expected (%.3f, %.3f)", p.Pos, 300+d, 700-d)
	}
}

func TestOpposingDirectionsCancel(t *testing.T) {
	s, _, _ := newPlaySession(t)
	p := s.World().Player

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionRight)
	s.Step(in)

	if p.Pos != (core.Vec2{X: 300, Y: 700}) {
		t.Errorf("player moved to %v with opposing input", p.Pos)
	}
}

func TestPlayerClampedToField(t *testing.T) {
	s, _, _ := newPlaySession(t)
	p := s.World().Player
	p.Pos = core.Vec2{X: 33, Y: 767}

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionDown)
	for i := 0; i < 10; i++ {
		s.Step(in)
	}

	// Player is 64x64 on a 600x800 field.
	if p.Pos != (core.Vec2{X: 32, Y: 768}) {
		t.Errorf("player at %v, expected clamp at (32, 768)", p.Pos)
	}
}

func TestBulletsTravelVertically(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()
	w.PlayerBullets = append(w.PlayerBullets, Entity{Category: CategoryPlayerBullet, Pos: core.Vec2{X: 100, Y: 400}, Speed: 16})
	w.EnemyBullets = append(w.EnemyBullets, Entity{Category: CategoryEnemyBullet, Pos: core.Vec2{X: 500, Y: 400}, Speed: 21})

	step(s)

	if got := w.PlayerBullets[0].Pos; got != (core.Vec2{X: 100, Y: 384}) {
		t.Errorf("player bullet at %v, expected (100, 384)", got)
	}
	if got := w.EnemyBullets[0].Pos; got != (core.Vec2{X: 500, Y: 421}) {
		t.Errorf("enemy bullet at %v, expected (500, 421)", got)
	}
}

func TestPruneLeavingEntities(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()
	w.PlayerBullets = append(w.PlayerBullets,
		Entity{Category: CategoryPlayerBullet, Pos: core.Vec2{X: 100, Y: 10}, Speed: 16},
		Entity{Category: CategoryPlayerBullet, Pos: core.Vec2{X: 100, Y: 300}, Speed: 16},
	)
	w.EnemyBullets = append(w.EnemyBullets, Entity{Category: CategoryEnemyBullet, Pos: core.Vec2{X: 50, Y: 790}, Speed: 21})
	w.Asteroids = append(w.Asteroids, Entity{Category: CategoryAsteroid, Pos: core.Vec2{X: 50, Y: 799}, Speed: 1.3})
	w.Pickups = append(w.Pickups, Entity{Category: CategoryHealthPickup, Pos: core.Vec2{X: 50, Y: 799}, Speed: 2})
	// Entities above the top edge are still arriving and must survive.
	w.Enemies = append(w.Enemies, enemy(300, -100))

	step(s)

	if n := len(w.PlayerBullets); n != 1 {
		t.Errorf("%d player bullets remain, expected 1", n)
	}
	if n := len(w.EnemyBullets); n != 0 {
		t.Errorf("%d enemy bullets remain, expected 0", n)
	}
	if n := len(w.Asteroids); n != 0 {
		t.Errorf("%d asteroids remain, expected 0", n)
	}
	if n := len(w.Pickups); n != 0 {
		t.Errorf("%d pickups remain, expected 0", n)
	}
	if n := len(w.Enemies); n != 1 {
		t.Errorf("%d enemies remain, expected the arriving one", n)
	}
}

func TestExplosionExpires(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()
	w.spawnExplosion(core.Vec2{X: 100, Y: 100}, 15)

	for i := 0; i < 14; i++ {
		step(s)
	}
	if len(w.Explosions) != 1 {
		t.Fatalf("explosion gone after 14 steps, expected it to last 15")
	}
	if f := w.Explosions[0].Frame; f < 1.39 || f > 1.41 {
		t.Errorf("Frame = %v after 14 steps, expected 1.4", f)
	}

	step(s)
	if len(w.Explosions) != 0 {
		t.Error("explosion should be removed when its life reaches zero")
	}
}

func TestEnemyDriftAndClamp(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()
	w.Level = 3

	e := enemy(40, 100)
	e.DriftDir = -1
	e.Speed = 4
	w.Enemies = append(w.Enemies, e)

	step(s)
	got := w.Enemies[0].Pos
	if got.X != 38 || got.Y != 104 {
		t.Errorf("enemy at %v, expected (38, 104)", got)
	}

	for i := 0; i < 5; i++ {
		step(s)
	}
	if x := w.Enemies[0].Pos.X; x != 32 {
		t.Errorf("enemy x = %v, expected clamp at half width 32", x)
	}
}

func TestEnemyDriftRedrawsDirection(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()

	e := enemy(300, 100)
	e.DriftAfter = 0
	w.Enemies = append(w.Enemies, e)

	step(s)

	got := w.Enemies[0]
	if got.DriftTimer != 0 {
		t.Errorf("DriftTimer = %d, expected reset to 0", got.DriftTimer)
	}
	if got.DriftAfter < 20 || got.DriftAfter > 50 {
		t.Errorf("DriftAfter = %d, expected a redraw in [20, 50]", got.DriftAfter)
	}
	if got.DriftDir != -1 && got.DriftDir != 1 {
		t.Errorf("DriftDir = %v, expected -1 or 1", got.DriftDir)
	}
}

func TestEnemyFiresAndRespectsCap(t *testing.T) {
	s, _, a := newPlaySession(t)
	w := s.World()

	e := enemy(300, 100)
	e.FireAfter = 0
	w.Enemies = append(w.Enemies, e)
	for i := 0; i < 30; i++ {
		w.EnemyBullets = append(w.EnemyBullets, Entity{Category: CategoryEnemyBullet, Pos: core.Vec2{X: 10, Y: 300}})
	}

	step(s)
	if n := len(w.EnemyBullets); n != 30 {
		t.Fatalf("%d enemy bullets at cap, expected 30", n)
	}
	if w.Enemies[0].FireTimer != 0 {
		t.Errorf("FireTimer = %d, expected it frozen at the cap", w.Enemies[0].FireTimer)
	}

	w.EnemyBullets = w.EnemyBullets[:29]
	step(s)

	if n := len(w.EnemyBullets); n != 30 {
		t.Fatalf("%d enemy bullets, expected 30 after firing", n)
	}
	shot := w.EnemyBullets[29]
	if shot.Speed != 21 {
		t.Errorf("enemy bullet speed = %v, expected 20 + level", shot.Speed)
	}
	if shot.Pos.X != 300 {
		t.Errorf("enemy bullet x = %v, expected the enemy's x", shot.Pos.X)
	}
	fa := w.Enemies[0].FireAfter
	if fa < 100 || fa > 300 {
		t.Errorf("FireAfter = %d, expected a redraw in [100, 300]", fa)
	}
	if a.count(core.SoundLaser) != 1 {
		t.Errorf("laser played %d times, expected 1", a.count(core.SoundLaser))
	}
}

func TestPickupCollectedExactlyOnce(t *testing.T) {
	s, _, a := newPlaySession(t)
	w := s.World()
	p := w.Player
	p.Health = 100

	s.SpawnPickup(CategoryHealthPickup, p.Pos)
	step(s)

	if p.Health != 120 {
		t.Errorf("Health = %v, expected 120", p.Health)
	}
	if len(w.Pickups) != 0 {
		t.Errorf("%d pickups remain, expected 0", len(w.Pickups))
	}

	step(s)
	if p.Health != 120 {
		t.Errorf("Health = %v after second step, expected the effect applied once", p.Health)
	}
	if a.count(core.SoundPickup) != 1 {
		t.Errorf("pickup sound played %d times, expected 1", a.count(core.SoundPickup))
	}
}

func TestShieldPickup(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()
	p := w.Player
	p.Shield = 50

	s.SpawnPickup(CategoryShieldPickup, p.Pos)
	step(s)

	if p.Shield != 65 {
		t.Errorf("Shield = %v, expected 65", p.Shield)
	}
}

func TestPickupMissesPlayer(t *testing.T) {
	s, _, _ := newPlaySession(t)
	w := s.World()
	s.SpawnPickup(CategoryHealthPickup, core.Vec2{X: 100, Y: 100})

	step(s)

	if len(w.Pickups) != 1 || w.Pickups[0].Pos.Y != 102 {
		t.Errorf("pickup should drift down by 2, got %v", w.Pickups)
	}
}

func TestPlayerAnimationWraps(t *testing.T) {
	s, _, _ := newPlaySession(t)
	p := s.World().Player

	for i := 0; i < 60; i++ {
		step(s)
	}
	if p.Frame < 1 || p.Frame >= 7 {
		t.Errorf("Frame = %v, expected within [1, 7)", p.Frame)
	}
}
