package sim

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// spawning reports whether periodic callbacks may create entities.
func (s *Session) spawning() bool {
	return s.stage == StagePlay && s.canMove
}

// Shoot fires a player bullet from the ship's nose unless the player
// bullet cap is reached.
func (s *Session) Shoot() {
	if !s.spawning() {
		return
	}
	w := s.world
	if len(w.PlayerBullets) >= s.cfg.Bullets.PlayerCap {
		return
	}
	p := w.Player
	w.PlayerBullets = append(w.PlayerBullets, Entity{
		Category: CategoryPlayerBullet,
		Pos:      core.Vec2{X: p.Pos.X, Y: p.Pos.Y - s.cfg.Player.Size.H},
		Speed:    s.cfg.Bullets.PlayerBaseSpeed + float64(w.Level),
	})
	s.play(core.SoundLaser)
}

// EnemyThreshold is the draw an enemy wave must exceed at level.
// It floors at zero, where spawning saturates.
func (s *Session) EnemyThreshold(level int) float64 {
	c := s.cfg.Enemies
	return math.Max(0, c.BaseThreshold-c.ThresholdPerLevel*float64(level))
}

// AsteroidThreshold is the draw an asteroid must exceed at level.
func (s *Session) AsteroidThreshold(level int) float64 {
	c := s.cfg.Asteroids
	return math.Max(0, c.BaseThreshold-c.ThresholdPerLevel*float64(level))
}

// CreateEnemies may spawn a wave of 1 to BaseMaxCount+level/2 enemies along
// the top edge.
func (s *Session) CreateEnemies() {
	if !s.spawning() {
		return
	}
	w := s.world
	c := s.cfg.Enemies
	if s.rng.Float64() <= s.EnemyThreshold(w.Level) {
		return
	}

	n := s.randBetween(1, c.BaseMaxCount+w.Level/2)
	for i := 0; i < n; i++ {
		w.Enemies = append(w.Enemies, Entity{
			Category:   CategoryEnemy,
			Pos:        core.Vec2{X: s.randX(c.SpawnMarginX), Y: c.SpawnY},
			Speed:      c.BaseSpeed + c.SpeedPerLevel*float64(w.Level),
			DriftDir:   s.randomDir(),
			DriftAfter: s.randBetween(c.DriftMinSteps, c.DriftMaxSteps),
			FireAfter:  s.randBetween(c.FireMinSteps, c.FireMaxSteps),
			Frame:      1,
		})
	}
}

// CreateAsteroids may spawn one asteroid along the top edge.
func (s *Session) CreateAsteroids() {
	if !s.spawning() {
		return
	}
	w := s.world
	c := s.cfg.Asteroids
	if s.rng.Float64() <= s.AsteroidThreshold(w.Level) {
		return
	}

	w.Asteroids = append(w.Asteroids, Entity{
		Category: CategoryAsteroid,
		Pos:      core.Vec2{X: s.randX(c.SpawnMarginX), Y: c.SpawnY},
		Speed:    c.BaseSpeed + c.SpeedPerLevel*float64(w.Level),
		Variant:  s.rng.Intn(c.Variants),
	})
}

// CreateHealthPickup may spawn a health or shield pickup, with equal odds.
func (s *Session) CreateHealthPickup() {
	if !s.spawning() {
		return
	}
	c := s.cfg.Pickups
	if s.rng.Float64() <= 1-c.Chance {
		return
	}

	e := Entity{
		Pos:   core.Vec2{X: s.randX(c.SpawnMarginX), Y: c.SpawnY},
		Speed: c.Speed,
	}
	if s.rng.Float64() > 0.5 {
		e.Category = CategoryHealthPickup
		e.Amount = c.HealAmount
	} else {
		e.Category = CategoryShieldPickup
		e.Amount = c.ShieldAmount
	}
	s.world.Pickups = append(s.world.Pickups, e)
}

// SpawnPickup places a pickup of category c at pos. It is the manual
// counterpart of CreateHealthPickup.
func (s *Session) SpawnPickup(c Category, pos core.Vec2) {
	e := Entity{Category: c, Pos: pos, Speed: s.cfg.Pickups.Speed}
	switch c {
	case CategoryHealthPickup:
		e.Amount = s.cfg.Pickups.HealAmount
	case CategoryShieldPickup:
		e.Amount = s.cfg.Pickups.ShieldAmount
	default:
		return
	}
	s.world.Pickups = append(s.world.Pickups, e)
}

// randBetween returns a uniform integer in [lo, hi].
func (s *Session) randBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// randX returns a whole-unit x position at least margin from either side.
func (s *Session) randX(margin float64) float64 {
	lo := int(math.Ceil(margin))
	hi := int(math.Floor(s.cfg.Field.Width - margin))
	return float64(s.randBetween(lo, hi))
}

func (s *Session) randomDir() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
