package sim

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// moveFunc advances one entity by a step. It returns false when the entity
// should leave its collection (expired explosion, collected pickup).
type moveFunc func(s *Session, e *Entity) bool

// movers is the per-category behaviour table.
var movers = [categoryCount]moveFunc{
	CategoryPlayerBullet: moveUp,
	CategoryEnemyBullet:  moveDown,
	CategoryEnemy:        moveEnemy,
	CategoryAsteroid:     moveDown,
	CategoryHealthPickup: movePickup,
	CategoryShieldPickup: movePickup,
	CategoryExplosion:    animateExplosion,
}

// moveEntities applies the behaviour table to every collection. Enemies go
// first, so bullets they fire this step also move this step.
func (s *Session) moveEntities() {
	w := s.world
	w.Enemies = s.advance(w.Enemies)
	w.Asteroids = s.advance(w.Asteroids)
	w.Explosions = s.advance(w.Explosions)
	w.EnemyBullets = s.advance(w.EnemyBullets)
	w.PlayerBullets = s.advance(w.PlayerBullets)
	w.Pickups = s.advance(w.Pickups)
}

func (s *Session) advance(list []Entity) []Entity {
	n := 0
	for i := range list {
		e := &list[i]
		if mv := movers[e.Category]; mv != nil && !mv(s, e) {
			continue
		}
		list[n] = *e
		n++
	}
	return list[:n]
}

func moveUp(_ *Session, e *Entity) bool {
	e.Pos.Y -= e.Speed
	return true
}

func moveDown(_ *Session, e *Entity) bool {
	e.Pos.Y += e.Speed
	return true
}

func moveEnemy(s *Session, e *Entity) bool {
	cfg := s.cfg.Enemies
	w := s.world

	e.DriftTimer++
	if e.DriftTimer > e.DriftAfter {
		e.DriftDir = s.randomDir()
		e.DriftAfter = s.randBetween(cfg.DriftMinSteps, cfg.DriftMaxSteps)
		e.DriftTimer = 0
	}

	e.Pos.X += e.DriftDir * float64(w.Level-1)
	e.Pos.Y += e.Speed
	half := cfg.Size.W / 2
	e.Pos.X = core.ClampF(e.Pos.X, half, s.cfg.Field.Width-half)

	s.enemyFire(e)

	anim := s.cfg.Player
	e.Frame += anim.AnimStep
	if e.Frame >= anim.AnimFrames {
		e.Frame = 1
	}
	return true
}

// enemyFire advances an enemy's fire timer. While the enemy bullet cap is
// reached the timer does not advance.
func (s *Session) enemyFire(e *Entity) {
	w := s.world
	if len(w.EnemyBullets) >= s.cfg.Bullets.EnemyCap {
		return
	}
	if e.FireTimer >= e.FireAfter {
		w.EnemyBullets = append(w.EnemyBullets, Entity{
			Category: CategoryEnemyBullet,
			Pos:      core.Vec2{X: e.Pos.X, Y: e.Pos.Y + s.cfg.Enemies.Size.H},
			Speed:    s.cfg.Bullets.EnemyBaseSpeed + float64(w.Level),
		})
		s.play(core.SoundLaser)
		e.FireTimer = 0
		e.FireAfter = s.randBetween(s.cfg.Enemies.FireMinSteps, s.cfg.Enemies.FireMaxSteps)
	}
	e.FireTimer++
}

// movePickup moves a pickup down and collects it if it overlaps the player.
func movePickup(s *Session, e *Entity) bool {
	e.Pos.Y += e.Speed

	p := s.world.Player
	if !s.sizes.Box(e.Category, e.Pos).Intersects(s.sizes.Box(CategoryPlayer, p.Pos)) {
		return true
	}
	s.collect(e)
	return false
}

// collect applies a pickup's effect to the player.
func (s *Session) collect(e *Entity) {
	p := s.world.Player
	switch e.Category {
	case CategoryHealthPickup:
		p.Heal(e.Amount)
	case CategoryShieldPickup:
		p.RechargeShield(e.Amount)
	}
	s.play(core.SoundPickup)
}

func animateExplosion(s *Session, e *Entity) bool {
	cfg := s.cfg.Explosion
	e.Frame += cfg.FrameStep
	if e.Frame >= cfg.Frames {
		e.Frame = 0
	}
	e.Life--
	return e.Life > 0
}

// prune drops entities that have left the field: player bullets past the
// top edge, everything else past the bottom edge. Explosions expire on
// their own and are not pruned by position.
func (s *Session) prune() {
	w := s.world
	h := s.cfg.Field.Height

	w.PlayerBullets = keep(w.PlayerBullets, func(e *Entity) bool { return e.Pos.Y > 0 })
	below := func(e *Entity) bool { return e.Pos.Y < h }
	w.EnemyBullets = keep(w.EnemyBullets, below)
	w.Enemies = keep(w.Enemies, below)
	w.Asteroids = keep(w.Asteroids, below)
	w.Pickups = keep(w.Pickups, below)
}

func keep(list []Entity, pred func(*Entity) bool) []Entity {
	n := 0
	for i := range list {
		if pred(&list[i]) {
			list[n] = list[i]
			n++
		}
	}
	return list[:n]
}

// movePlayer moves the player along the normalized input direction and
// keeps the whole ship inside the field.
func (s *Session) movePlayer(dir core.Vec2) {
	if dir == (core.Vec2{}) {
		return
	}
	p := s.world.Player
	p.Pos = p.Pos.Add(dir.Normalized().Scale(p.Speed))

	size := s.cfg.Player.Size
	p.Pos.X = core.ClampF(p.Pos.X, size.W/2, s.cfg.Field.Width-size.W/2)
	p.Pos.Y = core.ClampF(p.Pos.Y, size.H/2, s.cfg.Field.Height-size.H/2)
}

func (s *Session) scrollBackdrop() {
	w := s.world
	w.Scroll += s.cfg.Field.ScrollSpeed
	if h := s.cfg.Field.Height; w.Scroll >= h {
		w.Scroll -= h
	}
}
