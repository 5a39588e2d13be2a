package sim

import "github.com/vovakirdan/tui-shooter/internal/core"

// resolveCollisions runs the four collision passes in order. Removals are
// marked during the passes and applied once all of them are done; an entity
// marked by an earlier pass is invisible to later ones.
func (s *Session) resolveCollisions() {
	w := s.world
	bulletGone := make([]bool, len(w.PlayerBullets))
	enemyGone := make([]bool, len(w.Enemies))
	asteroidGone := make([]bool, len(w.Asteroids))
	enemyBulletGone := make([]bool, len(w.EnemyBullets))

	s.shootDown(w.Enemies, bulletGone, enemyGone, s.cfg.Enemies.Score)
	s.shootDown(w.Asteroids, bulletGone, asteroidGone, s.cfg.Asteroids.Score)

	playerBox := s.sizes.Box(CategoryPlayer, w.Player.Pos)

	// Every overlapping enemy bullet hits, not just the first.
	for i := range w.EnemyBullets {
		if !s.sizes.Box(CategoryEnemyBullet, w.EnemyBullets[i].Pos).Intersects(playerBox) {
			continue
		}
		enemyBulletGone[i] = true
		s.play(core.SoundPlayerHit)
		s.damagePlayer(s.cfg.Bullets.EnemyDamage)
	}

	for i := range w.Asteroids {
		if asteroidGone[i] {
			continue
		}
		if !s.sizes.Box(CategoryAsteroid, w.Asteroids[i].Pos).Intersects(playerBox) {
			continue
		}
		asteroidGone[i] = true
		w.spawnExplosion(w.Player.Pos, s.cfg.Explosion.Life)
		s.play(core.SoundExplosion)
		s.damagePlayer(s.cfg.Asteroids.Damage)
	}

	w.PlayerBullets = compact(w.PlayerBullets, bulletGone)
	w.Enemies = compact(w.Enemies, enemyGone)
	w.Asteroids = compact(w.Asteroids, asteroidGone)
	w.EnemyBullets = compact(w.EnemyBullets, enemyBulletGone)
}

// shootDown tests every live player bullet against targets. Each bullet
// destroys at most the first target it overlaps, in collection order.
func (s *Session) shootDown(targets []Entity, bulletGone, targetGone []bool, score int) {
	w := s.world
	for i := range w.PlayerBullets {
		if bulletGone[i] {
			continue
		}
		bb := s.sizes.Box(CategoryPlayerBullet, w.PlayerBullets[i].Pos)
		for j := range targets {
			if targetGone[j] {
				continue
			}
			if !bb.Intersects(s.sizes.Box(targets[j].Category, targets[j].Pos)) {
				continue
			}
			bulletGone[i] = true
			targetGone[j] = true
			w.spawnExplosion(targets[j].Pos, s.cfg.Explosion.Life)
			w.addScore(score)
			s.play(core.SoundExplosion)
			break
		}
	}
}
