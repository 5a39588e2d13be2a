package sim

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// World owns every live entity and the score. It is rebuilt from scratch on
// each new game; nothing outside a World holds references into it.
type World struct {
	Score  int
	Level  int
	Player *Player

	PlayerBullets []Entity
	EnemyBullets  []Entity
	Asteroids     []Entity
	Enemies       []Entity
	Explosions    []Entity
	Pickups       []Entity

	// Scroll is the backdrop offset in field units, wrapping at the field height.
	Scroll float64
}

// NewWorld creates an empty world at level 1 with a fresh player at the
// configured spawn position.
func NewWorld(cfg config.ShooterConfig) *World {
	return &World{
		Level:  1,
		Player: NewPlayer(cfg.Player),
	}
}

// EntityCount returns the number of entities across all collections,
// excluding the player.
func (w *World) EntityCount() int {
	return len(w.PlayerBullets) + len(w.EnemyBullets) + len(w.Asteroids) +
		len(w.Enemies) + len(w.Explosions) + len(w.Pickups)
}

// addScore adds a non-negative amount to the score.
func (w *World) addScore(n int) {
	if n > 0 {
		w.Score += n
	}
}

func (w *World) spawnExplosion(at core.Vec2, life int) {
	w.Explosions = append(w.Explosions, Entity{
		Category: CategoryExplosion,
		Pos:      at,
		Life:     life,
	})
}

// compact removes the entities whose gone flag is set, keeping order.
func compact(list []Entity, gone []bool) []Entity {
	n := 0
	for i := range list {
		if gone[i] {
			continue
		}
		list[n] = list[i]
		n++
	}
	return list[:n]
}
