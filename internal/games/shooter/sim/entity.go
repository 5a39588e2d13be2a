// Package sim is the shooter simulation: entity lifecycle, collisions,
// health, spawning, difficulty and the stage machine. It has no I/O of its
// own; timers, audio and logging are injected through a Session.
package sim

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Category tags an entity and selects its behaviour.
type Category int

const (
	CategoryPlayerBullet Category = iota
	CategoryEnemyBullet
	CategoryEnemy
	CategoryAsteroid
	CategoryHealthPickup
	CategoryShieldPickup
	CategoryExplosion
	CategoryPlayer
	categoryCount
)

func (c Category) String() string {
	switch c {
	case CategoryPlayerBullet:
		return "player-bullet"
	case CategoryEnemyBullet:
		return "enemy-bullet"
	case CategoryEnemy:
		return "enemy"
	case CategoryAsteroid:
		return "asteroid"
	case CategoryHealthPickup:
		return "health-pickup"
	case CategoryShieldPickup:
		return "shield-pickup"
	case CategoryExplosion:
		return "explosion"
	case CategoryPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Entity is the common record for everything that lives in a World
// collection. Fields that only matter for some categories are left zero
// for the others.
type Entity struct {
	Category Category
	Pos      core.Vec2 // centre, in field units
	Speed    float64   // per step, along the category's axis

	// Enemy ships
	DriftDir   float64 // -1 or +1
	DriftTimer int
	DriftAfter int // steps until the next direction change
	FireTimer  int
	FireAfter  int // steps until the next shot

	// Enemy ships and explosions
	Frame float64

	// Explosions
	Life int

	// Asteroids: sprite variant, cosmetic only
	Variant int

	// Pickups: heal or shield amount
	Amount float64
}

// Sizes maps each category to its bounding box size.
type Sizes [categoryCount]config.Size

// NewSizes builds the size table from configuration.
func NewSizes(cfg config.ShooterConfig) Sizes {
	var s Sizes
	s[CategoryPlayerBullet] = cfg.Bullets.PlayerSize
	s[CategoryEnemyBullet] = cfg.Bullets.EnemySize
	s[CategoryEnemy] = cfg.Enemies.Size
	s[CategoryAsteroid] = cfg.Asteroids.Size
	s[CategoryHealthPickup] = cfg.Pickups.Size
	s[CategoryShieldPickup] = cfg.Pickups.Size
	s[CategoryExplosion] = cfg.Explosion.Size
	s[CategoryPlayer] = cfg.Player.Size
	return s
}

// Box returns the bounding box of an entity of category c centred at pos.
func (s *Sizes) Box(c Category, pos core.Vec2) core.Box {
	sz := s[c]
	return core.NewBox(pos.X, pos.Y, sz.W, sz.H)
}

// Of returns the size for category c.
func (s *Sizes) Of(c Category) config.Size {
	return s[c]
}
