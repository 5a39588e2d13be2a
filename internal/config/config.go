// Package config provides YAML-based game configuration loading and
// validation for the shooter.
package config

import "time"

// ShooterConfig contains all tunable parameters of the shooter simulation.
type ShooterConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Timers     TimerConfig      `yaml:"timers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// Size is a bounding box size in logical field units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// FieldConfig defines the logical playfield. All positions in the
// simulation are in these units, independent of terminal size.
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	ScrollSpeed float64 `yaml:"scroll_speed"` // backdrop scroll per step
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	Speed     float64 `yaml:"speed"`
	MaxHealth float64 `yaml:"max_health"`
	MaxShield float64 `yaml:"max_shield"`
	Size      Size    `yaml:"size"`
	// Idle animation cycles through frames [1, AnimFrames) at AnimStep per step.
	AnimStep   float64 `yaml:"anim_step"`
	AnimFrames float64 `yaml:"anim_frames"`
}

// BulletConfig defines player and enemy projectiles.
type BulletConfig struct {
	PlayerBaseSpeed float64 `yaml:"player_base_speed"` // plus difficulty level
	EnemyBaseSpeed  float64 `yaml:"enemy_base_speed"`  // plus difficulty level
	PlayerCap       int     `yaml:"player_cap"`
	EnemyCap        int     `yaml:"enemy_cap"`
	EnemyDamage     float64 `yaml:"enemy_damage"`
	PlayerSize      Size    `yaml:"player_size"`
	EnemySize       Size    `yaml:"enemy_size"`
}

// EnemyConfig defines enemy ships and their spawn rule.
type EnemyConfig struct {
	BaseSpeed         float64 `yaml:"base_speed"`
	SpeedPerLevel     float64 `yaml:"speed_per_level"`
	SpawnMarginX      float64 `yaml:"spawn_margin_x"`
	SpawnY            float64 `yaml:"spawn_y"`
	BaseThreshold     float64 `yaml:"base_threshold"`
	ThresholdPerLevel float64 `yaml:"threshold_per_level"`
	BaseMaxCount      int     `yaml:"base_max_count"` // plus level/2
	DriftMinSteps     int     `yaml:"drift_min_steps"`
	DriftMaxSteps     int     `yaml:"drift_max_steps"`
	FireMinSteps      int     `yaml:"fire_min_steps"`
	FireMaxSteps      int     `yaml:"fire_max_steps"`
	Score             int     `yaml:"score"`
	Size              Size    `yaml:"size"`
}

// AsteroidConfig defines asteroids and their spawn rule.
type AsteroidConfig struct {
	BaseSpeed         float64 `yaml:"base_speed"`
	SpeedPerLevel     float64 `yaml:"speed_per_level"`
	SpawnMarginX      float64 `yaml:"spawn_margin_x"`
	SpawnY            float64 `yaml:"spawn_y"`
	BaseThreshold     float64 `yaml:"base_threshold"`
	ThresholdPerLevel float64 `yaml:"threshold_per_level"`
	Damage            float64 `yaml:"damage"`
	Variants          int     `yaml:"variants"`
	Score             int     `yaml:"score"`
	Size              Size    `yaml:"size"`
}

// PickupConfig defines health and shield pickups.
type PickupConfig struct {
	Chance       float64 `yaml:"chance"` // probability per spawn tick
	Speed        float64 `yaml:"speed"`
	HealAmount   float64 `yaml:"heal_amount"`
	ShieldAmount float64 `yaml:"shield_amount"`
	SpawnMarginX float64 `yaml:"spawn_margin_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	Size         Size    `yaml:"size"`
}

// ExplosionConfig defines the explosion animation.
type ExplosionConfig struct {
	FrameStep float64 `yaml:"frame_step"`
	Frames    float64 `yaml:"frames"`
	Life      int     `yaml:"life"` // steps
	Size      Size    `yaml:"size"`
}

// TimerConfig defines the periodic and delayed callbacks.
type TimerConfig struct {
	ShootInterval    time.Duration `yaml:"shoot_interval"`
	EnemyInterval    time.Duration `yaml:"enemy_interval"`
	AsteroidInterval time.Duration `yaml:"asteroid_interval"`
	PickupInterval   time.Duration `yaml:"pickup_interval"`
	GameOverDelay    time.Duration `yaml:"game_over_delay"`
}

// DifficultyConfig defines how the level follows the score.
type DifficultyConfig struct {
	ScorePerLevel int `yaml:"score_per_level"`
}

// AudioConfig defines default volumes, in the range [0, 1].
type AudioConfig struct {
	Muted   bool               `yaml:"muted"`
	Music   float64            `yaml:"music"`
	Effects float64            `yaml:"effects"`
	Volumes map[string]float64 `yaml:"volumes"` // per-sound overrides, keyed by sound name
}
