package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterYAML returns the embedded default configuration document.
func DefaultShooterYAML() []byte {
	return defaultShooterYAML
}

// DefaultShooterConfig returns the default shooter configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded file
// cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:       600,
			Height:      800,
			ScrollSpeed: 1,
		},
		Player: PlayerConfig{
			StartX:     300,
			StartY:     700,
			Speed:      5,
			MaxHealth:  150,
			MaxShield:  100,
			Size:       Size{W: 64, H: 64},
			AnimStep:   0.1,
			AnimFrames: 7,
		},
		Bullets: BulletConfig{
			PlayerBaseSpeed: 15,
			EnemyBaseSpeed:  20,
			PlayerCap:       15,
			EnemyCap:        30,
			EnemyDamage:     10,
			PlayerSize:      Size{W: 8, H: 24},
			EnemySize:       Size{W: 8, H: 16},
		},
		Enemies: EnemyConfig{
			BaseSpeed:         3,
			SpeedPerLevel:     0.5,
			SpawnMarginX:      104,
			SpawnY:            -100,
			BaseThreshold:     0.9,
			ThresholdPerLevel: 0.05,
			BaseMaxCount:      3,
			DriftMinSteps:     20,
			DriftMaxSteps:     50,
			FireMinSteps:      100,
			FireMaxSteps:      300,
			Score:             10,
			Size:              Size{W: 64, H: 64},
		},
		Asteroids: AsteroidConfig{
			BaseSpeed:         1,
			SpeedPerLevel:     0.3,
			SpawnMarginX:      50,
			SpawnY:            -50,
			BaseThreshold:     0.8,
			ThresholdPerLevel: 0.03,
			Damage:            50,
			Variants:          5,
			Score:             5,
			Size:              Size{W: 48, H: 48},
		},
		Pickups: PickupConfig{
			Chance:       0.05,
			Speed:        2,
			HealAmount:   20,
			ShieldAmount: 15,
			SpawnMarginX: 50,
			SpawnY:       -50,
			Size:         Size{W: 32, H: 32},
		},
		Explosion: ExplosionConfig{
			FrameStep: 0.1,
			Frames:    9,
			Life:      15,
			Size:      Size{W: 64, H: 64},
		},
		Timers: TimerConfig{
			ShootInterval:    200 * time.Millisecond,
			EnemyInterval:    200 * time.Millisecond,
			AsteroidInterval: 200 * time.Millisecond,
			PickupInterval:   200 * time.Millisecond,
			GameOverDelay:    time.Second,
		},
		Difficulty: DifficultyConfig{
			ScorePerLevel: 1000,
		},
		Audio: AudioConfig{
			Music:   0.5,
			Effects: 0.8,
			Volumes: map[string]float64{
				"laser": 0.1,
			},
		},
	}
}
