package config

import "fmt"

// ValidationError describes the first invalid setting found in a config.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks that the configuration describes a playable game.
func (c ShooterConfig) Validate() error {
	checks := []struct {
		ok    bool
		field string
		msg   string
	}{
		{c.Field.Width > 0 && c.Field.Height > 0, "field", "width and height must be positive"},
		{c.Field.ScrollSpeed >= 0, "field.scroll_speed", "must not be negative"},
		{c.Player.MaxHealth > 0, "player.max_health", "must be positive"},
		{c.Player.MaxShield >= 0, "player.max_shield", "must not be negative"},
		{c.Player.Speed >= 0, "player.speed", "must not be negative"},
		{c.Player.StartX >= 0 && c.Player.StartX <= c.Field.Width, "player.start_x", "must lie inside the field"},
		{c.Player.StartY >= 0 && c.Player.StartY <= c.Field.Height, "player.start_y", "must lie inside the field"},
		{c.Player.AnimFrames > 1, "player.anim_frames", "must be greater than 1"},
		{validSize(c.Player.Size), "player.size", "must be positive"},
		{c.Bullets.PlayerCap >= 0, "bullets.player_cap", "must not be negative"},
		{c.Bullets.EnemyCap >= 0, "bullets.enemy_cap", "must not be negative"},
		{c.Bullets.EnemyDamage >= 0, "bullets.enemy_damage", "must not be negative"},
		{validSize(c.Bullets.PlayerSize), "bullets.player_size", "must be positive"},
		{validSize(c.Bullets.EnemySize), "bullets.enemy_size", "must be positive"},
		{c.Enemies.BaseMaxCount >= 1, "enemies.base_max_count", "must be at least 1"},
		{c.Enemies.DriftMinSteps >= 0 && c.Enemies.DriftMinSteps <= c.Enemies.DriftMaxSteps, "enemies.drift_min_steps", "must be in [0, drift_max_steps]"},
		{c.Enemies.FireMinSteps >= 0 && c.Enemies.FireMinSteps <= c.Enemies.FireMaxSteps, "enemies.fire_min_steps", "must be in [0, fire_max_steps]"},
		{2*c.Enemies.SpawnMarginX <= c.Field.Width, "enemies.spawn_margin_x", "leaves no room to spawn"},
		{validSize(c.Enemies.Size), "enemies.size", "must be positive"},
		{c.Asteroids.Damage >= 0, "asteroids.damage", "must not be negative"},
		{c.Asteroids.Variants >= 1, "asteroids.variants", "must be at least 1"},
		{2*c.Asteroids.SpawnMarginX <= c.Field.Width, "asteroids.spawn_margin_x", "leaves no room to spawn"},
		{validSize(c.Asteroids.Size), "asteroids.size", "must be positive"},
		{c.Pickups.Chance >= 0 && c.Pickups.Chance <= 1, "pickups.chance", "must be in [0, 1]"},
		{2*c.Pickups.SpawnMarginX <= c.Field.Width, "pickups.spawn_margin_x", "leaves no room to spawn"},
		{validSize(c.Pickups.Size), "pickups.size", "must be positive"},
		{c.Explosion.Frames > 0, "explosion.frames", "must be positive"},
		{c.Explosion.Life > 0, "explosion.life", "must be positive"},
		{validSize(c.Explosion.Size), "explosion.size", "must be positive"},
		{c.Timers.ShootInterval > 0, "timers.shoot_interval", "must be positive"},
		{c.Timers.EnemyInterval > 0, "timers.enemy_interval", "must be positive"},
		{c.Timers.AsteroidInterval > 0, "timers.asteroid_interval", "must be positive"},
		{c.Timers.PickupInterval > 0, "timers.pickup_interval", "must be positive"},
		{c.Timers.GameOverDelay >= 0, "timers.game_over_delay", "must not be negative"},
		{c.Difficulty.ScorePerLevel > 0, "difficulty.score_per_level", "must be positive"},
		{validVolume(c.Audio.Music), "audio.music", "must be in [0, 1]"},
		{validVolume(c.Audio.Effects), "audio.effects", "must be in [0, 1]"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return ValidationError{Field: chk.field, Message: chk.msg}
		}
	}

	for name, v := range c.Audio.Volumes {
		if !validVolume(v) {
			return ValidationError{Field: "audio.volumes." + name, Message: "must be in [0, 1]"}
		}
	}
	return nil
}

func validSize(s Size) bool {
	return s.W > 0 && s.H > 0
}

func validVolume(v float64) bool {
	return v >= 0 && v <= 1
}
