package core

// Sound identifies a sound effect the game can trigger.
type Sound int

const (
	SoundLaser Sound = iota
	SoundExplosion
	SoundPlayerHit
	SoundPickup
	SoundLose
	SoundMenuSelect
	SoundCount // Sentinel for counting sounds
)

// String returns the config key for the sound.
func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundExplosion:
		return "explosion"
	case SoundPlayerHit:
		return "player_hit"
	case SoundPickup:
		return "pickup"
	case SoundLose:
		return "lose"
	case SoundMenuSelect:
		return "menu_select"
	default:
		return "unknown"
	}
}

// AudioSink receives fire-and-forget audio requests from a game.
// Every call is gated by the sink's own mute flag; games never check it.
type AudioSink interface {
	PlaySound(s Sound)
	SetVolume(s Sound, level float64)
	PlayMusic()
	StopMusic()
	// ToggleMute flips the mute flag and reports whether audio is now muted.
	ToggleMute() bool
	Muted() bool
}

// NopAudio is a silent AudioSink that still tracks the mute flag,
// so menus can show a consistent sound toggle without an audio device.
type NopAudio struct {
	muted bool
}

func (n *NopAudio) PlaySound(Sound)         {}
func (n *NopAudio) SetVolume(Sound, float64) {}
func (n *NopAudio) PlayMusic()              {}
func (n *NopAudio) StopMusic()              {}

// ToggleMute flips the mute flag.
func (n *NopAudio) ToggleMute() bool {
	n.muted = !n.muted
	return n.muted
}

// Muted reports the mute flag.
func (n *NopAudio) Muted() bool { return n.muted }
