// Package audio plays the game's synthesized sound effects and soundtrack
// through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager implements core.AudioSink on top of a beep mixer.
// Until Init succeeds every request is dropped, so a Manager without an
// audio device behaves like core.NopAudio.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVolume float64
	volumes     [core.SoundCount]float64
	muted       bool
	initialized bool
}

// NewManager creates a manager with the given soundtrack volume (0..1).
// Effect volumes start at 1.
func NewManager(musicVolume float64) *Manager {
	m := &Manager{
		mixer:       &beep.Mixer{},
		musicVolume: musicVolume,
	}
	for i := range m.volumes {
		m.volumes[i] = 1
	}
	return m
}

// Init opens the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything. beep has no way to close the speaker, so the
// device stays open until the process exits.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.music = nil
	m.initialized = false
}

// PlaySound mixes in a new instance of the effect.
func (m *Manager) PlaySound(s core.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted || s < 0 || s >= core.SoundCount {
		return
	}
	st := Effect(s, sampleRate)
	if st == nil {
		return
	}
	m.add(newVolume(st, m.volumes[s]))
}

// SetVolume sets the gain (0..1) for future plays of s.
func (m *Manager) SetVolume(s core.Sound, level float64) {
	if s < 0 || s >= core.SoundCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumes[s] = max(0, min(1, level))
}

// Volume returns the gain for s.
func (m *Manager) Volume(s core.Sound) float64 {
	if s < 0 || s >= core.SoundCount {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volumes[s]
}

// PlayMusic starts the soundtrack, or resumes it if paused.
// It does nothing while muted or if the music is already playing.
func (m *Manager) PlayMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	if m.music != nil {
		speaker.Lock()
		m.music.Paused = false
		speaker.Unlock()
		return
	}
	m.music = &beep.Ctrl{Streamer: newVolume(NewSoundtrack(sampleRate), m.musicVolume)}
	m.add(m.music)
}

// StopMusic pauses the soundtrack.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseMusic()
}

// ToggleMute flips the mute flag. Muting pauses the soundtrack; unmuting
// leaves it to the caller to call PlayMusic.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	if m.muted {
		m.pauseMusic()
	}
	return m.muted
}

// Muted reports the mute flag.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// MusicPlaying reports whether the soundtrack is currently audible.
func (m *Manager) MusicPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil {
		return false
	}
	if !m.initialized {
		return !m.music.Paused
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !m.music.Paused
}

func (m *Manager) pauseMusic() {
	if m.music == nil {
		return
	}
	if m.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	m.music.Paused = true
}

// add hands a streamer to the speaker goroutine. Callers hold m.mu.
func (m *Manager) add(s beep.Streamer) {
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Open returns an initialized Manager, or a silent sink and the init error
// when no audio device is available.
func Open(musicVolume float64) (core.AudioSink, error) {
	m := NewManager(musicVolume)
	if err := m.Init(); err != nil {
		return &core.NopAudio{}, err
	}
	return m, nil
}

var _ core.AudioSink = (*Manager)(nil)
