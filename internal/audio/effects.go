package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// envelope applies a linear attack and an exponential-ish release to a
// finite stream of the given duration.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer: beep.Take(total, s),
		attack:   min(rate.N(attack), total),
		release:  min(rate.N(release), total),
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol *= float64(remaining) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// sweep is a sine whose frequency slides from start to end over duration.
type sweep struct {
	rate       beep.SampleRate
	start, end float64
	total      int
	pos        int
	phase      float64
}

// NewSweep creates a sliding tone.
func NewSweep(start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{rate: rate, start: start, end: end, total: rate.N(duration)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		frac := float64(s.pos) / float64(s.total)
		freq := s.start + (s.end-s.start)*frac
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is white noise from a seeded source, so effects are reproducible.
type noise struct {
	rng *rand.Rand
}

func newNoise(seed int64) beep.Streamer {
	return &noise{rng: rand.New(rand.NewSource(seed))}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		val := n.rng.Float64()*2 - 1
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// newVolume scales s by a linear gain. Zero gain is silent since
// log2(0) is -Inf.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// tone wraps a generators tone, falling back to silence when the
// frequency is out of range for the sample rate.
func tone(wave func(beep.SampleRate, float64) (beep.Streamer, error), freq float64, rate beep.SampleRate) beep.Streamer {
	s, err := wave(rate, freq)
	if err != nil {
		return generators.Silence(-1)
	}
	return s
}

// Effect synthesizes the streamer for a sound effect at full volume.
// Returns nil for unknown sounds.
func Effect(snd core.Sound, rate beep.SampleRate) beep.Streamer {
	switch snd {
	case core.SoundLaser:
		return NewEnvelope(NewSweep(1800, 400, 120*time.Millisecond, rate),
			120*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, rate)

	case core.SoundExplosion:
		rumble := tone(generators.SineTone, 70, rate)
		mixed := beep.Mix(newVolume(newNoise(7), 0.6), newVolume(rumble, 0.4))
		return NewEnvelope(mixed, 450*time.Millisecond, 5*time.Millisecond, 400*time.Millisecond, rate)

	case core.SoundPlayerHit:
		buzz := tone(generators.SquareTone, 140, rate)
		return NewEnvelope(newVolume(buzz, 0.5), 150*time.Millisecond, 2*time.Millisecond, 80*time.Millisecond, rate)

	case core.SoundPickup:
		first := NewEnvelope(tone(generators.SineTone, 987.77, rate),
			80*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond, rate)
		second := NewEnvelope(tone(generators.SineTone, 1318.51, rate),
			160*time.Millisecond, 2*time.Millisecond, 120*time.Millisecond, rate)
		return beep.Seq(first, second)

	case core.SoundLose:
		return NewEnvelope(NewSweep(440, 110, 900*time.Millisecond, rate),
			900*time.Millisecond, 10*time.Millisecond, 500*time.Millisecond, rate)

	case core.SoundMenuSelect:
		return NewEnvelope(tone(generators.TriangleTone, 660, rate),
			60*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, rate)
	}
	return nil
}

// soundtrack is an endless bass and arpeggio loop.
type soundtrack struct {
	rate  beep.SampleRate
	pos   int
	beat  int
	notes []float64
}

// NewSoundtrack creates the looping background music.
func NewSoundtrack(rate beep.SampleRate) beep.Streamer {
	return &soundtrack{
		rate:  rate,
		beat:  rate.N(250 * time.Millisecond),
		notes: []float64{220, 261.63, 329.63, 392, 329.63, 261.63, 196, 246.94},
	}
}

func (m *soundtrack) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := m.pos / m.beat
		inBeat := float64(m.pos%m.beat) / float64(m.beat)
		t := float64(m.pos) / float64(m.rate)

		note := m.notes[step%len(m.notes)]
		lead := 0.25 * math.Exp(-inBeat*4) * math.Sin(2*math.Pi*note*t)
		bass := 0.2 * math.Sin(2*math.Pi*note/2*t)

		val := lead + bass
		samples[i][0] = val
		samples[i][1] = val
		m.pos++
		if m.pos == m.beat*len(m.notes)*1000 {
			m.pos = 0
		}
	}
	return len(samples), true
}

func (m *soundtrack) Err() error { return nil }
