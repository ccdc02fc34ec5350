// Package audio synthesizes the game's sound effects with beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every effect is generated at.
const SampleRate = beep.SampleRate(44100)

// Effect timings
const (
	chompDuration   = 70 * time.Millisecond
	chompGap        = 30 * time.Millisecond
	chompAttack     = 5 * time.Millisecond
	chompRelease    = 40 * time.Millisecond
	gameOverNote    = 180 * time.Millisecond
	gameOverTail    = 450 * time.Millisecond
	gameOverAttack  = 10 * time.Millisecond
	gameOverRelease = 90 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with a linear fade in over attack and fade out over
// release, truncating it at duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, true
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// pitchFor maps a heal amount to a chomp pitch: bigger meals sound lower.
func pitchFor(heal float64) float64 {
	return 660 * math.Pow(2, -heal/25)
}

// EatSound is a two-bite chomp whose pitch drops with the heal amount.
func EatSound(heal, volume float64) beep.Streamer {
	pitch := pitchFor(heal)
	bite := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, chompDuration, WaveSquare, SampleRate)
		return NewEnvelope(osc, chompDuration, chompAttack, chompRelease, SampleRate)
	}
	gap := beep.Silence(SampleRate.N(chompGap))

	return newVolume(beep.Seq(bite(pitch), gap, bite(pitch*0.8)), volume*0.4)
}

// GameOverSound is a descending phrase ending in a burst of noise.
func GameOverSound(volume float64) beep.Streamer {
	note := func(freq float64, d time.Duration, wave WaveType) beep.Streamer {
		osc := NewOscillator(freq, d, wave, SampleRate)
		return NewEnvelope(osc, d, gameOverAttack, gameOverRelease, SampleRate)
	}

	phrase := beep.Seq(
		note(392, gameOverNote, WaveSquare),
		note(349.23, gameOverNote, WaveSquare),
		note(261.63, gameOverNote, WaveSquare),
		note(196, gameOverTail, WaveSaw),
		newVolume(note(0, gameOverNote, WaveNoise), 0.2),
	)
	return newVolume(phrase, volume*0.35)
}
