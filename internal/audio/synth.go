// Package audio turns the simulation's sound cues into short synthesized
// blips played through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/neon-drone/internal/drone"
)

// SampleRate is the output rate of every voice.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Voice describes one cue: a wave whose frequency ramps exponentially from
// From to To over Sweep, while the gain falls exponentially from Gain to
// near silence over Decay. The cue is cut at Length.
type Voice struct {
	Wave   WaveType
	From   float64 // Hz
	To     float64 // Hz; equal to From for a fixed pitch
	Sweep  time.Duration
	Gain   float64
	Decay  time.Duration
	Length time.Duration
}

// silence is the gain the decay ramps down to.
const silence = 0.001

// Voices returns the cue table.
func Voices() map[drone.Sound]Voice {
	const (
		decay  = 200 * time.Millisecond
		length = 250 * time.Millisecond
	)
	return map[drone.Sound]Voice{
		drone.SoundLift:    {Wave: WaveTriangle, From: 300, To: 600, Sweep: 100 * time.Millisecond, Gain: 0.2, Decay: decay, Length: length},
		drone.SoundScore:   {Wave: WaveSine, From: 800, To: 800, Gain: 0.2, Decay: decay, Length: length},
		drone.SoundCrash:   {Wave: WaveSaw, From: 400, To: 50, Sweep: 400 * time.Millisecond, Gain: 0.2, Decay: decay, Length: length},
		drone.SoundPowerUp: {Wave: WaveSquare, From: 1000, To: 1000, Gain: 0.2, Decay: decay, Length: length},
		drone.SoundCoin:    {Wave: WaveSine, From: 1500, To: 1500, Gain: 0.1, Decay: decay, Length: length},
	}
}

// Streamer returns a finite stream of the voice at the given sample rate.
func (v Voice) Streamer(rate beep.SampleRate) beep.Streamer {
	return beep.Take(rate.N(v.Length), &tone{voice: v, rate: rate})
}

// tone is an endless oscillator; Take bounds it.
type tone struct {
	voice Voice
	rate  beep.SampleRate
	phase float64
	pos   int
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		at := float64(t.pos) / float64(t.rate)

		val := wave(t.voice.Wave, t.phase) * t.gain(at)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq(at) / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}

// freq follows an exponential ramp, then holds the target.
func (t *tone) freq(at float64) float64 {
	v := t.voice
	sweep := v.Sweep.Seconds()
	if sweep <= 0 || v.From <= 0 || v.To <= 0 || at >= sweep {
		return v.To
	}
	return v.From * math.Pow(v.To/v.From, at/sweep)
}

// gain follows an exponential decay, then holds near silence.
func (t *tone) gain(at float64) float64 {
	v := t.voice
	decay := v.Decay.Seconds()
	if decay <= 0 || v.Gain <= 0 {
		return v.Gain
	}
	if at >= decay {
		return silence
	}
	return v.Gain * math.Pow(silence/v.Gain, at/decay)
}

// wave evaluates a unit-amplitude wave at phase in [0, 1).
func wave(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
