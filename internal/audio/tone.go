package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Envelope and note lengths are counted in 60 Hz frames.
const frameDuration = time.Second / 60

// Channel is the sound generator a tone plays on.
type Channel int

const (
	Pulse1 Channel = iota
	Pulse2
	Triangle
	Noise
)

// Pulse duty cycles.
const (
	Duty12 = 0.125
	Duty25 = 0.25
	Duty50 = 0.5
	Duty75 = 0.75
)

// Tone is a single note or effect: a frequency slide shaped by an ADSR
// envelope. Volumes are in [0,1]; a zero Peak means full volume.
type Tone struct {
	Freq, EndFreq float64 // Hz; EndFreq 0 keeps the pitch

	Attack, Decay, Sustain, Release int // frames

	Volume float64 // sustain level
	Peak   float64 // level reached at the end of the attack

	Channel Channel
	Duty    float64 // pulse channels only, 0 means 50%
	Pan     float64 // -1 left, 0 centre, 1 right
}

// Frames is the total length of the tone.
func (t Tone) Frames() int {
	return t.Attack + t.Decay + t.Sustain + t.Release
}

// WithFreq is t retuned to freq, used to play a voice note with a track's
// envelope.
func (t Tone) WithFreq(freq float64) Tone {
	t.Freq = freq
	t.EndFreq = 0
	return t
}

// Streamer renders t at rate.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(time.Duration(t.Frames()) * frameDuration)
	osc := newOscillator(t, total, rate)
	env := newEnvelope(osc, t, rate)
	var s beep.Streamer = env
	if t.Pan != 0 {
		s = &panner{Streamer: s, pan: t.Pan}
	}
	return s
}

// oscillator produces the raw waveform with a linear pitch slide across the
// whole tone.
type oscillator struct {
	start, end float64
	duty       float64
	channel    Channel
	rate       beep.SampleRate

	phase    float64
	position int
	duration int

	seed  uint64
	noise float64
}

func newOscillator(t Tone, duration int, rate beep.SampleRate) *oscillator {
	end := t.EndFreq
	if end == 0 {
		end = t.Freq
	}
	duty := t.Duty
	if duty <= 0 || duty >= 1 {
		duty = Duty50
	}
	o := &oscillator{
		start:    t.Freq,
		end:      end,
		duty:     duty,
		channel:  t.Channel,
		rate:     rate,
		duration: duration,
		seed:     uint64(t.Freq*1000) + 1,
	}
	o.noise = lcg(&o.seed)
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		progress := float64(o.position) / float64(o.duration)
		freq := o.start + (o.end-o.start)*progress

		var val float64
		switch o.channel {
		case Pulse1, Pulse2:
			if o.phase < o.duty {
				val = 1
			} else {
				val = -1
			}
		case Triangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case Noise:
			val = o.noise
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		if o.phase >= 1 {
			o.phase -= math.Floor(o.phase)
			// Noise holds one random level per cycle.
			o.noise = lcg(&o.seed)
		}
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack, decay, sustain and release to a stream.
type envelope struct {
	streamer beep.Streamer

	attack, decay, sustain, release int // samples
	peak, level                     float64
	position                        int
}

func newEnvelope(s beep.Streamer, t Tone, rate beep.SampleRate) *envelope {
	frames := func(n int) int { return rate.N(time.Duration(n) * frameDuration) }
	peak := t.Peak
	if peak <= 0 {
		peak = 1
	}
	return &envelope{
		streamer: s,
		attack:   frames(t.Attack),
		decay:    frames(t.Decay),
		sustain:  frames(t.Sustain),
		release:  frames(t.Release),
		peak:     peak,
		level:    t.Volume,
	}
}

// gain is the envelope level at sample pos.
func (e *envelope) gain(pos int) float64 {
	switch {
	case pos < e.attack:
		return e.peak * float64(pos) / float64(e.attack)
	case pos < e.attack+e.decay:
		p := float64(pos-e.attack) / float64(e.decay)
		return e.peak + (e.level-e.peak)*p
	case pos < e.attack+e.decay+e.sustain:
		return e.level
	default:
		if e.release == 0 {
			return 0
		}
		p := float64(pos-e.attack-e.decay-e.sustain) / float64(e.release)
		return e.level * max(1-p, 0)
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// panner silences one side proportionally.
type panner struct {
	beep.Streamer
	pan float64
}

func (p *panner) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = p.Streamer.Stream(samples)
	left, right := 1.0, 1.0
	if p.pan > 0 {
		left = 1 - p.pan
	} else {
		right = 1 + p.pan
	}
	for i := range n {
		samples[i][0] *= left
		samples[i][1] *= right
	}
	return n, ok
}

// newVolume scales s linearly. A zero volume is silent since math.Log2(0)
// is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
