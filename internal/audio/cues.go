package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"duality/internal/game"
)

var (
	bombTone  = Tone{Freq: 380, EndFreq: 10, Decay: 10, Sustain: 10, Volume: 0.1, Channel: Pulse1, Duty: Duty50}
	deathTone = Tone{Freq: 140, EndFreq: 110, Decay: 6, Sustain: 3, Volume: 0.6, Channel: Noise}
	lifeTone  = Tone{
		Freq: 1, EndFreq: 6000,
		Attack: 3, Decay: 8, Sustain: 1, Release: 3,
		Volume: 1, Peak: 1, Channel: Pulse1, Duty: Duty12,
	}
	joinTone = Tone{Freq: 400, EndFreq: 1000, Sustain: 10, Volume: 1, Channel: Pulse2, Duty: Duty12}
)

// Palette blip: two short sine pings a fifth apart.
const (
	blipFreq = 660
	blipLen  = 40 * time.Millisecond
)

// cueStreamer builds the sound for c, or nil when c is silent.
func cueStreamer(c game.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case game.CueBombExploded:
		return bombTone.Streamer(rate)
	case game.CuePlayerDied:
		return deathTone.Streamer(rate)
	case game.CueExtraLife:
		// The sweep twice with a gap, louder on the second pass.
		return beep.Seq(
			newVolume(lifeTone.Streamer(rate), 0.6),
			beep.Silence(rate.N(50*time.Millisecond)),
			lifeTone.Streamer(rate),
		)
	case game.CuePlayerJoined:
		return joinTone.Streamer(rate)
	case game.CuePaletteChanged:
		return blip(rate)
	}
	return nil
}

func blip(rate beep.SampleRate) beep.Streamer {
	var pings []beep.Streamer
	for _, f := range []float64{blipFreq, blipFreq * 1.5} {
		sine, err := generators.SineTone(rate, f)
		if err != nil {
			// Only fails above the Nyquist frequency.
			return nil
		}
		pings = append(pings, newVolume(beep.Take(rate.N(blipLen), sine), 0.25))
	}
	return beep.Seq(pings...)
}

// renderCues pre-renders every cue to PCM.
func renderCues(rate beep.SampleRate) map[game.Cue][]byte {
	out := make(map[game.Cue][]byte)
	for _, c := range []game.Cue{
		game.CueBombExploded,
		game.CueExtraLife,
		game.CuePlayerDied,
		game.CuePlayerJoined,
		game.CuePaletteChanged,
	} {
		if s := cueStreamer(c, rate); s != nil {
			out[c] = encode(drain(s, rate))
		}
	}
	return out
}
