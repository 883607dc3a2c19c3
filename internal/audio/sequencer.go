package audio

import (
	"time"

	"github.com/gopxl/beep"

	"duality/internal/game"
)

// Overall music level before the player volume, leaving headroom for four
// channels.
const musicMix = 0.3

// Sequencer renders songs one step at a time. Notes longer than a step ring
// on into the following steps.
type Sequencer struct {
	rate        beep.SampleRate
	stepSamples int
	songs       [][]Track

	started  bool
	lastSong game.Song
	lastStep uint64
	carry    [][2]float64
}

func NewSequencer(rate beep.SampleRate, songs [][]Track) *Sequencer {
	return &Sequencer{
		rate:        rate,
		stepSamples: rate.N(time.Duration(game.MusicSpeedCtrl) * frameDuration),
		songs:       songs,
	}
}

// StepSamples is the length of one step.
func (s *Sequencer) StepSamples() int { return s.stepSamples }

// Advance renders the audio for step of song. It returns nil when the step
// was already rendered; the host calls it every frame.
func (s *Sequencer) Advance(song game.Song, step uint64) [][2]float64 {
	if s.started && song == s.lastSong && step == s.lastStep {
		return nil
	}
	s.started = true
	s.lastSong, s.lastStep = song, step

	var voices []beep.Streamer
	if int(song) >= 0 && int(song) < len(s.songs) {
		idx := step % game.VoiceNotes
		for _, tr := range s.songs[song] {
			if hz := tr.Voice[idx]; hz > 0 {
				voices = append(voices, tr.Tone.WithFreq(hz).Streamer(s.rate))
			}
		}
	}

	var fresh [][2]float64
	if len(voices) > 0 {
		fresh = drain(newVolume(beep.Mix(voices...), musicMix), s.rate)
	}

	n := max(s.stepSamples, len(s.carry), len(fresh))
	mixed := make([][2]float64, n)
	for i, v := range s.carry {
		mixed[i] = v
	}
	for i, v := range fresh {
		mixed[i][0] += v[0]
		mixed[i][1] += v[1]
	}

	out := mixed[:s.stepSamples]
	s.carry = append(s.carry[:0], mixed[s.stepSamples:]...)
	return out
}

// Reset drops any ringing notes.
func (s *Sequencer) Reset() {
	s.started = false
	s.carry = s.carry[:0]
}
