package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"duality/internal/game"
)

// Voice is one phrase: a frequency per step, 0 for a rest.
type Voice [game.VoiceNotes]float64

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// noteFreq parses scientific pitch names such as "A4", "C#4" or "Db5" into
// equal tempered Hz rounded to the nearest integer, A4 = 440.
func noteFreq(name string) (float64, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("note %q: too short", name)
	}
	semi, ok := semitones[name[0]]
	if !ok {
		return 0, fmt.Errorf("note %q: unknown letter", name)
	}
	rest := name[1:]
	switch rest[0] {
	case '#':
		semi++
		rest = rest[1:]
	case 'b':
		semi--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("note %q: octave: %w", name, err)
	}
	midi := (octave+1)*12 + semi
	return math.Round(440 * math.Pow(2, float64(midi-69)/12)), nil
}

// parseVoice reads whitespace separated steps; "-" is a rest.
func parseVoice(src string) (Voice, error) {
	var v Voice
	fields := strings.Fields(src)
	if len(fields) != len(v) {
		return v, fmt.Errorf("voice has %d steps, want %d", len(fields), len(v))
	}
	for i, f := range fields {
		if f == "-" {
			continue
		}
		hz, err := noteFreq(f)
		if err != nil {
			return v, fmt.Errorf("step %d: %w", i, err)
		}
		v[i] = hz
	}
	return v, nil
}

func mustVoice(src string) Voice {
	v, err := parseVoice(src)
	if err != nil {
		panic(err)
	}
	return v
}
