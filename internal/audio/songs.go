package audio

import "duality/internal/game"

// Track plays a voice with a fixed tone shape.
type Track struct {
	Voice Voice
	Tone  Tone
}

// Phrases, four bars per line.
var (
	themeLead = mustVoice(`
		G4 - - - D5 - E5 - D5 - E5 - D5 - - -
		G4 - - - D5 - E5 - -  - -  - -  - - -
		G4 - - - D5 - E5 - D5 - E5 - D5 - - -
		D3 - - - G4 - -  - -  - -  - -  - - -`)
	themeBeat = mustVoice(`
		G3 - G3 - G3 - G3 - G3 - G3 - G3 - G3 -
		G3 - G3 - G3 - G3 - G3 - G3 - G3 - G3 -
		G3 - G3 - G3 - G3 - G3 - G3 - G3 - G3 -
		G3 - G3 - G3 - G3 - G3 - G3 - G3 - G3 -`)
	themeThump = mustVoice(`
		-  - G1 - - - G1 - - - G1 - - - G1 -
		G1 - -  - - - G1 - - - G1 - - - -  -
		-  - G1 - - - G1 - - - G1 - - - G1 -
		G1 - -  - - - G1 - - - G1 - - - -  -`)
	pulseBass = mustVoice(`
		D3 - - - - - D3 - - - D3 - - - - -
		D3 - - - - - D3 - - - D3 - - - - -
		D3 - - - - - D3 - - - D3 - - - - -
		D3 - - - - - D3 - - - D3 - - - - -`)
	walkBass = mustVoice(`
		D3 - - - E3 - D3 - - - D3 - E3 - - -
		D3 - - - E3 - D3 - - - D3 - E3 - - -
		D3 - - - E3 - D3 - - - D3 - E3 - - -
		D3 - - - E3 - D3 - - - D3 - E3 - - -`)
	groundBass = mustVoice(`
		-  - -  - G2 - A3 - G2 - A3 - G2 - - -
		G2 - A3 - G2 - A3 - G2 - -  - G2 - - -
		-  - -  - G2 - A3 - G2 - A3 - G2 - - -
		G2 - A3 - G2 - A3 - G2 - -  - G2 - - -`)
	melody = mustVoice(`
		-  - -  - E4 - D4 - C#4 - D4 - E4 - G#4 -
		-  - E4 - A4 - -  - G4  - A4 - E4 - -   -
		G3 - D4 - A4 - E4 - -   - E3 - -  - -   -
		D3 - D3 - E3 - D3 - E3  - E3 - -  - -   -`)
	hats = mustVoice(`
		- - - - A4 - - - - - - - A4 - - -
		- - - - A4 - - - - - - - A4 - - -
		- - - - A4 - - - - - - - A4 - - -
		- - - - A4 - - - - - - - A4 - - -`)
	arpLow = mustVoice(`
		A3 - A3 - A3 - A3 - A3 - A3 - B3 - B3 -
		C4 - C4 - C4 - C4 - C4 - C4 - C4 - C4 -
		C4 - C4 - C4 - C4 - C4 - C4 - B3 - B3 -
		A3 - A3 - A3 - A3 - A3 - A3 - A3 - A3 -`)
	arpHigh = mustVoice(`
		A4 - A4 - A4 - A4 - A4 - A4 - B4 - B4 -
		C5 - C5 - C5 - C5 - C5 - C5 - C5 - C5 -
		C5 - C5 - C5 - C5 - C5 - C5 - B4 - B4 -
		A4 - A4 - A4 - A4 - A4 - A4 - A4 - A4 -`)
	introLine = mustVoice(`
		G2 - G2 - -  - A2 - -  - G2 - A2 - -  -
		D3 - -  - D3 - E3 - D3 - C3 - A2 - C3 -
		A3 - G3 - -  - E3 - -  - D3 - D3 - C3 -
		-  - A2 - G3 - A2 - G3 - A2 - A2 - -  -`)
	introHats = mustVoice(`
		- - - - G3 - - - - - - - G3 - - -
		- - - - G3 - - - - - - - G3 - - -
		- - - - G3 - - - - - - - G3 - - -
		- - - - G3 - - - - - - - G3 - - -`)
)

// Track shapes.
var (
	groundTri = Tone{Sustain: 10, Volume: 0.6, Channel: Triangle}
	hatNoise  = Tone{Sustain: 1, Release: 16, Volume: 0.4, Channel: Noise, Duty: Duty50}
	arpPulse  = Tone{Sustain: 2, Volume: 0.3, Channel: Pulse2, Duty: Duty12}
)

func bassPulse(vol float64) Tone {
	return Tone{Sustain: 8, Volume: vol, Channel: Pulse1, Duty: Duty12}
}

// Songs is indexed by game.Song. Game songs build up one layer at a time so
// switching between them at a phrase boundary sounds continuous.
var Songs = [game.GameOverSong + 1][]Track{
	game.IntroSong: {
		{introLine, bassPulse(0.6)},
		{introHats, Tone{Sustain: 1, Release: 10, Volume: 0.4, Channel: Noise, Duty: Duty50}},
	},
	game.GameSongStart: {
		{groundBass, groundTri},
	},
	game.GameSongStart + 1: {
		{pulseBass, bassPulse(0.2)},
		{groundBass, groundTri},
	},
	game.GameSongStart + 2: {
		{walkBass, bassPulse(0.2)},
		{groundBass, groundTri},
	},
	game.GameSongStart + 3: {
		{walkBass, bassPulse(0.3)},
		{arpLow, arpPulse},
		{groundBass, groundTri},
	},
	game.GameSongStart + 4: {
		{walkBass, bassPulse(0.3)},
		{arpHigh, arpPulse},
		{groundBass, groundTri},
	},
	game.GameSongStart + 5: {
		{walkBass, bassPulse(0.4)},
		{arpHigh, arpPulse},
		{groundBass, groundTri},
		{hats, hatNoise},
	},
	game.GameSongStart + 6: {
		{walkBass, bassPulse(0.6)},
		{melody, Tone{Sustain: 10, Volume: 0.7, Channel: Pulse2, Duty: Duty12}},
		{groundBass, groundTri},
		{hats, Tone{Sustain: 1, Release: 16, Volume: 0.6, Channel: Noise, Duty: Duty50}},
	},
	game.GameOverSong: {
		{themeLead, Tone{Sustain: 10, Volume: 0.4, Channel: Pulse1, Duty: Duty75}},
		{themeBeat, Tone{Sustain: 3, Volume: 0.5, Channel: Triangle, Pan: -1}},
		{themeThump, Tone{Sustain: 2, Volume: 0.8, Channel: Pulse2, Duty: Duty50, Pan: 1}},
	},
}
