package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/oto/v2"

	"duality/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	sampleFormat = 0 // oto.FormatFloat32LE

	// At most this much music is queued ahead of the player.
	musicAhead = 250 * time.Millisecond
)

type Options struct {
	SFXVolume   float64
	MusicVolume float64
	Logger      *log.Logger
}

// Engine plays cues and music through oto. It implements game.Audio; all
// methods are safe to call before the device is ready, they just stay quiet.
type Engine struct {
	ctx   *oto.Context
	ready chan struct{}

	sfxVolume   float64
	musicVolume float64
	log         *log.Logger

	cues  map[game.Cue][]byte
	seq   *Sequencer
	queue *streamQueue

	mu     sync.Mutex
	music  oto.Player
	closed bool
}

func NewEngine(opts Options) (*Engine, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, sampleFormat)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.Writer(), "", 0)
	}

	rate := beep.SampleRate(SampleRate)
	e := &Engine{
		ctx:         ctx,
		ready:       ready,
		sfxVolume:   clamp01(opts.SFXVolume),
		musicVolume: clamp01(opts.MusicVolume),
		log:         logger,
		cues:        renderCues(rate),
		seq:         NewSequencer(rate, Songs[:]),
		queue:       newStreamQueue(rate.N(musicAhead) * frameBytes),
	}
	return e, nil
}

func (e *Engine) isReady() bool {
	select {
	case <-e.ready:
		return true
	default:
		return false
	}
}

// Play starts the sound for c on its own player.
func (e *Engine) Play(c game.Cue) {
	pcm, ok := e.cues[c]
	if !ok || e.sfxVolume <= 0 || !e.isReady() {
		return
	}
	go func() {
		player := e.ctx.NewPlayer(&soundReader{data: pcm})
		player.SetVolume(e.sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			e.log.Printf("audio: close %s player: %v", c, err)
		}
	}()
}

// Music advances the sequencer; called once per frame.
func (e *Engine) Music(song game.Song, step uint64) {
	if e.musicVolume <= 0 || !e.isReady() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if e.music == nil {
		e.music = e.ctx.NewPlayer(e.queue)
		e.music.SetVolume(e.musicVolume)
		e.music.Play()
		e.log.Printf("audio: music started")
	}
	if samples := e.seq.Advance(song, step); samples != nil {
		e.queue.Push(encode(samples))
	}
}

// Close stops the music. Cue players finish on their own.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	e.queue.Clear()
	if e.music == nil {
		return nil
	}
	if err := e.music.Close(); err != nil {
		return fmt.Errorf("close music player: %w", err)
	}
	return nil
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
