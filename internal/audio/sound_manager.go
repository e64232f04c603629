// Package audio plays the maze sounds through gopxl/beep. Every sound is
// synthesized at runtime, so no asset files ship with the binary.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/maze-trial/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager implements core.Audio on the system speaker.
// Before Initialize succeeds, and after Cleanup, every call is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	initialized bool
}

var _ core.Audio = (*SoundManager)(nil)

// NewSoundManager creates a sound manager with a master volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// PlaySoundOnce plays a one-shot effect over whatever is playing.
func (sm *SoundManager) PlaySoundOnce(id core.SoundID) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := soundStreamer(id, sm.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayMusicLooped replaces the current music with an endless loop of id.
func (sm *SoundManager) PlayMusicLooped(id core.MusicID) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	loop := musicLoop(id, sm.volume)
	if loop == nil {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music.Streamer = nil // Lets the mixer drop it
	}
	sm.music = &beep.Ctrl{Streamer: loop, Paused: false}
	sm.mixer.Add(sm.music)
	speaker.Unlock()
}

// StopMusic silences the music. One-shot effects keep playing.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}

	speaker.Lock()
	sm.music.Paused = true
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
}

func soundStreamer(id core.SoundID, vol float64) beep.Streamer {
	switch id {
	case core.SoundClear:
		return ClearJingle(sampleRate, vol)
	default:
		return nil
	}
}

// musicLoop restarts the theme every time a pass ends.
func musicLoop(id core.MusicID, vol float64) beep.Streamer {
	switch id {
	case core.MusicMaze:
		return beep.Iterate(func() beep.Streamer {
			return MazeTheme(sampleRate, vol)
		})
	default:
		return nil
	}
}
