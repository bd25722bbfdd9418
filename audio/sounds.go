package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager owns the speaker and synthesizes the game's two cues. All
// playback is fire-and-forget; if the speaker never initialized, every
// play call is a no-op and the game runs silently.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize before playing.
func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize sets up the speaker with a 100ms buffer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Close()
	sm.initialized = false
}

// PlayCatch plays a short high chime for a caught orb.
func (sm *SoundManager) PlayCatch() {
	sm.play(NewTone(880, 50*time.Millisecond, sampleRate))
}

// PlayMiss plays a low tone for an orb that fell past the paddle.
func (sm *SoundManager) PlayMiss() {
	sm.play(NewTone(196, 120*time.Millisecond, sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Play(s)
}
