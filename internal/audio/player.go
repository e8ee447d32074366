package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/neon-drone/internal/drone"
)

// ErrNoSpeaker is returned by Init in builds without a sound backend
// (CGO disabled, or the noaudio tag).
var ErrNoSpeaker = errors.New("audio: built without speaker support")

// Player mixes cues onto the system speaker.
// A nil or muted Player accepts every call and plays nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	voices      map[drone.Sound]Voice
	initialized bool
	muted       bool
}

// NewPlayer creates a player with the standard cue table.
func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		voices: Voices(),
	}
}

// Init opens the speaker. It is safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := openSpeaker(p.mixer); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// SetMuted silences or restores output.
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether output is silenced.
func (p *Player) Muted() bool {
	if p == nil {
		return true
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play starts a cue. Unknown cues and SoundNone are ignored.
func (p *Player) Play(s drone.Sound) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	v, ok := p.voices[s]
	if !ok {
		return
	}

	lockSpeaker()
	p.mixer.Add(v.Streamer(SampleRate))
	unlockSpeaker()
}

// PlayEvents plays the cue of every event in order.
func (p *Player) PlayEvents(events []drone.Event) {
	for _, e := range events {
		if s := e.Sound(); s != drone.SoundNone {
			p.Play(s)
		}
	}
}

// Close stops all cues.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	lockSpeaker()
	p.mixer.Clear()
	unlockSpeaker()
	p.initialized = false
}
