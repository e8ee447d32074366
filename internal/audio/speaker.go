//go:build cgo && !noaudio

package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// openSpeaker starts the system output with a 50ms buffer and feeds it s.
func openSpeaker(s beep.Streamer) error {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

func lockSpeaker()   { speaker.Lock() }
func unlockSpeaker() { speaker.Unlock() }
