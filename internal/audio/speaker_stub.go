//go:build !cgo || noaudio

package audio

import "github.com/gopxl/beep"

// The speaker backend needs CGO (ALSA on Linux). Without it the player
// stays silent.
func openSpeaker(beep.Streamer) error { return ErrNoSpeaker }

func lockSpeaker()   {}
func unlockSpeaker() {}
