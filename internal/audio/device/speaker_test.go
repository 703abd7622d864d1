package device

import (
	"testing"

	"github.com/tomz197/invaders/internal/effect"
)

func TestSpeakerIgnoresPlayBeforeInit(t *testing.T) {
	s := NewSpeaker(1)
	s.Play(effect.SoundLaser)
	s.Play(effect.SoundLose)
	if s.initialized {
		t.Fatal("speaker should stay uninitialised")
	}
	s.Close()
}
