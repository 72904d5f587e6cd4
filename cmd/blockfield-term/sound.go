package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfield/game"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short sine tones for session events. The zero value is silent.
type Sound struct {
	ready bool
}

func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Sound{}, err
	}
	return &Sound{ready: true}, nil
}

func (s *Sound) tone(freq float64, d time.Duration) {
	if !s.ready {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (s *Sound) OnEvent(e game.Event) {
	switch e.Kind {
	case game.EventLocked:
		s.tone(330, 30*time.Millisecond)
	case game.EventCleared:
		s.tone(660+110*float64(e.Rows), 120*time.Millisecond)
	case game.EventGameOver:
		s.tone(165, 400*time.Millisecond)
	}
}
