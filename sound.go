package main

import (
	"log"
	"time"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/forestsurvivor/audio"
	"github.com/milk9111/forestsurvivor/common"
)

const musicStepFrames = int(audio.MusicStep * common.TPS / time.Second)

// Sound plays synthesized effects and the bassline through ebiten's audio
// context. Until Unlock is called every method is a no-op.
type Sound struct {
	mute    bool
	cache   *audio.Cache
	music   *audio.Sequencer
	ctx     *ebaudio.Context
	players []*ebaudio.Player
}

func NewSound(mute bool) *Sound {
	return &Sound{
		mute:  mute,
		cache: audio.NewCache(audio.SampleRate, 1),
		music: audio.NewSequencer(audio.Bassline, musicStepFrames),
	}
}

// Unlock opens the audio context. It is called on the first key press or
// pointer press.
func (s *Sound) Unlock() {
	if s == nil || s.mute || s.ctx != nil {
		return
	}
	s.ctx = ebaudio.CurrentContext()
	if s.ctx == nil {
		s.ctx = ebaudio.NewContext(int(audio.SampleRate))
	}
	log.Printf("sound: audio context ready at %d Hz", int(audio.SampleRate))
}

func (s *Sound) Play(e audio.Effect) {
	if s == nil || s.ctx == nil {
		return
	}
	s.play(s.cache.Effect(e))
}

// Update advances the bassline while music is on and releases finished
// players.
func (s *Sound) Update(music bool) {
	if s == nil || s.ctx == nil {
		return
	}
	if music {
		if freq, ok := s.music.Tick(); ok {
			s.play(s.cache.Note(freq))
		}
	}

	live := s.players[:0]
	for _, p := range s.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("sound: close player: %v", err)
		}
	}
	clear(s.players[len(live):])
	s.players = live
}

// RestartMusic starts the bassline from its first note.
func (s *Sound) RestartMusic() {
	if s == nil {
		return
	}
	s.music.Reset()
}

func (s *Sound) play(pcm []byte) {
	if len(pcm) == 0 {
		return
	}
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	s.players = append(s.players, p)
}

// Close stops everything still playing.
func (s *Sound) Close() {
	if s == nil {
		return
	}
	for _, p := range s.players {
		_ = p.Close()
	}
	s.players = nil
}
