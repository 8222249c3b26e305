// Package otoaudio plays the beeper through oto, for frontends without
// their own audio device.
package otoaudio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
	"github.com/tuboc/chirp/emulator"
)

const (
	channels    = 1
	sampleBytes = 4
)

// Beeper implements emulator.Audio with a single oto player that streams
// either the tone or silence.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	stream *toneStream
}

func New() (*Beeper, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   emulator.SampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	stream := &toneStream{tone: emulator.NewTone(emulator.SampleRate)}
	player := ctx.NewPlayer(stream)
	player.Play()

	return &Beeper{ctx: ctx, player: player, stream: stream}, nil
}

func (b *Beeper) StartBeep() { b.stream.on.Store(true) }

func (b *Beeper) StopBeep() { b.stream.on.Store(false) }

func (b *Beeper) Close() error {
	return b.player.Close()
}

// toneStream is an endless io.Reader of float32 little endian samples.
type toneStream struct {
	on atomic.Bool

	mu   sync.Mutex
	tone *emulator.Tone
}

func (s *toneStream) Read(p []byte) (int, error) {
	n := len(p) / sampleBytes * sampleBytes
	on := s.on.Load()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n; i += sampleBytes {
		var v float32
		if on {
			v = s.tone.Next()
		}
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(v))
	}
	return n, nil
}
