package emulator

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavBitDepth = 16

// WavRecorder is an audio sink that records the beeper to a WAV file. Audio
// is buffered in memory for the whole run and written on Close, one timer
// tick worth of samples at a time.
type WavRecorder struct {
	path    string
	tone    *Tone
	beeping bool
	samples []int
}

func NewWavRecorder(path string) *WavRecorder {
	return &WavRecorder{
		path: path,
		tone: NewTone(SampleRate),
	}
}

func (w *WavRecorder) StartBeep() {
	w.beeping = true
}

func (w *WavRecorder) StopBeep() {
	w.beeping = false
}

// Tick appends the samples of one 60Hz frame, tone or silence.
func (w *WavRecorder) Tick() {
	const maxAmplitude = 1<<(wavBitDepth-1) - 1

	for i := 0; i < FrameSamples; i++ {
		v := 0
		if w.beeping {
			v = int(w.tone.Next() * maxAmplitude)
		}
		w.samples = append(w.samples, v)
	}
}

// Frames returns the recorded length in timer ticks.
func (w *WavRecorder) Frames() int {
	return len(w.samples) / FrameSamples
}

// Close writes the recording to disk.
func (w *WavRecorder) Close() (rerr error) {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing wav file: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, wavBitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: SampleRate},
		Data:           w.samples,
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav file: %w", err)
	}
	return nil
}
