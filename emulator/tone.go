package emulator

import "math"

const (
	SampleRate    = 48000
	ToneFrequency = 440.0
	ToneVolume    = 0.2

	// FrameSamples is the number of samples covering one timer tick.
	FrameSamples = SampleRate / TimerFrequency
)

// Tone is a continuous sine wave generator for the beeper.
type Tone struct {
	phase float64
	step  float64
}

func NewTone(sampleRate int) *Tone {
	return &Tone{step: 2 * math.Pi * ToneFrequency / float64(sampleRate)}
}

// Next returns the next sample in [-ToneVolume, ToneVolume].
func (t *Tone) Next() float32 {
	v := ToneVolume * math.Sin(t.phase)
	t.phase += t.step
	if t.phase >= 2*math.Pi {
		t.phase -= 2 * math.Pi
	}
	return float32(v)
}

func (t *Tone) Fill(buf []float32) {
	for i := range buf {
		buf[i] = t.Next()
	}
}
