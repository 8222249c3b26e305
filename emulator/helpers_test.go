package emulator

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/stretchr/testify/require"
	"github.com/tuboc/chirp/chip8"
)

type fakeDisplay struct {
	draws    int
	inspects int
	last     chip8.Frame
}

func (d *fakeDisplay) Draw(frame *chip8.Frame) error {
	d.draws++
	d.last = *frame
	return nil
}

type fakeInspector struct {
	fakeDisplay
}

func (d *fakeInspector) Inspect(chip8.State) {
	d.inspects++
}

type fakeAudio struct {
	starts int
	stops  int
	ticks  int
}

func (a *fakeAudio) StartBeep() { a.starts++ }
func (a *fakeAudio) StopBeep()  { a.stops++ }
func (a *fakeAudio) Tick()      { a.ticks++ }

// fakeInput returns one batch per poll and Quit once quitAfter polls passed.
type fakeInput struct {
	batches   [][]Event
	polls     int
	quitAfter int
}

func (in *fakeInput) Poll() []Event {
	in.polls++
	if in.quitAfter > 0 && in.polls >= in.quitAfter {
		return []Event{{Kind: Quit}}
	}
	if len(in.batches) == 0 {
		return nil
	}
	batch := in.batches[0]
	in.batches = in.batches[1:]
	return batch
}

func newTestMachine(t *testing.T, ops ...uint16) *chip8.Machine {
	t.Helper()

	rom := make([]byte, 2*len(ops))
	for i, op := range ops {
		binary.BigEndian.PutUint16(rom[2*i:], op)
	}

	m := chip8.New(chip8.Config{Logger: log.NewTestLogger(t), Seed: 1})
	require.NoError(t, m.LoadROM(rom))
	return m
}

func newTestEmulator(t *testing.T, m *chip8.Machine, display Display, audio Audio, input Input, opts Options) *Emulator {
	t.Helper()

	if input == nil {
		input = &fakeInput{}
	}
	if display == nil {
		display = &fakeDisplay{}
	}
	opts.Logger = log.NewTestLogger(t)
	e := New(m, display, audio, input, opts)

	clock := time.Unix(0, 0)
	e.now = func() time.Time { return clock }
	e.sleep = func(d time.Duration) { clock = clock.Add(d) }
	return e
}
