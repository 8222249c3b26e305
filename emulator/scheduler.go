package emulator

import (
	"context"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/tuboc/chirp/chip8"
)

const (
	TimerFrequency               = 60
	DefaultInstructionsPerSecond = 500

	// MaxCatchUp bounds the time a single poll accounts for, so that a
	// stalled host does not burst thousands of instructions afterwards.
	MaxCatchUp = time.Second

	pollInterval = time.Millisecond
	second       = int64(time.Second)
)

type Options struct {
	InstructionsPerSecond int
	// StepMode starts the machine paused, StepOnce events then execute
	// single instructions.
	StepMode bool
	Debug    bool
	Logger   *log.Logger
}

// Emulator drives a machine in real time: CPU steps at the configured
// instruction rate and timer ticks at 60Hz, interleaved in time order.
type Emulator struct {
	logger  *log.Logger
	machine *chip8.Machine
	display Display
	audio   Audio
	input   Input

	ips int64
	// accumulators count elapsed nanoseconds scaled by their rate, an event
	// is due once an accumulator reaches one second.
	cpuAcc   int64
	timerAcc int64

	steps     uint64
	ticks     uint64
	beeping   bool
	suspended bool
	debug     bool
	drawnTick uint64

	now   func() time.Time
	sleep func(time.Duration)
}

// New returns an emulator for m. audio may be nil.
func New(m *chip8.Machine, display Display, audio Audio, input Input, opts Options) *Emulator {
	ips := opts.InstructionsPerSecond
	if ips <= 0 {
		ips = DefaultInstructionsPerSecond
	}
	if audio == nil {
		audio = nullAudio{}
	}
	logger := opts.Logger
	if logger == nil {
		cfg := log.DefaultConfig()
		cfg.Level = log.ErrorLevel
		logger = log.NewWithConfig(cfg)
	}
	if opts.StepMode {
		m.Pause()
	}

	return &Emulator{
		logger:  logger,
		machine: m,
		display: display,
		audio:   audio,
		input:   input,
		ips:     int64(ips),
		debug:   opts.Debug,
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Run executes the machine until it stops, a fatal error occurs or ctx is
// cancelled.
func (e *Emulator) Run(ctx context.Context) error {
	defer e.audio.StopBeep()

	e.logger.Info("Starting emulation", log.Int("instructions_per_second", int(e.ips)))
	last := e.now()

	for e.machine.Running() {
		select {
		case <-ctx.Done():
			e.logger.Info("Emulation cancelled")
			e.machine.Stop()
			return nil
		default:
		}

		if err := e.handleEvents(); err != nil {
			return err
		}

		now := e.now()
		err := e.Advance(now.Sub(last))
		last = now
		if err != nil {
			return err
		}

		if err := e.present(); err != nil {
			return err
		}
		e.sleep(pollInterval)
	}

	e.logger.Info("Emulation stopped", log.Int("instructions", int(e.machine.Cycles())))
	return nil
}

// Advance accounts elapsed wall clock time and runs every CPU step and timer
// tick that became due, oldest first. The result depends only on the total
// time, not on how it is split across calls. Nothing advances while paused
// or suspended.
func (e *Emulator) Advance(elapsed time.Duration) error {
	if elapsed <= 0 || e.machine.Paused() || e.suspended {
		return nil
	}
	if elapsed > MaxCatchUp {
		elapsed = MaxCatchUp
	}

	ns := elapsed.Nanoseconds()
	e.cpuAcc += ns * e.ips
	e.timerAcc += ns * TimerFrequency

	for {
		cpuDue := e.cpuAcc >= second
		timerDue := e.timerAcc >= second
		if !cpuDue && !timerDue {
			return nil
		}

		// the event that is overdue the longest happened first
		if cpuDue && (!timerDue || (e.cpuAcc-second)*TimerFrequency >= (e.timerAcc-second)*e.ips) {
			e.cpuAcc -= second
			e.steps++
			if err := e.machine.Step(); err != nil {
				return err
			}
			e.syncAudio()
			continue
		}

		e.timerAcc -= second
		e.ticks++
		e.machine.TickTimers()
		e.syncAudio()
		if t, ok := e.audio.(AudioTicker); ok {
			t.Tick()
		}
	}
}

// Steps returns the number of CPU step slots run so far, including slots
// spent blocked on FX0A.
func (e *Emulator) Steps() uint64 {
	return e.steps
}

// Ticks returns the number of 60Hz timer ticks run so far.
func (e *Emulator) Ticks() uint64 {
	return e.ticks
}

func (e *Emulator) syncAudio() {
	sound := e.machine.SoundActive()
	if sound == e.beeping {
		return
	}
	e.beeping = sound
	if sound {
		e.audio.StartBeep()
	} else {
		e.audio.StopBeep()
	}
}

func (e *Emulator) handleEvents() error {
	for _, ev := range e.input.Poll() {
		switch ev.Kind {
		case KeyDown:
			e.machine.KeyDown(ev.Key)
		case KeyUp:
			e.machine.KeyUp(ev.Key)
		case Quit:
			e.machine.Stop()
		case TogglePause:
			e.machine.TogglePause()
			e.logger.Debug("Pause toggled", log.String("state", runState(e.machine)))
		case Resume:
			e.machine.Resume()
		case StepOnce:
			if !e.machine.Paused() {
				e.machine.Pause()
				continue
			}
			if err := e.machine.Step(); err != nil {
				return err
			}
			e.syncAudio()
		case Reset:
			e.logger.Info("Resetting machine")
			e.machine.Reset()
			e.cpuAcc, e.timerAcc = 0, 0
			e.syncAudio()
		case FocusLost:
			e.suspended = true
		case FocusGained:
			e.suspended = false
		}
	}
	return nil
}

// present hands the display a new frame when the machine drew since the
// last presentation. In debug mode the inspector is refreshed once per
// timer tick as well.
func (e *Emulator) present() error {
	inspector, inspect := e.display.(Inspector)
	inspect = inspect && e.debug

	refresh := inspect && e.ticks != e.drawnTick
	if !e.machine.NeedsRedraw() && !refresh {
		return nil
	}

	if inspect {
		inspector.Inspect(e.machine.State())
	}
	frame := e.machine.Frame()
	if err := e.display.Draw(&frame); err != nil {
		return err
	}
	e.machine.ClearRedraw()
	e.drawnTick = e.ticks
	return nil
}

func runState(m *chip8.Machine) string {
	switch {
	case !m.Running():
		return "stopped"
	case m.Paused():
		return "paused"
	case m.WaitingForKey():
		return "waiting for key"
	}
	return "running"
}
