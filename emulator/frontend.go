package emulator

import "github.com/tuboc/chirp/chip8"

// Display presents the 64x32 pixel grid.
type Display interface {
	Draw(frame *chip8.Frame) error
}

// Inspector is implemented by displays that can show machine internals next
// to the screen.
type Inspector interface {
	Inspect(state chip8.State)
}

// Audio is told when the beeper starts and stops.
type Audio interface {
	StartBeep()
	StopBeep()
}

// AudioTicker is implemented by audio sinks that need the 60Hz timer clock.
type AudioTicker interface {
	Tick()
}

// Input reports the events that happened since the last poll.
type Input interface {
	Poll() []Event
}

type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	Quit
	TogglePause
	Resume
	StepOnce
	Reset
	FocusLost
	FocusGained
)

var eventNames = [...]string{
	KeyDown:     "key down",
	KeyUp:       "key up",
	Quit:        "quit",
	TogglePause: "toggle pause",
	Resume:      "resume",
	StepOnce:    "step",
	Reset:       "reset",
	FocusLost:   "focus lost",
	FocusGained: "focus gained",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a single input event. Key is only set for KeyDown and KeyUp.
type Event struct {
	Kind EventKind
	Key  uint8
}

type nullAudio struct{}

func (nullAudio) StartBeep() {}
func (nullAudio) StopBeep()  {}

// MultiAudio fans beeper signals out to several sinks.
type MultiAudio []Audio

func (m MultiAudio) StartBeep() {
	for _, a := range m {
		a.StartBeep()
	}
}

func (m MultiAudio) StopBeep() {
	for _, a := range m {
		a.StopBeep()
	}
}

func (m MultiAudio) Tick() {
	for _, a := range m {
		if t, ok := a.(AudioTicker); ok {
			t.Tick()
		}
	}
}
