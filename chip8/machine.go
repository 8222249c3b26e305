package chip8

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

const HistorySize = 16

// Config is captured by the machine at construction and never changes
// afterwards.
type Config struct {
	Quirks Quirks
	Logger *log.Logger
	// Seed feeds the CXNN random source, 0 seeds from the clock.
	Seed int64
}

type historyEntry struct {
	pc     uint16
	opcode uint16
	valid  bool
}

// Machine is a complete CHIP-8 virtual machine. It is not safe for
// concurrent use, the scheduler loop is its only owner.
type Machine struct {
	logger *log.Logger
	quirks Quirks
	rng    *rand.Rand

	mem   Memory
	v     Registers
	stack Stack
	disp  Display
	keys  Keyboard

	pc uint16 // program counter
	i  uint16 // index register
	dt uint8  // delay timer
	st uint8  // sound timer

	rom []uint8

	running       bool
	paused        bool
	needsRedraw   bool
	waitingForKey bool
	keyTarget     uint8
	cycles        uint64

	history      [HistorySize]historyEntry
	historyIndex int
}

// New returns a machine with the font loaded and no program.
func New(cfg Config) *Machine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		c := log.DefaultConfig()
		c.Level = log.ErrorLevel
		logger = log.NewWithConfig(c)
	}

	m := &Machine{
		logger: logger,
		quirks: cfg.Quirks,
		rng:    rand.New(rand.NewSource(seed)),
	}
	m.Reset()
	return m
}

// LoadROM writes rom into program memory starting at 0x200. The ROM is
// kept so that Reset can reload it.
func (m *Machine) LoadROM(rom []uint8) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}
	m.rom = append([]uint8(nil), rom...)
	m.mem.load(ProgramStart, m.rom)
	m.logger.Debug("Loaded ROM", log.Int("size", len(rom)))
	return nil
}

// Reset returns the machine to its power on state and reloads the font and
// the last loaded ROM.
func (m *Machine) Reset() {
	m.mem.reset()
	m.v.reset()
	m.stack.reset()
	m.disp.Clear()
	m.keys.reset()

	m.pc = ProgramStart
	m.i = 0
	m.dt = 0
	m.st = 0

	m.running = true
	m.paused = false
	m.needsRedraw = true
	m.waitingForKey = false
	m.keyTarget = 0
	m.cycles = 0
	m.history = [HistorySize]historyEntry{}
	m.historyIndex = 0

	m.mem.load(FontStart, fontSprites[:])
	m.mem.load(ProgramStart, m.rom)
}

// Fetch reads the big endian instruction word at the program counter and
// advances it by 2. While waiting for a key it returns 0 and leaves the
// program counter alone.
func (m *Machine) Fetch() uint16 {
	if m.waitingForKey {
		return 0
	}
	op := uint16(m.mem.Read(m.pc))<<8 | uint16(m.mem.Read(m.pc+1))
	m.pc += 2
	return op
}

// Execute runs a fetched instruction. Any error stops the machine.
func (m *Machine) Execute(op uint16) error {
	if m.waitingForKey {
		return nil
	}

	pc := m.pc - 2
	m.record(pc, op)

	ins, err := Decode(op)
	if err == nil {
		err = m.exec(ins)
	}
	if err != nil {
		m.running = false
		return &ExecError{PC: pc, Opcode: op, Err: err}
	}
	m.cycles++
	return nil
}

// Step fetches and executes one instruction. It does nothing when the
// machine is stopped or blocked on FX0A.
func (m *Machine) Step() error {
	if !m.running || m.waitingForKey {
		return nil
	}
	return m.Execute(m.Fetch())
}

// TickTimers decrements the delay and sound timers, called at 60Hz.
func (m *Machine) TickTimers() {
	if m.dt > 0 {
		m.dt--
	}
	if m.st > 0 {
		m.st--
	}
}

// KeyDown marks key as pressed. A machine blocked on FX0A receives the key
// in the waiting register and resumes.
func (m *Machine) KeyDown(key uint8) {
	if key >= KeyCount {
		return
	}
	m.keys.Write(key, true)

	if m.waitingForKey {
		m.v.Write(m.keyTarget, key)
		m.waitingForKey = false
		m.logger.Debug("Key received", log.Hex("key", key), log.Uint8("register", m.keyTarget))
	}
}

func (m *Machine) KeyUp(key uint8) {
	m.keys.Write(key, false)
}

func (m *Machine) Pause() {
	m.paused = true
}

func (m *Machine) Resume() {
	m.paused = false
}

func (m *Machine) TogglePause() {
	m.paused = !m.paused
}

func (m *Machine) Paused() bool {
	return m.paused
}

// Stop moves the machine to its terminal state.
func (m *Machine) Stop() {
	m.running = false
}

func (m *Machine) Running() bool {
	return m.running
}

func (m *Machine) WaitingForKey() bool {
	return m.waitingForKey
}

// NeedsRedraw reports whether the display changed since the last
// ClearRedraw.
func (m *Machine) NeedsRedraw() bool {
	return m.needsRedraw
}

func (m *Machine) ClearRedraw() {
	m.needsRedraw = false
}

// Frame returns a copy of the display.
func (m *Machine) Frame() Frame {
	return m.disp.Frame()
}

// SoundActive reports whether the beeper should be sounding.
func (m *Machine) SoundActive() bool {
	return m.st > 0
}

// Cycles returns the number of instructions executed since the last reset.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

func (m *Machine) record(pc, op uint16) {
	m.history[m.historyIndex] = historyEntry{pc: pc, opcode: op, valid: true}
	m.historyIndex = (m.historyIndex + 1) % HistorySize
}

// State is a snapshot of the machine for debug views.
type State struct {
	PC            uint16
	I             uint16
	DT            uint8
	ST            uint8
	SP            int
	V             [RegisterCount]uint8
	Keys          [KeyCount]bool
	Paused        bool
	WaitingForKey bool
	// History lists the most recently executed instructions, oldest first.
	History []string
}

func (m *Machine) State() State {
	s := State{
		PC:            m.pc,
		I:             m.i,
		DT:            m.dt,
		ST:            m.st,
		SP:            m.stack.Len(),
		V:             m.v.v,
		Keys:          m.keys.State(),
		Paused:        m.paused,
		WaitingForKey: m.waitingForKey,
	}

	for n := 0; n < HistorySize; n++ {
		e := m.history[(m.historyIndex+n)%HistorySize]
		if !e.valid {
			continue
		}
		s.History = append(s.History, fmt.Sprintf("%03X-%04X %s", e.pc, e.opcode, Disassemble(e.opcode)))
	}
	return s
}
