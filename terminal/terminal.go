// Package terminal runs the emulator inside a text terminal. Two display rows
// share one character cell using half block glyphs, input comes from stdin
// in raw mode.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tuboc/chirp/chip8"
	"github.com/tuboc/chirp/emulator"
	"golang.org/x/term"
)

const (
	Columns = chip8.DisplayWidth
	Rows    = chip8.DisplayHeight / 2

	// terminals do not report key releases, a key counts as held for this
	// long after its last press.
	KeyHold = 100 * time.Millisecond

	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

var ErrTooSmall = errors.New("terminal too small")

// 1 2 3 C     1 2 3 4
// 4 5 6 D  <- q w e r
// 7 8 9 E     a s d f
// A 0 B F     z x c v
var char2Key = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}

var char2Event = map[byte]emulator.EventKind{
	0x03: emulator.Quit, // ctrl-c
	0x1b: emulator.Quit, // escape
	'p':  emulator.TogglePause,
	' ':  emulator.StepOnce,
	'\r': emulator.Resume,
	0x7f: emulator.Reset, // backspace
}

// Terminal implements the emulator Display and Input interfaces.
type Terminal struct {
	out      io.Writer
	fd       int
	oldState *term.State
	input    chan byte

	pressed [chip8.KeyCount]time.Time
	now     func() time.Time
	last    string
}

func New(out io.Writer) *Terminal {
	return &Terminal{
		out:   out,
		fd:    int(os.Stdin.Fd()),
		input: make(chan byte, 64),
		now:   time.Now,
	}
}

// Start switches stdin to raw mode and starts reading keys.
func (t *Terminal) Start() error {
	if !term.IsTerminal(t.fd) {
		return errors.New("stdin is not a terminal")
	}
	w, h, err := term.GetSize(t.fd)
	if err != nil {
		return fmt.Errorf("reading terminal size: %w", err)
	}
	if w < Columns || h < Rows {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, Columns, Rows, w, h)
	}

	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	t.oldState = state

	go t.read(os.Stdin)

	_, err = io.WriteString(t.out, clearScreen+hideCursor)
	return err
}

// Close restores the terminal.
func (t *Terminal) Close() {
	_, _ = io.WriteString(t.out, showCursor+"\r\n")
	if t.oldState != nil {
		_ = term.Restore(t.fd, t.oldState)
		t.oldState = nil
	}
}

// read forwards stdin bytes until the reader fails, the goroutine ends with
// the process otherwise.
func (t *Terminal) read(r io.Reader) {
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			t.input <- b
		}
		if err != nil {
			return
		}
	}
}

// Draw writes the frame when it differs from the previous one.
func (t *Terminal) Draw(frame *chip8.Frame) error {
	s := Render(frame)
	if s == t.last {
		return nil
	}
	t.last = s

	_, err := io.WriteString(t.out, cursorHome+s)
	return err
}

// Render converts a frame into Rows lines of half block characters.
func Render(frame *chip8.Frame) string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		top, bottom := frame[2*row], frame[2*row+1]
		for x := 0; x < Columns; x++ {
			switch {
			case top[x] && bottom[x]:
				sb.WriteString("█")
			case top[x]:
				sb.WriteString("▀")
			case bottom[x]:
				sb.WriteString("▄")
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}

// Poll returns key presses read since the last call and the releases of
// keys that were not pressed again within KeyHold.
func (t *Terminal) Poll() []emulator.Event {
	var events []emulator.Event
	now := t.now()

drain:
	for {
		select {
		case b := <-t.input:
			events = append(events, t.feed(b, now)...)
		default:
			break drain
		}
	}

	for key, at := range t.pressed {
		if !at.IsZero() && now.Sub(at) >= KeyHold {
			t.pressed[key] = time.Time{}
			events = append(events, emulator.Event{Kind: emulator.KeyUp, Key: uint8(key)})
		}
	}
	return events
}

func (t *Terminal) feed(b byte, now time.Time) []emulator.Event {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}

	if key, ok := char2Key[b]; ok {
		held := !t.pressed[key].IsZero()
		t.pressed[key] = now
		if held {
			return nil
		}
		return []emulator.Event{{Kind: emulator.KeyDown, Key: key}}
	}
	if kind, ok := char2Event[b]; ok {
		return []emulator.Event{{Kind: kind}}
	}
	return nil
}
