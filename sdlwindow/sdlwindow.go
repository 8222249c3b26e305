// Package sdlwindow is the SDL2 frontend: a window showing the upscaled
// display with an optional debug panel, a queued sine wave beeper and the
// keyboard mapped onto the hex keypad.
package sdlwindow

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/retroenv/retrogolib/log"
	"github.com/tuboc/chirp/chip8"
	"github.com/tuboc/chirp/emulator"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	Title        = "chirp"
	DefaultScale = 10

	// keep roughly 100ms of tone queued while beeping
	audioQueueBytes = emulator.SampleRate / 10 * 4
)

// 1 2 3 C     1 2 3 4
// 4 5 6 D  <- Q W E R
// 7 8 9 E     A S D F
// A 0 B F     Z X C V
var scanCode2Key = map[sdl.Scancode]uint8{
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_4: 0xc,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_R: 0xd,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_F: 0xe,
	sdl.SCANCODE_Z: 0xa,
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_C: 0xb,
	sdl.SCANCODE_V: 0xf,
}

var scanCode2Event = map[sdl.Scancode]emulator.EventKind{
	sdl.SCANCODE_ESCAPE:    emulator.Quit,
	sdl.SCANCODE_P:         emulator.TogglePause,
	sdl.SCANCODE_SPACE:     emulator.StepOnce,
	sdl.SCANCODE_RETURN:    emulator.Resume,
	sdl.SCANCODE_BACKSPACE: emulator.Reset,
}

type Options struct {
	Scale int
	Audio bool
	Debug bool
}

// Window implements the emulator Display, Inspector, Audio and Input
// interfaces on top of SDL.
type Window struct {
	logger   *log.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
	width    int32
	height   int32
	debug    bool
	panel    []sdl.Point

	audio    sdl.AudioDeviceID
	hasAudio bool
	tone     *emulator.Tone
	beeping  bool
	samples  []float32
	buf      []byte
}

// New opens the window and the audio device. It must be called from the
// main OS thread.
func New(logger *log.Logger, opts Options) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("initializing sdl: %w", err)
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	w := &Window{
		logger: logger,
		scale:  int32(scale),
		width:  int32(chip8.DisplayWidth * scale),
		height: int32(chip8.DisplayHeight * scale),
		debug:  opts.Debug,
		tone:   emulator.NewTone(emulator.SampleRate),
	}
	windowH := w.height
	if w.debug {
		windowH += emulator.PanelHeight
	}

	window, err := sdl.CreateWindow(Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		w.width, windowH, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	w.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	w.renderer = renderer

	if opts.Audio {
		if err := w.openAudio(); err != nil {
			// a missing audio device is not fatal, the machine runs silent
			logger.Error("Opening audio device failed", log.Err(err))
		}
	}

	_ = w.renderer.SetDrawColor(0, 0, 0, 255)
	_ = w.renderer.Clear()
	w.renderer.Present()
	return w, nil
}

func (w *Window) openAudio() error {
	want := &sdl.AudioSpec{
		Freq:     emulator.SampleRate,
		Format:   sdl.AUDIO_F32LSB,
		Channels: 1,
		Samples:  512,
	}
	have := &sdl.AudioSpec{}
	dev, err := sdl.OpenAudioDevice("", false, want, have, 0)
	if err != nil {
		return err
	}

	w.audio = dev
	w.hasAudio = true
	sdl.PauseAudioDevice(dev, false)
	return nil
}

// Close releases all SDL resources.
func (w *Window) Close() {
	if w.hasAudio {
		sdl.CloseAudioDevice(w.audio)
		w.hasAudio = false
	}
	if w.renderer != nil {
		_ = w.renderer.Destroy()
	}
	if w.window != nil {
		_ = w.window.Destroy()
	}
	sdl.Quit()
}

// Draw renders the frame upscaled, plus the debug panel below it.
func (w *Window) Draw(frame *chip8.Frame) error {
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}

	_ = w.renderer.SetDrawColor(255, 255, 255, 255)
	for y := int32(0); y < chip8.DisplayHeight; y++ {
		for x := int32(0); x < chip8.DisplayWidth; x++ {
			if !frame[y][x] {
				continue
			}
			rect := &sdl.Rect{X: x * w.scale, Y: y * w.scale, W: w.scale, H: w.scale}
			if err := w.renderer.FillRect(rect); err != nil {
				return fmt.Errorf("drawing pixel: %w", err)
			}
		}
	}

	if w.debug {
		w.drawPanel()
	}

	w.renderer.Present()
	return nil
}

// Inspect rasterizes the debug panel for the next Draw.
func (w *Window) Inspect(state chip8.State) {
	img := emulator.RenderPanel(emulator.PanelText(state), int(w.width), emulator.PanelHeight)

	w.panel = w.panel[:0]
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.AlphaAt(x, y).A > 0x7f {
				w.panel = append(w.panel, sdl.Point{X: int32(x), Y: w.height + int32(y)})
			}
		}
	}
}

func (w *Window) drawPanel() {
	_ = w.renderer.SetDrawColor(32, 32, 32, 255)
	_ = w.renderer.FillRect(&sdl.Rect{X: 0, Y: w.height, W: w.width, H: emulator.PanelHeight})

	if len(w.panel) == 0 {
		return
	}
	_ = w.renderer.SetDrawColor(0, 255, 0, 255)
	_ = w.renderer.DrawPoints(w.panel)
}

// Poll translates pending SDL events into emulator events.
func (w *Window) Poll() []emulator.Event {
	var events []emulator.Event

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			events = append(events, emulator.Event{Kind: emulator.Quit})

		case *sdl.KeyboardEvent:
			code := ev.Keysym.Scancode
			if key, ok := scanCode2Key[code]; ok {
				kind := emulator.KeyUp
				if ev.Type == sdl.KEYDOWN {
					if ev.Repeat != 0 {
						continue
					}
					kind = emulator.KeyDown
				}
				events = append(events, emulator.Event{Kind: kind, Key: key})
				continue
			}
			if kind, ok := scanCode2Event[code]; ok && ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
				events = append(events, emulator.Event{Kind: kind})
			}

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_FOCUS_LOST:
				events = append(events, emulator.Event{Kind: emulator.FocusLost})
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				events = append(events, emulator.Event{Kind: emulator.FocusGained})
			}
		}
	}

	return events
}

func (w *Window) StartBeep() {
	w.beeping = true
	w.queueTone()
}

func (w *Window) StopBeep() {
	w.beeping = false
	if w.hasAudio {
		sdl.ClearQueuedAudio(w.audio)
	}
}

// Tick keeps the audio queue topped up while the beeper sounds.
func (w *Window) Tick() {
	if w.beeping {
		w.queueTone()
	}
}

func (w *Window) queueTone() {
	if !w.hasAudio {
		return
	}

	for sdl.GetQueuedAudioSize(w.audio) < audioQueueBytes {
		if w.samples == nil {
			w.samples = make([]float32, emulator.FrameSamples)
			w.buf = make([]byte, 4*emulator.FrameSamples)
		}
		w.tone.Fill(w.samples)
		for i, s := range w.samples {
			binary.LittleEndian.PutUint32(w.buf[4*i:], math.Float32bits(s))
		}

		if err := sdl.QueueAudio(w.audio, w.buf); err != nil {
			w.logger.Error("Queueing audio failed", log.Err(err))
			return
		}
	}
}
