// Package config handles command line options and application setup.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/tuboc/chirp/chip8"
	"github.com/tuboc/chirp/emulator"
)

const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "terminal"

	DefaultScale = 10
)

// Options holds the program options.
type Options struct {
	ROM string

	Debug bool
	Quiet bool

	ShiftVx                     bool
	JumpWithVx                  bool
	SetRegistersIncrementIndex  bool
	LoadRegistersIncrementIndex bool

	InstructionsPerSecond int
	Audio                 bool
	RecordAudio           string
	Frontend              string
	Scale                 int
	StepMode              bool
	Seed                  int64
}

// Quirks returns the instruction set variants selected by the options.
func (o Options) Quirks() chip8.Quirks {
	return chip8.Quirks{
		ShiftVx:                     o.ShiftVx,
		JumpWithVx:                  o.JumpWithVx,
		SetRegistersIncrementIndex:  o.SetRegistersIncrementIndex,
		LoadRegistersIncrementIndex: o.LoadRegistersIncrementIndex,
	}
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: chirp [options] <rom file>\n\n")
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
	fmt.Fprintln(w)
}

// ParseFlags parses the command line arguments, without the program name.
func ParseFlags(args []string) (Options, error) {
	flags := flag.NewFlagSet("chirp", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts Options
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	rest := flags.Args()
	switch {
	case opts.ROM == "" && len(rest) == 1:
		opts.ROM = rest[0]
	case len(rest) > 1 || (opts.ROM != "" && len(rest) > 0):
		return opts, &UsageError{flags: flags, msg: "only one rom file can be given"}
	}
	if opts.ROM == "" {
		return opts, &UsageError{flags: flags, msg: "no rom file given"}
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *Options) {
	flags.StringVar(&opts.ROM, "f", "", "chip8 image file path")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging and the debug panel")
	flags.BoolVar(&opts.Quiet, "quiet", false, "only log errors")
	flags.BoolVar(&opts.ShiftVx, "shift-vx", false, "8XY6/8XYE shift Vx in place instead of Vy")
	flags.BoolVar(&opts.JumpWithVx, "jump-with-vx", false, "BNNN jumps to Vx + NN instead of V0 + NNN")
	flags.BoolVar(&opts.SetRegistersIncrementIndex, "set-registers-increment-index", false, "FX55 advances I past the stored registers")
	flags.BoolVar(&opts.LoadRegistersIncrementIndex, "load-registers-increment-index", false, "FX65 advances I past the loaded registers")
	flags.IntVar(&opts.InstructionsPerSecond, "ips", emulator.DefaultInstructionsPerSecond, "instructions executed per second")
	flags.BoolVar(&opts.Audio, "audio", true, "enable the beeper")
	flags.StringVar(&opts.RecordAudio, "record-audio", "", "write the beeper output to this WAV file")
	flags.StringVar(&opts.Frontend, "frontend", FrontendSDL, "frontend to use (sdl/terminal)")
	flags.IntVar(&opts.Scale, "scale", DefaultScale, "window pixels per display pixel")
	flags.BoolVar(&opts.StepMode, "s", false, "start with stepMode")
	flags.Int64Var(&opts.Seed, "seed", 0, "random number seed, 0 picks one from the clock")
}

func normalizeOptions(opts *Options) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if opts.Frontend != FrontendSDL && opts.Frontend != FrontendTerminal {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s, %s",
			opts.Frontend, FrontendSDL, FrontendTerminal)
	}
	if opts.InstructionsPerSecond <= 0 {
		return fmt.Errorf("instructions per second must be positive, got %d", opts.InstructionsPerSecond)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", opts.Scale)
	}
	if opts.Debug && opts.Quiet {
		opts.Quiet = false
	}
	return nil
}
