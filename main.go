// Package main implements the chirp CHIP-8 emulator entry point.
package main

import (
	"context"
	"errors"
	"os"
	"runtime"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/tuboc/chirp/chip8"
	"github.com/tuboc/chirp/config"
	"github.com/tuboc/chirp/emulator"
	"github.com/tuboc/chirp/otoaudio"
	"github.com/tuboc/chirp/sdlwindow"
	"github.com/tuboc/chirp/terminal"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	ctx := app.Context()

	opts, err := config.ParseFlags(os.Args[1:])
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			logger.Error(usageErr.Error())
			usageErr.ShowUsage(os.Stderr)
		} else {
			logger.Error("Invalid options", log.Err(err))
		}
		os.Exit(1)
	}

	if err := run(ctx, logger, opts); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

type frontend struct {
	display emulator.Display
	input   emulator.Input
	audio   emulator.Audio
	close   func()
}

func run(ctx context.Context, logger *log.Logger, opts config.Options) (rerr error) {
	rom, err := config.LoadROM(opts.ROM)
	if err != nil {
		return err
	}

	m := chip8.New(chip8.Config{
		Quirks: opts.Quirks(),
		Logger: logger,
		Seed:   opts.Seed,
	})
	if err := m.LoadROM(rom); err != nil {
		return err
	}
	logger.Info("Loaded ROM", log.String("file", opts.ROM), log.Int("size", len(rom)))

	fe, err := openFrontend(logger, opts)
	if err != nil {
		return err
	}
	defer fe.close()

	audio := fe.audio
	if opts.RecordAudio != "" {
		rec := emulator.NewWavRecorder(opts.RecordAudio)
		defer func() {
			if err := rec.Close(); err != nil && rerr == nil {
				rerr = err
			}
		}()
		if audio == nil {
			audio = rec
		} else {
			audio = emulator.MultiAudio{audio, rec}
		}
	}

	emu := emulator.New(m, fe.display, audio, fe.input, emulator.Options{
		InstructionsPerSecond: opts.InstructionsPerSecond,
		StepMode:              opts.StepMode,
		Debug:                 opts.Debug,
		Logger:                logger,
	})
	return emu.Run(ctx)
}

func openFrontend(logger *log.Logger, opts config.Options) (frontend, error) {
	if opts.Frontend == config.FrontendTerminal {
		return openTerminal(logger, opts)
	}

	window, err := sdlwindow.New(logger, sdlwindow.Options{
		Scale: opts.Scale,
		Audio: opts.Audio,
		Debug: opts.Debug,
	})
	if err != nil {
		return frontend{}, err
	}
	return frontend{
		display: window,
		input:   window,
		audio:   window,
		close:   window.Close,
	}, nil
}

func openTerminal(logger *log.Logger, opts config.Options) (frontend, error) {
	t := terminal.New(os.Stdout)
	if err := t.Start(); err != nil {
		return frontend{}, err
	}
	fe := frontend{
		display: t,
		input:   t,
		close:   t.Close,
	}
	if !opts.Audio {
		return fe, nil
	}

	beeper, err := otoaudio.New()
	if err != nil {
		logger.Error("Audio disabled", log.Err(err))
		return fe, nil
	}
	fe.audio = beeper
	fe.close = func() {
		_ = beeper.Close()
		t.Close()
	}
	return fe, nil
}
