package config

import (
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/tuboc/chirp/chip8"
)

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// LoadROM reads a ROM image and checks that it fits into program memory.
func LoadROM(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rom file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("rom file %s is empty", path)
	}
	if len(data) > chip8.MaxROMSize {
		return nil, fmt.Errorf("%w: %s has %d bytes, at most %d fit",
			chip8.ErrROMTooLarge, path, len(data), chip8.MaxROMSize)
	}
	return data, nil
}
