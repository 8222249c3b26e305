package chip8

import (
	"encoding/binary"
	"testing"

	"github.com/retroenv/retrogolib/log"
	"github.com/stretchr/testify/require"
)

// newTestMachine returns a machine with ops encoded at 0x200.
func newTestMachine(t *testing.T, quirks Quirks, ops ...uint16) *Machine {
	t.Helper()

	rom := make([]byte, 2*len(ops))
	for i, op := range ops {
		binary.BigEndian.PutUint16(rom[2*i:], op)
	}

	m := New(Config{Quirks: quirks, Logger: log.NewTestLogger(t), Seed: 1})
	require.NoError(t, m.LoadROM(rom))
	return m
}
