package chip8

import (
	"errors"
	"fmt"
)

var ErrROMTooLarge = errors.New("rom exceeds program memory")

// ExecError is returned by Execute when an instruction cannot run. The
// machine is stopped afterwards, its state is no longer meaningful.
type ExecError struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("executing %04X at %03X: %v", e.Opcode, e.PC, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
