package chip8

import "fmt"

const (
	RegisterCount = 16
	FlagRegister  = 0xF
)

// Registers holds V0-VF. VF doubles as the carry, borrow and collision flag.
type Registers struct {
	v [RegisterCount]uint8
}

func (r *Registers) Read(index uint8) uint8 {
	checkRegister(index)
	return r.v[index]
}

func (r *Registers) Write(index uint8, v uint8) {
	checkRegister(index)
	r.v[index] = v
}

// setFlag overwrites VF with 1 or 0.
func (r *Registers) setFlag(b bool) {
	if b {
		r.v[FlagRegister] = 1
	} else {
		r.v[FlagRegister] = 0
	}
}

func (r *Registers) reset() {
	r.v = [RegisterCount]uint8{}
}

// an operand decoded from an instruction is always 4 bits wide, so anything
// larger is a bug in the caller.
func checkRegister(index uint8) {
	if index >= RegisterCount {
		panic(fmt.Sprintf("invalid register V%X", index))
	}
}
