package chip8

import (
	"errors"
	"fmt"
)

var ErrUnknownOpcode = errors.New("unknown opcode")

// Op identifies a decoded instruction family.
type Op uint8

const (
	OpInvalid Op = iota
	OpCLS        // 00E0
	OpRET        // 00EE
	OpJP         // 1NNN
	OpCALL       // 2NNN
	OpSEImm      // 3XNN
	OpSNEImm     // 4XNN
	OpSEReg      // 5XY0
	OpLDImm      // 6XNN
	OpADDImm     // 7XNN
	OpLDReg      // 8XY0
	OpOR         // 8XY1
	OpAND        // 8XY2
	OpXOR        // 8XY3
	OpADDReg     // 8XY4
	OpSUB        // 8XY5
	OpSHR        // 8XY6
	OpSUBN       // 8XY7
	OpSHL        // 8XYE
	OpSNEReg     // 9XY0
	OpLDI        // ANNN
	OpJPOffset   // BNNN
	OpRND        // CXNN
	OpDRW        // DXYN
	OpSKP        // EX9E
	OpSKNP       // EXA1
	OpLDVxDT     // FX07
	OpLDVxK      // FX0A
	OpLDDTVx     // FX15
	OpLDSTVx     // FX18
	OpADDIVx     // FX1E
	OpLDFVx      // FX29
	OpLDBVx      // FX33
	OpLDIVx      // FX55
	OpLDVxI      // FX65
)

var opPatterns = [...]string{
	OpInvalid:  "????",
	OpCLS:      "00E0",
	OpRET:      "00EE",
	OpJP:       "1NNN",
	OpCALL:     "2NNN",
	OpSEImm:    "3XNN",
	OpSNEImm:   "4XNN",
	OpSEReg:    "5XY0",
	OpLDImm:    "6XNN",
	OpADDImm:   "7XNN",
	OpLDReg:    "8XY0",
	OpOR:       "8XY1",
	OpAND:      "8XY2",
	OpXOR:      "8XY3",
	OpADDReg:   "8XY4",
	OpSUB:      "8XY5",
	OpSHR:      "8XY6",
	OpSUBN:     "8XY7",
	OpSHL:      "8XYE",
	OpSNEReg:   "9XY0",
	OpLDI:      "ANNN",
	OpJPOffset: "BNNN",
	OpRND:      "CXNN",
	OpDRW:      "DXYN",
	OpSKP:      "EX9E",
	OpSKNP:     "EXA1",
	OpLDVxDT:   "FX07",
	OpLDVxK:    "FX0A",
	OpLDDTVx:   "FX15",
	OpLDSTVx:   "FX18",
	OpADDIVx:   "FX1E",
	OpLDFVx:    "FX29",
	OpLDBVx:    "FX33",
	OpLDIVx:    "FX55",
	OpLDVxI:    "FX65",
}

// String returns the opcode pattern, e.g. "8XY4".
func (o Op) String() string {
	if int(o) < len(opPatterns) {
		return opPatterns[o]
	}
	return opPatterns[OpInvalid]
}

// Instruction is a decoded 16 bit opcode with all operand fields extracted.
type Instruction struct {
	Op  Op
	Raw uint16
	X   uint8
	Y   uint8
	N   uint8
	NN  uint8
	NNN uint16
}

// Decode splits op into its operand fields and resolves the instruction
// family. Words that do not encode a known instruction return
// ErrUnknownOpcode.
func Decode(op uint16) (Instruction, error) {
	nnn := op & 0x0FFF
	ins := Instruction{
		Raw: op,
		X:   uint8((op & 0x0F00) >> 8),
		Y:   uint8((op & 0x00F0) >> 4),
		N:   uint8(op & 0x000F),
		NN:  uint8(op & 0x00FF),
		NNN: nnn,
	}

	switch op & 0xF000 {
	case 0x0000:
		switch nnn {
		case 0x0E0:
			ins.Op = OpCLS
		case 0x0EE:
			ins.Op = OpRET
		}
	case 0x1000:
		ins.Op = OpJP
	case 0x2000:
		ins.Op = OpCALL
	case 0x3000:
		ins.Op = OpSEImm
	case 0x4000:
		ins.Op = OpSNEImm
	case 0x5000:
		if ins.N == 0 {
			ins.Op = OpSEReg
		}
	case 0x6000:
		ins.Op = OpLDImm
	case 0x7000:
		ins.Op = OpADDImm
	case 0x8000:
		switch ins.N {
		case 0x0:
			ins.Op = OpLDReg
		case 0x1:
			ins.Op = OpOR
		case 0x2:
			ins.Op = OpAND
		case 0x3:
			ins.Op = OpXOR
		case 0x4:
			ins.Op = OpADDReg
		case 0x5:
			ins.Op = OpSUB
		case 0x6:
			ins.Op = OpSHR
		case 0x7:
			ins.Op = OpSUBN
		case 0xE:
			ins.Op = OpSHL
		}
	case 0x9000:
		if ins.N == 0 {
			ins.Op = OpSNEReg
		}
	case 0xA000:
		ins.Op = OpLDI
	case 0xB000:
		ins.Op = OpJPOffset
	case 0xC000:
		ins.Op = OpRND
	case 0xD000:
		ins.Op = OpDRW
	case 0xE000:
		switch ins.NN {
		case 0x9E:
			ins.Op = OpSKP
		case 0xA1:
			ins.Op = OpSKNP
		}
	case 0xF000:
		switch ins.NN {
		case 0x07:
			ins.Op = OpLDVxDT
		case 0x0A:
			ins.Op = OpLDVxK
		case 0x15:
			ins.Op = OpLDDTVx
		case 0x18:
			ins.Op = OpLDSTVx
		case 0x1E:
			ins.Op = OpADDIVx
		case 0x29:
			ins.Op = OpLDFVx
		case 0x33:
			ins.Op = OpLDBVx
		case 0x55:
			ins.Op = OpLDIVx
		case 0x65:
			ins.Op = OpLDVxI
		}
	}

	if ins.Op == OpInvalid {
		return ins, fmt.Errorf("%w %04X", ErrUnknownOpcode, op)
	}
	return ins, nil
}
