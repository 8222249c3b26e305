package chip8

import (
	"fmt"
	"strings"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Disassemble renders op as an assembly line such as "DRW  V1,V2,8".
// Words that do not decode are rendered as data.
func Disassemble(op uint16) string {
	ins, err := Decode(op)
	if err != nil {
		return fmt.Sprintf("DW   #%04X", op)
	}

	name := mnemonic(op)
	if args := operands(ins); args != "" {
		return fmt.Sprintf("%-4s %s", name, args)
	}
	return name
}

// mnemonic looks op up in the retrogolib CHIP-8 opcode table.
func mnemonic(op uint16) string {
	for _, opcode := range chip8cpu.Opcodes[int(op>>12)] {
		if opcode.Instruction != nil && opcode.Info.Mask&op == opcode.Info.Value {
			return strings.ToUpper(opcode.Instruction.Name)
		}
	}
	return "DW"
}

func operands(ins Instruction) string {
	switch ins.Op {
	case OpCLS, OpRET:
		return ""
	case OpJP, OpCALL:
		return fmt.Sprintf("#%03X", ins.NNN)
	case OpSEImm, OpSNEImm, OpLDImm, OpADDImm, OpRND:
		return fmt.Sprintf("V%X,#%02X", ins.X, ins.NN)
	case OpSEReg, OpSNEReg, OpLDReg, OpOR, OpAND, OpXOR, OpADDReg, OpSUB, OpSHR, OpSUBN, OpSHL:
		return fmt.Sprintf("V%X,V%X", ins.X, ins.Y)
	case OpLDI:
		return fmt.Sprintf("I,#%03X", ins.NNN)
	case OpJPOffset:
		return fmt.Sprintf("V0,#%03X", ins.NNN)
	case OpDRW:
		return fmt.Sprintf("V%X,V%X,%d", ins.X, ins.Y, ins.N)
	case OpSKP, OpSKNP:
		return fmt.Sprintf("V%X", ins.X)
	case OpLDVxDT:
		return fmt.Sprintf("V%X,DT", ins.X)
	case OpLDVxK:
		return fmt.Sprintf("V%X,K", ins.X)
	case OpLDDTVx:
		return fmt.Sprintf("DT,V%X", ins.X)
	case OpLDSTVx:
		return fmt.Sprintf("ST,V%X", ins.X)
	case OpADDIVx:
		return fmt.Sprintf("I,V%X", ins.X)
	case OpLDFVx:
		return fmt.Sprintf("F,V%X", ins.X)
	case OpLDBVx:
		return fmt.Sprintf("B,V%X", ins.X)
	case OpLDIVx:
		return fmt.Sprintf("[I],V%X", ins.X)
	case OpLDVxI:
		return fmt.Sprintf("V%X,[I]", ins.X)
	}
	return ""
}
