package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

func (m *Machine) exec(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCLS: // 00E0 clear display
		m.disp.Clear()
		m.needsRedraw = true
		m.logger.Debug("Clearing display")

	case OpRET: // 00EE return from subroutine
		addr, err := m.stack.Pop()
		if err != nil {
			return err
		}
		m.logger.Debug("Returning from subroutine", log.Hex("address", addr))
		m.pc = addr

	case OpJP: // 1NNN goto NNN
		m.logger.Debug("Jumping", log.Hex("address", ins.NNN), log.Hex("pc", m.pc))
		m.pc = ins.NNN

	case OpCALL: // 2NNN call NNN
		if err := m.stack.Push(m.pc); err != nil {
			return err
		}
		m.logger.Debug("Calling subroutine", log.Hex("address", ins.NNN), log.Hex("return", m.pc))
		m.pc = ins.NNN

	case OpSEImm: // 3XNN if(Vx==NN)
		m.skipIf(m.v.Read(x) == ins.NN)

	case OpSNEImm: // 4XNN if(Vx!=NN)
		m.skipIf(m.v.Read(x) != ins.NN)

	case OpSEReg: // 5XY0 if(Vx==Vy)
		m.skipIf(m.v.Read(x) == m.v.Read(y))

	case OpSNEReg: // 9XY0 if(Vx!=Vy)
		m.skipIf(m.v.Read(x) != m.v.Read(y))

	case OpLDImm: // 6XNN Vx = NN
		m.v.Write(x, ins.NN)

	case OpADDImm: // 7XNN Vx += NN (carry flag is not changed)
		m.v.Write(x, m.v.Read(x)+ins.NN)

	case OpLDReg: // 8XY0 Vx = Vy
		m.v.Write(x, m.v.Read(y))

	case OpOR: // 8XY1 Vx |= Vy
		m.v.Write(x, m.v.Read(x)|m.v.Read(y))

	case OpAND: // 8XY2 Vx &= Vy
		m.v.Write(x, m.v.Read(x)&m.v.Read(y))

	case OpXOR: // 8XY3 Vx ^= Vy
		m.v.Write(x, m.v.Read(x)^m.v.Read(y))

	case OpADDReg: // 8XY4 Vx += Vy
		vx, vy := m.v.Read(x), m.v.Read(y)
		m.v.Write(x, vx+vy)
		m.v.setFlag(uint16(vx)+uint16(vy) > 0xFF)

	case OpSUB: // 8XY5 Vx -= Vy
		vx, vy := m.v.Read(x), m.v.Read(y)
		m.v.Write(x, vx-vy)
		m.v.setFlag(vx > vy)

	case OpSUBN: // 8XY7 Vx = Vy - Vx
		vx, vy := m.v.Read(x), m.v.Read(y)
		m.v.Write(x, vy-vx)
		m.v.setFlag(vy > vx)

	case OpSHR: // 8XY6 Vx = Vy >> 1
		src := m.shiftSource(x, y)
		m.v.Write(x, src>>1)
		m.v.setFlag(src&0x01 != 0)

	case OpSHL: // 8XYE Vx = Vy << 1
		src := m.shiftSource(x, y)
		m.v.Write(x, src<<1)
		m.v.setFlag(src&0x80 != 0)

	case OpLDI: // ANNN I = NNN
		m.i = ins.NNN

	case OpJPOffset: // BNNN PC = V0 + NNN
		var dest uint16
		if m.quirks.JumpWithVx {
			dest = uint16(m.v.Read(x)) + uint16(ins.NN)
		} else {
			dest = uint16(m.v.Read(0)) + ins.NNN
		}
		m.logger.Debug("Jumping with offset", log.Hex("address", dest), log.Hex("pc", m.pc))
		m.pc = dest

	case OpRND: // CXNN Vx = rand() & NN
		m.v.Write(x, uint8(m.rng.Uint32())&ins.NN)

	case OpDRW: // DXYN draw(Vx, Vy, N)
		m.draw(x, y, ins.N)

	case OpSKP: // EX9E if(key(Vx))
		m.skipIf(m.keys.Read(m.v.Read(x)))

	case OpSKNP: // EXA1 if(!key(Vx))
		m.skipIf(!m.keys.Read(m.v.Read(x)))

	case OpLDVxDT: // FX07 Vx = delay_timer
		m.v.Write(x, m.dt)

	case OpLDVxK: // FX0A Vx = get_key(), blocks until a key press arrives
		m.waitingForKey = true
		m.keyTarget = x
		m.logger.Debug("Waiting for key", log.Uint8("register", x))

	case OpLDDTVx: // FX15 delay_timer = Vx
		m.dt = m.v.Read(x)

	case OpLDSTVx: // FX18 sound_timer = Vx
		m.st = m.v.Read(x)

	case OpADDIVx: // FX1E I += Vx
		m.i += uint16(m.v.Read(x))

	case OpLDFVx: // FX29 I = sprite_addr[Vx]
		m.i = FontStart + uint16(m.v.Read(x))*FontSpriteBytes

	case OpLDBVx: // FX33 set_BCD(Vx)
		vx := m.v.Read(x)
		m.mem.Write(m.i, vx/100)
		m.mem.Write(m.i+1, (vx/10)%10)
		m.mem.Write(m.i+2, vx%10)

	case OpLDIVx: // FX55 reg_dump(Vx, &I)
		for r := uint8(0); r <= x; r++ {
			m.mem.Write(m.i+uint16(r), m.v.Read(r))
		}
		if m.quirks.SetRegistersIncrementIndex {
			m.i += uint16(x) + 1
		}

	case OpLDVxI: // FX65 reg_load(Vx, &I)
		for r := uint8(0); r <= x; r++ {
			m.v.Write(r, m.mem.Read(m.i+uint16(r)))
		}
		if m.quirks.LoadRegistersIncrementIndex {
			m.i += uint16(x) + 1
		}

	default:
		return ErrUnknownOpcode
	}
	return nil
}

func (m *Machine) skipIf(b bool) {
	if b {
		m.pc += 2
	}
}

// shiftSource returns the register 8XY6/8XYE shift from, Vy unless the
// ShiftVx quirk is set.
func (m *Machine) shiftSource(x, y uint8) uint8 {
	if m.quirks.ShiftVx {
		return m.v.Read(x)
	}
	return m.v.Read(y)
}

// draw XORs an n byte sprite from memory at I onto the display. The start
// position wraps, the sprite itself is clipped at the screen edges.
func (m *Machine) draw(x, y, n uint8) {
	px := int(m.v.Read(x)) % DisplayWidth
	py := int(m.v.Read(y)) % DisplayHeight
	m.v.setFlag(false)

	m.logger.Debug("Drawing sprite", log.Int("x", px), log.Int("y", py), log.Uint8("rows", n))

	collided := false
	for row := 0; row < int(n) && py+row < DisplayHeight; row++ {
		sprite := m.mem.Read(m.i + uint16(row))
		for col := 0; col < 8 && px+col < DisplayWidth; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			if m.disp.Toggle(px+col, py+row) {
				collided = true
			}
		}
	}

	m.v.setFlag(collided)
	m.needsRedraw = true
}
