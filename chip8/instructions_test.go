package chip8

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var opcodeTestTable = []struct {
	opcode uint16
	before func(m *Machine)
	assert func(t *testing.T, m *Machine)
}{
	// clear display
	{
		0x00E0,
		func(m *Machine) {
			for y := 0; y < DisplayHeight; y++ {
				for x := 0; x < DisplayWidth; x++ {
					m.disp.Set(x, y, true)
				}
			}
			m.needsRedraw = false
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, Frame{}, m.Frame())
			assert.True(t, m.NeedsRedraw())
		},
	},
	// ret
	{
		0x00EE,
		func(m *Machine) {
			_ = m.stack.Push(0x300)
		},
		func(t *testing.T, m *Machine) {
			assert.True(t, m.stack.IsEmpty())
			assert.Equal(t, uint16(0x300), m.pc)
		},
	},
	// goto 0x0NNN
	{
		0x1234,
		nil,
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x234), m.pc)
		},
	},
	// call 0x0NNN
	{
		0x2208,
		nil,
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x208), m.pc)
			assert.Equal(t, 1, m.stack.Len())
			top, err := m.stack.Peek()
			assert.NoError(t, err)
			assert.Equal(t, uint16(0x202), top)
		},
	},
	// 3XNN if(Vx==NN) [true]
	{
		0x3012,
		func(m *Machine) {
			m.v.Write(0, 0x12)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x204), m.pc)
		},
	},
	// 3XNN if(Vx==NN) [false]
	{
		0x3012,
		func(m *Machine) {
			m.v.Write(0, 0x1)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x202), m.pc)
		},
	},
	// 4XNN if(Vx!=NN) [true]
	{
		0x4012,
		func(m *Machine) {
			m.v.Write(0, 0x1)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x204), m.pc)
		},
	},
	// 4XNN if(Vx!=NN) [false]
	{
		0x4012,
		func(m *Machine) {
			m.v.Write(0, 0x12)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x202), m.pc)
		},
	},
	// 5XY0 if(Vx==Vy) [true]
	{
		0x5120,
		func(m *Machine) {
			m.v.Write(1, 0x1)
			m.v.Write(2, 0x1)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x204), m.pc)
		},
	},
	// 5XY0 if(Vx==Vy) [false]
	{
		0x5120,
		func(m *Machine) {
			m.v.Write(1, 0x1)
			m.v.Write(2, 0x2)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x202), m.pc)
		},
	},
	// 6XNN Vx = NN
	{
		0x6355,
		nil,
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x55), m.v.Read(3))
		},
	},
	// 7XNN Vx += NN (carry flag is not changed)
	{
		0x78f1,
		func(m *Machine) {
			m.v.Write(8, 0xf)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x00), m.v.Read(8))
			assert.Equal(t, uint8(0), m.v.Read(0xf))
		},
	},
	// 8XY0 Vx=Vy
	{
		0x8450,
		func(m *Machine) {
			m.v.Write(5, 0x33)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x33), m.v.Read(4))
		},
	},
	// 8XY1 Vx=Vx|Vy
	{
		0x8231,
		func(m *Machine) {
			m.v.Write(2, 0x01)
			m.v.Write(3, 0x10)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x11), m.v.Read(2))
		},
	},
	// 8XY2 Vx=Vx&Vy
	{
		0x8012,
		func(m *Machine) {
			m.v.Write(0, 0x01)
			m.v.Write(1, 0x10)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0), m.v.Read(0))
		},
	},
	// 8XY3 Vx=Vx^Vy
	{
		0x8673,
		func(m *Machine) {
			m.v.Write(6, 0x09)
			m.v.Write(7, 0x0f)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(6), m.v.Read(6))
		},
	},
	// 8XY4 Vx += Vy (not carry)
	{
		0x8014,
		func(m *Machine) {
			m.v.Write(0, 0x01)
			m.v.Write(1, 0x01)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x02), m.v.Read(0))
			assert.Equal(t, uint8(0), m.v.Read(0xf))
		},
	},
	// 8XY4 Vx += Vy (carry)
	{
		0x8014,
		func(m *Machine) {
			m.v.Write(0, 0xff)
			m.v.Write(1, 0x01)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x00), m.v.Read(0))
			assert.Equal(t, uint8(1), m.v.Read(0xf))
		},
	},
	// 8XY5 Vx -= Vy (not borrow)
	{
		0x8ab5,
		func(m *Machine) {
			m.v.Write(0xa, 0x05)
			m.v.Write(0xb, 0x03)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x02), m.v.Read(0xa))
			assert.Equal(t, uint8(1), m.v.Read(0xf))
		},
	},
	// 8XY5 Vx -= Vy (borrow)
	{
		0x8ab5,
		func(m *Machine) {
			m.v.Write(0xa, 0x03)
			m.v.Write(0xb, 0x05)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0xfe), m.v.Read(0xa))
			assert.Equal(t, uint8(0), m.v.Read(0xf))
		},
	},
	// 8XY5 Vx -= Vy (equal operands clear the flag)
	{
		0x8ab5,
		func(m *Machine) {
			m.v.Write(0xa, 0x07)
			m.v.Write(0xb, 0x07)
			m.v.Write(0xf, 0x01)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0), m.v.Read(0xa))
			assert.Equal(t, uint8(0), m.v.Read(0xf))
		},
	},
	// 8XY6 Vx=Vy>>1 (bit0 is 1)
	{
		0x8cd6,
		func(m *Machine) {
			m.v.Write(0xd, 0x3)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(1), m.v.Read(0xc))
			assert.Equal(t, uint8(1), m.v.Read(0xf))
		},
	},
	// 8XY6 Vx=Vy>>1 (bit0 is 0)
	{
		0x8cd6,
		func(m *Machine) {
			m.v.Write(0xc, 0xff)
			m.v.Write(0xd, 0x2)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(1), m.v.Read(0xc))
			assert.Equal(t, uint8(0), m.v.Read(0xf))
		},
	},
	// 8XY7 Vx=Vy-Vx (not borrow)
	{
		0x8ed7,
		func(m *Machine) {
			m.v.Write(0xe, 0x45)
			m.v.Write(0xd, 0x67)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x22), m.v.Read(0xe))
			assert.Equal(t, uint8(1), m.v.Read(0xf))
		},
	},
	// 8XY7 Vx=Vy-Vx (borrow)
	{
		0x8ed7,
		func(m *Machine) {
			m.v.Write(0xe, 0x67)
			m.v.Write(0xd, 0x45)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0xde), m.v.Read(0xe))
			assert.Equal(t, uint8(0), m.v.Read(0xf))
		},
	},
	// 8XYE Vx=Vy<<1 (bit7 is 0)
	{
		0x801E,
		func(m *Machine) {
			m.v.Write(1, 0x08)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x10), m.v.Read(0))
			assert.Equal(t, uint8(0), m.v.Read(0xf))
		},
	},
	// 8XYE Vx=Vy<<1 (bit7 is 1)
	{
		0x801E,
		func(m *Machine) {
			m.v.Write(1, 0x88)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x10), m.v.Read(0))
			assert.Equal(t, uint8(1), m.v.Read(0xf))
		},
	},
	// 8XY4 with VF as destination keeps the flag
	{
		0x8F14,
		func(m *Machine) {
			m.v.Write(0xf, 0xff)
			m.v.Write(1, 0x02)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(1), m.v.Read(0xf))
		},
	},
	// 9XY0 if(Vx!=Vy) (true)
	{
		0x9120,
		func(m *Machine) {
			m.v.Write(1, 1)
			m.v.Write(2, 2)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x204), m.pc)
		},
	},
	// 9XY0 if(Vx!=Vy) (false)
	{
		0x9120,
		func(m *Machine) {
			m.v.Write(1, 1)
			m.v.Write(2, 1)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x202), m.pc)
		},
	},
	// ANNN I = NNN
	{
		0xA123,
		nil,
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x123), m.i)
		},
	},
	// BNNN PC=V0+NNN
	{
		0xB100,
		func(m *Machine) {
			m.v.Write(0, 0x23)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x123), m.pc)
		},
	},
	// CXNN Vx=rand()&NN
	{
		0xC800,
		func(m *Machine) {
			m.v.Write(8, 0xff)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0), m.v.Read(8))
		},
	},
	// CXNN Vx=rand()&NN (mask limits the result)
	{
		0xC80F,
		nil,
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0), m.v.Read(8)&0xf0)
		},
	},
	// DXYN draw(Vx,Vy,N) (not flip)
	{
		0xD128,
		func(m *Machine) {
			m.v.Write(1, 8)
			m.v.Write(2, 8)
			m.i = 0x300
			for a := uint16(0x300); a < 0x308; a++ {
				m.mem.Write(a, 0xff)
			}
		},
		func(t *testing.T, m *Machine) {
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					assert.True(t, m.disp.Get(x+8, y+8))
				}
			}
			assert.False(t, m.disp.Get(7, 8))
			assert.False(t, m.disp.Get(16, 8))
			assert.Equal(t, uint8(0), m.v.Read(0xf))
			assert.True(t, m.NeedsRedraw())
		},
	},
	// DXYN draw(Vx,Vy,N) (flip)
	{
		0xD128,
		func(m *Machine) {
			m.v.Write(1, 8)
			m.v.Write(2, 8)
			m.i = 0x300
			for a := uint16(0x300); a < 0x308; a++ {
				m.mem.Write(a, 0xff)
			}
			for y := 0; y < DisplayHeight; y++ {
				for x := 0; x < DisplayWidth; x++ {
					m.disp.Set(x, y, true)
				}
			}
		},
		func(t *testing.T, m *Machine) {
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					assert.False(t, m.disp.Get(x+8, y+8))
				}
			}
			assert.True(t, m.disp.Get(7, 8))
			assert.Equal(t, uint8(1), m.v.Read(0xf))
		},
	},
	// DXYN clips at the right and bottom edges
	{
		0xD122,
		func(m *Machine) {
			m.v.Write(1, 62)
			m.v.Write(2, 31)
			m.i = 0x300
			m.mem.Write(0x300, 0xff)
			m.mem.Write(0x301, 0xff)
		},
		func(t *testing.T, m *Machine) {
			assert.True(t, m.disp.Get(62, 31))
			assert.True(t, m.disp.Get(63, 31))
			assert.False(t, m.disp.Get(0, 31))
			assert.False(t, m.disp.Get(62, 0))
			assert.Equal(t, uint8(0), m.v.Read(0xf))
		},
	},
	// DXYN wraps the start position
	{
		0xD121,
		func(m *Machine) {
			m.v.Write(1, 64+3)
			m.v.Write(2, 32+4)
			m.i = 0x300
			m.mem.Write(0x300, 0x80)
		},
		func(t *testing.T, m *Machine) {
			assert.True(t, m.disp.Get(3, 4))
		},
	},
	// EX9E if(key(Vx)) (true)
	{
		0xE09E,
		func(m *Machine) {
			m.v.Write(0, 7)
			m.keys.Write(7, true)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x204), m.pc)
		},
	},
	// EX9E if(key(Vx)) (false)
	{
		0xE09E,
		func(m *Machine) {
			m.v.Write(0, 7)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x202), m.pc)
		},
	},
	// EXA1 if(!key(Vx)) (true)
	{
		0xE0A1,
		func(m *Machine) {
			m.v.Write(0, 7)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x204), m.pc)
		},
	},
	// EXA1 if(!key(Vx)) (false)
	{
		0xE0A1,
		func(m *Machine) {
			m.v.Write(0, 7)
			m.keys.Write(7, true)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x202), m.pc)
		},
	},
	// FX07 Vx = get_delay()
	{
		0xF107,
		func(m *Machine) {
			m.dt = 10
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(10), m.v.Read(1))
		},
	},
	// FX0A Vx = get_key()
	{
		0xF20A,
		nil,
		func(t *testing.T, m *Machine) {
			assert.True(t, m.WaitingForKey())
			assert.Equal(t, uint8(2), m.keyTarget)
			assert.Equal(t, uint16(0x202), m.pc)
		},
	},
	// FX15 delay_timer(Vx)
	{
		0xF215,
		func(m *Machine) {
			m.v.Write(2, 10)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(10), m.dt)
		},
	},
	// FX18 sound_timer(Vx)
	{
		0xF318,
		func(m *Machine) {
			m.v.Write(3, 10)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(10), m.st)
			assert.True(t, m.SoundActive())
		},
	},
	// FX1E I +=Vx
	{
		0xF41E,
		func(m *Machine) {
			m.v.Write(4, 10)
			m.i = 0x100
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x100+10), m.i)
		},
	},
	// FX29 I=sprite_addr[Vx]
	{
		0xF529,
		func(m *Machine) {
			m.v.Write(5, 5)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(FontStart+5*FontSpriteBytes), m.i)
			assert.Equal(t, uint8(0xF0), m.mem.Read(m.i))
		},
	},
	// FX33 set_BCD(Vx); Vx = 157
	{
		0xF633,
		func(m *Machine) {
			m.v.Write(6, 157)
			m.i = 0x300
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(1), m.mem.Read(0x300))
			assert.Equal(t, uint8(5), m.mem.Read(0x301))
			assert.Equal(t, uint8(7), m.mem.Read(0x302))
		},
	},
	// FX33 set_BCD(Vx); Vx = 45
	{
		0xF633,
		func(m *Machine) {
			m.v.Write(6, 45)
			m.i = 0x300
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0), m.mem.Read(0x300))
			assert.Equal(t, uint8(4), m.mem.Read(0x301))
			assert.Equal(t, uint8(5), m.mem.Read(0x302))
		},
	},
	// FX33 set_BCD(Vx); Vx = 6
	{
		0xF633,
		func(m *Machine) {
			m.v.Write(6, 6)
			m.i = 0x300
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0), m.mem.Read(0x300))
			assert.Equal(t, uint8(0), m.mem.Read(0x301))
			assert.Equal(t, uint8(6), m.mem.Read(0x302))
		},
	},
	// FX55 reg_dump(Vx,&I)
	{
		0xF455,
		func(m *Machine) {
			for r := uint8(0); r < RegisterCount; r++ {
				m.v.Write(r, r+1)
			}
			m.i = 0x300
		},
		func(t *testing.T, m *Machine) {
			for r := uint16(0); r <= 4; r++ {
				assert.Equal(t, uint8(r+1), m.mem.Read(0x300+r))
			}
			assert.Equal(t, uint8(0), m.mem.Read(0x305))
			assert.Equal(t, uint16(0x300), m.i)
		},
	},
	// FX65 reg_load(Vx,&I)
	{
		0xF565,
		func(m *Machine) {
			for a := uint16(0); a < RegisterCount; a++ {
				m.mem.Write(0x300+a, uint8(a+1))
			}
			m.i = 0x300
		},
		func(t *testing.T, m *Machine) {
			for r := uint8(0); r <= 5; r++ {
				assert.Equal(t, r+1, m.v.Read(r))
			}
			assert.Equal(t, uint8(0), m.v.Read(6))
			assert.Equal(t, uint16(0x300), m.i)
		},
	},
}

func TestExecOpcodes(t *testing.T) {
	for _, test := range opcodeTestTable {
		test := test
		t.Run(fmt.Sprintf("opcode[%04X]", test.opcode), func(t *testing.T) {
			m := newTestMachine(t, Quirks{}, test.opcode)

			if test.before != nil {
				test.before(m)
			}

			require.NoError(t, m.Step())

			test.assert(t, m)
		})
	}
}

var quirkTestTable = []struct {
	name   string
	quirks Quirks
	opcode uint16
	before func(m *Machine)
	assert func(t *testing.T, m *Machine)
}{
	{
		"8XY6 shifts Vx in place",
		Quirks{ShiftVx: true},
		0x8016,
		func(m *Machine) {
			m.v.Write(0, 0x05)
			m.v.Write(1, 0x80)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x02), m.v.Read(0))
			assert.Equal(t, uint8(1), m.v.Read(0xf))
		},
	},
	{
		"8XYE shifts Vx in place",
		Quirks{ShiftVx: true},
		0x801E,
		func(m *Machine) {
			m.v.Write(0, 0x81)
			m.v.Write(1, 0x01)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0x02), m.v.Read(0))
			assert.Equal(t, uint8(1), m.v.Read(0xf))
		},
	},
	{
		"BNNN jumps with Vx",
		Quirks{JumpWithVx: true},
		0xB234,
		func(m *Machine) {
			m.v.Write(0, 0x10)
			m.v.Write(2, 0x20)
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint16(0x20+0x34), m.pc)
		},
	},
	{
		"FX55 increments I",
		Quirks{SetRegistersIncrementIndex: true},
		0xF255,
		func(m *Machine) {
			m.v.Write(0, 0xa)
			m.v.Write(1, 0xb)
			m.v.Write(2, 0xc)
			m.i = 0x300
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0xa), m.mem.Read(0x300))
			assert.Equal(t, uint8(0xb), m.mem.Read(0x301))
			assert.Equal(t, uint8(0xc), m.mem.Read(0x302))
			assert.Equal(t, uint16(0x303), m.i)
		},
	},
	{
		"FX65 increments I",
		Quirks{LoadRegistersIncrementIndex: true},
		0xF165,
		func(m *Machine) {
			m.mem.Write(0x300, 0xa)
			m.mem.Write(0x301, 0xb)
			m.i = 0x300
		},
		func(t *testing.T, m *Machine) {
			assert.Equal(t, uint8(0xa), m.v.Read(0))
			assert.Equal(t, uint8(0xb), m.v.Read(1))
			assert.Equal(t, uint16(0x302), m.i)
		},
	},
}

func TestExecOpcodesQuirks(t *testing.T) {
	for _, test := range quirkTestTable {
		test := test
		t.Run(test.name, func(t *testing.T) {
			m := newTestMachine(t, test.quirks, test.opcode)
			test.before(m)
			require.NoError(t, m.Step())
			test.assert(t, m)
		})
	}
}

func TestDrawSameSpriteTwice(t *testing.T) {
	m := newTestMachine(t, Quirks{}, 0xD011, 0xD011)
	m.i = 0x300
	m.mem.Write(0x300, 0x80)

	require.NoError(t, m.Step())
	assert.True(t, m.disp.Get(0, 0))
	assert.Equal(t, uint8(0), m.v.Read(0xf))

	require.NoError(t, m.Step())
	assert.False(t, m.disp.Get(0, 0))
	assert.Equal(t, uint8(1), m.v.Read(0xf))
}

func TestSubroutineCallAndReturn(t *testing.T) {
	// 0x200 call 0x206, 0x202 ld V1 #22, 0x204 jp 0x204, 0x206 ld V0 #11, 0x208 ret
	m := newTestMachine(t, Quirks{}, 0x2206, 0x6122, 0x1204, 0x6011, 0x00EE)

	for n := 0; n < 4; n++ {
		require.NoError(t, m.Step())
	}
	assert.Equal(t, uint8(0x11), m.v.Read(0))
	assert.Equal(t, uint8(0x22), m.v.Read(1))
	assert.Equal(t, uint16(0x204), m.pc)
	assert.True(t, m.stack.IsEmpty())
}

func TestFatalErrors(t *testing.T) {
	tests := []struct {
		name   string
		ops    []uint16
		before func(m *Machine)
		want   error
	}{
		{"unknown 0NNN", []uint16{0x0123}, nil, ErrUnknownOpcode},
		{"unknown 8XY8", []uint16{0x8128}, nil, ErrUnknownOpcode},
		{"unknown EXNN", []uint16{0xE1FF}, nil, ErrUnknownOpcode},
		{"unknown FXNN", []uint16{0xF1FF}, nil, ErrUnknownOpcode},
		{"return with empty stack", []uint16{0x00EE}, nil, ErrStackUnderflow},
		{
			"call with full stack",
			[]uint16{0x2200},
			func(m *Machine) {
				for n := 0; n < StackDepth; n++ {
					_ = m.stack.Push(0x200)
				}
			},
			ErrStackOverflow,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, Quirks{}, tt.ops...)
			if tt.before != nil {
				tt.before(m)
			}

			err := m.Step()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var execErr *ExecError
			require.ErrorAs(t, err, &execErr)
			assert.Equal(t, uint16(0x200), execErr.PC)
			assert.Equal(t, tt.ops[0], execErr.Opcode)
			assert.False(t, m.Running())

			// a stopped machine does not execute anything else
			pc := m.pc
			assert.NoError(t, m.Step())
			assert.Equal(t, pc, m.pc)
		})
	}
}
