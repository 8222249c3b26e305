package chip8

const (
	MemorySize  = 4096
	AddressMask = 0x0FFF

	FontStart = 0x050
	FontEnd   = 0x0A0

	ProgramStart = 0x200
	ProgramEnd   = 0xFFF
	MaxROMSize   = ProgramEnd - ProgramStart
)

// Memory is the flat 4KB address space. Every access is masked to 12 bits,
// so out of range addresses wrap instead of failing.
type Memory struct {
	data [MemorySize]uint8
}

func (m *Memory) Read(addr uint16) uint8 {
	return m.data[addr&AddressMask]
}

func (m *Memory) Write(addr uint16, v uint8) {
	m.data[addr&AddressMask] = v
}

// load copies b starting at addr, wrapping past the end of memory.
func (m *Memory) load(addr uint16, b []uint8) {
	for i, v := range b {
		m.Write(addr+uint16(i), v)
	}
}

func (m *Memory) reset() {
	m.data = [MemorySize]uint8{}
}
