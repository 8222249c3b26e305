package chip8

// Quirks selects between the two legal behaviours of the opcodes that differ
// across CHIP-8 interpreters. The zero value is the original COSMAC VIP
// behaviour.
type Quirks struct {
	// ShiftVx makes 8XY6/8XYE shift Vx in place instead of Vy into Vx.
	ShiftVx bool
	// JumpWithVx makes BNNN jump to Vx+NN instead of V0+NNN.
	JumpWithVx bool
	// SetRegistersIncrementIndex makes FX55 advance I past the stored bytes.
	SetRegistersIncrementIndex bool
	// LoadRegistersIncrementIndex makes FX65 advance I past the loaded bytes.
	LoadRegistersIncrementIndex bool
}
