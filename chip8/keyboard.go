package chip8

const KeyCount = 16

// Keyboard is the state of the 16 key hex keypad. Keys outside 0x0-0xF are
// ignored since physical key mapping happens in the frontend.
type Keyboard struct {
	keys [KeyCount]bool
}

func (k *Keyboard) Read(key uint8) bool {
	if key >= KeyCount {
		return false
	}
	return k.keys[key]
}

func (k *Keyboard) Write(key uint8, pressed bool) {
	if key >= KeyCount {
		return
	}
	k.keys[key] = pressed
}

// State returns a copy of all key flags.
func (k *Keyboard) State() [KeyCount]bool {
	return k.keys
}

func (k *Keyboard) reset() {
	k.keys = [KeyCount]bool{}
}
