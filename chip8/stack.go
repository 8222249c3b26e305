package chip8

import "errors"

const StackDepth = 64

var (
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
)

// Stack is a fixed depth LIFO of subroutine return addresses.
type Stack struct {
	entries [StackDepth]uint16
	size    int
}

func (s *Stack) Push(addr uint16) error {
	if s.IsFull() {
		return ErrStackOverflow
	}
	s.entries[s.size] = addr
	s.size++
	return nil
}

func (s *Stack) Pop() (uint16, error) {
	if s.IsEmpty() {
		return 0, ErrStackUnderflow
	}
	s.size--
	addr := s.entries[s.size]
	s.entries[s.size] = 0
	return addr, nil
}

func (s *Stack) Peek() (uint16, error) {
	if s.IsEmpty() {
		return 0, ErrStackUnderflow
	}
	return s.entries[s.size-1], nil
}

func (s *Stack) IsEmpty() bool {
	return s.size == 0
}

func (s *Stack) IsFull() bool {
	return s.size == StackDepth
}

// Len returns the number of return addresses currently stored.
func (s *Stack) Len() int {
	return s.size
}

func (s *Stack) reset() {
	*s = Stack{}
}
