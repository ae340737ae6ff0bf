package aoc2022day05

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrEmptyStack   = errors.New("not enough crates on stack")
	ErrUnknownStack = errors.New("unknown stack")
)

// Stack holds crate labels from bottom to top.
type Stack struct {
	crates []byte
}

func NewStack(crates ...byte) *Stack {
	return &Stack{crates: slices.Clone(crates)}
}

func (s *Stack) Len() int {
	return len(s.crates)
}

func (s *Stack) Push(crate byte) {
	s.crates = append(s.crates, crate)
}

func (s *Stack) Pop() (byte, error) {
	if len(s.crates) == 0 {
		return 0, ErrEmptyStack
	}
	crate := s.crates[len(s.crates)-1]
	s.crates = s.crates[:len(s.crates)-1]
	return crate, nil
}

// PushN places the block on top, keeping its bottom-to-top order.
func (s *Stack) PushN(block []byte) {
	s.crates = append(s.crates, block...)
}

// PopN removes the top n crates as one block, returned bottom-to-top.
func (s *Stack) PopN(n int) ([]byte, error) {
	if n < 0 || n > len(s.crates) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrEmptyStack, n, len(s.crates))
	}
	block := slices.Clone(s.crates[len(s.crates)-n:])
	s.crates = s.crates[:len(s.crates)-n]
	return block, nil
}

// Top returns the top crate, or false for an empty stack.
func (s *Stack) Top() (byte, bool) {
	if len(s.crates) == 0 {
		return 0, false
	}
	return s.crates[len(s.crates)-1], true
}

func (s *Stack) Crates() []byte {
	return slices.Clone(s.crates)
}

func (s *Stack) String() string {
	return string(s.crates)
}

// Yard maps stack indices to stacks.
type Yard struct {
	stacks  map[int]*Stack
	indices []int
}

func NewYard() *Yard {
	return &Yard{stacks: make(map[int]*Stack)}
}

// Add registers a stack under index, replacing any existing one.
func (y *Yard) Add(index int, stack *Stack) {
	if _, exists := y.stacks[index]; !exists {
		y.indices = append(y.indices, index)
		slices.Sort(y.indices)
	}
	y.stacks[index] = stack
}

func (y *Yard) Stack(index int) (*Stack, error) {
	stack, exists := y.stacks[index]
	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStack, index)
	}
	return stack, nil
}

// Indices returns the stack indices in ascending order.
func (y *Yard) Indices() []int {
	return slices.Clone(y.indices)
}

// Tops concatenates the top crate of every stack in ascending index order.
// Every stack must hold at least one crate.
func (y *Yard) Tops() (string, error) {
	var b strings.Builder
	for _, index := range y.indices {
		crate, ok := y.stacks[index].Top()
		if !ok {
			return "", fmt.Errorf("%w: stack %d has no top crate", ErrEmptyStack, index)
		}
		b.WriteByte(crate)
	}
	return b.String(), nil
}

func (y *Yard) Count() int {
	total := 0
	for _, stack := range y.stacks {
		total += stack.Len()
	}
	return total
}

func (y *Yard) Clone() *Yard {
	clone := NewYard()
	for _, index := range y.indices {
		clone.Add(index, NewStack(y.stacks[index].crates...))
	}
	return clone
}
